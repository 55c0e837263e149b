package entity

import (
	"gorm.io/gorm"
)

// Favorite มีได้แค่ 1 รายการต่อ (user, store)
type Favorite struct {
	gorm.Model
	UserID  uint `json:"user_id" gorm:"uniqueIndex:idx_fav_user_store"`
	StoreID uint `json:"store_id" gorm:"uniqueIndex:idx_fav_user_store"`

	User  User  `json:"-"`
	Store Store `json:"-"`
}
