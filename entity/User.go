package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // เก็บ bcrypt hash
	Name     string `json:"name"`
	Username string `json:"username"`

	AvatarURL        string `json:"avatar_url"`
	Location         string `json:"location"`
	RegistrationDate string `json:"registration_date"`

	// Relations — preload เฉพาะตอนจำเป็น
	Reviews   []Review   `json:"-"`
	Favorites []Favorite `json:"-"`
}
