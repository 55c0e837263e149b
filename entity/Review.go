package entity

import (
	"time"

	"gorm.io/gorm"
)

// Review สร้างได้อย่างเดียว ไม่แก้ ไม่ลบ
type Review struct {
	gorm.Model
	Rating     int       `json:"rating"` // 1-5
	Comment    string    `json:"comment"`
	Images     []string  `json:"images" gorm:"serializer:json"` // data URL สูงสุด 3 รูป
	ReviewDate time.Time `json:"review_date"`

	StoreID uint  `json:"store_id"`
	Store   Store `json:"-"`

	// snapshot ของผู้เขียน ณ ตอนรีวิว
	UserID     uint   `json:"user_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
}
