package entity

import (
	"gorm.io/gorm"
)

type Store struct {
	gorm.Model
	NameJP        string   `json:"name_jp"`
	AddressJP     string   `json:"address_jp"`
	DescriptionJP string   `json:"description_jp"`
	Phone         string   `json:"phone"`
	OpeningHours  string   `json:"opening_hours"`
	Images        []string `json:"images" gorm:"serializer:json"`

	// ค่าสถิติ derive จากรีวิว — อัปเดตเฉพาะตอน AddReview เท่านั้น
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`

	Services  []string `json:"services" gorm:"serializer:json"`
	SpaceType string   `json:"space_type"` // indoor | outdoor | both
	Tags      []string `json:"tags" gorm:"serializer:json"`

	Distance float64 `json:"distance"` // km จากจุด demo (precompute ตอน seed)
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`

	Reviews   []Review   `json:"-" gorm:"foreignKey:StoreID"`
	Favorites []Favorite `json:"-" gorm:"foreignKey:StoreID"`
}
