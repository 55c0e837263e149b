package entity

import (
	"gorm.io/gorm"
)

// Need = หมวดความต้องการของ user (work, date, reading, ...)
// ใช้จับคู่กับ Store.Tags
type Need struct {
	gorm.Model
	NeedID      string `gorm:"uniqueIndex;not null" json:"id"`
	LabelJP     string `json:"label_jp"`
	LabelVN     string `json:"label_vn"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
