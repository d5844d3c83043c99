package models

import (
	"time"
)

// TagType กำหนดว่า tag ใช้แปะกับ entity ชนิดไหนได้
type TagType string

const (
	TagTypeProduct TagType = "product"
	TagTypeOption  TagType = "option"
	TagTypeItem    TagType = "item"
)

// ValidTagType ตรวจสอบค่า type ที่รับมาจาก request
func ValidTagType(t TagType) bool {
	switch t {
	case TagTypeProduct, TagTypeOption, TagTypeItem:
		return true
	}
	return false
}

type Tag struct {
	ID               uint    `gorm:"primaryKey"`
	CommerceID       uint    `gorm:"index;not null"`
	Name             string  `gorm:"size:100;not null"`
	Color            string  `gorm:"size:20"`
	TextColor        string  `gorm:"size:20"`
	Type             TagType `gorm:"size:20;not null"`
	Visible          bool    `gorm:"default:true"`
	Priority         int     `gorm:"default:0"` // sort weight, มากขึ้นก่อน
	Discount         *float64
	DisableSelection bool `gorm:"default:false"`
	IsRecommended    bool `gorm:"default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Tag) TableName() string {
	return "tags"
}
