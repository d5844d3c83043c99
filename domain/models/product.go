package models

import (
	"time"
)

type Product struct {
	ID uint `gorm:"primaryKey"`
	// CommerceID denormalized ไว้คู่กับ CategoryID เพื่อให้ scope ได้โดยไม่ต้อง join
	CommerceID  uint   `gorm:"index;not null"`
	CategoryID  uint   `gorm:"index;not null"`
	Name        string `gorm:"size:150;not null"`
	Description string
	Price       float64 `gorm:"type:numeric(10,2);not null"`
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Options []ProductOption `gorm:"foreignKey:ProductID"`
	Tags    []Tag           `gorm:"many2many:product_tags"`
}

func (Product) TableName() string {
	return "products"
}
