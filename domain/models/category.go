package models

import (
	"time"
)

type Category struct {
	ID         uint   `gorm:"primaryKey"`
	CommerceID uint   `gorm:"index;not null"`
	Name       string `gorm:"size:100;not null"`
	Position   int    `gorm:"default:0"` // ordering hint, ties broken by id
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Category) TableName() string {
	return "categories"
}
