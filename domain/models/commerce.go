package models

import (
	"time"
)

type Commerce struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"size:100;not null"`
	Subdomain        string `gorm:"size:100;uniqueIndex;not null"`
	BusinessCategory string `gorm:"size:100;not null"`
	LogoURL          string
	BannerURL        string

	// Operational flags
	IsOpen          bool    `gorm:"default:true"`
	AcceptsDelivery bool    `gorm:"default:true"`
	AcceptsPickup   bool    `gorm:"default:true"`
	DeliveryFee     float64 `gorm:"type:numeric(10,2);default:0"`
	DeliveryTime    string  `gorm:"size:50"` // เช่น "30-45 min"
	MinimumOrder    float64 `gorm:"type:numeric(10,2);default:0"`

	// Contact / social
	Phone     string `gorm:"size:30"`
	Whatsapp  string `gorm:"size:30"`
	Instagram string `gorm:"size:100"`
	Facebook  string `gorm:"size:100"`
	Address   string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Commerce) TableName() string {
	return "commerces"
}
