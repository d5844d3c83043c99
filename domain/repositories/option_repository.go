package repositories

import (
	"context"

	"menu-api/domain/models"
)

type OptionRepository interface {
	// Create สร้าง option พร้อม items ที่แนบมา (GORM สร้าง association ให้ใน tx เดียว)
	Create(ctx context.Context, option *models.ProductOption) error
	GetByID(ctx context.Context, id uint) (*models.ProductOption, error)
	GetItemByID(ctx context.Context, itemID uint) (*models.OptionItem, error)
	// SyncItems ทำ diff-by-id reconciliation ใน transaction เดียว:
	// update ทีละตัวตาม updates, ลบ deleteIDs (พร้อม item_tags), insert ตัวใหม่
	SyncItems(ctx context.Context, option *models.ProductOption, updates []*models.OptionItem, deleteIDs []uint, inserts []*models.OptionItem) error
	UpdateItem(ctx context.Context, item *models.OptionItem) error
	// DeleteCascade ลบ option พร้อม items และ tag assignments ใน tx เดียว
	DeleteCascade(ctx context.Context, id uint) error

	// OwnerCommerceID ตาม chain option -> product -> commerce
	// chain ขาด (orphan) ถือเป็น not found
	OwnerCommerceID(ctx context.Context, optionID uint) (uint, error)
	// OwnerCommerceIDOfItem ตาม chain item -> option -> product -> commerce
	OwnerCommerceIDOfItem(ctx context.Context, itemID uint) (uint, error)
}
