package repositories

import (
	"context"

	"menu-api/domain/models"
)

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	ListByCommerce(ctx context.Context, commerceID uint) ([]*models.Tag, error)
	Update(ctx context.Context, tag *models.Tag) error
	// Delete ลบ tag พร้อม assignments ทั้งหมดของมันใน tx เดียว
	Delete(ctx context.Context, id uint) error

	// Assign แปะ tag กับ target ตามชนิดของ tag — idempotent (แปะซ้ำไม่สร้าง row ใหม่)
	AssignToProduct(ctx context.Context, tagID, productID uint) error
	AssignToOption(ctx context.Context, tagID, optionID uint) error
	AssignToItem(ctx context.Context, tagID, itemID uint) error

	UnassignFromProduct(ctx context.Context, tagID, productID uint) error
	UnassignFromOption(ctx context.Context, tagID, optionID uint) error
	UnassignFromItem(ctx context.Context, tagID, itemID uint) error
}
