package repositories

import (
	"context"

	"menu-api/domain/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]*models.Product, error)
	ListByCommerce(ctx context.Context, commerceID uint) ([]*models.Product, error)
	// ListForMenu ดึง products ทั้ง commerce พร้อม nested relations สำหรับ menu composition:
	// visible tags (priority desc, name asc), options, available items, และ tags ของแต่ละชั้น
	ListForMenu(ctx context.Context, commerceID uint) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	// DeleteCascade ลบ product พร้อม options, items และ tag assignments ใน tx เดียว
	DeleteCascade(ctx context.Context, id uint) error
}
