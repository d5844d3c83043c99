package repositories

import (
	"context"

	"menu-api/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	// ListByCommerce คืน categories เรียงตาม (position, id) ascending
	// ordering นี้ menu composition พึ่งอยู่ — ties ต้อง break ด้วย id เสมอ
	ListByCommerce(ctx context.Context, commerceID uint) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	// DeleteCascade ลบ category พร้อม products/options/items/tag assignments ใน tx เดียว
	DeleteCascade(ctx context.Context, id uint) error
	// CountByIDsAndCommerce นับว่า ids กี่ตัวอยู่ใน commerce นี้ (batched ownership check)
	CountByIDsAndCommerce(ctx context.Context, ids []uint, commerceID uint) (int64, error)
	// UpdatePositions อัปเดต position ทั้ง batch ใน tx เดียว (all-or-nothing)
	UpdatePositions(ctx context.Context, categories []*models.Category) error
	MaxPosition(ctx context.Context, commerceID uint) (int, error)
}
