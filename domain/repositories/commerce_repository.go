package repositories

import (
	"context"

	"menu-api/domain/models"
)

type CommerceRepository interface {
	// CreateWithOwner สร้าง commerce พร้อม owner user ใน transaction เดียว
	// owner.CommerceID ถูก set ให้ชี้ commerce ที่สร้างใหม่
	CreateWithOwner(ctx context.Context, commerce *models.Commerce, owner *models.User) error
	GetByID(ctx context.Context, id uint) (*models.Commerce, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*models.Commerce, error)
	List(ctx context.Context) ([]*models.Commerce, error)
	Update(ctx context.Context, commerce *models.Commerce) error
	// DeleteCascade ลบ commerce พร้อม users, catalog ทั้งหมด และ tag assignments
	// ใน transaction เดียว (media cleanup เป็นหน้าที่ของ service หลัง commit)
	DeleteCascade(ctx context.Context, id uint) error
}
