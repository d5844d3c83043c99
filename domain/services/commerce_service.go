package services

import (
	"context"
	"io"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/pkg/utils"
)

type CommerceService interface {
	// Create สร้าง commerce พร้อม OWNER หนึ่งคนใน transaction เดียว
	// subdomain ซ้ำ -> AlreadyExists{subdomain}, email ซ้ำ -> AlreadyExists{email}
	Create(ctx context.Context, req *dto.CreateCommerceRequest) (*models.Commerce, *models.User, error)

	Get(ctx context.Context, actor *utils.UserContext, id uint) (*models.Commerce, error)

	List(ctx context.Context) ([]*models.Commerce, error)

	Update(ctx context.Context, actor *utils.UserContext, id uint, req *dto.UpdateCommerceRequest) (*models.Commerce, error)

	// Delete ลบ commerce: users + catalog ทั้งหมดใน transaction เดียว
	// media cleanup เป็น best-effort หลัง commit (fail แค่ log)
	Delete(ctx context.Context, actor *utils.UserContext, id uint) error

	// UploadLogo / UploadBanner อัปโหลดรูปไป media host แล้วอัปเดต URL
	// รูปเก่าถูกลบแบบ best-effort
	UploadLogo(ctx context.Context, actor *utils.UserContext, id uint, file io.Reader, filename, contentType string) (*models.Commerce, error)
	UploadBanner(ctx context.Context, actor *utils.UserContext, id uint, file io.Reader, filename, contentType string) (*models.Commerce, error)
}
