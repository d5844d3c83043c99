package services

import (
	"context"
	"io"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/pkg/utils"
)

type ProductService interface {
	// List ดึง products ของ commerce; ระบุ categoryID เพื่อกรองตาม category
	List(ctx context.Context, actor *utils.UserContext, commerceID *uint, categoryID *uint) ([]*models.Product, error)

	Get(ctx context.Context, actor *utils.UserContext, id uint) (*models.Product, error)

	// Create สร้าง product ใต้ category — category ต้องอยู่ commerce เดียวกับ caller
	Create(ctx context.Context, actor *utils.UserContext, req *dto.CreateProductRequest) (*models.Product, error)

	Update(ctx context.Context, actor *utils.UserContext, id uint, req *dto.UpdateProductRequest) (*models.Product, error)

	// Delete ลบ product พร้อม options/items/tag assignments
	Delete(ctx context.Context, actor *utils.UserContext, id uint) error

	// UploadImage อัปโหลดรูป product — รูปเก่าถูกลบแบบ best-effort
	UploadImage(ctx context.Context, actor *utils.UserContext, id uint, file io.Reader, filename, contentType string) (*models.Product, error)
}
