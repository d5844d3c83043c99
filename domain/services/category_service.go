package services

import (
	"context"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/pkg/utils"
)

type CategoryService interface {
	// List ดึง categories ของ commerce เรียงตาม (position, id)
	// owner ใช้ commerce ตัวเอง; superuser ระบุ commerceID เอง
	List(ctx context.Context, actor *utils.UserContext, commerceID *uint) ([]*models.Category, error)

	Create(ctx context.Context, actor *utils.UserContext, req *dto.CreateCategoryRequest) (*models.Category, error)

	Update(ctx context.Context, actor *utils.UserContext, id uint, req *dto.UpdateCategoryRequest) (*models.Category, error)

	// Delete ลบ category พร้อม products/options/items ที่ขึ้นกับมัน
	Delete(ctx context.Context, actor *utils.UserContext, id uint) error

	// Reorder อัปเดต position ทั้ง batch — ตรวจ ownership ทุก id ก่อน (ตกตัวเดียว
	// reject ทั้ง batch ด้วย Forbidden) แล้วค่อยเขียนใน transaction เดียว
	Reorder(ctx context.Context, actor *utils.UserContext, req *dto.ReorderCategoriesRequest) error
}
