package services

import (
	"context"
	"io"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/pkg/utils"
)

type OptionService interface {
	// Create สร้าง option พร้อม items ใต้ product
	// multiple=false บังคับ max_selections = null เสมอ
	Create(ctx context.Context, actor *utils.UserContext, productID uint, req *dto.CreateOptionRequest) (*models.ProductOption, error)

	Get(ctx context.Context, actor *utils.UserContext, id uint) (*models.ProductOption, error)

	// Update ทำ diff-by-id reconciliation กับ items:
	// item ที่มี id = update, ไม่มี id = insert, หายจาก request = delete — atomic ทั้งชุด
	Update(ctx context.Context, actor *utils.UserContext, id uint, req *dto.UpdateOptionRequest) (*models.ProductOption, error)

	// Delete ลบ option พร้อม items ทั้งหมด (ไม่เหลือ orphan)
	Delete(ctx context.Context, actor *utils.UserContext, id uint) error

	// UploadItemImage อัปโหลดรูปของ option item
	UploadItemImage(ctx context.Context, actor *utils.UserContext, itemID uint, file io.Reader, filename, contentType string) (*models.OptionItem, error)
}
