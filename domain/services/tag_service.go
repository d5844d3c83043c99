package services

import (
	"context"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/pkg/utils"
)

type TagService interface {
	List(ctx context.Context, actor *utils.UserContext, commerceID *uint) ([]*models.Tag, error)

	Create(ctx context.Context, actor *utils.UserContext, req *dto.CreateTagRequest) (*models.Tag, error)

	Update(ctx context.Context, actor *utils.UserContext, id uint, req *dto.UpdateTagRequest) (*models.Tag, error)

	// Delete ลบ tag พร้อม assignments ทั้งหมด
	Delete(ctx context.Context, actor *utils.UserContext, id uint) error

	// Assign แปะ tag กับ target ตามชนิดของ tag (product/option/item)
	// ตรวจ: target อยู่ commerce ของ caller, tag อยู่ commerce ของ caller,
	// tag.type ตรงกับชนิด target — แปะซ้ำ idempotent
	Assign(ctx context.Context, actor *utils.UserContext, tagID, targetID uint) error

	Unassign(ctx context.Context, actor *utils.UserContext, tagID, targetID uint) error
}
