package services

import (
	"context"

	"menu-api/pkg/utils"
)

// AccessGuard คือ tenant scoping rule เดียวของระบบ — ทุก mutation ต้องผ่านตัวนี้
// SUPERUSER ผ่านเสมอ; OWNER ผ่านเฉพาะ commerce ของตัวเอง
type AccessGuard interface {
	// AuthorizeCommerce คืน nil ถ้า actor แตะ commerce นี้ได้
	// denied คืน Forbidden — caller ฝั่ง mutation ควรแปลงเป็น NotFound
	// เพื่อไม่ leak ว่า resource มีอยู่
	AuthorizeCommerce(ctx context.Context, actor *utils.UserContext, commerceID uint) error

	// Resolver ไล่ reference chain หา commerce เจ้าของ resource
	// chain ขาด (row หาย, orphan) คืน NotFound
	CommerceOfCategory(ctx context.Context, categoryID uint) (uint, error)
	CommerceOfProduct(ctx context.Context, productID uint) (uint, error)
	CommerceOfOption(ctx context.Context, optionID uint) (uint, error)
	CommerceOfItem(ctx context.Context, itemID uint) (uint, error)
	CommerceOfTag(ctx context.Context, tagID uint) (uint, error)
}
