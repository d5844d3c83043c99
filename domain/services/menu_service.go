package services

import (
	"context"

	"menu-api/domain/dto"
)

type MenuService interface {
	// Compose ประกอบ menu document ของ commerce จาก subdomain:
	// categories (position, id asc) -> products -> options -> available items
	// แต่ละชั้น annotate ด้วย visible tags ชนิดตรงกัน
	// pure read — ไม่มี auth, ไม่มี side effect, fail ทั้ง document เท่านั้น
	Compose(ctx context.Context, subdomain string) (*dto.MenuResponse, error)
}
