package services

import (
	"context"

	"menu-api/domain/dto"
	"menu-api/domain/models"
)

type UserService interface {
	// Login ตรวจ email+password แล้ว sign token อายุ 1 ชั่วโมง
	// ล้มเหลวด้วย Unauthenticated("Invalid credentials") เหมือนกันทั้ง
	// email ไม่มีและ password ผิด (กัน user enumeration — รายละเอียดอยู่ใน log)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)

	// GetProfile ดึง user พร้อม commerce (ถ้ามี)
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
}
