package serviceimpl

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/pkg/apperr"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Login คืน error เดียวกันทั้ง email ไม่มีและ password ผิด
// (กัน user enumeration — เหตุผลจริงอยู่ใน server log เท่านั้น)
func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - email not found", "email", req.Email)
		return nil, apperr.Unauthenticated("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID, "email", req.Email)
		return nil, apperr.Unauthenticated("Invalid credentials")
	}

	token, err := utils.SignToken(user, s.jwtSecret)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign token", "user_id", user.ID, "error", err)
		return nil, apperr.Internal(err)
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "role", user.Role)

	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserToUserResponse(user),
	}, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "User not found", "user_id", userID)
		return nil, apperr.NotFound("User not found")
	}
	return user, nil
}

// HashPassword helper สำหรับ commerce creation (owner password)
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
