package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"menu-api/domain/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing token")
)

// TokenTTL อายุของ access token
const TokenTTL = time.Hour

type JWTClaims struct {
	UserID     uint        `json:"user_id"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	CommerceID *uint       `json:"commerce_id,omitempty"`
	jwt.RegisteredClaims
}

// UserContext คือ identity ของ caller หลังผ่าน token verification
type UserContext struct {
	ID         uint
	Email      string
	Role       models.Role
	CommerceID *uint // null สำหรับ SUPERUSER
}

func (u *UserContext) IsSuperuser() bool {
	return u.Role == models.RoleSuperuser
}

// SignToken สร้าง JWT อายุ TokenTTL สำหรับ user
func SignToken(user *models.User, jwtSecret string) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		CommerceID: user.CommerceID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ValidateToken verify token string แล้วคืน UserContext
func ValidateToken(tokenString, jwtSecret string) (*UserContext, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &UserContext{
		ID:         claims.UserID,
		Email:      claims.Email,
		Role:       claims.Role,
		CommerceID: claims.CommerceID,
	}, nil
}

// ExtractTokenFromHeader ดึง token จาก "Bearer <token>"
func ExtractTokenFromHeader(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// GetUserFromContext ดึง UserContext ที่ middleware.Protected() ใส่ไว้ใน locals
func GetUserFromContext(c *fiber.Ctx) (*UserContext, error) {
	user := c.Locals("user")
	if user == nil {
		return nil, errors.New("user not found in context")
	}

	userCtx, ok := user.(*UserContext)
	if !ok {
		return nil, errors.New("invalid user context type")
	}

	return userCtx, nil
}
