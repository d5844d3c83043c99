package dto

import (
	"menu-api/domain/models"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=1"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID         uint        `json:"id"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	CommerceID *uint       `json:"commerce_id"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
}

type MeResponse struct {
	User     UserResponse      `json:"user"`
	Commerce *CommerceResponse `json:"commerce,omitempty"`
}

func UserToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Role:       user.Role,
		CommerceID: user.CommerceID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
	}
}
