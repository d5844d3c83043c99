package dto

import (
	"time"

	"menu-api/domain/models"
)

// === Requests ===

type CreateOwnerRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"first_name" validate:"omitempty,max=50"`
	LastName  string `json:"last_name" validate:"omitempty,max=50"`
}

type CreateCommerceRequest struct {
	Name             string             `json:"name" validate:"required,min=1,max=100"`
	Subdomain        string             `json:"subdomain" validate:"required,min=1,max=100"`
	BusinessCategory string             `json:"business_category" validate:"required,min=1,max=100"`
	Owner            CreateOwnerRequest `json:"owner" validate:"required"`
}

type UpdateCommerceRequest struct {
	Name             *string  `json:"name" validate:"omitempty,min=1,max=100"`
	BusinessCategory *string  `json:"business_category" validate:"omitempty,min=1,max=100"`
	IsOpen           *bool    `json:"is_open"`
	AcceptsDelivery  *bool    `json:"accepts_delivery"`
	AcceptsPickup    *bool    `json:"accepts_pickup"`
	DeliveryFee      *float64 `json:"delivery_fee" validate:"omitempty,gte=0"`
	DeliveryTime     *string  `json:"delivery_time" validate:"omitempty,max=50"`
	MinimumOrder     *float64 `json:"minimum_order" validate:"omitempty,gte=0"`
	Phone            *string  `json:"phone" validate:"omitempty,max=30"`
	Whatsapp         *string  `json:"whatsapp" validate:"omitempty,max=30"`
	Instagram        *string  `json:"instagram" validate:"omitempty,max=100"`
	Facebook         *string  `json:"facebook" validate:"omitempty,max=100"`
	Address          *string  `json:"address" validate:"omitempty,max=255"`
}

// === Responses ===

type CommerceResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Subdomain        string    `json:"subdomain"`
	BusinessCategory string    `json:"business_category"`
	LogoURL          string    `json:"logo_url"`
	BannerURL        string    `json:"banner_url"`
	IsOpen           bool      `json:"is_open"`
	AcceptsDelivery  bool      `json:"accepts_delivery"`
	AcceptsPickup    bool      `json:"accepts_pickup"`
	DeliveryFee      float64   `json:"delivery_fee"`
	DeliveryTime     string    `json:"delivery_time"`
	MinimumOrder     float64   `json:"minimum_order"`
	Phone            string    `json:"phone"`
	Whatsapp         string    `json:"whatsapp"`
	Instagram        string    `json:"instagram"`
	Facebook         string    `json:"facebook"`
	Address          string    `json:"address"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateCommerceResponse struct {
	Commerce CommerceResponse `json:"commerce"`
	Owner    UserResponse     `json:"owner"`
}

// === Mappers ===

func CommerceToCommerceResponse(commerce *models.Commerce) *CommerceResponse {
	if commerce == nil {
		return nil
	}
	return &CommerceResponse{
		ID:               commerce.ID,
		Name:             commerce.Name,
		Subdomain:        commerce.Subdomain,
		BusinessCategory: commerce.BusinessCategory,
		LogoURL:          commerce.LogoURL,
		BannerURL:        commerce.BannerURL,
		IsOpen:           commerce.IsOpen,
		AcceptsDelivery:  commerce.AcceptsDelivery,
		AcceptsPickup:    commerce.AcceptsPickup,
		DeliveryFee:      commerce.DeliveryFee,
		DeliveryTime:     commerce.DeliveryTime,
		MinimumOrder:     commerce.MinimumOrder,
		Phone:            commerce.Phone,
		Whatsapp:         commerce.Whatsapp,
		Instagram:        commerce.Instagram,
		Facebook:         commerce.Facebook,
		Address:          commerce.Address,
		CreatedAt:        commerce.CreatedAt,
	}
}

func CommercesToCommerceResponses(commerces []*models.Commerce) []CommerceResponse {
	responses := make([]CommerceResponse, len(commerces))
	for i, commerce := range commerces {
		responses[i] = *CommerceToCommerceResponse(commerce)
	}
	return responses
}
