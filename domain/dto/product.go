package dto

import (
	"time"

	"menu-api/domain/models"
)

// === Requests ===

type CreateProductRequest struct {
	CategoryID  uint    `json:"category_id" validate:"required"`
	Name        string  `json:"name" validate:"required,min=1,max=150"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type UpdateProductRequest struct {
	CategoryID  *uint    `json:"category_id"`
	Name        *string  `json:"name" validate:"omitempty,min=1,max=150"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

// === Responses ===

type ProductResponse struct {
	ID          uint             `json:"id"`
	CommerceID  uint             `json:"commerce_id"`
	CategoryID  uint             `json:"category_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	ImageURL    string           `json:"image_url"`
	Tags        []TagResponse    `json:"tags,omitempty"`
	Options     []OptionResponse `json:"options,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// === Mappers ===

func ProductToProductResponse(product *models.Product) *ProductResponse {
	if product == nil {
		return nil
	}
	resp := &ProductResponse{
		ID:          product.ID,
		CommerceID:  product.CommerceID,
		CategoryID:  product.CategoryID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
	if len(product.Tags) > 0 {
		resp.Tags = TagsToTagResponses(product.Tags)
	}
	if len(product.Options) > 0 {
		resp.Options = make([]OptionResponse, len(product.Options))
		for i := range product.Options {
			resp.Options[i] = *OptionToOptionResponse(&product.Options[i])
		}
	}
	return resp
}

func ProductsToProductResponses(products []*models.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *ProductToProductResponse(product)
	}
	return responses
}
