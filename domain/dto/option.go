package dto

import (
	"menu-api/domain/models"
)

// === Requests ===

type CreateOptionRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=150"`
	Required bool   `json:"required"`
	Multiple bool   `json:"multiple"`
	// MaxSelections มีผลเฉพาะตอน multiple=true — ไม่งั้นถูกบังคับเป็น null ตอนเขียน
	MaxSelections *int                `json:"max_selections" validate:"omitempty,gte=1"`
	Items         []OptionItemPayload `json:"items" validate:"omitempty,dive"`
}

type UpdateOptionRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=150"`
	Required      *bool   `json:"required"`
	Multiple      *bool   `json:"multiple"`
	MaxSelections *int    `json:"max_selections" validate:"omitempty,gte=1"`
	// Items คือ state ปลายทางทั้งชุด: ตัวมี id = update, ตัวไม่มี id = insert,
	// ตัวที่อยู่ใน storage แต่ไม่อยู่ใน request = delete
	Items []OptionItemPayload `json:"items" validate:"omitempty,dive"`
}

type OptionItemPayload struct {
	ID            *uint   `json:"id"`
	Name          string  `json:"name" validate:"required,min=1,max=150"`
	PriceAddition float64 `json:"price_addition"`
	Available     *bool   `json:"available"`
}

// === Responses ===

type OptionResponse struct {
	ID            uint                 `json:"id"`
	ProductID     uint                 `json:"product_id"`
	Name          string               `json:"name"`
	Required      bool                 `json:"required"`
	Multiple      bool                 `json:"multiple"`
	MaxSelections *int                 `json:"max_selections"`
	Tags          []TagResponse        `json:"tags,omitempty"`
	Items         []OptionItemResponse `json:"items"`
}

type OptionItemResponse struct {
	ID            uint          `json:"id"`
	OptionID      uint          `json:"option_id"`
	Name          string        `json:"name"`
	PriceAddition float64       `json:"price_addition"`
	Available     bool          `json:"available"`
	ImageURL      string        `json:"image_url"`
	Tags          []TagResponse `json:"tags,omitempty"`
}

// === Mappers ===

func OptionToOptionResponse(option *models.ProductOption) *OptionResponse {
	if option == nil {
		return nil
	}
	resp := &OptionResponse{
		ID:            option.ID,
		ProductID:     option.ProductID,
		Name:          option.Name,
		Required:      option.Required,
		Multiple:      option.Multiple,
		MaxSelections: option.MaxSelections,
		Items:         make([]OptionItemResponse, len(option.Items)),
	}
	if len(option.Tags) > 0 {
		resp.Tags = TagsToTagResponses(option.Tags)
	}
	for i := range option.Items {
		resp.Items[i] = *OptionItemToResponse(&option.Items[i])
	}
	return resp
}

func OptionItemToResponse(item *models.OptionItem) *OptionItemResponse {
	if item == nil {
		return nil
	}
	resp := &OptionItemResponse{
		ID:            item.ID,
		OptionID:      item.OptionID,
		Name:          item.Name,
		PriceAddition: item.PriceAddition,
		Available:     item.Available,
		ImageURL:      item.ImageURL,
	}
	if len(item.Tags) > 0 {
		resp.Tags = TagsToTagResponses(item.Tags)
	}
	return resp
}
