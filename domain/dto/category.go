package dto

import (
	"menu-api/domain/models"
)

// === Requests ===

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	// CommerceID ใช้เฉพาะ SUPERUSER (owner ใช้ commerce ของตัวเองเสมอ)
	CommerceID *uint `json:"commerce_id"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Position *int    `json:"position"`
}

type ReorderCategoriesRequest struct {
	Categories []CategoryOrderItem `json:"categories" validate:"required,min=1,dive"`
}

type CategoryOrderItem struct {
	ID       uint `json:"id" validate:"required"`
	Position int  `json:"position"`
}

// === Responses ===

type CategoryResponse struct {
	ID         uint   `json:"id"`
	CommerceID uint   `json:"commerce_id"`
	Name       string `json:"name"`
	Position   int    `json:"position"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// === Mappers ===

func CategoryToCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:         category.ID,
		CommerceID: category.CommerceID,
		Name:       category.Name,
		Position:   category.Position,
	}
}

func CategoriesToCategoryResponses(categories []*models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryToCategoryResponse(category)
	}
	return responses
}
