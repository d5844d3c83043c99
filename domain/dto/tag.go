package dto

import (
	"menu-api/domain/models"
)

// === Requests ===

type CreateTagRequest struct {
	Name             string         `json:"name" validate:"required,min=1,max=100"`
	Color            string         `json:"color" validate:"omitempty,max=20"`
	TextColor        string         `json:"text_color" validate:"omitempty,max=20"`
	Type             models.TagType `json:"type" validate:"required,oneof=product option item"`
	Visible          *bool          `json:"visible"`
	Priority         int            `json:"priority"`
	Discount         *float64       `json:"discount" validate:"omitempty,gte=0"`
	DisableSelection bool           `json:"disable_selection"`
	IsRecommended    bool           `json:"is_recommended"`
	// CommerceID ใช้เฉพาะ SUPERUSER
	CommerceID *uint `json:"commerce_id"`
}

type UpdateTagRequest struct {
	Name             *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Color            *string  `json:"color" validate:"omitempty,max=20"`
	TextColor        *string  `json:"text_color" validate:"omitempty,max=20"`
	Visible          *bool    `json:"visible"`
	Priority         *int     `json:"priority"`
	Discount         *float64 `json:"discount" validate:"omitempty,gte=0"`
	DisableSelection *bool    `json:"disable_selection"`
	IsRecommended    *bool    `json:"is_recommended"`
}

type AssignTagRequest struct {
	TargetID uint `json:"target_id" validate:"required"`
}

// === Responses ===

type TagResponse struct {
	ID               uint           `json:"id"`
	CommerceID       uint           `json:"commerce_id"`
	Name             string         `json:"name"`
	Color            string         `json:"color"`
	TextColor        string         `json:"text_color"`
	Type             models.TagType `json:"type"`
	Visible          bool           `json:"visible"`
	Priority         int            `json:"priority"`
	Discount         *float64       `json:"discount"`
	DisableSelection bool           `json:"disable_selection"`
	IsRecommended    bool           `json:"is_recommended"`
}

type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

// === Mappers ===

func TagToTagResponse(tag *models.Tag) *TagResponse {
	if tag == nil {
		return nil
	}
	return &TagResponse{
		ID:               tag.ID,
		CommerceID:       tag.CommerceID,
		Name:             tag.Name,
		Color:            tag.Color,
		TextColor:        tag.TextColor,
		Type:             tag.Type,
		Visible:          tag.Visible,
		Priority:         tag.Priority,
		Discount:         tag.Discount,
		DisableSelection: tag.DisableSelection,
		IsRecommended:    tag.IsRecommended,
	}
}

func TagsToTagResponses(tags []models.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i := range tags {
		responses[i] = *TagToTagResponse(&tags[i])
	}
	return responses
}

func TagPointersToTagResponses(tags []*models.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = *TagToTagResponse(tag)
	}
	return responses
}
