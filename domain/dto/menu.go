package dto

import (
	"menu-api/domain/models"
)

// MenuResponse คือ nested read-only document ของ menu ทั้ง commerce
// composition เดียวจบ — ไม่มี partial result
type MenuResponse struct {
	Commerce   CommerceResponse `json:"commerce"`
	Categories []MenuCategory   `json:"categories"`
}

type MenuCategory struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	// Products เป็น array เสมอ — category ว่างให้ [] ไม่ใช่ null
	Products []MenuProduct `json:"products"`
}

type MenuProduct struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	ImageURL    string        `json:"image_url"`
	Tags        []TagResponse `json:"tags"`
	Options     []MenuOption  `json:"options"`
}

type MenuOption struct {
	ID            uint          `json:"id"`
	Name          string        `json:"name"`
	Required      bool          `json:"required"`
	Multiple      bool          `json:"multiple"`
	MaxSelections *int          `json:"max_selections"`
	Tags          []TagResponse `json:"tags"`
	Items         []MenuItem    `json:"items"`
}

type MenuItem struct {
	ID            uint          `json:"id"`
	Name          string        `json:"name"`
	PriceAddition float64       `json:"price_addition"`
	ImageURL      string        `json:"image_url"`
	Tags          []TagResponse `json:"tags"`
}

// === Mappers ===

func ProductToMenuProduct(product *models.Product) MenuProduct {
	mp := MenuProduct{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Tags:        TagsToTagResponses(product.Tags),
		Options:     make([]MenuOption, len(product.Options)),
	}
	if mp.Tags == nil {
		mp.Tags = []TagResponse{}
	}
	for i := range product.Options {
		mp.Options[i] = OptionToMenuOption(&product.Options[i])
	}
	return mp
}

func OptionToMenuOption(option *models.ProductOption) MenuOption {
	mo := MenuOption{
		ID:            option.ID,
		Name:          option.Name,
		Required:      option.Required,
		Multiple:      option.Multiple,
		MaxSelections: option.MaxSelections,
		Tags:          TagsToTagResponses(option.Tags),
		Items:         make([]MenuItem, len(option.Items)),
	}
	if mo.Tags == nil {
		mo.Tags = []TagResponse{}
	}
	for i := range option.Items {
		item := &option.Items[i]
		mi := MenuItem{
			ID:            item.ID,
			Name:          item.Name,
			PriceAddition: item.PriceAddition,
			ImageURL:      item.ImageURL,
			Tags:          TagsToTagResponses(item.Tags),
		}
		if mi.Tags == nil {
			mi.Tags = []TagResponse{}
		}
		mo.Items[i] = mi
	}
	return mo
}
