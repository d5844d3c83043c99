package handlers

import (
	"menu-api/domain/services"
)

// Services รวม dependencies ทั้งหมดที่ handlers ใช้
type Services struct {
	UserService     services.UserService
	CommerceService services.CommerceService
	CategoryService services.CategoryService
	ProductService  services.ProductService
	OptionService   services.OptionService
	TagService      services.TagService
	MenuService     services.MenuService
	MaxUploadSize   int64 // bytes
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler     *AuthHandler
	CommerceHandler *CommerceHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	OptionHandler   *OptionHandler
	TagHandler      *TagHandler
	MenuHandler     *MenuHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:     NewAuthHandler(services.UserService),
		CommerceHandler: NewCommerceHandler(services.CommerceService, services.MaxUploadSize),
		CategoryHandler: NewCategoryHandler(services.CategoryService),
		ProductHandler:  NewProductHandler(services.ProductService, services.MaxUploadSize),
		OptionHandler:   NewOptionHandler(services.OptionService, services.MaxUploadSize),
		TagHandler:      NewTagHandler(services.TagService),
		MenuHandler:     NewMenuHandler(services.MenuService),
	}
}
