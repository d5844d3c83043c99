package serviceimpl

import (
	"context"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/pkg/apperr"
	"menu-api/pkg/logger"
)

type MenuServiceImpl struct {
	commerceRepo repositories.CommerceRepository
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
}

func NewMenuService(
	commerceRepo repositories.CommerceRepository,
	categoryRepo repositories.CategoryRepository,
	productRepo repositories.ProductRepository,
) services.MenuService {
	return &MenuServiceImpl{
		commerceRepo: commerceRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Compose ประกอบ menu document ทั้ง commerce จาก subdomain เดียว
// pure read: commerce -> categories (position, id) -> products (name)
// -> options -> items ที่ available, ทุกชั้นแนบ visible tags
func (s *MenuServiceImpl) Compose(ctx context.Context, subdomain string) (*dto.MenuResponse, error) {
	commerce, err := s.commerceRepo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, apperr.NotFound("Commerce not found")
	}

	categories, err := s.categoryRepo.ListByCommerce(ctx, commerce.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load categories for menu", "commerce_id", commerce.ID, "error", err)
		return nil, apperr.Internal(err)
	}

	products, err := s.productRepo.ListForMenu(ctx, commerce.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load products for menu", "commerce_id", commerce.ID, "error", err)
		return nil, apperr.Internal(err)
	}

	byCategory := make(map[uint][]*models.Product, len(categories))
	for _, product := range products {
		byCategory[product.CategoryID] = append(byCategory[product.CategoryID], product)
	}

	menu := &dto.MenuResponse{
		Commerce:   *dto.CommerceToCommerceResponse(commerce),
		Categories: make([]dto.MenuCategory, len(categories)),
	}
	for i, category := range categories {
		mc := dto.MenuCategory{
			ID:       category.ID,
			Name:     category.Name,
			Position: category.Position,
			// category ว่างต้องได้ [] ไม่ใช่ null
			Products: []dto.MenuProduct{},
		}
		for _, product := range byCategory[category.ID] {
			mc.Products = append(mc.Products, dto.ProductToMenuProduct(product))
		}
		menu.Categories[i] = mc
	}

	return menu, nil
}
