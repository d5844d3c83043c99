package serviceimpl

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/domain/ports"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/pkg/apperr"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type ProductServiceImpl struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	guard        services.AccessGuard
	storage      ports.MediaStoragePort
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	guard services.AccessGuard,
	storage ports.MediaStoragePort,
) services.ProductService {
	return &ProductServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		guard:        guard,
		storage:      storage,
	}
}

func (s *ProductServiceImpl) List(ctx context.Context, actor *utils.UserContext, commerceID *uint, categoryID *uint) ([]*models.Product, error) {
	if categoryID != nil {
		commerceID, err := s.guard.CommerceOfCategory(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		if err := s.guard.AuthorizeCommerce(ctx, actor, commerceID); err != nil {
			return nil, apperr.NotFound("Category not found")
		}
		products, err := s.productRepo.ListByCategory(ctx, *categoryID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return products, nil
	}

	cid, err := resolveCommerceID(actor, commerceID)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListByCommerce(ctx, cid)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return products, nil
}

func (s *ProductServiceImpl) Get(ctx context.Context, actor *utils.UserContext, id uint) (*models.Product, error) {
	return s.authorize(ctx, actor, id)
}

func (s *ProductServiceImpl) authorize(ctx context.Context, actor *utils.UserContext, id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Product not found")
	}
	if err := s.guard.AuthorizeCommerce(ctx, actor, product.CommerceID); err != nil {
		return nil, apperr.NotFound("Product not found")
	}
	return product, nil
}

// Create ผูก product กับ category — category ต้องอยู่ใน commerce ที่ caller แตะได้
// commerce_id ของ product ถูก denormalize มาจาก category เสมอ
func (s *ProductServiceImpl) Create(ctx context.Context, actor *utils.UserContext, req *dto.CreateProductRequest) (*models.Product, error) {
	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, apperr.NotFound("Category not found")
	}
	if err := s.guard.AuthorizeCommerce(ctx, actor, category.CommerceID); err != nil {
		return nil, apperr.NotFound("Category not found")
	}

	product := &models.Product{
		CommerceID:  category.CommerceID,
		CategoryID:  category.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to create product", "category_id", category.ID, "error", err)
		return nil, apperr.Internal(err)
	}

	logger.InfoContext(ctx, "Product created", "product_id", product.ID, "commerce_id", product.CommerceID)
	return product, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, actor *utils.UserContext, id uint, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		// ย้าย category ได้เฉพาะภายใน commerce เดียวกัน
		category, err := s.categoryRepo.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, apperr.NotFound("Category not found")
		}
		if category.CommerceID != product.CommerceID {
			return nil, apperr.NotFound("Category not found")
		}
		product.CategoryID = category.ID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to update product", "product_id", id, "error", err)
		return nil, apperr.Internal(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, actor *utils.UserContext, id uint) error {
	product, err := s.authorize(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.productRepo.DeleteCascade(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete product", "product_id", id, "error", err)
		return apperr.Internal(err)
	}

	if product.ImageURL != "" {
		if path := s.storage.PathFromURL(product.ImageURL); path != "" {
			if err := s.storage.DeleteFile(path); err != nil {
				logger.WarnContext(ctx, "Failed to delete product image", "path", path, "error", err)
			}
		}
	}

	logger.InfoContext(ctx, "Product deleted", "product_id", id)
	return nil
}

func (s *ProductServiceImpl) UploadImage(ctx context.Context, actor *utils.UserContext, id uint, file io.Reader, filename, contentType string) (*models.Product, error) {
	product, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("commerces/%d/products/%d-%s%s", product.CommerceID, product.ID, utils.GenerateMediaName(), filepath.Ext(filename))
	url, err := s.storage.UploadFile(file, path, contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload product image", "product_id", id, "error", err)
		return nil, apperr.Internal(err)
	}

	oldURL := product.ImageURL
	product.ImageURL = url
	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to save product image URL", "product_id", id, "error", err)
		return nil, apperr.Internal(err)
	}

	if oldURL != "" {
		if oldPath := s.storage.PathFromURL(oldURL); oldPath != "" {
			if err := s.storage.DeleteFile(oldPath); err != nil {
				logger.WarnContext(ctx, "Failed to delete old product image", "path", oldPath, "error", err)
			}
		}
	}
	return product, nil
}
