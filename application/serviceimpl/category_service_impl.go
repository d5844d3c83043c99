package serviceimpl

import (
	"context"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/pkg/apperr"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	guard        services.AccessGuard
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, guard services.AccessGuard) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		guard:        guard,
	}
}

// resolveCommerceID หา commerce ที่ operation นี้ทำงานกับ:
// owner ใช้ commerce ตัวเองเสมอ, superuser ต้องระบุมาเอง
func resolveCommerceID(actor *utils.UserContext, requested *uint) (uint, error) {
	if actor == nil {
		return 0, apperr.Unauthenticated("Missing credentials")
	}
	if actor.IsSuperuser() {
		if requested == nil {
			return 0, apperr.Validation("commerce_id is required")
		}
		return *requested, nil
	}
	if actor.CommerceID == nil {
		return 0, apperr.Forbidden("User is not attached to a commerce")
	}
	return *actor.CommerceID, nil
}

func (s *CategoryServiceImpl) List(ctx context.Context, actor *utils.UserContext, commerceID *uint) ([]*models.Category, error) {
	cid, err := resolveCommerceID(actor, commerceID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListByCommerce(ctx, cid)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) Create(ctx context.Context, actor *utils.UserContext, req *dto.CreateCategoryRequest) (*models.Category, error) {
	cid, err := resolveCommerceID(actor, req.CommerceID)
	if err != nil {
		return nil, err
	}

	maxPos, err := s.categoryRepo.MaxPosition(ctx, cid)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	category := &models.Category{
		CommerceID: cid,
		Name:       req.Name,
		Position:   maxPos + 1,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "commerce_id", cid, "error", err)
		return nil, apperr.Internal(err)
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "commerce_id", cid)
	return category, nil
}

// authorize ดึง category แล้วเช็ค ownership — denied ตอบ NotFound
// เพื่อไม่ leak ว่า id นี้มีอยู่ใน commerce อื่น
func (s *CategoryServiceImpl) authorize(ctx context.Context, actor *utils.UserContext, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Category not found")
	}
	if err := s.guard.AuthorizeCommerce(ctx, actor, category.CommerceID); err != nil {
		return nil, apperr.NotFound("Category not found")
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, actor *utils.UserContext, id uint, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Position != nil {
		category.Position = *req.Position
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, apperr.Internal(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, actor *utils.UserContext, id uint) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCascade(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return apperr.Internal(err)
	}
	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	return nil
}

// Reorder ตรวจ ownership ทั้ง batch ก่อนเขียนอะไรทั้งนั้น
// id แปลกปลอมตัวเดียว -> Forbidden ทั้ง batch, ไม่มี position ไหนเปลี่ยน
func (s *CategoryServiceImpl) Reorder(ctx context.Context, actor *utils.UserContext, req *dto.ReorderCategoriesRequest) error {
	if actor == nil {
		return apperr.Unauthenticated("Missing credentials")
	}

	ids := make([]uint, len(req.Categories))
	for i, item := range req.Categories {
		ids[i] = item.ID
	}

	if !actor.IsSuperuser() {
		if actor.CommerceID == nil {
			return apperr.Forbidden("User is not attached to a commerce")
		}
		count, err := s.categoryRepo.CountByIDsAndCommerce(ctx, ids, *actor.CommerceID)
		if err != nil {
			return apperr.Internal(err)
		}
		if count != int64(len(ids)) {
			logger.WarnContext(ctx, "Reorder rejected - foreign category in batch",
				"commerce_id", *actor.CommerceID, "requested", len(ids), "owned", count)
			return apperr.Forbidden("One or more categories belong to another commerce")
		}
	}

	categories := make([]*models.Category, len(req.Categories))
	for i, item := range req.Categories {
		categories[i] = &models.Category{ID: item.ID, Position: item.Position}
	}
	if err := s.categoryRepo.UpdatePositions(ctx, categories); err != nil {
		logger.ErrorContext(ctx, "Failed to reorder categories", "error", err)
		return apperr.Internal(err)
	}
	return nil
}
