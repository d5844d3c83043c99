package serviceimpl

import (
	"context"

	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/pkg/apperr"
	"menu-api/pkg/utils"
)

type AccessGuardImpl struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	optionRepo   repositories.OptionRepository
	tagRepo      repositories.TagRepository
}

func NewAccessGuard(
	categoryRepo repositories.CategoryRepository,
	productRepo repositories.ProductRepository,
	optionRepo repositories.OptionRepository,
	tagRepo repositories.TagRepository,
) services.AccessGuard {
	return &AccessGuardImpl{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		optionRepo:   optionRepo,
		tagRepo:      tagRepo,
	}
}

// AuthorizeCommerce: SUPERUSER ผ่านเสมอ, OWNER ผ่านเฉพาะ commerce ตัวเอง
func (g *AccessGuardImpl) AuthorizeCommerce(ctx context.Context, actor *utils.UserContext, commerceID uint) error {
	if actor == nil {
		return apperr.Unauthenticated("Missing credentials")
	}
	if actor.IsSuperuser() {
		return nil
	}
	if actor.CommerceID == nil {
		return apperr.Forbidden("User is not attached to a commerce")
	}
	if *actor.CommerceID != commerceID {
		return apperr.Forbidden("Resource belongs to another commerce")
	}
	return nil
}

func (g *AccessGuardImpl) CommerceOfCategory(ctx context.Context, categoryID uint) (uint, error) {
	category, err := g.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return 0, apperr.NotFound("Category not found")
	}
	return category.CommerceID, nil
}

func (g *AccessGuardImpl) CommerceOfProduct(ctx context.Context, productID uint) (uint, error) {
	product, err := g.productRepo.GetByID(ctx, productID)
	if err != nil {
		return 0, apperr.NotFound("Product not found")
	}
	return product.CommerceID, nil
}

// CommerceOfOption ไล่ chain option -> product -> commerce
// chain ขาด (orphan) ก็คืน NotFound เหมือน row หาย
func (g *AccessGuardImpl) CommerceOfOption(ctx context.Context, optionID uint) (uint, error) {
	commerceID, err := g.optionRepo.OwnerCommerceID(ctx, optionID)
	if err != nil {
		return 0, apperr.NotFound("Option not found")
	}
	return commerceID, nil
}

func (g *AccessGuardImpl) CommerceOfItem(ctx context.Context, itemID uint) (uint, error) {
	commerceID, err := g.optionRepo.OwnerCommerceIDOfItem(ctx, itemID)
	if err != nil {
		return 0, apperr.NotFound("Option item not found")
	}
	return commerceID, nil
}

func (g *AccessGuardImpl) CommerceOfTag(ctx context.Context, tagID uint) (uint, error) {
	tag, err := g.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return 0, apperr.NotFound("Tag not found")
	}
	return tag.CommerceID, nil
}
