package serviceimpl

import (
	"context"
	"testing"

	"menu-api/domain/dto"
	"menu-api/pkg/apperr"
)

func newProductFixture() (*fakeCategoryRepo, *fakeProductRepo, *ProductServiceImpl) {
	categoryRepo := newFakeCategoryRepo()
	productRepo := newFakeProductRepo()
	optionRepo := newFakeOptionRepo(productRepo)
	tagRepo := newFakeTagRepo()
	guard := NewAccessGuard(categoryRepo, productRepo, optionRepo, tagRepo)
	service := NewProductService(productRepo, categoryRepo, guard, &fakeStorage{}).(*ProductServiceImpl)
	return categoryRepo, productRepo, service
}

func TestCreateProduct(t *testing.T) {
	categoryRepo, _, service := newProductFixture()
	ctx := context.Background()

	mine := categoryRepo.add(1, "Drinks", 1)
	theirs := categoryRepo.add(2, "Drinks", 1)

	t.Run("inherits commerce from category", func(t *testing.T) {
		product, err := service.Create(ctx, ownerActor(1), &dto.CreateProductRequest{
			CategoryID: mine.ID,
			Name:       "Latte",
			Price:      55,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if product.CommerceID != 1 {
			t.Errorf("commerce_id = %d, want 1 (denormalized from category)", product.CommerceID)
		}
	})

	t.Run("foreign category concealed as NotFound", func(t *testing.T) {
		_, err := service.Create(ctx, ownerActor(1), &dto.CreateProductRequest{
			CategoryID: theirs.ID,
			Name:       "Latte",
			Price:      55,
		})
		if apperr.KindOf(err) != apperr.KindNotFound {
			t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
		}
	})
}

func TestUpdateProductCategoryMove(t *testing.T) {
	categoryRepo, productRepo, service := newProductFixture()
	ctx := context.Background()
	actor := ownerActor(1)

	drinks := categoryRepo.add(1, "Drinks", 1)
	desserts := categoryRepo.add(1, "Desserts", 2)
	foreign := categoryRepo.add(2, "Foreign", 1)
	product := productRepo.add(1, drinks.ID, "Affogato")

	t.Run("move within commerce", func(t *testing.T) {
		updated, err := service.Update(ctx, actor, product.ID, &dto.UpdateProductRequest{CategoryID: &desserts.ID})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.CategoryID != desserts.ID {
			t.Errorf("category_id = %d, want %d", updated.CategoryID, desserts.ID)
		}
	})

	t.Run("move to foreign commerce rejected", func(t *testing.T) {
		_, err := service.Update(ctx, actor, product.ID, &dto.UpdateProductRequest{CategoryID: &foreign.ID})
		if apperr.KindOf(err) != apperr.KindNotFound {
			t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
		}
		if productRepo.products[product.ID].CategoryID != desserts.ID {
			t.Error("category must not change")
		}
	})
}

func TestGetProductCrossTenant(t *testing.T) {
	categoryRepo, productRepo, service := newProductFixture()
	category := categoryRepo.add(1, "Drinks", 1)
	product := productRepo.add(1, category.ID, "Latte")

	_, err := service.Get(context.Background(), ownerActor(2), product.ID)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
	}
}

func TestListProductsByCategory(t *testing.T) {
	categoryRepo, productRepo, service := newProductFixture()
	ctx := context.Background()

	drinks := categoryRepo.add(1, "Drinks", 1)
	foreign := categoryRepo.add(2, "Drinks", 1)
	productRepo.add(1, drinks.ID, "Latte")
	productRepo.add(1, drinks.ID, "Mocha")

	t.Run("own category", func(t *testing.T) {
		products, err := service.List(ctx, ownerActor(1), nil, &drinks.ID)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(products) != 2 {
			t.Errorf("products = %d, want 2", len(products))
		}
	})

	t.Run("foreign category concealed", func(t *testing.T) {
		_, err := service.List(ctx, ownerActor(1), nil, &foreign.ID)
		if apperr.KindOf(err) != apperr.KindNotFound {
			t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		unknown := foreign.ID + 100
		_, err := service.List(ctx, ownerActor(1), nil, &unknown)
		if apperr.KindOf(err) != apperr.KindNotFound {
			t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
		}
	})
}
