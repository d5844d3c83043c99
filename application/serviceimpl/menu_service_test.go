package serviceimpl

import (
	"context"
	"testing"

	"menu-api/domain/models"
	"menu-api/pkg/apperr"
)

func newMenuFixture() (*fakeCommerceRepo, *fakeCategoryRepo, *fakeProductRepo, *MenuServiceImpl) {
	userRepo := newFakeUserRepo()
	commerceRepo := newFakeCommerceRepo(userRepo)
	categoryRepo := newFakeCategoryRepo()
	productRepo := newFakeProductRepo()
	service := NewMenuService(commerceRepo, categoryRepo, productRepo).(*MenuServiceImpl)
	return commerceRepo, categoryRepo, productRepo, service
}

func TestComposeMenu(t *testing.T) {
	commerceRepo, categoryRepo, productRepo, service := newMenuFixture()
	ctx := context.Background()

	commerce := &models.Commerce{Name: "Pizza Place", Subdomain: "pizza-place"}
	owner := &models.User{Email: "o@test.local"}
	if err := commerceRepo.CreateWithOwner(ctx, commerce, owner); err != nil {
		t.Fatal(err)
	}

	mains := categoryRepo.add(commerce.ID, "Mains", 1)
	empty := categoryRepo.add(commerce.ID, "Empty", 2)
	productRepo.add(commerce.ID, mains.ID, "Pepperoni")
	productRepo.add(commerce.ID, mains.ID, "Margherita")

	menu, err := service.Compose(ctx, "pizza-place")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if menu.Commerce.Subdomain != "pizza-place" {
		t.Errorf("commerce subdomain = %q", menu.Commerce.Subdomain)
	}
	if len(menu.Categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(menu.Categories))
	}
	if menu.Categories[0].ID != mains.ID {
		t.Error("categories must come in position order")
	}

	products := menu.Categories[0].Products
	if len(products) != 2 {
		t.Fatalf("products = %d, want 2", len(products))
	}
	if products[0].Name != "Margherita" || products[1].Name != "Pepperoni" {
		t.Errorf("products not name-ordered: %q, %q", products[0].Name, products[1].Name)
	}

	// category ว่างให้ [] ไม่ใช่ null
	for _, mc := range menu.Categories {
		if mc.ID == empty.ID && mc.Products == nil {
			t.Error("empty category must serialize products as []")
		}
	}
}

func TestComposeMenuUnknownSubdomain(t *testing.T) {
	_, _, _, service := newMenuFixture()

	_, err := service.Compose(context.Background(), "nope")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
	}
}
