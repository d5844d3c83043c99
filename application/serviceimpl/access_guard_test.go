package serviceimpl

import (
	"context"
	"testing"

	"menu-api/domain/models"
	"menu-api/pkg/apperr"
	"menu-api/pkg/utils"
)

func superuserActor() *utils.UserContext {
	return &utils.UserContext{ID: 1, Email: "root@test.local", Role: models.RoleSuperuser}
}

func ownerActor(commerceID uint) *utils.UserContext {
	return &utils.UserContext{ID: 2, Email: "owner@test.local", Role: models.RoleOwner, CommerceID: &commerceID}
}

func newGuardFixture() (*fakeCategoryRepo, *fakeProductRepo, *fakeOptionRepo, *fakeTagRepo, *AccessGuardImpl) {
	categoryRepo := newFakeCategoryRepo()
	productRepo := newFakeProductRepo()
	optionRepo := newFakeOptionRepo(productRepo)
	tagRepo := newFakeTagRepo()
	guard := NewAccessGuard(categoryRepo, productRepo, optionRepo, tagRepo).(*AccessGuardImpl)
	return categoryRepo, productRepo, optionRepo, tagRepo, guard
}

func TestAuthorizeCommerce(t *testing.T) {
	_, _, _, _, guard := newGuardFixture()
	ctx := context.Background()

	tests := []struct {
		name      string
		actor     *utils.UserContext
		commerce  uint
		wantError bool
	}{
		{"superuser any commerce", superuserActor(), 42, false},
		{"owner own commerce", ownerActor(7), 7, false},
		{"owner other commerce", ownerActor(7), 8, true},
		{"owner without commerce", &utils.UserContext{ID: 3, Role: models.RoleOwner}, 7, true},
		{"nil actor", nil, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.AuthorizeCommerce(ctx, tt.actor, tt.commerce)
			if (err != nil) != tt.wantError {
				t.Errorf("AuthorizeCommerce() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestCommerceResolvers(t *testing.T) {
	categoryRepo, productRepo, optionRepo, tagRepo, guard := newGuardFixture()
	ctx := context.Background()

	category := categoryRepo.add(5, "Drinks", 1)
	product := productRepo.add(5, category.ID, "Latte")
	option := &models.ProductOption{ProductID: product.ID, Name: "Size",
		Items: []models.OptionItem{{Name: "Large", Available: true}}}
	if err := optionRepo.Create(ctx, option); err != nil {
		t.Fatalf("create option: %v", err)
	}
	tag := tagRepo.add(5, "Hot", models.TagTypeProduct)

	if cid, err := guard.CommerceOfCategory(ctx, category.ID); err != nil || cid != 5 {
		t.Errorf("CommerceOfCategory = %d, %v; want 5, nil", cid, err)
	}
	if cid, err := guard.CommerceOfProduct(ctx, product.ID); err != nil || cid != 5 {
		t.Errorf("CommerceOfProduct = %d, %v; want 5, nil", cid, err)
	}
	if cid, err := guard.CommerceOfOption(ctx, option.ID); err != nil || cid != 5 {
		t.Errorf("CommerceOfOption = %d, %v; want 5, nil", cid, err)
	}
	if cid, err := guard.CommerceOfItem(ctx, option.Items[0].ID); err != nil || cid != 5 {
		t.Errorf("CommerceOfItem = %d, %v; want 5, nil", cid, err)
	}
	if cid, err := guard.CommerceOfTag(ctx, tag.ID); err != nil || cid != 5 {
		t.Errorf("CommerceOfTag = %d, %v; want 5, nil", cid, err)
	}

	// resource ที่ไม่มีต้องได้ NotFound
	if _, err := guard.CommerceOfOption(ctx, 999); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("CommerceOfOption(999) kind = %v, want NotFound", apperr.KindOf(err))
	}
}
