package serviceimpl

import (
	"context"
	"testing"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/pkg/apperr"
)

func newOptionFixture() (*fakeProductRepo, *fakeOptionRepo, *OptionServiceImpl) {
	categoryRepo := newFakeCategoryRepo()
	productRepo := newFakeProductRepo()
	optionRepo := newFakeOptionRepo(productRepo)
	tagRepo := newFakeTagRepo()
	guard := NewAccessGuard(categoryRepo, productRepo, optionRepo, tagRepo)
	service := NewOptionService(optionRepo, guard, &fakeStorage{}).(*OptionServiceImpl)
	return productRepo, optionRepo, service
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestCreateOptionMaxSelections(t *testing.T) {
	productRepo, _, service := newOptionFixture()
	product := productRepo.add(1, 1, "Latte")
	ctx := context.Background()

	tests := []struct {
		name     string
		multiple bool
		max      *int
		wantNil  bool
	}{
		{"multiple keeps max", true, intPtr(3), false},
		// single-select ห้ามมี max_selections ค้าง
		{"single forces null", false, intPtr(3), true},
		{"multiple without max", true, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			option, err := service.Create(ctx, ownerActor(1), product.ID, &dto.CreateOptionRequest{
				Name:          "Size",
				Multiple:      tt.multiple,
				MaxSelections: tt.max,
			})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if tt.wantNil && option.MaxSelections != nil {
				t.Errorf("max_selections = %d, want null", *option.MaxSelections)
			}
			if !tt.wantNil && (option.MaxSelections == nil || *option.MaxSelections != 3) {
				t.Errorf("max_selections = %v, want 3", option.MaxSelections)
			}
		})
	}
}

func TestCreateOptionItemsDefaultAvailable(t *testing.T) {
	productRepo, _, service := newOptionFixture()
	product := productRepo.add(1, 1, "Latte")

	option, err := service.Create(context.Background(), ownerActor(1), product.ID, &dto.CreateOptionRequest{
		Name: "Size",
		Items: []dto.OptionItemPayload{
			{Name: "Small"},
			{Name: "Large", Available: boolPtr(false)},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !option.Items[0].Available {
		t.Error("item without flag defaults to available")
	}
	if option.Items[1].Available {
		t.Error("explicit available=false must stick")
	}
}

func TestUpdateOptionReconcilesItems(t *testing.T) {
	productRepo, optionRepo, service := newOptionFixture()
	product := productRepo.add(1, 1, "Latte")
	ctx := context.Background()
	actor := ownerActor(1)

	option, err := service.Create(ctx, actor, product.ID, &dto.CreateOptionRequest{
		Name:     "Toppings",
		Multiple: true,
		Items: []dto.OptionItemPayload{
			{Name: "Pearls", PriceAddition: 10},
			{Name: "Jelly", PriceAddition: 5},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	keepID := option.Items[0].ID
	dropID := option.Items[1].ID

	// keep ตัวแรก (แก้ราคา), drop ตัวที่สอง, insert ตัวใหม่
	updated, err := service.Update(ctx, actor, option.ID, &dto.UpdateOptionRequest{
		Items: []dto.OptionItemPayload{
			{ID: &keepID, Name: "Pearls", PriceAddition: 12},
			{Name: "Pudding", PriceAddition: 8},
		},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if len(updated.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(updated.Items))
	}
	if _, ok := optionRepo.items[dropID]; ok {
		t.Error("dropped item must be deleted")
	}
	if optionRepo.items[keepID].PriceAddition != 12 {
		t.Errorf("kept item price = %v, want 12", optionRepo.items[keepID].PriceAddition)
	}
	var inserted *models.OptionItem
	for _, item := range optionRepo.items {
		if item.Name == "Pudding" {
			inserted = item
		}
	}
	if inserted == nil || inserted.OptionID != option.ID {
		t.Error("new item must be inserted under the option")
	}
}

func TestUpdateOptionUnknownItemID(t *testing.T) {
	productRepo, optionRepo, service := newOptionFixture()
	product := productRepo.add(1, 1, "Latte")
	ctx := context.Background()
	actor := ownerActor(1)

	option, _ := service.Create(ctx, actor, product.ID, &dto.CreateOptionRequest{
		Name:  "Size",
		Items: []dto.OptionItemPayload{{Name: "Small"}},
	})

	unknown := option.Items[0].ID + 100
	_, err := service.Update(ctx, actor, option.ID, &dto.UpdateOptionRequest{
		Items: []dto.OptionItemPayload{{ID: &unknown, Name: "Ghost"}},
	})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
	}
	// reject ก่อนแตะ storage
	if optionRepo.syncCalls != 0 {
		t.Errorf("syncCalls = %d, want 0", optionRepo.syncCalls)
	}
}

func TestUpdateOptionSingleSelectClearsMax(t *testing.T) {
	productRepo, _, service := newOptionFixture()
	product := productRepo.add(1, 1, "Latte")
	ctx := context.Background()
	actor := ownerActor(1)

	option, _ := service.Create(ctx, actor, product.ID, &dto.CreateOptionRequest{
		Name:          "Toppings",
		Multiple:      true,
		MaxSelections: intPtr(3),
	})

	updated, err := service.Update(ctx, actor, option.ID, &dto.UpdateOptionRequest{
		Multiple: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.MaxSelections != nil {
		t.Errorf("max_selections = %d, want null after multiple=false", *updated.MaxSelections)
	}
}

func TestUpdateOptionNilItemsLeavesItems(t *testing.T) {
	productRepo, optionRepo, service := newOptionFixture()
	product := productRepo.add(1, 1, "Latte")
	ctx := context.Background()
	actor := ownerActor(1)

	option, _ := service.Create(ctx, actor, product.ID, &dto.CreateOptionRequest{
		Name:  "Size",
		Items: []dto.OptionItemPayload{{Name: "Small"}, {Name: "Large"}},
	})

	updated, err := service.Update(ctx, actor, option.ID, &dto.UpdateOptionRequest{
		Name: strPtr("Cup Size"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Cup Size" {
		t.Errorf("name = %q", updated.Name)
	}
	if len(updated.Items) != 2 {
		t.Errorf("items = %d, want untouched 2", len(updated.Items))
	}
	if len(optionRepo.items) != 2 {
		t.Errorf("stored items = %d, want 2", len(optionRepo.items))
	}
}

func TestOptionCrossTenantConcealed(t *testing.T) {
	productRepo, _, service := newOptionFixture()
	product := productRepo.add(1, 1, "Latte")
	ctx := context.Background()

	option, _ := service.Create(ctx, ownerActor(1), product.ID, &dto.CreateOptionRequest{Name: "Size"})

	_, err := service.Get(ctx, ownerActor(2), option.ID)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want NotFound (not Forbidden)", apperr.KindOf(err))
	}
}

func TestDeleteOptionCascadesItems(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	productRepo := newFakeProductRepo()
	optionRepo := newFakeOptionRepo(productRepo)
	tagRepo := newFakeTagRepo()
	guard := NewAccessGuard(categoryRepo, productRepo, optionRepo, tagRepo)
	storage := &fakeStorage{}
	service := NewOptionService(optionRepo, guard, storage).(*OptionServiceImpl)

	product := productRepo.add(1, 1, "Latte")
	ctx := context.Background()
	actor := ownerActor(1)

	option, err := service.Create(ctx, actor, product.ID, &dto.CreateOptionRequest{
		Name:  "Toppings",
		Items: []dto.OptionItemPayload{{Name: "Pearls"}, {Name: "Jelly"}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	optionRepo.items[option.Items[0].ID].ImageURL = "http://media.test/commerces/1/items/pearls.jpg"

	if err := service.Delete(ctx, actor, option.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, ok := optionRepo.options[option.ID]; ok {
		t.Error("option must be removed")
	}
	if len(optionRepo.items) != 0 {
		t.Errorf("items left = %d, want 0 after cascade", len(optionRepo.items))
	}
	if len(storage.deletes) != 1 || storage.deletes[0] != "commerces/1/items/pearls.jpg" {
		t.Errorf("deleted media = %v, want the stored item image", storage.deletes)
	}
}
