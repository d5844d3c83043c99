package serviceimpl

import (
	"context"
	"testing"

	"menu-api/domain/dto"
	"menu-api/pkg/apperr"
)

func newCategoryFixture() (*fakeCategoryRepo, *CategoryServiceImpl) {
	categoryRepo := newFakeCategoryRepo()
	productRepo := newFakeProductRepo()
	optionRepo := newFakeOptionRepo(productRepo)
	tagRepo := newFakeTagRepo()
	guard := NewAccessGuard(categoryRepo, productRepo, optionRepo, tagRepo)
	service := NewCategoryService(categoryRepo, guard).(*CategoryServiceImpl)
	return categoryRepo, service
}

func TestCreateCategoryAppendsPosition(t *testing.T) {
	categoryRepo, service := newCategoryFixture()
	ctx := context.Background()

	categoryRepo.add(1, "Starters", 1)
	categoryRepo.add(1, "Mains", 2)
	categoryRepo.add(2, "Other commerce", 9)

	category, err := service.Create(ctx, ownerActor(1), &dto.CreateCategoryRequest{Name: "Desserts"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	// ต่อท้าย list ของ commerce ตัวเอง ไม่ใช่ max รวมทุก commerce
	if category.Position != 3 {
		t.Errorf("position = %d, want 3", category.Position)
	}
	if category.CommerceID != 1 {
		t.Errorf("commerce_id = %d, want 1", category.CommerceID)
	}
}

func TestSuperuserCreateRequiresCommerceID(t *testing.T) {
	_, service := newCategoryFixture()

	_, err := service.Create(context.Background(), superuserActor(), &dto.CreateCategoryRequest{Name: "X"})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("kind = %v, want Validation", apperr.KindOf(err))
	}
}

func TestUpdateCategoryCrossTenant(t *testing.T) {
	categoryRepo, service := newCategoryFixture()
	category := categoryRepo.add(1, "Starters", 1)

	name := "Hacked"
	_, err := service.Update(context.Background(), ownerActor(2), category.ID, &dto.UpdateCategoryRequest{Name: &name})
	// ห้าม leak ว่า category มีอยู่
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
	}
	if categoryRepo.categories[category.ID].Name != "Starters" {
		t.Error("category must not change")
	}
}

func TestReorderCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign id rejects whole batch", func(t *testing.T) {
		categoryRepo, service := newCategoryFixture()
		mine := categoryRepo.add(1, "Mine", 1)
		foreign := categoryRepo.add(2, "Foreign", 1)

		err := service.Reorder(ctx, ownerActor(1), &dto.ReorderCategoriesRequest{
			Categories: []dto.CategoryOrderItem{
				{ID: mine.ID, Position: 5},
				{ID: foreign.ID, Position: 6},
			},
		})
		if apperr.KindOf(err) != apperr.KindForbidden {
			t.Fatalf("kind = %v, want Forbidden", apperr.KindOf(err))
		}
		// batch ตกทั้งชุด — position เดิมต้องไม่ขยับ
		if categoryRepo.positions != 0 {
			t.Error("UpdatePositions must not be called")
		}
		if categoryRepo.categories[mine.ID].Position != 1 {
			t.Error("own category position must not change")
		}
	})

	t.Run("valid batch updates all positions", func(t *testing.T) {
		categoryRepo, service := newCategoryFixture()
		a := categoryRepo.add(1, "A", 1)
		b := categoryRepo.add(1, "B", 2)

		err := service.Reorder(ctx, ownerActor(1), &dto.ReorderCategoriesRequest{
			Categories: []dto.CategoryOrderItem{
				{ID: a.ID, Position: 2},
				{ID: b.ID, Position: 1},
			},
		})
		if err != nil {
			t.Fatalf("Reorder() error = %v", err)
		}
		if categoryRepo.categories[a.ID].Position != 2 || categoryRepo.categories[b.ID].Position != 1 {
			t.Error("positions not applied")
		}
	})

	t.Run("missing id rejects batch", func(t *testing.T) {
		categoryRepo, service := newCategoryFixture()
		a := categoryRepo.add(1, "A", 1)

		err := service.Reorder(ctx, ownerActor(1), &dto.ReorderCategoriesRequest{
			Categories: []dto.CategoryOrderItem{
				{ID: a.ID, Position: 2},
				{ID: 999, Position: 1},
			},
		})
		if apperr.KindOf(err) != apperr.KindForbidden {
			t.Errorf("kind = %v, want Forbidden", apperr.KindOf(err))
		}
	})
}

func TestListCategoriesOrdered(t *testing.T) {
	categoryRepo, service := newCategoryFixture()
	categoryRepo.add(1, "Second", 2)
	categoryRepo.add(1, "First", 1)
	// position ซ้ำ — id ต่ำกว่ามาก่อน
	categoryRepo.add(1, "TieHigherID", 2)

	categories, err := service.List(context.Background(), ownerActor(1), nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	got := []string{}
	for _, c := range categories {
		got = append(got, c.Name)
	}
	want := []string{"First", "Second", "TieHigherID"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
