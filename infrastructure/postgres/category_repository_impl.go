package postgres

import (
	"context"

	"gorm.io/gorm"

	"menu-api/domain/models"
	"menu-api/domain/repositories"
)

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListByCommerce เรียง (position, id) ascending — tie บน position break ด้วย id
// เพื่อให้ output นิ่งข้าม call
func (r *CategoryRepositoryImpl) ListByCommerce(ctx context.Context, commerceID uint) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).
		Where("commerce_id = ?", commerceID).
		Order("position ASC, id ASC").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// DeleteCascade ลบ category พร้อม products ใต้มันทั้งหมด (options/items/assignments ด้วย)
func (r *CategoryRepositoryImpl) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productIDs []uint
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return err
		}

		if err := deleteProductsCascade(tx, productIDs); err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Category{}).Error
	})
}

func (r *CategoryRepositoryImpl) CountByIDsAndCommerce(ctx context.Context, ids []uint, commerceID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id IN ? AND commerce_id = ?", ids, commerceID).
		Count(&count).Error
	return count, err
}

// UpdatePositions อัปเดตทุก position ใน transaction เดียว — ไม่มี partial apply
func (r *CategoryRepositoryImpl) UpdatePositions(ctx context.Context, categories []*models.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, cat := range categories {
			if err := tx.Model(&models.Category{}).Where("id = ?", cat.ID).Update("position", cat.Position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CategoryRepositoryImpl) MaxPosition(ctx context.Context, commerceID uint) (int, error) {
	var maxPos int
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("commerce_id = ?", commerceID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPos).Error
	return maxPos, err
}

// deleteProductsCascade ลบ products พร้อม options/items/tag assignments
// ใช้ร่วมกันระหว่าง category delete และ product delete
func deleteProductsCascade(tx *gorm.DB, productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}

	var optionIDs []uint
	if err := tx.Model(&models.ProductOption{}).Where("product_id IN ?", productIDs).Pluck("id", &optionIDs).Error; err != nil {
		return err
	}

	if err := deleteOptionsCascade(tx, optionIDs); err != nil {
		return err
	}

	if err := tx.Exec("DELETE FROM product_tags WHERE product_id IN ?", productIDs).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", productIDs).Delete(&models.Product{}).Error
}

// deleteOptionsCascade ลบ options พร้อม items และ assignments ของทั้งคู่
func deleteOptionsCascade(tx *gorm.DB, optionIDs []uint) error {
	if len(optionIDs) == 0 {
		return nil
	}

	var itemIDs []uint
	if err := tx.Model(&models.OptionItem{}).Where("option_id IN ?", optionIDs).Pluck("id", &itemIDs).Error; err != nil {
		return err
	}

	if len(itemIDs) > 0 {
		if err := tx.Exec("DELETE FROM item_tags WHERE item_id IN ?", itemIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", itemIDs).Delete(&models.OptionItem{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Exec("DELETE FROM option_tags WHERE option_id IN ?", optionIDs).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", optionIDs).Delete(&models.ProductOption{}).Error
}
