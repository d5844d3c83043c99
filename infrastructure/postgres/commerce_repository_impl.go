package postgres

import (
	"context"

	"gorm.io/gorm"

	"menu-api/domain/models"
	"menu-api/domain/repositories"
)

type CommerceRepositoryImpl struct {
	db *gorm.DB
}

func NewCommerceRepository(db *gorm.DB) repositories.CommerceRepository {
	return &CommerceRepositoryImpl{db: db}
}

// CreateWithOwner สร้าง commerce + owner ใน transaction เดียว (all-or-nothing)
func (r *CommerceRepositoryImpl) CreateWithOwner(ctx context.Context, commerce *models.Commerce, owner *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(commerce).Error; err != nil {
			return err
		}
		owner.CommerceID = &commerce.ID
		owner.Role = models.RoleOwner
		return tx.Omit("Commerce").Create(owner).Error
	})
}

func (r *CommerceRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Commerce, error) {
	var commerce models.Commerce
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&commerce).Error
	if err != nil {
		return nil, err
	}
	return &commerce, nil
}

func (r *CommerceRepositoryImpl) GetBySubdomain(ctx context.Context, subdomain string) (*models.Commerce, error) {
	var commerce models.Commerce
	err := r.db.WithContext(ctx).Where("subdomain = ?", subdomain).First(&commerce).Error
	if err != nil {
		return nil, err
	}
	return &commerce, nil
}

func (r *CommerceRepositoryImpl) List(ctx context.Context) ([]*models.Commerce, error) {
	var commerces []*models.Commerce
	err := r.db.WithContext(ctx).Order("name ASC").Find(&commerces).Error
	return commerces, err
}

func (r *CommerceRepositoryImpl) Update(ctx context.Context, commerce *models.Commerce) error {
	return r.db.WithContext(ctx).Save(commerce).Error
}

// DeleteCascade ลบทุกอย่างของ commerce ใน transaction เดียว
// ลำดับ: tag assignments -> items -> options -> products -> categories -> tags -> users -> commerce
func (r *CommerceRepositoryImpl) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productIDs []uint
		if err := tx.Model(&models.Product{}).Where("commerce_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return err
		}

		var optionIDs []uint
		if len(productIDs) > 0 {
			if err := tx.Model(&models.ProductOption{}).Where("product_id IN ?", productIDs).Pluck("id", &optionIDs).Error; err != nil {
				return err
			}
		}

		var itemIDs []uint
		if len(optionIDs) > 0 {
			if err := tx.Model(&models.OptionItem{}).Where("option_id IN ?", optionIDs).Pluck("id", &itemIDs).Error; err != nil {
				return err
			}
		}

		if len(itemIDs) > 0 {
			if err := tx.Exec("DELETE FROM item_tags WHERE item_id IN ?", itemIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", itemIDs).Delete(&models.OptionItem{}).Error; err != nil {
				return err
			}
		}

		if len(optionIDs) > 0 {
			if err := tx.Exec("DELETE FROM option_tags WHERE option_id IN ?", optionIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", optionIDs).Delete(&models.ProductOption{}).Error; err != nil {
				return err
			}
		}

		if len(productIDs) > 0 {
			if err := tx.Exec("DELETE FROM product_tags WHERE product_id IN ?", productIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", productIDs).Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("commerce_id = ?", id).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("commerce_id = ?", id).Delete(&models.Tag{}).Error; err != nil {
			return err
		}
		// ลบ principals ก่อน commerce row
		if err := tx.Where("commerce_id = ?", id).Delete(&models.User{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Commerce{}).Error
	})
}
