package postgres

import (
	"context"

	"gorm.io/gorm"

	"menu-api/domain/models"
	"menu-api/domain/repositories"
)

type OptionRepositoryImpl struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) repositories.OptionRepository {
	return &OptionRepositoryImpl{db: db}
}

// Create สร้าง option พร้อม items ที่แนบมาใน insert เดียว (GORM จัดการ association)
func (r *OptionRepositoryImpl) Create(ctx context.Context, option *models.ProductOption) error {
	return r.db.WithContext(ctx).Omit("Tags").Create(option).Error
}

func (r *OptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.ProductOption, error) {
	var option models.ProductOption
	err := r.db.WithContext(ctx).
		Preload("Items", orderByID("option_items")).
		Where("id = ?", id).
		First(&option).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *OptionRepositoryImpl) GetItemByID(ctx context.Context, itemID uint) (*models.OptionItem, error) {
	var item models.OptionItem
	err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SyncItems ทำ reconciliation ทั้งชุดใน transaction เดียว:
// อัปเดต fields ของ option, update items เดิม, ลบตัวที่หาย (พร้อม item_tags), insert ตัวใหม่
func (r *OptionRepositoryImpl) SyncItems(ctx context.Context, option *models.ProductOption, updates []*models.OptionItem, deleteIDs []uint, inserts []*models.OptionItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// map updates เพื่อบังคับเขียน max_selections แม้เป็น null
		if err := tx.Model(&models.ProductOption{}).Where("id = ?", option.ID).Updates(map[string]interface{}{
			"name":           option.Name,
			"required":       option.Required,
			"multiple":       option.Multiple,
			"max_selections": option.MaxSelections,
		}).Error; err != nil {
			return err
		}

		for _, item := range updates {
			if err := tx.Model(&models.OptionItem{}).
				Where("id = ? AND option_id = ?", item.ID, option.ID).
				Updates(map[string]interface{}{
					"name":           item.Name,
					"price_addition": item.PriceAddition,
					"available":      item.Available,
				}).Error; err != nil {
				return err
			}
		}

		if len(deleteIDs) > 0 {
			if err := tx.Exec("DELETE FROM item_tags WHERE item_id IN ?", deleteIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ? AND option_id = ?", deleteIDs, option.ID).Delete(&models.OptionItem{}).Error; err != nil {
				return err
			}
		}

		for _, item := range inserts {
			item.OptionID = option.ID
			if err := tx.Omit("Tags").Create(item).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *OptionRepositoryImpl) UpdateItem(ctx context.Context, item *models.OptionItem) error {
	return r.db.WithContext(ctx).Omit("Tags").Save(item).Error
}

func (r *OptionRepositoryImpl) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteOptionsCascade(tx, []uint{id})
	})
}

// OwnerCommerceID ไล่ chain option -> product -> commerce ใน query เดียว
// ไม่เจอ row (orphan ก็ตาม) คืน gorm.ErrRecordNotFound
func (r *OptionRepositoryImpl) OwnerCommerceID(ctx context.Context, optionID uint) (uint, error) {
	var row struct{ CommerceID uint }
	err := r.db.WithContext(ctx).
		Table("product_options").
		Select("products.commerce_id AS commerce_id").
		Joins("JOIN products ON products.id = product_options.product_id").
		Where("product_options.id = ?", optionID).
		Take(&row).Error
	if err != nil {
		return 0, err
	}
	return row.CommerceID, nil
}

// OwnerCommerceIDOfItem ไล่ chain item -> option -> product -> commerce
func (r *OptionRepositoryImpl) OwnerCommerceIDOfItem(ctx context.Context, itemID uint) (uint, error) {
	var row struct{ CommerceID uint }
	err := r.db.WithContext(ctx).
		Table("option_items").
		Select("products.commerce_id AS commerce_id").
		Joins("JOIN product_options ON product_options.id = option_items.option_id").
		Joins("JOIN products ON products.id = product_options.product_id").
		Where("option_items.id = ?", itemID).
		Take(&row).Error
	if err != nil {
		return 0, err
	}
	return row.CommerceID, nil
}
