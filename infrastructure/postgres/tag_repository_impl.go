package postgres

import (
	"context"

	"gorm.io/gorm"

	"menu-api/domain/models"
	"menu-api/domain/repositories"
)

type TagRepositoryImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) repositories.TagRepository {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *TagRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepositoryImpl) ListByCommerce(ctx context.Context, commerceID uint) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.WithContext(ctx).
		Where("commerce_id = ?", commerceID).
		Order("priority DESC, name ASC").
		Find(&tags).Error
	return tags, err
}

func (r *TagRepositoryImpl) Update(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

// Delete ลบ tag พร้อม assignments ทุก join table ใน tx เดียว
func (r *TagRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM option_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM item_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Tag{}).Error
	})
}

// Assign ด้วย ON CONFLICT DO NOTHING — แปะซ้ำเป็น no-op ไม่สร้าง row ซ้ำ

func (r *TagRepositoryImpl) AssignToProduct(ctx context.Context, tagID, productID uint) error {
	return r.db.WithContext(ctx).
		Exec("INSERT INTO product_tags (product_id, tag_id) VALUES (?, ?) ON CONFLICT DO NOTHING", productID, tagID).Error
}

func (r *TagRepositoryImpl) AssignToOption(ctx context.Context, tagID, optionID uint) error {
	return r.db.WithContext(ctx).
		Exec("INSERT INTO option_tags (option_id, tag_id) VALUES (?, ?) ON CONFLICT DO NOTHING", optionID, tagID).Error
}

func (r *TagRepositoryImpl) AssignToItem(ctx context.Context, tagID, itemID uint) error {
	return r.db.WithContext(ctx).
		Exec("INSERT INTO item_tags (item_id, tag_id) VALUES (?, ?) ON CONFLICT DO NOTHING", itemID, tagID).Error
}

func (r *TagRepositoryImpl) UnassignFromProduct(ctx context.Context, tagID, productID uint) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM product_tags WHERE product_id = ? AND tag_id = ?", productID, tagID).Error
}

func (r *TagRepositoryImpl) UnassignFromOption(ctx context.Context, tagID, optionID uint) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM option_tags WHERE option_id = ? AND tag_id = ?", optionID, tagID).Error
}

func (r *TagRepositoryImpl) UnassignFromItem(ctx context.Context, tagID, itemID uint) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM item_tags WHERE item_id = ? AND tag_id = ?", itemID, tagID).Error
}
