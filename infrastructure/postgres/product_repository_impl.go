package postgres

import (
	"context"

	"gorm.io/gorm"

	"menu-api/domain/models"
	"menu-api/domain/repositories"
)

type ProductRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit("Options", "Tags").Create(product).Error
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Options", orderByID("product_options")).
		Preload("Options.Items", orderByID("option_items")).
		Preload("Tags").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) ListByCategory(ctx context.Context, categoryID uint) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) ListByCommerce(ctx context.Context, commerceID uint) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Where("commerce_id = ?", commerceID).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

// ListForMenu ดึงทั้ง graph ของ commerce สำหรับ menu composition:
// products (name asc) + visible tags ทุกชั้น + options + เฉพาะ items ที่ available
func (r *ProductRepositoryImpl) ListForMenu(ctx context.Context, commerceID uint) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Where("commerce_id = ?", commerceID).
		Order("name ASC").
		Preload("Tags", visibleTagOrder).
		Preload("Options", orderByID("product_options")).
		Preload("Options.Tags", visibleTagOrder).
		Preload("Options.Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("available = ?", true).Order("option_items.id ASC")
		}).
		Preload("Options.Items.Tags", visibleTagOrder).
		Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit("Options", "Tags").Save(product).Error
}

func (r *ProductRepositoryImpl) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteProductsCascade(tx, []uint{id})
	})
}

// visibleTagOrder: เฉพาะ tag ที่ visible, เรียง priority มากก่อน แล้ว name
func visibleTagOrder(db *gorm.DB) *gorm.DB {
	return db.Where("tags.visible = ?", true).Order("tags.priority DESC, tags.name ASC")
}

func orderByID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id ASC")
	}
}
