package repository

import (
	"context"

	"soulseer-admin/internal/model"

	"gorm.io/gorm"
)

// ProductFilter narrows product listings. Search matches name, description
// or Stripe product id.
type ProductFilter struct {
	ProductType *model.ProductType
	IsActive    *bool
	ReaderID    *string
	Search      string
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, filter *ProductFilter) ([]*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update writes every field in a single UPDATE. The stripe_product_id
// column is only written while still empty, so an assigned id can never
// be overwritten, whatever the caller passes in.
func (r *productRepoImpl) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&model.Product{}).
			Where("id = ?", product.ID).
			Select("*").
			Omit("id", "created_at", "stripe_product_id").
			Updates(product)

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if product.StripeProductID != "" {
			err := tx.
				Model(&model.Product{}).
				Where("id = ? AND stripe_product_id = ''", product.ID).
				Update("stripe_product_id", product.StripeProductID).
				Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *productRepoImpl) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

// List returns products newest first.
func (r *productRepoImpl) List(ctx context.Context, filter *ProductFilter) ([]*model.Product, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})

	if filter != nil {
		if filter.ProductType != nil {
			query = query.Where("product_type = ?", *filter.ProductType)
		}
		if filter.IsActive != nil {
			query = query.Where("is_active = ?", *filter.IsActive)
		}
		if filter.ReaderID != nil {
			query = query.Where("reader_id = ?", *filter.ReaderID)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where(
				"name LIKE ? OR description LIKE ? OR stripe_product_id LIKE ?",
				pattern, pattern, pattern,
			)
		}
	}

	var products []*model.Product
	err := query.
		Order("created_at DESC").
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Product{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
