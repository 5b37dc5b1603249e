package repository

import (
	"context"

	"soulseer-admin/internal/model"

	"gorm.io/gorm"
)

type GiftFilter struct {
	IsActive *bool
	Search   string
}

type GiftRepository interface {
	Create(ctx context.Context, gift *model.VirtualGift) error
	Update(ctx context.Context, gift *model.VirtualGift) error
	FindByID(ctx context.Context, id string) (*model.VirtualGift, error)
	List(ctx context.Context, filter *GiftFilter) ([]*model.VirtualGift, error)
	Delete(ctx context.Context, id string) error
}

type giftRepoImpl struct {
	db *gorm.DB
}

func NewGiftRepository(db *gorm.DB) GiftRepository {
	return &giftRepoImpl{
		db: db,
	}
}

func (r *giftRepoImpl) Create(ctx context.Context, gift *model.VirtualGift) error {
	return r.db.WithContext(ctx).Create(gift).Error
}

func (r *giftRepoImpl) Update(ctx context.Context, gift *model.VirtualGift) error {
	result := r.db.WithContext(ctx).
		Model(&model.VirtualGift{}).
		Where("id = ?", gift.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(gift)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *giftRepoImpl) FindByID(ctx context.Context, id string) (*model.VirtualGift, error) {
	var gift model.VirtualGift
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&gift).Error

	if err != nil {
		return nil, err
	}

	return &gift, nil
}

// List returns gifts cheapest first, the order the stream overlay shows them.
func (r *giftRepoImpl) List(ctx context.Context, filter *GiftFilter) ([]*model.VirtualGift, error) {
	query := r.db.WithContext(ctx).Model(&model.VirtualGift{})

	if filter != nil {
		if filter.IsActive != nil {
			query = query.Where("is_active = ?", *filter.IsActive)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
		}
	}

	var gifts []*model.VirtualGift
	err := query.
		Order("price ASC").
		Find(&gifts).
		Error

	if err != nil {
		return nil, err
	}

	return gifts, nil
}

func (r *giftRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VirtualGift{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
