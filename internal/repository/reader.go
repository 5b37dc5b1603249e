package repository

import (
	"context"

	"soulseer-admin/internal/model"

	"gorm.io/gorm"
)

// ReaderFilter narrows reader listings. Nil fields are ignored; Search
// matches display name, email or clerk id.
type ReaderFilter struct {
	Status   *model.ReaderStatus
	IsActive *bool
	Search   string
}

type ReaderRepository interface {
	Create(ctx context.Context, reader *model.ReaderProfile) error
	Update(ctx context.Context, reader *model.ReaderProfile) error
	FindByID(ctx context.Context, id string) (*model.ReaderProfile, error)
	FindByClerkID(ctx context.Context, clerkID string) (*model.ReaderProfile, error)
	List(ctx context.Context, filter *ReaderFilter) ([]*model.ReaderProfile, error)
	Deactivate(ctx context.Context, id string) error
}

type readerRepoImpl struct {
	db *gorm.DB
}

func NewReaderRepository(db *gorm.DB) ReaderRepository {
	return &readerRepoImpl{
		db: db,
	}
}

func (r *readerRepoImpl) Create(ctx context.Context, reader *model.ReaderProfile) error {
	return r.db.WithContext(ctx).Create(reader).Error
}

// Update writes every field in a single UPDATE so a save either applies
// fully or not at all. UpdatedAt is refreshed by gorm.
func (r *readerRepoImpl) Update(ctx context.Context, reader *model.ReaderProfile) error {
	result := r.db.WithContext(ctx).
		Model(&model.ReaderProfile{}).
		Where("id = ?", reader.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(reader)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *readerRepoImpl) FindByID(ctx context.Context, id string) (*model.ReaderProfile, error) {
	var reader model.ReaderProfile
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reader).Error

	if err != nil {
		return nil, err
	}

	return &reader, nil
}

func (r *readerRepoImpl) FindByClerkID(ctx context.Context, clerkID string) (*model.ReaderProfile, error) {
	var reader model.ReaderProfile
	err := r.db.WithContext(ctx).
		Where("clerk_id = ?", clerkID).
		First(&reader).Error

	if err != nil {
		return nil, err
	}

	return &reader, nil
}

// List returns readers newest first.
func (r *readerRepoImpl) List(ctx context.Context, filter *ReaderFilter) ([]*model.ReaderProfile, error) {
	query := r.db.WithContext(ctx).Model(&model.ReaderProfile{})

	if filter != nil {
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
		if filter.IsActive != nil {
			query = query.Where("is_active = ?", *filter.IsActive)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where(
				"display_name LIKE ? OR email LIKE ? OR clerk_id LIKE ?",
				pattern, pattern, pattern,
			)
		}
	}

	var readers []*model.ReaderProfile
	err := query.
		Order("created_at DESC").
		Find(&readers).
		Error

	if err != nil {
		return nil, err
	}

	return readers, nil
}

// Deactivate is the soft-delete path; reader rows are never hard-deleted
// by normal administration.
func (r *readerRepoImpl) Deactivate(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&model.ReaderProfile{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
