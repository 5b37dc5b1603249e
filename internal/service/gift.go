package service

import (
	"context"

	"soulseer-admin/internal/model"
	"soulseer-admin/internal/repository"

	"github.com/google/uuid"
)

// GiftService is plain CRUD; gifts have no external side effects.
type GiftService interface {
	Create(ctx context.Context, gift *model.VirtualGift) (*model.VirtualGift, error)
	Update(ctx context.Context, gift *model.VirtualGift) (*model.VirtualGift, error)
	Get(ctx context.Context, id string) (*model.VirtualGift, error)
	List(ctx context.Context, filter *repository.GiftFilter) ([]*model.VirtualGift, error)
	Delete(ctx context.Context, id string) error
}

type giftServiceImpl struct {
	giftRepo repository.GiftRepository
}

func NewGiftService(giftRepo repository.GiftRepository) GiftService {
	return &giftServiceImpl{
		giftRepo: giftRepo,
	}
}

func (s *giftServiceImpl) Create(ctx context.Context, gift *model.VirtualGift) (*model.VirtualGift, error) {
	if gift.ID == "" {
		gift.ID = uuid.NewString()
	}

	if err := s.giftRepo.Create(ctx, gift); err != nil {
		return nil, err
	}

	return gift, nil
}

func (s *giftServiceImpl) Update(ctx context.Context, gift *model.VirtualGift) (*model.VirtualGift, error) {
	if err := s.giftRepo.Update(ctx, gift); err != nil {
		return nil, err
	}

	return s.giftRepo.FindByID(ctx, gift.ID)
}

func (s *giftServiceImpl) Get(ctx context.Context, id string) (*model.VirtualGift, error) {
	return s.giftRepo.FindByID(ctx, id)
}

func (s *giftServiceImpl) List(ctx context.Context, filter *repository.GiftFilter) ([]*model.VirtualGift, error) {
	return s.giftRepo.List(ctx, filter)
}

func (s *giftServiceImpl) Delete(ctx context.Context, id string) error {
	return s.giftRepo.Delete(ctx, id)
}
