package service

import (
	"context"
	"fmt"
	"log/slog"

	"soulseer-admin/internal/client"
	"soulseer-admin/internal/model"
	"soulseer-admin/internal/repository"

	"github.com/google/uuid"
)

type ReaderService interface {
	Create(ctx context.Context, reader *model.ReaderProfile) (*model.ReaderProfile, error)
	Update(ctx context.Context, reader *model.ReaderProfile) (*model.ReaderProfile, error)
	Get(ctx context.Context, id string) (*model.ReaderProfile, error)
	List(ctx context.Context, filter *repository.ReaderFilter) ([]*model.ReaderProfile, error)
	Deactivate(ctx context.Context, id string) error
}

type readerServiceImpl struct {
	readerRepo    repository.ReaderRepository
	backendClient client.BackendClient
	logger        *slog.Logger
}

func NewReaderService(
	readerRepo repository.ReaderRepository,
	backendClient client.BackendClient,
	logger *slog.Logger,
) ReaderService {
	return &readerServiceImpl{
		readerRepo:    readerRepo,
		backendClient: backendClient,
		logger:        logger,
	}
}

// Create persists a new reader profile, then provisions the matching
// account on the backend. Provisioning is best effort: a failure is logged
// and the saved profile is returned anyway, since provisioning can be
// redone out-of-band while a blocked save cannot. The call carries no
// idempotency key, so retrying a timed-out provision by re-creating the
// profile can produce a duplicate downstream account.
func (s *readerServiceImpl) Create(ctx context.Context, reader *model.ReaderProfile) (*model.ReaderProfile, error) {
	if reader.ID == "" {
		reader.ID = uuid.NewString()
	}
	if reader.Status == "" {
		reader.Status = model.ReaderStatusOffline
	}

	if err := s.readerRepo.Create(ctx, reader); err != nil {
		return nil, fmt.Errorf("create reader profile: %w", err)
	}

	if err := s.backendClient.ProvisionReader(ctx, provisionRequest(reader)); err != nil {
		s.logger.Error("error syncing reader with backend",
			"reader_id", reader.ID,
			"clerk_id", reader.ClerkID,
			"error", err,
		)
	} else {
		s.logger.Info("reader synced with backend", "display_name", reader.DisplayName)
	}

	return reader, nil
}

// Update edits an existing profile. It never provisions; the backend
// account was created (or manually recovered) at creation time.
// Admin-readonly fields keep their stored values.
func (s *readerServiceImpl) Update(ctx context.Context, reader *model.ReaderProfile) (*model.ReaderProfile, error) {
	existing, err := s.readerRepo.FindByID(ctx, reader.ID)
	if err != nil {
		return nil, fmt.Errorf("find reader profile: %w", err)
	}

	reader.ClerkID = existing.ClerkID
	reader.TotalEarnings = existing.TotalEarnings
	reader.PendingPayout = existing.PendingPayout
	reader.AverageRating = existing.AverageRating
	reader.TotalReviews = existing.TotalReviews

	if err := s.readerRepo.Update(ctx, reader); err != nil {
		return nil, fmt.Errorf("update reader profile: %w", err)
	}

	return s.readerRepo.FindByID(ctx, reader.ID)
}

func (s *readerServiceImpl) Get(ctx context.Context, id string) (*model.ReaderProfile, error) {
	return s.readerRepo.FindByID(ctx, id)
}

func (s *readerServiceImpl) List(ctx context.Context, filter *repository.ReaderFilter) ([]*model.ReaderProfile, error) {
	return s.readerRepo.List(ctx, filter)
}

func (s *readerServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.readerRepo.Deactivate(ctx, id)
}

func provisionRequest(reader *model.ReaderProfile) *client.ProvisionReaderRequest {
	return &client.ProvisionReaderRequest{
		ClerkID:     reader.ClerkID,
		Email:       reader.Email,
		DisplayName: reader.DisplayName,
		Bio:         reader.Bio,
		Specialties: reader.Specialties,
		ChatRate:    reader.ChatRate.InexactFloat64(),
		CallRate:    reader.CallRate.InexactFloat64(),
		VideoRate:   reader.VideoRate.InexactFloat64(),
	}
}
