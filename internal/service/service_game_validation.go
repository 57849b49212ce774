package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-factory-planner/internal/validators"
	"github.com/MKhiriev/go-factory-planner/models"
)

// GameValidationService rejects malformed requests before they reach the
// wrapped GameService.
type GameValidationService struct {
	inner     GameService
	validator validators.Validator
}

func NewGameValidationService() GameServiceWrapper {
	return &GameValidationService{
		validator: validators.NewGameValidator(),
	}
}

func (v *GameValidationService) ListOwn(ctx context.Context, userID, authorID int64) ([]models.GameRow, error) {
	return v.inner.ListOwn(ctx, userID, authorID)
}

func (v *GameValidationService) ListShared(ctx context.Context, userID, memberID int64) ([]string, error) {
	return v.inner.ListShared(ctx, userID, memberID)
}

func (v *GameValidationService) GetByIDs(ctx context.Context, userID int64, ids []string) ([]models.GameRow, error) {
	if err := v.validator.Validate(ctx, models.FetchByIDsRequest{IDs: ids}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.GetByIDs(ctx, userID, ids)
}

func (v *GameValidationService) Create(ctx context.Context, userID int64, request models.CreateGameRequest) (models.GameRow, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.GameRow{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return v.inner.Create(ctx, userID, request)
}

func (v *GameValidationService) Persist(ctx context.Context, userID int64, gameID string, request models.PersistRequest) (models.GameRow, error) {
	if gameID == "" {
		return models.GameRow{}, ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.GameRow{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return v.inner.Persist(ctx, userID, gameID, request)
}

func (v *GameValidationService) Delete(ctx context.Context, userID int64, gameID string) error {
	if gameID == "" {
		return ErrInvalidDataProvided
	}
	return v.inner.Delete(ctx, userID, gameID)
}

func (v *GameValidationService) Share(ctx context.Context, userID int64, gameID string) (string, error) {
	if gameID == "" {
		return "", ErrInvalidDataProvided
	}
	return v.inner.Share(ctx, userID, gameID)
}

func (v *GameValidationService) Join(ctx context.Context, userID int64, shareToken string) (models.GameRow, error) {
	if shareToken == "" {
		return models.GameRow{}, ErrInvalidDataProvided
	}
	return v.inner.Join(ctx, userID, shareToken)
}

func (v *GameValidationService) Watch(ctx context.Context, userID int64, gameID string) (models.GameRow, error) {
	return v.inner.Watch(ctx, userID, gameID)
}

func (v *GameValidationService) Wrap(wrapped GameService) GameService {
	v.inner = wrapped
	return v
}
