// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-factory-planner/internal/clock"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/store"
	"github.com/MKhiriev/go-factory-planner/internal/utils"
	"github.com/MKhiriev/go-factory-planner/models"
)

type gameService struct {
	games    store.GameRepository
	members  store.MembershipRepository
	notifier RowNotifier
	ids      IDGenerator
	clock    clock.Clock

	logger *logger.Logger
}

func NewGameService(games store.GameRepository, members store.MembershipRepository, notifier RowNotifier,
	ids IDGenerator, clk clock.Clock, logger *logger.Logger) GameService {
	return &gameService{
		games:    games,
		members:  members,
		notifier: notifier,
		ids:      ids,
		clock:    clk,
		logger:   logger,
	}
}

func (g *gameService) ListOwn(ctx context.Context, userID, authorID int64) ([]models.GameRow, error) {
	if userID != authorID {
		return nil, ErrNoGameAccess
	}

	rows, err := g.games.ListGamesByAuthor(ctx, authorID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("author_id", authorID).Msg("listing own games failed")
		return nil, fmt.Errorf("listing own games failed: %w", err)
	}
	return rows, nil
}

func (g *gameService) ListShared(ctx context.Context, userID, memberID int64) ([]string, error) {
	if userID != memberID {
		return nil, ErrNoGameAccess
	}

	ids, err := g.members.ListGameIDsByMember(ctx, memberID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", memberID).Msg("listing shared games failed")
		return nil, fmt.Errorf("listing shared games failed: %w", err)
	}
	return ids, nil
}

func (g *gameService) GetByIDs(ctx context.Context, userID int64, ids []string) ([]models.GameRow, error) {
	rows, err := g.games.ListGamesByIDs(ctx, ids)
	if err != nil {
		logger.FromContext(ctx).Err(err).Strs("ids", ids).Msg("fetching games failed")
		return nil, fmt.Errorf("fetching games failed: %w", err)
	}

	visible := make([]models.GameRow, 0, len(rows))
	for _, row := range rows {
		ok, err := g.canAccess(ctx, userID, row)
		if err != nil {
			return nil, err
		}
		if ok {
			visible = append(visible, row)
		}
	}
	return visible, nil
}

func (g *gameService) Create(ctx context.Context, userID int64, request models.CreateGameRequest) (models.GameRow, error) {
	if _, err := models.DecodeSnapshot(request.Data); err != nil {
		return models.GameRow{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	now := g.clock.Now()
	row, err := g.games.CreateGame(ctx, models.GameRow{
		ID:        g.ids.Generate(),
		AuthorID:  userID,
		Name:      request.Name,
		Data:      request.Data,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("game creation failed")
		return models.GameRow{}, fmt.Errorf("game creation failed: %w", err)
	}

	return row, nil
}

// Persist stores the payload as sent. The last writer wins, but the stored
// version never goes back: a write that does not advance it is stored one
// above the current version, and the row echoes what was stored.
func (g *gameService) Persist(ctx context.Context, userID int64, gameID string, request models.PersistRequest) (models.GameRow, error) {
	log := logger.FromContext(ctx)

	snap, err := models.DecodeSnapshot(request.Data)
	if err != nil {
		return models.GameRow{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	current, err := g.accessibleGame(ctx, userID, gameID)
	if err != nil {
		return models.GameRow{}, err
	}

	version := request.Version
	if version <= current.Version {
		version = current.Version + 1
		log.Warn().Str("game_id", gameID).Int64("stored", current.Version).Int64("requested", request.Version).
			Int64("written", version).Msg("persist does not advance the version, bumped")
	}

	current.Name = snap.Game.Name
	current.Data = request.Data
	current.Version = version
	current.UpdatedAt = g.clock.Now()

	stored, err := g.games.UpdateGame(ctx, current)
	if err != nil {
		log.Err(err).Str("game_id", gameID).Msg("game update failed")
		return models.GameRow{}, g.wrapStoreError(err, "game update failed")
	}

	g.notifier.Publish(models.RealtimeMessage{Type: models.RealtimeUpdated, ID: stored.ID, Row: &stored})

	return stored, nil
}

func (g *gameService) Delete(ctx context.Context, userID int64, gameID string) error {
	if _, err := g.ownedGame(ctx, userID, gameID); err != nil {
		return err
	}

	if err := g.games.DeleteGame(ctx, gameID); err != nil {
		logger.FromContext(ctx).Err(err).Str("game_id", gameID).Msg("game deletion failed")
		return g.wrapStoreError(err, "game deletion failed")
	}

	g.notifier.Publish(models.RealtimeMessage{Type: models.RealtimeDeleted, ID: gameID})

	return nil
}

func (g *gameService) Share(ctx context.Context, userID int64, gameID string) (string, error) {
	row, err := g.ownedGame(ctx, userID, gameID)
	if err != nil {
		return "", err
	}
	if row.ShareToken != nil {
		return *row.ShareToken, nil
	}

	row, err = g.games.SetShareToken(ctx, gameID, utils.NewShareToken())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("game_id", gameID).Msg("share token creation failed")
		return "", g.wrapStoreError(err, "share token creation failed")
	}
	if row.ShareToken == nil {
		return "", fmt.Errorf("share token of game %s was not stored", gameID)
	}

	return *row.ShareToken, nil
}

func (g *gameService) Join(ctx context.Context, userID int64, shareToken string) (models.GameRow, error) {
	row, err := g.games.FindGameByShareToken(ctx, shareToken)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("share token lookup failed")
		return models.GameRow{}, g.wrapStoreError(err, "share token lookup failed")
	}

	if row.AuthorID != userID {
		if err = g.members.AddMember(ctx, row.ID, userID); err != nil {
			logger.FromContext(ctx).Err(err).Str("game_id", row.ID).Int64("user_id", userID).Msg("adding member failed")
			return models.GameRow{}, fmt.Errorf("adding member failed: %w", err)
		}
	}

	return row, nil
}

func (g *gameService) Watch(ctx context.Context, userID int64, gameID string) (models.GameRow, error) {
	return g.accessibleGame(ctx, userID, gameID)
}

func (g *gameService) ownedGame(ctx context.Context, userID int64, gameID string) (models.GameRow, error) {
	row, err := g.games.GetGame(ctx, gameID)
	if err != nil {
		return models.GameRow{}, g.wrapStoreError(err, "game lookup failed")
	}
	if row.AuthorID != userID {
		return models.GameRow{}, ErrNotGameOwner
	}
	return row, nil
}

func (g *gameService) accessibleGame(ctx context.Context, userID int64, gameID string) (models.GameRow, error) {
	row, err := g.games.GetGame(ctx, gameID)
	if err != nil {
		return models.GameRow{}, g.wrapStoreError(err, "game lookup failed")
	}

	ok, err := g.canAccess(ctx, userID, row)
	if err != nil {
		return models.GameRow{}, err
	}
	if !ok {
		return models.GameRow{}, ErrNoGameAccess
	}
	return row, nil
}

func (g *gameService) canAccess(ctx context.Context, userID int64, row models.GameRow) (bool, error) {
	if row.AuthorID == userID {
		return true, nil
	}

	ok, err := g.members.IsMember(ctx, row.ID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("game_id", row.ID).Int64("user_id", userID).Msg("membership check failed")
		return false, fmt.Errorf("membership check failed: %w", err)
	}
	return ok, nil
}

func (g *gameService) wrapStoreError(err error, msg string) error {
	if errors.Is(err, store.ErrGameNotFound) {
		return fmt.Errorf("%w: %w", ErrGameNotFound, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
