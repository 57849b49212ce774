// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-factory-planner/internal/adapter"
	"github.com/MKhiriev/go-factory-planner/internal/clock"
	"github.com/MKhiriev/go-factory-planner/internal/eventloop"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/state"
	"github.com/MKhiriev/go-factory-planner/models"
)

// IDGenerator produces local identifiers.
type IDGenerator interface {
	Generate() string
}

type clientGameService struct {
	authority adapter.RemoteAuthority
	store     *state.Store
	loop      *eventloop.Loop
	sync      *clientSyncService
	clock     clock.Clock
	ids       IDGenerator
	logger    *logger.Logger
}

func newClientGameService(authority adapter.RemoteAuthority, store *state.Store, loop *eventloop.Loop,
	sync *clientSyncService, clk clock.Clock, ids IDGenerator, log *logger.Logger) *clientGameService {
	return &clientGameService{
		authority: authority,
		store:     store,
		loop:      loop,
		sync:      sync,
		clock:     clk,
		ids:       ids,
		logger:    log,
	}
}

// ── Remote operations ───────────────────────────────────────────────────────

func (s *clientGameService) LoadAll(ctx context.Context) error {
	userID := s.store.UserID()
	if userID == 0 {
		return ErrNoSession
	}

	own, err := s.authority.FetchOwn(ctx, userID)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientGameService.LoadAll").Msg("error fetching own games")
		return mapAdapterError(err)
	}

	sharedIDs, err := s.authority.FetchShared(ctx, userID)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientGameService.LoadAll").Msg("error fetching shared game ids")
		return mapAdapterError(err)
	}

	rows := own
	if len(sharedIDs) > 0 {
		shared, err := s.authority.FetchByIDs(ctx, sharedIDs)
		if err != nil {
			s.logger.Err(err).Str("func", "*clientGameService.LoadAll").Msg("error fetching shared games")
			return mapAdapterError(err)
		}
		rows = append(rows, shared...)
	}

	s.loop.Dispatch(func() {
		for _, row := range rows {
			// a broken payload must not block the other games
			_, _ = s.storeRow(row)
		}
	})

	return nil
}

func (s *clientGameService) Create(ctx context.Context, name string) (models.Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Game{}, ErrInvalidDataProvided
	}

	snap := models.Snapshot{
		Game:      models.SnapshotGame{Name: name, FactoryIDs: []string{}},
		Factories: map[string]models.Factory{},
		Solvers:   map[string]models.Solver{},
	}

	if s.store.Session() == nil {
		now := s.clock.Now()
		g := models.Game{ID: s.ids.Generate(), Name: name, FactoryIDs: []string{}, CreatedAt: now, UpdatedAt: now}
		s.loop.Dispatch(func() { s.store.PutSnapshot(g, snap) })
		return g, nil
	}

	payload, err := models.EncodeSnapshot(snap)
	if err != nil {
		return models.Game{}, err
	}

	row, err := s.authority.Create(ctx, name, payload)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientGameService.Create").Msg("error creating remote game")
		return models.Game{}, mapAdapterError(err)
	}

	g := gameFromRow(s.ids.Generate(), row, snap)
	s.loop.Dispatch(func() { s.store.PutSnapshot(g, snap) })

	return g, nil
}

func (s *clientGameService) Publish(ctx context.Context, gameID string) (models.Game, error) {
	g, ok := s.store.Game(gameID)
	if !ok {
		return models.Game{}, ErrGameNotFound
	}
	if g.IsPersisted() {
		return models.Game{}, ErrGameAlreadyPersisted
	}
	if s.store.Session() == nil {
		return models.Game{}, ErrNoSession
	}

	snap, _ := s.store.Snapshot(gameID)
	payload, err := models.EncodeSnapshot(snap)
	if err != nil {
		return models.Game{}, err
	}

	row, err := s.authority.Create(ctx, g.Name, payload)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientGameService.Publish").Str("game_id", gameID).Msg("error publishing game")
		return models.Game{}, mapAdapterError(err)
	}

	var published models.Game
	s.loop.Dispatch(func() {
		current, ok := s.store.Game(gameID)
		if !ok {
			return
		}
		current.RemoteID = row.ID
		current.Version = row.Version
		current.AuthorID = row.AuthorID
		current.CreatedAt = row.CreatedAt
		current.UpdatedAt = row.UpdatedAt
		s.store.PutGame(current)
		published = current

		// edits made while the row was being created still need a push
		if now, _ := s.store.Snapshot(gameID); !sameSnapshot(now, snap) {
			s.sync.scheduleSync(gameID)
		}
	})

	if published.ID == "" {
		return models.Game{}, ErrGameNotFound
	}
	return published, nil
}

func (s *clientGameService) Join(ctx context.Context, shareToken string) (models.Game, error) {
	shareToken = strings.TrimSpace(shareToken)
	if shareToken == "" {
		return models.Game{}, ErrInvalidDataProvided
	}

	row, err := s.authority.FetchByShareToken(ctx, shareToken)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientGameService.Join").Msg("error joining game")

		msg := fmt.Sprintf("could not join game: %v", err)
		if errors.Is(err, adapter.ErrNotFound) {
			msg = "share link is invalid or the game no longer exists"
		}
		s.loop.Dispatch(func() { s.store.SetAlert(msg) })

		return models.Game{}, mapAdapterError(err)
	}

	var (
		g        models.Game
		storeErr error
	)
	s.loop.Dispatch(func() { g, storeErr = s.storeRow(row) })

	return g, storeErr
}

func (s *clientGameService) Share(ctx context.Context, gameID string) (string, error) {
	g, err := s.ownedPersistedGame(gameID)
	if err != nil {
		return "", err
	}
	if g.ShareToken != "" {
		return g.ShareToken, nil
	}

	token, err := s.authority.Share(ctx, g.RemoteID)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientGameService.Share").Str("game_id", gameID).Msg("error sharing game")
		return "", mapAdapterError(err)
	}

	s.loop.Dispatch(func() {
		if current, ok := s.store.Game(gameID); ok {
			current.ShareToken = token
			s.store.PutGame(current)
		}
	})

	return token, nil
}

func (s *clientGameService) Delete(ctx context.Context, gameID string) error {
	g, ok := s.store.Game(gameID)
	if !ok {
		return ErrGameNotFound
	}

	if g.IsPersisted() {
		if _, err := s.ownedPersistedGame(gameID); err != nil {
			return err
		}

		err := s.authority.Delete(ctx, g.RemoteID)
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			s.logger.Err(err).Str("func", "*clientGameService.Delete").Str("game_id", gameID).Msg("error deleting remote game")
			return mapAdapterError(err)
		}
	}

	s.loop.Dispatch(func() {
		s.sync.forget(gameID)
		s.store.RemoveGame(gameID)
	})

	return nil
}

func (s *clientGameService) ownedPersistedGame(gameID string) (models.Game, error) {
	g, ok := s.store.Game(gameID)
	if !ok {
		return models.Game{}, ErrGameNotFound
	}
	if !g.IsPersisted() {
		return models.Game{}, ErrGameNotPersisted
	}
	if g.AuthorID != s.store.UserID() {
		return models.Game{}, ErrNotGameOwner
	}
	return g, nil
}

// storeRow puts a fetched row into local state. A row already known by its
// remote id goes through the inbound merge path. It runs on the loop.
func (s *clientGameService) storeRow(row models.GameRow) (models.Game, error) {
	snap, err := models.DecodeSnapshot(row.Data)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientGameService.storeRow").Str("remote_id", row.ID).Msg("error decoding game payload")
		return models.Game{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	existing, ok := s.store.GameByRemoteID(row.ID)
	if !ok {
		g := gameFromRow(s.ids.Generate(), row, snap)
		s.store.PutSnapshot(g, snap)
		return g, nil
	}

	s.sync.applyUpdate(existing.ID, snap, row.Version)

	g, _ := s.store.Game(existing.ID)
	g.AuthorID = row.AuthorID
	if row.ShareToken != nil {
		g.ShareToken = *row.ShareToken
	}
	s.store.PutGame(g)

	return g, nil
}

// ── Local edits ─────────────────────────────────────────────────────────────

func (s *clientGameService) Rename(gameID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidDataProvided
	}
	return s.edit(gameID, ErrGameNotFound, func() bool {
		return s.store.RenameGame(gameID, name)
	})
}

func (s *clientGameService) AddFactory(gameID string, factory models.Factory) (models.Factory, error) {
	if factory.ID == "" {
		factory.ID = s.ids.Generate()
	}
	err := s.edit(gameID, ErrGameNotFound, func() bool {
		return s.store.PutFactory(gameID, factory)
	})
	if err != nil {
		return models.Factory{}, err
	}
	return factory, nil
}

func (s *clientGameService) UpdateFactory(gameID string, factory models.Factory) error {
	return s.edit(gameID, ErrFactoryNotFound, func() bool {
		snap, ok := s.store.Snapshot(gameID)
		if !ok {
			return false
		}
		if _, known := snap.Factories[factory.ID]; !known {
			return false
		}
		return s.store.PutFactory(gameID, factory)
	})
}

func (s *clientGameService) RemoveFactory(gameID, factoryID string) error {
	return s.edit(gameID, ErrFactoryNotFound, func() bool {
		return s.store.RemoveFactory(gameID, factoryID)
	})
}

func (s *clientGameService) SetSolver(gameID string, solver models.Solver) error {
	return s.edit(gameID, ErrFactoryNotFound, func() bool {
		return s.store.PutSolver(gameID, solver)
	})
}

// edit applies mutate on the loop and schedules a push when it succeeded.
func (s *clientGameService) edit(gameID string, notFound error, mutate func() bool) error {
	if _, ok := s.store.Game(gameID); !ok {
		return ErrGameNotFound
	}

	var applied bool
	s.loop.Dispatch(func() {
		if applied = mutate(); applied {
			s.touch(gameID)
			s.sync.scheduleSync(gameID)
		}
	})

	if !applied {
		return notFound
	}
	return nil
}

func (s *clientGameService) touch(gameID string) {
	if g, ok := s.store.Game(gameID); ok {
		g.UpdatedAt = s.clock.Now()
		s.store.PutGame(g)
	}
}

func gameFromRow(localID string, row models.GameRow, snap models.Snapshot) models.Game {
	g := models.Game{
		ID:         localID,
		RemoteID:   row.ID,
		Version:    row.Version,
		Name:       snap.Game.Name,
		FactoryIDs: snap.Game.FactoryIDs,
		AuthorID:   row.AuthorID,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.ShareToken != nil {
		g.ShareToken = *row.ShareToken
	}
	return g
}

func sameSnapshot(a, b models.Snapshot) bool {
	pa, errA := models.EncodeSnapshot(a)
	pb, errB := models.EncodeSnapshot(b)
	return errA == nil && errB == nil && bytes.Equal(pa, pb)
}
