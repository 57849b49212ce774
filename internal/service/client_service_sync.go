// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/adapter"
	"github.com/MKhiriev/go-factory-planner/internal/clock"
	"github.com/MKhiriev/go-factory-planner/internal/eventloop"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/merge"
	"github.com/MKhiriev/go-factory-planner/internal/state"
	"github.com/MKhiriev/go-factory-planner/models"
)

// debounce is a pending push of one game. The timer callback only pushes
// while its debounce is still the one registered for the game.
type debounce struct {
	timer clock.Timer
}

// watch is the live subscription of the focused game.
type watch struct {
	gameID   string
	remoteID string
	sub      adapter.Subscription
}

type clientSyncService struct {
	authority adapter.RemoteAuthority
	store     *state.Store
	loop      *eventloop.Loop
	clock     clock.Clock
	quiet     time.Duration
	logger    *logger.Logger

	pumps sync.WaitGroup

	// loop-owned
	timers   map[string]*debounce
	inFlight map[string]bool
	dirty    map[string]bool
	watch    *watch
	closed   bool
}

// NewClientSyncService creates the synchronization engine. quiet is the
// debounce period of outbound pushes.
func NewClientSyncService(authority adapter.RemoteAuthority, store *state.Store, loop *eventloop.Loop,
	clk clock.Clock, quiet time.Duration, log *logger.Logger) ClientSyncService {
	return newClientSyncService(authority, store, loop, clk, quiet, log)
}

func newClientSyncService(authority adapter.RemoteAuthority, store *state.Store, loop *eventloop.Loop,
	clk clock.Clock, quiet time.Duration, log *logger.Logger) *clientSyncService {
	return &clientSyncService{
		authority: authority,
		store:     store,
		loop:      loop,
		clock:     clk,
		quiet:     quiet,
		logger:    log,
		timers:    make(map[string]*debounce),
		inFlight:  make(map[string]bool),
		dirty:     make(map[string]bool),
	}
}

func (s *clientSyncService) ScheduleSync(gameID string) {
	s.loop.Dispatch(func() { s.scheduleSync(gameID) })
}

func (s *clientSyncService) FlushSync(gameID string) {
	s.loop.Dispatch(func() { s.flushSync(gameID) })
}

func (s *clientSyncService) Watch(gameID string) {
	s.loop.Dispatch(func() { s.watchGame(gameID) })
}

func (s *clientSyncService) Unwatch() {
	s.loop.Dispatch(s.unwatch)
}

func (s *clientSyncService) WatchedGame() string {
	var gameID string
	s.loop.Dispatch(func() {
		if s.watch != nil {
			gameID = s.watch.gameID
		}
	})
	return gameID
}

func (s *clientSyncService) Close() {
	s.loop.Dispatch(func() {
		for gameID := range s.timers {
			s.cancelDebounce(gameID)
		}
		clear(s.dirty)
		s.unwatch()
		s.closed = true
	})

	// in-flight pushes still deliver their results
	s.loop.Wait()
	s.pumps.Wait()
}

// ── Outbound ────────────────────────────────────────────────────────────────

func (s *clientSyncService) scheduleSync(gameID string) {
	if s.closed {
		return
	}

	g, ok := s.store.Game(gameID)
	if !ok || !g.IsPersisted() {
		s.logger.Debug().Str("func", "*clientSyncService.scheduleSync").Str("game_id", gameID).Msg("game is not persisted, sync skipped")
		return
	}

	s.cancelDebounce(gameID)

	d := &debounce{}
	d.timer = s.clock.AfterFunc(s.quiet, func() {
		s.loop.Dispatch(func() {
			if s.timers[gameID] != d {
				return
			}
			delete(s.timers, gameID)
			s.push(gameID)
		})
	})
	s.timers[gameID] = d
}

func (s *clientSyncService) flushSync(gameID string) {
	s.cancelDebounce(gameID)
	s.push(gameID)
}

func (s *clientSyncService) cancelDebounce(gameID string) {
	if d, ok := s.timers[gameID]; ok {
		d.timer.Stop()
		delete(s.timers, gameID)
	}
}

// push sends the current snapshot of the game at version+1.
func (s *clientSyncService) push(gameID string) {
	if s.closed {
		return
	}

	if s.store.Session() == nil {
		s.logger.Debug().Str("func", "*clientSyncService.push").Str("game_id", gameID).Msg("no session, edit stays local")
		return
	}

	g, ok := s.store.Game(gameID)
	if !ok || !g.IsPersisted() {
		return
	}

	if s.inFlight[gameID] {
		s.dirty[gameID] = true
		return
	}

	snap, _ := s.store.Snapshot(gameID)
	payload, err := models.EncodeSnapshot(snap)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSyncService.push").Str("game_id", gameID).Msg("error encoding snapshot")
		s.store.SetSyncError(gameID, err.Error())
		return
	}

	remoteID, target := g.RemoteID, g.Version+1

	s.inFlight[gameID] = true
	s.store.SetSyncing(true)

	eventloop.Go(s.loop, func(ctx context.Context) (int64, error) {
		return s.authority.Persist(ctx, remoteID, payload, target)
	}, func(version int64, err error) {
		s.onPushed(gameID, target, version, err)
	})
}

func (s *clientSyncService) onPushed(gameID string, target, version int64, err error) {
	delete(s.inFlight, gameID)
	s.store.SetSyncing(len(s.inFlight) > 0)

	if _, ok := s.store.Game(gameID); !ok {
		delete(s.dirty, gameID)
		return
	}

	if err != nil {
		s.logger.Err(err).Str("func", "*clientSyncService.onPushed").Str("game_id", gameID).Int64("version", target).Msg("push failed")
		s.store.SetSyncError(gameID, err.Error())
	} else {
		s.store.SetVersion(gameID, version)
		s.store.SetSyncError(gameID, "")
		s.store.SetSavedID(gameID)
	}

	if s.dirty[gameID] {
		delete(s.dirty, gameID)
		s.scheduleSync(gameID)
	}
}

// ── Inbound ─────────────────────────────────────────────────────────────────

func (s *clientSyncService) watchGame(gameID string) {
	s.unwatch()

	if s.closed {
		return
	}

	g, ok := s.store.Game(gameID)
	if !ok || !g.IsPersisted() {
		s.logger.Debug().Str("func", "*clientSyncService.watchGame").Str("game_id", gameID).Msg("game is not persisted, nothing to watch")
		return
	}

	sub, err := s.authority.Subscribe(s.loop.Context(), g.RemoteID)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSyncService.watchGame").Str("game_id", gameID).Msg("error subscribing to game")
		return
	}

	w := &watch{gameID: gameID, remoteID: g.RemoteID, sub: sub}
	s.watch = w

	s.pumps.Add(1)
	go func() {
		defer s.pumps.Done()
		for ev := range sub.Events() {
			s.loop.Dispatch(func() { s.handleRowEvent(w, ev) })
		}
	}()
}

// unwatch runs on the loop. It does not wait for the pump goroutine: the
// pump may itself be waiting to dispatch.
func (s *clientSyncService) unwatch() {
	w := s.watch
	s.watch = nil
	if w != nil {
		w.sub.Unsubscribe()
	}
	if s.store.Status().IsSubscribed {
		s.store.SetSubscribed(false)
	}
}

// handleRowEvent is the single dispatch point of the watched subscription.
func (s *clientSyncService) handleRowEvent(w *watch, ev models.RowEvent) {
	if s.watch != w {
		s.logger.Debug().Str("func", "*clientSyncService.handleRowEvent").Stringer("kind", ev.Kind).Msg("event of a torn down subscription ignored")
		return
	}

	switch ev.Kind {
	case models.RowSubscribed:
		s.store.SetSubscribed(true)
	case models.RowUnsubscribed:
		s.store.SetSubscribed(false)
	case models.RowUpdated:
		s.applyUpdate(w.gameID, ev.Snapshot, ev.Version)
	case models.RowDeleted:
		s.applyDelete(w.gameID)
	}
}

func (s *clientSyncService) applyUpdate(gameID string, remote models.Snapshot, version int64) {
	g, ok := s.store.Game(gameID)
	if !ok {
		s.logger.Error().Str("func", "*clientSyncService.applyUpdate").Str("game_id", gameID).Msg("update for a game missing from local state discarded")
		return
	}

	if version <= g.Version {
		s.logger.Debug().Str("func", "*clientSyncService.applyUpdate").
			Int64("remote", version).Int64("local", g.Version).Msg("stale update discarded")
		return
	}

	// a push scheduled before this update must not overwrite it
	s.cancelDebounce(gameID)
	delete(s.dirty, gameID)

	local, _ := s.store.Snapshot(gameID)
	s.store.ApplySnapshot(gameID, merge.Merge(local, remote), version)
}

func (s *clientSyncService) applyDelete(gameID string) {
	g, ok := s.store.Game(gameID)
	if !ok {
		return
	}

	if g.AuthorID == s.store.UserID() {
		s.logger.Debug().Str("func", "*clientSyncService.applyDelete").Str("game_id", gameID).Msg("own deletion ignored")
		return
	}

	s.forget(gameID)
	s.store.RemoveGame(gameID)
	s.store.SetAlert(fmt.Sprintf("game %q was deleted by its owner", g.Name))
}

// forget drops every background activity of the game. It runs on the loop.
func (s *clientSyncService) forget(gameID string) {
	s.cancelDebounce(gameID)
	delete(s.dirty, gameID)
	if s.watch != nil && s.watch.gameID == gameID {
		s.unwatch()
	}
}
