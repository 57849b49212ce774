// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the client-side view of games, their children, the
// credential session and the synchronization status.
//
// A Store is mutated only from event loop callbacks and may be read from any
// goroutine. Listeners registered with OnChange run after every mutation,
// outside the store lock.
package state

import (
	"cmp"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-factory-planner/models"
)

// Store is the shared state container of the client.
type Store struct {
	mu sync.RWMutex

	games     map[string]models.Game
	factories map[string]models.Factory
	solvers   map[string]models.Solver

	session *models.Session
	userID  int64
	status  models.SyncStatus

	listenersMu sync.Mutex
	listeners   map[int]func()
	nextID      int
}

// New returns an empty store.
func New() *Store {
	return &Store{
		games:     make(map[string]models.Game),
		factories: make(map[string]models.Factory),
		solvers:   make(map[string]models.Solver),
		status:    models.SyncStatus{SyncErrors: make(map[string]string)},
		listeners: make(map[int]func()),
	}
}

// OnChange registers fn to run after every mutation. The returned function
// removes the registration.
func (s *Store) OnChange(fn func()) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) notify() {
	s.listenersMu.Lock()
	fns := slices.Collect(maps.Values(s.listeners))
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// mutate runs fn under the write lock and notifies listeners afterwards.
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	fn()
	s.mu.Unlock()
	s.notify()
}

// ── Games ───────────────────────────────────────────────────────────────────

// Game returns a copy of the game with the given local id.
func (s *Store) Game(gameID string) (models.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return models.Game{}, false
	}
	return cloneGame(g), true
}

// GameByRemoteID returns the game bound to the given remote row.
func (s *Store) GameByRemoteID(remoteID string) (models.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.games {
		if g.RemoteID != "" && g.RemoteID == remoteID {
			return cloneGame(g), true
		}
	}
	return models.Game{}, false
}

// Games returns every game, oldest first.
func (s *Store) Games() []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]models.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, cloneGame(g))
	}
	slices.SortFunc(games, func(a, b models.Game) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return games
}

// Snapshot builds a fresh, self-contained snapshot of the game. Factory ids
// without a stored factory are kept in the ordered list; the payload is the
// source of truth for collaborators.
func (s *Store) Snapshot(gameID string) (models.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return models.Snapshot{}, false
	}

	snap := models.Snapshot{
		Game: models.SnapshotGame{
			Name:       g.Name,
			FactoryIDs: slices.Clone(g.FactoryIDs),
		},
		Factories: make(map[string]models.Factory, len(g.FactoryIDs)),
		Solvers:   make(map[string]models.Solver),
	}
	if snap.Game.FactoryIDs == nil {
		snap.Game.FactoryIDs = []string{}
	}
	for _, id := range g.FactoryIDs {
		if f, ok := s.factories[id]; ok {
			snap.Factories[id] = f
		}
		if sv, ok := s.solvers[id]; ok {
			snap.Solvers[id] = sv.Clone()
		}
	}

	return snap, true
}

// PutGame inserts or replaces the game record. Children are not touched.
func (s *Store) PutGame(g models.Game) {
	s.mutate(func() {
		s.games[g.ID] = cloneGame(g)
	})
}

// PutSnapshot stores g with the content of snap, replacing any previous
// record and children of the same local id.
func (s *Store) PutSnapshot(g models.Game, snap models.Snapshot) {
	s.mutate(func() {
		if old, ok := s.games[g.ID]; ok {
			s.dropChildren(old.FactoryIDs, snap.Game.FactoryIDs)
		}
		s.putSnapshotLocked(g, snap)
	})
}

// ApplySnapshot replaces the portable fields and children of an existing
// game with snap and raises its version to version. Local-authority fields
// (remote id, author, share token, creation time) are kept. Children that
// are no longer referenced are removed. It reports false when the game is
// unknown.
func (s *Store) ApplySnapshot(gameID string, snap models.Snapshot, version int64) bool {
	applied := false
	s.mutate(func() {
		g, ok := s.games[gameID]
		if !ok {
			return
		}
		applied = true

		s.dropChildren(g.FactoryIDs, snap.Game.FactoryIDs)
		g.Version = max(g.Version, version)
		s.putSnapshotLocked(g, snap)
	})
	return applied
}

func (s *Store) putSnapshotLocked(g models.Game, snap models.Snapshot) {
	g.Name = snap.Game.Name
	g.FactoryIDs = slices.Clone(snap.Game.FactoryIDs)
	if g.FactoryIDs == nil {
		g.FactoryIDs = []string{}
	}

	for _, id := range g.FactoryIDs {
		if f, ok := snap.Factories[id]; ok {
			s.factories[id] = f
		} else {
			delete(s.factories, id)
		}
		if sv, ok := snap.Solvers[id]; ok {
			s.solvers[id] = sv.Clone()
		} else {
			delete(s.solvers, id)
		}
	}

	s.games[g.ID] = g
}

// dropChildren removes factories and solvers listed in before but not in
// after.
func (s *Store) dropChildren(before, after []string) {
	for _, id := range before {
		if slices.Contains(after, id) {
			continue
		}
		delete(s.factories, id)
		delete(s.solvers, id)
	}
}

// RemoveGame deletes the game, its children and its sync error.
func (s *Store) RemoveGame(gameID string) {
	s.mutate(func() {
		g, ok := s.games[gameID]
		if !ok {
			return
		}
		s.dropChildren(g.FactoryIDs, nil)
		delete(s.games, gameID)
		delete(s.status.SyncErrors, gameID)
		if s.status.SavedID == gameID {
			s.status.SavedID = ""
		}
	})
}

// SetVersion raises the game version to version. Lower values are ignored.
func (s *Store) SetVersion(gameID string, version int64) {
	s.mutate(func() {
		g, ok := s.games[gameID]
		if !ok || version <= g.Version {
			return
		}
		g.Version = version
		s.games[gameID] = g
	})
}

// ── Local edits ─────────────────────────────────────────────────────────────

// RenameGame sets the game name. It reports false for an unknown game.
func (s *Store) RenameGame(gameID, name string) bool {
	ok := false
	s.mutate(func() {
		g, found := s.games[gameID]
		if !found {
			return
		}
		ok = true
		g.Name = name
		s.games[gameID] = g
	})
	return ok
}

// PutFactory inserts or replaces a factory of the game. New factories are
// appended to the ordered list.
func (s *Store) PutFactory(gameID string, f models.Factory) bool {
	ok := false
	s.mutate(func() {
		g, found := s.games[gameID]
		if !found {
			return
		}
		ok = true
		if !slices.Contains(g.FactoryIDs, f.ID) {
			g.FactoryIDs = append(slices.Clone(g.FactoryIDs), f.ID)
			s.games[gameID] = g
		}
		s.factories[f.ID] = f
	})
	return ok
}

// RemoveFactory deletes a factory and its solver from the game.
func (s *Store) RemoveFactory(gameID, factoryID string) bool {
	ok := false
	s.mutate(func() {
		g, found := s.games[gameID]
		if !found || !slices.Contains(g.FactoryIDs, factoryID) {
			return
		}
		ok = true
		g.FactoryIDs = slices.DeleteFunc(slices.Clone(g.FactoryIDs), func(id string) bool {
			return id == factoryID
		})
		s.games[gameID] = g
		delete(s.factories, factoryID)
		delete(s.solvers, factoryID)
	})
	return ok
}

// PutSolver attaches sv to the factory of the same id inside the game.
func (s *Store) PutSolver(gameID string, sv models.Solver) bool {
	ok := false
	s.mutate(func() {
		g, found := s.games[gameID]
		if !found || !slices.Contains(g.FactoryIDs, sv.ID) {
			return
		}
		ok = true
		s.solvers[sv.ID] = sv.Clone()
	})
	return ok
}

// ── Session ─────────────────────────────────────────────────────────────────

// Session returns the current credential session, nil when signed out.
func (s *Store) Session() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

// SetSession replaces the session. A nil session signs the store out; the
// user id follows the session.
func (s *Store) SetSession(session *models.Session) {
	s.mutate(func() {
		if session == nil {
			s.session = nil
			s.userID = 0
			return
		}
		cp := *session
		s.session = &cp
		s.userID = cp.UserID
	})
}

// UserID returns the id of the signed-in user, zero when signed out.
func (s *Store) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// ── Sync status ─────────────────────────────────────────────────────────────

// Status returns a copy of the synchronization status.
func (s *Store) Status() models.SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.status
	st.SyncErrors = maps.Clone(s.status.SyncErrors)
	return st
}

func (s *Store) SetSyncing(syncing bool) {
	s.mutate(func() { s.status.IsSyncing = syncing })
}

func (s *Store) SetSubscribed(subscribed bool) {
	s.mutate(func() { s.status.IsSubscribed = subscribed })
}

// SetSyncError records the last push error of the game. An empty message
// clears it.
func (s *Store) SetSyncError(gameID, msg string) {
	s.mutate(func() {
		if msg == "" {
			delete(s.status.SyncErrors, gameID)
			return
		}
		s.status.SyncErrors[gameID] = msg
	})
}

func (s *Store) SetSavedID(gameID string) {
	s.mutate(func() { s.status.SavedID = gameID })
}

// SetAlert records a user-visible error. An empty message clears it.
func (s *Store) SetAlert(msg string) {
	s.mutate(func() { s.status.Alert = msg })
}

func cloneGame(g models.Game) models.Game {
	g.FactoryIDs = slices.Clone(g.FactoryIDs)
	return g
}
