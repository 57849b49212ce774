package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/clock"
	"github.com/MKhiriev/go-factory-planner/internal/eventloop"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/mock"
	"github.com/MKhiriev/go-factory-planner/internal/state"
	"github.com/MKhiriev/go-factory-planner/models"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const (
	testQuiet  = 2 * time.Second
	testMargin = 300 * time.Second
	testUserID = int64(7)
)

type clientFixture struct {
	ctrl      *gomock.Controller
	authority *mock.MockRemoteAuthority
	store     *state.Store
	loop      *eventloop.Loop
	clock     *clock.Fake
}

func newClientFixture(t *testing.T) *clientFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	loop := eventloop.New(context.Background())
	t.Cleanup(loop.Close)

	return &clientFixture{
		ctrl:      ctrl,
		authority: mock.NewMockRemoteAuthority(ctrl),
		store:     state.New(),
		loop:      loop,
		clock:     clock.NewFake(t0),
	}
}

func (f *clientFixture) newSync(t *testing.T) *clientSyncService {
	t.Helper()
	s := newClientSyncService(f.authority, f.store, f.loop, f.clock, testQuiet, logger.Nop())
	t.Cleanup(s.Close)
	return s
}

func (f *clientFixture) newSession(t *testing.T) *clientSessionService {
	t.Helper()
	s := NewClientSessionService(f.authority, f.store, f.loop, f.clock, testMargin, logger.Nop()).(*clientSessionService)
	t.Cleanup(s.Close)
	return s
}

// advance moves the fake clock and waits until every network completion it
// triggered has been applied.
func (f *clientFixture) advance(d time.Duration) {
	f.clock.Advance(d)
	f.loop.Wait()
}

func (f *clientFixture) signIn() {
	f.store.SetSession(&models.Session{AccessToken: "access", RefreshToken: "refresh", UserID: testUserID})
}

// seedGame stores a persisted game with one factory.
func (f *clientFixture) seedGame(id, remoteID string, version, authorID int64) {
	f.store.PutSnapshot(models.Game{
		ID:       id,
		RemoteID: remoteID,
		Version:  version,
		AuthorID: authorID,
	}, models.Snapshot{
		Game:      models.SnapshotGame{Name: "base", FactoryIDs: []string{"A"}},
		Factories: map[string]models.Factory{"A": {ID: "A", Name: "smelter", Item: "iron", Rate: 30}},
		Solvers:   map[string]models.Solver{},
	})
}

func sessionExpiringIn(token string, d time.Duration) models.Session {
	return models.Session{
		AccessToken:  token,
		RefreshToken: "refresh-" + token,
		ExpiresAt:    t0.Add(d).Unix(),
		UserID:       testUserID,
	}
}

// seqIDs hands out predictable identifiers.
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}
