package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/service"
	"github.com/MKhiriev/go-factory-planner/internal/state"
	"github.com/MKhiriev/go-factory-planner/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Fakes ──

type fakeSync struct {
	watched string
	watches []string
	flushed []string
	unwatch int
}

func (f *fakeSync) ScheduleSync(string) {}
func (f *fakeSync) FlushSync(id string) { f.flushed = append(f.flushed, id) }
func (f *fakeSync) Watch(id string)     { f.watched = id; f.watches = append(f.watches, id) }
func (f *fakeSync) Unwatch()            { f.watched = ""; f.unwatch++ }
func (f *fakeSync) WatchedGame() string { return f.watched }
func (f *fakeSync) Close()              {}

type fakeAuth struct {
	logouts int
}

func (f *fakeAuth) Login(context.Context, models.Credentials) (models.Session, error) {
	return models.Session{}, nil
}
func (f *fakeAuth) Register(context.Context, models.Credentials) (models.Session, error) {
	return models.Session{}, nil
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	return nil
}

// fakeGames applies edits straight to the store.
type fakeGames struct {
	store *state.Store

	created   []string
	deleted   []string
	published []string
	joined    []string
	shareErr  error
	err       error
}

func (f *fakeGames) LoadAll(context.Context) error { return f.err }

func (f *fakeGames) Create(_ context.Context, name string) (models.Game, error) {
	f.created = append(f.created, name)
	g := models.Game{ID: "new", Name: name, Version: 1, CreatedAt: time.Now()}
	f.store.PutGame(g)
	return g, f.err
}

func (f *fakeGames) Publish(_ context.Context, id string) (models.Game, error) {
	f.published = append(f.published, id)
	return models.Game{}, f.err
}

func (f *fakeGames) Join(_ context.Context, token string) (models.Game, error) {
	f.joined = append(f.joined, token)
	return models.Game{Name: "shared"}, f.err
}

func (f *fakeGames) Share(context.Context, string) (string, error) {
	if f.shareErr != nil {
		return "", f.shareErr
	}
	return "tok-1", nil
}

func (f *fakeGames) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	f.store.RemoveGame(id)
	return f.err
}

func (f *fakeGames) Rename(id, name string) error {
	f.store.RenameGame(id, name)
	return nil
}

func (f *fakeGames) AddFactory(id string, factory models.Factory) (models.Factory, error) {
	factory.ID = "f-new"
	if !f.store.PutFactory(id, factory) {
		return models.Factory{}, service.ErrGameNotFound
	}
	return factory, nil
}

func (f *fakeGames) UpdateFactory(id string, factory models.Factory) error {
	if !f.store.PutFactory(id, factory) {
		return service.ErrFactoryNotFound
	}
	return nil
}

func (f *fakeGames) RemoveFactory(id, factoryID string) error {
	if !f.store.RemoveFactory(id, factoryID) {
		return service.ErrFactoryNotFound
	}
	return nil
}

func (f *fakeGames) SetSolver(id string, sv models.Solver) error {
	if !f.store.PutSolver(id, sv) {
		return service.ErrFactoryNotFound
	}
	return nil
}

type fixture struct {
	store *state.Store
	sync  *fakeSync
	auth  *fakeAuth
	games *fakeGames
	model model
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := state.New()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.PutSnapshot(models.Game{ID: "g1", RemoteID: "r1", Version: 3, CreatedAt: t0}, models.Snapshot{
		Game:      models.SnapshotGame{Name: "Iron works", FactoryIDs: []string{"f1", "f2"}},
		Factories: map[string]models.Factory{"f1": {ID: "f1", Name: "Smelter", Item: "iron-ingot", Rate: 30}, "f2": {ID: "f2", Name: "Plates", Item: "iron-plate", Rate: 20}},
		Solvers:   map[string]models.Solver{"f1": {ID: "f1", TargetItem: "iron-ingot", TargetRate: 30, Machines: map[string]float64{"smelter": 1}}},
	})
	store.PutSnapshot(models.Game{ID: "g2", Version: 1, CreatedAt: t0.Add(time.Hour)}, models.Snapshot{
		Game: models.SnapshotGame{Name: "Copper"},
	})

	fx := &fixture{
		store: store,
		sync:  &fakeSync{},
		auth:  &fakeAuth{},
		games: &fakeGames{store: store},
	}
	services := &service.ClientServices{
		Store:       store,
		AuthService: fx.auth,
		SyncService: fx.sync,
		GameService: fx.games,
	}
	fx.model = newModel(context.Background(), services, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"), nil)
	return fx
}

func (fx *fixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := fx.model.Update(msg)
	m, ok := next.(model)
	require.True(t, ok)
	fx.model = m
	return cmd
}

// run executes cmd and feeds its message back into the model.
func (fx *fixture) run(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	fx.send(t, cmd())
}

func (fx *fixture) typeText(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		fx.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ── List screen ──

func TestModel_ListShowsGames(t *testing.T) {
	fx := newFixture(t)

	require.Len(t, fx.model.games, 2)
	view := fx.model.View()
	assert.Contains(t, view, "Iron works")
	assert.Contains(t, view, "published")
	assert.Contains(t, view, "Copper")
	assert.Contains(t, view, "local")
}

func TestModel_ListNavigationClamps(t *testing.T) {
	fx := newFixture(t)

	fx.send(t, runeKey("k"))
	assert.Equal(t, 0, fx.model.gameIdx)

	fx.send(t, runeKey("j"))
	fx.send(t, runeKey("j"))
	assert.Equal(t, 1, fx.model.gameIdx)
}

func TestModel_EnterWatchesGame(t *testing.T) {
	fx := newFixture(t)

	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenDetail, fx.model.screen)
	assert.Equal(t, []string{"g1"}, fx.sync.watches)
	assert.Equal(t, "Iron works", fx.model.game.Name)
	view := fx.model.View()
	assert.Contains(t, view, "Smelter")
	assert.Contains(t, view, "smelter x1")
}

func TestModel_CreateGame(t *testing.T) {
	fx := newFixture(t)

	fx.send(t, runeKey("n"))
	require.NotNil(t, fx.model.form)
	fx.typeText(t, "Oil jk")
	cmd := fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, fx.model.busy)

	fx.run(t, cmd)

	assert.Equal(t, []string{"Oil jk"}, fx.games.created)
	assert.False(t, fx.model.busy)
	assert.Equal(t, "game created", fx.model.notice)
	assert.Len(t, fx.model.games, 3)
}

func TestModel_FormEscCancels(t *testing.T) {
	fx := newFixture(t)

	fx.send(t, runeKey("J"))
	require.NotNil(t, fx.model.form)
	fx.send(t, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, fx.model.form)
	assert.Empty(t, fx.games.joined)
}

func TestModel_DeleteGameNeedsConfirmation(t *testing.T) {
	fx := newFixture(t)

	fx.send(t, runeKey("d"))
	assert.Equal(t, confirmDeleteGame, fx.model.confirm)
	assert.Contains(t, fx.model.View(), "delete this game? y/n")

	fx.send(t, runeKey("n"))
	assert.Equal(t, confirmNone, fx.model.confirm)
	assert.Empty(t, fx.games.deleted)

	fx.send(t, runeKey("d"))
	cmd := fx.send(t, runeKey("y"))
	fx.run(t, cmd)

	assert.Equal(t, []string{"g1"}, fx.games.deleted)
	assert.Len(t, fx.model.games, 1)
}

func TestModel_RemoteErrorShown(t *testing.T) {
	fx := newFixture(t)
	fx.games.err = service.ErrNotGameOwner

	cmd := fx.send(t, runeKey("p"))
	fx.run(t, cmd)

	assert.Equal(t, "only the owner of the game can do this", fx.model.errMsg)
	assert.Empty(t, fx.model.notice)
}

func TestModel_BusyIgnoresKeys(t *testing.T) {
	fx := newFixture(t)

	cmd := fx.send(t, runeKey("r"))
	require.NotNil(t, cmd)
	assert.Nil(t, fx.send(t, runeKey("p")))
	assert.Empty(t, fx.games.published)
}

// ── Detail screen ──

func TestModel_AddFactory(t *testing.T) {
	fx := newFixture(t)
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	fx.send(t, runeKey("a"))
	fx.typeText(t, "Wire")
	fx.send(t, tea.KeyMsg{Type: tea.KeyTab})
	fx.typeText(t, "copper-wire")
	fx.send(t, tea.KeyMsg{Type: tea.KeyTab})
	fx.typeText(t, "12.5")
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "factory added", fx.model.notice)
	require.Len(t, fx.model.game.FactoryIDs, 3)
	assert.Equal(t, 2, fx.model.factoryIdx)
	f, ok := fx.model.selectedFactory()
	require.True(t, ok)
	assert.Equal(t, "copper-wire", f.Item)
	assert.Equal(t, 12.5, f.Rate)
}

func TestModel_AddFactoryRejectsBadRate(t *testing.T) {
	fx := newFixture(t)
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	fx.send(t, runeKey("a"))
	fx.typeText(t, "Wire")
	fx.send(t, tea.KeyMsg{Type: tea.KeyTab})
	fx.send(t, tea.KeyMsg{Type: tea.KeyTab})
	fx.typeText(t, "fast")
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, errInvalidRate.Error(), fx.model.errMsg)
	assert.Len(t, fx.model.game.FactoryIDs, 2)
}

func TestModel_EditFactoryPrefillsValues(t *testing.T) {
	fx := newFixture(t)
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	fx.send(t, runeKey("e"))
	require.NotNil(t, fx.model.form)
	assert.Equal(t, "Smelter", fx.model.form.value(0))
	assert.Equal(t, "30", fx.model.form.value(2))

	fx.typeText(t, " 2")
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	f, ok := fx.model.selectedFactory()
	require.True(t, ok)
	assert.Equal(t, "Smelter 2", f.Name)
	assert.Equal(t, "factory updated", fx.model.notice)
}

func TestModel_SetSolverKeepsMachines(t *testing.T) {
	fx := newFixture(t)
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	fx.send(t, runeKey("t"))
	require.NotNil(t, fx.model.form)
	fx.send(t, tea.KeyMsg{Type: tea.KeyTab})
	fx.send(t, tea.KeyMsg{Type: tea.KeyBackspace})
	fx.send(t, tea.KeyMsg{Type: tea.KeyBackspace})
	fx.typeText(t, "45")
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	sv := fx.model.snapshot.Solvers["f1"]
	assert.Equal(t, 45.0, sv.TargetRate)
	assert.Equal(t, map[string]float64{"smelter": 1}, sv.Machines)
}

func TestModel_RemoveFactory(t *testing.T) {
	fx := newFixture(t)
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	fx.send(t, runeKey("j"))

	fx.send(t, runeKey("d"))
	assert.Equal(t, "f2", fx.model.confirmTarget)
	fx.send(t, runeKey("y"))

	assert.Equal(t, []string{"f1"}, fx.model.game.FactoryIDs)
	assert.Equal(t, 0, fx.model.factoryIdx)
}

func TestModel_RenameGame(t *testing.T) {
	fx := newFixture(t)
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	fx.send(t, runeKey("R"))
	fx.typeText(t, " II")
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Iron works II", fx.model.game.Name)
	assert.Contains(t, fx.model.View(), "IRON WORKS II")
}

func TestModel_SaveFlushes(t *testing.T) {
	fx := newFixture(t)
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	fx.send(t, runeKey("s"))

	assert.Equal(t, []string{"g1"}, fx.sync.flushed)
}

func TestModel_EscFlushesAndUnwatches(t *testing.T) {
	fx := newFixture(t)
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	fx.send(t, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenList, fx.model.screen)
	assert.Equal(t, []string{"g1"}, fx.sync.flushed)
	assert.Equal(t, 1, fx.sync.unwatch)
	assert.Empty(t, fx.sync.watched)
}

func TestModel_FocusedGameRemoved(t *testing.T) {
	fx := newFixture(t)
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	fx.store.SetAlert("game was deleted by its owner")
	fx.store.RemoveGame("g1")
	fx.send(t, storeChangedMsg{})

	assert.Equal(t, screenList, fx.model.screen)
	assert.Equal(t, "game was deleted by its owner", fx.model.errMsg)
	assert.Empty(t, fx.sync.flushed)
	assert.Equal(t, 1, fx.sync.unwatch)
}

func TestModel_StatusLine(t *testing.T) {
	fx := newFixture(t)
	fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	fx.store.SetSubscribed(true)
	fx.store.SetSyncError("g1", "server unavailable")
	fx.send(t, storeChangedMsg{})

	line := fx.model.statusLine()
	assert.Contains(t, line, "live")
	assert.Contains(t, line, "sync failed: server unavailable")

	fx.store.SetSyncing(true)
	fx.send(t, storeChangedMsg{})
	assert.Contains(t, fx.model.statusLine(), "syncing...")
}

func TestModel_Share(t *testing.T) {
	var copied string
	orig := copyToClipboard
	t.Cleanup(func() { copyToClipboard = orig })

	tests := []struct {
		name      string
		shareErr  error
		copyErr   error
		wantNote  string
		wantError string
	}{
		{name: "copied", wantNote: "share token copied to clipboard"},
		{name: "clipboard unavailable", copyErr: errors.New("no clipboard"), wantNote: "share token: tok-1"},
		{name: "not owner", shareErr: service.ErrNotGameOwner, wantError: "only the owner of the game can do this"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copied = ""
			copyToClipboard = func(s string) error {
				copied = s
				return tt.copyErr
			}

			fx := newFixture(t)
			fx.games.shareErr = tt.shareErr
			fx.send(t, tea.KeyMsg{Type: tea.KeyEnter})

			fx.run(t, fx.send(t, runeKey("c")))

			assert.Equal(t, tt.wantNote, fx.model.notice)
			assert.Equal(t, tt.wantError, fx.model.errMsg)
			if tt.shareErr == nil {
				assert.Equal(t, "tok-1", copied)
			}
		})
	}
}

// ── Global keys ──

func TestModel_Logout(t *testing.T) {
	fx := newFixture(t)

	cmd := fx.send(t, runeKey("L"))
	require.NotNil(t, cmd)
	quit := fx.send(t, cmd())

	assert.Equal(t, 1, fx.auth.logouts)
	assert.True(t, fx.model.logout)
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
}

func TestModel_BuildInfoOverlay(t *testing.T) {
	fx := newFixture(t)

	fx.send(t, runeKey("v"))
	assert.True(t, fx.model.showBuildInfo)
	view := fx.model.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Commit: abc")

	fx.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, fx.model.showBuildInfo)
}

func TestWaitForChange(t *testing.T) {
	assert.Nil(t, waitForChange(nil))

	changes := make(chan struct{}, 1)
	changes <- struct{}{}
	assert.Equal(t, storeChangedMsg{}, waitForChange(changes)())

	close(changes)
	assert.Nil(t, waitForChange(changes)())
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "publish the game first", humanizeError(service.ErrGameNotPersisted))
	assert.Equal(t, "network is down or the server is unavailable",
		humanizeError(errors.New("dial tcp 127.0.0.1:8080: connection refused")))
	assert.True(t, strings.HasPrefix(humanizeError(errors.New("boom")), "boom"))
}
