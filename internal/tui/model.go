package tui

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-factory-planner/internal/service"
	"github.com/MKhiriev/go-factory-planner/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

// confirmAction is the pending action of a y/n prompt.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteGame
	confirmRemoveFactory
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// model is the single bubbletea model of the client. It never mutates the
// shared state itself: reads go to the store, writes to the services.
type model struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	changes   <-chan struct{}

	screen  screen
	games   []models.Game
	gameIdx int

	// gameID is the focused (watched) game on the detail screen.
	gameID     string
	game       models.Game
	snapshot   models.Snapshot
	factoryIdx int

	status models.SyncStatus

	form          *formModel
	confirm       confirmAction
	confirmTarget string
	showBuildInfo bool

	busy   bool
	notice string
	errMsg string

	logout bool
}

func newModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, changes <-chan struct{}) model {
	m := model{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		changes:   changes,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// waitForChange turns the next store change signal into a message.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// refresh re-reads everything the views show from the store.
func (m *model) refresh() {
	store := m.services.Store

	m.games = store.Games()
	m.gameIdx = clampIndex(m.gameIdx, len(m.games))
	m.status = store.Status()

	if m.screen != screenDetail {
		return
	}

	game, ok := store.Game(m.gameID)
	if !ok {
		// removed while focused, e.g. deleted by its owner
		m.leaveDetail(false)
		if m.status.Alert != "" {
			m.errMsg = m.status.Alert
		}
		return
	}
	m.game = game
	m.snapshot, _ = store.Snapshot(m.gameID)
	m.factoryIdx = clampIndex(m.factoryIdx, len(m.game.FactoryIDs))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		m.refresh()
		return m, waitForChange(m.changes)

	case opDoneMsg:
		m.busy = false
		m.setResult(msg.notice, msg.err)
		m.refresh()
		return m, nil

	case sharedMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.setResult("", msg.err)
		case msg.copyErr != nil:
			m.setResult("share token: "+msg.token, nil)
		default:
			m.setResult("share token copied to clipboard", nil)
		}
		m.refresh()
		return m, nil

	case loggedOutMsg:
		m.logout = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.confirm != confirmNone {
		return m.updateConfirm(msg)
	}
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.logout):
		m.busy = true
		return m, m.cmdLogout()
	}

	if m.screen == screenDetail {
		return m.updateDetail(msg)
	}
	return m.updateList(msg)
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.gameIdx = clampIndex(m.gameIdx-1, len(m.games))
	case key.Matches(msg, keys.down):
		m.gameIdx = clampIndex(m.gameIdx+1, len(m.games))

	case key.Matches(msg, keys.enter):
		if game, ok := m.selectedGame(); ok {
			m.enterDetail(game.ID)
		}

	case key.Matches(msg, keys.newItem):
		m.form = newFormModel(formNewGame, "New game", "Name")
	case key.Matches(msg, keys.join):
		m.form = newFormModel(formJoin, "Join a shared game", "Share token")

	case key.Matches(msg, keys.publish):
		if game, ok := m.selectedGame(); ok {
			m.busy = true
			return m, m.cmdPublish(game.ID)
		}

	case key.Matches(msg, keys.delete):
		if game, ok := m.selectedGame(); ok {
			m.confirm = confirmDeleteGame
			m.confirmTarget = game.ID
		}

	case key.Matches(msg, keys.reload):
		m.busy = true
		return m, m.cmdReload()
	}
	return m, nil
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.leaveDetail(true)
		m.refresh()

	case key.Matches(msg, keys.up):
		m.factoryIdx = clampIndex(m.factoryIdx-1, len(m.game.FactoryIDs))
	case key.Matches(msg, keys.down):
		m.factoryIdx = clampIndex(m.factoryIdx+1, len(m.game.FactoryIDs))

	case key.Matches(msg, keys.newItem):
		m.form = newFormModel(formAddFactory, "New factory", "Name", "Item", "Rate")

	case key.Matches(msg, keys.edit):
		if f, ok := m.selectedFactory(); ok {
			m.form = newFormModel(formEditFactory, "Edit factory", "Name", "Item", "Rate").
				withValues(f.Name, f.Item, strconv.FormatFloat(f.Rate, 'f', -1, 64))
			m.form.target = f.ID
		}

	case key.Matches(msg, keys.solver):
		if f, ok := m.selectedFactory(); ok {
			sv := m.snapshot.Solvers[f.ID]
			target := sv.TargetItem
			if target == "" {
				target = f.Item
			}
			m.form = newFormModel(formSolver, "Solver for "+f.Name, "Target item", "Target rate").
				withValues(target, strconv.FormatFloat(sv.TargetRate, 'f', -1, 64))
			m.form.target = f.ID
		}

	case key.Matches(msg, keys.rename):
		m.form = newFormModel(formRename, "Rename game", "Name").withValues(m.game.Name)

	case key.Matches(msg, keys.delete):
		if f, ok := m.selectedFactory(); ok {
			m.confirm = confirmRemoveFactory
			m.confirmTarget = f.ID
		}

	case key.Matches(msg, keys.sync):
		m.services.SyncService.FlushSync(m.gameID)
		m.setResult("saving...", nil)

	case key.Matches(msg, keys.publish):
		m.busy = true
		return m, m.cmdPublish(m.gameID)

	case key.Matches(msg, keys.copy):
		m.busy = true
		return m, m.cmdShare(m.gameID)
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.form = nil
		return m, nil
	case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
		m.form.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
		m.form.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		form := m.form
		m.form = nil
		return m.submitForm(form)
	}
	return m, m.form.update(msg)
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, target := m.confirm, m.confirmTarget

	switch {
	case key.Matches(msg, keys.yes):
		m.confirm, m.confirmTarget = confirmNone, ""
		switch action {
		case confirmDeleteGame:
			m.busy = true
			return m, m.cmdDelete(target)
		case confirmRemoveFactory:
			m.setResult("factory removed", m.services.GameService.RemoveFactory(m.gameID, target))
			m.refresh()
		}
	case key.Matches(msg, keys.no):
		m.confirm, m.confirmTarget = confirmNone, ""
	}
	return m, nil
}

func (m model) submitForm(form *formModel) (tea.Model, tea.Cmd) {
	games := m.services.GameService

	switch form.kind {
	case formNewGame:
		m.busy = true
		return m, m.cmdCreate(form.value(0))

	case formJoin:
		m.busy = true
		return m, m.cmdJoin(form.value(0))

	case formRename:
		m.setResult("game renamed", games.Rename(m.gameID, form.value(0)))

	case formAddFactory, formEditFactory:
		rate, err := parseRate(form.value(2))
		if err != nil {
			m.setResult("", err)
			return m, nil
		}
		factory := models.Factory{ID: form.target, Name: form.value(0), Item: form.value(1), Rate: rate}
		if form.kind == formAddFactory {
			_, err = games.AddFactory(m.gameID, factory)
			m.setResult("factory added", err)
			if err == nil {
				m.factoryIdx = len(m.game.FactoryIDs)
			}
		} else {
			m.setResult("factory updated", games.UpdateFactory(m.gameID, factory))
		}

	case formSolver:
		rate, err := parseRate(form.value(1))
		if err != nil {
			m.setResult("", err)
			return m, nil
		}
		solver := models.Solver{ID: form.target, TargetItem: form.value(0), TargetRate: rate}
		if current, ok := m.snapshot.Solvers[form.target]; ok {
			solver.Recipes = current.Recipes
			solver.Machines = current.Machines
		}
		m.setResult("solver updated", games.SetSolver(m.gameID, solver))
	}

	m.refresh()
	return m, nil
}

func (m *model) enterDetail(gameID string) {
	m.screen = screenDetail
	m.gameID = gameID
	m.factoryIdx = 0
	m.notice, m.errMsg = "", ""
	m.services.SyncService.Watch(gameID)
	m.refresh()
}

// leaveDetail returns to the list. With flush the pending edits of the
// focused game are pushed before the watch is dropped.
func (m *model) leaveDetail(flush bool) {
	if flush && m.gameID != "" {
		m.services.SyncService.FlushSync(m.gameID)
	}
	m.services.SyncService.Unwatch()
	m.screen = screenList
	m.gameID = ""
	m.game = models.Game{}
	m.snapshot = models.Snapshot{}
}

func (m *model) setResult(notice string, err error) {
	if err != nil {
		m.notice = ""
		m.errMsg = humanizeError(err)
		return
	}
	m.errMsg = ""
	m.notice = notice
}

func (m model) selectedGame() (models.Game, bool) {
	if m.gameIdx < 0 || m.gameIdx >= len(m.games) {
		return models.Game{}, false
	}
	return m.games[m.gameIdx], true
}

func (m model) selectedFactory() (models.Factory, bool) {
	if m.factoryIdx < 0 || m.factoryIdx >= len(m.game.FactoryIDs) {
		return models.Factory{}, false
	}
	f, ok := m.snapshot.Factories[m.game.FactoryIDs[m.factoryIdx]]
	return f, ok
}

// ── Remote commands ──

func (m model) cmdCreate(name string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.GameService.Create(m.ctx, name)
		return opDoneMsg{notice: "game created", err: err}
	}
}

func (m model) cmdJoin(token string) tea.Cmd {
	return func() tea.Msg {
		game, err := m.services.GameService.Join(m.ctx, token)
		return opDoneMsg{notice: "joined " + game.Name, err: err}
	}
}

func (m model) cmdPublish(gameID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.GameService.Publish(m.ctx, gameID)
		return opDoneMsg{notice: "game published", err: err}
	}
}

func (m model) cmdDelete(gameID string) tea.Cmd {
	return func() tea.Msg {
		err := m.services.GameService.Delete(m.ctx, gameID)
		return opDoneMsg{notice: "game deleted", err: err}
	}
}

func (m model) cmdReload() tea.Cmd {
	return func() tea.Msg {
		err := m.services.GameService.LoadAll(m.ctx)
		return opDoneMsg{notice: "games reloaded", err: err}
	}
}

func (m model) cmdShare(gameID string) tea.Cmd {
	return func() tea.Msg {
		token, err := m.services.GameService.Share(m.ctx, gameID)
		if err != nil {
			return sharedMsg{err: err}
		}
		return sharedMsg{token: token, copyErr: copyToClipboard(token)}
	}
}

func (m model) cmdLogout() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.services.AuthService.Logout(m.ctx)}
	}
}

func parseRate(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 {
		return 0, errInvalidRate
	}
	return rate, nil
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
