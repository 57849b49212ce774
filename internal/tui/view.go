package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-factory-planner/models"
	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = overlayBoxStyle.Render(renderBuildInfoWindow(m.buildInfo))
	case m.form != nil:
		body = overlayBoxStyle.Render(m.form.View())
	case m.screen == screenDetail:
		body = m.detailView()
	default:
		body = m.listView()
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine()))
}

func (m model) listView() string {
	var b strings.Builder
	if len(m.games) == 0 {
		b.WriteString("no games yet, press n to create one")
	}
	for i, g := range m.games {
		line := fmt.Sprintf("%-32s v%-4d %-9s %s",
			fitText(g.Name, 32), g.Version, publishedFlag(g), m.gameSyncError(g.ID))
		if i == m.gameIdx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(strings.TrimRight(line, " "))
		if i < len(m.games)-1 {
			b.WriteString("\n")
		}
	}

	return renderPage("GAMES", b.String(),
		"enter: open  n: new  J: join  p: publish  d: delete  r: reload  v: about  L: logout")
}

func (m model) detailView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Version: %d  %s", m.game.Version, publishedFlag(m.game)))
	if m.game.ShareToken != "" {
		b.WriteString("  share token: ")
		b.WriteString(m.game.ShareToken)
	}
	b.WriteString("\n\n")

	if len(m.game.FactoryIDs) == 0 {
		b.WriteString("no factories, press a to add one")
	}
	for i, id := range m.game.FactoryIDs {
		f := m.snapshot.Factories[id]
		line := fmt.Sprintf("%-24s %-20s %-12s %s",
			fitText(valueOrDash(f.Name), 24), fitText(valueOrDash(f.Item), 20),
			formatRate(f.Rate), solverSummary(m.snapshot.Solvers[id]))
		if i == m.factoryIdx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(strings.TrimRight(line, " "))
		if i < len(m.game.FactoryIDs)-1 {
			b.WriteString("\n")
		}
	}

	if m.confirm == confirmRemoveFactory {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("remove this factory? y/n"))
	}

	return renderPage(strings.ToUpper(valueOrDash(m.game.Name)), b.String(),
		"a: add  e: edit  t: solver  d: remove  R: rename  s: save  p: publish  c: share  esc: back")
}

func (m model) statusLine() string {
	var parts []string

	switch {
	case m.status.IsSyncing:
		parts = append(parts, "syncing...")
	case m.screen == screenDetail && m.status.IsSubscribed:
		parts = append(parts, "live")
	case m.screen == screenDetail:
		parts = append(parts, "offline")
	}

	if m.confirm == confirmDeleteGame {
		parts = append(parts, errorStyle.Render("delete this game? y/n"))
	}

	if m.screen == screenDetail {
		if msg := m.gameSyncError(m.gameID); msg != "" {
			parts = append(parts, errorStyle.Render(msg))
		}
	}

	switch {
	case m.errMsg != "":
		parts = append(parts, errorStyle.Render(m.errMsg))
	case m.notice != "":
		parts = append(parts, noticeStyle.Render(m.notice))
	}

	return strings.Join(parts, "  ")
}

func (m model) gameSyncError(gameID string) string {
	if msg, ok := m.status.SyncErrors[gameID]; ok && msg != "" {
		return "sync failed: " + msg
	}
	return ""
}

func publishedFlag(g models.Game) string {
	if g.IsPersisted() {
		return "published"
	}
	return "local"
}

func solverSummary(sv models.Solver) string {
	if sv.TargetItem == "" {
		return ""
	}

	s := fmt.Sprintf("-> %s %s", sv.TargetItem, formatRate(sv.TargetRate))
	if len(sv.Machines) == 0 {
		return s
	}

	names := make([]string, 0, len(sv.Machines))
	for name := range sv.Machines {
		names = append(names, name)
	}
	sort.Strings(names)

	machines := make([]string, 0, len(names))
	for _, name := range names {
		machines = append(machines, fmt.Sprintf("%s x%g", name, sv.Machines[name]))
	}
	return s + " (" + strings.Join(machines, ", ") + ")"
}
