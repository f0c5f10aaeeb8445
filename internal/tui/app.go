package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"zhanzen/internal/export"
	"zhanzen/internal/session"
	"zhanzen/internal/store"
	"zhanzen/internal/timer"
	"zhanzen/internal/wisdom"
)

// App is the root Bubble Tea model.
type App struct {
	store    *store.Store
	journal  *store.Journal
	provider wisdom.Provider
	log      zerolog.Logger
	width    int
	height   int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	meditate    meditateModel
	journalView journalModel
	statsView   statsModel
	settings    settingsModel

	help   help.Model
	status string
}

func NewApp(s *store.Store, journal *store.Journal, provider wisdom.Provider, log zerolog.Logger, defaultMinutes int) App {
	durationSecs := defaultMinutes * 60
	if v, err := s.GetSetting(store.SettingDuration); err == nil {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			durationSecs = n
		}
	}

	engine := timer.New(durationSecs)
	orch := session.NewOrchestrator(journal, provider, log)

	h := help.New()
	h.ShowAll = false

	return App{
		store:       s,
		journal:     journal,
		provider:    provider,
		log:         log,
		activeView:  viewMeditate,
		meditate:    newMeditateModel(s, engine, orch),
		journalView: newJournalModel(journal),
		statsView:   newStatsModel(journal),
		settings:    newSettingsModel(s),
		help:        h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.fetchWisdom(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchWisdom loads the ambient quote once at startup. The provider always
// resolves, so this cannot fail.
func (a App) fetchWisdom() tea.Cmd {
	provider := a.provider
	return func() tea.Msg {
		return wisdomMsg{quote: provider.AmbientWisdom(context.Background())}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.meditate.setSize(a.width, contentHeight)
		a.journalView.setSize(a.width, contentHeight)
		a.statsView.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (form or overlay), delegate first.
		if a.isCapturing() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewMeditate
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewJournal
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewStats
			a.statsView.rebuild()
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSettings
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 4
			if a.activeView == viewStats {
				a.statsView.rebuild()
			}
			return a, nil
		}

	case tickMsg:
		// The engine ignores ticks outside Running, so the always-on tick
		// loop cannot move a paused or reset clock.
		var cmd tea.Cmd
		a.meditate, cmd = a.meditate.update(msg)
		return a, tea.Batch(tickCmd(), cmd)

	case wisdomMsg:
		a.meditate, _ = a.meditate.update(msg)
		return a, nil

	case sessionDoneMsg:
		var cmd tea.Cmd
		a.meditate, cmd = a.meditate.update(msg)
		text := fmt.Sprintf("Session complete — %d day streak", msg.result.Streak)
		if a.meditate.audioOn {
			text += " \a"
		}
		a.status = text
		return a, cmd

	case durationChangedMsg:
		var cmd tea.Cmd
		a.meditate, cmd = a.meditate.update(msg)
		if cmd == nil {
			a.status = fmt.Sprintf("Session length set to %d min", msg.seconds/60)
		}
		return a, cmd

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewMeditate:
		a.meditate, cmd = a.meditate.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isCapturing() bool {
	switch a.activeView {
	case viewMeditate:
		return a.meditate.modalOpen
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewMeditate:
		content = a.meditate.view()
	case viewJournal:
		content = a.journalView.view()
	case viewStats:
		content = a.statsView.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("zhanzen")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Countdown indicator in footer
	timerInfo := ""
	switch a.meditate.engine.Status() {
	case timer.StatusRunning:
		timerInfo = successStyle.Render(" ● " + formatClock(a.meditate.engine.Remaining()))
	case timer.StatusPaused:
		timerInfo = warningStyle.Render(" ⏸ " + formatClock(a.meditate.engine.Remaining()))
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Journal")
	formats := []string{"JSON", "CSV"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	records := a.journal.Records()
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("zhanzen-journal-%s.json", dateStr))
			if err := export.ToJSON(records, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("zhanzen-journal-%s.csv", dateStr))
			if err := export.ToCSV(records, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
