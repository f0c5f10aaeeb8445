package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zhanzen/internal/session"
	"zhanzen/internal/store"
	"zhanzen/internal/timer"
	"zhanzen/internal/wisdom"
)

// meditateModel owns the countdown engine and the completion overlay.
type meditateModel struct {
	store  *store.Store
	engine *timer.Engine
	orch   *session.Orchestrator
	width  int
	height int

	quote     *wisdom.Quote
	result    *session.Result
	modalOpen bool
	audioOn   bool
}

func newMeditateModel(s *store.Store, engine *timer.Engine, orch *session.Orchestrator) meditateModel {
	m := meditateModel{store: s, engine: engine, orch: orch}
	if v, err := s.GetSetting(store.SettingAudio); err == nil {
		m.audioOn = v == "1"
	}
	return m
}

func (m *meditateModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m meditateModel) update(msg tea.Msg) (meditateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if completed, dur := m.engine.Tick(); completed {
			return m, m.completeCmd(dur)
		}
		return m, nil

	case sessionDoneMsg:
		// A reset while the blessing was in flight discards the result; the
		// overlay only shows for the session still on screen.
		if m.engine.Status() != timer.StatusCompleted {
			return m, nil
		}
		r := msg.result
		m.result = &r
		m.modalOpen = true
		return m, nil

	case durationChangedMsg:
		if err := m.engine.SetDuration(msg.seconds); err != nil {
			return m, func() tea.Msg {
				return statusMsg{text: "Reset the timer before changing the length", isError: true}
			}
		}
		return m, nil

	case wisdomMsg:
		q := msg.quote
		m.quote = &q
		return m, nil

	case tea.KeyMsg:
		if m.modalOpen {
			switch {
			case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Back):
				m.modalOpen = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Start):
			if err := m.engine.Start(); err != nil {
				return m, func() tea.Msg {
					return statusMsg{text: "Nothing on the clock — press r to reset", isError: true}
				}
			}
			return m, nil

		case key.Matches(msg, keys.Pause):
			switch m.engine.Status() {
			case timer.StatusRunning:
				m.engine.Pause()
			case timer.StatusPaused:
				m.engine.Start()
			}
			return m, nil

		case key.Matches(msg, keys.Reset):
			m.engine.Reset()
			m.modalOpen = false
			return m, nil

		case key.Matches(msg, keys.Audio):
			m.audioOn = !m.audioOn
			v := "0"
			if m.audioOn {
				v = "1"
			}
			m.store.SetSetting(store.SettingAudio, v)
			return m, nil
		}
	}
	return m, nil
}

// completeCmd records the session and fetches the blessing off the update
// loop; the engine is already Completed and keeps rendering while this runs.
func (m meditateModel) completeCmd(durationSeconds int) tea.Cmd {
	orch := m.orch
	return func() tea.Msg {
		return sessionDoneMsg{result: orch.Complete(context.Background(), durationSeconds)}
	}
}

func (m meditateModel) view() string {
	w := m.width - 4

	if m.modalOpen && m.result != nil {
		return m.renderCompletion(w)
	}

	title := titleStyle.Render("Standing Practice")

	var quoteBlock string
	if m.quote != nil {
		quoteBlock = lipgloss.JoinVertical(lipgloss.Center,
			quoteStyle.Render("「"+m.quote.Quote+"」"),
			mutedStyle.Render("— "+m.quote.Author),
		)
	} else {
		quoteBlock = mutedStyle.Render("...")
	}

	var clock, phaseLabel, controls string
	switch m.engine.Status() {
	case timer.StatusIdle:
		clock = clockStyle.Width(w - 6).Render(formatClock(m.engine.Remaining()))
		phaseLabel = mutedStyle.Render("Ready to stand")
		controls = mutedStyle.Render("s: start  a: audio  q: quit")
	case timer.StatusRunning:
		clock = successStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(formatClock(m.engine.Remaining()))
		phaseLabel = successStyle.Bold(true).Render("STANDING")
		controls = mutedStyle.Render("space: pause  r: reset")
	case timer.StatusPaused:
		clock = warningStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(formatClock(m.engine.Remaining()))
		phaseLabel = warningStyle.Bold(true).Render("PAUSED")
		controls = mutedStyle.Render("space: resume  r: reset")
	case timer.StatusCompleted:
		clock = highlightStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render("圆满")
		phaseLabel = successStyle.Bold(true).Render("SESSION COMPLETE")
		controls = mutedStyle.Render("r: reset")
	}

	audio := mutedStyle.Render("audio off")
	if m.audioOn {
		audio = highlightStyle.Render("♪ audio on")
	}

	var advice string
	if m.quote != nil && m.quote.Advice != "" {
		advice = mutedStyle.Render(m.quote.Advice)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		quoteBlock,
		"",
		clock,
		phaseLabel,
		"",
		audio,
		"",
		advice,
		"",
		controls,
	)

	return panelStyle.Width(w).Render(content)
}

func (m meditateModel) renderCompletion(w int) string {
	r := m.result

	rows := []string{
		successStyle.Bold(true).Render(r.Blessing.Title),
		"",
		quoteStyle.Render("“" + r.Blessing.Message + "”"),
		"",
		fmt.Sprintf("%s   %s",
			titleStyle.Render(fmt.Sprintf("%d min", r.Record.Duration/60)),
			highlightStyle.Render(fmt.Sprintf("%d day streak", r.Streak)),
		),
	}

	if r.PersistWarning != nil {
		rows = append(rows, "", warningStyle.Render("saved in memory only — journal write failed"))
	}

	rows = append(rows, "", mutedStyle.Render("enter: close"))

	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, rows...),
	)
}
