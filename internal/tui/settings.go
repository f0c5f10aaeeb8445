package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"zhanzen/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	minutes *string
	audio   *string
}

func newSettingsModel(s *store.Store) settingsModel {
	m, a := "", ""
	return settingsModel{
		store:   s,
		minutes: &m,
		audio:   &a,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.minutes = strconv.Itoa(s.durationSeconds() / 60)
	*s.audio = "off"
	if s.getVal(store.SettingAudio, "0") == "1" {
		*s.audio = "on"
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Session length (min)").
				Validate(validateMinutes).
				Value(s.minutes),
			huh.NewSelect[string]().Title("Audio guidance").
				Options(
					huh.NewOption("On", "on"),
					huh.NewOption("Off", "off"),
				).Value(s.audio),
		).Title("Practice"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func validateMinutes(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 120 {
		return fmt.Errorf("enter 1-120 minutes")
	}
	return nil
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		secs := s.saveSettings()
		return s, func() tea.Msg { return durationChangedMsg{seconds: secs} }
	}

	return s, cmd
}

// saveSettings persists the form and returns the configured duration in
// seconds for the timer engine.
func (s settingsModel) saveSettings() int {
	secs := 600
	if n, err := strconv.Atoi(*s.minutes); err == nil {
		secs = n * 60
	}
	s.store.SetSetting(store.SettingDuration, strconv.Itoa(secs))

	audio := "0"
	if *s.audio == "on" {
		audio = "1"
	}
	s.store.SetSetting(store.SettingAudio, audio)

	return secs
}

func (s settingsModel) durationSeconds() int {
	if n, err := strconv.Atoi(s.getVal(store.SettingDuration, "600")); err == nil && n > 0 {
		return n
	}
	return 600
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4

	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	audio := "off"
	if s.getVal(store.SettingAudio, "0") == "1" {
		audio = "on"
	}

	rows := []string{
		title,
		"",
		fmt.Sprintf("  %s %s",
			lipgloss.NewStyle().Width(24).Render("Session length"),
			highlightStyle.Render(fmt.Sprintf("%d min", s.durationSeconds()/60)),
		),
		fmt.Sprintf("  %s %s",
			lipgloss.NewStyle().Width(24).Render("Audio guidance"),
			highlightStyle.Render(audio),
		),
		"",
		mutedStyle.Render("Press enter to edit settings"),
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
