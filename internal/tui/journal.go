package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"zhanzen/internal/stats"
	"zhanzen/internal/store"
)

var weekdayLetters = []string{"S", "M", "T", "W", "T", "F", "S"}

// journalModel renders the practice log: streak, weekly activity and recent
// sessions. It reads the shared in-memory journal directly.
type journalModel struct {
	journal *store.Journal
	width   int
	height  int
}

func newJournalModel(j *store.Journal) journalModel {
	return journalModel{journal: j}
}

func (j *journalModel) setSize(w, h int) {
	j.width = w
	j.height = h
}

func (j journalModel) view() string {
	w := j.width - 4
	now := time.Now()
	records := j.journal.Records()

	title := titleStyle.Render("Practice Journal")

	streak := stats.Streak(records, now)
	streakLine := highlightStyle.Bold(true).Render(fmt.Sprintf("● %d day streak", streak))

	weekRow := j.renderWeek(stats.WeekActivity(records, now))

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, streakLine)
	rows = append(rows, "")
	rows = append(rows, weekRow)
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(strings.Repeat("─", min(w-6, 40))))

	if len(records) == 0 {
		rows = append(rows, mutedStyle.Render("  No sessions yet — stand for today's first one."))
	} else {
		limit := min(len(records), 10)
		for _, r := range records[:limit] {
			rows = append(rows, fmt.Sprintf("  %s  %s",
				mutedStyle.Render(r.Date),
				normalItemStyle.Render(fmt.Sprintf("%3d min", r.Duration/60)),
			))
		}
		if len(records) > limit {
			rows = append(rows, mutedStyle.Render(fmt.Sprintf("  … %d more", len(records)-limit)))
		}
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (j journalModel) renderWeek(days []stats.Day) string {
	var cells []string
	for _, d := range days {
		if d.Active {
			cells = append(cells, successStyle.Bold(true).Render("✓"))
		} else {
			cells = append(cells, mutedStyle.Render(weekdayLetters[int(d.Weekday)]))
		}
	}
	return "  " + strings.Join(cells, "  ")
}
