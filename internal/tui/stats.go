package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"zhanzen/internal/stats"
	"zhanzen/internal/store"
)

// statsModel renders meditation minutes per day over the last week.
type statsModel struct {
	journal *store.Journal
	width   int
	height  int

	chart barchart.Model
}

func newStatsModel(j *store.Journal) statsModel {
	return statsModel{journal: j, chart: barchart.New(60, 12)}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
	s.rebuild()
}

// rebuild redraws the chart from the current journal.
func (s *statsModel) rebuild() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if s.height > 30 {
		chartHeight = 16
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	minutes := stats.MinutesByDate(s.journal.Records())
	today := time.Now()

	var bars []barchart.BarData
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		dateStr := d.Format("2006-01-02")
		label := d.Format("Mon")

		style := lipgloss.NewStyle().Foreground(colorPrimary)
		value := float64(minutes[dateStr])
		if value == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}

		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: dateStr, Value: value, Style: style},
			},
		})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statsModel) view() string {
	w := s.width - 4

	sessions, minutes := stats.Totals(s.journal.Records())
	streak := stats.Streak(s.journal.Records(), time.Now())

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Stats"), "  ",
		mutedStyle.Render("minutes per day, last 7 days"),
	)

	totals := fmt.Sprintf("%s   %s   %s",
		normalItemStyle.Render(fmt.Sprintf("%d sessions", sessions)),
		normalItemStyle.Render(fmt.Sprintf("%d min total", minutes)),
		highlightStyle.Render(fmt.Sprintf("%d day streak", streak)),
	)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", s.chart.View(), "", totals,
		),
	)
}
