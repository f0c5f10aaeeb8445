package tui

import (
	"fmt"
	"time"

	"zhanzen/internal/session"
	"zhanzen/internal/wisdom"
)

// viewState represents the currently active view.
type viewState int

const (
	viewMeditate viewState = iota
	viewJournal
	viewStats
	viewSettings
)

var viewNames = []string{"Meditate", "Journal", "Stats", "Settings"}

// --- Messages ---

type tickMsg time.Time

// wisdomMsg delivers the ambient quote fetched at startup.
type wisdomMsg struct {
	quote wisdom.Quote
}

// sessionDoneMsg delivers the completed-session result: the appended record,
// the recomputed streak and the blessing.
type sessionDoneMsg struct {
	result session.Result
}

type durationChangedMsg struct {
	seconds int
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// formatClock renders a countdown as MM:SS. Sessions cap at 120 minutes so
// hours never appear.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
