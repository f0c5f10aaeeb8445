// Package timer implements the countdown state machine driving a standing
// meditation session.
package timer

import "errors"

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusCompleted
)

var statusNames = map[Status]string{
	StatusIdle:      "IDLE",
	StatusRunning:   "RUNNING",
	StatusPaused:    "PAUSED",
	StatusCompleted: "COMPLETED",
}

func (s Status) String() string {
	return statusNames[s]
}

var (
	ErrNotIdle       = errors.New("timer: duration can only change while idle")
	ErrInvalidLength = errors.New("timer: duration must be positive")
	ErrNothingToRun  = errors.New("timer: no time remaining")
)

// Engine counts a configured duration down to zero in one-second steps. The
// tick source lives outside the engine; Tick is ignored in any state but
// Running, so a stray tick delivered after a pause or reset cannot move the
// clock, and the Running→Completed transition inside Tick is the single
// place a completion can fire.
type Engine struct {
	status    Status
	duration  int // configured seconds
	remaining int
}

func New(durationSeconds int) *Engine {
	if durationSeconds < 1 {
		durationSeconds = 1
	}
	return &Engine{
		status:    StatusIdle,
		duration:  durationSeconds,
		remaining: durationSeconds,
	}
}

func (e *Engine) Status() Status { return e.status }
func (e *Engine) Duration() int  { return e.duration }
func (e *Engine) Remaining() int { return e.remaining }

// Start begins or resumes the countdown. Starting with nothing on the clock
// is rejected; starting while already running is a no-op.
func (e *Engine) Start() error {
	switch e.status {
	case StatusIdle, StatusPaused:
		if e.remaining == 0 {
			return ErrNothingToRun
		}
		e.status = StatusRunning
		return nil
	case StatusCompleted:
		return ErrNothingToRun
	}
	return nil
}

// Pause freezes the countdown; a no-op unless running.
func (e *Engine) Pause() {
	if e.status == StatusRunning {
		e.status = StatusPaused
	}
}

// Reset returns to Idle with the full configured duration on the clock.
func (e *Engine) Reset() {
	e.status = StatusIdle
	e.remaining = e.duration
}

// SetDuration changes the configured length. Allowed only while idle so the
// clock cannot drift from the duration a completion would record.
func (e *Engine) SetDuration(seconds int) error {
	if seconds < 1 {
		return ErrInvalidLength
	}
	if e.status != StatusIdle {
		return ErrNotIdle
	}
	e.duration = seconds
	e.remaining = seconds
	return nil
}

// Tick advances the countdown by one second. It reports true exactly once,
// on the tick that moves the engine from Running to Completed, together with
// the configured duration for the journal entry.
func (e *Engine) Tick() (completed bool, durationSeconds int) {
	if e.status != StatusRunning {
		return false, 0
	}
	if e.remaining > 0 {
		e.remaining--
	}
	if e.remaining == 0 {
		e.status = StatusCompleted
		return true, e.duration
	}
	return false, 0
}
