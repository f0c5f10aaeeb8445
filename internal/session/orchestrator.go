// Package session bridges a finished countdown to the journal and the wisdom
// provider.
package session

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"zhanzen/internal/stats"
	"zhanzen/internal/store"
	"zhanzen/internal/wisdom"
)

// Result is everything the presentation layer needs after a completed
// session.
type Result struct {
	Record   store.SessionRecord
	Streak   int
	Blessing wisdom.Blessing

	// PersistWarning is set when the journal rewrite failed. The session is
	// still recorded in memory for the rest of the process lifetime.
	PersistWarning error
}

type Orchestrator struct {
	journal  *store.Journal
	provider wisdom.Provider
	log      zerolog.Logger
	now      func() time.Time
}

func NewOrchestrator(journal *store.Journal, provider wisdom.Provider, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		journal:  journal,
		provider: provider,
		log:      log,
		now:      time.Now,
	}
}

// Complete records a finished session of durationSeconds, recomputes the
// streak and fetches the blessing. The timer has already transitioned to
// Completed on its own; nothing here can undo or block that, and a storage
// failure degrades to a warning in the result.
func (o *Orchestrator) Complete(ctx context.Context, durationSeconds int) Result {
	now := o.now()
	rec := store.SessionRecord{
		ID:       strconv.FormatInt(now.UnixMilli(), 10),
		Duration: durationSeconds,
		Date:     now.Format("2006-01-02"),
	}

	var warning error
	if err := o.journal.Append(rec); err != nil {
		warning = err
		o.log.Warn().Err(err).Str("date", rec.Date).Msg("session recorded in memory only")
	}

	return Result{
		Record:         rec,
		Streak:         stats.Streak(o.journal.Records(), now),
		Blessing:       o.provider.CompletionBlessing(ctx, durationSeconds/60),
		PersistWarning: warning,
	}
}
