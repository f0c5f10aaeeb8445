package store

import (
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// historyKey is where the serialized journal lives in the kv table. The name
// is inherited from earlier versions of the app and must not change.
const historyKey = "zhanzhuang_history_v2"

// Journal is the append-only ledger of completed sessions, newest first. It
// is loaded once at startup; every append rewrites the full serialized
// journal under a single key. Records are never edited or deleted.
type Journal struct {
	store   *Store
	log     zerolog.Logger
	records []SessionRecord
}

// OpenJournal loads the persisted journal. A missing key or malformed payload
// yields an empty journal, never an error.
func OpenJournal(s *Store, log zerolog.Logger) *Journal {
	j := &Journal{store: s, log: log}

	raw, err := s.GetSetting(historyKey)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Warn().Err(err).Msg("journal read failed, starting empty")
		}
		return j
	}
	if err := json.Unmarshal([]byte(raw), &j.records); err != nil {
		log.Warn().Err(err).Msg("journal payload malformed, starting empty")
		j.records = nil
	}
	return j
}

// Append adds rec to the front of the journal and synchronously persists the
// whole journal. The in-memory append always takes effect; a persistence
// failure is returned so the caller can surface it as a non-fatal warning —
// the session then survives for the rest of the process but not a restart.
func (j *Journal) Append(rec SessionRecord) error {
	j.records = append([]SessionRecord{rec}, j.records...)

	data, err := json.Marshal(j.records)
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}
	if err := j.store.SetSetting(historyKey, string(data)); err != nil {
		return fmt.Errorf("persist journal: %w", err)
	}
	return nil
}

// Records returns the journal newest first. Callers must not mutate it.
func (j *Journal) Records() []SessionRecord {
	return j.records
}

func (j *Journal) Len() int {
	return len(j.records)
}
