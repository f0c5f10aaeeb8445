package store

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Should have run migration v1
	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "zhanzen.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen — should succeed and not re-migrate
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Settings
// ============================================================

func TestDefaultSettings(t *testing.T) {
	s := newTestStore(t)

	v, err := s.GetSetting(SettingDuration)
	if err != nil {
		t.Fatal(err)
	}
	if v != "600" {
		t.Fatalf("default duration = %q, want 600", v)
	}

	v, err = s.GetSetting(SettingAudio)
	if err != nil {
		t.Fatal(err)
	}
	if v != "0" {
		t.Fatalf("default audio = %q, want 0", v)
	}
}

func TestSetAndGetSetting(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetSetting(SettingDuration, "1200"); err != nil {
		t.Fatal(err)
	}
	v, err := s.GetSetting(SettingDuration)
	if err != nil {
		t.Fatal(err)
	}
	if v != "1200" {
		t.Fatalf("duration = %q, want 1200", v)
	}
}

func TestGetSettingMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetSetting("no_such_key")
	if err == nil {
		t.Fatal("expected error for missing key")
	}
}

// ============================================================
// Journal
// ============================================================

func TestOpenJournalEmpty(t *testing.T) {
	s := newTestStore(t)
	j := OpenJournal(s, zerolog.Nop())
	if j.Len() != 0 {
		t.Fatalf("fresh journal has %d records", j.Len())
	}
}

func TestJournalAppendAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zhanzen.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}

	j := OpenJournal(s, zerolog.Nop())
	rec := SessionRecord{ID: "1757500000000", Duration: 600, Date: "2026-03-10"}
	if err := j.Append(rec); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Simulate a restart.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	j2 := OpenJournal(s2, zerolog.Nop())
	if j2.Len() != 1 {
		t.Fatalf("reloaded journal has %d records, want 1", j2.Len())
	}
	got := j2.Records()[0]
	if got != rec {
		t.Fatalf("reloaded record %+v, want %+v", got, rec)
	}
}

func TestJournalAppendNewestFirst(t *testing.T) {
	s := newTestStore(t)
	j := OpenJournal(s, zerolog.Nop())

	j.Append(SessionRecord{ID: "1", Duration: 300, Date: "2026-03-09"})
	j.Append(SessionRecord{ID: "2", Duration: 600, Date: "2026-03-10"})

	recs := j.Records()
	if recs[0].ID != "2" || recs[1].ID != "1" {
		t.Fatalf("unexpected order: %+v", recs)
	}
}

func TestJournalMalformedPayload(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetSetting(historyKey, "{not json"); err != nil {
		t.Fatal(err)
	}

	j := OpenJournal(s, zerolog.Nop())
	if j.Len() != 0 {
		t.Fatalf("malformed payload should load empty, got %d records", j.Len())
	}

	// And the journal must still be usable.
	if err := j.Append(SessionRecord{ID: "1", Duration: 600, Date: "2026-03-10"}); err != nil {
		t.Fatal(err)
	}
}

func TestJournalToleratesUnknownFields(t *testing.T) {
	s := newTestStore(t)
	payload := `[{"id":"abc","duration":900,"date":"2026-03-10","mood":"calm"}]`
	if err := s.SetSetting(historyKey, payload); err != nil {
		t.Fatal(err)
	}

	j := OpenJournal(s, zerolog.Nop())
	if j.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", j.Len())
	}
	got := j.Records()[0]
	if got.ID != "abc" || got.Duration != 900 || got.Date != "2026-03-10" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestJournalToleratesMissingFields(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetSetting(historyKey, `[{"date":"2026-03-10"}]`); err != nil {
		t.Fatal(err)
	}

	j := OpenJournal(s, zerolog.Nop())
	if j.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", j.Len())
	}
	if j.Records()[0].Duration != 0 {
		t.Fatalf("missing duration should decode to 0, got %d", j.Records()[0].Duration)
	}
}

func TestJournalAppendAfterCloseKeepsMemory(t *testing.T) {
	s := newTestStore(t)
	j := OpenJournal(s, zerolog.Nop())
	s.Close()

	rec := SessionRecord{ID: "1", Duration: 600, Date: "2026-03-10"}
	err := j.Append(rec)
	if err == nil {
		t.Fatal("expected persistence error after close")
	}

	// The in-memory append must still be visible.
	if j.Len() != 1 || j.Records()[0] != rec {
		t.Fatalf("in-memory journal lost the record: %+v", j.Records())
	}
}
