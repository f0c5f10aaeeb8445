package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"zhanzen/internal/store"
)

func sampleRecords() []store.SessionRecord {
	return []store.SessionRecord{
		{ID: "1757500000000", Duration: 600, Date: "2026-03-10"},
		{ID: "1757400000000", Duration: 1800, Date: "2026-03-09"},
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	if err := ToJSON(sampleRecords(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("count = %d, want 2", out.Count)
	}
	if len(out.Sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(out.Sessions))
	}
	if out.Sessions[0].ID != "1757500000000" {
		t.Fatalf("first session id = %q", out.Sessions[0].ID)
	}
	if out.Sessions[1].Duration != "00:30:00" {
		t.Fatalf("formatted duration = %q, want 00:30:00", out.Sessions[1].Duration)
	}
	if out.ExportedAt == "" {
		t.Fatal("exported_at should be set")
	}
}

func TestToJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := ToJSON(nil, path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 0 {
		t.Fatalf("count = %d, want 0", out.Count)
	}
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.csv")
	if err := ToCSV(sampleRecords(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 { // header + 2 records
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "ID" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "2026-03-10" || rows[1][2] != "600" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][3] != "00:30:00" {
		t.Fatalf("formatted duration = %q, want 00:30:00", rows[2][3])
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		0:    "00:00:00",
		59:   "00:00:59",
		600:  "00:10:00",
		3661: "01:01:01",
	}
	for secs, want := range cases {
		if got := formatDuration(secs); got != want {
			t.Fatalf("formatDuration(%d) = %q, want %q", secs, got, want)
		}
	}
}

func TestToCSVBadPath(t *testing.T) {
	err := ToCSV(sampleRecords(), filepath.Join(t.TempDir(), "missing", "out.csv"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
	if !strings.Contains(err.Error(), "create csv file") {
		t.Fatalf("unexpected error: %v", err)
	}
}
