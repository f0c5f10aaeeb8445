package export

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"zhanzen/internal/store"
)

type jsonExport struct {
	ExportedAt string       `json:"exported_at"`
	Count      int          `json:"count"`
	Sessions   []jsonRecord `json:"sessions"`
}

type jsonRecord struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	DurationSec int    `json:"duration_seconds"`
	Duration    string `json:"duration"`
}

func ToJSON(records []store.SessionRecord, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(records),
	}

	for _, r := range records {
		out.Sessions = append(out.Sessions, jsonRecord{
			ID:          r.ID,
			Date:        r.Date,
			DurationSec: r.Duration,
			Duration:    formatDuration(r.Duration),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
