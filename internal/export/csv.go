package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"zhanzen/internal/store"
)

func ToCSV(records []store.SessionRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Date", "Duration (s)", "Duration"}); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.ID,
			r.Date,
			fmt.Sprintf("%d", r.Duration),
			formatDuration(r.Duration),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDuration(secs int) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
