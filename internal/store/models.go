package store

// SessionRecord is one completed meditation session. The JSON field names
// match the journal payloads written by earlier versions of the app and must
// not change.
type SessionRecord struct {
	ID       string `json:"id"`
	Duration int    `json:"duration"` // planned length in seconds at completion
	Date     string `json:"date"`     // local calendar date, YYYY-MM-DD
}

type Setting struct {
	Key   string
	Value string
}
