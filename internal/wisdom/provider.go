// Package wisdom supplies the short inspirational texts shown around a
// practice session. Content comes from Gemini when an API key is configured
// and from fixed fallback texts otherwise; callers always receive a usable
// value and never an error.
package wisdom

import "context"

// Quote is the ambient quote fetched once at startup.
type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Advice string `json:"advice"`
}

// Blessing is the congratulatory text shown after a completed session.
type Blessing struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Provider interface {
	AmbientWisdom(ctx context.Context) Quote
	CompletionBlessing(ctx context.Context, minutes int) Blessing
}
