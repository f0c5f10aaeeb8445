package wisdom

import "context"

// Mock is a scripted provider for tests. Zero-value fields fall through to
// the static fallbacks, matching the real provider's worst case.
type Mock struct {
	Quote    Quote
	Blessing Blessing

	QuoteCalls    int
	BlessingCalls int
	LastMinutes   int
}

func (m *Mock) AmbientWisdom(_ context.Context) Quote {
	m.QuoteCalls++
	if m.Quote == (Quote{}) {
		return FallbackQuote()
	}
	return m.Quote
}

func (m *Mock) CompletionBlessing(_ context.Context, minutes int) Blessing {
	m.BlessingCalls++
	m.LastMinutes = minutes
	if m.Blessing == (Blessing{}) {
		return FallbackBlessing()
	}
	return m.Blessing
}
