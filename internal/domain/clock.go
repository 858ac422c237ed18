package domain

import "github.com/jonboulle/clockwork"

// clock stamps report envelopes so tests can freeze time via SetClock.
// The report bodies themselves never read it.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for report envelopes. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// NewReport wraps a generated body in an envelope stamped with the current time.
func NewReport(kind ReportKind, table WeatherTable, body string) Report {
	return Report{
		Kind:        kind,
		Days:        len(table),
		Body:        body,
		GeneratedAt: clock.Now().UTC(),
	}
}
