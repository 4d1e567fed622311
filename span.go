package vending

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Span is the time range of a transaction.
type Span struct {
	Start, End time.Time
}

// StartSpan marks the start of the transaction.
func (s *Span) StartSpan(clock clock.Clock) {
	s.Start = clock.Now()
}
// EndSpan marks the end of the transaction.
func (s *Span) EndSpan(clock clock.Clock) {
	s.End = clock.Now()
}
// Duration is zero until the span has both started and ended.
func (s Span) Duration() time.Duration {
	if s.Start.IsZero() || s.End.IsZero() {
		return 0
	}
	return s.End.Sub(s.Start)
}
