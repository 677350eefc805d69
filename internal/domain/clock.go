package domain

import "github.com/jonboulle/clockwork"

// clock stamps processed_at on reports so tests can freeze time via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for report stamping. Pass nil to reset to real time.
// EvaluateBatch reads the clock from worker goroutines, so SetClock must not
// run while a batch is in flight; tests that call it must not use t.Parallel.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
