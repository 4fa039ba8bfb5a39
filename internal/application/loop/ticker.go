package loop

import (
	"context"
	"time"
)

// Ticker is a headless Scheduler that flushes its queue on a time.Ticker.
// Callbacks run on the goroutine calling Run.
type Ticker struct {
	Queue
	interval time.Duration
}

// NewTicker creates a Ticker running fps frames per second.
// A non-positive fps falls back to 60.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{interval: time.Second / time.Duration(fps)}
}

// Interval returns the time between ticks.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Run flushes pending frames once per tick until ctx is done or tick returns
// a non-nil error. tick runs after every flush and may be nil.
// Returns nil when ctx ends the run.
func (t *Ticker) Run(ctx context.Context, tick func() error) error {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-tk.C:
			t.Flush()
			if tick == nil {
				continue
			}
			if err := tick(); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}
