package tetris

import (
	"context"
	"time"

	"github.com/vovakirdan/termtris/internal/core"
)

// Ticker is the gravity driver: it waits for the session's current interval
// and then issues a fall command, until the game ends or ctx is cancelled.
// The interval is re-read before every wait, so level ups take effect on the
// next tick.
type Ticker struct {
	session *Session
	ticks   int
}

// NewTicker creates a ticker driving session.
func NewTicker(session *Session) *Ticker {
	return &Ticker{session: session}
}

// Ticks returns how many fall commands have been issued.
// Only meaningful after Run has returned.
func (t *Ticker) Ticks() int {
	return t.ticks
}

// Run blocks until the game is over (returns nil), ctx is cancelled (returns
// ctx.Err()) or flushing the screen fails.
func (t *Ticker) Run(ctx context.Context) error {
	for {
		timer := time.NewTimer(t.session.Interval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-t.session.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		// Apply is a no-op if the game ended while we were waiting.
		if err := t.session.Apply(core.CommandFall); err != nil {
			return err
		}
		t.ticks++
	}
}
