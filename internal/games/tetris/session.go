package tetris

import (
	"sync"
	"time"

	"github.com/vovakirdan/termtris/internal/core"
)

// Session serializes access to a Controller. Every command runs to
// completion and its drawing is flushed before the lock is released, so no
// caller can observe a half-applied command.
type Session struct {
	mu     sync.Mutex
	ctrl   *Controller
	screen *core.ScreenBuffer

	done     chan struct{}
	doneOnce sync.Once
}

// NewSession wraps a controller and the screen buffer it draws into.
func NewSession(ctrl *Controller, screen *core.ScreenBuffer) *Session {
	return &Session{
		ctrl:   ctrl,
		screen: screen,
		done:   make(chan struct{}),
	}
}

// Start flushes whatever the controller has drawn so far.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Flush()
}

// Apply dispatches cmd and flushes the result under the session lock.
// Once the game is over Done is closed; later game commands are no-ops.
func (s *Session) Apply(cmd core.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctrl.Dispatch(cmd)
	err := s.screen.Flush()
	if !s.ctrl.Running() {
		s.doneOnce.Do(func() { close(s.done) })
	}
	return err
}

// Done is closed when the game ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Running reports whether the game is still in progress.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Running()
}

// Interval returns the current gravity interval.
func (s *Session) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Interval()
}

// Stats returns the current score counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Stats()
}
