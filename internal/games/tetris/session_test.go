package tetris

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termtris/internal/core"
)

// countingWriter records every Write call separately.
type countingWriter struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return 0, w.err
	}
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func (w *countingWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.writes)
}

func newTestSession(t *testing.T, seed int64) (*Session, *countingWriter) {
	t.Helper()
	out := &countingWriter{}
	screen := core.NewScreenBuffer(out)
	ctrl := NewController(screen, Options{
		Config: testConfig(),
		Rand:   rand.New(rand.NewSource(seed)),
	})
	s := NewSession(ctrl, screen)
	require.NoError(t, s.Start())
	return s, out
}

func TestSessionStartFlushesInitialScreen(t *testing.T) {
	s, out := newTestSession(t, 1)

	require.Equal(t, 1, out.count())
	assert.Contains(t, out.writes[0], "\x1b[2J")
	assert.True(t, s.Running())
	assert.Equal(t, Stats{Level: 1}, s.Stats())
}

func TestSessionApplyFlushesOncePerCommand(t *testing.T) {
	s, out := newTestSession(t, 1)

	require.NoError(t, s.Apply(core.CommandLeft))
	assert.Equal(t, 2, out.count())

	require.NoError(t, s.Apply(core.CommandDrop))
	assert.Equal(t, 3, out.count(), "a hard drop is emitted as one write")

	require.NoError(t, s.Apply(core.CommandNone))
	assert.Equal(t, 3, out.count(), "nothing drawn, nothing written")
}

func TestSessionDoneOnQuit(t *testing.T) {
	s, out := newTestSession(t, 1)

	select {
	case <-s.Done():
		t.Fatal("session done before quit")
	default:
	}

	require.NoError(t, s.Apply(core.CommandQuit))
	select {
	case <-s.Done():
	default:
		t.Fatal("session not done after quit")
	}
	assert.False(t, s.Running())

	// Quitting twice must not close done twice
	require.NoError(t, s.Apply(core.CommandQuit))

	writes := out.count()
	require.NoError(t, s.Apply(core.CommandFall))
	assert.Equal(t, writes, out.count())
}

func TestSessionApplyReturnsWriteError(t *testing.T) {
	s, out := newTestSession(t, 1)
	out.err = errors.New("broken pipe")

	err := s.Apply(core.CommandLeft)
	assert.EqualError(t, err, "broken pipe")
}

func TestSessionConcurrentApply(t *testing.T) {
	s, _ := newTestSession(t, 3)
	commands := []core.Command{
		core.CommandLeft, core.CommandRight, core.CommandRotate,
		core.CommandFall, core.CommandToggleHelp, core.CommandToggleNext,
	}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				assert.NoError(t, s.Apply(commands[(g+i)%len(commands)]))
				_ = s.Interval()
				_ = s.Stats()
			}
		}(g)
	}
	wg.Wait()

	stats := s.Stats()
	assert.GreaterOrEqual(t, stats.Level, 1)
	assert.GreaterOrEqual(t, stats.Score, stats.Lines)
}

func TestTickerRunsUntilGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.InitialDelayMS = 1
	cfg.Timing.MinDelayMS = 1
	screen := core.NewScreenBuffer(&bytes.Buffer{})
	ctrl := NewController(screen, Options{Config: cfg, Rand: rand.New(rand.NewSource(9))})
	s := NewSession(ctrl, screen)
	require.NoError(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ticker := NewTicker(s)
	// Without input every piece stacks in the middle columns, so no line
	// ever completes and the stack must reach the top.
	require.NoError(t, ticker.Run(ctx))

	assert.False(t, s.Running())
	assert.Greater(t, ticker.Ticks(), FieldHeight)
	assert.Zero(t, s.Stats().Lines)
}

func TestTickerStopsOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.InitialDelayMS = int(time.Hour / time.Millisecond)
	screen := core.NewScreenBuffer(&bytes.Buffer{})
	ctrl := NewController(screen, Options{Config: cfg, Rand: rand.New(rand.NewSource(1))})
	s := NewSession(ctrl, screen)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	ticker := NewTicker(s)
	go func() { errCh <- ticker.Run(ctx) }()

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("ticker did not stop after cancel")
	}
	assert.True(t, s.Running())
	assert.Zero(t, ticker.Ticks())
}

func TestTickerStopsWhenGameEnds(t *testing.T) {
	cfg := testConfig()
	cfg.Timing.InitialDelayMS = int(time.Hour / time.Millisecond)
	screen := core.NewScreenBuffer(&bytes.Buffer{})
	ctrl := NewController(screen, Options{Config: cfg, Rand: rand.New(rand.NewSource(1))})
	s := NewSession(ctrl, screen)

	errCh := make(chan error, 1)
	go func() { errCh <- NewTicker(s).Run(context.Background()) }()

	require.NoError(t, s.Apply(core.CommandQuit))
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ticker did not stop after game over")
	}
}
