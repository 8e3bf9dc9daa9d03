// Package tui connects the game engine to a real terminal: raw mode, key
// decoding, the input and gravity actors, and the Bubble Tea screens shown
// outside of a game.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
	"github.com/vovakirdan/termtris/internal/storage"
)

// ErrNotTerminal is returned by Run when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("tui: input is not a terminal")

// Options configures a terminal game.
type Options struct {
	Config  config.TetrisConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Final scores are not saved when nil
	Logger  *log.Logger
	In      *os.File // Defaults to os.Stdin
	Out     *os.File // Defaults to os.Stdout
}

// Run plays one game on the terminal and returns the final counters.
// The terminal is switched to raw mode for the duration of the game and
// restored before Run returns. Cancelling ctx ends the game early.
func Run(ctx context.Context, opts Options) (tetris.Stats, error) {
	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return tetris.Stats{}, ErrNotTerminal
	}

	rc := opts.Runtime
	if w, h, err := term.GetSize(int(out.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	if !rc.FitsScreen() {
		logger.Warn("terminal is smaller than the game layout",
			"width", rc.ScreenW, "height", rc.ScreenH,
			"min_width", core.MinScreenW, "min_height", core.MinScreenH)
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return tetris.Stats{}, fmt.Errorf("tui: enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState) //nolint:errcheck // Nothing useful to do if restoring fails

	screen := core.NewScreenBuffer(out)
	ctrl := tetris.NewController(screen, tetris.Options{
		Config: opts.Config,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
	})
	session := tetris.NewSession(ctrl, screen)

	logger.Info("game started", "seed", seed, "width", rc.ScreenW, "height", rc.ScreenH)
	playErr := Play(ctx, session, in)

	stats := session.Stats()
	saveResult(opts.Store, stats, logger)
	logger.Info("game finished", "score", stats.Score, "lines", stats.Lines, "level", stats.Level)

	return stats, playErr
}

// Play runs the input actor and the gravity ticker against session until the
// game is over. Cancelling ctx quits the game and Play returns nil.
// in is read on a separate goroutine that is abandoned when Play returns.
func Play(ctx context.Context, session *tetris.Session, in io.Reader) error {
	if err := session.Start(); err != nil {
		return fmt.Errorf("tui: draw: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	keys := make(chan keyEvent)
	go readKeys(gctx, in, keys)

	ticker := tetris.NewTicker(session)
	g.Go(func() error {
		return ticker.Run(gctx)
	})
	g.Go(func() error {
		return InputLoop(gctx, session, keys)
	})

	err := g.Wait()
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		// Interrupted from outside: end the game so the cursor is shown again.
		return session.Apply(core.CommandQuit)
	}
	return err
}

// keyEvent is one input byte, or the error that ended the input stream.
type keyEvent struct {
	key byte
	err error
}

// InputLoop decodes key events and applies the resulting commands until the
// game is over or ctx is cancelled. The end of the input stream quits the
// game; any other read error is returned.
func InputLoop(ctx context.Context, session *tetris.Session, keys <-chan keyEvent) error {
	decoder := NewKeyDecoder()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-session.Done():
			return nil
		case ev, ok := <-keys:
			if !ok || errors.Is(ev.err, io.EOF) {
				return session.Apply(core.CommandQuit)
			}
			if ev.err != nil {
				return fmt.Errorf("tui: read input: %w", ev.err)
			}
			cmd := decoder.Feed(ev.key)
			if cmd == core.CommandNone {
				continue
			}
			if err := session.Apply(cmd); err != nil {
				return fmt.Errorf("tui: draw: %w", err)
			}
		}
	}
}

// readKeys forwards bytes from r one at a time. It stops after the first
// read error, which is forwarded as the last event, or when ctx is done.
func readKeys(ctx context.Context, r io.Reader, keys chan<- keyEvent) {
	defer close(keys)

	buf := make([]byte, 32)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			select {
			case keys <- keyEvent{key: b}:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			select {
			case keys <- keyEvent{err: err}:
			case <-ctx.Done():
			}
			return
		}
	}
}

// saveResult records a finished game. Storage problems never fail the game.
func saveResult(store *storage.Store, stats tetris.Stats, logger *log.Logger) bool {
	if store == nil || stats.Score <= 0 {
		return false
	}
	id, err := store.SaveScore(storage.Result{
		Score: stats.Score,
		Lines: stats.Lines,
		Level: stats.Level,
	})
	if err != nil {
		logger.Warn("could not save score", "error", err)
		return false
	}
	logger.Debug("score saved", "id", id, "score", stats.Score)
	return true
}
