// Package tetris implements the falling-block game engine: pieces, playfield,
// scoring and the command-driven state machine that ties them together.
// The engine draws into a core.ScreenBuffer and never touches the terminal.
package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

// Options configures a new Controller.
type Options struct {
	Config config.TetrisConfig
	Rand   *rand.Rand  // Piece generator; seeded from the clock when nil
	Logger *log.Logger // Discards output when nil
}

// Stats is a snapshot of the score counters.
type Stats struct {
	Score int
	Lines int
	Level int
}

// Controller is the game state machine. It owns the current and next piece,
// the playfield and the score, and applies one command at a time.
// It is not safe for concurrent use; see Session.
type Controller struct {
	screen *core.ScreenBuffer
	cfg    config.TetrisConfig
	rng    *rand.Rand
	logger *log.Logger

	field *PlayField
	score *Score
	help  *HelpPanel

	current *Piece
	next    *Piece

	fieldOrigin core.Point
	nextOrigin  core.Point
	spawn       core.Point

	nextVisible  bool
	colorEnabled bool
	running      bool
	interval     time.Duration
	landed       int
}

// NewController sets up a game, spawns the first piece and draws the whole
// screen into the buffer. Nothing is flushed.
func NewController(screen *core.ScreenBuffer, opts Options) *Controller {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	layout := cfg.Layout

	c := &Controller{
		screen:       screen,
		cfg:          cfg,
		rng:          rng,
		logger:       logger,
		field:        NewPlayField(screen, layout.Playfield.Point()),
		score:        NewScore(screen, layout.Score.Point(), cfg.Timing.LevelUp),
		help:         NewHelpPanel(screen, layout.Help.Point(), cfg.Display.ShowHelp),
		fieldOrigin:  layout.Playfield.Point(),
		nextOrigin:   layout.Next.Point(),
		spawn:        core.Point{X: (FieldWidth - 4) / 2, Y: 0},
		nextVisible:  cfg.Display.ShowNext,
		colorEnabled: cfg.Display.Color,
		running:      true,
		interval:     cfg.Timing.InitialDelay(),
	}
	screen.SetColorEnabled(c.colorEnabled)

	c.newNext()
	c.takeNext()
	c.Redraw()
	return c
}

// Running reports whether the game is still in progress.
func (c *Controller) Running() bool { return c.running }

// Interval returns the current gravity interval.
func (c *Controller) Interval() time.Duration { return c.interval }

// Current returns the falling piece.
func (c *Controller) Current() *Piece { return c.current }

// Next returns the piece shown in the preview, nil once the stack has
// reached the top.
func (c *Controller) Next() *Piece { return c.next }

// Field returns the playfield.
func (c *Controller) Field() *PlayField { return c.field }

// HelpVisible reports whether the help panel is shown.
func (c *Controller) HelpVisible() bool { return c.help.Visible() }

// NextVisible reports whether the next-piece preview is shown.
func (c *Controller) NextVisible() bool { return c.nextVisible }

// ColorEnabled reports whether colors are drawn.
func (c *Controller) ColorEnabled() bool { return c.colorEnabled }

// Stats returns the current score counters.
func (c *Controller) Stats() Stats {
	return Stats{
		Score: c.score.Points(),
		Lines: c.score.Lines(),
		Level: c.score.Level(),
	}
}

// Dispatch applies a single command.
func (c *Controller) Dispatch(cmd core.Command) {
	if cmd.IsToggle() {
		c.logger.Debug("display toggled", "command", cmd)
	}
	switch cmd {
	case core.CommandQuit:
		c.Quit()
	case core.CommandLeft:
		c.MoveLeft()
	case core.CommandRight:
		c.MoveRight()
	case core.CommandRotate:
		c.Rotate()
	case core.CommandFall:
		c.SoftDrop()
	case core.CommandDrop:
		c.HardDrop()
	case core.CommandToggleHelp:
		c.ToggleHelp()
	case core.CommandToggleNext:
		c.ToggleNext()
	case core.CommandToggleColor:
		c.ToggleColor()
	}
}

// MoveLeft shifts the current piece one column left if there is room.
func (c *Controller) MoveLeft() {
	if c.running {
		c.move(-1, 0, 0)
	}
}

// MoveRight shifts the current piece one column right if there is room.
func (c *Controller) MoveRight() {
	if c.running {
		c.move(1, 0, 0)
	}
}

// Rotate turns the current piece to its next rotation state if there is room.
func (c *Controller) Rotate() {
	if c.running {
		c.move(0, 0, 1)
	}
}

// SoftDrop moves the current piece down one row. When the piece cannot move
// it lands, the next piece is spawned and SoftDrop returns false.
func (c *Controller) SoftDrop() bool {
	if !c.running {
		return false
	}
	if c.move(0, 1, 0) {
		return true
	}
	c.land()
	c.takeNext()
	return false
}

// HardDrop drops the current piece until it lands.
func (c *Controller) HardDrop() {
	for c.SoftDrop() {
	}
}

// ToggleHelp shows or hides the help panel.
func (c *Controller) ToggleHelp() {
	c.help.Toggle()
}

// ToggleNext shows or hides the next-piece preview.
func (c *Controller) ToggleNext() {
	c.nextVisible = !c.nextVisible
	if c.next != nil {
		c.next.Toggle()
	}
}

// ToggleColor switches colors on or off and redraws the screen.
func (c *Controller) ToggleColor() {
	c.colorEnabled = !c.colorEnabled
	c.screen.SetColorEnabled(c.colorEnabled)
	c.Redraw()
}

// Quit ends the game.
func (c *Controller) Quit() {
	if c.running {
		c.logger.Info("game over",
			"score", c.score.Points(),
			"lines", c.score.Lines(),
			"level", c.score.Level(),
			"pieces", c.landed,
		)
	}
	c.running = false
	c.drawGameOver()
}

// Redraw clears the terminal and draws every panel.
func (c *Controller) Redraw() {
	c.screen.ClearScreen()
	c.screen.HideCursor()
	c.field.DrawBorder()
	c.help.Show()
	c.field.Show()
	c.score.Show()
	if c.next != nil {
		c.next.Show()
	}
	if !c.running {
		c.drawGameOver()
		return
	}
	c.current.Show()
}

// move tries to shift and rotate the current piece. It reports whether the
// command was handled: a blocked horizontal move or rotation is handled by
// doing nothing, only a blocked downward move reports false.
func (c *Controller) move(dx, dy, dr int) bool {
	pos, rotation := c.current.Candidate(dx, dy, dr)
	if c.field.IsPositionValid(CellsAt(c.current.Shape(), rotation, pos)) {
		c.current.Hide()
		c.current.MoveTo(pos, rotation)
		c.current.Show()
		return true
	}
	return dy == 0
}

// land flattens the current piece into the playfield and scores cleared lines.
func (c *Controller) land() {
	c.field.Commit(c.current.Cells(), c.current.Color())
	c.landed++

	cleared := c.field.ClearCompletedLines()
	c.logger.Debug("piece landed",
		"shape", c.current.Shape(),
		"x", c.current.Position().X,
		"y", c.current.Position().Y,
		"cleared", cleared,
	)
	if cleared == 0 {
		return
	}

	if c.score.Update(cleared) {
		c.interval = c.cfg.Timing.Accelerate(c.interval)
		c.logger.Info("level up", "level", c.score.Level(), "interval", c.interval)
	}
	c.field.Show()
}

// takeNext promotes the preview piece to the playfield and generates a new
// preview. If the spawn position is blocked the game ends, the playfield is
// left untouched and there is no preview any more.
func (c *Controller) takeNext() {
	c.next.Hide()
	c.current = c.next
	c.next = nil
	c.current.placeInField(c.spawn, c.fieldOrigin)
	if !c.field.IsPositionValid(c.current.Cells()) {
		c.Quit()
		return
	}
	c.current.Show()
	c.newNext()
}

func (c *Controller) newNext() {
	c.next = NewPiece(c.rng, c.screen, c.nextOrigin, c.nextVisible)
	c.next.Show()
}

func (c *Controller) drawGameOver() {
	pos := c.cfg.Layout.GameOver
	c.screen.PrintAt(pos.X, pos.Y, "Game over!")
	c.screen.PrintAt(pos.X, pos.Y+1, "")
	c.screen.ShowCursor()
}
