package tetris

import (
	"fmt"

	"github.com/vovakirdan/termtris/internal/core"
)

// Score tracks completed lines, level and points.
// All three only ever grow.
type Score struct {
	screen  *core.ScreenBuffer
	pos     core.Point
	color   core.Color
	levelUp int // Points per level

	lines int
	level int
	score int
}

// NewScore creates a score panel drawn at pos.
func NewScore(screen *core.ScreenBuffer, pos core.Point, levelUp int) *Score {
	return &Score{
		screen:  screen,
		pos:     pos,
		color:   core.ColorGreen,
		levelUp: levelUp,
		level:   1,
	}
}

// Lines returns the number of completed lines.
func (s *Score) Lines() int { return s.lines }

// Level returns the current level, starting at 1.
func (s *Score) Level() int { return s.level }

// Points returns the score.
func (s *Score) Points() int { return s.score }

// Update adds a landing's cleared lines. Clearing n lines is worth n² points.
// The level goes up by at most one per call, the first time the score exceeds
// level * levelUp; the return value reports whether that happened.
// The panel is redrawn even when n is 0.
func (s *Score) Update(n int) bool {
	if n < 0 {
		panic(fmt.Sprintf("tetris: negative line count %d", n))
	}
	s.lines += n
	s.score += n * n

	leveledUp := false
	if s.score > s.level*s.levelUp {
		s.level++
		leveledUp = true
	}
	s.Show()
	return leveledUp
}

// Show draws the score panel.
func (s *Score) Show() {
	s.screen.Bold()
	s.screen.SetFg(s.color)
	s.screen.PrintAt(s.pos.X, s.pos.Y, fmt.Sprintf("Lines completed: %d", s.lines))
	s.screen.PrintAt(s.pos.X, s.pos.Y+1, fmt.Sprintf("Level:           %d", s.level))
	s.screen.PrintAt(s.pos.X, s.pos.Y+2, fmt.Sprintf("Score:           %d", s.score))
	s.screen.Reset()
}
