package tetris

import (
	"strings"

	"github.com/vovakirdan/termtris/internal/core"
)

// Drawable is a screen element that can be hidden without leaving stale
// glyphs: hiding overwrites its footprint with blanks.
type Drawable interface {
	Show()
	Hide()
	Toggle()
}

var (
	_ Drawable = (*Piece)(nil)
	_ Drawable = (*HelpPanel)(nil)
)

var helpText = []string{
	"  Use cursor keys",
	"       or",
	"    s: rotate",
	"a: left,  d: right",
	"    space: drop",
	"      q: quit",
	"  c: toggle color",
	"n: toggle show next",
	"h: toggle this help",
}

// HelpPanel lists the key bindings.
type HelpPanel struct {
	screen  *core.ScreenBuffer
	pos     core.Point
	color   core.Color
	visible bool
}

// NewHelpPanel creates a help panel drawn at pos.
func NewHelpPanel(screen *core.ScreenBuffer, pos core.Point, visible bool) *HelpPanel {
	return &HelpPanel{
		screen:  screen,
		pos:     pos,
		color:   core.ColorCyan,
		visible: visible,
	}
}

// Visible reports whether the panel is drawn.
func (h *HelpPanel) Visible() bool { return h.visible }

// Show draws the panel if it is visible.
func (h *HelpPanel) Show() {
	if h.visible {
		h.draw(true)
	}
}

// Hide blanks the panel if it is visible.
func (h *HelpPanel) Hide() {
	if h.visible {
		h.draw(false)
	}
}

// Toggle flips visibility and redraws.
func (h *HelpPanel) Toggle() {
	h.visible = !h.visible
	h.draw(h.visible)
}

func (h *HelpPanel) draw(visible bool) {
	h.screen.Bold()
	h.screen.SetFg(h.color)
	for i, line := range helpText {
		if !visible {
			line = strings.Repeat(" ", len(line))
		}
		h.screen.PrintAt(h.pos.X, h.pos.Y+i, line)
	}
	h.screen.Reset()
}
