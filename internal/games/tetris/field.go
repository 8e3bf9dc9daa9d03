package tetris

import (
	"strings"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

// Playfield dimensions in cells.
const (
	FieldWidth  = config.FieldWidth
	FieldHeight = config.FieldHeight
)

// Cell is one playfield square: either empty or occupied by a landed piece of
// some color. The zero value is empty.
type Cell struct {
	color    core.Color
	occupied bool
}

// EmptyCell is the unoccupied cell.
var EmptyCell = Cell{}

// Occupied returns a cell filled with color.
func Occupied(color core.Color) Cell {
	return Cell{color: color, occupied: true}
}

// IsEmpty reports whether nothing has landed on the cell.
func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// Color returns the cell color and whether the cell is occupied.
func (c Cell) Color() (core.Color, bool) {
	return c.color, c.occupied
}

// row is one line of the grid, left to right.
type row [FieldWidth]Cell

func (r *row) complete() bool {
	for _, c := range r {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// PlayField is the grid pieces land on. Rows are stored top to bottom.
type PlayField struct {
	screen *core.ScreenBuffer
	origin core.Point // Screen column/row of cell (0, 0)
	bounds core.Rect
	rows   [FieldHeight]row
	border core.Color
}

// NewPlayField creates an empty playfield drawn at origin.
func NewPlayField(screen *core.ScreenBuffer, origin core.Point) *PlayField {
	return &PlayField{
		screen: screen,
		origin: origin,
		bounds: core.NewRect(0, 0, FieldWidth, FieldHeight),
		border: core.ColorYellow,
	}
}

// At returns the cell at column x, row y.
// Out-of-bounds coordinates read as empty.
func (f *PlayField) At(x, y int) Cell {
	if !f.bounds.Contains(x, y) {
		return EmptyCell
	}
	return f.rows[y][x]
}

// IsPositionValid reports whether every cell lies inside the grid on an empty square.
func (f *PlayField) IsPositionValid(cells [4]core.Point) bool {
	for _, c := range cells {
		if !f.bounds.ContainsPoint(c) || !f.rows[c.Y][c.X].IsEmpty() {
			return false
		}
	}
	return true
}

// Commit writes color into every listed cell. The caller must have validated
// the position; out-of-bounds cells panic.
func (f *PlayField) Commit(cells [4]core.Point, color core.Color) {
	for _, c := range cells {
		f.rows[c.Y][c.X] = Occupied(color)
	}
}

// ClearCompletedLines removes every full row, shifts the remaining rows down
// keeping their order, refills the top with empty rows and returns how many
// rows were removed.
func (f *PlayField) ClearCompletedLines() int {
	var kept [FieldHeight]row
	dst := FieldHeight - 1
	for y := FieldHeight - 1; y >= 0; y-- {
		if f.rows[y].complete() {
			continue
		}
		kept[dst] = f.rows[y]
		dst--
	}
	cleared := dst + 1
	if cleared > 0 {
		// kept[0:cleared] are zero rows, i.e. empty.
		f.rows = kept
	}
	return cleared
}

// Show draws every cell of the grid.
func (f *PlayField) Show() {
	for y := range f.rows {
		f.screen.MoveTo(f.origin.Y+y, f.origin.X)
		for _, c := range f.rows[y] {
			color, occupied := c.Color()
			if !occupied {
				f.screen.Print(fieldEmptyCell)
				continue
			}
			f.screen.SetFg(color)
			f.screen.SetBg(color)
			f.screen.Print(filledCell)
			f.screen.Reset()
		}
	}
}

// DrawBorder draws the walls and floor around the grid.
func (f *PlayField) DrawBorder() {
	f.screen.Bold()
	f.screen.SetFg(f.border)
	for y := 0; y < FieldHeight; y++ {
		// Border is 2 characters thick, each cell is 2 characters wide
		f.screen.PrintAt(f.origin.X-2, f.origin.Y+y, "<|")
		f.screen.PrintAt(f.origin.X+FieldWidth*2, f.origin.Y+y, "|>")
	}
	for i, s := range []string{"==", `\/`} {
		f.screen.PrintAt(f.origin.X, f.origin.Y+FieldHeight+i, strings.Repeat(s, FieldWidth))
	}
	f.screen.Reset()
}
