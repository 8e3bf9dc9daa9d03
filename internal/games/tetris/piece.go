package tetris

import (
	"math/rand"

	"github.com/vovakirdan/termtris/internal/core"
)

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeLine
	ShapeS
	ShapeZ
	ShapeL
	ShapeJ
	ShapeT

	shapeCount
)

// Cell glyphs. Every playfield cell is two characters wide.
const (
	filledCell     = "[]"
	nextEmptyCell  = "  "
	fieldEmptyCell = " ."
)

// rotations lists, per shape, the four occupied offsets of every distinct
// rotation state inside a 4x4 box. The number of entries is the shape's
// symmetry count.
var rotations = [shapeCount][][4]core.Point{
	ShapeSquare: {
		{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	},
	ShapeLine: {
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}},
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}},
	},
	ShapeS: {
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	},
	ShapeZ: {
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 2}},
	},
	ShapeL: {
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
		{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	},
	ShapeJ: {
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}},
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
		{{X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	},
	ShapeT: {
		{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}},
		{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
		{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	},
}

// Symmetry returns the number of distinct rotation states of the shape.
func (s Shape) Symmetry() int {
	return len(rotations[s])
}

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeLine:
		return "line"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeL:
		return "L"
	case ShapeJ:
		return "J"
	case ShapeT:
		return "T"
	default:
		return "unknown"
	}
}

// CellsAt returns the absolute cells the shape occupies in the given rotation
// with its 4x4 box anchored at anchor.
func CellsAt(shape Shape, rotation int, anchor core.Point) [4]core.Point {
	var cells [4]core.Point
	for i, off := range rotations[shape][rotation] {
		cells[i] = anchor.Add(off)
	}
	return cells
}

// Piece is a tetromino with a position, either falling in the playfield or
// waiting in the next-piece preview.
type Piece struct {
	screen *core.ScreenBuffer

	shape    Shape
	rotation int
	pos      core.Point // Anchor in grid cells
	origin   core.Point // Screen column/row of grid cell (0, 0)
	color    core.Color
	visible  bool
	empty    string // Glyph drawn over cells when hiding
}

// NewPiece creates a piece with a random shape, rotation and color.
// It starts life in the next-piece preview at origin.
func NewPiece(rng *rand.Rand, screen *core.ScreenBuffer, origin core.Point, visible bool) *Piece {
	shape := Shape(rng.Intn(int(shapeCount)))
	return &Piece{
		screen:   screen,
		shape:    shape,
		rotation: rng.Intn(shape.Symmetry()),
		origin:   origin,
		color:    core.RandomColor(rng),
		visible:  visible,
		empty:    nextEmptyCell,
	}
}

// Shape returns the piece's shape.
func (p *Piece) Shape() Shape { return p.shape }

// Rotation returns the current rotation index.
func (p *Piece) Rotation() int { return p.rotation }

// Position returns the anchor position in grid cells.
func (p *Piece) Position() core.Point { return p.pos }

// Color returns the piece color.
func (p *Piece) Color() core.Color { return p.color }

// Visible reports whether the piece is drawn.
func (p *Piece) Visible() bool { return p.visible }

// Cells returns the cells occupied at the current position and rotation.
func (p *Piece) Cells() [4]core.Point {
	return CellsAt(p.shape, p.rotation, p.pos)
}

// Candidate returns the position and rotation the piece would have after
// moving by (dx, dy) and rotating dr steps. The piece itself is unchanged.
func (p *Piece) Candidate(dx, dy, dr int) (core.Point, int) {
	pos := core.Point{X: p.pos.X + dx, Y: p.pos.Y + dy}
	return pos, (p.rotation + dr) % p.shape.Symmetry()
}

// MoveTo places the piece without any validation.
func (p *Piece) MoveTo(pos core.Point, rotation int) {
	p.pos = pos
	p.rotation = rotation
}

// placeInField moves the piece into the playfield at the spawn anchor.
func (p *Piece) placeInField(spawn, origin core.Point) {
	p.pos = spawn
	p.origin = origin
	p.empty = fieldEmptyCell
	p.visible = true
}

// Show draws the piece if it is visible.
func (p *Piece) Show() {
	if p.visible {
		p.draw(true)
	}
}

// Hide blanks the piece if it is visible. Visibility is unchanged.
func (p *Piece) Hide() {
	if p.visible {
		p.draw(false)
	}
}

// Toggle flips visibility and redraws accordingly.
func (p *Piece) Toggle() {
	p.visible = !p.visible
	p.draw(p.visible)
}

func (p *Piece) draw(visible bool) {
	glyph := p.empty
	if visible {
		p.screen.SetFg(p.color)
		p.screen.SetBg(p.color)
		glyph = filledCell
	}
	for _, c := range p.Cells() {
		p.screen.PrintAt(p.origin.X+c.X*2, p.origin.Y+c.Y, glyph)
	}
	p.screen.Reset()
}
