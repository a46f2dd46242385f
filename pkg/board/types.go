package board

import (
	"strconv"
	"strings"
)

// Color is the side a piece belongs to
type Color int

const (
	Red Color = iota
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// Opponent returns the other side
func (c Color) Opponent() Color {
	if c == Red {
		return Blue
	}
	return Red
}

// SquareColor is the fixed color of a board square
type SquareColor int

const (
	Light SquareColor = iota
	Dark
)

func (sc SquareColor) String() string {
	if sc == Dark {
		return "Dark"
	}
	return "Light"
}

// Direction is one of the four diagonals. North is toward y=0.
type Direction uint8

const (
	NorthWest Direction = iota
	NorthEast
	SouthWest
	SouthEast
)

// Directions lists every diagonal in the order Adjacent reports them
var Directions = [...]Direction{NorthWest, NorthEast, SouthWest, SouthEast}

// Indexed by Direction. A value outside the enum is a programmer error and
// panics on lookup instead of resolving to a fallback.
var offsets = [...]Coord{
	NorthWest: {-1, -1},
	NorthEast: {1, -1},
	SouthWest: {-1, 1},
	SouthEast: {1, 1},
}

func (d Direction) String() string {
	return [...]string{"NW", "NE", "SW", "SE"}[d]
}

// Coord addresses a square by column (X) and row (Y)
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(c.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(c.Y))
	b.WriteRune(')')

	return b.String()
}

// Piece is a checker. King is set once by promotion and never cleared.
type Piece struct {
	Color Color
	King  bool
}

func NewPiece(c Color) *Piece {
	return &Piece{Color: c}
}

// Rune is the single character used in text diagrams
func (p *Piece) Rune() rune {
	switch {
	case p == nil:
		return '.'
	case p.Color == Red && p.King:
		return 'R'
	case p.Color == Red:
		return 'r'
	case p.King:
		return 'B'
	default:
		return 'b'
	}
}

// Square is one cell of the board. It owns at most one piece.
type Square struct {
	Color    SquareColor
	Occupant *Piece
}

func (s *Square) Empty() bool {
	return s.Occupant == nil
}
