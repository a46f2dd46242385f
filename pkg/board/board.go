// Package board implements the 8x8 checkers grid and its movement rules.
package board

import (
	"fmt"
	"strings"
)

const Size = 8

// Board is indexed [x][y]. Red starts on rows 0-2 and moves toward y=7,
// Blue starts on rows 5-7 and moves toward y=0.
type Board struct {
	squares [Size][Size]Square
}

// NewEmpty returns a board with colored squares and no pieces
func NewEmpty() *Board {
	b := &Board{}
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if (x+y)%2 == 0 {
				b.squares[x][y].Color = Dark
			} else {
				b.squares[x][y].Color = Light
			}
		}
	}
	return b
}

// New returns a board in the starting position
func New() *Board {
	b := NewEmpty()
	for x := 0; x < Size; x++ {
		for y := 0; y < 3; y++ {
			if b.squares[x][y].Color == Dark {
				b.squares[x][y].Occupant = NewPiece(Red)
			}
		}
		for y := 5; y < Size; y++ {
			if b.squares[x][y].Color == Dark {
				b.squares[x][y].Occupant = NewPiece(Blue)
			}
		}
	}
	return b
}

// Location returns the square at c. c must be on the board.
func (b *Board) Location(c Coord) *Square {
	return &b.squares[c.X][c.Y]
}

// Place puts p on c, replacing whatever was there
func (b *Board) Place(c Coord, p *Piece) {
	b.Location(c).Occupant = p
}

// Relative returns the neighbour of c in direction d. The result may be off
// the board.
func (b *Board) Relative(d Direction, c Coord) Coord {
	o := offsets[d]
	return Coord{c.X + o.X, c.Y + o.Y}
}

func (b *Board) OnBoard(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < Size && c.Y < Size
}

// Adjacent returns the four diagonal neighbours of c, unchecked
func (b *Board) Adjacent(c Coord) []Coord {
	adj := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		adj = append(adj, b.Relative(d, c))
	}
	return adj
}

// BlindLegalMoves returns the single step destinations the piece on c could
// take going only by its color and rank. Edges and occupancy are ignored.
func (b *Board) BlindLegalMoves(c Coord) []Coord {
	p := b.Location(c).Occupant
	switch {
	case p == nil:
		return []Coord{}
	case p.King:
		return b.Adjacent(c)
	case p.Color == Blue:
		return []Coord{b.Relative(NorthWest, c), b.Relative(NorthEast, c)}
	default:
		return []Coord{b.Relative(SouthWest, c), b.Relative(SouthEast, c)}
	}
}

// LegalMoves returns the destinations open to the piece on c. With hop set
// only capturing jumps are returned, which is what a piece in the middle of a
// capture chain is allowed to do.
func (b *Board) LegalMoves(c Coord, hop bool) []Coord {
	moves := []Coord{}
	p := b.Location(c).Occupant
	if p == nil {
		return moves
	}

	for _, step := range b.BlindLegalMoves(c) {
		if !b.OnBoard(step) {
			continue
		}

		target := b.Location(step).Occupant
		if target == nil {
			if !hop {
				moves = append(moves, step)
			}
			continue
		}
		if target.Color == p.Color {
			continue
		}

		landing := Coord{step.X + (step.X - c.X), step.Y + (step.Y - c.Y)}
		if b.OnBoard(landing) && b.Location(landing).Empty() {
			moves = append(moves, landing)
		}
	}
	return moves
}

// MovePiece moves the occupant of from onto to and promotes it if it reached
// the far row. The destination must be empty.
func (b *Board) MovePiece(from, to Coord) {
	b.Location(to).Occupant = b.Location(from).Occupant
	b.RemovePiece(from)

	b.Promote(to)
}

func (b *Board) RemovePiece(c Coord) {
	b.Location(c).Occupant = nil
}

// Promote kings the piece on c if it stands on its far row
func (b *Board) Promote(c Coord) {
	p := b.Location(c).Occupant
	if p == nil {
		return
	}
	if (p.Color == Blue && c.Y == 0) || (p.Color == Red && c.Y == Size-1) {
		p.King = true
	}
}

func (b *Board) IsEndRow(c Coord) bool {
	return c.Y == 0 || c.Y == Size-1
}

// Midpoint is the square jumped over by a capture from one to another
func Midpoint(from, to Coord) Coord {
	return Coord{from.X + (to.X-from.X)/2, from.Y + (to.Y-from.Y)/2}
}

// Pieces returns the coordinates of every piece of color c, row by row
func (b *Board) Pieces(c Color) []Coord {
	var coords []Coord
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if p := b.squares[x][y].Occupant; p != nil && p.Color == c {
				coords = append(coords, Coord{x, y})
			}
		}
	}
	return coords
}

// String draws the board one row per line, y=0 first
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sb.WriteRune(b.squares[x][y].Occupant.Rune())
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Parse reads a diagram in the format produced by String: eight rows of eight
// runes, '.' for an empty square, r/b for men and R/B for kings. Rows are
// separated by newlines or '/'. Blank rows and surrounding spaces are ignored.
// Pieces are only allowed on dark squares.
func Parse(diagram string) (*Board, error) {
	var rows []string
	split := func(r rune) bool { return r == '\n' || r == '/' }
	for _, line := range strings.FieldsFunc(diagram, split) {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("board: want %d rows, got %d", Size, len(rows))
	}

	b := NewEmpty()
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != Size {
			return nil, fmt.Errorf("board: row %d: want %d squares, got %d", y, Size, len(runes))
		}
		for x, r := range runes {
			var p *Piece
			switch r {
			case '.':
				continue
			case 'r':
				p = &Piece{Color: Red}
			case 'R':
				p = &Piece{Color: Red, King: true}
			case 'b':
				p = &Piece{Color: Blue}
			case 'B':
				p = &Piece{Color: Blue, King: true}
			default:
				return nil, fmt.Errorf("board: row %d: unknown piece %q", y, r)
			}
			if b.squares[x][y].Color != Dark {
				return nil, fmt.Errorf("board: piece on light square %v", Coord{x, y})
			}
			b.squares[x][y].Occupant = p
		}
	}
	return b, nil
}
