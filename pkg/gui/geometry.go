package gui

import "github.com/qnkhuat/checkerterm/pkg/board"

// Geometry places the board on a grid of cells or pixels. Left and Top are
// the corner of square (0,0).
type Geometry struct {
	Left, Top        int
	SquareW, SquareH int
}

// BoardCoords returns the square under the point (px, py)
func (g Geometry) BoardCoords(px, py int) (board.Coord, bool) {
	if px < g.Left || py < g.Top || g.SquareW <= 0 || g.SquareH <= 0 {
		return board.Coord{}, false
	}
	c := board.Coord{X: (px - g.Left) / g.SquareW, Y: (py - g.Top) / g.SquareH}
	if c.X >= board.Size || c.Y >= board.Size {
		return board.Coord{}, false
	}
	return c, true
}

// PixelCoords returns the centre of square c
func (g Geometry) PixelCoords(c board.Coord) (int, int) {
	return g.Left + c.X*g.SquareW + g.SquareW/2, g.Top + c.Y*g.SquareH + g.SquareH/2
}

// Origin returns the top left corner of square c
func (g Geometry) Origin(c board.Coord) (int, int) {
	return g.Left + c.X*g.SquareW, g.Top + c.Y*g.SquareH
}

func (g Geometry) Width() int  { return g.SquareW * board.Size }
func (g Geometry) Height() int { return g.SquareH * board.Size }
