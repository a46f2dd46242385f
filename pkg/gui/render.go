package gui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/checkerterm/pkg/board"
	"github.com/qnkhuat/checkerterm/pkg/game"
)

const (
	pieceRune = '●'
	kingRune  = '♛'
	files     = "abcdefgh"
)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// stylePiece applies the theme's style to a piece based upon its color
func stylePiece(p *board.Piece, sqBg tcell.Color, t Theme) tcell.Style {
	pieceStyle := tcell.StyleDefault.Background(sqBg)

	if p.Color == board.Red {
		return pieceStyle.Foreground(t.Red)
	}
	return pieceStyle.Foreground(t.Blue)
}

// squareBg returns the theme's color corresponding to the square
func squareBg(v game.View, c board.Coord, t Theme) tcell.Color {
	if v.HasSelected && v.Selected == c {
		return t.SquareSelected
	}
	if v.IsLegal(c) {
		return t.SquareHigh
	}
	if v.Board.Location(c).Color == board.Dark {
		return t.SquareDark
	}
	return t.SquareLight
}

// drawSquare fills one board square and draws its piece in the middle
func drawSquare(s tcell.Screen, g Geometry, c board.Coord, p *board.Piece, sqBg tcell.Color, t Theme) {
	x0, y0 := g.Origin(c)
	bg := tcell.StyleDefault.Background(sqBg)
	for y := y0; y < y0+g.SquareH; y++ {
		for x := x0; x < x0+g.SquareW; x++ {
			s.SetContent(x, y, ' ', nil, bg)
		}
	}
	if p == nil {
		return
	}

	cx, cy := g.PixelCoords(c)
	drawRune(s, cx, cy, stylePiece(p, sqBg, t), pieceRune)
	if p.King {
		// crown sits left of the piece; on narrow squares it replaces it
		crownX := cx - 1
		if g.SquareW < 3 {
			crownX = cx
		}
		drawRune(s, crownX, cy, bg.Foreground(t.King), kingRune)
	}
}

// drawRanks draws the row indicators, marking the crowning rows
func drawRanks(s tcell.Screen, v game.View, g Geometry, t Theme) {
	for y := 0; y < board.Size; y++ {
		c := board.Coord{X: 0, Y: y}
		_, cy := g.PixelCoords(c)
		style := tcell.StyleDefault.Foreground(t.Rank)
		if v.Board.IsEndRow(c) {
			style = style.Foreground(t.King)
		}
		drawText(s, g.Left-2, cy, style, strconv.Itoa(board.Size-y))
	}
}

// drawFiles draws the column indicators under the board
func drawFiles(s tcell.Screen, g Geometry, t Theme) {
	style := tcell.StyleDefault.Foreground(t.File)
	for x := 0; x < board.Size; x++ {
		cx, _ := g.PixelCoords(board.Coord{X: x, Y: 0})
		drawRune(s, cx, g.Top+g.Height(), style, rune(files[x]))
	}
}

// TurnLabel describes whose move it is
func TurnLabel(v game.View) string {
	switch {
	case v.State == game.GameOver:
		return " Game over "
	case v.ForcedHop:
		return fmt.Sprintf(" %s must keep jumping ", v.Turn)
	default:
		return fmt.Sprintf(" %s to move ", v.Turn)
	}
}

// drawTurnLabel displays the current turn above the board
func drawTurnLabel(s tcell.Screen, v game.View, g Geometry, t Theme) {
	labelStyle := tcell.StyleDefault.Background(t.LabelBg).Foreground(t.LabelFg)
	// clear what a longer label may have left behind
	drawText(s, g.Left, g.Top-2, DefStyle, fmt.Sprintf("%*s", g.Width(), ""))
	drawText(s, g.Left, g.Top-2, labelStyle, TurnLabel(v))
}

// drawMsgLabel displays the end of game message under the board
func drawMsgLabel(s tcell.Screen, msg string, g Geometry, t Theme) {
	labelStyle := tcell.StyleDefault.Foreground(t.Msg).Bold(true)
	drawText(s, g.Left, g.Top+g.Height()+2, labelStyle, msg)
}

// drawBoard draws every square of the board
func drawBoard(s tcell.Screen, v game.View, g Geometry, t Theme) {
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			c := board.Coord{X: x, Y: y}
			drawSquare(s, g, c, v.Board.Location(c).Occupant, squareBg(v, c, t), t)
		}
	}
}

// Render draws a frame. The caller shows the screen.
func Render(s tcell.Screen, v game.View, t Theme, g Geometry) {
	drawTurnLabel(s, v, g, t)
	drawRanks(s, v, g, t)
	drawBoard(s, v, g, t)
	drawFiles(s, g, t)
	if v.Message != "" {
		drawMsgLabel(s, v.Message, g, t)
	}
}
