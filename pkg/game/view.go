package game

import "github.com/qnkhuat/checkerterm/pkg/board"

// View is everything a renderer needs to draw one frame. Board is shared with
// the game and must only be read.
type View struct {
	Board       *board.Board
	Turn        board.Color
	State       State
	Selected    board.Coord
	HasSelected bool
	ForcedHop   bool
	LegalMoves  []board.Coord
	Message     string
}

func (g *Game) View() View {
	return View{
		Board:       g.Board,
		Turn:        g.turn,
		State:       g.state,
		Selected:    g.selected,
		HasSelected: g.hasSel,
		ForcedHop:   g.hop,
		LegalMoves:  g.LegalMoves(),
		Message:     g.Message(),
	}
}

// IsLegal reports whether c is one of the highlighted destinations
func (v View) IsLegal(c board.Coord) bool {
	return contains(v.LegalMoves, c)
}
