// Package game runs the checkers turn state machine on top of a board.
package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qnkhuat/checkerterm/pkg/board"
)

type State int

const (
	AwaitingSelection State = iota
	PieceSelected
	ForcedHop
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingSelection:
		return "AwaitingSelection"
	case PieceSelected:
		return "PieceSelected"
	case ForcedHop:
		return "ForcedHop"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game interprets clicks against the board. It is not safe for concurrent
// use; the UI feeds it one event at a time.
type Game struct {
	ID    string
	Board *board.Board

	turn       board.Color
	first      board.Color
	selected   board.Coord
	hasSel     bool
	hop        bool
	legalMoves []board.Coord
	state      State
	winner     board.Color

	start func() *board.Board
	log   *zap.Logger
}

type Option func(*Game)

func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithBoard starts the game from b with first to move. Reset returns to a
// copy of the same position.
func WithBoard(b *board.Board, first board.Color) Option {
	diagram := b.String()
	return func(g *Game) {
		g.first = first
		g.start = func() *board.Board {
			nb, err := board.Parse(diagram)
			if err != nil {
				panic(err)
			}
			return nb
		}
	}
}

func New(opts ...Option) *Game {
	g := &Game{
		first: board.Blue,
		start: board.New,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Reset throws the current game away and sets up a fresh one
func (g *Game) Reset() {
	g.ID = uuid.NewString()
	g.Board = g.start()
	g.turn = g.first
	g.clearTurn()
	g.state = AwaitingSelection

	g.log.Info("game_start", zap.String("game_id", g.ID), zap.Stringer("turn", g.turn))

	// a position with no moves for the side to play is already decided
	g.checkEndgame()
}

func (g *Game) State() State { return g.state }

func (g *Game) Turn() board.Color { return g.turn }

// Selected returns the square of the piece currently being moved
func (g *Game) Selected() (board.Coord, bool) {
	return g.selected, g.hasSel
}

// LegalMoves returns the destinations open to the selected piece
func (g *Game) LegalMoves() []board.Coord {
	out := make([]board.Coord, len(g.legalMoves))
	copy(out, g.legalMoves)
	return out
}

// Winner reports who won once the game is over
func (g *Game) Winner() (board.Color, bool) {
	if g.state != GameOver {
		return 0, false
	}
	return g.winner, true
}

// Message is the end of game banner, empty while play continues
func (g *Game) Message() string {
	w, ok := g.Winner()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s WINS!", strings.ToUpper(w.String()))
}

// Click handles a pointer click on board square c. Clicks that do not make a
// legal selection or move are ignored, including stray clicks in the middle of
// a hop chain, which stays with the jumping piece.
func (g *Game) Click(c board.Coord) {
	if !g.Board.OnBoard(c) {
		return
	}

	switch g.state {
	case AwaitingSelection, PieceSelected:
		if p := g.Board.Location(c).Occupant; p != nil && p.Color == g.turn {
			g.selectPiece(c)
			return
		}
		if g.state == PieceSelected && contains(g.legalMoves, c) {
			g.move(c)
		}
	case ForcedHop:
		if contains(g.legalMoves, c) {
			g.move(c)
		}
	case GameOver:
	}
}

func (g *Game) selectPiece(c board.Coord) {
	g.selected, g.hasSel = c, true
	g.legalMoves = g.Board.LegalMoves(c, false)
	g.state = PieceSelected

	g.log.Debug("game_select", zap.String("game_id", g.ID), zap.Stringer("square", c), zap.Int("moves", len(g.legalMoves)))
}

func (g *Game) move(to board.Coord) {
	from := g.selected
	capture := !contains(g.Board.Adjacent(from), to)

	g.Board.MovePiece(from, to)
	if capture {
		g.Board.RemovePiece(board.Midpoint(from, to))
	}

	g.log.Debug("game_move",
		zap.String("game_id", g.ID),
		zap.Stringer("turn", g.turn),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Bool("capture", capture))

	if !capture {
		g.endTurn()
		return
	}

	g.selected = to
	g.hop = true
	g.legalMoves = g.Board.LegalMoves(to, true)
	if len(g.legalMoves) == 0 {
		g.endTurn()
		return
	}
	g.state = ForcedHop
}

func (g *Game) endTurn() {
	g.turn = g.turn.Opponent()
	g.clearTurn()
	g.state = AwaitingSelection

	g.checkEndgame()
}

func (g *Game) clearTurn() {
	g.selected, g.hasSel = board.Coord{}, false
	g.hop = false
	g.legalMoves = nil
}

// checkEndgame ends the game when the player about to move has no legal move.
// The other player is the winner.
func (g *Game) checkEndgame() bool {
	for x := 0; x < board.Size; x++ {
		for y := 0; y < board.Size; y++ {
			c := board.Coord{X: x, Y: y}
			sq := g.Board.Location(c)
			if sq.Color != board.Dark || sq.Occupant == nil || sq.Occupant.Color != g.turn {
				continue
			}
			if len(g.Board.LegalMoves(c, false)) > 0 {
				return false
			}
		}
	}

	g.state = GameOver
	g.winner = g.turn.Opponent()
	g.log.Info("game_over", zap.String("game_id", g.ID), zap.Stringer("winner", g.winner))
	return true
}

func contains(coords []board.Coord, c board.Coord) bool {
	for _, x := range coords {
		if x == c {
			return true
		}
	}
	return false
}
