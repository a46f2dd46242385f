package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, diagram string) *Board {
	t.Helper()
	b, err := Parse(diagram)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	b := New()

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			sq := b.Location(Coord{x, y})
			if (x+y)%2 == 0 {
				assert.Equal(t, Dark, sq.Color, "square %v", Coord{x, y})
			} else {
				assert.Equal(t, Light, sq.Color, "square %v", Coord{x, y})
			}

			switch {
			case sq.Color == Light, y == 3, y == 4:
				assert.Nil(t, sq.Occupant, "square %v", Coord{x, y})
			case y < 3:
				require.NotNil(t, sq.Occupant, "square %v", Coord{x, y})
				assert.Equal(t, Red, sq.Occupant.Color)
				assert.False(t, sq.Occupant.King)
			default:
				require.NotNil(t, sq.Occupant, "square %v", Coord{x, y})
				assert.Equal(t, Blue, sq.Occupant.Color)
				assert.False(t, sq.Occupant.King)
			}
		}
	}

	assert.Len(t, b.Pieces(Red), 12)
	assert.Len(t, b.Pieces(Blue), 12)
}

func TestOnBoard(t *testing.T) {
	b := NewEmpty()
	for x := -2; x < Size+2; x++ {
		for y := -2; y < Size+2; y++ {
			want := x >= 0 && x <= 7 && y >= 0 && y <= 7
			assert.Equal(t, want, b.OnBoard(Coord{x, y}), "coord %v", Coord{x, y})
		}
	}
}

func TestRelative(t *testing.T) {
	b := NewEmpty()

	assert.Equal(t, Coord{0, 1}, b.Relative(NorthWest, Coord{1, 2}))
	assert.Equal(t, Coord{4, 5}, b.Relative(SouthEast, Coord{3, 4}))
	assert.Equal(t, Coord{4, 5}, b.Relative(NorthEast, Coord{3, 6}))
	assert.Equal(t, Coord{1, 6}, b.Relative(SouthWest, Coord{2, 5}))

	// no bounds checking
	assert.Equal(t, Coord{-1, -1}, b.Relative(NorthWest, Coord{0, 0}))
}

func TestRelativePanicsOnUnknownDirection(t *testing.T) {
	b := NewEmpty()
	assert.Panics(t, func() { b.Relative(Direction(4), Coord{3, 3}) })
}

func TestAdjacent(t *testing.T) {
	b := NewEmpty()
	assert.Equal(t, []Coord{{2, 2}, {4, 2}, {2, 4}, {4, 4}}, b.Adjacent(Coord{3, 3}))
	assert.Equal(t, []Coord{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}, b.Adjacent(Coord{0, 0}))
}

func TestBlindLegalMoves(t *testing.T) {
	b := NewEmpty()
	c := Coord{3, 3}

	assert.Empty(t, b.BlindLegalMoves(c))

	b.Place(c, NewPiece(Blue))
	assert.Equal(t, []Coord{{2, 2}, {4, 2}}, b.BlindLegalMoves(c))

	b.Place(c, NewPiece(Red))
	assert.Equal(t, []Coord{{2, 4}, {4, 4}}, b.BlindLegalMoves(c))

	b.Place(c, &Piece{Color: Red, King: true})
	assert.Len(t, b.BlindLegalMoves(c), 4)

	b.Place(c, &Piece{Color: Blue, King: true})
	assert.ElementsMatch(t, b.Adjacent(c), b.BlindLegalMoves(c))

	// edges are not considered
	b.Place(Coord{0, 0}, NewPiece(Blue))
	assert.Equal(t, []Coord{{-1, -1}, {1, -1}}, b.BlindLegalMoves(Coord{0, 0}))
}

func TestLegalMovesSimple(t *testing.T) {
	b := New()

	assert.Empty(t, b.LegalMoves(Coord{3, 3}, false), "empty square")
	assert.ElementsMatch(t, []Coord{{0, 4}, {2, 4}}, b.LegalMoves(Coord{1, 5}, false))
	assert.ElementsMatch(t, []Coord{{1, 3}, {3, 3}}, b.LegalMoves(Coord{2, 2}, false))
	assert.Equal(t, []Coord{{1, 3}}, b.LegalMoves(Coord{0, 2}, false), "left edge")
	assert.Empty(t, b.LegalMoves(Coord{0, 6}, false), "blocked by own pieces")
}

func TestLegalMovesCapture(t *testing.T) {
	b := mustParse(t, `
		........
		........
		........
		...r....
		....b...
		........
		........
		........`)

	// Blue on (4,4) jumps Red on (3,3) landing on (2,2)
	assert.ElementsMatch(t, []Coord{{2, 2}, {5, 3}}, b.LegalMoves(Coord{4, 4}, false))
	// captured piece stays until the caller removes it
	assert.NotNil(t, b.Location(Coord{3, 3}).Occupant)

	// Red on (3,3) jumps Blue on (4,4) landing on (5,5)
	assert.ElementsMatch(t, []Coord{{2, 4}, {5, 5}}, b.LegalMoves(Coord{3, 3}, false))
}

func TestLegalMovesCaptureBlocked(t *testing.T) {
	b := mustParse(t, `
		........
		.r......
		..r.....
		...b....
		........
		........
		........
		........`)

	// landing square (1,1) is occupied
	assert.Equal(t, []Coord{{4, 2}}, b.LegalMoves(Coord{3, 3}, false))

	edge := mustParse(t, `
		........
		........
		r.......
		.b......
		........
		........
		........
		........`)

	// landing square (-1,1) is off the board
	assert.Equal(t, []Coord{{2, 2}}, edge.LegalMoves(Coord{1, 3}, false))
}

func TestLegalMovesHopOnlyCaptures(t *testing.T) {
	b := mustParse(t, `
		........
		........
		........
		...r....
		....b...
		........
		........
		........`)

	assert.Equal(t, []Coord{{2, 2}}, b.LegalMoves(Coord{4, 4}, true))

	open := New()
	for _, c := range open.Pieces(Blue) {
		assert.Empty(t, open.LegalMoves(c, true), "no captures available from %v", c)
	}

	for _, c := range []Coord{{4, 4}, {3, 3}} {
		for _, m := range b.LegalMoves(c, true) {
			assert.NotContains(t, b.Adjacent(c), m, "hop from %v must not include simple moves", c)
		}
	}
}

func TestLegalMovesKing(t *testing.T) {
	b := mustParse(t, `
		........
		........
		..r.....
		...R....
		..b.....
		........
		........
		........`)

	// red king on (3,3): own piece NW, enemy SW with landing (1,5)
	assert.ElementsMatch(t, []Coord{{4, 2}, {4, 4}, {1, 5}}, b.LegalMoves(Coord{3, 3}, false))
	assert.Equal(t, []Coord{{1, 5}}, b.LegalMoves(Coord{3, 3}, true))
}

func TestMovePiece(t *testing.T) {
	b := New()
	from, to := Coord{1, 5}, Coord{2, 4}
	p := b.Location(from).Occupant

	b.MovePiece(from, to)

	assert.Nil(t, b.Location(from).Occupant)
	assert.Same(t, p, b.Location(to).Occupant)
	assert.False(t, p.King)
}

func TestCaptureRemoval(t *testing.T) {
	b := mustParse(t, `
		........
		........
		........
		...r....
		....b...
		........
		........
		........`)

	from, to := Coord{4, 4}, Coord{2, 2}
	require.Contains(t, b.LegalMoves(from, false), to)
	assert.NotContains(t, b.Adjacent(from), to)

	b.MovePiece(from, to)
	mid := Midpoint(from, to)
	assert.Equal(t, Coord{3, 3}, mid)
	b.RemovePiece(mid)

	assert.Empty(t, b.Pieces(Red))
	assert.Equal(t, []Coord{to}, b.Pieces(Blue))
}

func TestPromotion(t *testing.T) {
	b := mustParse(t, `
		........
		.b......
		........
		........
		........
		........
		......r.
		........`)

	b.MovePiece(Coord{1, 1}, Coord{0, 0})
	assert.True(t, b.Location(Coord{0, 0}).Occupant.King, "blue promotes on y=0")

	b.MovePiece(Coord{6, 6}, Coord{7, 7})
	assert.True(t, b.Location(Coord{7, 7}).Occupant.King, "red promotes on y=7")

	// idempotent
	b.Promote(Coord{7, 7})
	assert.True(t, b.Location(Coord{7, 7}).Occupant.King)

	// empty square is a no-op
	b.Promote(Coord{4, 4})
	assert.Nil(t, b.Location(Coord{4, 4}).Occupant)
}

func TestNoPromotionElsewhere(t *testing.T) {
	b := NewEmpty()

	b.Place(Coord{2, 7}, NewPiece(Blue))
	b.Promote(Coord{2, 7})
	assert.False(t, b.Location(Coord{2, 7}).Occupant.King, "blue on its own back row")

	b.Place(Coord{3, 0}, NewPiece(Red))
	b.Promote(Coord{3, 0})
	assert.False(t, b.Location(Coord{3, 0}).Occupant.King, "red on its own back row")

	b.Place(Coord{4, 4}, NewPiece(Red))
	b.MovePiece(Coord{4, 4}, Coord{5, 5})
	assert.False(t, b.Location(Coord{5, 5}).Occupant.King)
}

func TestIsEndRow(t *testing.T) {
	b := NewEmpty()
	assert.True(t, b.IsEndRow(Coord{2, 7}))
	assert.True(t, b.IsEndRow(Coord{5, 0}))
	assert.False(t, b.IsEndRow(Coord{0, 5}))
}

func TestParseRoundTrip(t *testing.T) {
	b := New()
	parsed := mustParse(t, b.String())
	assert.Equal(t, b.String(), parsed.String())

	slashed := mustParse(t, "r......./......../......../......../......../......../......../.......B")
	assert.Equal(t, Red, slashed.Location(Coord{0, 0}).Occupant.Color)
	assert.True(t, slashed.Location(Coord{7, 7}).Occupant.King)

	_, err := Parse("rrr")
	assert.Error(t, err)
	_, err = Parse("x......./......../......../......../......../......../......../........")
	assert.Error(t, err)
}

func TestParseRejectsLightSquares(t *testing.T) {
	_, err := Parse(".r....../......../......../......../......../......../......../........")
	assert.ErrorContains(t, err, "light square (1,0)")

	_, err = Parse(`
		........
		........
		........
		..r.....
		...b....
		........
		........
		........`)
	assert.Error(t, err)

	// every piece of the starting position sits on a dark square
	_, err = Parse(New().String())
	assert.NoError(t, err)
}

func TestColorOpponent(t *testing.T) {
	assert.Equal(t, Blue, Red.Opponent())
	assert.Equal(t, Red, Blue.Opponent())
	assert.Equal(t, "Red", Red.String())
	assert.Equal(t, "(3,4)", Coord{3, 4}.String())
	assert.Equal(t, "SE", SouthEast.String())
}
