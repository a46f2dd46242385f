package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/checkerterm/pkg/game"
)

// space left of the board for rank labels and above it for the turn label
const (
	marginLeft = 3
	marginTop  = 2
)

// BoardView is a tview primitive that draws a game and turns mouse clicks
// into moves
type BoardView struct {
	*tview.Box

	game    *game.Game
	theme   Theme
	squareW int
	squareH int

	quit     func()
	reset    func()
	snapshot func()
	changed  func()
}

func NewBoardView(g *game.Game, t Theme, squareW, squareH int) *BoardView {
	return &BoardView{
		Box:     tview.NewBox(),
		game:    g,
		theme:   t,
		squareW: squareW,
		squareH: squareH,
	}
}

// SetQuitFunc sets the handler for q and Esc
func (bv *BoardView) SetQuitFunc(f func()) *BoardView {
	bv.quit = f
	return bv
}

// SetResetFunc sets the handler for r
func (bv *BoardView) SetResetFunc(f func()) *BoardView {
	bv.reset = f
	return bv
}

// SetSnapshotFunc sets the handler for s
func (bv *BoardView) SetSnapshotFunc(f func()) *BoardView {
	bv.snapshot = f
	return bv
}

// SetChangedFunc is called after every click that reached the board
func (bv *BoardView) SetChangedFunc(f func()) *BoardView {
	bv.changed = f
	return bv
}

func (bv *BoardView) SetTheme(t Theme) *BoardView {
	bv.theme = t
	return bv
}

// Geometry returns where the board currently sits on screen
func (bv *BoardView) Geometry() Geometry {
	x, y, _, _ := bv.GetInnerRect()
	return Geometry{
		Left:    x + marginLeft,
		Top:     y + marginTop,
		SquareW: bv.squareW,
		SquareH: bv.squareH,
	}
}

// MinSize is the smallest width and height that fits the board and labels
func (bv *BoardView) MinSize() (int, int) {
	g := Geometry{SquareW: bv.squareW, SquareH: bv.squareH}
	return marginLeft + g.Width() + 1, marginTop + g.Height() + 3
}

func (bv *BoardView) Draw(screen tcell.Screen) {
	bv.Box.DrawForSubclass(screen, bv)
	Render(screen, bv.game.View(), bv.theme, bv.Geometry())
}

func (bv *BoardView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return bv.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyEscape:
			call(bv.quit)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				call(bv.quit)
			case 'r':
				call(bv.reset)
			case 's':
				call(bv.snapshot)
			}
		}
	})
}

func (bv *BoardView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return bv.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !bv.InRect(x, y) {
			return false, nil
		}
		if action != tview.MouseLeftClick {
			return false, nil
		}
		setFocus(bv)
		if c, ok := bv.Geometry().BoardCoords(x, y); ok {
			bv.game.Click(c)
			call(bv.changed)
		}
		return true, nil
	})
}

func call(f func()) {
	if f != nil {
		f()
	}
}
