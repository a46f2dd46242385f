package pkg

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/qnkhuat/checkerterm/pkg/board"
	"github.com/qnkhuat/checkerterm/pkg/config"
	"github.com/qnkhuat/checkerterm/pkg/game"
	"github.com/qnkhuat/checkerterm/pkg/gui"
	"github.com/qnkhuat/checkerterm/pkg/snapshot"
)

const SnapshotTimeout = 5 * time.Second

// Client is one hot seat game on one terminal
type Client struct {
	App    *tview.Application
	Layout *tview.Grid
	Board  *gui.BoardView
	Status *tview.TextView
	Game   *game.Game

	cfg     *config.Config
	theme   gui.Theme
	players Players
	session string
	log     *zap.Logger

	note     string // result of the last snapshot
	saved    bool   // game over snapshot taken
	stopOnce sync.Once
}

func NewClient(g *game.Game, cfg *config.Config, session string, log *zap.Logger) (*Client, error) {
	theme, err := cfg.ResolveTheme()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	app := tview.NewApplication()
	cl := &Client{
		App:     app,
		Game:    g,
		cfg:     cfg,
		theme:   theme,
		players: NewPlayers(cfg.Players),
		session: session,
		log:     log,
	}

	cl.Board = gui.NewBoardView(g, theme, cfg.SquareWidth, cfg.SquareHeight).
		SetQuitFunc(cl.Stop).
		SetResetFunc(cl.NewGame).
		SetSnapshotFunc(cl.Snapshot).
		SetChangedFunc(cl.refresh)

	newGameBtn := tview.NewButton(string(ActionNewGame)).SetSelectedFunc(cl.NewGame)
	snapshotBtn := tview.NewButton(string(ActionSnapshot)).SetSelectedFunc(cl.Snapshot)
	quitBtn := tview.NewButton(string(ActionQuit)).SetSelectedFunc(cl.Stop)

	cl.Status = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)

	gameOptions := tview.NewGrid().
		SetColumns(-1).
		SetRows(1, 1, 1, 1, 1, 1, -1, 2).
		AddItem(newGameBtn, 0, 0, 1, 1, 0, 0, false).
		AddItem(snapshotBtn, 2, 0, 1, 1, 0, 0, false).
		AddItem(quitBtn, 4, 0, 1, 1, 0, 0, false).
		AddItem(cl.Status, 6, 0, 1, 1, 0, 0, false).
		AddItem(tview.NewTextView().SetDynamicColors(true).SetText(Help), 7, 0, 1, 1, 0, 0, false)

	boardW, boardH := cl.Board.MinSize()
	cl.Layout = tview.NewGrid().
		SetRows(-1, boardH, -1).
		SetColumns(-1, boardW, 30, -1).
		AddItem(tview.NewBox(), 0, 0, 1, 4, 0, 0, false).
		AddItem(tview.NewBox(), 1, 0, 1, 1, 0, 0, false).
		AddItem(cl.Board, 1, 1, 1, 1, 0, 0, true).
		AddItem(gameOptions, 1, 2, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 1, 3, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 2, 0, 1, 4, 0, 0, false)

	cl.refresh()
	return cl, nil
}

// Run blocks until the player quits or the display goes away
func (cl *Client) Run() error {
	cl.log.Info("session_start", zap.String("session", cl.session), zap.String("game_id", cl.Game.ID))
	defer cl.log.Info("session_end", zap.String("session", cl.session))
	return cl.App.SetRoot(cl.Layout, true).EnableMouse(true).SetFocus(cl.Board).Run()
}

// Stop closes the UI. Safe to call more than once.
func (cl *Client) Stop() {
	cl.stopOnce.Do(cl.App.Stop)
}

func (cl *Client) NewGame() {
	cl.Game.Reset()
	cl.note = ""
	cl.saved = false
	cl.App.SetFocus(cl.Board)
	cl.refresh()
}

// Snapshot writes the current position as a PNG
func (cl *Client) Snapshot() {
	path := cl.snapshotPath()
	ctx, cancel := context.WithTimeout(context.Background(), SnapshotTimeout)
	defer cancel()

	opts := snapshot.Options{Theme: cl.theme}
	if err := snapshot.WriteFile(ctx, path, cl.Game.View(), opts); err != nil {
		cl.log.Error("snapshot_failed", zap.String("path", path), zap.Error(err))
		cl.note = fmt.Sprintf("[red]snapshot failed: %v[-]", err)
	} else {
		cl.log.Info("snapshot", zap.String("path", path), zap.String("game_id", cl.Game.ID))
		cl.note = "saved " + path
	}
	cl.App.SetFocus(cl.Board)
	cl.refresh()
}

func (cl *Client) snapshotPath() string {
	if cl.cfg.Snapshot != "" {
		return cl.cfg.Snapshot
	}
	id := cl.Game.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("checkerterm-%s.png", id)
}

// refresh runs after every change to the game
func (cl *Client) refresh() {
	if cl.Game.State() == game.GameOver && !cl.saved {
		cl.saved = true
		if cl.cfg.Snapshot != "" {
			cl.Snapshot()
			return
		}
	}
	cl.Status.SetText(cl.StatusText())
}

// StatusText is the side panel content
func (cl *Client) StatusText() string {
	v := cl.Game.View()
	var sb strings.Builder
	if cl.session != "" {
		fmt.Fprintf(&sb, "session [::b]%s[::-]\n", cl.session)
	}
	fmt.Fprintf(&sb, "[red]%s[-] vs [blue]%s[-]\n\n", cl.players.Name(board.Red), cl.players.Name(board.Blue))
	sb.WriteString(cl.players.Turn(v))
	sb.WriteString("\n")
	if r := cl.players.Result(cl.Game); r != "" {
		fmt.Fprintf(&sb, "[::b]%s[::-]\n", r)
	}
	if cl.note != "" {
		sb.WriteString("\n" + cl.note)
	}
	return sb.String()
}

// Result is the winner line to print once the UI is closed
func (cl *Client) Result() string {
	return cl.players.Result(cl.Game)
}
