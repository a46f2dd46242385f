package pkg

import (
	"fmt"
	"strings"

	"github.com/qnkhuat/checkerterm/pkg/board"
	"github.com/qnkhuat/checkerterm/pkg/config"
	"github.com/qnkhuat/checkerterm/pkg/game"
)

// Players holds the display names of the two sides sharing the terminal
type Players struct {
	Red  string
	Blue string
}

func NewPlayers(cfg config.Players) Players {
	return Players{Red: cfg.Red, Blue: cfg.Blue}
}

// Name returns the display name of side c, falling back to the side itself
func (p Players) Name(c board.Color) string {
	name := p.Blue
	if c == board.Red {
		name = p.Red
	}
	if strings.TrimSpace(name) == "" {
		return strings.ToUpper(c.String())
	}
	return name
}

// Turn describes whose move it is using the player names
func (p Players) Turn(v game.View) string {
	switch {
	case v.State == game.GameOver:
		return "Game over"
	case v.ForcedHop:
		return fmt.Sprintf("%s (%s) must keep jumping", p.Name(v.Turn), v.Turn)
	default:
		return fmt.Sprintf("%s (%s) to move", p.Name(v.Turn), v.Turn)
	}
}

// Result is the winner line once the game is over, empty before that
func (p Players) Result(g *game.Game) string {
	w, ok := g.Winner()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s wins as %s", p.Name(w), w)
}
