package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name           string
	LabelBg        tcell.Color
	LabelFg        tcell.Color
	SquareDark     tcell.Color
	SquareLight    tcell.Color
	SquareHigh     tcell.Color
	SquareSelected tcell.Color
	Red            tcell.Color
	Blue           tcell.Color
	King           tcell.Color
	Msg            tcell.Color
	Rank           tcell.Color
	File           tcell.Color
}

// ThemeHex is the serializable form of a Theme
type ThemeHex struct {
	Name           string `json:"name" yaml:"name"`
	LabelBg        string `json:"labelBg" yaml:"labelBg"`
	LabelFg        string `json:"labelFg" yaml:"labelFg"`
	SquareDark     string `json:"squareDark" yaml:"squareDark"`
	SquareLight    string `json:"squareLight" yaml:"squareLight"`
	SquareHigh     string `json:"squareHigh" yaml:"squareHigh"`
	SquareSelected string `json:"squareSelected" yaml:"squareSelected"`
	Red            string `json:"red" yaml:"red"`
	Blue           string `json:"blue" yaml:"blue"`
	King           string `json:"king" yaml:"king"`
	Msg            string `json:"msg" yaml:"msg"`
	Rank           string `json:"rank" yaml:"rank"`
	File           string `json:"file" yaml:"file"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.LabelBg.Hex()),
		fmtHex(t.LabelFg.Hex()),
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareHigh.Hex()),
		fmtHex(t.SquareSelected.Hex()),
		fmtHex(t.Red.Hex()),
		fmtHex(t.Blue.Hex()),
		fmtHex(t.King.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.LabelBg),
		tcell.GetColor(t.LabelFg),
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareHigh),
		tcell.GetColor(t.SquareSelected),
		tcell.GetColor(t.Red),
		tcell.GetColor(t.Blue),
		tcell.GetColor(t.King),
		tcell.GetColor(t.Msg),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
	}
}

// ErrNoTheme is returned when a requested theme is not defined
var ErrNoTheme = errors.New("theme: no theme found")

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument. The built in
// themes are consulted when no override matches.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrNoTheme, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",          // Name
	tcell.Color252,   // LabelBg
	tcell.ColorBlack, // LabelFg
	tcell.Color236,   // SquareDark
	tcell.Color230,   // SquareLight
	tcell.Color226,   // SquareHigh
	tcell.Color45,    // SquareSelected
	tcell.Color160,   // Red
	tcell.Color33,    // Blue
	tcell.Color220,   // King
	tcell.Color160,   // Msg
	tcell.Color247,   // Rank
	tcell.Color247,   // File
}

// ThemeClassic mimics a wooden board
var ThemeClassic = Theme{
	"classic",          // Name
	tcell.Color94,      // LabelBg
	tcell.Color230,     // LabelFg
	tcell.Color22,      // SquareDark
	tcell.Color223,     // SquareLight
	tcell.Color142,     // SquareHigh
	tcell.Color172,     // SquareSelected
	tcell.Color124,     // Red
	tcell.Color232,     // Blue
	tcell.Color214,     // King
	tcell.Color196,     // Msg
	tcell.ColorDefault, // Rank
	tcell.ColorDefault, // File
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeClassic}
