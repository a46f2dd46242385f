// Package snapshot renders a game position to a PNG image.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/qnkhuat/checkerterm/pkg/board"
	"github.com/qnkhuat/checkerterm/pkg/game"
	"github.com/qnkhuat/checkerterm/pkg/gui"
)

const (
	DefaultSquareSize = 75
	statusHeight      = 24
)

var (
	fallbackDark     = color.RGBA{118, 150, 86, 255}
	fallbackLight    = color.RGBA{238, 238, 210, 255}
	fallbackHigh     = color.RGBA{246, 246, 105, 255}
	fallbackSelected = color.RGBA{186, 202, 68, 255}
	fallbackRed      = color.RGBA{200, 30, 30, 255}
	fallbackBlue     = color.RGBA{30, 90, 220, 255}
	fallbackKing     = color.RGBA{255, 200, 0, 255}
	statusBg         = color.RGBA{28, 31, 46, 255}
	statusFg         = color.RGBA{236, 239, 255, 255}
)

// Options controls the look of a snapshot. Zero values fall back to the
// defaults.
type Options struct {
	SquareSize int
	Theme      gui.Theme
}

func (o Options) squareSize() int {
	if o.SquareSize <= 0 {
		return DefaultSquareSize
	}
	return o.SquareSize
}

// Render draws v as a PNG: the board on top and a one line status strip
// carrying the turn or the end of game message underneath.
func Render(ctx context.Context, v game.View, opts Options) ([]byte, error) {
	if v.Board == nil {
		return nil, fmt.Errorf("snapshot: board is nil")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	sq := opts.squareSize()
	geom := gui.Geometry{SquareW: sq, SquareH: sq}
	img := image.NewRGBA(image.Rect(0, 0, geom.Width(), geom.Height()+statusHeight))

	t := opts.Theme
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			c := board.Coord{X: x, Y: y}
			x0, y0 := geom.Origin(c)
			rect := image.Rect(x0, y0, x0+sq, y0+sq)
			draw.Draw(img, rect, image.NewUniform(squareColor(v, c, t)), image.Point{}, draw.Src)

			p := v.Board.Location(c).Occupant
			if p == nil {
				continue
			}
			fill := rgba(t.Blue, fallbackBlue)
			if p.Color == board.Red {
				fill = rgba(t.Red, fallbackRed)
			}
			piece, err := renderPiece(pieceKey{fill: fill, king: p.King, ring: rgba(t.King, fallbackKing), size: sq})
			if err != nil {
				return nil, err
			}
			draw.Draw(img, rect, piece, image.Point{}, draw.Over)
		}
	}

	status := img.Bounds()
	status.Min.Y = geom.Height()
	draw.Draw(img, status, image.NewUniform(statusBg), image.Point{}, draw.Src)
	text := v.Message
	if text == "" {
		text = gui.TurnLabel(v)
	}
	drawCenteredString(img, status, text, statusFg)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders v and writes the PNG to path
func WriteFile(ctx context.Context, path string, v game.View, opts Options) error {
	data, err := Render(ctx, v, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func squareColor(v game.View, c board.Coord, t gui.Theme) color.Color {
	switch {
	case v.HasSelected && v.Selected == c:
		return rgba(t.SquareSelected, fallbackSelected)
	case v.IsLegal(c):
		return rgba(t.SquareHigh, fallbackHigh)
	case v.Board.Location(c).Color == board.Dark:
		return rgba(t.SquareDark, fallbackDark)
	default:
		return rgba(t.SquareLight, fallbackLight)
	}
}

// rgba converts a terminal color, using def for the terminal default
func rgba(c tcell.Color, def color.RGBA) color.RGBA {
	r, g, b := c.RGB()
	if r < 0 {
		return def
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

func drawCenteredString(dst draw.Image, rect image.Rectangle, text string, clr color.Color) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(clr), Face: basicfont.Face7x13}
	metrics := drawer.Face.Metrics()
	width := drawer.MeasureString(text).Round()
	x := rect.Min.X + (rect.Dx()-width)/2
	if x < rect.Min.X {
		x = rect.Min.X
	}
	baseline := rect.Min.Y + (rect.Dy()+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}

type pieceKey struct {
	fill color.RGBA
	ring color.RGBA
	king bool
	size int
}

var (
	pieceCache   = map[pieceKey]image.Image{}
	pieceCacheMu sync.RWMutex
)

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// pieceSVG describes a disc on a 100x100 view box. Kings get an inner ring.
func pieceSVG(k pieceKey) string {
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100">`)
	fmt.Fprintf(&sb, `<circle cx="50" cy="50" r="38" fill="%s" stroke="#202020" stroke-width="4"/>`, hex(k.fill))
	if k.king {
		fmt.Fprintf(&sb, `<circle cx="50" cy="50" r="24" fill="none" stroke="%s" stroke-width="8"/>`, hex(k.ring))
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

func renderPiece(k pieceKey) (image.Image, error) {
	pieceCacheMu.RLock()
	if img, ok := pieceCache[k]; ok {
		pieceCacheMu.RUnlock()
		return img, nil
	}
	pieceCacheMu.RUnlock()

	icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(k)))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(k.size), float64(k.size))

	img := image.NewRGBA(image.Rect(0, 0, k.size, k.size))
	scanner := rasterx.NewScannerGV(k.size, k.size, img, img.Bounds())
	raster := rasterx.NewDasher(k.size, k.size, scanner)
	icon.Draw(raster, 1.0)

	pieceCacheMu.Lock()
	pieceCache[k] = img
	pieceCacheMu.Unlock()
	return img, nil
}
