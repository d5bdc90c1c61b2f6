package model

import (
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// CellReader is the read-only view a renderer needs. *Engine implements it.
type CellReader interface {
	Dimensions() (width, height int)
	CellAt(x, y int) (bool, error)
}

// Palette maps a cell to the glyph drawn for it.
type Palette func(au aurora.Aurora, p Point, alive bool) string

// MonoPalette draws live cells as green blocks and dead cells as blanks.
func MonoPalette(au aurora.Aurora, _ Point, alive bool) string {
	if alive {
		return au.BrightGreen(gridPosBlock).String()
	}
	return gridPosEmpty
}

// DiagonalPalette tints live cells by their diagonal, cycling through the
// 6x6x6 color cube.
func DiagonalPalette(au aurora.Aurora, p Point, alive bool) string {
	if !alive {
		return gridPosEmpty
	}
	return au.Index(uint8(16+(p.X+p.Y)%216), gridPosBlock).String()
}

// TerminalRenderer draws frames of a CellReader as text.
type TerminalRenderer struct {
	au      aurora.Aurora
	palette Palette
}

// NewTerminalRenderer returns a renderer. With colors off every glyph is plain text.
func NewTerminalRenderer(colors bool, palette Palette) *TerminalRenderer {
	if palette == nil {
		palette = MonoPalette
	}
	return &TerminalRenderer{au: aurora.NewAurora(colors), palette: palette}
}

// Frame returns one full frame, one line per row.
func (r *TerminalRenderer) Frame(cells CellReader) (string, error) {
	width, height := cells.Dimensions()

	var sb strings.Builder
	for y := range height {
		for x := range width {
			alive, err := cells.CellAt(x, y)
			if err != nil {
				return "", errors.Wrap(err, "[Frame] failed to read cell")
			}
			sb.WriteString(r.palette(r.au, Point{X: x, Y: y}, alive))
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// Display writes a frame to w.
func (r *TerminalRenderer) Display(w io.Writer, cells CellReader) error {
	frame, err := r.Frame(cells)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, frame); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear moves the cursor home and clears the screen.
func (r *TerminalRenderer) Clear(w io.Writer) error {
	if _, err := io.WriteString(w, ansiClearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
