package model

import (
	"math"

	"github.com/pkg/errors"
)

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Grid is the fixed addressing scheme shared by both generation buffers.
// Cells are stored row-major: index = x + y*Width.
type Grid struct {
	Width  int
	Height int
}

// NewGrid validates the dimensions and returns the addressing scheme for them.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d must be positive", width, height)
	}
	if width > math.MaxInt/height {
		return Grid{}, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d overflows the cell index", width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// Size returns the number of cells.
func (g Grid) Size() int {
	return g.Width * g.Height
}

// Contains reports whether (x, y) lies on the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index returns the linear index of (x, y). The caller guarantees Contains(x, y).
func (g Grid) Index(x, y int) int {
	return x + y*g.Width
}

// Point is the inverse of Index.
func (g Grid) Point(index int) Point {
	x := index % g.Width
	return Point{X: x, Y: (index - x) / g.Width}
}
