package model

// Pattern is a small block of cells stamped onto the grid, row by row.
type Pattern [][]bool

var (
	// Glider travels one cell diagonally every four generations.
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	// Blinker is a period 2 oscillator.
	Blinker = Pattern{
		{true, true, true},
	}
	// Block is a still life.
	Block = Pattern{
		{true, true},
		{true, true},
	}
)

// Stamp writes p into the current generation with its top-left corner at
// (startX, startY). Cells falling off the grid are clipped.
func (e *Engine) Stamp(p Pattern, startX, startY int) {
	cells := e.current()
	for y, row := range p {
		for x, alive := range row {
			if gx, gy := startX+x, startY+y; e.grid.Contains(gx, gy) {
				cells[e.grid.Index(gx, gy)] = alive
			}
		}
	}
}

// StampShowcase drops a few well known patterns onto grids large enough to hold them.
func (e *Engine) StampShowcase() {
	w, h := e.Dimensions()
	if w < 10 || h < 10 {
		return
	}

	e.Stamp(Glider, 5, 5)
	if w >= 20 && h >= 15 {
		e.Stamp(Glider, w-8, 5)
	}

	e.Stamp(Blinker, w/4, h/4)
	if w >= 30 {
		e.Stamp(Blinker, 3*w/4, 3*h/4)
	}
}
