package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-ca/rules"
)

// neighbors are the Moore neighborhood offsets, in row-major order.
var neighbors = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

/*
Engine owns the simulation state: two generation buffers and the rule set.

During a step every read goes to the current buffer and every write goes to
the next buffer at the index being evaluated. After the step the roles flip.
The next buffer is always fully overwritten before it becomes current, so it
never needs clearing.

An Engine is not safe for concurrent use. Callers serialize Advance and reads.
*/
type Engine struct {
	grid       Grid
	rules      rules.RuleSet
	buffers    [2][]bool
	cur        int
	generation int
}

// Configure builds an Engine for a width x height grid governed by rs.
// All cells start dead.
func Configure(width, height int, rs rules.RuleSet) (*Engine, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	size := grid.Size()
	return &Engine{
		grid:    grid,
		rules:   rs,
		buffers: [2][]bool{make([]bool, size), make([]bool, size)},
	}, nil
}

// Dimensions returns the grid width and height.
func (e *Engine) Dimensions() (width, height int) {
	return e.grid.Width, e.grid.Height
}

// Grid returns the addressing scheme.
func (e *Engine) Grid() Grid { return e.grid }

// Rules returns the active rule set.
func (e *Engine) Rules() rules.RuleSet { return e.rules }

// Generation returns how many steps have been committed since the last Clear.
func (e *Engine) Generation() int { return e.generation }

func (e *Engine) current() []bool { return e.buffers[e.cur] }

func (e *Engine) next() []bool { return e.buffers[1-e.cur] }

// CellAt returns the liveness of (x, y) in the current generation.
// Coordinates off the grid return ErrOutOfBounds.
func (e *Engine) CellAt(x, y int) (bool, error) {
	if !e.grid.Contains(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "[CellAt] (%d,%d) on %dx%d grid", x, y, e.grid.Width, e.grid.Height)
	}
	return e.current()[e.grid.Index(x, y)], nil
}

// NeighborCount returns the number of live Moore neighbors of (x, y) in the
// current generation. Positions off the grid count as dead; nothing wraps.
func (e *Engine) NeighborCount(x, y int) int {
	if !e.grid.Contains(x, y) {
		return 0
	}
	return countNeighbors(e.current(), e.grid, x, y)
}

func countNeighbors(cells []bool, g Grid, x, y int) int {
	count := 0
	for _, off := range neighbors {
		nx, ny := x+off.X, y+off.Y
		if !g.Contains(nx, ny) {
			continue
		}
		if cells[g.Index(nx, ny)] {
			count++
		}
	}
	return count
}

// Advance computes the next generation from the current one and commits it.
func (e *Engine) Advance() {
	e.stepRows(0, e.grid.Height)
	e.commit()
}

// AdvanceParallel is Advance with the rows split into bands evaluated
// concurrently. It returns once every band is written, so callers never see a
// partially computed generation. workers <= 0 uses runtime.NumCPU.
func (e *Engine) AdvanceParallel(workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg          errgroup.Group
		height      = e.grid.Height
		rowsPerBand = (height + workers - 1) / workers // Ceiling division
	)

	for start := 0; start < height; start += rowsPerBand {
		end := min(start+rowsPerBand, height)
		eg.Go(func() error {
			e.stepRows(start, end)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrapf(err, "[AdvanceParallel] generation %d", e.generation+1)
	}
	e.commit()
	return nil
}

// stepRows writes next-state values for rows [startRow, endRow) into the next buffer.
func (e *Engine) stepRows(startRow, endRow int) {
	var (
		cur  = e.current()
		next = e.next()
		w    = e.grid.Width
	)
	for y := startRow; y < endRow; y++ {
		for x := 0; x < w; x++ {
			i := e.grid.Index(x, y)
			next[i] = e.rules.Next(cur[i], countNeighbors(cur, e.grid, x, y))
		}
	}
}

func (e *Engine) commit() {
	e.cur = 1 - e.cur
	e.generation++
}

// Population returns the number of live cells in the current generation.
func (e *Engine) Population() (count int) {
	for _, alive := range e.current() {
		if alive {
			count++
		}
	}
	return
}

// Snapshot returns a copy of the current generation in row-major order.
func (e *Engine) Snapshot() []bool {
	return append([]bool(nil), e.current()...)
}

// Hash returns an MD5 digest of the current generation, for cycle detection.
func (e *Engine) Hash() string {
	h := md5.New()
	for _, alive := range e.current() {
		if alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Clear kills every cell and resets the generation counter.
func (e *Engine) Clear() {
	clear(e.current())
	e.generation = 0
}
