package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Default seeding odds: one live cell in three, like rolling a d3 and keeping the 3s.
const (
	DefaultSeedNumerator   = 1
	DefaultSeedDenominator = 3
)

// RandomSource yields uniform draws in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a deterministic PCG source for the given seed.
func NewRandomSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Seed sets each cell of the current generation alive with probability
// numerator/denominator. A cell lives when its draw lands in the top numerator
// values of [0, denominator). The next buffer is left untouched.
func (e *Engine) Seed(numerator, denominator int, src RandomSource) error {
	if denominator <= 0 || numerator < 0 || numerator > denominator {
		return errors.Wrapf(ErrInvalidProbability, "[Seed] %d/%d", numerator, denominator)
	}
	if src == nil {
		return errors.New("[Seed] nil random source")
	}

	threshold := denominator - numerator
	cells := e.current()
	for i := range cells {
		cells[i] = src.IntN(denominator) >= threshold
	}
	return nil
}

// SeedCells copies caller-supplied liveness, in row-major order, into the
// current generation.
func (e *Engine) SeedCells(cells []bool) error {
	if len(cells) != e.grid.Size() {
		return errors.Wrapf(ErrSeedLength, "[SeedCells] got %d cells, grid has %d", len(cells), e.grid.Size())
	}
	copy(e.current(), cells)
	return nil
}

// SeedPoints clears the current generation and brings the listed points to life.
// Nothing is changed if any point lies off the grid.
func (e *Engine) SeedPoints(points ...Point) error {
	for _, p := range points {
		if !e.grid.Contains(p.X, p.Y) {
			return errors.Wrapf(ErrOutOfBounds, "[SeedPoints] (%d,%d) on %dx%d grid", p.X, p.Y, e.grid.Width, e.grid.Height)
		}
	}

	cells := e.current()
	clear(cells)
	for _, p := range points {
		cells[e.grid.Index(p.X, p.Y)] = true
	}
	return nil
}

// Inject brings count random cells of the current generation to life, leaving
// the rest as they are. Draws may repeat, so fewer than count cells can change.
func (e *Engine) Inject(count int, src RandomSource) error {
	if count < 0 {
		return errors.Errorf("[Inject] negative count %d", count)
	}
	if src == nil {
		return errors.New("[Inject] nil random source")
	}

	cells := e.current()
	for range count {
		x, y := src.IntN(e.grid.Width), src.IntN(e.grid.Height)
		cells[e.grid.Index(x, y)] = true
	}
	return nil
}
