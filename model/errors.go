package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is the configuration error for a grid that is empty or too large.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrInvalidProbability is returned by Seed for a probability outside [0, 1].
	ErrInvalidProbability = errors.New("invalid seed probability")
	// ErrSeedLength is returned by SeedCells when the data does not cover the grid exactly.
	ErrSeedLength = errors.New("seed data does not match grid size")
)
