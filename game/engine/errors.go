package engine

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrInvalidCoordinate = fmt.Errorf("invalid cell coordinates: %w", ErrOutOfBounds)
	ErrInvalidDimensions = errors.New("grid dimensions must be at least 1x1")
	ErrNilGrid           = errors.New("grid cannot be nil")
	ErrBlockedStart      = errors.New("start position is impassable")
)
