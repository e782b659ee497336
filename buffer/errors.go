package buffer

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a row or column outside the buffer's valid range.
//
// A correctly clamped Cursor never produces it, so callers treat it as an
// internal invariant violation.
var ErrOutOfBounds = errors.New("buffer: position out of bounds")

// BoundsError describes which edit failed and where.
type BoundsError struct {
	Op  string
	Row int
	Col int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("buffer: %s at (%d, %d): position out of bounds", e.Op, e.Row, e.Col)
}

func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }
