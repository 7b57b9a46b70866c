// Package canvas provides the fixed-size character grid that textart edits.
package canvas

import "errors"

// Common errors
var (
	ErrInvalidSize  = errors.New("invalid canvas size")
	ErrSizeMismatch = errors.New("canvas sizes differ")
)

// Blank is the character every cell holds after Init.
const Blank = ' '
