package xlsx

import "errors"

// ErrInvalidRange indicates a malformed cell range reference.
var ErrInvalidRange = errors.New("invalid range")

// ErrNoTable indicates a region too small to hold a header row, a header
// column and at least one cell.
var ErrNoTable = errors.New("no table in region")
