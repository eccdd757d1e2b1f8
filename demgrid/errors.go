package demgrid

import "errors"

// Sentinel errors for demgrid operations.
var (
	// ErrEmptyGrid indicates the raster has no rows or no columns.
	ErrEmptyGrid = errors.New("demgrid: raster must have at least one row and one column")
	// ErrBadCellSize indicates a non-positive cell width or height.
	ErrBadCellSize = errors.New("demgrid: cell width and height must be positive")
	// ErrDataSizeMismatch indicates the data slice does not hold rows*cols values.
	ErrDataSizeMismatch = errors.New("demgrid: data length does not match rows*cols")
)
