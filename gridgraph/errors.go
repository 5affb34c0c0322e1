package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownTile indicates a map rune or tile value with no meaning.
	ErrUnknownTile = errors.New("gridgraph: unknown tile")
	// ErrOutOfBounds indicates a cell index or coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)
