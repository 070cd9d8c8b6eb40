package domain

import "errors"

// Generation failure kinds. All generation failures wrap exactly one of
// these so callers can classify with errors.Is; generation is
// all-or-nothing and never returns a partial RowSet alongside an error.
var (
	// ErrInvalidInput covers missing or duplicated required features in
	// the input collection, detected before generation begins.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateBaseline means A and B coincide (|AB| below epsilon).
	ErrDegenerateBaseline = errors.New("degenerate baseline")

	// ErrInvalidSpacing means the configured row spacing is not positive.
	ErrInvalidSpacing = errors.New("invalid spacing")

	// ErrProjection means no planar projection could be resolved: the
	// polygon centroid is undefined or the CRS override is unsupported.
	ErrProjection = errors.New("projection error")

	// ErrGeometry means the area polygon is structurally invalid
	// (open ring, too few vertices, self-intersection, empty).
	ErrGeometry = errors.New("invalid geometry")
)
