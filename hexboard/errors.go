package hexboard

import "github.com/pkg/errors"

// Sentinel errors for the board's error kinds (see SPEC_FULL.md §A.1).
// Callers should use errors.Is against these, since they are always
// wrapped with call-site context via github.com/pkg/errors before being
// returned.
var (
	// ErrInvalidMove is returned when a placement is out of bounds or
	// targets an occupied cell.
	ErrInvalidMove = errors.New("hexboard: invalid move")

	// ErrNothingToUndo is returned by Undo when the history stack is empty.
	ErrNothingToUndo = errors.New("hexboard: nothing to undo")

	// ErrInvalidConfiguration is returned by constructors given a
	// non-positive board size.
	ErrInvalidConfiguration = errors.New("hexboard: invalid configuration")
)
