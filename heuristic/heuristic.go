// Package heuristic implements the scoring functions used to bias move
// pruning and MCTS expansion: centrality, friendly-connectivity,
// shortest-path difference, and their weighted linear combination.
package heuristic

import (
	"github.com/alphabeth/hex/hexboard"
	"github.com/pkg/errors"
)

// ErrNullComponent is returned by LinearCombination.Score (and the
// LinearCombine helper) when a weight is non-zero but its corresponding
// component was not supplied.
var ErrNullComponent = errors.New("heuristic: required component is nil")

// Heuristic scores a candidate move from a game state. Implementations
// must return a finite value; NaN/infinity are permitted only as
// explicit propagation from composition (see LinearCombination).
type Heuristic interface {
	Score(state hexboard.GameState, move hexboard.Move) (float64, error)
}
