package heuristic

import (
	"math"

	"github.com/alphabeth/hex/hexboard"
)

// Centrality scores a move by closeness to the board's center cell.
// Out-of-bounds inputs may yield a negative value; that is intentional.
type Centrality struct{}

// Score implements Heuristic.
func (Centrality) Score(state hexboard.GameState, move hexboard.Move) (float64, error) {
	n := state.Board.Size()
	center := float64(n-1) / 2
	dr := float64(move.Row) - center
	dc := float64(move.Col) - center
	d := math.Hypot(dr, dc)
	maxD := math.Hypot(center, center)
	return 1 - d/(maxD+1e-9), nil
}
