package heuristic

import "github.com/alphabeth/hex/hexboard"

// Connectivity scores a move by the fraction of its in-bounds neighbors
// already held by the player to move ("friendly" stones).
type Connectivity struct{}

// Score implements Heuristic.
func (Connectivity) Score(state hexboard.GameState, move hexboard.Move) (float64, error) {
	neighbors := state.Board.Neighbors(move.Row, move.Col)
	if len(neighbors) == 0 {
		return 0, nil
	}

	friendly := state.ToMove.Stone()
	var count int
	for _, nb := range neighbors {
		if state.Board.Cell(nb.Row, nb.Col) == friendly {
			count++
		}
	}
	return float64(count) / float64(len(neighbors)), nil
}
