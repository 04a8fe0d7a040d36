package heuristic

import (
	"math"

	"github.com/alphabeth/hex/hexboard"
)

// ShortestPathDiff scores a move by how much it shortens the mover's
// shortest path relative to the opponent's, compared to before the
// move. It leaves the board and ToMove unmodified on exit (it applies
// the move and undoes it within Score).
type ShortestPathDiff struct{}

// Score implements Heuristic.
func (ShortestPathDiff) Score(state hexboard.GameState, move hexboard.Move) (float64, error) {
	if state.IsTerminal() || !hexboard.ValidMove(state.Board, move.Row, move.Col) {
		return 0, nil
	}

	mover := state.ToMove.Stone()
	opponent := state.ToMove.Other().Stone()

	before := float64(hexboard.ShortestPath(state.Board, mover)) - float64(hexboard.ShortestPath(state.Board, opponent))

	if err := state.Board.PlaceStone(move.Row, move.Col, mover); err != nil {
		return 0, nil
	}
	after := float64(hexboard.ShortestPath(state.Board, mover)) - float64(hexboard.ShortestPath(state.Board, opponent))
	_ = state.Board.Undo()

	diff := before - after
	if diff == 0 {
		return 0, nil
	}
	return math.Tanh(diff), nil
}
