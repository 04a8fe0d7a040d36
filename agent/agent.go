// Package agent provides thin adapters exposing a uniform
// choose(board, player) -> move interface over the search drivers in
// mcts and puct.
package agent

import "github.com/alphabeth/hex/hexboard"

// BoardView is the board surface an agent consumes from its caller
// (a UI, an evaluation harness, or a hexboard.Board directly).
// *hexboard.Board satisfies it without adaptation.
type BoardView interface {
	Size() int
	Cell(r, c int) hexboard.Color
	LegalMoves() []hexboard.Move
	RedWins() bool
	BlackWins() bool
	PlaceStone(r, c int, color hexboard.Color) error
	Neighbors(r, c int) []hexboard.Move
	Copy() *hexboard.Board
}

// Agent chooses a move for currentPlayer given a board view. The
// second return value is false if the agent has no move to offer,
// i.e. the board has no empty cell; a board that already has a winner
// but still has empty cells yields a move.
type Agent interface {
	Choose(board BoardView, currentPlayer hexboard.Player) (hexboard.Move, bool)
}

// replay rebuilds an independent *hexboard.Board from any BoardView,
// cell by cell. Used by agents (PUCTAgent in particular) whose search
// driver needs a concrete *hexboard.Board rather than the caller's own
// board representation.
func replay(view BoardView) (*hexboard.Board, error) {
	b, err := hexboard.NewBoard(view.Size())
	if err != nil {
		return nil, err
	}
	n := view.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if cell := view.Cell(r, c); cell != hexboard.Empty {
				if err := b.PlaceStone(r, c, cell); err != nil {
					return nil, err
				}
			}
		}
	}
	return b, nil
}
