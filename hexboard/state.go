package hexboard

// GameState is a movable view over a Board plus the player to move.
type GameState struct {
	Board  *Board
	ToMove Player
}

// NewGameState constructs the empty-board starting state for an n x n game.
func NewGameState(n int, first Player) (GameState, error) {
	b, err := NewBoard(n)
	if err != nil {
		return GameState{}, err
	}
	return GameState{Board: b, ToMove: first}, nil
}

// Copy returns a cheap (O(n^2)) deep copy: an independent Board with the
// same ToMove.
func (s GameState) Copy() GameState {
	return GameState{Board: s.Board.Copy(), ToMove: s.ToMove}
}

// LegalMoves enumerates every empty cell.
func (s GameState) LegalMoves() []Move {
	return s.Board.LegalMoves()
}

// DoMove places ToMove's stone at move and advances ToMove.
func (s *GameState) DoMove(move Move) error {
	if err := s.Board.PlaceStone(move.Row, move.Col, s.ToMove.Stone()); err != nil {
		return err
	}
	s.ToMove = s.ToMove.Other()
	return nil
}

// IsTerminal reports whether either side has connected their edges.
// Draws are impossible in Hex, so this is exactly RedWins || BlackWins.
func (s GameState) IsTerminal() bool {
	return s.Board.RedWins() || s.Board.BlackWins()
}

// WinnerID returns 1 for Red, 2 for Black, 0 if neither has won yet.
func (s GameState) WinnerID() int {
	switch {
	case s.Board.RedWins():
		return Red.ID()
	case s.Board.BlackWins():
		return Black.ID()
	default:
		return 0
	}
}

// EstimateAfterMove returns the shortest-path distance for ToMove after
// hypothetically placing a stone at move, restoring the board via Undo
// before returning. If move is not presently legal, Unreachable is
// returned and the board is left untouched.
func (s GameState) EstimateAfterMove(move Move) int {
	if !ValidMove(s.Board, move.Row, move.Col) {
		return Unreachable
	}
	stone := s.ToMove.Stone()
	if err := s.Board.PlaceStone(move.Row, move.Col, stone); err != nil {
		return Unreachable
	}
	dist := ShortestPath(s.Board, stone)
	_ = s.Board.Undo()
	return dist
}
