package hexboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameStateDoMoveAdvancesToMove(t *testing.T) {
	s, err := NewGameState(3, Red)
	require.NoError(t, err)

	require.NoError(t, s.DoMove(Move{Row: 1, Col: 1}))
	require.Equal(t, Black, s.ToMove)
	require.False(t, s.IsTerminal())
	require.Equal(t, 0, s.WinnerID())
}

func TestGameStateTerminalAndWinner(t *testing.T) {
	s, err := NewGameState(3, Red)
	require.NoError(t, err)

	require.NoError(t, s.DoMove(Move{Row: 0, Col: 0})) // red
	require.NoError(t, s.DoMove(Move{Row: 0, Col: 1})) // black
	require.NoError(t, s.DoMove(Move{Row: 1, Col: 0})) // red
	require.NoError(t, s.DoMove(Move{Row: 0, Col: 2})) // black
	require.NoError(t, s.DoMove(Move{Row: 2, Col: 0})) // red wins

	require.True(t, s.IsTerminal())
	require.Equal(t, Red.ID(), s.WinnerID())
}

func TestGameStateCopyIsIndependent(t *testing.T) {
	s, err := NewGameState(3, Red)
	require.NoError(t, err)
	require.NoError(t, s.DoMove(Move{Row: 0, Col: 0}))

	clone := s.Copy()
	require.NoError(t, clone.DoMove(Move{Row: 1, Col: 1}))

	require.Equal(t, Empty, s.Board.Cell(1, 1))
	require.Equal(t, BlackStone, clone.Board.Cell(1, 1))
	require.Equal(t, Black, s.ToMove)
}

func TestEstimateAfterMoveLeavesBoardUnchanged(t *testing.T) {
	s, err := NewGameState(5, Red)
	require.NoError(t, err)

	before := s.Board.Copy()
	beforeToMove := s.ToMove

	dist := s.EstimateAfterMove(Move{Row: 2, Col: 2})
	require.Less(t, dist, Unreachable)

	require.Equal(t, before.cells, s.Board.cells)
	require.Equal(t, beforeToMove, s.ToMove)
}
