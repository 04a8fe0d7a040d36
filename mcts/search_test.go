package mcts

import (
	"testing"

	"github.com/alphabeth/hex/hexboard"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSearchReturnsLegalMoveOnEmptyBoard(t *testing.T) {
	state, err := hexboard.NewGameState(4, hexboard.Red)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Iterations = 64
	m, err := New(cfg, nil, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	move, err := m.Search(state)
	require.NoError(t, err)
	require.True(t, hexboard.ValidMove(state.Board, move.Row, move.Col))
}

func TestSearchVisitsSumToIterations(t *testing.T) {
	state, err := hexboard.NewGameState(3, hexboard.Red)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Iterations = 200
	m, err := New(cfg, nil, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	_, err = m.Search(state)
	require.NoError(t, err)

	var total uint32
	for _, move := range m.Root.ChildOrder {
		child := m.Root.Children[move]
		total += child.Visits
		require.LessOrEqual(t, child.Wins, float64(child.Visits))
		require.GreaterOrEqual(t, child.Wins, 0.0)
	}
	require.Equal(t, uint32(cfg.Iterations), total)
}

func TestSearchErrorsWithNoLegalMoves(t *testing.T) {
	state, err := hexboard.NewGameState(1, hexboard.Red)
	require.NoError(t, err)
	require.NoError(t, state.Board.PlaceStone(0, 0, hexboard.RedStone))

	cfg := DefaultConfig()
	cfg.Iterations = 10
	m, err := New(cfg, nil, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	_, err = m.Search(state)
	require.ErrorIs(t, err, ErrNoLegalMoves)
}

func TestSearchWithHeuristicBiasStillCompletes(t *testing.T) {
	state, err := hexboard.NewGameState(4, hexboard.Red)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Iterations = 100
	cfg.CentralityWeight = 1.0
	cfg.ConnectivityWeight = 0.5
	cfg.Threshold = 1.0
	m, err := New(cfg, nil, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	move, err := m.Search(state)
	require.NoError(t, err)
	require.True(t, hexboard.ValidMove(state.Board, move.Row, move.Col))
}

func TestConfigIsValidRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iterations = 0
	require.Error(t, cfg.IsValid())

	cfg = DefaultConfig()
	cfg.Threshold = -1
	require.Error(t, cfg.IsValid())
}
