package puct

import (
	"testing"

	"github.com/alphabeth/hex/hexboard"
	"github.com/alphabeth/hex/predictor"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type uniformPredictor struct {
	n int
}

func (u uniformPredictor) Predict(encoding []float32) (*predictor.Future, error) {
	policy := make([]float32, u.n*u.n)
	uniform := float32(1) / float32(len(policy))
	for i := range policy {
		policy[i] = uniform
	}
	fut := predictor.NewResolvedFuture(predictor.Prediction{Policy: policy, Value: 0})
	return fut, nil
}

func TestSearchRunProducesVisitedRoot(t *testing.T) {
	state, err := hexboard.NewGameState(4, hexboard.Red)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Iterations = 32
	s, err := New(cfg, uniformPredictor{n: 4}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	root, err := s.Run(state)
	require.NoError(t, err)

	var total uint32
	for _, m := range root.ChildOrder {
		total += root.Children[m].Visits
	}
	require.Equal(t, uint32(cfg.Iterations), total)
}

func TestExtractPolicySumsToOne(t *testing.T) {
	state, err := hexboard.NewGameState(3, hexboard.Red)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Iterations = 16
	s, err := New(cfg, uniformPredictor{n: 3}, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	root, err := s.Run(state)
	require.NoError(t, err)

	policy := ExtractPolicy(root, 3, 1.0)
	var sum float64
	for _, p := range policy {
		sum += p
	}
	require.InDelta(t, 1.0, sum, 1e-6)
}

func TestExtractPolicyLowTemperatureIsOneHot(t *testing.T) {
	state, err := hexboard.NewGameState(3, hexboard.Red)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Iterations = 16
	s, err := New(cfg, uniformPredictor{n: 3}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	root, err := s.Run(state)
	require.NoError(t, err)

	policy := ExtractPolicy(root, 3, 0.0)
	var ones, zeros int
	for _, p := range policy {
		if p == 1 {
			ones++
		} else if p == 0 {
			zeros++
		}
	}
	require.Equal(t, 1, ones)
	require.Equal(t, len(policy)-1, zeros)
}

func TestSearchErrorsWithNoLegalMoves(t *testing.T) {
	state, err := hexboard.NewGameState(1, hexboard.Red)
	require.NoError(t, err)
	require.NoError(t, state.Board.PlaceStone(0, 0, hexboard.RedStone))

	s, err := New(DefaultConfig(), uniformPredictor{n: 1}, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	_, err = s.Run(state)
	require.ErrorIs(t, err, ErrNoLegalMoves)
}
