package heuristic

import (
	"testing"

	"github.com/alphabeth/hex/hexboard"
	"github.com/stretchr/testify/require"
)

func TestCentralityAtCenterIsOne(t *testing.T) {
	s, err := hexboard.NewGameState(3, hexboard.Red)
	require.NoError(t, err)

	v, err := (Centrality{}).Score(s, hexboard.Move{Row: 1, Col: 1})
	require.NoError(t, err)
	require.InDelta(t, 1.0, v, 1e-6)

	corner, err := (Centrality{}).Score(s, hexboard.Move{Row: 0, Col: 0})
	require.NoError(t, err)
	require.Less(t, corner, 1.0)
}

func TestCentralitySymmetricAboutCenter(t *testing.T) {
	s, err := hexboard.NewGameState(5, hexboard.Red)
	require.NoError(t, err)

	a, err := (Centrality{}).Score(s, hexboard.Move{Row: 0, Col: 0})
	require.NoError(t, err)
	b, err := (Centrality{}).Score(s, hexboard.Move{Row: 4, Col: 4})
	require.NoError(t, err)
	require.InDelta(t, a, b, 1e-9)
}

func TestConnectivityBoundsAndValue(t *testing.T) {
	s, err := hexboard.NewGameState(3, hexboard.Red)
	require.NoError(t, err)
	require.NoError(t, s.Board.PlaceStone(0, 1, hexboard.RedStone))
	require.NoError(t, s.Board.PlaceStone(1, 0, hexboard.RedStone))

	v, err := (Connectivity{}).Score(s, hexboard.Move{Row: 1, Col: 1})
	require.NoError(t, err)
	require.InDelta(t, 2.0/6.0, v, 1e-9)
}

func TestConnectivityZeroWithoutFriendlyNeighbors(t *testing.T) {
	s, err := hexboard.NewGameState(3, hexboard.Red)
	require.NoError(t, err)

	v, err := (Connectivity{}).Score(s, hexboard.Move{Row: 1, Col: 1})
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestShortestPathDiffBoundedAndInvalidMoveIsZero(t *testing.T) {
	s, err := hexboard.NewGameState(3, hexboard.Red)
	require.NoError(t, err)

	v, err := (ShortestPathDiff{}).Score(s, hexboard.Move{Row: 1, Col: 1})
	require.NoError(t, err)
	require.Greater(t, v, -1.0)
	require.Less(t, v, 1.0)

	// Invalid move (occupied) returns exactly 0.
	require.NoError(t, s.Board.PlaceStone(1, 1, hexboard.RedStone))
	v, err = (ShortestPathDiff{}).Score(s, hexboard.Move{Row: 1, Col: 1})
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestShortestPathDiffLeavesStateUnchanged(t *testing.T) {
	s, err := hexboard.NewGameState(5, hexboard.Red)
	require.NoError(t, err)
	before := s.Board.Copy()

	_, err = (ShortestPathDiff{}).Score(s, hexboard.Move{Row: 2, Col: 2})
	require.NoError(t, err)
	require.Equal(t, before.LegalMoves(), s.Board.LegalMoves())
}

func TestLinearCombinationIsLinearInWeights(t *testing.T) {
	c, k, sp := 0.5, 0.25, -0.1
	base, err := LinearCombine(&c, &k, &sp, 1, 2, 3)
	require.NoError(t, err)

	scaled, err := LinearCombine(&c, &k, &sp, 2, 4, 6)
	require.NoError(t, err)
	require.InDelta(t, 2*base, scaled, 1e-9)

	zero, err := LinearCombine(&c, &k, &sp, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, zero)
}

func TestLinearCombinationNullPropagation(t *testing.T) {
	c := 1.0
	_, err := LinearCombine(&c, nil, nil, 1, 1, 0)
	require.ErrorIs(t, err, ErrNullComponent)

	// zero weight never requires the component
	v, err := LinearCombine(&c, nil, nil, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestMovePrunerKeepsTopWithinThreshold(t *testing.T) {
	moves := []hexboard.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	h := fakeScores(map[hexboard.Move]float64{
		moves[0]: 10,
		moves[1]: 9,
		moves[2]: 7.9,
	})
	p, err := NewMovePruner(2.0, 1, h)
	require.NoError(t, err)

	s, err := hexboard.NewGameState(3, hexboard.Red)
	require.NoError(t, err)

	kept, err := p.Prune(s, moves)
	require.NoError(t, err)
	require.ElementsMatch(t, []hexboard.Move{moves[0], moves[1]}, kept)
}

func TestMovePrunerEmptyInputIsIdentity(t *testing.T) {
	h := fakeScores(nil)
	p, err := NewMovePruner(1.0, 1, h)
	require.NoError(t, err)

	s, err := hexboard.NewGameState(3, hexboard.Red)
	require.NoError(t, err)

	var empty []hexboard.Move
	kept, err := p.Prune(s, empty)
	require.NoError(t, err)
	require.Nil(t, kept)
}

func TestMovePrunerMinKeepTopsUp(t *testing.T) {
	moves := []hexboard.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	h := fakeScores(map[hexboard.Move]float64{
		moves[0]: 10,
		moves[1]: 1,
		moves[2]: 0,
	})
	p, err := NewMovePruner(0.0, 2, h)
	require.NoError(t, err)

	s, err := hexboard.NewGameState(3, hexboard.Red)
	require.NoError(t, err)

	kept, err := p.Prune(s, moves)
	require.NoError(t, err)
	require.Len(t, kept, 2)
	require.Equal(t, moves[0], kept[0])
	require.Equal(t, moves[1], kept[1])
}

type fakeScoreHeuristic struct {
	scores map[hexboard.Move]float64
}

func fakeScores(m map[hexboard.Move]float64) fakeScoreHeuristic {
	return fakeScoreHeuristic{scores: m}
}

func (f fakeScoreHeuristic) Score(_ hexboard.GameState, move hexboard.Move) (float64, error) {
	return f.scores[move], nil
}
