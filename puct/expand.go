package puct

import (
	"time"

	"github.com/alphabeth/hex/encoding"
	"github.com/alphabeth/hex/hexboard"
	"github.com/alphabeth/hex/predictor"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
)

// dirichletEpsilon and dirichletAlpha are the exploration-noise
// parameters applied once to root priors when training.
const (
	dirichletEpsilon = 0.25
	dirichletAlpha   = 0.10
)

// expandLeaf submits state (from the leaf player's perspective) to
// predictor, then creates one child per legal move with prior
// policy[canonical_index(move, state.ToMove)], renormalized to sum to
// 1 (uniform if the sum is ~0). It returns the evaluation value, from
// state.ToMove's perspective.
func expandLeaf(node *Node, state hexboard.GameState, pred predictor.Predictor) (float64, error) {
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return 0, nil
	}

	enc := encoding.Encode(state)
	data, ok := enc.Data().([]float32)
	if !ok {
		data = nil
	}
	fut, err := pred.Predict(data)
	if err != nil {
		return 0, err
	}
	out, err := fut.Await()
	if err != nil {
		return 0, err
	}

	priors := rawPriors(legal, out.Policy, state.Board.Size(), state.ToMove)
	normalize(priors)

	// A child's PlayerThatMoved is the side to move AT that child (the
	// opponent of the leaf we're expanding), not the side that made
	// the move leading into it; see the field doc on Node.
	sideToMoveAtChild := state.ToMove.Other().ID()
	for i, m := range legal {
		node.addChild(m, newChildNode(node, m, sideToMoveAtChild, priors[i]))
	}
	return out.Value, nil
}

func rawPriors(legal []hexboard.Move, policy []float32, n int, mover hexboard.Player) []float64 {
	priors := make([]float64, len(legal))
	for i, m := range legal {
		idx := encoding.CanonicalIndex(m, n, mover)
		if idx >= 0 && idx < len(policy) {
			priors[i] = float64(policy[idx])
		}
	}
	return priors
}

func normalize(priors []float64) {
	var sum float64
	for _, p := range priors {
		sum += p
	}
	if sum <= 1e-9 {
		uniform := 1.0 / float64(len(priors))
		for i := range priors {
			priors[i] = uniform
		}
		return
	}
	for i := range priors {
		priors[i] /= sum
	}
}

// applyDirichletNoise perturbs every root child's prior in place:
// prior_i <- (1-eps)*prior_i + eps*noise_i, then renormalizes.
func applyDirichletNoise(root *Node, rnd *rand.Rand) {
	k := len(root.ChildOrder)
	if k == 0 {
		return
	}
	alpha := make([]float64, k)
	for i := range alpha {
		alpha[i] = dirichletAlpha
	}
	dist := distmv.NewDirichlet(alpha, rnd)
	noise := dist.Rand(nil)

	priors := make([]float64, k)
	for i, m := range root.ChildOrder {
		child := root.Children[m]
		priors[i] = (1-dirichletEpsilon)*child.Prior + dirichletEpsilon*noise[i]
	}
	normalize(priors)
	for i, m := range root.ChildOrder {
		root.Children[m].Prior = priors[i]
	}
}

func newRandSource() rand.Source {
	return rand.NewSource(uint64(time.Now().UnixNano()))
}
