package mcts

import (
	"math"

	"github.com/alphabeth/hex/heuristic"
	"github.com/alphabeth/hex/hexboard"
	"golang.org/x/exp/rand"
)

// Expansion adds one new child to a node, selecting among its untried
// moves. With no Heuristic configured, the untried move is picked
// uniformly at random; otherwise moves are sampled with probability
// proportional to exp(BiasScale*score), so that every untried move
// left after Pruner (when one is configured) retains a nonzero chance
// of being chosen regardless of how the heuristic ranks it. Moves that
// Pruner removes are never chosen.
type Expansion struct {
	Pruner    *heuristic.MovePruner
	Heuristic heuristic.Heuristic
	BiasScale float64
	Rand      *rand.Rand
}

// Expand installs and returns a new child of node for the game state
// state (which is node's state before the new move is applied). It
// returns (nil, nil) if state is terminal, and leaves node unchanged
// in that case.
func (e Expansion) Expand(node *Node, state hexboard.GameState) (*Node, error) {
	if state.IsTerminal() {
		return nil, nil
	}

	legal := state.LegalMoves()
	untried := make([]hexboard.Move, 0, len(legal))
	for _, m := range legal {
		if _, ok := node.Children[m]; !ok {
			untried = append(untried, m)
		}
	}
	if len(untried) == 0 {
		return nil, nil
	}

	if e.Pruner != nil {
		pruned, err := e.Pruner.Prune(state, untried)
		if err != nil {
			return nil, err
		}
		untried = pruned
	}

	move, bias, err := e.pickMove(state, untried)
	if err != nil {
		return nil, err
	}

	child := NewChildNode(node, move, state.ToMove.ID())
	child.HeuristicBias = bias
	node.addChild(move, child)
	return child, nil
}

func (e Expansion) pickMove(state hexboard.GameState, moves []hexboard.Move) (hexboard.Move, float64, error) {
	if e.Heuristic == nil {
		return moves[e.Rand.Intn(len(moves))], 0, nil
	}

	scores := make([]float64, len(moves))
	weights := make([]float64, len(moves))
	var total float64
	for i, m := range moves {
		s, err := e.Heuristic.Score(state, m)
		if err != nil {
			return hexboard.Move{}, 0, err
		}
		scores[i] = s
		w := math.Exp(e.BiasScale * s)
		weights[i] = w
		total += w
	}

	r := e.Rand.Float64() * total
	var accum float64
	for i, w := range weights {
		accum += w
		if r <= accum {
			return moves[i], e.BiasScale * scores[i], nil
		}
	}
	last := len(moves) - 1
	return moves[last], e.BiasScale * scores[last], nil
}
