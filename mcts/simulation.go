package mcts

import (
	"github.com/alphabeth/hex/heuristic"
	"github.com/alphabeth/hex/hexboard"
	"golang.org/x/exp/rand"
)

// Simulation plays a game out from state to a terminal position and
// reports the winner's player id (0 for a draw, which Hex never
// produces, but kept for symmetry with the terminal-node shortcut in
// Search).
type Simulation interface {
	Rollout(state hexboard.GameState, rnd *rand.Rand) (winner int, err error)
}

// UniformRandomSimulation plays uniformly random legal moves.
type UniformRandomSimulation struct{}

// Rollout implements Simulation.
func (UniformRandomSimulation) Rollout(state hexboard.GameState, rnd *rand.Rand) (int, error) {
	for !state.IsTerminal() {
		moves := state.LegalMoves()
		m := moves[rnd.Intn(len(moves))]
		if err := state.DoMove(m); err != nil {
			return 0, err
		}
	}
	return state.WinnerID(), nil
}

// EpsilonGreedyHeuristicSimulation plays the move that most improves
// the mover's estimated position with probability 1-Epsilon, and a
// uniformly random move otherwise.
type EpsilonGreedyHeuristicSimulation struct {
	Epsilon float64
}

// Rollout implements Simulation.
func (e EpsilonGreedyHeuristicSimulation) Rollout(state hexboard.GameState, rnd *rand.Rand) (int, error) {
	for !state.IsTerminal() {
		moves := state.LegalMoves()
		var chosen hexboard.Move
		if rnd.Float64() < e.Epsilon {
			chosen = moves[rnd.Intn(len(moves))]
		} else {
			best := moves[0]
			bestEst := state.EstimateAfterMove(best)
			for _, m := range moves[1:] {
				est := state.EstimateAfterMove(m)
				if est < bestEst {
					bestEst = est
					best = m
				}
			}
			chosen = best
		}
		if err := state.DoMove(chosen); err != nil {
			return 0, err
		}
	}
	return state.WinnerID(), nil
}

// PrunedRandomSimulation plays a uniformly random move from among the
// moves surviving Pruner at each ply.
type PrunedRandomSimulation struct {
	Pruner *heuristic.MovePruner
}

// Rollout implements Simulation.
func (p PrunedRandomSimulation) Rollout(state hexboard.GameState, rnd *rand.Rand) (int, error) {
	for !state.IsTerminal() {
		moves := state.LegalMoves()
		survivors, err := p.Pruner.Prune(state, moves)
		if err != nil {
			return 0, err
		}
		m := survivors[rnd.Intn(len(survivors))]
		if err := state.DoMove(m); err != nil {
			return 0, err
		}
	}
	return state.WinnerID(), nil
}
