package mcts

import (
	"time"

	"github.com/alphabeth/hex/heuristic"
	"github.com/alphabeth/hex/hexboard"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrNoLegalMoves is returned by Search and BestMove when the root
// state has no legal moves to search over.
var ErrNoLegalMoves = errors.New("mcts: no legal moves at root")

// MCTS drives one Selection/Expansion/Simulation/Backpropagation
// search from a root game state. An MCTS value is single-use: build a
// fresh one per root decision via New.
type MCTS struct {
	Root *Node

	config    Config
	selection Selection
	expansion Expansion
	simulate  Simulation
	rand      *rand.Rand
}

// New constructs a search with config, using sim for rollouts (a
// UniformRandomSimulation if sim is nil). When config enables any
// heuristic weight, a LinearCombination heuristic and a threshold-based
// MovePruner are wired into Expansion, biasing both move ordering and
// which untried moves are considered.
func New(config Config, sim Simulation, rnd *rand.Rand) (*MCTS, error) {
	if err := config.IsValid(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if sim == nil {
		sim = UniformRandomSimulation{}
	}

	var h heuristic.Heuristic
	var pruner *heuristic.MovePruner
	if config.usesHeuristic() {
		lc := heuristic.LinearCombination{
			WCentrality:   config.CentralityWeight,
			WConnectivity: config.ConnectivityWeight,
			WShortestPath: config.ShortestPathWeight,
		}
		h = lc
		p, err := heuristic.NewMovePruner(config.Threshold, 1, lc)
		if err != nil {
			return nil, err
		}
		pruner = p
	}

	return &MCTS{
		Root:      NewRootNode(),
		config:    config,
		selection: Selection{ExplorationConstant: config.ExplorationConstant},
		expansion: Expansion{Pruner: pruner, Heuristic: h, BiasScale: config.BiasScale, Rand: rnd},
		simulate:  sim,
		rand:      rnd,
	}, nil
}

// Search runs config.Iterations playouts from rootState and returns
// the move with the most root-child visits. rootState is never
// mutated: each iteration works on its own copy.
func (m *MCTS) Search(rootState hexboard.GameState) (hexboard.Move, error) {
	if len(rootState.LegalMoves()) == 0 {
		return hexboard.Move{}, ErrNoLegalMoves
	}

	for i := 0; i < m.config.Iterations; i++ {
		if err := m.iterate(rootState); err != nil {
			return hexboard.Move{}, err
		}
	}
	return m.BestMove()
}

func (m *MCTS) iterate(rootState hexboard.GameState) error {
	scratch := rootState.Copy()
	node := m.Root

	for len(node.Children) > 0 && !scratch.IsTerminal() {
		node = m.selection.Select(node)
		if err := scratch.DoMove(node.Move); err != nil {
			return err
		}
	}

	if !scratch.IsTerminal() {
		child, err := m.expansion.Expand(node, scratch)
		if err != nil {
			return err
		}
		if child != nil {
			if err := scratch.DoMove(child.Move); err != nil {
				return err
			}
			node = child
		}
	}

	var winner int
	if scratch.IsTerminal() {
		winner = scratch.WinnerID()
	} else {
		w, err := m.simulate.Rollout(scratch, m.rand)
		if err != nil {
			return err
		}
		winner = w
	}

	for n := node; n != nil; n = n.Parent {
		n.Visits++
		if winner != 0 && n.PlayerThatMoved == winner {
			n.Wins++
		}
	}
	return nil
}

// BestMove returns the root child with the greatest visit count,
// breaking ties by insertion order (ChildOrder).
func (m *MCTS) BestMove() (hexboard.Move, error) {
	if len(m.Root.ChildOrder) == 0 {
		return hexboard.Move{}, ErrNoLegalMoves
	}

	var best hexboard.Move
	var bestVisits uint32 = 0
	first := true
	for _, move := range m.Root.ChildOrder {
		child := m.Root.Children[move]
		if first || child.Visits > bestVisits {
			best = move
			bestVisits = child.Visits
			first = false
		}
	}
	return best, nil
}
