package agent

import (
	"time"

	"github.com/alphabeth/hex/hexboard"
	"github.com/alphabeth/hex/mcts"
	"golang.org/x/exp/rand"
)

// Tuning overrides mcts.DefaultConfig's heuristic-layer parameters.
// The zero value of Tuning keeps every mcts.DefaultConfig value,
// including its non-zero ShortestPathWeight; only fields explicitly
// set by the caller take effect, via apply.
type Tuning struct {
	CentralityWeight    *float64
	ConnectivityWeight  *float64
	ShortestPathWeight  *float64
	BiasScale           *float64
	ExplorationConstant *float64
}

func (t Tuning) apply(cfg mcts.Config) mcts.Config {
	if t.CentralityWeight != nil {
		cfg.CentralityWeight = *t.CentralityWeight
	}
	if t.ConnectivityWeight != nil {
		cfg.ConnectivityWeight = *t.ConnectivityWeight
	}
	if t.ShortestPathWeight != nil {
		cfg.ShortestPathWeight = *t.ShortestPathWeight
	}
	if t.BiasScale != nil {
		cfg.BiasScale = *t.BiasScale
	}
	if t.ExplorationConstant != nil {
		cfg.ExplorationConstant = *t.ExplorationConstant
	}
	return cfg
}

// MCTSAgent runs a fresh classical mcts.MCTS search per Choose call.
type MCTSAgent struct {
	iterations int
	tuning     Tuning
}

// NewMCTSAgent constructs an MCTSAgent running iterations playouts per
// move, with optional tuning of the heuristic layer.
func NewMCTSAgent(iterations int, tuning Tuning) *MCTSAgent {
	return &MCTSAgent{iterations: iterations, tuning: tuning}
}

// Choose implements Agent. It returns the first legal move if the
// search produced no root children (e.g. the board already has a
// winner, so no iteration expands the root).
func (a *MCTSAgent) Choose(board BoardView, currentPlayer hexboard.Player) (hexboard.Move, bool) {
	legal := board.LegalMoves()
	if len(legal) == 0 {
		return hexboard.Move{}, false
	}

	concrete, ok := board.(*hexboard.Board)
	if !ok {
		var err error
		concrete, err = replay(board)
		if err != nil {
			return legal[0], true
		}
	}
	state := hexboard.GameState{Board: concrete, ToMove: currentPlayer}

	cfg := a.tuning.apply(mcts.DefaultConfig())
	cfg.Iterations = a.iterations

	search, err := mcts.New(cfg, nil, rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
	if err != nil {
		return legal[0], true
	}

	move, err := search.Search(state)
	if err != nil {
		return legal[0], true
	}
	return move, true
}
