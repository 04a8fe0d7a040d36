package agent

import (
	"time"

	"github.com/alphabeth/hex/hexboard"
	"github.com/alphabeth/hex/puct"
	"golang.org/x/exp/rand"
)

// PUCTAgent runs a fresh puct.Search per Choose call against an
// injected Predictor, and extracts a move via temperature-scaled
// policy extraction.
type PUCTAgent struct {
	config      puct.Config
	predictor   puct.Predictor
	temperature float64
}

// NewPUCTAgent constructs a PUCTAgent. config and predictor are
// required; temperature defaults to 1.0 if <= 0.
func NewPUCTAgent(config puct.Config, predictor puct.Predictor, temperature float64) *PUCTAgent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return &PUCTAgent{config: config, predictor: predictor, temperature: temperature}
}

// Choose implements Agent: it converts board to a concrete
// *hexboard.Board (via cell-by-cell replay when necessary), runs a
// PUCT search, extracts the policy at the agent's temperature, and
// returns the legal argmax.
func (a *PUCTAgent) Choose(board BoardView, currentPlayer hexboard.Player) (hexboard.Move, bool) {
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

	search, err := puct.New(a.config, a.predictor, rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
	if err != nil {
		return legal[0], true
	}
	root, err := search.Run(state)
	if err != nil {
		return legal[0], true
	}

	n := concrete.Size()
	policy := puct.ExtractPolicy(root, n, a.temperature)

	best := legal[0]
	bestScore := -1.0
	for _, m := range legal {
		score := policy[m.Row*n+m.Col]
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best, true
}
