package puct

import (
	"math"

	"github.com/alphabeth/hex/hexboard"
	"github.com/alphabeth/hex/predictor"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Predictor is the subset of predictor.Worker/predictor.Router that a
// PUCT search needs: submit an encoded board, await a policy/value
// pair.
type Predictor interface {
	Predict(encoding []float32) (*predictor.Future, error)
}

// ErrNoLegalMoves is returned by Search when the root position has no
// legal moves.
var ErrNoLegalMoves = errors.New("puct: no legal moves at root")

// Config tunes a PUCT search.
type Config struct {
	Iterations int
	CPUCT      float64
	Training   bool
}

// DefaultConfig returns the baseline tuning: 100 iterations and the
// commonly used c_puct = 1.4.
func DefaultConfig() Config {
	return Config{Iterations: 100, CPUCT: 1.4}
}

// IsValid reports whether c can be used to construct a search.
func (c Config) IsValid() error {
	if c.Iterations <= 0 {
		return errors.New("puct: iterations must be > 0")
	}
	if c.CPUCT < 0 {
		return errors.New("puct: c_puct must be >= 0")
	}
	return nil
}

// Search runs config.Iterations simulations from rootState using a
// single reusable working board descended and undone in place (never
// deep-copied), and returns the resulting root node for policy
// extraction.
type Search struct {
	config Config
	pred   Predictor
	rand   *rand.Rand
}

// New constructs a Search. rnd may be nil, in which case a
// time-seeded source is used.
func New(config Config, pred Predictor, rnd *rand.Rand) (*Search, error) {
	if err := config.IsValid(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = rand.New(newRandSource())
	}
	return &Search{config: config, pred: pred, rand: rnd}, nil
}

// Run executes the search from rootState (which is not mutated: a
// working copy is descended and always restored via undo) and returns
// the populated root node.
func (s *Search) Run(rootState hexboard.GameState) (*Node, error) {
	if len(rootState.LegalMoves()) == 0 {
		return nil, ErrNoLegalMoves
	}

	root := NewRootNode(rootState.ToMove.Other().ID())
	working := rootState.Copy()

	if _, err := expandLeaf(root, working, s.pred); err != nil {
		return nil, err
	}
	if s.config.Training {
		applyDirichletNoise(root, s.rand)
	}

	for i := 0; i < s.config.Iterations; i++ {
		if err := s.iterate(root, &working); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func (s *Search) iterate(root *Node, working *hexboard.GameState) error {
	node := root
	var path []hexboard.Move

	for !node.IsLeaf() {
		node = s.selectChild(node)
		if err := working.DoMove(node.Move); err != nil {
			return err
		}
		path = append(path, node.Move)
	}

	var value float64
	if working.IsTerminal() {
		if working.WinnerID() == node.PlayerThatMoved {
			value = 1
		} else {
			value = -1
		}
	} else {
		v, err := expandLeaf(node, *working, s.pred)
		if err != nil {
			s.undo(working, path)
			return err
		}
		value = v
	}

	for n := node; n != nil; n = n.Parent {
		n.Visits++
		n.Wins += value
		value = -value
	}

	s.undo(working, path)
	return nil
}

func (s *Search) undo(working *hexboard.GameState, path []hexboard.Move) {
	for i := len(path) - 1; i >= 0; i-- {
		_ = working.Board.Undo()
		working.ToMove = working.ToMove.Other()
	}
}

func (s *Search) selectChild(node *Node) *Node {
	var best *Node
	bestValue := math.Inf(-1)
	parentVisits := math.Sqrt(float64(node.Visits))

	for _, move := range node.ChildOrder {
		child := node.Children[move]
		var q float64
		if child.Visits > 0 {
			q = -child.Wins / float64(child.Visits)
		}
		u := s.config.CPUCT * child.Prior * parentVisits / float64(1+child.Visits)
		v := q + u
		if v > bestValue {
			bestValue = v
			best = child
		}
	}
	return best
}
