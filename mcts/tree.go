package mcts

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned by Config.IsValid.
var ErrInvalidConfiguration = errors.New("mcts: invalid configuration")

// Config holds the tunables for a classical MCTS search. The zero
// value is not valid; use DefaultConfig as a starting point.
type Config struct {
	Iterations int

	// Threshold, CentralityWeight, ConnectivityWeight, BiasScale and
	// ShortestPathWeight parameterize the optional heuristic layer used
	// for move pruning and expansion bias. All three weights at zero
	// yields the pure, unbiased classical variant; DefaultConfig sets a
	// non-zero ShortestPathWeight, so it is not that variant.
	Threshold           float64
	CentralityWeight    float64
	ConnectivityWeight  float64
	ShortestPathWeight  float64
	BiasScale           float64
	ExplorationConstant float64
}

// DefaultConfig returns the baseline tuning: 1000 iterations, zero
// centrality and connectivity weights, a shortest-path weight of 0.039
// with a bias scale of 0.046 (so the heuristic layer is active:
// untried moves are pruned at Threshold 0 and expansion is biased),
// and the classical sqrt(2) exploration constant.
func DefaultConfig() Config {
	return Config{
		Iterations:          1000,
		Threshold:           0.0,
		CentralityWeight:    0.0,
		ConnectivityWeight:  0.0,
		BiasScale:           0.046,
		ShortestPathWeight:  0.039,
		ExplorationConstant: math.Sqrt2,
	}
}

// IsValid reports whether c can be used to construct a search.
func (c Config) IsValid() error {
	if c.Iterations <= 0 {
		return errors.Wrap(ErrInvalidConfiguration, "iterations must be > 0")
	}
	if c.Threshold < 0 {
		return errors.Wrap(ErrInvalidConfiguration, "threshold must be >= 0")
	}
	if c.ExplorationConstant < 0 {
		return errors.Wrap(ErrInvalidConfiguration, "exploration constant must be >= 0")
	}
	return nil
}

// usesHeuristic reports whether any weight is non-zero, meaning a
// LinearCombination heuristic and a MovePruner should be constructed.
func (c Config) usesHeuristic() bool {
	return c.CentralityWeight != 0 || c.ConnectivityWeight != 0 || c.ShortestPathWeight != 0
}
