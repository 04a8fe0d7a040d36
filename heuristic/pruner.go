package heuristic

import (
	"math"
	"sort"

	"github.com/alphabeth/hex/hexboard"
	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned by NewMovePruner for out-of-range
// parameters.
var ErrInvalidConfiguration = errors.New("heuristic: invalid configuration")

// MovePruner is a top-K-by-score filter over legal moves, with a
// minimum retention guarantee.
type MovePruner struct {
	Threshold float64
	MinKeep   int
	Heuristic Heuristic
}

// NewMovePruner validates threshold (>= 0) and minKeep (>= 1) at
// construction time, per the fail-fast policy for InvalidConfiguration.
func NewMovePruner(threshold float64, minKeep int, h Heuristic) (*MovePruner, error) {
	if threshold < 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "threshold must be >= 0")
	}
	if minKeep < 1 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "minKeep must be >= 1")
	}
	if h == nil {
		return nil, errors.Wrap(ErrNullComponent, "pruner requires a heuristic")
	}
	return &MovePruner{Threshold: threshold, MinKeep: minKeep, Heuristic: h}, nil
}

type scoredMove struct {
	move  hexboard.Move
	score float64
}

// Prune returns the surviving subset of legalMoves. An empty input is
// returned unchanged (identity, not a copy). If nothing would survive
// thresholding and the min-keep top-up, the original slice is returned.
func (p *MovePruner) Prune(state hexboard.GameState, legalMoves []hexboard.Move) ([]hexboard.Move, error) {
	if len(legalMoves) == 0 {
		return legalMoves, nil
	}

	scored := make([]scoredMove, len(legalMoves))
	maxScore := math.Inf(-1)
	for i, m := range legalMoves {
		s, err := p.Heuristic.Score(state, m)
		if err != nil {
			return nil, err
		}
		scored[i] = scoredMove{move: m, score: s}
		if s > maxScore {
			maxScore = s
		}
	}

	var survivors []scoredMove
	for _, sm := range scored {
		if sm.score >= maxScore-p.Threshold {
			survivors = append(survivors, sm)
		}
	}
	sort.SliceStable(survivors, func(i, j int) bool { return survivors[i].score > survivors[j].score })

	if len(survivors) < p.MinKeep {
		all := make([]scoredMove, len(scored))
		copy(all, scored)
		sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })
		k := p.MinKeep
		if k > len(all) {
			k = len(all)
		}
		survivors = all[:k]
	}

	if len(survivors) == 0 {
		return legalMoves, nil
	}

	out := make([]hexboard.Move, len(survivors))
	for i, sm := range survivors {
		out[i] = sm.move
	}
	return out, nil
}
