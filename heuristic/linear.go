package heuristic

import "github.com/alphabeth/hex/hexboard"

// LinearCombine computes w_c*c + w_k*k + w_sp*sp, treating a nil
// component as absent. A nil component whose weight is non-zero
// propagates ErrNullComponent; a zero weight never requires its
// component, even if nil. All-zero weights always yield 0.
func LinearCombine(centrality, connectivity, shortestPath *float64, wCentrality, wConnectivity, wShortestPath float64) (float64, error) {
	term := func(v *float64, w float64) (float64, error) {
		if w == 0 {
			return 0, nil
		}
		if v == nil {
			return 0, ErrNullComponent
		}
		return w * (*v), nil
	}

	tc, err := term(centrality, wCentrality)
	if err != nil {
		return 0, err
	}
	tk, err := term(connectivity, wConnectivity)
	if err != nil {
		return 0, err
	}
	tsp, err := term(shortestPath, wShortestPath)
	if err != nil {
		return 0, err
	}
	return tc + tk + tsp, nil
}

// LinearCombination is the weighted composition of Centrality,
// Connectivity, and ShortestPathDiff used both for move pruning and
// expansion bias. Components whose weight is zero are not computed.
type LinearCombination struct {
	WCentrality, WConnectivity, WShortestPath float64
}

// Score implements Heuristic.
func (l LinearCombination) Score(state hexboard.GameState, move hexboard.Move) (float64, error) {
	var c, k, sp *float64

	if l.WCentrality != 0 {
		v, err := (Centrality{}).Score(state, move)
		if err != nil {
			return 0, err
		}
		c = &v
	}
	if l.WConnectivity != 0 {
		v, err := (Connectivity{}).Score(state, move)
		if err != nil {
			return 0, err
		}
		k = &v
	}
	if l.WShortestPath != 0 {
		v, err := (ShortestPathDiff{}).Score(state, move)
		if err != nil {
			return 0, err
		}
		sp = &v
	}

	return LinearCombine(c, k, sp, l.WCentrality, l.WConnectivity, l.WShortestPath)
}
