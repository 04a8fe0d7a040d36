package agent

import "github.com/alphabeth/hex/hexboard"

// RandomAgent picks a uniformly random empty cell via a single-pass
// reservoir sample, never materializing the full legal-move list.
type RandomAgent struct {
	rand interface{ Intn(int) int }
}

// NewRandomAgent constructs a RandomAgent drawing from rnd.
func NewRandomAgent(rnd interface{ Intn(int) int }) *RandomAgent {
	return &RandomAgent{rand: rnd}
}

// Choose implements Agent.
func (a *RandomAgent) Choose(board BoardView, _ hexboard.Player) (hexboard.Move, bool) {
	var chosen hexboard.Move
	var seen int
	n := board.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if board.Cell(r, c) != hexboard.Empty {
				continue
			}
			seen++
			if seen == 1 || a.rand.Intn(seen) == 0 {
				chosen = hexboard.Move{Row: r, Col: c}
			}
		}
	}
	if seen == 0 {
		return hexboard.Move{}, false
	}
	return chosen, true
}
