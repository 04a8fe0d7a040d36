package puct

import "math"

// ExtractPolicy converts root's child visit counts into a length-n²
// policy vector over real (uncanonicalized) board coordinates,
// indexed row*n+col. For tau < 0.01 the result is one-hot over the
// most-visited child; otherwise it is the normalized distribution of
// visits_i^(1/tau).
func ExtractPolicy(root *Node, n int, tau float64) []float64 {
	out := make([]float64, n*n)
	if len(root.ChildOrder) == 0 {
		return out
	}

	if tau < 0.01 {
		var best int
		var bestVisits uint32
		first := true
		for _, m := range root.ChildOrder {
			child := root.Children[m]
			if first || child.Visits > bestVisits {
				best = m.Row*n + m.Col
				bestVisits = child.Visits
				first = false
			}
		}
		out[best] = 1
		return out
	}

	var total float64
	weighted := make([]float64, len(root.ChildOrder))
	for i, m := range root.ChildOrder {
		child := root.Children[m]
		w := math.Pow(float64(child.Visits), 1/tau)
		weighted[i] = w
		total += w
	}
	if total <= 1e-12 {
		uniform := 1.0 / float64(len(root.ChildOrder))
		for _, m := range root.ChildOrder {
			out[m.Row*n+m.Col] = uniform
		}
		return out
	}
	for i, m := range root.ChildOrder {
		out[m.Row*n+m.Col] = weighted[i] / total
	}
	return out
}
