package treeviz

import (
	"fmt"

	"github.com/alphabeth/hex/puct"
)

// DumpPUCT renders a puct.Node tree to DOT format, labeling each node
// with its move, visit count, signed win aggregate, and prior.
func DumpPUCT(root *puct.Node) (string, error) {
	g, err := newGraph("PUCT")
	if err != nil {
		return "", err
	}

	counter := 0
	var walk func(n *puct.Node, id string) error
	walk = func(n *puct.Node, id string) error {
		label := fmt.Sprintf("%v visits=%d wins=%.2f prior=%.3f", n.Move, n.Visits, n.Wins, n.Prior)
		if err := addNode(g, id, label); err != nil {
			return err
		}
		for _, move := range n.ChildOrder {
			child := n.Children[move]
			counter++
			childID := nodeID("n", counter)
			if err := walk(child, childID); err != nil {
				return err
			}
			if err := addEdge(g, id, childID); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root, nodeID("n", counter)); err != nil {
		return "", err
	}
	return g.String(), nil
}
