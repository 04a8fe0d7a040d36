package treeviz

import (
	"fmt"

	"github.com/alphabeth/hex/mcts"
)

// DumpMCTS renders a classical mcts.Node tree to DOT format, labeling
// each node with its move, visit count, and average win rate.
func DumpMCTS(root *mcts.Node) (string, error) {
	g, err := newGraph("MCTS")
	if err != nil {
		return "", err
	}

	counter := 0
	var walk func(n *mcts.Node, id string) error
	walk = func(n *mcts.Node, id string) error {
		label := fmt.Sprintf("%v visits=%d wins=%.2f avg=%.3f", n.Move, n.Visits, n.Wins, n.AvgWinRate())
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
