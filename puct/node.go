// Package puct implements the AlphaZero-style PUCT search variant:
// neural policy/value guidance in place of random rollouts, Dirichlet
// root noise for exploration during self-play, and temperature-scaled
// policy extraction.
package puct

import "github.com/alphabeth/hex/hexboard"

// Node is a vertex of a PUCT search tree. Unlike the classical
// mcts.Node, Wins is a signed aggregate in [-visits, +visits]: each
// backup adds a value in [-1, 1] from the perspective of the player
// to move at this node, rather than an unsigned win/loss tally.
type Node struct {
	Move hexboard.Move

	Parent     *Node
	Children   map[hexboard.Move]*Node
	ChildOrder []hexboard.Move

	Visits uint32
	Wins   float64
	Prior  float64

	// PlayerThatMoved is the id of the player to move AT this node
	// (i.e. the opponent of whoever made Move to reach it), matching
	// the perspective the value/sign backup math is written against.
	// The root is the exception: it holds the opponent of the player to
	// move there (see NewRootNode).
	PlayerThatMoved int
}

// NewRootNode creates a root with no antecedent move. playerThatMoved
// is root_player.opponent.id per the design, since the root node
// represents the position before root_player has moved.
func NewRootNode(playerThatMoved int) *Node {
	return &Node{Children: make(map[hexboard.Move]*Node), PlayerThatMoved: playerThatMoved}
}

func newChildNode(parent *Node, move hexboard.Move, playerThatMoved int, prior float64) *Node {
	return &Node{
		Move:            move,
		Parent:          parent,
		Children:        make(map[hexboard.Move]*Node),
		PlayerThatMoved: playerThatMoved,
		Prior:           prior,
	}
}

func (n *Node) addChild(move hexboard.Move, child *Node) {
	n.Children[move] = child
	n.ChildOrder = append(n.ChildOrder, move)
}

// IsLeaf reports whether node has not yet been expanded.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}
