package mcts

import "github.com/alphabeth/hex/hexboard"

// Node is a single vertex of the search tree built for one root
// decision. A Node owns its Children; Parent is a non-owning back
// reference used only during backpropagation, and never outlives the
// tree that owns it: a tree is built top-down and only ever walked
// down during Selection or up during Backpropagation, so cycles are
// impossible by construction.
type Node struct {
	// Move is the move leading to this node; the zero Move at the root.
	Move hexboard.Move

	Parent   *Node
	Children map[hexboard.Move]*Node

	// ChildOrder records insertion order, so tie-breaking ("most
	// visits", "first untried move") can be deterministic without
	// depending on Go's randomized map iteration order.
	ChildOrder []hexboard.Move

	Visits uint32
	Wins   float64

	HeuristicBias float64
	Prior         float64

	// PlayerThatMoved is the id of the player who made Move to reach
	// this node. It is 0 only at the root, which has no antecedent move.
	PlayerThatMoved int

	// CachedEncoding is an optional cached board encoding populated by
	// PUCT-style callers; classical MCTS never sets it.
	CachedEncoding []float32
}

// NewRootNode creates a root with no antecedent move.
func NewRootNode() *Node {
	return &Node{Children: make(map[hexboard.Move]*Node)}
}

// NewChildNode creates a node for move, reached from parent by the
// player identified by playerThatMoved.
func NewChildNode(parent *Node, move hexboard.Move, playerThatMoved int) *Node {
	return &Node{
		Move:            move,
		Parent:          parent,
		Children:        make(map[hexboard.Move]*Node),
		PlayerThatMoved: playerThatMoved,
	}
}

// addChild installs child under move, recording insertion order.
func (n *Node) addChild(move hexboard.Move, child *Node) {
	n.Children[move] = child
	n.ChildOrder = append(n.ChildOrder, move)
}

// AvgWinRate returns Wins/Visits, or 0 for an unvisited node.
func (n *Node) AvgWinRate() float64 {
	if n.Visits == 0 {
		return 0
	}
	return n.Wins / float64(n.Visits)
}
