// Package treeviz renders a search tree to Graphviz DOT format for
// debugging, using gographviz to build the graph model before
// stringifying it.
package treeviz

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

func newGraph(name string) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(name); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}
	return g, nil
}

func nodeID(prefix string, n int) string {
	return fmt.Sprintf("%s%d", prefix, n)
}

func addNode(g *gographviz.Graph, id, label string) error {
	return g.AddNode("", id, map[string]string{"label": fmt.Sprintf("%q", label)})
}

func addEdge(g *gographviz.Graph, from, to string) error {
	return g.AddEdge(from, to, true, nil)
}
