// This package runs a single MCTS search from an empty board and
// writes the resulting tree to a DOT file, for visual debugging with
// `dot -Tpng`.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/alphabeth/hex/hexboard"
	"github.com/alphabeth/hex/mcts"
	"github.com/alphabeth/hex/treeviz"
	"golang.org/x/exp/rand"
)

var (
	boardSize  = flag.Int("board_size", 5, "board size (n x n)")
	iterations = flag.Int("iterations", 200, "MCTS iterations")
	outPath    = flag.String("out", "tree.dot", "output DOT file path")
)

func main() {
	flag.Parse()

	state, err := hexboard.NewGameState(*boardSize, hexboard.Red)
	if err != nil {
		log.Fatal(err)
	}

	cfg := mcts.DefaultConfig()
	cfg.Iterations = *iterations
	search, err := mcts.New(cfg, nil, rand.New(rand.NewSource(1)))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := search.Search(state); err != nil {
		log.Fatal(err)
	}

	dot, err := treeviz.DumpMCTS(search.Root)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*outPath, []byte(dot), 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *outPath)
}
