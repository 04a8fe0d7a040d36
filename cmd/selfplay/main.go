// This package plays an MCTSAgent against a RandomAgent over a
// configurable number of games and reports the MCTS side's win rate,
// as a quick sanity benchmark for a tuning change.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/alphabeth/hex/agent"
	"github.com/alphabeth/hex/hexboard"
	"golang.org/x/exp/rand"
)

var (
	boardSize  = flag.Int("board_size", 7, "board size (n x n)")
	games      = flag.Int("games", 20, "number of games to play")
	iterations = flag.Int("iterations", 500, "MCTS iterations per move")
)

func main() {
	flag.Parse()

	mctsAgent := agent.NewMCTSAgent(*iterations, agent.Tuning{})
	randomAgent := agent.NewRandomAgent(rand.New(rand.NewSource(1)))

	var mctsWins int
	for i := 0; i < *games; i++ {
		mctsIsRed := i%2 == 0
		winner, err := playGame(*boardSize, mctsAgent, randomAgent, mctsIsRed)
		if err != nil {
			log.Fatal(err)
		}
		if (winner == hexboard.Red) == mctsIsRed {
			mctsWins++
		}
		fmt.Printf("game %d: winner=%v mcts_played=%v\n", i+1, winner,
			map[bool]string{true: "red", false: "black"}[mctsIsRed])
	}

	fmt.Printf("MCTS win rate: %.1f%% (%d/%d)\n", 100*float64(mctsWins)/float64(*games), mctsWins, *games)
}

func playGame(n int, mctsAgent *agent.MCTSAgent, randomAgent *agent.RandomAgent, mctsIsRed bool) (hexboard.Player, error) {
	board, err := hexboard.NewBoard(n)
	if err != nil {
		return hexboard.NoPlayer, err
	}

	toMove := hexboard.Red
	for {
		if board.RedWins() {
			return hexboard.Red, nil
		}
		if board.BlackWins() {
			return hexboard.Black, nil
		}

		var mover agent.Agent = randomAgent
		if (toMove == hexboard.Red) == mctsIsRed {
			mover = mctsAgent
		}

		move, ok := mover.Choose(board, toMove)
		if !ok {
			return hexboard.NoPlayer, nil
		}
		if err := board.PlaceStone(move.Row, move.Col, toMove.Stone()); err != nil {
			return hexboard.NoPlayer, err
		}
		toMove = toMove.Other()
	}
}
