package treeviz

import (
	"strings"
	"testing"

	"github.com/alphabeth/hex/hexboard"
	"github.com/alphabeth/hex/mcts"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestDumpMCTSProducesDigraph(t *testing.T) {
	state, err := hexboard.NewGameState(3, hexboard.Red)
	require.NoError(t, err)

	cfg := mcts.DefaultConfig()
	cfg.Iterations = 16
	search, err := mcts.New(cfg, nil, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = search.Search(state)
	require.NoError(t, err)

	dot, err := DumpMCTS(search.Root)
	require.NoError(t, err)
	require.True(t, strings.Contains(dot, "digraph"))
	require.True(t, strings.Contains(dot, "visits="))
}
