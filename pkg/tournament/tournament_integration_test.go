//go:build !windows

package tournament_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chessbench/tourneycore/pkg/config"
	"github.com/chessbench/tourneycore/pkg/stats"
	"github.com/chessbench/tourneycore/pkg/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGame replays the fool's mate for whichever side it is asked to move; see the
// match package's integration test for the protocol details.
const scriptedGame = `
count=0
while read -r line; do
  case "$line" in
    uci) echo "uciok" ;;
    isready) echo "readyok" ;;
    ucinewgame) count=0 ;;
    position*)
      set -- $line
      if [ $# -ge 4 ]; then count=$(($# - 3)); else count=0; fi ;;
    go*)
      set -- f2f3 e7e5 g2g4 d8h4
      i=$((count + 1))
      eval mv=\${$i}
      echo "info depth 1 score cp 0 nodes 10 time 1 pv $mv"
      echo "bestmove $mv" ;;
    quit) exit 0 ;;
  esac
done
`

func scriptedEngine(name string) config.Engine {
	return config.Engine{
		Name: name,
		Cmd:  "/bin/sh",
		Args: []string{"-c", scriptedGame},
		TC:   config.TimeControl{TimeMs: 10000},
	}
}

func TestTournament_EndToEnd(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cfg := &config.Tournament{
		Event:       "e2e",
		Format:      config.RoundRobin,
		Concurrency: 2,
		Games:       2,
		Rounds:      1,
		Output:      string("none"),
		PGN:         config.PGN{File: filepath.Join(dir, "games.pgn")},
		Snapshot:    filepath.Join(dir, "results.json"),
		Engines:     []config.Engine{scriptedEngine("alpha"), scriptedEngine("beta")},
	}
	require.NoError(t, cfg.Validate())

	tr, err := tournament.New(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, tr.Run(ctx))

	// The scripted line always ends in a win for black, so the pair splits 1-1.
	s := tr.Stats().Pair("alpha", "beta")
	assert.Equal(t, uint64(1), s.Wins)
	assert.Equal(t, uint64(1), s.Losses)
	assert.Equal(t, uint64(0), s.Draws)
	assert.Equal(t, [5]uint64{0, 0, 1, 0, 0}, s.Penta) // one WL pair

	// Both games are in the transcript.
	data, err := os.ReadFile(cfg.PGN.File)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "[Event \"e2e\"]"))
	assert.Contains(t, string(data), "Qh4#")

	// The snapshot is written on stop and restorable.
	snap, err := stats.Load(cfg.Snapshot)
	require.NoError(t, err)
	assert.Equal(t, s, snap["alpha vs beta"])
}

func TestTournament_StopBeforeStart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cfg := &config.Tournament{
		Event:       "stopped",
		Format:      config.RoundRobin,
		Concurrency: 1,
		Games:       2,
		Rounds:      1,
		Output:      "none",
		PGN:         config.PGN{File: filepath.Join(dir, "games.pgn")},
		Snapshot:    filepath.Join(dir, "results.json"),
		Engines:     []config.Engine{scriptedEngine("alpha"), scriptedEngine("beta")},
	}

	tr, err := tournament.New(ctx, cfg)
	require.NoError(t, err)

	tr.Stop()
	require.NoError(t, tr.Run(ctx))
	assert.Equal(t, uint64(0), tr.Stats().GamesPlayed())
}
