package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBestMove(t *testing.T) {
	bm, ponder, err := parseBestMove("bestmove e2e4 ponder e7e5")
	require.NoError(t, err)
	assert.Equal(t, "e2e4", bm)
	v, ok := ponder.V()
	assert.True(t, ok)
	assert.Equal(t, "e7e5", v)

	bm, ponder, err = parseBestMove("bestmove d2d4")
	require.NoError(t, err)
	assert.Equal(t, "d2d4", bm)
	_, ok = ponder.V()
	assert.False(t, ok)

	_, _, err = parseBestMove("bestmove (none)")
	assert.Error(t, err)

	_, _, err = parseBestMove("bestmove")
	assert.Error(t, err)
}

func TestParseInfo(t *testing.T) {
	info := parseInfo("info depth 12 seldepth 18 score cp 34 nodes 100000 nps 500000 time 200 pv e2e4 e7e5", Info{})
	assert.Equal(t, 12, info.Depth)
	assert.Equal(t, 18, info.SelDepth)
	assert.Equal(t, 34, info.ScoreCP)
	assert.Equal(t, uint64(100000), info.Nodes)
	assert.Equal(t, uint64(500000), info.NPS)
	assert.Equal(t, int64(200), info.TimeMs)
	assert.Equal(t, []string{"e2e4", "e7e5"}, info.PV)

	mate := parseInfo("info depth 3 score mate 2", Info{})
	assert.Equal(t, 2, mate.Mate)
}
