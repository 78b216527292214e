package enginecache_test

import (
	"context"
	"testing"

	"github.com/chessbench/tourneycore/pkg/enginecache"
	"github.com/chessbench/tourneycore/pkg/uci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetEntry_SpawnFailure(t *testing.T) {
	c := enginecache.New()

	cfg := uci.EngineConfiguration{Name: "nonexistent", Cmd: "/path/does/not/exist/engine"}
	_, err := c.GetEntry(context.Background(), cfg)
	require.Error(t, err)
}

func TestCache_Size_TracksDistinctNames(t *testing.T) {
	c := enginecache.New()
	assert.Equal(t, 0, c.Size())

	cfg := uci.EngineConfiguration{Name: "a", Cmd: "/path/does/not/exist/engine"}
	_, _ = c.GetEntry(context.Background(), cfg)
	assert.Equal(t, 1, c.Size())

	_, _ = c.GetEntry(context.Background(), cfg)
	assert.Equal(t, 1, c.Size())
}
