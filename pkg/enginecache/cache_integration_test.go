//go:build !windows

package enginecache_test

import (
	"context"
	"testing"

	"github.com/chessbench/tourneycore/pkg/enginecache"
	"github.com/chessbench/tourneycore/pkg/uci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scriptedEngine = `
while read -r line; do
  case "$line" in
    uci) echo "uciok" ;;
    isready) echo "readyok" ;;
    ucinewgame) ;;
    quit) exit 0 ;;
  esac
done
`

func scriptedConfig(name string) uci.EngineConfiguration {
	return uci.EngineConfiguration{Name: name, Cmd: "/bin/sh", Args: []string{"-c", scriptedEngine}}
}

func TestCache_ReleaseAndReuse(t *testing.T) {
	ctx := context.Background()
	c := enginecache.New()
	defer c.Shutdown(ctx)

	l1, err := c.GetEntry(ctx, scriptedConfig("alpha"))
	require.NoError(t, err)
	proc := l1.Proc
	l1.Release()

	// An idle process is reused after a fresh new-game handshake.
	l2, err := c.GetEntry(ctx, scriptedConfig("alpha"))
	require.NoError(t, err)
	assert.Same(t, proc, l2.Proc)
	l2.Release()
}

func TestCache_ConcurrentLeasesGetDistinctProcesses(t *testing.T) {
	ctx := context.Background()
	c := enginecache.New()
	defer c.Shutdown(ctx)

	l1, err := c.GetEntry(ctx, scriptedConfig("alpha"))
	require.NoError(t, err)
	l2, err := c.GetEntry(ctx, scriptedConfig("alpha"))
	require.NoError(t, err)

	assert.NotSame(t, l1.Proc, l2.Proc)
	assert.Equal(t, 1, c.Size())

	l1.Release()
	l2.Release()
}

func TestCache_CrashDiscardsProcess(t *testing.T) {
	ctx := context.Background()
	c := enginecache.New()
	defer c.Shutdown(ctx)

	l1, err := c.GetEntry(ctx, scriptedConfig("alpha"))
	require.NoError(t, err)
	proc := l1.Proc
	l1.Crash()

	l2, err := c.GetEntry(ctx, scriptedConfig("alpha"))
	require.NoError(t, err)
	assert.NotSame(t, proc, l2.Proc)
	l2.Release()
}
