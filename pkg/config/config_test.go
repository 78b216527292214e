package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chessbench/tourneycore/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const valid = `
concurrency: 4
games: 2
rounds: 50
format: round-robin
pgn:
  file: out.pgn
sprt:
  enabled: true
  elo0: 0
  elo1: 5
engines:
  - name: alpha
    cmd: /usr/bin/alpha
    options:
      - name: Hash
        value: "64"
      - name: Threads
        value: "2"
    tc:
      time: 10000
      increment: 100
  - name: beta
    cmd: /usr/bin/beta
    tc:
      time: 10000
      increment: 100
`

func load(t *testing.T, content string) (*config.Tournament, error) {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "tournament.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	return config.Load(filename)
}

func TestLoad(t *testing.T) {
	cfg, err := load(t, valid)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 50, cfg.Rounds)
	assert.Equal(t, config.RoundRobin, cfg.Format)
	assert.Equal(t, "out.pgn", cfg.PGN.File)
	assert.True(t, cfg.SPRT.Enabled)
	assert.Equal(t, 0.05, cfg.SPRT.Alpha)

	require.Len(t, cfg.Engines, 2)
	e := cfg.Engines[0].UCI()
	assert.Equal(t, "alpha", e.Name)
	assert.Equal(t, int64(10000), e.TC.TimeMs)
	assert.Equal(t, []string{"Hash", "Threads"}, []string{e.Options[0].Name, e.Options[1].Name})
	assert.Equal(t, 2, e.Threads())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, `
engines:
  - name: alpha
    cmd: /usr/bin/alpha
    tc: {time: 1000}
  - name: beta
    cmd: /usr/bin/beta
    tc: {time: 1000}
`)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Concurrency)
	assert.Equal(t, 2, cfg.Games)
	assert.Equal(t, 1, cfg.Rounds)
	assert.Equal(t, config.RoundRobin, cfg.Format)
	assert.Equal(t, "tourneycore.pgn", cfg.PGN.File)
	assert.Equal(t, "cutechess", cfg.Output)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"one engine", `
engines:
  - {name: alpha, cmd: /bin/a, tc: {time: 1000}}
`},
		{"duplicate names", `
engines:
  - {name: alpha, cmd: /bin/a, tc: {time: 1000}}
  - {name: alpha, cmd: /bin/b, tc: {time: 1000}}
`},
		{"missing cmd", `
engines:
  - {name: alpha, tc: {time: 1000}}
  - {name: beta, cmd: /bin/b, tc: {time: 1000}}
`},
		{"no limits", `
engines:
  - {name: alpha, cmd: /bin/a}
  - {name: beta, cmd: /bin/b, tc: {time: 1000}}
`},
		{"bad format", `
format: swiss
engines:
  - {name: alpha, cmd: /bin/a, tc: {time: 1000}}
  - {name: beta, cmd: /bin/b, tc: {time: 1000}}
`},
		{"sprt odd games", `
games: 3
sprt: {enabled: true, elo0: 0, elo1: 5}
engines:
  - {name: alpha, cmd: /bin/a, tc: {time: 1000}}
  - {name: beta, cmd: /bin/b, tc: {time: 1000}}
`},
		{"sprt inverted bounds", `
sprt: {enabled: true, elo0: 5, elo1: 0}
engines:
  - {name: alpha, cmd: /bin/a, tc: {time: 1000}}
  - {name: beta, cmd: /bin/b, tc: {time: 1000}}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.content)
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}
