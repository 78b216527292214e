package uci_test

import (
	"testing"

	"github.com/chessbench/tourneycore/pkg/uci"
	"github.com/stretchr/testify/assert"
)

func TestEngineConfiguration_Threads(t *testing.T) {
	cfg := uci.EngineConfiguration{
		Options: []uci.EngineOption{{Name: "Hash", Value: "64"}, {Name: "Threads", Value: "3"}},
	}
	assert.Equal(t, 3, cfg.Threads())
	assert.Equal(t, 1, uci.EngineConfiguration{}.Threads())
}

func TestTimeControl_String(t *testing.T) {
	assert.Equal(t, "1000ms+100ms", uci.TimeControl{TimeMs: 1000, IncrementMs: 100}.String())
	assert.Equal(t, "1000ms+100ms/40moves", uci.TimeControl{TimeMs: 1000, IncrementMs: 100, Moves: 40}.String())
}
