package elosprt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSPRT_Bounds(t *testing.T) {
	s := SPRT{Elo0: 0, Elo1: 5, Alpha: 0.05, Beta: 0.05}
	lower, upper := s.Bounds()
	assert.InDelta(t, math.Log(0.95/0.05), upper, 1e-9)
	assert.InDelta(t, math.Log(0.05/0.95), lower, 1e-9)
}

func TestSPRT_AcceptH1(t *testing.T) {
	s := SPRT{Elo0: 0, Elo1: 5, Alpha: 0.05, Beta: 0.05}

	// [LL, LD, WL+DD, WD, WW]
	penta := [5]int{0, 5, 20, 20, 30}
	assert.Greater(t, s.LLR(penta), math.Log(0.95/0.05))
	assert.Equal(t, AcceptH1, s.Evaluate(penta))
}

func TestSPRT_AcceptH0(t *testing.T) {
	s := SPRT{Elo0: 0, Elo1: 5, Alpha: 0.05, Beta: 0.05}

	// Mirror image of the H1 case: the candidate is losing badly.
	penta := [5]int{30, 20, 20, 5, 0}
	assert.Equal(t, AcceptH0, s.Evaluate(penta))
}

func TestSPRT_Continue(t *testing.T) {
	s := SPRT{Elo0: 0, Elo1: 5, Alpha: 0.05, Beta: 0.05}

	assert.Equal(t, Continue, s.Evaluate([5]int{}))
	assert.Equal(t, Continue, s.Evaluate([5]int{1, 2, 4, 2, 1}))
}

func TestSPRT_MonotonicDecision(t *testing.T) {
	s := SPRT{Elo0: 0, Elo1: 5, Alpha: 0.05, Beta: 0.05}

	penta := [5]int{0, 5, 20, 20, 30}
	assert.Equal(t, AcceptH1, s.Evaluate(penta))

	// Piling on more of the same evidence cannot reverse the decision.
	penta[4] += 100
	assert.Equal(t, AcceptH1, s.Evaluate(penta))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "H0", AcceptH0.String())
	assert.Equal(t, "H1", AcceptH1.String())
	assert.Equal(t, "continue", Continue.String())
}
