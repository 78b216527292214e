package match

import (
	"testing"

	"github.com/chessbench/tourneycore/pkg/board"
	"github.com/chessbench/tourneycore/pkg/board/fen"
	"github.com/chessbench/tourneycore/pkg/book"
	"github.com/chessbench/tourneycore/pkg/uci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_SuddenDeath(t *testing.T) {
	c := NewClock(uci.TimeControl{TimeMs: 1000, IncrementMs: 100})

	require.True(t, c.Consume(300))
	assert.Equal(t, int64(800), c.RemainingMs)

	require.True(t, c.Consume(800))
	assert.Equal(t, int64(100), c.RemainingMs)

	// Exceeding the remaining time is a loss; no increment is credited.
	require.False(t, c.Consume(200))
	assert.Negative(t, c.RemainingMs)
}

func TestClock_PeriodReset(t *testing.T) {
	c := NewClock(uci.TimeControl{Moves: 2, TimeMs: 1000})

	require.True(t, c.Consume(100))
	assert.Equal(t, 1, c.MovesLeftInPeriod)

	require.True(t, c.Consume(100))
	assert.Equal(t, 2, c.MovesLeftInPeriod)
	assert.Equal(t, int64(1800), c.RemainingMs)
}

func newTestBoard(t *testing.T) *board.Board {
	t.Helper()
	pos, turn, np, fm, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	return board.NewBoard(board.NewPolyglotTable(), pos, turn, np, fm)
}

func testSides() map[board.Color]*side {
	return map[board.Color]*side{
		board.White: {cfg: uci.EngineConfiguration{Name: "white"}},
		board.Black: {cfg: uci.EngineConfiguration{Name: "black"}},
	}
}

func TestAdjudicate_DrawScore(t *testing.T) {
	m := New(Options{Draw: DrawAdjudication{MoveNumber: 0, MoveCount: 2, Score: 10}}, book.Opening{}, 0, 0)
	b := newTestBoard(t)
	sides := testSides()

	var data Data
	quiet := MoveRecord{ScoreCP: 5}

	assert.False(t, m.adjudicate(&data, b, sides, board.White, quiet))
	assert.False(t, m.adjudicate(&data, b, sides, board.Black, quiet))
	assert.False(t, m.adjudicate(&data, b, sides, board.White, quiet))
	assert.True(t, m.adjudicate(&data, b, sides, board.Black, quiet))

	assert.Equal(t, AdjudicationDrawScore, data.Termination)
	assert.Equal(t, board.Draw, data.Result)
}

func TestAdjudicate_DrawStreakResets(t *testing.T) {
	m := New(Options{Draw: DrawAdjudication{MoveCount: 2, Score: 10}}, book.Opening{}, 0, 0)
	b := newTestBoard(t)
	sides := testSides()

	var data Data
	assert.False(t, m.adjudicate(&data, b, sides, board.White, MoveRecord{ScoreCP: 5}))
	assert.False(t, m.adjudicate(&data, b, sides, board.Black, MoveRecord{ScoreCP: 5}))
	// A loud score resets white's streak.
	assert.False(t, m.adjudicate(&data, b, sides, board.White, MoveRecord{ScoreCP: 300}))
	assert.False(t, m.adjudicate(&data, b, sides, board.Black, MoveRecord{ScoreCP: 5}))
	assert.False(t, m.adjudicate(&data, b, sides, board.White, MoveRecord{ScoreCP: 5}))
	assert.Equal(t, Termination(Normal), data.Termination)
}

func TestAdjudicate_Resign(t *testing.T) {
	m := New(Options{Resign: ResignAdjudication{MoveCount: 2, Score: 500}}, book.Opening{}, 0, 0)
	b := newTestBoard(t)
	sides := testSides()

	var data Data
	// White is winning big, black concedes; two full moves in a row.
	assert.False(t, m.adjudicate(&data, b, sides, board.White, MoveRecord{ScoreCP: 600}))
	assert.False(t, m.adjudicate(&data, b, sides, board.Black, MoveRecord{ScoreCP: -700}))
	assert.False(t, m.adjudicate(&data, b, sides, board.White, MoveRecord{ScoreCP: 800}))
	assert.True(t, m.adjudicate(&data, b, sides, board.Black, MoveRecord{ScoreCP: -900}))

	assert.Equal(t, AdjudicationResign, data.Termination)
	assert.Equal(t, board.WhiteWins, data.Result)
	assert.Contains(t, data.Reason, "black")
}

func TestAdjudicate_ResignMateScores(t *testing.T) {
	m := New(Options{Resign: ResignAdjudication{MoveCount: 1, Score: 500}}, book.Opening{}, 0, 0)
	b := newTestBoard(t)
	sides := testSides()

	var data Data
	assert.False(t, m.adjudicate(&data, b, sides, board.White, MoveRecord{Mate: 3}))
	assert.True(t, m.adjudicate(&data, b, sides, board.Black, MoveRecord{Mate: -3}))
	assert.Equal(t, board.WhiteWins, data.Result)
}

func TestAdjudicate_MaxPlies(t *testing.T) {
	m := New(Options{MaxPlies: 2}, book.Opening{}, 0, 0)
	b := newTestBoard(t)
	sides := testSides()

	data := Data{Moves: make([]MoveRecord, 2)}
	assert.True(t, m.adjudicate(&data, b, sides, board.White, MoveRecord{}))
	assert.Equal(t, AdjudicationPlies, data.Termination)
	assert.Equal(t, board.Draw, data.Result)
}

func TestApplyMove(t *testing.T) {
	m := New(Options{}, book.Opening{}, 0, 0)
	b := newTestBoard(t)

	record, ok := m.applyMove(b, uci.BestMove{Move: "e2e4", LastInfo: uci.Info{Depth: 10, ScoreCP: 25}})
	require.True(t, ok)
	assert.Equal(t, "e2e4", record.UCI)
	assert.Equal(t, "e4", record.SAN)
	assert.Equal(t, 10, record.Depth)
	assert.Equal(t, 25, record.ScoreCP)

	_, ok = m.applyMove(b, uci.BestMove{Move: "e2e4"}) // square now empty
	assert.False(t, ok)

	_, ok = m.applyMove(b, uci.BestMove{Move: "junk"})
	assert.False(t, ok)
}

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		err         error
		termination Termination
		result      board.Outcome
	}{
		{uci.ErrProtocolTimeout, TimeLoss, board.BlackWins},
		{uci.ErrDisconnect, Disconnect, board.BlackWins},
		{uci.ErrMalformed, IllegalMove, board.BlackWins},
	}

	for _, tt := range tests {
		m := New(Options{Recover: true}, book.Opening{}, 0, 0)
		m.attempts = 1 // as if Run was entered once

		data := Data{White: uci.EngineConfiguration{Name: "white"}, Black: uci.EngineConfiguration{Name: "black"}}
		m.classifyFailure(&data, tt.err, board.White, "")

		assert.Equal(t, tt.termination, data.Termination, "%v", tt.err)
		assert.Equal(t, tt.result, data.Result, "%v", tt.err)
		assert.Contains(t, data.Reason, "white")
	}
}

func TestClassifyFailure_RestartPolicy(t *testing.T) {
	m := New(Options{Recover: true}, book.Opening{}, 0, 0)

	m.attempts = 1
	var data Data
	m.classifyFailure(&data, uci.ErrDisconnect, board.White, "")
	assert.True(t, data.NeedsRestart)

	// Only one retry per game.
	m.attempts = 2
	data = Data{}
	m.classifyFailure(&data, uci.ErrDisconnect, board.White, "")
	assert.False(t, data.NeedsRestart)

	// No retry when recovery is disabled.
	m = New(Options{}, book.Opening{}, 0, 0)
	m.attempts = 1
	data = Data{}
	m.classifyFailure(&data, uci.ErrDisconnect, board.White, "")
	assert.False(t, data.NeedsRestart)
}
