// Package match drives a single game between two engine processes: the per-move UCI
// exchange, clock management, termination detection and adjudication.
package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chessbench/tourneycore/pkg/board"
	"github.com/chessbench/tourneycore/pkg/board/fen"
	"github.com/chessbench/tourneycore/pkg/book"
	"github.com/chessbench/tourneycore/pkg/uci"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Termination classifies how a game ended.
type Termination int

const (
	Normal Termination = iota
	TimeLoss
	IllegalMove
	Disconnect
	AdjudicationNodes
	AdjudicationPlies
	AdjudicationDrawScore
	AdjudicationResign
	Interrupt
)

func (t Termination) String() string {
	switch t {
	case Normal:
		return "normal"
	case TimeLoss:
		return "time forfeit"
	case IllegalMove:
		return "illegal move"
	case Disconnect:
		return "disconnect"
	case AdjudicationNodes:
		return "nodes adjudication"
	case AdjudicationPlies:
		return "max moves adjudication"
	case AdjudicationDrawScore:
		return "draw by adjudication"
	case AdjudicationResign:
		return "resign by adjudication"
	case Interrupt:
		return "interrupted"
	default:
		return "unknown"
	}
}

// MoveRecord captures one played move with the engine's last reported search info.
type MoveRecord struct {
	UCI      string
	SAN      string
	ScoreCP  int
	Mate     int
	Depth    int
	SelDepth int
	Nodes    uint64
	TimeMs   int64
	PV       []string
}

// Data is the complete record of one finished game.
type Data struct {
	White, Black uci.EngineConfiguration
	Opening      book.Opening
	Moves        []MoveRecord
	Termination  Termination
	Reason       string
	Result       board.Outcome
	FENFinal     string
	NeedsRestart bool
	Attempts     int
	Round        int
	GameInRound  int
	Start, End   time.Time
}

// Clock is one engine's game clock. Remaining may go negative transiently while a move's
// elapsed time is being accounted; a negative value at a decision point is a time loss.
type Clock struct {
	RemainingMs       int64
	IncrementMs       int64
	MovesLeftInPeriod int
	MovesPerPeriod    int
	periodMs          int64
}

// NewClock builds a game clock from a time control.
func NewClock(tc uci.TimeControl) Clock {
	return Clock{
		RemainingMs:       tc.TimeMs,
		IncrementMs:       tc.IncrementMs,
		MovesLeftInPeriod: tc.Moves,
		MovesPerPeriod:    tc.Moves,
		periodMs:          tc.TimeMs,
	}
}

// Consume deducts a move's elapsed time. If the move was delivered within the remaining
// time, the increment is credited and the period advances. Returns false on time loss.
func (c *Clock) Consume(elapsedMs int64) bool {
	c.RemainingMs -= elapsedMs
	if c.RemainingMs < 0 {
		return false
	}

	c.RemainingMs += c.IncrementMs
	if c.MovesPerPeriod > 0 {
		c.MovesLeftInPeriod--
		if c.MovesLeftInPeriod == 0 {
			c.RemainingMs += c.periodMs
			c.MovesLeftInPeriod = c.MovesPerPeriod
		}
	}
	return true
}

// DrawAdjudication terminates a game as drawn once both engines have reported a score
// within Score centipawns for MoveCount consecutive full moves, at or after move number
// MoveNumber. Zero MoveCount disables the rule.
type DrawAdjudication struct {
	MoveNumber int
	MoveCount  int
	Score      int
}

// ResignAdjudication terminates a game as lost for a side that has reported a score at or
// below -Score for MoveCount consecutive moves while the opponent reported at or above
// +Score. Zero MoveCount disables the rule.
type ResignAdjudication struct {
	MoveCount int
	Score     int
}

// Options configures the match driver.
type Options struct {
	Draw     DrawAdjudication
	Resign   ResignAdjudication
	MaxPlies int  // adjudicate a draw once this many plies are played; 0 = unlimited
	Recover  bool // allow one restart after an engine disconnect

	Grace time.Duration // read slack beyond the remaining clock
}

// DefaultGrace is the per-move read slack allowed beyond the engine's own clock.
const DefaultGrace = 500 * time.Millisecond

// Match runs games for one ticket. Run may be invoked again when the returned Data has
// NeedsRestart set; the attempt counter caps restarts at one per game.
type Match struct {
	opts     Options
	opening  book.Opening
	round    int
	game     int
	attempts int

	zt *board.ZobristTable
}

// New creates a match driver for one game ticket.
func New(opts Options, opening book.Opening, round, gameInRound int) *Match {
	if opts.Grace <= 0 {
		opts.Grace = DefaultGrace
	}
	return &Match{
		opts:    opts,
		opening: opening,
		round:   round,
		game:    gameInRound,
		zt:      board.NewPolyglotTable(),
	}
}

// side is the per-color engine state within one game.
type side struct {
	proc  *uci.Process
	cfg   uci.EngineConfiguration
	clock Clock

	drawStreak   int
	resignStreak int
	winStreak    int
}

// Run plays one game between the given engine processes, white and black. The context
// carries cancellation: when it is done, the game ends with an Interrupt termination at
// the next suspension point.
func (m *Match) Run(ctx context.Context, white, black *uci.Process) Data {
	data := Data{
		White:       white.Config(),
		Black:       black.Config(),
		Opening:     m.opening,
		Round:       m.round,
		GameInRound: m.game,
		Attempts:    m.attempts,
		Start:       time.Now(),
		Result:      board.Undecided,
	}
	m.attempts++

	defer func() {
		data.End = time.Now()
	}()

	if contextx.IsCancelled(ctx) {
		data.Termination = Interrupt
		return data
	}

	b, moves, err := m.setup(ctx, white, black)
	if err != nil {
		m.classifyFailure(&data, err, board.White, "setup failed")
		return data
	}

	sides := map[board.Color]*side{
		board.White: {proc: white, cfg: white.Config(), clock: NewClock(white.Config().TC)},
		board.Black: {proc: black, cfg: black.Config(), clock: NewClock(black.Config().TC)},
	}

	if !hasLegalMove(b) {
		b.AdjudicateNoLegalMoves()
	}

	for !b.Result().IsDecided() {
		if contextx.IsCancelled(ctx) {
			data.Termination = Interrupt
			return data
		}

		turn := b.Turn()
		e := sides[turn]

		if err := e.proc.Position(ctx, m.opening.FEN, moves); err != nil {
			m.classifyFailure(&data, err, turn, "position rejected")
			break
		}
		if err := e.proc.Go(ctx, m.limits(sides, turn)); err != nil {
			m.classifyFailure(&data, err, turn, "go rejected")
			break
		}

		deadline := m.deadline(e)
		bm, err := e.proc.ReadBestMove(ctx, deadline)
		if err != nil {
			if contextx.IsCancelled(ctx) {
				data.Termination = Interrupt
				return data
			}
			m.classifyFailure(&data, err, turn, "")
			break
		}

		if e.cfg.TC.MoveTimeMs == 0 && e.cfg.TC.TimeMs > 0 {
			if !e.clock.Consume(bm.Elapsed.Milliseconds()) {
				data.Termination = TimeLoss
				data.Result = board.Loss(turn)
				data.Reason = fmt.Sprintf("%v loses on time", e.cfg.Name)
				break
			}
		}

		record, ok := m.applyMove(b, bm)
		if !ok {
			data.Termination = IllegalMove
			data.Result = board.Loss(turn)
			data.Reason = fmt.Sprintf("%v makes an illegal move: %v", e.cfg.Name, bm.Move)
			break
		}
		moves = append(moves, record.UCI)
		data.Moves = append(data.Moves, record)

		if !b.Result().IsDecided() && !hasLegalMove(b) {
			b.AdjudicateNoLegalMoves()
		}
		if b.Result().IsDecided() {
			data.Termination = Normal
			data.Result = b.Result().Outcome
			data.Reason = b.Result().Reason.String()
			break
		}

		if m.adjudicate(&data, b, sides, turn, record) {
			break
		}
	}

	if data.Termination == Normal && data.Result == board.Undecided && b.Result().IsDecided() {
		// The opening itself was a terminal position.
		data.Result = b.Result().Outcome
		data.Reason = b.Result().Reason.String()
	}
	data.FENFinal = fen.Encode(b.Position(), b.Turn(), b.NoProgress(), b.FullMoves())

	logw.Infof(ctx, "Finished game %v-%v: %v (%v)", data.White.Name, data.Black.Name, data.Result, data.Reason)
	return data
}

// setup resets both engines and replays the opening onto a fresh board.
func (m *Match) setup(ctx context.Context, white, black *uci.Process) (*board.Board, []string, error) {
	if err := white.NewGame(ctx); err != nil {
		return nil, nil, err
	}
	if err := black.NewGame(ctx); err != nil {
		return nil, nil, err
	}

	start := m.opening.FEN
	if start == "" {
		start = fen.Initial
	}
	pos, turn, np, fm, err := fen.Decode(start)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid opening %v: %v", m.opening, err)
	}

	b := board.NewBoard(m.zt, pos, turn, np, fm)
	var moves []string
	for _, str := range m.opening.Moves {
		mv, err := board.ParseMove(str)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid opening move %v: %v", str, err)
		}
		if !pushMove(b, mv) {
			return nil, nil, fmt.Errorf("illegal opening move %v in %v", str, m.opening)
		}
		moves = append(moves, str)
	}
	return b, moves, nil
}

// limits builds the "go" limits for the side to move.
func (m *Match) limits(sides map[board.Color]*side, turn board.Color) uci.Limits {
	e := sides[turn]

	l := uci.Limits{
		Nodes: e.cfg.Nodes,
		Depth: int(e.cfg.Plies),
	}
	if e.cfg.TC.MoveTimeMs > 0 {
		l.MoveTimeMs = e.cfg.TC.MoveTimeMs
		return l
	}

	l.WTimeMs = sides[board.White].clock.RemainingMs
	l.BTimeMs = sides[board.Black].clock.RemainingMs
	l.WIncMs = sides[board.White].clock.IncrementMs
	l.BIncMs = sides[board.Black].clock.IncrementMs
	if e.clock.MovesPerPeriod > 0 {
		l.MovesToGo = e.clock.MovesLeftInPeriod
	}
	return l
}

// deadline computes the wall-clock read budget for the side to move.
func (m *Match) deadline(e *side) time.Duration {
	if e.cfg.TC.MoveTimeMs > 0 {
		return time.Duration(e.cfg.TC.MoveTimeMs)*time.Millisecond + m.opts.Grace
	}
	if e.cfg.TC.TimeMs > 0 {
		return time.Duration(e.clock.RemainingMs)*time.Millisecond + m.opts.Grace
	}
	// No clock configured (e.g. fixed nodes or depth): allow a generous fixed budget.
	return time.Minute + m.opts.Grace
}

// applyMove validates and applies the engine's bestmove, returning its record.
func (m *Match) applyMove(b *board.Board, bm uci.BestMove) (MoveRecord, bool) {
	mv, err := board.ParseMove(bm.Move)
	if err != nil {
		return MoveRecord{}, false
	}

	for _, candidate := range b.Position().PseudoLegalMoves(b.Turn()) {
		if !candidate.Equals(mv) {
			continue
		}
		san := board.PrintSAN(b.Position(), b.Turn(), candidate)
		if !b.PushMove(candidate) {
			return MoveRecord{}, false
		}
		return MoveRecord{
			UCI:      candidate.String(),
			SAN:      san,
			ScoreCP:  bm.LastInfo.ScoreCP,
			Mate:     bm.LastInfo.Mate,
			Depth:    bm.LastInfo.Depth,
			SelDepth: bm.LastInfo.SelDepth,
			Nodes:    bm.LastInfo.Nodes,
			TimeMs:   bm.LastInfo.TimeMs,
			PV:       bm.LastInfo.PV,
		}, true
	}
	return MoveRecord{}, false
}

// adjudicate applies the configured early-termination rules after a move by `turn`.
// Returns true if the game was terminated.
func (m *Match) adjudicate(data *Data, b *board.Board, sides map[board.Color]*side, turn board.Color, record MoveRecord) bool {
	if m.opts.MaxPlies > 0 && len(data.Moves) >= m.opts.MaxPlies {
		data.Termination = AdjudicationPlies
		data.Result = board.Draw
		data.Reason = fmt.Sprintf("draw by adjudication after %v plies", len(data.Moves))
		b.Adjudicate(board.Result{Outcome: board.Draw})
		return true
	}

	e := sides[turn]
	opp := sides[turn.Opponent()]

	// Draw rule: both sides quiet for MoveCount consecutive full moves.
	if m.opts.Draw.MoveCount > 0 {
		if record.Mate == 0 && abs(record.ScoreCP) <= m.opts.Draw.Score {
			e.drawStreak++
		} else {
			e.drawStreak = 0
		}
		if b.FullMoves() >= m.opts.Draw.MoveNumber &&
			e.drawStreak >= m.opts.Draw.MoveCount && opp.drawStreak >= m.opts.Draw.MoveCount {
			data.Termination = AdjudicationDrawScore
			data.Result = board.Draw
			data.Reason = "draw by adjudication"
			b.Adjudicate(board.Result{Outcome: board.Draw})
			return true
		}
	}

	// Resign rule: the mover concedes while the opponent agrees it is winning.
	if m.opts.Resign.MoveCount > 0 {
		losing := record.Mate < 0 || (record.Mate == 0 && record.ScoreCP <= -m.opts.Resign.Score)
		winning := record.Mate > 0 || (record.Mate == 0 && record.ScoreCP >= m.opts.Resign.Score)

		if losing {
			e.resignStreak++
		} else {
			e.resignStreak = 0
		}
		if winning {
			e.winStreak++
		} else {
			e.winStreak = 0
		}

		if e.resignStreak >= m.opts.Resign.MoveCount && opp.winStreak >= m.opts.Resign.MoveCount {
			data.Termination = AdjudicationResign
			data.Result = board.Loss(turn)
			data.Reason = fmt.Sprintf("%v resigns by adjudication", e.cfg.Name)
			b.Adjudicate(board.Result{Outcome: board.Loss(turn)})
			return true
		}
	}

	return false
}

// classifyFailure fills termination state from an engine I/O error during the given
// side's decision phase.
func (m *Match) classifyFailure(data *Data, err error, turn board.Color, context string) {
	name := data.White.Name
	if turn == board.Black {
		name = data.Black.Name
	}

	switch {
	case errors.Is(err, uci.ErrProtocolTimeout):
		data.Termination = TimeLoss
		data.Result = board.Loss(turn)
		data.Reason = fmt.Sprintf("%v loses on time", name)
	case errors.Is(err, uci.ErrDisconnect):
		data.Termination = Disconnect
		data.Result = board.Loss(turn)
		data.Reason = fmt.Sprintf("%v disconnects", name)
		data.NeedsRestart = m.opts.Recover && m.attempts <= 1
	case errors.Is(err, uci.ErrMalformed):
		data.Termination = IllegalMove
		data.Result = board.Loss(turn)
		data.Reason = fmt.Sprintf("%v sends a malformed move", name)
	default:
		data.Termination = Disconnect
		data.Result = board.Loss(turn)
		data.Reason = fmt.Sprintf("%v fails: %v", name, err)
		if context != "" {
			data.Reason = fmt.Sprintf("%v: %v", context, data.Reason)
		}
	}
}

// hasLegalMove reports whether the side to move has at least one legal move.
func hasLegalMove(b *board.Board) bool {
	for _, candidate := range b.Position().PseudoLegalMoves(b.Turn()) {
		if _, ok := b.Position().Move(candidate); ok {
			return true
		}
	}
	return false
}

func pushMove(b *board.Board, mv board.Move) bool {
	for _, candidate := range b.Position().PseudoLegalMoves(b.Turn()) {
		if candidate.Equals(mv) {
			return b.PushMove(candidate)
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
