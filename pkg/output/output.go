// Package output formats tournament progress for the console, in the style of the
// familiar cutechess-cli and fastchess tools.
package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/chessbench/tourneycore/pkg/elosprt"
	"github.com/chessbench/tourneycore/pkg/match"
	"github.com/chessbench/tourneycore/pkg/stats"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Format selects the progress output style.
type Format string

const (
	Cutechess Format = "cutechess"
	Fastchess Format = "fastchess"
	None      Format = "none"
)

// Output receives game lifecycle events. Implementations serialize their own writes;
// events from concurrent games may arrive in any order.
type Output interface {
	// StartGame fires when a game is picked up by a worker.
	StartGame(white, black string, gameID, total int)
	// EndGame fires when a game finishes.
	EndGame(data match.Data, gameID, total int)
	// PairResult fires after each game with the pair's cumulative stats, and carries the
	// SPRT state when an SPRT is configured.
	PairResult(first, second string, s stats.Stats, sprt lang.Optional[elosprt.SPRT])
	// EndTournament fires once all games are done or the tournament was stopped.
	EndTournament()
}

// New creates an output sink of the given format writing to w.
func New(format Format, w io.Writer) Output {
	switch format {
	case Fastchess:
		return &fastchess{w: w}
	case None:
		return &none{}
	default:
		return &cutechess{w: w}
	}
}

type none struct{}

func (none) StartGame(string, string, int, int)                                  {}
func (none) EndGame(match.Data, int, int)                                        {}
func (none) PairResult(string, string, stats.Stats, lang.Optional[elosprt.SPRT]) {}
func (none) EndTournament()                                                      {}

type cutechess struct {
	mu sync.Mutex
	w  io.Writer
}

func (o *cutechess) StartGame(white, black string, gameID, total int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.w, "Started game %v of %v (%v vs %v)\n", gameID, total, white, black)
}

func (o *cutechess) EndGame(data match.Data, gameID, total int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.w, "Finished game %v (%v vs %v): %v {%v}\n",
		gameID, data.White.Name, data.Black.Name, data.Result, data.Reason)
}

func (o *cutechess) PairResult(first, second string, s stats.Stats, sprt lang.Optional[elosprt.SPRT]) {
	o.mu.Lock()
	defer o.mu.Unlock()

	n := s.Games()
	score := 0.0
	if n > 0 {
		score = (float64(s.Wins) + float64(s.Draws)/2) / float64(n)
	}
	fmt.Fprintf(o.w, "Score of %v vs %v: %v - %v - %v  [%.3f] %v\n",
		first, second, s.Wins, s.Losses, s.Draws, score, n)

	if n > 0 {
		elo := elosprt.NewElo(int(s.Wins), int(s.Losses), int(s.Draws))
		fmt.Fprintf(o.w, "Elo difference: %v, LOS: %v, DrawRatio: %v\n",
			elo, elosprt.LOS(int(s.Wins), int(s.Losses)), elosprt.DrawRatio(int(s.Wins), int(s.Losses), int(s.Draws)))
	}
	if t, ok := sprt.V(); ok {
		penta := pentaInts(s)
		lower, upper := t.Bounds()
		fmt.Fprintf(o.w, "SPRT: llr %.2f (%.2f, %.2f), elo0 %.2f, elo1 %.2f\n",
			t.LLR(penta), lower, upper, t.Elo0, t.Elo1)
	}
}

func (o *cutechess) EndTournament() {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.w, "Finished match\n")
}

type fastchess struct {
	mu sync.Mutex
	w  io.Writer
}

func (o *fastchess) StartGame(white, black string, gameID, total int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.w, "Started game %v/%v %v vs %v\n", gameID, total, white, black)
}

func (o *fastchess) EndGame(data match.Data, gameID, total int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.w, "Finished game %v/%v %v vs %v: %v (%v)\n",
		gameID, total, data.White.Name, data.Black.Name, data.Result, data.Reason)
}

func (o *fastchess) PairResult(first, second string, s stats.Stats, sprt lang.Optional[elosprt.SPRT]) {
	o.mu.Lock()
	defer o.mu.Unlock()

	elo := elosprt.NewElo(int(s.Wins), int(s.Losses), int(s.Draws))
	fmt.Fprintf(o.w, "Results of %v vs %v: %v - %v - %v [%v]\n",
		first, second, s.Wins, s.Losses, s.Draws, elo)
	fmt.Fprintf(o.w, "Ptnml(0-2): %v, %v, %v, %v, %v\n",
		s.Penta[0], s.Penta[1], s.Penta[2], s.Penta[3], s.Penta[4])

	if t, ok := sprt.V(); ok {
		penta := pentaInts(s)
		lower, upper := t.Bounds()
		fmt.Fprintf(o.w, "LLR: %.2f (%.2f, %.2f) [%.2f, %.2f]\n",
			t.LLR(penta), lower, upper, t.Elo0, t.Elo1)
	}
}

func (o *fastchess) EndTournament() {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.w, "Tournament finished\n")
}

func pentaInts(s stats.Stats) [5]int {
	var ret [5]int
	for i, c := range s.Penta {
		ret[i] = int(c)
	}
	return ret
}
