// Package tournament schedules and runs a tournament: it enumerates game tickets,
// dispatches them to a bounded worker pool, aggregates results and applies the SPRT
// early-stopping gate.
package tournament

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/chessbench/tourneycore/pkg/affinity"
	"github.com/chessbench/tourneycore/pkg/book"
	"github.com/chessbench/tourneycore/pkg/config"
	"github.com/chessbench/tourneycore/pkg/elosprt"
	"github.com/chessbench/tourneycore/pkg/enginecache"
	"github.com/chessbench/tourneycore/pkg/match"
	"github.com/chessbench/tourneycore/pkg/output"
	"github.com/chessbench/tourneycore/pkg/pgn"
	"github.com/chessbench/tourneycore/pkg/stats"
	"github.com/chessbench/tourneycore/pkg/uci"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Ticket is one scheduled game.
type Ticket struct {
	White, Black uci.EngineConfiguration
	Opening      book.Opening
	Round        int // game-pair id; shared by the two color-swapped games of a pair
	GameInRound  int
	GameID       int // 1-based global game number
}

// Tickets enumerates every game of the tournament in schedule order. Openings advance by
// one per game-pair; the two games of a pair share an opening with colors swapped.
func Tickets(format config.TournamentFormat, engines []uci.EngineConfiguration, rounds, games int, b *book.Book) []Ticket {
	var pairs [][2]uci.EngineConfiguration
	switch format {
	case config.Gauntlet:
		for _, e := range engines[1:] {
			pairs = append(pairs, [2]uci.EngineConfiguration{engines[0], e})
		}
	default: // round-robin
		for i := 0; i < len(engines); i++ {
			for j := i + 1; j < len(engines); j++ {
				pairs = append(pairs, [2]uci.EngineConfiguration{engines[i], engines[j]})
			}
		}
	}

	var tickets []Ticket
	pairID := 0
	gameID := 1
	for r := 0; r < rounds; r++ {
		for _, p := range pairs {
			for g := 0; g < games; g++ {
				round := pairID + g/2
				white, black := p[0], p[1]
				if g%2 == 1 {
					white, black = black, white
				}
				tickets = append(tickets, Ticket{
					White:       white,
					Black:       black,
					Opening:     b.Fetch(round),
					Round:       round,
					GameInRound: g % 2,
					GameID:      gameID,
				})
				gameID++
			}
			pairID += (games + 1) / 2
		}
	}
	return tickets
}

// Tournament owns the shared resources of a run: the engine cache, affinity manager,
// result aggregator, transcript writer and progress sink.
type Tournament struct {
	cfg     *config.Tournament
	engines []uci.EngineConfiguration

	book   *book.Book
	cache  *enginecache.Cache
	cores  *affinity.Manager
	agg    *stats.Aggregator
	out    output.Output
	writer *pgn.FileWriter
	sprt   lang.Optional[elosprt.SPRT]

	quit    iox.AsyncCloser
	mu      sync.Mutex
	fatal   error
	decided bool
}

// New builds a tournament from a validated configuration, resuming from the result
// snapshot file if one exists.
func New(ctx context.Context, cfg *config.Tournament) (*Tournament, error) {
	engines := make([]uci.EngineConfiguration, len(cfg.Engines))
	names := make([]string, len(cfg.Engines))
	for i, e := range cfg.Engines {
		engines[i] = e.UCI()
		names[i] = e.Name
	}

	b, err := book.New(ctx, cfg.Opening.Book())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrConfig, err)
	}

	writer, err := pgn.NewFileWriter(cfg.PGN.File)
	if err != nil {
		return nil, err
	}

	agg := stats.New(names)
	snap, err := stats.Load(cfg.Snapshot)
	if err != nil {
		return nil, err
	}
	if len(snap) > 0 {
		agg.SetResults(snap)
		logw.Infof(ctx, "Resumed %v games from %v", agg.GamesPlayed(), cfg.Snapshot)
	}

	t := &Tournament{
		cfg:     cfg,
		engines: engines,
		book:    b,
		cache:   enginecache.New(),
		cores:   affinity.New(corePool(cfg.Affinity), affinitySize(cfg.Affinity, engines)),
		agg:     agg,
		out:     output.New(cfg.OutputFormat(), os.Stdout),
		writer:  writer,
		quit:    iox.NewAsyncCloser(),
	}
	if cfg.SPRT.Enabled {
		t.sprt = lang.Some(cfg.SPRT.Test())
	}
	return t, nil
}

// corePool returns the CPU ids available for pinning, or nil when affinity is off.
func corePool(enabled bool) []int {
	if !enabled {
		return nil
	}
	cores := make([]int, runtime.NumCPU())
	for i := range cores {
		cores[i] = i
	}
	return cores
}

// affinitySize returns the per-game reservation size: twice the engines' shared thread
// count if they agree, else 0 which disables affinity.
func affinitySize(enabled bool, engines []uci.EngineConfiguration) int {
	if !enabled || len(engines) == 0 {
		return 0
	}
	threads := engines[0].Threads()
	for _, e := range engines[1:] {
		if e.Threads() != threads {
			return 0
		}
	}
	return 2 * threads // both engines of a game share the reservation
}

// Stats returns the result aggregator.
func (t *Tournament) Stats() *stats.Aggregator {
	return t.agg
}

// Stop requests a cooperative stop: no new games start, and in-flight games end with an
// interrupt termination at their next suspension point.
func (t *Tournament) Stop() {
	t.quit.Close()
}

// Stopped reports whether a stop was requested.
func (t *Tournament) Stopped() bool {
	return t.quit.IsClosed()
}

// Decided reports whether the SPRT reached a decision.
func (t *Tournament) Decided() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.decided
}

// Run plays the tournament to completion, early stop or failure. It returns the first
// fatal error, if any.
func (t *Tournament) Run(ctx context.Context) error {
	ctx, cancel := contextx.WithQuitCancel(ctx, t.quit.Closed())
	defer cancel()

	tickets := t.tickets()
	total := len(tickets)

	// Resume: games already in the snapshot are not replayed.
	if played := int(t.agg.GamesPlayed()); played > 0 {
		if played >= len(tickets) {
			tickets = nil
		} else {
			tickets = tickets[played:]
		}
		logw.Infof(ctx, "Skipping %v completed games", played)
	}

	work := make(chan Ticket)
	var wg sync.WaitGroup
	for i := 0; i < t.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ticket := range work {
				if t.Stopped() {
					continue // drain
				}
				t.playGame(ctx, ticket, total)
			}
		}()
	}

dispatch:
	for _, ticket := range tickets {
		select {
		case work <- ticket:
		case <-t.quit.Closed():
			break dispatch
		case <-ctx.Done():
			break dispatch
		}
	}
	close(work)
	wg.Wait()

	t.cache.Shutdown(ctx)
	if err := stats.Save(t.cfg.Snapshot, t.agg.GetResults()); err != nil {
		logw.Errorf(ctx, "Failed to save result snapshot: %v", err)
	}
	if err := t.writer.Close(); err != nil {
		logw.Errorf(ctx, "Failed to close transcript: %v", err)
	}
	t.out.EndTournament()

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fatal
}

func (t *Tournament) tickets() []Ticket {
	return Tickets(t.cfg.Format, t.engines, t.cfg.Rounds, t.cfg.Games, t.book)
}

// playGame runs one ticket: lease CPU cores and both engines, play (with at most one
// restart after a disconnect), write the transcript and ingest the result.
func (t *Tournament) playGame(ctx context.Context, ticket Ticket, total int) {
	core := t.cores.Consume()
	defer core.Release()

	m := match.New(t.cfg.MatchOptions(), ticket.Opening, ticket.Round, ticket.GameInRound)

	var data match.Data
	for {
		ok := func() bool {
			white, err := t.cache.GetEntry(ctx, ticket.White)
			if err != nil {
				t.fail(ctx, fmt.Errorf("engine %v cannot start: %w", ticket.White.Name, err))
				return false
			}
			defer t.releaseLease(white)

			black, err := t.cache.GetEntry(ctx, ticket.Black)
			if err != nil {
				t.fail(ctx, fmt.Errorf("engine %v cannot start: %w", ticket.Black.Name, err))
				return false
			}
			defer t.releaseLease(black)

			t.pin(ctx, core, white.Proc, black.Proc)

			t.out.StartGame(ticket.White.Name, ticket.Black.Name, ticket.GameID, total)
			data = m.Run(ctx, white.Proc, black.Proc)
			return true
		}()
		if !ok {
			return
		}
		if !data.NeedsRestart || t.Stopped() {
			break
		}
		logw.Warningf(ctx, "Restarting game %v after disconnect", ticket.GameID)
	}

	if data.Termination == match.Interrupt {
		return
	}

	record, err := pgn.Build(data, t.cfg.Event, ticket.GameID)
	if err != nil {
		logw.Errorf(ctx, "Failed to build transcript for game %v: %v", ticket.GameID, err)
	} else if err := t.writer.Write(record); err != nil {
		logw.Errorf(ctx, "Failed to write transcript for game %v: %v", ticket.GameID, err)
	}

	t.agg.Ingest(ctx, ticket.White.Name, ticket.Black.Name, ticket.Round, data.Result)
	t.out.EndGame(data, ticket.GameID, total)
	t.out.PairResult(ticket.White.Name, ticket.Black.Name, t.agg.Pair(ticket.White.Name, ticket.Black.Name), t.sprt)

	if err := stats.Save(t.cfg.Snapshot, t.agg.GetResults()); err != nil {
		logw.Errorf(ctx, "Failed to save result snapshot: %v", err)
	}

	t.checkSPRT(ctx, ticket)
}

// releaseLease returns a healthy engine to the cache, or discards a crashed one.
func (t *Tournament) releaseLease(l *enginecache.Lease) {
	if l.Proc.IsAlive() {
		l.Release()
	} else {
		l.Crash()
	}
}

// pin applies the CPU reservation to both engine processes, best effort.
func (t *Tournament) pin(ctx context.Context, core *affinity.Reservation, procs ...*uci.Process) {
	if len(core.Cores) == 0 {
		return
	}
	for _, p := range procs {
		if err := affinity.Pin(p.Pid(), core.Cores); err != nil {
			logw.Warningf(ctx, "Failed to pin engine %v to %v: %v", p.Config().Name, core.Cores, err)
		}
	}
}

// checkSPRT evaluates the early-stopping gate after each completed game and latches the
// first decision.
func (t *Tournament) checkSPRT(ctx context.Context, ticket Ticket) {
	test, ok := t.sprt.V()
	if !ok {
		return
	}

	s := t.agg.Pair(ticket.White.Name, ticket.Black.Name)
	var penta [5]int
	pairs := 0
	for i, c := range s.Penta {
		penta[i] = int(c)
		pairs += int(c)
	}
	if pairs == 0 {
		return
	}

	if decision := test.Evaluate(penta); decision != elosprt.Continue {
		t.mu.Lock()
		first := !t.decided
		t.decided = true
		t.mu.Unlock()

		if first {
			logw.Infof(ctx, "SPRT: %v accepted after %v game-pairs (llr %.2f)", decision, pairs, test.LLR(penta))
			t.Stop()
		}
	}
}

// fail records the first fatal error and stops the tournament.
func (t *Tournament) fail(ctx context.Context, err error) {
	logw.Errorf(ctx, "Fatal: %v", err)

	t.mu.Lock()
	if t.fatal == nil {
		t.fatal = err
	}
	t.mu.Unlock()
	t.Stop()
}
