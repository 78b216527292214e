// Package stats aggregates per-pair game results, including the penta-nomial game-pair
// counters used for SPRT evaluation, and supports snapshot/restore for tournament resume.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/chessbench/tourneycore/pkg/board"
	"github.com/seekerror/logw"
)

// Stats holds win/loss/draw counts for an engine pair, from the first-named engine's
// viewpoint, plus the five game-pair counters indexed by the pair's joint score:
// [LL, LD, WL+DD, WD, WW].
type Stats struct {
	Wins   uint64    `json:"w"`
	Losses uint64    `json:"l"`
	Draws  uint64    `json:"d"`
	Penta  [5]uint64 `json:"penta"`
}

// Games returns the number of games ingested for this pair.
func (s Stats) Games() uint64 {
	return s.Wins + s.Losses + s.Draws
}

func (s Stats) String() string {
	return fmt.Sprintf("%v - %v - %v [%v]", s.Wins, s.Losses, s.Draws, s.Penta)
}

// Snapshot is a serializable view of all pair results, keyed "A vs B".
type Snapshot map[string]Stats

// Aggregator ingests per-game results keyed by unordered engine pair. Concurrency-safe.
// The viewpoint engine of a pair is the one that was registered first.
type Aggregator struct {
	mu      sync.Mutex
	order   map[string]int // registration order; defines the pair viewpoint
	results map[string]*Stats
	pending map[pendingKey]float64 // first game's score, awaiting the paired game
}

type pendingKey struct {
	pair  string
	round int
}

// New creates an aggregator. The engine names define the viewpoint: for any pair, counts
// are recorded from the perspective of the engine listed earlier.
func New(names []string) *Aggregator {
	order := make(map[string]int, len(names))
	for i, n := range names {
		order[n] = i
	}
	return &Aggregator{
		order:   order,
		results: map[string]*Stats{},
		pending: map[pendingKey]float64{},
	}
}

// viewpoint returns (A, B) with A the engine registered earlier, and the pair key.
func (a *Aggregator) viewpoint(x, y string) (string, string) {
	if a.order[x] <= a.order[y] {
		return x, y
	}
	return y, x
}

// Key returns the canonical "A vs B" key for the given engine pair.
func (a *Aggregator) Key(x, y string) string {
	first, second := a.viewpoint(x, y)
	return fmt.Sprintf("%v vs %v", first, second)
}

// Ingest records one finished game. White/black are engine names; outcome is the game
// result. When the second game of a game-pair for the same round arrives, the joint
// penta-nomial bucket is updated as well.
func (a *Aggregator) Ingest(ctx context.Context, white, black string, round int, outcome board.Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()

	first, _ := a.viewpoint(white, black)
	key := a.Key(white, black)

	s, ok := a.results[key]
	if !ok {
		s = &Stats{}
		a.results[key] = s
	}

	// Score from the viewpoint engine's perspective.
	var score float64
	switch outcome {
	case board.WhiteWins:
		score = 1
	case board.BlackWins:
		score = 0
	default:
		score = 0.5
	}
	if first != white {
		score = 1 - score
	}

	switch score {
	case 1:
		s.Wins++
	case 0:
		s.Losses++
	default:
		s.Draws++
	}

	pk := pendingKey{pair: key, round: round}
	if prev, ok := a.pending[pk]; ok {
		delete(a.pending, pk)
		s.Penta[int(2*(prev+score))]++
	} else {
		a.pending[pk] = score
	}

	logw.Debugf(ctx, "Ingested %v round %v: %v", key, round, s)
}

// Pair returns the current stats for the given engine pair, from the viewpoint engine's
// perspective.
func (a *Aggregator) Pair(x, y string) Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.results[a.Key(x, y)]; ok {
		return *s
	}
	return Stats{}
}

// GetResults returns an atomic snapshot of all pair results.
func (a *Aggregator) GetResults() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	ret := make(Snapshot, len(a.results))
	for k, v := range a.results {
		ret[k] = *v
	}
	return ret
}

// SetResults restores the aggregator from a snapshot, discarding current counts.
func (a *Aggregator) SetResults(snap Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.results = make(map[string]*Stats, len(snap))
	for k, v := range snap {
		s := v
		a.results[k] = &s
	}
	a.pending = map[pendingKey]float64{}
}

// GamesPlayed returns the total number of games across all pairs.
func (a *Aggregator) GamesPlayed() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	var ret uint64
	for _, s := range a.results {
		ret += s.Games()
	}
	return ret
}

// Save writes the snapshot to the given file as JSON.
func Save(filename string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("stats: marshal snapshot: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("stats: write %v: %w", filename, err)
	}
	return nil
}

// Load reads a snapshot from the given file. A missing file yields an empty snapshot.
func Load(filename string) (Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return nil, fmt.Errorf("stats: read %v: %w", filename, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("stats: parse %v: %w", filename, err)
	}
	return snap, nil
}
