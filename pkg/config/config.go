// Package config loads and validates the tournament configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/chessbench/tourneycore/pkg/book"
	"github.com/chessbench/tourneycore/pkg/elosprt"
	"github.com/chessbench/tourneycore/pkg/match"
	"github.com/chessbench/tourneycore/pkg/output"
	"github.com/chessbench/tourneycore/pkg/uci"
	"gopkg.in/yaml.v3"
)

// ErrConfig marks a configuration rejected before tournament start.
var ErrConfig = errors.New("invalid configuration")

// TournamentFormat selects the pairing schedule.
type TournamentFormat string

const (
	RoundRobin TournamentFormat = "round-robin"
	Gauntlet   TournamentFormat = "gauntlet"
)

// TimeControl mirrors uci.TimeControl with YAML field names in milliseconds.
type TimeControl struct {
	Moves       int   `yaml:"moves"`
	TimeMs      int64 `yaml:"time"`
	IncrementMs int64 `yaml:"increment"`
	MoveTimeMs  int64 `yaml:"movetime"`
}

// EngineOption is one UCI option, applied in configured order.
type EngineOption struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Engine configures one tournament participant.
type Engine struct {
	Name    string         `yaml:"name"`
	Dir     string         `yaml:"dir"`
	Cmd     string         `yaml:"cmd"`
	Args    []string       `yaml:"args"`
	Options []EngineOption `yaml:"options"`
	TC      TimeControl    `yaml:"tc"`
	Nodes   uint64         `yaml:"nodes"`
	Plies   uint64         `yaml:"plies"`
}

// UCI converts to the engine adapter's configuration.
func (e Engine) UCI() uci.EngineConfiguration {
	opts := make([]uci.EngineOption, len(e.Options))
	for i, o := range e.Options {
		opts[i] = uci.EngineOption{Name: o.Name, Value: o.Value}
	}
	return uci.EngineConfiguration{
		Name:    e.Name,
		Dir:     e.Dir,
		Cmd:     e.Cmd,
		Args:    e.Args,
		Options: opts,
		TC: uci.TimeControl{
			Moves:       e.TC.Moves,
			TimeMs:      e.TC.TimeMs,
			IncrementMs: e.TC.IncrementMs,
			MoveTimeMs:  e.TC.MoveTimeMs,
		},
		Nodes: e.Nodes,
		Plies: e.Plies,
	}
}

// Opening configures the opening book.
type Opening struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
	Order  string `yaml:"order"`
	Plies  int    `yaml:"plies"`
	Start  int    `yaml:"start"`
	Seed   int64  `yaml:"seed"`
}

// Book converts to the book package's options.
func (o Opening) Book() book.Options {
	return book.Options{
		File:   o.File,
		Format: book.Format(o.Format),
		Order:  book.Order(o.Order),
		Plies:  o.Plies,
		Start:  o.Start,
		Seed:   o.Seed,
	}
}

// SPRT configures the early-stopping test.
type SPRT struct {
	Enabled bool    `yaml:"enabled"`
	Elo0    float64 `yaml:"elo0"`
	Elo1    float64 `yaml:"elo1"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
}

// Test converts to the elosprt package's test parameters.
func (s SPRT) Test() elosprt.SPRT {
	return elosprt.SPRT{Elo0: s.Elo0, Elo1: s.Elo1, Alpha: s.Alpha, Beta: s.Beta}
}

// Draw configures draw adjudication.
type Draw struct {
	MoveNumber int `yaml:"move_number"`
	MoveCount  int `yaml:"move_count"`
	Score      int `yaml:"score"`
}

// Resign configures resign adjudication.
type Resign struct {
	MoveCount int `yaml:"move_count"`
	Score     int `yaml:"score"`
}

// PGN configures the transcript sink.
type PGN struct {
	File string `yaml:"file"`
}

// Tournament is the complete tournament configuration.
type Tournament struct {
	Event       string           `yaml:"event"`
	Format      TournamentFormat `yaml:"format"`
	Concurrency int              `yaml:"concurrency"`
	Games       int              `yaml:"games"`
	Rounds      int              `yaml:"rounds"`
	MaxMoves    int              `yaml:"max_moves"`
	Opening     Opening          `yaml:"opening"`
	PGN         PGN              `yaml:"pgn"`
	Affinity    bool             `yaml:"affinity"`
	SPRT        SPRT             `yaml:"sprt"`
	Draw        Draw             `yaml:"draw_adjudication"`
	Resign      Resign           `yaml:"resign"`
	Output      string           `yaml:"output"`
	Recover     bool             `yaml:"recover"`
	Snapshot    string           `yaml:"snapshot"`
	Engines     []Engine         `yaml:"engines"`
}

// MatchOptions converts to the match driver's options.
func (t *Tournament) MatchOptions() match.Options {
	return match.Options{
		Draw: match.DrawAdjudication{
			MoveNumber: t.Draw.MoveNumber,
			MoveCount:  t.Draw.MoveCount,
			Score:      t.Draw.Score,
		},
		Resign: match.ResignAdjudication{
			MoveCount: t.Resign.MoveCount,
			Score:     t.Resign.Score,
		},
		MaxPlies: t.MaxMoves * 2,
		Recover:  t.Recover,
	}
}

// OutputFormat returns the progress output format.
func (t *Tournament) OutputFormat() output.Format {
	return output.Format(t.Output)
}

// Load reads, defaults and validates a tournament configuration file.
func Load(filename string) (*Tournament, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: read %v: %v", ErrConfig, filename, err)
	}

	var t Tournament
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: parse %v: %v", ErrConfig, filename, err)
	}

	t.applyDefaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tournament) applyDefaults() {
	if t.Event == "" {
		t.Event = "tourneycore tournament"
	}
	if t.Format == "" {
		t.Format = RoundRobin
	}
	if t.Concurrency == 0 {
		t.Concurrency = 1
	}
	if t.Games == 0 {
		t.Games = 2
	}
	if t.Rounds == 0 {
		t.Rounds = 1
	}
	if t.Opening.Format == "" {
		t.Opening.Format = string(book.PGN)
	}
	if t.Opening.Order == "" {
		t.Opening.Order = string(book.Sequential)
	}
	if t.PGN.File == "" {
		t.PGN.File = "tourneycore.pgn"
	}
	if t.Output == "" {
		t.Output = string(output.Cutechess)
	}
	if t.Snapshot == "" {
		t.Snapshot = "tourneycore-results.json"
	}
	if t.SPRT.Enabled {
		if t.SPRT.Alpha == 0 {
			t.SPRT.Alpha = 0.05
		}
		if t.SPRT.Beta == 0 {
			t.SPRT.Beta = 0.05
		}
	}
}

// Validate rejects configurations that cannot produce a well-defined tournament.
func (t *Tournament) Validate() error {
	if t.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1", ErrConfig)
	}
	if len(t.Engines) < 2 {
		return fmt.Errorf("%w: at least two engines required", ErrConfig)
	}

	seen := map[string]bool{}
	for _, e := range t.Engines {
		if e.Name == "" {
			return fmt.Errorf("%w: engine name required", ErrConfig)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate engine name %q", ErrConfig, e.Name)
		}
		seen[e.Name] = true

		if e.Cmd == "" {
			return fmt.Errorf("%w: engine %v: cmd required", ErrConfig, e.Name)
		}
		if e.TC.TimeMs == 0 && e.TC.MoveTimeMs == 0 && e.Nodes == 0 && e.Plies == 0 {
			return fmt.Errorf("%w: engine %v: a time control, node or ply limit is required", ErrConfig, e.Name)
		}
	}

	switch t.Format {
	case RoundRobin, Gauntlet:
	default:
		return fmt.Errorf("%w: unknown tournament format %q", ErrConfig, t.Format)
	}

	switch output.Format(t.Output) {
	case output.Cutechess, output.Fastchess, output.None:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrConfig, t.Output)
	}

	if t.SPRT.Enabled {
		// The penta-nomial SPRT is defined over completed game-pairs; an odd number of
		// games per pair would leave the last game's contribution undefined.
		if t.Games%2 != 0 {
			return fmt.Errorf("%w: sprt requires an even number of games per pair", ErrConfig)
		}
		if t.SPRT.Elo0 >= t.SPRT.Elo1 {
			return fmt.Errorf("%w: sprt requires elo0 < elo1", ErrConfig)
		}
		if t.SPRT.Alpha <= 0 || t.SPRT.Alpha >= 1 || t.SPRT.Beta <= 0 || t.SPRT.Beta >= 1 {
			return fmt.Errorf("%w: sprt requires alpha, beta in (0, 1)", ErrConfig)
		}
	}
	return nil
}
