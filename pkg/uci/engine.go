// Package uci implements a controller-side adapter for driving an external chess engine
// subprocess over the Universal Chess Interface protocol. It plays the GUI's role:
// instead of parsing commands from a GUI, it issues them to a spawned process and parses
// the engine's replies.
package uci

import "fmt"

// EngineOption is a single UCI "setoption" to apply at start, in configured order.
type EngineOption struct {
	Name  string
	Value string
}

// TimeControl describes a UCI time control. Moves==0 means sudden death for the rest of
// the game; Moves==N>0 means N moves must be made every period. A non-zero MoveTimeMs
// requests a fixed time per move and overrides period management.
type TimeControl struct {
	Moves       int
	TimeMs      int64
	IncrementMs int64
	MoveTimeMs  int64
}

func (t TimeControl) String() string {
	if t.MoveTimeMs > 0 {
		return fmt.Sprintf("%vms/move", t.MoveTimeMs)
	}
	if t.Moves == 0 {
		return fmt.Sprintf("%vms+%vms", t.TimeMs, t.IncrementMs)
	}
	return fmt.Sprintf("%vms+%vms/%vmoves", t.TimeMs, t.IncrementMs, t.Moves)
}

// PGN formats the time control in the PGN TimeControl tag format: "moves/seconds+inc" or
// "seconds+inc", in seconds.
func (t TimeControl) PGN() string {
	if t.MoveTimeMs > 0 {
		return fmt.Sprintf("%.3g/move", float64(t.MoveTimeMs)/1000.0)
	}
	base := fmt.Sprintf("%.3g+%.3g", float64(t.TimeMs)/1000.0, float64(t.IncrementMs)/1000.0)
	if t.Moves > 0 {
		return fmt.Sprintf("%v/%v", t.Moves, base)
	}
	return base
}

// EngineConfiguration is the immutable, parsed configuration for a single tournament
// participant. It is keyed by Name, which must be unique within a tournament.
type EngineConfiguration struct {
	Name    string
	Dir     string
	Cmd     string
	Args    []string
	Options []EngineOption
	TC      TimeControl
	Nodes   uint64
	Plies   uint64
}

// Threads returns the configured "Threads" UCI option, defaulting to 1 if absent or
// unparseable. Used by the affinity manager to size CPU reservations.
func (c EngineConfiguration) Threads() int {
	for _, o := range c.Options {
		if o.Name == "Threads" {
			var n int
			if _, err := fmt.Sscanf(o.Value, "%d", &n); err == nil && n > 0 {
				return n
			}
		}
	}
	return 1
}

func (c EngineConfiguration) String() string {
	return fmt.Sprintf("%v(%v %v)", c.Name, c.Cmd, c.Args)
}
