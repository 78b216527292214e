// Package enginecache implements a keyed pool of running engine processes, reused across
// games via scoped leases. With a concurrency of N, up to N processes may exist per
// engine; each is exclusively leased to one game at a time.
package enginecache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/chessbench/tourneycore/pkg/uci"
	"github.com/seekerror/logw"
)

// entry holds the idle processes for one engine name.
type entry struct {
	mu   sync.Mutex
	idle []*uci.Process
}

// Cache is a concurrency-safe keyed pool of engine processes. A lease is an exclusive
// borrow of one process; concurrent leases for the same name are served by distinct
// processes, spawned on demand.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *Cache {
	return &Cache{entries: map[string]*entry{}}
}

// Lease is a scoped, exclusive borrow of an engine process. Exactly one of Release or
// Crash must be called, typically via defer.
type Lease struct {
	e    *entry
	Proc *uci.Process
}

// Release returns the process to the idle pool for reuse.
func (l *Lease) Release() {
	l.e.mu.Lock()
	defer l.e.mu.Unlock()
	l.e.idle = append(l.e.idle, l.Proc)
}

// Crash discards the process; a subsequent lease starts a fresh one.
func (l *Lease) Crash() {
	l.Proc.QuitAndReap(context.Background(), uci.DefaultQuitGrace)
}

// GetEntry acquires a lease for the named engine, reusing an idle process after a fresh
// new_game, or spawning one if none is idle.
func (c *Cache) GetEntry(ctx context.Context, cfg uci.EngineConfiguration) (*Lease, error) {
	c.mu.Lock()
	e, ok := c.entries[cfg.Name]
	if !ok {
		e = &entry{}
		c.entries[cfg.Name] = e
	}
	c.mu.Unlock()

	for {
		e.mu.Lock()
		if len(e.idle) == 0 {
			e.mu.Unlock()
			break
		}
		proc := e.idle[len(e.idle)-1]
		e.idle = e.idle[:len(e.idle)-1]
		e.mu.Unlock()

		if !proc.IsAlive() {
			continue
		}
		if err := proc.NewGame(ctx); err != nil {
			logw.Warningf(ctx, "Engine %v failed new_game; discarding: %v", cfg.Name, err)
			proc.QuitAndReap(ctx, uci.DefaultQuitGrace)
			continue
		}
		return &Lease{e: e, Proc: proc}, nil
	}

	proc, err := start(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("enginecache: start %v: %w", cfg.Name, err)
	}
	logw.Infof(ctx, "Engine %v ready", cfg.Name)
	return &Lease{e: e, Proc: proc}, nil
}

// start spawns a process, retrying once if the handshake times out.
func start(ctx context.Context, cfg uci.EngineConfiguration) (*uci.Process, error) {
	proc := uci.NewProcess(cfg)
	err := proc.Start(ctx)
	if err == nil {
		return proc, nil
	}
	if !errors.Is(err, uci.ErrProtocolTimeout) {
		return nil, err
	}

	logw.Warningf(ctx, "Engine %v handshake timed out; retrying once: %v", cfg.Name, err)
	proc.QuitAndReap(ctx, uci.DefaultQuitGrace)

	proc = uci.NewProcess(cfg)
	if err := proc.Start(ctx); err != nil {
		return nil, err
	}
	return proc, nil
}

// Size returns the number of distinct engine names tracked by the cache.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Shutdown quits and reaps every idle process. Callers must Release or Crash all
// outstanding leases first.
func (c *Cache) Shutdown(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for name, e := range c.entries {
		e.mu.Lock()
		for _, proc := range e.idle {
			proc.QuitAndReap(ctx, uci.DefaultQuitGrace)
		}
		n := len(e.idle)
		e.idle = nil
		e.mu.Unlock()

		if n > 0 {
			logw.Infof(ctx, "Shut down %v processes of engine %v", n, name)
		}
	}
}
