// Package affinity issues and reclaims fixed-size CPU core sets for pinning spawned engine
// processes.
package affinity

import "sync"

// Manager leases contiguous-or-best-fit CPU core sets from a fixed pool. If the configured
// per-engine thread counts disagree across the tournament, affinity is disabled and every
// Consume returns an empty set.
type Manager struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pool    []int // all cores, in allocation order
	free    map[int]bool
	size    int // cores per reservation; 0 disables affinity
}

// New constructs a manager over the given core pool (e.g. 0..N-1), handing out
// reservations of size cores each. size<=0 or an empty pool disables affinity.
func New(cores []int, size int) *Manager {
	m := &Manager{
		pool: append([]int{}, cores...),
		free: map[int]bool{},
		size: size,
	}
	for _, c := range cores {
		m.free[c] = true
	}
	if len(cores) == 0 || size <= 0 {
		m.size = 0
	}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Reservation is a scoped hold on a set of CPU cores. Release must be called exactly once.
type Reservation struct {
	m     *Manager
	Cores []int
}

// Release returns the cores to the pool, waking any waiters.
func (r *Reservation) Release() {
	if len(r.Cores) == 0 {
		return
	}
	r.m.mu.Lock()
	for _, c := range r.Cores {
		r.m.free[c] = true
	}
	r.m.mu.Unlock()
	r.m.cond.Broadcast()
}

// Consume blocks until `size` cores (as configured at New) are available, then returns a
// Reservation for them. If affinity is disabled, it returns immediately with an empty set.
func (m *Manager) Consume() *Reservation {
	if m.size == 0 {
		return &Reservation{m: m}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		if cores, ok := m.tryTake(); ok {
			return &Reservation{m: m, Cores: cores}
		}
		m.cond.Wait()
	}
}

// tryTake assumes mu is held. Returns the first contiguous run of free cores in pool order
// if there is one, else the first m.size free cores in pool order.
func (m *Manager) tryTake() ([]int, bool) {
	if run := m.findContiguousRun(); run != nil {
		for _, c := range run {
			delete(m.free, c)
		}
		return run, true
	}

	if len(m.free) < m.size {
		return nil, false
	}

	var cores []int
	for _, c := range m.pool {
		if m.free[c] {
			cores = append(cores, c)
			if len(cores) == m.size {
				break
			}
		}
	}
	if len(cores) < m.size {
		return nil, false
	}
	for _, c := range cores {
		delete(m.free, c)
	}
	return cores, true
}

func (m *Manager) findContiguousRun() []int {
	run := make([]int, 0, m.size)
	for _, c := range m.pool {
		if m.free[c] {
			run = append(run, c)
			if len(run) == m.size {
				return run
			}
		} else {
			run = run[:0]
		}
	}
	return nil
}

// Enabled returns true iff this manager issues non-empty reservations.
func (m *Manager) Enabled() bool {
	return m.size > 0
}
