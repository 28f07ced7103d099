package sim

// Phase is the simulation-level termination state read by the driver
// loop. The world itself keeps ticking regardless of phase; acting on
// PhaseConcluded is driver policy.
type Phase uint8

const (
	PhaseActive Phase = iota
	PhaseSettling
	PhaseConcluded
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseSettling:
		return "settling"
	case PhaseConcluded:
		return "concluded"
	}
	return "unknown"
}

// Monitor watches a store's per-kind counts and reports the phase. The
// simulation is active while at least two kinds are populated; once at
// most one remains it settles, and after dwellTicks consecutive
// settling observations the phase latches at concluded. A later spawn
// that repopulates a second kind puts the monitor back to active.
type Monitor struct {
	store      *Store
	dwellTicks int
	settled    int
	done       bool
}

func NewMonitor(store *Store, dwellTicks int) *Monitor {
	return &Monitor{store: store, dwellTicks: dwellTicks}
}

// Observe reads the current phase. Call once per tick: the dwell is
// counted in observations.
func (m *Monitor) Observe() Phase {
	populated := 0
	for k := Kind(0); k < KindCount; k++ {
		if m.store.CountOf(k) > 0 {
			populated++
		}
	}
	if populated > 1 {
		m.settled = 0
		m.done = false
		return PhaseActive
	}
	if m.done {
		return PhaseConcluded
	}
	m.settled++
	if m.settled >= m.dwellTicks {
		m.done = true
		return PhaseConcluded
	}
	return PhaseSettling
}

// Leader returns the most populated kind. It reports false only when
// the store is empty. Ties go to the kind earliest in the cycle.
func (m *Monitor) Leader() (Kind, bool) {
	if m.store.Len() == 0 {
		return 0, false
	}
	best := Kind(0)
	for k := Kind(1); k < KindCount; k++ {
		if m.store.CountOf(k) > m.store.CountOf(best) {
			best = k
		}
	}
	return best, true
}
