package sim

// Step is one phase of a single entity's per-tick update. All steps run
// in order for one entity before the next entity is visited.
type Step interface {
	Apply(w *World, e *Entity)
}

type motionStep struct{}

func (motionStep) Apply(w *World, e *Entity) {
	Integrate(e, w.bounds, w.radius)
}

type conversionStep struct{}

func (conversionStep) Apply(w *World, e *Entity) {
	Resolve(e, w.store, w.radius)
}

// World drives the simulation. It owns the store and spawner and
// advances every live entity once per Tick. Single-threaded: ticks and
// spawns must come from the same goroutine, sequenced, with spawns
// never interleaved inside a running tick.
type World struct {
	store   *Store
	spawner *Spawner
	bounds  Bounds
	radius  float64
	steps   []Step

	tick  uint64
	debug bool
}

// NewWorld builds a world with the default motion-then-conversion
// update order.
func NewWorld(bounds Bounds, radius, baseSpeed float64, rng Rand) *World {
	store := NewStore()
	w := &World{
		store:   store,
		spawner: NewSpawner(store, rng, baseSpeed),
		bounds:  bounds,
		radius:  radius,
	}
	w.steps = []Step{motionStep{}, conversionStep{}}
	return w
}

// SetDebug toggles the per-tick partition check. A failed check panics
// rather than being tolerated, since a desynchronized index silently
// corrupts every later collision scan.
func (w *World) SetDebug(on bool) {
	w.debug = on
}

func (w *World) Store() *Store {
	return w.store
}

func (w *World) Spawner() *Spawner {
	return w.spawner
}

func (w *World) Bounds() Bounds {
	return w.bounds
}

func (w *World) Radius() float64 {
	return w.radius
}

// TickCount returns how many ticks have run.
func (w *World) TickCount() uint64 {
	return w.tick
}

// Tick advances every live entity once, in creation order, applying
// motion then conversion per entity. An entity converted earlier in the
// pass is still visited later in the same pass and updates under its
// new kind. Tick never allocates entities and tolerates an empty store.
func (w *World) Tick() {
	w.tick++
	for _, e := range w.store.Entities() {
		for _, step := range w.steps {
			step.Apply(w, e)
		}
	}
	if w.debug {
		if err := w.store.Validate(); err != nil {
			panic(err)
		}
	}
}
