package sim

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Rand is the source of randomness for the spawner. *math/rand.Rand
// satisfies it; tests inject scripted sequences.
type Rand interface {
	Float64() float64
}

// Spawner creates entities and registers them with a store.
type Spawner struct {
	store     *Store
	rng       Rand
	baseSpeed float64
}

func NewSpawner(store *Store, rng Rand, baseSpeed float64) *Spawner {
	return &Spawner{store: store, rng: rng, baseSpeed: baseSpeed}
}

// SetBaseSpeed changes the speed applied to subsequent spawns. Already
// live entities keep their velocity.
func (s *Spawner) SetBaseSpeed(v float64) {
	s.baseSpeed = v
}

// SpawnAt creates one entity at pos heading in the given direction.
// Speed is the base speed scaled by an independent uniform factor in
// [0.5, 1).
func (s *Spawner) SpawnAt(pos cp.Vector, heading float64, kind Kind) *Entity {
	speed := s.baseSpeed * (0.5 + 0.5*s.rng.Float64())
	e := &Entity{
		Position: pos,
		Velocity: cp.ForAngle(heading).Mult(speed),
		Kind:     kind,
	}
	s.store.Add(e)
	return e
}

// SpawnCluster performs count independent spawns scattered around
// center. Each spawn draws its own heading uniform in [0, 2pi) and
// radial offset uniform in [0, spread), and the heading doubles as the
// initial velocity direction. count <= 0 is a no-op.
func (s *Spawner) SpawnCluster(center cp.Vector, spread float64, count int, kind Kind) {
	for i := 0; i < count; i++ {
		heading := s.rng.Float64() * 2 * math.Pi
		offset := s.rng.Float64() * spread
		s.SpawnAt(center.Add(cp.ForAngle(heading).Mult(offset)), heading, kind)
	}
}

// SpawnRandom creates one entity at pos with a uniform random heading
// and a kind drawn uniformly across the cycle. This is the entry point
// for pointer input.
func (s *Spawner) SpawnRandom(pos cp.Vector) *Entity {
	heading := s.rng.Float64() * 2 * math.Pi
	kind := Kind(int(s.rng.Float64() * KindCount))
	return s.SpawnAt(pos, heading, kind)
}
