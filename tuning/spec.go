package tuning

import (
	"fmt"
	"os"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/triclash/sim"
)

// Spec holds every tunable simulation parameter.
type Spec struct {
	ArenaWidth     float64       `yaml:"arena_width"`
	ArenaHeight    float64       `yaml:"arena_height"`
	Radius         float64       `yaml:"radius"`
	BaseSpeed      float64       `yaml:"base_speed"`
	TicksPerSecond int           `yaml:"ticks_per_second"`
	DwellSeconds   float64       `yaml:"dwell_seconds"`
	Clusters       []ClusterSpec `yaml:"clusters"`
}

// ClusterSpec seeds one group of entities at startup.
type ClusterSpec struct {
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	Spread float64  `yaml:"spread"`
	Count  int      `yaml:"count"`
	Kind   KindName `yaml:"kind"`
}

// KindName is a sim.Kind that unmarshals from its YAML name
// ("rock", "paper", "scissors").
type KindName struct {
	sim.Kind
}

func (k *KindName) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("kind must be a string")
	}
	parsed, err := sim.ParseKind(value.Value)
	if err != nil {
		return err
	}
	k.Kind = parsed
	return nil
}

// Default mirrors the classic arena: three equal clusters, one per
// kind, at three distinct locations with identical spread and count.
func Default() *Spec {
	return &Spec{
		ArenaWidth:     800,
		ArenaHeight:    600,
		Radius:         10,
		BaseSpeed:      2,
		TicksPerSecond: 60,
		DwellSeconds:   1,
		Clusters: []ClusterSpec{
			{X: 200, Y: 150, Spread: 60, Count: 20, Kind: KindName{sim.Rock}},
			{X: 600, Y: 150, Spread: 60, Count: 20, Kind: KindName{sim.Paper}},
			{X: 400, Y: 450, Spread: 60, Count: 20, Kind: KindName{sim.Scissors}},
		},
	}
}

// Load reads and validates a tuning file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tuning: load %s: %w", path, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("tuning: validate %s: %w", path, err)
	}
	return &spec, nil
}

// Validate rejects geometry the simulation cannot run with.
func (s *Spec) Validate() error {
	if s.ArenaWidth <= 0 || s.ArenaHeight <= 0 {
		return fmt.Errorf("arena must have positive dimensions, got %gx%g", s.ArenaWidth, s.ArenaHeight)
	}
	if s.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g", s.Radius)
	}
	if 2*s.Radius >= s.ArenaWidth || 2*s.Radius >= s.ArenaHeight {
		return fmt.Errorf("radius %g does not fit a %gx%g arena", s.Radius, s.ArenaWidth, s.ArenaHeight)
	}
	if s.BaseSpeed < 0 {
		return fmt.Errorf("base speed must not be negative, got %g", s.BaseSpeed)
	}
	if s.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks per second must be positive, got %d", s.TicksPerSecond)
	}
	if s.DwellSeconds < 0 {
		return fmt.Errorf("dwell must not be negative, got %g", s.DwellSeconds)
	}
	for i, c := range s.Clusters {
		if c.Count < 0 {
			return fmt.Errorf("cluster %d: count must not be negative, got %d", i, c.Count)
		}
		if c.Spread < 0 {
			return fmt.Errorf("cluster %d: spread must not be negative, got %g", i, c.Spread)
		}
	}
	return nil
}

// Bounds returns the arena rectangle.
func (s *Spec) Bounds() sim.Bounds {
	return sim.Bounds{Width: s.ArenaWidth, Height: s.ArenaHeight}
}

// DwellTicks converts the dwell duration into whole ticks.
func (s *Spec) DwellTicks() int {
	return int(s.DwellSeconds * float64(s.TicksPerSecond))
}

// Seed spawns every configured cluster.
func (s *Spec) Seed(spawner *sim.Spawner) {
	for _, c := range s.Clusters {
		spawner.SpawnCluster(cp.Vector{X: c.X, Y: c.Y}, c.Spread, c.Count, c.Kind.Kind)
	}
}
