package tuning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/triclash/sim"
)

func TestLoad(t *testing.T) {
	spec, err := Load(filepath.Join("testdata", "arena.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if spec.ArenaWidth != 400 || spec.ArenaHeight != 400 {
		t.Fatalf("arena = %gx%g, want 400x400", spec.ArenaWidth, spec.ArenaHeight)
	}
	if spec.Radius != 10 {
		t.Fatalf("radius = %g, want 10", spec.Radius)
	}
	if spec.BaseSpeed != 1.5 {
		t.Fatalf("base speed = %g, want 1.5", spec.BaseSpeed)
	}
	if len(spec.Clusters) != 3 {
		t.Fatalf("clusters = %d, want 3", len(spec.Clusters))
	}
	kinds := []sim.Kind{sim.Rock, sim.Paper, sim.Scissors}
	for i, want := range kinds {
		if got := spec.Clusters[i].Kind.Kind; got != want {
			t.Fatalf("cluster %d kind = %s, want %s", i, got, want)
		}
	}
	if got := spec.DwellTicks(); got != 60 {
		t.Fatalf("DwellTicks() = %d, want 60 (2s at 30tps)", got)
	}
	if b := spec.Bounds(); b.Width != 400 || b.Height != 400 {
		t.Fatalf("Bounds() = %+v, want 400x400", b)
	}
}

func TestLoadRejectsBadSpecs(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "unknown_kind",
			body: "arena_width: 400\narena_height: 400\nradius: 10\nticks_per_second: 60\nclusters:\n  - {x: 10, y: 10, spread: 5, count: 3, kind: lizard}\n",
		},
		{
			name: "zero_arena",
			body: "arena_width: 0\narena_height: 400\nradius: 10\nticks_per_second: 60\n",
		},
		{
			name: "radius_too_large",
			body: "arena_width: 100\narena_height: 100\nradius: 50\nticks_per_second: 60\n",
		},
		{
			name: "negative_count",
			body: "arena_width: 400\narena_height: 400\nradius: 10\nticks_per_second: 60\nclusters:\n  - {x: 10, y: 10, spread: 5, count: -1, kind: rock}\n",
		},
		{
			name: "missing_tps",
			body: "arena_width: 400\narena_height: 400\nradius: 10\n",
		},
		{
			name: "not_yaml",
			body: "{{{",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "arena.yaml")
			if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
				t.Fatalf("write temp spec: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("Load should reject this spec")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load should fail for a missing file")
	}
}

func TestDefaultIsValid(t *testing.T) {
	spec := Default()
	if err := spec.Validate(); err != nil {
		t.Fatalf("Default() must validate: %v", err)
	}

	if len(spec.Clusters) != 3 {
		t.Fatalf("default clusters = %d, want 3", len(spec.Clusters))
	}
	seen := make(map[sim.Kind]bool)
	count := spec.Clusters[0].Count
	spread := spec.Clusters[0].Spread
	for _, c := range spec.Clusters {
		seen[c.Kind.Kind] = true
		if c.Count != count || c.Spread != spread {
			t.Fatal("default clusters must share count and spread")
		}
	}
	if len(seen) != sim.KindCount {
		t.Fatalf("default clusters cover %d kinds, want %d", len(seen), sim.KindCount)
	}
}

type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }

func TestSeedSpawnsAllClusters(t *testing.T) {
	spec, err := Load(filepath.Join("testdata", "arena.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	store := sim.NewStore()
	spawner := sim.NewSpawner(store, fixedRand{v: 0.5}, spec.BaseSpeed)
	spec.Seed(spawner)

	if store.Len() != 30 {
		t.Fatalf("Len() = %d, want 30", store.Len())
	}
	for _, c := range spec.Clusters {
		if got := store.CountOf(c.Kind.Kind); got != c.Count {
			t.Fatalf("CountOf(%s) = %d, want %d", c.Kind.Kind, got, c.Count)
		}
	}
	if err := store.Validate(); err != nil {
		t.Fatalf("Validate() failed after seeding: %v", err)
	}
}
