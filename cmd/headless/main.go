package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/milk9111/triclash/sim"
	"github.com/milk9111/triclash/tuning"
)

func main() {
	configPath := flag.String("config", "", "tuning file (YAML); built-in defaults when empty")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	maxTicks := flag.Uint64("ticks", 0, "stop after this many ticks (0 = run until concluded)")
	watch := flag.Bool("watch", false, "reload tuning on file change")
	debug := flag.Bool("debug", false, "validate the store partition every tick")
	flag.Parse()

	spec := tuning.Default()
	if *configPath != "" {
		loaded, err := tuning.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		spec = loaded
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	world := sim.NewWorld(spec.Bounds(), spec.Radius, spec.BaseSpeed, rng)
	world.SetDebug(*debug)
	spec.Seed(world.Spawner())
	monitor := sim.NewMonitor(world.Store(), spec.DwellTicks())

	var reload <-chan string
	if *watch && *configPath != "" {
		watcher, err := tuning.NewWatcher(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
		reload = watcher.Events
		go func() {
			for err := range watcher.Errors {
				log.Printf("watch: %v", err)
			}
		}()
	}

	log.Printf("arena %gx%g, %d entities, seed %d", spec.ArenaWidth, spec.ArenaHeight, world.Store().Len(), *seed)

	ticker := time.NewTicker(time.Second / time.Duration(spec.TicksPerSecond))
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			world.Tick()
			phase := monitor.Observe()
			if world.TickCount()%uint64(spec.TicksPerSecond) == 0 {
				logCounts(world.Store(), phase)
			}
			if phase == sim.PhaseConcluded {
				if leader, ok := monitor.Leader(); ok {
					log.Printf("concluded after %d ticks: %s wins", world.TickCount(), leader)
				} else {
					log.Printf("concluded after %d ticks: arena empty", world.TickCount())
				}
				return
			}
			if *maxTicks > 0 && world.TickCount() >= *maxTicks {
				log.Printf("tick budget reached at %d", world.TickCount())
				return
			}
		case path, ok := <-reload:
			if !ok {
				reload = nil
				continue
			}
			loaded, err := tuning.Load(path)
			if err != nil {
				log.Printf("reload: %v", err)
				continue
			}
			// Arena geometry is fixed for the run; only spawn speed
			// applies live.
			world.Spawner().SetBaseSpeed(loaded.BaseSpeed)
			log.Printf("reloaded %s: base speed %g", path, loaded.BaseSpeed)
		}
	}
}

func logCounts(store *sim.Store, phase sim.Phase) {
	log.Printf("counts: rock=%d paper=%d scissors=%d phase=%s",
		store.CountOf(sim.Rock), store.CountOf(sim.Paper), store.CountOf(sim.Scissors), phase)
}
