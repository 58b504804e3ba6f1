package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/cubes/config"
	"github.com/plus3/cubes/ecs"
	"github.com/plus3/cubes/render"
	"github.com/plus3/cubes/scene"
)

// churnSystem adds and removes a cube every `every` ticks.
type churnSystem struct {
	scene *scene.Scene
	every uint64
}

func (c *churnSystem) Execute(frame *ecs.UpdateFrame) {
	if c.every == 0 || frame.Tick%c.every != 0 {
		return
	}
	frame.Commands.Defer(func() {
		c.scene.AddCube()
		c.scene.RemoveCube()
	})
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	cubeCount := flag.Int("cubes", 500, "The number of cubes to add before running.")
	interval := flag.Duration("interval", time.Second/60, "Time between scheduler passes.")
	churn := flag.Uint64("churn", 10, "Add and remove a cube every N ticks; 0 disables.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.SetPrefix("[cubes-stress] ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	opts := scene.DefaultOptions()
	opts.PlaneWidth = cfg.PlaneWidth
	opts.PlaneHeight = cfg.PlaneHeight
	opts.MaxCubeHeight = cfg.MaxCubeHeight
	opts.RotationSpeed = cfg.RotationSpeed
	opts.Seed = cfg.Seed
	s := scene.New(storage, opts)

	log.Printf("Adding %d cubes...", *cubeCount)
	for i := 0; i < *cubeCount; i++ {
		s.AddCube()
	}

	renderer := &render.RenderSystem{Width: cfg.WindowWidth, Height: cfg.WindowHeight}
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&scene.RotationSystem{})
	scheduler.Register(&churnSystem{scene: s, every: *churn})
	scheduler.Register(renderer)

	report := &Report{
		Duration:       *duration,
		Interval:       *interval,
		Cubes:          *cubeCount,
		Churn:          *churn,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	scheduler.Run(ctx, *interval)

	report.TotalTime = time.Since(start)
	report.Ticks = scheduler.Ticks()
	report.Objects = s.Len()
	report.Polygons = renderer.Polygons()
	report.Scheduler = scheduler.GetStats()
	report.Storage = storage.CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
