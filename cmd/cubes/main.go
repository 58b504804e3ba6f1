package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cubes/config"
	"github.com/plus3/cubes/controls"
	"github.com/plus3/cubes/ecs"
	"github.com/plus3/cubes/ecs/debugui"
	debugui_ebiten "github.com/plus3/cubes/ecs/debugui/ebiten"
	"github.com/plus3/cubes/render"
	"github.com/plus3/cubes/scene"
)

func main() {
	log.SetPrefix("[cubes] ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	backend := debugui_ebiten.NewImguiBackend(storage, cfg.WindowTitle, cfg.WindowWidth, cfg.WindowHeight)
	ecs.NewSingleton(storage, debugui.ImguiInputState{})
	screen := ecs.NewSingleton(storage, render.Screen{})

	s := scene.New(storage, sceneOptions(cfg))
	log.Printf("Scene ready with %d objects", s.Len())

	bridge := controls.NewBridge(s, log.New(os.Stdout, "", 0))
	debugui.SpawnStatsPanel(storage, cfg.StatsHistory)
	controls.NewPanel(bridge).Spawn(storage)

	update := ecs.NewScheduler(storage)
	update.Register(&debugui.ImguiSystem{})
	update.Register(&debugui.PerformanceStatsSystem{})
	update.Register(&scene.RotationSystem{})

	draw := ecs.NewScheduler(storage)
	draw.Register(&render.RenderSystem{})

	ebiten.SetTPS(tickRate(cfg))
	game := &Game{
		update:  update,
		draw:    draw,
		backend: backend,
		screen:  screen,
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}

// tickRate maps the configured TPS to ebiten's, where 0 follows the display
// so that the rotation advances once per shown frame.
func tickRate(cfg config.Config) int {
	if cfg.SyncWithDisplay() {
		return ebiten.SyncWithFPS
	}
	return cfg.TPS
}

func sceneOptions(cfg config.Config) scene.Options {
	opts := scene.DefaultOptions()
	opts.PlaneWidth = cfg.PlaneWidth
	opts.PlaneHeight = cfg.PlaneHeight
	opts.MaxCubeHeight = cfg.MaxCubeHeight
	opts.RotationSpeed = cfg.RotationSpeed
	opts.Seed = cfg.Seed
	return opts
}
