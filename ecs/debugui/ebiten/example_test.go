package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cubes/ecs"
	"github.com/plus3/cubes/ecs/debugui"
	debugui_ebiten "github.com/plus3/cubes/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates the ECS with ImGui rendering.
type Game struct {
	scheduler    *ecs.Scheduler
	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.Get().BeginFrame()

	// Execute all ECS systems (including ImguiSystem)
	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after systems complete
	g.imguiBackend.Get().EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Set up ECS component registry
	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)

	// Create ECS storage
	storage := ecs.NewStorage(registry)

	// Create the window and register the ImGui backend as a singleton
	backend := debugui_ebiten.NewImguiBackend(storage, "Stats", 640, 480)

	// Spawn a stats panel and an entity with an ImGui render function
	debugui.SpawnStatsPanel(storage, 120)
	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Hello")
			imgui.Text("Hello from an ImguiItem")
			imgui.End()
		},
	})

	// Create scheduler and register the ImGui and stats systems
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})
	scheduler.Register(&debugui.PerformanceStatsSystem{})

	// Run the game
	if err := ebiten.RunGame(&Game{scheduler: scheduler, imguiBackend: backend}); err != nil {
		panic(err)
	}
}
