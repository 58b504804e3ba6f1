package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cubes/ecs"
	debugui_ebiten "github.com/plus3/cubes/ecs/debugui/ebiten"
	"github.com/plus3/cubes/render"
)

const fallbackTPS = 60

// Game runs the update scheduler once per tick and the draw scheduler once
// per frame. The ImGui frame spans the update pass; its draw list is painted
// over the scene.
type Game struct {
	update  *ecs.Scheduler
	draw    *ecs.Scheduler
	backend *ecs.Singleton[debugui_ebiten.ImguiBackend]
	screen  *ecs.Singleton[render.Screen]
}

func (g *Game) Update() error {
	dt := tickSeconds(ebiten.ActualTPS())

	// Begin ImGui frame before executing systems
	g.backend.Get().BeginFrame()

	// Panels, stats and rotation; panel actions run when the frame flushes
	g.update.Once(dt)

	// End ImGui frame after systems complete
	g.backend.Get().EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Paint the scene through the render system
	g.screen.Get().Image = screen
	g.draw.Once(tickSeconds(ebiten.ActualFPS()))
	g.screen.Get().Image = nil

	// Draw ImGui overlay on top
	g.backend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// tickSeconds is the duration of one tick at rate, falling back to 60 Hz
// until ebiten has measured a rate.
func tickSeconds(rate float64) float64 {
	if rate <= 0 {
		rate = fallbackTPS
	}
	return 1 / rate
}
