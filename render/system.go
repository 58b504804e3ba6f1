package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cubes/ecs"
	"github.com/plus3/cubes/scene"
)

// Screen is the singleton render target. The game sets Image before
// running the draw scheduler.
type Screen struct {
	Image *ebiten.Image
}

// RenderSystem builds the frame's polygons and paints them on Screen. When
// no Screen image is set it only builds, at Width x Height.
type RenderSystem struct {
	Meshes     ecs.Query[scene.Mesh]
	Camera     ecs.Singleton[scene.Camera]
	Ambient    ecs.Singleton[scene.AmbientLight]
	Spot       ecs.Singleton[scene.SpotLight]
	Fog        ecs.Singleton[scene.Fog]
	Background ecs.Singleton[scene.Background]
	Screen     ecs.Singleton[Screen]

	Width  int
	Height int

	renderer *Renderer
	canvas   Canvas
	built    int
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	env, ok := s.environment()
	if !ok {
		return
	}

	width, height := s.Width, s.Height
	screen := s.Screen.Get()
	if screen != nil && screen.Image != nil {
		b := screen.Image.Bounds()
		width, height = b.Dx(), b.Dy()
	}
	if width <= 0 || height <= 0 {
		return
	}

	if s.renderer == nil {
		s.renderer = NewRenderer(width, height)
	} else {
		s.renderer.Resize(width, height)
	}
	polygons := s.renderer.Build(&env, s.Meshes.Values())
	s.built = len(polygons)

	if screen != nil && screen.Image != nil {
		s.canvas.Draw(screen.Image, env.Background.Color, polygons)
	}
}

// Polygons returns how many polygons the last frame produced.
func (s *RenderSystem) Polygons() int {
	return s.built
}

func (s *RenderSystem) environment() (Environment, bool) {
	camera := s.Camera.Get()
	if camera == nil {
		return Environment{}, false
	}
	env := Environment{Camera: *camera}
	if ambient := s.Ambient.Get(); ambient != nil {
		env.Ambient = *ambient
	}
	if spot := s.Spot.Get(); spot != nil {
		env.Spot = *spot
	}
	if fog := s.Fog.Get(); fog != nil {
		env.Fog = *fog
	}
	if bg := s.Background.Get(); bg != nil {
		env.Background = *bg
	}
	return env, true
}
