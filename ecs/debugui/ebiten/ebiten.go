// Package ebiten hosts the Dear ImGui Ebiten backend as an ECS singleton.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubes/ecs"
)

// ImguiBackend wraps the Ebiten Dear ImGui backend.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend opens the window and stores the backend as a singleton of
// storage. ImGui's ini persistence is disabled.
func NewImguiBackend(storage *ecs.Storage, title string, width, height int) *ecs.Singleton[ImguiBackend] {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ecs.NewSingleton(storage, ImguiBackend{EbitenBackend: backend})
}
