package controls

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubes/config"
	"github.com/plus3/cubes/ecs"
	"github.com/plus3/cubes/ecs/debugui"
)

// Panel is the tweak window: a rotation speed slider, add/remove/output
// buttons and the live object count.
type Panel struct {
	bridge *Bridge
}

// NewPanel returns a panel driving b.
func NewPanel(b *Bridge) *Panel {
	return &Panel{bridge: b}
}

// Spawn attaches the panel to storage as an ImguiItem.
func (p *Panel) Spawn(storage *ecs.Storage) ecs.EntityId {
	return storage.Spawn(debugui.ImguiItem{Render: p.Render})
}

// Render draws the panel. It must run between the backend's BeginFrame and
// EndFrame.
func (p *Panel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(0, 180), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 150), imgui.CondOnce)
	if !imgui.BeginV("Controls", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p.editSpeed(func(v *float32) bool {
		return imgui.SliderFloat("rotationSpeed", v, 0, config.MaxRotationSpeed)
	})

	if imgui.Button("addCube") {
		p.bridge.AddCube()
	}
	imgui.SameLine()
	if imgui.Button("removeCube") {
		p.bridge.RemoveCube()
	}
	imgui.SameLine()
	if imgui.Button("outputObjects") {
		if err := p.bridge.OutputObjects(); err != nil {
			p.bridge.logger.Printf("controls: %v", err)
		}
	}

	imgui.Text(fmt.Sprintf("numberOfObjects: %d", p.bridge.NumberOfObjects()))

	imgui.End()
}

// editSpeed hands the current rotation speed to widget and applies the value
// when widget reports a change.
func (p *Panel) editSpeed(widget func(v *float32) bool) {
	speed := p.bridge.RotationSpeed()
	if !widget(&speed) {
		return
	}
	if err := p.bridge.SetRotationSpeed(speed); err != nil {
		p.bridge.logger.Printf("controls: %v", err)
	}
}
