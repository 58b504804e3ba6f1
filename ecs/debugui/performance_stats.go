package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubes/ecs"
)

// StatsMode selects what the stats panel plots.
type StatsMode int

const (
	StatsModeFPS StatsMode = iota
	StatsModeMS
)

func (m StatsMode) String() string {
	if m == StatsModeMS {
		return "MS"
	}
	return "FPS"
}

// PerformanceStatsComponent is a frame-rate panel with a rolling history.
type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32 // milliseconds
	plot          []float32
	frameIndex    int
	samples       int
	mode          StatsMode
}

func NewPerformanceStatsComponent(historyFrames int) PerformanceStatsComponent {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return PerformanceStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		plot:          make([]float32, historyFrames),
	}
}

// Record adds one frame of deltaTime seconds. Non-positive deltas are
// dropped.
func (ps *PerformanceStatsComponent) Record(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	ps.samples = min(ps.samples+1, ps.historyFrames)
}

// AvgFrameTime returns the mean frame time in milliseconds over the
// recorded history, or 0 before the first frame.
func (ps *PerformanceStatsComponent) AvgFrameTime() float32 {
	if ps.samples == 0 {
		return 0
	}
	var sum float32
	for i := 0; i < ps.samples; i++ {
		sum += ps.frameHistory[i]
	}
	return sum / float32(ps.samples)
}

// FPS returns the frame rate implied by AvgFrameTime.
func (ps *PerformanceStatsComponent) FPS() float32 {
	avg := ps.AvgFrameTime()
	if avg == 0 {
		return 0
	}
	return 1000.0 / avg
}

// Mode returns the plotted quantity.
func (ps *PerformanceStatsComponent) Mode() StatsMode {
	return ps.mode
}

// ToggleMode switches between FPS and MS, like clicking stats.js.
func (ps *PerformanceStatsComponent) ToggleMode() {
	ps.mode = (ps.mode + 1) % 2
}

// series returns the history oldest first in the current mode's unit.
func (ps *PerformanceStatsComponent) series() []float32 {
	n := 0
	for i := 0; i < ps.historyFrames; i++ {
		idx := (ps.frameIndex + i) % ps.historyFrames
		ms := ps.frameHistory[idx]
		if ms == 0 {
			continue
		}
		if ps.mode == StatsModeFPS {
			ps.plot[n] = 1000.0 / ms
		} else {
			ps.plot[n] = ms
		}
		n++
	}
	return ps.plot[:n]
}

func (ps *PerformanceStatsComponent) Render(storage *ecs.Storage) {
	imgui.SetNextWindowPosV(imgui.NewVec2(0, 0), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 170), imgui.CondOnce)
	if !imgui.BeginV("Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if ps.mode == StatsModeFPS {
		imgui.Text(fmt.Sprintf("%.0f FPS", ps.FPS()))
	} else {
		imgui.Text(fmt.Sprintf("%.2f MS", ps.AvgFrameTime()))
	}
	imgui.SameLine()
	if imgui.Button(fmt.Sprintf("Show %s", (ps.mode+1)%2)) {
		ps.ToggleMode()
	}

	if series := ps.series(); len(series) > 0 {
		imgui.PlotLinesFloatPtr("##frames", &series[0], int32(len(series)))
	}

	stats := storage.CollectStats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Entities: %d  Archetypes: %d", stats.TotalEntityCount, stats.ArchetypeCount))
	if imgui.TreeNodeStr("Archetypes") {
		for _, arch := range stats.ArchetypeBreakdown {
			imgui.BulletText(fmt.Sprintf("%d: %d x %s", arch.ID, arch.EntityCount, strings.Join(arch.ComponentTypes, ", ")))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall time between frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() FrameTimer {
	return FrameTimer{lastFrameTime: time.Now()}
}

// GetDeltaTime returns the seconds since the previous call, or 0 on the
// first call of a zero FrameTimer.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	if ft.lastFrameTime.IsZero() {
		ft.lastFrameTime = now
		return 0
	}
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

// PerformanceStatsSystem feeds every stats panel with the frame time and
// queues its render.
type PerformanceStatsSystem struct {
	Panels ecs.Query[struct{ *PerformanceStatsComponent }]
	Timer  ecs.Singleton[FrameTimer]
}

func (s *PerformanceStatsSystem) Execute(frame *ecs.UpdateFrame) {
	var dt float32
	if timer := s.Timer.Get(); timer != nil {
		dt = timer.GetDeltaTime()
	}

	for item := range s.Panels.Values() {
		panel := item.PerformanceStatsComponent
		panel.Record(dt)
		frame.Commands.Defer(func() { panel.Render(frame.Storage) })
	}
}
