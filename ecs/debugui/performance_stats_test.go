package debugui

import (
	"testing"

	"github.com/plus3/cubes/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceStatsRecord(t *testing.T) {
	ps := NewPerformanceStatsComponent(4)
	assert.Zero(t, ps.AvgFrameTime())
	assert.Zero(t, ps.FPS())

	ps.Record(0)
	ps.Record(-1)
	assert.Zero(t, ps.AvgFrameTime())

	ps.Record(0.010)
	ps.Record(0.030)
	assert.InDelta(t, 20.0, ps.AvgFrameTime(), 1e-3)
	assert.InDelta(t, 50.0, ps.FPS(), 1e-2)
}

func TestPerformanceStatsWrapsHistory(t *testing.T) {
	ps := NewPerformanceStatsComponent(2)
	ps.Record(0.100)
	ps.Record(0.010)
	ps.Record(0.010)
	assert.InDelta(t, 10.0, ps.AvgFrameTime(), 1e-3)

	series := ps.series()
	require.Len(t, series, 2)
	assert.InDelta(t, 100.0, series[0], 1e-2)
}

func TestPerformanceStatsMode(t *testing.T) {
	ps := NewPerformanceStatsComponent(3)
	ps.Record(0.020)
	ps.Record(0.040)

	assert.Equal(t, StatsModeFPS, ps.Mode())
	assert.InDeltaSlice(t, []float32{50, 25}, ps.series(), 1e-2)

	ps.ToggleMode()
	assert.Equal(t, StatsModeMS, ps.Mode())
	assert.Equal(t, "MS", ps.Mode().String())
	assert.InDeltaSlice(t, []float32{20, 40}, ps.series(), 1e-3)

	ps.ToggleMode()
	assert.Equal(t, StatsModeFPS, ps.Mode())
}

func TestFrameTimerFirstCall(t *testing.T) {
	var ft FrameTimer
	assert.Zero(t, ft.GetDeltaTime())
	assert.GreaterOrEqual(t, ft.GetDeltaTime(), float32(0))
}

func TestSpawnStatsPanel(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	id := SpawnStatsPanel(storage, 30)
	assert.True(t, storage.Exists(id))
	assert.True(t, ecs.NewSingleton[FrameTimer](storage).Exists())

	panel := ecs.ReadComponent[PerformanceStatsComponent](storage, id)
	require.NotNil(t, panel)
	assert.Len(t, panel.frameHistory, 30)
}
