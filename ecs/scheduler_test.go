package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/cubes/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spinSystem struct {
	Spinning ecs.Query[struct {
		*Position
		*Spin
	}]
	Total ecs.Singleton[Score]
}

func (s *spinSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Spinning.Values() {
		item.Position.X += item.Spin.Rate
		*s.Total.Get()++
	}
}

type sleepySystem struct {
	executeCount int
	sleepDur     time.Duration
}

func (s *sleepySystem) Execute(frame *ecs.UpdateFrame) {
	s.executeCount++
	time.Sleep(s.sleepDur)
}

func TestSchedulerBindsFields(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[Score](storage)
	id := storage.Spawn(Position{}, Spin{Rate: 0.5})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&spinSystem{})

	scheduler.Once(1.0 / 60.0)
	scheduler.Once(1.0 / 60.0)

	assert.Equal(t, float32(1), ecs.ReadComponent[Position](storage, id).X)
	var total *Score
	require.True(t, storage.ReadSingleton(&total))
	assert.Equal(t, Score(2), *total)
	assert.Equal(t, uint64(2), scheduler.Ticks())
}

func TestSchedulerQueriesRefreshEachPass(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[Score](storage)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&spinSystem{})

	scheduler.Once(0)
	storage.Spawn(Position{}, Spin{Rate: 1})
	scheduler.Once(0)

	var total *Score
	storage.ReadSingleton(&total)
	assert.Equal(t, Score(1), *total)
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	scheduler := ecs.NewScheduler(storage)

	stats := scheduler.GetStats()
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)

	sys1 := &sleepySystem{sleepDur: time.Millisecond}
	sys2 := &sleepySystem{sleepDur: 2 * time.Millisecond}
	scheduler.Register(sys1)
	scheduler.Register(sys2)

	for i := 0; i < 3; i++ {
		scheduler.Once(0.016)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)

	for _, st := range stats.Systems {
		assert.Equal(t, "sleepySystem", st.Name)
		assert.Equal(t, int64(3), st.ExecutionCount)
		assert.NotZero(t, st.LastDuration)
		assert.LessOrEqual(t, st.MinDuration, st.AvgDuration)
		assert.LessOrEqual(t, st.AvgDuration, st.MaxDuration)
	}

	assert.Equal(t, 3, sys1.executeCount)
	assert.Equal(t, 3, sys2.executeCount)
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	scheduler := ecs.NewScheduler(storage)
	sys := &sleepySystem{}
	scheduler.Register(sys)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context expired")
	}
	assert.Greater(t, sys.executeCount, 0)
}

func TestCommandsFlushOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	doomed := storage.Spawn(Position{X: 1})

	scheduler := ecs.NewScheduler(storage)
	var seen []string
	scheduler.Register(systemFunc(func(frame *ecs.UpdateFrame) {
		frame.Commands.Defer(func() {
			seen = append(seen, "defer")
			assert.False(t, storage.Exists(doomed))
		})
		frame.Commands.Spawn(Position{X: 2}, Label{Value: "spawned"})
		frame.Commands.Delete(doomed)
		assert.Equal(t, 3, frame.Commands.Len())
		assert.True(t, storage.Exists(doomed))
	}))

	scheduler.Once(0)

	assert.Equal(t, []string{"defer"}, seen)
	labels := ecs.NewView[struct{ *Label }](storage)
	count := 0
	for range labels.Values() {
		count++
	}
	assert.Equal(t, 1, count)
}

type systemFunc func(frame *ecs.UpdateFrame)

func (f systemFunc) Execute(frame *ecs.UpdateFrame) { f(frame) }
