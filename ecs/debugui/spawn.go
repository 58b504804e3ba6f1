package debugui

import "github.com/plus3/cubes/ecs"

// SpawnStatsPanel adds a stats panel keeping historyFrames frames, creating
// the FrameTimer singleton that feeds it if needed.
func SpawnStatsPanel(storage *ecs.Storage, historyFrames int) ecs.EntityId {
	ecs.NewSingleton(storage, NewFrameTimer())
	return storage.Spawn(NewPerformanceStatsComponent(historyFrames))
}
