package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/cubes/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration: time.Second,
		Cubes:    10,
		Ticks:    60,
		Objects:  11,
		Storage:  &ecs.StorageStats{ArchetypeCount: 1},
		Scheduler: &ecs.SchedulerStats{
			SystemCount: 1,
			Systems:     []ecs.SystemStats{{Name: "RotationSystem", ExecutionCount: 60}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	assert.Contains(t, buf.String(), "**Ticks:** 60")
	assert.Contains(t, buf.String(), "**RotationSystem:** 60 runs")
	assert.NotContains(t, buf.String(), "GC Pause")
}
