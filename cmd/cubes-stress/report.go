package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/cubes/ecs"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Interval time.Duration
	Cubes    int
	Churn    uint64

	// Results
	Ticks          uint64
	TotalTime      time.Duration
	Objects        int
	Polygons       int
	Scheduler      *ecs.SchedulerStats
	Storage        *ecs.StorageStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Cubes Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Tick Interval:** {{.Interval}}
- **Initial Cubes:** {{.Cubes}}
- **Churn Every:** {{.Churn}} ticks

## Results
- **Ticks:** {{.Ticks}}
- **Total Time:** {{.TotalTime}}
- **Objects At End:** {{.Objects}}
- **Polygons Last Frame:** {{.Polygons}}

## Systems
{{range .Scheduler.Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, min {{.MinDuration}}, max {{.MaxDuration}}
{{end}}
## Storage
- Archetypes: {{.Storage.ArchetypeCount}}
- Entities:   {{.Storage.TotalEntityCount}}
- Singletons: {{.Storage.SingletonCount}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
