package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// storageBinder is implemented by *Query[T] and *Singleton[T].
type storageBinder interface {
	Init(storage *Storage)
}

type frameQuery interface {
	Execute()
}

type registeredSystem struct {
	system  System
	queries []frameQuery
	stats   SystemStats
}

// Scheduler runs its systems in registration order.
type Scheduler struct {
	storage *Storage
	systems []*registeredSystem
	ticks   uint64
}

// NewScheduler creates a scheduler for storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Register appends system and binds its Query and Singleton fields.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systems = append(s.systems, &registeredSystem{
		system:  system,
		queries: s.bindFields(system),
		stats: SystemStats{
			Name:        systemType.Name(),
			MinDuration: time.Duration(1<<63 - 1),
		},
	})
}

func (s *Scheduler) bindFields(system System) []frameQuery {
	value := reflect.ValueOf(system)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return nil
	}
	value = value.Elem()

	var queries []frameQuery
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		binder, ok := field.Addr().Interface().(storageBinder)
		if !ok {
			continue
		}
		binder.Init(s.storage)
		if q, ok := binder.(frameQuery); ok {
			queries = append(queries, q)
		}
	}
	return queries
}

// Once runs every system once, then flushes the frame's commands.
func (s *Scheduler) Once(dt float64) {
	s.ticks++
	frame := newUpdateFrame(s.ticks, dt, s.storage)

	for _, rs := range s.systems {
		start := time.Now()
		for _, q := range rs.queries {
			q.Execute()
		}
		rs.system.Execute(frame)
		rs.record(time.Since(start))
	}

	frame.Commands.Flush(s.storage)
}

// Run calls Once every interval until ctx is done. dt is the measured time
// since the previous pass.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

// Ticks returns the number of completed passes.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

func (rs *registeredSystem) record(d time.Duration) {
	st := &rs.stats
	st.ExecutionCount++
	st.LastDuration = d
	st.TotalDuration += d
	st.MinDuration = min(st.MinDuration, d)
	st.MaxDuration = max(st.MaxDuration, d)
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}

	for i, rs := range s.systems {
		st := rs.stats
		if st.ExecutionCount > 0 {
			st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
		}
		stats.Systems[i] = st
		stats.TotalExecutions += st.ExecutionCount
	}

	return stats
}
