package ecs_test

import "github.com/plus3/cubes/ecs"

// Common test component types
type Position struct {
	X, Y, Z float32
}

type Spin struct {
	Rate float32
}

type Label struct {
	Value string
}

type Hidden struct{}

type Score int32

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Spin](registry)
	ecs.RegisterComponent[Label](registry)
	ecs.RegisterComponent[Hidden](registry)
	ecs.RegisterComponent[Score](registry)
	ecs.RegisterComponent[int](registry)
	ecs.RegisterComponent[string](registry)
	ecs.RegisterComponent[float64](registry)
	return registry
}
