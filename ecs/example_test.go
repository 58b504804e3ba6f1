package ecs_test

import (
	"fmt"

	"github.com/plus3/cubes/ecs"
)

type Settings struct {
	RotationSpeed float32
}

type Counter struct {
	Objects int
}

// ExampleNewSingleton shows that every handle on a singleton sees the same
// value.
func ExampleNewSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	settings := ecs.NewSingleton[Settings](storage, Settings{RotationSpeed: 0.02})
	fmt.Printf("speed: %.2f\n", settings.Get().RotationSpeed)

	settings.Get().RotationSpeed = 0.3

	again := ecs.NewSingleton[Settings](storage, Settings{RotationSpeed: 0.5})
	fmt.Printf("speed via second handle: %.2f\n", again.Get().RotationSpeed)

	// Output:
	// speed: 0.02
	// speed via second handle: 0.30
}

// ExampleStorage_ReadSingleton reads singletons without keeping a handle.
func ExampleStorage_ReadSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	ecs.NewSingleton[Settings](storage, Settings{RotationSpeed: 0.1})

	var settings *Settings
	if storage.ReadSingleton(&settings) {
		fmt.Printf("speed: %.1f\n", settings.RotationSpeed)
	}

	var counter *Counter
	if !storage.ReadSingleton(&counter) {
		fmt.Println("counter not found")
	}

	// Output:
	// speed: 0.1
	// counter not found
}

// ExampleView iterates entities that carry both a Position and a Spin.
func ExampleView() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Spin](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Position{X: 1}, Spin{Rate: 0.5})
	storage.Spawn(Position{X: 2})

	spinning := ecs.NewView[struct {
		*Position
		*Spin
	}](storage)
	for item := range spinning.Values() {
		item.Position.X += item.Spin.Rate
		fmt.Printf("x=%.1f\n", item.Position.X)
	}

	// Output:
	// x=1.5
}
