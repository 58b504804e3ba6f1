// Package scene builds and mutates the cube scene: a ground plane, a list of
// randomly placed cubes, lights, fog and a camera, all stored in an ECS
// world.
package scene

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"cogentcore.org/core/math32"
	"github.com/plus3/cubes/ecs"
)

// Options sizes the scene and seeds cube placement.
type Options struct {
	PlaneWidth    float32
	PlaneHeight   float32
	MaxCubeSize   int
	MaxCubeHeight float32
	RotationSpeed float32
	// Seed of 0 picks a random seed.
	Seed uint64
}

// DefaultOptions returns a 60x40 plane, cubes up to 3 units placed up to 5
// units high, rotating 0.02 rad per frame.
func DefaultOptions() Options {
	return Options{
		PlaneWidth:    60,
		PlaneHeight:   40,
		MaxCubeSize:   3,
		MaxCubeHeight: 5,
		RotationSpeed: 0.02,
	}
}

// Scene owns the ordered child list of an ECS storage. Child 0 is always the
// ground plane.
type Scene struct {
	storage  *ecs.Storage
	opts     Options
	rng      *rand.Rand
	children []*ecs.EntityRef
	meshes   *ecs.View[Mesh]
	controls *ecs.Singleton[Controls]
}

// New sets up the camera, lights, fog, background and ground plane in
// storage. The mesh components must already be registered with the
// storage's registry.
func New(storage *ecs.Storage, opts Options) *Scene {
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	if opts.MaxCubeSize < 1 {
		opts.MaxCubeSize = 1
	}

	s := &Scene{
		storage: storage,
		opts:    opts,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		meshes:  ecs.NewView[Mesh](storage),
	}

	ecs.NewSingleton(storage, Camera{
		FOV:      45,
		Near:     0.1,
		Far:      1000,
		Position: math32.Vec3(-30, 40, 30),
		Target:   math32.Vec3(0, 0, 0),
		Up:       math32.Vec3(0, 1, 0),
	})
	ecs.NewSingleton(storage, AmbientLight{Color: hexColor(0x0c0c0c)})
	ecs.NewSingleton(storage, SpotLight{
		Color:      hexColor(0xffffff),
		Intensity:  1,
		Position:   math32.Vec3(-20, 30, -5),
		Target:     math32.Vec3(0, 0, 0),
		Angle:      math32.Pi / 3,
		CastShadow: true,
	})
	ecs.NewSingleton(storage, Fog{Color: hexColor(0xffffff), Density: 0.015})
	ecs.NewSingleton(storage, Background{Color: hexColor(0xeeeeee)})
	s.controls = ecs.NewSingleton(storage, Controls{RotationSpeed: opts.RotationSpeed})

	s.push(storage.Spawn(
		Object{Kind: KindPlane, Name: "plane"},
		Transform{Rotation: math32.Vec3(-0.5*math32.Pi, 0, 0)},
		Geometry{Width: opts.PlaneWidth, Height: opts.PlaneHeight},
		Material{Color: hexColor(0xffffff)},
		Shadow{Receive: true},
	))

	return s
}

// Storage returns the ECS storage backing the scene.
func (s *Scene) Storage() *ecs.Storage {
	return s.storage
}

// Options returns the options the scene was built with.
func (s *Scene) Options() Options {
	return s.opts
}

// Len returns the number of meshes, the plane included.
func (s *Scene) Len() int {
	return len(s.children)
}

// Plane returns the ground plane's entity.
func (s *Scene) Plane() ecs.EntityId {
	return s.children[0].Id
}

// Children returns the mesh entities in insertion order.
func (s *Scene) Children() []ecs.EntityId {
	ids := make([]ecs.EntityId, len(s.children))
	for i, ref := range s.children {
		ids[i] = ref.Id
	}
	return ids
}

// Mesh returns the components of child i, or nil when out of range.
func (s *Scene) Mesh(i int) *Mesh {
	if i < 0 || i >= len(s.children) {
		return nil
	}
	return s.meshes.GetRef(s.children[i])
}

// AddCube appends a cube with a random size, colour and position on the
// plane and returns its entity.
func (s *Scene) AddCube() ecs.EntityId {
	size := float32(s.rng.IntN(s.opts.MaxCubeSize) + 1)
	w, h := s.opts.PlaneWidth, s.opts.PlaneHeight

	id := s.storage.Spawn(
		Object{Kind: KindCube, Name: fmt.Sprintf("cube-%d", len(s.children))},
		Transform{Position: math32.Vec3(
			-w/2+math32.Round(s.rng.Float32()*w),
			math32.Round(s.rng.Float32()*s.opts.MaxCubeHeight),
			-h/2+math32.Round(s.rng.Float32()*h),
		)},
		Geometry{Width: size, Height: size, Depth: size},
		Material{Color: hexColor(s.rng.Uint32N(0x1000000))},
		Shadow{Cast: true},
	)
	s.push(id)
	return id
}

// RemoveCube deletes the most recently added mesh if it is a cube. It
// reports whether anything was removed; the plane is never removed. The
// storage is not compacted, so component pointers held elsewhere stay valid
// and the freed slot is reused by the next AddCube.
func (s *Scene) RemoveCube() bool {
	last := s.Mesh(len(s.children) - 1)
	if last == nil || last.Object.Kind != KindCube {
		return false
	}

	s.storage.Delete(last.EntityId)
	s.children[len(s.children)-1] = nil
	s.children = s.children[:len(s.children)-1]
	s.syncCount()
	return true
}

// Controls returns the panel state singleton.
func (s *Scene) Controls() *Controls {
	return s.controls.Get()
}

func (s *Scene) push(id ecs.EntityId) {
	s.children = append(s.children, s.storage.CreateEntityRef(id))
	s.syncCount()
}

func (s *Scene) syncCount() {
	s.controls.Get().NumberOfObjects = len(s.children)
}

func hexColor(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
