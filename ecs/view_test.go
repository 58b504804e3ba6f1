package ecs_test

import (
	"sort"
	"testing"

	"github.com/plus3/cubes/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewMatchesRequiredComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1}, Spin{Rate: 0.1})
	storage.Spawn(Position{X: 2}, Spin{Rate: 0.2}, Label{Value: "two"})
	storage.Spawn(Position{X: 3})

	view := ecs.NewView[struct {
		*Position
		*Spin
	}](storage)

	var xs []float32
	for item := range view.Values() {
		xs = append(xs, item.Position.X)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	assert.Equal(t, []float32{1, 2}, xs)
}

func TestViewOptionalComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	bare := storage.Spawn(Position{X: 1})
	named := storage.Spawn(Position{X: 2}, Label{Value: "named"})

	view := ecs.NewView[struct {
		*Position
		Label *Label `ecs:"optional"`
	}](storage)

	got := view.Get(bare)
	require.NotNil(t, got)
	assert.Nil(t, got.Label)

	got = view.Get(named)
	require.NotNil(t, got)
	require.NotNil(t, got.Label)
	assert.Equal(t, "named", got.Label.Value)
}

func TestViewEntityIdField(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 5}, Spin{})

	view := ecs.NewView[struct {
		ecs.EntityId
		*Position
	}](storage)

	count := 0
	for gotId, item := range view.Iter() {
		assert.Equal(t, id, gotId)
		assert.Equal(t, id, item.EntityId)
		count++
	}
	assert.Equal(t, 1, count)
}

func TestViewWritesThrough(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{}, Spin{Rate: 2})

	view := ecs.NewView[struct {
		*Position
		*Spin
	}](storage)
	for item := range view.Values() {
		item.Position.X += item.Spin.Rate
	}

	assert.Equal(t, float32(2), ecs.ReadComponent[Position](storage, id).X)
}

func TestViewGetRef(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 8})
	ref := storage.CreateEntityRef(id)

	view := ecs.NewView[struct{ *Position }](storage)
	require.NotNil(t, view.GetRef(ref))
	assert.Equal(t, float32(8), view.GetRef(ref).Position.X)

	storage.Delete(id)
	assert.Nil(t, view.GetRef(ref))
}

func TestViewRejectsBadTypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ Position }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			Label *Label `ecs:"sometimes"`
		}](storage)
	})
}

func TestQueryRequiresExecute(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Position }](storage)

	assert.Panics(t, func() { query.Iter() })
	assert.Panics(t, func() { query.Values() })

	storage.Spawn(Position{X: 1})
	query.Execute()
	assert.Equal(t, 1, query.Len())
}

func TestQuerySeesNewArchetypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Position }](storage)

	storage.Spawn(Position{X: 1})
	query.Execute()
	assert.Equal(t, 1, query.Len())

	storage.Spawn(Position{X: 2}, Label{Value: "new archetype"})
	storage.Spawn(Position{X: 3})
	query.Execute()
	assert.Equal(t, 3, query.Len())
}
