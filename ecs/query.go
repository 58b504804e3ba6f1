package ecs

import "iter"

// Query is a View whose matches are gathered once per frame. The Scheduler
// refreshes every Query field of a registered system before the system runs;
// standalone queries must call Execute themselves.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	archetypes     []*Archetype
	archetypeCount int

	entities   []EntityId
	components []T
	ready      bool
}

// NewQuery creates a query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage and drops all caches.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.archetypes = nil
	q.archetypeCount = -1
	q.ready = false
}

// Execute rebuilds the match list from the current storage contents.
func (q *Query[T]) Execute() {
	if n := len(q.storage.archetypes); n != q.archetypeCount {
		q.archetypes = q.archetypes[:0]
		for _, archetype := range q.storage.archetypes {
			if q.view.matchesArchetype(archetype) {
				q.archetypes = append(q.archetypes, archetype)
			}
		}
		q.archetypeCount = n
	}

	q.entities = q.entities[:0]
	q.components = q.components[:0]
	for _, archetype := range q.archetypes {
		for id, item := range q.view.iterArchetype(archetype) {
			q.entities = append(q.entities, id)
			q.components = append(q.components, item)
		}
	}
	q.ready = true
}

// Len returns the number of matches found by the last Execute.
func (q *Query[T]) Len() int {
	return len(q.entities)
}

// Iter yields the matches of the last Execute. It panics if Execute has
// never run.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.ready {
		panic("Query.Iter() called before Query.Execute()")
	}
	return func(yield func(EntityId, T) bool) {
		for i := range q.entities {
			if !yield(q.entities[i], q.components[i]) {
				return
			}
		}
	}
}

// Values is Iter without the IDs.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.ready {
		panic("Query.Values() called before Query.Execute()")
	}
	return func(yield func(T) bool) {
		for i := range q.components {
			if !yield(q.components[i]) {
				return
			}
		}
	}
}
