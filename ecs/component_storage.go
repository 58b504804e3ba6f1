package ecs

import (
	"iter"
	"reflect"
)

// componentColumn is a type-erased column of one component type inside an
// archetype.
type componentColumn interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Compact() map[int]int
	Iter() iter.Seq[int]
}

// ComponentRegistry knows how to build a column for every registered
// component type. Each Storage owns one.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentColumn
}

// NewComponentRegistry returns an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentColumn),
	}
}

// RegisterComponent makes T usable as a component in storages built from r.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() componentColumn {
		return &blockColumn[T]{}
	}
}

// Registered reports whether t has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) newColumn(t reflect.Type) componentColumn {
	factory := r.factories[t]
	if factory == nil {
		return nil
	}
	return factory()
}

const blockSize = 64

// blockColumn stores components in fixed-size heap blocks. Appends and
// deletes never move a block, so pointers handed out by Get stay valid until
// the slot is deleted. Compact copies live components into new blocks and
// invalidates every earlier pointer.
type blockColumn[T any] struct {
	blocks    []*[blockSize]T
	filled    []*[blockSize]bool
	freeSlots []int
	nextIndex int
}

func (c *blockColumn[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(c.freeSlots); n > 0 {
		index = c.freeSlots[n-1]
		c.freeSlots = c.freeSlots[:n-1]
	} else {
		index = c.nextIndex
		c.nextIndex++
		if index/blockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, new([blockSize]T))
			c.filled = append(c.filled, new([blockSize]bool))
		}
	}

	c.blocks[index/blockSize][index%blockSize] = value
	c.filled[index/blockSize][index%blockSize] = true
	return index
}

func (c *blockColumn[T]) Get(index int) any {
	if !c.Has(index) {
		return nil
	}
	return &c.blocks[index/blockSize][index%blockSize]
}

func (c *blockColumn[T]) Delete(index int) {
	if !c.Has(index) {
		return
	}
	var zero T
	c.blocks[index/blockSize][index%blockSize] = zero
	c.filled[index/blockSize][index%blockSize] = false
	c.freeSlots = append(c.freeSlots, index)
}

func (c *blockColumn[T]) Has(index int) bool {
	if index < 0 || index >= c.nextIndex {
		return false
	}
	return c.filled[index/blockSize][index%blockSize]
}

// Len returns the number of live components.
func (c *blockColumn[T]) Len() int {
	return c.nextIndex - len(c.freeSlots)
}

// Compact moves live components to the front of freshly allocated blocks,
// preserving their order, and returns the old-to-new index mapping of every
// slot that moved or stayed. Pointers obtained before Compact are stale.
func (c *blockColumn[T]) Compact() map[int]int {
	moved := make(map[int]int, c.Len())

	var blocks []*[blockSize]T
	var filled []*[blockSize]bool
	write := 0
	for read := 0; read < c.nextIndex; read++ {
		if !c.filled[read/blockSize][read%blockSize] {
			continue
		}
		if write/blockSize >= len(blocks) {
			blocks = append(blocks, new([blockSize]T))
			filled = append(filled, new([blockSize]bool))
		}
		blocks[write/blockSize][write%blockSize] = c.blocks[read/blockSize][read%blockSize]
		filled[write/blockSize][write%blockSize] = true
		moved[read] = write
		write++
	}

	c.blocks = blocks
	c.filled = filled
	c.freeSlots = nil
	c.nextIndex = write
	return moved
}

func (c *blockColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.nextIndex; i++ {
			if !c.filled[i/blockSize][i%blockSize] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
