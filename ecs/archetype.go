package ecs

import (
	"reflect"
	"slices"
	"weak"

	"github.com/kamstrup/intmap"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity that has exactly the same set of component
// types. Column i stores components of types[i]; all columns share slot
// indices.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []componentColumn
	refs    *intmap.Map[EntityId, weak.Pointer[EntityRef]]
}

// NewArchetype creates an archetype for the given sorted component types.
// It panics if one of the types was never registered.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]componentColumn, len(types)),
		refs:    intmap.New[EntityId, weak.Pointer[EntityRef]](64),
	}
	for i, typ := range types {
		column := registry.newColumn(typ)
		if column == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.columns[i] = column
	}
	return a
}

// ID returns the archetype's hash identifier.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types of the archetype.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// Spawn appends one entity and returns its slot index.
func (a *Archetype) Spawn(components []any) uint32 {
	var slot int
	for _, comp := range components {
		idx := a.columnIndex(componentType(comp))
		if idx < 0 {
			continue
		}
		slot = a.columns[idx].Append(comp)
	}
	return uint32(slot)
}

// GetComponent returns a pointer to the component of compType at entityIndex,
// or nil.
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	idx := a.columnIndex(compType)
	if idx < 0 {
		return nil
	}
	return a.columns[idx].Get(int(entityIndex))
}

// HasComponent reports whether compType is part of this archetype.
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// Delete frees the slot and invalidates any EntityRef pointing at it.
func (a *Archetype) Delete(entityIndex uint32) {
	id := NewEntityId(a.id, entityIndex)
	if ptr, ok := a.refs.Get(id); ok {
		if ref := ptr.Value(); ref != nil {
			ref.Id = 0
			ref.Archetype = nil
		}
		a.refs.Del(id)
	}
	for _, column := range a.columns {
		column.Delete(int(entityIndex))
	}
}

// Compact removes holes left by deletions. Live EntityRefs are rewritten to
// the new slot indices; raw EntityIds into this archetype become stale.
func (a *Archetype) Compact() {
	if len(a.columns) == 0 {
		return
	}

	moved := a.columns[0].Compact()
	for _, column := range a.columns[1:] {
		column.Compact()
	}

	live := make(map[EntityId]weak.Pointer[EntityRef], a.refs.Len())
	for oldIdx, newIdx := range moved {
		ptr, ok := a.refs.Get(NewEntityId(a.id, uint32(oldIdx)))
		if !ok {
			continue
		}
		if ref := ptr.Value(); ref != nil {
			ref.Id = NewEntityId(a.id, uint32(newIdx))
			live[ref.Id] = ptr
		}
	}

	a.refs.Clear()
	for id, ptr := range live {
		a.refs.Put(id, ptr)
	}
}

// Iter yields the IDs of all live entities in slot order.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

func (a *Archetype) columnIndex(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}
