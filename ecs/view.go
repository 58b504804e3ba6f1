package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View matches entities by component set. T is a struct whose fields are
// pointers to component types; embedded fields are required, named fields
// may be tagged `ecs:"optional"`. A field of type EntityId receives the ID of
// the matched entity.
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr

	idOffset uintptr
	hasId    bool
}

// NewView builds a view for T. It panics if T is not a struct of component
// pointers.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" && !field.Anonymous {
			if tag != "optional" {
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
			optional = true
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, optional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}
	return v
}

// Fill points the fields of *ptr at the components of id. It returns false
// if a required component is missing.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	archetype, ok := v.storage.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}
	return v.populate(unsafe.Pointer(ptr), archetype, int(id.Index()), v.columnIndices(archetype))
}

// Get returns the populated view for id, or nil.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// GetRef is Get through an EntityRef.
func (v *View[T]) GetRef(ref *EntityRef) *T {
	id, ok := v.storage.ResolveEntityRef(ref)
	if !ok {
		return nil
	}
	return v.Get(id)
}

// matchesArchetype reports whether archetype has every required component.
func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for i, typ := range v.types {
		if !v.optional[i] && !archetype.HasComponent(typ) {
			return false
		}
	}
	return true
}

func (v *View[T]) columnIndices(archetype *Archetype) []int {
	indices := make([]int, len(v.types))
	for i, typ := range v.types {
		indices[i] = archetype.columnIndex(typ)
	}
	return indices
}

func (v *View[T]) populate(resultPtr unsafe.Pointer, archetype *Archetype, entityIndex int, columns []int) bool {
	if v.hasId {
		*(*EntityId)(unsafe.Add(resultPtr, v.idOffset)) = NewEntityId(archetype.id, uint32(entityIndex))
	}

	for i, col := range columns {
		fieldPtr := (*unsafe.Pointer)(unsafe.Add(resultPtr, v.fieldOffset[i]))

		var component any
		if col >= 0 {
			component = archetype.columns[col].Get(entityIndex)
		}
		if component == nil {
			if !v.optional[i] {
				return false
			}
			*fieldPtr = nil
			continue
		}
		*fieldPtr = dataPointer(component)
	}
	return true
}

// iterArchetype yields every entity of archetype that fills the view.
func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		if len(archetype.columns) == 0 {
			return
		}
		columns := v.columnIndices(archetype)

		var result T
		resultPtr := unsafe.Pointer(&result)
		for entityIndex := range archetype.columns[0].Iter() {
			if !v.populate(resultPtr, archetype, entityIndex, columns) {
				continue
			}
			if !yield(NewEntityId(archetype.id, uint32(entityIndex)), result) {
				return
			}
		}
	}
}

// Iter yields (id, view) for every matching entity. Archetype order is
// unspecified; within an archetype entities come in slot order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.archetypes {
			if !v.matchesArchetype(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values is Iter without the IDs.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
