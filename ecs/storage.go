package ecs

import (
	"reflect"
	"sort"
	"unsafe"
	"weak"
)

// Storage owns all archetypes and singletons of one world.
type Storage struct {
	archetypes map[uint32]*Archetype
	singletons map[reflect.Type]*singletonEntry
	registry   *ComponentRegistry
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// NewStorage creates an empty storage backed by registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		singletons: make(map[reflect.Type]*singletonEntry),
		registry:   registry,
	}
}

// Registry returns the component registry the storage was built with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates a new entity from the given components. Components may be
// passed by value or by pointer; the value is copied either way.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetypeId := hashTypesToUint32(types)

	archetype, ok := s.archetypes[archetypeId]
	if !ok {
		archetype = NewArchetype(archetypeId, types, s.registry)
		s.archetypes[archetypeId] = archetype
	}

	return NewEntityId(archetypeId, archetype.Spawn(components))
}

// Delete removes the entity. Unknown IDs are ignored.
func (s *Storage) Delete(id EntityId) {
	if archetype, ok := s.archetypes[id.ArchetypeId()]; ok {
		archetype.Delete(id.Index())
	}
}

// Exists reports whether id refers to a live entity.
func (s *Storage) Exists(id EntityId) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok || len(archetype.columns) == 0 {
		return false
	}
	return archetype.columns[0].Has(int(id.Index()))
}

// GetComponent returns a pointer to the entity's component of compType, or
// nil when the entity or the component does not exist.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent reports whether the entity's archetype carries compType.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}
	return archetype.HasComponent(compType)
}

// CreateEntityRef returns the shared EntityRef for id, creating it on first
// use. Returns nil for IDs that do not exist.
func (s *Storage) CreateEntityRef(id EntityId) *EntityRef {
	if !s.Exists(id) {
		return nil
	}
	archetype := s.archetypes[id.ArchetypeId()]

	if ptr, ok := archetype.refs.Get(id); ok {
		if ref := ptr.Value(); ref != nil {
			return ref
		}
		archetype.refs.Del(id)
	}

	ref := &EntityRef{Id: id, Archetype: archetype}
	archetype.refs.Put(id, weak.Make(ref))
	return ref
}

// ResolveEntityRef returns the current ID behind ref.
func (s *Storage) ResolveEntityRef(ref *EntityRef) (EntityId, bool) {
	if !ref.Valid() {
		return 0, false
	}
	return ref.Id, true
}

// Compact compacts every archetype. See Archetype.Compact.
func (s *Storage) Compact() {
	for _, archetype := range s.archetypes {
		archetype.Compact()
	}
}

// AddSingleton stores value as the singleton of its type. An existing
// singleton is overwritten in place so outstanding handles stay valid.
// Singletons need no registration.
func (s *Storage) AddSingleton(value any) {
	typ := reflect.TypeOf(value)
	if entry, ok := s.singletons[typ]; ok {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}
	holder := reflect.New(typ)
	holder.Elem().Set(reflect.ValueOf(value))
	s.singletons[typ] = &singletonEntry{
		value:   holder,
		dataPtr: holder.UnsafePointer(),
	}
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	return s.singletons[typ]
}

// ReadSingleton points *target at the stored singleton of type T and
// reports whether it exists.
func (s *Storage) ReadSingleton(target any) bool {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.getSingletonEntry(ptr.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	ptr.Elem().Set(entry.value)
	return true
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// extractComponentTypes returns the sorted component types of components.
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		t := componentType(comp)
		switch t.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}
		types = append(types, t)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 is FNV-1a over the runtime type pointers of sorted types.
func hashTypesToUint32(types []reflect.Type) uint32 {
	const prime uint32 = 16777619
	h := uint32(2166136261)

	for _, t := range types {
		ptr := uintptr(dataPointer(t))
		val := uint32(ptr)
		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uint64(ptr) >> 32)
		}
		h ^= val
		h *= prime
	}

	return h
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent is a typed GetComponent. Returns nil when absent.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
