package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton is a typed handle on a storage-wide value that does not belong to
// any entity: cameras, lights, panel state and the like.
type Singleton[T any] struct {
	storage *Storage
	ptr     unsafe.Pointer
}

// NewSingleton returns a handle on the T singleton of storage, creating it
// from initializer (or the zero value) when it does not exist yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	typ := reflect.TypeFor[T]()
	if storage.getSingletonEntry(typ) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{storage: storage}
	s.refresh()
	return s
}

// Init binds the handle to storage. The Scheduler calls it for Singleton
// fields of registered systems.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr = nil
	s.refresh()
}

// Get returns the singleton, or nil when it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.refresh()
	}
	return (*T)(s.ptr)
}

// Exists reports whether the singleton has been added.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) refresh() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(reflect.TypeFor[T]()); entry != nil {
		s.ptr = entry.dataPtr
	}
}
