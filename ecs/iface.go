package ecs

import "unsafe"

// eface mirrors the runtime layout of an empty interface.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// dataPointer returns the data word of v: the pointer itself when v holds a
// pointer, or the *rtype when v holds a reflect.Type.
func dataPointer(v any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(&v)).data
}
