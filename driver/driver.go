// Package driver is the native half of the binding. It holds the C layout of every
// structure the engine exchanges, the method tables of every engine interface, and a
// single vtable-backed implementation of each interface.
//
// Nothing in this package tracks lifetimes. Callers that receive an interface from a
// creation method own one reference and are expected to Release it.
package driver

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Handle is the address of a native interface, i.e. the address of the object's
// vtable pointer.
type Handle uintptr

const ptrSize = unsafe.Sizeof(uintptr(0))

// InterfaceID matches the engine's INTERFACE_ID GUID layout. Interface identifiers are
// published in the engine headers and are passed through unchanged.
type InterfaceID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

var (
	// ErrLibraryNotFound is returned when a backend shared library cannot be opened.
	ErrLibraryNotFound = errors.New("engine library could not be loaded")
	// ErrSymbolNotFound is returned when a backend library does not export the expected factory entry point.
	ErrSymbolNotFound = errors.New("engine library does not export symbol")
	// ErrAPIMismatch is returned when the engine reports structure sizes that differ from this binding.
	ErrAPIMismatch = errors.New("engine API does not match binding")
)

// vtblOf returns the method table of the native object at h.
func vtblOf[T any](h Handle) *T {
	if h == 0 {
		panic("driver: nil native object")
	}
	return *(**T)(unsafe.Pointer(h))
}

func handleOf(o Object) uintptr {
	if o == nil {
		return 0
	}
	return uintptr(o.Handle())
}

func ptr[T any](v *T) uintptr {
	return uintptr(unsafe.Pointer(v))
}

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// C++ bool is returned in the low byte of the return register.
func boolRet(r uintptr) bool {
	return r&0xff != 0
}

// GoString copies a NUL-terminated native string.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// GoSlice views count native elements starting at p. The result aliases native memory.
func GoSlice[T any](p *T, count uint32) []T {
	if p == nil || count == 0 {
		return nil
	}
	return unsafe.Slice(p, count)
}
