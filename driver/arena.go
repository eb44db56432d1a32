package driver

import (
	"runtime"
	"unsafe"
)

// Arena owns the Go memory referenced by native structures during a single engine
// call. Everything handed out by an Arena is pinned until Release, so a structure
// built against an Arena stays valid for exactly as long as the Arena does.
//
//	arena := driver.NewArena()
//	defer arena.Release()
//	native := desc.marshal(arena)
//	device.CreateBuffer(native, nil)
type Arena struct {
	pinner runtime.Pinner
}

func NewArena() *Arena {
	return &Arena{}
}

// CString copies s into pinned memory with a trailing NUL. The empty string becomes nil,
// which the engine treats as "no name".
func (a *Arena) CString(s string) *byte {
	if s == "" {
		return nil
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	a.pinner.Pin(&buf[0])
	return &buf[0]
}

// CStringArray marshals a list of strings into a pinned array of string pointers.
func (a *Arena) CStringArray(strs []string) **byte {
	if len(strs) == 0 {
		return nil
	}
	ptrs := make([]*byte, len(strs))
	for i, s := range strs {
		ptrs[i] = a.CString(s)
	}
	return PinSlice(a, ptrs)
}

// Bytes pins a byte slice and returns its address, or nil for an empty slice.
func (a *Arena) Bytes(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	a.pinner.Pin(&b[0])
	return unsafe.Pointer(&b[0])
}

// Release unpins everything allocated through the arena.
func (a *Arena) Release() {
	a.pinner.Unpin()
}

// New copies v into a pinned heap allocation.
func New[T any](a *Arena, v T) *T {
	p := new(T)
	*p = v
	a.pinner.Pin(p)
	return p
}

// Pin pins an existing value and returns it.
func Pin[T any](a *Arena, p *T) *T {
	if p != nil {
		a.pinner.Pin(p)
	}
	return p
}

// PinSlice pins the backing array of s and returns the address of its first element,
// or nil when s is empty.
func PinSlice[T any](a *Arena, s []T) *T {
	if len(s) == 0 {
		return nil
	}
	a.pinner.Pin(&s[0])
	return &s[0]
}

// MarshalSlice converts every element of src with conv and pins the result.
func MarshalSlice[S any, T any](a *Arena, src []S, conv func(*Arena, *S) T) (*T, uint32) {
	if len(src) == 0 {
		return nil, 0
	}
	out := make([]T, len(src))
	for i := range src {
		out[i] = conv(a, &src[i])
	}
	return PinSlice(a, out), uint32(len(out))
}

// HandleArray pins the native handles of objs.
func HandleArray[T Object](a *Arena, objs []T) *Handle {
	if len(objs) == 0 {
		return nil
	}
	handles := make([]Handle, len(objs))
	for i, o := range objs {
		handles[i] = Handle(handleOf(o))
	}
	return PinSlice(a, handles)
}
