package driver

import (
	"github.com/ebitengine/purego"
)

// call invokes a native method. Every argument is passed in an integer register or
// stack slot; methods taking scalar floats or returning aggregates go through the
// per-ABI helpers instead.
func call(fn uintptr, args ...uintptr) uintptr {
	if fn == 0 {
		panic("driver: nil method pointer")
	}
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}
