//go:build diligent_debug

package registry

import "runtime/debug"

// TracksLeaks reports whether acquisitions record the caller's stack.
const TracksLeaks = true

type trace []byte

func captureTrace() trace {
	return debug.Stack()
}
