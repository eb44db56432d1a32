//go:build !windows

package driver

import (
	"sync"

	"github.com/ebitengine/purego"
)

type clearDepthStencilFunc func(this, view uintptr, flags uint32, depth float32, stencil uint8, mode uint8)

var clearDepthStencilFuncs sync.Map

func callClearDepthStencil(fn uintptr, this Handle, view uintptr, flags ClearDepthStencilFlags, depth float32, stencil uint8, mode ResourceStateTransitionMode) {
	f, ok := clearDepthStencilFuncs.Load(fn)
	if !ok {
		var clear clearDepthStencilFunc
		purego.RegisterFunc(&clear, fn)
		f, _ = clearDepthStencilFuncs.LoadOrStore(fn, clear)
	}
	f.(clearDepthStencilFunc)(uintptr(this), view, uint32(flags), depth, stencil, uint8(mode))
}
