//go:build windows

package driver

import (
	"math"
)

// Member functions returning aggregates larger than 8 bytes receive the result
// pointer right after this.

func callScratchBufferSizes(fn uintptr, this Handle) ScratchBufferSizes {
	var out ScratchBufferSizes
	call(fn, uintptr(this), ptr(&out))
	return out
}

func callTLASInstanceDesc(fn uintptr, this Handle, name *byte) TLASInstanceDesc {
	var out TLASInstanceDesc
	call(fn, uintptr(this), ptr(&out), ptr(name))
	return out
}

func callTLASBuildInfo(fn uintptr, this Handle) TLASBuildInfo {
	var out TLASBuildInfo
	call(fn, uintptr(this), ptr(&out))
	return out
}

// The first four arguments are mirrored into XMM0-XMM3, so the depth value lands
// where the callee expects it.
func callClearDepthStencil(fn uintptr, this Handle, view uintptr, flags ClearDepthStencilFlags, depth float32, stencil uint8, mode ResourceStateTransitionMode) {
	call(fn, uintptr(this), view, uintptr(flags), uintptr(math.Float32bits(depth)), uintptr(stencil), uintptr(mode))
}
