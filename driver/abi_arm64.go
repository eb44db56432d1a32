//go:build arm64 && !windows

package driver

import (
	"sync"

	"github.com/ebitengine/purego"
)

// Aggregates up to 16 bytes come back in X0:X1. Larger aggregates use the indirect
// result register X8, which only a registered function can populate.

func callScratchBufferSizes(fn uintptr, this Handle) ScratchBufferSizes {
	r1, r2, _ := purego.SyscallN(fn, uintptr(this))
	return ScratchBufferSizes{Build: uint64(r1), Update: uint64(r2)}
}

func callTLASInstanceDesc(fn uintptr, this Handle, name *byte) TLASInstanceDesc {
	r1, r2, _ := purego.SyscallN(fn, uintptr(this), ptr(name))
	return TLASInstanceDesc{
		ContributionToHitGroupIndex: uint32(r1),
		InstanceIndex:               uint32(r1 >> 32),
		BLAS:                        Handle(r2),
	}
}

var tlasBuildInfoFuncs sync.Map

func callTLASBuildInfo(fn uintptr, this Handle) TLASBuildInfo {
	f, ok := tlasBuildInfoFuncs.Load(fn)
	if !ok {
		var getBuildInfo func(this uintptr) TLASBuildInfo
		purego.RegisterFunc(&getBuildInfo, fn)
		f, _ = tlasBuildInfoFuncs.LoadOrStore(fn, getBuildInfo)
	}
	return f.(func(uintptr) TLASBuildInfo)(uintptr(this))
}
