//go:build amd64 && !windows

package driver

import (
	"github.com/ebitengine/purego"
)

// Aggregates up to 16 bytes made of integer fields come back in RAX:RDX. Larger
// aggregates are written through a hidden pointer passed ahead of this.

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

func callTLASBuildInfo(fn uintptr, this Handle) TLASBuildInfo {
	var out TLASBuildInfo
	call(fn, ptr(&out), uintptr(this))
	return out
}
