package diligent

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/diligent/driver"
)

// HitGroupBindingMode decides how hit groups are laid out in a shader binding table.
type HitGroupBindingMode int32

const (
	HitGroupBindingModePerGeometry HitGroupBindingMode = iota
	HitGroupBindingModePerInstance
	HitGroupBindingModePerTLAS
	HitGroupBindingModeUserDefined
)

var hitGroupBindingModeTable = [...]enumEntry[driver.HitGroupBindingMode]{
	HitGroupBindingModePerGeometry: {driver.HitGroupBindingModePerGeometry, "PerGeometry"},
	HitGroupBindingModePerInstance: {driver.HitGroupBindingModePerInstance, "PerInstance"},
	HitGroupBindingModePerTLAS:     {driver.HitGroupBindingModePerTLAS, "PerTLAS"},
	HitGroupBindingModeUserDefined: {driver.HitGroupBindingModeUserDefined, "UserDefined"},
}

const _ = uint(len(hitGroupBindingModeTable) - int(driver.HitGroupBindingModeCount))
const _ = uint(int(driver.HitGroupBindingModeCount) - len(hitGroupBindingModeTable))

func (e HitGroupBindingMode) String() string { return enumString(hitGroupBindingModeTable[:], e) }

func (e HitGroupBindingMode) native() driver.HitGroupBindingMode { return enumToNative(hitGroupBindingModeTable[:], e) }

func hitGroupBindingModeFromNative(n driver.HitGroupBindingMode) HitGroupBindingMode {
	return enumFromNative[HitGroupBindingMode](hitGroupBindingModeTable[:], n, 0)
}

func (e HitGroupBindingMode) MarshalText() ([]byte, error) { return enumMarshalText(hitGroupBindingModeTable[:], e) }

func (e *HitGroupBindingMode) UnmarshalText(text []byte) error {
	return enumUnmarshalText(hitGroupBindingModeTable[:], e, text, 0)
}

type CopyASMode int32

const (
	CopyASModeClone CopyASMode = iota
	CopyASModeCompact
)

var copyASModeTable = [...]enumEntry[driver.CopyASMode]{
	CopyASModeClone:   {driver.CopyASModeClone, "Clone"},
	CopyASModeCompact: {driver.CopyASModeCompact, "Compact"},
}

const _ = uint(len(copyASModeTable) - int(driver.CopyASModeCount))
const _ = uint(int(driver.CopyASModeCount) - len(copyASModeTable))

func (e CopyASMode) String() string { return enumString(copyASModeTable[:], e) }

func (e CopyASMode) native() driver.CopyASMode { return enumToNative(copyASModeTable[:], e) }

func copyASModeFromNative(n driver.CopyASMode) CopyASMode {
	return enumFromNative[CopyASMode](copyASModeTable[:], n, 0)
}

func (e CopyASMode) MarshalText() ([]byte, error) { return enumMarshalText(copyASModeTable[:], e) }

func (e *CopyASMode) UnmarshalText(text []byte) error {
	return enumUnmarshalText(copyASModeTable[:], e, text, 0)
}

// RayTracingBuildAsFlags control acceleration structure builds.
type RayTracingBuildAsFlags int32

var rayTracingBuildAsFlagsMapping = common.NewFlagStringMapping[RayTracingBuildAsFlags]()

func (f RayTracingBuildAsFlags) Register(str string) {
	rayTracingBuildAsFlagsMapping.Register(f, str)
}
func (f RayTracingBuildAsFlags) String() string {
	return rayTracingBuildAsFlagsMapping.FlagsToString(f)
}

func (f RayTracingBuildAsFlags) native() driver.RayTracingBuildAsFlags { return driver.RayTracingBuildAsFlags(f) }

const (
	RayTracingBuildAsNone            RayTracingBuildAsFlags = RayTracingBuildAsFlags(driver.RayTracingBuildAsNone)
	RayTracingBuildAsAllowUpdate     RayTracingBuildAsFlags = RayTracingBuildAsFlags(driver.RayTracingBuildAsAllowUpdate)
	RayTracingBuildAsAllowCompaction RayTracingBuildAsFlags = RayTracingBuildAsFlags(driver.RayTracingBuildAsAllowCompaction)
	RayTracingBuildAsPreferFastTrace RayTracingBuildAsFlags = RayTracingBuildAsFlags(driver.RayTracingBuildAsPreferFastTrace)
	RayTracingBuildAsPreferFastBuild RayTracingBuildAsFlags = RayTracingBuildAsFlags(driver.RayTracingBuildAsPreferFastBuild)
	RayTracingBuildAsLowMemory       RayTracingBuildAsFlags = RayTracingBuildAsFlags(driver.RayTracingBuildAsLowMemory)
)

type RayTracingGeometryFlags int32

var rayTracingGeometryFlagsMapping = common.NewFlagStringMapping[RayTracingGeometryFlags]()

func (f RayTracingGeometryFlags) Register(str string) {
	rayTracingGeometryFlagsMapping.Register(f, str)
}
func (f RayTracingGeometryFlags) String() string {
	return rayTracingGeometryFlagsMapping.FlagsToString(f)
}

func (f RayTracingGeometryFlags) native() driver.RayTracingGeometryFlags { return driver.RayTracingGeometryFlags(f) }

const (
	RayTracingGeometryFlagNone                        RayTracingGeometryFlags = RayTracingGeometryFlags(driver.RayTracingGeometryFlagNone)
	RayTracingGeometryFlagOpaque                      RayTracingGeometryFlags = RayTracingGeometryFlags(driver.RayTracingGeometryFlagOpaque)
	RayTracingGeometryFlagNoDuplicateAnyHitInvocation RayTracingGeometryFlags = RayTracingGeometryFlags(driver.RayTracingGeometryFlagNoDuplicateAnyHitInvocation)
)

type RayTracingInstanceFlags int32

var rayTracingInstanceFlagsMapping = common.NewFlagStringMapping[RayTracingInstanceFlags]()

func (f RayTracingInstanceFlags) Register(str string) {
	rayTracingInstanceFlagsMapping.Register(f, str)
}
func (f RayTracingInstanceFlags) String() string {
	return rayTracingInstanceFlagsMapping.FlagsToString(f)
}

func (f RayTracingInstanceFlags) native() driver.RayTracingInstanceFlags { return driver.RayTracingInstanceFlags(f) }

const (
	RayTracingInstanceFlagNone                          RayTracingInstanceFlags = RayTracingInstanceFlags(driver.RayTracingInstanceFlagNone)
	RayTracingInstanceFlagTriangleFacingCullDisable     RayTracingInstanceFlags = RayTracingInstanceFlags(driver.RayTracingInstanceFlagTriangleFacingCullDisable)
	RayTracingInstanceFlagTriangleFrontCounterclockwise RayTracingInstanceFlags = RayTracingInstanceFlags(driver.RayTracingInstanceFlagTriangleFrontCounterclockwise)
	RayTracingInstanceFlagForceOpaque                   RayTracingInstanceFlags = RayTracingInstanceFlags(driver.RayTracingInstanceFlagForceOpaque)
	RayTracingInstanceFlagForceNoOpaque                 RayTracingInstanceFlags = RayTracingInstanceFlags(driver.RayTracingInstanceFlagForceNoOpaque)
)

type VerifySBTFlags int32

var verifySBTFlagsMapping = common.NewFlagStringMapping[VerifySBTFlags]()

func (f VerifySBTFlags) Register(str string) {
	verifySBTFlagsMapping.Register(f, str)
}
func (f VerifySBTFlags) String() string {
	return verifySBTFlagsMapping.FlagsToString(f)
}

func (f VerifySBTFlags) native() driver.VerifySBTFlags { return driver.VerifySBTFlags(f) }

const (
	VerifySBTFlagShaderOnly   VerifySBTFlags = VerifySBTFlags(driver.VerifySBTFlagShaderOnly)
	VerifySBTFlagShaderRecord VerifySBTFlags = VerifySBTFlags(driver.VerifySBTFlagShaderRecord)
	VerifySBTFlagTLAS         VerifySBTFlags = VerifySBTFlags(driver.VerifySBTFlagTLAS)
	VerifySBTFlagAll          VerifySBTFlags = VerifySBTFlags(driver.VerifySBTFlagAll)
)

func init() {
	RayTracingBuildAsAllowUpdate.Register("AllowUpdate")
	RayTracingBuildAsAllowCompaction.Register("AllowCompaction")
	RayTracingBuildAsPreferFastTrace.Register("PreferFastTrace")
	RayTracingBuildAsPreferFastBuild.Register("PreferFastBuild")
	RayTracingBuildAsLowMemory.Register("LowMemory")
	RayTracingGeometryFlagOpaque.Register("Opaque")
	RayTracingGeometryFlagNoDuplicateAnyHitInvocation.Register("NoDuplicateAnyHitInvocation")
	RayTracingInstanceFlagTriangleFacingCullDisable.Register("TriangleFacingCullDisable")
	RayTracingInstanceFlagTriangleFrontCounterclockwise.Register("TriangleFrontCounterclockwise")
	RayTracingInstanceFlagForceOpaque.Register("ForceOpaque")
	RayTracingInstanceFlagForceNoOpaque.Register("ForceNoOpaque")
	VerifySBTFlagShaderOnly.Register("ShaderOnly")
	VerifySBTFlagShaderRecord.Register("ShaderRecord")
	VerifySBTFlagTLAS.Register("TLAS")
}
