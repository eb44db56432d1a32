package driver

type HitGroupBindingMode uint8

const (
	HitGroupBindingModePerGeometry HitGroupBindingMode = iota
	HitGroupBindingModePerInstance
	HitGroupBindingModePerTLAS
	HitGroupBindingModeUserDefined
	HitGroupBindingModeCount
)

type CopyASMode uint8

const (
	CopyASModeClone CopyASMode = iota
	CopyASModeCompact
	CopyASModeCount
)

type RayTracingBuildAsFlags uint8

const (
	RayTracingBuildAsNone            RayTracingBuildAsFlags = 0x0
	RayTracingBuildAsAllowUpdate     RayTracingBuildAsFlags = 0x1
	RayTracingBuildAsAllowCompaction RayTracingBuildAsFlags = 0x2
	RayTracingBuildAsPreferFastTrace RayTracingBuildAsFlags = 0x4
	RayTracingBuildAsPreferFastBuild RayTracingBuildAsFlags = 0x8
	RayTracingBuildAsLowMemory       RayTracingBuildAsFlags = 0x10
)

type RayTracingGeometryFlags uint8

const (
	RayTracingGeometryFlagNone                        RayTracingGeometryFlags = 0x0
	RayTracingGeometryFlagOpaque                      RayTracingGeometryFlags = 0x1
	RayTracingGeometryFlagNoDuplicateAnyHitInvocation RayTracingGeometryFlags = 0x2
)

type RayTracingInstanceFlags uint8

const (
	RayTracingInstanceFlagNone                          RayTracingInstanceFlags = 0x0
	RayTracingInstanceFlagTriangleFacingCullDisable     RayTracingInstanceFlags = 0x1
	RayTracingInstanceFlagTriangleFrontCounterclockwise RayTracingInstanceFlags = 0x2
	RayTracingInstanceFlagForceOpaque                   RayTracingInstanceFlags = 0x4
	RayTracingInstanceFlagForceNoOpaque                 RayTracingInstanceFlags = 0x8
)

type VerifySBTFlags uint32

const (
	VerifySBTFlagShaderOnly   VerifySBTFlags = 0x1
	VerifySBTFlagShaderRecord VerifySBTFlags = 0x2
	VerifySBTFlagTLAS         VerifySBTFlags = 0x4
	VerifySBTFlagAll          VerifySBTFlags = 0x7
)
