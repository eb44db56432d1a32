package driver

type ShaderSourceLanguage uint32

const (
	ShaderSourceLanguageDefault ShaderSourceLanguage = iota
	ShaderSourceLanguageHLSL
	ShaderSourceLanguageGLSL
	ShaderSourceLanguageGLSLVerbatim
	ShaderSourceLanguageMSL
	ShaderSourceLanguageMSLVerbatim
	ShaderSourceLanguageMTLB
	ShaderSourceLanguageWGSL
	ShaderSourceLanguageCount
)

type ShaderCompiler uint32

const (
	ShaderCompilerDefault ShaderCompiler = iota
	ShaderCompilerGlslang
	ShaderCompilerDXC
	ShaderCompilerFXC
	ShaderCompilerCount
)

type ShaderStatus uint32

const (
	ShaderStatusUninitialized ShaderStatus = iota
	ShaderStatusCompiling
	ShaderStatusReady
	ShaderStatusFailed
	ShaderStatusCount
)

type ShaderResourceType uint8

const (
	ShaderResourceTypeUnknown ShaderResourceType = iota
	ShaderResourceTypeConstantBuffer
	ShaderResourceTypeTextureSRV
	ShaderResourceTypeBufferSRV
	ShaderResourceTypeTextureUAV
	ShaderResourceTypeBufferUAV
	ShaderResourceTypeSampler
	ShaderResourceTypeInputAttachment
	ShaderResourceTypeAccelStruct
	ShaderResourceTypeCount
)

type ShaderResourceVariableType uint8

const (
	ShaderResourceVariableTypeStatic ShaderResourceVariableType = iota
	ShaderResourceVariableTypeMutable
	ShaderResourceVariableTypeDynamic
	ShaderResourceVariableTypeCount
)

type ShaderCodeVariableClass uint8

const (
	ShaderCodeVariableClassUnknown ShaderCodeVariableClass = iota
	ShaderCodeVariableClassScalar
	ShaderCodeVariableClassVector
	ShaderCodeVariableClassMatrixRows
	ShaderCodeVariableClassMatrixColumns
	ShaderCodeVariableClassStruct
	ShaderCodeVariableClassCount
)

type ShaderCodeBasicType uint8

const (
	ShaderCodeBasicTypeUnknown ShaderCodeBasicType = iota
	ShaderCodeBasicTypeVoid
	ShaderCodeBasicTypeBool
	ShaderCodeBasicTypeInt
	ShaderCodeBasicTypeInt8
	ShaderCodeBasicTypeInt16
	ShaderCodeBasicTypeInt64
	ShaderCodeBasicTypeUint
	ShaderCodeBasicTypeUint8
	ShaderCodeBasicTypeUint16
	ShaderCodeBasicTypeUint64
	ShaderCodeBasicTypeFloat
	ShaderCodeBasicTypeFloat16
	ShaderCodeBasicTypeDouble
	ShaderCodeBasicTypeMIN8FLOAT
	ShaderCodeBasicTypeMIN10FLOAT
	ShaderCodeBasicTypeMIN16FLOAT
	ShaderCodeBasicTypeMIN12INT
	ShaderCodeBasicTypeMIN16INT
	ShaderCodeBasicTypeMIN16UINT
	ShaderCodeBasicTypeString
	ShaderCodeBasicTypeCount
)

type ShaderType uint32

const (
	ShaderTypeUnknown         ShaderType = 0x0
	ShaderTypeVertex          ShaderType = 0x1
	ShaderTypePixel           ShaderType = 0x2
	ShaderTypeGeometry        ShaderType = 0x4
	ShaderTypeHull            ShaderType = 0x8
	ShaderTypeDomain          ShaderType = 0x10
	ShaderTypeCompute         ShaderType = 0x20
	ShaderTypeAmplification   ShaderType = 0x40
	ShaderTypeMesh            ShaderType = 0x80
	ShaderTypeRayGen          ShaderType = 0x100
	ShaderTypeRayMiss         ShaderType = 0x200
	ShaderTypeRayClosestHit   ShaderType = 0x400
	ShaderTypeRayAnyHit       ShaderType = 0x800
	ShaderTypeRayIntersection ShaderType = 0x1000
	ShaderTypeCallable        ShaderType = 0x2000
	ShaderTypeTile            ShaderType = 0x4000
	ShaderTypeAllGraphics     ShaderType = 0x1f
	ShaderTypeAllMesh         ShaderType = 0xc2
	ShaderTypeAllRayTracing   ShaderType = 0x3f00
	ShaderTypeAll             ShaderType = 0x7fff
)

type ShaderCompileFlags uint32

const (
	ShaderCompileFlagNone                  ShaderCompileFlags = 0x0
	ShaderCompileFlagEnableUnboundedArrays ShaderCompileFlags = 0x1
	ShaderCompileFlagSkipReflection        ShaderCompileFlags = 0x2
	ShaderCompileFlagAsynchronous          ShaderCompileFlags = 0x4
	ShaderCompileFlagPackMatrixRowMajor    ShaderCompileFlags = 0x8
	ShaderCompileFlagHLSLToSpirvViaGLSL    ShaderCompileFlags = 0x10
)

type ShaderVariableFlags uint8

const (
	ShaderVariableFlagNone                           ShaderVariableFlags = 0x0
	ShaderVariableFlagNoDynamicBuffers               ShaderVariableFlags = 0x1
	ShaderVariableFlagGeneralInputAttachment         ShaderVariableFlags = 0x2
	ShaderVariableFlagUnfilterableFloatTextureWebGPU ShaderVariableFlags = 0x4
	ShaderVariableFlagNonFilteringSamplerWebGPU      ShaderVariableFlags = 0x8
)

type PipelineResourceFlags uint8

const (
	PipelineResourceFlagNone                   PipelineResourceFlags = 0x0
	PipelineResourceFlagNoDynamicBuffers       PipelineResourceFlags = 0x1
	PipelineResourceFlagCombinedSampler        PipelineResourceFlags = 0x2
	PipelineResourceFlagFormattedBuffer        PipelineResourceFlags = 0x4
	PipelineResourceFlagRuntimeArray           PipelineResourceFlags = 0x8
	PipelineResourceFlagGeneralInputAttachment PipelineResourceFlags = 0x10
)

type BindShaderResourcesFlags uint32

const (
	BindShaderResourcesUpdateStatic      BindShaderResourcesFlags = 0x1
	BindShaderResourcesUpdateMutable     BindShaderResourcesFlags = 0x2
	BindShaderResourcesUpdateDynamic     BindShaderResourcesFlags = 0x4
	BindShaderResourcesUpdateAll         BindShaderResourcesFlags = 0x7
	BindShaderResourcesKeepExisting      BindShaderResourcesFlags = 0x8
	BindShaderResourcesVerifyAllResolved BindShaderResourcesFlags = 0x10
	BindShaderResourcesAllowOverwrite    BindShaderResourcesFlags = 0x20
)

type SetShaderResourceFlags uint32

const (
	SetShaderResourceNone           SetShaderResourceFlags = 0x0
	SetShaderResourceAllowOverwrite SetShaderResourceFlags = 0x1
)

type ShaderResourceVariableTypeFlags uint32

const (
	ShaderResourceVariableTypeFlagNone    ShaderResourceVariableTypeFlags = 0x0
	ShaderResourceVariableTypeFlagStatic  ShaderResourceVariableTypeFlags = 0x1
	ShaderResourceVariableTypeFlagMutable ShaderResourceVariableTypeFlags = 0x2
	ShaderResourceVariableTypeFlagDynamic ShaderResourceVariableTypeFlags = 0x4
	ShaderResourceVariableTypeFlagMutDyn  ShaderResourceVariableTypeFlags = 0x6
	ShaderResourceVariableTypeFlagAll     ShaderResourceVariableTypeFlags = 0x7
)
