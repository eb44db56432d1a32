package driver

type PipelineType uint8

const (
	PipelineTypeGraphics PipelineType = iota
	PipelineTypeCompute
	PipelineTypeMesh
	PipelineTypeRayTracing
	PipelineTypeTile
	PipelineTypeCount
)

type PipelineStateStatus uint32

const (
	PipelineStateStatusUninitialized PipelineStateStatus = iota
	PipelineStateStatusCompiling
	PipelineStateStatusReady
	PipelineStateStatusFailed
	PipelineStateStatusCount
)

type PrimitiveTopology uint8

const (
	PrimitiveTopologyUndefined PrimitiveTopology = iota
	PrimitiveTopologyTriangleList
	PrimitiveTopologyTriangleStrip
	PrimitiveTopologyPointList
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyTriangleListAdj
	PrimitiveTopologyTriangleStripAdj
	PrimitiveTopologyLineListAdj
	PrimitiveTopologyLineStripAdj
	PrimitiveTopology1ControlPointPatchlist
	PrimitiveTopology2ControlPointPatchlist
	PrimitiveTopology3ControlPointPatchlist
	PrimitiveTopology4ControlPointPatchlist
	PrimitiveTopology5ControlPointPatchlist
	PrimitiveTopology6ControlPointPatchlist
	PrimitiveTopology7ControlPointPatchlist
	PrimitiveTopology8ControlPointPatchlist
	PrimitiveTopology9ControlPointPatchlist
	PrimitiveTopology10ControlPointPatchlist
	PrimitiveTopology11ControlPointPatchlist
	PrimitiveTopology12ControlPointPatchlist
	PrimitiveTopology13ControlPointPatchlist
	PrimitiveTopology14ControlPointPatchlist
	PrimitiveTopology15ControlPointPatchlist
	PrimitiveTopology16ControlPointPatchlist
	PrimitiveTopology17ControlPointPatchlist
	PrimitiveTopology18ControlPointPatchlist
	PrimitiveTopology19ControlPointPatchlist
	PrimitiveTopology20ControlPointPatchlist
	PrimitiveTopology21ControlPointPatchlist
	PrimitiveTopology22ControlPointPatchlist
	PrimitiveTopology23ControlPointPatchlist
	PrimitiveTopology24ControlPointPatchlist
	PrimitiveTopology25ControlPointPatchlist
	PrimitiveTopology26ControlPointPatchlist
	PrimitiveTopology27ControlPointPatchlist
	PrimitiveTopology28ControlPointPatchlist
	PrimitiveTopology29ControlPointPatchlist
	PrimitiveTopology30ControlPointPatchlist
	PrimitiveTopology31ControlPointPatchlist
	PrimitiveTopology32ControlPointPatchlist
	PrimitiveTopologyCount
)

type FillMode int8

const (
	FillModeUndefined FillMode = iota
	FillModeWireframe
	FillModeSolid
	FillModeCount
)

type CullMode int8

const (
	CullModeUndefined CullMode = iota
	CullModeNone
	CullModeFront
	CullModeBack
	CullModeCount
)

type BlendFactor int8

const (
	BlendFactorUndefined BlendFactor = iota
	BlendFactorZero
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorInvSrcColor
	BlendFactorSrcAlpha
	BlendFactorInvSrcAlpha
	BlendFactorDestAlpha
	BlendFactorInvDestAlpha
	BlendFactorDestColor
	BlendFactorInvDestColor
	BlendFactorSrcAlphaSat
	BlendFactorBlendFactor
	BlendFactorInvBlendFactor
	BlendFactorSRC1Color
	BlendFactorInvSRC1Color
	BlendFactorSRC1Alpha
	BlendFactorInvSRC1Alpha
	BlendFactorCount
)

type BlendOperation int8

const (
	BlendOperationUndefined BlendOperation = iota
	BlendOperationAdd
	BlendOperationSubtract
	BlendOperationRevSubtract
	BlendOperationMin
	BlendOperationMax
	BlendOperationCount
)

type LogicOperation int8

const (
	LogicOpClear LogicOperation = iota
	LogicOpSet
	LogicOpCopy
	LogicOpCopyInverted
	LogicOpNoop
	LogicOpInvert
	LogicOpAnd
	LogicOpNand
	LogicOpOr
	LogicOpNor
	LogicOpXor
	LogicOpEquiv
	LogicOpAndReverse
	LogicOpAndInverted
	LogicOpOrReverse
	LogicOpOrInverted
	LogicOperationCount
)

type StencilOp int8

const (
	StencilOpUndefined StencilOp = iota
	StencilOpKeep
	StencilOpZero
	StencilOpReplace
	StencilOpIncrSat
	StencilOpDecrSat
	StencilOpInvert
	StencilOpIncrWrap
	StencilOpDecrWrap
	StencilOpCount
)

type InputElementFrequency uint8

const (
	InputElementFrequencyUndefined InputElementFrequency = iota
	InputElementFrequencyPerVertex
	InputElementFrequencyPerInstance
	InputElementFrequencyCount
)

type ShadingRate uint8

const (
	ShadingRate1X1 ShadingRate = 0
	ShadingRate1X2 ShadingRate = 1
	ShadingRate1X4 ShadingRate = 2
	ShadingRate2X1 ShadingRate = 4
	ShadingRate2X2 ShadingRate = 5
	ShadingRate2X4 ShadingRate = 6
	ShadingRate4X1 ShadingRate = 8
	ShadingRate4X2 ShadingRate = 9
	ShadingRate4X4 ShadingRate = 10

	ShadingRateCount ShadingRate = 9
)

type AttachmentLoadOp uint8

const (
	AttachmentLoadOpLoad AttachmentLoadOp = iota
	AttachmentLoadOpClear
	AttachmentLoadOpDiscard
	AttachmentLoadOpCount
)

type AttachmentStoreOp uint8

const (
	AttachmentStoreOpStore AttachmentStoreOp = iota
	AttachmentStoreOpDiscard
	AttachmentStoreOpCount
)

type PSOCreateFlags uint32

const (
	PSOCreateFlagNone                           PSOCreateFlags = 0x0
	PSOCreateFlagIgnoreMissingVariables         PSOCreateFlags = 0x1
	PSOCreateFlagIgnoreMissingImmutableSamplers PSOCreateFlags = 0x2
	PSOCreateFlagDontRemapShaderResources       PSOCreateFlags = 0x4
	PSOCreateFlagAsynchronous                   PSOCreateFlags = 0x8
)

type ColorMask uint8

const (
	ColorMaskNone  ColorMask = 0x0
	ColorMaskRed   ColorMask = 0x1
	ColorMaskGreen ColorMask = 0x2
	ColorMaskBlue  ColorMask = 0x4
	ColorMaskAlpha ColorMask = 0x8
	ColorMaskRGB   ColorMask = 0x7
	ColorMaskAll   ColorMask = 0xf
)

type PipelineStageFlags uint32

const (
	PipelineStageUndefined                  PipelineStageFlags = 0x0
	PipelineStageTopOfPipe                  PipelineStageFlags = 0x1
	PipelineStageDrawIndirect               PipelineStageFlags = 0x2
	PipelineStageVertexInput                PipelineStageFlags = 0x4
	PipelineStageVertexShader               PipelineStageFlags = 0x8
	PipelineStageHullShader                 PipelineStageFlags = 0x10
	PipelineStageDomainShader               PipelineStageFlags = 0x20
	PipelineStageGeometryShader             PipelineStageFlags = 0x40
	PipelineStagePixelShader                PipelineStageFlags = 0x80
	PipelineStageEarlyFragmentTests         PipelineStageFlags = 0x100
	PipelineStageLateFragmentTests          PipelineStageFlags = 0x200
	PipelineStageRenderTarget               PipelineStageFlags = 0x400
	PipelineStageComputeShader              PipelineStageFlags = 0x800
	PipelineStageTransfer                   PipelineStageFlags = 0x1000
	PipelineStageBottomOfPipe               PipelineStageFlags = 0x2000
	PipelineStageHost                       PipelineStageFlags = 0x4000
	PipelineStageConditionalRendering       PipelineStageFlags = 0x40000
	PipelineStageAmplificationShader        PipelineStageFlags = 0x80000
	PipelineStageMeshShader                 PipelineStageFlags = 0x100000
	PipelineStageRayTracingShader           PipelineStageFlags = 0x200000
	PipelineStageShadingRateTexture         PipelineStageFlags = 0x400000
	PipelineStageFragmentDensityProcess     PipelineStageFlags = 0x800000
	PipelineStageAccelerationStructureBuild PipelineStageFlags = 0x2000000
)

type AccessFlags uint32

const (
	AccessNone                       AccessFlags = 0x0
	AccessIndirectCommandRead        AccessFlags = 0x1
	AccessIndexRead                  AccessFlags = 0x2
	AccessVertexRead                 AccessFlags = 0x4
	AccessUniformRead                AccessFlags = 0x8
	AccessInputAttachmentRead        AccessFlags = 0x10
	AccessShaderRead                 AccessFlags = 0x20
	AccessShaderWrite                AccessFlags = 0x40
	AccessRenderTargetRead           AccessFlags = 0x80
	AccessRenderTargetWrite          AccessFlags = 0x100
	AccessDepthStencilRead           AccessFlags = 0x200
	AccessDepthStencilWrite          AccessFlags = 0x400
	AccessCopySrc                    AccessFlags = 0x800
	AccessCopyDst                    AccessFlags = 0x1000
	AccessHostRead                   AccessFlags = 0x2000
	AccessHostWrite                  AccessFlags = 0x4000
	AccessMemoryRead                 AccessFlags = 0x8000
	AccessMemoryWrite                AccessFlags = 0x10000
	AccessConditionalRenderingRead   AccessFlags = 0x100000
	AccessAccelerationStructureRead  AccessFlags = 0x200000
	AccessAccelerationStructureWrite AccessFlags = 0x400000
	AccessShadingRateTextureRead     AccessFlags = 0x800000
	AccessFragmentDensityMapRead     AccessFlags = 0x1000000
)

type ShadingRateCombiner uint8

const (
	ShadingRateCombinerPassthrough ShadingRateCombiner = 0x1
	ShadingRateCombinerOverride    ShadingRateCombiner = 0x2
	ShadingRateCombinerMin         ShadingRateCombiner = 0x4
	ShadingRateCombinerMax         ShadingRateCombiner = 0x8
	ShadingRateCombinerSum         ShadingRateCombiner = 0x10
	ShadingRateCombinerMul         ShadingRateCombiner = 0x20
)

type PipelineShadingRateFlags uint8

const (
	PipelineShadingRateFlagNone         PipelineShadingRateFlags = 0x0
	PipelineShadingRateFlagPerPrimitive PipelineShadingRateFlags = 0x1
	PipelineShadingRateFlagTextureBased PipelineShadingRateFlags = 0x2
)

type PSOCacheMode uint8

const (
	PSOCacheModeLoad      PSOCacheMode = 0x1
	PSOCacheModeStore     PSOCacheMode = 0x2
	PSOCacheModeLoadStore PSOCacheMode = 0x3
)

type PSOCacheFlags uint8

const (
	PSOCacheFlagNone    PSOCacheFlags = 0x0
	PSOCacheFlagVerbose PSOCacheFlags = 0x1
)
