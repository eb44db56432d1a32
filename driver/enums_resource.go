package driver

type ValueType uint8

const (
	VtUndefined ValueType = iota
	VtInt8
	VtInt16
	VtInt32
	VtUint8
	VtUint16
	VtUint32
	VtFloat16
	VtFloat32
	VtFloat64
	ValueTypeCount
)

type Usage uint8

const (
	UsageImmutable Usage = iota
	UsageDefault
	UsageDynamic
	UsageStaging
	UsageUnified
	UsageSparse
	UsageCount
)

type BufferMode uint8

const (
	BufferModeUndefined BufferMode = iota
	BufferModeFormatted
	BufferModeStructured
	BufferModeRaw
	BufferModeCount
)

type BufferViewType uint8

const (
	BufferViewUndefined BufferViewType = iota
	BufferViewShaderResource
	BufferViewUnorderedAccess
	BufferViewTypeCount
)

type TextureViewType uint8

const (
	TextureViewUndefined TextureViewType = iota
	TextureViewShaderResource
	TextureViewRenderTarget
	TextureViewDepthStencil
	TextureViewReadOnlyDepthStencil
	TextureViewUnorderedAccess
	TextureViewShadingRate
	TextureViewTypeCount
)

type ResourceDimension uint8

const (
	ResourceDimUndefined ResourceDimension = iota
	ResourceDimBuffer
	ResourceDimTex1D
	ResourceDimTex1DArray
	ResourceDimTex2D
	ResourceDimTex2DArray
	ResourceDimTex3D
	ResourceDimTexCube
	ResourceDimTexCubeArray
	ResourceDimensionCount
)

type TextureFormat uint16

const (
	TexFormatUnknown TextureFormat = iota
	TexFormatRGBA32Typeless
	TexFormatRGBA32Float
	TexFormatRGBA32Uint
	TexFormatRGBA32Sint
	TexFormatRGB32Typeless
	TexFormatRGB32Float
	TexFormatRGB32Uint
	TexFormatRGB32Sint
	TexFormatRGBA16Typeless
	TexFormatRGBA16Float
	TexFormatRGBA16Unorm
	TexFormatRGBA16Uint
	TexFormatRGBA16Snorm
	TexFormatRGBA16Sint
	TexFormatRG32Typeless
	TexFormatRG32Float
	TexFormatRG32Uint
	TexFormatRG32Sint
	TexFormatR32G8X24Typeless
	TexFormatD32FloatS8X24Uint
	TexFormatR32FloatX8X24Typeless
	TexFormatX32TypelessG8X24Uint
	TexFormatRGB10A2Typeless
	TexFormatRGB10A2Unorm
	TexFormatRGB10A2Uint
	TexFormatR11G11B10Float
	TexFormatRGBA8Typeless
	TexFormatRGBA8Unorm
	TexFormatRGBA8UnormSRGB
	TexFormatRGBA8Uint
	TexFormatRGBA8Snorm
	TexFormatRGBA8Sint
	TexFormatRG16Typeless
	TexFormatRG16Float
	TexFormatRG16Unorm
	TexFormatRG16Uint
	TexFormatRG16Snorm
	TexFormatRG16Sint
	TexFormatR32Typeless
	TexFormatD32Float
	TexFormatR32Float
	TexFormatR32Uint
	TexFormatR32Sint
	TexFormatR24G8Typeless
	TexFormatD24UnormS8Uint
	TexFormatR24UnormX8Typeless
	TexFormatX24TypelessG8Uint
	TexFormatRG8Typeless
	TexFormatRG8Unorm
	TexFormatRG8Uint
	TexFormatRG8Snorm
	TexFormatRG8Sint
	TexFormatR16Typeless
	TexFormatR16Float
	TexFormatD16Unorm
	TexFormatR16Unorm
	TexFormatR16Uint
	TexFormatR16Snorm
	TexFormatR16Sint
	TexFormatR8Typeless
	TexFormatR8Unorm
	TexFormatR8Uint
	TexFormatR8Snorm
	TexFormatR8Sint
	TexFormatA8Unorm
	TexFormatR1Unorm
	TexFormatRGB9E5Sharedexp
	TexFormatRG8B8G8Unorm
	TexFormatG8R8G8B8Unorm
	TexFormatBC1Typeless
	TexFormatBC1Unorm
	TexFormatBC1UnormSRGB
	TexFormatBC2Typeless
	TexFormatBC2Unorm
	TexFormatBC2UnormSRGB
	TexFormatBC3Typeless
	TexFormatBC3Unorm
	TexFormatBC3UnormSRGB
	TexFormatBC4Typeless
	TexFormatBC4Unorm
	TexFormatBC4Snorm
	TexFormatBC5Typeless
	TexFormatBC5Unorm
	TexFormatBC5Snorm
	TexFormatB5G6R5Unorm
	TexFormatB5G5R5A1Unorm
	TexFormatBGRA8Unorm
	TexFormatBGRX8Unorm
	TexFormatR10G10B10XRBiasA2Unorm
	TexFormatBGRA8Typeless
	TexFormatBGRA8UnormSRGB
	TexFormatBGRX8Typeless
	TexFormatBGRX8UnormSRGB
	TexFormatBC6HTypeless
	TexFormatBC6HUF16
	TexFormatBC6HSF16
	TexFormatBC7Typeless
	TexFormatBC7Unorm
	TexFormatBC7UnormSRGB
	TexFormatETC2RGB8Unorm
	TexFormatETC2RGB8UnormSRGB
	TexFormatETC2RGB8A1Unorm
	TexFormatETC2RGB8A1UnormSRGB
	TexFormatETC2RGBA8Unorm
	TexFormatETC2RGBA8UnormSRGB
	TextureFormatCount
)

type TextureComponentSwizzle uint8

const (
	TextureComponentSwizzleIdentity TextureComponentSwizzle = iota
	TextureComponentSwizzleZero
	TextureComponentSwizzleOne
	TextureComponentSwizzleR
	TextureComponentSwizzleG
	TextureComponentSwizzleB
	TextureComponentSwizzleA
	TextureComponentSwizzleCount
)

type FilterType uint8

const (
	FilterTypeUnknown FilterType = iota
	FilterTypePoint
	FilterTypeLinear
	FilterTypeAnisotropic
	FilterTypeComparisonPoint
	FilterTypeComparisonLinear
	FilterTypeComparisonAnisotropic
	FilterTypeMinimumPoint
	FilterTypeMinimumLinear
	FilterTypeMinimumAnisotropic
	FilterTypeMaximumPoint
	FilterTypeMaximumLinear
	FilterTypeMaximumAnisotropic
	FilterTypeCount
)

type TextureAddressMode uint8

const (
	TextureAddressUnknown TextureAddressMode = iota
	TextureAddressWrap
	TextureAddressMirror
	TextureAddressClamp
	TextureAddressBorder
	TextureAddressMirrorOnce
	TextureAddressModeCount
)

type ComparisonFunction uint8

const (
	ComparisonFuncUnknown ComparisonFunction = iota
	ComparisonFuncNever
	ComparisonFuncLess
	ComparisonFuncEqual
	ComparisonFuncLessEqual
	ComparisonFuncGreater
	ComparisonFuncNotEqual
	ComparisonFuncGreaterEqual
	ComparisonFuncAlways
	ComparisonFunctionCount
)

type ComponentType uint8

const (
	ComponentTypeUndefined ComponentType = iota
	ComponentTypeFloat
	ComponentTypeSnorm
	ComponentTypeUnorm
	ComponentTypeUnormSRGB
	ComponentTypeSint
	ComponentTypeUint
	ComponentTypeDepth
	ComponentTypeDepthStencil
	ComponentTypeCompound
	ComponentTypeCompressed
	ComponentTypeCount
)

type DeviceMemoryType uint8

const (
	DeviceMemoryTypeUndefined DeviceMemoryType = iota
	DeviceMemoryTypeSparse
	DeviceMemoryTypeCount
)

type BindFlags uint32

const (
	BindNone             BindFlags = 0x0
	BindVertexBuffer     BindFlags = 0x1
	BindIndexBuffer      BindFlags = 0x2
	BindUniformBuffer    BindFlags = 0x4
	BindShaderResource   BindFlags = 0x8
	BindStreamOutput     BindFlags = 0x10
	BindRenderTarget     BindFlags = 0x20
	BindDepthStencil     BindFlags = 0x40
	BindUnorderedAccess  BindFlags = 0x80
	BindIndirectDrawArgs BindFlags = 0x100
	BindInputAttachment  BindFlags = 0x200
	BindRayTracing       BindFlags = 0x400
	BindShadingRate      BindFlags = 0x800
)

type CpuAccessFlags uint8

const (
	CpuAccessNone  CpuAccessFlags = 0x0
	CpuAccessRead  CpuAccessFlags = 0x1
	CpuAccessWrite CpuAccessFlags = 0x2
)

type MiscBufferFlags uint8

const (
	MiscBufferFlagNone           MiscBufferFlags = 0x0
	MiscBufferFlagSparseAliasing MiscBufferFlags = 0x1
)

type MiscTextureFlags uint8

const (
	MiscTextureFlagNone           MiscTextureFlags = 0x0
	MiscTextureFlagGenerateMips   MiscTextureFlags = 0x1
	MiscTextureFlagMemoryless     MiscTextureFlags = 0x2
	MiscTextureFlagSparseAliasing MiscTextureFlags = 0x4
	MiscTextureFlagSubsampled     MiscTextureFlags = 0x8
)

type UavAccessFlag uint8

const (
	UavAccessFlagUnspecified UavAccessFlag = 0x0
	UavAccessFlagRead        UavAccessFlag = 0x1
	UavAccessFlagWrite       UavAccessFlag = 0x2
	UavAccessFlagReadWrite   UavAccessFlag = 0x3
)

type TextureViewFlags uint8

const (
	TextureViewFlagNone                  TextureViewFlags = 0x0
	TextureViewFlagAllowMipMapGeneration TextureViewFlags = 0x1
)

type SamplerFlags uint8

const (
	SamplerFlagNone                           SamplerFlags = 0x0
	SamplerFlagSubsampled                     SamplerFlags = 0x1
	SamplerFlagSubsampledCoarseReconstruction SamplerFlags = 0x2
)

type MemoryProperties uint8

const (
	MemoryPropertyUnknown      MemoryProperties = 0x0
	MemoryPropertyHostCoherent MemoryProperties = 0x1
)

type ResourceState uint32

const (
	ResourceStateUnknown          ResourceState = 0x0
	ResourceStateUndefined        ResourceState = 0x1
	ResourceStateVertexBuffer     ResourceState = 0x2
	ResourceStateConstantBuffer   ResourceState = 0x4
	ResourceStateIndexBuffer      ResourceState = 0x8
	ResourceStateRenderTarget     ResourceState = 0x10
	ResourceStateUnorderedAccess  ResourceState = 0x20
	ResourceStateDepthWrite       ResourceState = 0x40
	ResourceStateDepthRead        ResourceState = 0x80
	ResourceStateShaderResource   ResourceState = 0x100
	ResourceStateStreamOut        ResourceState = 0x200
	ResourceStateIndirectArgument ResourceState = 0x400
	ResourceStateCopyDest         ResourceState = 0x800
	ResourceStateCopySource       ResourceState = 0x1000
	ResourceStateResolveDest      ResourceState = 0x2000
	ResourceStateResolveSource    ResourceState = 0x4000
	ResourceStateInputAttachment  ResourceState = 0x8000
	ResourceStatePresent          ResourceState = 0x10000
	ResourceStateBuildASRead      ResourceState = 0x20000
	ResourceStateBuildASWrite     ResourceState = 0x40000
	ResourceStateRayTracing       ResourceState = 0x80000
	ResourceStateCommon           ResourceState = 0x100000
	ResourceStateShadingRate      ResourceState = 0x200000
	ResourceStateGenericRead      ResourceState = 0x150e
)
