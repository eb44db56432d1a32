package driver

import "unsafe"

// DeviceObjectAttribs is the common header of every device object description.
type DeviceObjectAttribs struct {
	Name *byte
}

type BufferDesc struct {
	DeviceObjectAttribs
	Size                 uint64
	BindFlags            BindFlags
	Usage                Usage
	CPUAccessFlags       CpuAccessFlags
	Mode                 BufferMode
	MiscFlags            MiscBufferFlags
	ElementByteStride    uint32
	ImmediateContextMask uint64
}

type BufferData struct {
	Data     unsafe.Pointer
	DataSize uint64
	Context  Handle
}

type BufferFormat struct {
	ValueType     ValueType
	NumComponents uint8
	IsNormalized  bool
}

type BufferViewDesc struct {
	DeviceObjectAttribs
	ViewType   BufferViewType
	Format     BufferFormat
	ByteOffset uint64
	ByteWidth  uint64
}

type DepthStencilClearValue struct {
	Depth   float32
	Stencil uint8
}

type OptimizedClearValue struct {
	Format       TextureFormat
	Color        [4]float32
	DepthStencil DepthStencilClearValue
}

// TextureDesc.ArraySizeOrDepth holds the array size of array textures and the depth
// of 3D textures.
type TextureDesc struct {
	DeviceObjectAttribs
	Type                 ResourceDimension
	Width                uint32
	Height               uint32
	ArraySizeOrDepth     uint32
	Format               TextureFormat
	MipLevels            uint32
	SampleCount          uint32
	BindFlags            BindFlags
	Usage                Usage
	CPUAccessFlags       CpuAccessFlags
	MiscFlags            MiscTextureFlags
	ClearValue           OptimizedClearValue
	ImmediateContextMask uint64
}

type TextureSubResData struct {
	Data        unsafe.Pointer
	SrcBuffer   Handle
	SrcOffset   uint64
	Stride      uint64
	DepthStride uint64
}

type TextureData struct {
	SubResources    *TextureSubResData
	NumSubresources uint32
	Context         Handle
}

type TextureComponentMapping struct {
	R TextureComponentSwizzle
	G TextureComponentSwizzle
	B TextureComponentSwizzle
	A TextureComponentSwizzle
}

type TextureViewDesc struct {
	DeviceObjectAttribs
	ViewType                    TextureViewType
	TextureDim                  ResourceDimension
	Format                      TextureFormat
	MostDetailedMip             uint32
	NumMipLevels                uint32
	FirstArraySliceOrDepthSlice uint32
	NumArraySlicesOrDepthSlices uint32
	AccessFlags                 UavAccessFlag
	Flags                       TextureViewFlags
	Swizzle                     TextureComponentMapping
}

type SamplerDesc struct {
	DeviceObjectAttribs
	MinFilter          FilterType
	MagFilter          FilterType
	MipFilter          FilterType
	AddressU           TextureAddressMode
	AddressV           TextureAddressMode
	AddressW           TextureAddressMode
	Flags              SamplerFlags
	UnnormalizedCoords bool
	MipLODBias         float32
	MaxAnisotropy      uint32
	ComparisonFunc     ComparisonFunction
	BorderColor        [4]float32
	MinLOD             float32
	MaxLOD             float32
}

type DeviceMemoryDesc struct {
	DeviceObjectAttribs
	Type                 DeviceMemoryType
	PageSize             uint64
	ImmediateContextMask uint64
}

type DeviceMemoryCreateInfo struct {
	Desc                DeviceMemoryDesc
	InitialSize         uint64
	CompatibleResources *Handle
	NumResources        uint32
}

type FenceDesc struct {
	DeviceObjectAttribs
	Type FenceType
}

type QueryDesc struct {
	DeviceObjectAttribs
	Type QueryType
}

type QueryDataOcclusion struct {
	Type       QueryType
	NumSamples uint64
}

type QueryDataBinaryOcclusion struct {
	Type            QueryType
	AnySamplePassed bool
}

type QueryDataTimestamp struct {
	Type      QueryType
	Counter   uint64
	Frequency uint64
}

type QueryDataPipelineStatistics struct {
	Type                QueryType
	InputVertices       uint64
	InputPrimitives     uint64
	GSInvocations       uint64
	GSPrimitives        uint64
	ClippingInvocations uint64
	ClippingPrimitives  uint64
	VSInvocations       uint64
	PSInvocations       uint64
	HSInvocations       uint64
	DSInvocations       uint64
	CSInvocations       uint64
}

type QueryDataDuration struct {
	Type      QueryType
	Duration  uint64
	Frequency uint64
}

type ResourceMappingEntry struct {
	Name       *byte
	Object     Handle
	ArrayIndex uint32
}

type ResourceMappingCreateInfo struct {
	Entries    *ResourceMappingEntry
	NumEntries uint32
}

type PipelineStateCacheDesc struct {
	DeviceObjectAttribs
	Mode  PSOCacheMode
	Flags PSOCacheFlags
}

type PipelineStateCacheCreateInfo struct {
	Desc          PipelineStateCacheDesc
	CacheData     unsafe.Pointer
	CacheDataSize uint32
}

type TextureFormatInfo struct {
	Name          *byte
	Format        TextureFormat
	ComponentSize uint8
	NumComponents uint8
	ComponentType ComponentType
	IsTypeless    bool
	BlockWidth    uint8
	BlockHeight   uint8
}

type TextureFormatInfoExt struct {
	TextureFormatInfo
	BindFlags    BindFlags
	Dimensions   uint32
	SampleCounts uint32
	Filterable   bool
}
