package driver

import (
	"strconv"
	"unsafe"
)

type Version struct {
	Major uint32
	Minor uint32
}

func (v Version) String() string {
	return strconv.FormatUint(uint64(v.Major), 10) + "." + strconv.FormatUint(uint64(v.Minor), 10)
}

// DeviceFeatures holds one DeviceFeatureState per optional engine feature.
type DeviceFeatures struct {
	SeparablePrograms                 DeviceFeatureState
	ShaderResourceQueries             DeviceFeatureState
	WireframeFill                     DeviceFeatureState
	MultithreadedResourceCreation     DeviceFeatureState
	ComputeShaders                    DeviceFeatureState
	GeometryShaders                   DeviceFeatureState
	Tessellation                      DeviceFeatureState
	MeshShaders                       DeviceFeatureState
	RayTracing                        DeviceFeatureState
	BindlessResources                 DeviceFeatureState
	OcclusionQueries                  DeviceFeatureState
	BinaryOcclusionQueries            DeviceFeatureState
	TimestampQueries                  DeviceFeatureState
	PipelineStatisticsQueries         DeviceFeatureState
	DurationQueries                   DeviceFeatureState
	DepthBiasClamp                    DeviceFeatureState
	DepthClamp                        DeviceFeatureState
	IndependentBlend                  DeviceFeatureState
	DualSourceBlend                   DeviceFeatureState
	MultiViewport                     DeviceFeatureState
	TextureCompressionBC              DeviceFeatureState
	TextureCompressionETC2            DeviceFeatureState
	VertexPipelineUAVWritesAndAtomics DeviceFeatureState
	PixelUAVWritesAndAtomics          DeviceFeatureState
	TextureUAVExtendedFormats         DeviceFeatureState
	ShaderFloat16                     DeviceFeatureState
	ResourceBuffer16BitAccess         DeviceFeatureState
	UniformBuffer16BitAccess          DeviceFeatureState
	ShaderInputOutput16               DeviceFeatureState
	ShaderInt8                        DeviceFeatureState
	ResourceBuffer8BitAccess          DeviceFeatureState
	UniformBuffer8BitAccess           DeviceFeatureState
	ShaderResourceStaticArrays        DeviceFeatureState
	ShaderResourceRuntimeArrays       DeviceFeatureState
	WaveOp                            DeviceFeatureState
	InstanceDataStepRate              DeviceFeatureState
	NativeFence                       DeviceFeatureState
	TileShaders                       DeviceFeatureState
	TransferQueueTimestampQueries     DeviceFeatureState
	VariableRateShading               DeviceFeatureState
	SparseResources                   DeviceFeatureState
	SubpassFramebufferFetch           DeviceFeatureState
	TextureComponentSwizzle           DeviceFeatureState
	TextureSubresourceViews           DeviceFeatureState
	NativeMultiDraw                   DeviceFeatureState
	AsyncShaderCompilation            DeviceFeatureState
	FormattedBuffers                  DeviceFeatureState
}

type CommandQueueInfo struct {
	QueueType              CommandQueueType
	MaxDeviceContexts      uint32
	TextureCopyGranularity [3]uint32
}

type NDCAttribs struct {
	MinZ          float32
	ZtoDepthScale float32
	YtoVScale     float32
}

type RenderDeviceShaderVersionInfo struct {
	HLSL   ShaderVersion
	GLSL   ShaderVersion
	GLESSL ShaderVersion
	MSL    ShaderVersion
}

type RenderDeviceInfo struct {
	Type             RenderDeviceType
	APIVersion       Version
	Features         DeviceFeatures
	NDC              NDCAttribs
	MaxShaderVersion RenderDeviceShaderVersionInfo
}

type AdapterMemoryInfo struct {
	LocalMemory                uint64
	HostVisibleMemory          uint64
	UnifiedMemory              uint64
	MaxMemoryAllocation        uint64
	UnifiedMemoryCPUAccess     CpuAccessFlags
	MemorylessTextureBindFlags BindFlags
}

type RayTracingProperties struct {
	MaxRecursionDepth        uint32
	ShaderGroupHandleSize    uint32
	MaxShaderRecordStride    uint32
	ShaderGroupBaseAlignment uint32
	MaxRayGenThreads         uint32
	MaxInstancesPerTLAS      uint32
	MaxPrimitivesPerBLAS     uint32
	MaxGeometriesPerBLAS     uint32
	VertexBufferAlignment    uint32
	IndexBufferAlignment     uint32
	TransformBufferAlignment uint32
	BoxBufferAlignment       uint32
	ScratchBufferAlignment   uint32
	InstanceBufferAlignment  uint32
	CapFlags                 uint8
}

type WaveOpProperties struct {
	MinSize         uint32
	MaxSize         uint32
	SupportedStages ShaderType
	Features        uint32
}

type BufferProperties struct {
	ConstantBufferOffsetAlignment   uint32
	StructuredBufferOffsetAlignment uint32
}

type TextureProperties struct {
	MaxTexture1DDimension      uint32
	MaxTexture1DArraySlices    uint32
	MaxTexture2DDimension      uint32
	MaxTexture2DArraySlices    uint32
	MaxTexture3DDimension      uint32
	MaxTextureCubeDimension    uint32
	Texture2DMSSupported       bool
	Texture2DMSArraySupported  bool
	TextureViewSupported       bool
	CubemapArraysSupported     bool
	TextureView2DOn3DSupported bool
}

type SamplerProperties struct {
	BorderSamplingModeSupported bool
	MaxAnisotropy               uint8
	LODBiasSupported            bool
}

type MeshShaderProperties struct {
	MaxThreadGroupCountX     uint32
	MaxThreadGroupCountY     uint32
	MaxThreadGroupCountZ     uint32
	MaxThreadGroupTotalCount uint32
}

type ShadingRateMode struct {
	Rate       ShadingRate
	SampleBits uint32
}

type ShadingRateProperties struct {
	ShadingRates                 [MaxShadingRates]ShadingRateMode
	NumShadingRates              uint8
	CapFlags                     uint32
	Combiners                    ShadingRateCombiner
	Format                       uint8
	ShadingRateTextureAccess     uint8
	BindFlags                    BindFlags
	MinTileSize                  [2]uint32
	MaxTileSize                  [2]uint32
	MaxSubsampledArraySliceCount uint32
}

type ComputeShaderProperties struct {
	SharedMemorySize          uint32
	MaxThreadGroupInvocations uint32
	MaxThreadGroupSizeX       uint32
	MaxThreadGroupSizeY       uint32
	MaxThreadGroupSizeZ       uint32
	MaxThreadGroupCountX      uint32
	MaxThreadGroupCountY      uint32
	MaxThreadGroupCountZ      uint32
}

type DrawCommandProperties struct {
	CapFlags             uint32
	MaxIndexValue        uint32
	MaxDrawIndirectCount uint32
}

// SparseResourceProperties is carried for layout only.
type SparseResourceProperties struct {
	AddressSpaceSize  uint64
	ResourceSpaceSize uint64
	CapFlags          uint32
	StandardBlockSize uint32
	BufferBindFlags   BindFlags
}

type GraphicsAdapterInfo struct {
	Description     [MaxAdapterDescSize]byte
	Type            AdapterType
	Vendor          AdapterVendor
	VendorID        uint32
	DeviceID        uint32
	NumOutputs      uint32
	Memory          AdapterMemoryInfo
	RayTracing      RayTracingProperties
	WaveOp          WaveOpProperties
	Buffer          BufferProperties
	Texture         TextureProperties
	Sampler         SamplerProperties
	MeshShader      MeshShaderProperties
	ShadingRate     ShadingRateProperties
	ComputeShader   ComputeShaderProperties
	DrawCommand     DrawCommandProperties
	SparseResources SparseResourceProperties
	Features        DeviceFeatures
	Queues          [MaxCommandQueues]CommandQueueInfo
	NumQueues       uint32
}

type ImmediateContextCreateInfo struct {
	Name     *byte
	QueueID  uint8
	Priority QueuePriority
}

// DefaultAdapterID selects the engine's preferred adapter.
const DefaultAdapterID = 0xFFFFFFFF

type EngineCreateInfo struct {
	EngineAPIVersion                 int32
	AdapterID                        uint32
	GraphicsAPIVersion               Version
	ImmediateContextInfo             *ImmediateContextCreateInfo
	NumImmediateContexts             uint32
	NumDeferredContexts              uint32
	Features                         DeviceFeatures
	EnableValidation                 bool
	ValidationFlags                  ValidationFlags
	RawMemAllocator                  Handle
	AsyncShaderCompilationThreadPool Handle
	NumAsyncShaderCompilationThreads uint32
	XRAttribs                        unsafe.Pointer
}

type VulkanDescriptorPoolSize struct {
	MaxDescriptorSets                uint32
	NumSeparateSamplerDescriptors    uint32
	NumCombinedSamplerDescriptors    uint32
	NumSampledImageDescriptors       uint32
	NumStorageImageDescriptors       uint32
	NumUniformBufferDescriptors      uint32
	NumStorageBufferDescriptors      uint32
	NumUniformTexelBufferDescriptors uint32
	NumStorageTexelBufferDescriptors uint32
	NumInputAttachmentDescriptors    uint32
	NumAccelStructDescriptors        uint32
}

type EngineVkCreateInfo struct {
	EngineCreateInfo
	InstanceLayerCount           uint32
	InstanceLayerNames           **byte
	InstanceExtensionCount       uint32
	InstanceExtensionNames       **byte
	VkAllocator                  unsafe.Pointer
	DeviceExtensionCount         uint32
	DeviceExtensionNames         **byte
	DeviceExtensionFeatures      unsafe.Pointer
	IgnoreDebugMessageCount      uint32
	IgnoreDebugMessageNames      **byte
	MainDescriptorPoolSize       VulkanDescriptorPoolSize
	DynamicDescriptorPoolSize    VulkanDescriptorPoolSize
	DeviceLocalMemoryPageSize    uint32
	HostVisibleMemoryPageSize    uint32
	DeviceLocalMemoryReserveSize uint32
	HostVisibleMemoryReserveSize uint32
	UploadHeapPageSize           uint32
	DynamicHeapSize              uint32
	DynamicHeapPageSize          uint32
	QueryPoolSizes               [QueryTypeCount]uint32
	DxCompilerPath               *byte
}

type EngineD3D12CreateInfo struct {
	EngineCreateInfo
	D3D12DllName                         *byte
	CPUDescriptorHeapAllocationSize      [4]uint32
	GPUDescriptorHeapSize                [2]uint32
	GPUDescriptorHeapDynamicSize         [2]uint32
	DynamicDescriptorAllocationChunkSize [2]uint32
	DynamicHeapPageSize                  uint32
	NumDynamicHeapPagesToReserve         uint32
	QueryPoolSizes                       [QueryTypeCount]uint32
	HLSLCompiler                         ShaderCompiler
	DxCompilerPath                       *byte
}

type EngineD3D11CreateInfo struct {
	EngineCreateInfo
	D3D11ValidationFlags uint32
}

type EngineGLCreateInfo struct {
	EngineCreateInfo
	Window               NativeWindow
	ZeroToOneNDZ         bool
	PreferredAdapterType AdapterType
}

type SwapChainDesc struct {
	Width               uint32
	Height              uint32
	ColorBufferFormat   TextureFormat
	DepthBufferFormat   TextureFormat
	Usage               SwapChainUsageFlags
	PreTransform        SurfaceTransform
	BufferCount         uint32
	DefaultDepthValue   float32
	DefaultStencilValue uint8
	IsPrimary           bool
}

type FullScreenModeDesc struct {
	Fullscreen             bool
	RefreshRateNumerator   uint32
	RefreshRateDenominator uint32
	Scaling                ScalingMode
	ScanlineOrder          ScanlineOrder
}

type DisplayModeAttribs struct {
	Width                  uint32
	Height                 uint32
	Format                 TextureFormat
	RefreshRateNumerator   uint32
	RefreshRateDenominator uint32
	Scaling                ScalingMode
	ScanlineOrder          ScanlineOrder
}
