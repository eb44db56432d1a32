package diligent

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/diligent/driver"
)

// DefaultAdapterID lets the engine choose the adapter.
const DefaultAdapterID uint32 = driver.DefaultAdapterID

type (
	// Version is a graphics API or engine version.
	Version = driver.Version
	// NativeWindow identifies the OS window a swap chain presents to. Its fields are
	// platform specific.
	NativeWindow = driver.NativeWindow

	NDCAttribs               = driver.NDCAttribs
	VulkanDescriptorPoolSize = driver.VulkanDescriptorPoolSize
	RayTracingProperties     = driver.RayTracingProperties
	BufferProperties         = driver.BufferProperties
	TextureProperties        = driver.TextureProperties
	SamplerProperties        = driver.SamplerProperties
	MeshShaderProperties     = driver.MeshShaderProperties
	ComputeShaderProperties  = driver.ComputeShaderProperties
	DrawCommandProperties    = driver.DrawCommandProperties
)

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

var deviceFeatureFields = [...]struct {
	name   string
	field  func(*DeviceFeatures) *DeviceFeatureState
	native func(*driver.DeviceFeatures) *driver.DeviceFeatureState
}{
	{"SeparablePrograms", func(f *DeviceFeatures) *DeviceFeatureState { return &f.SeparablePrograms }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.SeparablePrograms }},
	{"ShaderResourceQueries", func(f *DeviceFeatures) *DeviceFeatureState { return &f.ShaderResourceQueries }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.ShaderResourceQueries }},
	{"WireframeFill", func(f *DeviceFeatures) *DeviceFeatureState { return &f.WireframeFill }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.WireframeFill }},
	{"MultithreadedResourceCreation", func(f *DeviceFeatures) *DeviceFeatureState { return &f.MultithreadedResourceCreation }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.MultithreadedResourceCreation }},
	{"ComputeShaders", func(f *DeviceFeatures) *DeviceFeatureState { return &f.ComputeShaders }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.ComputeShaders }},
	{"GeometryShaders", func(f *DeviceFeatures) *DeviceFeatureState { return &f.GeometryShaders }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.GeometryShaders }},
	{"Tessellation", func(f *DeviceFeatures) *DeviceFeatureState { return &f.Tessellation }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.Tessellation }},
	{"MeshShaders", func(f *DeviceFeatures) *DeviceFeatureState { return &f.MeshShaders }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.MeshShaders }},
	{"RayTracing", func(f *DeviceFeatures) *DeviceFeatureState { return &f.RayTracing }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.RayTracing }},
	{"BindlessResources", func(f *DeviceFeatures) *DeviceFeatureState { return &f.BindlessResources }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.BindlessResources }},
	{"OcclusionQueries", func(f *DeviceFeatures) *DeviceFeatureState { return &f.OcclusionQueries }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.OcclusionQueries }},
	{"BinaryOcclusionQueries", func(f *DeviceFeatures) *DeviceFeatureState { return &f.BinaryOcclusionQueries }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.BinaryOcclusionQueries }},
	{"TimestampQueries", func(f *DeviceFeatures) *DeviceFeatureState { return &f.TimestampQueries }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.TimestampQueries }},
	{"PipelineStatisticsQueries", func(f *DeviceFeatures) *DeviceFeatureState { return &f.PipelineStatisticsQueries }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.PipelineStatisticsQueries }},
	{"DurationQueries", func(f *DeviceFeatures) *DeviceFeatureState { return &f.DurationQueries }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.DurationQueries }},
	{"DepthBiasClamp", func(f *DeviceFeatures) *DeviceFeatureState { return &f.DepthBiasClamp }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.DepthBiasClamp }},
	{"DepthClamp", func(f *DeviceFeatures) *DeviceFeatureState { return &f.DepthClamp }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.DepthClamp }},
	{"IndependentBlend", func(f *DeviceFeatures) *DeviceFeatureState { return &f.IndependentBlend }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.IndependentBlend }},
	{"DualSourceBlend", func(f *DeviceFeatures) *DeviceFeatureState { return &f.DualSourceBlend }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.DualSourceBlend }},
	{"MultiViewport", func(f *DeviceFeatures) *DeviceFeatureState { return &f.MultiViewport }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.MultiViewport }},
	{"TextureCompressionBC", func(f *DeviceFeatures) *DeviceFeatureState { return &f.TextureCompressionBC }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.TextureCompressionBC }},
	{"TextureCompressionETC2", func(f *DeviceFeatures) *DeviceFeatureState { return &f.TextureCompressionETC2 }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.TextureCompressionETC2 }},
	{"VertexPipelineUAVWritesAndAtomics", func(f *DeviceFeatures) *DeviceFeatureState { return &f.VertexPipelineUAVWritesAndAtomics }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.VertexPipelineUAVWritesAndAtomics }},
	{"PixelUAVWritesAndAtomics", func(f *DeviceFeatures) *DeviceFeatureState { return &f.PixelUAVWritesAndAtomics }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.PixelUAVWritesAndAtomics }},
	{"TextureUAVExtendedFormats", func(f *DeviceFeatures) *DeviceFeatureState { return &f.TextureUAVExtendedFormats }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.TextureUAVExtendedFormats }},
	{"ShaderFloat16", func(f *DeviceFeatures) *DeviceFeatureState { return &f.ShaderFloat16 }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.ShaderFloat16 }},
	{"ResourceBuffer16BitAccess", func(f *DeviceFeatures) *DeviceFeatureState { return &f.ResourceBuffer16BitAccess }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.ResourceBuffer16BitAccess }},
	{"UniformBuffer16BitAccess", func(f *DeviceFeatures) *DeviceFeatureState { return &f.UniformBuffer16BitAccess }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.UniformBuffer16BitAccess }},
	{"ShaderInputOutput16", func(f *DeviceFeatures) *DeviceFeatureState { return &f.ShaderInputOutput16 }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.ShaderInputOutput16 }},
	{"ShaderInt8", func(f *DeviceFeatures) *DeviceFeatureState { return &f.ShaderInt8 }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.ShaderInt8 }},
	{"ResourceBuffer8BitAccess", func(f *DeviceFeatures) *DeviceFeatureState { return &f.ResourceBuffer8BitAccess }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.ResourceBuffer8BitAccess }},
	{"UniformBuffer8BitAccess", func(f *DeviceFeatures) *DeviceFeatureState { return &f.UniformBuffer8BitAccess }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.UniformBuffer8BitAccess }},
	{"ShaderResourceStaticArrays", func(f *DeviceFeatures) *DeviceFeatureState { return &f.ShaderResourceStaticArrays }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.ShaderResourceStaticArrays }},
	{"ShaderResourceRuntimeArrays", func(f *DeviceFeatures) *DeviceFeatureState { return &f.ShaderResourceRuntimeArrays }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.ShaderResourceRuntimeArrays }},
	{"WaveOp", func(f *DeviceFeatures) *DeviceFeatureState { return &f.WaveOp }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.WaveOp }},
	{"InstanceDataStepRate", func(f *DeviceFeatures) *DeviceFeatureState { return &f.InstanceDataStepRate }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.InstanceDataStepRate }},
	{"NativeFence", func(f *DeviceFeatures) *DeviceFeatureState { return &f.NativeFence }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.NativeFence }},
	{"TileShaders", func(f *DeviceFeatures) *DeviceFeatureState { return &f.TileShaders }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.TileShaders }},
	{"TransferQueueTimestampQueries", func(f *DeviceFeatures) *DeviceFeatureState { return &f.TransferQueueTimestampQueries }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.TransferQueueTimestampQueries }},
	{"VariableRateShading", func(f *DeviceFeatures) *DeviceFeatureState { return &f.VariableRateShading }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.VariableRateShading }},
	{"SparseResources", func(f *DeviceFeatures) *DeviceFeatureState { return &f.SparseResources }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.SparseResources }},
	{"SubpassFramebufferFetch", func(f *DeviceFeatures) *DeviceFeatureState { return &f.SubpassFramebufferFetch }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.SubpassFramebufferFetch }},
	{"TextureComponentSwizzle", func(f *DeviceFeatures) *DeviceFeatureState { return &f.TextureComponentSwizzle }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.TextureComponentSwizzle }},
	{"TextureSubresourceViews", func(f *DeviceFeatures) *DeviceFeatureState { return &f.TextureSubresourceViews }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.TextureSubresourceViews }},
	{"NativeMultiDraw", func(f *DeviceFeatures) *DeviceFeatureState { return &f.NativeMultiDraw }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.NativeMultiDraw }},
	{"AsyncShaderCompilation", func(f *DeviceFeatures) *DeviceFeatureState { return &f.AsyncShaderCompilation }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.AsyncShaderCompilation }},
	{"FormattedBuffers", func(f *DeviceFeatures) *DeviceFeatureState { return &f.FormattedBuffers }, func(f *driver.DeviceFeatures) *driver.DeviceFeatureState { return &f.FormattedBuffers }},
}

// NewDeviceFeatures returns features that all have the given state.
func NewDeviceFeatures(state DeviceFeatureState) DeviceFeatures {
	var f DeviceFeatures
	for _, field := range deviceFeatureFields {
		*field.field(&f) = state
	}
	return f
}

// Set changes the feature called name. Names match the field names, ignoring case.
func (f *DeviceFeatures) Set(name string, state DeviceFeatureState) error {
	for _, field := range deviceFeatureFields {
		if strings.EqualFold(field.name, name) {
			*field.field(f) = state
			return nil
		}
	}
	return errors.Newf("unknown device feature '%s'", name)
}

// Each calls fn for every feature in declaration order.
func (f *DeviceFeatures) Each(fn func(name string, state DeviceFeatureState)) {
	for _, field := range deviceFeatureFields {
		fn(field.name, *field.field(f))
	}
}

func (f *DeviceFeatures) marshal() driver.DeviceFeatures {
	var native driver.DeviceFeatures
	for _, field := range deviceFeatureFields {
		*field.native(&native) = field.field(f).native()
	}
	return native
}

func deviceFeaturesFromNative(n *driver.DeviceFeatures) DeviceFeatures {
	var f DeviceFeatures
	for _, field := range deviceFeatureFields {
		*field.field(&f) = deviceFeatureStateFromNative(*field.native(n))
	}
	return f
}

type CommandQueueInfo struct {
	QueueType              CommandQueueType
	MaxDeviceContexts      uint32
	TextureCopyGranularity [3]uint32
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

// IsVulkan and its siblings report the backend the device was created with.
func (i *RenderDeviceInfo) IsVulkan() bool { return i.Type == RenderDeviceTypeVulkan }
func (i *RenderDeviceInfo) IsD3D12() bool  { return i.Type == RenderDeviceTypeD3D12 }
func (i *RenderDeviceInfo) IsD3D11() bool  { return i.Type == RenderDeviceTypeD3D11 }
func (i *RenderDeviceInfo) IsGL() bool {
	return i.Type == RenderDeviceTypeGL || i.Type == RenderDeviceTypeGLES
}

func renderDeviceInfoFromNative(n *driver.RenderDeviceInfo) RenderDeviceInfo {
	return RenderDeviceInfo{
		Type:       renderDeviceTypeFromNative(n.Type),
		APIVersion: n.APIVersion,
		Features:   deviceFeaturesFromNative(&n.Features),
		NDC:        n.NDC,
		MaxShaderVersion: RenderDeviceShaderVersionInfo{
			HLSL:   shaderVersionFromNative(n.MaxShaderVersion.HLSL),
			GLSL:   shaderVersionFromNative(n.MaxShaderVersion.GLSL),
			GLESSL: shaderVersionFromNative(n.MaxShaderVersion.GLESSL),
			MSL:    shaderVersionFromNative(n.MaxShaderVersion.MSL),
		},
	}
}

type AdapterMemoryInfo struct {
	LocalMemory                uint64
	HostVisibleMemory          uint64
	UnifiedMemory              uint64
	MaxMemoryAllocation        uint64
	UnifiedMemoryCPUAccess     CpuAccessFlags
	MemorylessTextureBindFlags BindFlags
}

type WaveOpProperties struct {
	MinSize         uint32
	MaxSize         uint32
	SupportedStages ShaderType
	Features        uint32
}

type ShadingRateMode struct {
	Rate       ShadingRate
	SampleBits uint32
}

type ShadingRateProperties struct {
	ShadingRates                 []ShadingRateMode
	CapFlags                     uint32
	Combiners                    ShadingRateCombiner
	Format                       uint8
	ShadingRateTextureAccess     uint8
	BindFlags                    BindFlags
	MinTileSize                  [2]uint32
	MaxTileSize                  [2]uint32
	MaxSubsampledArraySliceCount uint32
}

// GraphicsAdapterInfo describes a physical adapter as reported by
// EngineFactory.EnumerateAdapters or RenderDevice.AdapterInfo.
type GraphicsAdapterInfo struct {
	Description   string
	Type          AdapterType
	Vendor        AdapterVendor
	VendorID      uint32
	DeviceID      uint32
	NumOutputs    uint32
	Memory        AdapterMemoryInfo
	RayTracing    RayTracingProperties
	WaveOp        WaveOpProperties
	Buffer        BufferProperties
	Texture       TextureProperties
	Sampler       SamplerProperties
	MeshShader    MeshShaderProperties
	ShadingRate   ShadingRateProperties
	ComputeShader ComputeShaderProperties
	DrawCommand   DrawCommandProperties
	Features      DeviceFeatures
	Queues        []CommandQueueInfo
}

func graphicsAdapterInfoFromNative(n *driver.GraphicsAdapterInfo) GraphicsAdapterInfo {
	info := GraphicsAdapterInfo{
		Description: fixedString(n.Description[:]),
		Type:        adapterTypeFromNative(n.Type),
		Vendor:      adapterVendorFromNative(n.Vendor),
		VendorID:    n.VendorID,
		DeviceID:    n.DeviceID,
		NumOutputs:  n.NumOutputs,
		Memory: AdapterMemoryInfo{
			LocalMemory:                n.Memory.LocalMemory,
			HostVisibleMemory:          n.Memory.HostVisibleMemory,
			UnifiedMemory:              n.Memory.UnifiedMemory,
			MaxMemoryAllocation:        n.Memory.MaxMemoryAllocation,
			UnifiedMemoryCPUAccess:     CpuAccessFlags(n.Memory.UnifiedMemoryCPUAccess),
			MemorylessTextureBindFlags: BindFlags(n.Memory.MemorylessTextureBindFlags),
		},
		RayTracing: n.RayTracing,
		WaveOp: WaveOpProperties{
			MinSize:         n.WaveOp.MinSize,
			MaxSize:         n.WaveOp.MaxSize,
			SupportedStages: ShaderType(n.WaveOp.SupportedStages),
			Features:        n.WaveOp.Features,
		},
		Buffer:     n.Buffer,
		Texture:    n.Texture,
		Sampler:    n.Sampler,
		MeshShader: n.MeshShader,
		ShadingRate: ShadingRateProperties{
			CapFlags:                     n.ShadingRate.CapFlags,
			Combiners:                    ShadingRateCombiner(n.ShadingRate.Combiners),
			Format:                       n.ShadingRate.Format,
			ShadingRateTextureAccess:     n.ShadingRate.ShadingRateTextureAccess,
			BindFlags:                    BindFlags(n.ShadingRate.BindFlags),
			MinTileSize:                  n.ShadingRate.MinTileSize,
			MaxTileSize:                  n.ShadingRate.MaxTileSize,
			MaxSubsampledArraySliceCount: n.ShadingRate.MaxSubsampledArraySliceCount,
		},
		ComputeShader: n.ComputeShader,
		DrawCommand:   n.DrawCommand,
		Features:      deviceFeaturesFromNative(&n.Features),
	}

	rates := n.ShadingRate.ShadingRates[:min(int(n.ShadingRate.NumShadingRates), driver.MaxShadingRates)]
	for _, rate := range rates {
		info.ShadingRate.ShadingRates = append(info.ShadingRate.ShadingRates, ShadingRateMode{
			Rate:       shadingRateFromNative(rate.Rate),
			SampleBits: rate.SampleBits,
		})
	}
	for _, queue := range n.Queues[:min(int(n.NumQueues), driver.MaxCommandQueues)] {
		info.Queues = append(info.Queues, CommandQueueInfo{
			QueueType:              CommandQueueType(queue.QueueType),
			MaxDeviceContexts:      queue.MaxDeviceContexts,
			TextureCopyGranularity: queue.TextureCopyGranularity,
		})
	}
	return info
}

type ImmediateContextCreateInfo struct {
	Name     string
	QueueID  uint8
	Priority QueuePriority
}

// EngineCreateInfo holds the settings shared by every backend.
type EngineCreateInfo struct {
	AdapterID          uint32
	GraphicsAPIVersion Version
	// ImmediateContexts lists the immediate contexts to create. The engine creates a
	// single context on the default queue when empty.
	ImmediateContexts                []ImmediateContextCreateInfo
	NumDeferredContexts              uint32
	Features                         DeviceFeatures
	EnableValidation                 bool
	ValidationFlags                  ValidationFlags
	NumAsyncShaderCompilationThreads uint32
}

func NewEngineCreateInfo() EngineCreateInfo {
	return EngineCreateInfo{
		AdapterID: DefaultAdapterID,
		Features:  NewDeviceFeatures(DeviceFeatureStateOptional),
	}
}

func (ci *EngineCreateInfo) marshal(arena *driver.Arena) driver.EngineCreateInfo {
	contexts, contextCount := driver.MarshalSlice(arena, ci.ImmediateContexts, func(a *driver.Arena, c *ImmediateContextCreateInfo) driver.ImmediateContextCreateInfo {
		return driver.ImmediateContextCreateInfo{
			Name:     a.CString(c.Name),
			QueueID:  c.QueueID,
			Priority: c.Priority.native(),
		}
	})

	return driver.EngineCreateInfo{
		EngineAPIVersion:                 driver.APIVersion,
		AdapterID:                        ci.AdapterID,
		GraphicsAPIVersion:               ci.GraphicsAPIVersion,
		ImmediateContextInfo:             contexts,
		NumImmediateContexts:             contextCount,
		NumDeferredContexts:              ci.NumDeferredContexts,
		Features:                         ci.Features.marshal(),
		EnableValidation:                 ci.EnableValidation,
		ValidationFlags:                  ci.ValidationFlags.native(),
		NumAsyncShaderCompilationThreads: ci.NumAsyncShaderCompilationThreads,
	}
}

// contextCount is the number of contexts the engine returns for ci.
func (ci *EngineCreateInfo) contextCount() int {
	return max(len(ci.ImmediateContexts), 1) + int(ci.NumDeferredContexts)
}

// QueryPoolSizes is indexed by QueryType.
type QueryPoolSizes [driver.QueryTypeCount]uint32

var defaultQueryPoolSizes = QueryPoolSizes{
	QueryTypeOcclusion:          128,
	QueryTypeBinaryOcclusion:    128,
	QueryTypeTimestamp:          512,
	QueryTypePipelineStatistics: 128,
	QueryTypeDuration:           256,
}

type EngineVkCreateInfo struct {
	EngineCreateInfo
	InstanceLayerNames           []string
	InstanceExtensionNames       []string
	DeviceExtensionNames         []string
	IgnoreDebugMessageNames      []string
	MainDescriptorPoolSize       VulkanDescriptorPoolSize
	DynamicDescriptorPoolSize    VulkanDescriptorPoolSize
	DeviceLocalMemoryPageSize    uint32
	HostVisibleMemoryPageSize    uint32
	DeviceLocalMemoryReserveSize uint32
	HostVisibleMemoryReserveSize uint32
	UploadHeapPageSize           uint32
	DynamicHeapSize              uint32
	DynamicHeapPageSize          uint32
	QueryPoolSizes               QueryPoolSizes
	DxCompilerPath               string
}

func NewEngineVkCreateInfo() EngineVkCreateInfo {
	return EngineVkCreateInfo{
		EngineCreateInfo:             NewEngineCreateInfo(),
		MainDescriptorPoolSize:       VulkanDescriptorPoolSize{MaxDescriptorSets: 8192, NumSeparateSamplerDescriptors: 1024, NumCombinedSamplerDescriptors: 8192, NumSampledImageDescriptors: 8192, NumStorageImageDescriptors: 1024, NumUniformBufferDescriptors: 4096, NumStorageBufferDescriptors: 4096, NumUniformTexelBufferDescriptors: 1024, NumStorageTexelBufferDescriptors: 1024, NumInputAttachmentDescriptors: 256, NumAccelStructDescriptors: 256},
		DynamicDescriptorPoolSize:    VulkanDescriptorPoolSize{MaxDescriptorSets: 2048, NumSeparateSamplerDescriptors: 256, NumCombinedSamplerDescriptors: 2048, NumSampledImageDescriptors: 2048, NumStorageImageDescriptors: 256, NumUniformBufferDescriptors: 1024, NumStorageBufferDescriptors: 1024, NumUniformTexelBufferDescriptors: 256, NumStorageTexelBufferDescriptors: 256, NumInputAttachmentDescriptors: 64, NumAccelStructDescriptors: 64},
		DeviceLocalMemoryPageSize:    16 << 20,
		HostVisibleMemoryPageSize:    16 << 20,
		DeviceLocalMemoryReserveSize: 256 << 20,
		HostVisibleMemoryReserveSize: 256 << 20,
		UploadHeapPageSize:           1 << 20,
		DynamicHeapSize:              8 << 20,
		DynamicHeapPageSize:          256 << 10,
		QueryPoolSizes:               defaultQueryPoolSizes,
	}
}

func (ci *EngineVkCreateInfo) marshal(arena *driver.Arena) *driver.EngineVkCreateInfo {
	return driver.New(arena, driver.EngineVkCreateInfo{
		EngineCreateInfo:             ci.EngineCreateInfo.marshal(arena),
		InstanceLayerCount:           uint32(len(ci.InstanceLayerNames)),
		InstanceLayerNames:           arena.CStringArray(ci.InstanceLayerNames),
		InstanceExtensionCount:       uint32(len(ci.InstanceExtensionNames)),
		InstanceExtensionNames:       arena.CStringArray(ci.InstanceExtensionNames),
		DeviceExtensionCount:         uint32(len(ci.DeviceExtensionNames)),
		DeviceExtensionNames:         arena.CStringArray(ci.DeviceExtensionNames),
		IgnoreDebugMessageCount:      uint32(len(ci.IgnoreDebugMessageNames)),
		IgnoreDebugMessageNames:      arena.CStringArray(ci.IgnoreDebugMessageNames),
		MainDescriptorPoolSize:       ci.MainDescriptorPoolSize,
		DynamicDescriptorPoolSize:    ci.DynamicDescriptorPoolSize,
		DeviceLocalMemoryPageSize:    ci.DeviceLocalMemoryPageSize,
		HostVisibleMemoryPageSize:    ci.HostVisibleMemoryPageSize,
		DeviceLocalMemoryReserveSize: ci.DeviceLocalMemoryReserveSize,
		HostVisibleMemoryReserveSize: ci.HostVisibleMemoryReserveSize,
		UploadHeapPageSize:           ci.UploadHeapPageSize,
		DynamicHeapSize:              ci.DynamicHeapSize,
		DynamicHeapPageSize:          ci.DynamicHeapPageSize,
		QueryPoolSizes:               ci.QueryPoolSizes,
		DxCompilerPath:               arena.CString(ci.DxCompilerPath),
	})
}

type EngineD3D12CreateInfo struct {
	EngineCreateInfo
	D3D12DllName                         string
	CPUDescriptorHeapAllocationSize      [4]uint32
	GPUDescriptorHeapSize                [2]uint32
	GPUDescriptorHeapDynamicSize         [2]uint32
	DynamicDescriptorAllocationChunkSize [2]uint32
	DynamicHeapPageSize                  uint32
	NumDynamicHeapPagesToReserve         uint32
	QueryPoolSizes                       QueryPoolSizes
	HLSLCompiler                         ShaderCompiler
	DxCompilerPath                       string
}

func NewEngineD3D12CreateInfo() EngineD3D12CreateInfo {
	return EngineD3D12CreateInfo{
		EngineCreateInfo:                     NewEngineCreateInfo(),
		D3D12DllName:                         "d3d12.dll",
		CPUDescriptorHeapAllocationSize:      [4]uint32{8192, 2048, 1024, 1024},
		GPUDescriptorHeapSize:                [2]uint32{16384, 1024},
		GPUDescriptorHeapDynamicSize:         [2]uint32{8192, 1024},
		DynamicDescriptorAllocationChunkSize: [2]uint32{256, 32},
		DynamicHeapPageSize:                  1 << 20,
		NumDynamicHeapPagesToReserve:         1,
		QueryPoolSizes:                       defaultQueryPoolSizes,
	}
}

func (ci *EngineD3D12CreateInfo) marshal(arena *driver.Arena) *driver.EngineD3D12CreateInfo {
	return driver.New(arena, driver.EngineD3D12CreateInfo{
		EngineCreateInfo:                     ci.EngineCreateInfo.marshal(arena),
		D3D12DllName:                         arena.CString(ci.D3D12DllName),
		CPUDescriptorHeapAllocationSize:      ci.CPUDescriptorHeapAllocationSize,
		GPUDescriptorHeapSize:                ci.GPUDescriptorHeapSize,
		GPUDescriptorHeapDynamicSize:         ci.GPUDescriptorHeapDynamicSize,
		DynamicDescriptorAllocationChunkSize: ci.DynamicDescriptorAllocationChunkSize,
		DynamicHeapPageSize:                  ci.DynamicHeapPageSize,
		NumDynamicHeapPagesToReserve:         ci.NumDynamicHeapPagesToReserve,
		QueryPoolSizes:                       ci.QueryPoolSizes,
		HLSLCompiler:                         ci.HLSLCompiler.native(),
		DxCompilerPath:                       arena.CString(ci.DxCompilerPath),
	})
}

type EngineD3D11CreateInfo struct {
	EngineCreateInfo
	// D3D11ValidationFlags holds D3D11_VALIDATION_FLAGS bits.
	D3D11ValidationFlags uint32
}

func NewEngineD3D11CreateInfo() EngineD3D11CreateInfo {
	return EngineD3D11CreateInfo{EngineCreateInfo: NewEngineCreateInfo()}
}

func (ci *EngineD3D11CreateInfo) marshal(arena *driver.Arena) *driver.EngineD3D11CreateInfo {
	return driver.New(arena, driver.EngineD3D11CreateInfo{
		EngineCreateInfo:     ci.EngineCreateInfo.marshal(arena),
		D3D11ValidationFlags: ci.D3D11ValidationFlags,
	})
}

type EngineGLCreateInfo struct {
	EngineCreateInfo
	Window               NativeWindow
	ZeroToOneNDZ         bool
	PreferredAdapterType AdapterType
}

func NewEngineGLCreateInfo(window NativeWindow) EngineGLCreateInfo {
	return EngineGLCreateInfo{EngineCreateInfo: NewEngineCreateInfo(), Window: window}
}

func (ci *EngineGLCreateInfo) marshal(arena *driver.Arena) *driver.EngineGLCreateInfo {
	return driver.New(arena, driver.EngineGLCreateInfo{
		EngineCreateInfo:     ci.EngineCreateInfo.marshal(arena),
		Window:               ci.Window,
		ZeroToOneNDZ:         ci.ZeroToOneNDZ,
		PreferredAdapterType: ci.PreferredAdapterType.native(),
	})
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

// NewSwapChainDesc sizes the swap chain from the window when width and height are zero.
func NewSwapChainDesc(width, height uint32) SwapChainDesc {
	return SwapChainDesc{
		Width:             width,
		Height:            height,
		ColorBufferFormat: TexFormatRGBA8UnormSRGB,
		DepthBufferFormat: TexFormatD32Float,
		Usage:             SwapChainUsageRenderTarget,
		PreTransform:      SurfaceTransformOptimal,
		BufferCount:       2,
		DefaultDepthValue: 1,
		IsPrimary:         true,
	}
}

func (d *SwapChainDesc) marshal(arena *driver.Arena) *driver.SwapChainDesc {
	return driver.New(arena, driver.SwapChainDesc{
		Width:               d.Width,
		Height:              d.Height,
		ColorBufferFormat:   d.ColorBufferFormat.native(),
		DepthBufferFormat:   d.DepthBufferFormat.native(),
		Usage:               d.Usage.native(),
		PreTransform:        d.PreTransform.native(),
		BufferCount:         d.BufferCount,
		DefaultDepthValue:   d.DefaultDepthValue,
		DefaultStencilValue: d.DefaultStencilValue,
		IsPrimary:           d.IsPrimary,
	})
}

func swapChainDescFromNative(n *driver.SwapChainDesc) SwapChainDesc {
	return SwapChainDesc{
		Width:               n.Width,
		Height:              n.Height,
		ColorBufferFormat:   textureFormatFromNative(n.ColorBufferFormat),
		DepthBufferFormat:   textureFormatFromNative(n.DepthBufferFormat),
		Usage:               SwapChainUsageFlags(n.Usage),
		PreTransform:        surfaceTransformFromNative(n.PreTransform),
		BufferCount:         n.BufferCount,
		DefaultDepthValue:   n.DefaultDepthValue,
		DefaultStencilValue: n.DefaultStencilValue,
		IsPrimary:           n.IsPrimary,
	}
}

type FullScreenModeDesc struct {
	Fullscreen             bool
	RefreshRateNumerator   uint32
	RefreshRateDenominator uint32
	Scaling                ScalingMode
	ScanlineOrder          ScanlineOrder
}

func (d *FullScreenModeDesc) marshal(arena *driver.Arena) *driver.FullScreenModeDesc {
	if d == nil {
		return nil
	}
	return driver.New(arena, driver.FullScreenModeDesc{
		Fullscreen:             d.Fullscreen,
		RefreshRateNumerator:   d.RefreshRateNumerator,
		RefreshRateDenominator: d.RefreshRateDenominator,
		Scaling:                d.Scaling.native(),
		ScanlineOrder:          d.ScanlineOrder.native(),
	})
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

// RefreshRate is the refresh rate in hertz, or zero when unknown.
func (m *DisplayModeAttribs) RefreshRate() float64 {
	if m.RefreshRateDenominator == 0 {
		return 0
	}
	return float64(m.RefreshRateNumerator) / float64(m.RefreshRateDenominator)
}

func (m *DisplayModeAttribs) marshal(arena *driver.Arena) *driver.DisplayModeAttribs {
	return driver.New(arena, driver.DisplayModeAttribs{
		Width:                  m.Width,
		Height:                 m.Height,
		Format:                 m.Format.native(),
		RefreshRateNumerator:   m.RefreshRateNumerator,
		RefreshRateDenominator: m.RefreshRateDenominator,
		Scaling:                m.Scaling.native(),
		ScanlineOrder:          m.ScanlineOrder.native(),
	})
}

func displayModeAttribsFromNative(n *driver.DisplayModeAttribs) DisplayModeAttribs {
	return DisplayModeAttribs{
		Width:                  n.Width,
		Height:                 n.Height,
		Format:                 textureFormatFromNative(n.Format),
		RefreshRateNumerator:   n.RefreshRateNumerator,
		RefreshRateDenominator: n.RefreshRateDenominator,
		Scaling:                scalingModeFromNative(n.Scaling),
		ScanlineOrder:          scanlineOrderFromNative(n.ScanlineOrder),
	}
}

// fixedString decodes a NUL-padded fixed-size character array.
func fixedString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
