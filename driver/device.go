package driver

import "unsafe"

type RenderDevice interface {
	Object
	CreateBuffer(desc *BufferDesc, data *BufferData) Buffer
	CreateShader(ci *ShaderCreateInfo) (Shader, DataBlob)
	CreateTexture(desc *TextureDesc, data *TextureData) Texture
	CreateSampler(desc *SamplerDesc) Sampler
	CreateResourceMapping(ci *ResourceMappingCreateInfo) ResourceMapping
	CreateGraphicsPipelineState(ci *GraphicsPipelineStateCreateInfo) PipelineState
	CreateComputePipelineState(ci *ComputePipelineStateCreateInfo) PipelineState
	CreateRayTracingPipelineState(ci *RayTracingPipelineStateCreateInfo) PipelineState
	CreateTilePipelineState(ci *TilePipelineStateCreateInfo) PipelineState
	CreateFence(desc *FenceDesc) Fence
	CreateQuery(desc *QueryDesc) Query
	CreateRenderPass(desc *RenderPassDesc) RenderPass
	CreateFramebuffer(desc *FramebufferDesc) Framebuffer
	CreateBLAS(desc *BottomLevelASDesc) BottomLevelAS
	CreateTLAS(desc *TopLevelASDesc) TopLevelAS
	CreateSBT(desc *ShaderBindingTableDesc) ShaderBindingTable
	CreatePipelineResourceSignature(desc *PipelineResourceSignatureDesc) PipelineResourceSignature
	CreateDeviceMemory(ci *DeviceMemoryCreateInfo) DeviceMemory
	CreatePipelineStateCache(ci *PipelineStateCacheCreateInfo) PipelineStateCache
	CreateDeferredContext() DeviceContext
	GetDeviceInfo() *RenderDeviceInfo
	GetAdapterInfo() *GraphicsAdapterInfo
	GetTextureFormatInfo(format TextureFormat) *TextureFormatInfo
	GetTextureFormatInfoExt(format TextureFormat) *TextureFormatInfoExt
	ReleaseStaleResources(forceRelease bool)
	IdleGPU()
	GetEngineFactory() EngineFactory
}

type renderDeviceMethods struct {
	objectMethods
	CreateBuffer                    uintptr
	CreateShader                    uintptr
	CreateTexture                   uintptr
	CreateSampler                   uintptr
	CreateResourceMapping           uintptr
	CreateGraphicsPipelineState     uintptr
	CreateComputePipelineState      uintptr
	CreateRayTracingPipelineState   uintptr
	CreateTilePipelineState         uintptr
	CreateFence                     uintptr
	CreateQuery                     uintptr
	CreateRenderPass                uintptr
	CreateFramebuffer               uintptr
	CreateBLAS                      uintptr
	CreateTLAS                      uintptr
	CreateSBT                       uintptr
	CreatePipelineResourceSignature uintptr
	CreateDeviceMemory              uintptr
	CreatePipelineStateCache        uintptr
	CreateDeferredContext           uintptr
	GetDeviceInfo                   uintptr
	GetAdapterInfo                  uintptr
	GetTextureFormatInfo            uintptr
	GetTextureFormatInfoExt         uintptr
	GetSparseTextureFormatInfo      uintptr
	ReleaseStaleResources           uintptr
	IdleGPU                         uintptr
	GetEngineFactory                uintptr
	GetShaderCompilationThreadPool  uintptr
}

const (
	_ = unsafe.Sizeof(renderDeviceMethods{}) - 33*ptrSize
	_ = 33*ptrSize - unsafe.Sizeof(renderDeviceMethods{})
)

type renderDevice struct {
	object
}

func RenderDeviceFromHandle(h Handle) RenderDevice {
	if h == 0 {
		return nil
	}
	return renderDevice{object{handle: h}}
}

func (d renderDevice) methods() *renderDeviceMethods {
	return vtblOf[renderDeviceMethods](d.handle)
}

// create invokes a creation method taking a single description and returning the new
// object through the trailing out pointer.
func (d renderDevice) create(fn uintptr, desc unsafe.Pointer) Handle {
	var out Handle
	call(fn, uintptr(d.handle), uintptr(desc), ptr(&out))
	return out
}

func (d renderDevice) CreateBuffer(desc *BufferDesc, data *BufferData) Buffer {
	var out Handle
	call(d.methods().CreateBuffer, uintptr(d.handle), ptr(desc), ptr(data), ptr(&out))
	return BufferFromHandle(out)
}

func (d renderDevice) CreateShader(ci *ShaderCreateInfo) (Shader, DataBlob) {
	var out, output Handle
	call(d.methods().CreateShader, uintptr(d.handle), ptr(ci), ptr(&out), ptr(&output))
	return ShaderFromHandle(out), DataBlobFromHandle(output)
}

func (d renderDevice) CreateTexture(desc *TextureDesc, data *TextureData) Texture {
	var out Handle
	call(d.methods().CreateTexture, uintptr(d.handle), ptr(desc), ptr(data), ptr(&out))
	return TextureFromHandle(out)
}

func (d renderDevice) CreateSampler(desc *SamplerDesc) Sampler {
	return SamplerFromHandle(d.create(d.methods().CreateSampler, unsafe.Pointer(desc)))
}

func (d renderDevice) CreateResourceMapping(ci *ResourceMappingCreateInfo) ResourceMapping {
	return ResourceMappingFromHandle(d.create(d.methods().CreateResourceMapping, unsafe.Pointer(ci)))
}

func (d renderDevice) CreateGraphicsPipelineState(ci *GraphicsPipelineStateCreateInfo) PipelineState {
	return PipelineStateFromHandle(d.create(d.methods().CreateGraphicsPipelineState, unsafe.Pointer(ci)))
}

func (d renderDevice) CreateComputePipelineState(ci *ComputePipelineStateCreateInfo) PipelineState {
	return PipelineStateFromHandle(d.create(d.methods().CreateComputePipelineState, unsafe.Pointer(ci)))
}

func (d renderDevice) CreateRayTracingPipelineState(ci *RayTracingPipelineStateCreateInfo) PipelineState {
	return PipelineStateFromHandle(d.create(d.methods().CreateRayTracingPipelineState, unsafe.Pointer(ci)))
}

func (d renderDevice) CreateTilePipelineState(ci *TilePipelineStateCreateInfo) PipelineState {
	return PipelineStateFromHandle(d.create(d.methods().CreateTilePipelineState, unsafe.Pointer(ci)))
}

func (d renderDevice) CreateFence(desc *FenceDesc) Fence {
	return FenceFromHandle(d.create(d.methods().CreateFence, unsafe.Pointer(desc)))
}

func (d renderDevice) CreateQuery(desc *QueryDesc) Query {
	return QueryFromHandle(d.create(d.methods().CreateQuery, unsafe.Pointer(desc)))
}

func (d renderDevice) CreateRenderPass(desc *RenderPassDesc) RenderPass {
	return RenderPassFromHandle(d.create(d.methods().CreateRenderPass, unsafe.Pointer(desc)))
}

func (d renderDevice) CreateFramebuffer(desc *FramebufferDesc) Framebuffer {
	return FramebufferFromHandle(d.create(d.methods().CreateFramebuffer, unsafe.Pointer(desc)))
}

func (d renderDevice) CreateBLAS(desc *BottomLevelASDesc) BottomLevelAS {
	return BottomLevelASFromHandle(d.create(d.methods().CreateBLAS, unsafe.Pointer(desc)))
}

func (d renderDevice) CreateTLAS(desc *TopLevelASDesc) TopLevelAS {
	return TopLevelASFromHandle(d.create(d.methods().CreateTLAS, unsafe.Pointer(desc)))
}

func (d renderDevice) CreateSBT(desc *ShaderBindingTableDesc) ShaderBindingTable {
	return ShaderBindingTableFromHandle(d.create(d.methods().CreateSBT, unsafe.Pointer(desc)))
}

func (d renderDevice) CreatePipelineResourceSignature(desc *PipelineResourceSignatureDesc) PipelineResourceSignature {
	return PipelineResourceSignatureFromHandle(d.create(d.methods().CreatePipelineResourceSignature, unsafe.Pointer(desc)))
}

func (d renderDevice) CreateDeviceMemory(ci *DeviceMemoryCreateInfo) DeviceMemory {
	return DeviceMemoryFromHandle(d.create(d.methods().CreateDeviceMemory, unsafe.Pointer(ci)))
}

func (d renderDevice) CreatePipelineStateCache(ci *PipelineStateCacheCreateInfo) PipelineStateCache {
	return PipelineStateCacheFromHandle(d.create(d.methods().CreatePipelineStateCache, unsafe.Pointer(ci)))
}

func (d renderDevice) CreateDeferredContext() DeviceContext {
	var out Handle
	call(d.methods().CreateDeferredContext, uintptr(d.handle), ptr(&out))
	return DeviceContextFromHandle(out)
}

func (d renderDevice) GetDeviceInfo() *RenderDeviceInfo {
	return (*RenderDeviceInfo)(unsafe.Pointer(call(d.methods().GetDeviceInfo, uintptr(d.handle))))
}

func (d renderDevice) GetAdapterInfo() *GraphicsAdapterInfo {
	return (*GraphicsAdapterInfo)(unsafe.Pointer(call(d.methods().GetAdapterInfo, uintptr(d.handle))))
}

func (d renderDevice) GetTextureFormatInfo(format TextureFormat) *TextureFormatInfo {
	return (*TextureFormatInfo)(unsafe.Pointer(call(d.methods().GetTextureFormatInfo, uintptr(d.handle), uintptr(format))))
}

func (d renderDevice) GetTextureFormatInfoExt(format TextureFormat) *TextureFormatInfoExt {
	return (*TextureFormatInfoExt)(unsafe.Pointer(call(d.methods().GetTextureFormatInfoExt, uintptr(d.handle), uintptr(format))))
}

func (d renderDevice) ReleaseStaleResources(forceRelease bool) {
	call(d.methods().ReleaseStaleResources, uintptr(d.handle), boolArg(forceRelease))
}

func (d renderDevice) IdleGPU() {
	call(d.methods().IdleGPU, uintptr(d.handle))
}

func (d renderDevice) GetEngineFactory() EngineFactory {
	return EngineFactoryFromHandle(Handle(call(d.methods().GetEngineFactory, uintptr(d.handle))))
}
