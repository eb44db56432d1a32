package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
	"github.com/vkngwrapper/diligent/internal/memutils"
	"golang.org/x/exp/slog"
)

// RenderDevice creates resources and pipelines for one adapter. It is created together
// with its immediate contexts by a backend engine factory.
type RenderDevice struct {
	object
	drv driver.RenderDevice
}

func wrapRenderDevice(native driver.RenderDevice, logger *slog.Logger) *RenderDevice {
	d := &RenderDevice{drv: native}
	d.adopt(native, "RenderDevice", logger)
	return d
}

// RenderDeviceFromDriver wraps a driver device, taking over the reference the caller
// holds.
func RenderDeviceFromDriver(native driver.RenderDevice, logger *slog.Logger) *RenderDevice {
	return fromOwned(native, loggerOrDiscard(logger), wrapRenderDevice)
}

func (d *RenderDevice) Driver() driver.RenderDevice {
	if d == nil {
		return nil
	}
	return d.drv
}

func (d *RenderDevice) Ref() *RenderDevice {
	return fromBorrowed(d.drv, d.logger, wrapRenderDevice)
}

func (d *RenderDevice) CreateBuffer(desc BufferDesc, data *BufferData) (*Buffer, error) {
	d.logger.Debug("RenderDevice::CreateBuffer")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	buffer := fromOwned(d.drv.CreateBuffer(&nativeDesc, data.marshal(arena)), d.logger, wrapBuffer)
	if buffer == nil {
		return nil, creationFailed("Buffer", desc.Name)
	}
	return buffer, nil
}

// CreateShader compiles a shader. On failure the error is a *ShaderCompileError whose
// Output holds the compiler log; the caller releases it.
func (d *RenderDevice) CreateShader(ci ShaderCreateInfo) (*Shader, error) {
	d.logger.Debug("RenderDevice::CreateShader")

	arena := driver.NewArena()
	defer arena.Release()

	nativeCI := ci.marshal(arena)
	native, output := d.drv.CreateShader(&nativeCI)
	shader := fromOwned(native, d.logger, wrapShader)
	blob := fromOwned(output, d.logger, wrapDataBlob)

	if shader == nil {
		return nil, &ShaderCompileError{Name: ci.Desc.Name, Output: blob}
	}

	if blob != nil {
		d.logger.Debug("shader compiler output", slog.String("shader", ci.Desc.Name), slog.String("output", blob.String()))
		blob.Release()
	}
	return shader, nil
}

func (d *RenderDevice) CreateTexture(desc TextureDesc, data *TextureData) (*Texture, error) {
	d.logger.Debug("RenderDevice::CreateTexture")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	texture := fromOwned(d.drv.CreateTexture(&nativeDesc, data.marshal(arena)), d.logger, wrapTexture)
	if texture == nil {
		return nil, creationFailed("Texture", desc.Name)
	}
	return texture, nil
}

func (d *RenderDevice) CreateSampler(desc SamplerDesc) (*Sampler, error) {
	d.logger.Debug("RenderDevice::CreateSampler")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	sampler := fromOwned(d.drv.CreateSampler(&nativeDesc), d.logger, wrapSampler)
	if sampler == nil {
		return nil, creationFailed("Sampler", desc.Name)
	}
	return sampler, nil
}

func (d *RenderDevice) CreateResourceMapping(ci ResourceMappingCreateInfo) (*ResourceMapping, error) {
	d.logger.Debug("RenderDevice::CreateResourceMapping")

	arena := driver.NewArena()
	defer arena.Release()

	nativeCI := ci.marshal(arena)
	mapping := fromOwned(d.drv.CreateResourceMapping(&nativeCI), d.logger, wrapResourceMapping)
	if mapping == nil {
		return nil, creationFailed("ResourceMapping", "")
	}
	return mapping, nil
}

func (d *RenderDevice) CreateGraphicsPipelineState(ci GraphicsPipelineStateCreateInfo) (*PipelineState, error) {
	d.logger.Debug("RenderDevice::CreateGraphicsPipelineState")

	arena := driver.NewArena()
	defer arena.Release()

	nativeCI := ci.marshal(arena)
	return d.pipelineState(d.drv.CreateGraphicsPipelineState(&nativeCI), ci.PSODesc.Name)
}

func (d *RenderDevice) CreateComputePipelineState(ci ComputePipelineStateCreateInfo) (*PipelineState, error) {
	d.logger.Debug("RenderDevice::CreateComputePipelineState")

	arena := driver.NewArena()
	defer arena.Release()

	nativeCI := ci.marshal(arena)
	return d.pipelineState(d.drv.CreateComputePipelineState(&nativeCI), ci.PSODesc.Name)
}

func (d *RenderDevice) CreateRayTracingPipelineState(ci RayTracingPipelineStateCreateInfo) (*PipelineState, error) {
	d.logger.Debug("RenderDevice::CreateRayTracingPipelineState")

	arena := driver.NewArena()
	defer arena.Release()

	nativeCI := ci.marshal(arena)
	return d.pipelineState(d.drv.CreateRayTracingPipelineState(&nativeCI), ci.PSODesc.Name)
}

func (d *RenderDevice) CreateTilePipelineState(ci TilePipelineStateCreateInfo) (*PipelineState, error) {
	d.logger.Debug("RenderDevice::CreateTilePipelineState")

	arena := driver.NewArena()
	defer arena.Release()

	nativeCI := ci.marshal(arena)
	return d.pipelineState(d.drv.CreateTilePipelineState(&nativeCI), ci.PSODesc.Name)
}

func (d *RenderDevice) pipelineState(native driver.PipelineState, name string) (*PipelineState, error) {
	pso := fromOwned(native, d.logger, wrapPipelineState)
	if pso == nil {
		return nil, creationFailed("PipelineState", name)
	}
	return pso, nil
}

func (d *RenderDevice) CreateFence(desc FenceDesc) (*Fence, error) {
	d.logger.Debug("RenderDevice::CreateFence")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	fence := fromOwned(d.drv.CreateFence(&nativeDesc), d.logger, wrapFence)
	if fence == nil {
		return nil, creationFailed("Fence", desc.Name)
	}
	return fence, nil
}

func (d *RenderDevice) CreateQuery(desc QueryDesc) (*Query, error) {
	d.logger.Debug("RenderDevice::CreateQuery")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	query := fromOwned(d.drv.CreateQuery(&nativeDesc), d.logger, wrapQuery)
	if query == nil {
		return nil, creationFailed("Query", desc.Name)
	}
	return query, nil
}

func (d *RenderDevice) CreateRenderPass(desc RenderPassDesc) (*RenderPass, error) {
	d.logger.Debug("RenderDevice::CreateRenderPass")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	pass := fromOwned(d.drv.CreateRenderPass(&nativeDesc), d.logger, wrapRenderPass)
	if pass == nil {
		return nil, creationFailed("RenderPass", desc.Name)
	}
	return pass, nil
}

func (d *RenderDevice) CreateFramebuffer(desc FramebufferDesc) (*Framebuffer, error) {
	d.logger.Debug("RenderDevice::CreateFramebuffer")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	framebuffer := fromOwned(d.drv.CreateFramebuffer(&nativeDesc), d.logger, wrapFramebuffer)
	if framebuffer == nil {
		return nil, creationFailed("Framebuffer", desc.Name)
	}
	return framebuffer, nil
}

func (d *RenderDevice) CreateBLAS(desc BottomLevelASDesc) (*BottomLevelAS, error) {
	d.logger.Debug("RenderDevice::CreateBLAS")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	blas := fromOwned(d.drv.CreateBLAS(&nativeDesc), d.logger, wrapBottomLevelAS)
	if blas == nil {
		return nil, creationFailed("BottomLevelAS", desc.Name)
	}
	return blas, nil
}

func (d *RenderDevice) CreateTLAS(desc TopLevelASDesc) (*TopLevelAS, error) {
	d.logger.Debug("RenderDevice::CreateTLAS")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	tlas := fromOwned(d.drv.CreateTLAS(&nativeDesc), d.logger, wrapTopLevelAS)
	if tlas == nil {
		return nil, creationFailed("TopLevelAS", desc.Name)
	}
	return tlas, nil
}

func (d *RenderDevice) CreateSBT(desc ShaderBindingTableDesc) (*ShaderBindingTable, error) {
	d.logger.Debug("RenderDevice::CreateSBT")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	sbt := fromOwned(d.drv.CreateSBT(&nativeDesc), d.logger, wrapShaderBindingTable)
	if sbt == nil {
		return nil, creationFailed("ShaderBindingTable", desc.Name)
	}
	return sbt, nil
}

func (d *RenderDevice) CreatePipelineResourceSignature(desc PipelineResourceSignatureDesc) (*PipelineResourceSignature, error) {
	d.logger.Debug("RenderDevice::CreatePipelineResourceSignature")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	signature := fromOwned(d.drv.CreatePipelineResourceSignature(&nativeDesc), d.logger, wrapPipelineResourceSignature)
	if signature == nil {
		return nil, creationFailed("PipelineResourceSignature", desc.Name)
	}
	return signature, nil
}

func (d *RenderDevice) CreateDeviceMemory(ci DeviceMemoryCreateInfo) (*DeviceMemory, error) {
	d.logger.Debug("RenderDevice::CreateDeviceMemory")

	arena := driver.NewArena()
	defer arena.Release()

	nativeCI := ci.marshal(arena)
	memory := fromOwned(d.drv.CreateDeviceMemory(&nativeCI), d.logger, wrapDeviceMemory)
	if memory == nil {
		return nil, creationFailed("DeviceMemory", ci.Desc.Name)
	}
	return memory, nil
}

func (d *RenderDevice) CreatePipelineStateCache(ci PipelineStateCacheCreateInfo) (*PipelineStateCache, error) {
	d.logger.Debug("RenderDevice::CreatePipelineStateCache")

	arena := driver.NewArena()
	defer arena.Release()

	nativeCI := ci.marshal(arena)
	cache := fromOwned(d.drv.CreatePipelineStateCache(&nativeCI), d.logger, wrapPipelineStateCache)
	if cache == nil {
		return nil, creationFailed("PipelineStateCache", ci.Desc.Name)
	}
	return cache, nil
}

// CreateDeferredContext creates a deferred context that is not bound to any immediate
// context until Begin is called.
func (d *RenderDevice) CreateDeferredContext() (*DeferredDeviceContext, error) {
	d.logger.Debug("RenderDevice::CreateDeferredContext")

	ctx := fromOwned(d.drv.CreateDeferredContext(), d.logger, wrapDeferredDeviceContext)
	if ctx == nil {
		return nil, creationFailed("DeviceContext", "")
	}
	return ctx, nil
}

func (d *RenderDevice) DeviceInfo() RenderDeviceInfo {
	return renderDeviceInfoFromNative(d.drv.GetDeviceInfo())
}

func (d *RenderDevice) AdapterInfo() GraphicsAdapterInfo {
	return graphicsAdapterInfoFromNative(d.drv.GetAdapterInfo())
}

func (d *RenderDevice) TextureFormatInfo(format TextureFormat) TextureFormatInfo {
	return textureFormatInfoFromNative(d.drv.GetTextureFormatInfo(format.native()))
}

// TextureFormatInfoExt also reports the bind flags, dimensions and sample counts the
// device supports for format.
func (d *RenderDevice) TextureFormatInfoExt(format TextureFormat) TextureFormatInfoExt {
	return textureFormatInfoExtFromNative(d.drv.GetTextureFormatInfoExt(format.native()))
}

// ReleaseStaleResources purges resources whose release the engine deferred until the
// GPU stopped using them. With forceRelease set, they are released regardless.
func (d *RenderDevice) ReleaseStaleResources(forceRelease bool) {
	d.logger.Debug("RenderDevice::ReleaseStaleResources")
	d.drv.ReleaseStaleResources(forceRelease)
}

// IdleGPU blocks until every queue of the device is idle.
func (d *RenderDevice) IdleGPU() {
	d.logger.Debug("RenderDevice::IdleGPU")
	d.drv.IdleGPU()
}

// EngineFactory returns a new reference to the factory that created the device.
func (d *RenderDevice) EngineFactory() *EngineFactory {
	return fromBorrowed(d.drv.GetEngineFactory(), d.logger, wrapEngineFactory)
}

// AlignConstantBufferOffset rounds offset up to the alignment the adapter requires for
// constant buffer offsets, such as those passed to SetBufferOffset.
func (d *RenderDevice) AlignConstantBufferOffset(offset uint64) uint64 {
	alignment := uint64(d.drv.GetAdapterInfo().Buffer.ConstantBufferOffsetAlignment)
	return d.alignOffset(offset, alignment, "ConstantBufferOffsetAlignment")
}

// AlignStructuredBufferOffset does the same for structured buffer offsets.
func (d *RenderDevice) AlignStructuredBufferOffset(offset uint64) uint64 {
	alignment := uint64(d.drv.GetAdapterInfo().Buffer.StructuredBufferOffsetAlignment)
	return d.alignOffset(offset, alignment, "StructuredBufferOffsetAlignment")
}

func (d *RenderDevice) alignOffset(offset, alignment uint64, name string) uint64 {
	if alignment <= 1 {
		return offset
	}
	if err := memutils.CheckPow2(alignment, name); err != nil {
		d.logger.Warn("adapter reported a non power of two alignment", slog.String("error", err.Error()))
		return memutils.DivRoundUp(offset, alignment) * alignment
	}
	return memutils.AlignUp(offset, alignment)
}
