package driver

import "unsafe"

type BufferVk interface {
	Buffer
	GetVkBuffer() uint64
	SetAccessFlags(accessFlags uint32)
	GetAccessFlags() uint32
	GetVkDeviceAddress() uint64
}

type BufferViewVk interface {
	BufferView
	GetVkBufferView() uint64
}

type TextureVk interface {
	Texture
	GetVkImage() uint64
	SetLayout(layout int32)
	GetLayout() int32
}

type TextureViewVk interface {
	TextureView
	GetVulkanImageView() uint64
}

type SamplerVk interface {
	Sampler
	GetVkSampler() uint64
}

type FenceVk interface {
	Fence
	GetVkSemaphore() uint64
}

type SwapChainVk interface {
	SwapChain
	GetVkSwapChain() uint64
}

type RenderDeviceVk interface {
	RenderDevice
	GetVkDevice() uintptr
	GetVkPhysicalDevice() uintptr
	GetVkInstance() uintptr
	GetVkVersion() uint32
	CreateTextureFromVulkanImage(image uint64, desc *TextureDesc, initialState ResourceState) Texture
	CreateBufferFromVulkanResource(buffer uint64, desc *BufferDesc, initialState ResourceState) Buffer
	CreateFenceFromVulkanResource(semaphore uint64, desc *FenceDesc) Fence
}

type DeviceContextVk interface {
	DeviceContext
	TransitionImageLayout(texture Texture, newLayout int32)
	BufferMemoryBarrier(buffer Buffer, newAccessFlags uint32)
	GetVkCommandBuffer() uintptr
}

type EngineFactoryVk interface {
	EngineFactory
	CreateDeviceAndContextsVk(ci *EngineVkCreateInfo) (RenderDevice, []DeviceContext)
	CreateSwapChainVk(device RenderDevice, immediateContext DeviceContext, desc *SwapChainDesc, window *NativeWindow) SwapChain
	EnableDeviceSimulation()
}

type bufferVkMethods struct {
	bufferMethods
	GetVkBuffer        uintptr
	SetAccessFlags     uintptr
	GetAccessFlags     uintptr
	GetVkDeviceAddress uintptr
}

type bufferViewVkMethods struct {
	bufferViewMethods
	GetVkBufferView uintptr
}

type textureVkMethods struct {
	textureMethods
	GetVkImage uintptr
	SetLayout  uintptr
	GetLayout  uintptr
}

type textureViewVkMethods struct {
	textureViewMethods
	GetVulkanImageView uintptr
}

type samplerVkMethods struct {
	samplerMethods
	GetVkSampler uintptr
}

type fenceVkMethods struct {
	fenceMethods
	GetVkSemaphore uintptr
}

type swapChainVkMethods struct {
	swapChainMethods
	GetVkSwapChain uintptr
}

type renderDeviceVkMethods struct {
	renderDeviceMethods
	GetVkDevice                    uintptr
	GetVkPhysicalDevice            uintptr
	GetVkInstance                  uintptr
	GetVkVersion                   uintptr
	CreateTextureFromVulkanImage   uintptr
	CreateBufferFromVulkanResource uintptr
	CreateBLASFromVulkanResource   uintptr
	CreateTLASFromVulkanResource   uintptr
	CreateFenceFromVulkanResource  uintptr
}

type deviceContextVkMethods struct {
	deviceContextMethods
	TransitionImageLayout uintptr
	BufferMemoryBarrier   uintptr
	GetVkCommandBuffer    uintptr
}

type engineFactoryVkMethods struct {
	engineFactoryMethods
	CreateDeviceAndContextsVk uintptr
	CreateSwapChainVk         uintptr
	EnableDeviceSimulation    uintptr
}

const (
	_ = unsafe.Sizeof(bufferVkMethods{}) - unsafe.Sizeof(bufferMethods{}) - 4*ptrSize
	_ = unsafe.Sizeof(bufferMethods{}) + 4*ptrSize - unsafe.Sizeof(bufferVkMethods{})

	_ = unsafe.Sizeof(textureVkMethods{}) - unsafe.Sizeof(textureMethods{}) - 3*ptrSize
	_ = unsafe.Sizeof(textureMethods{}) + 3*ptrSize - unsafe.Sizeof(textureVkMethods{})

	_ = unsafe.Sizeof(renderDeviceVkMethods{}) - unsafe.Sizeof(renderDeviceMethods{}) - 9*ptrSize
	_ = unsafe.Sizeof(renderDeviceMethods{}) + 9*ptrSize - unsafe.Sizeof(renderDeviceVkMethods{})

	_ = unsafe.Sizeof(deviceContextVkMethods{}) - unsafe.Sizeof(deviceContextMethods{}) - 3*ptrSize
	_ = unsafe.Sizeof(deviceContextMethods{}) + 3*ptrSize - unsafe.Sizeof(deviceContextVkMethods{})

	_ = unsafe.Sizeof(engineFactoryVkMethods{}) - unsafe.Sizeof(engineFactoryMethods{}) - 3*ptrSize
	_ = unsafe.Sizeof(engineFactoryMethods{}) + 3*ptrSize - unsafe.Sizeof(engineFactoryVkMethods{})
)

type bufferVk struct{ buffer }

func BufferVkFromHandle(h Handle) BufferVk {
	if h == 0 {
		return nil
	}
	return bufferVk{buffer{deviceObject{object{handle: h}}}}
}

func (b bufferVk) vk() *bufferVkMethods { return vtblOf[bufferVkMethods](b.handle) }

func (b bufferVk) GetVkBuffer() uint64 {
	return uint64(call(b.vk().GetVkBuffer, uintptr(b.handle)))
}

func (b bufferVk) SetAccessFlags(accessFlags uint32) {
	call(b.vk().SetAccessFlags, uintptr(b.handle), uintptr(accessFlags))
}

func (b bufferVk) GetAccessFlags() uint32 {
	return uint32(call(b.vk().GetAccessFlags, uintptr(b.handle)))
}

func (b bufferVk) GetVkDeviceAddress() uint64 {
	return uint64(call(b.vk().GetVkDeviceAddress, uintptr(b.handle)))
}

type bufferViewVk struct{ bufferView }

func BufferViewVkFromHandle(h Handle) BufferViewVk {
	if h == 0 {
		return nil
	}
	return bufferViewVk{bufferView{deviceObject{object{handle: h}}}}
}

func (v bufferViewVk) GetVkBufferView() uint64 {
	return uint64(call(vtblOf[bufferViewVkMethods](v.handle).GetVkBufferView, uintptr(v.handle)))
}

type textureVk struct{ texture }

func TextureVkFromHandle(h Handle) TextureVk {
	if h == 0 {
		return nil
	}
	return textureVk{texture{deviceObject{object{handle: h}}}}
}

func (t textureVk) vk() *textureVkMethods { return vtblOf[textureVkMethods](t.handle) }

func (t textureVk) GetVkImage() uint64 {
	return uint64(call(t.vk().GetVkImage, uintptr(t.handle)))
}

func (t textureVk) SetLayout(layout int32) {
	call(t.vk().SetLayout, uintptr(t.handle), uintptr(uint32(layout)))
}

func (t textureVk) GetLayout() int32 {
	return int32(call(t.vk().GetLayout, uintptr(t.handle)))
}

type textureViewVk struct{ textureView }

func TextureViewVkFromHandle(h Handle) TextureViewVk {
	if h == 0 {
		return nil
	}
	return textureViewVk{textureView{deviceObject{object{handle: h}}}}
}

func (v textureViewVk) GetVulkanImageView() uint64 {
	return uint64(call(vtblOf[textureViewVkMethods](v.handle).GetVulkanImageView, uintptr(v.handle)))
}

type samplerVk struct{ sampler }

func SamplerVkFromHandle(h Handle) SamplerVk {
	if h == 0 {
		return nil
	}
	return samplerVk{sampler{deviceObject{object{handle: h}}}}
}

func (s samplerVk) GetVkSampler() uint64 {
	return uint64(call(vtblOf[samplerVkMethods](s.handle).GetVkSampler, uintptr(s.handle)))
}

type fenceVk struct{ fence }

func FenceVkFromHandle(h Handle) FenceVk {
	if h == 0 {
		return nil
	}
	return fenceVk{fence{deviceObject{object{handle: h}}}}
}

func (f fenceVk) GetVkSemaphore() uint64 {
	return uint64(call(vtblOf[fenceVkMethods](f.handle).GetVkSemaphore, uintptr(f.handle)))
}

type swapChainVk struct{ swapChain }

func SwapChainVkFromHandle(h Handle) SwapChainVk {
	if h == 0 {
		return nil
	}
	return swapChainVk{swapChain{object{handle: h}}}
}

func (s swapChainVk) GetVkSwapChain() uint64 {
	return uint64(call(vtblOf[swapChainVkMethods](s.handle).GetVkSwapChain, uintptr(s.handle)))
}

type renderDeviceVk struct{ renderDevice }

func RenderDeviceVkFromHandle(h Handle) RenderDeviceVk {
	if h == 0 {
		return nil
	}
	return renderDeviceVk{renderDevice{object{handle: h}}}
}

func (d renderDeviceVk) vk() *renderDeviceVkMethods { return vtblOf[renderDeviceVkMethods](d.handle) }

func (d renderDeviceVk) GetVkDevice() uintptr {
	return call(d.vk().GetVkDevice, uintptr(d.handle))
}

func (d renderDeviceVk) GetVkPhysicalDevice() uintptr {
	return call(d.vk().GetVkPhysicalDevice, uintptr(d.handle))
}

func (d renderDeviceVk) GetVkInstance() uintptr {
	return call(d.vk().GetVkInstance, uintptr(d.handle))
}

func (d renderDeviceVk) GetVkVersion() uint32 {
	return uint32(call(d.vk().GetVkVersion, uintptr(d.handle)))
}

func (d renderDeviceVk) CreateTextureFromVulkanImage(image uint64, desc *TextureDesc, initialState ResourceState) Texture {
	var out Handle
	call(d.vk().CreateTextureFromVulkanImage, uintptr(d.handle), uintptr(image), ptr(desc), uintptr(initialState), ptr(&out))
	return TextureFromHandle(out)
}

func (d renderDeviceVk) CreateBufferFromVulkanResource(buffer uint64, desc *BufferDesc, initialState ResourceState) Buffer {
	var out Handle
	call(d.vk().CreateBufferFromVulkanResource, uintptr(d.handle), uintptr(buffer), ptr(desc), uintptr(initialState), ptr(&out))
	return BufferFromHandle(out)
}

func (d renderDeviceVk) CreateFenceFromVulkanResource(semaphore uint64, desc *FenceDesc) Fence {
	var out Handle
	call(d.vk().CreateFenceFromVulkanResource, uintptr(d.handle), uintptr(semaphore), ptr(desc), ptr(&out))
	return FenceFromHandle(out)
}

type deviceContextVk struct{ deviceContext }

func DeviceContextVkFromHandle(h Handle) DeviceContextVk {
	if h == 0 {
		return nil
	}
	return deviceContextVk{deviceContext{object{handle: h}}}
}

func (c deviceContextVk) vk() *deviceContextVkMethods { return vtblOf[deviceContextVkMethods](c.handle) }

func (c deviceContextVk) TransitionImageLayout(texture Texture, newLayout int32) {
	call(c.vk().TransitionImageLayout, uintptr(c.handle), handleOf(texture), uintptr(uint32(newLayout)))
}

func (c deviceContextVk) BufferMemoryBarrier(buffer Buffer, newAccessFlags uint32) {
	call(c.vk().BufferMemoryBarrier, uintptr(c.handle), handleOf(buffer), uintptr(newAccessFlags))
}

func (c deviceContextVk) GetVkCommandBuffer() uintptr {
	return call(c.vk().GetVkCommandBuffer, uintptr(c.handle))
}

type engineFactoryVk struct{ engineFactory }

func EngineFactoryVkFromHandle(h Handle) EngineFactoryVk {
	if h == 0 {
		return nil
	}
	return engineFactoryVk{engineFactory{object{handle: h}}}
}

func (f engineFactoryVk) vk() *engineFactoryVkMethods { return vtblOf[engineFactoryVkMethods](f.handle) }

func (f engineFactoryVk) CreateDeviceAndContextsVk(ci *EngineVkCreateInfo) (RenderDevice, []DeviceContext) {
	return createDeviceAndContexts(f.vk().CreateDeviceAndContextsVk, f.handle, unsafe.Pointer(ci), &ci.EngineCreateInfo)
}

func (f engineFactoryVk) CreateSwapChainVk(device RenderDevice, immediateContext DeviceContext, desc *SwapChainDesc, window *NativeWindow) SwapChain {
	var out Handle
	call(f.vk().CreateSwapChainVk, uintptr(f.handle), handleOf(device), handleOf(immediateContext), ptr(desc), ptr(window), ptr(&out))
	return SwapChainFromHandle(out)
}

func (f engineFactoryVk) EnableDeviceSimulation() {
	call(f.vk().EnableDeviceSimulation, uintptr(f.handle))
}
