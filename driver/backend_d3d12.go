package driver

import "unsafe"

type BufferD3D12 interface {
	Buffer
	GetD3D12Buffer(context DeviceContext) (uintptr, uint64)
	SetD3D12ResourceState(state uint32)
	GetD3D12ResourceState() uint32
}

type TextureD3D12 interface {
	Texture
	GetD3D12Texture() uintptr
	SetD3D12ResourceState(state uint32)
	GetD3D12ResourceState() uint32
}

type RenderDeviceD3D12 interface {
	RenderDevice
	GetD3D12Device() uintptr
	CreateTextureFromD3DResource(resource uintptr, initialState ResourceState) Texture
	CreateBufferFromD3DResource(resource uintptr, desc *BufferDesc, initialState ResourceState) Buffer
}

type DeviceContextD3D12 interface {
	DeviceContext
	GetD3D12CommandList() uintptr
	TransitionTextureState(texture Texture, state uint32)
	TransitionBufferState(buffer Buffer, state uint32)
}

type SwapChainD3D12 interface {
	SwapChain
	GetDXGISwapChain() uintptr
}

type EngineFactoryD3D12 interface {
	EngineFactory
	LoadD3D12(dllName *byte) bool
	CreateDeviceAndContextsD3D12(ci *EngineD3D12CreateInfo) (RenderDevice, []DeviceContext)
	CreateSwapChainD3D12(device RenderDevice, immediateContext DeviceContext, desc *SwapChainDesc, fullScreenDesc *FullScreenModeDesc, window *NativeWindow) SwapChain
	EnumerateDisplayModes(minFeatureLevel Version, adapterID, outputID uint32, format TextureFormat) []DisplayModeAttribs
}

type bufferD3D12Methods struct {
	bufferMethods
	GetD3D12Buffer        uintptr
	SetD3D12ResourceState uintptr
	GetD3D12ResourceState uintptr
}

type textureD3D12Methods struct {
	textureMethods
	GetD3D12Texture       uintptr
	SetD3D12ResourceState uintptr
	GetD3D12ResourceState uintptr
}

type renderDeviceD3D12Methods struct {
	renderDeviceMethods
	GetD3D12Device               uintptr
	CreateTextureFromD3DResource uintptr
	CreateBufferFromD3DResource  uintptr
	CreateBLASFromD3DResource    uintptr
	CreateTLASFromD3DResource    uintptr
}

type deviceContextD3D12Methods struct {
	deviceContextMethods
	GetD3D12CommandList    uintptr
	TransitionTextureState uintptr
	TransitionBufferState  uintptr
}

type swapChainD3D12Methods struct {
	swapChainMethods
	GetDXGISwapChain uintptr
}

type engineFactoryD3D12Methods struct {
	engineFactoryMethods
	LoadD3D12                    uintptr
	CreateDeviceAndContextsD3D12 uintptr
	CreateCommandQueueD3D12      uintptr
	AttachToD3D12Device          uintptr
	CreateSwapChainD3D12         uintptr
	EnumerateDisplayModes        uintptr
}

const (
	_ = unsafe.Sizeof(renderDeviceD3D12Methods{}) - unsafe.Sizeof(renderDeviceMethods{}) - 5*ptrSize
	_ = unsafe.Sizeof(renderDeviceMethods{}) + 5*ptrSize - unsafe.Sizeof(renderDeviceD3D12Methods{})

	_ = unsafe.Sizeof(engineFactoryD3D12Methods{}) - unsafe.Sizeof(engineFactoryMethods{}) - 6*ptrSize
	_ = unsafe.Sizeof(engineFactoryMethods{}) + 6*ptrSize - unsafe.Sizeof(engineFactoryD3D12Methods{})
)

type bufferD3D12 struct{ buffer }

func BufferD3D12FromHandle(h Handle) BufferD3D12 {
	if h == 0 {
		return nil
	}
	return bufferD3D12{buffer{deviceObject{object{handle: h}}}}
}

func (b bufferD3D12) d3d12() *bufferD3D12Methods { return vtblOf[bufferD3D12Methods](b.handle) }

func (b bufferD3D12) GetD3D12Buffer(context DeviceContext) (uintptr, uint64) {
	var offset uint64
	resource := call(b.d3d12().GetD3D12Buffer, uintptr(b.handle), ptr(&offset), handleOf(context))
	return resource, offset
}

func (b bufferD3D12) SetD3D12ResourceState(state uint32) {
	call(b.d3d12().SetD3D12ResourceState, uintptr(b.handle), uintptr(state))
}

func (b bufferD3D12) GetD3D12ResourceState() uint32 {
	return uint32(call(b.d3d12().GetD3D12ResourceState, uintptr(b.handle)))
}

type textureD3D12 struct{ texture }

func TextureD3D12FromHandle(h Handle) TextureD3D12 {
	if h == 0 {
		return nil
	}
	return textureD3D12{texture{deviceObject{object{handle: h}}}}
}

func (t textureD3D12) d3d12() *textureD3D12Methods { return vtblOf[textureD3D12Methods](t.handle) }

func (t textureD3D12) GetD3D12Texture() uintptr {
	return call(t.d3d12().GetD3D12Texture, uintptr(t.handle))
}

func (t textureD3D12) SetD3D12ResourceState(state uint32) {
	call(t.d3d12().SetD3D12ResourceState, uintptr(t.handle), uintptr(state))
}

func (t textureD3D12) GetD3D12ResourceState() uint32 {
	return uint32(call(t.d3d12().GetD3D12ResourceState, uintptr(t.handle)))
}

type renderDeviceD3D12 struct{ renderDevice }

func RenderDeviceD3D12FromHandle(h Handle) RenderDeviceD3D12 {
	if h == 0 {
		return nil
	}
	return renderDeviceD3D12{renderDevice{object{handle: h}}}
}

func (d renderDeviceD3D12) d3d12() *renderDeviceD3D12Methods {
	return vtblOf[renderDeviceD3D12Methods](d.handle)
}

func (d renderDeviceD3D12) GetD3D12Device() uintptr {
	return call(d.d3d12().GetD3D12Device, uintptr(d.handle))
}

func (d renderDeviceD3D12) CreateTextureFromD3DResource(resource uintptr, initialState ResourceState) Texture {
	var out Handle
	call(d.d3d12().CreateTextureFromD3DResource, uintptr(d.handle), resource, uintptr(initialState), ptr(&out))
	return TextureFromHandle(out)
}

func (d renderDeviceD3D12) CreateBufferFromD3DResource(resource uintptr, desc *BufferDesc, initialState ResourceState) Buffer {
	var out Handle
	call(d.d3d12().CreateBufferFromD3DResource, uintptr(d.handle), resource, ptr(desc), uintptr(initialState), ptr(&out))
	return BufferFromHandle(out)
}

type deviceContextD3D12 struct{ deviceContext }

func DeviceContextD3D12FromHandle(h Handle) DeviceContextD3D12 {
	if h == 0 {
		return nil
	}
	return deviceContextD3D12{deviceContext{object{handle: h}}}
}

func (c deviceContextD3D12) d3d12() *deviceContextD3D12Methods {
	return vtblOf[deviceContextD3D12Methods](c.handle)
}

func (c deviceContextD3D12) GetD3D12CommandList() uintptr {
	return call(c.d3d12().GetD3D12CommandList, uintptr(c.handle))
}

func (c deviceContextD3D12) TransitionTextureState(texture Texture, state uint32) {
	call(c.d3d12().TransitionTextureState, uintptr(c.handle), handleOf(texture), uintptr(state))
}

func (c deviceContextD3D12) TransitionBufferState(buffer Buffer, state uint32) {
	call(c.d3d12().TransitionBufferState, uintptr(c.handle), handleOf(buffer), uintptr(state))
}

type swapChainD3D12 struct{ swapChain }

func SwapChainD3D12FromHandle(h Handle) SwapChainD3D12 {
	if h == 0 {
		return nil
	}
	return swapChainD3D12{swapChain{object{handle: h}}}
}

func (s swapChainD3D12) GetDXGISwapChain() uintptr {
	return call(vtblOf[swapChainD3D12Methods](s.handle).GetDXGISwapChain, uintptr(s.handle))
}

type engineFactoryD3D12 struct{ engineFactory }

func EngineFactoryD3D12FromHandle(h Handle) EngineFactoryD3D12 {
	if h == 0 {
		return nil
	}
	return engineFactoryD3D12{engineFactory{object{handle: h}}}
}

func (f engineFactoryD3D12) d3d12() *engineFactoryD3D12Methods {
	return vtblOf[engineFactoryD3D12Methods](f.handle)
}

func (f engineFactoryD3D12) LoadD3D12(dllName *byte) bool {
	return boolRet(call(f.d3d12().LoadD3D12, uintptr(f.handle), ptr(dllName)))
}

func (f engineFactoryD3D12) CreateDeviceAndContextsD3D12(ci *EngineD3D12CreateInfo) (RenderDevice, []DeviceContext) {
	return createDeviceAndContexts(f.d3d12().CreateDeviceAndContextsD3D12, f.handle, unsafe.Pointer(ci), &ci.EngineCreateInfo)
}

func (f engineFactoryD3D12) CreateSwapChainD3D12(device RenderDevice, immediateContext DeviceContext, desc *SwapChainDesc, fullScreenDesc *FullScreenModeDesc, window *NativeWindow) SwapChain {
	var out Handle
	call(f.d3d12().CreateSwapChainD3D12, uintptr(f.handle), handleOf(device), handleOf(immediateContext), ptr(desc), ptr(fullScreenDesc), ptr(window), ptr(&out))
	return SwapChainFromHandle(out)
}

func (f engineFactoryD3D12) EnumerateDisplayModes(minFeatureLevel Version, adapterID, outputID uint32, format TextureFormat) []DisplayModeAttribs {
	return enumerateDisplayModes(f.d3d12().EnumerateDisplayModes, f.handle, minFeatureLevel, adapterID, outputID, format)
}
