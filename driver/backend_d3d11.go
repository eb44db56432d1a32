package driver

import "unsafe"

type BufferD3D11 interface {
	Buffer
	GetD3D11Buffer() uintptr
}

type TextureD3D11 interface {
	Texture
	GetD3D11Texture() uintptr
}

type RenderDeviceD3D11 interface {
	RenderDevice
	GetD3D11Device() uintptr
	CreateBufferFromD3DResource(resource uintptr, desc *BufferDesc, initialState ResourceState) Buffer
	CreateTexture1DFromD3DResource(resource uintptr, initialState ResourceState) Texture
	CreateTexture2DFromD3DResource(resource uintptr, initialState ResourceState) Texture
	CreateTexture3DFromD3DResource(resource uintptr, initialState ResourceState) Texture
}

type DeviceContextD3D11 interface {
	DeviceContext
	GetD3D11DeviceContext() uintptr
}

type SwapChainD3D11 interface {
	SwapChain
	GetDXGISwapChain() uintptr
}

type EngineFactoryD3D11 interface {
	EngineFactory
	CreateDeviceAndContextsD3D11(ci *EngineD3D11CreateInfo) (RenderDevice, []DeviceContext)
	CreateSwapChainD3D11(device RenderDevice, immediateContext DeviceContext, desc *SwapChainDesc, fullScreenDesc *FullScreenModeDesc, window *NativeWindow) SwapChain
	EnumerateDisplayModes(minFeatureLevel Version, adapterID, outputID uint32, format TextureFormat) []DisplayModeAttribs
}

type bufferD3D11Methods struct {
	bufferMethods
	GetD3D11Buffer uintptr
}

type textureD3D11Methods struct {
	textureMethods
	GetD3D11Texture uintptr
}

type renderDeviceD3D11Methods struct {
	renderDeviceMethods
	GetD3D11Device                 uintptr
	CreateBufferFromD3DResource    uintptr
	CreateTexture1DFromD3DResource uintptr
	CreateTexture2DFromD3DResource uintptr
	CreateTexture3DFromD3DResource uintptr
}

type deviceContextD3D11Methods struct {
	deviceContextMethods
	GetD3D11DeviceContext uintptr
}

type swapChainD3D11Methods struct {
	swapChainMethods
	GetDXGISwapChain uintptr
}

type engineFactoryD3D11Methods struct {
	engineFactoryMethods
	CreateDeviceAndContextsD3D11 uintptr
	AttachToD3D11Device          uintptr
	CreateSwapChainD3D11         uintptr
	EnumerateDisplayModes        uintptr
}

const (
	_ = unsafe.Sizeof(renderDeviceD3D11Methods{}) - unsafe.Sizeof(renderDeviceMethods{}) - 5*ptrSize
	_ = unsafe.Sizeof(renderDeviceMethods{}) + 5*ptrSize - unsafe.Sizeof(renderDeviceD3D11Methods{})

	_ = unsafe.Sizeof(engineFactoryD3D11Methods{}) - unsafe.Sizeof(engineFactoryMethods{}) - 4*ptrSize
	_ = unsafe.Sizeof(engineFactoryMethods{}) + 4*ptrSize - unsafe.Sizeof(engineFactoryD3D11Methods{})
)

type bufferD3D11 struct{ buffer }

func BufferD3D11FromHandle(h Handle) BufferD3D11 {
	if h == 0 {
		return nil
	}
	return bufferD3D11{buffer{deviceObject{object{handle: h}}}}
}

func (b bufferD3D11) GetD3D11Buffer() uintptr {
	return call(vtblOf[bufferD3D11Methods](b.handle).GetD3D11Buffer, uintptr(b.handle))
}

type textureD3D11 struct{ texture }

func TextureD3D11FromHandle(h Handle) TextureD3D11 {
	if h == 0 {
		return nil
	}
	return textureD3D11{texture{deviceObject{object{handle: h}}}}
}

func (t textureD3D11) GetD3D11Texture() uintptr {
	return call(vtblOf[textureD3D11Methods](t.handle).GetD3D11Texture, uintptr(t.handle))
}

type renderDeviceD3D11 struct{ renderDevice }

func RenderDeviceD3D11FromHandle(h Handle) RenderDeviceD3D11 {
	if h == 0 {
		return nil
	}
	return renderDeviceD3D11{renderDevice{object{handle: h}}}
}

func (d renderDeviceD3D11) d3d11() *renderDeviceD3D11Methods {
	return vtblOf[renderDeviceD3D11Methods](d.handle)
}

func (d renderDeviceD3D11) GetD3D11Device() uintptr {
	return call(d.d3d11().GetD3D11Device, uintptr(d.handle))
}

func (d renderDeviceD3D11) CreateBufferFromD3DResource(resource uintptr, desc *BufferDesc, initialState ResourceState) Buffer {
	var out Handle
	call(d.d3d11().CreateBufferFromD3DResource, uintptr(d.handle), resource, ptr(desc), uintptr(initialState), ptr(&out))
	return BufferFromHandle(out)
}

func (d renderDeviceD3D11) createTexture(fn, resource uintptr, initialState ResourceState) Texture {
	var out Handle
	call(fn, uintptr(d.handle), resource, uintptr(initialState), ptr(&out))
	return TextureFromHandle(out)
}

func (d renderDeviceD3D11) CreateTexture1DFromD3DResource(resource uintptr, initialState ResourceState) Texture {
	return d.createTexture(d.d3d11().CreateTexture1DFromD3DResource, resource, initialState)
}

func (d renderDeviceD3D11) CreateTexture2DFromD3DResource(resource uintptr, initialState ResourceState) Texture {
	return d.createTexture(d.d3d11().CreateTexture2DFromD3DResource, resource, initialState)
}

func (d renderDeviceD3D11) CreateTexture3DFromD3DResource(resource uintptr, initialState ResourceState) Texture {
	return d.createTexture(d.d3d11().CreateTexture3DFromD3DResource, resource, initialState)
}

type deviceContextD3D11 struct{ deviceContext }

func DeviceContextD3D11FromHandle(h Handle) DeviceContextD3D11 {
	if h == 0 {
		return nil
	}
	return deviceContextD3D11{deviceContext{object{handle: h}}}
}

func (c deviceContextD3D11) GetD3D11DeviceContext() uintptr {
	return call(vtblOf[deviceContextD3D11Methods](c.handle).GetD3D11DeviceContext, uintptr(c.handle))
}

type swapChainD3D11 struct{ swapChain }

func SwapChainD3D11FromHandle(h Handle) SwapChainD3D11 {
	if h == 0 {
		return nil
	}
	return swapChainD3D11{swapChain{object{handle: h}}}
}

func (s swapChainD3D11) GetDXGISwapChain() uintptr {
	return call(vtblOf[swapChainD3D11Methods](s.handle).GetDXGISwapChain, uintptr(s.handle))
}

type engineFactoryD3D11 struct{ engineFactory }

func EngineFactoryD3D11FromHandle(h Handle) EngineFactoryD3D11 {
	if h == 0 {
		return nil
	}
	return engineFactoryD3D11{engineFactory{object{handle: h}}}
}

func (f engineFactoryD3D11) d3d11() *engineFactoryD3D11Methods {
	return vtblOf[engineFactoryD3D11Methods](f.handle)
}

func (f engineFactoryD3D11) CreateDeviceAndContextsD3D11(ci *EngineD3D11CreateInfo) (RenderDevice, []DeviceContext) {
	return createDeviceAndContexts(f.d3d11().CreateDeviceAndContextsD3D11, f.handle, unsafe.Pointer(ci), &ci.EngineCreateInfo)
}

func (f engineFactoryD3D11) CreateSwapChainD3D11(device RenderDevice, immediateContext DeviceContext, desc *SwapChainDesc, fullScreenDesc *FullScreenModeDesc, window *NativeWindow) SwapChain {
	var out Handle
	call(f.d3d11().CreateSwapChainD3D11, uintptr(f.handle), handleOf(device), handleOf(immediateContext), ptr(desc), ptr(fullScreenDesc), ptr(window), ptr(&out))
	return SwapChainFromHandle(out)
}

func (f engineFactoryD3D11) EnumerateDisplayModes(minFeatureLevel Version, adapterID, outputID uint32, format TextureFormat) []DisplayModeAttribs {
	return enumerateDisplayModes(f.d3d11().EnumerateDisplayModes, f.handle, minFeatureLevel, adapterID, outputID, format)
}
