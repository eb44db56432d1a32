package driver

import "unsafe"

type BufferGL interface {
	Buffer
	GetGLBufferHandle() uint32
}

type TextureGL interface {
	Texture
	GetGLTextureHandle() uint32
	GetBindTarget() uint32
}

type RenderDeviceGL interface {
	RenderDevice
	CreateTextureFromGLHandle(glHandle, glBindTarget uint32, desc *TextureDesc, initialState ResourceState) Texture
	CreateBufferFromGLHandle(glHandle uint32, desc *BufferDesc, initialState ResourceState) Buffer
	CreateDummyTexture(desc *TextureDesc, initialState ResourceState) Texture
}

type DeviceContextGL interface {
	DeviceContext
	UpdateCurrentGLContext() bool
	PurgeCurrentGLContextCaches()
	SetSwapChain(swapChain SwapChain)
}

type SwapChainGL interface {
	SwapChain
	GetDefaultFBO() uint32
}

type EngineFactoryOpenGL interface {
	EngineFactory
	CreateDeviceAndSwapChainGL(ci *EngineGLCreateInfo, desc *SwapChainDesc) (RenderDevice, []DeviceContext, SwapChain)
	AttachToActiveGLContext(ci *EngineGLCreateInfo) (RenderDevice, []DeviceContext)
}

type bufferGLMethods struct {
	bufferMethods
	GetGLBufferHandle uintptr
}

type textureGLMethods struct {
	textureMethods
	GetGLTextureHandle uintptr
	GetBindTarget      uintptr
}

type renderDeviceGLMethods struct {
	renderDeviceMethods
	CreateTextureFromGLHandle uintptr
	CreateBufferFromGLHandle  uintptr
	CreateDummyTexture        uintptr
}

type deviceContextGLMethods struct {
	deviceContextMethods
	UpdateCurrentGLContext      uintptr
	PurgeCurrentGLContextCaches uintptr
	SetSwapChain                uintptr
}

type swapChainGLMethods struct {
	swapChainMethods
	GetDefaultFBO uintptr
}

type engineFactoryOpenGLMethods struct {
	engineFactoryMethods
	CreateDeviceAndSwapChainGL uintptr
	CreateHLSL2GLSLConverter   uintptr
	AttachToActiveGLContext    uintptr
}

const (
	_ = unsafe.Sizeof(renderDeviceGLMethods{}) - unsafe.Sizeof(renderDeviceMethods{}) - 3*ptrSize
	_ = unsafe.Sizeof(renderDeviceMethods{}) + 3*ptrSize - unsafe.Sizeof(renderDeviceGLMethods{})

	_ = unsafe.Sizeof(deviceContextGLMethods{}) - unsafe.Sizeof(deviceContextMethods{}) - 3*ptrSize
	_ = unsafe.Sizeof(deviceContextMethods{}) + 3*ptrSize - unsafe.Sizeof(deviceContextGLMethods{})

	_ = unsafe.Sizeof(engineFactoryOpenGLMethods{}) - unsafe.Sizeof(engineFactoryMethods{}) - 3*ptrSize
	_ = unsafe.Sizeof(engineFactoryMethods{}) + 3*ptrSize - unsafe.Sizeof(engineFactoryOpenGLMethods{})
)

type bufferGL struct{ buffer }

func BufferGLFromHandle(h Handle) BufferGL {
	if h == 0 {
		return nil
	}
	return bufferGL{buffer{deviceObject{object{handle: h}}}}
}

func (b bufferGL) GetGLBufferHandle() uint32 {
	return uint32(call(vtblOf[bufferGLMethods](b.handle).GetGLBufferHandle, uintptr(b.handle)))
}

type textureGL struct{ texture }

func TextureGLFromHandle(h Handle) TextureGL {
	if h == 0 {
		return nil
	}
	return textureGL{texture{deviceObject{object{handle: h}}}}
}

func (t textureGL) GetGLTextureHandle() uint32 {
	return uint32(call(vtblOf[textureGLMethods](t.handle).GetGLTextureHandle, uintptr(t.handle)))
}

func (t textureGL) GetBindTarget() uint32 {
	return uint32(call(vtblOf[textureGLMethods](t.handle).GetBindTarget, uintptr(t.handle)))
}

type renderDeviceGL struct{ renderDevice }

func RenderDeviceGLFromHandle(h Handle) RenderDeviceGL {
	if h == 0 {
		return nil
	}
	return renderDeviceGL{renderDevice{object{handle: h}}}
}

func (d renderDeviceGL) gl() *renderDeviceGLMethods { return vtblOf[renderDeviceGLMethods](d.handle) }

func (d renderDeviceGL) CreateTextureFromGLHandle(glHandle, glBindTarget uint32, desc *TextureDesc, initialState ResourceState) Texture {
	var out Handle
	call(d.gl().CreateTextureFromGLHandle, uintptr(d.handle), uintptr(glHandle), uintptr(glBindTarget), ptr(desc), uintptr(initialState), ptr(&out))
	return TextureFromHandle(out)
}

func (d renderDeviceGL) CreateBufferFromGLHandle(glHandle uint32, desc *BufferDesc, initialState ResourceState) Buffer {
	var out Handle
	call(d.gl().CreateBufferFromGLHandle, uintptr(d.handle), uintptr(glHandle), ptr(desc), uintptr(initialState), ptr(&out))
	return BufferFromHandle(out)
}

func (d renderDeviceGL) CreateDummyTexture(desc *TextureDesc, initialState ResourceState) Texture {
	var out Handle
	call(d.gl().CreateDummyTexture, uintptr(d.handle), ptr(desc), uintptr(initialState), ptr(&out))
	return TextureFromHandle(out)
}

type deviceContextGL struct{ deviceContext }

func DeviceContextGLFromHandle(h Handle) DeviceContextGL {
	if h == 0 {
		return nil
	}
	return deviceContextGL{deviceContext{object{handle: h}}}
}

func (c deviceContextGL) gl() *deviceContextGLMethods { return vtblOf[deviceContextGLMethods](c.handle) }

func (c deviceContextGL) UpdateCurrentGLContext() bool {
	return boolRet(call(c.gl().UpdateCurrentGLContext, uintptr(c.handle)))
}

func (c deviceContextGL) PurgeCurrentGLContextCaches() {
	call(c.gl().PurgeCurrentGLContextCaches, uintptr(c.handle))
}

func (c deviceContextGL) SetSwapChain(swapChain SwapChain) {
	call(c.gl().SetSwapChain, uintptr(c.handle), handleOf(swapChain))
}

type swapChainGL struct{ swapChain }

func SwapChainGLFromHandle(h Handle) SwapChainGL {
	if h == 0 {
		return nil
	}
	return swapChainGL{swapChain{object{handle: h}}}
}

func (s swapChainGL) GetDefaultFBO() uint32 {
	return uint32(call(vtblOf[swapChainGLMethods](s.handle).GetDefaultFBO, uintptr(s.handle)))
}

type engineFactoryOpenGL struct{ engineFactory }

func EngineFactoryOpenGLFromHandle(h Handle) EngineFactoryOpenGL {
	if h == 0 {
		return nil
	}
	return engineFactoryOpenGL{engineFactory{object{handle: h}}}
}

func (f engineFactoryOpenGL) gl() *engineFactoryOpenGLMethods {
	return vtblOf[engineFactoryOpenGLMethods](f.handle)
}

func (f engineFactoryOpenGL) CreateDeviceAndSwapChainGL(ci *EngineGLCreateInfo, desc *SwapChainDesc) (RenderDevice, []DeviceContext, SwapChain) {
	var device, swapChain Handle
	handles := make([]Handle, contextCount(&ci.EngineCreateInfo))
	call(f.gl().CreateDeviceAndSwapChainGL, uintptr(f.handle), ptr(ci), ptr(&device), ptr(&handles[0]), ptr(desc), ptr(&swapChain))
	return RenderDeviceFromHandle(device), contextsFromHandles(handles), SwapChainFromHandle(swapChain)
}

func (f engineFactoryOpenGL) AttachToActiveGLContext(ci *EngineGLCreateInfo) (RenderDevice, []DeviceContext) {
	return createDeviceAndContexts(f.gl().AttachToActiveGLContext, f.handle, unsafe.Pointer(ci), &ci.EngineCreateInfo)
}
