package driver

import "unsafe"

type SwapChain interface {
	Object
	Present(syncInterval uint32)
	GetDesc() *SwapChainDesc
	Resize(newWidth, newHeight uint32, newTransform SurfaceTransform) bool
	SetFullscreenMode(mode *DisplayModeAttribs)
	SetWindowedMode()
	SetMaximumFrameLatency(maxLatency uint32)
	GetCurrentBackBufferRTV() TextureView
	GetDepthBufferDSV() TextureView
}

type swapChainMethods struct {
	objectMethods
	Present                 uintptr
	GetDesc                 uintptr
	Resize                  uintptr
	SetFullscreenMode       uintptr
	SetWindowedMode         uintptr
	SetMaximumFrameLatency  uintptr
	GetCurrentBackBufferRTV uintptr
	GetDepthBufferDSV       uintptr
}

const (
	_ = unsafe.Sizeof(swapChainMethods{}) - 12*ptrSize
	_ = 12*ptrSize - unsafe.Sizeof(swapChainMethods{})
)

type swapChain struct {
	object
}

func SwapChainFromHandle(h Handle) SwapChain {
	if h == 0 {
		return nil
	}
	return swapChain{object{handle: h}}
}

func (s swapChain) methods() *swapChainMethods {
	return vtblOf[swapChainMethods](s.handle)
}

func (s swapChain) Present(syncInterval uint32) {
	call(s.methods().Present, uintptr(s.handle), uintptr(syncInterval))
}

func (s swapChain) GetDesc() *SwapChainDesc {
	return (*SwapChainDesc)(unsafe.Pointer(call(s.methods().GetDesc, uintptr(s.handle))))
}

func (s swapChain) Resize(newWidth, newHeight uint32, newTransform SurfaceTransform) bool {
	return boolRet(call(s.methods().Resize, uintptr(s.handle), uintptr(newWidth), uintptr(newHeight), uintptr(newTransform)))
}

func (s swapChain) SetFullscreenMode(mode *DisplayModeAttribs) {
	call(s.methods().SetFullscreenMode, uintptr(s.handle), ptr(mode))
}

func (s swapChain) SetWindowedMode() {
	call(s.methods().SetWindowedMode, uintptr(s.handle))
}

func (s swapChain) SetMaximumFrameLatency(maxLatency uint32) {
	call(s.methods().SetMaximumFrameLatency, uintptr(s.handle), uintptr(maxLatency))
}

func (s swapChain) GetCurrentBackBufferRTV() TextureView {
	return TextureViewFromHandle(Handle(call(s.methods().GetCurrentBackBufferRTV, uintptr(s.handle))))
}

func (s swapChain) GetDepthBufferDSV() TextureView {
	return TextureViewFromHandle(Handle(call(s.methods().GetDepthBufferDSV, uintptr(s.handle))))
}
