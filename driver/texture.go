package driver

import "unsafe"

type Texture interface {
	DeviceObject
	GetDesc() *TextureDesc
	CreateView(desc *TextureViewDesc) TextureView
	GetDefaultView(viewType TextureViewType) TextureView
	GetNativeHandle() uint64
	SetState(state ResourceState)
	GetState() ResourceState
}

type TextureView interface {
	DeviceObject
	GetDesc() *TextureViewDesc
	SetSampler(sampler Sampler)
	GetSampler() Sampler
	GetTexture() Texture
}

type Sampler interface {
	DeviceObject
	GetDesc() *SamplerDesc
}

type textureMethods struct {
	deviceObjectMethods
	CreateView          uintptr
	GetDefaultView      uintptr
	GetNativeHandle     uintptr
	SetState            uintptr
	GetState            uintptr
	GetSparseProperties uintptr
}

type textureViewMethods struct {
	deviceObjectMethods
	SetSampler uintptr
	GetSampler uintptr
	GetTexture uintptr
}

type samplerMethods struct {
	deviceObjectMethods
}

const (
	_ = unsafe.Sizeof(textureMethods{}) - 14*ptrSize
	_ = 14*ptrSize - unsafe.Sizeof(textureMethods{})

	_ = unsafe.Sizeof(textureViewMethods{}) - 11*ptrSize
	_ = 11*ptrSize - unsafe.Sizeof(textureViewMethods{})

	_ = unsafe.Sizeof(samplerMethods{}) - 8*ptrSize
	_ = 8*ptrSize - unsafe.Sizeof(samplerMethods{})
)

type texture struct {
	deviceObject
}

func TextureFromHandle(h Handle) Texture {
	if h == 0 {
		return nil
	}
	return texture{deviceObject{object{handle: h}}}
}

func (t texture) methods() *textureMethods {
	return vtblOf[textureMethods](t.handle)
}

func (t texture) GetDesc() *TextureDesc {
	return (*TextureDesc)(t.desc())
}

func (t texture) CreateView(desc *TextureViewDesc) TextureView {
	var out Handle
	call(t.methods().CreateView, uintptr(t.handle), ptr(desc), ptr(&out))
	return TextureViewFromHandle(out)
}

func (t texture) GetDefaultView(viewType TextureViewType) TextureView {
	return TextureViewFromHandle(Handle(call(t.methods().GetDefaultView, uintptr(t.handle), uintptr(viewType))))
}

func (t texture) GetNativeHandle() uint64 {
	return uint64(call(t.methods().GetNativeHandle, uintptr(t.handle)))
}

func (t texture) SetState(state ResourceState) {
	call(t.methods().SetState, uintptr(t.handle), uintptr(state))
}

func (t texture) GetState() ResourceState {
	return ResourceState(call(t.methods().GetState, uintptr(t.handle)))
}

type textureView struct {
	deviceObject
}

func TextureViewFromHandle(h Handle) TextureView {
	if h == 0 {
		return nil
	}
	return textureView{deviceObject{object{handle: h}}}
}

func (v textureView) methods() *textureViewMethods {
	return vtblOf[textureViewMethods](v.handle)
}

func (v textureView) GetDesc() *TextureViewDesc {
	return (*TextureViewDesc)(v.desc())
}

func (v textureView) SetSampler(sampler Sampler) {
	call(v.methods().SetSampler, uintptr(v.handle), handleOf(sampler))
}

func (v textureView) GetSampler() Sampler {
	return SamplerFromHandle(Handle(call(v.methods().GetSampler, uintptr(v.handle))))
}

func (v textureView) GetTexture() Texture {
	return TextureFromHandle(Handle(call(v.methods().GetTexture, uintptr(v.handle))))
}

type sampler struct {
	deviceObject
}

func SamplerFromHandle(h Handle) Sampler {
	if h == 0 {
		return nil
	}
	return sampler{deviceObject{object{handle: h}}}
}

func (s sampler) GetDesc() *SamplerDesc {
	return (*SamplerDesc)(s.desc())
}
