package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
	"golang.org/x/exp/slog"
)

// Texture is an image resource created by RenderDevice.CreateTexture or obtained from
// a swap chain view.
type Texture struct {
	deviceObject
	drv driver.Texture
}

func wrapTexture(native driver.Texture, logger *slog.Logger) *Texture {
	t := &Texture{drv: native}
	t.adoptDevice(native, "Texture", logger)
	return t
}

// TextureFromDriver wraps a driver texture, taking over the reference the caller holds.
func TextureFromDriver(native driver.Texture, logger *slog.Logger) *Texture {
	return fromOwned(native, loggerOrDiscard(logger), wrapTexture)
}

func (t *Texture) handle() driver.Handle {
	if t == nil {
		return 0
	}
	return t.drv.Handle()
}

func (t *Texture) Driver() driver.Texture {
	if t == nil {
		return nil
	}
	return t.drv
}

func (t *Texture) Ref() *Texture {
	return fromBorrowed(t.drv, t.logger, wrapTexture)
}

func (t *Texture) Desc() TextureDesc {
	return textureDescFromNative(t.drv.GetDesc())
}

func (t *Texture) CreateView(desc TextureViewDesc) (*TextureView, error) {
	t.logger.Debug("Texture::CreateView")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	view := fromOwned(t.drv.CreateView(&nativeDesc), t.logger, wrapTextureView)
	if view == nil {
		return nil, creationFailed("TextureView", desc.Name)
	}
	return view, nil
}

// DefaultView returns a new reference to the texture's default view of the given type,
// or nil when the bind flags of the texture do not allow one.
func (t *Texture) DefaultView(viewType TextureViewType) *TextureView {
	return fromBorrowed(t.drv.GetDefaultView(viewType.native()), t.logger, wrapTextureView)
}

// NativeHandle is the backend handle of the texture: a VkImage, an ID3D12Resource
// pointer, an ID3D11Resource pointer or a GL texture name.
func (t *Texture) NativeHandle() uint64 {
	return t.drv.GetNativeHandle()
}

func (t *Texture) SetState(state ResourceState) {
	t.drv.SetState(state.native())
}

func (t *Texture) State() ResourceState {
	return ResourceState(t.drv.GetState())
}

// TextureView is a view of a Texture used for binding it to the pipeline.
type TextureView struct {
	deviceObject
	drv driver.TextureView
}

func wrapTextureView(native driver.TextureView, logger *slog.Logger) *TextureView {
	v := &TextureView{drv: native}
	v.adoptDevice(native, "TextureView", logger)
	return v
}

func TextureViewFromDriver(native driver.TextureView, logger *slog.Logger) *TextureView {
	return fromOwned(native, loggerOrDiscard(logger), wrapTextureView)
}

func (v *TextureView) handle() driver.Handle {
	if v == nil {
		return 0
	}
	return v.drv.Handle()
}

func (v *TextureView) Driver() driver.TextureView {
	if v == nil {
		return nil
	}
	return v.drv
}

func (v *TextureView) Ref() *TextureView {
	return fromBorrowed(v.drv, v.logger, wrapTextureView)
}

func (v *TextureView) Desc() TextureViewDesc {
	return textureViewDescFromNative(v.drv.GetDesc())
}

// SetSampler attaches a sampler to a shader resource view. Passing nil detaches it.
func (v *TextureView) SetSampler(sampler *Sampler) {
	v.drv.SetSampler(sampler.Driver())
}

// Sampler returns a new reference to the attached sampler, or nil.
func (v *TextureView) Sampler() *Sampler {
	return fromBorrowed(v.drv.GetSampler(), v.logger, wrapSampler)
}

// Texture returns a new reference to the viewed texture.
func (v *TextureView) Texture() *Texture {
	return fromBorrowed(v.drv.GetTexture(), v.logger, wrapTexture)
}

type Sampler struct {
	deviceObject
	drv driver.Sampler
}

func wrapSampler(native driver.Sampler, logger *slog.Logger) *Sampler {
	s := &Sampler{drv: native}
	s.adoptDevice(native, "Sampler", logger)
	return s
}

func SamplerFromDriver(native driver.Sampler, logger *slog.Logger) *Sampler {
	return fromOwned(native, loggerOrDiscard(logger), wrapSampler)
}

func (s *Sampler) handle() driver.Handle {
	if s == nil {
		return 0
	}
	return s.drv.Handle()
}

func (s *Sampler) Driver() driver.Sampler {
	if s == nil {
		return nil
	}
	return s.drv
}

func (s *Sampler) Ref() *Sampler {
	return fromBorrowed(s.drv, s.logger, wrapSampler)
}

func (s *Sampler) Desc() SamplerDesc {
	return samplerDescFromNative(s.drv.GetDesc())
}
