// Package gl exposes the OpenGL objects behind the generic diligent wrappers of a
// device created with diligent.EngineFactoryOpenGL.
//
// Like the other interop packages, the Port functions share the reference of the
// wrapper they are given.
package gl

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/diligent"
	"github.com/vkngwrapper/diligent/driver"
)

// Common texture bind targets for CreateTextureFromGLHandle.
const (
	Texture2D            uint32 = 0x0DE1
	Texture3D            uint32 = 0x806F
	TextureCubeMap       uint32 = 0x8513
	Texture2DArray       uint32 = 0x8C1A
	Texture2DMultisample uint32 = 0x9100
)

type Buffer struct {
	*diligent.Buffer
	drv driver.BufferGL
}

func PortBuffer(buffer *diligent.Buffer) *Buffer {
	if buffer == nil {
		return nil
	}
	return &Buffer{Buffer: buffer, drv: driver.Port(buffer.Driver(), driver.BufferGLFromHandle)}
}

// GLBufferHandle is the GL buffer name.
func (b *Buffer) GLBufferHandle() uint32 {
	return b.drv.GetGLBufferHandle()
}

type Texture struct {
	*diligent.Texture
	drv driver.TextureGL
}

func PortTexture(texture *diligent.Texture) *Texture {
	if texture == nil {
		return nil
	}
	return &Texture{Texture: texture, drv: driver.Port(texture.Driver(), driver.TextureGLFromHandle)}
}

// GLTextureHandle is the GL texture name.
func (t *Texture) GLTextureHandle() uint32 {
	return t.drv.GetGLTextureHandle()
}

// BindTarget is the target the texture is bound to, such as Texture2D.
func (t *Texture) BindTarget() uint32 {
	return t.drv.GetBindTarget()
}

type RenderDevice struct {
	*diligent.RenderDevice
	drv driver.RenderDeviceGL
}

func PortRenderDevice(device *diligent.RenderDevice) *RenderDevice {
	if device == nil {
		return nil
	}
	return &RenderDevice{RenderDevice: device, drv: driver.Port(device.Driver(), driver.RenderDeviceGLFromHandle)}
}

// CreateTextureFromGLHandle wraps a texture created outside of the engine. A bindTarget
// of 0 lets the engine derive it from desc. The engine does not delete the GL object.
func (d *RenderDevice) CreateTextureFromGLHandle(handle, bindTarget uint32, desc diligent.TextureDesc, initialState diligent.ResourceState) (*diligent.Texture, error) {
	d.Logger().Debug("RenderDeviceGL::CreateTextureFromGLHandle")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.Native(arena)
	texture := diligent.TextureFromDriver(d.drv.CreateTextureFromGLHandle(handle, bindTarget, &nativeDesc, initialState.Native()), d.Logger())
	if texture == nil {
		return nil, errors.Wrapf(diligent.ErrCreationFailed, "Texture '%s' from GL texture %d", desc.Name, handle)
	}
	return texture, nil
}

func (d *RenderDevice) CreateBufferFromGLHandle(handle uint32, desc diligent.BufferDesc, initialState diligent.ResourceState) (*diligent.Buffer, error) {
	d.Logger().Debug("RenderDeviceGL::CreateBufferFromGLHandle")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.Native(arena)
	buffer := diligent.BufferFromDriver(d.drv.CreateBufferFromGLHandle(handle, &nativeDesc, initialState.Native()), d.Logger())
	if buffer == nil {
		return nil, errors.Wrapf(diligent.ErrCreationFailed, "Buffer '%s' from GL buffer %d", desc.Name, handle)
	}
	return buffer, nil
}

// CreateDummyTexture creates a texture object with no GL storage, used as a stand-in
// for the default framebuffer.
func (d *RenderDevice) CreateDummyTexture(desc diligent.TextureDesc, initialState diligent.ResourceState) (*diligent.Texture, error) {
	d.Logger().Debug("RenderDeviceGL::CreateDummyTexture")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.Native(arena)
	texture := diligent.TextureFromDriver(d.drv.CreateDummyTexture(&nativeDesc, initialState.Native()), d.Logger())
	if texture == nil {
		return nil, errors.Wrapf(diligent.ErrCreationFailed, "Texture '%s'", desc.Name)
	}
	return texture, nil
}

type DeviceContext struct {
	*diligent.DeviceContext
	drv driver.DeviceContextGL
}

func PortDeviceContext(ctx *diligent.DeviceContext) *DeviceContext {
	if ctx == nil {
		return nil
	}
	return &DeviceContext{DeviceContext: ctx, drv: driver.Port(ctx.Driver(), driver.DeviceContextGLFromHandle)}
}

// UpdateCurrentGLContext makes the engine pick up the GL context current on the calling
// thread. It reports false when no context is current.
func (c *DeviceContext) UpdateCurrentGLContext() bool {
	return c.drv.UpdateCurrentGLContext()
}

// PurgeCurrentGLContextCaches drops the engine's cached objects for the current GL
// context. Call it before the context is destroyed.
func (c *DeviceContext) PurgeCurrentGLContextCaches() {
	c.drv.PurgeCurrentGLContextCaches()
}

// SetSwapChain attaches the swap chain whose default framebuffer the context renders
// to. A nil swap chain detaches it.
func (c *DeviceContext) SetSwapChain(swapChain *diligent.SwapChain) {
	c.drv.SetSwapChain(swapChain.Driver())
}

type SwapChain struct {
	*diligent.SwapChain
	drv driver.SwapChainGL
}

func PortSwapChain(swapChain *diligent.SwapChain) *SwapChain {
	if swapChain == nil {
		return nil
	}
	return &SwapChain{SwapChain: swapChain, drv: driver.Port(swapChain.Driver(), driver.SwapChainGLFromHandle)}
}

// DefaultFBO is the framebuffer name the swap chain presents from.
func (s *SwapChain) DefaultFBO() uint32 {
	return s.drv.GetDefaultFBO()
}
