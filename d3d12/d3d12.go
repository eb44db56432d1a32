// Package d3d12 exposes the Direct3D 12 objects behind the generic diligent wrappers of
// a device created with diligent.EngineFactoryD3D12. COM pointers are returned as
// uintptr without an added reference.
package d3d12

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/diligent"
	"github.com/vkngwrapper/diligent/driver"
)

// ResourceStates mirrors D3D12_RESOURCE_STATES.
type ResourceStates uint32

const (
	ResourceStateCommon                  ResourceStates = 0
	ResourceStateVertexAndConstantBuffer ResourceStates = 0x1
	ResourceStateIndexBuffer             ResourceStates = 0x2
	ResourceStateRenderTarget            ResourceStates = 0x4
	ResourceStateUnorderedAccess         ResourceStates = 0x8
	ResourceStateDepthWrite              ResourceStates = 0x10
	ResourceStateDepthRead               ResourceStates = 0x20
	ResourceStateNonPixelShaderResource  ResourceStates = 0x40
	ResourceStatePixelShaderResource     ResourceStates = 0x80
	ResourceStateIndirectArgument        ResourceStates = 0x200
	ResourceStateCopyDest                ResourceStates = 0x400
	ResourceStateCopySource              ResourceStates = 0x800
	ResourceStateGenericRead             ResourceStates = 0xAC3
	ResourceStatePresent                 ResourceStates = 0
)

type Buffer struct {
	*diligent.Buffer
	drv driver.BufferD3D12
}

func PortBuffer(buffer *diligent.Buffer) *Buffer {
	if buffer == nil {
		return nil
	}
	return &Buffer{Buffer: buffer, drv: driver.Port(buffer.Driver(), driver.BufferD3D12FromHandle)}
}

// D3D12Buffer returns the ID3D12Resource holding the buffer and the offset of the
// buffer's data in it. Dynamic buffers live in the context's upload ring, so ctx must
// be the context the buffer was last mapped on; it is ignored for other buffers.
func (b *Buffer) D3D12Buffer(ctx *diligent.DeviceContext) (resource uintptr, offset uint64) {
	return b.drv.GetD3D12Buffer(ctx.Driver())
}

func (b *Buffer) SetResourceState(state ResourceStates) {
	b.drv.SetD3D12ResourceState(uint32(state))
}

func (b *Buffer) ResourceState() ResourceStates {
	return ResourceStates(b.drv.GetD3D12ResourceState())
}

type Texture struct {
	*diligent.Texture
	drv driver.TextureD3D12
}

func PortTexture(texture *diligent.Texture) *Texture {
	if texture == nil {
		return nil
	}
	return &Texture{Texture: texture, drv: driver.Port(texture.Driver(), driver.TextureD3D12FromHandle)}
}

// D3D12Texture is the ID3D12Resource of the texture.
func (t *Texture) D3D12Texture() uintptr {
	return t.drv.GetD3D12Texture()
}

// SetResourceState tells the engine the state the texture was left in outside of the
// engine.
func (t *Texture) SetResourceState(state ResourceStates) {
	t.drv.SetD3D12ResourceState(uint32(state))
}

func (t *Texture) ResourceState() ResourceStates {
	return ResourceStates(t.drv.GetD3D12ResourceState())
}

type RenderDevice struct {
	*diligent.RenderDevice
	drv driver.RenderDeviceD3D12
}

func PortRenderDevice(device *diligent.RenderDevice) *RenderDevice {
	if device == nil {
		return nil
	}
	return &RenderDevice{RenderDevice: device, drv: driver.Port(device.Driver(), driver.RenderDeviceD3D12FromHandle)}
}

// D3D12Device is the ID3D12Device.
func (d *RenderDevice) D3D12Device() uintptr {
	return d.drv.GetD3D12Device()
}

// CreateTextureFromD3DResource wraps an ID3D12Resource. The texture description is
// read from the resource.
func (d *RenderDevice) CreateTextureFromD3DResource(resource uintptr, initialState diligent.ResourceState) (*diligent.Texture, error) {
	d.Logger().Debug("RenderDeviceD3D12::CreateTextureFromD3DResource")

	texture := diligent.TextureFromDriver(d.drv.CreateTextureFromD3DResource(resource, initialState.Native()), d.Logger())
	if texture == nil {
		return nil, errors.Wrapf(diligent.ErrCreationFailed, "Texture from ID3D12Resource %#x", resource)
	}
	return texture, nil
}

func (d *RenderDevice) CreateBufferFromD3DResource(resource uintptr, desc diligent.BufferDesc, initialState diligent.ResourceState) (*diligent.Buffer, error) {
	d.Logger().Debug("RenderDeviceD3D12::CreateBufferFromD3DResource")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.Native(arena)
	buffer := diligent.BufferFromDriver(d.drv.CreateBufferFromD3DResource(resource, &nativeDesc, initialState.Native()), d.Logger())
	if buffer == nil {
		return nil, errors.Wrapf(diligent.ErrCreationFailed, "Buffer '%s' from ID3D12Resource %#x", desc.Name, resource)
	}
	return buffer, nil
}

type DeviceContext struct {
	*diligent.DeviceContext
	drv driver.DeviceContextD3D12
}

func PortDeviceContext(ctx *diligent.DeviceContext) *DeviceContext {
	if ctx == nil {
		return nil
	}
	return &DeviceContext{DeviceContext: ctx, drv: driver.Port(ctx.Driver(), driver.DeviceContextD3D12FromHandle)}
}

// D3D12CommandList is the ID3D12GraphicsCommandList currently being recorded.
func (c *DeviceContext) D3D12CommandList() uintptr {
	return c.drv.GetD3D12CommandList()
}

func (c *DeviceContext) TransitionTextureState(texture *diligent.Texture, state ResourceStates) {
	c.drv.TransitionTextureState(texture.Driver(), uint32(state))
}

func (c *DeviceContext) TransitionBufferState(buffer *diligent.Buffer, state ResourceStates) {
	c.drv.TransitionBufferState(buffer.Driver(), uint32(state))
}

type SwapChain struct {
	*diligent.SwapChain
	drv driver.SwapChainD3D12
}

func PortSwapChain(swapChain *diligent.SwapChain) *SwapChain {
	if swapChain == nil {
		return nil
	}
	return &SwapChain{SwapChain: swapChain, drv: driver.Port(swapChain.Driver(), driver.SwapChainD3D12FromHandle)}
}

// DXGISwapChain is the IDXGISwapChain.
func (s *SwapChain) DXGISwapChain() uintptr {
	return s.drv.GetDXGISwapChain()
}
