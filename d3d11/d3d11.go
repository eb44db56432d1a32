// Package d3d11 exposes the Direct3D 11 objects behind the generic diligent wrappers of
// a device created with diligent.EngineFactoryD3D11. COM pointers are returned as
// uintptr without an added reference.
package d3d11

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/diligent"
	"github.com/vkngwrapper/diligent/driver"
)

type Buffer struct {
	*diligent.Buffer
	drv driver.BufferD3D11
}

func PortBuffer(buffer *diligent.Buffer) *Buffer {
	if buffer == nil {
		return nil
	}
	return &Buffer{Buffer: buffer, drv: driver.Port(buffer.Driver(), driver.BufferD3D11FromHandle)}
}

// D3D11Buffer is the ID3D11Buffer.
func (b *Buffer) D3D11Buffer() uintptr {
	return b.drv.GetD3D11Buffer()
}

type Texture struct {
	*diligent.Texture
	drv driver.TextureD3D11
}

func PortTexture(texture *diligent.Texture) *Texture {
	if texture == nil {
		return nil
	}
	return &Texture{Texture: texture, drv: driver.Port(texture.Driver(), driver.TextureD3D11FromHandle)}
}

// D3D11Texture is the ID3D11Resource of the texture.
func (t *Texture) D3D11Texture() uintptr {
	return t.drv.GetD3D11Texture()
}

type RenderDevice struct {
	*diligent.RenderDevice
	drv driver.RenderDeviceD3D11
}

func PortRenderDevice(device *diligent.RenderDevice) *RenderDevice {
	if device == nil {
		return nil
	}
	return &RenderDevice{RenderDevice: device, drv: driver.Port(device.Driver(), driver.RenderDeviceD3D11FromHandle)}
}

// D3D11Device is the ID3D11Device.
func (d *RenderDevice) D3D11Device() uintptr {
	return d.drv.GetD3D11Device()
}

func (d *RenderDevice) CreateBufferFromD3DResource(resource uintptr, desc diligent.BufferDesc, initialState diligent.ResourceState) (*diligent.Buffer, error) {
	d.Logger().Debug("RenderDeviceD3D11::CreateBufferFromD3DResource")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.Native(arena)
	buffer := diligent.BufferFromDriver(d.drv.CreateBufferFromD3DResource(resource, &nativeDesc, initialState.Native()), d.Logger())
	if buffer == nil {
		return nil, errors.Wrapf(diligent.ErrCreationFailed, "Buffer '%s' from ID3D11Buffer %#x", desc.Name, resource)
	}
	return buffer, nil
}

// CreateTextureFromD3DResource wraps an ID3D11Texture1D, ID3D11Texture2D or
// ID3D11Texture3D. dimension names which one resource is; array and cube dimensions
// map to their base texture interface.
func (d *RenderDevice) CreateTextureFromD3DResource(resource uintptr, dimension diligent.ResourceDimension, initialState diligent.ResourceState) (*diligent.Texture, error) {
	d.Logger().Debug("RenderDeviceD3D11::CreateTextureFromD3DResource")

	var native driver.Texture
	switch dimension {
	case diligent.ResourceDimTex1D, diligent.ResourceDimTex1DArray:
		native = d.drv.CreateTexture1DFromD3DResource(resource, initialState.Native())
	case diligent.ResourceDimTex2D, diligent.ResourceDimTex2DArray, diligent.ResourceDimTexCube, diligent.ResourceDimTexCubeArray:
		native = d.drv.CreateTexture2DFromD3DResource(resource, initialState.Native())
	case diligent.ResourceDimTex3D:
		native = d.drv.CreateTexture3DFromD3DResource(resource, initialState.Native())
	default:
		return nil, errors.Newf("cannot create a texture of dimension %s from a D3D11 resource", dimension)
	}

	texture := diligent.TextureFromDriver(native, d.Logger())
	if texture == nil {
		return nil, errors.Wrapf(diligent.ErrCreationFailed, "Texture from ID3D11Resource %#x", resource)
	}
	return texture, nil
}

type DeviceContext struct {
	*diligent.DeviceContext
	drv driver.DeviceContextD3D11
}

func PortDeviceContext(ctx *diligent.DeviceContext) *DeviceContext {
	if ctx == nil {
		return nil
	}
	return &DeviceContext{DeviceContext: ctx, drv: driver.Port(ctx.Driver(), driver.DeviceContextD3D11FromHandle)}
}

// D3D11DeviceContext is the ID3D11DeviceContext.
func (c *DeviceContext) D3D11DeviceContext() uintptr {
	return c.drv.GetD3D11DeviceContext()
}

type SwapChain struct {
	*diligent.SwapChain
	drv driver.SwapChainD3D11
}

func PortSwapChain(swapChain *diligent.SwapChain) *SwapChain {
	if swapChain == nil {
		return nil
	}
	return &SwapChain{SwapChain: swapChain, drv: driver.Port(swapChain.Driver(), driver.SwapChainD3D11FromHandle)}
}

// DXGISwapChain is the IDXGISwapChain.
func (s *SwapChain) DXGISwapChain() uintptr {
	return s.drv.GetDXGISwapChain()
}
