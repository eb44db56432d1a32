// Package vk exposes the Vulkan objects behind the generic diligent wrappers of a
// device created with diligent.EngineFactoryVk.
//
// The Port functions reinterpret a wrapper without taking a reference: the returned
// value shares the reference of the wrapper it was obtained from, and releasing
// either releases both. Porting an object created by another backend is undefined.
//
// Unlike the rest of the module, this package links against the Vulkan loader
// (libvulkan, vulkan-1.dll): it uses the layout and access enums of
// github.com/vkngwrapper/core/v2/core1_0, whose driver links the loader through cgo.
package vk

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/diligent"
	"github.com/vkngwrapper/diligent/driver"
)

type Buffer struct {
	*diligent.Buffer
	drv driver.BufferVk
}

func PortBuffer(buffer *diligent.Buffer) *Buffer {
	if buffer == nil {
		return nil
	}
	return &Buffer{Buffer: buffer, drv: driver.Port(buffer.Driver(), driver.BufferVkFromHandle)}
}

// VkBuffer is the VkBuffer handle.
func (b *Buffer) VkBuffer() uint64 {
	return b.drv.GetVkBuffer()
}

// SetAccessFlags tells the engine which accesses the buffer was last used with outside
// of the engine.
func (b *Buffer) SetAccessFlags(flags core1_0.AccessFlags) {
	b.drv.SetAccessFlags(uint32(flags))
}

func (b *Buffer) AccessFlags() core1_0.AccessFlags {
	return core1_0.AccessFlags(b.drv.GetAccessFlags())
}

// DeviceAddress is the buffer's device address, or 0 when the buffer was not created
// with ray tracing or indirect binding.
func (b *Buffer) DeviceAddress() uint64 {
	return b.drv.GetVkDeviceAddress()
}

type BufferView struct {
	*diligent.BufferView
	drv driver.BufferViewVk
}

func PortBufferView(view *diligent.BufferView) *BufferView {
	if view == nil {
		return nil
	}
	return &BufferView{BufferView: view, drv: driver.Port(view.Driver(), driver.BufferViewVkFromHandle)}
}

func (v *BufferView) VkBufferView() uint64 {
	return v.drv.GetVkBufferView()
}

type Texture struct {
	*diligent.Texture
	drv driver.TextureVk
}

func PortTexture(texture *diligent.Texture) *Texture {
	if texture == nil {
		return nil
	}
	return &Texture{Texture: texture, drv: driver.Port(texture.Driver(), driver.TextureVkFromHandle)}
}

func (t *Texture) VkImage() uint64 {
	return t.drv.GetVkImage()
}

// SetLayout tells the engine the layout the image was left in outside of the engine.
func (t *Texture) SetLayout(layout core1_0.ImageLayout) {
	t.drv.SetLayout(int32(layout))
}

func (t *Texture) Layout() core1_0.ImageLayout {
	return core1_0.ImageLayout(t.drv.GetLayout())
}

type TextureView struct {
	*diligent.TextureView
	drv driver.TextureViewVk
}

func PortTextureView(view *diligent.TextureView) *TextureView {
	if view == nil {
		return nil
	}
	return &TextureView{TextureView: view, drv: driver.Port(view.Driver(), driver.TextureViewVkFromHandle)}
}

func (v *TextureView) VkImageView() uint64 {
	return v.drv.GetVulkanImageView()
}

type Sampler struct {
	*diligent.Sampler
	drv driver.SamplerVk
}

func PortSampler(sampler *diligent.Sampler) *Sampler {
	if sampler == nil {
		return nil
	}
	return &Sampler{Sampler: sampler, drv: driver.Port(sampler.Driver(), driver.SamplerVkFromHandle)}
}

func (s *Sampler) VkSampler() uint64 {
	return s.drv.GetVkSampler()
}

type Fence struct {
	*diligent.Fence
	drv driver.FenceVk
}

func PortFence(fence *diligent.Fence) *Fence {
	if fence == nil {
		return nil
	}
	return &Fence{Fence: fence, drv: driver.Port(fence.Driver(), driver.FenceVkFromHandle)}
}

// VkSemaphore is the timeline semaphore backing the fence.
func (f *Fence) VkSemaphore() uint64 {
	return f.drv.GetVkSemaphore()
}

type SwapChain struct {
	*diligent.SwapChain
	drv driver.SwapChainVk
}

func PortSwapChain(swapChain *diligent.SwapChain) *SwapChain {
	if swapChain == nil {
		return nil
	}
	return &SwapChain{SwapChain: swapChain, drv: driver.Port(swapChain.Driver(), driver.SwapChainVkFromHandle)}
}

func (s *SwapChain) VkSwapchain() uint64 {
	return s.drv.GetVkSwapChain()
}

type RenderDevice struct {
	*diligent.RenderDevice
	drv driver.RenderDeviceVk
}

func PortRenderDevice(device *diligent.RenderDevice) *RenderDevice {
	if device == nil {
		return nil
	}
	return &RenderDevice{RenderDevice: device, drv: driver.Port(device.Driver(), driver.RenderDeviceVkFromHandle)}
}

func (d *RenderDevice) VkDevice() uintptr {
	return d.drv.GetVkDevice()
}

func (d *RenderDevice) VkPhysicalDevice() uintptr {
	return d.drv.GetVkPhysicalDevice()
}

func (d *RenderDevice) VkInstance() uintptr {
	return d.drv.GetVkInstance()
}

// VkVersion is the Vulkan API version the device was created with.
func (d *RenderDevice) VkVersion() common.APIVersion {
	return common.APIVersion(d.drv.GetVkVersion())
}

// CreateTextureFromVulkanImage wraps an image created outside of the engine. The
// engine does not take ownership of image; it must outlive the texture.
func (d *RenderDevice) CreateTextureFromVulkanImage(image uint64, desc diligent.TextureDesc, initialState diligent.ResourceState) (*diligent.Texture, error) {
	d.Logger().Debug("RenderDeviceVk::CreateTextureFromVulkanImage")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.Native(arena)
	texture := diligent.TextureFromDriver(d.drv.CreateTextureFromVulkanImage(image, &nativeDesc, initialState.Native()), d.Logger())
	if texture == nil {
		return nil, errors.Wrapf(diligent.ErrCreationFailed, "Texture '%s' from VkImage %#x", desc.Name, image)
	}
	return texture, nil
}

// CreateBufferFromVulkanResource wraps a buffer created outside of the engine. The
// engine does not take ownership of buffer.
func (d *RenderDevice) CreateBufferFromVulkanResource(buffer uint64, desc diligent.BufferDesc, initialState diligent.ResourceState) (*diligent.Buffer, error) {
	d.Logger().Debug("RenderDeviceVk::CreateBufferFromVulkanResource")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.Native(arena)
	wrapped := diligent.BufferFromDriver(d.drv.CreateBufferFromVulkanResource(buffer, &nativeDesc, initialState.Native()), d.Logger())
	if wrapped == nil {
		return nil, errors.Wrapf(diligent.ErrCreationFailed, "Buffer '%s' from VkBuffer %#x", desc.Name, buffer)
	}
	return wrapped, nil
}

// CreateFenceFromVulkanResource wraps a timeline semaphore created outside of the
// engine.
func (d *RenderDevice) CreateFenceFromVulkanResource(semaphore uint64, desc diligent.FenceDesc) (*diligent.Fence, error) {
	d.Logger().Debug("RenderDeviceVk::CreateFenceFromVulkanResource")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.Native(arena)
	fence := diligent.FenceFromDriver(d.drv.CreateFenceFromVulkanResource(semaphore, &nativeDesc), d.Logger())
	if fence == nil {
		return nil, errors.Wrapf(diligent.ErrCreationFailed, "Fence '%s' from VkSemaphore %#x", desc.Name, semaphore)
	}
	return fence, nil
}

type DeviceContext struct {
	*diligent.DeviceContext
	drv driver.DeviceContextVk
}

func PortDeviceContext(ctx *diligent.DeviceContext) *DeviceContext {
	if ctx == nil {
		return nil
	}
	return &DeviceContext{DeviceContext: ctx, drv: driver.Port(ctx.Driver(), driver.DeviceContextVkFromHandle)}
}

// TransitionImageLayout records a layout transition of texture and updates the state
// the engine tracks for it.
func (c *DeviceContext) TransitionImageLayout(texture *diligent.Texture, layout core1_0.ImageLayout) {
	c.drv.TransitionImageLayout(texture.Driver(), int32(layout))
}

// BufferMemoryBarrier records a barrier that makes buffer available to accesses.
func (c *DeviceContext) BufferMemoryBarrier(buffer *diligent.Buffer, accesses core1_0.AccessFlags) {
	c.drv.BufferMemoryBarrier(buffer.Driver(), uint32(accesses))
}

// VkCommandBuffer is the command buffer currently being recorded. Commands written to
// it directly must leave the pipeline state the engine expects.
func (c *DeviceContext) VkCommandBuffer() uintptr {
	return c.drv.GetVkCommandBuffer()
}
