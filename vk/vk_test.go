package vk

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/diligent"
	"github.com/vkngwrapper/diligent/driver"
	"github.com/vkngwrapper/diligent/driver/mocks"
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v2/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v2/khr_portability_subset"
	"go.uber.org/mock/gomock"
)

func TestPortSharesReference(t *testing.T) {
	ctrl := gomock.NewController(t)

	native := mocks.EasyMockBufferVk(ctrl)
	buffer := diligent.BufferFromDriver(native, nil)

	ported := PortBuffer(buffer)
	require.Equal(t, buffer.Handle(), ported.Handle())

	native.EXPECT().GetVkBuffer().Return(uint64(0xbeef))
	require.Equal(t, uint64(0xbeef), ported.VkBuffer())

	native.EXPECT().SetAccessFlags(uint32(core1_0.AccessTransferWrite))
	ported.SetAccessFlags(core1_0.AccessTransferWrite)

	native.EXPECT().GetAccessFlags().Return(uint32(core1_0.AccessShaderRead))
	require.Equal(t, core1_0.AccessShaderRead, ported.AccessFlags())

	native.EXPECT().Release().Return(int32(0)).Times(1)
	ported.Release()
	buffer.Release()
	require.True(t, buffer.IsReleased())
}

func TestPortNil(t *testing.T) {
	require.Nil(t, PortBuffer(nil))
	require.Nil(t, PortTexture(nil))
	require.Nil(t, PortRenderDevice(nil))
	require.Nil(t, PortDeviceContext(nil))
}

func TestTextureLayout(t *testing.T) {
	ctrl := gomock.NewController(t)

	native := mocks.EasyMockTextureVk(ctrl)
	texture := PortTexture(diligent.TextureFromDriver(native, nil))

	native.EXPECT().SetLayout(int32(core1_0.ImageLayoutTransferDstOptimal))
	texture.SetLayout(core1_0.ImageLayoutTransferDstOptimal)

	native.EXPECT().GetLayout().Return(int32(core1_0.ImageLayoutShaderReadOnlyOptimal))
	require.Equal(t, core1_0.ImageLayoutShaderReadOnlyOptimal, texture.Layout())

	native.EXPECT().Release().Return(int32(0))
	texture.Release()
}

func TestCreateTextureFromVulkanImage(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeDevice := mocks.EasyMockRenderDeviceVk(ctrl)
	device := PortRenderDevice(diligent.RenderDeviceFromDriver(nativeDevice, nil))
	defer func() {
		nativeDevice.EXPECT().Release().Return(int32(0))
		device.Release()
	}()

	nativeDevice.EXPECT().GetVkVersion().Return(uint32(common.Vulkan1_0))
	require.Equal(t, common.Vulkan1_0, device.VkVersion())

	nativeTexture := mocks.EasyMockTexture(ctrl)
	nativeDevice.EXPECT().CreateTextureFromVulkanImage(uint64(0x1234), gomock.Any(), driver.ResourceStateShaderResource).
		DoAndReturn(func(image uint64, desc *driver.TextureDesc, state driver.ResourceState) driver.Texture {
			require.Equal(t, "Imported", driver.GoString(desc.Name))
			require.Equal(t, uint32(512), desc.Width)
			return nativeTexture
		})

	desc := diligent.NewTextureDesc()
	desc.Name = "Imported"
	desc.Type = diligent.ResourceDimTex2D
	desc.Width = 512
	desc.Height = 512
	desc.Format = diligent.TexFormatRGBA8Unorm
	desc.BindFlags = diligent.BindShaderResource

	texture, err := device.CreateTextureFromVulkanImage(0x1234, desc, diligent.ResourceStateShaderResource)
	require.NoError(t, err)

	nativeTexture.EXPECT().Release().Return(int32(0))
	texture.Release()

	nativeDevice.EXPECT().CreateFenceFromVulkanResource(uint64(0x99), gomock.Any()).Return(nil)
	fence, err := device.CreateFenceFromVulkanResource(0x99, diligent.FenceDesc{Name: "Timeline"})
	require.Nil(t, fence)
	require.True(t, errors.Is(err, diligent.ErrCreationFailed))
}

func TestDeviceContextBarriers(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx := mocks.EasyMockDeviceContextVk(ctrl)
	immediate := diligent.ImmediateDeviceContextFromDriver(nativeCtx, nil)
	ctx := PortDeviceContext(&immediate.DeviceContext)

	nativeTexture := mocks.EasyMockTexture(ctrl)
	texture := diligent.TextureFromDriver(nativeTexture, nil)
	nativeBuffer := mocks.EasyMockBuffer(ctrl)
	buffer := diligent.BufferFromDriver(nativeBuffer, nil)

	nativeCtx.EXPECT().TransitionImageLayout(nativeTexture, int32(core1_0.ImageLayoutGeneral))
	ctx.TransitionImageLayout(texture, core1_0.ImageLayoutGeneral)

	nativeCtx.EXPECT().BufferMemoryBarrier(nativeBuffer, uint32(core1_0.AccessIndirectCommandRead))
	ctx.BufferMemoryBarrier(buffer, core1_0.AccessIndirectCommandRead)

	nativeTexture.EXPECT().Release().Return(int32(0))
	nativeBuffer.EXPECT().Release().Return(int32(0))
	nativeCtx.EXPECT().Release().Return(int32(0))
	texture.Release()
	buffer.Release()
	immediate.Release()
}

func TestInstanceExtensions(t *testing.T) {
	available := map[string]*core1_0.ExtensionProperties{
		ext_debug_utils.ExtensionName:             {ExtensionName: ext_debug_utils.ExtensionName},
		khr_portability_enumeration.ExtensionName: {ExtensionName: khr_portability_enumeration.ExtensionName},
	}

	names, flags := InstanceExtensions(available, true)
	require.Equal(t, []string{ext_debug_utils.ExtensionName, khr_portability_enumeration.ExtensionName}, names)
	require.Equal(t, khr_portability_enumeration.InstanceCreateEnumeratePortability, flags)

	names, _ = InstanceExtensions(available, false)
	require.Equal(t, []string{khr_portability_enumeration.ExtensionName}, names)

	names, flags = InstanceExtensions(nil, true)
	require.Empty(t, names)
	require.Zero(t, flags)
}

func TestAddExtensions(t *testing.T) {
	ci := diligent.NewEngineVkCreateInfo()
	ci.EnableValidation = true
	ci.InstanceExtensionNames = []string{ext_debug_utils.ExtensionName}

	instance := map[string]*core1_0.ExtensionProperties{
		ext_debug_utils.ExtensionName: {ExtensionName: ext_debug_utils.ExtensionName},
	}
	device := map[string]*core1_0.ExtensionProperties{
		khr_portability_subset.ExtensionName: {ExtensionName: khr_portability_subset.ExtensionName},
	}

	AddExtensions(&ci, instance, device)
	require.Equal(t, []string{ext_debug_utils.ExtensionName}, ci.InstanceExtensionNames)
	require.Equal(t, []string{khr_portability_subset.ExtensionName}, ci.DeviceExtensionNames)
}
