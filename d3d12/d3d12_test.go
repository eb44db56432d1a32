package d3d12

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/diligent"
	"github.com/vkngwrapper/diligent/driver"
	"github.com/vkngwrapper/diligent/driver/mocks"
	"go.uber.org/mock/gomock"
)

func TestBufferResourceState(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx := mocks.EasyMockDeviceContextD3D12(ctrl)
	immediate := diligent.ImmediateDeviceContextFromDriver(nativeCtx, nil)

	native := mocks.EasyMockBufferD3D12(ctrl)
	buffer := PortBuffer(diligent.BufferFromDriver(native, nil))

	native.EXPECT().GetD3D12Buffer(nativeCtx).Return(uintptr(0xd12), uint64(4096))
	resource, offset := buffer.D3D12Buffer(&immediate.DeviceContext)
	require.Equal(t, uintptr(0xd12), resource)
	require.Equal(t, uint64(4096), offset)

	native.EXPECT().SetD3D12ResourceState(uint32(ResourceStateCopyDest))
	buffer.SetResourceState(ResourceStateCopyDest)

	native.EXPECT().GetD3D12ResourceState().Return(uint32(ResourceStateGenericRead))
	require.Equal(t, ResourceStateGenericRead, buffer.ResourceState())

	native.EXPECT().Release().Return(int32(0))
	nativeCtx.EXPECT().Release().Return(int32(0))
	buffer.Release()
	immediate.Release()
}

func TestTransitionTextureState(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx := mocks.EasyMockDeviceContextD3D12(ctrl)
	immediate := diligent.ImmediateDeviceContextFromDriver(nativeCtx, nil)
	ctx := PortDeviceContext(&immediate.DeviceContext)

	nativeTexture := mocks.EasyMockTextureD3D12(ctrl)
	texture := diligent.TextureFromDriver(nativeTexture, nil)

	nativeCtx.EXPECT().TransitionTextureState(nativeTexture, uint32(ResourceStatePixelShaderResource))
	ctx.TransitionTextureState(texture, ResourceStatePixelShaderResource)

	nativeCtx.EXPECT().GetD3D12CommandList().Return(uintptr(0xc0ffee))
	require.Equal(t, uintptr(0xc0ffee), ctx.D3D12CommandList())

	nativeTexture.EXPECT().Release().Return(int32(0))
	nativeCtx.EXPECT().Release().Return(int32(0))
	texture.Release()
	immediate.Release()
}

func TestCreateTextureFromD3DResource(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeDevice := mocks.EasyMockRenderDeviceD3D12(ctrl)
	device := PortRenderDevice(diligent.RenderDeviceFromDriver(nativeDevice, nil))
	defer func() {
		nativeDevice.EXPECT().Release().Return(int32(0))
		device.Release()
	}()

	nativeTexture := mocks.EasyMockTexture(ctrl)
	nativeDevice.EXPECT().CreateTextureFromD3DResource(uintptr(0x500), driver.ResourceStateRenderTarget).Return(nativeTexture)

	texture, err := device.CreateTextureFromD3DResource(0x500, diligent.ResourceStateRenderTarget)
	require.NoError(t, err)
	require.Equal(t, nativeTexture.Handle(), texture.Handle())

	nativeTexture.EXPECT().Release().Return(int32(0))
	texture.Release()
}
