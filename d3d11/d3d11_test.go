package d3d11

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/diligent"
	"github.com/vkngwrapper/diligent/driver"
	"github.com/vkngwrapper/diligent/driver/mocks"
	"go.uber.org/mock/gomock"
)

func TestCreateTextureFromD3DResourceDimension(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeDevice := mocks.EasyMockRenderDeviceD3D11(ctrl)
	device := PortRenderDevice(diligent.RenderDeviceFromDriver(nativeDevice, nil))
	defer func() {
		nativeDevice.EXPECT().Release().Return(int32(0))
		device.Release()
	}()

	cube := mocks.EasyMockTexture(ctrl)
	nativeDevice.EXPECT().CreateTexture2DFromD3DResource(uintptr(0x200), driver.ResourceStateShaderResource).Return(cube)

	texture, err := device.CreateTextureFromD3DResource(0x200, diligent.ResourceDimTexCube, diligent.ResourceStateShaderResource)
	require.NoError(t, err)
	cube.EXPECT().Release().Return(int32(0))
	texture.Release()

	volume := mocks.EasyMockTexture(ctrl)
	nativeDevice.EXPECT().CreateTexture3DFromD3DResource(uintptr(0x300), driver.ResourceStateUnknown).Return(volume)

	texture, err = device.CreateTextureFromD3DResource(0x300, diligent.ResourceDimTex3D, diligent.ResourceStateUnknown)
	require.NoError(t, err)
	volume.EXPECT().Release().Return(int32(0))
	texture.Release()

	_, err = device.CreateTextureFromD3DResource(0x400, diligent.ResourceDimBuffer, diligent.ResourceStateUnknown)
	require.Error(t, err)
	require.False(t, errors.Is(err, diligent.ErrCreationFailed))

	nativeDevice.EXPECT().CreateTexture1DFromD3DResource(uintptr(0x100), driver.ResourceStateUnknown).Return(nil)
	_, err = device.CreateTextureFromD3DResource(0x100, diligent.ResourceDimTex1D, diligent.ResourceStateUnknown)
	require.True(t, errors.Is(err, diligent.ErrCreationFailed))
}

func TestNativeHandles(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeBuffer := mocks.EasyMockBufferD3D11(ctrl)
	buffer := PortBuffer(diligent.BufferFromDriver(nativeBuffer, nil))
	nativeBuffer.EXPECT().GetD3D11Buffer().Return(uintptr(0xb0))
	require.Equal(t, uintptr(0xb0), buffer.D3D11Buffer())

	nativeSwapChain := mocks.EasyMockSwapChainD3D11(ctrl)
	swapChain := PortSwapChain(diligent.SwapChainFromDriver(nativeSwapChain, nil))
	nativeSwapChain.EXPECT().GetDXGISwapChain().Return(uintptr(0xd0))
	require.Equal(t, uintptr(0xd0), swapChain.DXGISwapChain())

	nativeBuffer.EXPECT().Release().Return(int32(0))
	nativeSwapChain.EXPECT().Release().Return(int32(0))
	buffer.Release()
	swapChain.Release()
}
