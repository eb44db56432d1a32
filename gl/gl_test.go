package gl

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/diligent"
	"github.com/vkngwrapper/diligent/driver"
	"github.com/vkngwrapper/diligent/driver/mocks"
	"go.uber.org/mock/gomock"
)

func TestTextureHandles(t *testing.T) {
	ctrl := gomock.NewController(t)

	native := mocks.EasyMockTextureGL(ctrl)
	texture := PortTexture(diligent.TextureFromDriver(native, nil))

	native.EXPECT().GetGLTextureHandle().Return(uint32(7))
	native.EXPECT().GetBindTarget().Return(Texture2DArray)
	require.Equal(t, uint32(7), texture.GLTextureHandle())
	require.Equal(t, Texture2DArray, texture.BindTarget())

	native.EXPECT().Release().Return(int32(0))
	texture.Release()
}

func TestCreateTextureFromGLHandle(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeDevice := mocks.EasyMockRenderDeviceGL(ctrl)
	device := PortRenderDevice(diligent.RenderDeviceFromDriver(nativeDevice, nil))
	defer func() {
		nativeDevice.EXPECT().Release().Return(int32(0))
		device.Release()
	}()

	nativeTexture := mocks.EasyMockTexture(ctrl)
	nativeDevice.EXPECT().CreateTextureFromGLHandle(uint32(12), Texture2D, gomock.Any(), driver.ResourceStateUnknown).
		DoAndReturn(func(handle, target uint32, desc *driver.TextureDesc, state driver.ResourceState) driver.Texture {
			require.Equal(t, "Canvas", driver.GoString(desc.Name))
			return nativeTexture
		})

	desc := diligent.NewTextureDesc()
	desc.Name = "Canvas"
	desc.Type = diligent.ResourceDimTex2D
	desc.Width = 256
	desc.Height = 256
	desc.Format = diligent.TexFormatRGBA8Unorm

	texture, err := device.CreateTextureFromGLHandle(12, Texture2D, desc, diligent.ResourceStateUnknown)
	require.NoError(t, err)

	nativeTexture.EXPECT().Release().Return(int32(0))
	texture.Release()

	nativeDevice.EXPECT().CreateBufferFromGLHandle(uint32(3), gomock.Any(), driver.ResourceStateUnknown).Return(nil)
	bufferDesc := diligent.NewBufferDesc()
	bufferDesc.Name = "Vertices"
	buffer, err := device.CreateBufferFromGLHandle(3, bufferDesc, diligent.ResourceStateUnknown)
	require.Nil(t, buffer)
	require.True(t, errors.Is(err, diligent.ErrCreationFailed))
}

func TestDeviceContextSwapChain(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx := mocks.EasyMockDeviceContextGL(ctrl)
	immediate := diligent.ImmediateDeviceContextFromDriver(nativeCtx, nil)
	ctx := PortDeviceContext(&immediate.DeviceContext)

	nativeSwapChain := mocks.EasyMockSwapChainGL(ctrl)
	swapChain := PortSwapChain(diligent.SwapChainFromDriver(nativeSwapChain, nil))

	nativeCtx.EXPECT().UpdateCurrentGLContext().Return(true)
	require.True(t, ctx.UpdateCurrentGLContext())

	nativeCtx.EXPECT().SetSwapChain(nativeSwapChain)
	ctx.SetSwapChain(swapChain.SwapChain)

	nativeSwapChain.EXPECT().GetDefaultFBO().Return(uint32(0))
	require.Zero(t, swapChain.DefaultFBO())

	nativeSwapChain.EXPECT().Release().Return(int32(0))
	nativeCtx.EXPECT().Release().Return(int32(0))
	swapChain.Release()
	immediate.Release()
}
