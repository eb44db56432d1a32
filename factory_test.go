package diligent

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/diligent/driver"
	"github.com/vkngwrapper/diligent/driver/mocks"
	"github.com/vkngwrapper/diligent/internal/registry"
	"go.uber.org/mock/gomock"
)

func TestVerifyAPIVersionMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)

	native := mocks.EasyMockEngineFactory(ctrl)
	native.EXPECT().GetAPIInfo().Return(&driver.APIInfo{APIVersion: driver.APIVersion + 1})
	factory := EngineFactoryFromDriver(native, nil)

	err := factory.VerifyAPI()
	require.True(t, errors.Is(err, ErrAPIMismatch))

	native.EXPECT().GetAPIInfo().Return(&driver.APIInfo{APIVersion: driver.APIVersion})
	require.NoError(t, factory.VerifyAPI())

	native.EXPECT().Release().Return(int32(0))
	factory.Release()
}

func TestCreateDataBlobGrowsToData(t *testing.T) {
	ctrl := gomock.NewController(t)

	native := mocks.EasyMockEngineFactory(ctrl)
	factory := EngineFactoryFromDriver(native, nil)
	defer func() {
		native.EXPECT().Release().Return(int32(0))
		factory.Release()
	}()

	contents := []byte("cache")
	nativeBlob := mocks.EasyMockDataBlob(ctrl)
	native.EXPECT().CreateDataBlob(uint64(5), gomock.Not(gomock.Eq(unsafe.Pointer(nil)))).
		DoAndReturn(func(initialSize uint64, data unsafe.Pointer) driver.DataBlob {
			require.Equal(t, contents, unsafe.Slice((*byte)(data), initialSize))
			return nativeBlob
		})

	blob, err := factory.CreateDataBlob(2, contents)
	require.NoError(t, err)
	require.Equal(t, 1, registry.Default.References(uintptr(nativeBlob.Handle())))

	nativeBlob.EXPECT().Release().Return(int32(0))
	blob.Release()

	native.EXPECT().CreateDataBlob(uint64(64), gomock.Eq(unsafe.Pointer(nil))).Return(nil)
	blob, err = factory.CreateDataBlob(64, nil)
	require.Nil(t, blob)
	require.True(t, errors.Is(err, ErrCreationFailed))
}

func TestCreateDefaultShaderSourceStreamFactoryJoinsDirectories(t *testing.T) {
	ctrl := gomock.NewController(t)

	native := mocks.EasyMockEngineFactory(ctrl)
	factory := EngineFactoryFromDriver(native, nil)
	defer func() {
		native.EXPECT().Release().Return(int32(0))
		factory.Release()
	}()

	nativeStreams := mocks.EasyMockShaderSourceInputStreamFactory(ctrl)
	native.EXPECT().CreateDefaultShaderSourceStreamFactory(gomock.Any()).
		DoAndReturn(func(dirs *byte) driver.ShaderSourceInputStreamFactory {
			require.Equal(t, "shaders;shaders/include", driver.GoString(dirs))
			return nativeStreams
		})

	streams, err := factory.CreateDefaultShaderSourceStreamFactory("shaders", "shaders/include")
	require.NoError(t, err)

	nativeStreams.EXPECT().Release().Return(int32(0))
	streams.Release()
}

func TestEnumerateAdapters(t *testing.T) {
	ctrl := gomock.NewController(t)

	native := mocks.EasyMockEngineFactory(ctrl)
	factory := EngineFactoryFromDriver(native, nil)
	defer func() {
		native.EXPECT().Release().Return(int32(0))
		factory.Release()
	}()

	var discrete driver.GraphicsAdapterInfo
	copy(discrete.Description[:], "Discrete GPU")
	discrete.Type = driver.AdapterTypeDiscrete
	discrete.VendorID = 0x10de
	discrete.NumQueues = 2
	discrete.Queues[0].QueueType = driver.CommandQueueTypeGraphics
	discrete.Queues[0].MaxDeviceContexts = 1
	discrete.Queues[1].QueueType = driver.CommandQueueTypeTransfer
	discrete.Queues[1].MaxDeviceContexts = 2

	var software driver.GraphicsAdapterInfo
	copy(software.Description[:], "Software Rasterizer")
	software.Type = driver.AdapterTypeSoftware

	native.EXPECT().EnumerateAdapters(Version{Major: 1, Minor: 2}).Return([]driver.GraphicsAdapterInfo{discrete, software})

	adapters := factory.EnumerateAdapters(Version{Major: 1, Minor: 2})
	require.Len(t, adapters, 2)

	require.Equal(t, "Discrete GPU", adapters[0].Description)
	require.Equal(t, AdapterTypeDiscrete, adapters[0].Type)
	require.Equal(t, uint32(0x10de), adapters[0].VendorID)
	require.Len(t, adapters[0].Queues, 2)
	require.Equal(t, CommandQueueTypeTransfer, adapters[0].Queues[1].QueueType)
	require.Equal(t, uint32(2), adapters[0].Queues[1].MaxDeviceContexts)

	require.Equal(t, "Software Rasterizer", adapters[1].Description)
	require.Equal(t, AdapterTypeSoftware, adapters[1].Type)
	require.Empty(t, adapters[1].Queues)
}

func TestCreateDeviceAndContextsSplitsContexts(t *testing.T) {
	ctrl := gomock.NewController(t)

	native := mocks.EasyMockEngineFactoryVk(ctrl)
	factory := wrapEngineFactoryVk(native, discardLogger)
	defer func() {
		native.EXPECT().Release().Return(int32(0))
		factory.Release()
	}()

	nativeDevice := mocks.EasyMockRenderDevice(ctrl)
	nativeImmediate := mocks.EasyMockDeviceContext(ctrl)
	nativeDeferred := []*mocks.MockDeviceContext{mocks.EasyMockDeviceContext(ctrl), mocks.EasyMockDeviceContext(ctrl)}

	native.EXPECT().CreateDeviceAndContextsVk(gomock.Any()).
		DoAndReturn(func(ci *driver.EngineVkCreateInfo) (driver.RenderDevice, []driver.DeviceContext) {
			require.Equal(t, uint32(2), ci.NumDeferredContexts)
			require.True(t, ci.EnableValidation)
			return nativeDevice, []driver.DeviceContext{nativeImmediate, nativeDeferred[0], nativeDeferred[1]}
		})

	ci := NewEngineVkCreateInfo()
	ci.NumDeferredContexts = 2
	ci.EnableValidation = true

	device, immediate, deferred, err := factory.CreateDeviceAndContexts(ci)
	require.NoError(t, err)
	require.NotNil(t, device)
	require.Len(t, immediate, 1)
	require.Len(t, deferred, 2)
	require.Equal(t, nativeImmediate.Handle(), immediate[0].Handle())
	require.Equal(t, nativeDeferred[1].Handle(), deferred[1].Handle())

	nativeDevice.EXPECT().Release().Return(int32(0))
	nativeImmediate.EXPECT().Release().Return(int32(0))
	for _, d := range nativeDeferred {
		d.EXPECT().Release().Return(int32(0))
	}

	for _, c := range deferred {
		c.Release()
	}
	immediate[0].Release()
	device.Release()
}

func TestCreateDeviceAndContextsFailureReleasesContexts(t *testing.T) {
	ctrl := gomock.NewController(t)

	native := mocks.EasyMockEngineFactoryVk(ctrl)
	factory := wrapEngineFactoryVk(native, discardLogger)
	defer func() {
		native.EXPECT().Release().Return(int32(0))
		factory.Release()
	}()

	orphan := mocks.EasyMockDeviceContext(ctrl)
	orphan.EXPECT().Release().Return(int32(0)).Times(1)
	native.EXPECT().CreateDeviceAndContextsVk(gomock.Any()).Return(nil, []driver.DeviceContext{orphan})

	device, immediate, deferred, err := factory.CreateDeviceAndContexts(NewEngineVkCreateInfo())
	require.Nil(t, device)
	require.Nil(t, immediate)
	require.Nil(t, deferred)
	require.True(t, errors.Is(err, ErrCreationFailed))
}

func TestCreateDeviceAndContextsWithoutImmediateReleasesDeferred(t *testing.T) {
	ctrl := gomock.NewController(t)

	native := mocks.EasyMockEngineFactoryVk(ctrl)
	factory := wrapEngineFactoryVk(native, discardLogger)
	defer func() {
		native.EXPECT().Release().Return(int32(0))
		factory.Release()
	}()

	nativeDevice := mocks.EasyMockRenderDeviceVk(ctrl)
	nativeDeferred := mocks.EasyMockDeviceContext(ctrl)
	native.EXPECT().CreateDeviceAndContextsVk(gomock.Any()).Return(nativeDevice, []driver.DeviceContext{nil, nativeDeferred})
	nativeDeferred.EXPECT().Release().Return(int32(0)).Times(1)
	nativeDevice.EXPECT().Release().Return(int32(0)).Times(1)

	ci := NewEngineVkCreateInfo()
	ci.NumDeferredContexts = 1

	device, immediate, deferred, err := factory.CreateDeviceAndContexts(ci)
	require.Nil(t, device)
	require.Nil(t, immediate)
	require.Nil(t, deferred)
	require.True(t, errors.Is(err, ErrCreationFailed))
	require.Equal(t, 0, registry.Default.References(uintptr(nativeDeferred.Handle())))
	require.Equal(t, 0, registry.Default.References(uintptr(nativeDevice.Handle())))
}

func TestCreateSwapChainFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	native := mocks.EasyMockEngineFactoryVk(ctrl)
	factory := wrapEngineFactoryVk(native, discardLogger)
	defer func() {
		native.EXPECT().Release().Return(int32(0))
		factory.Release()
	}()

	nativeDevice, device := readyDevice(t, ctrl)
	nativeCtx, ctx := readyContext(t, ctrl)

	native.EXPECT().CreateSwapChainVk(nativeDevice, nativeCtx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(device driver.RenderDevice, ctx driver.DeviceContext, desc *driver.SwapChainDesc, window *driver.NativeWindow) driver.SwapChain {
			require.Equal(t, uint32(1280), desc.Width)
			require.Equal(t, uint32(720), desc.Height)
			require.Equal(t, uint32(2), desc.BufferCount)
			return nil
		})

	swapChain, err := factory.CreateSwapChain(device, ctx, NewSwapChainDesc(1280, 720), NativeWindow{})
	require.Nil(t, swapChain)
	require.True(t, errors.Is(err, ErrCreationFailed))
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestCloseAfterFailureKeepsCloseError(t *testing.T) {
	cause := errors.Wrap(ErrUnsupportedBackend, "Vulkan factory could not be created")

	closed := false
	err := closeAfterFailure(cause, closerFunc(func() error {
		closed = true
		return errors.New("dlclose: library busy")
	}))
	require.True(t, closed)
	require.True(t, errors.Is(err, ErrUnsupportedBackend))
	require.Contains(t, fmt.Sprintf("%+v", err), "dlclose: library busy")

	err = closeAfterFailure(cause, closerFunc(func() error { return nil }))
	require.Equal(t, cause, err)
}
