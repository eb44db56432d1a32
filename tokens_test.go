package diligent

import (
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/diligent/driver"
	"github.com/vkngwrapper/diligent/driver/mocks"
	"go.uber.org/mock/gomock"
)

func readyContext(t *testing.T, ctrl *gomock.Controller) (*mocks.MockDeviceContext, *ImmediateDeviceContext) {
	native := mocks.EasyMockDeviceContext(ctrl)
	ctx := ImmediateDeviceContextFromDriver(native, nil)

	t.Cleanup(func() {
		native.EXPECT().Release().Return(int32(0))
		ctx.Release()
	})
	return native, ctx
}

func readyBuffer(ctrl *gomock.Controller, size uint64) (*mocks.MockBuffer, *Buffer) {
	native := mocks.EasyMockBuffer(ctrl)
	native.EXPECT().GetDesc().Return(&driver.BufferDesc{
		Size:  size,
		Usage: driver.UsageDynamic,
	}).AnyTimes()
	native.EXPECT().GetDeviceObjectAttribs().Return(&driver.DeviceObjectAttribs{}).AnyTimes()
	native.EXPECT().Release().Return(int32(0)).MaxTimes(1)

	return native, BufferFromDriver(native, nil)
}

func TestBufferMapWriteUnmapsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx, ctx := readyContext(t, ctrl)
	nativeBuffer, buffer := readyBuffer(ctrl, 256)
	defer buffer.Release()

	memory := make([]byte, 256)
	nativeCtx.EXPECT().MapBuffer(nativeBuffer, driver.MapWrite, driver.MapFlagDiscard).Return(unsafe.Pointer(&memory[0])).Times(1)
	nativeCtx.EXPECT().UnmapBuffer(nativeBuffer, driver.MapWrite).Times(1)

	token, err := ctx.MapBufferWrite(buffer, MapFlagDiscard)
	require.NoError(t, err)

	data := token.Bytes()
	require.Len(t, data, 256)
	for i := range data {
		data[i] = byte(i)
	}

	token.Unmap()
	token.Unmap()
	require.True(t, token.Unmapped())
	require.Nil(t, token.Bytes())
	require.Nil(t, token.Pointer())

	require.Equal(t, byte(255), memory[255])
}

func TestBufferMapWithoutAccessUnmapsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx, ctx := readyContext(t, ctrl)
	nativeBuffer, buffer := readyBuffer(ctrl, 16)
	defer buffer.Release()

	memory := make([]byte, 16)
	nativeCtx.EXPECT().MapBuffer(nativeBuffer, driver.MapReadWrite, driver.MapFlagNone).Return(unsafe.Pointer(&memory[0])).Times(1)
	nativeCtx.EXPECT().UnmapBuffer(nativeBuffer, driver.MapReadWrite).Times(1)

	func() {
		token, err := ctx.MapBufferReadWrite(buffer, MapFlagNone)
		require.NoError(t, err)
		defer token.Unmap()
	}()
}

func TestBufferMapReadReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx, ctx := readyContext(t, ctrl)
	nativeBuffer, buffer := readyBuffer(ctrl, 4)
	defer buffer.Release()

	memory := []byte{1, 2, 3, 4}
	nativeCtx.EXPECT().MapBuffer(nativeBuffer, driver.MapRead, driver.MapFlagNone).Return(unsafe.Pointer(&memory[0]))
	nativeCtx.EXPECT().UnmapBuffer(nativeBuffer, driver.MapRead)

	token, err := ctx.MapBufferRead(buffer, MapFlagNone)
	require.NoError(t, err)
	defer token.Unmap()

	data := token.Bytes()
	require.Equal(t, []byte{1, 2, 3, 4}, data)

	data[0] = 9
	require.Equal(t, byte(1), memory[0])
}

func TestBufferMapFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx, ctx := readyContext(t, ctrl)
	nativeBuffer, buffer := readyBuffer(ctrl, 64)
	defer buffer.Release()

	nativeCtx.EXPECT().MapBuffer(nativeBuffer, driver.MapWrite, driver.MapFlagDoNotWait).Return(unsafe.Pointer(nil))

	token, err := ctx.MapBufferWrite(buffer, MapFlagDoNotWait)
	require.Nil(t, token)
	require.True(t, errors.Is(err, ErrMapFailed))
}

func TestWithBufferMapWritePropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx, ctx := readyContext(t, ctrl)
	nativeBuffer, buffer := readyBuffer(ctrl, 8)
	defer buffer.Release()

	memory := make([]byte, 8)
	nativeCtx.EXPECT().MapBuffer(nativeBuffer, driver.MapWrite, driver.MapFlagDiscard).Return(unsafe.Pointer(&memory[0]))
	nativeCtx.EXPECT().UnmapBuffer(nativeBuffer, driver.MapWrite).Times(1)

	failure := errors.New("upload failed")
	err := WithBufferMapWrite(&ctx.DeviceContext, buffer, MapFlagDiscard, func(data []byte) error {
		require.Len(t, data, 8)
		return failure
	})
	require.ErrorIs(t, err, failure)
}

func TestMappedSlice(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx, ctx := readyContext(t, ctrl)
	nativeBuffer, buffer := readyBuffer(ctrl, 18)
	defer buffer.Release()

	memory := make([]uint32, 5)
	nativeCtx.EXPECT().MapBuffer(nativeBuffer, driver.MapWrite, driver.MapFlagDiscard).Return(unsafe.Pointer(&memory[0]))
	nativeCtx.EXPECT().UnmapBuffer(nativeBuffer, driver.MapWrite)

	token, err := ctx.MapBufferWrite(buffer, MapFlagDiscard)
	require.NoError(t, err)

	values, err := MappedSlice[uint32](token)
	require.NoError(t, err)
	require.Len(t, values, 4)
	values[3] = 42

	token.Unmap()
	require.Equal(t, uint32(42), memory[3])

	_, err = MappedSlice[uint32](token)
	require.True(t, errors.Is(err, ErrMapFailed))
}

func TestTextureSubresourceMapSize(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx, ctx := readyContext(t, ctrl)

	nativeTexture := mocks.EasyMockTexture(ctrl)
	nativeTexture.EXPECT().GetDesc().Return(&driver.TextureDesc{
		Type:             driver.ResourceDimTex2D,
		Width:            64,
		Height:           32,
		ArraySizeOrDepth: 1,
		Format:           driver.TexFormatRGBA8Unorm,
		MipLevels:        3,
		SampleCount:      1,
		Usage:            driver.UsageStaging,
	}).AnyTimes()
	nativeTexture.EXPECT().Release().Return(int32(0))
	texture := TextureFromDriver(nativeTexture, nil)
	defer texture.Release()

	memory := make([]byte, 32*16*4)
	nativeCtx.EXPECT().MapTextureSubresource(nativeTexture, uint32(1), uint32(0), driver.MapRead, driver.MapFlagNone, gomock.Nil()).
		Return(driver.MappedTextureSubresource{Data: unsafe.Pointer(&memory[0]), Stride: 32 * 4})
	nativeCtx.EXPECT().UnmapTextureSubresource(nativeTexture, uint32(1), uint32(0)).Times(1)

	token, err := ctx.MapTextureSubresourceRead(texture, 1, 0, MapFlagNone, nil)
	require.NoError(t, err)
	defer token.Unmap()

	require.Equal(t, uint64(32*4), token.Stride())
	require.Equal(t, uint64(16*32*4), token.Size())
	require.Len(t, token.Bytes(), 16*32*4)

	token.Unmap()
}

func TestMappedRegionSize(t *testing.T) {
	desc := NewTextureDesc()
	desc.Type = ResourceDimTex3D
	desc.Width = 16
	desc.Height = 16
	desc.ArraySizeOrDepth = 8
	desc.Format = TexFormatBC1Unorm

	// 2 block rows per slice, 4 slices at mip 1
	require.Equal(t, uint64(3*1024+2*64), mappedRegionSize(desc, 1, nil, 64, 1024))

	region := &Box{MinX: 0, MaxX: 8, MinY: 4, MaxY: 12, MinZ: 2, MaxZ: 4}
	require.Equal(t, uint64(1*1024+2*64), mappedRegionSize(desc, 0, region, 64, 1024))
}

func TestScopedQueryTokenEndsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx, ctx := readyContext(t, ctrl)

	nativeQuery := mocks.EasyMockQuery(ctrl)
	nativeQuery.EXPECT().Release().Return(int32(0))
	query := wrapQuery(nativeQuery, discardLogger)
	defer query.Release()

	gomock.InOrder(
		nativeCtx.EXPECT().BeginQuery(nativeQuery),
		nativeCtx.EXPECT().EndQuery(nativeQuery),
	)

	token := NewScopedQueryToken(&ctx.DeviceContext, query)
	token.End()
	token.End()
}

func TestTimestampQueryToken(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx, ctx := readyContext(t, ctrl)

	timestampQuery := func(counter uint64) (*mocks.MockQuery, *Query) {
		native := mocks.EasyMockQuery(ctrl)
		native.EXPECT().GetDesc().Return(&driver.QueryDesc{Type: driver.QueryTypeTimestamp}).AnyTimes()
		native.EXPECT().GetData(gomock.Any(), uint32(unsafe.Sizeof(driver.QueryDataTimestamp{})), false).
			DoAndReturn(func(data unsafe.Pointer, size uint32, autoInvalidate bool) bool {
				out := (*driver.QueryDataTimestamp)(data)
				out.Counter = counter
				out.Frequency = 1000
				return true
			})
		native.EXPECT().Release().Return(int32(0))
		return native, wrapQuery(native, discardLogger)
	}

	nativeStart, start := timestampQuery(1000)
	defer start.Release()
	nativeEnd, end := timestampQuery(1500)
	defer end.Release()

	gomock.InOrder(
		nativeCtx.EXPECT().EndQuery(nativeStart),
		nativeCtx.EXPECT().EndQuery(nativeEnd),
	)

	token := NewTimestampQueryToken(&ctx.DeviceContext, start, end)
	token.End()
	token.End()

	elapsed, ok := token.Elapsed()
	require.True(t, ok)
	require.InDelta(t, 0.5, elapsed, 1e-9)
}
