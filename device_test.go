package diligent

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/diligent/driver"
	"github.com/vkngwrapper/diligent/driver/mocks"
	"github.com/vkngwrapper/diligent/internal/registry"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

func readyDevice(t *testing.T, ctrl *gomock.Controller) (*mocks.MockRenderDevice, *RenderDevice) {
	native := mocks.EasyMockRenderDevice(ctrl)
	device := RenderDeviceFromDriver(native, nil)

	t.Cleanup(func() {
		native.EXPECT().Release().Return(int32(0))
		device.Release()
	})
	return native, device
}

func TestCreateBufferAndWrite(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeDevice, device := readyDevice(t, ctrl)
	nativeCtx, ctx := readyContext(t, ctrl)

	nativeBuffer := mocks.EasyMockBuffer(ctrl)
	var created driver.BufferDesc
	nativeDevice.EXPECT().CreateBuffer(gomock.Any(), gomock.Nil()).
		DoAndReturn(func(desc *driver.BufferDesc, data *driver.BufferData) driver.Buffer {
			require.Equal(t, "Constants", driver.GoString(desc.Name))
			require.Equal(t, uint64(256), desc.Size)
			require.Equal(t, driver.UsageDynamic, desc.Usage)
			require.Equal(t, driver.BindUniformBuffer, desc.BindFlags)
			require.Equal(t, driver.CpuAccessWrite, desc.CPUAccessFlags)
			created = *desc
			return nativeBuffer
		})
	nativeBuffer.EXPECT().GetDesc().DoAndReturn(func() *driver.BufferDesc { return &created }).AnyTimes()

	desc := NewBufferDesc()
	desc.Name = "Constants"
	desc.Size = 256
	desc.Usage = UsageDynamic
	desc.BindFlags = BindUniformBuffer
	desc.CPUAccessFlags = CpuAccessWrite

	buffer, err := device.CreateBuffer(desc, nil)
	require.NoError(t, err)
	require.Equal(t, 1, registry.Default.References(uintptr(nativeBuffer.Handle())))

	memory := make([]byte, 256)
	nativeCtx.EXPECT().MapBuffer(nativeBuffer, driver.MapWrite, driver.MapFlagDiscard).Return(unsafe.Pointer(&memory[0])).Times(1)
	nativeCtx.EXPECT().UnmapBuffer(nativeBuffer, driver.MapWrite).Times(1)

	err = WithBufferMapWrite(&ctx.DeviceContext, buffer, MapFlagDiscard, func(data []byte) error {
		require.Len(t, data, 256)
		copy(data, "constants")
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "constants", string(memory[:9]))

	nativeBuffer.EXPECT().Release().Return(int32(0)).Times(1)
	buffer.Release()
	buffer.Release()
	require.Equal(t, 0, registry.Default.References(uintptr(nativeBuffer.Handle())))
}

func TestCreateBufferFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeDevice, device := readyDevice(t, ctrl)
	nativeDevice.EXPECT().CreateBuffer(gomock.Any(), gomock.Nil()).Return(nil)

	desc := NewBufferDesc()
	desc.Name = "Vertices"
	desc.Size = 1024

	buffer, err := device.CreateBuffer(desc, nil)
	require.Nil(t, buffer)
	require.True(t, errors.Is(err, ErrCreationFailed))
	require.Contains(t, err.Error(), "Vertices")
}

func TestCreateShaderFailureCarriesCompilerOutput(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeDevice, device := readyDevice(t, ctrl)

	output := []byte("ps.hlsl(3,5): error X3004: undeclared identifier 'colour'\x00")
	blob := mocks.EasyMockDataBlob(ctrl)
	blob.EXPECT().GetSize().Return(uint64(len(output))).AnyTimes()
	blob.EXPECT().GetConstDataPtr(uint64(0)).Return(unsafe.Pointer(&output[0])).AnyTimes()

	nativeDevice.EXPECT().CreateShader(gomock.Any()).
		DoAndReturn(func(ci *driver.ShaderCreateInfo) (driver.Shader, driver.DataBlob) {
			require.Equal(t, "BrokenPS", driver.GoString(ci.Desc.Name))
			require.Equal(t, driver.ShaderTypePixel, ci.Desc.ShaderType)
			return nil, blob
		})

	ci := NewShaderCreateInfo()
	ci.Desc.Name = "BrokenPS"
	ci.Desc.ShaderType = ShaderTypePixel
	ci.SourceLanguage = ShaderSourceLanguageHLSL
	ci.Source = "float4 main() : SV_Target { return colour; }"

	shader, err := device.CreateShader(ci)
	require.Nil(t, shader)
	require.True(t, errors.Is(err, ErrCreationFailed))

	var compileErr *ShaderCompileError
	require.True(t, errors.As(err, &compileErr))
	require.Equal(t, "BrokenPS", compileErr.Name)
	require.Equal(t, "ps.hlsl(3,5): error X3004: undeclared identifier 'colour'", compileErr.Log())

	blob.EXPECT().Release().Return(int32(0)).Times(1)
	compileErr.Release()
}

func TestDefaultViewReferenceBalance(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeTexture := mocks.EasyMockTexture(ctrl)
	nativeView := mocks.EasyMockTextureView(ctrl)
	texture := TextureFromDriver(nativeTexture, nil)

	nativeTexture.EXPECT().GetDefaultView(driver.TextureViewShaderResource).Return(nativeView).Times(2)
	nativeView.EXPECT().AddRef().Return(int32(2)).Times(2)
	nativeView.EXPECT().Release().Return(int32(1)).Times(2)

	first := texture.DefaultView(TextureViewShaderResource)
	second := texture.DefaultView(TextureViewShaderResource)
	require.Equal(t, first.Handle(), second.Handle())
	require.Equal(t, 2, registry.Default.References(uintptr(nativeView.Handle())))

	first.Release()
	second.Release()
	require.Equal(t, 0, registry.Default.References(uintptr(nativeView.Handle())))

	nativeTexture.EXPECT().Release().Return(int32(0))
	texture.Release()
}

func TestDefaultViewMissing(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeTexture := mocks.EasyMockTexture(ctrl)
	texture := TextureFromDriver(nativeTexture, nil)

	nativeTexture.EXPECT().GetDefaultView(driver.TextureViewUnorderedAccess).Return(nil)
	require.Nil(t, texture.DefaultView(TextureViewUnorderedAccess))

	nativeTexture.EXPECT().Release().Return(int32(0))
	texture.Release()
}

func TestCreateTLASMarshalsDesc(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeDevice, device := readyDevice(t, ctrl)
	nativeTLAS := mocks.EasyMockTopLevelAS(ctrl)

	var created driver.TopLevelASDesc
	nativeDevice.EXPECT().CreateTLAS(gomock.Any()).DoAndReturn(func(desc *driver.TopLevelASDesc) driver.TopLevelAS {
		created = *desc
		return nativeTLAS
	})
	nativeTLAS.EXPECT().GetDesc().DoAndReturn(func() *driver.TopLevelASDesc { return &created })

	desc := NewTopLevelASDesc()
	desc.Name = "Scene"
	desc.MaxInstanceCount = 1024
	desc.Flags = RayTracingBuildAsAllowUpdate | RayTracingBuildAsPreferFastTrace

	tlas, err := device.CreateTLAS(desc)
	require.NoError(t, err)

	require.Equal(t, uint32(1024), created.MaxInstanceCount)
	require.Equal(t, driver.RayTracingBuildAsAllowUpdate|driver.RayTracingBuildAsPreferFastTrace, created.Flags)
	require.Equal(t, uint64(1), created.ImmediateContextMask)
	require.Equal(t, uint64(0), created.CompactedSize)

	require.Equal(t, desc, tlas.Desc())

	nativeTLAS.EXPECT().Release().Return(int32(0))
	tlas.Release()
}

func TestQueryDataOcclusion(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeQuery := mocks.EasyMockQuery(ctrl)
	nativeQuery.EXPECT().GetDesc().Return(&driver.QueryDesc{Type: driver.QueryTypeOcclusion}).AnyTimes()
	gomock.InOrder(
		nativeQuery.EXPECT().GetData(gomock.Any(), uint32(unsafe.Sizeof(driver.QueryDataOcclusion{})), true).Return(false),
		nativeQuery.EXPECT().GetData(gomock.Any(), uint32(unsafe.Sizeof(driver.QueryDataOcclusion{})), true).
			DoAndReturn(func(data unsafe.Pointer, size uint32, autoInvalidate bool) bool {
				out := (*driver.QueryDataOcclusion)(data)
				require.Equal(t, driver.QueryTypeOcclusion, out.Type)
				out.NumSamples = 4096
				return true
			}),
	)
	query := wrapQuery(nativeQuery, discardLogger)

	_, ok := query.Data(true)
	require.False(t, ok)

	data, ok := query.Data(true)
	require.True(t, ok)
	require.Equal(t, QueryTypeOcclusion, data.QueryType())
	require.Equal(t, QueryDataOcclusion{NumSamples: 4096}, data)

	nativeQuery.EXPECT().Release().Return(int32(0))
	query.Release()
}

func TestAlignConstantBufferOffset(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeDevice, device := readyDevice(t, ctrl)
	nativeDevice.EXPECT().GetAdapterInfo().Return(&driver.GraphicsAdapterInfo{
		Buffer: driver.BufferProperties{ConstantBufferOffsetAlignment: 256, StructuredBufferOffsetAlignment: 16},
	}).AnyTimes()

	require.Equal(t, uint64(0), device.AlignConstantBufferOffset(0))
	require.Equal(t, uint64(256), device.AlignConstantBufferOffset(1))
	require.Equal(t, uint64(512), device.AlignConstantBufferOffset(300))
	require.Equal(t, uint64(48), device.AlignStructuredBufferOffset(33))
}

func TestAlignOffsetNonPowerOfTwo(t *testing.T) {
	ctrl := gomock.NewController(t)

	var buf bytes.Buffer
	native := mocks.EasyMockRenderDevice(ctrl)
	device := RenderDeviceFromDriver(native, slog.New(slog.NewJSONHandler(&buf)))
	defer func() {
		native.EXPECT().Release().Return(int32(0))
		device.Release()
	}()

	native.EXPECT().GetAdapterInfo().Return(&driver.GraphicsAdapterInfo{
		Buffer: driver.BufferProperties{ConstantBufferOffsetAlignment: 48},
	}).AnyTimes()

	require.Equal(t, uint64(96), device.AlignConstantBufferOffset(50))
	require.Equal(t, uint64(48), device.AlignConstantBufferOffset(48))

	records := decodeRecords(t, &buf)
	var warnings int
	for _, record := range records {
		if record["level"] == "WARN" {
			warnings++
			require.Contains(t, record["error"], "ConstantBufferOffsetAlignment is 48")
		}
	}
	require.Equal(t, 2, warnings)
}
