//go:build amd64 || arm64

package driver

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestBufferDescLayout(t *testing.T) {
	var desc BufferDesc
	require.Equal(t, uintptr(0), unsafe.Offsetof(desc.Name))
	require.Equal(t, uintptr(8), unsafe.Offsetof(desc.Size))
	require.Equal(t, uintptr(16), unsafe.Offsetof(desc.BindFlags))
	require.Equal(t, uintptr(20), unsafe.Offsetof(desc.Usage))
	require.Equal(t, uintptr(21), unsafe.Offsetof(desc.CPUAccessFlags))
	require.Equal(t, uintptr(22), unsafe.Offsetof(desc.Mode))
	require.Equal(t, uintptr(23), unsafe.Offsetof(desc.MiscFlags))
	require.Equal(t, uintptr(24), unsafe.Offsetof(desc.ElementByteStride))
	require.Equal(t, uintptr(32), unsafe.Offsetof(desc.ImmediateContextMask))
	require.Equal(t, uintptr(40), unsafe.Sizeof(desc))
}

func TestTextureDescLayout(t *testing.T) {
	var desc TextureDesc
	require.Equal(t, uintptr(8), unsafe.Offsetof(desc.Type))
	require.Equal(t, uintptr(12), unsafe.Offsetof(desc.Width))
	require.Equal(t, uintptr(24), unsafe.Offsetof(desc.Format))
	require.Equal(t, uintptr(36), unsafe.Offsetof(desc.BindFlags))
	require.Equal(t, uintptr(40), unsafe.Offsetof(desc.Usage))
	require.Equal(t, uintptr(44), unsafe.Offsetof(desc.ClearValue))
	require.Equal(t, uintptr(72), unsafe.Offsetof(desc.ImmediateContextMask))
	require.Equal(t, uintptr(80), unsafe.Sizeof(desc))
}

func TestSamplerDescLayout(t *testing.T) {
	var desc SamplerDesc
	require.Equal(t, uintptr(15), unsafe.Offsetof(desc.UnnormalizedCoords))
	require.Equal(t, uintptr(16), unsafe.Offsetof(desc.MipLODBias))
	require.Equal(t, uintptr(24), unsafe.Offsetof(desc.ComparisonFunc))
	require.Equal(t, uintptr(28), unsafe.Offsetof(desc.BorderColor))
	require.Equal(t, uintptr(48), unsafe.Offsetof(desc.MaxLOD))
	require.Equal(t, uintptr(56), unsafe.Sizeof(desc))
}

func TestRayTracingLayouts(t *testing.T) {
	var tlas TopLevelASDesc
	require.Equal(t, uintptr(8), unsafe.Offsetof(tlas.MaxInstanceCount))
	require.Equal(t, uintptr(12), unsafe.Offsetof(tlas.Flags))
	require.Equal(t, uintptr(16), unsafe.Offsetof(tlas.CompactedSize))
	require.Equal(t, uintptr(32), unsafe.Sizeof(tlas))

	require.Equal(t, uintptr(16), unsafe.Sizeof(ScratchBufferSizes{}))
	require.Equal(t, uintptr(16), unsafe.Sizeof(TLASInstanceDesc{}))
	require.Equal(t, uintptr(20), unsafe.Sizeof(TLASBuildInfo{}))
}

func TestContextLayouts(t *testing.T) {
	var draw DrawAttribs
	require.Equal(t, uintptr(4), unsafe.Offsetof(draw.Flags))
	require.Equal(t, uintptr(8), unsafe.Offsetof(draw.NumInstances))
	require.Equal(t, uintptr(20), unsafe.Sizeof(draw))

	require.Equal(t, uintptr(24), unsafe.Sizeof(MappedTextureSubresource{}))
	require.Equal(t, uintptr(24), unsafe.Sizeof(Box{}))
	require.Equal(t, uintptr(16), unsafe.Sizeof(Rect{}))
	require.Equal(t, uintptr(24), unsafe.Sizeof(Viewport{}))

	var stats DeviceContextStats
	require.Equal(t, uintptr(PrimitiveTopologyCount)*4, unsafe.Offsetof(stats.CommandCounters))
}

func TestDeviceLayouts(t *testing.T) {
	require.Equal(t, uintptr(47), unsafe.Sizeof(DeviceFeatures{}))

	var sc SwapChainDesc
	require.Equal(t, uintptr(8), unsafe.Offsetof(sc.ColorBufferFormat))
	require.Equal(t, uintptr(10), unsafe.Offsetof(sc.DepthBufferFormat))
	require.Equal(t, uintptr(12), unsafe.Offsetof(sc.Usage))
	require.Equal(t, uintptr(28), unsafe.Offsetof(sc.DefaultStencilValue))
	require.Equal(t, uintptr(32), unsafe.Sizeof(sc))

	var ci EngineCreateInfo
	require.Equal(t, uintptr(16), unsafe.Offsetof(ci.ImmediateContextInfo))
	require.Equal(t, uintptr(32), unsafe.Offsetof(ci.Features))
}

func TestMethodTableSizes(t *testing.T) {
	require.Equal(t, 4*ptrSize, unsafe.Sizeof(objectMethods{}))
	require.Equal(t, 17*ptrSize, unsafe.Sizeof(bufferMethods{}))
	require.Equal(t, 75*ptrSize, unsafe.Sizeof(deviceContextMethods{}))
	require.Equal(t, 33*ptrSize, unsafe.Sizeof(renderDeviceMethods{}))
	require.Equal(t, 11*ptrSize, unsafe.Sizeof(engineFactoryMethods{}))
}

func TestVersionPack(t *testing.T) {
	require.Equal(t, uintptr(11)|uintptr(0)<<32, Version{Major: 11}.pack())
	require.Equal(t, uintptr(1)|uintptr(3)<<32, Version{Major: 1, Minor: 3}.pack())
}
