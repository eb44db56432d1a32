package diligent

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/diligent/driver"
)

func TestDeviceFeaturesSet(t *testing.T) {
	features := NewDeviceFeatures(DeviceFeatureStateDisabled)

	require.NoError(t, features.Set("computeshaders", DeviceFeatureStateEnabled))
	require.NoError(t, features.Set("RayTracing", DeviceFeatureStateOptional))
	require.Error(t, features.Set("Teleportation", DeviceFeatureStateEnabled))

	require.Equal(t, DeviceFeatureStateEnabled, features.ComputeShaders)
	require.Equal(t, DeviceFeatureStateOptional, features.RayTracing)
	require.Equal(t, DeviceFeatureStateDisabled, features.GeometryShaders)

	native := features.marshal()
	require.Equal(t, driver.DeviceFeatureStateEnabled, native.ComputeShaders)
	require.Equal(t, driver.DeviceFeatureStateOptional, native.RayTracing)
	require.Equal(t, driver.DeviceFeatureStateDisabled, native.GeometryShaders)
}

func TestDeviceFeaturesEach(t *testing.T) {
	features := NewDeviceFeatures(DeviceFeatureStateOptional)
	features.TileShaders = DeviceFeatureStateEnabled

	seen := map[string]DeviceFeatureState{}
	var order []string
	features.Each(func(name string, state DeviceFeatureState) {
		seen[name] = state
		order = append(order, name)
	})

	require.Len(t, seen, len(deviceFeatureFields))
	require.Equal(t, deviceFeatureFields[0].name, order[0])
	require.Equal(t, DeviceFeatureStateEnabled, seen["TileShaders"])
	require.Equal(t, DeviceFeatureStateOptional, seen["ComputeShaders"])
}

func TestEngineCreateInfoMarshal(t *testing.T) {
	arena := driver.NewArena()
	defer arena.Release()

	ci := NewEngineCreateInfo()
	ci.ImmediateContexts = []ImmediateContextCreateInfo{
		{Name: "Graphics", QueueID: 0, Priority: QueuePriorityHigh},
		{Name: "Compute", QueueID: 2, Priority: QueuePriorityMedium},
	}
	ci.NumDeferredContexts = 3
	ci.ValidationFlags = ValidationFlagCheckShaderBufferSize

	native := ci.marshal(arena)
	require.Equal(t, int32(driver.APIVersion), native.EngineAPIVersion)
	require.Equal(t, DefaultAdapterID, native.AdapterID)
	require.Equal(t, uint32(2), native.NumImmediateContexts)
	require.Equal(t, uint32(3), native.NumDeferredContexts)
	require.Equal(t, driver.ValidationFlagCheckShaderBufferSize, native.ValidationFlags)

	contexts := unsafe.Slice(native.ImmediateContextInfo, native.NumImmediateContexts)
	require.Equal(t, "Compute", driver.GoString(contexts[1].Name))
	require.Equal(t, uint8(2), contexts[1].QueueID)
	require.Equal(t, driver.QueuePriorityMedium, contexts[1].Priority)

	require.Equal(t, 5, ci.contextCount())

	single := NewEngineCreateInfo()
	require.Equal(t, 1, single.contextCount())
}

func TestZeroDescsMarshalToSentinels(t *testing.T) {
	arena := driver.NewArena()
	defer arena.Release()

	buffer := (&BufferDesc{}).marshal(arena)
	require.Equal(t, driver.UsageDefault, buffer.Usage)
	require.Equal(t, driver.BufferModeUndefined, buffer.Mode)
	require.Equal(t, uint32(0), buffer.ElementByteStride)

	texture := (&TextureDesc{}).marshal(arena)
	require.Equal(t, driver.UsageDefault, texture.Usage)
	require.Equal(t, driver.TexFormatUnknown, texture.Format)
	require.Equal(t, driver.ResourceDimUndefined, texture.Type)
}

func TestDescDefaults(t *testing.T) {
	arena := driver.NewArena()
	defer arena.Release()

	testCases := map[string]func(t *testing.T){
		"Buffer": func(t *testing.T) {
			desc := NewBufferDesc()
			native := desc.marshal(arena)
			require.Equal(t, driver.UsageDefault, native.Usage)
			require.Equal(t, uint64(1), native.ImmediateContextMask)
		},
		"Texture": func(t *testing.T) {
			desc := NewTextureDesc()
			native := desc.marshal(arena)
			require.Equal(t, uint32(1), native.MipLevels)
			require.Equal(t, uint32(1), native.SampleCount)
			require.Equal(t, uint32(1), native.ArraySizeOrDepth)
			require.Equal(t, driver.UsageDefault, native.Usage)
			require.Equal(t, uint64(1), native.ImmediateContextMask)
		},
		"Sampler": func(t *testing.T) {
			desc := NewSamplerDesc()
			native := desc.marshal(arena)
			require.Equal(t, driver.FilterTypeLinear, native.MinFilter)
			require.Equal(t, driver.FilterTypeLinear, native.MipFilter)
			require.Equal(t, driver.TextureAddressClamp, native.AddressU)
			require.Equal(t, driver.ComparisonFuncNever, native.ComparisonFunc)
			require.Equal(t, uint32(0), native.MaxAnisotropy)
			require.False(t, math.IsInf(float64(native.MaxLOD), 1))
			require.Equal(t, float32(math.MaxFloat32), native.MaxLOD)
		},
		"Rasterizer": func(t *testing.T) {
			desc := NewRasterizerStateDesc()
			native := desc.marshal()
			require.Equal(t, driver.FillModeSolid, native.FillMode)
			require.Equal(t, driver.CullModeBack, native.CullMode)
			require.True(t, native.DepthClipEnable)
		},
		"DepthStencil": func(t *testing.T) {
			desc := NewDepthStencilStateDesc()
			native := desc.marshal()
			require.True(t, native.DepthEnable)
			require.True(t, native.DepthWriteEnable)
			require.Equal(t, driver.ComparisonFuncLess, native.DepthFunc)
			require.Equal(t, uint8(0xFF), native.StencilReadMask)
			require.Equal(t, uint8(0xFF), native.StencilWriteMask)
			for _, face := range []driver.StencilOpDesc{native.FrontFace, native.BackFace} {
				require.Equal(t, driver.StencilOpKeep, face.StencilFailOp)
				require.Equal(t, driver.StencilOpKeep, face.StencilDepthFailOp)
				require.Equal(t, driver.StencilOpKeep, face.StencilPassOp)
				require.Equal(t, driver.ComparisonFuncAlways, face.StencilFunc)
			}
		},
		"GraphicsPipeline": func(t *testing.T) {
			desc := NewGraphicsPipelineDesc()
			native := desc.marshal(arena)
			require.Equal(t, uint32(0xFFFFFFFF), native.SampleMask)
			require.Equal(t, driver.PrimitiveTopologyTriangleList, native.PrimitiveTopology)
			require.Equal(t, uint8(1), native.NumViewports)
			require.Equal(t, uint8(1), native.SmplDesc.Count)
			require.Equal(t, driver.CullModeBack, native.RasterizerDesc.CullMode)
			require.Equal(t, driver.ComparisonFuncLess, native.DepthStencilDesc.DepthFunc)
		},
		"PipelineState": func(t *testing.T) {
			desc := NewPipelineStateDesc(PipelineTypeCompute)
			native := desc.marshal(arena)
			require.Equal(t, driver.PipelineTypeCompute, native.PipelineType)
			require.Equal(t, uint32(1), native.SRBAllocationGranularity)
			require.Equal(t, uint64(1), native.ImmediateContextMask)
			require.Equal(t, driver.ShaderResourceVariableTypeStatic, native.ResourceLayout.DefaultVariableType)
		},
	}

	for name, testCase := range testCases {
		t.Run(name, testCase)
	}
}
