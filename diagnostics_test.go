package diligent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/diligent/driver"
	"go.uber.org/mock/gomock"
)

func TestStatsJSON(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx, ctx := readyContext(t, ctrl)

	stats := &driver.DeviceContextStats{}
	stats.PrimitiveCounts[driver.PrimitiveTopologyPointList] = 4
	stats.PrimitiveCounts[driver.PrimitiveTopologyTriangleList] = 12
	stats.CommandCounters.SetPipelineState = 1
	stats.CommandCounters.Draw = 2
	nativeCtx.EXPECT().GetStats().Return(stats)

	require.JSONEq(t, `{
		"PrimitiveCounts": {"TriangleList": 12, "PointList": 4},
		"CommandCounters": {"SetPipelineState": 1, "Draw": 2}
	}`, ctx.StatsJSON())
}

func TestStatsJSONEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeCtx, ctx := readyContext(t, ctrl)
	nativeCtx.EXPECT().GetStats().Return(&driver.DeviceContextStats{})

	require.JSONEq(t, `{"PrimitiveCounts": {}, "CommandCounters": {}}`, ctx.StatsJSON())
}

func TestBuildStatsString(t *testing.T) {
	ctrl := gomock.NewController(t)

	nativeDevice, device := readyDevice(t, ctrl)

	deviceInfo := &driver.RenderDeviceInfo{
		Type:       driver.RenderDeviceTypeVulkan,
		APIVersion: driver.Version{Major: 1, Minor: 3},
	}
	deviceInfo.Features.ComputeShaders = driver.DeviceFeatureStateEnabled
	nativeDevice.EXPECT().GetDeviceInfo().Return(deviceInfo)

	adapterInfo := &driver.GraphicsAdapterInfo{
		Type:      driver.AdapterTypeDiscrete,
		VendorID:  0x1002,
		NumQueues: 1,
	}
	copy(adapterInfo.Description[:], "Radeon")
	adapterInfo.Queues[0].QueueType = driver.CommandQueueTypeGraphics
	adapterInfo.Queues[0].MaxDeviceContexts = 1
	nativeDevice.EXPECT().GetAdapterInfo().Return(adapterInfo)

	var report struct {
		Device struct {
			Type       string
			APIVersion string
			Features   map[string]string
		}
		Adapter struct {
			Description string
			Type        string
			VendorID    int
			Queues      []struct {
				QueueType         string
				MaxDeviceContexts int
			}
			Features map[string]string
		}
		Total struct {
			Live     int
			Acquired int
			Released int
		}
		Objects map[string]struct {
			Live int
		}
	}
	require.NoError(t, json.Unmarshal([]byte(device.BuildStatsString()), &report))

	require.Equal(t, "Vulkan", report.Device.Type)
	require.Equal(t, "1.3", report.Device.APIVersion)
	require.Equal(t, "Enabled", report.Device.Features["ComputeShaders"])
	require.Equal(t, "Disabled", report.Device.Features["RayTracing"])

	require.Equal(t, "Radeon", report.Adapter.Description)
	require.Equal(t, "Discrete", report.Adapter.Type)
	require.Equal(t, 0x1002, report.Adapter.VendorID)
	require.Len(t, report.Adapter.Queues, 1)
	require.Equal(t, 1, report.Adapter.Queues[0].MaxDeviceContexts)

	require.GreaterOrEqual(t, report.Total.Live, 1)
	require.Equal(t, report.Total.Acquired-report.Total.Released, report.Total.Live)
	require.GreaterOrEqual(t, report.Objects["RenderDevice"].Live, 1)
}
