package engineconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/diligent"
)

const vulkanTOML = `
backend = "Vulkan"
library = "/opt/diligent/libGraphicsEngineVk.so"

[engine]
adapter_id = 1
graphics_api_version = { major = 1, minor = 3 }
deferred_contexts = 2
enable_validation = true
check_shader_buffer_size = true
default_feature_state = "Disabled"

[engine.features]
ComputeShaders = "Enabled"
rayTracing = "Optional"

[[engine.immediate_contexts]]
name = "Graphics"
queue_id = 0
priority = "High"

[[engine.immediate_contexts]]
name = "Transfer"
queue_id = 1
priority = "Low"

[vulkan]
instance_layers = ["VK_LAYER_KHRONOS_validation"]
device_extensions = ["VK_KHR_portability_subset"]
upload_heap_page_size = 4194304

[swap_chain]
width = 1280
height = 720
color_buffer_format = "BGRA8UnormSRGB"
buffer_count = 3
`

const glYAML = `
backend: GL
engine:
  async_shader_compilation_threads: 4
gl:
  zero_to_one_ndz: true
  preferred_adapter_type: Discrete
swap_chain:
  depth_buffer_format: D24UnormS8Uint
  pre_transform: Identity
`

func TestDecodeTOML(t *testing.T) {
	cfg, err := Decode(strings.NewReader(vulkanTOML), FormatTOML)
	require.NoError(t, err)
	require.Equal(t, diligent.RenderDeviceTypeVulkan, cfg.Backend)
	require.Equal(t, "/opt/diligent/libGraphicsEngineVk.so", cfg.Library)

	ci, err := cfg.VulkanCreateInfo()
	require.NoError(t, err)
	require.Equal(t, uint32(1), ci.AdapterID)
	require.Equal(t, diligent.Version{Major: 1, Minor: 3}, ci.GraphicsAPIVersion)
	require.Equal(t, uint32(2), ci.NumDeferredContexts)
	require.True(t, ci.EnableValidation)
	require.Equal(t, diligent.ValidationFlagCheckShaderBufferSize, ci.ValidationFlags)
	require.Equal(t, []diligent.ImmediateContextCreateInfo{
		{Name: "Graphics", QueueID: 0, Priority: diligent.QueuePriorityHigh},
		{Name: "Transfer", QueueID: 1, Priority: diligent.QueuePriorityLow},
	}, ci.ImmediateContexts)

	require.Equal(t, diligent.DeviceFeatureStateEnabled, ci.Features.ComputeShaders)
	require.Equal(t, diligent.DeviceFeatureStateOptional, ci.Features.RayTracing)
	require.Equal(t, diligent.DeviceFeatureStateDisabled, ci.Features.GeometryShaders)

	require.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, ci.InstanceLayerNames)
	require.Equal(t, []string{"VK_KHR_portability_subset"}, ci.DeviceExtensionNames)
	require.Equal(t, uint32(4<<20), ci.UploadHeapPageSize)

	defaults := diligent.NewEngineVkCreateInfo()
	require.Equal(t, defaults.DynamicHeapSize, ci.DynamicHeapSize)
	require.Equal(t, defaults.MainDescriptorPoolSize, ci.MainDescriptorPoolSize)

	desc := cfg.SwapChainDesc()
	require.Equal(t, uint32(1280), desc.Width)
	require.Equal(t, uint32(720), desc.Height)
	require.Equal(t, diligent.TexFormatBGRA8UnormSRGB, desc.ColorBufferFormat)
	require.Equal(t, diligent.TexFormatD32Float, desc.DepthBufferFormat)
	require.Equal(t, uint32(3), desc.BufferCount)
	require.True(t, desc.IsPrimary)
}

func TestDecodeYAML(t *testing.T) {
	cfg, err := Decode(strings.NewReader(glYAML), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, diligent.RenderDeviceTypeGL, cfg.Backend)

	window := diligent.NativeWindow{}
	ci, err := cfg.GLCreateInfo(window)
	require.NoError(t, err)
	require.True(t, ci.ZeroToOneNDZ)
	require.Equal(t, diligent.AdapterTypeDiscrete, ci.PreferredAdapterType)
	require.Equal(t, uint32(4), ci.NumAsyncShaderCompilationThreads)
	require.Equal(t, diligent.DefaultAdapterID, ci.AdapterID)
	require.Equal(t, diligent.DeviceFeatureStateOptional, ci.Features.ComputeShaders)

	desc := cfg.SwapChainDesc()
	require.Equal(t, diligent.TexFormatRGBA8UnormSRGB, desc.ColorBufferFormat)
	require.Equal(t, diligent.TexFormatD24UnormS8Uint, desc.DepthBufferFormat)
	require.Equal(t, diligent.SurfaceTransformIdentity, desc.PreTransform)
	require.Equal(t, uint32(2), desc.BufferCount)
}

func TestDecodeEmptyKeepsDefaults(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		cfg, err := Decode(strings.NewReader(""), format)
		require.NoError(t, err)
		require.Equal(t, Default(), *cfg)

		require.Equal(t, diligent.NewSwapChainDesc(0, 0), cfg.SwapChainDesc())

		ci, err := cfg.D3D12CreateInfo()
		require.NoError(t, err)
		require.Equal(t, diligent.NewEngineD3D12CreateInfo(), ci)
	}
}

func TestDecodeRejectsBadValues(t *testing.T) {
	_, err := Decode(strings.NewReader(`backend = "Metal3"`), FormatTOML)
	require.Error(t, err)

	_, err = Decode(strings.NewReader("engine:\n  unknown_key: 1\n"), FormatYAML)
	require.Error(t, err)

	_, err = Decode(strings.NewReader("[swap_chain]\nbufer_count = 3\n"), FormatTOML)
	require.Error(t, err)
}

func TestUnknownFeature(t *testing.T) {
	cfg, err := Decode(strings.NewReader("[engine.features]\nTeleportation = \"Enabled\"\n"), FormatTOML)
	require.NoError(t, err)

	_, err = cfg.EngineCreateInfo()
	require.ErrorContains(t, err, "engine.features")

	_, err = cfg.D3D11CreateInfo()
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "engine.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(vulkanTOML), 0o644))
	cfg, err := Load(tomlPath)
	require.NoError(t, err)
	require.Equal(t, uint32(1280), cfg.SwapChain.Width)

	yamlPath := filepath.Join(dir, "engine.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(glYAML), 0o644))
	cfg, err = Load(yamlPath)
	require.NoError(t, err)
	require.Equal(t, diligent.RenderDeviceTypeGL, cfg.Backend)

	_, err = Load(filepath.Join(dir, "engine.json"))
	require.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}
