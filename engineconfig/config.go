// Package engineconfig reads engine and swap chain creation settings from TOML or YAML
// files and turns them into the create infos of the diligent package.
//
// Unset settings keep the engine defaults. Enum settings are written by name, such as
// backend = "Vulkan" or color_buffer_format = "RGBA8UnormSRGB".
package engineconfig

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/vkngwrapper/diligent"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, errors.Newf("cannot tell the format of %s: expected a .toml, .yaml or .yml file", path)
}

type ImmediateContext struct {
	Name     string                 `toml:"name" yaml:"name"`
	QueueID  uint8                  `toml:"queue_id" yaml:"queue_id"`
	Priority diligent.QueuePriority `toml:"priority" yaml:"priority"`
}

type Engine struct {
	// AdapterID selects the adapter by its index in EnumerateAdapters. Nil lets the
	// engine choose.
	AdapterID *uint32 `toml:"adapter_id" yaml:"adapter_id"`

	GraphicsAPIVersion diligent.Version   `toml:"graphics_api_version" yaml:"graphics_api_version"`
	ImmediateContexts  []ImmediateContext `toml:"immediate_contexts" yaml:"immediate_contexts"`
	DeferredContexts   uint32             `toml:"deferred_contexts" yaml:"deferred_contexts"`
	EnableValidation   bool               `toml:"enable_validation" yaml:"enable_validation"`

	// CheckShaderBufferSize makes validation compare shader buffer sizes with the
	// buffers bound to them.
	CheckShaderBufferSize         bool   `toml:"check_shader_buffer_size" yaml:"check_shader_buffer_size"`
	AsyncShaderCompilationThreads uint32 `toml:"async_shader_compilation_threads" yaml:"async_shader_compilation_threads"`

	// DefaultFeatureState applies to every feature not listed in Features.
	DefaultFeatureState diligent.DeviceFeatureState            `toml:"default_feature_state" yaml:"default_feature_state"`
	Features            map[string]diligent.DeviceFeatureState `toml:"features" yaml:"features"`
}

type Vulkan struct {
	InstanceLayers      []string `toml:"instance_layers" yaml:"instance_layers"`
	InstanceExtensions  []string `toml:"instance_extensions" yaml:"instance_extensions"`
	DeviceExtensions    []string `toml:"device_extensions" yaml:"device_extensions"`
	IgnoreDebugMessages []string `toml:"ignore_debug_messages" yaml:"ignore_debug_messages"`
	DxCompilerPath      string   `toml:"dx_compiler_path" yaml:"dx_compiler_path"`

	// Sizes of 0 keep the engine defaults.
	DeviceLocalMemoryPageSize uint32 `toml:"device_local_memory_page_size" yaml:"device_local_memory_page_size"`
	HostVisibleMemoryPageSize uint32 `toml:"host_visible_memory_page_size" yaml:"host_visible_memory_page_size"`
	UploadHeapPageSize        uint32 `toml:"upload_heap_page_size" yaml:"upload_heap_page_size"`
	DynamicHeapSize           uint32 `toml:"dynamic_heap_size" yaml:"dynamic_heap_size"`
	DynamicHeapPageSize       uint32 `toml:"dynamic_heap_page_size" yaml:"dynamic_heap_page_size"`
}

type D3D12 struct {
	DllName        string                  `toml:"dll_name" yaml:"dll_name"`
	DxCompilerPath string                  `toml:"dx_compiler_path" yaml:"dx_compiler_path"`
	HLSLCompiler   diligent.ShaderCompiler `toml:"hlsl_compiler" yaml:"hlsl_compiler"`
}

type D3D11 struct {
	ValidationFlags uint32 `toml:"validation_flags" yaml:"validation_flags"`
}

type GL struct {
	ZeroToOneNDZ         bool                 `toml:"zero_to_one_ndz" yaml:"zero_to_one_ndz"`
	PreferredAdapterType diligent.AdapterType `toml:"preferred_adapter_type" yaml:"preferred_adapter_type"`
}

type SwapChain struct {
	// Width and Height of 0 size the swap chain from the window.
	Width               uint32                    `toml:"width" yaml:"width"`
	Height              uint32                    `toml:"height" yaml:"height"`
	ColorBufferFormat   diligent.TextureFormat    `toml:"color_buffer_format" yaml:"color_buffer_format"`
	DepthBufferFormat   diligent.TextureFormat    `toml:"depth_buffer_format" yaml:"depth_buffer_format"`
	PreTransform        diligent.SurfaceTransform `toml:"pre_transform" yaml:"pre_transform"`
	BufferCount         uint32                    `toml:"buffer_count" yaml:"buffer_count"`
	DefaultDepthValue   float32                   `toml:"default_depth_value" yaml:"default_depth_value"`
	DefaultStencilValue uint8                     `toml:"default_stencil_value" yaml:"default_stencil_value"`
	IsPrimary           bool                      `toml:"is_primary" yaml:"is_primary"`
}

// Config selects a backend and holds the settings used to create its device and swap
// chain.
type Config struct {
	Backend diligent.RenderDeviceType `toml:"backend" yaml:"backend"`

	// Library is the path of the backend library. Empty uses the default name for the
	// backend and OS.
	Library   string    `toml:"library" yaml:"library"`
	Engine    Engine    `toml:"engine" yaml:"engine"`
	Vulkan    Vulkan    `toml:"vulkan" yaml:"vulkan"`
	D3D12     D3D12     `toml:"d3d12" yaml:"d3d12"`
	D3D11     D3D11     `toml:"d3d11" yaml:"d3d11"`
	GL        GL        `toml:"gl" yaml:"gl"`
	SwapChain SwapChain `toml:"swap_chain" yaml:"swap_chain"`
}

// Default returns the configuration the engine would use with no settings: the Vulkan
// backend, optional features and a double-buffered sRGB swap chain.
func Default() Config {
	swapChain := diligent.NewSwapChainDesc(0, 0)

	return Config{
		Backend: diligent.RenderDeviceTypeVulkan,
		Engine: Engine{
			DefaultFeatureState: diligent.DeviceFeatureStateOptional,
		},
		D3D12: D3D12{DllName: "d3d12.dll"},
		SwapChain: SwapChain{
			ColorBufferFormat:   swapChain.ColorBufferFormat,
			DepthBufferFormat:   swapChain.DepthBufferFormat,
			PreTransform:        swapChain.PreTransform,
			BufferCount:         swapChain.BufferCount,
			DefaultDepthValue:   swapChain.DefaultDepthValue,
			DefaultStencilValue: swapChain.DefaultStencilValue,
			IsPrimary:           swapChain.IsPrimary,
		},
	}
}

// Load reads the file at path over Default. The format follows the file extension.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading engine config")
	}

	cfg, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return cfg, nil
}

// Decode reads a configuration over Default. Unknown keys are an error.
func Decode(r io.Reader, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		decoder := toml.NewDecoder(r)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, errors.Wrap(err, "decoding TOML")
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "decoding YAML")
		}
	default:
		return nil, errors.Newf("unknown config format %d", format)
	}

	return &cfg, nil
}

// EngineCreateInfo converts the settings shared by every backend.
func (c *Config) EngineCreateInfo() (diligent.EngineCreateInfo, error) {
	ci := diligent.NewEngineCreateInfo()

	if c.Engine.AdapterID != nil {
		ci.AdapterID = *c.Engine.AdapterID
	}
	ci.GraphicsAPIVersion = c.Engine.GraphicsAPIVersion
	ci.NumDeferredContexts = c.Engine.DeferredContexts
	ci.EnableValidation = c.Engine.EnableValidation
	if c.Engine.CheckShaderBufferSize {
		ci.ValidationFlags |= diligent.ValidationFlagCheckShaderBufferSize
	}
	ci.NumAsyncShaderCompilationThreads = c.Engine.AsyncShaderCompilationThreads

	for _, ctx := range c.Engine.ImmediateContexts {
		ci.ImmediateContexts = append(ci.ImmediateContexts, diligent.ImmediateContextCreateInfo{
			Name:     ctx.Name,
			QueueID:  ctx.QueueID,
			Priority: ctx.Priority,
		})
	}

	ci.Features = diligent.NewDeviceFeatures(c.Engine.DefaultFeatureState)
	for name, state := range c.Engine.Features {
		if err := ci.Features.Set(name, state); err != nil {
			return diligent.EngineCreateInfo{}, errors.Wrap(err, "engine.features")
		}
	}

	return ci, nil
}

func (c *Config) VulkanCreateInfo() (diligent.EngineVkCreateInfo, error) {
	engine, err := c.EngineCreateInfo()
	if err != nil {
		return diligent.EngineVkCreateInfo{}, err
	}

	ci := diligent.NewEngineVkCreateInfo()
	ci.EngineCreateInfo = engine
	ci.InstanceLayerNames = c.Vulkan.InstanceLayers
	ci.InstanceExtensionNames = c.Vulkan.InstanceExtensions
	ci.DeviceExtensionNames = c.Vulkan.DeviceExtensions
	ci.IgnoreDebugMessageNames = c.Vulkan.IgnoreDebugMessages
	ci.DxCompilerPath = c.Vulkan.DxCompilerPath

	override(&ci.DeviceLocalMemoryPageSize, c.Vulkan.DeviceLocalMemoryPageSize)
	override(&ci.HostVisibleMemoryPageSize, c.Vulkan.HostVisibleMemoryPageSize)
	override(&ci.UploadHeapPageSize, c.Vulkan.UploadHeapPageSize)
	override(&ci.DynamicHeapSize, c.Vulkan.DynamicHeapSize)
	override(&ci.DynamicHeapPageSize, c.Vulkan.DynamicHeapPageSize)

	return ci, nil
}

func (c *Config) D3D12CreateInfo() (diligent.EngineD3D12CreateInfo, error) {
	engine, err := c.EngineCreateInfo()
	if err != nil {
		return diligent.EngineD3D12CreateInfo{}, err
	}

	ci := diligent.NewEngineD3D12CreateInfo()
	ci.EngineCreateInfo = engine
	if c.D3D12.DllName != "" {
		ci.D3D12DllName = c.D3D12.DllName
	}
	ci.DxCompilerPath = c.D3D12.DxCompilerPath
	ci.HLSLCompiler = c.D3D12.HLSLCompiler

	return ci, nil
}

func (c *Config) D3D11CreateInfo() (diligent.EngineD3D11CreateInfo, error) {
	engine, err := c.EngineCreateInfo()
	if err != nil {
		return diligent.EngineD3D11CreateInfo{}, err
	}

	ci := diligent.NewEngineD3D11CreateInfo()
	ci.EngineCreateInfo = engine
	ci.D3D11ValidationFlags = c.D3D11.ValidationFlags

	return ci, nil
}

// GLCreateInfo converts the settings for a GL device rendering to window.
func (c *Config) GLCreateInfo(window diligent.NativeWindow) (diligent.EngineGLCreateInfo, error) {
	engine, err := c.EngineCreateInfo()
	if err != nil {
		return diligent.EngineGLCreateInfo{}, err
	}

	ci := diligent.NewEngineGLCreateInfo(window)
	ci.EngineCreateInfo = engine
	ci.ZeroToOneNDZ = c.GL.ZeroToOneNDZ
	ci.PreferredAdapterType = c.GL.PreferredAdapterType

	return ci, nil
}

func (c *Config) SwapChainDesc() diligent.SwapChainDesc {
	desc := diligent.NewSwapChainDesc(c.SwapChain.Width, c.SwapChain.Height)
	desc.ColorBufferFormat = c.SwapChain.ColorBufferFormat
	desc.DepthBufferFormat = c.SwapChain.DepthBufferFormat
	desc.PreTransform = c.SwapChain.PreTransform
	override(&desc.BufferCount, c.SwapChain.BufferCount)
	desc.DefaultDepthValue = c.SwapChain.DefaultDepthValue
	desc.DefaultStencilValue = c.SwapChain.DefaultStencilValue
	desc.IsPrimary = c.SwapChain.IsPrimary
	return desc
}

func override(dst *uint32, value uint32) {
	if value != 0 {
		*dst = value
	}
}
