package driver

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// APIVersion is the engine API version this binding was laid out against.
const APIVersion = 256004

// APIInfo is returned by the engine factory and reports the size of every public
// structure as compiled into the engine library.
type APIInfo struct {
	StructSize                        uint64
	APIVersion                        int32
	RenderTargetBlendDescSize         uint64
	BlendStateDescSize                uint64
	BufferDescSize                    uint64
	BufferDataSize                    uint64
	BufferFormatSize                  uint64
	BufferViewDescSize                uint64
	StencilOpDescSize                 uint64
	DepthStencilStateDescSize         uint64
	SamplerPropertiesSize             uint64
	TexturePropertiesSize             uint64
	RenderDeviceInfoSize              uint64
	GraphicsAdapterInfoSize           uint64
	DrawAttribsSize                   uint64
	DispatchComputeAttribsSize        uint64
	ViewportSize                      uint64
	RectSize                          uint64
	CopyTextureAttribsSize            uint64
	DeviceObjectAttribsSize           uint64
	GraphicsAdapterInfoFeaturesSize   uint64
	DeviceFeaturesSize                uint64
	EngineCreateInfoSize              uint64
	EngineGLCreateInfoSize            uint64
	EngineD3D11CreateInfoSize         uint64
	EngineD3D12CreateInfoSize         uint64
	EngineVkCreateInfoSize            uint64
	BoxSize                           uint64
	TextureFormatAttribsSize          uint64
	TextureFormatInfoSize             uint64
	TextureFormatInfoExtSize          uint64
	StateTransitionDescSize           uint64
	LayoutElementSize                 uint64
	InputLayoutDescSize               uint64
	SampleDescSize                    uint64
	ShaderResourceVariableDescSize    uint64
	ImmutableSamplerDescSize          uint64
	PipelineResourceLayoutDescSize    uint64
	PipelineStateDescSize             uint64
	GraphicsPipelineDescSize          uint64
	GraphicsPipelineStateCreateInfo   uint64
	ComputePipelineStateCreateInfo    uint64
	RayTracingPipelineStateCreateInfo uint64
	RasterizerStateDescSize           uint64
	ResourceMappingEntrySize          uint64
	ResourceMappingCreateInfoSize     uint64
	SamplerDescSize                   uint64
	ShaderDescSize                    uint64
	ShaderMacroSize                   uint64
	ShaderCreateInfoSize              uint64
	ShaderResourceDescSize            uint64
	DepthStencilClearValueSize        uint64
	OptimizedClearValueSize           uint64
	TextureDescSize                   uint64
	TextureSubResDataSize             uint64
	TextureDataSize                   uint64
	MappedTextureSubresourceSize      uint64
	TextureViewDescSize               uint64
}

type structSizeCheck struct {
	name   string
	native uint64
	local  uintptr
}

func (info *APIInfo) checks() []structSizeCheck {
	return []structSizeCheck{
		{"RenderTargetBlendDesc", info.RenderTargetBlendDescSize, unsafe.Sizeof(RenderTargetBlendDesc{})},
		{"BlendStateDesc", info.BlendStateDescSize, unsafe.Sizeof(BlendStateDesc{})},
		{"BufferDesc", info.BufferDescSize, unsafe.Sizeof(BufferDesc{})},
		{"BufferData", info.BufferDataSize, unsafe.Sizeof(BufferData{})},
		{"BufferFormat", info.BufferFormatSize, unsafe.Sizeof(BufferFormat{})},
		{"BufferViewDesc", info.BufferViewDescSize, unsafe.Sizeof(BufferViewDesc{})},
		{"StencilOpDesc", info.StencilOpDescSize, unsafe.Sizeof(StencilOpDesc{})},
		{"DepthStencilStateDesc", info.DepthStencilStateDescSize, unsafe.Sizeof(DepthStencilStateDesc{})},
		{"SamplerProperties", info.SamplerPropertiesSize, unsafe.Sizeof(SamplerProperties{})},
		{"TextureProperties", info.TexturePropertiesSize, unsafe.Sizeof(TextureProperties{})},
		{"RenderDeviceInfo", info.RenderDeviceInfoSize, unsafe.Sizeof(RenderDeviceInfo{})},
		{"GraphicsAdapterInfo", info.GraphicsAdapterInfoSize, unsafe.Sizeof(GraphicsAdapterInfo{})},
		{"DrawAttribs", info.DrawAttribsSize, unsafe.Sizeof(DrawAttribs{})},
		{"DispatchComputeAttribs", info.DispatchComputeAttribsSize, unsafe.Sizeof(DispatchComputeAttribs{})},
		{"Viewport", info.ViewportSize, unsafe.Sizeof(Viewport{})},
		{"Rect", info.RectSize, unsafe.Sizeof(Rect{})},
		{"CopyTextureAttribs", info.CopyTextureAttribsSize, unsafe.Sizeof(CopyTextureAttribs{})},
		{"DeviceObjectAttribs", info.DeviceObjectAttribsSize, unsafe.Sizeof(DeviceObjectAttribs{})},
		{"DeviceFeatures", info.DeviceFeaturesSize, unsafe.Sizeof(DeviceFeatures{})},
		{"EngineCreateInfo", info.EngineCreateInfoSize, unsafe.Sizeof(EngineCreateInfo{})},
		{"EngineGLCreateInfo", info.EngineGLCreateInfoSize, unsafe.Sizeof(EngineGLCreateInfo{})},
		{"EngineD3D11CreateInfo", info.EngineD3D11CreateInfoSize, unsafe.Sizeof(EngineD3D11CreateInfo{})},
		{"EngineD3D12CreateInfo", info.EngineD3D12CreateInfoSize, unsafe.Sizeof(EngineD3D12CreateInfo{})},
		{"EngineVkCreateInfo", info.EngineVkCreateInfoSize, unsafe.Sizeof(EngineVkCreateInfo{})},
		{"Box", info.BoxSize, unsafe.Sizeof(Box{})},
		{"TextureFormatInfo", info.TextureFormatInfoSize, unsafe.Sizeof(TextureFormatInfo{})},
		{"TextureFormatInfoExt", info.TextureFormatInfoExtSize, unsafe.Sizeof(TextureFormatInfoExt{})},
		{"StateTransitionDesc", info.StateTransitionDescSize, unsafe.Sizeof(StateTransitionDesc{})},
		{"LayoutElement", info.LayoutElementSize, unsafe.Sizeof(LayoutElement{})},
		{"InputLayoutDesc", info.InputLayoutDescSize, unsafe.Sizeof(InputLayoutDesc{})},
		{"SampleDesc", info.SampleDescSize, unsafe.Sizeof(SampleDesc{})},
		{"ShaderResourceVariableDesc", info.ShaderResourceVariableDescSize, unsafe.Sizeof(ShaderResourceVariableDesc{})},
		{"ImmutableSamplerDesc", info.ImmutableSamplerDescSize, unsafe.Sizeof(ImmutableSamplerDesc{})},
		{"PipelineResourceLayoutDesc", info.PipelineResourceLayoutDescSize, unsafe.Sizeof(PipelineResourceLayoutDesc{})},
		{"PipelineStateDesc", info.PipelineStateDescSize, unsafe.Sizeof(PipelineStateDesc{})},
		{"GraphicsPipelineDesc", info.GraphicsPipelineDescSize, unsafe.Sizeof(GraphicsPipelineDesc{})},
		{"GraphicsPipelineStateCreateInfo", info.GraphicsPipelineStateCreateInfo, unsafe.Sizeof(GraphicsPipelineStateCreateInfo{})},
		{"ComputePipelineStateCreateInfo", info.ComputePipelineStateCreateInfo, unsafe.Sizeof(ComputePipelineStateCreateInfo{})},
		{"RayTracingPipelineStateCreateInfo", info.RayTracingPipelineStateCreateInfo, unsafe.Sizeof(RayTracingPipelineStateCreateInfo{})},
		{"RasterizerStateDesc", info.RasterizerStateDescSize, unsafe.Sizeof(RasterizerStateDesc{})},
		{"ResourceMappingEntry", info.ResourceMappingEntrySize, unsafe.Sizeof(ResourceMappingEntry{})},
		{"ResourceMappingCreateInfo", info.ResourceMappingCreateInfoSize, unsafe.Sizeof(ResourceMappingCreateInfo{})},
		{"SamplerDesc", info.SamplerDescSize, unsafe.Sizeof(SamplerDesc{})},
		{"ShaderDesc", info.ShaderDescSize, unsafe.Sizeof(ShaderDesc{})},
		{"ShaderMacro", info.ShaderMacroSize, unsafe.Sizeof(ShaderMacro{})},
		{"ShaderCreateInfo", info.ShaderCreateInfoSize, unsafe.Sizeof(ShaderCreateInfo{})},
		{"ShaderResourceDesc", info.ShaderResourceDescSize, unsafe.Sizeof(ShaderResourceDesc{})},
		{"DepthStencilClearValue", info.DepthStencilClearValueSize, unsafe.Sizeof(DepthStencilClearValue{})},
		{"OptimizedClearValue", info.OptimizedClearValueSize, unsafe.Sizeof(OptimizedClearValue{})},
		{"TextureDesc", info.TextureDescSize, unsafe.Sizeof(TextureDesc{})},
		{"TextureSubResData", info.TextureSubResDataSize, unsafe.Sizeof(TextureSubResData{})},
		{"TextureData", info.TextureDataSize, unsafe.Sizeof(TextureData{})},
		{"MappedTextureSubresource", info.MappedTextureSubresourceSize, unsafe.Sizeof(MappedTextureSubresource{})},
		{"TextureViewDesc", info.TextureViewDescSize, unsafe.Sizeof(TextureViewDesc{})},
	}
}

// Verify compares the engine's reported structure sizes with this package's layouts.
// Sizes the engine reports as zero are not checked. Every mismatch is reported; the
// returned error matches ErrAPIMismatch.
func (info *APIInfo) Verify() error {
	if info == nil {
		return errors.Wrap(ErrAPIMismatch, "engine returned no API info")
	}

	if info.APIVersion != APIVersion {
		return errors.Wrapf(ErrAPIMismatch, "engine API version %d, binding API version %d", info.APIVersion, APIVersion)
	}

	var err error
	for _, check := range info.checks() {
		if check.native == 0 || check.native == uint64(check.local) {
			continue
		}
		err = errors.CombineErrors(err, errors.Wrapf(ErrAPIMismatch, "%s is %d bytes in the engine, %d bytes in the binding", check.name, check.native, check.local))
	}

	return err
}
