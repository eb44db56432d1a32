package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
)

const (
	// LayoutElementAutoOffset makes the engine compute an element's offset from the
	// preceding elements in the same buffer slot.
	LayoutElementAutoOffset uint32 = 0xFFFFFFFF
	// LayoutElementAutoStride makes the engine compute a buffer slot's stride.
	LayoutElementAutoStride uint32 = 0xFFFFFFFF

	MaxRenderTargets = driver.MaxRenderTargets
)

type ShaderResourceVariableDesc struct {
	ShaderStages ShaderType
	Name         string
	Type         ShaderResourceVariableType
	Flags        ShaderVariableFlags
}

func (d *ShaderResourceVariableDesc) marshal(arena *driver.Arena) driver.ShaderResourceVariableDesc {
	return driver.ShaderResourceVariableDesc{
		ShaderStages: d.ShaderStages.native(),
		Name:         arena.CString(d.Name),
		Type:         d.Type.native(),
		Flags:        d.Flags.native(),
	}
}

func shaderResourceVariableDescFromNative(n *driver.ShaderResourceVariableDesc) ShaderResourceVariableDesc {
	return ShaderResourceVariableDesc{
		ShaderStages: ShaderType(n.ShaderStages),
		Name:         driver.GoString(n.Name),
		Type:         shaderResourceVariableTypeFromNative(n.Type),
		Flags:        ShaderVariableFlags(n.Flags),
	}
}

// ImmutableSamplerDesc binds a sampler that cannot change to a sampler or to the
// texture it is combined with.
type ImmutableSamplerDesc struct {
	ShaderStages         ShaderType
	SamplerOrTextureName string
	Desc                 SamplerDesc
}

func (d *ImmutableSamplerDesc) marshal(arena *driver.Arena) driver.ImmutableSamplerDesc {
	return driver.ImmutableSamplerDesc{
		ShaderStages:         d.ShaderStages.native(),
		SamplerOrTextureName: arena.CString(d.SamplerOrTextureName),
		Desc:                 d.Desc.marshal(arena),
	}
}

func immutableSamplerDescFromNative(n *driver.ImmutableSamplerDesc) ImmutableSamplerDesc {
	return ImmutableSamplerDesc{
		ShaderStages:         ShaderType(n.ShaderStages),
		SamplerOrTextureName: driver.GoString(n.SamplerOrTextureName),
		Desc:                 samplerDescFromNative(&n.Desc),
	}
}

func marshalImmutableSamplers(arena *driver.Arena, samplers []ImmutableSamplerDesc) (*driver.ImmutableSamplerDesc, uint32) {
	return driver.MarshalSlice(arena, samplers, func(a *driver.Arena, s *ImmutableSamplerDesc) driver.ImmutableSamplerDesc {
		return s.marshal(a)
	})
}

func immutableSamplersFromNative(p *driver.ImmutableSamplerDesc, count uint32) []ImmutableSamplerDesc {
	var out []ImmutableSamplerDesc
	for _, s := range driver.GoSlice(p, count) {
		out = append(out, immutableSamplerDescFromNative(&s))
	}
	return out
}

type PipelineResourceLayoutDesc struct {
	DefaultVariableType        ShaderResourceVariableType
	DefaultVariableMergeStages ShaderType
	Variables                  []ShaderResourceVariableDesc
	ImmutableSamplers          []ImmutableSamplerDesc
}

func (d *PipelineResourceLayoutDesc) marshal(arena *driver.Arena) driver.PipelineResourceLayoutDesc {
	variables, variableCount := driver.MarshalSlice(arena, d.Variables, func(a *driver.Arena, v *ShaderResourceVariableDesc) driver.ShaderResourceVariableDesc {
		return v.marshal(a)
	})
	samplers, samplerCount := marshalImmutableSamplers(arena, d.ImmutableSamplers)

	return driver.PipelineResourceLayoutDesc{
		DefaultVariableType:        d.DefaultVariableType.native(),
		DefaultVariableMergeStages: d.DefaultVariableMergeStages.native(),
		NumVariables:               variableCount,
		Variables:                  variables,
		NumImmutableSamplers:       samplerCount,
		ImmutableSamplers:          samplers,
	}
}

func pipelineResourceLayoutDescFromNative(n *driver.PipelineResourceLayoutDesc) PipelineResourceLayoutDesc {
	desc := PipelineResourceLayoutDesc{
		DefaultVariableType:        shaderResourceVariableTypeFromNative(n.DefaultVariableType),
		DefaultVariableMergeStages: ShaderType(n.DefaultVariableMergeStages),
		ImmutableSamplers:          immutableSamplersFromNative(n.ImmutableSamplers, n.NumImmutableSamplers),
	}
	for _, v := range driver.GoSlice(n.Variables, n.NumVariables) {
		desc.Variables = append(desc.Variables, shaderResourceVariableDescFromNative(&v))
	}
	return desc
}

// PipelineStateDesc is the part of a pipeline description shared by every pipeline type.
type PipelineStateDesc struct {
	Name                     string
	PipelineType             PipelineType
	SRBAllocationGranularity uint32
	ImmediateContextMask     uint64
	ResourceLayout           PipelineResourceLayoutDesc
}

func NewPipelineStateDesc(pipelineType PipelineType) PipelineStateDesc {
	return PipelineStateDesc{
		PipelineType:             pipelineType,
		SRBAllocationGranularity: 1,
		ImmediateContextMask:     1,
		ResourceLayout: PipelineResourceLayoutDesc{
			DefaultVariableType: ShaderResourceVariableTypeStatic,
		},
	}
}

func (d *PipelineStateDesc) marshal(arena *driver.Arena) driver.PipelineStateDesc {
	return driver.PipelineStateDesc{
		DeviceObjectAttribs:      driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		PipelineType:             d.PipelineType.native(),
		SRBAllocationGranularity: d.SRBAllocationGranularity,
		ImmediateContextMask:     d.ImmediateContextMask,
		ResourceLayout:           d.ResourceLayout.marshal(arena),
	}
}

func pipelineStateDescFromNative(n *driver.PipelineStateDesc) PipelineStateDesc {
	return PipelineStateDesc{
		Name:                     driver.GoString(n.Name),
		PipelineType:             pipelineTypeFromNative(n.PipelineType),
		SRBAllocationGranularity: n.SRBAllocationGranularity,
		ImmediateContextMask:     n.ImmediateContextMask,
		ResourceLayout:           pipelineResourceLayoutDescFromNative(&n.ResourceLayout),
	}
}

type RenderTargetBlendDesc struct {
	BlendEnable           bool
	LogicOperationEnable  bool
	SrcBlend              BlendFactor
	DestBlend             BlendFactor
	BlendOp               BlendOperation
	SrcBlendAlpha         BlendFactor
	DestBlendAlpha        BlendFactor
	BlendOpAlpha          BlendOperation
	LogicOp               LogicOperation
	RenderTargetWriteMask ColorMask
}

func NewRenderTargetBlendDesc() RenderTargetBlendDesc {
	return RenderTargetBlendDesc{
		SrcBlend:              BlendFactorOne,
		DestBlend:             BlendFactorZero,
		BlendOp:               BlendOperationAdd,
		SrcBlendAlpha:         BlendFactorOne,
		DestBlendAlpha:        BlendFactorZero,
		BlendOpAlpha:          BlendOperationAdd,
		LogicOp:               LogicOpNoop,
		RenderTargetWriteMask: ColorMaskAll,
	}
}

func (d *RenderTargetBlendDesc) marshal() driver.RenderTargetBlendDesc {
	return driver.RenderTargetBlendDesc{
		BlendEnable:           d.BlendEnable,
		LogicOperationEnable:  d.LogicOperationEnable,
		SrcBlend:              d.SrcBlend.native(),
		DestBlend:             d.DestBlend.native(),
		BlendOp:               d.BlendOp.native(),
		SrcBlendAlpha:         d.SrcBlendAlpha.native(),
		DestBlendAlpha:        d.DestBlendAlpha.native(),
		BlendOpAlpha:          d.BlendOpAlpha.native(),
		LogicOp:               d.LogicOp.native(),
		RenderTargetWriteMask: d.RenderTargetWriteMask.native(),
	}
}

func renderTargetBlendDescFromNative(n *driver.RenderTargetBlendDesc) RenderTargetBlendDesc {
	return RenderTargetBlendDesc{
		BlendEnable:           n.BlendEnable,
		LogicOperationEnable:  n.LogicOperationEnable,
		SrcBlend:              blendFactorFromNative(n.SrcBlend),
		DestBlend:             blendFactorFromNative(n.DestBlend),
		BlendOp:               blendOperationFromNative(n.BlendOp),
		SrcBlendAlpha:         blendFactorFromNative(n.SrcBlendAlpha),
		DestBlendAlpha:        blendFactorFromNative(n.DestBlendAlpha),
		BlendOpAlpha:          blendOperationFromNative(n.BlendOpAlpha),
		LogicOp:               logicOperationFromNative(n.LogicOp),
		RenderTargetWriteMask: ColorMask(n.RenderTargetWriteMask),
	}
}

type BlendStateDesc struct {
	AlphaToCoverageEnable  bool
	IndependentBlendEnable bool
	RenderTargets          [MaxRenderTargets]RenderTargetBlendDesc
}

func NewBlendStateDesc() BlendStateDesc {
	var desc BlendStateDesc
	for i := range desc.RenderTargets {
		desc.RenderTargets[i] = NewRenderTargetBlendDesc()
	}
	return desc
}

func (d *BlendStateDesc) marshal() driver.BlendStateDesc {
	native := driver.BlendStateDesc{
		AlphaToCoverageEnable:  d.AlphaToCoverageEnable,
		IndependentBlendEnable: d.IndependentBlendEnable,
	}
	for i := range d.RenderTargets {
		native.RenderTargets[i] = d.RenderTargets[i].marshal()
	}
	return native
}

func blendStateDescFromNative(n *driver.BlendStateDesc) BlendStateDesc {
	desc := BlendStateDesc{
		AlphaToCoverageEnable:  n.AlphaToCoverageEnable,
		IndependentBlendEnable: n.IndependentBlendEnable,
	}
	for i := range n.RenderTargets {
		desc.RenderTargets[i] = renderTargetBlendDescFromNative(&n.RenderTargets[i])
	}
	return desc
}

type RasterizerStateDesc struct {
	FillMode              FillMode
	CullMode              CullMode
	FrontCounterClockwise bool
	DepthClipEnable       bool
	ScissorEnable         bool
	AntialiasedLineEnable bool
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
}

func NewRasterizerStateDesc() RasterizerStateDesc {
	return RasterizerStateDesc{
		FillMode:        FillModeSolid,
		CullMode:        CullModeBack,
		DepthClipEnable: true,
	}
}

func (d *RasterizerStateDesc) marshal() driver.RasterizerStateDesc {
	return driver.RasterizerStateDesc{
		FillMode:              d.FillMode.native(),
		CullMode:              d.CullMode.native(),
		FrontCounterClockwise: d.FrontCounterClockwise,
		DepthClipEnable:       d.DepthClipEnable,
		ScissorEnable:         d.ScissorEnable,
		AntialiasedLineEnable: d.AntialiasedLineEnable,
		DepthBias:             d.DepthBias,
		DepthBiasClamp:        d.DepthBiasClamp,
		SlopeScaledDepthBias:  d.SlopeScaledDepthBias,
	}
}

func rasterizerStateDescFromNative(n *driver.RasterizerStateDesc) RasterizerStateDesc {
	return RasterizerStateDesc{
		FillMode:              fillModeFromNative(n.FillMode),
		CullMode:              cullModeFromNative(n.CullMode),
		FrontCounterClockwise: n.FrontCounterClockwise,
		DepthClipEnable:       n.DepthClipEnable,
		ScissorEnable:         n.ScissorEnable,
		AntialiasedLineEnable: n.AntialiasedLineEnable,
		DepthBias:             n.DepthBias,
		DepthBiasClamp:        n.DepthBiasClamp,
		SlopeScaledDepthBias:  n.SlopeScaledDepthBias,
	}
}

type StencilOpDesc struct {
	StencilFailOp      StencilOp
	StencilDepthFailOp StencilOp
	StencilPassOp      StencilOp
	StencilFunc        ComparisonFunction
}

func NewStencilOpDesc() StencilOpDesc {
	return StencilOpDesc{
		StencilFailOp:      StencilOpKeep,
		StencilDepthFailOp: StencilOpKeep,
		StencilPassOp:      StencilOpKeep,
		StencilFunc:        ComparisonFuncAlways,
	}
}

func (d StencilOpDesc) marshal() driver.StencilOpDesc {
	return driver.StencilOpDesc{
		StencilFailOp:      d.StencilFailOp.native(),
		StencilDepthFailOp: d.StencilDepthFailOp.native(),
		StencilPassOp:      d.StencilPassOp.native(),
		StencilFunc:        d.StencilFunc.native(),
	}
}

func stencilOpDescFromNative(n driver.StencilOpDesc) StencilOpDesc {
	return StencilOpDesc{
		StencilFailOp:      stencilOpFromNative(n.StencilFailOp),
		StencilDepthFailOp: stencilOpFromNative(n.StencilDepthFailOp),
		StencilPassOp:      stencilOpFromNative(n.StencilPassOp),
		StencilFunc:        comparisonFunctionFromNative(n.StencilFunc),
	}
}

type DepthStencilStateDesc struct {
	DepthEnable      bool
	DepthWriteEnable bool
	DepthFunc        ComparisonFunction
	StencilEnable    bool
	StencilReadMask  uint8
	StencilWriteMask uint8
	FrontFace        StencilOpDesc
	BackFace         StencilOpDesc
}

func NewDepthStencilStateDesc() DepthStencilStateDesc {
	return DepthStencilStateDesc{
		DepthEnable:      true,
		DepthWriteEnable: true,
		DepthFunc:        ComparisonFuncLess,
		StencilReadMask:  0xFF,
		StencilWriteMask: 0xFF,
		FrontFace:        NewStencilOpDesc(),
		BackFace:         NewStencilOpDesc(),
	}
}

func (d *DepthStencilStateDesc) marshal() driver.DepthStencilStateDesc {
	return driver.DepthStencilStateDesc{
		DepthEnable:      d.DepthEnable,
		DepthWriteEnable: d.DepthWriteEnable,
		DepthFunc:        d.DepthFunc.native(),
		StencilEnable:    d.StencilEnable,
		StencilReadMask:  d.StencilReadMask,
		StencilWriteMask: d.StencilWriteMask,
		FrontFace:        d.FrontFace.marshal(),
		BackFace:         d.BackFace.marshal(),
	}
}

func depthStencilStateDescFromNative(n *driver.DepthStencilStateDesc) DepthStencilStateDesc {
	return DepthStencilStateDesc{
		DepthEnable:      n.DepthEnable,
		DepthWriteEnable: n.DepthWriteEnable,
		DepthFunc:        comparisonFunctionFromNative(n.DepthFunc),
		StencilEnable:    n.StencilEnable,
		StencilReadMask:  n.StencilReadMask,
		StencilWriteMask: n.StencilWriteMask,
		FrontFace:        stencilOpDescFromNative(n.FrontFace),
		BackFace:         stencilOpDescFromNative(n.BackFace),
	}
}

// LayoutElement describes one vertex shader input.
type LayoutElement struct {
	HLSLSemantic         string
	InputIndex           uint32
	BufferSlot           uint32
	NumComponents        uint32
	ValueType            ValueType
	IsNormalized         bool
	RelativeOffset       uint32
	Stride               uint32
	Frequency            InputElementFrequency
	InstanceDataStepRate uint32
}

func NewLayoutElement(inputIndex, bufferSlot, numComponents uint32, valueType ValueType) LayoutElement {
	return LayoutElement{
		HLSLSemantic:         "ATTRIB",
		InputIndex:           inputIndex,
		BufferSlot:           bufferSlot,
		NumComponents:        numComponents,
		ValueType:            valueType,
		IsNormalized:         valueType != VtFloat32 && valueType != VtFloat16 && valueType != VtFloat64,
		RelativeOffset:       LayoutElementAutoOffset,
		Stride:               LayoutElementAutoStride,
		Frequency:            InputElementFrequencyPerVertex,
		InstanceDataStepRate: 1,
	}
}

func (e *LayoutElement) marshal(arena *driver.Arena) driver.LayoutElement {
	return driver.LayoutElement{
		HLSLSemantic:         arena.CString(e.HLSLSemantic),
		InputIndex:           e.InputIndex,
		BufferSlot:           e.BufferSlot,
		NumComponents:        e.NumComponents,
		ValueType:            e.ValueType.native(),
		IsNormalized:         e.IsNormalized,
		RelativeOffset:       e.RelativeOffset,
		Stride:               e.Stride,
		Frequency:            e.Frequency.native(),
		InstanceDataStepRate: e.InstanceDataStepRate,
	}
}

func layoutElementFromNative(n *driver.LayoutElement) LayoutElement {
	return LayoutElement{
		HLSLSemantic:         driver.GoString(n.HLSLSemantic),
		InputIndex:           n.InputIndex,
		BufferSlot:           n.BufferSlot,
		NumComponents:        n.NumComponents,
		ValueType:            valueTypeFromNative(n.ValueType),
		IsNormalized:         n.IsNormalized,
		RelativeOffset:       n.RelativeOffset,
		Stride:               n.Stride,
		Frequency:            inputElementFrequencyFromNative(n.Frequency),
		InstanceDataStepRate: n.InstanceDataStepRate,
	}
}

type InputLayoutDesc struct {
	LayoutElements []LayoutElement
}

func (d *InputLayoutDesc) marshal(arena *driver.Arena) driver.InputLayoutDesc {
	elements, count := driver.MarshalSlice(arena, d.LayoutElements, func(a *driver.Arena, e *LayoutElement) driver.LayoutElement {
		return e.marshal(a)
	})
	return driver.InputLayoutDesc{LayoutElements: elements, NumElements: count}
}

func inputLayoutDescFromNative(n *driver.InputLayoutDesc) InputLayoutDesc {
	var desc InputLayoutDesc
	for _, e := range driver.GoSlice(n.LayoutElements, n.NumElements) {
		desc.LayoutElements = append(desc.LayoutElements, layoutElementFromNative(&e))
	}
	return desc
}

type SampleDesc struct {
	Count   uint8
	Quality uint8
}

// GraphicsPipelineDesc holds the fixed-function state of a graphics pipeline.
type GraphicsPipelineDesc struct {
	BlendDesc         BlendStateDesc
	SampleMask        uint32
	RasterizerDesc    RasterizerStateDesc
	DepthStencilDesc  DepthStencilStateDesc
	InputLayout       InputLayoutDesc
	PrimitiveTopology PrimitiveTopology
	NumViewports      uint8
	NumRenderTargets  uint8
	SubpassIndex      uint8
	ShadingRateFlags  PipelineShadingRateFlags
	RTVFormats        [MaxRenderTargets]TextureFormat
	DSVFormat         TextureFormat
	ReadOnlyDSV       bool
	SmplDesc          SampleDesc
	// RenderPass is used instead of RTVFormats and DSVFormat when set. It is not
	// filled in by PipelineState.GraphicsPipelineDesc.
	RenderPass *RenderPass
	NodeMask   uint32
}

func NewGraphicsPipelineDesc() GraphicsPipelineDesc {
	return GraphicsPipelineDesc{
		BlendDesc:         NewBlendStateDesc(),
		SampleMask:        0xFFFFFFFF,
		RasterizerDesc:    NewRasterizerStateDesc(),
		DepthStencilDesc:  NewDepthStencilStateDesc(),
		PrimitiveTopology: PrimitiveTopologyTriangleList,
		NumViewports:      1,
		SmplDesc:          SampleDesc{Count: 1},
	}
}

func (d *GraphicsPipelineDesc) marshal(arena *driver.Arena) driver.GraphicsPipelineDesc {
	native := driver.GraphicsPipelineDesc{
		BlendDesc:         d.BlendDesc.marshal(),
		SampleMask:        d.SampleMask,
		RasterizerDesc:    d.RasterizerDesc.marshal(),
		DepthStencilDesc:  d.DepthStencilDesc.marshal(),
		InputLayout:       d.InputLayout.marshal(arena),
		PrimitiveTopology: d.PrimitiveTopology.native(),
		NumViewports:      d.NumViewports,
		NumRenderTargets:  d.NumRenderTargets,
		SubpassIndex:      d.SubpassIndex,
		ShadingRateFlags:  d.ShadingRateFlags.native(),
		DSVFormat:         d.DSVFormat.native(),
		ReadOnlyDSV:       d.ReadOnlyDSV,
		SmplDesc:          driver.SampleDesc{Count: d.SmplDesc.Count, Quality: d.SmplDesc.Quality},
		RenderPass:        d.RenderPass.handle(),
		NodeMask:          d.NodeMask,
	}
	for i, format := range d.RTVFormats {
		native.RTVFormats[i] = format.native()
	}
	return native
}

func graphicsPipelineDescFromNative(n *driver.GraphicsPipelineDesc) GraphicsPipelineDesc {
	desc := GraphicsPipelineDesc{
		BlendDesc:         blendStateDescFromNative(&n.BlendDesc),
		SampleMask:        n.SampleMask,
		RasterizerDesc:    rasterizerStateDescFromNative(&n.RasterizerDesc),
		DepthStencilDesc:  depthStencilStateDescFromNative(&n.DepthStencilDesc),
		InputLayout:       inputLayoutDescFromNative(&n.InputLayout),
		PrimitiveTopology: primitiveTopologyFromNative(n.PrimitiveTopology),
		NumViewports:      n.NumViewports,
		NumRenderTargets:  n.NumRenderTargets,
		SubpassIndex:      n.SubpassIndex,
		ShadingRateFlags:  PipelineShadingRateFlags(n.ShadingRateFlags),
		DSVFormat:         textureFormatFromNative(n.DSVFormat),
		ReadOnlyDSV:       n.ReadOnlyDSV,
		SmplDesc:          SampleDesc{Count: n.SmplDesc.Count, Quality: n.SmplDesc.Quality},
		NodeMask:          n.NodeMask,
	}
	for i, format := range n.RTVFormats {
		desc.RTVFormats[i] = textureFormatFromNative(format)
	}
	return desc
}

// PipelineStateCreateInfo is the part of a pipeline creation request shared by every
// pipeline type.
type PipelineStateCreateInfo struct {
	PSODesc            PipelineStateDesc
	Flags              PSOCreateFlags
	ResourceSignatures []*PipelineResourceSignature
	PSOCache           *PipelineStateCache
}

func (ci *PipelineStateCreateInfo) marshal(arena *driver.Arena) driver.PipelineStateCreateInfo {
	return driver.PipelineStateCreateInfo{
		PSODesc:                 ci.PSODesc.marshal(arena),
		Flags:                   ci.Flags.native(),
		ResourceSignaturesCount: uint32(len(ci.ResourceSignatures)),
		ResourceSignatures:      handles(arena, ci.ResourceSignatures),
		PSOCache:                ci.PSOCache.handle(),
	}
}

type GraphicsPipelineStateCreateInfo struct {
	PipelineStateCreateInfo
	GraphicsPipeline GraphicsPipelineDesc
	VS               *Shader
	PS               *Shader
	DS               *Shader
	HS               *Shader
	GS               *Shader
	AS               *Shader
	MS               *Shader
}

func NewGraphicsPipelineStateCreateInfo() GraphicsPipelineStateCreateInfo {
	return GraphicsPipelineStateCreateInfo{
		PipelineStateCreateInfo: PipelineStateCreateInfo{PSODesc: NewPipelineStateDesc(PipelineTypeGraphics)},
		GraphicsPipeline:        NewGraphicsPipelineDesc(),
	}
}

func (ci *GraphicsPipelineStateCreateInfo) marshal(arena *driver.Arena) driver.GraphicsPipelineStateCreateInfo {
	return driver.GraphicsPipelineStateCreateInfo{
		PipelineStateCreateInfo: ci.PipelineStateCreateInfo.marshal(arena),
		GraphicsPipeline:        ci.GraphicsPipeline.marshal(arena),
		VS:                      ci.VS.handle(),
		PS:                      ci.PS.handle(),
		DS:                      ci.DS.handle(),
		HS:                      ci.HS.handle(),
		GS:                      ci.GS.handle(),
		AS:                      ci.AS.handle(),
		MS:                      ci.MS.handle(),
	}
}

type ComputePipelineStateCreateInfo struct {
	PipelineStateCreateInfo
	CS *Shader
}

func NewComputePipelineStateCreateInfo() ComputePipelineStateCreateInfo {
	return ComputePipelineStateCreateInfo{
		PipelineStateCreateInfo: PipelineStateCreateInfo{PSODesc: NewPipelineStateDesc(PipelineTypeCompute)},
	}
}

func (ci *ComputePipelineStateCreateInfo) marshal(arena *driver.Arena) driver.ComputePipelineStateCreateInfo {
	return driver.ComputePipelineStateCreateInfo{
		PipelineStateCreateInfo: ci.PipelineStateCreateInfo.marshal(arena),
		CS:                      ci.CS.handle(),
	}
}

type TilePipelineDesc struct {
	NumRenderTargets uint8
	SampleCount      uint8
	RTVFormats       [MaxRenderTargets]TextureFormat
}

func (d *TilePipelineDesc) marshal() driver.TilePipelineDesc {
	native := driver.TilePipelineDesc{
		NumRenderTargets: d.NumRenderTargets,
		SampleCount:      d.SampleCount,
	}
	for i, format := range d.RTVFormats {
		native.RTVFormats[i] = format.native()
	}
	return native
}

func tilePipelineDescFromNative(n *driver.TilePipelineDesc) TilePipelineDesc {
	desc := TilePipelineDesc{NumRenderTargets: n.NumRenderTargets, SampleCount: n.SampleCount}
	for i, format := range n.RTVFormats {
		desc.RTVFormats[i] = textureFormatFromNative(format)
	}
	return desc
}

type TilePipelineStateCreateInfo struct {
	PipelineStateCreateInfo
	TilePipeline TilePipelineDesc
	TS           *Shader
}

func NewTilePipelineStateCreateInfo() TilePipelineStateCreateInfo {
	return TilePipelineStateCreateInfo{
		PipelineStateCreateInfo: PipelineStateCreateInfo{PSODesc: NewPipelineStateDesc(PipelineTypeTile)},
		TilePipeline:            TilePipelineDesc{SampleCount: 1},
	}
}

func (ci *TilePipelineStateCreateInfo) marshal(arena *driver.Arena) driver.TilePipelineStateCreateInfo {
	return driver.TilePipelineStateCreateInfo{
		PipelineStateCreateInfo: ci.PipelineStateCreateInfo.marshal(arena),
		TilePipeline:            ci.TilePipeline.marshal(),
		TS:                      ci.TS.handle(),
	}
}

type RayTracingPipelineDesc struct {
	ShaderRecordSize  uint16
	MaxRecursionDepth uint8
}

type RayTracingGeneralShaderGroup struct {
	Name   string
	Shader *Shader
}

type RayTracingTriangleHitShaderGroup struct {
	Name             string
	ClosestHitShader *Shader
	AnyHitShader     *Shader
}

type RayTracingProceduralHitShaderGroup struct {
	Name               string
	IntersectionShader *Shader
	ClosestHitShader   *Shader
	AnyHitShader       *Shader
}

type RayTracingPipelineStateCreateInfo struct {
	PipelineStateCreateInfo
	RayTracingPipeline   RayTracingPipelineDesc
	GeneralShaders       []RayTracingGeneralShaderGroup
	TriangleHitShaders   []RayTracingTriangleHitShaderGroup
	ProceduralHitShaders []RayTracingProceduralHitShaderGroup
	// ShaderRecordName is the name of the shader record buffer in Direct3D12.
	ShaderRecordName string
	MaxAttributeSize uint32
	MaxPayloadSize   uint32
}

func NewRayTracingPipelineStateCreateInfo() RayTracingPipelineStateCreateInfo {
	return RayTracingPipelineStateCreateInfo{
		PipelineStateCreateInfo: PipelineStateCreateInfo{PSODesc: NewPipelineStateDesc(PipelineTypeRayTracing)},
	}
}

func (ci *RayTracingPipelineStateCreateInfo) marshal(arena *driver.Arena) driver.RayTracingPipelineStateCreateInfo {
	general, generalCount := driver.MarshalSlice(arena, ci.GeneralShaders, func(a *driver.Arena, g *RayTracingGeneralShaderGroup) driver.RayTracingGeneralShaderGroup {
		return driver.RayTracingGeneralShaderGroup{Name: a.CString(g.Name), Shader: g.Shader.handle()}
	})
	triangle, triangleCount := driver.MarshalSlice(arena, ci.TriangleHitShaders, func(a *driver.Arena, g *RayTracingTriangleHitShaderGroup) driver.RayTracingTriangleHitShaderGroup {
		return driver.RayTracingTriangleHitShaderGroup{
			Name:             a.CString(g.Name),
			ClosestHitShader: g.ClosestHitShader.handle(),
			AnyHitShader:     g.AnyHitShader.handle(),
		}
	})
	procedural, proceduralCount := driver.MarshalSlice(arena, ci.ProceduralHitShaders, func(a *driver.Arena, g *RayTracingProceduralHitShaderGroup) driver.RayTracingProceduralHitShaderGroup {
		return driver.RayTracingProceduralHitShaderGroup{
			Name:               a.CString(g.Name),
			IntersectionShader: g.IntersectionShader.handle(),
			ClosestHitShader:   g.ClosestHitShader.handle(),
			AnyHitShader:       g.AnyHitShader.handle(),
		}
	})

	return driver.RayTracingPipelineStateCreateInfo{
		PipelineStateCreateInfo: ci.PipelineStateCreateInfo.marshal(arena),
		RayTracingPipeline: driver.RayTracingPipelineDesc{
			ShaderRecordSize:  ci.RayTracingPipeline.ShaderRecordSize,
			MaxRecursionDepth: ci.RayTracingPipeline.MaxRecursionDepth,
		},
		GeneralShaders:           general,
		GeneralShaderCount:       generalCount,
		TriangleHitShaders:       triangle,
		TriangleHitShaderCount:   triangleCount,
		ProceduralHitShaders:     procedural,
		ProceduralHitShaderCount: proceduralCount,
		ShaderRecordName:         arena.CString(ci.ShaderRecordName),
		MaxAttributeSize:         ci.MaxAttributeSize,
		MaxPayloadSize:           ci.MaxPayloadSize,
	}
}

// PipelineResourceDesc declares one resource of a pipeline resource signature.
type PipelineResourceDesc struct {
	Name         string
	ShaderStages ShaderType
	ArraySize    uint32
	ResourceType ShaderResourceType
	VarType      ShaderResourceVariableType
	Flags        PipelineResourceFlags
}

func NewPipelineResourceDesc(stages ShaderType, name string, resourceType ShaderResourceType) PipelineResourceDesc {
	return PipelineResourceDesc{
		Name:         name,
		ShaderStages: stages,
		ArraySize:    1,
		ResourceType: resourceType,
		VarType:      ShaderResourceVariableTypeMutable,
	}
}

type PipelineResourceSignatureDesc struct {
	Name                       string
	Resources                  []PipelineResourceDesc
	ImmutableSamplers          []ImmutableSamplerDesc
	BindingIndex               uint8
	UseCombinedTextureSamplers bool
	CombinedSamplerSuffix      string
	SRBAllocationGranularity   uint32
}

func NewPipelineResourceSignatureDesc() PipelineResourceSignatureDesc {
	return PipelineResourceSignatureDesc{
		CombinedSamplerSuffix:    "_sampler",
		SRBAllocationGranularity: 1,
	}
}

func (d *PipelineResourceSignatureDesc) marshal(arena *driver.Arena) driver.PipelineResourceSignatureDesc {
	resources, resourceCount := driver.MarshalSlice(arena, d.Resources, func(a *driver.Arena, r *PipelineResourceDesc) driver.PipelineResourceDesc {
		return driver.PipelineResourceDesc{
			Name:         a.CString(r.Name),
			ShaderStages: r.ShaderStages.native(),
			ArraySize:    r.ArraySize,
			ResourceType: r.ResourceType.native(),
			VarType:      r.VarType.native(),
			Flags:        r.Flags.native(),
		}
	})
	samplers, samplerCount := marshalImmutableSamplers(arena, d.ImmutableSamplers)

	return driver.PipelineResourceSignatureDesc{
		DeviceObjectAttribs:        driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		Resources:                  resources,
		NumResources:               resourceCount,
		ImmutableSamplers:          samplers,
		NumImmutableSamplers:       samplerCount,
		BindingIndex:               d.BindingIndex,
		UseCombinedTextureSamplers: d.UseCombinedTextureSamplers,
		CombinedSamplerSuffix:      arena.CString(d.CombinedSamplerSuffix),
		SRBAllocationGranularity:   d.SRBAllocationGranularity,
	}
}

func pipelineResourceSignatureDescFromNative(n *driver.PipelineResourceSignatureDesc) PipelineResourceSignatureDesc {
	desc := PipelineResourceSignatureDesc{
		Name:                       driver.GoString(n.Name),
		ImmutableSamplers:          immutableSamplersFromNative(n.ImmutableSamplers, n.NumImmutableSamplers),
		BindingIndex:               n.BindingIndex,
		UseCombinedTextureSamplers: n.UseCombinedTextureSamplers,
		CombinedSamplerSuffix:      driver.GoString(n.CombinedSamplerSuffix),
		SRBAllocationGranularity:   n.SRBAllocationGranularity,
	}
	for _, r := range driver.GoSlice(n.Resources, n.NumResources) {
		desc.Resources = append(desc.Resources, PipelineResourceDesc{
			Name:         driver.GoString(r.Name),
			ShaderStages: ShaderType(r.ShaderStages),
			ArraySize:    r.ArraySize,
			ResourceType: shaderResourceTypeFromNative(r.ResourceType),
			VarType:      shaderResourceVariableTypeFromNative(r.VarType),
			Flags:        PipelineResourceFlags(r.Flags),
		})
	}
	return desc
}

type RenderPassAttachmentDesc struct {
	Format         TextureFormat
	SampleCount    uint8
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialState   ResourceState
	FinalState     ResourceState
}

func NewRenderPassAttachmentDesc(format TextureFormat) RenderPassAttachmentDesc {
	return RenderPassAttachmentDesc{
		Format:         format,
		SampleCount:    1,
		LoadOp:         AttachmentLoadOpLoad,
		StoreOp:        AttachmentStoreOpStore,
		StencilLoadOp:  AttachmentLoadOpLoad,
		StencilStoreOp: AttachmentStoreOpStore,
	}
}

type AttachmentReference struct {
	AttachmentIndex uint32
	State           ResourceState
}

func (r AttachmentReference) marshal() driver.AttachmentReference {
	return driver.AttachmentReference{AttachmentIndex: r.AttachmentIndex, State: r.State.native()}
}

func attachmentReferenceFromNative(n driver.AttachmentReference) AttachmentReference {
	return AttachmentReference{AttachmentIndex: n.AttachmentIndex, State: ResourceState(n.State)}
}

type ShadingRateAttachment struct {
	Attachment AttachmentReference
	TileSize   [2]uint32
}

// SubpassDesc describes one subpass. ResolveAttachments is either empty or the same
// length as RenderTargetAttachments.
type SubpassDesc struct {
	InputAttachments        []AttachmentReference
	RenderTargetAttachments []AttachmentReference
	ResolveAttachments      []AttachmentReference
	DepthStencilAttachment  *AttachmentReference
	PreserveAttachments     []uint32
	ShadingRateAttachment   *ShadingRateAttachment
}

func marshalAttachmentReferences(arena *driver.Arena, refs []AttachmentReference) (*driver.AttachmentReference, uint32) {
	return driver.MarshalSlice(arena, refs, func(_ *driver.Arena, r *AttachmentReference) driver.AttachmentReference {
		return r.marshal()
	})
}

func (d *SubpassDesc) marshal(arena *driver.Arena) driver.SubpassDesc {
	inputs, inputCount := marshalAttachmentReferences(arena, d.InputAttachments)
	targets, targetCount := marshalAttachmentReferences(arena, d.RenderTargetAttachments)
	resolves, _ := marshalAttachmentReferences(arena, d.ResolveAttachments)

	native := driver.SubpassDesc{
		InputAttachmentCount:        inputCount,
		InputAttachments:            inputs,
		RenderTargetAttachmentCount: targetCount,
		RenderTargetAttachments:     targets,
		ResolveAttachments:          resolves,
		PreserveAttachmentCount:     uint32(len(d.PreserveAttachments)),
		PreserveAttachments:         driver.PinSlice(arena, d.PreserveAttachments),
	}
	if d.DepthStencilAttachment != nil {
		native.DepthStencilAttachment = driver.New(arena, d.DepthStencilAttachment.marshal())
	}
	if d.ShadingRateAttachment != nil {
		native.ShadingRateAttachment = driver.New(arena, driver.ShadingRateAttachment{
			Attachment: d.ShadingRateAttachment.Attachment.marshal(),
			TileSize:   d.ShadingRateAttachment.TileSize,
		})
	}
	return native
}

type SubpassDependencyDesc struct {
	SrcSubpass    uint32
	DstSubpass    uint32
	SrcStageMask  PipelineStageFlags
	DstStageMask  PipelineStageFlags
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

// SubpassExternal refers to commands outside of the render pass in a SubpassDependencyDesc.
const SubpassExternal uint32 = 0xFFFFFFFF

type RenderPassDesc struct {
	Name         string
	Attachments  []RenderPassAttachmentDesc
	Subpasses    []SubpassDesc
	Dependencies []SubpassDependencyDesc
}

func (d *RenderPassDesc) marshal(arena *driver.Arena) driver.RenderPassDesc {
	attachments, attachmentCount := driver.MarshalSlice(arena, d.Attachments, func(_ *driver.Arena, a *RenderPassAttachmentDesc) driver.RenderPassAttachmentDesc {
		return driver.RenderPassAttachmentDesc{
			Format:         a.Format.native(),
			SampleCount:    a.SampleCount,
			LoadOp:         a.LoadOp.native(),
			StoreOp:        a.StoreOp.native(),
			StencilLoadOp:  a.StencilLoadOp.native(),
			StencilStoreOp: a.StencilStoreOp.native(),
			InitialState:   a.InitialState.native(),
			FinalState:     a.FinalState.native(),
		}
	})
	subpasses, subpassCount := driver.MarshalSlice(arena, d.Subpasses, func(a *driver.Arena, s *SubpassDesc) driver.SubpassDesc {
		return s.marshal(a)
	})
	dependencies, dependencyCount := driver.MarshalSlice(arena, d.Dependencies, func(_ *driver.Arena, dep *SubpassDependencyDesc) driver.SubpassDependencyDesc {
		return driver.SubpassDependencyDesc{
			SrcSubpass:    dep.SrcSubpass,
			DstSubpass:    dep.DstSubpass,
			SrcStageMask:  dep.SrcStageMask.native(),
			DstStageMask:  dep.DstStageMask.native(),
			SrcAccessMask: dep.SrcAccessMask.native(),
			DstAccessMask: dep.DstAccessMask.native(),
		}
	})

	return driver.RenderPassDesc{
		DeviceObjectAttribs: driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		AttachmentCount:     attachmentCount,
		Attachments:         attachments,
		SubpassCount:        subpassCount,
		Subpasses:           subpasses,
		DependencyCount:     dependencyCount,
		Dependencies:        dependencies,
	}
}

func renderPassDescFromNative(n *driver.RenderPassDesc) RenderPassDesc {
	desc := RenderPassDesc{Name: driver.GoString(n.Name)}
	for _, a := range driver.GoSlice(n.Attachments, n.AttachmentCount) {
		desc.Attachments = append(desc.Attachments, RenderPassAttachmentDesc{
			Format:         textureFormatFromNative(a.Format),
			SampleCount:    a.SampleCount,
			LoadOp:         attachmentLoadOpFromNative(a.LoadOp),
			StoreOp:        attachmentStoreOpFromNative(a.StoreOp),
			StencilLoadOp:  attachmentLoadOpFromNative(a.StencilLoadOp),
			StencilStoreOp: attachmentStoreOpFromNative(a.StencilStoreOp),
			InitialState:   ResourceState(a.InitialState),
			FinalState:     ResourceState(a.FinalState),
		})
	}
	for _, s := range driver.GoSlice(n.Subpasses, n.SubpassCount) {
		subpass := SubpassDesc{PreserveAttachments: append([]uint32(nil), driver.GoSlice(s.PreserveAttachments, s.PreserveAttachmentCount)...)}
		for _, r := range driver.GoSlice(s.InputAttachments, s.InputAttachmentCount) {
			subpass.InputAttachments = append(subpass.InputAttachments, attachmentReferenceFromNative(r))
		}
		for _, r := range driver.GoSlice(s.RenderTargetAttachments, s.RenderTargetAttachmentCount) {
			subpass.RenderTargetAttachments = append(subpass.RenderTargetAttachments, attachmentReferenceFromNative(r))
		}
		for _, r := range driver.GoSlice(s.ResolveAttachments, s.RenderTargetAttachmentCount) {
			subpass.ResolveAttachments = append(subpass.ResolveAttachments, attachmentReferenceFromNative(r))
		}
		if s.DepthStencilAttachment != nil {
			ref := attachmentReferenceFromNative(*s.DepthStencilAttachment)
			subpass.DepthStencilAttachment = &ref
		}
		if s.ShadingRateAttachment != nil {
			subpass.ShadingRateAttachment = &ShadingRateAttachment{
				Attachment: attachmentReferenceFromNative(s.ShadingRateAttachment.Attachment),
				TileSize:   s.ShadingRateAttachment.TileSize,
			}
		}
		desc.Subpasses = append(desc.Subpasses, subpass)
	}
	for _, dep := range driver.GoSlice(n.Dependencies, n.DependencyCount) {
		desc.Dependencies = append(desc.Dependencies, SubpassDependencyDesc{
			SrcSubpass:    dep.SrcSubpass,
			DstSubpass:    dep.DstSubpass,
			SrcStageMask:  PipelineStageFlags(dep.SrcStageMask),
			DstStageMask:  PipelineStageFlags(dep.DstStageMask),
			SrcAccessMask: AccessFlags(dep.SrcAccessMask),
			DstAccessMask: AccessFlags(dep.DstAccessMask),
		})
	}
	return desc
}

// FramebufferDesc binds texture views to the attachments of RenderPass. Zero sizes
// are derived from the first attachment.
type FramebufferDesc struct {
	Name           string
	RenderPass     *RenderPass
	Attachments    []*TextureView
	Width          uint32
	Height         uint32
	NumArraySlices uint32
}

func (d *FramebufferDesc) marshal(arena *driver.Arena) driver.FramebufferDesc {
	return driver.FramebufferDesc{
		DeviceObjectAttribs: driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		RenderPass:          d.RenderPass.handle(),
		AttachmentCount:     uint32(len(d.Attachments)),
		Attachments:         handles(arena, d.Attachments),
		Width:               d.Width,
		Height:              d.Height,
		NumArraySlices:      d.NumArraySlices,
	}
}
