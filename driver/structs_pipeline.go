package driver

import "unsafe"

const (
	MaxRenderTargets   = 8
	MaxShadingRates    = 9
	MaxCommandQueues   = 16
	MaxAdapterDescSize = 128
)

type ShaderResourceVariableDesc struct {
	ShaderStages ShaderType
	Name         *byte
	Type         ShaderResourceVariableType
	Flags        ShaderVariableFlags
}

type ImmutableSamplerDesc struct {
	ShaderStages         ShaderType
	SamplerOrTextureName *byte
	Desc                 SamplerDesc
}

type PipelineResourceLayoutDesc struct {
	DefaultVariableType        ShaderResourceVariableType
	DefaultVariableMergeStages ShaderType
	NumVariables               uint32
	Variables                  *ShaderResourceVariableDesc
	NumImmutableSamplers       uint32
	ImmutableSamplers          *ImmutableSamplerDesc
}

type PipelineStateDesc struct {
	DeviceObjectAttribs
	PipelineType             PipelineType
	SRBAllocationGranularity uint32
	ImmediateContextMask     uint64
	ResourceLayout           PipelineResourceLayoutDesc
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

type BlendStateDesc struct {
	AlphaToCoverageEnable  bool
	IndependentBlendEnable bool
	RenderTargets          [MaxRenderTargets]RenderTargetBlendDesc
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

type StencilOpDesc struct {
	StencilFailOp      StencilOp
	StencilDepthFailOp StencilOp
	StencilPassOp      StencilOp
	StencilFunc        ComparisonFunction
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

type LayoutElement struct {
	HLSLSemantic         *byte
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

type InputLayoutDesc struct {
	LayoutElements *LayoutElement
	NumElements    uint32
}

type SampleDesc struct {
	Count   uint8
	Quality uint8
}

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
	RenderPass        Handle
	NodeMask          uint32
}

type PipelineStateCreateInfo struct {
	PSODesc                 PipelineStateDesc
	Flags                   PSOCreateFlags
	ResourceSignaturesCount uint32
	ResourceSignatures      *Handle
	PSOCache                Handle
	InternalData            unsafe.Pointer
}

type GraphicsPipelineStateCreateInfo struct {
	PipelineStateCreateInfo
	GraphicsPipeline GraphicsPipelineDesc
	VS               Handle
	PS               Handle
	DS               Handle
	HS               Handle
	GS               Handle
	AS               Handle
	MS               Handle
}

type ComputePipelineStateCreateInfo struct {
	PipelineStateCreateInfo
	CS Handle
}

type TilePipelineDesc struct {
	NumRenderTargets uint8
	SampleCount      uint8
	RTVFormats       [MaxRenderTargets]TextureFormat
}

type TilePipelineStateCreateInfo struct {
	PipelineStateCreateInfo
	TilePipeline TilePipelineDesc
	TS           Handle
}

type RayTracingPipelineDesc struct {
	ShaderRecordSize  uint16
	MaxRecursionDepth uint8
}

type RayTracingGeneralShaderGroup struct {
	Name   *byte
	Shader Handle
}

type RayTracingTriangleHitShaderGroup struct {
	Name             *byte
	ClosestHitShader Handle
	AnyHitShader     Handle
}

type RayTracingProceduralHitShaderGroup struct {
	Name               *byte
	IntersectionShader Handle
	ClosestHitShader   Handle
	AnyHitShader       Handle
}

type RayTracingPipelineStateCreateInfo struct {
	PipelineStateCreateInfo
	RayTracingPipeline       RayTracingPipelineDesc
	GeneralShaders           *RayTracingGeneralShaderGroup
	GeneralShaderCount       uint32
	TriangleHitShaders       *RayTracingTriangleHitShaderGroup
	TriangleHitShaderCount   uint32
	ProceduralHitShaders     *RayTracingProceduralHitShaderGroup
	ProceduralHitShaderCount uint32
	ShaderRecordName         *byte
	MaxAttributeSize         uint32
	MaxPayloadSize           uint32
}

type PipelineResourceDesc struct {
	Name         *byte
	ShaderStages ShaderType
	ArraySize    uint32
	ResourceType ShaderResourceType
	VarType      ShaderResourceVariableType
	Flags        PipelineResourceFlags
}

type PipelineResourceSignatureDesc struct {
	DeviceObjectAttribs
	Resources                  *PipelineResourceDesc
	NumResources               uint32
	ImmutableSamplers          *ImmutableSamplerDesc
	NumImmutableSamplers       uint32
	BindingIndex               uint8
	UseCombinedTextureSamplers bool
	CombinedSamplerSuffix      *byte
	SRBAllocationGranularity   uint32
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

type AttachmentReference struct {
	AttachmentIndex uint32
	State           ResourceState
}

type ShadingRateAttachment struct {
	Attachment AttachmentReference
	TileSize   [2]uint32
}

type SubpassDesc struct {
	InputAttachmentCount        uint32
	InputAttachments            *AttachmentReference
	RenderTargetAttachmentCount uint32
	RenderTargetAttachments     *AttachmentReference
	ResolveAttachments          *AttachmentReference
	DepthStencilAttachment      *AttachmentReference
	PreserveAttachmentCount     uint32
	PreserveAttachments         *uint32
	ShadingRateAttachment       *ShadingRateAttachment
}

type SubpassDependencyDesc struct {
	SrcSubpass    uint32
	DstSubpass    uint32
	SrcStageMask  PipelineStageFlags
	DstStageMask  PipelineStageFlags
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

type RenderPassDesc struct {
	DeviceObjectAttribs
	AttachmentCount uint32
	Attachments     *RenderPassAttachmentDesc
	SubpassCount    uint32
	Subpasses       *SubpassDesc
	DependencyCount uint32
	Dependencies    *SubpassDependencyDesc
}

type FramebufferDesc struct {
	DeviceObjectAttribs
	RenderPass      Handle
	AttachmentCount uint32
	Attachments     *Handle
	Width           uint32
	Height          uint32
	NumArraySlices  uint32
}
