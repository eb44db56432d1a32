package driver

import "unsafe"

type DrawAttribs struct {
	NumVertices           uint32
	Flags                 DrawFlags
	NumInstances          uint32
	StartVertexLocation   uint32
	FirstInstanceLocation uint32
}

type DrawIndexedAttribs struct {
	NumIndices            uint32
	IndexType             ValueType
	Flags                 DrawFlags
	NumInstances          uint32
	FirstIndexLocation    uint32
	BaseVertex            uint32
	FirstInstanceLocation uint32
}

type DrawIndirectAttribs struct {
	AttribsBuffer                    Handle
	DrawArgsOffset                   uint64
	Flags                            DrawFlags
	DrawCount                        uint32
	DrawArgsStride                   uint32
	AttribsBufferStateTransitionMode ResourceStateTransitionMode
	CounterBuffer                    Handle
	CounterOffset                    uint64
	CounterBufferStateTransitionMode ResourceStateTransitionMode
}

type DrawIndexedIndirectAttribs struct {
	IndexType                        ValueType
	AttribsBuffer                    Handle
	DrawArgsOffset                   uint64
	Flags                            DrawFlags
	DrawCount                        uint32
	DrawArgsStride                   uint32
	AttribsBufferStateTransitionMode ResourceStateTransitionMode
	CounterBuffer                    Handle
	CounterOffset                    uint64
	CounterBufferStateTransitionMode ResourceStateTransitionMode
}

type DrawMeshAttribs struct {
	ThreadGroupCountX uint32
	ThreadGroupCountY uint32
	ThreadGroupCountZ uint32
	Flags             DrawFlags
}

type DrawMeshIndirectAttribs struct {
	AttribsBuffer                    Handle
	DrawArgsOffset                   uint64
	Flags                            DrawFlags
	CommandCount                     uint32
	AttribsBufferStateTransitionMode ResourceStateTransitionMode
	CounterBuffer                    Handle
	CounterOffset                    uint64
	CounterBufferStateTransitionMode ResourceStateTransitionMode
}

type MultiDrawItem struct {
	NumVertices         uint32
	StartVertexLocation uint32
}

type MultiDrawAttribs struct {
	DrawCount             uint32
	DrawItems             *MultiDrawItem
	Flags                 DrawFlags
	NumInstances          uint32
	FirstInstanceLocation uint32
}

type MultiDrawIndexedItem struct {
	NumIndices         uint32
	FirstIndexLocation uint32
	BaseVertex         uint32
}

type MultiDrawIndexedAttribs struct {
	DrawCount             uint32
	DrawItems             *MultiDrawIndexedItem
	IndexType             ValueType
	Flags                 DrawFlags
	NumInstances          uint32
	FirstInstanceLocation uint32
}

type DispatchComputeAttribs struct {
	ThreadGroupCountX   uint32
	ThreadGroupCountY   uint32
	ThreadGroupCountZ   uint32
	MtlThreadGroupSizeX uint32
	MtlThreadGroupSizeY uint32
	MtlThreadGroupSizeZ uint32
}

type DispatchComputeIndirectAttribs struct {
	AttribsBuffer                    Handle
	AttribsBufferStateTransitionMode ResourceStateTransitionMode
	DispatchArgsByteOffset           uint64
	MtlThreadGroupSizeX              uint32
	MtlThreadGroupSizeY              uint32
	MtlThreadGroupSizeZ              uint32
}

type DispatchTileAttribs struct {
	ThreadsPerTileX uint32
	ThreadsPerTileY uint32
	Flags           DrawFlags
}

type Viewport struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type Box struct {
	MinX uint32
	MaxX uint32
	MinY uint32
	MaxY uint32
	MinZ uint32
	MaxZ uint32
}

type SetRenderTargetsAttribs struct {
	NumRenderTargets    uint32
	RenderTargets       *Handle
	DepthStencil        Handle
	ShadingRateMap      Handle
	StateTransitionMode ResourceStateTransitionMode
}

type BeginRenderPassAttribs struct {
	RenderPass          Handle
	Framebuffer         Handle
	ClearValueCount     uint32
	ClearValues         *OptimizedClearValue
	StateTransitionMode ResourceStateTransitionMode
}

type CopyTextureAttribs struct {
	SrcTexture               Handle
	SrcMipLevel              uint32
	SrcSlice                 uint32
	SrcBox                   *Box
	SrcTextureTransitionMode ResourceStateTransitionMode
	DstTexture               Handle
	DstMipLevel              uint32
	DstSlice                 uint32
	DstX                     uint32
	DstY                     uint32
	DstZ                     uint32
	DstTextureTransitionMode ResourceStateTransitionMode
}

type MappedTextureSubresource struct {
	Data        unsafe.Pointer
	Stride      uint64
	DepthStride uint64
}

type StateTransitionDesc struct {
	PrevResource    Handle
	Resource        Handle
	FirstMipLevel   uint32
	MipLevelsCount  uint32
	FirstArraySlice uint32
	ArraySliceCount uint32
	OldState        ResourceState
	NewState        ResourceState
	TransitionType  StateTransitionType
	Flags           StateTransitionFlags
}

type ResolveTextureSubresourceAttribs struct {
	SrcMipLevel              uint32
	SrcSlice                 uint32
	SrcTextureTransitionMode ResourceStateTransitionMode
	DstMipLevel              uint32
	DstSlice                 uint32
	DstTextureTransitionMode ResourceStateTransitionMode
	Format                   TextureFormat
}

type DeviceContextDesc struct {
	Name                   *byte
	QueueType              CommandQueueType
	IsDeferred             bool
	ContextID              uint8
	QueueID                uint8
	TextureCopyGranularity [3]uint32
}

// DeviceContextCommandCounters counts the commands recorded since the last ClearStats.
type DeviceContextCommandCounters struct {
	SetPipelineState          uint32
	CommitShaderResources     uint32
	SetVertexBuffers          uint32
	SetIndexBuffer            uint32
	SetRenderTargets          uint32
	SetBlendFactors           uint32
	SetStencilRef             uint32
	SetViewports              uint32
	SetScissorRects           uint32
	ClearRenderTarget         uint32
	ClearDepthStencil         uint32
	Draw                      uint32
	DrawIndexed               uint32
	DrawIndirect              uint32
	DrawIndexedIndirect       uint32
	MultiDraw                 uint32
	MultiDrawIndexed          uint32
	DispatchCompute           uint32
	DispatchComputeIndirect   uint32
	DispatchTile              uint32
	DrawMesh                  uint32
	DrawMeshIndirect          uint32
	BuildBLAS                 uint32
	BuildTLAS                 uint32
	CopyBLAS                  uint32
	CopyTLAS                  uint32
	WriteBLASCompactedSize    uint32
	WriteTLASCompactedSize    uint32
	TraceRays                 uint32
	TraceRaysIndirect         uint32
	UpdateSBT                 uint32
	UpdateBuffer              uint32
	CopyBuffer                uint32
	MapBuffer                 uint32
	UpdateTexture             uint32
	CopyTexture               uint32
	MapTextureSubresource     uint32
	BeginQuery                uint32
	EndQuery                  uint32
	GenerateMips              uint32
	TransitionShaderResources uint32
	ResolveTextureSubresource uint32
	BindSparseResourceMemory  uint32
}

type DeviceContextStats struct {
	PrimitiveCounts [PrimitiveTopologyCount]uint32
	CommandCounters DeviceContextCommandCounters
}
