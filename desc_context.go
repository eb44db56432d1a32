package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
)

const (
	// RemainingMipLevels and RemainingArraySlices extend a StateTransitionDesc to the
	// end of the resource.
	RemainingMipLevels   uint32 = 0xFFFFFFFF
	RemainingArraySlices uint32 = 0xFFFFFFFF
)

type DrawAttribs struct {
	NumVertices           uint32
	Flags                 DrawFlags
	NumInstances          uint32
	StartVertexLocation   uint32
	FirstInstanceLocation uint32
}

func NewDrawAttribs(numVertices uint32, flags DrawFlags) DrawAttribs {
	return DrawAttribs{NumVertices: numVertices, Flags: flags, NumInstances: 1}
}

func (a *DrawAttribs) marshal(arena *driver.Arena) *driver.DrawAttribs {
	return driver.New(arena, driver.DrawAttribs{
		NumVertices:           a.NumVertices,
		Flags:                 a.Flags.native(),
		NumInstances:          a.NumInstances,
		StartVertexLocation:   a.StartVertexLocation,
		FirstInstanceLocation: a.FirstInstanceLocation,
	})
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

func NewDrawIndexedAttribs(numIndices uint32, indexType ValueType, flags DrawFlags) DrawIndexedAttribs {
	return DrawIndexedAttribs{NumIndices: numIndices, IndexType: indexType, Flags: flags, NumInstances: 1}
}

func (a *DrawIndexedAttribs) marshal(arena *driver.Arena) *driver.DrawIndexedAttribs {
	return driver.New(arena, driver.DrawIndexedAttribs{
		NumIndices:            a.NumIndices,
		IndexType:             a.IndexType.native(),
		Flags:                 a.Flags.native(),
		NumInstances:          a.NumInstances,
		FirstIndexLocation:    a.FirstIndexLocation,
		BaseVertex:            a.BaseVertex,
		FirstInstanceLocation: a.FirstInstanceLocation,
	})
}

type DrawIndirectAttribs struct {
	AttribsBuffer                    *Buffer
	DrawArgsOffset                   uint64
	Flags                            DrawFlags
	DrawCount                        uint32
	DrawArgsStride                   uint32
	AttribsBufferStateTransitionMode ResourceStateTransitionMode
	CounterBuffer                    *Buffer
	CounterOffset                    uint64
	CounterBufferStateTransitionMode ResourceStateTransitionMode
}

func NewDrawIndirectAttribs(attribsBuffer *Buffer) DrawIndirectAttribs {
	return DrawIndirectAttribs{AttribsBuffer: attribsBuffer, DrawCount: 1, DrawArgsStride: 16}
}

func (a *DrawIndirectAttribs) marshal(arena *driver.Arena) *driver.DrawIndirectAttribs {
	return driver.New(arena, driver.DrawIndirectAttribs{
		AttribsBuffer:                    a.AttribsBuffer.handle(),
		DrawArgsOffset:                   a.DrawArgsOffset,
		Flags:                            a.Flags.native(),
		DrawCount:                        a.DrawCount,
		DrawArgsStride:                   a.DrawArgsStride,
		AttribsBufferStateTransitionMode: a.AttribsBufferStateTransitionMode.native(),
		CounterBuffer:                    a.CounterBuffer.handle(),
		CounterOffset:                    a.CounterOffset,
		CounterBufferStateTransitionMode: a.CounterBufferStateTransitionMode.native(),
	})
}

type DrawIndexedIndirectAttribs struct {
	IndexType                        ValueType
	AttribsBuffer                    *Buffer
	DrawArgsOffset                   uint64
	Flags                            DrawFlags
	DrawCount                        uint32
	DrawArgsStride                   uint32
	AttribsBufferStateTransitionMode ResourceStateTransitionMode
	CounterBuffer                    *Buffer
	CounterOffset                    uint64
	CounterBufferStateTransitionMode ResourceStateTransitionMode
}

func NewDrawIndexedIndirectAttribs(indexType ValueType, attribsBuffer *Buffer) DrawIndexedIndirectAttribs {
	return DrawIndexedIndirectAttribs{IndexType: indexType, AttribsBuffer: attribsBuffer, DrawCount: 1, DrawArgsStride: 20}
}

func (a *DrawIndexedIndirectAttribs) marshal(arena *driver.Arena) *driver.DrawIndexedIndirectAttribs {
	return driver.New(arena, driver.DrawIndexedIndirectAttribs{
		IndexType:                        a.IndexType.native(),
		AttribsBuffer:                    a.AttribsBuffer.handle(),
		DrawArgsOffset:                   a.DrawArgsOffset,
		Flags:                            a.Flags.native(),
		DrawCount:                        a.DrawCount,
		DrawArgsStride:                   a.DrawArgsStride,
		AttribsBufferStateTransitionMode: a.AttribsBufferStateTransitionMode.native(),
		CounterBuffer:                    a.CounterBuffer.handle(),
		CounterOffset:                    a.CounterOffset,
		CounterBufferStateTransitionMode: a.CounterBufferStateTransitionMode.native(),
	})
}

type DrawMeshAttribs struct {
	ThreadGroupCountX uint32
	ThreadGroupCountY uint32
	ThreadGroupCountZ uint32
	Flags             DrawFlags
}

func (a *DrawMeshAttribs) marshal(arena *driver.Arena) *driver.DrawMeshAttribs {
	return driver.New(arena, driver.DrawMeshAttribs{
		ThreadGroupCountX: a.ThreadGroupCountX,
		ThreadGroupCountY: a.ThreadGroupCountY,
		ThreadGroupCountZ: a.ThreadGroupCountZ,
		Flags:             a.Flags.native(),
	})
}

type DrawMeshIndirectAttribs struct {
	AttribsBuffer                    *Buffer
	DrawArgsOffset                   uint64
	Flags                            DrawFlags
	CommandCount                     uint32
	AttribsBufferStateTransitionMode ResourceStateTransitionMode
	CounterBuffer                    *Buffer
	CounterOffset                    uint64
	CounterBufferStateTransitionMode ResourceStateTransitionMode
}

func (a *DrawMeshIndirectAttribs) marshal(arena *driver.Arena) *driver.DrawMeshIndirectAttribs {
	return driver.New(arena, driver.DrawMeshIndirectAttribs{
		AttribsBuffer:                    a.AttribsBuffer.handle(),
		DrawArgsOffset:                   a.DrawArgsOffset,
		Flags:                            a.Flags.native(),
		CommandCount:                     a.CommandCount,
		AttribsBufferStateTransitionMode: a.AttribsBufferStateTransitionMode.native(),
		CounterBuffer:                    a.CounterBuffer.handle(),
		CounterOffset:                    a.CounterOffset,
		CounterBufferStateTransitionMode: a.CounterBufferStateTransitionMode.native(),
	})
}

type MultiDrawItem struct {
	NumVertices         uint32
	StartVertexLocation uint32
}

type MultiDrawAttribs struct {
	DrawItems             []MultiDrawItem
	Flags                 DrawFlags
	NumInstances          uint32
	FirstInstanceLocation uint32
}

func (a *MultiDrawAttribs) marshal(arena *driver.Arena) *driver.MultiDrawAttribs {
	items, count := driver.MarshalSlice(arena, a.DrawItems, func(_ *driver.Arena, i *MultiDrawItem) driver.MultiDrawItem {
		return driver.MultiDrawItem{NumVertices: i.NumVertices, StartVertexLocation: i.StartVertexLocation}
	})
	return driver.New(arena, driver.MultiDrawAttribs{
		DrawCount:             count,
		DrawItems:             items,
		Flags:                 a.Flags.native(),
		NumInstances:          a.NumInstances,
		FirstInstanceLocation: a.FirstInstanceLocation,
	})
}

type MultiDrawIndexedItem struct {
	NumIndices         uint32
	FirstIndexLocation uint32
	BaseVertex         uint32
}

type MultiDrawIndexedAttribs struct {
	DrawItems             []MultiDrawIndexedItem
	IndexType             ValueType
	Flags                 DrawFlags
	NumInstances          uint32
	FirstInstanceLocation uint32
}

func (a *MultiDrawIndexedAttribs) marshal(arena *driver.Arena) *driver.MultiDrawIndexedAttribs {
	items, count := driver.MarshalSlice(arena, a.DrawItems, func(_ *driver.Arena, i *MultiDrawIndexedItem) driver.MultiDrawIndexedItem {
		return driver.MultiDrawIndexedItem{
			NumIndices:         i.NumIndices,
			FirstIndexLocation: i.FirstIndexLocation,
			BaseVertex:         i.BaseVertex,
		}
	})
	return driver.New(arena, driver.MultiDrawIndexedAttribs{
		DrawCount:             count,
		DrawItems:             items,
		IndexType:             a.IndexType.native(),
		Flags:                 a.Flags.native(),
		NumInstances:          a.NumInstances,
		FirstInstanceLocation: a.FirstInstanceLocation,
	})
}

// DispatchComputeAttribs sets the thread group counts of a dispatch. The Mtl* sizes
// are only read by the Metal backend.
type DispatchComputeAttribs struct {
	ThreadGroupCountX   uint32
	ThreadGroupCountY   uint32
	ThreadGroupCountZ   uint32
	MtlThreadGroupSizeX uint32
	MtlThreadGroupSizeY uint32
	MtlThreadGroupSizeZ uint32
}

func NewDispatchComputeAttribs(x, y, z uint32) DispatchComputeAttribs {
	return DispatchComputeAttribs{ThreadGroupCountX: x, ThreadGroupCountY: y, ThreadGroupCountZ: z}
}

func (a *DispatchComputeAttribs) marshal(arena *driver.Arena) *driver.DispatchComputeAttribs {
	return driver.New(arena, driver.DispatchComputeAttribs(*a))
}

type DispatchComputeIndirectAttribs struct {
	AttribsBuffer                    *Buffer
	AttribsBufferStateTransitionMode ResourceStateTransitionMode
	DispatchArgsByteOffset           uint64
	MtlThreadGroupSizeX              uint32
	MtlThreadGroupSizeY              uint32
	MtlThreadGroupSizeZ              uint32
}

func (a *DispatchComputeIndirectAttribs) marshal(arena *driver.Arena) *driver.DispatchComputeIndirectAttribs {
	return driver.New(arena, driver.DispatchComputeIndirectAttribs{
		AttribsBuffer:                    a.AttribsBuffer.handle(),
		AttribsBufferStateTransitionMode: a.AttribsBufferStateTransitionMode.native(),
		DispatchArgsByteOffset:           a.DispatchArgsByteOffset,
		MtlThreadGroupSizeX:              a.MtlThreadGroupSizeX,
		MtlThreadGroupSizeY:              a.MtlThreadGroupSizeY,
		MtlThreadGroupSizeZ:              a.MtlThreadGroupSizeZ,
	})
}

type DispatchTileAttribs struct {
	ThreadsPerTileX uint32
	ThreadsPerTileY uint32
	Flags           DrawFlags
}

func (a *DispatchTileAttribs) marshal(arena *driver.Arena) *driver.DispatchTileAttribs {
	return driver.New(arena, driver.DispatchTileAttribs{
		ThreadsPerTileX: a.ThreadsPerTileX,
		ThreadsPerTileY: a.ThreadsPerTileY,
		Flags:           a.Flags.native(),
	})
}

type Viewport struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

// NewViewport covers a whole width x height render target with the full depth range.
func NewViewport(width, height float32) Viewport {
	return Viewport{Width: width, Height: height, MaxDepth: 1}
}

type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// IsValid reports whether the rectangle has a non-negative area.
func (r Rect) IsValid() bool {
	return r.Right >= r.Left && r.Bottom >= r.Top
}

// Box is a texel region. Max coordinates are exclusive.
type Box struct {
	MinX uint32
	MaxX uint32
	MinY uint32
	MaxY uint32
	MinZ uint32
	MaxZ uint32
}

func (b Box) Width() uint32  { return b.MaxX - b.MinX }
func (b Box) Height() uint32 { return b.MaxY - b.MinY }

// Depth treats a zero-depth box as a single slice.
func (b Box) Depth() uint32 {
	if b.MaxZ <= b.MinZ {
		return 1
	}
	return b.MaxZ - b.MinZ
}

func (b *Box) marshal(arena *driver.Arena) *driver.Box {
	if b == nil {
		return nil
	}
	return driver.New(arena, driver.Box(*b))
}

type SetRenderTargetsAttribs struct {
	RenderTargets       []*TextureView
	DepthStencil        *TextureView
	ShadingRateMap      *TextureView
	StateTransitionMode ResourceStateTransitionMode
}

func (a *SetRenderTargetsAttribs) marshal(arena *driver.Arena) *driver.SetRenderTargetsAttribs {
	return driver.New(arena, driver.SetRenderTargetsAttribs{
		NumRenderTargets:    uint32(len(a.RenderTargets)),
		RenderTargets:       handles(arena, a.RenderTargets),
		DepthStencil:        a.DepthStencil.handle(),
		ShadingRateMap:      a.ShadingRateMap.handle(),
		StateTransitionMode: a.StateTransitionMode.native(),
	})
}

type BeginRenderPassAttribs struct {
	RenderPass  *RenderPass
	Framebuffer *Framebuffer
	// ClearValues is indexed by attachment. Entries for attachments that are not
	// cleared are ignored.
	ClearValues         []OptimizedClearValue
	StateTransitionMode ResourceStateTransitionMode
}

func (a *BeginRenderPassAttribs) marshal(arena *driver.Arena) *driver.BeginRenderPassAttribs {
	values, count := driver.MarshalSlice(arena, a.ClearValues, func(_ *driver.Arena, v *OptimizedClearValue) driver.OptimizedClearValue {
		return v.marshal()
	})
	return driver.New(arena, driver.BeginRenderPassAttribs{
		RenderPass:          a.RenderPass.handle(),
		Framebuffer:         a.Framebuffer.handle(),
		ClearValueCount:     count,
		ClearValues:         values,
		StateTransitionMode: a.StateTransitionMode.native(),
	})
}

type CopyTextureAttribs struct {
	SrcTexture *Texture
	SrcMipLevel uint32
	SrcSlice    uint32
	// SrcBox is the whole subresource when nil.
	SrcBox                   *Box
	SrcTextureTransitionMode ResourceStateTransitionMode
	DstTexture               *Texture
	DstMipLevel              uint32
	DstSlice                 uint32
	DstX                     uint32
	DstY                     uint32
	DstZ                     uint32
	DstTextureTransitionMode ResourceStateTransitionMode
}

func (a *CopyTextureAttribs) marshal(arena *driver.Arena) *driver.CopyTextureAttribs {
	return driver.New(arena, driver.CopyTextureAttribs{
		SrcTexture:               a.SrcTexture.handle(),
		SrcMipLevel:              a.SrcMipLevel,
		SrcSlice:                 a.SrcSlice,
		SrcBox:                   a.SrcBox.marshal(arena),
		SrcTextureTransitionMode: a.SrcTextureTransitionMode.native(),
		DstTexture:               a.DstTexture.handle(),
		DstMipLevel:              a.DstMipLevel,
		DstSlice:                 a.DstSlice,
		DstX:                     a.DstX,
		DstY:                     a.DstY,
		DstZ:                     a.DstZ,
		DstTextureTransitionMode: a.DstTextureTransitionMode.native(),
	})
}

// StateTransitionDesc describes one resource barrier. Resource is a *Buffer, *Texture,
// *BottomLevelAS or *TopLevelAS.
type StateTransitionDesc struct {
	// PrevResource is only used with aliased memory.
	PrevResource    DeviceObject
	Resource        DeviceObject
	FirstMipLevel   uint32
	MipLevelsCount  uint32
	FirstArraySlice uint32
	ArraySliceCount uint32
	// OldState is taken from the engine's tracked state when ResourceStateUnknown.
	OldState       ResourceState
	NewState       ResourceState
	TransitionType StateTransitionType
	Flags          StateTransitionFlags
}

func NewStateTransitionDesc(resource DeviceObject, oldState, newState ResourceState, flags StateTransitionFlags) StateTransitionDesc {
	return StateTransitionDesc{
		Resource:        resource,
		MipLevelsCount:  RemainingMipLevels,
		ArraySliceCount: RemainingArraySlices,
		OldState:        oldState,
		NewState:        newState,
		TransitionType:  StateTransitionTypeImmediate,
		Flags:           flags,
	}
}

func (d *StateTransitionDesc) marshal() driver.StateTransitionDesc {
	return driver.StateTransitionDesc{
		PrevResource:    handleOf(d.PrevResource),
		Resource:        handleOf(d.Resource),
		FirstMipLevel:   d.FirstMipLevel,
		MipLevelsCount:  d.MipLevelsCount,
		FirstArraySlice: d.FirstArraySlice,
		ArraySliceCount: d.ArraySliceCount,
		OldState:        d.OldState.native(),
		NewState:        d.NewState.native(),
		TransitionType:  d.TransitionType.native(),
		Flags:           d.Flags.native(),
	}
}

type ResolveTextureSubresourceAttribs struct {
	SrcMipLevel              uint32
	SrcSlice                 uint32
	SrcTextureTransitionMode ResourceStateTransitionMode
	DstMipLevel              uint32
	DstSlice                 uint32
	DstTextureTransitionMode ResourceStateTransitionMode
	// Format must be set when resolving between typeless textures.
	Format TextureFormat
}

func (a *ResolveTextureSubresourceAttribs) marshal(arena *driver.Arena) *driver.ResolveTextureSubresourceAttribs {
	return driver.New(arena, driver.ResolveTextureSubresourceAttribs{
		SrcMipLevel:              a.SrcMipLevel,
		SrcSlice:                 a.SrcSlice,
		SrcTextureTransitionMode: a.SrcTextureTransitionMode.native(),
		DstMipLevel:              a.DstMipLevel,
		DstSlice:                 a.DstSlice,
		DstTextureTransitionMode: a.DstTextureTransitionMode.native(),
		Format:                   a.Format.native(),
	})
}

type DeviceContextDesc struct {
	Name                   string
	QueueType              CommandQueueType
	IsDeferred             bool
	ContextID              uint8
	QueueID                uint8
	TextureCopyGranularity [3]uint32
}

func deviceContextDescFromNative(n *driver.DeviceContextDesc) DeviceContextDesc {
	return DeviceContextDesc{
		Name:                   driver.GoString(n.Name),
		QueueType:              CommandQueueType(n.QueueType),
		IsDeferred:             n.IsDeferred,
		ContextID:              n.ContextID,
		QueueID:                n.QueueID,
		TextureCopyGranularity: n.TextureCopyGranularity,
	}
}

// DeviceContextCommandCounters counts the commands recorded since the last ClearStats.
type DeviceContextCommandCounters = driver.DeviceContextCommandCounters

type DeviceContextStats struct {
	// PrimitiveCounts holds only the topologies that were drawn.
	PrimitiveCounts map[PrimitiveTopology]uint32
	CommandCounters DeviceContextCommandCounters
}

func deviceContextStatsFromNative(n *driver.DeviceContextStats) DeviceContextStats {
	stats := DeviceContextStats{
		PrimitiveCounts: make(map[PrimitiveTopology]uint32),
		CommandCounters: n.CommandCounters,
	}
	for i, count := range n.PrimitiveCounts {
		if count > 0 {
			stats.PrimitiveCounts[primitiveTopologyFromNative(driver.PrimitiveTopology(i))] = count
		}
	}
	return stats
}
