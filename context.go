package diligent

import (
	"unsafe"

	"github.com/vkngwrapper/diligent/driver"
	"golang.org/x/exp/slog"
)

// DeviceContext records rendering commands. Every method forwards to the engine as-is:
// the wrapper neither batches nor validates.
type DeviceContext struct {
	object
	drv driver.DeviceContext
}

func (c *DeviceContext) adoptContext(native driver.DeviceContext, logger *slog.Logger) {
	c.drv = native
	c.adopt(native, "DeviceContext", logger)
}

func (c *DeviceContext) handle() driver.Handle {
	if c == nil {
		return 0
	}
	return c.drv.Handle()
}

func (c *DeviceContext) Driver() driver.DeviceContext {
	if c == nil {
		return nil
	}
	return c.drv
}

func (c *DeviceContext) Desc() DeviceContextDesc {
	return deviceContextDescFromNative(c.drv.GetDesc())
}

func (c *DeviceContext) SetPipelineState(pso *PipelineState) {
	c.drv.SetPipelineState(pso.Driver())
}

func (c *DeviceContext) TransitionShaderResources(srb *ShaderResourceBinding) {
	c.drv.TransitionShaderResources(srb.Driver())
}

func (c *DeviceContext) CommitShaderResources(srb *ShaderResourceBinding, mode ResourceStateTransitionMode) {
	c.drv.CommitShaderResources(srb.Driver(), mode.native())
}

func (c *DeviceContext) SetStencilRef(stencilRef uint32) {
	c.drv.SetStencilRef(stencilRef)
}

func (c *DeviceContext) SetBlendFactors(blendFactors [4]float32) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.SetBlendFactors(driver.New(arena, blendFactors))
}

// SetVertexBuffers binds buffers to consecutive slots starting at startSlot. offsets
// may be nil; otherwise missing entries are treated as zero.
func (c *DeviceContext) SetVertexBuffers(startSlot uint32, buffers []*Buffer, offsets []uint64, mode ResourceStateTransitionMode, flags SetVertexBuffersFlags) {
	arena := driver.NewArena()
	defer arena.Release()

	var nativeOffsets *uint64
	if offsets != nil {
		padded := make([]uint64, len(buffers))
		copy(padded, offsets)
		nativeOffsets = driver.PinSlice(arena, padded)
	}

	c.drv.SetVertexBuffers(startSlot, uint32(len(buffers)), handles(arena, buffers), nativeOffsets, mode.native(), flags.native())
}

// InvalidateState makes the context forget every bound object, which is needed after
// the application issued native commands of its own.
func (c *DeviceContext) InvalidateState() {
	c.drv.InvalidateState()
}

func (c *DeviceContext) SetIndexBuffer(indexBuffer *Buffer, byteOffset uint64, mode ResourceStateTransitionMode) {
	c.drv.SetIndexBuffer(indexBuffer.Driver(), byteOffset, mode.native())
}

// SetViewports sets the viewports. rtWidth and rtHeight are only needed by the GL
// backend and may be zero to use the bound render target's size.
func (c *DeviceContext) SetViewports(viewports []Viewport, rtWidth, rtHeight uint32) {
	arena := driver.NewArena()
	defer arena.Release()

	native := make([]driver.Viewport, len(viewports))
	for i, v := range viewports {
		native[i] = driver.Viewport(v)
	}
	c.drv.SetViewports(uint32(len(native)), driver.PinSlice(arena, native), rtWidth, rtHeight)
}

func (c *DeviceContext) SetScissorRects(rects []Rect, rtWidth, rtHeight uint32) {
	arena := driver.NewArena()
	defer arena.Release()

	native := make([]driver.Rect, len(rects))
	for i, r := range rects {
		native[i] = driver.Rect(r)
	}
	c.drv.SetScissorRects(uint32(len(native)), driver.PinSlice(arena, native), rtWidth, rtHeight)
}

// SetRenderTargets binds render targets and a depth-stencil view. Nil entries unbind
// their slot.
func (c *DeviceContext) SetRenderTargets(renderTargets []*TextureView, depthStencil *TextureView, mode ResourceStateTransitionMode) {
	c.SetRenderTargetsExt(SetRenderTargetsAttribs{
		RenderTargets:       renderTargets,
		DepthStencil:        depthStencil,
		StateTransitionMode: mode,
	})
}

func (c *DeviceContext) SetRenderTargetsExt(attribs SetRenderTargetsAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.SetRenderTargetsExt(attribs.marshal(arena))
}

func (c *DeviceContext) BeginRenderPass(attribs BeginRenderPassAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.BeginRenderPass(attribs.marshal(arena))
}

func (c *DeviceContext) NextSubpass() {
	c.drv.NextSubpass()
}

func (c *DeviceContext) EndRenderPass() {
	c.drv.EndRenderPass()
}

func (c *DeviceContext) Draw(attribs DrawAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.Draw(attribs.marshal(arena))
}

func (c *DeviceContext) DrawIndexed(attribs DrawIndexedAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.DrawIndexed(attribs.marshal(arena))
}

func (c *DeviceContext) DrawIndirect(attribs DrawIndirectAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.DrawIndirect(attribs.marshal(arena))
}

func (c *DeviceContext) DrawIndexedIndirect(attribs DrawIndexedIndirectAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.DrawIndexedIndirect(attribs.marshal(arena))
}

func (c *DeviceContext) DrawMesh(attribs DrawMeshAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.DrawMesh(attribs.marshal(arena))
}

func (c *DeviceContext) DrawMeshIndirect(attribs DrawMeshIndirectAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.DrawMeshIndirect(attribs.marshal(arena))
}

func (c *DeviceContext) MultiDraw(attribs MultiDrawAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.MultiDraw(attribs.marshal(arena))
}

func (c *DeviceContext) MultiDrawIndexed(attribs MultiDrawIndexedAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.MultiDrawIndexed(attribs.marshal(arena))
}

func (c *DeviceContext) DispatchCompute(attribs DispatchComputeAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.DispatchCompute(attribs.marshal(arena))
}

func (c *DeviceContext) DispatchComputeIndirect(attribs DispatchComputeIndirectAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.DispatchComputeIndirect(attribs.marshal(arena))
}

func (c *DeviceContext) DispatchTile(attribs DispatchTileAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.DispatchTile(attribs.marshal(arena))
}

// TileSize returns the tile width and height of the tile pipeline currently bound.
func (c *DeviceContext) TileSize() (uint32, uint32) {
	return c.drv.GetTileSize()
}

func (c *DeviceContext) ClearDepthStencil(view *TextureView, flags ClearDepthStencilFlags, depth float32, stencil uint8, mode ResourceStateTransitionMode) {
	c.drv.ClearDepthStencil(view.Driver(), flags.native(), depth, stencil, mode.native())
}

// ClearRenderTarget clears view to rgba. For integer formats the components are
// reinterpreted by the engine.
func (c *DeviceContext) ClearRenderTarget(view *TextureView, rgba [4]float32, mode ResourceStateTransitionMode) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.ClearRenderTarget(view.Driver(), unsafe.Pointer(driver.New(arena, rgba)), mode.native())
}

// EnqueueSignal makes the GPU set fence to value once every command submitted before
// the next flush has completed.
func (c *DeviceContext) EnqueueSignal(fence *Fence, value uint64) {
	c.drv.EnqueueSignal(fence.Driver(), value)
}

// DeviceWaitForFence makes the GPU wait for fence to reach value before executing
// further commands.
func (c *DeviceContext) DeviceWaitForFence(fence *Fence, value uint64) {
	c.drv.DeviceWaitForFence(fence.Driver(), value)
}

func (c *DeviceContext) BeginQuery(query *Query) {
	c.drv.BeginQuery(query.Driver())
}

func (c *DeviceContext) EndQuery(query *Query) {
	c.drv.EndQuery(query.Driver())
}

func (c *DeviceContext) UpdateBuffer(buffer *Buffer, offset uint64, data []byte, mode ResourceStateTransitionMode) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.UpdateBuffer(buffer.Driver(), offset, uint64(len(data)), arena.Bytes(data), mode.native())
}

func (c *DeviceContext) CopyBuffer(src *Buffer, srcOffset uint64, srcMode ResourceStateTransitionMode, dst *Buffer, dstOffset, size uint64, dstMode ResourceStateTransitionMode) {
	c.drv.CopyBuffer(src.Driver(), srcOffset, srcMode.native(), dst.Driver(), dstOffset, size, dstMode.native())
}

// UpdateTexture writes data into the dstBox region of one subresource.
func (c *DeviceContext) UpdateTexture(texture *Texture, mipLevel, slice uint32, dstBox Box, data TextureSubResData, srcBufferMode, textureMode ResourceStateTransitionMode) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.UpdateTexture(texture.Driver(), mipLevel, slice, dstBox.marshal(arena),
		driver.New(arena, data.marshal(arena)), srcBufferMode.native(), textureMode.native())
}

func (c *DeviceContext) CopyTexture(attribs CopyTextureAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.CopyTexture(attribs.marshal(arena))
}

func (c *DeviceContext) GenerateMips(view *TextureView) {
	c.drv.GenerateMips(view.Driver())
}

// FinishFrame lets the engine recycle the dynamic memory used by the frame. Deferred
// contexts call it after their command lists have been executed.
func (c *DeviceContext) FinishFrame() {
	c.drv.FinishFrame()
}

func (c *DeviceContext) FrameNumber() uint64 {
	return c.drv.GetFrameNumber()
}

func (c *DeviceContext) TransitionResourceStates(barriers []StateTransitionDesc) {
	arena := driver.NewArena()
	defer arena.Release()

	native, count := driver.MarshalSlice(arena, barriers, func(_ *driver.Arena, d *StateTransitionDesc) driver.StateTransitionDesc {
		return d.marshal()
	})
	c.drv.TransitionResourceStates(count, native)
}

// ResolveTextureSubresource resolves a multisampled src into dst.
func (c *DeviceContext) ResolveTextureSubresource(src, dst *Texture, attribs ResolveTextureSubresourceAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.ResolveTextureSubresource(src.Driver(), dst.Driver(), attribs.marshal(arena))
}

func (c *DeviceContext) BuildBLAS(attribs BuildBLASAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.BuildBLAS(attribs.marshal(arena))
}

func (c *DeviceContext) BuildTLAS(attribs BuildTLASAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.BuildTLAS(attribs.marshal(arena))
}

func (c *DeviceContext) CopyBLAS(attribs CopyBLASAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.CopyBLAS(attribs.marshal(arena))
}

func (c *DeviceContext) CopyTLAS(attribs CopyTLASAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.CopyTLAS(attribs.marshal(arena))
}

func (c *DeviceContext) WriteBLASCompactedSize(attribs WriteBLASCompactedSizeAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.WriteBLASCompactedSize(attribs.marshal(arena))
}

func (c *DeviceContext) WriteTLASCompactedSize(attribs WriteTLASCompactedSizeAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.WriteTLASCompactedSize(attribs.marshal(arena))
}

func (c *DeviceContext) TraceRays(attribs TraceRaysAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.TraceRays(attribs.marshal(arena))
}

func (c *DeviceContext) TraceRaysIndirect(attribs TraceRaysIndirectAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.TraceRaysIndirect(attribs.marshal(arena))
}

// UpdateSBT uploads sbt's shader records. With attribs set, the records are written
// into an indirect ray tracing buffer instead.
func (c *DeviceContext) UpdateSBT(sbt *ShaderBindingTable, attribs *UpdateIndirectRTBufferAttribs) {
	arena := driver.NewArena()
	defer arena.Release()

	var nativeAttribs *driver.UpdateIndirectRTBufferAttribs
	if attribs != nil {
		nativeAttribs = attribs.marshal(arena)
	}
	c.drv.UpdateSBT(sbt.Driver(), nativeAttribs)
}

func (c *DeviceContext) SetUserData(data Object) {
	c.drv.SetUserData(nativeOf(data))
}

// UserData returns a new reference to the object attached with SetUserData, or nil.
func (c *DeviceContext) UserData() *GenericObject {
	return fromBorrowed(c.drv.GetUserData(), c.logger, wrapGenericObject)
}

// BeginDebugGroup opens a named group in graphics debuggers. color may be nil.
func (c *DeviceContext) BeginDebugGroup(name string, color *[4]float32) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.BeginDebugGroup(arena.CString(name), driver.Pin(arena, color))
}

func (c *DeviceContext) EndDebugGroup() {
	c.drv.EndDebugGroup()
}

func (c *DeviceContext) InsertDebugLabel(label string, color *[4]float32) {
	arena := driver.NewArena()
	defer arena.Release()

	c.drv.InsertDebugLabel(arena.CString(label), driver.Pin(arena, color))
}

func (c *DeviceContext) SetShadingRate(baseRate ShadingRate, primitiveCombiner, textureCombiner ShadingRateCombiner) {
	c.drv.SetShadingRate(baseRate.native(), primitiveCombiner.native(), textureCombiner.native())
}

func (c *DeviceContext) ClearStats() {
	c.drv.ClearStats()
}

// Stats returns the command counters gathered since the last ClearStats.
func (c *DeviceContext) Stats() DeviceContextStats {
	return deviceContextStatsFromNative(c.drv.GetStats())
}

// MapBufferRead maps buffer for reading. The token must be unmapped before the buffer
// is used by the GPU again.
func (c *DeviceContext) MapBufferRead(buffer *Buffer, flags MapFlags) (*BufferMapReadToken, error) {
	return NewBufferMapReadToken(c, buffer, flags)
}

func (c *DeviceContext) MapBufferWrite(buffer *Buffer, flags MapFlags) (*BufferMapWriteToken, error) {
	return NewBufferMapWriteToken(c, buffer, flags)
}

func (c *DeviceContext) MapBufferReadWrite(buffer *Buffer, flags MapFlags) (*BufferMapReadWriteToken, error) {
	return NewBufferMapReadWriteToken(c, buffer, flags)
}

// MapTextureSubresourceRead maps one subresource of texture for reading. region may
// be nil to map the whole subresource.
func (c *DeviceContext) MapTextureSubresourceRead(texture *Texture, mipLevel, arraySlice uint32, flags MapFlags, region *Box) (*TextureSubresourceReadMapToken, error) {
	return NewTextureSubresourceReadMapToken(c, texture, mipLevel, arraySlice, flags, region)
}

func (c *DeviceContext) MapTextureSubresourceWrite(texture *Texture, mipLevel, arraySlice uint32, flags MapFlags, region *Box) (*TextureSubresourceWriteMapToken, error) {
	return NewTextureSubresourceWriteMapToken(c, texture, mipLevel, arraySlice, flags, region)
}

func (c *DeviceContext) MapTextureSubresourceReadWrite(texture *Texture, mipLevel, arraySlice uint32, flags MapFlags, region *Box) (*TextureSubresourceReadWriteMapToken, error) {
	return NewTextureSubresourceReadWriteMapToken(c, texture, mipLevel, arraySlice, flags, region)
}

// ImmediateDeviceContext submits commands directly to a command queue.
type ImmediateDeviceContext struct {
	DeviceContext
}

func wrapImmediateDeviceContext(native driver.DeviceContext, logger *slog.Logger) *ImmediateDeviceContext {
	c := &ImmediateDeviceContext{}
	c.adoptContext(native, logger)
	return c
}

// ImmediateDeviceContextFromDriver wraps a driver context, taking over the reference
// the caller holds.
func ImmediateDeviceContextFromDriver(native driver.DeviceContext, logger *slog.Logger) *ImmediateDeviceContext {
	return fromOwned(native, loggerOrDiscard(logger), wrapImmediateDeviceContext)
}

func (c *ImmediateDeviceContext) Ref() *ImmediateDeviceContext {
	return fromBorrowed(c.drv, c.logger, wrapImmediateDeviceContext)
}

// Flush submits the recorded commands to the GPU.
func (c *ImmediateDeviceContext) Flush() {
	c.logger.Debug("ImmediateDeviceContext::Flush")
	c.drv.Flush()
}

// WaitForIdle flushes and blocks until the GPU has executed every command of the context.
func (c *ImmediateDeviceContext) WaitForIdle() {
	c.logger.Debug("ImmediateDeviceContext::WaitForIdle")
	c.drv.WaitForIdle()
}

func (c *ImmediateDeviceContext) ExecuteCommandLists(commandLists []*CommandList) {
	c.logger.Debug("ImmediateDeviceContext::ExecuteCommandLists")

	arena := driver.NewArena()
	defer arena.Release()

	c.drv.ExecuteCommandLists(uint32(len(commandLists)), handles(arena, commandLists))
}

// LockCommandQueue flushes the context and returns the backend command queue, locked
// until UnlockCommandQueue. The returned object is a new reference.
func (c *ImmediateDeviceContext) LockCommandQueue() *GenericObject {
	c.logger.Debug("ImmediateDeviceContext::LockCommandQueue")
	return fromBorrowed(c.drv.LockCommandQueue(), c.logger, wrapGenericObject)
}

func (c *ImmediateDeviceContext) UnlockCommandQueue() {
	c.logger.Debug("ImmediateDeviceContext::UnlockCommandQueue")
	c.drv.UnlockCommandQueue()
}

// DeferredDeviceContext records command lists on any goroutine for later execution by
// an immediate context.
type DeferredDeviceContext struct {
	DeviceContext
}

func wrapDeferredDeviceContext(native driver.DeviceContext, logger *slog.Logger) *DeferredDeviceContext {
	c := &DeferredDeviceContext{}
	c.adoptContext(native, logger)
	return c
}

func DeferredDeviceContextFromDriver(native driver.DeviceContext, logger *slog.Logger) *DeferredDeviceContext {
	return fromOwned(native, loggerOrDiscard(logger), wrapDeferredDeviceContext)
}

func (c *DeferredDeviceContext) Ref() *DeferredDeviceContext {
	return fromBorrowed(c.drv, c.logger, wrapDeferredDeviceContext)
}

// Begin starts recording for the immediate context with the given ID.
func (c *DeferredDeviceContext) Begin(immediateContextID uint32) {
	c.logger.Debug("DeferredDeviceContext::Begin")
	c.drv.Begin(immediateContextID)
}

// FinishCommandList ends recording and returns the commands as a CommandList.
func (c *DeferredDeviceContext) FinishCommandList() (*CommandList, error) {
	c.logger.Debug("DeferredDeviceContext::FinishCommandList")

	list := fromOwned(c.drv.FinishCommandList(), c.logger, wrapCommandList)
	if list == nil {
		return nil, creationFailed("CommandList", "")
	}
	return list, nil
}
