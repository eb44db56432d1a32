package driver

import "unsafe"

// DeviceContext records or executes commands. Immediate and deferred contexts share
// one method table; calls a context kind does not support are rejected by the engine.
type DeviceContext interface {
	Object
	GetDesc() *DeviceContextDesc
	Begin(immediateContextID uint32)
	SetPipelineState(pso PipelineState)
	TransitionShaderResources(srb ShaderResourceBinding)
	CommitShaderResources(srb ShaderResourceBinding, mode ResourceStateTransitionMode)
	SetStencilRef(stencilRef uint32)
	SetBlendFactors(blendFactors *[4]float32)
	SetVertexBuffers(startSlot, numBuffers uint32, buffers *Handle, offsets *uint64, mode ResourceStateTransitionMode, flags SetVertexBuffersFlags)
	InvalidateState()
	SetIndexBuffer(indexBuffer Buffer, byteOffset uint64, mode ResourceStateTransitionMode)
	SetViewports(numViewports uint32, viewports *Viewport, rtWidth, rtHeight uint32)
	SetScissorRects(numRects uint32, rects *Rect, rtWidth, rtHeight uint32)
	SetRenderTargetsExt(attribs *SetRenderTargetsAttribs)
	BeginRenderPass(attribs *BeginRenderPassAttribs)
	NextSubpass()
	EndRenderPass()
	Draw(attribs *DrawAttribs)
	DrawIndexed(attribs *DrawIndexedAttribs)
	DrawIndirect(attribs *DrawIndirectAttribs)
	DrawIndexedIndirect(attribs *DrawIndexedIndirectAttribs)
	DrawMesh(attribs *DrawMeshAttribs)
	DrawMeshIndirect(attribs *DrawMeshIndirectAttribs)
	MultiDraw(attribs *MultiDrawAttribs)
	MultiDrawIndexed(attribs *MultiDrawIndexedAttribs)
	DispatchCompute(attribs *DispatchComputeAttribs)
	DispatchComputeIndirect(attribs *DispatchComputeIndirectAttribs)
	DispatchTile(attribs *DispatchTileAttribs)
	GetTileSize() (uint32, uint32)
	ClearDepthStencil(view TextureView, flags ClearDepthStencilFlags, depth float32, stencil uint8, mode ResourceStateTransitionMode)
	ClearRenderTarget(view TextureView, rgba unsafe.Pointer, mode ResourceStateTransitionMode)
	FinishCommandList() CommandList
	ExecuteCommandLists(numCommandLists uint32, commandLists *Handle)
	EnqueueSignal(fence Fence, value uint64)
	DeviceWaitForFence(fence Fence, value uint64)
	WaitForIdle()
	BeginQuery(query Query)
	EndQuery(query Query)
	Flush()
	UpdateBuffer(buffer Buffer, offset, size uint64, data unsafe.Pointer, mode ResourceStateTransitionMode)
	CopyBuffer(src Buffer, srcOffset uint64, srcMode ResourceStateTransitionMode, dst Buffer, dstOffset, size uint64, dstMode ResourceStateTransitionMode)
	MapBuffer(buffer Buffer, mapType MapType, flags MapFlags) unsafe.Pointer
	UnmapBuffer(buffer Buffer, mapType MapType)
	UpdateTexture(texture Texture, mipLevel, slice uint32, dstBox *Box, data *TextureSubResData, srcBufferMode, textureMode ResourceStateTransitionMode)
	CopyTexture(attribs *CopyTextureAttribs)
	MapTextureSubresource(texture Texture, mipLevel, arraySlice uint32, mapType MapType, flags MapFlags, region *Box) MappedTextureSubresource
	UnmapTextureSubresource(texture Texture, mipLevel, arraySlice uint32)
	GenerateMips(view TextureView)
	FinishFrame()
	GetFrameNumber() uint64
	TransitionResourceStates(barrierCount uint32, barriers *StateTransitionDesc)
	ResolveTextureSubresource(src, dst Texture, attribs *ResolveTextureSubresourceAttribs)
	BuildBLAS(attribs *BuildBLASAttribs)
	BuildTLAS(attribs *BuildTLASAttribs)
	CopyBLAS(attribs *CopyBLASAttribs)
	CopyTLAS(attribs *CopyTLASAttribs)
	WriteBLASCompactedSize(attribs *WriteBLASCompactedSizeAttribs)
	WriteTLASCompactedSize(attribs *WriteTLASCompactedSizeAttribs)
	TraceRays(attribs *TraceRaysAttribs)
	TraceRaysIndirect(attribs *TraceRaysIndirectAttribs)
	UpdateSBT(sbt ShaderBindingTable, attribs *UpdateIndirectRTBufferAttribs)
	SetUserData(data Object)
	GetUserData() Object
	BeginDebugGroup(name *byte, color *[4]float32)
	EndDebugGroup()
	InsertDebugLabel(label *byte, color *[4]float32)
	LockCommandQueue() Object
	UnlockCommandQueue()
	SetShadingRate(baseRate ShadingRate, primitiveCombiner, textureCombiner ShadingRateCombiner)
	ClearStats()
	GetStats() *DeviceContextStats
}

type deviceContextMethods struct {
	objectMethods
	GetDesc                   uintptr
	Begin                     uintptr
	SetPipelineState          uintptr
	TransitionShaderResources uintptr
	CommitShaderResources     uintptr
	SetStencilRef             uintptr
	SetBlendFactors           uintptr
	SetVertexBuffers          uintptr
	InvalidateState           uintptr
	SetIndexBuffer            uintptr
	SetViewports              uintptr
	SetScissorRects           uintptr
	SetRenderTargetsExt       uintptr
	BeginRenderPass           uintptr
	NextSubpass               uintptr
	EndRenderPass             uintptr
	Draw                      uintptr
	DrawIndexed               uintptr
	DrawIndirect              uintptr
	DrawIndexedIndirect       uintptr
	DrawMesh                  uintptr
	DrawMeshIndirect          uintptr
	MultiDraw                 uintptr
	MultiDrawIndexed          uintptr
	DispatchCompute           uintptr
	DispatchComputeIndirect   uintptr
	DispatchTile              uintptr
	GetTileSize               uintptr
	ClearDepthStencil         uintptr
	ClearRenderTarget         uintptr
	FinishCommandList         uintptr
	ExecuteCommandLists       uintptr
	EnqueueSignal             uintptr
	DeviceWaitForFence        uintptr
	WaitForIdle               uintptr
	BeginQuery                uintptr
	EndQuery                  uintptr
	Flush                     uintptr
	UpdateBuffer              uintptr
	CopyBuffer                uintptr
	MapBuffer                 uintptr
	UnmapBuffer               uintptr
	UpdateTexture             uintptr
	CopyTexture               uintptr
	MapTextureSubresource     uintptr
	UnmapTextureSubresource   uintptr
	GenerateMips              uintptr
	FinishFrame               uintptr
	GetFrameNumber            uintptr
	TransitionResourceStates  uintptr
	ResolveTextureSubresource uintptr
	BuildBLAS                 uintptr
	BuildTLAS                 uintptr
	CopyBLAS                  uintptr
	CopyTLAS                  uintptr
	WriteBLASCompactedSize    uintptr
	WriteTLASCompactedSize    uintptr
	TraceRays                 uintptr
	TraceRaysIndirect         uintptr
	UpdateSBT                 uintptr
	SetUserData               uintptr
	GetUserData               uintptr
	BeginDebugGroup           uintptr
	EndDebugGroup             uintptr
	InsertDebugLabel          uintptr
	LockCommandQueue          uintptr
	UnlockCommandQueue        uintptr
	SetShadingRate            uintptr
	BindSparseResourceMemory  uintptr
	ClearStats                uintptr
	GetStats                  uintptr
}

const (
	_ = unsafe.Sizeof(deviceContextMethods{}) - 75*ptrSize
	_ = 75*ptrSize - unsafe.Sizeof(deviceContextMethods{})
)

type deviceContext struct {
	object
}

func DeviceContextFromHandle(h Handle) DeviceContext {
	if h == 0 {
		return nil
	}
	return deviceContext{object{handle: h}}
}

func (c deviceContext) methods() *deviceContextMethods {
	return vtblOf[deviceContextMethods](c.handle)
}

func (c deviceContext) this() uintptr {
	return uintptr(c.handle)
}

func (c deviceContext) GetDesc() *DeviceContextDesc {
	return (*DeviceContextDesc)(unsafe.Pointer(call(c.methods().GetDesc, c.this())))
}

func (c deviceContext) Begin(immediateContextID uint32) {
	call(c.methods().Begin, c.this(), uintptr(immediateContextID))
}

func (c deviceContext) SetPipelineState(pso PipelineState) {
	call(c.methods().SetPipelineState, c.this(), handleOf(pso))
}

func (c deviceContext) TransitionShaderResources(srb ShaderResourceBinding) {
	call(c.methods().TransitionShaderResources, c.this(), handleOf(srb))
}

func (c deviceContext) CommitShaderResources(srb ShaderResourceBinding, mode ResourceStateTransitionMode) {
	call(c.methods().CommitShaderResources, c.this(), handleOf(srb), uintptr(mode))
}

func (c deviceContext) SetStencilRef(stencilRef uint32) {
	call(c.methods().SetStencilRef, c.this(), uintptr(stencilRef))
}

func (c deviceContext) SetBlendFactors(blendFactors *[4]float32) {
	call(c.methods().SetBlendFactors, c.this(), ptr(blendFactors))
}

func (c deviceContext) SetVertexBuffers(startSlot, numBuffers uint32, buffers *Handle, offsets *uint64, mode ResourceStateTransitionMode, flags SetVertexBuffersFlags) {
	call(c.methods().SetVertexBuffers, c.this(), uintptr(startSlot), uintptr(numBuffers), ptr(buffers), ptr(offsets), uintptr(mode), uintptr(flags))
}

func (c deviceContext) InvalidateState() {
	call(c.methods().InvalidateState, c.this())
}

func (c deviceContext) SetIndexBuffer(indexBuffer Buffer, byteOffset uint64, mode ResourceStateTransitionMode) {
	call(c.methods().SetIndexBuffer, c.this(), handleOf(indexBuffer), uintptr(byteOffset), uintptr(mode))
}

func (c deviceContext) SetViewports(numViewports uint32, viewports *Viewport, rtWidth, rtHeight uint32) {
	call(c.methods().SetViewports, c.this(), uintptr(numViewports), ptr(viewports), uintptr(rtWidth), uintptr(rtHeight))
}

func (c deviceContext) SetScissorRects(numRects uint32, rects *Rect, rtWidth, rtHeight uint32) {
	call(c.methods().SetScissorRects, c.this(), uintptr(numRects), ptr(rects), uintptr(rtWidth), uintptr(rtHeight))
}

func (c deviceContext) SetRenderTargetsExt(attribs *SetRenderTargetsAttribs) {
	call(c.methods().SetRenderTargetsExt, c.this(), ptr(attribs))
}

func (c deviceContext) BeginRenderPass(attribs *BeginRenderPassAttribs) {
	call(c.methods().BeginRenderPass, c.this(), ptr(attribs))
}

func (c deviceContext) NextSubpass() {
	call(c.methods().NextSubpass, c.this())
}

func (c deviceContext) EndRenderPass() {
	call(c.methods().EndRenderPass, c.this())
}

func (c deviceContext) Draw(attribs *DrawAttribs) {
	call(c.methods().Draw, c.this(), ptr(attribs))
}

func (c deviceContext) DrawIndexed(attribs *DrawIndexedAttribs) {
	call(c.methods().DrawIndexed, c.this(), ptr(attribs))
}

func (c deviceContext) DrawIndirect(attribs *DrawIndirectAttribs) {
	call(c.methods().DrawIndirect, c.this(), ptr(attribs))
}

func (c deviceContext) DrawIndexedIndirect(attribs *DrawIndexedIndirectAttribs) {
	call(c.methods().DrawIndexedIndirect, c.this(), ptr(attribs))
}

func (c deviceContext) DrawMesh(attribs *DrawMeshAttribs) {
	call(c.methods().DrawMesh, c.this(), ptr(attribs))
}

func (c deviceContext) DrawMeshIndirect(attribs *DrawMeshIndirectAttribs) {
	call(c.methods().DrawMeshIndirect, c.this(), ptr(attribs))
}

func (c deviceContext) MultiDraw(attribs *MultiDrawAttribs) {
	call(c.methods().MultiDraw, c.this(), ptr(attribs))
}

func (c deviceContext) MultiDrawIndexed(attribs *MultiDrawIndexedAttribs) {
	call(c.methods().MultiDrawIndexed, c.this(), ptr(attribs))
}

func (c deviceContext) DispatchCompute(attribs *DispatchComputeAttribs) {
	call(c.methods().DispatchCompute, c.this(), ptr(attribs))
}

func (c deviceContext) DispatchComputeIndirect(attribs *DispatchComputeIndirectAttribs) {
	call(c.methods().DispatchComputeIndirect, c.this(), ptr(attribs))
}

func (c deviceContext) DispatchTile(attribs *DispatchTileAttribs) {
	call(c.methods().DispatchTile, c.this(), ptr(attribs))
}

func (c deviceContext) GetTileSize() (uint32, uint32) {
	var x, y uint32
	call(c.methods().GetTileSize, c.this(), ptr(&x), ptr(&y))
	return x, y
}

func (c deviceContext) ClearDepthStencil(view TextureView, flags ClearDepthStencilFlags, depth float32, stencil uint8, mode ResourceStateTransitionMode) {
	callClearDepthStencil(c.methods().ClearDepthStencil, c.handle, handleOf(view), flags, depth, stencil, mode)
}

func (c deviceContext) ClearRenderTarget(view TextureView, rgba unsafe.Pointer, mode ResourceStateTransitionMode) {
	call(c.methods().ClearRenderTarget, c.this(), handleOf(view), uintptr(rgba), uintptr(mode))
}

func (c deviceContext) FinishCommandList() CommandList {
	var out Handle
	call(c.methods().FinishCommandList, c.this(), ptr(&out))
	return CommandListFromHandle(out)
}

func (c deviceContext) ExecuteCommandLists(numCommandLists uint32, commandLists *Handle) {
	call(c.methods().ExecuteCommandLists, c.this(), uintptr(numCommandLists), ptr(commandLists))
}

func (c deviceContext) EnqueueSignal(fence Fence, value uint64) {
	call(c.methods().EnqueueSignal, c.this(), handleOf(fence), uintptr(value))
}

func (c deviceContext) DeviceWaitForFence(fence Fence, value uint64) {
	call(c.methods().DeviceWaitForFence, c.this(), handleOf(fence), uintptr(value))
}

func (c deviceContext) WaitForIdle() {
	call(c.methods().WaitForIdle, c.this())
}

func (c deviceContext) BeginQuery(query Query) {
	call(c.methods().BeginQuery, c.this(), handleOf(query))
}

func (c deviceContext) EndQuery(query Query) {
	call(c.methods().EndQuery, c.this(), handleOf(query))
}

func (c deviceContext) Flush() {
	call(c.methods().Flush, c.this())
}

func (c deviceContext) UpdateBuffer(buffer Buffer, offset, size uint64, data unsafe.Pointer, mode ResourceStateTransitionMode) {
	call(c.methods().UpdateBuffer, c.this(), handleOf(buffer), uintptr(offset), uintptr(size), uintptr(data), uintptr(mode))
}

func (c deviceContext) CopyBuffer(src Buffer, srcOffset uint64, srcMode ResourceStateTransitionMode, dst Buffer, dstOffset, size uint64, dstMode ResourceStateTransitionMode) {
	call(c.methods().CopyBuffer, c.this(), handleOf(src), uintptr(srcOffset), uintptr(srcMode), handleOf(dst), uintptr(dstOffset), uintptr(size), uintptr(dstMode))
}

func (c deviceContext) MapBuffer(buffer Buffer, mapType MapType, flags MapFlags) unsafe.Pointer {
	var data unsafe.Pointer
	call(c.methods().MapBuffer, c.this(), handleOf(buffer), uintptr(mapType), uintptr(flags), ptr(&data))
	return data
}

func (c deviceContext) UnmapBuffer(buffer Buffer, mapType MapType) {
	call(c.methods().UnmapBuffer, c.this(), handleOf(buffer), uintptr(mapType))
}

func (c deviceContext) UpdateTexture(texture Texture, mipLevel, slice uint32, dstBox *Box, data *TextureSubResData, srcBufferMode, textureMode ResourceStateTransitionMode) {
	call(c.methods().UpdateTexture, c.this(), handleOf(texture), uintptr(mipLevel), uintptr(slice), ptr(dstBox), ptr(data), uintptr(srcBufferMode), uintptr(textureMode))
}

func (c deviceContext) CopyTexture(attribs *CopyTextureAttribs) {
	call(c.methods().CopyTexture, c.this(), ptr(attribs))
}

func (c deviceContext) MapTextureSubresource(texture Texture, mipLevel, arraySlice uint32, mapType MapType, flags MapFlags, region *Box) MappedTextureSubresource {
	var out MappedTextureSubresource
	call(c.methods().MapTextureSubresource, c.this(), handleOf(texture), uintptr(mipLevel), uintptr(arraySlice), uintptr(mapType), uintptr(flags), ptr(region), ptr(&out))
	return out
}

func (c deviceContext) UnmapTextureSubresource(texture Texture, mipLevel, arraySlice uint32) {
	call(c.methods().UnmapTextureSubresource, c.this(), handleOf(texture), uintptr(mipLevel), uintptr(arraySlice))
}

func (c deviceContext) GenerateMips(view TextureView) {
	call(c.methods().GenerateMips, c.this(), handleOf(view))
}

func (c deviceContext) FinishFrame() {
	call(c.methods().FinishFrame, c.this())
}

func (c deviceContext) GetFrameNumber() uint64 {
	return uint64(call(c.methods().GetFrameNumber, c.this()))
}

func (c deviceContext) TransitionResourceStates(barrierCount uint32, barriers *StateTransitionDesc) {
	call(c.methods().TransitionResourceStates, c.this(), uintptr(barrierCount), ptr(barriers))
}

func (c deviceContext) ResolveTextureSubresource(src, dst Texture, attribs *ResolveTextureSubresourceAttribs) {
	call(c.methods().ResolveTextureSubresource, c.this(), handleOf(src), handleOf(dst), ptr(attribs))
}

func (c deviceContext) BuildBLAS(attribs *BuildBLASAttribs) {
	call(c.methods().BuildBLAS, c.this(), ptr(attribs))
}

func (c deviceContext) BuildTLAS(attribs *BuildTLASAttribs) {
	call(c.methods().BuildTLAS, c.this(), ptr(attribs))
}

func (c deviceContext) CopyBLAS(attribs *CopyBLASAttribs) {
	call(c.methods().CopyBLAS, c.this(), ptr(attribs))
}

func (c deviceContext) CopyTLAS(attribs *CopyTLASAttribs) {
	call(c.methods().CopyTLAS, c.this(), ptr(attribs))
}

func (c deviceContext) WriteBLASCompactedSize(attribs *WriteBLASCompactedSizeAttribs) {
	call(c.methods().WriteBLASCompactedSize, c.this(), ptr(attribs))
}

func (c deviceContext) WriteTLASCompactedSize(attribs *WriteTLASCompactedSizeAttribs) {
	call(c.methods().WriteTLASCompactedSize, c.this(), ptr(attribs))
}

func (c deviceContext) TraceRays(attribs *TraceRaysAttribs) {
	call(c.methods().TraceRays, c.this(), ptr(attribs))
}

func (c deviceContext) TraceRaysIndirect(attribs *TraceRaysIndirectAttribs) {
	call(c.methods().TraceRaysIndirect, c.this(), ptr(attribs))
}

func (c deviceContext) UpdateSBT(sbt ShaderBindingTable, attribs *UpdateIndirectRTBufferAttribs) {
	call(c.methods().UpdateSBT, c.this(), handleOf(sbt), ptr(attribs))
}

func (c deviceContext) SetUserData(data Object) {
	call(c.methods().SetUserData, c.this(), handleOf(data))
}

func (c deviceContext) GetUserData() Object {
	return ObjectFromHandle(Handle(call(c.methods().GetUserData, c.this())))
}

func (c deviceContext) BeginDebugGroup(name *byte, color *[4]float32) {
	call(c.methods().BeginDebugGroup, c.this(), ptr(name), ptr(color))
}

func (c deviceContext) EndDebugGroup() {
	call(c.methods().EndDebugGroup, c.this())
}

func (c deviceContext) InsertDebugLabel(label *byte, color *[4]float32) {
	call(c.methods().InsertDebugLabel, c.this(), ptr(label), ptr(color))
}

func (c deviceContext) LockCommandQueue() Object {
	return ObjectFromHandle(Handle(call(c.methods().LockCommandQueue, c.this())))
}

func (c deviceContext) UnlockCommandQueue() {
	call(c.methods().UnlockCommandQueue, c.this())
}

func (c deviceContext) SetShadingRate(baseRate ShadingRate, primitiveCombiner, textureCombiner ShadingRateCombiner) {
	call(c.methods().SetShadingRate, c.this(), uintptr(baseRate), uintptr(primitiveCombiner), uintptr(textureCombiner))
}

func (c deviceContext) ClearStats() {
	call(c.methods().ClearStats, c.this())
}

func (c deviceContext) GetStats() *DeviceContextStats {
	return (*DeviceContextStats)(unsafe.Pointer(call(c.methods().GetStats, c.this())))
}
