package diligent

import (
	"unsafe"

	"github.com/vkngwrapper/diligent/driver"
	"golang.org/x/exp/slog"
)

// ResourceMapping associates names with resources so that BindResources and
// BindStaticResources can resolve shader variables by name.
type ResourceMapping struct {
	object
	drv driver.ResourceMapping
}

func wrapResourceMapping(native driver.ResourceMapping, logger *slog.Logger) *ResourceMapping {
	m := &ResourceMapping{drv: native}
	m.adopt(native, "ResourceMapping", logger)
	return m
}

func (m *ResourceMapping) Driver() driver.ResourceMapping {
	if m == nil {
		return nil
	}
	return m.drv
}

func (m *ResourceMapping) Ref() *ResourceMapping {
	return fromBorrowed(m.drv, m.logger, wrapResourceMapping)
}

// AddResource maps name to obj. When isUnique is set, an existing mapping with the
// same name is an error reported through the message callback.
func (m *ResourceMapping) AddResource(name string, obj DeviceObject, isUnique bool) {
	arena := driver.NewArena()
	defer arena.Release()

	m.drv.AddResource(arena.CString(name), nativeDeviceObjectOf(obj), isUnique)
}

func (m *ResourceMapping) AddResourceArray(name string, startIndex uint32, objs []DeviceObject, isUnique bool) {
	arena := driver.NewArena()
	defer arena.Release()

	m.drv.AddResourceArray(arena.CString(name), startIndex, handles(arena, objs), uint32(len(objs)), isUnique)
}

func (m *ResourceMapping) RemoveResourceByName(name string, arrayIndex uint32) {
	arena := driver.NewArena()
	defer arena.Release()

	m.drv.RemoveResourceByName(arena.CString(name), arrayIndex)
}

// Resource returns a new reference to the object mapped to name at arrayIndex, or nil.
func (m *ResourceMapping) Resource(name string, arrayIndex uint32) *GenericDeviceObject {
	arena := driver.NewArena()
	defer arena.Release()

	return fromBorrowed(m.drv.GetResource(arena.CString(name), arrayIndex), m.logger, wrapGenericDeviceObject)
}

// Size is the number of mapped entries.
func (m *ResourceMapping) Size() uint64 {
	return m.drv.GetSize()
}

type RenderPass struct {
	deviceObject
	drv driver.RenderPass
}

func wrapRenderPass(native driver.RenderPass, logger *slog.Logger) *RenderPass {
	p := &RenderPass{drv: native}
	p.adoptDevice(native, "RenderPass", logger)
	return p
}

func (p *RenderPass) handle() driver.Handle {
	if p == nil {
		return 0
	}
	return p.drv.Handle()
}

func (p *RenderPass) Driver() driver.RenderPass {
	if p == nil {
		return nil
	}
	return p.drv
}

func (p *RenderPass) Ref() *RenderPass {
	return fromBorrowed(p.drv, p.logger, wrapRenderPass)
}

func (p *RenderPass) Desc() RenderPassDesc {
	return renderPassDescFromNative(p.drv.GetDesc())
}

type Framebuffer struct {
	deviceObject
	drv driver.Framebuffer
}

func wrapFramebuffer(native driver.Framebuffer, logger *slog.Logger) *Framebuffer {
	f := &Framebuffer{drv: native}
	f.adoptDevice(native, "Framebuffer", logger)
	return f
}

func (f *Framebuffer) handle() driver.Handle {
	if f == nil {
		return 0
	}
	return f.drv.Handle()
}

func (f *Framebuffer) Driver() driver.Framebuffer {
	if f == nil {
		return nil
	}
	return f.drv
}

func (f *Framebuffer) Ref() *Framebuffer {
	return fromBorrowed(f.drv, f.logger, wrapFramebuffer)
}

// Desc returns the framebuffer description. RenderPass and Attachments are new
// references that the caller releases.
func (f *Framebuffer) Desc() FramebufferDesc {
	n := f.drv.GetDesc()

	attachments := make([]*TextureView, 0, n.AttachmentCount)
	for _, h := range driver.GoSlice(n.Attachments, n.AttachmentCount) {
		attachments = append(attachments, fromBorrowed(driver.TextureViewFromHandle(h), f.logger, wrapTextureView))
	}

	return FramebufferDesc{
		Name:           driver.GoString(n.Name),
		RenderPass:     fromBorrowed(driver.RenderPassFromHandle(n.RenderPass), f.logger, wrapRenderPass),
		Attachments:    attachments,
		Width:          n.Width,
		Height:         n.Height,
		NumArraySlices: n.NumArraySlices,
	}
}

// Fence is a GPU timeline value that the CPU and device contexts can signal and wait on.
type Fence struct {
	deviceObject
	drv driver.Fence
}

func wrapFence(native driver.Fence, logger *slog.Logger) *Fence {
	f := &Fence{drv: native}
	f.adoptDevice(native, "Fence", logger)
	return f
}

// FenceFromDriver wraps a driver fence, taking over the reference the caller holds.
func FenceFromDriver(native driver.Fence, logger *slog.Logger) *Fence {
	return fromOwned(native, loggerOrDiscard(logger), wrapFence)
}

func (f *Fence) handle() driver.Handle {
	if f == nil {
		return 0
	}
	return f.drv.Handle()
}

func (f *Fence) Driver() driver.Fence {
	if f == nil {
		return nil
	}
	return f.drv
}

func (f *Fence) Ref() *Fence {
	return fromBorrowed(f.drv, f.logger, wrapFence)
}

func (f *Fence) Desc() FenceDesc {
	return fenceDescFromNative(f.drv.GetDesc())
}

// CompletedValue is the last value the GPU has signaled.
func (f *Fence) CompletedValue() uint64 {
	return f.drv.GetCompletedValue()
}

// Signal sets the fence to value from the CPU. Only general fences allow it.
func (f *Fence) Signal(value uint64) {
	f.drv.Signal(value)
}

// Wait blocks until the fence reaches value.
func (f *Fence) Wait(value uint64) {
	f.logger.Debug("Fence::Wait")
	f.drv.Wait(value)
}

// QueryData is the result of a query. Its concrete type follows the query type:
// QueryDataOcclusion, QueryDataBinaryOcclusion, QueryDataTimestamp,
// QueryDataPipelineStatistics or QueryDataDuration.
type QueryData interface {
	QueryType() QueryType
}

type QueryDataOcclusion struct {
	NumSamples uint64
}

func (QueryDataOcclusion) QueryType() QueryType { return QueryTypeOcclusion }

type QueryDataBinaryOcclusion struct {
	AnySamplePassed bool
}

func (QueryDataBinaryOcclusion) QueryType() QueryType { return QueryTypeBinaryOcclusion }

// QueryDataTimestamp holds a GPU counter value and the counter frequency in ticks per second.
type QueryDataTimestamp struct {
	Counter   uint64
	Frequency uint64
}

func (QueryDataTimestamp) QueryType() QueryType { return QueryTypeTimestamp }

type QueryDataPipelineStatistics struct {
	InputVertices       uint64
	InputPrimitives     uint64
	GSInvocations       uint64
	GSPrimitives        uint64
	ClippingInvocations uint64
	ClippingPrimitives  uint64
	VSInvocations       uint64
	PSInvocations       uint64
	HSInvocations       uint64
	DSInvocations       uint64
	CSInvocations       uint64
}

func (QueryDataPipelineStatistics) QueryType() QueryType { return QueryTypePipelineStatistics }

type QueryDataDuration struct {
	Duration  uint64
	Frequency uint64
}

func (QueryDataDuration) QueryType() QueryType { return QueryTypeDuration }

// Seconds converts the duration to seconds. It returns 0 when the frequency is unknown.
func (d QueryDataDuration) Seconds() float64 {
	if d.Frequency == 0 {
		return 0
	}
	return float64(d.Duration) / float64(d.Frequency)
}

type Query struct {
	deviceObject
	drv driver.Query
}

func wrapQuery(native driver.Query, logger *slog.Logger) *Query {
	q := &Query{drv: native}
	q.adoptDevice(native, "Query", logger)
	return q
}

func (q *Query) handle() driver.Handle {
	if q == nil {
		return 0
	}
	return q.drv.Handle()
}

func (q *Query) Driver() driver.Query {
	if q == nil {
		return nil
	}
	return q.drv
}

func (q *Query) Ref() *Query {
	return fromBorrowed(q.drv, q.logger, wrapQuery)
}

func (q *Query) Desc() QueryDesc {
	return queryDescFromNative(q.drv.GetDesc())
}

// Data returns the query result. The second result is false while the GPU has not
// finished the query. When autoInvalidate is set, a successful read invalidates the
// query so it can be reused.
func (q *Query) Data(autoInvalidate bool) (QueryData, bool) {
	queryType := q.drv.GetDesc().Type

	switch queryType {
	case driver.QueryTypeOcclusion:
		n := driver.QueryDataOcclusion{Type: queryType}
		if !queryRead(q.drv, &n, autoInvalidate) {
			return nil, false
		}
		return QueryDataOcclusion{NumSamples: n.NumSamples}, true
	case driver.QueryTypeBinaryOcclusion:
		n := driver.QueryDataBinaryOcclusion{Type: queryType}
		if !queryRead(q.drv, &n, autoInvalidate) {
			return nil, false
		}
		return QueryDataBinaryOcclusion{AnySamplePassed: n.AnySamplePassed}, true
	case driver.QueryTypeTimestamp:
		n := driver.QueryDataTimestamp{Type: queryType}
		if !queryRead(q.drv, &n, autoInvalidate) {
			return nil, false
		}
		return QueryDataTimestamp{Counter: n.Counter, Frequency: n.Frequency}, true
	case driver.QueryTypePipelineStatistics:
		n := driver.QueryDataPipelineStatistics{Type: queryType}
		if !queryRead(q.drv, &n, autoInvalidate) {
			return nil, false
		}
		return QueryDataPipelineStatistics{
			InputVertices:       n.InputVertices,
			InputPrimitives:     n.InputPrimitives,
			GSInvocations:       n.GSInvocations,
			GSPrimitives:        n.GSPrimitives,
			ClippingInvocations: n.ClippingInvocations,
			ClippingPrimitives:  n.ClippingPrimitives,
			VSInvocations:       n.VSInvocations,
			PSInvocations:       n.PSInvocations,
			HSInvocations:       n.HSInvocations,
			DSInvocations:       n.DSInvocations,
			CSInvocations:       n.CSInvocations,
		}, true
	case driver.QueryTypeDuration:
		n := driver.QueryDataDuration{Type: queryType}
		if !queryRead(q.drv, &n, autoInvalidate) {
			return nil, false
		}
		return QueryDataDuration{Duration: n.Duration, Frequency: n.Frequency}, true
	}

	panic("query of undefined type")
}

func queryRead[T any](q driver.Query, data *T, autoInvalidate bool) bool {
	return q.GetData(unsafe.Pointer(data), uint32(unsafe.Sizeof(*data)), autoInvalidate)
}

// Invalidate releases the resources the query holds so it can be reused.
func (q *Query) Invalidate() {
	q.drv.Invalidate()
}

// DeviceMemory backs sparse resources with pages of memory.
type DeviceMemory struct {
	deviceObject
	drv driver.DeviceMemory
}

func wrapDeviceMemory(native driver.DeviceMemory, logger *slog.Logger) *DeviceMemory {
	m := &DeviceMemory{drv: native}
	m.adoptDevice(native, "DeviceMemory", logger)
	return m
}

func (m *DeviceMemory) Driver() driver.DeviceMemory {
	if m == nil {
		return nil
	}
	return m.drv
}

func (m *DeviceMemory) Ref() *DeviceMemory {
	return fromBorrowed(m.drv, m.logger, wrapDeviceMemory)
}

func (m *DeviceMemory) Desc() DeviceMemoryDesc {
	return deviceMemoryDescFromNative(m.drv.GetDesc())
}

// Resize grows or shrinks the memory to newSize, rounded up to a whole number of
// pages. It reports whether the engine could allocate the pages.
func (m *DeviceMemory) Resize(newSize uint64) bool {
	m.logger.Debug("DeviceMemory::Resize")
	return m.drv.Resize(newSize)
}

func (m *DeviceMemory) Capacity() uint64 {
	return m.drv.GetCapacity()
}

// IsCompatible reports whether obj can be bound to pages of this memory.
func (m *DeviceMemory) IsCompatible(obj DeviceObject) bool {
	return m.drv.IsCompatible(nativeDeviceObjectOf(obj))
}

// DataBlob is a byte buffer owned by the engine, such as compiler output or
// serialized pipeline cache data.
type DataBlob struct {
	object
	drv driver.DataBlob
}

func wrapDataBlob(native driver.DataBlob, logger *slog.Logger) *DataBlob {
	b := &DataBlob{drv: native}
	b.adopt(native, "DataBlob", logger)
	return b
}

func (b *DataBlob) Driver() driver.DataBlob {
	if b == nil {
		return nil
	}
	return b.drv
}

func (b *DataBlob) Ref() *DataBlob {
	return fromBorrowed(b.drv, b.logger, wrapDataBlob)
}

func (b *DataBlob) Size() uint64 {
	return b.drv.GetSize()
}

// Bytes views the blob's memory. The slice is valid until the blob is resized or
// released.
func (b *DataBlob) Bytes() []byte {
	return bytesAt(b.drv.GetDataPtr(0), b.drv.GetSize())
}

func (b *DataBlob) Resize(newSize uint64) {
	b.drv.Resize(newSize)
}

// String returns the blob's contents up to the first NUL byte.
func (b *DataBlob) String() string {
	if b == nil {
		return ""
	}
	return fixedString(bytesAt(b.drv.GetConstDataPtr(0), b.drv.GetSize()))
}

// CommandList holds commands recorded by a deferred context, ready for
// ImmediateDeviceContext.ExecuteCommandLists.
type CommandList struct {
	deviceObject
	drv driver.CommandList
}

func wrapCommandList(native driver.CommandList, logger *slog.Logger) *CommandList {
	l := &CommandList{drv: native}
	l.adoptDevice(native, "CommandList", logger)
	return l
}

func (l *CommandList) handle() driver.Handle {
	if l == nil {
		return 0
	}
	return l.drv.Handle()
}
