package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
	"golang.org/x/exp/slog"
)

// Buffer is a linear GPU resource created by RenderDevice.CreateBuffer.
type Buffer struct {
	deviceObject
	drv driver.Buffer
}

func wrapBuffer(native driver.Buffer, logger *slog.Logger) *Buffer {
	b := &Buffer{drv: native}
	b.adoptDevice(native, "Buffer", logger)
	return b
}

// BufferFromDriver wraps a driver buffer, taking over the reference the caller holds.
func BufferFromDriver(native driver.Buffer, logger *slog.Logger) *Buffer {
	return fromOwned(native, loggerOrDiscard(logger), wrapBuffer)
}

func (b *Buffer) handle() driver.Handle {
	if b == nil {
		return 0
	}
	return b.drv.Handle()
}

// Driver returns the driver interface of the buffer, or nil for a nil buffer.
func (b *Buffer) Driver() driver.Buffer {
	if b == nil {
		return nil
	}
	return b.drv
}

// Ref returns a second wrapper holding its own reference to the same buffer.
func (b *Buffer) Ref() *Buffer {
	return fromBorrowed(b.drv, b.logger, wrapBuffer)
}

func (b *Buffer) Desc() BufferDesc {
	return bufferDescFromNative(b.drv.GetDesc())
}

// CreateView creates a new view of the buffer. Views of formatted buffers need
// BufferViewDesc.Format to be set.
func (b *Buffer) CreateView(desc BufferViewDesc) (*BufferView, error) {
	b.logger.Debug("Buffer::CreateView")

	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	view := fromOwned(b.drv.CreateView(&nativeDesc), b.logger, wrapBufferView)
	if view == nil {
		return nil, creationFailed("BufferView", desc.Name)
	}
	return view, nil
}

// DefaultView returns a new reference to the buffer's default view of the given type,
// or nil when the buffer has none.
func (b *Buffer) DefaultView(viewType BufferViewType) *BufferView {
	return fromBorrowed(b.drv.GetDefaultView(viewType.native()), b.logger, wrapBufferView)
}

// NativeHandle is the backend handle of the buffer: a VkBuffer, an ID3D12Resource
// pointer, an ID3D11Buffer pointer or a GL buffer name.
func (b *Buffer) NativeHandle() uint64 {
	return b.drv.GetNativeHandle()
}

func (b *Buffer) SetState(state ResourceState) {
	b.drv.SetState(state.native())
}

func (b *Buffer) State() ResourceState {
	return ResourceState(b.drv.GetState())
}

func (b *Buffer) MemoryProperties() MemoryProperties {
	return MemoryProperties(b.drv.GetMemoryProperties())
}

// FlushMappedRange makes CPU writes to a mapped non-coherent buffer visible to the GPU.
func (b *Buffer) FlushMappedRange(startOffset, size uint64) {
	b.drv.FlushMappedRange(startOffset, size)
}

// InvalidateMappedRange makes GPU writes to a non-coherent buffer visible to the CPU.
func (b *Buffer) InvalidateMappedRange(startOffset, size uint64) {
	b.drv.InvalidateMappedRange(startOffset, size)
}

// BufferView is a typed or raw view of a Buffer.
type BufferView struct {
	deviceObject
	drv driver.BufferView
}

func wrapBufferView(native driver.BufferView, logger *slog.Logger) *BufferView {
	v := &BufferView{drv: native}
	v.adoptDevice(native, "BufferView", logger)
	return v
}

func (v *BufferView) handle() driver.Handle {
	if v == nil {
		return 0
	}
	return v.drv.Handle()
}

func (v *BufferView) Driver() driver.BufferView {
	if v == nil {
		return nil
	}
	return v.drv
}

func (v *BufferView) Ref() *BufferView {
	return fromBorrowed(v.drv, v.logger, wrapBufferView)
}

func (v *BufferView) Desc() BufferViewDesc {
	return bufferViewDescFromNative(v.drv.GetDesc())
}

// Buffer returns a new reference to the viewed buffer.
func (v *BufferView) Buffer() *Buffer {
	return fromBorrowed(v.drv.GetBuffer(), v.logger, wrapBuffer)
}
