package driver

import "unsafe"

type Buffer interface {
	DeviceObject
	GetDesc() *BufferDesc
	CreateView(desc *BufferViewDesc) BufferView
	GetDefaultView(viewType BufferViewType) BufferView
	GetNativeHandle() uint64
	SetState(state ResourceState)
	GetState() ResourceState
	GetMemoryProperties() MemoryProperties
	FlushMappedRange(startOffset, size uint64)
	InvalidateMappedRange(startOffset, size uint64)
}

type BufferView interface {
	DeviceObject
	GetDesc() *BufferViewDesc
	GetBuffer() Buffer
}

type bufferMethods struct {
	deviceObjectMethods
	CreateView            uintptr
	GetDefaultView        uintptr
	GetNativeHandle       uintptr
	SetState              uintptr
	GetState              uintptr
	GetMemoryProperties   uintptr
	FlushMappedRange      uintptr
	InvalidateMappedRange uintptr
	GetSparseProperties   uintptr
}

type bufferViewMethods struct {
	deviceObjectMethods
	GetBuffer uintptr
}

const (
	_ = unsafe.Sizeof(bufferMethods{}) - 17*ptrSize
	_ = 17*ptrSize - unsafe.Sizeof(bufferMethods{})

	_ = unsafe.Sizeof(bufferViewMethods{}) - 9*ptrSize
	_ = 9*ptrSize - unsafe.Sizeof(bufferViewMethods{})
)

type buffer struct {
	deviceObject
}

func BufferFromHandle(h Handle) Buffer {
	if h == 0 {
		return nil
	}
	return buffer{deviceObject{object{handle: h}}}
}

func (b buffer) methods() *bufferMethods {
	return vtblOf[bufferMethods](b.handle)
}

func (b buffer) GetDesc() *BufferDesc {
	return (*BufferDesc)(b.desc())
}

func (b buffer) CreateView(desc *BufferViewDesc) BufferView {
	var out Handle
	call(b.methods().CreateView, uintptr(b.handle), ptr(desc), ptr(&out))
	return BufferViewFromHandle(out)
}

func (b buffer) GetDefaultView(viewType BufferViewType) BufferView {
	return BufferViewFromHandle(Handle(call(b.methods().GetDefaultView, uintptr(b.handle), uintptr(viewType))))
}

func (b buffer) GetNativeHandle() uint64 {
	return uint64(call(b.methods().GetNativeHandle, uintptr(b.handle)))
}

func (b buffer) SetState(state ResourceState) {
	call(b.methods().SetState, uintptr(b.handle), uintptr(state))
}

func (b buffer) GetState() ResourceState {
	return ResourceState(call(b.methods().GetState, uintptr(b.handle)))
}

func (b buffer) GetMemoryProperties() MemoryProperties {
	return MemoryProperties(call(b.methods().GetMemoryProperties, uintptr(b.handle)))
}

func (b buffer) FlushMappedRange(startOffset, size uint64) {
	call(b.methods().FlushMappedRange, uintptr(b.handle), uintptr(startOffset), uintptr(size))
}

func (b buffer) InvalidateMappedRange(startOffset, size uint64) {
	call(b.methods().InvalidateMappedRange, uintptr(b.handle), uintptr(startOffset), uintptr(size))
}

type bufferView struct {
	deviceObject
}

func BufferViewFromHandle(h Handle) BufferView {
	if h == 0 {
		return nil
	}
	return bufferView{deviceObject{object{handle: h}}}
}

func (v bufferView) GetDesc() *BufferViewDesc {
	return (*BufferViewDesc)(v.desc())
}

func (v bufferView) GetBuffer() Buffer {
	return BufferFromHandle(Handle(call(vtblOf[bufferViewMethods](v.handle).GetBuffer, uintptr(v.handle))))
}
