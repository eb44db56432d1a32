package driver

import "unsafe"

type Fence interface {
	DeviceObject
	GetDesc() *FenceDesc
	GetCompletedValue() uint64
	Signal(value uint64)
	Wait(value uint64)
}

type Query interface {
	DeviceObject
	GetDesc() *QueryDesc
	GetData(data unsafe.Pointer, size uint32, autoInvalidate bool) bool
	Invalidate()
}

type DeviceMemory interface {
	DeviceObject
	GetDesc() *DeviceMemoryDesc
	Resize(newSize uint64) bool
	GetCapacity() uint64
	IsCompatible(obj DeviceObject) bool
}

type fenceMethods struct {
	deviceObjectMethods
	GetCompletedValue uintptr
	Signal            uintptr
	Wait              uintptr
}

type queryMethods struct {
	deviceObjectMethods
	GetData    uintptr
	Invalidate uintptr
}

type deviceMemoryMethods struct {
	deviceObjectMethods
	Resize       uintptr
	GetCapacity  uintptr
	IsCompatible uintptr
}

const (
	_ = unsafe.Sizeof(fenceMethods{}) - 11*ptrSize
	_ = 11*ptrSize - unsafe.Sizeof(fenceMethods{})

	_ = unsafe.Sizeof(queryMethods{}) - 10*ptrSize
	_ = 10*ptrSize - unsafe.Sizeof(queryMethods{})

	_ = unsafe.Sizeof(deviceMemoryMethods{}) - 11*ptrSize
	_ = 11*ptrSize - unsafe.Sizeof(deviceMemoryMethods{})
)

type fence struct {
	deviceObject
}

func FenceFromHandle(h Handle) Fence {
	if h == 0 {
		return nil
	}
	return fence{deviceObject{object{handle: h}}}
}

func (f fence) methods() *fenceMethods {
	return vtblOf[fenceMethods](f.handle)
}

func (f fence) GetDesc() *FenceDesc {
	return (*FenceDesc)(f.desc())
}

func (f fence) GetCompletedValue() uint64 {
	return uint64(call(f.methods().GetCompletedValue, uintptr(f.handle)))
}

func (f fence) Signal(value uint64) {
	call(f.methods().Signal, uintptr(f.handle), uintptr(value))
}

func (f fence) Wait(value uint64) {
	call(f.methods().Wait, uintptr(f.handle), uintptr(value))
}

type query struct {
	deviceObject
}

func QueryFromHandle(h Handle) Query {
	if h == 0 {
		return nil
	}
	return query{deviceObject{object{handle: h}}}
}

func (q query) GetDesc() *QueryDesc {
	return (*QueryDesc)(q.desc())
}

func (q query) GetData(data unsafe.Pointer, size uint32, autoInvalidate bool) bool {
	return boolRet(call(vtblOf[queryMethods](q.handle).GetData, uintptr(q.handle), uintptr(data), uintptr(size), boolArg(autoInvalidate)))
}

func (q query) Invalidate() {
	call(vtblOf[queryMethods](q.handle).Invalidate, uintptr(q.handle))
}

type deviceMemory struct {
	deviceObject
}

func DeviceMemoryFromHandle(h Handle) DeviceMemory {
	if h == 0 {
		return nil
	}
	return deviceMemory{deviceObject{object{handle: h}}}
}

func (m deviceMemory) methods() *deviceMemoryMethods {
	return vtblOf[deviceMemoryMethods](m.handle)
}

func (m deviceMemory) GetDesc() *DeviceMemoryDesc {
	return (*DeviceMemoryDesc)(m.desc())
}

func (m deviceMemory) Resize(newSize uint64) bool {
	return boolRet(call(m.methods().Resize, uintptr(m.handle), uintptr(newSize)))
}

func (m deviceMemory) GetCapacity() uint64 {
	return uint64(call(m.methods().GetCapacity, uintptr(m.handle)))
}

func (m deviceMemory) IsCompatible(obj DeviceObject) bool {
	return boolRet(call(m.methods().IsCompatible, uintptr(m.handle), handleOf(obj)))
}
