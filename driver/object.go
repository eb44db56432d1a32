package driver

import (
	"runtime"
	"unsafe"
)

// Object is the root of every engine interface.
type Object interface {
	Handle() Handle
	QueryInterface(iid *InterfaceID) Object
	AddRef() int32
	Release() int32
	GetReferenceCounters() Handle
}

// DeviceObject is implemented by every object created by a render device.
type DeviceObject interface {
	Object
	GetDeviceObjectAttribs() *DeviceObjectAttribs
	GetUniqueID() int32
	SetUserData(data Object)
	GetUserData() Object
}

type objectMethods struct {
	QueryInterface       uintptr
	AddRef               uintptr
	Release              uintptr
	GetReferenceCounters uintptr
}

type deviceObjectMethods struct {
	objectMethods
	GetDesc     uintptr
	GetUniqueID uintptr
	SetUserData uintptr
	GetUserData uintptr
}

const (
	_ = unsafe.Sizeof(objectMethods{}) - 4*ptrSize
	_ = 4*ptrSize - unsafe.Sizeof(objectMethods{})

	_ = unsafe.Sizeof(deviceObjectMethods{}) - 8*ptrSize
	_ = 8*ptrSize - unsafe.Sizeof(deviceObjectMethods{})
)

type object struct {
	handle Handle
}

func (o object) Handle() Handle {
	return o.handle
}

func (o object) QueryInterface(iid *InterfaceID) Object {
	var out Handle
	call(vtblOf[objectMethods](o.handle).QueryInterface, uintptr(o.handle), ptr(iid), ptr(&out))
	runtime.KeepAlive(iid)
	return ObjectFromHandle(out)
}

func (o object) AddRef() int32 {
	return int32(call(vtblOf[objectMethods](o.handle).AddRef, uintptr(o.handle)))
}

func (o object) Release() int32 {
	return int32(call(vtblOf[objectMethods](o.handle).Release, uintptr(o.handle)))
}

func (o object) GetReferenceCounters() Handle {
	return Handle(call(vtblOf[objectMethods](o.handle).GetReferenceCounters, uintptr(o.handle)))
}

// ObjectFromHandle wraps a native object pointer. A zero handle yields nil.
func ObjectFromHandle(h Handle) Object {
	if h == 0 {
		return nil
	}
	return object{handle: h}
}

type deviceObject struct {
	object
}

func (o deviceObject) deviceObjectMethods() *deviceObjectMethods {
	return vtblOf[deviceObjectMethods](o.handle)
}

// desc returns the object's description. Every derived description starts with
// DeviceObjectAttribs, so the result is reinterpreted by the concrete wrapper.
func (o deviceObject) desc() unsafe.Pointer {
	return unsafe.Pointer(call(o.deviceObjectMethods().GetDesc, uintptr(o.handle)))
}

func (o deviceObject) GetUniqueID() int32 {
	return int32(call(o.deviceObjectMethods().GetUniqueID, uintptr(o.handle)))
}

func (o deviceObject) SetUserData(data Object) {
	call(o.deviceObjectMethods().SetUserData, uintptr(o.handle), handleOf(data))
}

func (o deviceObject) GetUserData() Object {
	return ObjectFromHandle(Handle(call(o.deviceObjectMethods().GetUserData, uintptr(o.handle))))
}

func (o deviceObject) GetDeviceObjectAttribs() *DeviceObjectAttribs {
	return (*DeviceObjectAttribs)(o.desc())
}

func DeviceObjectFromHandle(h Handle) DeviceObject {
	if h == 0 {
		return nil
	}
	return deviceObject{object{handle: h}}
}

// Port reinterprets o as a backend-specific interface. The backend method table must
// extend the generic one, which every backend wrapper asserts against its base table
// at compile time. No reference is added: the result shares o's reference. Values that
// already implement T are returned as is.
func Port[T Object](o Object, as func(Handle) T) T {
	if o == nil {
		var zero T
		return zero
	}
	if ported, ok := o.(T); ok {
		return ported
	}
	return as(o.Handle())
}
