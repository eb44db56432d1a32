package driver

import "unsafe"

type ResourceMapping interface {
	Object
	AddResource(name *byte, obj DeviceObject, isUnique bool)
	AddResourceArray(name *byte, startIndex uint32, objects *Handle, numElements uint32, isUnique bool)
	RemoveResourceByName(name *byte, arrayIndex uint32)
	GetResource(name *byte, arrayIndex uint32) DeviceObject
	GetSize() uint64
}

type resourceMappingMethods struct {
	objectMethods
	AddResource          uintptr
	AddResourceArray     uintptr
	RemoveResourceByName uintptr
	GetResource          uintptr
	GetSize              uintptr
}

const (
	_ = unsafe.Sizeof(resourceMappingMethods{}) - 9*ptrSize
	_ = 9*ptrSize - unsafe.Sizeof(resourceMappingMethods{})
)

type resourceMapping struct {
	object
}

func ResourceMappingFromHandle(h Handle) ResourceMapping {
	if h == 0 {
		return nil
	}
	return resourceMapping{object{handle: h}}
}

func (m resourceMapping) methods() *resourceMappingMethods {
	return vtblOf[resourceMappingMethods](m.handle)
}

func (m resourceMapping) AddResource(name *byte, obj DeviceObject, isUnique bool) {
	call(m.methods().AddResource, uintptr(m.handle), ptr(name), handleOf(obj), boolArg(isUnique))
}

func (m resourceMapping) AddResourceArray(name *byte, startIndex uint32, objects *Handle, numElements uint32, isUnique bool) {
	call(m.methods().AddResourceArray, uintptr(m.handle), ptr(name), uintptr(startIndex), ptr(objects), uintptr(numElements), boolArg(isUnique))
}

func (m resourceMapping) RemoveResourceByName(name *byte, arrayIndex uint32) {
	call(m.methods().RemoveResourceByName, uintptr(m.handle), ptr(name), uintptr(arrayIndex))
}

func (m resourceMapping) GetResource(name *byte, arrayIndex uint32) DeviceObject {
	return DeviceObjectFromHandle(Handle(call(m.methods().GetResource, uintptr(m.handle), ptr(name), uintptr(arrayIndex))))
}

func (m resourceMapping) GetSize() uint64 {
	return uint64(call(m.methods().GetSize, uintptr(m.handle)))
}
