package driver

import "unsafe"

// DataBlob is an engine-owned byte buffer.
type DataBlob interface {
	Object
	Resize(newSize uint64)
	GetSize() uint64
	GetDataPtr(offset uint64) unsafe.Pointer
	GetConstDataPtr(offset uint64) unsafe.Pointer
}

type PipelineStateCache interface {
	DeviceObject
	GetDesc() *PipelineStateCacheDesc
	GetData() DataBlob
}

type CommandList interface {
	DeviceObject
}

type ShaderSourceInputStreamFactory interface {
	Object
	CreateInputStream(name *byte) Object
}

type dataBlobMethods struct {
	objectMethods
	Resize          uintptr
	GetSize         uintptr
	GetDataPtr      uintptr
	GetConstDataPtr uintptr
}

type pipelineStateCacheMethods struct {
	deviceObjectMethods
	GetData uintptr
}

type shaderSourceInputStreamFactoryMethods struct {
	objectMethods
	CreateInputStream  uintptr
	CreateInputStream2 uintptr
}

const (
	_ = unsafe.Sizeof(dataBlobMethods{}) - 8*ptrSize
	_ = 8*ptrSize - unsafe.Sizeof(dataBlobMethods{})

	_ = unsafe.Sizeof(pipelineStateCacheMethods{}) - 9*ptrSize
	_ = 9*ptrSize - unsafe.Sizeof(pipelineStateCacheMethods{})

	_ = unsafe.Sizeof(shaderSourceInputStreamFactoryMethods{}) - 6*ptrSize
	_ = 6*ptrSize - unsafe.Sizeof(shaderSourceInputStreamFactoryMethods{})
)

type dataBlob struct {
	object
}

func DataBlobFromHandle(h Handle) DataBlob {
	if h == 0 {
		return nil
	}
	return dataBlob{object{handle: h}}
}

func (b dataBlob) methods() *dataBlobMethods {
	return vtblOf[dataBlobMethods](b.handle)
}

func (b dataBlob) Resize(newSize uint64) {
	call(b.methods().Resize, uintptr(b.handle), uintptr(newSize))
}

func (b dataBlob) GetSize() uint64 {
	return uint64(call(b.methods().GetSize, uintptr(b.handle)))
}

func (b dataBlob) GetDataPtr(offset uint64) unsafe.Pointer {
	return unsafe.Pointer(call(b.methods().GetDataPtr, uintptr(b.handle), uintptr(offset)))
}

func (b dataBlob) GetConstDataPtr(offset uint64) unsafe.Pointer {
	return unsafe.Pointer(call(b.methods().GetConstDataPtr, uintptr(b.handle), uintptr(offset)))
}

type pipelineStateCache struct {
	deviceObject
}

func PipelineStateCacheFromHandle(h Handle) PipelineStateCache {
	if h == 0 {
		return nil
	}
	return pipelineStateCache{deviceObject{object{handle: h}}}
}

func (c pipelineStateCache) GetDesc() *PipelineStateCacheDesc {
	return (*PipelineStateCacheDesc)(c.desc())
}

func (c pipelineStateCache) GetData() DataBlob {
	var out Handle
	call(vtblOf[pipelineStateCacheMethods](c.handle).GetData, uintptr(c.handle), ptr(&out))
	return DataBlobFromHandle(out)
}

type commandList struct {
	deviceObject
}

func CommandListFromHandle(h Handle) CommandList {
	if h == 0 {
		return nil
	}
	return commandList{deviceObject{object{handle: h}}}
}

type shaderSourceInputStreamFactory struct {
	object
}

func ShaderSourceInputStreamFactoryFromHandle(h Handle) ShaderSourceInputStreamFactory {
	if h == 0 {
		return nil
	}
	return shaderSourceInputStreamFactory{object{handle: h}}
}

func (f shaderSourceInputStreamFactory) CreateInputStream(name *byte) Object {
	var out Handle
	call(vtblOf[shaderSourceInputStreamFactoryMethods](f.handle).CreateInputStream, uintptr(f.handle), ptr(name), ptr(&out))
	return ObjectFromHandle(out)
}
