package driver

import "unsafe"

type Shader interface {
	DeviceObject
	GetDesc() *ShaderDesc
	GetResourceCount() uint32
	GetResourceDesc(index uint32) ShaderResourceDesc
	GetConstantBufferDesc(index uint32) *ShaderCodeBufferDesc
	GetBytecode() (unsafe.Pointer, uint64)
	GetStatus(waitForCompletion bool) ShaderStatus
}

// ShaderResourceVariable is a named binding slot of a pipeline or resource binding.
type ShaderResourceVariable interface {
	Object
	Set(obj DeviceObject, flags SetShaderResourceFlags)
	SetArray(objects *Handle, firstElement, numElements uint32, flags SetShaderResourceFlags)
	SetBufferRange(obj DeviceObject, offset, size uint64, arrayIndex uint32, flags SetShaderResourceFlags)
	SetBufferOffset(offset uint32, arrayIndex uint32)
	GetType() ShaderResourceVariableType
	GetResourceDesc() ShaderResourceDesc
	GetIndex() uint32
	Get(arrayIndex uint32) DeviceObject
}

type shaderMethods struct {
	deviceObjectMethods
	GetResourceCount      uintptr
	GetResourceDesc       uintptr
	GetConstantBufferDesc uintptr
	GetBytecode           uintptr
	GetStatus             uintptr
}

type shaderResourceVariableMethods struct {
	objectMethods
	Set             uintptr
	SetArray        uintptr
	SetBufferRange  uintptr
	SetBufferOffset uintptr
	GetType         uintptr
	GetResourceDesc uintptr
	GetIndex        uintptr
	Get             uintptr
}

const (
	_ = unsafe.Sizeof(shaderMethods{}) - 13*ptrSize
	_ = 13*ptrSize - unsafe.Sizeof(shaderMethods{})

	_ = unsafe.Sizeof(shaderResourceVariableMethods{}) - 12*ptrSize
	_ = 12*ptrSize - unsafe.Sizeof(shaderResourceVariableMethods{})
)

type shader struct {
	deviceObject
}

func ShaderFromHandle(h Handle) Shader {
	if h == 0 {
		return nil
	}
	return shader{deviceObject{object{handle: h}}}
}

func (s shader) methods() *shaderMethods {
	return vtblOf[shaderMethods](s.handle)
}

func (s shader) GetDesc() *ShaderDesc {
	return (*ShaderDesc)(s.desc())
}

func (s shader) GetResourceCount() uint32 {
	return uint32(call(s.methods().GetResourceCount, uintptr(s.handle)))
}

func (s shader) GetResourceDesc(index uint32) ShaderResourceDesc {
	var out ShaderResourceDesc
	call(s.methods().GetResourceDesc, uintptr(s.handle), uintptr(index), ptr(&out))
	return out
}

func (s shader) GetConstantBufferDesc(index uint32) *ShaderCodeBufferDesc {
	return (*ShaderCodeBufferDesc)(unsafe.Pointer(call(s.methods().GetConstantBufferDesc, uintptr(s.handle), uintptr(index))))
}

func (s shader) GetBytecode() (unsafe.Pointer, uint64) {
	var bytecode unsafe.Pointer
	var size uint64
	call(s.methods().GetBytecode, uintptr(s.handle), ptr(&bytecode), ptr(&size))
	return bytecode, size
}

func (s shader) GetStatus(waitForCompletion bool) ShaderStatus {
	return ShaderStatus(call(s.methods().GetStatus, uintptr(s.handle), boolArg(waitForCompletion)))
}

type shaderResourceVariable struct {
	object
}

func ShaderResourceVariableFromHandle(h Handle) ShaderResourceVariable {
	if h == 0 {
		return nil
	}
	return shaderResourceVariable{object{handle: h}}
}

func (v shaderResourceVariable) methods() *shaderResourceVariableMethods {
	return vtblOf[shaderResourceVariableMethods](v.handle)
}

func (v shaderResourceVariable) Set(obj DeviceObject, flags SetShaderResourceFlags) {
	call(v.methods().Set, uintptr(v.handle), handleOf(obj), uintptr(flags))
}

func (v shaderResourceVariable) SetArray(objects *Handle, firstElement, numElements uint32, flags SetShaderResourceFlags) {
	call(v.methods().SetArray, uintptr(v.handle), ptr(objects), uintptr(firstElement), uintptr(numElements), uintptr(flags))
}

func (v shaderResourceVariable) SetBufferRange(obj DeviceObject, offset, size uint64, arrayIndex uint32, flags SetShaderResourceFlags) {
	call(v.methods().SetBufferRange, uintptr(v.handle), handleOf(obj), uintptr(offset), uintptr(size), uintptr(arrayIndex), uintptr(flags))
}

func (v shaderResourceVariable) SetBufferOffset(offset uint32, arrayIndex uint32) {
	call(v.methods().SetBufferOffset, uintptr(v.handle), uintptr(offset), uintptr(arrayIndex))
}

func (v shaderResourceVariable) GetType() ShaderResourceVariableType {
	return ShaderResourceVariableType(call(v.methods().GetType, uintptr(v.handle)))
}

func (v shaderResourceVariable) GetResourceDesc() ShaderResourceDesc {
	var out ShaderResourceDesc
	call(v.methods().GetResourceDesc, uintptr(v.handle), ptr(&out))
	return out
}

func (v shaderResourceVariable) GetIndex() uint32 {
	return uint32(call(v.methods().GetIndex, uintptr(v.handle)))
}

func (v shaderResourceVariable) Get(arrayIndex uint32) DeviceObject {
	return DeviceObjectFromHandle(Handle(call(v.methods().Get, uintptr(v.handle), uintptr(arrayIndex))))
}
