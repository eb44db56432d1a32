package driver

import "unsafe"

type BottomLevelAS interface {
	DeviceObject
	GetDesc() *BottomLevelASDesc
	GetGeometryDescIndex(name *byte) uint32
	GetGeometryIndex(name *byte) uint32
	GetActualGeometryCount() uint32
	GetScratchBufferSizes() ScratchBufferSizes
	GetNativeHandle() uint64
	SetState(state ResourceState)
	GetState() ResourceState
}

type TopLevelAS interface {
	DeviceObject
	GetDesc() *TopLevelASDesc
	GetInstanceDesc(name *byte) TLASInstanceDesc
	GetBuildInfo() TLASBuildInfo
	GetScratchBufferSizes() ScratchBufferSizes
	GetNativeHandle() uint64
	SetState(state ResourceState)
	GetState() ResourceState
}

type ShaderBindingTable interface {
	DeviceObject
	GetDesc() *ShaderBindingTableDesc
	Verify(flags VerifySBTFlags) bool
	Reset(desc *ShaderBindingTableDesc)
	ResetHitGroups()
	BindRayGenShader(shaderGroupName *byte, data unsafe.Pointer, dataSize uint32)
	BindMissShader(shaderGroupName *byte, missIndex uint32, data unsafe.Pointer, dataSize uint32)
	BindHitGroupForGeometry(tlas TopLevelAS, instanceName, geometryName *byte, rayOffsetInHitGroupIndex uint32, shaderGroupName *byte, data unsafe.Pointer, dataSize uint32)
	BindHitGroupForTLAS(tlas TopLevelAS, rayOffsetInHitGroupIndex uint32, shaderGroupName *byte, data unsafe.Pointer, dataSize uint32)
	BindHitGroupForInstance(tlas TopLevelAS, instanceName *byte, rayOffsetInHitGroupIndex uint32, shaderGroupName *byte, data unsafe.Pointer, dataSize uint32)
	BindHitGroupByIndex(bindingIndex uint32, shaderGroupName *byte, data unsafe.Pointer, dataSize uint32)
	BindCallableShader(shaderGroupName *byte, callableIndex uint32, data unsafe.Pointer, dataSize uint32)
}

type bottomLevelASMethods struct {
	deviceObjectMethods
	GetGeometryDescIndex   uintptr
	GetGeometryIndex       uintptr
	GetActualGeometryCount uintptr
	GetScratchBufferSizes  uintptr
	GetNativeHandle        uintptr
	SetState               uintptr
	GetState               uintptr
}

type topLevelASMethods struct {
	deviceObjectMethods
	GetInstanceDesc       uintptr
	GetBuildInfo          uintptr
	GetScratchBufferSizes uintptr
	GetNativeHandle       uintptr
	SetState              uintptr
	GetState              uintptr
}

type shaderBindingTableMethods struct {
	deviceObjectMethods
	Verify                  uintptr
	Reset                   uintptr
	ResetHitGroups          uintptr
	BindRayGenShader        uintptr
	BindMissShader          uintptr
	BindHitGroupForGeometry uintptr
	BindHitGroupByIndex     uintptr
	BindHitGroupForInstance uintptr
	BindHitGroupForTLAS     uintptr
	BindCallableShader      uintptr
}

const (
	_ = unsafe.Sizeof(bottomLevelASMethods{}) - 15*ptrSize
	_ = 15*ptrSize - unsafe.Sizeof(bottomLevelASMethods{})

	_ = unsafe.Sizeof(topLevelASMethods{}) - 14*ptrSize
	_ = 14*ptrSize - unsafe.Sizeof(topLevelASMethods{})

	_ = unsafe.Sizeof(shaderBindingTableMethods{}) - 18*ptrSize
	_ = 18*ptrSize - unsafe.Sizeof(shaderBindingTableMethods{})
)

type bottomLevelAS struct {
	deviceObject
}

func BottomLevelASFromHandle(h Handle) BottomLevelAS {
	if h == 0 {
		return nil
	}
	return bottomLevelAS{deviceObject{object{handle: h}}}
}

func (b bottomLevelAS) methods() *bottomLevelASMethods {
	return vtblOf[bottomLevelASMethods](b.handle)
}

func (b bottomLevelAS) GetDesc() *BottomLevelASDesc {
	return (*BottomLevelASDesc)(b.desc())
}

func (b bottomLevelAS) GetGeometryDescIndex(name *byte) uint32 {
	return uint32(call(b.methods().GetGeometryDescIndex, uintptr(b.handle), ptr(name)))
}

func (b bottomLevelAS) GetGeometryIndex(name *byte) uint32 {
	return uint32(call(b.methods().GetGeometryIndex, uintptr(b.handle), ptr(name)))
}

func (b bottomLevelAS) GetActualGeometryCount() uint32 {
	return uint32(call(b.methods().GetActualGeometryCount, uintptr(b.handle)))
}

func (b bottomLevelAS) GetScratchBufferSizes() ScratchBufferSizes {
	return callScratchBufferSizes(b.methods().GetScratchBufferSizes, b.handle)
}

func (b bottomLevelAS) GetNativeHandle() uint64 {
	return uint64(call(b.methods().GetNativeHandle, uintptr(b.handle)))
}

func (b bottomLevelAS) SetState(state ResourceState) {
	call(b.methods().SetState, uintptr(b.handle), uintptr(state))
}

func (b bottomLevelAS) GetState() ResourceState {
	return ResourceState(call(b.methods().GetState, uintptr(b.handle)))
}

type topLevelAS struct {
	deviceObject
}

func TopLevelASFromHandle(h Handle) TopLevelAS {
	if h == 0 {
		return nil
	}
	return topLevelAS{deviceObject{object{handle: h}}}
}

func (t topLevelAS) methods() *topLevelASMethods {
	return vtblOf[topLevelASMethods](t.handle)
}

func (t topLevelAS) GetDesc() *TopLevelASDesc {
	return (*TopLevelASDesc)(t.desc())
}

func (t topLevelAS) GetInstanceDesc(name *byte) TLASInstanceDesc {
	return callTLASInstanceDesc(t.methods().GetInstanceDesc, t.handle, name)
}

func (t topLevelAS) GetBuildInfo() TLASBuildInfo {
	return callTLASBuildInfo(t.methods().GetBuildInfo, t.handle)
}

func (t topLevelAS) GetScratchBufferSizes() ScratchBufferSizes {
	return callScratchBufferSizes(t.methods().GetScratchBufferSizes, t.handle)
}

func (t topLevelAS) GetNativeHandle() uint64 {
	return uint64(call(t.methods().GetNativeHandle, uintptr(t.handle)))
}

func (t topLevelAS) SetState(state ResourceState) {
	call(t.methods().SetState, uintptr(t.handle), uintptr(state))
}

func (t topLevelAS) GetState() ResourceState {
	return ResourceState(call(t.methods().GetState, uintptr(t.handle)))
}

type shaderBindingTable struct {
	deviceObject
}

func ShaderBindingTableFromHandle(h Handle) ShaderBindingTable {
	if h == 0 {
		return nil
	}
	return shaderBindingTable{deviceObject{object{handle: h}}}
}

func (s shaderBindingTable) methods() *shaderBindingTableMethods {
	return vtblOf[shaderBindingTableMethods](s.handle)
}

func (s shaderBindingTable) GetDesc() *ShaderBindingTableDesc {
	return (*ShaderBindingTableDesc)(s.desc())
}

func (s shaderBindingTable) Verify(flags VerifySBTFlags) bool {
	return boolRet(call(s.methods().Verify, uintptr(s.handle), uintptr(flags)))
}

func (s shaderBindingTable) Reset(desc *ShaderBindingTableDesc) {
	call(s.methods().Reset, uintptr(s.handle), ptr(desc))
}

func (s shaderBindingTable) ResetHitGroups() {
	call(s.methods().ResetHitGroups, uintptr(s.handle))
}

func (s shaderBindingTable) BindRayGenShader(shaderGroupName *byte, data unsafe.Pointer, dataSize uint32) {
	call(s.methods().BindRayGenShader, uintptr(s.handle), ptr(shaderGroupName), uintptr(data), uintptr(dataSize))
}

func (s shaderBindingTable) BindMissShader(shaderGroupName *byte, missIndex uint32, data unsafe.Pointer, dataSize uint32) {
	call(s.methods().BindMissShader, uintptr(s.handle), ptr(shaderGroupName), uintptr(missIndex), uintptr(data), uintptr(dataSize))
}

func (s shaderBindingTable) BindHitGroupForGeometry(tlas TopLevelAS, instanceName, geometryName *byte, rayOffsetInHitGroupIndex uint32, shaderGroupName *byte, data unsafe.Pointer, dataSize uint32) {
	call(s.methods().BindHitGroupForGeometry, uintptr(s.handle), handleOf(tlas), ptr(instanceName), ptr(geometryName),
		uintptr(rayOffsetInHitGroupIndex), ptr(shaderGroupName), uintptr(data), uintptr(dataSize))
}

func (s shaderBindingTable) BindHitGroupForTLAS(tlas TopLevelAS, rayOffsetInHitGroupIndex uint32, shaderGroupName *byte, data unsafe.Pointer, dataSize uint32) {
	call(s.methods().BindHitGroupForTLAS, uintptr(s.handle), handleOf(tlas), uintptr(rayOffsetInHitGroupIndex), ptr(shaderGroupName), uintptr(data), uintptr(dataSize))
}

func (s shaderBindingTable) BindHitGroupForInstance(tlas TopLevelAS, instanceName *byte, rayOffsetInHitGroupIndex uint32, shaderGroupName *byte, data unsafe.Pointer, dataSize uint32) {
	call(s.methods().BindHitGroupForInstance, uintptr(s.handle), handleOf(tlas), ptr(instanceName), uintptr(rayOffsetInHitGroupIndex),
		ptr(shaderGroupName), uintptr(data), uintptr(dataSize))
}

func (s shaderBindingTable) BindHitGroupByIndex(bindingIndex uint32, shaderGroupName *byte, data unsafe.Pointer, dataSize uint32) {
	call(s.methods().BindHitGroupByIndex, uintptr(s.handle), uintptr(bindingIndex), ptr(shaderGroupName), uintptr(data), uintptr(dataSize))
}

func (s shaderBindingTable) BindCallableShader(shaderGroupName *byte, callableIndex uint32, data unsafe.Pointer, dataSize uint32) {
	call(s.methods().BindCallableShader, uintptr(s.handle), ptr(shaderGroupName), uintptr(callableIndex), uintptr(data), uintptr(dataSize))
}
