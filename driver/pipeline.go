package driver

import "unsafe"

type PipelineResourceSignature interface {
	DeviceObject
	GetDesc() *PipelineResourceSignatureDesc
	CreateShaderResourceBinding(initStaticResources bool) ShaderResourceBinding
	BindStaticResources(shaderStages ShaderType, mapping ResourceMapping, flags BindShaderResourcesFlags)
	GetStaticVariableByName(shaderType ShaderType, name *byte) ShaderResourceVariable
	GetStaticVariableByIndex(shaderType ShaderType, index uint32) ShaderResourceVariable
	GetStaticVariableCount(shaderType ShaderType) uint32
	InitializeStaticSRBResources(srb ShaderResourceBinding)
	CopyStaticResources(dst PipelineResourceSignature)
	IsCompatibleWith(other PipelineResourceSignature) bool
}

type PipelineState interface {
	DeviceObject
	GetDesc() *PipelineStateDesc
	GetGraphicsPipelineDesc() *GraphicsPipelineDesc
	GetRayTracingPipelineDesc() *RayTracingPipelineDesc
	GetTilePipelineDesc() *TilePipelineDesc
	BindStaticResources(shaderStages ShaderType, mapping ResourceMapping, flags BindShaderResourcesFlags)
	GetStaticVariableCount(shaderType ShaderType) uint32
	GetStaticVariableByName(shaderType ShaderType, name *byte) ShaderResourceVariable
	GetStaticVariableByIndex(shaderType ShaderType, index uint32) ShaderResourceVariable
	CreateShaderResourceBinding(initStaticResources bool) ShaderResourceBinding
	InitializeStaticSRBResources(srb ShaderResourceBinding)
	CopyStaticResources(dst PipelineState)
	IsCompatibleWith(other PipelineState) bool
	GetResourceSignatureCount() uint32
	GetResourceSignature(index uint32) PipelineResourceSignature
	GetStatus(waitForCompletion bool) PipelineStateStatus
}

type ShaderResourceBinding interface {
	Object
	GetPipelineResourceSignature() PipelineResourceSignature
	BindResources(shaderStages ShaderType, mapping ResourceMapping, flags BindShaderResourcesFlags)
	CheckResources(shaderStages ShaderType, mapping ResourceMapping, flags BindShaderResourcesFlags) ShaderResourceVariableTypeFlags
	GetVariableByName(stage ShaderType, name *byte) ShaderResourceVariable
	GetVariableCount(stage ShaderType) uint32
	GetVariableByIndex(stage ShaderType, index uint32) ShaderResourceVariable
	StaticResourcesInitialized() bool
}

type RenderPass interface {
	DeviceObject
	GetDesc() *RenderPassDesc
}

type Framebuffer interface {
	DeviceObject
	GetDesc() *FramebufferDesc
}

type pipelineResourceSignatureMethods struct {
	deviceObjectMethods
	CreateShaderResourceBinding  uintptr
	BindStaticResources          uintptr
	GetStaticVariableByName      uintptr
	GetStaticVariableByIndex     uintptr
	GetStaticVariableCount       uintptr
	InitializeStaticSRBResources uintptr
	CopyStaticResources          uintptr
	IsCompatibleWith             uintptr
}

type pipelineStateMethods struct {
	deviceObjectMethods
	GetGraphicsPipelineDesc      uintptr
	GetRayTracingPipelineDesc    uintptr
	GetTilePipelineDesc          uintptr
	BindStaticResources          uintptr
	GetStaticVariableCount       uintptr
	GetStaticVariableByName      uintptr
	GetStaticVariableByIndex     uintptr
	CreateShaderResourceBinding  uintptr
	InitializeStaticSRBResources uintptr
	CopyStaticResources          uintptr
	IsCompatibleWith             uintptr
	GetResourceSignatureCount    uintptr
	GetResourceSignature         uintptr
	GetStatus                    uintptr
}

type shaderResourceBindingMethods struct {
	objectMethods
	GetPipelineResourceSignature uintptr
	BindResources                uintptr
	CheckResources               uintptr
	GetVariableByName            uintptr
	GetVariableCount             uintptr
	GetVariableByIndex           uintptr
	StaticResourcesInitialized   uintptr
}

const (
	_ = unsafe.Sizeof(pipelineResourceSignatureMethods{}) - 16*ptrSize
	_ = 16*ptrSize - unsafe.Sizeof(pipelineResourceSignatureMethods{})

	_ = unsafe.Sizeof(pipelineStateMethods{}) - 22*ptrSize
	_ = 22*ptrSize - unsafe.Sizeof(pipelineStateMethods{})

	_ = unsafe.Sizeof(shaderResourceBindingMethods{}) - 11*ptrSize
	_ = 11*ptrSize - unsafe.Sizeof(shaderResourceBindingMethods{})
)

type pipelineResourceSignature struct {
	deviceObject
}

func PipelineResourceSignatureFromHandle(h Handle) PipelineResourceSignature {
	if h == 0 {
		return nil
	}
	return pipelineResourceSignature{deviceObject{object{handle: h}}}
}

func (s pipelineResourceSignature) methods() *pipelineResourceSignatureMethods {
	return vtblOf[pipelineResourceSignatureMethods](s.handle)
}

func (s pipelineResourceSignature) GetDesc() *PipelineResourceSignatureDesc {
	return (*PipelineResourceSignatureDesc)(s.desc())
}

func (s pipelineResourceSignature) CreateShaderResourceBinding(initStaticResources bool) ShaderResourceBinding {
	var out Handle
	call(s.methods().CreateShaderResourceBinding, uintptr(s.handle), ptr(&out), boolArg(initStaticResources))
	return ShaderResourceBindingFromHandle(out)
}

func (s pipelineResourceSignature) BindStaticResources(shaderStages ShaderType, mapping ResourceMapping, flags BindShaderResourcesFlags) {
	call(s.methods().BindStaticResources, uintptr(s.handle), uintptr(shaderStages), handleOf(mapping), uintptr(flags))
}

func (s pipelineResourceSignature) GetStaticVariableByName(shaderType ShaderType, name *byte) ShaderResourceVariable {
	return ShaderResourceVariableFromHandle(Handle(call(s.methods().GetStaticVariableByName, uintptr(s.handle), uintptr(shaderType), ptr(name))))
}

func (s pipelineResourceSignature) GetStaticVariableByIndex(shaderType ShaderType, index uint32) ShaderResourceVariable {
	return ShaderResourceVariableFromHandle(Handle(call(s.methods().GetStaticVariableByIndex, uintptr(s.handle), uintptr(shaderType), uintptr(index))))
}

func (s pipelineResourceSignature) GetStaticVariableCount(shaderType ShaderType) uint32 {
	return uint32(call(s.methods().GetStaticVariableCount, uintptr(s.handle), uintptr(shaderType)))
}

func (s pipelineResourceSignature) InitializeStaticSRBResources(srb ShaderResourceBinding) {
	call(s.methods().InitializeStaticSRBResources, uintptr(s.handle), handleOf(srb))
}

func (s pipelineResourceSignature) CopyStaticResources(dst PipelineResourceSignature) {
	call(s.methods().CopyStaticResources, uintptr(s.handle), handleOf(dst))
}

func (s pipelineResourceSignature) IsCompatibleWith(other PipelineResourceSignature) bool {
	return boolRet(call(s.methods().IsCompatibleWith, uintptr(s.handle), handleOf(other)))
}

type pipelineState struct {
	deviceObject
}

func PipelineStateFromHandle(h Handle) PipelineState {
	if h == 0 {
		return nil
	}
	return pipelineState{deviceObject{object{handle: h}}}
}

func (p pipelineState) methods() *pipelineStateMethods {
	return vtblOf[pipelineStateMethods](p.handle)
}

func (p pipelineState) GetDesc() *PipelineStateDesc {
	return (*PipelineStateDesc)(p.desc())
}

func (p pipelineState) GetGraphicsPipelineDesc() *GraphicsPipelineDesc {
	return (*GraphicsPipelineDesc)(unsafe.Pointer(call(p.methods().GetGraphicsPipelineDesc, uintptr(p.handle))))
}

func (p pipelineState) GetRayTracingPipelineDesc() *RayTracingPipelineDesc {
	return (*RayTracingPipelineDesc)(unsafe.Pointer(call(p.methods().GetRayTracingPipelineDesc, uintptr(p.handle))))
}

func (p pipelineState) GetTilePipelineDesc() *TilePipelineDesc {
	return (*TilePipelineDesc)(unsafe.Pointer(call(p.methods().GetTilePipelineDesc, uintptr(p.handle))))
}

func (p pipelineState) BindStaticResources(shaderStages ShaderType, mapping ResourceMapping, flags BindShaderResourcesFlags) {
	call(p.methods().BindStaticResources, uintptr(p.handle), uintptr(shaderStages), handleOf(mapping), uintptr(flags))
}

func (p pipelineState) GetStaticVariableCount(shaderType ShaderType) uint32 {
	return uint32(call(p.methods().GetStaticVariableCount, uintptr(p.handle), uintptr(shaderType)))
}

func (p pipelineState) GetStaticVariableByName(shaderType ShaderType, name *byte) ShaderResourceVariable {
	return ShaderResourceVariableFromHandle(Handle(call(p.methods().GetStaticVariableByName, uintptr(p.handle), uintptr(shaderType), ptr(name))))
}

func (p pipelineState) GetStaticVariableByIndex(shaderType ShaderType, index uint32) ShaderResourceVariable {
	return ShaderResourceVariableFromHandle(Handle(call(p.methods().GetStaticVariableByIndex, uintptr(p.handle), uintptr(shaderType), uintptr(index))))
}

func (p pipelineState) CreateShaderResourceBinding(initStaticResources bool) ShaderResourceBinding {
	var out Handle
	call(p.methods().CreateShaderResourceBinding, uintptr(p.handle), ptr(&out), boolArg(initStaticResources))
	return ShaderResourceBindingFromHandle(out)
}

func (p pipelineState) InitializeStaticSRBResources(srb ShaderResourceBinding) {
	call(p.methods().InitializeStaticSRBResources, uintptr(p.handle), handleOf(srb))
}

func (p pipelineState) CopyStaticResources(dst PipelineState) {
	call(p.methods().CopyStaticResources, uintptr(p.handle), handleOf(dst))
}

func (p pipelineState) IsCompatibleWith(other PipelineState) bool {
	return boolRet(call(p.methods().IsCompatibleWith, uintptr(p.handle), handleOf(other)))
}

func (p pipelineState) GetResourceSignatureCount() uint32 {
	return uint32(call(p.methods().GetResourceSignatureCount, uintptr(p.handle)))
}

func (p pipelineState) GetResourceSignature(index uint32) PipelineResourceSignature {
	return PipelineResourceSignatureFromHandle(Handle(call(p.methods().GetResourceSignature, uintptr(p.handle), uintptr(index))))
}

func (p pipelineState) GetStatus(waitForCompletion bool) PipelineStateStatus {
	return PipelineStateStatus(call(p.methods().GetStatus, uintptr(p.handle), boolArg(waitForCompletion)))
}

type shaderResourceBinding struct {
	object
}

func ShaderResourceBindingFromHandle(h Handle) ShaderResourceBinding {
	if h == 0 {
		return nil
	}
	return shaderResourceBinding{object{handle: h}}
}

func (b shaderResourceBinding) methods() *shaderResourceBindingMethods {
	return vtblOf[shaderResourceBindingMethods](b.handle)
}

func (b shaderResourceBinding) GetPipelineResourceSignature() PipelineResourceSignature {
	return PipelineResourceSignatureFromHandle(Handle(call(b.methods().GetPipelineResourceSignature, uintptr(b.handle))))
}

func (b shaderResourceBinding) BindResources(shaderStages ShaderType, mapping ResourceMapping, flags BindShaderResourcesFlags) {
	call(b.methods().BindResources, uintptr(b.handle), uintptr(shaderStages), handleOf(mapping), uintptr(flags))
}

func (b shaderResourceBinding) CheckResources(shaderStages ShaderType, mapping ResourceMapping, flags BindShaderResourcesFlags) ShaderResourceVariableTypeFlags {
	return ShaderResourceVariableTypeFlags(call(b.methods().CheckResources, uintptr(b.handle), uintptr(shaderStages), handleOf(mapping), uintptr(flags)))
}

func (b shaderResourceBinding) GetVariableByName(stage ShaderType, name *byte) ShaderResourceVariable {
	return ShaderResourceVariableFromHandle(Handle(call(b.methods().GetVariableByName, uintptr(b.handle), uintptr(stage), ptr(name))))
}

func (b shaderResourceBinding) GetVariableCount(stage ShaderType) uint32 {
	return uint32(call(b.methods().GetVariableCount, uintptr(b.handle), uintptr(stage)))
}

func (b shaderResourceBinding) GetVariableByIndex(stage ShaderType, index uint32) ShaderResourceVariable {
	return ShaderResourceVariableFromHandle(Handle(call(b.methods().GetVariableByIndex, uintptr(b.handle), uintptr(stage), uintptr(index))))
}

func (b shaderResourceBinding) StaticResourcesInitialized() bool {
	return boolRet(call(b.methods().StaticResourcesInitialized, uintptr(b.handle)))
}

type renderPass struct {
	deviceObject
}

func RenderPassFromHandle(h Handle) RenderPass {
	if h == 0 {
		return nil
	}
	return renderPass{deviceObject{object{handle: h}}}
}

func (r renderPass) GetDesc() *RenderPassDesc {
	return (*RenderPassDesc)(r.desc())
}

type framebuffer struct {
	deviceObject
}

func FramebufferFromHandle(h Handle) Framebuffer {
	if h == 0 {
		return nil
	}
	return framebuffer{deviceObject{object{handle: h}}}
}

func (f framebuffer) GetDesc() *FramebufferDesc {
	return (*FramebufferDesc)(f.desc())
}
