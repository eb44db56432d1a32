package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
	"golang.org/x/exp/slog"
)

// Shader is a compiled shader created by RenderDevice.CreateShader.
type Shader struct {
	deviceObject
	drv driver.Shader
}

func wrapShader(native driver.Shader, logger *slog.Logger) *Shader {
	s := &Shader{drv: native}
	s.adoptDevice(native, "Shader", logger)
	return s
}

func (s *Shader) handle() driver.Handle {
	if s == nil {
		return 0
	}
	return s.drv.Handle()
}

func (s *Shader) Driver() driver.Shader {
	if s == nil {
		return nil
	}
	return s.drv
}

func (s *Shader) Ref() *Shader {
	return fromBorrowed(s.drv, s.logger, wrapShader)
}

func (s *Shader) Desc() ShaderDesc {
	return shaderDescFromNative(s.drv.GetDesc())
}

func (s *Shader) ResourceCount() uint32 {
	return s.drv.GetResourceCount()
}

func (s *Shader) ResourceDesc(index uint32) ShaderResourceDesc {
	return shaderResourceDescFromNative(s.drv.GetResourceDesc(index))
}

// Resources lists every resource the shader declares.
func (s *Shader) Resources() []ShaderResourceDesc {
	count := s.drv.GetResourceCount()
	resources := make([]ShaderResourceDesc, 0, count)
	for i := uint32(0); i < count; i++ {
		resources = append(resources, s.ResourceDesc(i))
	}
	return resources
}

// ConstantBufferDesc returns the reflected layout of the constant buffer at resource
// index. The second result is false when index is not a constant buffer or the shader
// was created without LoadConstantBufferReflection.
func (s *Shader) ConstantBufferDesc(index uint32) (ShaderCodeBufferDesc, bool) {
	desc := s.drv.GetConstantBufferDesc(index)
	if desc == nil {
		return ShaderCodeBufferDesc{}, false
	}
	return shaderCodeBufferDescFromNative(desc), true
}

// Bytecode returns a copy of the compiled shader: SPIR-V, DXBC, DXIL or GLSL source
// depending on the backend.
func (s *Shader) Bytecode() []byte {
	p, size := s.drv.GetBytecode()
	return append([]byte(nil), bytesAt(p, size)...)
}

// Status reports the compilation state of the shader, blocking until compilation ends
// when waitForCompletion is set.
func (s *Shader) Status(waitForCompletion bool) ShaderStatus {
	return shaderStatusFromNative(s.drv.GetStatus(waitForCompletion))
}

// ShaderResourceVariable binds resources to one variable of a pipeline or a
// shader resource binding.
type ShaderResourceVariable struct {
	object
	drv driver.ShaderResourceVariable
}

func wrapShaderResourceVariable(native driver.ShaderResourceVariable, logger *slog.Logger) *ShaderResourceVariable {
	v := &ShaderResourceVariable{drv: native}
	v.adopt(native, "ShaderResourceVariable", logger)
	return v
}

func (v *ShaderResourceVariable) Driver() driver.ShaderResourceVariable {
	if v == nil {
		return nil
	}
	return v.drv
}

func (v *ShaderResourceVariable) Ref() *ShaderResourceVariable {
	return fromBorrowed(v.drv, v.logger, wrapShaderResourceVariable)
}

// Set binds obj to the variable. Passing nil unbinds it.
func (v *ShaderResourceVariable) Set(obj DeviceObject, flags SetShaderResourceFlags) {
	v.drv.Set(nativeDeviceObjectOf(obj), flags.native())
}

// SetArray binds objs to consecutive array elements starting at firstElement.
func (v *ShaderResourceVariable) SetArray(objs []DeviceObject, firstElement uint32, flags SetShaderResourceFlags) {
	arena := driver.NewArena()
	defer arena.Release()

	v.drv.SetArray(handles(arena, objs), firstElement, uint32(len(objs)), flags.native())
}

// SetBufferRange binds a range of buffer to a constant or structured buffer variable.
func (v *ShaderResourceVariable) SetBufferRange(buffer *Buffer, offset, size uint64, arrayIndex uint32, flags SetShaderResourceFlags) {
	var obj driver.DeviceObject
	if buffer != nil {
		obj = buffer.drv
	}
	v.drv.SetBufferRange(obj, offset, size, arrayIndex, flags.native())
}

// SetBufferOffset changes the offset of a buffer bound to a dynamic variable without
// rebinding it.
func (v *ShaderResourceVariable) SetBufferOffset(offset uint32, arrayIndex uint32) {
	v.drv.SetBufferOffset(offset, arrayIndex)
}

func (v *ShaderResourceVariable) Type() ShaderResourceVariableType {
	return shaderResourceVariableTypeFromNative(v.drv.GetType())
}

func (v *ShaderResourceVariable) ResourceDesc() ShaderResourceDesc {
	return shaderResourceDescFromNative(v.drv.GetResourceDesc())
}

func (v *ShaderResourceVariable) Index() uint32 {
	return v.drv.GetIndex()
}

// Get returns a new reference to the object bound at arrayIndex, or nil.
func (v *ShaderResourceVariable) Get(arrayIndex uint32) *GenericDeviceObject {
	return fromBorrowed(v.drv.Get(arrayIndex), v.logger, wrapGenericDeviceObject)
}

// ShaderSourceInputStreamFactory resolves ShaderCreateInfo.FilePath and #include
// directives.
type ShaderSourceInputStreamFactory struct {
	object
	drv driver.ShaderSourceInputStreamFactory
}

func wrapShaderSourceInputStreamFactory(native driver.ShaderSourceInputStreamFactory, logger *slog.Logger) *ShaderSourceInputStreamFactory {
	f := &ShaderSourceInputStreamFactory{drv: native}
	f.adopt(native, "ShaderSourceInputStreamFactory", logger)
	return f
}

func (f *ShaderSourceInputStreamFactory) handle() driver.Handle {
	if f == nil {
		return 0
	}
	return f.drv.Handle()
}

func (f *ShaderSourceInputStreamFactory) Driver() driver.ShaderSourceInputStreamFactory {
	if f == nil {
		return nil
	}
	return f.drv
}

func (f *ShaderSourceInputStreamFactory) Ref() *ShaderSourceInputStreamFactory {
	return fromBorrowed(f.drv, f.logger, wrapShaderSourceInputStreamFactory)
}

// CreateInputStream opens name through the factory's search directories.
func (f *ShaderSourceInputStreamFactory) CreateInputStream(name string) (*GenericObject, error) {
	arena := driver.NewArena()
	defer arena.Release()

	stream := fromOwned(f.drv.CreateInputStream(arena.CString(name)), f.logger, wrapGenericObject)
	if stream == nil {
		return nil, creationFailed("FileStream", name)
	}
	return stream, nil
}
