package driver

import "unsafe"

type ShaderDesc struct {
	DeviceObjectAttribs
	ShaderType                 ShaderType
	UseCombinedTextureSamplers bool
	CombinedSamplerSuffix      *byte
}

type ShaderMacro struct {
	Name       *byte
	Definition *byte
}

type ShaderMacroArray struct {
	Elements *ShaderMacro
	Count    uint32
}

type ShaderVersion struct {
	Major uint32
	Minor uint32
}

// ShaderCreateInfo.SourceLength doubles as the byte code size when ByteCode is set.
type ShaderCreateInfo struct {
	FilePath                       *byte
	ShaderSourceStreamFactory      Handle
	Source                         *byte
	ByteCode                       unsafe.Pointer
	SourceLength                   uint64
	EntryPoint                     *byte
	Macros                         ShaderMacroArray
	Desc                           ShaderDesc
	SourceLanguage                 ShaderSourceLanguage
	Compiler                       ShaderCompiler
	HLSLVersion                    ShaderVersion
	GLSLVersion                    ShaderVersion
	GLESSLVersion                  ShaderVersion
	MSLVersion                     ShaderVersion
	CompileFlags                   ShaderCompileFlags
	LoadConstantBufferReflection   bool
	GLSLExtensions                 *byte
	WebGPUEmulatedArrayIndexSuffix *byte
}

type ShaderResourceDesc struct {
	Name      *byte
	Type      ShaderResourceType
	ArraySize uint32
}

type ShaderCodeVariableDesc struct {
	Name       *byte
	TypeName   *byte
	Class      ShaderCodeVariableClass
	BasicType  ShaderCodeBasicType
	NumRows    uint8
	NumColumns uint8
	Offset     uint32
	ArraySize  uint32
	NumMembers uint32
	Members    *ShaderCodeVariableDesc
}

type ShaderCodeBufferDesc struct {
	Size         uint32
	NumVariables uint32
	Variables    *ShaderCodeVariableDesc
}
