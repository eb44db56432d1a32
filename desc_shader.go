package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
)

type ShaderDesc struct {
	Name                       string
	ShaderType                 ShaderType
	UseCombinedTextureSamplers bool
	CombinedSamplerSuffix      string
}

func (d *ShaderDesc) marshal(arena *driver.Arena) driver.ShaderDesc {
	return driver.ShaderDesc{
		DeviceObjectAttribs:        driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		ShaderType:                 d.ShaderType.native(),
		UseCombinedTextureSamplers: d.UseCombinedTextureSamplers,
		CombinedSamplerSuffix:      arena.CString(d.CombinedSamplerSuffix),
	}
}

func shaderDescFromNative(n *driver.ShaderDesc) ShaderDesc {
	return ShaderDesc{
		Name:                       driver.GoString(n.Name),
		ShaderType:                 ShaderType(n.ShaderType),
		UseCombinedTextureSamplers: n.UseCombinedTextureSamplers,
		CombinedSamplerSuffix:      driver.GoString(n.CombinedSamplerSuffix),
	}
}

type ShaderMacro struct {
	Name       string
	Definition string
}

type ShaderVersion struct {
	Major uint32
	Minor uint32
}

func (v ShaderVersion) marshal() driver.ShaderVersion {
	return driver.ShaderVersion{Major: v.Major, Minor: v.Minor}
}

func shaderVersionFromNative(n driver.ShaderVersion) ShaderVersion {
	return ShaderVersion{Major: n.Major, Minor: n.Minor}
}

// ShaderCreateInfo describes how to build a shader. Exactly one of FilePath, Source and
// ByteCode is set; FilePath is resolved through ShaderSourceStreamFactory.
type ShaderCreateInfo struct {
	FilePath                  string
	ShaderSourceStreamFactory *ShaderSourceInputStreamFactory
	Source                    string
	ByteCode                  []byte
	EntryPoint                string
	Macros                    []ShaderMacro
	Desc                      ShaderDesc
	SourceLanguage            ShaderSourceLanguage
	Compiler                  ShaderCompiler
	HLSLVersion               ShaderVersion
	GLSLVersion               ShaderVersion
	GLESSLVersion             ShaderVersion
	MSLVersion                ShaderVersion
	CompileFlags              ShaderCompileFlags
	// LoadConstantBufferReflection makes Shader.ConstantBufferDesc available.
	LoadConstantBufferReflection   bool
	GLSLExtensions                 string
	WebGPUEmulatedArrayIndexSuffix string
}

func NewShaderCreateInfo() ShaderCreateInfo {
	return ShaderCreateInfo{
		EntryPoint:     "main",
		SourceLanguage: ShaderSourceLanguageDefault,
		Compiler:       ShaderCompilerDefault,
		Desc:           ShaderDesc{CombinedSamplerSuffix: "_sampler"},
	}
}

func (ci *ShaderCreateInfo) marshal(arena *driver.Arena) driver.ShaderCreateInfo {
	macros, macroCount := driver.MarshalSlice(arena, ci.Macros, func(a *driver.Arena, m *ShaderMacro) driver.ShaderMacro {
		return driver.ShaderMacro{Name: a.CString(m.Name), Definition: a.CString(m.Definition)}
	})

	native := driver.ShaderCreateInfo{
		FilePath:                       arena.CString(ci.FilePath),
		ShaderSourceStreamFactory:      ci.ShaderSourceStreamFactory.handle(),
		EntryPoint:                     arena.CString(ci.EntryPoint),
		Macros:                         driver.ShaderMacroArray{Elements: macros, Count: macroCount},
		Desc:                           ci.Desc.marshal(arena),
		SourceLanguage:                 ci.SourceLanguage.native(),
		Compiler:                       ci.Compiler.native(),
		HLSLVersion:                    ci.HLSLVersion.marshal(),
		GLSLVersion:                    ci.GLSLVersion.marshal(),
		GLESSLVersion:                  ci.GLESSLVersion.marshal(),
		MSLVersion:                     ci.MSLVersion.marshal(),
		CompileFlags:                   ci.CompileFlags.native(),
		LoadConstantBufferReflection:   ci.LoadConstantBufferReflection,
		GLSLExtensions:                 arena.CString(ci.GLSLExtensions),
		WebGPUEmulatedArrayIndexSuffix: arena.CString(ci.WebGPUEmulatedArrayIndexSuffix),
	}

	if len(ci.ByteCode) > 0 {
		native.ByteCode = arena.Bytes(ci.ByteCode)
		native.SourceLength = uint64(len(ci.ByteCode))
	} else if ci.Source != "" {
		native.Source = arena.CString(ci.Source)
		native.SourceLength = uint64(len(ci.Source))
	}

	return native
}

// ShaderResourceDesc describes a resource a shader declares.
type ShaderResourceDesc struct {
	Name      string
	Type      ShaderResourceType
	ArraySize uint32
}

func shaderResourceDescFromNative(n driver.ShaderResourceDesc) ShaderResourceDesc {
	return ShaderResourceDesc{
		Name:      driver.GoString(n.Name),
		Type:      shaderResourceTypeFromNative(n.Type),
		ArraySize: n.ArraySize,
	}
}

// ShaderCodeVariableDesc describes a variable inside a constant buffer or structure.
type ShaderCodeVariableDesc struct {
	Name       string
	TypeName   string
	Class      ShaderCodeVariableClass
	BasicType  ShaderCodeBasicType
	NumRows    uint8
	NumColumns uint8
	Offset     uint32
	ArraySize  uint32
	Members    []ShaderCodeVariableDesc
}

func shaderCodeVariableDescFromNative(n *driver.ShaderCodeVariableDesc) ShaderCodeVariableDesc {
	members := driver.GoSlice(n.Members, n.NumMembers)
	desc := ShaderCodeVariableDesc{
		Name:       driver.GoString(n.Name),
		TypeName:   driver.GoString(n.TypeName),
		Class:      shaderCodeVariableClassFromNative(n.Class),
		BasicType:  shaderCodeBasicTypeFromNative(n.BasicType),
		NumRows:    n.NumRows,
		NumColumns: n.NumColumns,
		Offset:     n.Offset,
		ArraySize:  n.ArraySize,
	}
	for i := range members {
		desc.Members = append(desc.Members, shaderCodeVariableDescFromNative(&members[i]))
	}
	return desc
}

// ShaderCodeBufferDesc is the reflected layout of a constant buffer.
type ShaderCodeBufferDesc struct {
	Size      uint32
	Variables []ShaderCodeVariableDesc
}

func shaderCodeBufferDescFromNative(n *driver.ShaderCodeBufferDesc) ShaderCodeBufferDesc {
	desc := ShaderCodeBufferDesc{Size: n.Size}
	variables := driver.GoSlice(n.Variables, n.NumVariables)
	for i := range variables {
		desc.Variables = append(desc.Variables, shaderCodeVariableDescFromNative(&variables[i]))
	}
	return desc
}
