package diligent

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/diligent/driver"
)

// ShaderSourceLanguage identifies the language of shader source code. The zero value lets the engine pick.
type ShaderSourceLanguage int32

const (
	ShaderSourceLanguageDefault ShaderSourceLanguage = iota
	ShaderSourceLanguageHLSL
	ShaderSourceLanguageGLSL
	ShaderSourceLanguageGLSLVerbatim
	ShaderSourceLanguageMSL
	ShaderSourceLanguageMSLVerbatim
	ShaderSourceLanguageMTLB
	ShaderSourceLanguageWGSL
)

var shaderSourceLanguageTable = [...]enumEntry[driver.ShaderSourceLanguage]{
	ShaderSourceLanguageDefault:      {driver.ShaderSourceLanguageDefault, "Default"},
	ShaderSourceLanguageHLSL:         {driver.ShaderSourceLanguageHLSL, "HLSL"},
	ShaderSourceLanguageGLSL:         {driver.ShaderSourceLanguageGLSL, "GLSL"},
	ShaderSourceLanguageGLSLVerbatim: {driver.ShaderSourceLanguageGLSLVerbatim, "GLSLVerbatim"},
	ShaderSourceLanguageMSL:          {driver.ShaderSourceLanguageMSL, "MSL"},
	ShaderSourceLanguageMSLVerbatim:  {driver.ShaderSourceLanguageMSLVerbatim, "MSLVerbatim"},
	ShaderSourceLanguageMTLB:         {driver.ShaderSourceLanguageMTLB, "MTLB"},
	ShaderSourceLanguageWGSL:         {driver.ShaderSourceLanguageWGSL, "WGSL"},
}

const _ = uint(len(shaderSourceLanguageTable) - int(driver.ShaderSourceLanguageCount))
const _ = uint(int(driver.ShaderSourceLanguageCount) - len(shaderSourceLanguageTable))

func (e ShaderSourceLanguage) String() string { return enumString(shaderSourceLanguageTable[:], e) }

func (e ShaderSourceLanguage) native() driver.ShaderSourceLanguage { return enumToNative(shaderSourceLanguageTable[:], e) }

func shaderSourceLanguageFromNative(n driver.ShaderSourceLanguage) ShaderSourceLanguage {
	return enumFromNative[ShaderSourceLanguage](shaderSourceLanguageTable[:], n, 0)
}

func (e ShaderSourceLanguage) MarshalText() ([]byte, error) { return enumMarshalText(shaderSourceLanguageTable[:], e) }

func (e *ShaderSourceLanguage) UnmarshalText(text []byte) error {
	return enumUnmarshalText(shaderSourceLanguageTable[:], e, text, 0)
}

type ShaderCompiler int32

const (
	ShaderCompilerDefault ShaderCompiler = iota
	ShaderCompilerGlslang
	ShaderCompilerDXC
	ShaderCompilerFXC
)

var shaderCompilerTable = [...]enumEntry[driver.ShaderCompiler]{
	ShaderCompilerDefault: {driver.ShaderCompilerDefault, "Default"},
	ShaderCompilerGlslang: {driver.ShaderCompilerGlslang, "Glslang"},
	ShaderCompilerDXC:     {driver.ShaderCompilerDXC, "DXC"},
	ShaderCompilerFXC:     {driver.ShaderCompilerFXC, "FXC"},
}

const _ = uint(len(shaderCompilerTable) - int(driver.ShaderCompilerCount))
const _ = uint(int(driver.ShaderCompilerCount) - len(shaderCompilerTable))

func (e ShaderCompiler) String() string { return enumString(shaderCompilerTable[:], e) }

func (e ShaderCompiler) native() driver.ShaderCompiler { return enumToNative(shaderCompilerTable[:], e) }

func shaderCompilerFromNative(n driver.ShaderCompiler) ShaderCompiler {
	return enumFromNative[ShaderCompiler](shaderCompilerTable[:], n, 0)
}

func (e ShaderCompiler) MarshalText() ([]byte, error) { return enumMarshalText(shaderCompilerTable[:], e) }

func (e *ShaderCompiler) UnmarshalText(text []byte) error {
	return enumUnmarshalText(shaderCompilerTable[:], e, text, 0)
}

// ShaderStatus reports the progress of an asynchronously compiled shader.
type ShaderStatus int32

const (
	ShaderStatusUninitialized ShaderStatus = iota
	ShaderStatusCompiling
	ShaderStatusReady
	ShaderStatusFailed
)

var shaderStatusTable = [...]enumEntry[driver.ShaderStatus]{
	ShaderStatusUninitialized: {driver.ShaderStatusUninitialized, "Uninitialized"},
	ShaderStatusCompiling:     {driver.ShaderStatusCompiling, "Compiling"},
	ShaderStatusReady:         {driver.ShaderStatusReady, "Ready"},
	ShaderStatusFailed:        {driver.ShaderStatusFailed, "Failed"},
}

const _ = uint(len(shaderStatusTable) - int(driver.ShaderStatusCount))
const _ = uint(int(driver.ShaderStatusCount) - len(shaderStatusTable))

func (e ShaderStatus) String() string { return enumString(shaderStatusTable[:], e) }

func (e ShaderStatus) native() driver.ShaderStatus { return enumToNative(shaderStatusTable[:], e) }

func shaderStatusFromNative(n driver.ShaderStatus) ShaderStatus {
	return enumFromNative[ShaderStatus](shaderStatusTable[:], n, 0)
}

func (e ShaderStatus) MarshalText() ([]byte, error) { return enumMarshalText(shaderStatusTable[:], e) }

func (e *ShaderStatus) UnmarshalText(text []byte) error {
	return enumUnmarshalText(shaderStatusTable[:], e, text, 0)
}

type ShaderResourceType int32

const (
	ShaderResourceTypeUnknown ShaderResourceType = iota
	ShaderResourceTypeConstantBuffer
	ShaderResourceTypeTextureSRV
	ShaderResourceTypeBufferSRV
	ShaderResourceTypeTextureUAV
	ShaderResourceTypeBufferUAV
	ShaderResourceTypeSampler
	ShaderResourceTypeInputAttachment
	ShaderResourceTypeAccelStruct
)

var shaderResourceTypeTable = [...]enumEntry[driver.ShaderResourceType]{
	ShaderResourceTypeUnknown:         {driver.ShaderResourceTypeUnknown, "Unknown"},
	ShaderResourceTypeConstantBuffer:  {driver.ShaderResourceTypeConstantBuffer, "ConstantBuffer"},
	ShaderResourceTypeTextureSRV:      {driver.ShaderResourceTypeTextureSRV, "TextureSRV"},
	ShaderResourceTypeBufferSRV:       {driver.ShaderResourceTypeBufferSRV, "BufferSRV"},
	ShaderResourceTypeTextureUAV:      {driver.ShaderResourceTypeTextureUAV, "TextureUAV"},
	ShaderResourceTypeBufferUAV:       {driver.ShaderResourceTypeBufferUAV, "BufferUAV"},
	ShaderResourceTypeSampler:         {driver.ShaderResourceTypeSampler, "Sampler"},
	ShaderResourceTypeInputAttachment: {driver.ShaderResourceTypeInputAttachment, "InputAttachment"},
	ShaderResourceTypeAccelStruct:     {driver.ShaderResourceTypeAccelStruct, "AccelStruct"},
}

const _ = uint(len(shaderResourceTypeTable) - int(driver.ShaderResourceTypeCount))
const _ = uint(int(driver.ShaderResourceTypeCount) - len(shaderResourceTypeTable))

func (e ShaderResourceType) String() string { return enumString(shaderResourceTypeTable[:], e) }

func (e ShaderResourceType) native() driver.ShaderResourceType { return enumToNative(shaderResourceTypeTable[:], e) }

func shaderResourceTypeFromNative(n driver.ShaderResourceType) ShaderResourceType {
	return enumFromNative[ShaderResourceType](shaderResourceTypeTable[:], n, 0)
}

func (e ShaderResourceType) MarshalText() ([]byte, error) { return enumMarshalText(shaderResourceTypeTable[:], e) }

func (e *ShaderResourceType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(shaderResourceTypeTable[:], e, text, 0)
}

// ShaderResourceVariableType describes how often a shader variable is expected to change. The zero value is ShaderResourceVariableTypeStatic, which is also the engine default.
type ShaderResourceVariableType int32

const (
	ShaderResourceVariableTypeStatic ShaderResourceVariableType = iota
	ShaderResourceVariableTypeMutable
	ShaderResourceVariableTypeDynamic
)

var shaderResourceVariableTypeTable = [...]enumEntry[driver.ShaderResourceVariableType]{
	ShaderResourceVariableTypeStatic:  {driver.ShaderResourceVariableTypeStatic, "Static"},
	ShaderResourceVariableTypeMutable: {driver.ShaderResourceVariableTypeMutable, "Mutable"},
	ShaderResourceVariableTypeDynamic: {driver.ShaderResourceVariableTypeDynamic, "Dynamic"},
}

const _ = uint(len(shaderResourceVariableTypeTable) - int(driver.ShaderResourceVariableTypeCount))
const _ = uint(int(driver.ShaderResourceVariableTypeCount) - len(shaderResourceVariableTypeTable))

func (e ShaderResourceVariableType) String() string { return enumString(shaderResourceVariableTypeTable[:], e) }

func (e ShaderResourceVariableType) native() driver.ShaderResourceVariableType { return enumToNative(shaderResourceVariableTypeTable[:], e) }

func shaderResourceVariableTypeFromNative(n driver.ShaderResourceVariableType) ShaderResourceVariableType {
	return enumFromNative[ShaderResourceVariableType](shaderResourceVariableTypeTable[:], n, 0)
}

func (e ShaderResourceVariableType) MarshalText() ([]byte, error) { return enumMarshalText(shaderResourceVariableTypeTable[:], e) }

func (e *ShaderResourceVariableType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(shaderResourceVariableTypeTable[:], e, text, 0)
}

type ShaderCodeVariableClass int32

const (
	ShaderCodeVariableClassUnknown ShaderCodeVariableClass = iota
	ShaderCodeVariableClassScalar
	ShaderCodeVariableClassVector
	ShaderCodeVariableClassMatrixRows
	ShaderCodeVariableClassMatrixColumns
	ShaderCodeVariableClassStruct
)

var shaderCodeVariableClassTable = [...]enumEntry[driver.ShaderCodeVariableClass]{
	ShaderCodeVariableClassUnknown:       {driver.ShaderCodeVariableClassUnknown, "Unknown"},
	ShaderCodeVariableClassScalar:        {driver.ShaderCodeVariableClassScalar, "Scalar"},
	ShaderCodeVariableClassVector:        {driver.ShaderCodeVariableClassVector, "Vector"},
	ShaderCodeVariableClassMatrixRows:    {driver.ShaderCodeVariableClassMatrixRows, "MatrixRows"},
	ShaderCodeVariableClassMatrixColumns: {driver.ShaderCodeVariableClassMatrixColumns, "MatrixColumns"},
	ShaderCodeVariableClassStruct:        {driver.ShaderCodeVariableClassStruct, "Struct"},
}

const _ = uint(len(shaderCodeVariableClassTable) - int(driver.ShaderCodeVariableClassCount))
const _ = uint(int(driver.ShaderCodeVariableClassCount) - len(shaderCodeVariableClassTable))

func (e ShaderCodeVariableClass) String() string { return enumString(shaderCodeVariableClassTable[:], e) }

func (e ShaderCodeVariableClass) native() driver.ShaderCodeVariableClass { return enumToNative(shaderCodeVariableClassTable[:], e) }

func shaderCodeVariableClassFromNative(n driver.ShaderCodeVariableClass) ShaderCodeVariableClass {
	return enumFromNative[ShaderCodeVariableClass](shaderCodeVariableClassTable[:], n, 0)
}

func (e ShaderCodeVariableClass) MarshalText() ([]byte, error) { return enumMarshalText(shaderCodeVariableClassTable[:], e) }

func (e *ShaderCodeVariableClass) UnmarshalText(text []byte) error {
	return enumUnmarshalText(shaderCodeVariableClassTable[:], e, text, 0)
}

type ShaderCodeBasicType int32

const (
	ShaderCodeBasicTypeUnknown ShaderCodeBasicType = iota
	ShaderCodeBasicTypeVoid
	ShaderCodeBasicTypeBool
	ShaderCodeBasicTypeInt
	ShaderCodeBasicTypeInt8
	ShaderCodeBasicTypeInt16
	ShaderCodeBasicTypeInt64
	ShaderCodeBasicTypeUint
	ShaderCodeBasicTypeUint8
	ShaderCodeBasicTypeUint16
	ShaderCodeBasicTypeUint64
	ShaderCodeBasicTypeFloat
	ShaderCodeBasicTypeFloat16
	ShaderCodeBasicTypeDouble
	ShaderCodeBasicTypeMIN8FLOAT
	ShaderCodeBasicTypeMIN10FLOAT
	ShaderCodeBasicTypeMIN16FLOAT
	ShaderCodeBasicTypeMIN12INT
	ShaderCodeBasicTypeMIN16INT
	ShaderCodeBasicTypeMIN16UINT
	ShaderCodeBasicTypeString
)

var shaderCodeBasicTypeTable = [...]enumEntry[driver.ShaderCodeBasicType]{
	ShaderCodeBasicTypeUnknown:    {driver.ShaderCodeBasicTypeUnknown, "Unknown"},
	ShaderCodeBasicTypeVoid:       {driver.ShaderCodeBasicTypeVoid, "Void"},
	ShaderCodeBasicTypeBool:       {driver.ShaderCodeBasicTypeBool, "Bool"},
	ShaderCodeBasicTypeInt:        {driver.ShaderCodeBasicTypeInt, "Int"},
	ShaderCodeBasicTypeInt8:       {driver.ShaderCodeBasicTypeInt8, "Int8"},
	ShaderCodeBasicTypeInt16:      {driver.ShaderCodeBasicTypeInt16, "Int16"},
	ShaderCodeBasicTypeInt64:      {driver.ShaderCodeBasicTypeInt64, "Int64"},
	ShaderCodeBasicTypeUint:       {driver.ShaderCodeBasicTypeUint, "Uint"},
	ShaderCodeBasicTypeUint8:      {driver.ShaderCodeBasicTypeUint8, "Uint8"},
	ShaderCodeBasicTypeUint16:     {driver.ShaderCodeBasicTypeUint16, "Uint16"},
	ShaderCodeBasicTypeUint64:     {driver.ShaderCodeBasicTypeUint64, "Uint64"},
	ShaderCodeBasicTypeFloat:      {driver.ShaderCodeBasicTypeFloat, "Float"},
	ShaderCodeBasicTypeFloat16:    {driver.ShaderCodeBasicTypeFloat16, "Float16"},
	ShaderCodeBasicTypeDouble:     {driver.ShaderCodeBasicTypeDouble, "Double"},
	ShaderCodeBasicTypeMIN8FLOAT:  {driver.ShaderCodeBasicTypeMIN8FLOAT, "MIN8FLOAT"},
	ShaderCodeBasicTypeMIN10FLOAT: {driver.ShaderCodeBasicTypeMIN10FLOAT, "MIN10FLOAT"},
	ShaderCodeBasicTypeMIN16FLOAT: {driver.ShaderCodeBasicTypeMIN16FLOAT, "MIN16FLOAT"},
	ShaderCodeBasicTypeMIN12INT:   {driver.ShaderCodeBasicTypeMIN12INT, "MIN12INT"},
	ShaderCodeBasicTypeMIN16INT:   {driver.ShaderCodeBasicTypeMIN16INT, "MIN16INT"},
	ShaderCodeBasicTypeMIN16UINT:  {driver.ShaderCodeBasicTypeMIN16UINT, "MIN16UINT"},
	ShaderCodeBasicTypeString:     {driver.ShaderCodeBasicTypeString, "String"},
}

const _ = uint(len(shaderCodeBasicTypeTable) - int(driver.ShaderCodeBasicTypeCount))
const _ = uint(int(driver.ShaderCodeBasicTypeCount) - len(shaderCodeBasicTypeTable))

func (e ShaderCodeBasicType) String() string { return enumString(shaderCodeBasicTypeTable[:], e) }

func (e ShaderCodeBasicType) native() driver.ShaderCodeBasicType { return enumToNative(shaderCodeBasicTypeTable[:], e) }

func shaderCodeBasicTypeFromNative(n driver.ShaderCodeBasicType) ShaderCodeBasicType {
	return enumFromNative[ShaderCodeBasicType](shaderCodeBasicTypeTable[:], n, 0)
}

func (e ShaderCodeBasicType) MarshalText() ([]byte, error) { return enumMarshalText(shaderCodeBasicTypeTable[:], e) }

func (e *ShaderCodeBasicType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(shaderCodeBasicTypeTable[:], e, text, 0)
}

// ShaderType is a set of shader stages.
type ShaderType int32

var shaderTypeMapping = common.NewFlagStringMapping[ShaderType]()

func (f ShaderType) Register(str string) {
	shaderTypeMapping.Register(f, str)
}
func (f ShaderType) String() string {
	return shaderTypeMapping.FlagsToString(f)
}

func (f ShaderType) native() driver.ShaderType { return driver.ShaderType(f) }

const (
	ShaderTypeUnknown         ShaderType = ShaderType(driver.ShaderTypeUnknown)
	ShaderTypeVertex          ShaderType = ShaderType(driver.ShaderTypeVertex)
	ShaderTypePixel           ShaderType = ShaderType(driver.ShaderTypePixel)
	ShaderTypeGeometry        ShaderType = ShaderType(driver.ShaderTypeGeometry)
	ShaderTypeHull            ShaderType = ShaderType(driver.ShaderTypeHull)
	ShaderTypeDomain          ShaderType = ShaderType(driver.ShaderTypeDomain)
	ShaderTypeCompute         ShaderType = ShaderType(driver.ShaderTypeCompute)
	ShaderTypeAmplification   ShaderType = ShaderType(driver.ShaderTypeAmplification)
	ShaderTypeMesh            ShaderType = ShaderType(driver.ShaderTypeMesh)
	ShaderTypeRayGen          ShaderType = ShaderType(driver.ShaderTypeRayGen)
	ShaderTypeRayMiss         ShaderType = ShaderType(driver.ShaderTypeRayMiss)
	ShaderTypeRayClosestHit   ShaderType = ShaderType(driver.ShaderTypeRayClosestHit)
	ShaderTypeRayAnyHit       ShaderType = ShaderType(driver.ShaderTypeRayAnyHit)
	ShaderTypeRayIntersection ShaderType = ShaderType(driver.ShaderTypeRayIntersection)
	ShaderTypeCallable        ShaderType = ShaderType(driver.ShaderTypeCallable)
	ShaderTypeTile            ShaderType = ShaderType(driver.ShaderTypeTile)
	ShaderTypeAllGraphics     ShaderType = ShaderType(driver.ShaderTypeAllGraphics)
	ShaderTypeAllMesh         ShaderType = ShaderType(driver.ShaderTypeAllMesh)
	ShaderTypeAllRayTracing   ShaderType = ShaderType(driver.ShaderTypeAllRayTracing)
	ShaderTypeAll             ShaderType = ShaderType(driver.ShaderTypeAll)
)

type ShaderCompileFlags int32

var shaderCompileFlagsMapping = common.NewFlagStringMapping[ShaderCompileFlags]()

func (f ShaderCompileFlags) Register(str string) {
	shaderCompileFlagsMapping.Register(f, str)
}
func (f ShaderCompileFlags) String() string {
	return shaderCompileFlagsMapping.FlagsToString(f)
}

func (f ShaderCompileFlags) native() driver.ShaderCompileFlags { return driver.ShaderCompileFlags(f) }

const (
	ShaderCompileFlagNone                  ShaderCompileFlags = ShaderCompileFlags(driver.ShaderCompileFlagNone)
	ShaderCompileFlagEnableUnboundedArrays ShaderCompileFlags = ShaderCompileFlags(driver.ShaderCompileFlagEnableUnboundedArrays)
	ShaderCompileFlagSkipReflection        ShaderCompileFlags = ShaderCompileFlags(driver.ShaderCompileFlagSkipReflection)
	ShaderCompileFlagAsynchronous          ShaderCompileFlags = ShaderCompileFlags(driver.ShaderCompileFlagAsynchronous)
	ShaderCompileFlagPackMatrixRowMajor    ShaderCompileFlags = ShaderCompileFlags(driver.ShaderCompileFlagPackMatrixRowMajor)
	ShaderCompileFlagHLSLToSpirvViaGLSL    ShaderCompileFlags = ShaderCompileFlags(driver.ShaderCompileFlagHLSLToSpirvViaGLSL)
)

type ShaderVariableFlags int32

var shaderVariableFlagsMapping = common.NewFlagStringMapping[ShaderVariableFlags]()

func (f ShaderVariableFlags) Register(str string) {
	shaderVariableFlagsMapping.Register(f, str)
}
func (f ShaderVariableFlags) String() string {
	return shaderVariableFlagsMapping.FlagsToString(f)
}

func (f ShaderVariableFlags) native() driver.ShaderVariableFlags { return driver.ShaderVariableFlags(f) }

const (
	ShaderVariableFlagNone                           ShaderVariableFlags = ShaderVariableFlags(driver.ShaderVariableFlagNone)
	ShaderVariableFlagNoDynamicBuffers               ShaderVariableFlags = ShaderVariableFlags(driver.ShaderVariableFlagNoDynamicBuffers)
	ShaderVariableFlagGeneralInputAttachment         ShaderVariableFlags = ShaderVariableFlags(driver.ShaderVariableFlagGeneralInputAttachment)
	ShaderVariableFlagUnfilterableFloatTextureWebGPU ShaderVariableFlags = ShaderVariableFlags(driver.ShaderVariableFlagUnfilterableFloatTextureWebGPU)
	ShaderVariableFlagNonFilteringSamplerWebGPU      ShaderVariableFlags = ShaderVariableFlags(driver.ShaderVariableFlagNonFilteringSamplerWebGPU)
)

type PipelineResourceFlags int32

var pipelineResourceFlagsMapping = common.NewFlagStringMapping[PipelineResourceFlags]()

func (f PipelineResourceFlags) Register(str string) {
	pipelineResourceFlagsMapping.Register(f, str)
}
func (f PipelineResourceFlags) String() string {
	return pipelineResourceFlagsMapping.FlagsToString(f)
}

func (f PipelineResourceFlags) native() driver.PipelineResourceFlags { return driver.PipelineResourceFlags(f) }

const (
	PipelineResourceFlagNone                   PipelineResourceFlags = PipelineResourceFlags(driver.PipelineResourceFlagNone)
	PipelineResourceFlagNoDynamicBuffers       PipelineResourceFlags = PipelineResourceFlags(driver.PipelineResourceFlagNoDynamicBuffers)
	PipelineResourceFlagCombinedSampler        PipelineResourceFlags = PipelineResourceFlags(driver.PipelineResourceFlagCombinedSampler)
	PipelineResourceFlagFormattedBuffer        PipelineResourceFlags = PipelineResourceFlags(driver.PipelineResourceFlagFormattedBuffer)
	PipelineResourceFlagRuntimeArray           PipelineResourceFlags = PipelineResourceFlags(driver.PipelineResourceFlagRuntimeArray)
	PipelineResourceFlagGeneralInputAttachment PipelineResourceFlags = PipelineResourceFlags(driver.PipelineResourceFlagGeneralInputAttachment)
)

// BindShaderResourcesFlags control which variables BindResources and BindStaticResources touch.
type BindShaderResourcesFlags int32

var bindShaderResourcesFlagsMapping = common.NewFlagStringMapping[BindShaderResourcesFlags]()

func (f BindShaderResourcesFlags) Register(str string) {
	bindShaderResourcesFlagsMapping.Register(f, str)
}
func (f BindShaderResourcesFlags) String() string {
	return bindShaderResourcesFlagsMapping.FlagsToString(f)
}

func (f BindShaderResourcesFlags) native() driver.BindShaderResourcesFlags { return driver.BindShaderResourcesFlags(f) }

const (
	BindShaderResourcesUpdateStatic      BindShaderResourcesFlags = BindShaderResourcesFlags(driver.BindShaderResourcesUpdateStatic)
	BindShaderResourcesUpdateMutable     BindShaderResourcesFlags = BindShaderResourcesFlags(driver.BindShaderResourcesUpdateMutable)
	BindShaderResourcesUpdateDynamic     BindShaderResourcesFlags = BindShaderResourcesFlags(driver.BindShaderResourcesUpdateDynamic)
	BindShaderResourcesUpdateAll         BindShaderResourcesFlags = BindShaderResourcesFlags(driver.BindShaderResourcesUpdateAll)
	BindShaderResourcesKeepExisting      BindShaderResourcesFlags = BindShaderResourcesFlags(driver.BindShaderResourcesKeepExisting)
	BindShaderResourcesVerifyAllResolved BindShaderResourcesFlags = BindShaderResourcesFlags(driver.BindShaderResourcesVerifyAllResolved)
	BindShaderResourcesAllowOverwrite    BindShaderResourcesFlags = BindShaderResourcesFlags(driver.BindShaderResourcesAllowOverwrite)
)

type SetShaderResourceFlags int32

var setShaderResourceFlagsMapping = common.NewFlagStringMapping[SetShaderResourceFlags]()

func (f SetShaderResourceFlags) Register(str string) {
	setShaderResourceFlagsMapping.Register(f, str)
}
func (f SetShaderResourceFlags) String() string {
	return setShaderResourceFlagsMapping.FlagsToString(f)
}

func (f SetShaderResourceFlags) native() driver.SetShaderResourceFlags { return driver.SetShaderResourceFlags(f) }

const (
	SetShaderResourceNone           SetShaderResourceFlags = SetShaderResourceFlags(driver.SetShaderResourceNone)
	SetShaderResourceAllowOverwrite SetShaderResourceFlags = SetShaderResourceFlags(driver.SetShaderResourceAllowOverwrite)
)

type ShaderResourceVariableTypeFlags int32

var shaderResourceVariableTypeFlagsMapping = common.NewFlagStringMapping[ShaderResourceVariableTypeFlags]()

func (f ShaderResourceVariableTypeFlags) Register(str string) {
	shaderResourceVariableTypeFlagsMapping.Register(f, str)
}
func (f ShaderResourceVariableTypeFlags) String() string {
	return shaderResourceVariableTypeFlagsMapping.FlagsToString(f)
}

func (f ShaderResourceVariableTypeFlags) native() driver.ShaderResourceVariableTypeFlags { return driver.ShaderResourceVariableTypeFlags(f) }

const (
	ShaderResourceVariableTypeFlagNone    ShaderResourceVariableTypeFlags = ShaderResourceVariableTypeFlags(driver.ShaderResourceVariableTypeFlagNone)
	ShaderResourceVariableTypeFlagStatic  ShaderResourceVariableTypeFlags = ShaderResourceVariableTypeFlags(driver.ShaderResourceVariableTypeFlagStatic)
	ShaderResourceVariableTypeFlagMutable ShaderResourceVariableTypeFlags = ShaderResourceVariableTypeFlags(driver.ShaderResourceVariableTypeFlagMutable)
	ShaderResourceVariableTypeFlagDynamic ShaderResourceVariableTypeFlags = ShaderResourceVariableTypeFlags(driver.ShaderResourceVariableTypeFlagDynamic)
	ShaderResourceVariableTypeFlagMutDyn  ShaderResourceVariableTypeFlags = ShaderResourceVariableTypeFlags(driver.ShaderResourceVariableTypeFlagMutDyn)
	ShaderResourceVariableTypeFlagAll     ShaderResourceVariableTypeFlags = ShaderResourceVariableTypeFlags(driver.ShaderResourceVariableTypeFlagAll)
)

func init() {
	ShaderTypeVertex.Register("Vertex")
	ShaderTypePixel.Register("Pixel")
	ShaderTypeGeometry.Register("Geometry")
	ShaderTypeHull.Register("Hull")
	ShaderTypeDomain.Register("Domain")
	ShaderTypeCompute.Register("Compute")
	ShaderTypeAmplification.Register("Amplification")
	ShaderTypeMesh.Register("Mesh")
	ShaderTypeRayGen.Register("RayGen")
	ShaderTypeRayMiss.Register("RayMiss")
	ShaderTypeRayClosestHit.Register("RayClosestHit")
	ShaderTypeRayAnyHit.Register("RayAnyHit")
	ShaderTypeRayIntersection.Register("RayIntersection")
	ShaderTypeCallable.Register("Callable")
	ShaderTypeTile.Register("Tile")
	ShaderCompileFlagEnableUnboundedArrays.Register("EnableUnboundedArrays")
	ShaderCompileFlagSkipReflection.Register("SkipReflection")
	ShaderCompileFlagAsynchronous.Register("Asynchronous")
	ShaderCompileFlagPackMatrixRowMajor.Register("PackMatrixRowMajor")
	ShaderCompileFlagHLSLToSpirvViaGLSL.Register("HLSLToSpirvViaGLSL")
	ShaderVariableFlagNoDynamicBuffers.Register("NoDynamicBuffers")
	ShaderVariableFlagGeneralInputAttachment.Register("GeneralInputAttachment")
	ShaderVariableFlagUnfilterableFloatTextureWebGPU.Register("UnfilterableFloatTextureWebGPU")
	ShaderVariableFlagNonFilteringSamplerWebGPU.Register("NonFilteringSamplerWebGPU")
	PipelineResourceFlagNoDynamicBuffers.Register("NoDynamicBuffers")
	PipelineResourceFlagCombinedSampler.Register("CombinedSampler")
	PipelineResourceFlagFormattedBuffer.Register("FormattedBuffer")
	PipelineResourceFlagRuntimeArray.Register("RuntimeArray")
	PipelineResourceFlagGeneralInputAttachment.Register("GeneralInputAttachment")
	BindShaderResourcesUpdateStatic.Register("UpdateStatic")
	BindShaderResourcesUpdateMutable.Register("UpdateMutable")
	BindShaderResourcesUpdateDynamic.Register("UpdateDynamic")
	BindShaderResourcesKeepExisting.Register("KeepExisting")
	BindShaderResourcesVerifyAllResolved.Register("VerifyAllResolved")
	BindShaderResourcesAllowOverwrite.Register("AllowOverwrite")
	SetShaderResourceAllowOverwrite.Register("AllowOverwrite")
	ShaderResourceVariableTypeFlagStatic.Register("Static")
	ShaderResourceVariableTypeFlagMutable.Register("Mutable")
	ShaderResourceVariableTypeFlagDynamic.Register("Dynamic")
}
