package diligent

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/diligent/driver"
)

// ValueType describes the type of a vertex or index component.
type ValueType int32

const (
	VtUndefined ValueType = iota
	VtInt8
	VtInt16
	VtInt32
	VtUint8
	VtUint16
	VtUint32
	VtFloat16
	VtFloat32
	VtFloat64
)

var valueTypeTable = [...]enumEntry[driver.ValueType]{
	VtUndefined: {driver.VtUndefined, "Undefined"},
	VtInt8:      {driver.VtInt8, "Int8"},
	VtInt16:     {driver.VtInt16, "Int16"},
	VtInt32:     {driver.VtInt32, "Int32"},
	VtUint8:     {driver.VtUint8, "Uint8"},
	VtUint16:    {driver.VtUint16, "Uint16"},
	VtUint32:    {driver.VtUint32, "Uint32"},
	VtFloat16:   {driver.VtFloat16, "Float16"},
	VtFloat32:   {driver.VtFloat32, "Float32"},
	VtFloat64:   {driver.VtFloat64, "Float64"},
}

const _ = uint(len(valueTypeTable) - int(driver.ValueTypeCount))
const _ = uint(int(driver.ValueTypeCount) - len(valueTypeTable))

func (e ValueType) String() string { return enumString(valueTypeTable[:], e) }

func (e ValueType) native() driver.ValueType { return enumToNative(valueTypeTable[:], e) }

func valueTypeFromNative(n driver.ValueType) ValueType {
	return enumFromNative[ValueType](valueTypeTable[:], n, 0)
}

func (e ValueType) MarshalText() ([]byte, error) { return enumMarshalText(valueTypeTable[:], e) }

func (e *ValueType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(valueTypeTable[:], e, text, 0)
}

// Usage describes how a resource will be accessed by the CPU and GPU.
type Usage int32

const (
	UsageImmutable Usage = iota + 1
	UsageDefault
	UsageDynamic
	UsageStaging
	UsageUnified
	UsageSparse
)

var usageTable = [...]enumEntry[driver.Usage]{
	{driver.UsageDefault, "Default"},
	UsageImmutable: {driver.UsageImmutable, "Immutable"},
	UsageDefault:   {driver.UsageDefault, "Default"},
	UsageDynamic:   {driver.UsageDynamic, "Dynamic"},
	UsageStaging:   {driver.UsageStaging, "Staging"},
	UsageUnified:   {driver.UsageUnified, "Unified"},
	UsageSparse:    {driver.UsageSparse, "Sparse"},
}

const _ = uint(len(usageTable) - int(driver.UsageCount) - 1)
const _ = uint(int(driver.UsageCount) + 1 - len(usageTable))

func (e Usage) String() string { return enumString(usageTable[:], e) }

func (e Usage) native() driver.Usage { return enumToNative(usageTable[:], e) }

func usageFromNative(n driver.Usage) Usage {
	return enumFromNative[Usage](usageTable[:], n, 1)
}

func (e Usage) MarshalText() ([]byte, error) { return enumMarshalText(usageTable[:], e) }

func (e *Usage) UnmarshalText(text []byte) error {
	return enumUnmarshalText(usageTable[:], e, text, 1)
}

// BufferMode describes how a buffer is accessed from shaders.
type BufferMode int32

const (
	BufferModeUndefined BufferMode = iota
	BufferModeFormatted
	BufferModeStructured
	BufferModeRaw
)

var bufferModeTable = [...]enumEntry[driver.BufferMode]{
	BufferModeUndefined:  {driver.BufferModeUndefined, "Undefined"},
	BufferModeFormatted:  {driver.BufferModeFormatted, "Formatted"},
	BufferModeStructured: {driver.BufferModeStructured, "Structured"},
	BufferModeRaw:        {driver.BufferModeRaw, "Raw"},
}

const _ = uint(len(bufferModeTable) - int(driver.BufferModeCount))
const _ = uint(int(driver.BufferModeCount) - len(bufferModeTable))

func (e BufferMode) String() string { return enumString(bufferModeTable[:], e) }

func (e BufferMode) native() driver.BufferMode { return enumToNative(bufferModeTable[:], e) }

func bufferModeFromNative(n driver.BufferMode) BufferMode {
	return enumFromNative[BufferMode](bufferModeTable[:], n, 0)
}

func (e BufferMode) MarshalText() ([]byte, error) { return enumMarshalText(bufferModeTable[:], e) }

func (e *BufferMode) UnmarshalText(text []byte) error {
	return enumUnmarshalText(bufferModeTable[:], e, text, 0)
}

type BufferViewType int32

const (
	BufferViewUndefined BufferViewType = iota
	BufferViewShaderResource
	BufferViewUnorderedAccess
)

var bufferViewTypeTable = [...]enumEntry[driver.BufferViewType]{
	BufferViewUndefined:       {driver.BufferViewUndefined, "Undefined"},
	BufferViewShaderResource:  {driver.BufferViewShaderResource, "ShaderResource"},
	BufferViewUnorderedAccess: {driver.BufferViewUnorderedAccess, "UnorderedAccess"},
}

const _ = uint(len(bufferViewTypeTable) - int(driver.BufferViewTypeCount))
const _ = uint(int(driver.BufferViewTypeCount) - len(bufferViewTypeTable))

func (e BufferViewType) String() string { return enumString(bufferViewTypeTable[:], e) }

func (e BufferViewType) native() driver.BufferViewType { return enumToNative(bufferViewTypeTable[:], e) }

func bufferViewTypeFromNative(n driver.BufferViewType) BufferViewType {
	return enumFromNative[BufferViewType](bufferViewTypeTable[:], n, 0)
}

func (e BufferViewType) MarshalText() ([]byte, error) { return enumMarshalText(bufferViewTypeTable[:], e) }

func (e *BufferViewType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(bufferViewTypeTable[:], e, text, 0)
}

type TextureViewType int32

const (
	TextureViewUndefined TextureViewType = iota
	TextureViewShaderResource
	TextureViewRenderTarget
	TextureViewDepthStencil
	TextureViewReadOnlyDepthStencil
	TextureViewUnorderedAccess
	TextureViewShadingRate
)

var textureViewTypeTable = [...]enumEntry[driver.TextureViewType]{
	TextureViewUndefined:            {driver.TextureViewUndefined, "Undefined"},
	TextureViewShaderResource:       {driver.TextureViewShaderResource, "ShaderResource"},
	TextureViewRenderTarget:         {driver.TextureViewRenderTarget, "RenderTarget"},
	TextureViewDepthStencil:         {driver.TextureViewDepthStencil, "DepthStencil"},
	TextureViewReadOnlyDepthStencil: {driver.TextureViewReadOnlyDepthStencil, "ReadOnlyDepthStencil"},
	TextureViewUnorderedAccess:      {driver.TextureViewUnorderedAccess, "UnorderedAccess"},
	TextureViewShadingRate:          {driver.TextureViewShadingRate, "ShadingRate"},
}

const _ = uint(len(textureViewTypeTable) - int(driver.TextureViewTypeCount))
const _ = uint(int(driver.TextureViewTypeCount) - len(textureViewTypeTable))

func (e TextureViewType) String() string { return enumString(textureViewTypeTable[:], e) }

func (e TextureViewType) native() driver.TextureViewType { return enumToNative(textureViewTypeTable[:], e) }

func textureViewTypeFromNative(n driver.TextureViewType) TextureViewType {
	return enumFromNative[TextureViewType](textureViewTypeTable[:], n, 0)
}

func (e TextureViewType) MarshalText() ([]byte, error) { return enumMarshalText(textureViewTypeTable[:], e) }

func (e *TextureViewType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(textureViewTypeTable[:], e, text, 0)
}

// ResourceDimension is the dimensionality of a texture or buffer view.
type ResourceDimension int32

const (
	ResourceDimUndefined ResourceDimension = iota
	ResourceDimBuffer
	ResourceDimTex1D
	ResourceDimTex1DArray
	ResourceDimTex2D
	ResourceDimTex2DArray
	ResourceDimTex3D
	ResourceDimTexCube
	ResourceDimTexCubeArray
)

var resourceDimensionTable = [...]enumEntry[driver.ResourceDimension]{
	ResourceDimUndefined:    {driver.ResourceDimUndefined, "Undefined"},
	ResourceDimBuffer:       {driver.ResourceDimBuffer, "Buffer"},
	ResourceDimTex1D:        {driver.ResourceDimTex1D, "Tex1D"},
	ResourceDimTex1DArray:   {driver.ResourceDimTex1DArray, "Tex1DArray"},
	ResourceDimTex2D:        {driver.ResourceDimTex2D, "Tex2D"},
	ResourceDimTex2DArray:   {driver.ResourceDimTex2DArray, "Tex2DArray"},
	ResourceDimTex3D:        {driver.ResourceDimTex3D, "Tex3D"},
	ResourceDimTexCube:      {driver.ResourceDimTexCube, "TexCube"},
	ResourceDimTexCubeArray: {driver.ResourceDimTexCubeArray, "TexCubeArray"},
}

const _ = uint(len(resourceDimensionTable) - int(driver.ResourceDimensionCount))
const _ = uint(int(driver.ResourceDimensionCount) - len(resourceDimensionTable))

func (e ResourceDimension) String() string { return enumString(resourceDimensionTable[:], e) }

func (e ResourceDimension) native() driver.ResourceDimension { return enumToNative(resourceDimensionTable[:], e) }

func resourceDimensionFromNative(n driver.ResourceDimension) ResourceDimension {
	return enumFromNative[ResourceDimension](resourceDimensionTable[:], n, 0)
}

func (e ResourceDimension) MarshalText() ([]byte, error) { return enumMarshalText(resourceDimensionTable[:], e) }

func (e *ResourceDimension) UnmarshalText(text []byte) error {
	return enumUnmarshalText(resourceDimensionTable[:], e, text, 0)
}

// TextureFormat is the texel format of a texture or texture view.
type TextureFormat int32

const (
	TexFormatUnknown TextureFormat = iota
	TexFormatRGBA32Typeless
	TexFormatRGBA32Float
	TexFormatRGBA32Uint
	TexFormatRGBA32Sint
	TexFormatRGB32Typeless
	TexFormatRGB32Float
	TexFormatRGB32Uint
	TexFormatRGB32Sint
	TexFormatRGBA16Typeless
	TexFormatRGBA16Float
	TexFormatRGBA16Unorm
	TexFormatRGBA16Uint
	TexFormatRGBA16Snorm
	TexFormatRGBA16Sint
	TexFormatRG32Typeless
	TexFormatRG32Float
	TexFormatRG32Uint
	TexFormatRG32Sint
	TexFormatR32G8X24Typeless
	TexFormatD32FloatS8X24Uint
	TexFormatR32FloatX8X24Typeless
	TexFormatX32TypelessG8X24Uint
	TexFormatRGB10A2Typeless
	TexFormatRGB10A2Unorm
	TexFormatRGB10A2Uint
	TexFormatR11G11B10Float
	TexFormatRGBA8Typeless
	TexFormatRGBA8Unorm
	TexFormatRGBA8UnormSRGB
	TexFormatRGBA8Uint
	TexFormatRGBA8Snorm
	TexFormatRGBA8Sint
	TexFormatRG16Typeless
	TexFormatRG16Float
	TexFormatRG16Unorm
	TexFormatRG16Uint
	TexFormatRG16Snorm
	TexFormatRG16Sint
	TexFormatR32Typeless
	TexFormatD32Float
	TexFormatR32Float
	TexFormatR32Uint
	TexFormatR32Sint
	TexFormatR24G8Typeless
	TexFormatD24UnormS8Uint
	TexFormatR24UnormX8Typeless
	TexFormatX24TypelessG8Uint
	TexFormatRG8Typeless
	TexFormatRG8Unorm
	TexFormatRG8Uint
	TexFormatRG8Snorm
	TexFormatRG8Sint
	TexFormatR16Typeless
	TexFormatR16Float
	TexFormatD16Unorm
	TexFormatR16Unorm
	TexFormatR16Uint
	TexFormatR16Snorm
	TexFormatR16Sint
	TexFormatR8Typeless
	TexFormatR8Unorm
	TexFormatR8Uint
	TexFormatR8Snorm
	TexFormatR8Sint
	TexFormatA8Unorm
	TexFormatR1Unorm
	TexFormatRGB9E5Sharedexp
	TexFormatRG8B8G8Unorm
	TexFormatG8R8G8B8Unorm
	TexFormatBC1Typeless
	TexFormatBC1Unorm
	TexFormatBC1UnormSRGB
	TexFormatBC2Typeless
	TexFormatBC2Unorm
	TexFormatBC2UnormSRGB
	TexFormatBC3Typeless
	TexFormatBC3Unorm
	TexFormatBC3UnormSRGB
	TexFormatBC4Typeless
	TexFormatBC4Unorm
	TexFormatBC4Snorm
	TexFormatBC5Typeless
	TexFormatBC5Unorm
	TexFormatBC5Snorm
	TexFormatB5G6R5Unorm
	TexFormatB5G5R5A1Unorm
	TexFormatBGRA8Unorm
	TexFormatBGRX8Unorm
	TexFormatR10G10B10XRBiasA2Unorm
	TexFormatBGRA8Typeless
	TexFormatBGRA8UnormSRGB
	TexFormatBGRX8Typeless
	TexFormatBGRX8UnormSRGB
	TexFormatBC6HTypeless
	TexFormatBC6HUF16
	TexFormatBC6HSF16
	TexFormatBC7Typeless
	TexFormatBC7Unorm
	TexFormatBC7UnormSRGB
	TexFormatETC2RGB8Unorm
	TexFormatETC2RGB8UnormSRGB
	TexFormatETC2RGB8A1Unorm
	TexFormatETC2RGB8A1UnormSRGB
	TexFormatETC2RGBA8Unorm
	TexFormatETC2RGBA8UnormSRGB
)

var textureFormatTable = [...]enumEntry[driver.TextureFormat]{
	TexFormatUnknown:                {driver.TexFormatUnknown, "Unknown"},
	TexFormatRGBA32Typeless:         {driver.TexFormatRGBA32Typeless, "RGBA32Typeless"},
	TexFormatRGBA32Float:            {driver.TexFormatRGBA32Float, "RGBA32Float"},
	TexFormatRGBA32Uint:             {driver.TexFormatRGBA32Uint, "RGBA32Uint"},
	TexFormatRGBA32Sint:             {driver.TexFormatRGBA32Sint, "RGBA32Sint"},
	TexFormatRGB32Typeless:          {driver.TexFormatRGB32Typeless, "RGB32Typeless"},
	TexFormatRGB32Float:             {driver.TexFormatRGB32Float, "RGB32Float"},
	TexFormatRGB32Uint:              {driver.TexFormatRGB32Uint, "RGB32Uint"},
	TexFormatRGB32Sint:              {driver.TexFormatRGB32Sint, "RGB32Sint"},
	TexFormatRGBA16Typeless:         {driver.TexFormatRGBA16Typeless, "RGBA16Typeless"},
	TexFormatRGBA16Float:            {driver.TexFormatRGBA16Float, "RGBA16Float"},
	TexFormatRGBA16Unorm:            {driver.TexFormatRGBA16Unorm, "RGBA16Unorm"},
	TexFormatRGBA16Uint:             {driver.TexFormatRGBA16Uint, "RGBA16Uint"},
	TexFormatRGBA16Snorm:            {driver.TexFormatRGBA16Snorm, "RGBA16Snorm"},
	TexFormatRGBA16Sint:             {driver.TexFormatRGBA16Sint, "RGBA16Sint"},
	TexFormatRG32Typeless:           {driver.TexFormatRG32Typeless, "RG32Typeless"},
	TexFormatRG32Float:              {driver.TexFormatRG32Float, "RG32Float"},
	TexFormatRG32Uint:               {driver.TexFormatRG32Uint, "RG32Uint"},
	TexFormatRG32Sint:               {driver.TexFormatRG32Sint, "RG32Sint"},
	TexFormatR32G8X24Typeless:       {driver.TexFormatR32G8X24Typeless, "R32G8X24Typeless"},
	TexFormatD32FloatS8X24Uint:      {driver.TexFormatD32FloatS8X24Uint, "D32FloatS8X24Uint"},
	TexFormatR32FloatX8X24Typeless:  {driver.TexFormatR32FloatX8X24Typeless, "R32FloatX8X24Typeless"},
	TexFormatX32TypelessG8X24Uint:   {driver.TexFormatX32TypelessG8X24Uint, "X32TypelessG8X24Uint"},
	TexFormatRGB10A2Typeless:        {driver.TexFormatRGB10A2Typeless, "RGB10A2Typeless"},
	TexFormatRGB10A2Unorm:           {driver.TexFormatRGB10A2Unorm, "RGB10A2Unorm"},
	TexFormatRGB10A2Uint:            {driver.TexFormatRGB10A2Uint, "RGB10A2Uint"},
	TexFormatR11G11B10Float:         {driver.TexFormatR11G11B10Float, "R11G11B10Float"},
	TexFormatRGBA8Typeless:          {driver.TexFormatRGBA8Typeless, "RGBA8Typeless"},
	TexFormatRGBA8Unorm:             {driver.TexFormatRGBA8Unorm, "RGBA8Unorm"},
	TexFormatRGBA8UnormSRGB:         {driver.TexFormatRGBA8UnormSRGB, "RGBA8UnormSRGB"},
	TexFormatRGBA8Uint:              {driver.TexFormatRGBA8Uint, "RGBA8Uint"},
	TexFormatRGBA8Snorm:             {driver.TexFormatRGBA8Snorm, "RGBA8Snorm"},
	TexFormatRGBA8Sint:              {driver.TexFormatRGBA8Sint, "RGBA8Sint"},
	TexFormatRG16Typeless:           {driver.TexFormatRG16Typeless, "RG16Typeless"},
	TexFormatRG16Float:              {driver.TexFormatRG16Float, "RG16Float"},
	TexFormatRG16Unorm:              {driver.TexFormatRG16Unorm, "RG16Unorm"},
	TexFormatRG16Uint:               {driver.TexFormatRG16Uint, "RG16Uint"},
	TexFormatRG16Snorm:              {driver.TexFormatRG16Snorm, "RG16Snorm"},
	TexFormatRG16Sint:               {driver.TexFormatRG16Sint, "RG16Sint"},
	TexFormatR32Typeless:            {driver.TexFormatR32Typeless, "R32Typeless"},
	TexFormatD32Float:               {driver.TexFormatD32Float, "D32Float"},
	TexFormatR32Float:               {driver.TexFormatR32Float, "R32Float"},
	TexFormatR32Uint:                {driver.TexFormatR32Uint, "R32Uint"},
	TexFormatR32Sint:                {driver.TexFormatR32Sint, "R32Sint"},
	TexFormatR24G8Typeless:          {driver.TexFormatR24G8Typeless, "R24G8Typeless"},
	TexFormatD24UnormS8Uint:         {driver.TexFormatD24UnormS8Uint, "D24UnormS8Uint"},
	TexFormatR24UnormX8Typeless:     {driver.TexFormatR24UnormX8Typeless, "R24UnormX8Typeless"},
	TexFormatX24TypelessG8Uint:      {driver.TexFormatX24TypelessG8Uint, "X24TypelessG8Uint"},
	TexFormatRG8Typeless:            {driver.TexFormatRG8Typeless, "RG8Typeless"},
	TexFormatRG8Unorm:               {driver.TexFormatRG8Unorm, "RG8Unorm"},
	TexFormatRG8Uint:                {driver.TexFormatRG8Uint, "RG8Uint"},
	TexFormatRG8Snorm:               {driver.TexFormatRG8Snorm, "RG8Snorm"},
	TexFormatRG8Sint:                {driver.TexFormatRG8Sint, "RG8Sint"},
	TexFormatR16Typeless:            {driver.TexFormatR16Typeless, "R16Typeless"},
	TexFormatR16Float:               {driver.TexFormatR16Float, "R16Float"},
	TexFormatD16Unorm:               {driver.TexFormatD16Unorm, "D16Unorm"},
	TexFormatR16Unorm:               {driver.TexFormatR16Unorm, "R16Unorm"},
	TexFormatR16Uint:                {driver.TexFormatR16Uint, "R16Uint"},
	TexFormatR16Snorm:               {driver.TexFormatR16Snorm, "R16Snorm"},
	TexFormatR16Sint:                {driver.TexFormatR16Sint, "R16Sint"},
	TexFormatR8Typeless:             {driver.TexFormatR8Typeless, "R8Typeless"},
	TexFormatR8Unorm:                {driver.TexFormatR8Unorm, "R8Unorm"},
	TexFormatR8Uint:                 {driver.TexFormatR8Uint, "R8Uint"},
	TexFormatR8Snorm:                {driver.TexFormatR8Snorm, "R8Snorm"},
	TexFormatR8Sint:                 {driver.TexFormatR8Sint, "R8Sint"},
	TexFormatA8Unorm:                {driver.TexFormatA8Unorm, "A8Unorm"},
	TexFormatR1Unorm:                {driver.TexFormatR1Unorm, "R1Unorm"},
	TexFormatRGB9E5Sharedexp:        {driver.TexFormatRGB9E5Sharedexp, "RGB9E5Sharedexp"},
	TexFormatRG8B8G8Unorm:           {driver.TexFormatRG8B8G8Unorm, "RG8B8G8Unorm"},
	TexFormatG8R8G8B8Unorm:          {driver.TexFormatG8R8G8B8Unorm, "G8R8G8B8Unorm"},
	TexFormatBC1Typeless:            {driver.TexFormatBC1Typeless, "BC1Typeless"},
	TexFormatBC1Unorm:               {driver.TexFormatBC1Unorm, "BC1Unorm"},
	TexFormatBC1UnormSRGB:           {driver.TexFormatBC1UnormSRGB, "BC1UnormSRGB"},
	TexFormatBC2Typeless:            {driver.TexFormatBC2Typeless, "BC2Typeless"},
	TexFormatBC2Unorm:               {driver.TexFormatBC2Unorm, "BC2Unorm"},
	TexFormatBC2UnormSRGB:           {driver.TexFormatBC2UnormSRGB, "BC2UnormSRGB"},
	TexFormatBC3Typeless:            {driver.TexFormatBC3Typeless, "BC3Typeless"},
	TexFormatBC3Unorm:               {driver.TexFormatBC3Unorm, "BC3Unorm"},
	TexFormatBC3UnormSRGB:           {driver.TexFormatBC3UnormSRGB, "BC3UnormSRGB"},
	TexFormatBC4Typeless:            {driver.TexFormatBC4Typeless, "BC4Typeless"},
	TexFormatBC4Unorm:               {driver.TexFormatBC4Unorm, "BC4Unorm"},
	TexFormatBC4Snorm:               {driver.TexFormatBC4Snorm, "BC4Snorm"},
	TexFormatBC5Typeless:            {driver.TexFormatBC5Typeless, "BC5Typeless"},
	TexFormatBC5Unorm:               {driver.TexFormatBC5Unorm, "BC5Unorm"},
	TexFormatBC5Snorm:               {driver.TexFormatBC5Snorm, "BC5Snorm"},
	TexFormatB5G6R5Unorm:            {driver.TexFormatB5G6R5Unorm, "B5G6R5Unorm"},
	TexFormatB5G5R5A1Unorm:          {driver.TexFormatB5G5R5A1Unorm, "B5G5R5A1Unorm"},
	TexFormatBGRA8Unorm:             {driver.TexFormatBGRA8Unorm, "BGRA8Unorm"},
	TexFormatBGRX8Unorm:             {driver.TexFormatBGRX8Unorm, "BGRX8Unorm"},
	TexFormatR10G10B10XRBiasA2Unorm: {driver.TexFormatR10G10B10XRBiasA2Unorm, "R10G10B10XRBiasA2Unorm"},
	TexFormatBGRA8Typeless:          {driver.TexFormatBGRA8Typeless, "BGRA8Typeless"},
	TexFormatBGRA8UnormSRGB:         {driver.TexFormatBGRA8UnormSRGB, "BGRA8UnormSRGB"},
	TexFormatBGRX8Typeless:          {driver.TexFormatBGRX8Typeless, "BGRX8Typeless"},
	TexFormatBGRX8UnormSRGB:         {driver.TexFormatBGRX8UnormSRGB, "BGRX8UnormSRGB"},
	TexFormatBC6HTypeless:           {driver.TexFormatBC6HTypeless, "BC6HTypeless"},
	TexFormatBC6HUF16:               {driver.TexFormatBC6HUF16, "BC6HUF16"},
	TexFormatBC6HSF16:               {driver.TexFormatBC6HSF16, "BC6HSF16"},
	TexFormatBC7Typeless:            {driver.TexFormatBC7Typeless, "BC7Typeless"},
	TexFormatBC7Unorm:               {driver.TexFormatBC7Unorm, "BC7Unorm"},
	TexFormatBC7UnormSRGB:           {driver.TexFormatBC7UnormSRGB, "BC7UnormSRGB"},
	TexFormatETC2RGB8Unorm:          {driver.TexFormatETC2RGB8Unorm, "ETC2RGB8Unorm"},
	TexFormatETC2RGB8UnormSRGB:      {driver.TexFormatETC2RGB8UnormSRGB, "ETC2RGB8UnormSRGB"},
	TexFormatETC2RGB8A1Unorm:        {driver.TexFormatETC2RGB8A1Unorm, "ETC2RGB8A1Unorm"},
	TexFormatETC2RGB8A1UnormSRGB:    {driver.TexFormatETC2RGB8A1UnormSRGB, "ETC2RGB8A1UnormSRGB"},
	TexFormatETC2RGBA8Unorm:         {driver.TexFormatETC2RGBA8Unorm, "ETC2RGBA8Unorm"},
	TexFormatETC2RGBA8UnormSRGB:     {driver.TexFormatETC2RGBA8UnormSRGB, "ETC2RGBA8UnormSRGB"},
}

const _ = uint(len(textureFormatTable) - int(driver.TextureFormatCount))
const _ = uint(int(driver.TextureFormatCount) - len(textureFormatTable))

func (e TextureFormat) String() string { return enumString(textureFormatTable[:], e) }

func (e TextureFormat) native() driver.TextureFormat { return enumToNative(textureFormatTable[:], e) }

func textureFormatFromNative(n driver.TextureFormat) TextureFormat {
	return enumFromNative[TextureFormat](textureFormatTable[:], n, 0)
}

func (e TextureFormat) MarshalText() ([]byte, error) { return enumMarshalText(textureFormatTable[:], e) }

func (e *TextureFormat) UnmarshalText(text []byte) error {
	return enumUnmarshalText(textureFormatTable[:], e, text, 0)
}

type TextureComponentSwizzle int32

const (
	TextureComponentSwizzleIdentity TextureComponentSwizzle = iota
	TextureComponentSwizzleZero
	TextureComponentSwizzleOne
	TextureComponentSwizzleR
	TextureComponentSwizzleG
	TextureComponentSwizzleB
	TextureComponentSwizzleA
)

var textureComponentSwizzleTable = [...]enumEntry[driver.TextureComponentSwizzle]{
	TextureComponentSwizzleIdentity: {driver.TextureComponentSwizzleIdentity, "Identity"},
	TextureComponentSwizzleZero:     {driver.TextureComponentSwizzleZero, "Zero"},
	TextureComponentSwizzleOne:      {driver.TextureComponentSwizzleOne, "One"},
	TextureComponentSwizzleR:        {driver.TextureComponentSwizzleR, "R"},
	TextureComponentSwizzleG:        {driver.TextureComponentSwizzleG, "G"},
	TextureComponentSwizzleB:        {driver.TextureComponentSwizzleB, "B"},
	TextureComponentSwizzleA:        {driver.TextureComponentSwizzleA, "A"},
}

const _ = uint(len(textureComponentSwizzleTable) - int(driver.TextureComponentSwizzleCount))
const _ = uint(int(driver.TextureComponentSwizzleCount) - len(textureComponentSwizzleTable))

func (e TextureComponentSwizzle) String() string { return enumString(textureComponentSwizzleTable[:], e) }

func (e TextureComponentSwizzle) native() driver.TextureComponentSwizzle { return enumToNative(textureComponentSwizzleTable[:], e) }

func textureComponentSwizzleFromNative(n driver.TextureComponentSwizzle) TextureComponentSwizzle {
	return enumFromNative[TextureComponentSwizzle](textureComponentSwizzleTable[:], n, 0)
}

func (e TextureComponentSwizzle) MarshalText() ([]byte, error) { return enumMarshalText(textureComponentSwizzleTable[:], e) }

func (e *TextureComponentSwizzle) UnmarshalText(text []byte) error {
	return enumUnmarshalText(textureComponentSwizzleTable[:], e, text, 0)
}

// FilterType selects the sampler filtering mode.
type FilterType int32

const (
	FilterTypeUnknown FilterType = iota
	FilterTypePoint
	FilterTypeLinear
	FilterTypeAnisotropic
	FilterTypeComparisonPoint
	FilterTypeComparisonLinear
	FilterTypeComparisonAnisotropic
	FilterTypeMinimumPoint
	FilterTypeMinimumLinear
	FilterTypeMinimumAnisotropic
	FilterTypeMaximumPoint
	FilterTypeMaximumLinear
	FilterTypeMaximumAnisotropic
)

var filterTypeTable = [...]enumEntry[driver.FilterType]{
	FilterTypeUnknown:               {driver.FilterTypeUnknown, "Unknown"},
	FilterTypePoint:                 {driver.FilterTypePoint, "Point"},
	FilterTypeLinear:                {driver.FilterTypeLinear, "Linear"},
	FilterTypeAnisotropic:           {driver.FilterTypeAnisotropic, "Anisotropic"},
	FilterTypeComparisonPoint:       {driver.FilterTypeComparisonPoint, "ComparisonPoint"},
	FilterTypeComparisonLinear:      {driver.FilterTypeComparisonLinear, "ComparisonLinear"},
	FilterTypeComparisonAnisotropic: {driver.FilterTypeComparisonAnisotropic, "ComparisonAnisotropic"},
	FilterTypeMinimumPoint:          {driver.FilterTypeMinimumPoint, "MinimumPoint"},
	FilterTypeMinimumLinear:         {driver.FilterTypeMinimumLinear, "MinimumLinear"},
	FilterTypeMinimumAnisotropic:    {driver.FilterTypeMinimumAnisotropic, "MinimumAnisotropic"},
	FilterTypeMaximumPoint:          {driver.FilterTypeMaximumPoint, "MaximumPoint"},
	FilterTypeMaximumLinear:         {driver.FilterTypeMaximumLinear, "MaximumLinear"},
	FilterTypeMaximumAnisotropic:    {driver.FilterTypeMaximumAnisotropic, "MaximumAnisotropic"},
}

const _ = uint(len(filterTypeTable) - int(driver.FilterTypeCount))
const _ = uint(int(driver.FilterTypeCount) - len(filterTypeTable))

func (e FilterType) String() string { return enumString(filterTypeTable[:], e) }

func (e FilterType) native() driver.FilterType { return enumToNative(filterTypeTable[:], e) }

func filterTypeFromNative(n driver.FilterType) FilterType {
	return enumFromNative[FilterType](filterTypeTable[:], n, 0)
}

func (e FilterType) MarshalText() ([]byte, error) { return enumMarshalText(filterTypeTable[:], e) }

func (e *FilterType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(filterTypeTable[:], e, text, 0)
}

type TextureAddressMode int32

const (
	TextureAddressUnknown TextureAddressMode = iota
	TextureAddressWrap
	TextureAddressMirror
	TextureAddressClamp
	TextureAddressBorder
	TextureAddressMirrorOnce
)

var textureAddressModeTable = [...]enumEntry[driver.TextureAddressMode]{
	TextureAddressUnknown:    {driver.TextureAddressUnknown, "Unknown"},
	TextureAddressWrap:       {driver.TextureAddressWrap, "Wrap"},
	TextureAddressMirror:     {driver.TextureAddressMirror, "Mirror"},
	TextureAddressClamp:      {driver.TextureAddressClamp, "Clamp"},
	TextureAddressBorder:     {driver.TextureAddressBorder, "Border"},
	TextureAddressMirrorOnce: {driver.TextureAddressMirrorOnce, "MirrorOnce"},
}

const _ = uint(len(textureAddressModeTable) - int(driver.TextureAddressModeCount))
const _ = uint(int(driver.TextureAddressModeCount) - len(textureAddressModeTable))

func (e TextureAddressMode) String() string { return enumString(textureAddressModeTable[:], e) }

func (e TextureAddressMode) native() driver.TextureAddressMode { return enumToNative(textureAddressModeTable[:], e) }

func textureAddressModeFromNative(n driver.TextureAddressMode) TextureAddressMode {
	return enumFromNative[TextureAddressMode](textureAddressModeTable[:], n, 0)
}

func (e TextureAddressMode) MarshalText() ([]byte, error) { return enumMarshalText(textureAddressModeTable[:], e) }

func (e *TextureAddressMode) UnmarshalText(text []byte) error {
	return enumUnmarshalText(textureAddressModeTable[:], e, text, 0)
}

// ComparisonFunction is used for depth, stencil and sampler comparisons.
type ComparisonFunction int32

const (
	ComparisonFuncUnknown ComparisonFunction = iota
	ComparisonFuncNever
	ComparisonFuncLess
	ComparisonFuncEqual
	ComparisonFuncLessEqual
	ComparisonFuncGreater
	ComparisonFuncNotEqual
	ComparisonFuncGreaterEqual
	ComparisonFuncAlways
)

var comparisonFunctionTable = [...]enumEntry[driver.ComparisonFunction]{
	ComparisonFuncUnknown:      {driver.ComparisonFuncUnknown, "Unknown"},
	ComparisonFuncNever:        {driver.ComparisonFuncNever, "Never"},
	ComparisonFuncLess:         {driver.ComparisonFuncLess, "Less"},
	ComparisonFuncEqual:        {driver.ComparisonFuncEqual, "Equal"},
	ComparisonFuncLessEqual:    {driver.ComparisonFuncLessEqual, "LessEqual"},
	ComparisonFuncGreater:      {driver.ComparisonFuncGreater, "Greater"},
	ComparisonFuncNotEqual:     {driver.ComparisonFuncNotEqual, "NotEqual"},
	ComparisonFuncGreaterEqual: {driver.ComparisonFuncGreaterEqual, "GreaterEqual"},
	ComparisonFuncAlways:       {driver.ComparisonFuncAlways, "Always"},
}

const _ = uint(len(comparisonFunctionTable) - int(driver.ComparisonFunctionCount))
const _ = uint(int(driver.ComparisonFunctionCount) - len(comparisonFunctionTable))

func (e ComparisonFunction) String() string { return enumString(comparisonFunctionTable[:], e) }

func (e ComparisonFunction) native() driver.ComparisonFunction { return enumToNative(comparisonFunctionTable[:], e) }

func comparisonFunctionFromNative(n driver.ComparisonFunction) ComparisonFunction {
	return enumFromNative[ComparisonFunction](comparisonFunctionTable[:], n, 0)
}

func (e ComparisonFunction) MarshalText() ([]byte, error) { return enumMarshalText(comparisonFunctionTable[:], e) }

func (e *ComparisonFunction) UnmarshalText(text []byte) error {
	return enumUnmarshalText(comparisonFunctionTable[:], e, text, 0)
}

// ComponentType classifies the components of a texture format.
type ComponentType int32

const (
	ComponentTypeUndefined ComponentType = iota
	ComponentTypeFloat
	ComponentTypeSnorm
	ComponentTypeUnorm
	ComponentTypeUnormSRGB
	ComponentTypeSint
	ComponentTypeUint
	ComponentTypeDepth
	ComponentTypeDepthStencil
	ComponentTypeCompound
	ComponentTypeCompressed
)

var componentTypeTable = [...]enumEntry[driver.ComponentType]{
	ComponentTypeUndefined:    {driver.ComponentTypeUndefined, "Undefined"},
	ComponentTypeFloat:        {driver.ComponentTypeFloat, "Float"},
	ComponentTypeSnorm:        {driver.ComponentTypeSnorm, "Snorm"},
	ComponentTypeUnorm:        {driver.ComponentTypeUnorm, "Unorm"},
	ComponentTypeUnormSRGB:    {driver.ComponentTypeUnormSRGB, "UnormSRGB"},
	ComponentTypeSint:         {driver.ComponentTypeSint, "Sint"},
	ComponentTypeUint:         {driver.ComponentTypeUint, "Uint"},
	ComponentTypeDepth:        {driver.ComponentTypeDepth, "Depth"},
	ComponentTypeDepthStencil: {driver.ComponentTypeDepthStencil, "DepthStencil"},
	ComponentTypeCompound:     {driver.ComponentTypeCompound, "Compound"},
	ComponentTypeCompressed:   {driver.ComponentTypeCompressed, "Compressed"},
}

const _ = uint(len(componentTypeTable) - int(driver.ComponentTypeCount))
const _ = uint(int(driver.ComponentTypeCount) - len(componentTypeTable))

func (e ComponentType) String() string { return enumString(componentTypeTable[:], e) }

func (e ComponentType) native() driver.ComponentType { return enumToNative(componentTypeTable[:], e) }

func componentTypeFromNative(n driver.ComponentType) ComponentType {
	return enumFromNative[ComponentType](componentTypeTable[:], n, 0)
}

func (e ComponentType) MarshalText() ([]byte, error) { return enumMarshalText(componentTypeTable[:], e) }

func (e *ComponentType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(componentTypeTable[:], e, text, 0)
}

type DeviceMemoryType int32

const (
	DeviceMemoryTypeUndefined DeviceMemoryType = iota
	DeviceMemoryTypeSparse
)

var deviceMemoryTypeTable = [...]enumEntry[driver.DeviceMemoryType]{
	DeviceMemoryTypeUndefined: {driver.DeviceMemoryTypeUndefined, "Undefined"},
	DeviceMemoryTypeSparse:    {driver.DeviceMemoryTypeSparse, "Sparse"},
}

const _ = uint(len(deviceMemoryTypeTable) - int(driver.DeviceMemoryTypeCount))
const _ = uint(int(driver.DeviceMemoryTypeCount) - len(deviceMemoryTypeTable))

func (e DeviceMemoryType) String() string { return enumString(deviceMemoryTypeTable[:], e) }

func (e DeviceMemoryType) native() driver.DeviceMemoryType { return enumToNative(deviceMemoryTypeTable[:], e) }

func deviceMemoryTypeFromNative(n driver.DeviceMemoryType) DeviceMemoryType {
	return enumFromNative[DeviceMemoryType](deviceMemoryTypeTable[:], n, 0)
}

func (e DeviceMemoryType) MarshalText() ([]byte, error) { return enumMarshalText(deviceMemoryTypeTable[:], e) }

func (e *DeviceMemoryType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(deviceMemoryTypeTable[:], e, text, 0)
}

// BindFlags describe which parts of the pipeline a resource can be bound to.
type BindFlags int32

var bindFlagsMapping = common.NewFlagStringMapping[BindFlags]()

func (f BindFlags) Register(str string) {
	bindFlagsMapping.Register(f, str)
}
func (f BindFlags) String() string {
	return bindFlagsMapping.FlagsToString(f)
}

func (f BindFlags) native() driver.BindFlags { return driver.BindFlags(f) }

const (
	BindNone             BindFlags = BindFlags(driver.BindNone)
	BindVertexBuffer     BindFlags = BindFlags(driver.BindVertexBuffer)
	BindIndexBuffer      BindFlags = BindFlags(driver.BindIndexBuffer)
	BindUniformBuffer    BindFlags = BindFlags(driver.BindUniformBuffer)
	BindShaderResource   BindFlags = BindFlags(driver.BindShaderResource)
	BindStreamOutput     BindFlags = BindFlags(driver.BindStreamOutput)
	BindRenderTarget     BindFlags = BindFlags(driver.BindRenderTarget)
	BindDepthStencil     BindFlags = BindFlags(driver.BindDepthStencil)
	BindUnorderedAccess  BindFlags = BindFlags(driver.BindUnorderedAccess)
	BindIndirectDrawArgs BindFlags = BindFlags(driver.BindIndirectDrawArgs)
	BindInputAttachment  BindFlags = BindFlags(driver.BindInputAttachment)
	BindRayTracing       BindFlags = BindFlags(driver.BindRayTracing)
	BindShadingRate      BindFlags = BindFlags(driver.BindShadingRate)
)

// CpuAccessFlags describe how the CPU may access a resource.
type CpuAccessFlags int32

var cpuAccessFlagsMapping = common.NewFlagStringMapping[CpuAccessFlags]()

func (f CpuAccessFlags) Register(str string) {
	cpuAccessFlagsMapping.Register(f, str)
}
func (f CpuAccessFlags) String() string {
	return cpuAccessFlagsMapping.FlagsToString(f)
}

func (f CpuAccessFlags) native() driver.CpuAccessFlags { return driver.CpuAccessFlags(f) }

const (
	CpuAccessNone  CpuAccessFlags = CpuAccessFlags(driver.CpuAccessNone)
	CpuAccessRead  CpuAccessFlags = CpuAccessFlags(driver.CpuAccessRead)
	CpuAccessWrite CpuAccessFlags = CpuAccessFlags(driver.CpuAccessWrite)
)

type MiscBufferFlags int32

var miscBufferFlagsMapping = common.NewFlagStringMapping[MiscBufferFlags]()

func (f MiscBufferFlags) Register(str string) {
	miscBufferFlagsMapping.Register(f, str)
}
func (f MiscBufferFlags) String() string {
	return miscBufferFlagsMapping.FlagsToString(f)
}

func (f MiscBufferFlags) native() driver.MiscBufferFlags { return driver.MiscBufferFlags(f) }

const (
	MiscBufferFlagNone           MiscBufferFlags = MiscBufferFlags(driver.MiscBufferFlagNone)
	MiscBufferFlagSparseAliasing MiscBufferFlags = MiscBufferFlags(driver.MiscBufferFlagSparseAliasing)
)

type MiscTextureFlags int32

var miscTextureFlagsMapping = common.NewFlagStringMapping[MiscTextureFlags]()

func (f MiscTextureFlags) Register(str string) {
	miscTextureFlagsMapping.Register(f, str)
}
func (f MiscTextureFlags) String() string {
	return miscTextureFlagsMapping.FlagsToString(f)
}

func (f MiscTextureFlags) native() driver.MiscTextureFlags { return driver.MiscTextureFlags(f) }

const (
	MiscTextureFlagNone           MiscTextureFlags = MiscTextureFlags(driver.MiscTextureFlagNone)
	MiscTextureFlagGenerateMips   MiscTextureFlags = MiscTextureFlags(driver.MiscTextureFlagGenerateMips)
	MiscTextureFlagMemoryless     MiscTextureFlags = MiscTextureFlags(driver.MiscTextureFlagMemoryless)
	MiscTextureFlagSparseAliasing MiscTextureFlags = MiscTextureFlags(driver.MiscTextureFlagSparseAliasing)
	MiscTextureFlagSubsampled     MiscTextureFlags = MiscTextureFlags(driver.MiscTextureFlagSubsampled)
)

type UavAccessFlag int32

var uavAccessFlagMapping = common.NewFlagStringMapping[UavAccessFlag]()

func (f UavAccessFlag) Register(str string) {
	uavAccessFlagMapping.Register(f, str)
}
func (f UavAccessFlag) String() string {
	return uavAccessFlagMapping.FlagsToString(f)
}

func (f UavAccessFlag) native() driver.UavAccessFlag { return driver.UavAccessFlag(f) }

const (
	UavAccessFlagUnspecified UavAccessFlag = UavAccessFlag(driver.UavAccessFlagUnspecified)
	UavAccessFlagRead        UavAccessFlag = UavAccessFlag(driver.UavAccessFlagRead)
	UavAccessFlagWrite       UavAccessFlag = UavAccessFlag(driver.UavAccessFlagWrite)
	UavAccessFlagReadWrite   UavAccessFlag = UavAccessFlag(driver.UavAccessFlagReadWrite)
)

type TextureViewFlags int32

var textureViewFlagsMapping = common.NewFlagStringMapping[TextureViewFlags]()

func (f TextureViewFlags) Register(str string) {
	textureViewFlagsMapping.Register(f, str)
}
func (f TextureViewFlags) String() string {
	return textureViewFlagsMapping.FlagsToString(f)
}

func (f TextureViewFlags) native() driver.TextureViewFlags { return driver.TextureViewFlags(f) }

const (
	TextureViewFlagNone                  TextureViewFlags = TextureViewFlags(driver.TextureViewFlagNone)
	TextureViewFlagAllowMipMapGeneration TextureViewFlags = TextureViewFlags(driver.TextureViewFlagAllowMipMapGeneration)
)

type SamplerFlags int32

var samplerFlagsMapping = common.NewFlagStringMapping[SamplerFlags]()

func (f SamplerFlags) Register(str string) {
	samplerFlagsMapping.Register(f, str)
}
func (f SamplerFlags) String() string {
	return samplerFlagsMapping.FlagsToString(f)
}

func (f SamplerFlags) native() driver.SamplerFlags { return driver.SamplerFlags(f) }

const (
	SamplerFlagNone                           SamplerFlags = SamplerFlags(driver.SamplerFlagNone)
	SamplerFlagSubsampled                     SamplerFlags = SamplerFlags(driver.SamplerFlagSubsampled)
	SamplerFlagSubsampledCoarseReconstruction SamplerFlags = SamplerFlags(driver.SamplerFlagSubsampledCoarseReconstruction)
)

type MemoryProperties int32

var memoryPropertiesMapping = common.NewFlagStringMapping[MemoryProperties]()

func (f MemoryProperties) Register(str string) {
	memoryPropertiesMapping.Register(f, str)
}
func (f MemoryProperties) String() string {
	return memoryPropertiesMapping.FlagsToString(f)
}

func (f MemoryProperties) native() driver.MemoryProperties { return driver.MemoryProperties(f) }

const (
	MemoryPropertyUnknown      MemoryProperties = MemoryProperties(driver.MemoryPropertyUnknown)
	MemoryPropertyHostCoherent MemoryProperties = MemoryProperties(driver.MemoryPropertyHostCoherent)
)

// ResourceState is the engine-tracked state of a buffer, texture or acceleration structure.
type ResourceState int32

var resourceStateMapping = common.NewFlagStringMapping[ResourceState]()

func (f ResourceState) Register(str string) {
	resourceStateMapping.Register(f, str)
}
func (f ResourceState) String() string {
	return resourceStateMapping.FlagsToString(f)
}

func (f ResourceState) native() driver.ResourceState { return driver.ResourceState(f) }

const (
	ResourceStateUnknown          ResourceState = ResourceState(driver.ResourceStateUnknown)
	ResourceStateUndefined        ResourceState = ResourceState(driver.ResourceStateUndefined)
	ResourceStateVertexBuffer     ResourceState = ResourceState(driver.ResourceStateVertexBuffer)
	ResourceStateConstantBuffer   ResourceState = ResourceState(driver.ResourceStateConstantBuffer)
	ResourceStateIndexBuffer      ResourceState = ResourceState(driver.ResourceStateIndexBuffer)
	ResourceStateRenderTarget     ResourceState = ResourceState(driver.ResourceStateRenderTarget)
	ResourceStateUnorderedAccess  ResourceState = ResourceState(driver.ResourceStateUnorderedAccess)
	ResourceStateDepthWrite       ResourceState = ResourceState(driver.ResourceStateDepthWrite)
	ResourceStateDepthRead        ResourceState = ResourceState(driver.ResourceStateDepthRead)
	ResourceStateShaderResource   ResourceState = ResourceState(driver.ResourceStateShaderResource)
	ResourceStateStreamOut        ResourceState = ResourceState(driver.ResourceStateStreamOut)
	ResourceStateIndirectArgument ResourceState = ResourceState(driver.ResourceStateIndirectArgument)
	ResourceStateCopyDest         ResourceState = ResourceState(driver.ResourceStateCopyDest)
	ResourceStateCopySource       ResourceState = ResourceState(driver.ResourceStateCopySource)
	ResourceStateResolveDest      ResourceState = ResourceState(driver.ResourceStateResolveDest)
	ResourceStateResolveSource    ResourceState = ResourceState(driver.ResourceStateResolveSource)
	ResourceStateInputAttachment  ResourceState = ResourceState(driver.ResourceStateInputAttachment)
	ResourceStatePresent          ResourceState = ResourceState(driver.ResourceStatePresent)
	ResourceStateBuildASRead      ResourceState = ResourceState(driver.ResourceStateBuildASRead)
	ResourceStateBuildASWrite     ResourceState = ResourceState(driver.ResourceStateBuildASWrite)
	ResourceStateRayTracing       ResourceState = ResourceState(driver.ResourceStateRayTracing)
	ResourceStateCommon           ResourceState = ResourceState(driver.ResourceStateCommon)
	ResourceStateShadingRate      ResourceState = ResourceState(driver.ResourceStateShadingRate)
	ResourceStateGenericRead      ResourceState = ResourceState(driver.ResourceStateGenericRead)
)

func init() {
	BindVertexBuffer.Register("VertexBuffer")
	BindIndexBuffer.Register("IndexBuffer")
	BindUniformBuffer.Register("UniformBuffer")
	BindShaderResource.Register("ShaderResource")
	BindStreamOutput.Register("StreamOutput")
	BindRenderTarget.Register("RenderTarget")
	BindDepthStencil.Register("DepthStencil")
	BindUnorderedAccess.Register("UnorderedAccess")
	BindIndirectDrawArgs.Register("IndirectDrawArgs")
	BindInputAttachment.Register("InputAttachment")
	BindRayTracing.Register("RayTracing")
	BindShadingRate.Register("ShadingRate")
	CpuAccessRead.Register("Read")
	CpuAccessWrite.Register("Write")
	MiscBufferFlagSparseAliasing.Register("SparseAliasing")
	MiscTextureFlagGenerateMips.Register("GenerateMips")
	MiscTextureFlagMemoryless.Register("Memoryless")
	MiscTextureFlagSparseAliasing.Register("SparseAliasing")
	MiscTextureFlagSubsampled.Register("Subsampled")
	UavAccessFlagRead.Register("Read")
	UavAccessFlagWrite.Register("Write")
	TextureViewFlagAllowMipMapGeneration.Register("AllowMipMapGeneration")
	SamplerFlagSubsampled.Register("Subsampled")
	SamplerFlagSubsampledCoarseReconstruction.Register("SubsampledCoarseReconstruction")
	MemoryPropertyHostCoherent.Register("HostCoherent")
	ResourceStateUndefined.Register("Undefined")
	ResourceStateVertexBuffer.Register("VertexBuffer")
	ResourceStateConstantBuffer.Register("ConstantBuffer")
	ResourceStateIndexBuffer.Register("IndexBuffer")
	ResourceStateRenderTarget.Register("RenderTarget")
	ResourceStateUnorderedAccess.Register("UnorderedAccess")
	ResourceStateDepthWrite.Register("DepthWrite")
	ResourceStateDepthRead.Register("DepthRead")
	ResourceStateShaderResource.Register("ShaderResource")
	ResourceStateStreamOut.Register("StreamOut")
	ResourceStateIndirectArgument.Register("IndirectArgument")
	ResourceStateCopyDest.Register("CopyDest")
	ResourceStateCopySource.Register("CopySource")
	ResourceStateResolveDest.Register("ResolveDest")
	ResourceStateResolveSource.Register("ResolveSource")
	ResourceStateInputAttachment.Register("InputAttachment")
	ResourceStatePresent.Register("Present")
	ResourceStateBuildASRead.Register("BuildASRead")
	ResourceStateBuildASWrite.Register("BuildASWrite")
	ResourceStateRayTracing.Register("RayTracing")
	ResourceStateCommon.Register("Common")
	ResourceStateShadingRate.Register("ShadingRate")
}
