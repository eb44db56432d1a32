package diligent

import (
	"math"
	"unsafe"

	"github.com/vkngwrapper/diligent/driver"
)

// BufferDesc describes a buffer. Use NewBufferDesc for the engine defaults.
type BufferDesc struct {
	Name              string
	Size              uint64
	BindFlags         BindFlags
	Usage             Usage
	CPUAccessFlags    CpuAccessFlags
	Mode              BufferMode
	MiscFlags         MiscBufferFlags
	ElementByteStride uint32
	// ImmediateContextMask selects the immediate contexts the buffer may be used in.
	ImmediateContextMask uint64
}

func NewBufferDesc() BufferDesc {
	return BufferDesc{
		Usage:                UsageDefault,
		CPUAccessFlags:       CpuAccessNone,
		ImmediateContextMask: 1,
	}
}

func (d *BufferDesc) marshal(arena *driver.Arena) driver.BufferDesc {
	return driver.BufferDesc{
		DeviceObjectAttribs:  driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		Size:                 d.Size,
		BindFlags:            d.BindFlags.native(),
		Usage:                d.Usage.native(),
		CPUAccessFlags:       d.CPUAccessFlags.native(),
		Mode:                 d.Mode.native(),
		MiscFlags:            d.MiscFlags.native(),
		ElementByteStride:    d.ElementByteStride,
		ImmediateContextMask: d.ImmediateContextMask,
	}
}

func bufferDescFromNative(n *driver.BufferDesc) BufferDesc {
	return BufferDesc{
		Name:                 driver.GoString(n.Name),
		Size:                 n.Size,
		BindFlags:            BindFlags(n.BindFlags),
		Usage:                usageFromNative(n.Usage),
		CPUAccessFlags:       CpuAccessFlags(n.CPUAccessFlags),
		Mode:                 bufferModeFromNative(n.Mode),
		MiscFlags:            MiscBufferFlags(n.MiscFlags),
		ElementByteStride:    n.ElementByteStride,
		ImmediateContextMask: n.ImmediateContextMask,
	}
}

// BufferData is the initial content of a buffer.
type BufferData struct {
	Data []byte
	// Context is the context used to upload the data. Nil selects the default
	// immediate context.
	Context *DeviceContext
}

func (d *BufferData) marshal(arena *driver.Arena) *driver.BufferData {
	if d == nil {
		return nil
	}
	return driver.New(arena, driver.BufferData{
		Data:     arena.Bytes(d.Data),
		DataSize: uint64(len(d.Data)),
		Context:  d.Context.handle(),
	})
}

type BufferFormat struct {
	ValueType     ValueType
	NumComponents uint8
	IsNormalized  bool
}

func (f BufferFormat) marshal() driver.BufferFormat {
	return driver.BufferFormat{
		ValueType:     f.ValueType.native(),
		NumComponents: f.NumComponents,
		IsNormalized:  f.IsNormalized,
	}
}

func bufferFormatFromNative(n driver.BufferFormat) BufferFormat {
	return BufferFormat{
		ValueType:     valueTypeFromNative(n.ValueType),
		NumComponents: n.NumComponents,
		IsNormalized:  n.IsNormalized,
	}
}

// BufferViewDesc describes a view of a buffer. A ByteWidth of 0 views the rest of the
// buffer after ByteOffset.
type BufferViewDesc struct {
	Name       string
	ViewType   BufferViewType
	Format     BufferFormat
	ByteOffset uint64
	ByteWidth  uint64
}

func (d *BufferViewDesc) marshal(arena *driver.Arena) driver.BufferViewDesc {
	return driver.BufferViewDesc{
		DeviceObjectAttribs: driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		ViewType:            d.ViewType.native(),
		Format:              d.Format.marshal(),
		ByteOffset:          d.ByteOffset,
		ByteWidth:           d.ByteWidth,
	}
}

func bufferViewDescFromNative(n *driver.BufferViewDesc) BufferViewDesc {
	return BufferViewDesc{
		Name:       driver.GoString(n.Name),
		ViewType:   bufferViewTypeFromNative(n.ViewType),
		Format:     bufferFormatFromNative(n.Format),
		ByteOffset: n.ByteOffset,
		ByteWidth:  n.ByteWidth,
	}
}

type DepthStencilClearValue struct {
	Depth   float32
	Stencil uint8
}

// OptimizedClearValue is the clear value a render target or depth buffer is optimized for.
type OptimizedClearValue struct {
	Format       TextureFormat
	Color        [4]float32
	DepthStencil DepthStencilClearValue
}

func NewOptimizedClearValue() OptimizedClearValue {
	return OptimizedClearValue{DepthStencil: DepthStencilClearValue{Depth: 1}}
}

func (v OptimizedClearValue) marshal() driver.OptimizedClearValue {
	return driver.OptimizedClearValue{
		Format: v.Format.native(),
		Color:  v.Color,
		DepthStencil: driver.DepthStencilClearValue{
			Depth:   v.DepthStencil.Depth,
			Stencil: v.DepthStencil.Stencil,
		},
	}
}

func optimizedClearValueFromNative(n driver.OptimizedClearValue) OptimizedClearValue {
	return OptimizedClearValue{
		Format: textureFormatFromNative(n.Format),
		Color:  n.Color,
		DepthStencil: DepthStencilClearValue{
			Depth:   n.DepthStencil.Depth,
			Stencil: n.DepthStencil.Stencil,
		},
	}
}

// TextureDesc describes a texture. Use NewTextureDesc for the engine defaults.
type TextureDesc struct {
	Name   string
	Type   ResourceDimension
	Width  uint32
	Height uint32
	// ArraySizeOrDepth is the array size of array textures and the depth of 3D textures.
	ArraySizeOrDepth     uint32
	Format               TextureFormat
	MipLevels            uint32
	SampleCount          uint32
	BindFlags            BindFlags
	Usage                Usage
	CPUAccessFlags       CpuAccessFlags
	MiscFlags            MiscTextureFlags
	ClearValue           OptimizedClearValue
	ImmediateContextMask uint64
}

func NewTextureDesc() TextureDesc {
	return TextureDesc{
		Height:               1,
		ArraySizeOrDepth:     1,
		MipLevels:            1,
		SampleCount:          1,
		Usage:                UsageDefault,
		CPUAccessFlags:       CpuAccessNone,
		ClearValue:           NewOptimizedClearValue(),
		ImmediateContextMask: 1,
	}
}

func (d *TextureDesc) marshal(arena *driver.Arena) driver.TextureDesc {
	return driver.TextureDesc{
		DeviceObjectAttribs:  driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		Type:                 d.Type.native(),
		Width:                d.Width,
		Height:               d.Height,
		ArraySizeOrDepth:     d.ArraySizeOrDepth,
		Format:               d.Format.native(),
		MipLevels:            d.MipLevels,
		SampleCount:          d.SampleCount,
		BindFlags:            d.BindFlags.native(),
		Usage:                d.Usage.native(),
		CPUAccessFlags:       d.CPUAccessFlags.native(),
		MiscFlags:            d.MiscFlags.native(),
		ClearValue:           d.ClearValue.marshal(),
		ImmediateContextMask: d.ImmediateContextMask,
	}
}

func textureDescFromNative(n *driver.TextureDesc) TextureDesc {
	return TextureDesc{
		Name:                 driver.GoString(n.Name),
		Type:                 resourceDimensionFromNative(n.Type),
		Width:                n.Width,
		Height:               n.Height,
		ArraySizeOrDepth:     n.ArraySizeOrDepth,
		Format:               textureFormatFromNative(n.Format),
		MipLevels:            n.MipLevels,
		SampleCount:          n.SampleCount,
		BindFlags:            BindFlags(n.BindFlags),
		Usage:                usageFromNative(n.Usage),
		CPUAccessFlags:       CpuAccessFlags(n.CPUAccessFlags),
		MiscFlags:            MiscTextureFlags(n.MiscFlags),
		ClearValue:           optimizedClearValueFromNative(n.ClearValue),
		ImmediateContextMask: n.ImmediateContextMask,
	}
}

// TextureSubResData is the content of one subresource. Exactly one of Data and
// SrcBuffer is set.
type TextureSubResData struct {
	Data        []byte
	SrcBuffer   *Buffer
	SrcOffset   uint64
	Stride      uint64
	DepthStride uint64
}

func (d *TextureSubResData) marshal(arena *driver.Arena) driver.TextureSubResData {
	return driver.TextureSubResData{
		Data:        arena.Bytes(d.Data),
		SrcBuffer:   d.SrcBuffer.handle(),
		SrcOffset:   d.SrcOffset,
		Stride:      d.Stride,
		DepthStride: d.DepthStride,
	}
}

// TextureData is the initial content of a texture, one entry per subresource in
// mip-major order within each array slice.
type TextureData struct {
	SubResources []TextureSubResData
	Context      *DeviceContext
}

func (d *TextureData) marshal(arena *driver.Arena) *driver.TextureData {
	if d == nil {
		return nil
	}
	subResources, count := driver.MarshalSlice(arena, d.SubResources, func(a *driver.Arena, s *TextureSubResData) driver.TextureSubResData {
		return s.marshal(a)
	})
	return driver.New(arena, driver.TextureData{
		SubResources:    subResources,
		NumSubresources: count,
		Context:         d.Context.handle(),
	})
}

type TextureComponentMapping struct {
	R TextureComponentSwizzle
	G TextureComponentSwizzle
	B TextureComponentSwizzle
	A TextureComponentSwizzle
}

func (m TextureComponentMapping) marshal() driver.TextureComponentMapping {
	return driver.TextureComponentMapping{
		R: m.R.native(),
		G: m.G.native(),
		B: m.B.native(),
		A: m.A.native(),
	}
}

func textureComponentMappingFromNative(n driver.TextureComponentMapping) TextureComponentMapping {
	return TextureComponentMapping{
		R: textureComponentSwizzleFromNative(n.R),
		G: textureComponentSwizzleFromNative(n.G),
		B: textureComponentSwizzleFromNative(n.B),
		A: textureComponentSwizzleFromNative(n.A),
	}
}

// TextureViewDesc describes a view of a texture. Zero counts view every remaining mip
// level or slice.
type TextureViewDesc struct {
	Name                        string
	ViewType                    TextureViewType
	TextureDim                  ResourceDimension
	Format                      TextureFormat
	MostDetailedMip             uint32
	NumMipLevels                uint32
	FirstArraySliceOrDepthSlice uint32
	NumArraySlicesOrDepthSlices uint32
	AccessFlags                 UavAccessFlag
	Flags                       TextureViewFlags
	Swizzle                     TextureComponentMapping
}

func (d *TextureViewDesc) marshal(arena *driver.Arena) driver.TextureViewDesc {
	return driver.TextureViewDesc{
		DeviceObjectAttribs:         driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		ViewType:                    d.ViewType.native(),
		TextureDim:                  d.TextureDim.native(),
		Format:                      d.Format.native(),
		MostDetailedMip:             d.MostDetailedMip,
		NumMipLevels:                d.NumMipLevels,
		FirstArraySliceOrDepthSlice: d.FirstArraySliceOrDepthSlice,
		NumArraySlicesOrDepthSlices: d.NumArraySlicesOrDepthSlices,
		AccessFlags:                 d.AccessFlags.native(),
		Flags:                       d.Flags.native(),
		Swizzle:                     d.Swizzle.marshal(),
	}
}

func textureViewDescFromNative(n *driver.TextureViewDesc) TextureViewDesc {
	return TextureViewDesc{
		Name:                        driver.GoString(n.Name),
		ViewType:                    textureViewTypeFromNative(n.ViewType),
		TextureDim:                  resourceDimensionFromNative(n.TextureDim),
		Format:                      textureFormatFromNative(n.Format),
		MostDetailedMip:             n.MostDetailedMip,
		NumMipLevels:                n.NumMipLevels,
		FirstArraySliceOrDepthSlice: n.FirstArraySliceOrDepthSlice,
		NumArraySlicesOrDepthSlices: n.NumArraySlicesOrDepthSlices,
		AccessFlags:                 UavAccessFlag(n.AccessFlags),
		Flags:                       TextureViewFlags(n.Flags),
		Swizzle:                     textureComponentMappingFromNative(n.Swizzle),
	}
}

// SamplerDesc describes a sampler. Use NewSamplerDesc for the engine defaults.
type SamplerDesc struct {
	Name               string
	MinFilter          FilterType
	MagFilter          FilterType
	MipFilter          FilterType
	AddressU           TextureAddressMode
	AddressV           TextureAddressMode
	AddressW           TextureAddressMode
	Flags              SamplerFlags
	UnnormalizedCoords bool
	MipLODBias         float32
	MaxAnisotropy      uint32
	ComparisonFunc     ComparisonFunction
	BorderColor        [4]float32
	MinLOD             float32
	MaxLOD             float32
}

func NewSamplerDesc() SamplerDesc {
	return SamplerDesc{
		MinFilter:      FilterTypeLinear,
		MagFilter:      FilterTypeLinear,
		MipFilter:      FilterTypeLinear,
		AddressU:       TextureAddressClamp,
		AddressV:       TextureAddressClamp,
		AddressW:       TextureAddressClamp,
		ComparisonFunc: ComparisonFuncNever,
		MaxLOD:         math.MaxFloat32,
	}
}

func (d *SamplerDesc) marshal(arena *driver.Arena) driver.SamplerDesc {
	return driver.SamplerDesc{
		DeviceObjectAttribs: driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		MinFilter:           d.MinFilter.native(),
		MagFilter:           d.MagFilter.native(),
		MipFilter:           d.MipFilter.native(),
		AddressU:            d.AddressU.native(),
		AddressV:            d.AddressV.native(),
		AddressW:            d.AddressW.native(),
		Flags:               d.Flags.native(),
		UnnormalizedCoords:  d.UnnormalizedCoords,
		MipLODBias:          d.MipLODBias,
		MaxAnisotropy:       d.MaxAnisotropy,
		ComparisonFunc:      d.ComparisonFunc.native(),
		BorderColor:         d.BorderColor,
		MinLOD:              d.MinLOD,
		MaxLOD:              d.MaxLOD,
	}
}

func samplerDescFromNative(n *driver.SamplerDesc) SamplerDesc {
	return SamplerDesc{
		Name:               driver.GoString(n.Name),
		MinFilter:          filterTypeFromNative(n.MinFilter),
		MagFilter:          filterTypeFromNative(n.MagFilter),
		MipFilter:          filterTypeFromNative(n.MipFilter),
		AddressU:           textureAddressModeFromNative(n.AddressU),
		AddressV:           textureAddressModeFromNative(n.AddressV),
		AddressW:           textureAddressModeFromNative(n.AddressW),
		Flags:              SamplerFlags(n.Flags),
		UnnormalizedCoords: n.UnnormalizedCoords,
		MipLODBias:         n.MipLODBias,
		MaxAnisotropy:      n.MaxAnisotropy,
		ComparisonFunc:     comparisonFunctionFromNative(n.ComparisonFunc),
		BorderColor:        n.BorderColor,
		MinLOD:             n.MinLOD,
		MaxLOD:             n.MaxLOD,
	}
}

type DeviceMemoryDesc struct {
	Name                 string
	Type                 DeviceMemoryType
	PageSize             uint64
	ImmediateContextMask uint64
}

func (d *DeviceMemoryDesc) marshal(arena *driver.Arena) driver.DeviceMemoryDesc {
	return driver.DeviceMemoryDesc{
		DeviceObjectAttribs:  driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		Type:                 d.Type.native(),
		PageSize:             d.PageSize,
		ImmediateContextMask: d.ImmediateContextMask,
	}
}

func deviceMemoryDescFromNative(n *driver.DeviceMemoryDesc) DeviceMemoryDesc {
	return DeviceMemoryDesc{
		Name:                 driver.GoString(n.Name),
		Type:                 deviceMemoryTypeFromNative(n.Type),
		PageSize:             n.PageSize,
		ImmediateContextMask: n.ImmediateContextMask,
	}
}

// DeviceMemoryCreateInfo describes a sparse memory object. CompatibleResources lists
// the resources the memory will be bound to.
type DeviceMemoryCreateInfo struct {
	Desc                DeviceMemoryDesc
	InitialSize         uint64
	CompatibleResources []DeviceObject
}

func NewDeviceMemoryCreateInfo() DeviceMemoryCreateInfo {
	return DeviceMemoryCreateInfo{
		Desc: DeviceMemoryDesc{ImmediateContextMask: 1},
	}
}

func (ci *DeviceMemoryCreateInfo) marshal(arena *driver.Arena) driver.DeviceMemoryCreateInfo {
	return driver.DeviceMemoryCreateInfo{
		Desc:                ci.Desc.marshal(arena),
		InitialSize:         ci.InitialSize,
		CompatibleResources: handles(arena, ci.CompatibleResources),
		NumResources:        uint32(len(ci.CompatibleResources)),
	}
}

type FenceDesc struct {
	Name string
	Type FenceType
}

func (d *FenceDesc) marshal(arena *driver.Arena) driver.FenceDesc {
	return driver.FenceDesc{
		DeviceObjectAttribs: driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		Type:                d.Type.native(),
	}
}

func fenceDescFromNative(n *driver.FenceDesc) FenceDesc {
	return FenceDesc{Name: driver.GoString(n.Name), Type: fenceTypeFromNative(n.Type)}
}

type QueryDesc struct {
	Name string
	Type QueryType
}

func (d *QueryDesc) marshal(arena *driver.Arena) driver.QueryDesc {
	return driver.QueryDesc{
		DeviceObjectAttribs: driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		Type:                d.Type.native(),
	}
}

func queryDescFromNative(n *driver.QueryDesc) QueryDesc {
	return QueryDesc{Name: driver.GoString(n.Name), Type: queryTypeFromNative(n.Type)}
}

// ResourceMappingEntry binds Object to Name at ArrayIndex.
type ResourceMappingEntry struct {
	Name       string
	Object     DeviceObject
	ArrayIndex uint32
}

type ResourceMappingCreateInfo struct {
	Entries []ResourceMappingEntry
}

func (ci *ResourceMappingCreateInfo) marshal(arena *driver.Arena) driver.ResourceMappingCreateInfo {
	entries, count := driver.MarshalSlice(arena, ci.Entries, func(a *driver.Arena, e *ResourceMappingEntry) driver.ResourceMappingEntry {
		return driver.ResourceMappingEntry{
			Name:       a.CString(e.Name),
			Object:     handleOf(e.Object),
			ArrayIndex: e.ArrayIndex,
		}
	})
	return driver.ResourceMappingCreateInfo{Entries: entries, NumEntries: count}
}

type PipelineStateCacheDesc struct {
	Name  string
	Mode  PSOCacheMode
	Flags PSOCacheFlags
}

func pipelineStateCacheDescFromNative(n *driver.PipelineStateCacheDesc) PipelineStateCacheDesc {
	return PipelineStateCacheDesc{
		Name:  driver.GoString(n.Name),
		Mode:  PSOCacheMode(n.Mode),
		Flags: PSOCacheFlags(n.Flags),
	}
}

// PipelineStateCacheCreateInfo creates a cache, optionally primed with data previously
// returned by PipelineStateCache.Data.
type PipelineStateCacheCreateInfo struct {
	Desc      PipelineStateCacheDesc
	CacheData []byte
}

func NewPipelineStateCacheCreateInfo() PipelineStateCacheCreateInfo {
	return PipelineStateCacheCreateInfo{Desc: PipelineStateCacheDesc{Mode: PSOCacheModeLoadStore}}
}

func (ci *PipelineStateCacheCreateInfo) marshal(arena *driver.Arena) driver.PipelineStateCacheCreateInfo {
	return driver.PipelineStateCacheCreateInfo{
		Desc: driver.PipelineStateCacheDesc{
			DeviceObjectAttribs: driver.DeviceObjectAttribs{Name: arena.CString(ci.Desc.Name)},
			Mode:                ci.Desc.Mode.native(),
			Flags:               ci.Desc.Flags.native(),
		},
		CacheData:     arena.Bytes(ci.CacheData),
		CacheDataSize: uint32(len(ci.CacheData)),
	}
}

// TextureFormatInfo describes the layout of a texture format.
type TextureFormatInfo struct {
	Name          string
	Format        TextureFormat
	ComponentSize uint8
	NumComponents uint8
	ComponentType ComponentType
	IsTypeless    bool
	BlockWidth    uint8
	BlockHeight   uint8
}

// IsCompressed reports whether the format is block-compressed.
func (i *TextureFormatInfo) IsCompressed() bool {
	return i.ComponentType == ComponentTypeCompressed
}

// TexelSize is the size in bytes of one texel, or of one block for compressed formats.
func (i *TextureFormatInfo) TexelSize() uint32 {
	if i.IsCompressed() {
		return uint32(i.ComponentSize)
	}
	return uint32(i.ComponentSize) * uint32(i.NumComponents)
}

func textureFormatInfoFromNative(n *driver.TextureFormatInfo) TextureFormatInfo {
	return TextureFormatInfo{
		Name:          driver.GoString(n.Name),
		Format:        textureFormatFromNative(n.Format),
		ComponentSize: n.ComponentSize,
		NumComponents: n.NumComponents,
		ComponentType: componentTypeFromNative(n.ComponentType),
		IsTypeless:    n.IsTypeless,
		BlockWidth:    n.BlockWidth,
		BlockHeight:   n.BlockHeight,
	}
}

// TextureFormatInfoExt adds the device's support for the format.
type TextureFormatInfoExt struct {
	TextureFormatInfo
	BindFlags    BindFlags
	Dimensions   uint32
	SampleCounts uint32
	Filterable   bool
}

func textureFormatInfoExtFromNative(n *driver.TextureFormatInfoExt) TextureFormatInfoExt {
	return TextureFormatInfoExt{
		TextureFormatInfo: textureFormatInfoFromNative(&n.TextureFormatInfo),
		BindFlags:         BindFlags(n.BindFlags),
		Dimensions:        n.Dimensions,
		SampleCounts:      n.SampleCounts,
		Filterable:        n.Filterable,
	}
}

// bytesAt views size bytes of native memory at p.
func bytesAt(p unsafe.Pointer, size uint64) []byte {
	if p == nil || size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), size)
}
