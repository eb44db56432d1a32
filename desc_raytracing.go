package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
)

type BLASTriangleDesc struct {
	GeometryName         string
	MaxVertexCount       uint32
	VertexValueType      ValueType
	VertexComponentCount uint8
	MaxPrimitiveCount    uint32
	// IndexType is VtUndefined for non-indexed geometry.
	IndexType        ValueType
	AllowsTransforms bool
}

type BLASBoundingBoxDesc struct {
	GeometryName string
	MaxBoxCount  uint32
}

type BottomLevelASDesc struct {
	Name      string
	Triangles []BLASTriangleDesc
	Boxes     []BLASBoundingBoxDesc
	Flags     RayTracingBuildAsFlags
	// CompactedSize is set only for a BLAS that will be the target of a compacting copy,
	// in which case Triangles and Boxes are empty.
	CompactedSize        uint64
	ImmediateContextMask uint64
}

func NewBottomLevelASDesc() BottomLevelASDesc {
	return BottomLevelASDesc{ImmediateContextMask: 1}
}

func (d *BottomLevelASDesc) marshal(arena *driver.Arena) driver.BottomLevelASDesc {
	triangles, triangleCount := driver.MarshalSlice(arena, d.Triangles, func(a *driver.Arena, t *BLASTriangleDesc) driver.BLASTriangleDesc {
		return driver.BLASTriangleDesc{
			GeometryName:         a.CString(t.GeometryName),
			MaxVertexCount:       t.MaxVertexCount,
			VertexValueType:      t.VertexValueType.native(),
			VertexComponentCount: t.VertexComponentCount,
			MaxPrimitiveCount:    t.MaxPrimitiveCount,
			IndexType:            t.IndexType.native(),
			AllowsTransforms:     t.AllowsTransforms,
		}
	})
	boxes, boxCount := driver.MarshalSlice(arena, d.Boxes, func(a *driver.Arena, b *BLASBoundingBoxDesc) driver.BLASBoundingBoxDesc {
		return driver.BLASBoundingBoxDesc{GeometryName: a.CString(b.GeometryName), MaxBoxCount: b.MaxBoxCount}
	})

	return driver.BottomLevelASDesc{
		DeviceObjectAttribs:  driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		Triangles:            triangles,
		TriangleCount:        triangleCount,
		Boxes:                boxes,
		BoxCount:             boxCount,
		Flags:                d.Flags.native(),
		CompactedSize:        d.CompactedSize,
		ImmediateContextMask: d.ImmediateContextMask,
	}
}

func bottomLevelASDescFromNative(n *driver.BottomLevelASDesc) BottomLevelASDesc {
	desc := BottomLevelASDesc{
		Name:                 driver.GoString(n.Name),
		Flags:                RayTracingBuildAsFlags(n.Flags),
		CompactedSize:        n.CompactedSize,
		ImmediateContextMask: n.ImmediateContextMask,
	}
	for _, t := range driver.GoSlice(n.Triangles, n.TriangleCount) {
		desc.Triangles = append(desc.Triangles, BLASTriangleDesc{
			GeometryName:         driver.GoString(t.GeometryName),
			MaxVertexCount:       t.MaxVertexCount,
			VertexValueType:      valueTypeFromNative(t.VertexValueType),
			VertexComponentCount: t.VertexComponentCount,
			MaxPrimitiveCount:    t.MaxPrimitiveCount,
			IndexType:            valueTypeFromNative(t.IndexType),
			AllowsTransforms:     t.AllowsTransforms,
		})
	}
	for _, b := range driver.GoSlice(n.Boxes, n.BoxCount) {
		desc.Boxes = append(desc.Boxes, BLASBoundingBoxDesc{GeometryName: driver.GoString(b.GeometryName), MaxBoxCount: b.MaxBoxCount})
	}
	return desc
}

type TopLevelASDesc struct {
	Name                 string
	MaxInstanceCount     uint32
	Flags                RayTracingBuildAsFlags
	CompactedSize        uint64
	ImmediateContextMask uint64
}

func NewTopLevelASDesc() TopLevelASDesc {
	return TopLevelASDesc{ImmediateContextMask: 1}
}

func (d *TopLevelASDesc) marshal(arena *driver.Arena) driver.TopLevelASDesc {
	return driver.TopLevelASDesc{
		DeviceObjectAttribs:  driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		MaxInstanceCount:     d.MaxInstanceCount,
		Flags:                d.Flags.native(),
		CompactedSize:        d.CompactedSize,
		ImmediateContextMask: d.ImmediateContextMask,
	}
}

func topLevelASDescFromNative(n *driver.TopLevelASDesc) TopLevelASDesc {
	return TopLevelASDesc{
		Name:                 driver.GoString(n.Name),
		MaxInstanceCount:     n.MaxInstanceCount,
		Flags:                RayTracingBuildAsFlags(n.Flags),
		CompactedSize:        n.CompactedSize,
		ImmediateContextMask: n.ImmediateContextMask,
	}
}

type ScratchBufferSizes struct {
	Build  uint64
	Update uint64
}

// TLASInstanceDesc is what a TopLevelAS remembers about one of its instances after a
// build. BLAS is a new reference that the caller releases.
type TLASInstanceDesc struct {
	ContributionToHitGroupIndex uint32
	InstanceIndex               uint32
	BLAS                        *BottomLevelAS
}

type TLASBuildInfo struct {
	HitGroupStride                   uint32
	FirstContributionToHitGroupIndex uint32
	LastContributionToHitGroupIndex  uint32
	BindingMode                      HitGroupBindingMode
	InstanceCount                    uint32
}

type ShaderBindingTableDesc struct {
	Name     string
	Pipeline *PipelineState
}

func (d *ShaderBindingTableDesc) marshal(arena *driver.Arena) driver.ShaderBindingTableDesc {
	return driver.ShaderBindingTableDesc{
		DeviceObjectAttribs: driver.DeviceObjectAttribs{Name: arena.CString(d.Name)},
		Pipeline:            d.Pipeline.handle(),
	}
}

type BLASBuildTriangleData struct {
	GeometryName          string
	VertexBuffer          *Buffer
	VertexOffset          uint64
	VertexStride          uint32
	VertexCount           uint32
	VertexValueType       ValueType
	VertexComponentCount  uint8
	PrimitiveCount        uint32
	IndexBuffer           *Buffer
	IndexOffset           uint64
	IndexType             ValueType
	TransformBuffer       *Buffer
	TransformBufferOffset uint64
	Flags                 RayTracingGeometryFlags
}

type BLASBuildBoundingBoxData struct {
	GeometryName string
	BoxBuffer    *Buffer
	BoxOffset    uint64
	BoxStride    uint32
	BoxCount     uint32
	Flags        RayTracingGeometryFlags
}

type BuildBLASAttribs struct {
	BLAS                        *BottomLevelAS
	BLASTransitionMode          ResourceStateTransitionMode
	GeometryTransitionMode      ResourceStateTransitionMode
	TriangleData                []BLASBuildTriangleData
	BoxData                     []BLASBuildBoundingBoxData
	ScratchBuffer               *Buffer
	ScratchBufferOffset         uint64
	ScratchBufferTransitionMode ResourceStateTransitionMode
	Update                      bool
}

func (a *BuildBLASAttribs) marshal(arena *driver.Arena) *driver.BuildBLASAttribs {
	triangles, triangleCount := driver.MarshalSlice(arena, a.TriangleData, func(ar *driver.Arena, t *BLASBuildTriangleData) driver.BLASBuildTriangleData {
		return driver.BLASBuildTriangleData{
			GeometryName:          ar.CString(t.GeometryName),
			VertexBuffer:          t.VertexBuffer.handle(),
			VertexOffset:          t.VertexOffset,
			VertexStride:          t.VertexStride,
			VertexCount:           t.VertexCount,
			VertexValueType:       t.VertexValueType.native(),
			VertexComponentCount:  t.VertexComponentCount,
			PrimitiveCount:        t.PrimitiveCount,
			IndexBuffer:           t.IndexBuffer.handle(),
			IndexOffset:           t.IndexOffset,
			IndexType:             t.IndexType.native(),
			TransformBuffer:       t.TransformBuffer.handle(),
			TransformBufferOffset: t.TransformBufferOffset,
			Flags:                 t.Flags.native(),
		}
	})
	boxes, boxCount := driver.MarshalSlice(arena, a.BoxData, func(ar *driver.Arena, b *BLASBuildBoundingBoxData) driver.BLASBuildBoundingBoxData {
		return driver.BLASBuildBoundingBoxData{
			GeometryName: ar.CString(b.GeometryName),
			BoxBuffer:    b.BoxBuffer.handle(),
			BoxOffset:    b.BoxOffset,
			BoxStride:    b.BoxStride,
			BoxCount:     b.BoxCount,
			Flags:        b.Flags.native(),
		}
	})

	return driver.New(arena, driver.BuildBLASAttribs{
		BLAS:                        a.BLAS.handle(),
		BLASTransitionMode:          a.BLASTransitionMode.native(),
		GeometryTransitionMode:      a.GeometryTransitionMode.native(),
		TriangleData:                triangles,
		TriangleDataCount:           triangleCount,
		BoxData:                     boxes,
		BoxDataCount:                boxCount,
		ScratchBuffer:               a.ScratchBuffer.handle(),
		ScratchBufferOffset:         a.ScratchBufferOffset,
		ScratchBufferTransitionMode: a.ScratchBufferTransitionMode.native(),
		Update:                      a.Update,
	})
}

// InstanceMatrix is a row-major 3x4 transform.
type InstanceMatrix [12]float32

// IdentityInstanceMatrix leaves an instance where its BLAS places it.
var IdentityInstanceMatrix = InstanceMatrix{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
}

// SetTranslation replaces the translation column of m.
func (m *InstanceMatrix) SetTranslation(x, y, z float32) {
	m[3], m[7], m[11] = x, y, z
}

// TLASInstanceAutoOffset makes the engine assign an instance's hit group offset.
const TLASInstanceAutoOffset uint32 = 0xFFFFFFFF

type TLASBuildInstanceData struct {
	InstanceName                string
	BLAS                        *BottomLevelAS
	Transform                   InstanceMatrix
	CustomID                    uint32
	Flags                       RayTracingInstanceFlags
	Mask                        uint8
	ContributionToHitGroupIndex uint32
}

func NewTLASBuildInstanceData(name string, blas *BottomLevelAS) TLASBuildInstanceData {
	return TLASBuildInstanceData{
		InstanceName:                name,
		BLAS:                        blas,
		Transform:                   IdentityInstanceMatrix,
		Mask:                        0xFF,
		ContributionToHitGroupIndex: TLASInstanceAutoOffset,
	}
}

type BuildTLASAttribs struct {
	TLAS                            *TopLevelAS
	TLASTransitionMode              ResourceStateTransitionMode
	BLASTransitionMode              ResourceStateTransitionMode
	Instances                       []TLASBuildInstanceData
	InstanceBuffer                  *Buffer
	InstanceBufferOffset            uint64
	InstanceBufferTransitionMode    ResourceStateTransitionMode
	HitGroupStride                  uint32
	BaseContributionToHitGroupIndex uint32
	BindingMode                     HitGroupBindingMode
	ScratchBuffer                   *Buffer
	ScratchBufferOffset             uint64
	ScratchBufferTransitionMode     ResourceStateTransitionMode
	Update                          bool
}

func (a *BuildTLASAttribs) marshal(arena *driver.Arena) *driver.BuildTLASAttribs {
	instances, instanceCount := driver.MarshalSlice(arena, a.Instances, func(ar *driver.Arena, i *TLASBuildInstanceData) driver.TLASBuildInstanceData {
		return driver.TLASBuildInstanceData{
			InstanceName:                ar.CString(i.InstanceName),
			BLAS:                        i.BLAS.handle(),
			Transform:                   driver.InstanceMatrix(i.Transform),
			CustomID:                    i.CustomID,
			Flags:                       i.Flags.native(),
			Mask:                        i.Mask,
			ContributionToHitGroupIndex: i.ContributionToHitGroupIndex,
		}
	})

	return driver.New(arena, driver.BuildTLASAttribs{
		TLAS:                            a.TLAS.handle(),
		TLASTransitionMode:              a.TLASTransitionMode.native(),
		BLASTransitionMode:              a.BLASTransitionMode.native(),
		Instances:                       instances,
		InstanceCount:                   instanceCount,
		InstanceBuffer:                  a.InstanceBuffer.handle(),
		InstanceBufferOffset:            a.InstanceBufferOffset,
		InstanceBufferTransitionMode:    a.InstanceBufferTransitionMode.native(),
		HitGroupStride:                  a.HitGroupStride,
		BaseContributionToHitGroupIndex: a.BaseContributionToHitGroupIndex,
		BindingMode:                     a.BindingMode.native(),
		ScratchBuffer:                   a.ScratchBuffer.handle(),
		ScratchBufferOffset:             a.ScratchBufferOffset,
		ScratchBufferTransitionMode:     a.ScratchBufferTransitionMode.native(),
		Update:                          a.Update,
	})
}

type CopyBLASAttribs struct {
	Src               *BottomLevelAS
	Dst               *BottomLevelAS
	Mode              CopyASMode
	SrcTransitionMode ResourceStateTransitionMode
	DstTransitionMode ResourceStateTransitionMode
}

func (a *CopyBLASAttribs) marshal(arena *driver.Arena) *driver.CopyBLASAttribs {
	return driver.New(arena, driver.CopyBLASAttribs{
		Src:               a.Src.handle(),
		Dst:               a.Dst.handle(),
		Mode:              a.Mode.native(),
		SrcTransitionMode: a.SrcTransitionMode.native(),
		DstTransitionMode: a.DstTransitionMode.native(),
	})
}

type CopyTLASAttribs struct {
	Src               *TopLevelAS
	Dst               *TopLevelAS
	Mode              CopyASMode
	SrcTransitionMode ResourceStateTransitionMode
	DstTransitionMode ResourceStateTransitionMode
}

func (a *CopyTLASAttribs) marshal(arena *driver.Arena) *driver.CopyTLASAttribs {
	return driver.New(arena, driver.CopyTLASAttribs{
		Src:               a.Src.handle(),
		Dst:               a.Dst.handle(),
		Mode:              a.Mode.native(),
		SrcTransitionMode: a.SrcTransitionMode.native(),
		DstTransitionMode: a.DstTransitionMode.native(),
	})
}

type WriteBLASCompactedSizeAttribs struct {
	BLAS                 *BottomLevelAS
	DestBuffer           *Buffer
	DestBufferOffset     uint64
	BLASTransitionMode   ResourceStateTransitionMode
	BufferTransitionMode ResourceStateTransitionMode
}

func (a *WriteBLASCompactedSizeAttribs) marshal(arena *driver.Arena) *driver.WriteBLASCompactedSizeAttribs {
	return driver.New(arena, driver.WriteBLASCompactedSizeAttribs{
		BLAS:                 a.BLAS.handle(),
		DestBuffer:           a.DestBuffer.handle(),
		DestBufferOffset:     a.DestBufferOffset,
		BLASTransitionMode:   a.BLASTransitionMode.native(),
		BufferTransitionMode: a.BufferTransitionMode.native(),
	})
}

type WriteTLASCompactedSizeAttribs struct {
	TLAS                 *TopLevelAS
	DestBuffer           *Buffer
	DestBufferOffset     uint64
	TLASTransitionMode   ResourceStateTransitionMode
	BufferTransitionMode ResourceStateTransitionMode
}

func (a *WriteTLASCompactedSizeAttribs) marshal(arena *driver.Arena) *driver.WriteTLASCompactedSizeAttribs {
	return driver.New(arena, driver.WriteTLASCompactedSizeAttribs{
		TLAS:                 a.TLAS.handle(),
		DestBuffer:           a.DestBuffer.handle(),
		DestBufferOffset:     a.DestBufferOffset,
		TLASTransitionMode:   a.TLASTransitionMode.native(),
		BufferTransitionMode: a.BufferTransitionMode.native(),
	})
}

type TraceRaysAttribs struct {
	SBT        *ShaderBindingTable
	DimensionX uint32
	DimensionY uint32
	DimensionZ uint32
}

func (a *TraceRaysAttribs) marshal(arena *driver.Arena) *driver.TraceRaysAttribs {
	return driver.New(arena, driver.TraceRaysAttribs{
		SBT:        a.SBT.handle(),
		DimensionX: a.DimensionX,
		DimensionY: a.DimensionY,
		DimensionZ: a.DimensionZ,
	})
}

type TraceRaysIndirectAttribs struct {
	SBT                              *ShaderBindingTable
	AttribsBuffer                    *Buffer
	AttribsBufferStateTransitionMode ResourceStateTransitionMode
	ArgsByteOffset                   uint64
}

func (a *TraceRaysIndirectAttribs) marshal(arena *driver.Arena) *driver.TraceRaysIndirectAttribs {
	return driver.New(arena, driver.TraceRaysIndirectAttribs{
		SBT:                              a.SBT.handle(),
		AttribsBuffer:                    a.AttribsBuffer.handle(),
		AttribsBufferStateTransitionMode: a.AttribsBufferStateTransitionMode.native(),
		ArgsByteOffset:                   a.ArgsByteOffset,
	})
}

type UpdateIndirectRTBufferAttribs struct {
	AttribsBuffer       *Buffer
	AttribsBufferOffset uint64
	TransitionMode      ResourceStateTransitionMode
}

func (a *UpdateIndirectRTBufferAttribs) marshal(arena *driver.Arena) *driver.UpdateIndirectRTBufferAttribs {
	return driver.New(arena, driver.UpdateIndirectRTBufferAttribs{
		AttribsBuffer:       a.AttribsBuffer.handle(),
		AttribsBufferOffset: a.AttribsBufferOffset,
		TransitionMode:      a.TransitionMode.native(),
	})
}
