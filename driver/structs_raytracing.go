package driver

type BLASTriangleDesc struct {
	GeometryName         *byte
	MaxVertexCount       uint32
	VertexValueType      ValueType
	VertexComponentCount uint8
	MaxPrimitiveCount    uint32
	IndexType            ValueType
	AllowsTransforms     bool
}

type BLASBoundingBoxDesc struct {
	GeometryName *byte
	MaxBoxCount  uint32
}

type BottomLevelASDesc struct {
	DeviceObjectAttribs
	Triangles            *BLASTriangleDesc
	TriangleCount        uint32
	Boxes                *BLASBoundingBoxDesc
	BoxCount             uint32
	Flags                RayTracingBuildAsFlags
	CompactedSize        uint64
	ImmediateContextMask uint64
}

type TopLevelASDesc struct {
	DeviceObjectAttribs
	MaxInstanceCount     uint32
	Flags                RayTracingBuildAsFlags
	CompactedSize        uint64
	ImmediateContextMask uint64
}

type ScratchBufferSizes struct {
	Build  uint64
	Update uint64
}

type TLASInstanceDesc struct {
	ContributionToHitGroupIndex uint32
	InstanceIndex               uint32
	BLAS                        Handle
}

type TLASBuildInfo struct {
	HitGroupStride                   uint32
	FirstContributionToHitGroupIndex uint32
	LastContributionToHitGroupIndex  uint32
	BindingMode                      HitGroupBindingMode
	InstanceCount                    uint32
}

type ShaderBindingTableDesc struct {
	DeviceObjectAttribs
	Pipeline Handle
}

type BLASBuildTriangleData struct {
	GeometryName          *byte
	VertexBuffer          Handle
	VertexOffset          uint64
	VertexStride          uint32
	VertexCount           uint32
	VertexValueType       ValueType
	VertexComponentCount  uint8
	PrimitiveCount        uint32
	IndexBuffer           Handle
	IndexOffset           uint64
	IndexType             ValueType
	TransformBuffer       Handle
	TransformBufferOffset uint64
	Flags                 RayTracingGeometryFlags
}

type BLASBuildBoundingBoxData struct {
	GeometryName *byte
	BoxBuffer    Handle
	BoxOffset    uint64
	BoxStride    uint32
	BoxCount     uint32
	Flags        RayTracingGeometryFlags
}

type BuildBLASAttribs struct {
	BLAS                        Handle
	BLASTransitionMode          ResourceStateTransitionMode
	GeometryTransitionMode      ResourceStateTransitionMode
	TriangleData                *BLASBuildTriangleData
	TriangleDataCount           uint32
	BoxData                     *BLASBuildBoundingBoxData
	BoxDataCount                uint32
	ScratchBuffer               Handle
	ScratchBufferOffset         uint64
	ScratchBufferTransitionMode ResourceStateTransitionMode
	Update                      bool
}

// InstanceMatrix is a row-major 3x4 transform.
type InstanceMatrix [12]float32

type TLASBuildInstanceData struct {
	InstanceName                *byte
	BLAS                        Handle
	Transform                   InstanceMatrix
	CustomID                    uint32
	Flags                       RayTracingInstanceFlags
	Mask                        uint8
	ContributionToHitGroupIndex uint32
}

type BuildTLASAttribs struct {
	TLAS                            Handle
	TLASTransitionMode              ResourceStateTransitionMode
	BLASTransitionMode              ResourceStateTransitionMode
	Instances                       *TLASBuildInstanceData
	InstanceCount                   uint32
	InstanceBuffer                  Handle
	InstanceBufferOffset            uint64
	InstanceBufferTransitionMode    ResourceStateTransitionMode
	HitGroupStride                  uint32
	BaseContributionToHitGroupIndex uint32
	BindingMode                     HitGroupBindingMode
	ScratchBuffer                   Handle
	ScratchBufferOffset             uint64
	ScratchBufferTransitionMode     ResourceStateTransitionMode
	Update                          bool
}

type CopyBLASAttribs struct {
	Src               Handle
	Dst               Handle
	Mode              CopyASMode
	SrcTransitionMode ResourceStateTransitionMode
	DstTransitionMode ResourceStateTransitionMode
}

type CopyTLASAttribs struct {
	Src               Handle
	Dst               Handle
	Mode              CopyASMode
	SrcTransitionMode ResourceStateTransitionMode
	DstTransitionMode ResourceStateTransitionMode
}

type WriteBLASCompactedSizeAttribs struct {
	BLAS                 Handle
	DestBuffer           Handle
	DestBufferOffset     uint64
	BLASTransitionMode   ResourceStateTransitionMode
	BufferTransitionMode ResourceStateTransitionMode
}

type WriteTLASCompactedSizeAttribs struct {
	TLAS                 Handle
	DestBuffer           Handle
	DestBufferOffset     uint64
	TLASTransitionMode   ResourceStateTransitionMode
	BufferTransitionMode ResourceStateTransitionMode
}

type TraceRaysAttribs struct {
	SBT        Handle
	DimensionX uint32
	DimensionY uint32
	DimensionZ uint32
}

type TraceRaysIndirectAttribs struct {
	SBT                              Handle
	AttribsBuffer                    Handle
	AttribsBufferStateTransitionMode ResourceStateTransitionMode
	ArgsByteOffset                   uint64
}

type UpdateIndirectRTBufferAttribs struct {
	AttribsBuffer       Handle
	AttribsBufferOffset uint64
	TransitionMode      ResourceStateTransitionMode
}
