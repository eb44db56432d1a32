package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
	"golang.org/x/exp/slog"
)

// InvalidIndex is returned by index lookups that find nothing.
const InvalidIndex uint32 = 0xFFFFFFFF

// BottomLevelAS is an acceleration structure over triangle or bounding box geometry.
type BottomLevelAS struct {
	deviceObject
	drv driver.BottomLevelAS
}

func wrapBottomLevelAS(native driver.BottomLevelAS, logger *slog.Logger) *BottomLevelAS {
	as := &BottomLevelAS{drv: native}
	as.adoptDevice(native, "BottomLevelAS", logger)
	return as
}

func (as *BottomLevelAS) handle() driver.Handle {
	if as == nil {
		return 0
	}
	return as.drv.Handle()
}

func (as *BottomLevelAS) Driver() driver.BottomLevelAS {
	if as == nil {
		return nil
	}
	return as.drv
}

func (as *BottomLevelAS) Ref() *BottomLevelAS {
	return fromBorrowed(as.drv, as.logger, wrapBottomLevelAS)
}

func (as *BottomLevelAS) Desc() BottomLevelASDesc {
	return bottomLevelASDescFromNative(as.drv.GetDesc())
}

// GeometryDescIndex returns the index of the geometry called name in the description
// the structure was created with, or InvalidIndex.
func (as *BottomLevelAS) GeometryDescIndex(name string) uint32 {
	arena := driver.NewArena()
	defer arena.Release()

	return as.drv.GetGeometryDescIndex(arena.CString(name))
}

// GeometryIndex returns the index of the geometry called name in the last build, or
// InvalidIndex.
func (as *BottomLevelAS) GeometryIndex(name string) uint32 {
	arena := driver.NewArena()
	defer arena.Release()

	return as.drv.GetGeometryIndex(arena.CString(name))
}

func (as *BottomLevelAS) ActualGeometryCount() uint32 {
	return as.drv.GetActualGeometryCount()
}

func (as *BottomLevelAS) ScratchBufferSizes() ScratchBufferSizes {
	return ScratchBufferSizes(as.drv.GetScratchBufferSizes())
}

func (as *BottomLevelAS) NativeHandle() uint64 {
	return as.drv.GetNativeHandle()
}

func (as *BottomLevelAS) SetState(state ResourceState) {
	as.drv.SetState(state.native())
}

func (as *BottomLevelAS) State() ResourceState {
	return ResourceState(as.drv.GetState())
}

// TopLevelAS is an acceleration structure over instances of bottom-level structures.
type TopLevelAS struct {
	deviceObject
	drv driver.TopLevelAS
}

func wrapTopLevelAS(native driver.TopLevelAS, logger *slog.Logger) *TopLevelAS {
	as := &TopLevelAS{drv: native}
	as.adoptDevice(native, "TopLevelAS", logger)
	return as
}

func (as *TopLevelAS) handle() driver.Handle {
	if as == nil {
		return 0
	}
	return as.drv.Handle()
}

func (as *TopLevelAS) Driver() driver.TopLevelAS {
	if as == nil {
		return nil
	}
	return as.drv
}

func (as *TopLevelAS) Ref() *TopLevelAS {
	return fromBorrowed(as.drv, as.logger, wrapTopLevelAS)
}

func (as *TopLevelAS) Desc() TopLevelASDesc {
	return topLevelASDescFromNative(as.drv.GetDesc())
}

// InstanceDesc describes the instance called name as of the last build. BLAS is nil
// when no such instance exists.
func (as *TopLevelAS) InstanceDesc(name string) TLASInstanceDesc {
	arena := driver.NewArena()
	defer arena.Release()

	n := as.drv.GetInstanceDesc(arena.CString(name))
	return TLASInstanceDesc{
		ContributionToHitGroupIndex: n.ContributionToHitGroupIndex,
		InstanceIndex:               n.InstanceIndex,
		BLAS:                        fromBorrowed(driver.BottomLevelASFromHandle(n.BLAS), as.logger, wrapBottomLevelAS),
	}
}

func (as *TopLevelAS) BuildInfo() TLASBuildInfo {
	n := as.drv.GetBuildInfo()
	return TLASBuildInfo{
		HitGroupStride:                   n.HitGroupStride,
		FirstContributionToHitGroupIndex: n.FirstContributionToHitGroupIndex,
		LastContributionToHitGroupIndex:  n.LastContributionToHitGroupIndex,
		BindingMode:                      hitGroupBindingModeFromNative(n.BindingMode),
		InstanceCount:                    n.InstanceCount,
	}
}

func (as *TopLevelAS) ScratchBufferSizes() ScratchBufferSizes {
	return ScratchBufferSizes(as.drv.GetScratchBufferSizes())
}

func (as *TopLevelAS) NativeHandle() uint64 {
	return as.drv.GetNativeHandle()
}

func (as *TopLevelAS) SetState(state ResourceState) {
	as.drv.SetState(state.native())
}

func (as *TopLevelAS) State() ResourceState {
	return ResourceState(as.drv.GetState())
}

// ShaderBindingTable maps ray tracing shader groups and their shader records to the
// geometry of a TopLevelAS.
type ShaderBindingTable struct {
	deviceObject
	drv driver.ShaderBindingTable
}

func wrapShaderBindingTable(native driver.ShaderBindingTable, logger *slog.Logger) *ShaderBindingTable {
	t := &ShaderBindingTable{drv: native}
	t.adoptDevice(native, "ShaderBindingTable", logger)
	return t
}

func (t *ShaderBindingTable) handle() driver.Handle {
	if t == nil {
		return 0
	}
	return t.drv.Handle()
}

func (t *ShaderBindingTable) Driver() driver.ShaderBindingTable {
	if t == nil {
		return nil
	}
	return t.drv
}

func (t *ShaderBindingTable) Ref() *ShaderBindingTable {
	return fromBorrowed(t.drv, t.logger, wrapShaderBindingTable)
}

// Desc returns the table description. Pipeline is a new reference that the caller
// releases.
func (t *ShaderBindingTable) Desc() ShaderBindingTableDesc {
	n := t.drv.GetDesc()
	return ShaderBindingTableDesc{
		Name:     driver.GoString(n.Name),
		Pipeline: fromBorrowed(driver.PipelineStateFromHandle(n.Pipeline), t.logger, wrapPipelineState),
	}
}

// Verify checks that every shader and record the table needs is bound. Problems are
// reported through the message callback.
func (t *ShaderBindingTable) Verify(flags VerifySBTFlags) bool {
	return t.drv.Verify(flags.native())
}

// Reset clears the table and rebinds it to the pipeline in desc.
func (t *ShaderBindingTable) Reset(desc ShaderBindingTableDesc) {
	arena := driver.NewArena()
	defer arena.Release()

	nativeDesc := desc.marshal(arena)
	t.drv.Reset(&nativeDesc)
}

// ResetHitGroups clears hit group bindings after the TLAS they were bound for changes.
func (t *ShaderBindingTable) ResetHitGroups() {
	t.drv.ResetHitGroups()
}

// BindRayGenShader binds the ray generation group. data is the optional shader record.
func (t *ShaderBindingTable) BindRayGenShader(shaderGroupName string, data []byte) {
	arena := driver.NewArena()
	defer arena.Release()

	t.drv.BindRayGenShader(arena.CString(shaderGroupName), arena.Bytes(data), uint32(len(data)))
}

func (t *ShaderBindingTable) BindMissShader(shaderGroupName string, missIndex uint32, data []byte) {
	arena := driver.NewArena()
	defer arena.Release()

	t.drv.BindMissShader(arena.CString(shaderGroupName), missIndex, arena.Bytes(data), uint32(len(data)))
}

func (t *ShaderBindingTable) BindHitGroupForGeometry(tlas *TopLevelAS, instanceName, geometryName string, rayOffsetInHitGroupIndex uint32, shaderGroupName string, data []byte) {
	arena := driver.NewArena()
	defer arena.Release()

	t.drv.BindHitGroupForGeometry(tlas.Driver(), arena.CString(instanceName), arena.CString(geometryName),
		rayOffsetInHitGroupIndex, arena.CString(shaderGroupName), arena.Bytes(data), uint32(len(data)))
}

// BindHitGroupForTLAS binds one hit group to every geometry of every instance of tlas.
func (t *ShaderBindingTable) BindHitGroupForTLAS(tlas *TopLevelAS, rayOffsetInHitGroupIndex uint32, shaderGroupName string, data []byte) {
	arena := driver.NewArena()
	defer arena.Release()

	t.drv.BindHitGroupForTLAS(tlas.Driver(), rayOffsetInHitGroupIndex, arena.CString(shaderGroupName), arena.Bytes(data), uint32(len(data)))
}

func (t *ShaderBindingTable) BindHitGroupForInstance(tlas *TopLevelAS, instanceName string, rayOffsetInHitGroupIndex uint32, shaderGroupName string, data []byte) {
	arena := driver.NewArena()
	defer arena.Release()

	t.drv.BindHitGroupForInstance(tlas.Driver(), arena.CString(instanceName), rayOffsetInHitGroupIndex,
		arena.CString(shaderGroupName), arena.Bytes(data), uint32(len(data)))
}

// BindHitGroupByIndex binds a hit group at an absolute index, for tables whose TLAS
// uses HitGroupBindingModeUserDefined.
func (t *ShaderBindingTable) BindHitGroupByIndex(bindingIndex uint32, shaderGroupName string, data []byte) {
	arena := driver.NewArena()
	defer arena.Release()

	t.drv.BindHitGroupByIndex(bindingIndex, arena.CString(shaderGroupName), arena.Bytes(data), uint32(len(data)))
}

func (t *ShaderBindingTable) BindCallableShader(shaderGroupName string, callableIndex uint32, data []byte) {
	arena := driver.NewArena()
	defer arena.Release()

	t.drv.BindCallableShader(arena.CString(shaderGroupName), callableIndex, arena.Bytes(data), uint32(len(data)))
}
