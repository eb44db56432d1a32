package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
	"golang.org/x/exp/slog"
)

// PipelineResourceSignature declares the resources a group of pipelines share.
type PipelineResourceSignature struct {
	deviceObject
	drv driver.PipelineResourceSignature
}

func wrapPipelineResourceSignature(native driver.PipelineResourceSignature, logger *slog.Logger) *PipelineResourceSignature {
	s := &PipelineResourceSignature{drv: native}
	s.adoptDevice(native, "PipelineResourceSignature", logger)
	return s
}

func (s *PipelineResourceSignature) handle() driver.Handle {
	if s == nil {
		return 0
	}
	return s.drv.Handle()
}

func (s *PipelineResourceSignature) Driver() driver.PipelineResourceSignature {
	if s == nil {
		return nil
	}
	return s.drv
}

func (s *PipelineResourceSignature) Ref() *PipelineResourceSignature {
	return fromBorrowed(s.drv, s.logger, wrapPipelineResourceSignature)
}

func (s *PipelineResourceSignature) Desc() PipelineResourceSignatureDesc {
	return pipelineResourceSignatureDescFromNative(s.drv.GetDesc())
}

// CreateShaderResourceBinding creates a binding for the signature's mutable and
// dynamic resources, copying static resources into it when initStaticResources is set.
func (s *PipelineResourceSignature) CreateShaderResourceBinding(initStaticResources bool) (*ShaderResourceBinding, error) {
	s.logger.Debug("PipelineResourceSignature::CreateShaderResourceBinding")

	srb := fromOwned(s.drv.CreateShaderResourceBinding(initStaticResources), s.logger, wrapShaderResourceBinding)
	if srb == nil {
		return nil, creationFailed("ShaderResourceBinding", s.Name())
	}
	return srb, nil
}

func (s *PipelineResourceSignature) BindStaticResources(shaderStages ShaderType, mapping *ResourceMapping, flags BindShaderResourcesFlags) {
	s.drv.BindStaticResources(shaderStages.native(), mapping.Driver(), flags.native())
}

// StaticVariableByName returns a new reference to the static variable called name in
// the given stage, or nil.
func (s *PipelineResourceSignature) StaticVariableByName(shaderType ShaderType, name string) *ShaderResourceVariable {
	arena := driver.NewArena()
	defer arena.Release()

	return fromBorrowed(s.drv.GetStaticVariableByName(shaderType.native(), arena.CString(name)), s.logger, wrapShaderResourceVariable)
}

func (s *PipelineResourceSignature) StaticVariableByIndex(shaderType ShaderType, index uint32) *ShaderResourceVariable {
	return fromBorrowed(s.drv.GetStaticVariableByIndex(shaderType.native(), index), s.logger, wrapShaderResourceVariable)
}

func (s *PipelineResourceSignature) StaticVariableCount(shaderType ShaderType) uint32 {
	return s.drv.GetStaticVariableCount(shaderType.native())
}

// StaticVariables returns a new reference to every static variable of the given stage.
func (s *PipelineResourceSignature) StaticVariables(shaderType ShaderType) []*ShaderResourceVariable {
	return collectVariables(s.StaticVariableCount(shaderType), func(i uint32) *ShaderResourceVariable {
		return s.StaticVariableByIndex(shaderType, i)
	})
}

func (s *PipelineResourceSignature) InitializeStaticSRBResources(srb *ShaderResourceBinding) {
	s.drv.InitializeStaticSRBResources(srb.Driver())
}

func (s *PipelineResourceSignature) CopyStaticResources(dst *PipelineResourceSignature) {
	s.drv.CopyStaticResources(dst.Driver())
}

func (s *PipelineResourceSignature) IsCompatibleWith(other *PipelineResourceSignature) bool {
	return s.drv.IsCompatibleWith(other.Driver())
}

// PipelineState is a compiled graphics, compute, tile or ray tracing pipeline.
type PipelineState struct {
	deviceObject
	drv driver.PipelineState
}

func wrapPipelineState(native driver.PipelineState, logger *slog.Logger) *PipelineState {
	p := &PipelineState{drv: native}
	p.adoptDevice(native, "PipelineState", logger)
	return p
}

func (p *PipelineState) handle() driver.Handle {
	if p == nil {
		return 0
	}
	return p.drv.Handle()
}

func (p *PipelineState) Driver() driver.PipelineState {
	if p == nil {
		return nil
	}
	return p.drv
}

func (p *PipelineState) Ref() *PipelineState {
	return fromBorrowed(p.drv, p.logger, wrapPipelineState)
}

func (p *PipelineState) Desc() PipelineStateDesc {
	return pipelineStateDescFromNative(p.drv.GetDesc())
}

// GraphicsPipelineDesc is only meaningful for graphics pipelines.
func (p *PipelineState) GraphicsPipelineDesc() GraphicsPipelineDesc {
	return graphicsPipelineDescFromNative(p.drv.GetGraphicsPipelineDesc())
}

func (p *PipelineState) RayTracingPipelineDesc() RayTracingPipelineDesc {
	desc := p.drv.GetRayTracingPipelineDesc()
	return RayTracingPipelineDesc{ShaderRecordSize: desc.ShaderRecordSize, MaxRecursionDepth: desc.MaxRecursionDepth}
}

func (p *PipelineState) TilePipelineDesc() TilePipelineDesc {
	return tilePipelineDescFromNative(p.drv.GetTilePipelineDesc())
}

func (p *PipelineState) BindStaticResources(shaderStages ShaderType, mapping *ResourceMapping, flags BindShaderResourcesFlags) {
	p.drv.BindStaticResources(shaderStages.native(), mapping.Driver(), flags.native())
}

func (p *PipelineState) StaticVariableCount(shaderType ShaderType) uint32 {
	return p.drv.GetStaticVariableCount(shaderType.native())
}

func (p *PipelineState) StaticVariableByName(shaderType ShaderType, name string) *ShaderResourceVariable {
	arena := driver.NewArena()
	defer arena.Release()

	return fromBorrowed(p.drv.GetStaticVariableByName(shaderType.native(), arena.CString(name)), p.logger, wrapShaderResourceVariable)
}

func (p *PipelineState) StaticVariableByIndex(shaderType ShaderType, index uint32) *ShaderResourceVariable {
	return fromBorrowed(p.drv.GetStaticVariableByIndex(shaderType.native(), index), p.logger, wrapShaderResourceVariable)
}

func (p *PipelineState) StaticVariables(shaderType ShaderType) []*ShaderResourceVariable {
	return collectVariables(p.StaticVariableCount(shaderType), func(i uint32) *ShaderResourceVariable {
		return p.StaticVariableByIndex(shaderType, i)
	})
}

// CreateShaderResourceBinding works only for pipelines created without explicit
// resource signatures.
func (p *PipelineState) CreateShaderResourceBinding(initStaticResources bool) (*ShaderResourceBinding, error) {
	p.logger.Debug("PipelineState::CreateShaderResourceBinding")

	srb := fromOwned(p.drv.CreateShaderResourceBinding(initStaticResources), p.logger, wrapShaderResourceBinding)
	if srb == nil {
		return nil, creationFailed("ShaderResourceBinding", p.Name())
	}
	return srb, nil
}

func (p *PipelineState) InitializeStaticSRBResources(srb *ShaderResourceBinding) {
	p.drv.InitializeStaticSRBResources(srb.Driver())
}

func (p *PipelineState) CopyStaticResources(dst *PipelineState) {
	p.drv.CopyStaticResources(dst.Driver())
}

// IsCompatibleWith reports whether shader resource bindings of p can be used with other.
func (p *PipelineState) IsCompatibleWith(other *PipelineState) bool {
	return p.drv.IsCompatibleWith(other.Driver())
}

func (p *PipelineState) ResourceSignatureCount() uint32 {
	return p.drv.GetResourceSignatureCount()
}

// ResourceSignature returns a new reference to the signature bound at index, or nil
// when the slot is empty.
func (p *PipelineState) ResourceSignature(index uint32) *PipelineResourceSignature {
	return fromBorrowed(p.drv.GetResourceSignature(index), p.logger, wrapPipelineResourceSignature)
}

// ResourceSignatures returns a new reference to every non-empty signature slot.
func (p *PipelineState) ResourceSignatures() []*PipelineResourceSignature {
	count := p.drv.GetResourceSignatureCount()
	signatures := make([]*PipelineResourceSignature, 0, count)
	for i := uint32(0); i < count; i++ {
		if signature := p.ResourceSignature(i); signature != nil {
			signatures = append(signatures, signature)
		}
	}
	return signatures
}

// Status reports the state of asynchronous pipeline compilation, blocking until it
// ends when waitForCompletion is set.
func (p *PipelineState) Status(waitForCompletion bool) PipelineStateStatus {
	return pipelineStateStatusFromNative(p.drv.GetStatus(waitForCompletion))
}

// ShaderResourceBinding holds the mutable and dynamic resources bound to a pipeline.
type ShaderResourceBinding struct {
	object
	drv driver.ShaderResourceBinding
}

func wrapShaderResourceBinding(native driver.ShaderResourceBinding, logger *slog.Logger) *ShaderResourceBinding {
	b := &ShaderResourceBinding{drv: native}
	b.adopt(native, "ShaderResourceBinding", logger)
	return b
}

func (b *ShaderResourceBinding) handle() driver.Handle {
	if b == nil {
		return 0
	}
	return b.drv.Handle()
}

func (b *ShaderResourceBinding) Driver() driver.ShaderResourceBinding {
	if b == nil {
		return nil
	}
	return b.drv
}

func (b *ShaderResourceBinding) Ref() *ShaderResourceBinding {
	return fromBorrowed(b.drv, b.logger, wrapShaderResourceBinding)
}

// PipelineResourceSignature returns a new reference to the signature the binding was
// created from.
func (b *ShaderResourceBinding) PipelineResourceSignature() *PipelineResourceSignature {
	return fromBorrowed(b.drv.GetPipelineResourceSignature(), b.logger, wrapPipelineResourceSignature)
}

func (b *ShaderResourceBinding) BindResources(shaderStages ShaderType, mapping *ResourceMapping, flags BindShaderResourcesFlags) {
	b.drv.BindResources(shaderStages.native(), mapping.Driver(), flags.native())
}

// CheckResources reports which variable types of the binding would be changed by
// BindResources with the same arguments.
func (b *ShaderResourceBinding) CheckResources(shaderStages ShaderType, mapping *ResourceMapping, flags BindShaderResourcesFlags) ShaderResourceVariableTypeFlags {
	return ShaderResourceVariableTypeFlags(b.drv.CheckResources(shaderStages.native(), mapping.Driver(), flags.native()))
}

func (b *ShaderResourceBinding) VariableByName(stage ShaderType, name string) *ShaderResourceVariable {
	arena := driver.NewArena()
	defer arena.Release()

	return fromBorrowed(b.drv.GetVariableByName(stage.native(), arena.CString(name)), b.logger, wrapShaderResourceVariable)
}

func (b *ShaderResourceBinding) VariableCount(stage ShaderType) uint32 {
	return b.drv.GetVariableCount(stage.native())
}

func (b *ShaderResourceBinding) VariableByIndex(stage ShaderType, index uint32) *ShaderResourceVariable {
	return fromBorrowed(b.drv.GetVariableByIndex(stage.native(), index), b.logger, wrapShaderResourceVariable)
}

// Variables returns a new reference to every mutable and dynamic variable of stage.
func (b *ShaderResourceBinding) Variables(stage ShaderType) []*ShaderResourceVariable {
	return collectVariables(b.VariableCount(stage), func(i uint32) *ShaderResourceVariable {
		return b.VariableByIndex(stage, i)
	})
}

func (b *ShaderResourceBinding) StaticResourcesInitialized() bool {
	return b.drv.StaticResourcesInitialized()
}

func collectVariables(count uint32, at func(uint32) *ShaderResourceVariable) []*ShaderResourceVariable {
	variables := make([]*ShaderResourceVariable, 0, count)
	for i := uint32(0); i < count; i++ {
		if v := at(i); v != nil {
			variables = append(variables, v)
		}
	}
	return variables
}

// PipelineStateCache stores compiled pipelines so later runs can skip compilation.
type PipelineStateCache struct {
	deviceObject
	drv driver.PipelineStateCache
}

func wrapPipelineStateCache(native driver.PipelineStateCache, logger *slog.Logger) *PipelineStateCache {
	c := &PipelineStateCache{drv: native}
	c.adoptDevice(native, "PipelineStateCache", logger)
	return c
}

func (c *PipelineStateCache) handle() driver.Handle {
	if c == nil {
		return 0
	}
	return c.drv.Handle()
}

func (c *PipelineStateCache) Ref() *PipelineStateCache {
	return fromBorrowed(c.drv, c.logger, wrapPipelineStateCache)
}

func (c *PipelineStateCache) Desc() PipelineStateCacheDesc {
	return pipelineStateCacheDescFromNative(c.drv.GetDesc())
}

// Data serializes the cache. The result can be passed back as
// PipelineStateCacheCreateInfo.CacheData.
func (c *PipelineStateCache) Data() (*DataBlob, error) {
	c.logger.Debug("PipelineStateCache::Data")

	blob := fromOwned(c.drv.GetData(), c.logger, wrapDataBlob)
	if blob == nil {
		return nil, creationFailed("DataBlob", c.Name())
	}
	return blob, nil
}
