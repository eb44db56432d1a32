package diligent

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/diligent/driver"
)

// ResourceStateTransitionMode tells the engine whether to transition resources used by a command.
type ResourceStateTransitionMode int32

const (
	ResourceStateTransitionModeNone ResourceStateTransitionMode = iota
	ResourceStateTransitionModeTransition
	ResourceStateTransitionModeVerify
)

var resourceStateTransitionModeTable = [...]enumEntry[driver.ResourceStateTransitionMode]{
	ResourceStateTransitionModeNone:       {driver.ResourceStateTransitionModeNone, "None"},
	ResourceStateTransitionModeTransition: {driver.ResourceStateTransitionModeTransition, "Transition"},
	ResourceStateTransitionModeVerify:     {driver.ResourceStateTransitionModeVerify, "Verify"},
}

const _ = uint(len(resourceStateTransitionModeTable) - int(driver.ResourceStateTransitionModeCount))
const _ = uint(int(driver.ResourceStateTransitionModeCount) - len(resourceStateTransitionModeTable))

func (e ResourceStateTransitionMode) String() string { return enumString(resourceStateTransitionModeTable[:], e) }

func (e ResourceStateTransitionMode) native() driver.ResourceStateTransitionMode { return enumToNative(resourceStateTransitionModeTable[:], e) }

func resourceStateTransitionModeFromNative(n driver.ResourceStateTransitionMode) ResourceStateTransitionMode {
	return enumFromNative[ResourceStateTransitionMode](resourceStateTransitionModeTable[:], n, 0)
}

func (e ResourceStateTransitionMode) MarshalText() ([]byte, error) { return enumMarshalText(resourceStateTransitionModeTable[:], e) }

func (e *ResourceStateTransitionMode) UnmarshalText(text []byte) error {
	return enumUnmarshalText(resourceStateTransitionModeTable[:], e, text, 0)
}

type StateTransitionType int32

const (
	StateTransitionTypeImmediate StateTransitionType = iota
	StateTransitionTypeBegin
	StateTransitionTypeEnd
)

var stateTransitionTypeTable = [...]enumEntry[driver.StateTransitionType]{
	StateTransitionTypeImmediate: {driver.StateTransitionTypeImmediate, "Immediate"},
	StateTransitionTypeBegin:     {driver.StateTransitionTypeBegin, "Begin"},
	StateTransitionTypeEnd:       {driver.StateTransitionTypeEnd, "End"},
}

const _ = uint(len(stateTransitionTypeTable) - int(driver.StateTransitionTypeCount))
const _ = uint(int(driver.StateTransitionTypeCount) - len(stateTransitionTypeTable))

func (e StateTransitionType) String() string { return enumString(stateTransitionTypeTable[:], e) }

func (e StateTransitionType) native() driver.StateTransitionType { return enumToNative(stateTransitionTypeTable[:], e) }

func stateTransitionTypeFromNative(n driver.StateTransitionType) StateTransitionType {
	return enumFromNative[StateTransitionType](stateTransitionTypeTable[:], n, 0)
}

func (e StateTransitionType) MarshalText() ([]byte, error) { return enumMarshalText(stateTransitionTypeTable[:], e) }

func (e *StateTransitionType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(stateTransitionTypeTable[:], e, text, 0)
}

type QueryType int32

const (
	QueryTypeUndefined QueryType = iota
	QueryTypeOcclusion
	QueryTypeBinaryOcclusion
	QueryTypeTimestamp
	QueryTypePipelineStatistics
	QueryTypeDuration
)

var queryTypeTable = [...]enumEntry[driver.QueryType]{
	QueryTypeUndefined:          {driver.QueryTypeUndefined, "Undefined"},
	QueryTypeOcclusion:          {driver.QueryTypeOcclusion, "Occlusion"},
	QueryTypeBinaryOcclusion:    {driver.QueryTypeBinaryOcclusion, "BinaryOcclusion"},
	QueryTypeTimestamp:          {driver.QueryTypeTimestamp, "Timestamp"},
	QueryTypePipelineStatistics: {driver.QueryTypePipelineStatistics, "PipelineStatistics"},
	QueryTypeDuration:           {driver.QueryTypeDuration, "Duration"},
}

const _ = uint(len(queryTypeTable) - int(driver.QueryTypeCount))
const _ = uint(int(driver.QueryTypeCount) - len(queryTypeTable))

func (e QueryType) String() string { return enumString(queryTypeTable[:], e) }

func (e QueryType) native() driver.QueryType { return enumToNative(queryTypeTable[:], e) }

func queryTypeFromNative(n driver.QueryType) QueryType {
	return enumFromNative[QueryType](queryTypeTable[:], n, 0)
}

func (e QueryType) MarshalText() ([]byte, error) { return enumMarshalText(queryTypeTable[:], e) }

func (e *QueryType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(queryTypeTable[:], e, text, 0)
}

type FenceType int32

const (
	FenceTypeCPUWaitOnly FenceType = iota
	FenceTypeGeneral
)

var fenceTypeTable = [...]enumEntry[driver.FenceType]{
	FenceTypeCPUWaitOnly: {driver.FenceTypeCPUWaitOnly, "CPUWaitOnly"},
	FenceTypeGeneral:     {driver.FenceTypeGeneral, "General"},
}

const _ = uint(len(fenceTypeTable) - int(driver.FenceTypeCount))
const _ = uint(int(driver.FenceTypeCount) - len(fenceTypeTable))

func (e FenceType) String() string { return enumString(fenceTypeTable[:], e) }

func (e FenceType) native() driver.FenceType { return enumToNative(fenceTypeTable[:], e) }

func fenceTypeFromNative(n driver.FenceType) FenceType {
	return enumFromNative[FenceType](fenceTypeTable[:], n, 0)
}

func (e FenceType) MarshalText() ([]byte, error) { return enumMarshalText(fenceTypeTable[:], e) }

func (e *FenceType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(fenceTypeTable[:], e, text, 0)
}

// MapFlags modify a MapBuffer or MapTextureSubresource call.
type MapFlags int32

var mapFlagsMapping = common.NewFlagStringMapping[MapFlags]()

func (f MapFlags) Register(str string) {
	mapFlagsMapping.Register(f, str)
}
func (f MapFlags) String() string {
	return mapFlagsMapping.FlagsToString(f)
}

func (f MapFlags) native() driver.MapFlags { return driver.MapFlags(f) }

const (
	MapFlagNone        MapFlags = MapFlags(driver.MapFlagNone)
	MapFlagDoNotWait   MapFlags = MapFlags(driver.MapFlagDoNotWait)
	MapFlagDiscard     MapFlags = MapFlags(driver.MapFlagDiscard)
	MapFlagNoOverwrite MapFlags = MapFlags(driver.MapFlagNoOverwrite)
)

type StateTransitionFlags int32

var stateTransitionFlagsMapping = common.NewFlagStringMapping[StateTransitionFlags]()

func (f StateTransitionFlags) Register(str string) {
	stateTransitionFlagsMapping.Register(f, str)
}
func (f StateTransitionFlags) String() string {
	return stateTransitionFlagsMapping.FlagsToString(f)
}

func (f StateTransitionFlags) native() driver.StateTransitionFlags { return driver.StateTransitionFlags(f) }

const (
	StateTransitionFlagNone           StateTransitionFlags = StateTransitionFlags(driver.StateTransitionFlagNone)
	StateTransitionFlagUpdateState    StateTransitionFlags = StateTransitionFlags(driver.StateTransitionFlagUpdateState)
	StateTransitionFlagDiscardContent StateTransitionFlags = StateTransitionFlags(driver.StateTransitionFlagDiscardContent)
	StateTransitionFlagAliasing       StateTransitionFlags = StateTransitionFlags(driver.StateTransitionFlagAliasing)
)

type SetVertexBuffersFlags int32

var setVertexBuffersFlagsMapping = common.NewFlagStringMapping[SetVertexBuffersFlags]()

func (f SetVertexBuffersFlags) Register(str string) {
	setVertexBuffersFlagsMapping.Register(f, str)
}
func (f SetVertexBuffersFlags) String() string {
	return setVertexBuffersFlagsMapping.FlagsToString(f)
}

func (f SetVertexBuffersFlags) native() driver.SetVertexBuffersFlags { return driver.SetVertexBuffersFlags(f) }

const (
	SetVertexBuffersFlagNone  SetVertexBuffersFlags = SetVertexBuffersFlags(driver.SetVertexBuffersFlagNone)
	SetVertexBuffersFlagReset SetVertexBuffersFlags = SetVertexBuffersFlags(driver.SetVertexBuffersFlagReset)
)

type DrawFlags int32

var drawFlagsMapping = common.NewFlagStringMapping[DrawFlags]()

func (f DrawFlags) Register(str string) {
	drawFlagsMapping.Register(f, str)
}
func (f DrawFlags) String() string {
	return drawFlagsMapping.FlagsToString(f)
}

func (f DrawFlags) native() driver.DrawFlags { return driver.DrawFlags(f) }

const (
	DrawFlagNone                         DrawFlags = DrawFlags(driver.DrawFlagNone)
	DrawFlagVerifyStates                 DrawFlags = DrawFlags(driver.DrawFlagVerifyStates)
	DrawFlagVerifyDrawAttribs            DrawFlags = DrawFlags(driver.DrawFlagVerifyDrawAttribs)
	DrawFlagVerifyRenderTargets          DrawFlags = DrawFlags(driver.DrawFlagVerifyRenderTargets)
	DrawFlagVerifyAll                    DrawFlags = DrawFlags(driver.DrawFlagVerifyAll)
	DrawFlagDynamicResourceBuffersIntact DrawFlags = DrawFlags(driver.DrawFlagDynamicResourceBuffersIntact)
)

type ClearDepthStencilFlags int32

var clearDepthStencilFlagsMapping = common.NewFlagStringMapping[ClearDepthStencilFlags]()

func (f ClearDepthStencilFlags) Register(str string) {
	clearDepthStencilFlagsMapping.Register(f, str)
}
func (f ClearDepthStencilFlags) String() string {
	return clearDepthStencilFlagsMapping.FlagsToString(f)
}

func (f ClearDepthStencilFlags) native() driver.ClearDepthStencilFlags { return driver.ClearDepthStencilFlags(f) }

const (
	ClearDepthStencilFlagNone    ClearDepthStencilFlags = ClearDepthStencilFlags(driver.ClearDepthStencilFlagNone)
	ClearDepthStencilFlagDepth   ClearDepthStencilFlags = ClearDepthStencilFlags(driver.ClearDepthStencilFlagDepth)
	ClearDepthStencilFlagStencil ClearDepthStencilFlags = ClearDepthStencilFlags(driver.ClearDepthStencilFlagStencil)
)

func init() {
	MapFlagDoNotWait.Register("DoNotWait")
	MapFlagDiscard.Register("Discard")
	MapFlagNoOverwrite.Register("NoOverwrite")
	StateTransitionFlagUpdateState.Register("UpdateState")
	StateTransitionFlagDiscardContent.Register("DiscardContent")
	StateTransitionFlagAliasing.Register("Aliasing")
	SetVertexBuffersFlagReset.Register("Reset")
	DrawFlagVerifyStates.Register("VerifyStates")
	DrawFlagVerifyDrawAttribs.Register("VerifyDrawAttribs")
	DrawFlagVerifyRenderTargets.Register("VerifyRenderTargets")
	DrawFlagDynamicResourceBuffersIntact.Register("DynamicResourceBuffersIntact")
	ClearDepthStencilFlagDepth.Register("Depth")
	ClearDepthStencilFlagStencil.Register("Stencil")
}
