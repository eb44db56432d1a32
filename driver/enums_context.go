package driver

type ResourceStateTransitionMode uint8

const (
	ResourceStateTransitionModeNone ResourceStateTransitionMode = iota
	ResourceStateTransitionModeTransition
	ResourceStateTransitionModeVerify
	ResourceStateTransitionModeCount
)

type StateTransitionType uint8

const (
	StateTransitionTypeImmediate StateTransitionType = iota
	StateTransitionTypeBegin
	StateTransitionTypeEnd
	StateTransitionTypeCount
)

type QueryType uint32

const (
	QueryTypeUndefined QueryType = iota
	QueryTypeOcclusion
	QueryTypeBinaryOcclusion
	QueryTypeTimestamp
	QueryTypePipelineStatistics
	QueryTypeDuration
	QueryTypeCount
)

type FenceType uint8

const (
	FenceTypeCPUWaitOnly FenceType = iota
	FenceTypeGeneral
	FenceTypeCount
)

type MapFlags uint8

const (
	MapFlagNone        MapFlags = 0x0
	MapFlagDoNotWait   MapFlags = 0x1
	MapFlagDiscard     MapFlags = 0x2
	MapFlagNoOverwrite MapFlags = 0x4
)

type StateTransitionFlags uint8

const (
	StateTransitionFlagNone           StateTransitionFlags = 0x0
	StateTransitionFlagUpdateState    StateTransitionFlags = 0x1
	StateTransitionFlagDiscardContent StateTransitionFlags = 0x2
	StateTransitionFlagAliasing       StateTransitionFlags = 0x4
)

type SetVertexBuffersFlags uint8

const (
	SetVertexBuffersFlagNone  SetVertexBuffersFlags = 0x0
	SetVertexBuffersFlagReset SetVertexBuffersFlags = 0x1
)

type DrawFlags uint8

const (
	DrawFlagNone                         DrawFlags = 0x0
	DrawFlagVerifyStates                 DrawFlags = 0x1
	DrawFlagVerifyDrawAttribs            DrawFlags = 0x2
	DrawFlagVerifyRenderTargets          DrawFlags = 0x4
	DrawFlagVerifyAll                    DrawFlags = 0x7
	DrawFlagDynamicResourceBuffersIntact DrawFlags = 0x8
)

type ClearDepthStencilFlags uint32

const (
	ClearDepthStencilFlagNone    ClearDepthStencilFlags = 0x0
	ClearDepthStencilFlagDepth   ClearDepthStencilFlags = 0x1
	ClearDepthStencilFlagStencil ClearDepthStencilFlags = 0x2
)
