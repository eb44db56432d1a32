package diligent

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/diligent/driver"
)

// PipelineType is the kind of pipeline a PipelineState describes.
type PipelineType int32

const (
	PipelineTypeGraphics PipelineType = iota
	PipelineTypeCompute
	PipelineTypeMesh
	PipelineTypeRayTracing
	PipelineTypeTile
)

var pipelineTypeTable = [...]enumEntry[driver.PipelineType]{
	PipelineTypeGraphics:   {driver.PipelineTypeGraphics, "Graphics"},
	PipelineTypeCompute:    {driver.PipelineTypeCompute, "Compute"},
	PipelineTypeMesh:       {driver.PipelineTypeMesh, "Mesh"},
	PipelineTypeRayTracing: {driver.PipelineTypeRayTracing, "RayTracing"},
	PipelineTypeTile:       {driver.PipelineTypeTile, "Tile"},
}

const _ = uint(len(pipelineTypeTable) - int(driver.PipelineTypeCount))
const _ = uint(int(driver.PipelineTypeCount) - len(pipelineTypeTable))

func (e PipelineType) String() string { return enumString(pipelineTypeTable[:], e) }

func (e PipelineType) native() driver.PipelineType { return enumToNative(pipelineTypeTable[:], e) }

func pipelineTypeFromNative(n driver.PipelineType) PipelineType {
	return enumFromNative[PipelineType](pipelineTypeTable[:], n, 0)
}

func (e PipelineType) MarshalText() ([]byte, error) { return enumMarshalText(pipelineTypeTable[:], e) }

func (e *PipelineType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(pipelineTypeTable[:], e, text, 0)
}

type PipelineStateStatus int32

const (
	PipelineStateStatusUninitialized PipelineStateStatus = iota
	PipelineStateStatusCompiling
	PipelineStateStatusReady
	PipelineStateStatusFailed
)

var pipelineStateStatusTable = [...]enumEntry[driver.PipelineStateStatus]{
	PipelineStateStatusUninitialized: {driver.PipelineStateStatusUninitialized, "Uninitialized"},
	PipelineStateStatusCompiling:     {driver.PipelineStateStatusCompiling, "Compiling"},
	PipelineStateStatusReady:         {driver.PipelineStateStatusReady, "Ready"},
	PipelineStateStatusFailed:        {driver.PipelineStateStatusFailed, "Failed"},
}

const _ = uint(len(pipelineStateStatusTable) - int(driver.PipelineStateStatusCount))
const _ = uint(int(driver.PipelineStateStatusCount) - len(pipelineStateStatusTable))

func (e PipelineStateStatus) String() string { return enumString(pipelineStateStatusTable[:], e) }

func (e PipelineStateStatus) native() driver.PipelineStateStatus { return enumToNative(pipelineStateStatusTable[:], e) }

func pipelineStateStatusFromNative(n driver.PipelineStateStatus) PipelineStateStatus {
	return enumFromNative[PipelineStateStatus](pipelineStateStatusTable[:], n, 0)
}

func (e PipelineStateStatus) MarshalText() ([]byte, error) { return enumMarshalText(pipelineStateStatusTable[:], e) }

func (e *PipelineStateStatus) UnmarshalText(text []byte) error {
	return enumUnmarshalText(pipelineStateStatusTable[:], e, text, 0)
}

// PrimitiveTopology selects how vertices are assembled into primitives.
type PrimitiveTopology int32

const (
	PrimitiveTopologyUndefined PrimitiveTopology = iota
	PrimitiveTopologyTriangleList
	PrimitiveTopologyTriangleStrip
	PrimitiveTopologyPointList
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyTriangleListAdj
	PrimitiveTopologyTriangleStripAdj
	PrimitiveTopologyLineListAdj
	PrimitiveTopologyLineStripAdj
	PrimitiveTopology1ControlPointPatchlist
	PrimitiveTopology2ControlPointPatchlist
	PrimitiveTopology3ControlPointPatchlist
	PrimitiveTopology4ControlPointPatchlist
	PrimitiveTopology5ControlPointPatchlist
	PrimitiveTopology6ControlPointPatchlist
	PrimitiveTopology7ControlPointPatchlist
	PrimitiveTopology8ControlPointPatchlist
	PrimitiveTopology9ControlPointPatchlist
	PrimitiveTopology10ControlPointPatchlist
	PrimitiveTopology11ControlPointPatchlist
	PrimitiveTopology12ControlPointPatchlist
	PrimitiveTopology13ControlPointPatchlist
	PrimitiveTopology14ControlPointPatchlist
	PrimitiveTopology15ControlPointPatchlist
	PrimitiveTopology16ControlPointPatchlist
	PrimitiveTopology17ControlPointPatchlist
	PrimitiveTopology18ControlPointPatchlist
	PrimitiveTopology19ControlPointPatchlist
	PrimitiveTopology20ControlPointPatchlist
	PrimitiveTopology21ControlPointPatchlist
	PrimitiveTopology22ControlPointPatchlist
	PrimitiveTopology23ControlPointPatchlist
	PrimitiveTopology24ControlPointPatchlist
	PrimitiveTopology25ControlPointPatchlist
	PrimitiveTopology26ControlPointPatchlist
	PrimitiveTopology27ControlPointPatchlist
	PrimitiveTopology28ControlPointPatchlist
	PrimitiveTopology29ControlPointPatchlist
	PrimitiveTopology30ControlPointPatchlist
	PrimitiveTopology31ControlPointPatchlist
	PrimitiveTopology32ControlPointPatchlist
)

var primitiveTopologyTable = [...]enumEntry[driver.PrimitiveTopology]{
	PrimitiveTopologyUndefined:               {driver.PrimitiveTopologyUndefined, "Undefined"},
	PrimitiveTopologyTriangleList:            {driver.PrimitiveTopologyTriangleList, "TriangleList"},
	PrimitiveTopologyTriangleStrip:           {driver.PrimitiveTopologyTriangleStrip, "TriangleStrip"},
	PrimitiveTopologyPointList:               {driver.PrimitiveTopologyPointList, "PointList"},
	PrimitiveTopologyLineList:                {driver.PrimitiveTopologyLineList, "LineList"},
	PrimitiveTopologyLineStrip:               {driver.PrimitiveTopologyLineStrip, "LineStrip"},
	PrimitiveTopologyTriangleListAdj:         {driver.PrimitiveTopologyTriangleListAdj, "TriangleListAdj"},
	PrimitiveTopologyTriangleStripAdj:        {driver.PrimitiveTopologyTriangleStripAdj, "TriangleStripAdj"},
	PrimitiveTopologyLineListAdj:             {driver.PrimitiveTopologyLineListAdj, "LineListAdj"},
	PrimitiveTopologyLineStripAdj:            {driver.PrimitiveTopologyLineStripAdj, "LineStripAdj"},
	PrimitiveTopology1ControlPointPatchlist:  {driver.PrimitiveTopology1ControlPointPatchlist, "1ControlPointPatchlist"},
	PrimitiveTopology2ControlPointPatchlist:  {driver.PrimitiveTopology2ControlPointPatchlist, "2ControlPointPatchlist"},
	PrimitiveTopology3ControlPointPatchlist:  {driver.PrimitiveTopology3ControlPointPatchlist, "3ControlPointPatchlist"},
	PrimitiveTopology4ControlPointPatchlist:  {driver.PrimitiveTopology4ControlPointPatchlist, "4ControlPointPatchlist"},
	PrimitiveTopology5ControlPointPatchlist:  {driver.PrimitiveTopology5ControlPointPatchlist, "5ControlPointPatchlist"},
	PrimitiveTopology6ControlPointPatchlist:  {driver.PrimitiveTopology6ControlPointPatchlist, "6ControlPointPatchlist"},
	PrimitiveTopology7ControlPointPatchlist:  {driver.PrimitiveTopology7ControlPointPatchlist, "7ControlPointPatchlist"},
	PrimitiveTopology8ControlPointPatchlist:  {driver.PrimitiveTopology8ControlPointPatchlist, "8ControlPointPatchlist"},
	PrimitiveTopology9ControlPointPatchlist:  {driver.PrimitiveTopology9ControlPointPatchlist, "9ControlPointPatchlist"},
	PrimitiveTopology10ControlPointPatchlist: {driver.PrimitiveTopology10ControlPointPatchlist, "10ControlPointPatchlist"},
	PrimitiveTopology11ControlPointPatchlist: {driver.PrimitiveTopology11ControlPointPatchlist, "11ControlPointPatchlist"},
	PrimitiveTopology12ControlPointPatchlist: {driver.PrimitiveTopology12ControlPointPatchlist, "12ControlPointPatchlist"},
	PrimitiveTopology13ControlPointPatchlist: {driver.PrimitiveTopology13ControlPointPatchlist, "13ControlPointPatchlist"},
	PrimitiveTopology14ControlPointPatchlist: {driver.PrimitiveTopology14ControlPointPatchlist, "14ControlPointPatchlist"},
	PrimitiveTopology15ControlPointPatchlist: {driver.PrimitiveTopology15ControlPointPatchlist, "15ControlPointPatchlist"},
	PrimitiveTopology16ControlPointPatchlist: {driver.PrimitiveTopology16ControlPointPatchlist, "16ControlPointPatchlist"},
	PrimitiveTopology17ControlPointPatchlist: {driver.PrimitiveTopology17ControlPointPatchlist, "17ControlPointPatchlist"},
	PrimitiveTopology18ControlPointPatchlist: {driver.PrimitiveTopology18ControlPointPatchlist, "18ControlPointPatchlist"},
	PrimitiveTopology19ControlPointPatchlist: {driver.PrimitiveTopology19ControlPointPatchlist, "19ControlPointPatchlist"},
	PrimitiveTopology20ControlPointPatchlist: {driver.PrimitiveTopology20ControlPointPatchlist, "20ControlPointPatchlist"},
	PrimitiveTopology21ControlPointPatchlist: {driver.PrimitiveTopology21ControlPointPatchlist, "21ControlPointPatchlist"},
	PrimitiveTopology22ControlPointPatchlist: {driver.PrimitiveTopology22ControlPointPatchlist, "22ControlPointPatchlist"},
	PrimitiveTopology23ControlPointPatchlist: {driver.PrimitiveTopology23ControlPointPatchlist, "23ControlPointPatchlist"},
	PrimitiveTopology24ControlPointPatchlist: {driver.PrimitiveTopology24ControlPointPatchlist, "24ControlPointPatchlist"},
	PrimitiveTopology25ControlPointPatchlist: {driver.PrimitiveTopology25ControlPointPatchlist, "25ControlPointPatchlist"},
	PrimitiveTopology26ControlPointPatchlist: {driver.PrimitiveTopology26ControlPointPatchlist, "26ControlPointPatchlist"},
	PrimitiveTopology27ControlPointPatchlist: {driver.PrimitiveTopology27ControlPointPatchlist, "27ControlPointPatchlist"},
	PrimitiveTopology28ControlPointPatchlist: {driver.PrimitiveTopology28ControlPointPatchlist, "28ControlPointPatchlist"},
	PrimitiveTopology29ControlPointPatchlist: {driver.PrimitiveTopology29ControlPointPatchlist, "29ControlPointPatchlist"},
	PrimitiveTopology30ControlPointPatchlist: {driver.PrimitiveTopology30ControlPointPatchlist, "30ControlPointPatchlist"},
	PrimitiveTopology31ControlPointPatchlist: {driver.PrimitiveTopology31ControlPointPatchlist, "31ControlPointPatchlist"},
	PrimitiveTopology32ControlPointPatchlist: {driver.PrimitiveTopology32ControlPointPatchlist, "32ControlPointPatchlist"},
}

const _ = uint(len(primitiveTopologyTable) - int(driver.PrimitiveTopologyCount))
const _ = uint(int(driver.PrimitiveTopologyCount) - len(primitiveTopologyTable))

func (e PrimitiveTopology) String() string { return enumString(primitiveTopologyTable[:], e) }

func (e PrimitiveTopology) native() driver.PrimitiveTopology { return enumToNative(primitiveTopologyTable[:], e) }

func primitiveTopologyFromNative(n driver.PrimitiveTopology) PrimitiveTopology {
	return enumFromNative[PrimitiveTopology](primitiveTopologyTable[:], n, 0)
}

func (e PrimitiveTopology) MarshalText() ([]byte, error) { return enumMarshalText(primitiveTopologyTable[:], e) }

func (e *PrimitiveTopology) UnmarshalText(text []byte) error {
	return enumUnmarshalText(primitiveTopologyTable[:], e, text, 0)
}

type FillMode int32

const (
	FillModeUndefined FillMode = iota
	FillModeWireframe
	FillModeSolid
)

var fillModeTable = [...]enumEntry[driver.FillMode]{
	FillModeUndefined: {driver.FillModeUndefined, "Undefined"},
	FillModeWireframe: {driver.FillModeWireframe, "Wireframe"},
	FillModeSolid:     {driver.FillModeSolid, "Solid"},
}

const _ = uint(len(fillModeTable) - int(driver.FillModeCount))
const _ = uint(int(driver.FillModeCount) - len(fillModeTable))

func (e FillMode) String() string { return enumString(fillModeTable[:], e) }

func (e FillMode) native() driver.FillMode { return enumToNative(fillModeTable[:], e) }

func fillModeFromNative(n driver.FillMode) FillMode {
	return enumFromNative[FillMode](fillModeTable[:], n, 0)
}

func (e FillMode) MarshalText() ([]byte, error) { return enumMarshalText(fillModeTable[:], e) }

func (e *FillMode) UnmarshalText(text []byte) error {
	return enumUnmarshalText(fillModeTable[:], e, text, 0)
}

type CullMode int32

const (
	CullModeUndefined CullMode = iota
	CullModeNone
	CullModeFront
	CullModeBack
)

var cullModeTable = [...]enumEntry[driver.CullMode]{
	CullModeUndefined: {driver.CullModeUndefined, "Undefined"},
	CullModeNone:      {driver.CullModeNone, "None"},
	CullModeFront:     {driver.CullModeFront, "Front"},
	CullModeBack:      {driver.CullModeBack, "Back"},
}

const _ = uint(len(cullModeTable) - int(driver.CullModeCount))
const _ = uint(int(driver.CullModeCount) - len(cullModeTable))

func (e CullMode) String() string { return enumString(cullModeTable[:], e) }

func (e CullMode) native() driver.CullMode { return enumToNative(cullModeTable[:], e) }

func cullModeFromNative(n driver.CullMode) CullMode {
	return enumFromNative[CullMode](cullModeTable[:], n, 0)
}

func (e CullMode) MarshalText() ([]byte, error) { return enumMarshalText(cullModeTable[:], e) }

func (e *CullMode) UnmarshalText(text []byte) error {
	return enumUnmarshalText(cullModeTable[:], e, text, 0)
}

type BlendFactor int32

const (
	BlendFactorUndefined BlendFactor = iota
	BlendFactorZero
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorInvSrcColor
	BlendFactorSrcAlpha
	BlendFactorInvSrcAlpha
	BlendFactorDestAlpha
	BlendFactorInvDestAlpha
	BlendFactorDestColor
	BlendFactorInvDestColor
	BlendFactorSrcAlphaSat
	BlendFactorBlendFactor
	BlendFactorInvBlendFactor
	BlendFactorSRC1Color
	BlendFactorInvSRC1Color
	BlendFactorSRC1Alpha
	BlendFactorInvSRC1Alpha
)

var blendFactorTable = [...]enumEntry[driver.BlendFactor]{
	BlendFactorUndefined:      {driver.BlendFactorUndefined, "Undefined"},
	BlendFactorZero:           {driver.BlendFactorZero, "Zero"},
	BlendFactorOne:            {driver.BlendFactorOne, "One"},
	BlendFactorSrcColor:       {driver.BlendFactorSrcColor, "SrcColor"},
	BlendFactorInvSrcColor:    {driver.BlendFactorInvSrcColor, "InvSrcColor"},
	BlendFactorSrcAlpha:       {driver.BlendFactorSrcAlpha, "SrcAlpha"},
	BlendFactorInvSrcAlpha:    {driver.BlendFactorInvSrcAlpha, "InvSrcAlpha"},
	BlendFactorDestAlpha:      {driver.BlendFactorDestAlpha, "DestAlpha"},
	BlendFactorInvDestAlpha:   {driver.BlendFactorInvDestAlpha, "InvDestAlpha"},
	BlendFactorDestColor:      {driver.BlendFactorDestColor, "DestColor"},
	BlendFactorInvDestColor:   {driver.BlendFactorInvDestColor, "InvDestColor"},
	BlendFactorSrcAlphaSat:    {driver.BlendFactorSrcAlphaSat, "SrcAlphaSat"},
	BlendFactorBlendFactor:    {driver.BlendFactorBlendFactor, "BlendFactor"},
	BlendFactorInvBlendFactor: {driver.BlendFactorInvBlendFactor, "InvBlendFactor"},
	BlendFactorSRC1Color:      {driver.BlendFactorSRC1Color, "SRC1Color"},
	BlendFactorInvSRC1Color:   {driver.BlendFactorInvSRC1Color, "InvSRC1Color"},
	BlendFactorSRC1Alpha:      {driver.BlendFactorSRC1Alpha, "SRC1Alpha"},
	BlendFactorInvSRC1Alpha:   {driver.BlendFactorInvSRC1Alpha, "InvSRC1Alpha"},
}

const _ = uint(len(blendFactorTable) - int(driver.BlendFactorCount))
const _ = uint(int(driver.BlendFactorCount) - len(blendFactorTable))

func (e BlendFactor) String() string { return enumString(blendFactorTable[:], e) }

func (e BlendFactor) native() driver.BlendFactor { return enumToNative(blendFactorTable[:], e) }

func blendFactorFromNative(n driver.BlendFactor) BlendFactor {
	return enumFromNative[BlendFactor](blendFactorTable[:], n, 0)
}

func (e BlendFactor) MarshalText() ([]byte, error) { return enumMarshalText(blendFactorTable[:], e) }

func (e *BlendFactor) UnmarshalText(text []byte) error {
	return enumUnmarshalText(blendFactorTable[:], e, text, 0)
}

type BlendOperation int32

const (
	BlendOperationUndefined BlendOperation = iota
	BlendOperationAdd
	BlendOperationSubtract
	BlendOperationRevSubtract
	BlendOperationMin
	BlendOperationMax
)

var blendOperationTable = [...]enumEntry[driver.BlendOperation]{
	BlendOperationUndefined:   {driver.BlendOperationUndefined, "Undefined"},
	BlendOperationAdd:         {driver.BlendOperationAdd, "Add"},
	BlendOperationSubtract:    {driver.BlendOperationSubtract, "Subtract"},
	BlendOperationRevSubtract: {driver.BlendOperationRevSubtract, "RevSubtract"},
	BlendOperationMin:         {driver.BlendOperationMin, "Min"},
	BlendOperationMax:         {driver.BlendOperationMax, "Max"},
}

const _ = uint(len(blendOperationTable) - int(driver.BlendOperationCount))
const _ = uint(int(driver.BlendOperationCount) - len(blendOperationTable))

func (e BlendOperation) String() string { return enumString(blendOperationTable[:], e) }

func (e BlendOperation) native() driver.BlendOperation { return enumToNative(blendOperationTable[:], e) }

func blendOperationFromNative(n driver.BlendOperation) BlendOperation {
	return enumFromNative[BlendOperation](blendOperationTable[:], n, 0)
}

func (e BlendOperation) MarshalText() ([]byte, error) { return enumMarshalText(blendOperationTable[:], e) }

func (e *BlendOperation) UnmarshalText(text []byte) error {
	return enumUnmarshalText(blendOperationTable[:], e, text, 0)
}

// LogicOperation is the render target logic operation. The zero value selects the engine default, LogicOpNoop.
type LogicOperation int32

const (
	LogicOpClear LogicOperation = iota + 1
	LogicOpSet
	LogicOpCopy
	LogicOpCopyInverted
	LogicOpNoop
	LogicOpInvert
	LogicOpAnd
	LogicOpNand
	LogicOpOr
	LogicOpNor
	LogicOpXor
	LogicOpEquiv
	LogicOpAndReverse
	LogicOpAndInverted
	LogicOpOrReverse
	LogicOpOrInverted
)

var logicOperationTable = [...]enumEntry[driver.LogicOperation]{
	{driver.LogicOpNoop, "Noop"},
	LogicOpClear:        {driver.LogicOpClear, "Clear"},
	LogicOpSet:          {driver.LogicOpSet, "Set"},
	LogicOpCopy:         {driver.LogicOpCopy, "Copy"},
	LogicOpCopyInverted: {driver.LogicOpCopyInverted, "CopyInverted"},
	LogicOpNoop:         {driver.LogicOpNoop, "Noop"},
	LogicOpInvert:       {driver.LogicOpInvert, "Invert"},
	LogicOpAnd:          {driver.LogicOpAnd, "And"},
	LogicOpNand:         {driver.LogicOpNand, "Nand"},
	LogicOpOr:           {driver.LogicOpOr, "Or"},
	LogicOpNor:          {driver.LogicOpNor, "Nor"},
	LogicOpXor:          {driver.LogicOpXor, "Xor"},
	LogicOpEquiv:        {driver.LogicOpEquiv, "Equiv"},
	LogicOpAndReverse:   {driver.LogicOpAndReverse, "AndReverse"},
	LogicOpAndInverted:  {driver.LogicOpAndInverted, "AndInverted"},
	LogicOpOrReverse:    {driver.LogicOpOrReverse, "OrReverse"},
	LogicOpOrInverted:   {driver.LogicOpOrInverted, "OrInverted"},
}

const _ = uint(len(logicOperationTable) - int(driver.LogicOperationCount) - 1)
const _ = uint(int(driver.LogicOperationCount) + 1 - len(logicOperationTable))

func (e LogicOperation) String() string { return enumString(logicOperationTable[:], e) }

func (e LogicOperation) native() driver.LogicOperation { return enumToNative(logicOperationTable[:], e) }

func logicOperationFromNative(n driver.LogicOperation) LogicOperation {
	return enumFromNative[LogicOperation](logicOperationTable[:], n, 1)
}

func (e LogicOperation) MarshalText() ([]byte, error) { return enumMarshalText(logicOperationTable[:], e) }

func (e *LogicOperation) UnmarshalText(text []byte) error {
	return enumUnmarshalText(logicOperationTable[:], e, text, 1)
}

type StencilOp int32

const (
	StencilOpUndefined StencilOp = iota
	StencilOpKeep
	StencilOpZero
	StencilOpReplace
	StencilOpIncrSat
	StencilOpDecrSat
	StencilOpInvert
	StencilOpIncrWrap
	StencilOpDecrWrap
)

var stencilOpTable = [...]enumEntry[driver.StencilOp]{
	StencilOpUndefined: {driver.StencilOpUndefined, "Undefined"},
	StencilOpKeep:      {driver.StencilOpKeep, "Keep"},
	StencilOpZero:      {driver.StencilOpZero, "Zero"},
	StencilOpReplace:   {driver.StencilOpReplace, "Replace"},
	StencilOpIncrSat:   {driver.StencilOpIncrSat, "IncrSat"},
	StencilOpDecrSat:   {driver.StencilOpDecrSat, "DecrSat"},
	StencilOpInvert:    {driver.StencilOpInvert, "Invert"},
	StencilOpIncrWrap:  {driver.StencilOpIncrWrap, "IncrWrap"},
	StencilOpDecrWrap:  {driver.StencilOpDecrWrap, "DecrWrap"},
}

const _ = uint(len(stencilOpTable) - int(driver.StencilOpCount))
const _ = uint(int(driver.StencilOpCount) - len(stencilOpTable))

func (e StencilOp) String() string { return enumString(stencilOpTable[:], e) }

func (e StencilOp) native() driver.StencilOp { return enumToNative(stencilOpTable[:], e) }

func stencilOpFromNative(n driver.StencilOp) StencilOp {
	return enumFromNative[StencilOp](stencilOpTable[:], n, 0)
}

func (e StencilOp) MarshalText() ([]byte, error) { return enumMarshalText(stencilOpTable[:], e) }

func (e *StencilOp) UnmarshalText(text []byte) error {
	return enumUnmarshalText(stencilOpTable[:], e, text, 0)
}

type InputElementFrequency int32

const (
	InputElementFrequencyUndefined InputElementFrequency = iota
	InputElementFrequencyPerVertex
	InputElementFrequencyPerInstance
)

var inputElementFrequencyTable = [...]enumEntry[driver.InputElementFrequency]{
	InputElementFrequencyUndefined:   {driver.InputElementFrequencyUndefined, "Undefined"},
	InputElementFrequencyPerVertex:   {driver.InputElementFrequencyPerVertex, "PerVertex"},
	InputElementFrequencyPerInstance: {driver.InputElementFrequencyPerInstance, "PerInstance"},
}

const _ = uint(len(inputElementFrequencyTable) - int(driver.InputElementFrequencyCount))
const _ = uint(int(driver.InputElementFrequencyCount) - len(inputElementFrequencyTable))

func (e InputElementFrequency) String() string { return enumString(inputElementFrequencyTable[:], e) }

func (e InputElementFrequency) native() driver.InputElementFrequency { return enumToNative(inputElementFrequencyTable[:], e) }

func inputElementFrequencyFromNative(n driver.InputElementFrequency) InputElementFrequency {
	return enumFromNative[InputElementFrequency](inputElementFrequencyTable[:], n, 0)
}

func (e InputElementFrequency) MarshalText() ([]byte, error) { return enumMarshalText(inputElementFrequencyTable[:], e) }

func (e *InputElementFrequency) UnmarshalText(text []byte) error {
	return enumUnmarshalText(inputElementFrequencyTable[:], e, text, 0)
}

// ShadingRate is a variable rate shading tile size.
type ShadingRate int32

const (
	ShadingRate1X1 ShadingRate = iota
	ShadingRate1X2
	ShadingRate1X4
	ShadingRate2X1
	ShadingRate2X2
	ShadingRate2X4
	ShadingRate4X1
	ShadingRate4X2
	ShadingRate4X4
)

var shadingRateTable = [...]enumEntry[driver.ShadingRate]{
	ShadingRate1X1: {driver.ShadingRate1X1, "1X1"},
	ShadingRate1X2: {driver.ShadingRate1X2, "1X2"},
	ShadingRate1X4: {driver.ShadingRate1X4, "1X4"},
	ShadingRate2X1: {driver.ShadingRate2X1, "2X1"},
	ShadingRate2X2: {driver.ShadingRate2X2, "2X2"},
	ShadingRate2X4: {driver.ShadingRate2X4, "2X4"},
	ShadingRate4X1: {driver.ShadingRate4X1, "4X1"},
	ShadingRate4X2: {driver.ShadingRate4X2, "4X2"},
	ShadingRate4X4: {driver.ShadingRate4X4, "4X4"},
}

const _ = uint(len(shadingRateTable) - int(driver.ShadingRateCount))
const _ = uint(int(driver.ShadingRateCount) - len(shadingRateTable))

func (e ShadingRate) String() string { return enumString(shadingRateTable[:], e) }

func (e ShadingRate) native() driver.ShadingRate { return enumToNative(shadingRateTable[:], e) }

func shadingRateFromNative(n driver.ShadingRate) ShadingRate {
	return enumFromNative[ShadingRate](shadingRateTable[:], n, 0)
}

func (e ShadingRate) MarshalText() ([]byte, error) { return enumMarshalText(shadingRateTable[:], e) }

func (e *ShadingRate) UnmarshalText(text []byte) error {
	return enumUnmarshalText(shadingRateTable[:], e, text, 0)
}

type AttachmentLoadOp int32

const (
	AttachmentLoadOpLoad AttachmentLoadOp = iota
	AttachmentLoadOpClear
	AttachmentLoadOpDiscard
)

var attachmentLoadOpTable = [...]enumEntry[driver.AttachmentLoadOp]{
	AttachmentLoadOpLoad:    {driver.AttachmentLoadOpLoad, "Load"},
	AttachmentLoadOpClear:   {driver.AttachmentLoadOpClear, "Clear"},
	AttachmentLoadOpDiscard: {driver.AttachmentLoadOpDiscard, "Discard"},
}

const _ = uint(len(attachmentLoadOpTable) - int(driver.AttachmentLoadOpCount))
const _ = uint(int(driver.AttachmentLoadOpCount) - len(attachmentLoadOpTable))

func (e AttachmentLoadOp) String() string { return enumString(attachmentLoadOpTable[:], e) }

func (e AttachmentLoadOp) native() driver.AttachmentLoadOp { return enumToNative(attachmentLoadOpTable[:], e) }

func attachmentLoadOpFromNative(n driver.AttachmentLoadOp) AttachmentLoadOp {
	return enumFromNative[AttachmentLoadOp](attachmentLoadOpTable[:], n, 0)
}

func (e AttachmentLoadOp) MarshalText() ([]byte, error) { return enumMarshalText(attachmentLoadOpTable[:], e) }

func (e *AttachmentLoadOp) UnmarshalText(text []byte) error {
	return enumUnmarshalText(attachmentLoadOpTable[:], e, text, 0)
}

type AttachmentStoreOp int32

const (
	AttachmentStoreOpStore AttachmentStoreOp = iota
	AttachmentStoreOpDiscard
)

var attachmentStoreOpTable = [...]enumEntry[driver.AttachmentStoreOp]{
	AttachmentStoreOpStore:   {driver.AttachmentStoreOpStore, "Store"},
	AttachmentStoreOpDiscard: {driver.AttachmentStoreOpDiscard, "Discard"},
}

const _ = uint(len(attachmentStoreOpTable) - int(driver.AttachmentStoreOpCount))
const _ = uint(int(driver.AttachmentStoreOpCount) - len(attachmentStoreOpTable))

func (e AttachmentStoreOp) String() string { return enumString(attachmentStoreOpTable[:], e) }

func (e AttachmentStoreOp) native() driver.AttachmentStoreOp { return enumToNative(attachmentStoreOpTable[:], e) }

func attachmentStoreOpFromNative(n driver.AttachmentStoreOp) AttachmentStoreOp {
	return enumFromNative[AttachmentStoreOp](attachmentStoreOpTable[:], n, 0)
}

func (e AttachmentStoreOp) MarshalText() ([]byte, error) { return enumMarshalText(attachmentStoreOpTable[:], e) }

func (e *AttachmentStoreOp) UnmarshalText(text []byte) error {
	return enumUnmarshalText(attachmentStoreOpTable[:], e, text, 0)
}

type PSOCreateFlags int32

var psoCreateFlagsMapping = common.NewFlagStringMapping[PSOCreateFlags]()

func (f PSOCreateFlags) Register(str string) {
	psoCreateFlagsMapping.Register(f, str)
}
func (f PSOCreateFlags) String() string {
	return psoCreateFlagsMapping.FlagsToString(f)
}

func (f PSOCreateFlags) native() driver.PSOCreateFlags { return driver.PSOCreateFlags(f) }

const (
	PSOCreateFlagNone                           PSOCreateFlags = PSOCreateFlags(driver.PSOCreateFlagNone)
	PSOCreateFlagIgnoreMissingVariables         PSOCreateFlags = PSOCreateFlags(driver.PSOCreateFlagIgnoreMissingVariables)
	PSOCreateFlagIgnoreMissingImmutableSamplers PSOCreateFlags = PSOCreateFlags(driver.PSOCreateFlagIgnoreMissingImmutableSamplers)
	PSOCreateFlagDontRemapShaderResources       PSOCreateFlags = PSOCreateFlags(driver.PSOCreateFlagDontRemapShaderResources)
	PSOCreateFlagAsynchronous                   PSOCreateFlags = PSOCreateFlags(driver.PSOCreateFlagAsynchronous)
)

// ColorMask selects the render target channels a blend stage writes.
type ColorMask int32

var colorMaskMapping = common.NewFlagStringMapping[ColorMask]()

func (f ColorMask) Register(str string) {
	colorMaskMapping.Register(f, str)
}
func (f ColorMask) String() string {
	return colorMaskMapping.FlagsToString(f)
}

func (f ColorMask) native() driver.ColorMask { return driver.ColorMask(f) }

const (
	ColorMaskNone  ColorMask = ColorMask(driver.ColorMaskNone)
	ColorMaskRed   ColorMask = ColorMask(driver.ColorMaskRed)
	ColorMaskGreen ColorMask = ColorMask(driver.ColorMaskGreen)
	ColorMaskBlue  ColorMask = ColorMask(driver.ColorMaskBlue)
	ColorMaskAlpha ColorMask = ColorMask(driver.ColorMaskAlpha)
	ColorMaskRGB   ColorMask = ColorMask(driver.ColorMaskRGB)
	ColorMaskAll   ColorMask = ColorMask(driver.ColorMaskAll)
)

// PipelineStageFlags mirror Vulkan pipeline stages for render pass dependencies.
type PipelineStageFlags int32

var pipelineStageFlagsMapping = common.NewFlagStringMapping[PipelineStageFlags]()

func (f PipelineStageFlags) Register(str string) {
	pipelineStageFlagsMapping.Register(f, str)
}
func (f PipelineStageFlags) String() string {
	return pipelineStageFlagsMapping.FlagsToString(f)
}

func (f PipelineStageFlags) native() driver.PipelineStageFlags { return driver.PipelineStageFlags(f) }

const (
	PipelineStageUndefined                  PipelineStageFlags = PipelineStageFlags(driver.PipelineStageUndefined)
	PipelineStageTopOfPipe                  PipelineStageFlags = PipelineStageFlags(driver.PipelineStageTopOfPipe)
	PipelineStageDrawIndirect               PipelineStageFlags = PipelineStageFlags(driver.PipelineStageDrawIndirect)
	PipelineStageVertexInput                PipelineStageFlags = PipelineStageFlags(driver.PipelineStageVertexInput)
	PipelineStageVertexShader               PipelineStageFlags = PipelineStageFlags(driver.PipelineStageVertexShader)
	PipelineStageHullShader                 PipelineStageFlags = PipelineStageFlags(driver.PipelineStageHullShader)
	PipelineStageDomainShader               PipelineStageFlags = PipelineStageFlags(driver.PipelineStageDomainShader)
	PipelineStageGeometryShader             PipelineStageFlags = PipelineStageFlags(driver.PipelineStageGeometryShader)
	PipelineStagePixelShader                PipelineStageFlags = PipelineStageFlags(driver.PipelineStagePixelShader)
	PipelineStageEarlyFragmentTests         PipelineStageFlags = PipelineStageFlags(driver.PipelineStageEarlyFragmentTests)
	PipelineStageLateFragmentTests          PipelineStageFlags = PipelineStageFlags(driver.PipelineStageLateFragmentTests)
	PipelineStageRenderTarget               PipelineStageFlags = PipelineStageFlags(driver.PipelineStageRenderTarget)
	PipelineStageComputeShader              PipelineStageFlags = PipelineStageFlags(driver.PipelineStageComputeShader)
	PipelineStageTransfer                   PipelineStageFlags = PipelineStageFlags(driver.PipelineStageTransfer)
	PipelineStageBottomOfPipe               PipelineStageFlags = PipelineStageFlags(driver.PipelineStageBottomOfPipe)
	PipelineStageHost                       PipelineStageFlags = PipelineStageFlags(driver.PipelineStageHost)
	PipelineStageConditionalRendering       PipelineStageFlags = PipelineStageFlags(driver.PipelineStageConditionalRendering)
	PipelineStageAmplificationShader        PipelineStageFlags = PipelineStageFlags(driver.PipelineStageAmplificationShader)
	PipelineStageMeshShader                 PipelineStageFlags = PipelineStageFlags(driver.PipelineStageMeshShader)
	PipelineStageRayTracingShader           PipelineStageFlags = PipelineStageFlags(driver.PipelineStageRayTracingShader)
	PipelineStageShadingRateTexture         PipelineStageFlags = PipelineStageFlags(driver.PipelineStageShadingRateTexture)
	PipelineStageFragmentDensityProcess     PipelineStageFlags = PipelineStageFlags(driver.PipelineStageFragmentDensityProcess)
	PipelineStageAccelerationStructureBuild PipelineStageFlags = PipelineStageFlags(driver.PipelineStageAccelerationStructureBuild)
)

type AccessFlags int32

var accessFlagsMapping = common.NewFlagStringMapping[AccessFlags]()

func (f AccessFlags) Register(str string) {
	accessFlagsMapping.Register(f, str)
}
func (f AccessFlags) String() string {
	return accessFlagsMapping.FlagsToString(f)
}

func (f AccessFlags) native() driver.AccessFlags { return driver.AccessFlags(f) }

const (
	AccessNone                       AccessFlags = AccessFlags(driver.AccessNone)
	AccessIndirectCommandRead        AccessFlags = AccessFlags(driver.AccessIndirectCommandRead)
	AccessIndexRead                  AccessFlags = AccessFlags(driver.AccessIndexRead)
	AccessVertexRead                 AccessFlags = AccessFlags(driver.AccessVertexRead)
	AccessUniformRead                AccessFlags = AccessFlags(driver.AccessUniformRead)
	AccessInputAttachmentRead        AccessFlags = AccessFlags(driver.AccessInputAttachmentRead)
	AccessShaderRead                 AccessFlags = AccessFlags(driver.AccessShaderRead)
	AccessShaderWrite                AccessFlags = AccessFlags(driver.AccessShaderWrite)
	AccessRenderTargetRead           AccessFlags = AccessFlags(driver.AccessRenderTargetRead)
	AccessRenderTargetWrite          AccessFlags = AccessFlags(driver.AccessRenderTargetWrite)
	AccessDepthStencilRead           AccessFlags = AccessFlags(driver.AccessDepthStencilRead)
	AccessDepthStencilWrite          AccessFlags = AccessFlags(driver.AccessDepthStencilWrite)
	AccessCopySrc                    AccessFlags = AccessFlags(driver.AccessCopySrc)
	AccessCopyDst                    AccessFlags = AccessFlags(driver.AccessCopyDst)
	AccessHostRead                   AccessFlags = AccessFlags(driver.AccessHostRead)
	AccessHostWrite                  AccessFlags = AccessFlags(driver.AccessHostWrite)
	AccessMemoryRead                 AccessFlags = AccessFlags(driver.AccessMemoryRead)
	AccessMemoryWrite                AccessFlags = AccessFlags(driver.AccessMemoryWrite)
	AccessConditionalRenderingRead   AccessFlags = AccessFlags(driver.AccessConditionalRenderingRead)
	AccessAccelerationStructureRead  AccessFlags = AccessFlags(driver.AccessAccelerationStructureRead)
	AccessAccelerationStructureWrite AccessFlags = AccessFlags(driver.AccessAccelerationStructureWrite)
	AccessShadingRateTextureRead     AccessFlags = AccessFlags(driver.AccessShadingRateTextureRead)
	AccessFragmentDensityMapRead     AccessFlags = AccessFlags(driver.AccessFragmentDensityMapRead)
)

type ShadingRateCombiner int32

var shadingRateCombinerMapping = common.NewFlagStringMapping[ShadingRateCombiner]()

func (f ShadingRateCombiner) Register(str string) {
	shadingRateCombinerMapping.Register(f, str)
}
func (f ShadingRateCombiner) String() string {
	return shadingRateCombinerMapping.FlagsToString(f)
}

func (f ShadingRateCombiner) native() driver.ShadingRateCombiner { return driver.ShadingRateCombiner(f) }

const (
	ShadingRateCombinerPassthrough ShadingRateCombiner = ShadingRateCombiner(driver.ShadingRateCombinerPassthrough)
	ShadingRateCombinerOverride    ShadingRateCombiner = ShadingRateCombiner(driver.ShadingRateCombinerOverride)
	ShadingRateCombinerMin         ShadingRateCombiner = ShadingRateCombiner(driver.ShadingRateCombinerMin)
	ShadingRateCombinerMax         ShadingRateCombiner = ShadingRateCombiner(driver.ShadingRateCombinerMax)
	ShadingRateCombinerSum         ShadingRateCombiner = ShadingRateCombiner(driver.ShadingRateCombinerSum)
	ShadingRateCombinerMul         ShadingRateCombiner = ShadingRateCombiner(driver.ShadingRateCombinerMul)
)

type PipelineShadingRateFlags int32

var pipelineShadingRateFlagsMapping = common.NewFlagStringMapping[PipelineShadingRateFlags]()

func (f PipelineShadingRateFlags) Register(str string) {
	pipelineShadingRateFlagsMapping.Register(f, str)
}
func (f PipelineShadingRateFlags) String() string {
	return pipelineShadingRateFlagsMapping.FlagsToString(f)
}

func (f PipelineShadingRateFlags) native() driver.PipelineShadingRateFlags { return driver.PipelineShadingRateFlags(f) }

const (
	PipelineShadingRateFlagNone         PipelineShadingRateFlags = PipelineShadingRateFlags(driver.PipelineShadingRateFlagNone)
	PipelineShadingRateFlagPerPrimitive PipelineShadingRateFlags = PipelineShadingRateFlags(driver.PipelineShadingRateFlagPerPrimitive)
	PipelineShadingRateFlagTextureBased PipelineShadingRateFlags = PipelineShadingRateFlags(driver.PipelineShadingRateFlagTextureBased)
)

type PSOCacheMode int32

var psoCacheModeMapping = common.NewFlagStringMapping[PSOCacheMode]()

func (f PSOCacheMode) Register(str string) {
	psoCacheModeMapping.Register(f, str)
}
func (f PSOCacheMode) String() string {
	return psoCacheModeMapping.FlagsToString(f)
}

func (f PSOCacheMode) native() driver.PSOCacheMode { return driver.PSOCacheMode(f) }

const (
	PSOCacheModeLoad      PSOCacheMode = PSOCacheMode(driver.PSOCacheModeLoad)
	PSOCacheModeStore     PSOCacheMode = PSOCacheMode(driver.PSOCacheModeStore)
	PSOCacheModeLoadStore PSOCacheMode = PSOCacheMode(driver.PSOCacheModeLoadStore)
)

type PSOCacheFlags int32

var psoCacheFlagsMapping = common.NewFlagStringMapping[PSOCacheFlags]()

func (f PSOCacheFlags) Register(str string) {
	psoCacheFlagsMapping.Register(f, str)
}
func (f PSOCacheFlags) String() string {
	return psoCacheFlagsMapping.FlagsToString(f)
}

func (f PSOCacheFlags) native() driver.PSOCacheFlags { return driver.PSOCacheFlags(f) }

const (
	PSOCacheFlagNone    PSOCacheFlags = PSOCacheFlags(driver.PSOCacheFlagNone)
	PSOCacheFlagVerbose PSOCacheFlags = PSOCacheFlags(driver.PSOCacheFlagVerbose)
)

func init() {
	PSOCreateFlagIgnoreMissingVariables.Register("IgnoreMissingVariables")
	PSOCreateFlagIgnoreMissingImmutableSamplers.Register("IgnoreMissingImmutableSamplers")
	PSOCreateFlagDontRemapShaderResources.Register("DontRemapShaderResources")
	PSOCreateFlagAsynchronous.Register("Asynchronous")
	ColorMaskRed.Register("Red")
	ColorMaskGreen.Register("Green")
	ColorMaskBlue.Register("Blue")
	ColorMaskAlpha.Register("Alpha")
	PipelineStageTopOfPipe.Register("TopOfPipe")
	PipelineStageDrawIndirect.Register("DrawIndirect")
	PipelineStageVertexInput.Register("VertexInput")
	PipelineStageVertexShader.Register("VertexShader")
	PipelineStageHullShader.Register("HullShader")
	PipelineStageDomainShader.Register("DomainShader")
	PipelineStageGeometryShader.Register("GeometryShader")
	PipelineStagePixelShader.Register("PixelShader")
	PipelineStageEarlyFragmentTests.Register("EarlyFragmentTests")
	PipelineStageLateFragmentTests.Register("LateFragmentTests")
	PipelineStageRenderTarget.Register("RenderTarget")
	PipelineStageComputeShader.Register("ComputeShader")
	PipelineStageTransfer.Register("Transfer")
	PipelineStageBottomOfPipe.Register("BottomOfPipe")
	PipelineStageHost.Register("Host")
	PipelineStageConditionalRendering.Register("ConditionalRendering")
	PipelineStageAmplificationShader.Register("AmplificationShader")
	PipelineStageMeshShader.Register("MeshShader")
	PipelineStageRayTracingShader.Register("RayTracingShader")
	PipelineStageShadingRateTexture.Register("ShadingRateTexture")
	PipelineStageFragmentDensityProcess.Register("FragmentDensityProcess")
	PipelineStageAccelerationStructureBuild.Register("AccelerationStructureBuild")
	AccessIndirectCommandRead.Register("IndirectCommandRead")
	AccessIndexRead.Register("IndexRead")
	AccessVertexRead.Register("VertexRead")
	AccessUniformRead.Register("UniformRead")
	AccessInputAttachmentRead.Register("InputAttachmentRead")
	AccessShaderRead.Register("ShaderRead")
	AccessShaderWrite.Register("ShaderWrite")
	AccessRenderTargetRead.Register("RenderTargetRead")
	AccessRenderTargetWrite.Register("RenderTargetWrite")
	AccessDepthStencilRead.Register("DepthStencilRead")
	AccessDepthStencilWrite.Register("DepthStencilWrite")
	AccessCopySrc.Register("CopySrc")
	AccessCopyDst.Register("CopyDst")
	AccessHostRead.Register("HostRead")
	AccessHostWrite.Register("HostWrite")
	AccessMemoryRead.Register("MemoryRead")
	AccessMemoryWrite.Register("MemoryWrite")
	AccessConditionalRenderingRead.Register("ConditionalRenderingRead")
	AccessAccelerationStructureRead.Register("AccelerationStructureRead")
	AccessAccelerationStructureWrite.Register("AccelerationStructureWrite")
	AccessShadingRateTextureRead.Register("ShadingRateTextureRead")
	AccessFragmentDensityMapRead.Register("FragmentDensityMapRead")
	ShadingRateCombinerPassthrough.Register("Passthrough")
	ShadingRateCombinerOverride.Register("Override")
	ShadingRateCombinerMin.Register("Min")
	ShadingRateCombinerMax.Register("Max")
	ShadingRateCombinerSum.Register("Sum")
	ShadingRateCombinerMul.Register("Mul")
	PipelineShadingRateFlagPerPrimitive.Register("PerPrimitive")
	PipelineShadingRateFlagTextureBased.Register("TextureBased")
	PSOCacheModeLoad.Register("Load")
	PSOCacheModeStore.Register("Store")
	PSOCacheFlagVerbose.Register("Verbose")
}
