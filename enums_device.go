package diligent

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/diligent/driver"
)

// RenderDeviceType identifies the graphics API behind a render device.
type RenderDeviceType int32

const (
	RenderDeviceTypeUndefined RenderDeviceType = iota
	RenderDeviceTypeD3D11
	RenderDeviceTypeD3D12
	RenderDeviceTypeGL
	RenderDeviceTypeGLES
	RenderDeviceTypeVulkan
	RenderDeviceTypeMetal
	RenderDeviceTypeWebGPU
)

var renderDeviceTypeTable = [...]enumEntry[driver.RenderDeviceType]{
	RenderDeviceTypeUndefined: {driver.RenderDeviceTypeUndefined, "Undefined"},
	RenderDeviceTypeD3D11:     {driver.RenderDeviceTypeD3D11, "D3D11"},
	RenderDeviceTypeD3D12:     {driver.RenderDeviceTypeD3D12, "D3D12"},
	RenderDeviceTypeGL:        {driver.RenderDeviceTypeGL, "GL"},
	RenderDeviceTypeGLES:      {driver.RenderDeviceTypeGLES, "GLES"},
	RenderDeviceTypeVulkan:    {driver.RenderDeviceTypeVulkan, "Vulkan"},
	RenderDeviceTypeMetal:     {driver.RenderDeviceTypeMetal, "Metal"},
	RenderDeviceTypeWebGPU:    {driver.RenderDeviceTypeWebGPU, "WebGPU"},
}

const _ = uint(len(renderDeviceTypeTable) - int(driver.RenderDeviceTypeCount))
const _ = uint(int(driver.RenderDeviceTypeCount) - len(renderDeviceTypeTable))

func (e RenderDeviceType) String() string { return enumString(renderDeviceTypeTable[:], e) }

func (e RenderDeviceType) native() driver.RenderDeviceType { return enumToNative(renderDeviceTypeTable[:], e) }

func renderDeviceTypeFromNative(n driver.RenderDeviceType) RenderDeviceType {
	return enumFromNative[RenderDeviceType](renderDeviceTypeTable[:], n, 0)
}

func (e RenderDeviceType) MarshalText() ([]byte, error) { return enumMarshalText(renderDeviceTypeTable[:], e) }

func (e *RenderDeviceType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(renderDeviceTypeTable[:], e, text, 0)
}

type AdapterType int32

const (
	AdapterTypeUnknown AdapterType = iota
	AdapterTypeSoftware
	AdapterTypeIntegrated
	AdapterTypeDiscrete
)

var adapterTypeTable = [...]enumEntry[driver.AdapterType]{
	AdapterTypeUnknown:    {driver.AdapterTypeUnknown, "Unknown"},
	AdapterTypeSoftware:   {driver.AdapterTypeSoftware, "Software"},
	AdapterTypeIntegrated: {driver.AdapterTypeIntegrated, "Integrated"},
	AdapterTypeDiscrete:   {driver.AdapterTypeDiscrete, "Discrete"},
}

const _ = uint(len(adapterTypeTable) - int(driver.AdapterTypeCount))
const _ = uint(int(driver.AdapterTypeCount) - len(adapterTypeTable))

func (e AdapterType) String() string { return enumString(adapterTypeTable[:], e) }

func (e AdapterType) native() driver.AdapterType { return enumToNative(adapterTypeTable[:], e) }

func adapterTypeFromNative(n driver.AdapterType) AdapterType {
	return enumFromNative[AdapterType](adapterTypeTable[:], n, 0)
}

func (e AdapterType) MarshalText() ([]byte, error) { return enumMarshalText(adapterTypeTable[:], e) }

func (e *AdapterType) UnmarshalText(text []byte) error {
	return enumUnmarshalText(adapterTypeTable[:], e, text, 0)
}

type AdapterVendor int32

const (
	AdapterVendorUnknown AdapterVendor = iota
	AdapterVendorNvidia
	AdapterVendorAMD
	AdapterVendorIntel
	AdapterVendorARM
	AdapterVendorQualcomm
	AdapterVendorImgTech
	AdapterVendorMSFT
	AdapterVendorApple
	AdapterVendorMesa
	AdapterVendorBroadcom
)

var adapterVendorTable = [...]enumEntry[driver.AdapterVendor]{
	AdapterVendorUnknown:  {driver.AdapterVendorUnknown, "Unknown"},
	AdapterVendorNvidia:   {driver.AdapterVendorNvidia, "Nvidia"},
	AdapterVendorAMD:      {driver.AdapterVendorAMD, "AMD"},
	AdapterVendorIntel:    {driver.AdapterVendorIntel, "Intel"},
	AdapterVendorARM:      {driver.AdapterVendorARM, "ARM"},
	AdapterVendorQualcomm: {driver.AdapterVendorQualcomm, "Qualcomm"},
	AdapterVendorImgTech:  {driver.AdapterVendorImgTech, "ImgTech"},
	AdapterVendorMSFT:     {driver.AdapterVendorMSFT, "MSFT"},
	AdapterVendorApple:    {driver.AdapterVendorApple, "Apple"},
	AdapterVendorMesa:     {driver.AdapterVendorMesa, "Mesa"},
	AdapterVendorBroadcom: {driver.AdapterVendorBroadcom, "Broadcom"},
}

const _ = uint(len(adapterVendorTable) - int(driver.AdapterVendorCount))
const _ = uint(int(driver.AdapterVendorCount) - len(adapterVendorTable))

func (e AdapterVendor) String() string { return enumString(adapterVendorTable[:], e) }

func (e AdapterVendor) native() driver.AdapterVendor { return enumToNative(adapterVendorTable[:], e) }

func adapterVendorFromNative(n driver.AdapterVendor) AdapterVendor {
	return enumFromNative[AdapterVendor](adapterVendorTable[:], n, 0)
}

func (e AdapterVendor) MarshalText() ([]byte, error) { return enumMarshalText(adapterVendorTable[:], e) }

func (e *AdapterVendor) UnmarshalText(text []byte) error {
	return enumUnmarshalText(adapterVendorTable[:], e, text, 0)
}

type QueuePriority int32

const (
	QueuePriorityUnknown QueuePriority = iota
	QueuePriorityLow
	QueuePriorityMedium
	QueuePriorityHigh
	QueuePriorityRealtime
)

var queuePriorityTable = [...]enumEntry[driver.QueuePriority]{
	QueuePriorityUnknown:  {driver.QueuePriorityUnknown, "Unknown"},
	QueuePriorityLow:      {driver.QueuePriorityLow, "Low"},
	QueuePriorityMedium:   {driver.QueuePriorityMedium, "Medium"},
	QueuePriorityHigh:     {driver.QueuePriorityHigh, "High"},
	QueuePriorityRealtime: {driver.QueuePriorityRealtime, "Realtime"},
}

const _ = uint(len(queuePriorityTable) - int(driver.QueuePriorityCount))
const _ = uint(int(driver.QueuePriorityCount) - len(queuePriorityTable))

func (e QueuePriority) String() string { return enumString(queuePriorityTable[:], e) }

func (e QueuePriority) native() driver.QueuePriority { return enumToNative(queuePriorityTable[:], e) }

func queuePriorityFromNative(n driver.QueuePriority) QueuePriority {
	return enumFromNative[QueuePriority](queuePriorityTable[:], n, 0)
}

func (e QueuePriority) MarshalText() ([]byte, error) { return enumMarshalText(queuePriorityTable[:], e) }

func (e *QueuePriority) UnmarshalText(text []byte) error {
	return enumUnmarshalText(queuePriorityTable[:], e, text, 0)
}

// DebugMessageSeverity is the severity of a message delivered to a message callback.
type DebugMessageSeverity int32

const (
	DebugMessageSeverityInfo DebugMessageSeverity = iota
	DebugMessageSeverityWarning
	DebugMessageSeverityError
	DebugMessageSeverityFatalError
)

var debugMessageSeverityTable = [...]enumEntry[driver.DebugMessageSeverity]{
	DebugMessageSeverityInfo:       {driver.DebugMessageSeverityInfo, "Info"},
	DebugMessageSeverityWarning:    {driver.DebugMessageSeverityWarning, "Warning"},
	DebugMessageSeverityError:      {driver.DebugMessageSeverityError, "Error"},
	DebugMessageSeverityFatalError: {driver.DebugMessageSeverityFatalError, "FatalError"},
}

const _ = uint(len(debugMessageSeverityTable) - int(driver.DebugMessageSeverityCount))
const _ = uint(int(driver.DebugMessageSeverityCount) - len(debugMessageSeverityTable))

func (e DebugMessageSeverity) String() string { return enumString(debugMessageSeverityTable[:], e) }

func (e DebugMessageSeverity) native() driver.DebugMessageSeverity { return enumToNative(debugMessageSeverityTable[:], e) }

func debugMessageSeverityFromNative(n driver.DebugMessageSeverity) DebugMessageSeverity {
	return enumFromNative[DebugMessageSeverity](debugMessageSeverityTable[:], n, 0)
}

func (e DebugMessageSeverity) MarshalText() ([]byte, error) { return enumMarshalText(debugMessageSeverityTable[:], e) }

func (e *DebugMessageSeverity) UnmarshalText(text []byte) error {
	return enumUnmarshalText(debugMessageSeverityTable[:], e, text, 0)
}

// DeviceFeatureState requests or reports a device feature. The zero value disables the feature.
type DeviceFeatureState int32

const (
	DeviceFeatureStateDisabled DeviceFeatureState = iota
	DeviceFeatureStateEnabled
	DeviceFeatureStateOptional
)

var deviceFeatureStateTable = [...]enumEntry[driver.DeviceFeatureState]{
	DeviceFeatureStateDisabled: {driver.DeviceFeatureStateDisabled, "Disabled"},
	DeviceFeatureStateEnabled:  {driver.DeviceFeatureStateEnabled, "Enabled"},
	DeviceFeatureStateOptional: {driver.DeviceFeatureStateOptional, "Optional"},
}

const _ = uint(len(deviceFeatureStateTable) - int(driver.DeviceFeatureStateCount))
const _ = uint(int(driver.DeviceFeatureStateCount) - len(deviceFeatureStateTable))

func (e DeviceFeatureState) String() string { return enumString(deviceFeatureStateTable[:], e) }

func (e DeviceFeatureState) native() driver.DeviceFeatureState { return enumToNative(deviceFeatureStateTable[:], e) }

func deviceFeatureStateFromNative(n driver.DeviceFeatureState) DeviceFeatureState {
	return enumFromNative[DeviceFeatureState](deviceFeatureStateTable[:], n, 0)
}

func (e DeviceFeatureState) MarshalText() ([]byte, error) { return enumMarshalText(deviceFeatureStateTable[:], e) }

func (e *DeviceFeatureState) UnmarshalText(text []byte) error {
	return enumUnmarshalText(deviceFeatureStateTable[:], e, text, 0)
}

type SurfaceTransform int32

const (
	SurfaceTransformOptimal SurfaceTransform = iota
	SurfaceTransformIdentity
	SurfaceTransformRotate90
	SurfaceTransformRotate180
	SurfaceTransformRotate270
	SurfaceTransformHorizontalMirror
	SurfaceTransformHorizontalMirrorRotate90
	SurfaceTransformHorizontalMirrorRotate180
	SurfaceTransformHorizontalMirrorRotate270
)

var surfaceTransformTable = [...]enumEntry[driver.SurfaceTransform]{
	SurfaceTransformOptimal:                   {driver.SurfaceTransformOptimal, "Optimal"},
	SurfaceTransformIdentity:                  {driver.SurfaceTransformIdentity, "Identity"},
	SurfaceTransformRotate90:                  {driver.SurfaceTransformRotate90, "Rotate90"},
	SurfaceTransformRotate180:                 {driver.SurfaceTransformRotate180, "Rotate180"},
	SurfaceTransformRotate270:                 {driver.SurfaceTransformRotate270, "Rotate270"},
	SurfaceTransformHorizontalMirror:          {driver.SurfaceTransformHorizontalMirror, "HorizontalMirror"},
	SurfaceTransformHorizontalMirrorRotate90:  {driver.SurfaceTransformHorizontalMirrorRotate90, "HorizontalMirrorRotate90"},
	SurfaceTransformHorizontalMirrorRotate180: {driver.SurfaceTransformHorizontalMirrorRotate180, "HorizontalMirrorRotate180"},
	SurfaceTransformHorizontalMirrorRotate270: {driver.SurfaceTransformHorizontalMirrorRotate270, "HorizontalMirrorRotate270"},
}

const _ = uint(len(surfaceTransformTable) - int(driver.SurfaceTransformCount))
const _ = uint(int(driver.SurfaceTransformCount) - len(surfaceTransformTable))

func (e SurfaceTransform) String() string { return enumString(surfaceTransformTable[:], e) }

func (e SurfaceTransform) native() driver.SurfaceTransform { return enumToNative(surfaceTransformTable[:], e) }

func surfaceTransformFromNative(n driver.SurfaceTransform) SurfaceTransform {
	return enumFromNative[SurfaceTransform](surfaceTransformTable[:], n, 0)
}

func (e SurfaceTransform) MarshalText() ([]byte, error) { return enumMarshalText(surfaceTransformTable[:], e) }

func (e *SurfaceTransform) UnmarshalText(text []byte) error {
	return enumUnmarshalText(surfaceTransformTable[:], e, text, 0)
}

type ScalingMode int32

const (
	ScalingModeUnspecified ScalingMode = iota
	ScalingModeCentered
	ScalingModeStretched
)

var scalingModeTable = [...]enumEntry[driver.ScalingMode]{
	ScalingModeUnspecified: {driver.ScalingModeUnspecified, "Unspecified"},
	ScalingModeCentered:    {driver.ScalingModeCentered, "Centered"},
	ScalingModeStretched:   {driver.ScalingModeStretched, "Stretched"},
}

const _ = uint(len(scalingModeTable) - int(driver.ScalingModeCount))
const _ = uint(int(driver.ScalingModeCount) - len(scalingModeTable))

func (e ScalingMode) String() string { return enumString(scalingModeTable[:], e) }

func (e ScalingMode) native() driver.ScalingMode { return enumToNative(scalingModeTable[:], e) }

func scalingModeFromNative(n driver.ScalingMode) ScalingMode {
	return enumFromNative[ScalingMode](scalingModeTable[:], n, 0)
}

func (e ScalingMode) MarshalText() ([]byte, error) { return enumMarshalText(scalingModeTable[:], e) }

func (e *ScalingMode) UnmarshalText(text []byte) error {
	return enumUnmarshalText(scalingModeTable[:], e, text, 0)
}

type ScanlineOrder int32

const (
	ScanlineOrderUnspecified ScanlineOrder = iota
	ScanlineOrderProgressive
	ScanlineOrderUpperFieldFirst
	ScanlineOrderLowerFieldFirst
)

var scanlineOrderTable = [...]enumEntry[driver.ScanlineOrder]{
	ScanlineOrderUnspecified:     {driver.ScanlineOrderUnspecified, "Unspecified"},
	ScanlineOrderProgressive:     {driver.ScanlineOrderProgressive, "Progressive"},
	ScanlineOrderUpperFieldFirst: {driver.ScanlineOrderUpperFieldFirst, "UpperFieldFirst"},
	ScanlineOrderLowerFieldFirst: {driver.ScanlineOrderLowerFieldFirst, "LowerFieldFirst"},
}

const _ = uint(len(scanlineOrderTable) - int(driver.ScanlineOrderCount))
const _ = uint(int(driver.ScanlineOrderCount) - len(scanlineOrderTable))

func (e ScanlineOrder) String() string { return enumString(scanlineOrderTable[:], e) }

func (e ScanlineOrder) native() driver.ScanlineOrder { return enumToNative(scanlineOrderTable[:], e) }

func scanlineOrderFromNative(n driver.ScanlineOrder) ScanlineOrder {
	return enumFromNative[ScanlineOrder](scanlineOrderTable[:], n, 0)
}

func (e ScanlineOrder) MarshalText() ([]byte, error) { return enumMarshalText(scanlineOrderTable[:], e) }

func (e *ScanlineOrder) UnmarshalText(text []byte) error {
	return enumUnmarshalText(scanlineOrderTable[:], e, text, 0)
}

// SwapChainUsageFlags describe how back buffers will be used.
type SwapChainUsageFlags int32

var swapChainUsageFlagsMapping = common.NewFlagStringMapping[SwapChainUsageFlags]()

func (f SwapChainUsageFlags) Register(str string) {
	swapChainUsageFlagsMapping.Register(f, str)
}
func (f SwapChainUsageFlags) String() string {
	return swapChainUsageFlagsMapping.FlagsToString(f)
}

func (f SwapChainUsageFlags) native() driver.SwapChainUsageFlags { return driver.SwapChainUsageFlags(f) }

const (
	SwapChainUsageNone            SwapChainUsageFlags = SwapChainUsageFlags(driver.SwapChainUsageNone)
	SwapChainUsageRenderTarget    SwapChainUsageFlags = SwapChainUsageFlags(driver.SwapChainUsageRenderTarget)
	SwapChainUsageShaderResource  SwapChainUsageFlags = SwapChainUsageFlags(driver.SwapChainUsageShaderResource)
	SwapChainUsageInputAttachment SwapChainUsageFlags = SwapChainUsageFlags(driver.SwapChainUsageInputAttachment)
	SwapChainUsageCopySource      SwapChainUsageFlags = SwapChainUsageFlags(driver.SwapChainUsageCopySource)
)

// CommandQueueType is the capability set of a hardware command queue.
type CommandQueueType int32

var commandQueueTypeMapping = common.NewFlagStringMapping[CommandQueueType]()

func (f CommandQueueType) Register(str string) {
	commandQueueTypeMapping.Register(f, str)
}
func (f CommandQueueType) String() string {
	return commandQueueTypeMapping.FlagsToString(f)
}

func (f CommandQueueType) native() driver.CommandQueueType { return driver.CommandQueueType(f) }

const (
	CommandQueueTypeUnknown       CommandQueueType = CommandQueueType(driver.CommandQueueTypeUnknown)
	CommandQueueTypeTransfer      CommandQueueType = CommandQueueType(driver.CommandQueueTypeTransfer)
	CommandQueueTypeCompute       CommandQueueType = CommandQueueType(driver.CommandQueueTypeCompute)
	CommandQueueTypeGraphics      CommandQueueType = CommandQueueType(driver.CommandQueueTypeGraphics)
	CommandQueueTypeSparseBinding CommandQueueType = CommandQueueType(driver.CommandQueueTypeSparseBinding)
)

type ValidationFlags int32

var validationFlagsMapping = common.NewFlagStringMapping[ValidationFlags]()

func (f ValidationFlags) Register(str string) {
	validationFlagsMapping.Register(f, str)
}
func (f ValidationFlags) String() string {
	return validationFlagsMapping.FlagsToString(f)
}

func (f ValidationFlags) native() driver.ValidationFlags { return driver.ValidationFlags(f) }

const (
	ValidationFlagNone                  ValidationFlags = ValidationFlags(driver.ValidationFlagNone)
	ValidationFlagCheckShaderBufferSize ValidationFlags = ValidationFlags(driver.ValidationFlagCheckShaderBufferSize)
)

func init() {
	SwapChainUsageRenderTarget.Register("RenderTarget")
	SwapChainUsageShaderResource.Register("ShaderResource")
	SwapChainUsageInputAttachment.Register("InputAttachment")
	SwapChainUsageCopySource.Register("CopySource")
	CommandQueueTypeTransfer.Register("Transfer")
	CommandQueueTypeSparseBinding.Register("SparseBinding")
	ValidationFlagCheckShaderBufferSize.Register("CheckShaderBufferSize")
}
