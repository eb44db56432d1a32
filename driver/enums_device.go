package driver

type RenderDeviceType uint8

const (
	RenderDeviceTypeUndefined RenderDeviceType = iota
	RenderDeviceTypeD3D11
	RenderDeviceTypeD3D12
	RenderDeviceTypeGL
	RenderDeviceTypeGLES
	RenderDeviceTypeVulkan
	RenderDeviceTypeMetal
	RenderDeviceTypeWebGPU
	RenderDeviceTypeCount
)

type AdapterType uint8

const (
	AdapterTypeUnknown AdapterType = iota
	AdapterTypeSoftware
	AdapterTypeIntegrated
	AdapterTypeDiscrete
	AdapterTypeCount
)

type AdapterVendor uint8

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
	AdapterVendorCount
)

type QueuePriority uint8

const (
	QueuePriorityUnknown QueuePriority = iota
	QueuePriorityLow
	QueuePriorityMedium
	QueuePriorityHigh
	QueuePriorityRealtime
	QueuePriorityCount
)

type DebugMessageSeverity int32

const (
	DebugMessageSeverityInfo DebugMessageSeverity = iota
	DebugMessageSeverityWarning
	DebugMessageSeverityError
	DebugMessageSeverityFatalError
	DebugMessageSeverityCount
)

type DeviceFeatureState uint8

const (
	DeviceFeatureStateDisabled DeviceFeatureState = iota
	DeviceFeatureStateEnabled
	DeviceFeatureStateOptional
	DeviceFeatureStateCount
)

type SurfaceTransform uint32

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
	SurfaceTransformCount
)

type ScalingMode uint8

const (
	ScalingModeUnspecified ScalingMode = iota
	ScalingModeCentered
	ScalingModeStretched
	ScalingModeCount
)

type ScanlineOrder uint8

const (
	ScanlineOrderUnspecified ScanlineOrder = iota
	ScanlineOrderProgressive
	ScanlineOrderUpperFieldFirst
	ScanlineOrderLowerFieldFirst
	ScanlineOrderCount
)

type SwapChainUsageFlags uint32

const (
	SwapChainUsageNone            SwapChainUsageFlags = 0x0
	SwapChainUsageRenderTarget    SwapChainUsageFlags = 0x1
	SwapChainUsageShaderResource  SwapChainUsageFlags = 0x2
	SwapChainUsageInputAttachment SwapChainUsageFlags = 0x4
	SwapChainUsageCopySource      SwapChainUsageFlags = 0x8
)

type CommandQueueType uint8

const (
	CommandQueueTypeUnknown       CommandQueueType = 0x0
	CommandQueueTypeTransfer      CommandQueueType = 0x1
	CommandQueueTypeCompute       CommandQueueType = 0x3
	CommandQueueTypeGraphics      CommandQueueType = 0x7
	CommandQueueTypeSparseBinding CommandQueueType = 0x8
)

type ValidationFlags uint32

const (
	ValidationFlagNone                  ValidationFlags = 0x0
	ValidationFlagCheckShaderBufferSize ValidationFlags = 0x1
)
