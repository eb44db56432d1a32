package driver

import "unsafe"

type EngineFactory interface {
	Object
	GetAPIInfo() *APIInfo
	CreateDataBlob(initialSize uint64, data unsafe.Pointer) DataBlob
	CreateDefaultShaderSourceStreamFactory(searchDirectories *byte) ShaderSourceInputStreamFactory
	EnumerateAdapters(minVersion Version) []GraphicsAdapterInfo
	SetMessageCallback(callback MessageCallback)
	SetBreakOnError(breakOnError bool)
}

type engineFactoryMethods struct {
	objectMethods
	GetAPIInfo                             uintptr
	CreateDataBlob                         uintptr
	CreateDefaultShaderSourceStreamFactory uintptr
	EnumerateAdapters                      uintptr
	CreateDearchiver                       uintptr
	SetMessageCallback                     uintptr
	SetBreakOnError                        uintptr
}

const (
	_ = unsafe.Sizeof(engineFactoryMethods{}) - 11*ptrSize
	_ = 11*ptrSize - unsafe.Sizeof(engineFactoryMethods{})
)

type engineFactory struct {
	object
}

func EngineFactoryFromHandle(h Handle) EngineFactory {
	if h == 0 {
		return nil
	}
	return engineFactory{object{handle: h}}
}

func (f engineFactory) factoryMethods() *engineFactoryMethods {
	return vtblOf[engineFactoryMethods](f.handle)
}

func (f engineFactory) GetAPIInfo() *APIInfo {
	return (*APIInfo)(unsafe.Pointer(call(f.factoryMethods().GetAPIInfo, uintptr(f.handle))))
}

func (f engineFactory) CreateDataBlob(initialSize uint64, data unsafe.Pointer) DataBlob {
	var out Handle
	call(f.factoryMethods().CreateDataBlob, uintptr(f.handle), uintptr(initialSize), uintptr(data), ptr(&out))
	return DataBlobFromHandle(out)
}

func (f engineFactory) CreateDefaultShaderSourceStreamFactory(searchDirectories *byte) ShaderSourceInputStreamFactory {
	var out Handle
	call(f.factoryMethods().CreateDefaultShaderSourceStreamFactory, uintptr(f.handle), ptr(searchDirectories), ptr(&out))
	return ShaderSourceInputStreamFactoryFromHandle(out)
}

func (f engineFactory) EnumerateAdapters(minVersion Version) []GraphicsAdapterInfo {
	var count uint32
	call(f.factoryMethods().EnumerateAdapters, uintptr(f.handle), minVersion.pack(), ptr(&count), 0)
	if count == 0 {
		return nil
	}

	adapters := make([]GraphicsAdapterInfo, count)
	call(f.factoryMethods().EnumerateAdapters, uintptr(f.handle), minVersion.pack(), ptr(&count), ptr(&adapters[0]))
	return adapters[:count]
}

func (f engineFactory) SetMessageCallback(callback MessageCallback) {
	call(f.factoryMethods().SetMessageCallback, uintptr(f.handle), messageCallbackPointer(callback))
}

func (f engineFactory) SetBreakOnError(breakOnError bool) {
	call(f.factoryMethods().SetBreakOnError, uintptr(f.handle), boolArg(breakOnError))
}

// pack returns Version as passed by value: both fields share one register.
func (v Version) pack() uintptr {
	return uintptr(v.Major) | uintptr(v.Minor)<<32
}

// contextCount is the number of contexts a device creation call writes: one per
// immediate context (at least one) followed by the deferred contexts.
func contextCount(ci *EngineCreateInfo) int {
	immediate := int(ci.NumImmediateContexts)
	if immediate == 0 {
		immediate = 1
	}
	return immediate + int(ci.NumDeferredContexts)
}

// createDeviceAndContexts calls a backend creation method shaped
// (const CreateInfo&, IRenderDevice**, IDeviceContext**).
func createDeviceAndContexts(fn uintptr, this Handle, ci unsafe.Pointer, base *EngineCreateInfo) (RenderDevice, []DeviceContext) {
	var device Handle
	handles := make([]Handle, contextCount(base))
	call(fn, uintptr(this), uintptr(ci), ptr(&device), ptr(&handles[0]))
	return RenderDeviceFromHandle(device), contextsFromHandles(handles)
}

func contextsFromHandles(handles []Handle) []DeviceContext {
	contexts := make([]DeviceContext, len(handles))
	for i, h := range handles {
		contexts[i] = DeviceContextFromHandle(h)
	}
	return contexts
}

// enumerateDisplayModes calls EnumerateDisplayModes on a D3D factory.
func enumerateDisplayModes(fn uintptr, this Handle, minFeatureLevel Version, adapterID, outputID uint32, format TextureFormat) []DisplayModeAttribs {
	var count uint32
	call(fn, uintptr(this), minFeatureLevel.pack(), uintptr(adapterID), uintptr(outputID), uintptr(format), ptr(&count), 0)
	if count == 0 {
		return nil
	}

	modes := make([]DisplayModeAttribs, count)
	call(fn, uintptr(this), minFeatureLevel.pack(), uintptr(adapterID), uintptr(outputID), uintptr(format), ptr(&count), ptr(&modes[0]))
	return modes[:count]
}
