package diligent

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/diligent/driver"
	"golang.org/x/exp/slog"
)

// APIInfo reports the engine's API version and the sizes of the structures exchanged
// with it.
type APIInfo = driver.APIInfo

// EngineFactory is the entry point into one backend. It creates data blobs, shader
// source factories and enumerates adapters; the backend-specific factories embed it
// and add device and swap chain creation.
type EngineFactory struct {
	object
	drv driver.EngineFactory
	lib *driver.Library
}

func wrapEngineFactory(native driver.EngineFactory, logger *slog.Logger) *EngineFactory {
	f := &EngineFactory{drv: native}
	f.adopt(native, "EngineFactory", logger)
	return f
}

// EngineFactoryFromDriver wraps a driver factory, taking over the reference the caller
// holds.
func EngineFactoryFromDriver(native driver.EngineFactory, logger *slog.Logger) *EngineFactory {
	return fromOwned(native, loggerOrDiscard(logger), wrapEngineFactory)
}

func (f *EngineFactory) Driver() driver.EngineFactory {
	if f == nil {
		return nil
	}
	return f.drv
}

func (f *EngineFactory) Ref() *EngineFactory {
	return fromBorrowed(f.drv, f.logger, wrapEngineFactory)
}

// LibraryPath is the path of the shared library the factory was loaded from, or empty
// when the factory was not obtained through a Load function.
func (f *EngineFactory) LibraryPath() string {
	if f.lib == nil {
		return ""
	}
	return f.lib.Path()
}

func (f *EngineFactory) APIInfo() *APIInfo {
	return f.drv.GetAPIInfo()
}

// VerifyAPI checks the engine's structure sizes against this package. The error
// matches ErrAPIMismatch.
func (f *EngineFactory) VerifyAPI() error {
	return f.drv.GetAPIInfo().Verify()
}

// CreateDataBlob creates an engine-owned blob of initialSize bytes. data, when given,
// is copied to its start; the blob grows to len(data) when initialSize is smaller.
func (f *EngineFactory) CreateDataBlob(initialSize uint64, data []byte) (*DataBlob, error) {
	f.logger.Debug("EngineFactory::CreateDataBlob")

	if uint64(len(data)) > initialSize {
		initialSize = uint64(len(data))
	}

	arena := driver.NewArena()
	defer arena.Release()

	blob := fromOwned(f.drv.CreateDataBlob(initialSize, arena.Bytes(data)), f.logger, wrapDataBlob)
	if blob == nil {
		return nil, creationFailed("DataBlob", "")
	}
	return blob, nil
}

// CreateDefaultShaderSourceStreamFactory creates a factory that resolves shader files
// and includes against searchDirectories in order.
func (f *EngineFactory) CreateDefaultShaderSourceStreamFactory(searchDirectories ...string) (*ShaderSourceInputStreamFactory, error) {
	f.logger.Debug("EngineFactory::CreateDefaultShaderSourceStreamFactory")

	arena := driver.NewArena()
	defer arena.Release()

	factory := fromOwned(f.drv.CreateDefaultShaderSourceStreamFactory(arena.CString(strings.Join(searchDirectories, ";"))),
		f.logger, wrapShaderSourceInputStreamFactory)
	if factory == nil {
		return nil, creationFailed("ShaderSourceInputStreamFactory", "")
	}
	return factory, nil
}

// EnumerateAdapters lists the adapters that support at least minVersion of the
// backend's graphics API.
func (f *EngineFactory) EnumerateAdapters(minVersion Version) []GraphicsAdapterInfo {
	f.logger.Debug("EngineFactory::EnumerateAdapters")

	natives := f.drv.EnumerateAdapters(minVersion)
	adapters := make([]GraphicsAdapterInfo, 0, len(natives))
	for i := range natives {
		adapters = append(adapters, graphicsAdapterInfoFromNative(&natives[i]))
	}
	return adapters
}

// SetMessageCallback routes the engine's debug output to callback. The callback is
// process wide: the engine keeps one receiver for every backend. A nil callback
// restores the engine's default output.
func (f *EngineFactory) SetMessageCallback(callback MessageCallback) {
	f.drv.SetMessageCallback(callback.native())
}

func (f *EngineFactory) SetBreakOnError(breakOnError bool) {
	f.drv.SetBreakOnError(breakOnError)
}

// splitContexts wraps the contexts a backend returns, immediate contexts first.
func splitContexts(natives []driver.DeviceContext, immediateCount int, logger *slog.Logger) ([]*ImmediateDeviceContext, []*DeferredDeviceContext) {
	var immediate []*ImmediateDeviceContext
	var deferred []*DeferredDeviceContext

	for i, native := range natives {
		if i < immediateCount {
			if c := fromOwned(native, logger, wrapImmediateDeviceContext); c != nil {
				immediate = append(immediate, c)
			}
			continue
		}
		if c := fromOwned(native, logger, wrapDeferredDeviceContext); c != nil {
			deferred = append(deferred, c)
		}
	}

	return immediate, deferred
}

func releaseContexts(natives []driver.DeviceContext) {
	for _, native := range natives {
		if !isNil(native) {
			native.Release()
		}
	}
}

// deviceAndContexts takes ownership of what a CreateDeviceAndContexts call returned.
func deviceAndContexts(device driver.RenderDevice, contexts []driver.DeviceContext, ci *EngineCreateInfo, logger *slog.Logger) (*RenderDevice, []*ImmediateDeviceContext, []*DeferredDeviceContext, error) {
	dev := fromOwned(device, logger, wrapRenderDevice)
	if dev == nil {
		releaseContexts(contexts)
		return nil, nil, nil, creationFailed("RenderDevice", "")
	}

	if len(contexts) != ci.contextCount() {
		logger.Warn("engine returned an unexpected number of device contexts",
			slog.Int("expected", ci.contextCount()), slog.Int("actual", len(contexts)))
	}

	immediate, deferred := splitContexts(contexts, max(len(ci.ImmediateContexts), 1), logger)
	if len(immediate) == 0 {
		for _, ctx := range deferred {
			ctx.Release()
		}
		dev.Release()
		return nil, nil, nil, creationFailed("DeviceContext", "")
	}

	return dev, immediate, deferred, nil
}

func swapChainResult(native driver.SwapChain, logger *slog.Logger) (*SwapChain, error) {
	swapChain := fromOwned(native, logger, wrapSwapChain)
	if swapChain == nil {
		return nil, creationFailed("SwapChain", "")
	}
	return swapChain, nil
}

// loadFactory opens a backend library and checks its API. The library is closed again
// on any failure.
func loadFactory[F driver.EngineFactory](backend driver.Backend, path string, fromHandle func(driver.Handle) F, logger *slog.Logger) (F, *driver.Library, error) {
	var zero F

	logger.Debug("diligent::Load"+backend.String(), slog.String("path", path))

	h, lib, err := driver.LoadEngineFactory(backend, path)
	if err != nil {
		return zero, nil, err
	}

	native := fromHandle(h)
	if isNil(native) {
		return zero, nil, closeAfterFailure(errors.Wrapf(ErrUnsupportedBackend, "%s factory could not be created", backend), lib)
	}

	if err := native.GetAPIInfo().Verify(); err != nil {
		return zero, nil, closeAfterFailure(errors.Wrapf(err, "loading %s", lib.Path()), lib)
	}

	// The entry points hand out a process-wide factory without counting a reference.
	native.AddRef()
	return native, lib, nil
}

// closeAfterFailure closes lib and keeps any close error as a secondary error of err.
func closeAfterFailure(err error, lib io.Closer) error {
	return errors.CombineErrors(err, lib.Close())
}

// EngineFactoryVk creates Vulkan devices and swap chains.
type EngineFactoryVk struct {
	EngineFactory
	vk driver.EngineFactoryVk
}

func wrapEngineFactoryVk(native driver.EngineFactoryVk, logger *slog.Logger) *EngineFactoryVk {
	f := &EngineFactoryVk{vk: native}
	f.drv = native
	f.adopt(native, "EngineFactoryVk", logger)
	return f
}

// LoadEngineFactoryVk loads the Vulkan backend from its default library.
func LoadEngineFactoryVk(logger *slog.Logger) (*EngineFactoryVk, error) {
	return LoadEngineFactoryVkFromPath(logger, "")
}

func LoadEngineFactoryVkFromPath(logger *slog.Logger, path string) (*EngineFactoryVk, error) {
	logger = loggerOrDiscard(logger)

	native, lib, err := loadFactory(driver.BackendVulkan, path, driver.EngineFactoryVkFromHandle, logger)
	if err != nil {
		return nil, err
	}

	f := wrapEngineFactoryVk(native, logger)
	f.lib = lib
	return f, nil
}

func (f *EngineFactoryVk) Driver() driver.EngineFactoryVk {
	if f == nil {
		return nil
	}
	return f.vk
}

func (f *EngineFactoryVk) Ref() *EngineFactoryVk {
	ref := fromBorrowed(f.vk, f.logger, wrapEngineFactoryVk)
	ref.lib = f.lib
	return ref
}

// CreateDeviceAndContexts creates the device, one immediate context per entry of
// ci.ImmediateContexts (at least one) and ci.NumDeferredContexts deferred contexts.
func (f *EngineFactoryVk) CreateDeviceAndContexts(ci EngineVkCreateInfo) (*RenderDevice, []*ImmediateDeviceContext, []*DeferredDeviceContext, error) {
	f.logger.Debug("EngineFactoryVk::CreateDeviceAndContexts")

	arena := driver.NewArena()
	defer arena.Release()

	device, contexts := f.vk.CreateDeviceAndContextsVk(ci.marshal(arena))
	return deviceAndContexts(device, contexts, &ci.EngineCreateInfo, f.logger)
}

func (f *EngineFactoryVk) CreateSwapChain(device *RenderDevice, immediateContext *ImmediateDeviceContext, desc SwapChainDesc, window NativeWindow) (*SwapChain, error) {
	f.logger.Debug("EngineFactoryVk::CreateSwapChain")

	arena := driver.NewArena()
	defer arena.Release()

	native := f.vk.CreateSwapChainVk(device.Driver(), immediateContext.Driver(), desc.marshal(arena), driver.Pin(arena, &window))
	return swapChainResult(native, f.logger)
}

// EnableDeviceSimulation lets the Vulkan device report only the features and limits of
// a simulated device profile configured through the environment.
func (f *EngineFactoryVk) EnableDeviceSimulation() {
	f.vk.EnableDeviceSimulation()
}

// EngineFactoryD3D12 creates Direct3D 12 devices and swap chains.
type EngineFactoryD3D12 struct {
	EngineFactory
	d3d12 driver.EngineFactoryD3D12
}

func wrapEngineFactoryD3D12(native driver.EngineFactoryD3D12, logger *slog.Logger) *EngineFactoryD3D12 {
	f := &EngineFactoryD3D12{d3d12: native}
	f.drv = native
	f.adopt(native, "EngineFactoryD3D12", logger)
	return f
}

func LoadEngineFactoryD3D12(logger *slog.Logger) (*EngineFactoryD3D12, error) {
	return LoadEngineFactoryD3D12FromPath(logger, "")
}

func LoadEngineFactoryD3D12FromPath(logger *slog.Logger, path string) (*EngineFactoryD3D12, error) {
	logger = loggerOrDiscard(logger)

	native, lib, err := loadFactory(driver.BackendD3D12, path, driver.EngineFactoryD3D12FromHandle, logger)
	if err != nil {
		return nil, err
	}

	f := wrapEngineFactoryD3D12(native, logger)
	f.lib = lib
	return f, nil
}

func (f *EngineFactoryD3D12) Driver() driver.EngineFactoryD3D12 {
	if f == nil {
		return nil
	}
	return f.d3d12
}

func (f *EngineFactoryD3D12) Ref() *EngineFactoryD3D12 {
	ref := fromBorrowed(f.d3d12, f.logger, wrapEngineFactoryD3D12)
	ref.lib = f.lib
	return ref
}

// LoadD3D12 loads the system Direct3D 12 runtime. It must succeed before adapters are
// enumerated or a device is created.
func (f *EngineFactoryD3D12) LoadD3D12(dllName string) error {
	f.logger.Debug("EngineFactoryD3D12::LoadD3D12")

	if dllName == "" {
		dllName = "d3d12.dll"
	}

	arena := driver.NewArena()
	defer arena.Release()

	if !f.d3d12.LoadD3D12(arena.CString(dllName)) {
		return errors.Wrapf(ErrLibraryNotFound, "failed to load %s", dllName)
	}
	return nil
}

func (f *EngineFactoryD3D12) CreateDeviceAndContexts(ci EngineD3D12CreateInfo) (*RenderDevice, []*ImmediateDeviceContext, []*DeferredDeviceContext, error) {
	f.logger.Debug("EngineFactoryD3D12::CreateDeviceAndContexts")

	arena := driver.NewArena()
	defer arena.Release()

	device, contexts := f.d3d12.CreateDeviceAndContextsD3D12(ci.marshal(arena))
	return deviceAndContexts(device, contexts, &ci.EngineCreateInfo, f.logger)
}

// CreateSwapChain creates a DXGI swap chain for window. fullScreen may be nil for a
// windowed swap chain.
func (f *EngineFactoryD3D12) CreateSwapChain(device *RenderDevice, immediateContext *ImmediateDeviceContext, desc SwapChainDesc, fullScreen *FullScreenModeDesc, window NativeWindow) (*SwapChain, error) {
	f.logger.Debug("EngineFactoryD3D12::CreateSwapChain")

	arena := driver.NewArena()
	defer arena.Release()

	native := f.d3d12.CreateSwapChainD3D12(device.Driver(), immediateContext.Driver(), desc.marshal(arena),
		fullScreen.marshal(arena), driver.Pin(arena, &window))
	return swapChainResult(native, f.logger)
}

func (f *EngineFactoryD3D12) EnumerateDisplayModes(minFeatureLevel Version, adapterID, outputID uint32, format TextureFormat) []DisplayModeAttribs {
	return displayModes(f.d3d12.EnumerateDisplayModes(minFeatureLevel, adapterID, outputID, format.native()))
}

// EngineFactoryD3D11 creates Direct3D 11 devices and swap chains.
type EngineFactoryD3D11 struct {
	EngineFactory
	d3d11 driver.EngineFactoryD3D11
}

func wrapEngineFactoryD3D11(native driver.EngineFactoryD3D11, logger *slog.Logger) *EngineFactoryD3D11 {
	f := &EngineFactoryD3D11{d3d11: native}
	f.drv = native
	f.adopt(native, "EngineFactoryD3D11", logger)
	return f
}

func LoadEngineFactoryD3D11(logger *slog.Logger) (*EngineFactoryD3D11, error) {
	return LoadEngineFactoryD3D11FromPath(logger, "")
}

func LoadEngineFactoryD3D11FromPath(logger *slog.Logger, path string) (*EngineFactoryD3D11, error) {
	logger = loggerOrDiscard(logger)

	native, lib, err := loadFactory(driver.BackendD3D11, path, driver.EngineFactoryD3D11FromHandle, logger)
	if err != nil {
		return nil, err
	}

	f := wrapEngineFactoryD3D11(native, logger)
	f.lib = lib
	return f, nil
}

func (f *EngineFactoryD3D11) Driver() driver.EngineFactoryD3D11 {
	if f == nil {
		return nil
	}
	return f.d3d11
}

func (f *EngineFactoryD3D11) Ref() *EngineFactoryD3D11 {
	ref := fromBorrowed(f.d3d11, f.logger, wrapEngineFactoryD3D11)
	ref.lib = f.lib
	return ref
}

func (f *EngineFactoryD3D11) CreateDeviceAndContexts(ci EngineD3D11CreateInfo) (*RenderDevice, []*ImmediateDeviceContext, []*DeferredDeviceContext, error) {
	f.logger.Debug("EngineFactoryD3D11::CreateDeviceAndContexts")

	arena := driver.NewArena()
	defer arena.Release()

	device, contexts := f.d3d11.CreateDeviceAndContextsD3D11(ci.marshal(arena))
	return deviceAndContexts(device, contexts, &ci.EngineCreateInfo, f.logger)
}

func (f *EngineFactoryD3D11) CreateSwapChain(device *RenderDevice, immediateContext *ImmediateDeviceContext, desc SwapChainDesc, fullScreen *FullScreenModeDesc, window NativeWindow) (*SwapChain, error) {
	f.logger.Debug("EngineFactoryD3D11::CreateSwapChain")

	arena := driver.NewArena()
	defer arena.Release()

	native := f.d3d11.CreateSwapChainD3D11(device.Driver(), immediateContext.Driver(), desc.marshal(arena),
		fullScreen.marshal(arena), driver.Pin(arena, &window))
	return swapChainResult(native, f.logger)
}

func (f *EngineFactoryD3D11) EnumerateDisplayModes(minFeatureLevel Version, adapterID, outputID uint32, format TextureFormat) []DisplayModeAttribs {
	return displayModes(f.d3d11.EnumerateDisplayModes(minFeatureLevel, adapterID, outputID, format.native()))
}

func displayModes(natives []driver.DisplayModeAttribs) []DisplayModeAttribs {
	modes := make([]DisplayModeAttribs, 0, len(natives))
	for i := range natives {
		modes = append(modes, displayModeAttribsFromNative(&natives[i]))
	}
	return modes
}

// EngineFactoryOpenGL creates OpenGL and OpenGL ES devices. The GL device owns the
// context of the window it was created for, so device and swap chain are created
// together.
type EngineFactoryOpenGL struct {
	EngineFactory
	gl driver.EngineFactoryOpenGL
}

func wrapEngineFactoryOpenGL(native driver.EngineFactoryOpenGL, logger *slog.Logger) *EngineFactoryOpenGL {
	f := &EngineFactoryOpenGL{gl: native}
	f.drv = native
	f.adopt(native, "EngineFactoryOpenGL", logger)
	return f
}

func LoadEngineFactoryOpenGL(logger *slog.Logger) (*EngineFactoryOpenGL, error) {
	return LoadEngineFactoryOpenGLFromPath(logger, "")
}

func LoadEngineFactoryOpenGLFromPath(logger *slog.Logger, path string) (*EngineFactoryOpenGL, error) {
	logger = loggerOrDiscard(logger)

	native, lib, err := loadFactory(driver.BackendOpenGL, path, driver.EngineFactoryOpenGLFromHandle, logger)
	if err != nil {
		return nil, err
	}

	f := wrapEngineFactoryOpenGL(native, logger)
	f.lib = lib
	return f, nil
}

func (f *EngineFactoryOpenGL) Driver() driver.EngineFactoryOpenGL {
	if f == nil {
		return nil
	}
	return f.gl
}

func (f *EngineFactoryOpenGL) Ref() *EngineFactoryOpenGL {
	ref := fromBorrowed(f.gl, f.logger, wrapEngineFactoryOpenGL)
	ref.lib = f.lib
	return ref
}

// CreateDeviceAndSwapChain creates a GL context on ci.Window, the device, its single
// immediate context, any deferred contexts and the swap chain presenting to the window.
func (f *EngineFactoryOpenGL) CreateDeviceAndSwapChain(ci EngineGLCreateInfo, desc SwapChainDesc) (*RenderDevice, *ImmediateDeviceContext, []*DeferredDeviceContext, *SwapChain, error) {
	f.logger.Debug("EngineFactoryOpenGL::CreateDeviceAndSwapChain")

	arena := driver.NewArena()
	defer arena.Release()

	device, contexts, swapChain := f.gl.CreateDeviceAndSwapChainGL(ci.marshal(arena), desc.marshal(arena))

	dev, immediate, deferred, err := deviceAndContexts(device, contexts, &ci.EngineCreateInfo, f.logger)
	if err != nil {
		if !isNil(swapChain) {
			swapChain.Release()
		}
		return nil, nil, nil, nil, err
	}

	sc, err := swapChainResult(swapChain, f.logger)
	if err != nil {
		for _, c := range immediate {
			c.Release()
		}
		for _, c := range deferred {
			c.Release()
		}
		dev.Release()
		return nil, nil, nil, nil, err
	}

	return dev, immediate[0], deferred, sc, nil
}

// AttachToActiveGLContext creates a device on the GL context current on the calling
// thread. The application keeps ownership of the context and presents itself.
func (f *EngineFactoryOpenGL) AttachToActiveGLContext(ci EngineGLCreateInfo) (*RenderDevice, *ImmediateDeviceContext, []*DeferredDeviceContext, error) {
	f.logger.Debug("EngineFactoryOpenGL::AttachToActiveGLContext")

	arena := driver.NewArena()
	defer arena.Release()

	device, contexts := f.gl.AttachToActiveGLContext(ci.marshal(arena))
	dev, immediate, deferred, err := deviceAndContexts(device, contexts, &ci.EngineCreateInfo, f.logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return dev, immediate[0], deferred, nil
}
