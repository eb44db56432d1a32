package driver

import (
	"github.com/cockroachdb/errors"
)

// Backend identifies one of the engine's rendering backends and the shared library
// that implements it.
type Backend int32

const (
	BackendVulkan Backend = iota
	BackendD3D12
	BackendD3D11
	BackendOpenGL
	BackendWebGPU
)

var backendLibraries = map[Backend]string{
	BackendVulkan: "GraphicsEngineVk",
	BackendD3D12:  "GraphicsEngineD3D12",
	BackendD3D11:  "GraphicsEngineD3D11",
	BackendOpenGL: "GraphicsEngineOpenGL",
	BackendWebGPU: "GraphicsEngineWebGPU",
}

var backendEntryPoints = map[Backend]string{
	BackendVulkan: "GetEngineFactoryVk",
	BackendD3D12:  "GetEngineFactoryD3D12",
	BackendD3D11:  "GetEngineFactoryD3D11",
	BackendOpenGL: "GetEngineFactoryOpenGL",
	BackendWebGPU: "GetEngineFactoryWebGPU",
}

var backendNames = map[Backend]string{
	BackendVulkan: "Vulkan",
	BackendD3D12:  "D3D12",
	BackendD3D11:  "D3D11",
	BackendOpenGL: "OpenGL",
	BackendWebGPU: "WebGPU",
}

func (b Backend) String() string {
	return backendNames[b]
}

// LibraryName is the platform file name of the backend's shared library.
func (b Backend) LibraryName() string {
	return libraryFileName(backendLibraries[b])
}

// EntryPoint is the exported function returning the backend's engine factory.
func (b Backend) EntryPoint() string {
	return backendEntryPoints[b]
}

// Library is an opened backend shared library.
type Library struct {
	path   string
	handle uintptr
}

func (l *Library) Path() string {
	return l.path
}

// LoadEngineFactory opens the backend library at path (the platform default when path
// is empty) and returns the address of its engine factory. The library stays loaded
// for the lifetime of the process unless Close is called on the returned Library
// after every engine object has been released.
func LoadEngineFactory(backend Backend, path string) (Handle, *Library, error) {
	if path == "" {
		path = backend.LibraryName()
	}

	lib, err := OpenLibrary(path)
	if err != nil {
		return 0, nil, err
	}

	entryPoint, err := lib.Symbol(backend.EntryPoint())
	if err != nil {
		_ = lib.Close()
		return 0, nil, err
	}

	factory := Handle(call(entryPoint))
	if factory == 0 {
		_ = lib.Close()
		return 0, nil, errors.Newf("%s returned a nil factory", backend.EntryPoint())
	}

	return factory, lib, nil
}
