package diligent

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/diligent/driver"
)

var (
	// ErrCreationFailed is returned when the engine returns a null object from a creation call.
	// The engine reports the reason through the message callback.
	ErrCreationFailed = errors.New("engine object creation failed")
	// ErrMapFailed is returned when MapBuffer or MapTextureSubresource returns a null pointer,
	// which includes a MapFlagDoNotWait map of a resource the GPU is still using.
	ErrMapFailed = errors.New("resource could not be mapped")
	// ErrUnsupportedBackend is returned when a backend-specific operation is requested of
	// an object created by a different backend.
	ErrUnsupportedBackend = errors.New("object does not belong to the requested backend")

	ErrAPIMismatch     = driver.ErrAPIMismatch
	ErrLibraryNotFound = driver.ErrLibraryNotFound
	ErrSymbolNotFound  = driver.ErrSymbolNotFound
)

func creationFailed(kind, name string) error {
	if name == "" {
		return errors.Wrapf(ErrCreationFailed, "%s", kind)
	}
	return errors.Wrapf(ErrCreationFailed, "%s '%s'", kind, name)
}

// ShaderCompileError is returned by RenderDevice.CreateShader when the engine could not
// create the shader. Output holds the compiler log when the engine produced one.
type ShaderCompileError struct {
	Name   string
	Output *DataBlob
}

func (e *ShaderCompileError) Error() string {
	if e.Name == "" {
		return "shader compilation failed"
	}
	return fmt.Sprintf("shader '%s' failed to compile", e.Name)
}

// Is makes errors.Is(err, ErrCreationFailed) hold for compile failures.
func (e *ShaderCompileError) Is(target error) bool {
	return target == ErrCreationFailed
}

// Log returns the compiler output, or an empty string if the engine produced none.
func (e *ShaderCompileError) Log() string {
	if e.Output == nil {
		return ""
	}
	return e.Output.String()
}

// Release releases the compiler output blob.
func (e *ShaderCompileError) Release() {
	if e.Output != nil {
		e.Output.Release()
	}
}
