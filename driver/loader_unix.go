//go:build !windows

package driver

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/ebitengine/purego"
)

func libraryFileName(base string) string {
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return "lib" + base + ".dylib"
	}
	return "lib" + base + ".so"
}

// OpenLibrary opens a shared library with dlopen.
func OpenLibrary(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, errors.Wrapf(ErrLibraryNotFound, "%s: %v", path, err)
	}
	return &Library{path: path, handle: handle}, nil
}

// Symbol resolves an exported function.
func (l *Library) Symbol(name string) (uintptr, error) {
	sym, err := purego.Dlsym(l.handle, name)
	if err != nil || sym == 0 {
		return 0, errors.Wrapf(ErrSymbolNotFound, "%s in %s", name, l.path)
	}
	return sym, nil
}

func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}
