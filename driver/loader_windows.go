//go:build windows

package driver

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

func libraryFileName(base string) string {
	if runtime.GOARCH == "386" || runtime.GOARCH == "arm" {
		return base + "_32r.dll"
	}
	return base + "_64r.dll"
}

// OpenLibrary opens a DLL with LoadLibrary.
func OpenLibrary(path string) (*Library, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return nil, errors.Wrapf(ErrLibraryNotFound, "%s: %v", path, err)
	}
	return &Library{path: path, handle: uintptr(handle)}, nil
}

// Symbol resolves an exported function.
func (l *Library) Symbol(name string) (uintptr, error) {
	sym, err := windows.GetProcAddress(windows.Handle(l.handle), name)
	if err != nil || sym == 0 {
		return 0, errors.Wrapf(ErrSymbolNotFound, "%s in %s", name, l.path)
	}
	return sym, nil
}

func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := windows.FreeLibrary(windows.Handle(l.handle))
	l.handle = 0
	return err
}
