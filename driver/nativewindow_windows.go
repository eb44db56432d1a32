package driver

import "golang.org/x/sys/windows"

// NativeWindow identifies the OS window a swap chain presents to.
type NativeWindow struct {
	HWnd windows.HWND
}
