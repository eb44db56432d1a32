package driver

// NativeWindow identifies the OS window a swap chain presents to. Either an Xlib
// display or an XCB connection is set alongside the window id.
type NativeWindow struct {
	WindowID      uint32
	Display       uintptr
	XCBConnection uintptr
}
