package driver

// NativeWindow identifies the NSView (or CAMetalLayer-backed view) a swap chain presents to.
type NativeWindow struct {
	NSView uintptr
}
