//go:build !windows && !linux && !darwin

package driver

type NativeWindow struct {
	Handle uintptr
}
