package driver

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
)

// MessageCallback receives debug messages emitted by the engine.
type MessageCallback func(severity DebugMessageSeverity, message, function, file string, line int)

var (
	messageCallback   atomic.Pointer[MessageCallback]
	messageTrampoline uintptr
	trampolineOnce    sync.Once
)

// messageCallbackPointer stores cb as the process-wide receiver and returns the native
// function pointer the engine should call. A nil cb detaches the receiver.
func messageCallbackPointer(cb MessageCallback) uintptr {
	if cb == nil {
		messageCallback.Store(nil)
		return 0
	}

	messageCallback.Store(&cb)
	trampolineOnce.Do(func() {
		messageTrampoline = purego.NewCallback(dispatchMessage)
	})
	return messageTrampoline
}

func dispatchMessage(severity, message, function, file, line uintptr) uintptr {
	cb := messageCallback.Load()
	if cb == nil {
		return 0
	}
	(*cb)(
		DebugMessageSeverity(int32(severity)),
		GoString((*byte)(unsafe.Pointer(message))),
		GoString((*byte)(unsafe.Pointer(function))),
		GoString((*byte)(unsafe.Pointer(file))),
		int(int32(line)),
	)
	return 0
}
