// Package diligent is a safe Go binding over the Diligent graphics engine. Every
// wrapper owns exactly one native reference, which Release returns to the engine.
//
// Wrappers are not finalized: an object that is never released keeps its native
// counterpart alive. Build with -tags diligent_debug to have Leaks report the
// creation stack of every wrapper that was not released.
package diligent

import (
	"sync/atomic"

	"github.com/vkngwrapper/diligent/driver"
	"github.com/vkngwrapper/diligent/internal/registry"
	"golang.org/x/exp/slog"
)

// Object is implemented by every wrapper in this package.
type Object interface {
	// Handle is the address of the native object. It stays valid for as long as any
	// reference to the object is held.
	Handle() driver.Handle
	// AddRef takes an additional native reference that is not tracked by any wrapper.
	// Every AddRef must be paired with a ReleaseRef.
	AddRef() int32
	// ReleaseRef returns a reference taken with AddRef.
	ReleaseRef() int32
	// Release returns the wrapper's reference. Calls after the first are no-ops.
	Release()
	IsReleased() bool

	nativeObject() driver.Object
}

// DeviceObject is implemented by wrappers around engine objects created by a
// RenderDevice.
type DeviceObject interface {
	Object
	Name() string
	UniqueID() int32
	SetUserData(data Object)
	// UserData returns a new reference to the object attached with SetUserData, or nil.
	UserData() *GenericObject

	nativeDeviceObject() driver.DeviceObject
}

type object struct {
	native   driver.Object
	kind     string
	logger   *slog.Logger
	released atomic.Bool
}

func (o *object) adopt(native driver.Object, kind string, logger *slog.Logger) {
	o.native = native
	o.kind = kind
	o.logger = logger
	registry.Default.Acquire(kind, uintptr(native.Handle()))
}

func (o *object) Handle() driver.Handle {
	return o.native.Handle()
}

func (o *object) AddRef() int32 {
	return o.native.AddRef()
}

func (o *object) ReleaseRef() int32 {
	return o.native.Release()
}

func (o *object) Release() {
	if o == nil || o.native == nil || !o.released.CompareAndSwap(false, true) {
		return
	}

	registry.Default.Release(o.kind, uintptr(o.native.Handle()))
	o.native.Release()
}

func (o *object) IsReleased() bool {
	return o.released.Load()
}

func (o *object) nativeObject() driver.Object {
	return o.native
}

// Logger is the logger the wrapper writes to. Objects created through a wrapper share
// its logger.
func (o *object) Logger() *slog.Logger {
	return o.logger
}

type deviceObject struct {
	object
	dev driver.DeviceObject
}

func (o *deviceObject) adoptDevice(native driver.DeviceObject, kind string, logger *slog.Logger) {
	o.dev = native
	o.adopt(native, kind, logger)
}

func (o *deviceObject) Name() string {
	attribs := o.dev.GetDeviceObjectAttribs()
	if attribs == nil {
		return ""
	}
	return driver.GoString(attribs.Name)
}

func (o *deviceObject) UniqueID() int32 {
	return o.dev.GetUniqueID()
}

func (o *deviceObject) SetUserData(data Object) {
	o.dev.SetUserData(nativeOf(data))
}

func (o *deviceObject) UserData() *GenericObject {
	return fromBorrowed(o.dev.GetUserData(), o.logger, wrapGenericObject)
}

func (o *deviceObject) nativeDeviceObject() driver.DeviceObject {
	return o.dev
}

// GenericObject wraps a native object of unknown type, such as user data or a
// command queue returned by LockCommandQueue.
type GenericObject struct {
	object
}

func wrapGenericObject(native driver.Object, logger *slog.Logger) *GenericObject {
	o := &GenericObject{}
	o.adopt(native, "Object", logger)
	return o
}

// QueryInterface asks the object for the interface identified by iid and returns a
// new reference to it, or nil when the object does not implement it.
func (o *GenericObject) QueryInterface(iid driver.InterfaceID) *GenericObject {
	return fromOwned(o.native.QueryInterface(&iid), o.logger, wrapGenericObject)
}

// Ref returns a second wrapper holding its own reference to the same object.
func (o *GenericObject) Ref() *GenericObject {
	return fromBorrowed(o.native, o.logger, wrapGenericObject)
}

// isNil reports whether a driver interface value is nil.
func isNil[D driver.Object](native D) bool {
	return any(native) == nil || native.Handle() == 0
}

// fromOwned wraps a native object whose reference was already counted on behalf of the
// caller, which is the case for everything returned by a Create* call.
func fromOwned[D driver.Object, W any](native D, logger *slog.Logger, wrap func(D, *slog.Logger) *W) *W {
	if isNil(native) {
		return nil
	}
	return wrap(native, logger)
}

// fromBorrowed wraps a native object the engine handed out without counting a
// reference, such as a default view or a back buffer, taking a reference first.
func fromBorrowed[D driver.Object, W any](native D, logger *slog.Logger, wrap func(D, *slog.Logger) *W) *W {
	if isNil(native) {
		return nil
	}
	native.AddRef()
	return wrap(native, logger)
}

// nativeOf and its siblings accept an untyped nil. Passing a typed nil pointer through
// the Object interface is a programming error.
func nativeOf(o Object) driver.Object {
	if o == nil {
		return nil
	}
	return o.nativeObject()
}

func nativeDeviceObjectOf(o DeviceObject) driver.DeviceObject {
	if o == nil {
		return nil
	}
	return o.nativeDeviceObject()
}

func handleOf(o Object) driver.Handle {
	if o == nil {
		return 0
	}
	return o.Handle()
}

// handles returns the native handles of objs, pinned in arena. Nil entries become
// null handles.
func handles[T interface {
	comparable
	Object
}](arena *driver.Arena, objs []T) *driver.Handle {
	if len(objs) == 0 {
		return nil
	}
	var zero T
	out := make([]driver.Handle, len(objs))
	for i, o := range objs {
		if o != zero {
			out[i] = o.Handle()
		}
	}
	return driver.PinSlice(arena, out)
}

// Leaks lists the native objects that still have live wrapper references.
func Leaks() []registry.Leak {
	return registry.Default.Leaks()
}

// GenericDeviceObject wraps a device object whose concrete type is only known to the
// caller, such as a resource read back from a ResourceMapping or a shader variable.
type GenericDeviceObject struct {
	deviceObject
}

func wrapGenericDeviceObject(native driver.DeviceObject, logger *slog.Logger) *GenericDeviceObject {
	o := &GenericDeviceObject{}
	o.adoptDevice(native, "DeviceObject", logger)
	return o
}

func (o *GenericDeviceObject) Ref() *GenericDeviceObject {
	return fromBorrowed(o.dev, o.logger, wrapGenericDeviceObject)
}
