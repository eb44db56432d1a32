package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
)

// The functions in this file let the backend interop packages build engine calls that
// the generic wrappers do not expose.

// Native marshals the description into arena. The result stays valid until the arena
// is released.
func (d *BufferDesc) Native(arena *driver.Arena) driver.BufferDesc {
	return d.marshal(arena)
}

func (d *TextureDesc) Native(arena *driver.Arena) driver.TextureDesc {
	return d.marshal(arena)
}

func (d *FenceDesc) Native(arena *driver.Arena) driver.FenceDesc {
	return d.marshal(arena)
}

func (f ResourceState) Native() driver.ResourceState {
	return f.native()
}
