package diligent

import "github.com/vkngwrapper/diligent/driver"

// MapType is the kind of CPU access requested when mapping a buffer or texture.
type MapType int32

const (
	MapRead      MapType = MapType(driver.MapRead)
	MapWrite     MapType = MapType(driver.MapWrite)
	MapReadWrite MapType = MapType(driver.MapReadWrite)
)

var mapTypeMapping = make(map[MapType]string)

func (t MapType) String() string {
	return mapTypeMapping[t]
}

func (t MapType) native() driver.MapType { return driver.MapType(t) }

func init() {
	mapTypeMapping[MapRead] = "MapRead"
	mapTypeMapping[MapWrite] = "MapWrite"
	mapTypeMapping[MapReadWrite] = "MapReadWrite"
}
