package driver

type MapType uint8

const (
	MapRead      MapType = 0x1
	MapWrite     MapType = 0x2
	MapReadWrite MapType = 0x3
)
