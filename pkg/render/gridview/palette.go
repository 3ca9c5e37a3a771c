package gridview

import "github.com/matzehuels/fabricgen/pkg/device"

var tileColors = map[string]string{
	device.TileCorner:  "#8E8E93",
	device.TileIO:      "#F59E0B",
	device.TileSwitch:  "#EF4444",
	device.TileLogic:   "#3B82F6",
	device.TileChannel: "#10B981",
}

// TileColor returns the fill colour used for a tile type, or "" for the
// empty tile and unknown types.
func TileColor(name string) string {
	return tileColors[name]
}
