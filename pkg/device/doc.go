// Package device defines the tile templates of the pcbfpga fabric.
//
// The fabric is built from five tile types plus an empty one:
//
//   - IOB: IO tiles on the border ring, each holding [Params.IOPerTile] IO buffers
//   - QSB: switch tiles routing between their four sides
//   - QCB: channel tiles carrying tracks between two switch tiles
//   - CLB: logic tiles holding [Params.SlicesPerCLB] slices of two LUT3s and a DFF
//   - COR: corner tiles at the four inner corners
//   - NULL: empty tile used for unoccupied border cells
//
// [BuildLibrary] defines all of them in a fresh [fabric.Registry] and returns
// the frozen library.
package device
