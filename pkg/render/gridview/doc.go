// Package gridview draws a fabric grid and its stitched nodes.
//
// [ToDOT] produces Graphviz source with one pinned vertex per placed tile and
// one edge per node that joins two tiles. [RenderSVG] lays it out in process
// with goccy/go-graphviz; PNG and PDF output go through rsvg-convert.
//
//	dot := gridview.ToDOT(chip.Grid, chip.Nodes, gridview.Options{})
//	svg, err := gridview.RenderSVG(dot)
//
// [Writer] wraps the same steps behind the archive writer interface so the
// pipeline can emit diagrams next to the chip database.
package gridview
