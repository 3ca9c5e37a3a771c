// Package render groups the visual renderings of a fabric.
//
// The only renderer today is [gridview], which draws the tile grid as a
// Graphviz diagram with one vertex per tile and one edge per node, and
// converts it to SVG, PNG or PDF.
//
// [gridview]: https://pkg.go.dev/github.com/matzehuels/fabricgen/pkg/render/gridview
package render
