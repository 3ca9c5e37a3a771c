package gridview

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/fabricgen/pkg/device"
	"github.com/matzehuels/fabricgen/pkg/fabric"
)

// Options configures diagram generation.
type Options struct {
	// Detailed draws one edge per node labelled with its wires. Otherwise
	// nodes joining the same two tiles share one unlabelled edge.
	Detailed bool
	// ShowEmpty draws empty tiles as dotted outlines.
	ShowEmpty bool
}

// spacing is the distance between tile centres in points.
const spacing = 1.2

// ToDOT converts a grid and its nodes to Graphviz DOT. Vertex positions are
// pinned to grid coordinates, so the result is meant for the neato engine.
func ToDOT(g *fabric.Grid, nodes []fabric.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph fabric {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=10, width=0.8, height=0.8, fixedsize=true];\n")
	buf.WriteString("\n")

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			name := g.At(x, y)
			if name == device.TileNull && !opts.ShowEmpty {
				continue
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", vertex(x, y), fmtAttrs(x, y, name, g.Height()))
		}
	}

	buf.WriteString("\n")
	seen := make(map[[2]string]bool)
	for _, n := range nodes {
		if len(n) < 2 {
			continue
		}
		for i := 1; i < len(n); i++ {
			a, b := vertex(n[0].X, n[0].Y), vertex(n[i].X, n[i].Y)
			if opts.Detailed {
				fmt.Fprintf(&buf, "  %q -- %q [label=%q, fontsize=6];\n", a, b, n[0].Wire+"/"+n[i].Wire)
				continue
			}
			key := [2]string{a, b}
			if b < a {
				key = [2]string{b, a}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			fmt.Fprintf(&buf, "  %q -- %q;\n", a, b)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertex(x, y int) string {
	return fmt.Sprintf("X%dY%d", x, y)
}

func fmtAttrs(x, y int, name string, height int) []byte {
	label, color := name, TileColor(name)
	if color == "" {
		label = ""
	}
	var b bytes.Buffer
	// Graphviz y grows upwards.
	fmt.Fprintf(&b, "label=%q, pos=\"%.1f,%.1f!\"", label, float64(x)*spacing, float64(height-1-y)*spacing)
	if color != "" {
		fmt.Fprintf(&b, ", fillcolor=%q", color)
	} else {
		b.WriteString(", style=dotted")
	}
	return b.Bytes()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	gv.SetLayout(graphviz.NEATO)
	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root element so the drawing scales with its
// container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
