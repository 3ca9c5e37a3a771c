package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fabricgen/pkg/device"
	"github.com/matzehuels/fabricgen/pkg/fabric"
	"github.com/matzehuels/fabricgen/pkg/layout"
	"github.com/matzehuels/fabricgen/pkg/render/gridview"
)

// gridCommand creates the grid command.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		flags fabricFlags
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the tile grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			g, err := layout.Layout(opts.Width, opts.Height)
			if err != nil {
				return err
			}
			c.Logger.Debug("laid out grid", "width", g.Width(), "height", g.Height())
			if plain {
				fmt.Print(layout.Describe(g))
				return nil
			}
			fmt.Println(StyleTitle.Render(fmt.Sprintf("%s %s", opts.Device, gridSize(g))))
			fmt.Print(renderGrid(g, true))
			fmt.Println(renderLegend(g))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&plain, "plain", false, "print without colours")

	return cmd
}

func gridSize(g *fabric.Grid) string {
	return fmt.Sprintf("%dx%d", g.Width(), g.Height())
}

// tileStyle returns the style for a tile type name.
func tileStyle(name string) lipgloss.Style {
	if c := gridview.TileColor(name); c != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return StyleDim
}

// renderGrid renders g one row per line with aligned columns. The empty
// tile is printed as blanks. Trailing blanks are trimmed from each row.
func renderGrid(g *fabric.Grid, color bool) string {
	width := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if name := g.At(x, y); name != device.TileNull {
				width = max(width, len(name))
			}
		}
	}

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		var row strings.Builder
		for x := 0; x < g.Width(); x++ {
			name := g.At(x, y)
			if name == device.TileNull {
				name = ""
			}
			cell := name + strings.Repeat(" ", width-len(name))
			if color && name != "" {
				cell = tileStyle(name).Render(cell)
			}
			if x > 0 {
				row.WriteByte(' ')
			}
			row.WriteString(cell)
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderLegend lists the tile types present in g with their counts.
func renderLegend(g *fabric.Grid) string {
	var parts []string
	for _, name := range device.TileTypes {
		if name == device.TileNull {
			continue
		}
		if n := g.Count(name); n > 0 {
			parts = append(parts, tileStyle(name).Render(name)+StyleDim.Render(fmt.Sprintf(" %d", n)))
		}
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}
