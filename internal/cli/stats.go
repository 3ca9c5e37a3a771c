package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fabricgen/pkg/fabric"
	"github.com/matzehuels/fabricgen/pkg/pipeline"
)

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var flags fabricFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print tile type resources and node counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			chip, res, err := pipeline.Generate(opts)
			if err != nil {
				return err
			}
			writeStats(os.Stdout, chip)
			printNewline()
			printKeyValue("Grid", gridSize(chip.Grid))
			printKeyValue("Nodes", fmt.Sprintf("%d", len(res.Nodes)))
			printKeyValue("Corners", fmt.Sprintf("%d", len(res.Corners)))
			printKeyValue("Chip ID", chip.ID.String())
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

// writeStats prints one row per tile type with its resources and how often
// it is placed on the grid, followed by the fabric totals.
func writeStats(w io.Writer, chip *fabric.Chip) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Tile").SetAlign(tabulate.ML)
	for _, h := range []string{"Wires", "Pips", "Bels", "Pins", "Placed"} {
		tab.Header(h).SetAlign(tabulate.MR)
	}

	var total fabric.Counts
	placed := 0
	for _, tt := range chip.Library.Types() {
		c := tt.Counts()
		n := chip.Grid.Count(tt.Name())
		row := tab.Row()
		row.Column(tt.Name())
		row.Column(fmt.Sprintf("%d", c.Wires))
		row.Column(fmt.Sprintf("%d", c.Pips))
		row.Column(fmt.Sprintf("%d", c.Bels))
		row.Column(fmt.Sprintf("%d", c.Pins))
		row.Column(fmt.Sprintf("%d", n))

		total.Wires += c.Wires * n
		total.Pips += c.Pips * n
		total.Bels += c.Bels * n
		total.Pins += c.Pins * n
		placed += n
	}

	row := tab.Row()
	row.Column("Fabric").SetFormat(tabulate.FmtBold)
	for _, v := range []int{total.Wires, total.Pips, total.Bels, total.Pins, placed} {
		row.Column(fmt.Sprintf("%d", v)).SetFormat(tabulate.FmtBold)
	}

	tab.Print(w)
}
