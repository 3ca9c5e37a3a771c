package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/fabricgen/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Fabricgen generates FPGA fabric databases",
		Long:         `Fabricgen defines the tile types of a small island-style FPGA, lays them out on a grid, stitches the routing channels into nodes and writes the result as a place-and-route chip database.`,
		Version:      buildinfo.Short(),
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
