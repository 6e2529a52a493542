package cmd

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ssargent/chromapack/pkg/catalog"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the named colors and their wire indices",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"index", "name"})
		for i, name := range catalog.Default().Names() {
			table.Append([]string{strconv.Itoa(i), name})
		}
		table.Render()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
