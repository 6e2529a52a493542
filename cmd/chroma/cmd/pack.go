package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/chromapack/pkg/color"
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack <color>",
	Short: "Pack a color into its integer sequence",
	Long: `Pack a color literal into its tagged integer sequence.

Examples:
  chroma pack Blue
  chroma pack 'RGB(10,20,30)'
  chroma pack 'CMYK(0, 0, 0, 255)'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := color.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}

		seq := container.GetCodec().Pack(c)
		logger.WithField("color", c.String()).Debug("packed color")
		fmt.Fprintln(cmd.OutOrStdout(), seq.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
}
