package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/chromapack/pkg/codec"
)

// unpackCmd represents the unpack command
var unpackCmd = &cobra.Command{
	Use:   "unpack <ints...>",
	Short: "Unpack an integer sequence into a color",
	Long: `Unpack a tagged integer sequence back into the color it encodes.
Sequences that are not a valid encoding are rejected with a non-zero exit.

Flags must come before the sequence. Use -- when the first integer is
negative.

Examples:
  chroma unpack 1 10 20 30
  chroma unpack 0,2
  chroma unpack '[2, 0, 0, 0, 255]'
  chroma unpack -- -1 0`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := codec.ParseSequence(strings.Join(args, " "))
		if err != nil {
			return err
		}

		c, err := container.GetCodec().Unpack(seq)
		if err != nil {
			logger.WithField("packed", seq.String()).Debug("rejected sequence")
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), c.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unpackCmd)
	// Everything after the first integer belongs to the sequence, so "-10"
	// is not read as a shorthand flag.
	unpackCmd.Flags().SetInterspersed(false)
}
