package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/chromapack/pkg/api"
	"github.com/ssargent/chromapack/pkg/color"
)

// colorsCmd groups the palette commands
var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Manage the stored color palette",
	Long: `Add, read, update, remove and list colors in the on-disk palette.
Each color is stored in packed form under a generated id.

Examples:
  chroma colors add 'RGB(10,20,30)'
  chroma colors ls
  chroma colors update 2Ab1... Purple`,
}

var colorsAddCmd = &cobra.Command{
	Use:   "add <color>",
	Short: "Store a color and print its id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := color.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return withStore(func(store api.ColorStore) error {
			id, err := store.Create(c)
			if err != nil {
				return err
			}
			logger.WithField("id", id.String()).Debug("stored color")
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		})
	},
}

var colorsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a stored color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withStore(func(store api.ColorStore) error {
			c, err := store.Read(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c, container.GetCodec().Pack(c))
			return nil
		})
	},
}

var colorsUpdateCmd = &cobra.Command{
	Use:   "update <id> <color>",
	Short: "Replace a stored color",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c, err := color.Parse(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		return withStore(func(store api.ColorStore) error {
			if err := store.Update(id, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", id)
			return nil
		})
	},
}

var colorsRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Remove a stored color",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withStore(func(store api.ColorStore) error {
			if err := store.Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", id)
			return nil
		})
	},
}

var colorsLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List stored colors in creation order",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store api.ColorStore) error {
			entries, err := store.List()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoWrapText(false)
			table.SetHeader([]string{"id", "color", "packed"})
			for _, e := range entries {
				table.Append([]string{e.ID.String(), e.Color.String(), e.Packed.String()})
			}
			table.Render()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(colorsCmd)
	colorsCmd.AddCommand(colorsAddCmd, colorsGetCmd, colorsUpdateCmd, colorsRmCmd, colorsLsCmd)
}

// withStore opens the palette under the configured data directory, runs fn
// and closes the store again.
func withStore(fn func(store api.ColorStore) error) error {
	if err := os.MkdirAll(settings.DataDir, 0750); err != nil {
		return errors.Wrap(err, "failed to create data dir")
	}

	store, err := container.GetStoreFactory().OpenStore(settings.DataDir)
	if err != nil {
		return errors.Wrap(err, "failed to open palette")
	}

	fnErr := fn(store)
	if err := store.Close(); err != nil && fnErr == nil {
		return errors.Wrap(err, "failed to close palette")
	}
	return fnErr
}

func parseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, errors.Wrapf(err, "invalid color id %q", s)
	}
	return id, nil
}
