package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ssargent/chromapack/pkg/property"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the randomized codec and serializer checks",
	Long: `Run the property suite: packing round trip, unpacking totality over
several input distributions and the student mapping round trip.

Runs and seed default to the check section of the configuration file.

Examples:
  chroma check
  chroma check --runs 10000 --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := settings.Check
		if cmd.Flags().Changed("runs") {
			cfg.Runs, _ = cmd.Flags().GetInt("runs")
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed, _ = cmd.Flags().GetUint64("seed")
		}
		if cfg.Runs < 1 {
			return errors.Errorf("--runs must be positive, got %d", cfg.Runs)
		}

		props := property.Suite(container.GetCodec(), container.GetSerializer())
		results, err := property.RunSuite(cmd.Context(), props, cfg)
		if err != nil {
			return errors.Wrap(err, "check interrupted")
		}

		return reportResults(cmd, results, cfg)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Int("runs", property.DefaultConfig().Runs, "Inputs tried per property")
	checkCmd.Flags().Uint64("seed", property.DefaultConfig().Seed, "Seed for input generation")
}

func reportResults(cmd *cobra.Command, results []property.Result, cfg property.Config) error {
	out := cmd.OutOrStdout()

	table := tablewriter.NewWriter(out)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"property", "runs", "passed", "status", "duration"})
	failed := 0
	for _, r := range results {
		status := "ok"
		if !r.OK() {
			status = "FAIL"
			failed++
		}
		table.Append([]string{r.Name, strconv.Itoa(r.Runs), strconv.Itoa(r.Passed), status, r.Duration.String()})
	}
	table.Render()

	for _, r := range results {
		if r.OK() {
			continue
		}
		fmt.Fprintf(out, "\n%s failed on run %d\n  input: %s\n", r.Name, r.Failure.Run, r.Failure.Input)
		if r.Failure.Shrinks > 0 {
			fmt.Fprintf(out, "  shrunk from: %s (%d steps)\n", r.Failure.Original, r.Failure.Shrinks)
		}
		fmt.Fprintf(out, "  error: %v\n", r.Failure.Err)
	}

	logger.WithFields(logrus.Fields{
		"runs":   cfg.Runs,
		"seed":   cfg.Seed,
		"failed": failed,
	}).Info("property suite finished")

	if failed > 0 {
		return errors.Errorf("%d of %d properties failed (seed %d)", failed, len(results), cfg.Seed)
	}
	return nil
}
