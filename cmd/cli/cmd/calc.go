// Package cmd - calc command
package cmd

import (
	"github.com/spf13/cobra"

	adapter "interest-calc/adapters/cli"
	"interest-calc/core/engine"
	"interest-calc/core/output"
	"interest-calc/internal/config"
	"interest-calc/internal/errors"
	"interest-calc/internal/logging"
)

var (
	outputFormat string
	noColor      bool
)

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc <principal> <rate> <years>",
	Short: "Calculate simple interest",
	Long: `Validate the three inputs and print the interest with two decimals,
or the reason the inputs were rejected. Rejected input exits with status 1.

Examples:
  interest-calc calc 1000 5 2        # Interest = 100.00
  interest-calc calc 1500 4.5 3      # Interest = 202.50
  interest-calc calc -- -10 5 2      # Input should be greater than 0.`,
	Args: cobra.ExactArgs(3),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json); default from config")
	calcCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	format := cfg.Output.Format
	if outputFormat != "" {
		format = outputFormat
	}
	formatter, err := output.New(format, noColor || cfg.Output.NoColor)
	if err != nil {
		return err
	}

	a := adapter.NewCLIAdapter(engine.New(logging.Named("engine")))
	a.SetOutput(cmd.OutOrStdout())
	a.SetFormatter(formatter)

	_, err = a.Run(cmd.Context(), &adapter.CLIRequest{
		Principal: args[0],
		Rate:      args[1],
		Years:     args[2],
	})
	return err
}

// isReported is true for errors already shown to the user as output
func isReported(err error) bool {
	return errors.IsInput(err)
}
