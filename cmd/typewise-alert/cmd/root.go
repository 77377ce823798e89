package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/typewise-alert/internal/config"
	"github.com/oshokin/typewise-alert/internal/service/checker"
	"github.com/oshokin/typewise-alert/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string
	// target selects the alert channel.
	target string
	// coolingType is the battery cooling type name.
	coolingType string
	// brand is the battery brand.
	brand string
	// temperatures collects readings passed with --temperature.
	temperatures []float64

	// rootCmd is the base command; it only groups subcommands.
	rootCmd = &cobra.Command{
		Use:          "typewise-alert",
		Short:        "Classify battery temperatures and alert the controller or by e-mail.",
		SilenceUsage: true,
	}

	// checkCmd classifies readings and dispatches the breaches.
	checkCmd = &cobra.Command{
		Use:   "check [temperature...]",
		Short: "Classify temperature readings and send alerts.",
		Long: `Classifies each temperature reading (Celsius) against the limits of the
battery cooling type and sends the result to the selected target.

The controller target prints a frame such as "feed : 2" for every reading.
The e-mail target prints a message only when a reading is too low or too high.
Readings are independent; a failed alert does not stop the remaining ones.

Negative readings are passed after "--" or with --temperature:
  typewise-alert check -k passive -- -2 25 45
  typewise-alert check -k passive -T -2 -T 25`,
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Flag readings come first, then positional ones.
			readings, err := collectTemperatures(temperatures, args)
			if err != nil {
				return err
			}

			return checker.Run(ctx, &checker.Options{
				ConfigPath:   configPath,
				Target:       target,
				CoolingType:  coolingType,
				Brand:        brand,
				Temperatures: readings,
				LogLevel:     logLevel,
			})
		},
	}

	// limitsCmd prints the limit table.
	limitsCmd = &cobra.Command{
		Use:   "limits",
		Short: "Print the temperature limits per cooling type.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return checker.PrintLimits(cmd.OutOrStdout())
		},
	}
)

// Execute runs the typewise-alert CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// collectTemperatures returns the --temperature values followed by the
// positional arguments parsed as readings.
func collectTemperatures(flagValues []float64, args []string) ([]float64, error) {
	result := make([]float64, 0, len(flagValues)+len(args))
	result = append(result, flagValues...)

	for _, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid temperature %q: %w", arg, err)
		}

		result = append(result, value)
	}

	return result, nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error), overrides configuration")

	checkCmd.Flags().StringVarP(&target, "target", "t", "", "alert target (controller, email), overrides configuration")
	checkCmd.Flags().StringVarP(&coolingType, "cooling", "k", "", "cooling type (passive, hi-active, med-active)")
	checkCmd.Flags().StringVarP(&brand, "brand", "b", "", "battery brand")
	checkCmd.Flags().Float64SliceVarP(&temperatures, "temperature", "T", nil, "temperature reading in Celsius, repeatable")

	err := checkCmd.MarkFlagRequired("cooling")
	if err != nil {
		panic(err)
	}

	rootCmd.AddCommand(checkCmd, limitsCmd)
}
