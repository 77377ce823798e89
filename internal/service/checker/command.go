package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oshokin/typewise-alert/internal/config"
	"github.com/oshokin/typewise-alert/internal/domain/battery"
	"github.com/oshokin/typewise-alert/internal/logger"
	"github.com/oshokin/typewise-alert/internal/metrics"
	"github.com/oshokin/typewise-alert/internal/notify"
	"github.com/oshokin/typewise-alert/internal/service/alert"
)

// Options controls a single check run.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Target overrides the configured default alert target when set.
	Target string
	// CoolingType is the cooling type name of the battery.
	CoolingType string
	// Brand is the battery brand, carried through unchanged.
	Brand string
	// Temperatures are the readings in Celsius, each checked independently.
	Temperatures []float64
	// LogLevel overrides the configured log level when set.
	LogLevel string
	// Out receives notifier output; defaults to stdout.
	Out io.Writer
}

var (
	// errNoTemperatures is returned when there is nothing to check.
	errNoTemperatures = errors.New("at least one temperature is required")
	// errCoolingTypeRequired is returned when the cooling type is missing.
	errCoolingTypeRequired = errors.New("cooling type must be provided")
)

// Run loads settings, builds the router and checks every temperature in order.
// A failed dispatch does not stop the remaining checks; all failures are returned joined.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "typewise-alert")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Command line log level overrides config.
	if err = applyLogLevel(cfg.LogLevel, opts.LogLevel); err != nil {
		return err
	}

	// Parse target, cooling type and brand into domain values.
	target, character, err := resolveInputs(cfg, opts)
	if err != nil {
		return err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	// Use a private registry so every run exports only its own counters.
	registry := prometheus.NewRegistry()

	collector, err := metrics.New(registry)
	if err != nil {
		return err
	}

	// Wire console notifiers for both targets into the router.
	router := alert.NewRouter(
		notify.NewController(notify.WithWriter(out)),
		notify.NewEmail(cfg.EmailRecipient, notify.WithWriter(out)),
		alert.WithMetrics(collector),
	)

	logger.DebugKV(ctx, "Checking readings",
		"target", target,
		"cooling_type", character.CoolingType,
		"brand", character.Brand,
		"readings", len(opts.Temperatures),
	)

	var (
		errs    []error
		checked int
	)

	// Check readings in order; a failed dispatch does not stop the rest.
	for _, temperature := range opts.Temperatures {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())

			break
		}

		checked++

		if _, err = router.CheckAndAlert(ctx, target, character, temperature); err != nil {
			logger.WarnKV(ctx, "Reading not delivered, continuing",
				"temperature_c", temperature,
				"target", target,
				"error", err,
			)

			errs = append(errs, fmt.Errorf("check %v°C: %w", temperature, err))
		}
	}

	// Export metrics for the textfile collector when configured.
	if cfg.MetricsFile != "" {
		if err = metrics.WriteTextfile(cfg.MetricsFile, registry); err != nil {
			errs = append(errs, err)
		}
	}

	logger.InfoKV(ctx, "Check run finished",
		"target", target,
		"cooling_type", character.CoolingType,
		"checked", checked,
		"failed", len(errs),
	)

	return errors.Join(errs...)
}

// resolveInputs turns textual options into domain values, letting the
// command line override configuration.
func resolveInputs(cfg *config.Config, opts *Options) (battery.AlertTarget, battery.BatteryCharacter, error) {
	if len(opts.Temperatures) == 0 {
		return 0, battery.BatteryCharacter{}, errNoTemperatures
	}

	if opts.CoolingType == "" {
		return 0, battery.BatteryCharacter{}, errCoolingTypeRequired
	}

	targetName := cfg.DefaultTarget
	if opts.Target != "" {
		targetName = opts.Target
	}

	target, err := battery.ParseAlertTarget(targetName)
	if err != nil {
		return 0, battery.BatteryCharacter{}, err
	}

	coolingType, err := battery.ParseCoolingType(opts.CoolingType)
	if err != nil {
		return 0, battery.BatteryCharacter{}, err
	}

	character, err := battery.NewBatteryCharacter(coolingType, opts.Brand)
	if err != nil {
		return 0, battery.BatteryCharacter{}, fmt.Errorf("battery: %w", err)
	}

	return target, character, nil
}

// applyLogLevel sets the global level from the override or the configured value.
func applyLogLevel(configured, override string) error {
	name := configured
	if override != "" {
		name = override
	}

	level, ok := logger.ParseLogLevel(name)
	if !ok {
		return fmt.Errorf("unknown log level %q", name)
	}

	logger.SetLevel(level)

	return nil
}
