package config

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/typewise-alert/internal/domain/battery"
	"github.com/oshokin/typewise-alert/internal/logger"
	"github.com/oshokin/typewise-alert/internal/notify"
)

// Config holds the settings shared by typewise-alert commands.
type Config struct {
	// EmailRecipient is the address printed on e-mail alerts.
	EmailRecipient string `yaml:"email_recipient"`
	// DefaultTarget is the alert target used when none is given on the command line.
	DefaultTarget string `yaml:"default_target"`
	// LogLevel is the minimum level of diagnostic logs.
	LogLevel string `yaml:"log_level"`
	// MetricsFile, when set, receives Prometheus metrics after each run.
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "typewise-alert-settings.yaml"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLogLevel is returned for a level zap does not know.
	errInvalidLogLevel = errors.New("invalid log level")
)

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		EmailRecipient: notify.DefaultRecipient,
		DefaultTarget:  battery.ToController.String(),
		LogLevel:       DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates it.
// A missing file at the default path yields Default(); a missing file at an
// explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != "" && path != DefaultConfigFilename
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults and checks the fields for formatting errors.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.EmailRecipient == "" {
		cfg.EmailRecipient = notify.DefaultRecipient
	}

	if _, err := mail.ParseAddress(cfg.EmailRecipient); err != nil {
		return fmt.Errorf("invalid e-mail recipient %q: %w", cfg.EmailRecipient, err)
	}

	if cfg.DefaultTarget == "" {
		cfg.DefaultTarget = battery.ToController.String()
	}

	if _, err := battery.ParseAlertTarget(cfg.DefaultTarget); err != nil {
		return fmt.Errorf("invalid default target: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}

// AlertTarget returns the parsed default target.
func (c *Config) AlertTarget() (battery.AlertTarget, error) {
	return battery.ParseAlertTarget(c.DefaultTarget)
}
