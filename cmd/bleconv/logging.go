package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/bleconv/pkg/config"
	"golang.org/x/term"
)

var (
	logLevelFlag string
	verboseFlag  bool
	outputFlag   string
	colorFlag    string
	configFlag   string
)

// settings is the resolved configuration of a single command run
type settings struct {
	cfg      *config.Config
	logger   *logrus.Logger
	colorize bool
}

// loadSettings reads --config, then applies the global flags on top.
// Returns an error for an unreadable config or an invalid flag value.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	if outputFlag != "" {
		cfg.OutputFormat = outputFlag
	}
	if colorFlag != "" {
		cfg.Color = colorFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := configureLogger(cfg)
	if err != nil {
		return nil, err
	}

	// All arguments validated - don't show usage on runtime errors
	cmd.SilenceUsage = true

	return &settings{
		cfg:      cfg,
		logger:   logger,
		colorize: shouldColorize(cfg.Color, cmd),
	}, nil
}

// configureLogger creates a logger with the appropriate log level based on flags.
// It respects both --log-level and --verbose flags, with --log-level taking precedence.
// Without either flag the level comes from the config file, or panic level
// (essentially silent) when the file does not set one.
// Logs go to stderr so they never mix with command output.
func configureLogger(cfg *config.Config) (*logrus.Logger, error) {
	logLevel := logrus.PanicLevel
	if configFlag != "" {
		logLevel = cfg.LogLevel
	}

	// Check --log-level first (takes precedence)
	if logLevelFlag != "" {
		switch logLevelFlag {
		case "debug":
			logLevel = logrus.DebugLevel
		case "info":
			logLevel = logrus.InfoLevel
		case "warn":
			logLevel = logrus.WarnLevel
		case "error":
			logLevel = logrus.ErrorLevel
		default:
			return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", logLevelFlag)
		}
	} else if verboseFlag {
		logLevel = logrus.DebugLevel
	}

	logger := (&config.Config{LogLevel: logLevel}).NewLogger()
	logger.SetOutput(os.Stderr)
	return logger, nil
}

// shouldColorize resolves the color mode; auto colors only a terminal stdout.
func shouldColorize(mode string, cmd *cobra.Command) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
