package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oshokin/clockeroo/internal/config"
	"github.com/oshokin/clockeroo/internal/logger"
	"github.com/oshokin/clockeroo/internal/version"
)

// annotationSkipSettings marks commands that run without loading settings.
const annotationSkipSettings = "skip-settings"

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string
	// settings holds the configuration loaded before a command runs.
	settings *config.Config
	// closeLogFile releases the configured log file, if one was opened.
	closeLogFile func()

	// rootCmd represents the base command.
	rootCmd = &cobra.Command{
		Use:   "clockeroo",
		Short: "Terminal timer, stopwatch and alarm clock.",
		Long: `A countdown timer, a stopwatch and an alarm clock with a full-screen terminal display.

A finished timer or a ringing alarm rings the terminal bell, plays a sound and
shows a desktop notification. A stopwatch keeps counting after its display is
closed and can be stopped later from another terminal.

Settings are read from the user configuration directory unless --config is given.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := cmd.Annotations[annotationSkipSettings]; ok || cmd.Name() == "version" {
				return nil
			}

			// Errors past this point come from running the command, not from its usage.
			cmd.SilenceUsage = true

			return loadSettings()
		},
	}
)

// Execute runs the clockeroo CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	err := rootCmd.Execute()

	flushLogs()

	if err != nil {
		os.Exit(1)
	}
}

// flushLogs writes out buffered log entries and closes the log file.
func flushLogs() {
	_ = logger.Logger().Sync()

	if closeLogFile != nil {
		closeLogFile()
		closeLogFile = nil
	}
}

// loadSettings reads the configuration and applies its logging settings.
func loadSettings() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel

		if err = config.Validate(cfg); err != nil {
			return err
		}
	}

	level, _ := logger.ParseLogLevel(cfg.LogLevel)
	logger.SetLevel(level)

	if cfg.LogFile != "" {
		sink, closeSink, openErr := zap.Open(cfg.LogFile)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}

		logger.SetLogger(logger.New(logger.AtomicLevel(), sink))

		closeLogFile = closeSink
	}

	settings = cfg

	return nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}
