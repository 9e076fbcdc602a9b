package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user settings shared by all clockeroo commands.
type Config struct {
	// StateFile is the path of the persisted stopwatch record.
	StateFile string `yaml:"state_file"`
	// LogLevel is the minimum level written to the log sink (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// LogFile is an optional file receiving log output instead of stderr.
	LogFile string `yaml:"log_file,omitempty"`
	// Mute disables the terminal bell and the alert sound.
	Mute bool `yaml:"mute"`
	// DisableNotifications turns off desktop notifications.
	DisableNotifications bool `yaml:"disable_notifications"`
	// SoundCommand overrides the command used to play the alert sound.
	SoundCommand []string `yaml:"sound_command,omitempty"`
	// TimerPoll bounds each input wait of the timer and alarm displays.
	TimerPoll time.Duration `yaml:"timer_poll"`
	// StopwatchPoll bounds each input wait of the stopwatch display.
	StopwatchPoll time.Duration `yaml:"stopwatch_poll"`
}

const (
	// AppName names the configuration directory and the stopwatch record.
	AppName = "clockeroo"

	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "config.yaml"

	// DefaultStateFilename is the default filename of the stopwatch record.
	DefaultStateFilename = AppName + ".stopwatch"

	// DefaultLogLevel keeps the interactive display free of log noise.
	DefaultLogLevel = "warn"

	// DefaultTimerPoll is the input wait of the timer and alarm displays.
	DefaultTimerPoll = 100 * time.Millisecond

	// DefaultStopwatchPoll is the input wait of the stopwatch display; it is short
	// so that milliseconds keep moving on screen.
	DefaultStopwatchPoll = 10 * time.Millisecond

	// MaxPoll is the longest accepted input wait.
	MaxPoll = time.Second

	// DefaultFilePermissions is the default file permission for config and state files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLogLevel is returned for unknown log levels.
	errInvalidLogLevel = errors.New("invalid log level")
	// errInvalidPoll is returned for poll intervals outside (0, MaxPoll].
	errInvalidPoll = errors.New("poll interval must be between 1ns and 1s")
)

// validLogLevels lists the accepted log_level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Default returns the settings used when no file is present.
func Default() *Config {
	cfg := new(Config)

	// Validation of an empty config only fills defaults.
	_ = Validate(cfg)

	return cfg
}

// DefaultPath returns the settings location under the user configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFilename
	}

	return filepath.Join(dir, AppName, DefaultConfigFilename)
}

// DefaultStateFile returns the per-user runtime location of the stopwatch record:
// $XDG_RUNTIME_DIR when set, the system temporary directory otherwise.
func DefaultStateFile() string {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, DefaultStateFilename)
	}

	return filepath.Join(os.TempDir(), DefaultStateFilename)
}

// Load reads settings from path and validates them.
// An empty path means DefaultPath; a missing file there yields Default.
// A missing file at an explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to path, creating its directory if needed.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultPath()
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	path = filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	// Set default state file if not specified.
	if settings.StateFile == "" {
		settings.StateFile = DefaultStateFile()
	}

	settings.LogLevel = strings.ToLower(strings.TrimSpace(settings.LogLevel))
	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := validLogLevels[settings.LogLevel]; !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, settings.LogLevel)
	}

	if settings.TimerPoll == 0 {
		settings.TimerPoll = DefaultTimerPoll
	}

	if settings.StopwatchPoll == 0 {
		settings.StopwatchPoll = DefaultStopwatchPoll
	}

	for name, poll := range map[string]time.Duration{
		"timer_poll":     settings.TimerPoll,
		"stopwatch_poll": settings.StopwatchPoll,
	} {
		if poll < 0 || poll > MaxPoll {
			return fmt.Errorf("%s: %w", name, errInvalidPoll)
		}
	}

	return nil
}
