package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/clockeroo/internal/config"
	"github.com/oshokin/clockeroo/internal/logger"
)

// execute runs the command tree with args; tests using it share globals and must not run in parallel.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)

	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		configPath, logLevel, force, reset = "", "", false, false
		settings = nil

		flushLogs()
	})

	err := rootCmd.Execute()

	return out.String(), err
}

// TestConfigInitAndShow verifies a written configuration is shown with flag overrides applied.
//
//nolint:paralleltest // The command tree is a package-level singleton.
func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clockeroo", "config.yaml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	require.Contains(t, out, "Settings written to "+path)

	_, err = execute(t, "config", "init", path)
	require.ErrorIs(t, err, errConfigExists)

	out, err = execute(t, "--config", path, "--log-level", "debug", "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "log_level: debug")
	require.Contains(t, out, "timer_poll: 100ms")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
}

// TestRejectsUnknownLogLevel verifies an invalid --log-level fails the command.
//
//nolint:paralleltest // The command tree is a package-level singleton.
func TestRejectsUnknownLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.Save(path, config.Default()))

	_, err := execute(t, "--config", path, "--log-level", "loud", "config", "show")
	require.Error(t, err)
}

// TestTimerRequiresDuration verifies the timer command needs its duration argument.
//
//nolint:paralleltest // The command tree is a package-level singleton.
func TestTimerRequiresDuration(t *testing.T) {
	_, err := execute(t, "timer")
	require.Error(t, err)
}

// TestFlushLogsWritesLogFile verifies entries logged before exit reach the
// configured log file and the file is released.
//
//nolint:paralleltest // The command tree and logger are package-level singletons.
func TestFlushLogsWritesLogFile(t *testing.T) {
	prev := logger.Logger()

	t.Cleanup(func() {
		logger.SetLogger(prev)
		level, _ := logger.ParseLogLevel(config.DefaultLogLevel)
		logger.SetLevel(level)
	})

	dir := t.TempDir()
	logPath := filepath.Join(dir, "clockeroo.log")
	path := filepath.Join(dir, "config.yaml")

	cfg := config.Default()
	cfg.LogFile = logPath
	cfg.LogLevel = "info"
	require.NoError(t, config.Save(path, cfg))

	_, err := execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	require.NotNil(t, closeLogFile)

	logger.InfoKV(context.Background(), "session finished", "kind", "timer")

	flushLogs()
	require.Nil(t, closeLogFile)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "session finished")
}
