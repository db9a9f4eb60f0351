// Command overtime keeps a collection of countdown timers that keep
// counting up once their target has passed.
//
// Usage:
//
//	overtime [command] [flags]
//
// Commands:
//
//	run      Interactive shell with live timers and alerts (default)
//	list     Print the stored timers
//	add      Add a timer, optionally targeting an instant
//	history  Inspect the timer event log
//
// Examples:
//
//	# Start the shell with the default config (~/.overtime/config.yaml)
//	overtime
//
//	# Add a timer for a meeting
//	overtime add --title "Standup" --at "2026-10-20 09:30"
//
//	# Show when a timer was paused
//	overtime history --kind paused
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/overtime-timer/overtime-go/pkg/settings"
)

var (
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "overtime",
	Short:         "Countdown timers that keep counting into overtime",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(os.Stderr, flagLogLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", settings.DefaultPath(), "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}

// logLevel is shared by every handler installed through setupLogging so
// the shell can redirect output without losing the level.
var logLevel = new(slog.LevelVar)

func setupLogging(w io.Writer, level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	logLevel.Set(lvl)
	redirectLogging(w)
	return nil
}

func redirectLogging(w io.Writer) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel})))
}
