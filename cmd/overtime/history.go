package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/overtime-timer/overtime-go/cmd/overtime/commands"
	"github.com/overtime-timer/overtime-go/pkg/log"
	"github.com/overtime-timer/overtime-go/pkg/settings"
)

var (
	historyFile   string
	historyTimer  string
	historyKind   string
	historySince  time.Duration
	historyFormat string
	historyOutput string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View the timer event log",
	Long: `View the timer event log in human-readable form. The log path comes
from the config file unless --file is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, filter, err := historyInput()
		if err != nil {
			return err
		}
		return commands.RunView(path, filter, cmd.OutOrStdout())
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the event log to JSONL or CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, filter, err := historyInput()
		if err != nil {
			return err
		}
		return commands.RunExport(path, filter, historyFormat, historyOutput)
	},
}

var historyFilterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Write matching events to a new log file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, filter, err := historyInput()
		if err != nil {
			return err
		}
		n, err := commands.RunFilter(path, filter, historyOutput)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d events to %s\n", n, historyOutput)
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about the event log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _, err := historyInput()
		if err != nil {
			return err
		}
		return commands.RunStats(path, cmd.OutOrStdout())
	},
}

func init() {
	historyCmd.PersistentFlags().StringVarP(&historyFile, "file", "f", "", "Event log path (default: from config)")
	historyCmd.PersistentFlags().StringVar(&historyTimer, "timer", "", "Only events for this timer ID")
	historyCmd.PersistentFlags().StringVar(&historyKind, "kind", "", "Only events of this kind (created, paused, notified, ...)")
	historyCmd.PersistentFlags().DurationVar(&historySince, "since", 0, "Only events newer than this, e.g. 24h")

	historyExportCmd.Flags().StringVar(&historyFormat, "format", "jsonl", "Output format: jsonl, csv")
	historyExportCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "Output file (default: stdout)")
	historyFilterCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "Output log file (required)")
	_ = historyFilterCmd.MarkFlagRequired("output")

	historyCmd.AddCommand(historyExportCmd, historyFilterCmd, historyStatsCmd)
	rootCmd.AddCommand(historyCmd)
}

// historyInput resolves the log path and the filter flags.
func historyInput() (string, log.Filter, error) {
	path := historyFile
	if path == "" {
		cfg, err := settings.Load(flagConfig)
		if err != nil {
			return "", log.Filter{}, err
		}
		path = cfg.EventLog
	}
	if path == "" {
		return "", log.Filter{}, errors.New("event log is disabled in the config; use --file")
	}

	filter := log.Filter{TimerID: historyTimer}
	if historyKind != "" {
		k, err := commands.ParseKindFlag(historyKind)
		if err != nil {
			return "", log.Filter{}, err
		}
		filter.Kind = &k
	}
	if historySince > 0 {
		start := time.Now().Add(-historySince)
		filter.TimeStart = &start
	}
	return path, filter, nil
}
