package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/overtime-timer/overtime-go/pkg/timer"
)

var (
	addTitle string
	addAt    string
	addIn    time.Duration
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a timer",
	Long: `Add a timer. Without --at or --in the timer is created paused at zero,
like the "add" shell command.`,
	Args: cobra.NoArgs,
	RunE: addTimer,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Timer title")
	addCmd.Flags().StringVar(&addAt, "at", "", `Target as "YYYY-MM-DD HH:MM" in local time`)
	addCmd.Flags().DurationVar(&addIn, "in", 0, "Target relative to now, e.g. 25m")
	addCmd.MarkFlagsMutuallyExclusive("at", "in")
	rootCmd.AddCommand(addCmd)
}

func addTimer(cmd *cobra.Command, args []string) error {
	target, hasTarget, err := parseAddTarget(addAt, addIn, time.Now(), time.Local)
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context(), flagConfig, appOptions{Persist: true})
	if err != nil {
		return err
	}
	defer a.Close()

	a.manager.Add()
	idx := a.manager.Index()

	switch {
	case hasTarget:
		if err := a.manager.Edit(idx, addTitle, target); err != nil {
			return err
		}
	case addTitle != "":
		if err := a.manager.Rename(idx, addTitle); err != nil {
			return err
		}
	}

	t, _ := a.manager.Current()
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Timer %d added: %s\n", idx+1, t.Title)
	if hasTarget {
		opts := a.prefs.Get().FormatOptions(time.Local)
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", timer.StatusText(&t, a.manager.Now(), opts))
	}
	return nil
}

// parseAddTarget resolves --at or --in to epoch ms.
func parseAddTarget(at string, in time.Duration, now time.Time, loc *time.Location) (int64, bool, error) {
	if in != 0 {
		return now.Add(in).UnixMilli(), true, nil
	}
	if at == "" {
		return 0, false, nil
	}

	date, clock, ok := strings.Cut(strings.TrimSpace(at), " ")
	if !ok {
		return 0, false, errors.New(`--at expects "YYYY-MM-DD HH:MM"`)
	}
	target, err := timer.ParseTarget(date, strings.TrimSpace(clock), loc)
	if err != nil {
		return 0, false, err
	}
	return target, true, nil
}
