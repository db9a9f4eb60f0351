package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/overtime-timer/overtime-go/cmd/overtime/interactive"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored timers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), flagConfig, appOptions{})
		if err != nil {
			return err
		}
		defer a.Close()

		_, current := a.manager.Current()
		opts := a.prefs.Get().FormatOptions(time.Local)
		interactive.WriteList(cmd.OutOrStdout(), a.manager.Timers(), current, a.manager.Now(), opts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
