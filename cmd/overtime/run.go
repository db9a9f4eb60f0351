package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/overtime-timer/overtime-go/cmd/overtime/interactive"
	"github.com/overtime-timer/overtime-go/pkg/alert"
	"github.com/overtime-timer/overtime-go/pkg/driver"
	"github.com/overtime-timer/overtime-go/pkg/settings"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive shell",
	Long: `Start the interactive shell. Timers are recalculated continuously,
completed timers ring the terminal bell and flash the screen, and every
change is saved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runShell(cmd *cobra.Command) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rl, err := interactive.NewReadline()
	if err != nil {
		return err
	}
	out := rl.Stdout()
	redirectLogging(rl.Stderr())
	defer redirectLogging(os.Stderr)

	logger := slog.Default()
	force := alert.IsTerminal(os.Stdout)

	a, err := openApp(ctx, flagConfig, appOptions{
		Alert: func(prefs *settings.Live) alert.Alerter {
			effect := alert.NewEffect(prefs, alert.NewBell(out, force), alert.NewFlash(out, force), logger)
			return alert.Async(alert.Safe(effect, logger))
		},
		Persist: true,
		NTP:     true,
	})
	if err != nil {
		rl.Close()
		return err
	}
	defer a.Close()

	sh := interactive.New(interactive.Config{
		Manager:      a.manager,
		Prefs:        a.prefs,
		SaveSettings: a.saveSettings,
	}, rl)

	d, err := driver.New(a.manager, a.tickInterval(), sh.HandleFrame, logger)
	if err != nil {
		rl.Close()
		return err
	}
	if err := d.Start(ctx); err != nil {
		rl.Close()
		return err
	}
	defer d.Stop()

	fmt.Fprintf(out, "Loaded %d timer(s) from %s\n", a.manager.Len(), a.cfg.Storage.Path)
	sh.Run(ctx, cancel)
	return nil
}
