package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/overtime-timer/overtime-go/pkg/alert"
	"github.com/overtime-timer/overtime-go/pkg/clock"
	"github.com/overtime-timer/overtime-go/pkg/collection"
	"github.com/overtime-timer/overtime-go/pkg/log"
	"github.com/overtime-timer/overtime-go/pkg/notifier"
	"github.com/overtime-timer/overtime-go/pkg/persistence"
	"github.com/overtime-timer/overtime-go/pkg/settings"
	"github.com/overtime-timer/overtime-go/pkg/timer"
)

// app holds the wired components shared by the subcommands.
type app struct {
	configPath string
	cfg        *settings.Config
	prefs      *settings.Live
	logger     *slog.Logger

	clock    clock.Clock
	ntp      *clock.NTP
	store    persistence.Store
	events   log.Logger
	eventLog *log.FileLogger
	manager  *collection.Manager
}

// appOptions selects the optional parts of the wiring.
type appOptions struct {
	// Alert builds the completion alert from the loaded preferences. Nil
	// keeps completion silent.
	Alert func(prefs *settings.Live) alert.Alerter

	// Persist saves the collection after every change.
	Persist bool

	// NTP enables clock correction when the config names a server.
	NTP bool
}

func openApp(ctx context.Context, configPath string, opts appOptions) (*app, error) {
	logger := slog.Default()

	cfg, err := settings.Load(configPath)
	if err != nil {
		return nil, err
	}

	a := &app{
		configPath: configPath,
		cfg:        cfg,
		prefs:      settings.NewLive(cfg.Display),
		logger:     logger,
		clock:      clock.System,
	}

	if opts.NTP && cfg.NTPServer != "" {
		ntpClock, err := clock.NewNTP(cfg.NTPServer, cfg.NTPInterval, logger)
		if err != nil {
			return nil, err
		}
		ntpClock.Start(ctx)
		a.ntp = ntpClock
		a.clock = ntpClock
	}

	a.store, err = openStore(cfg.Storage)
	if err != nil {
		a.Close()
		return nil, err
	}

	loggers := []log.Logger{log.NewSlogAdapter(logger)}
	if cfg.EventLog != "" {
		a.eventLog, err = log.NewFileLogger(cfg.EventLog)
		if err != nil {
			// History is optional; timers keep working without it.
			logger.Warn("event log disabled", "path", cfg.EventLog, "error", err)
		} else {
			loggers = append(loggers, a.eventLog)
		}
	}
	a.events = log.NewMultiLogger(loggers...)

	var onChange func([]timer.Timer)
	if opts.Persist {
		onChange = a.save
	}

	var alerter alert.Alerter
	if opts.Alert != nil {
		alerter = opts.Alert(a.prefs)
	}

	initial := persistence.LoadTimers(a.store, clock.NowMillis(a.clock), logger)
	a.manager = collection.New(collection.Config{
		Clock:    a.clock,
		Notifier: notifier.New(alerter, a.events),
		Logger:   a.events,
		OnChange: onChange,
	}, initial)

	// Store the migrated collection right away.
	if opts.Persist {
		a.save(a.manager.Timers())
	}

	return a, nil
}

func openStore(cfg settings.StorageConfig) (persistence.Store, error) {
	switch cfg.Backend {
	case settings.BackendSQLite:
		return persistence.NewSQLiteStore(cfg.Path)
	case settings.BackendFile:
		return persistence.NewFileStore(cfg.Path), nil
	default:
		return nil, fmt.Errorf("%w: %q", settings.ErrUnknownBackend, cfg.Backend)
	}
}

func (a *app) save(ts []timer.Timer) {
	if err := persistence.SaveTimers(a.store, ts); err != nil {
		a.logger.Error("failed to save timers", "error", err)
	}
}

// saveSettings writes the live preferences back to the config file.
func (a *app) saveSettings() error {
	a.cfg.Display = a.prefs.Get()
	return a.cfg.Save(a.configPath)
}

// tickInterval returns the configured driver cadence.
func (a *app) tickInterval() time.Duration {
	return a.cfg.TickInterval
}

// Close releases the store, the event log and the NTP refresher.
func (a *app) Close() error {
	var errs []error
	if a.ntp != nil {
		a.ntp.Stop()
	}
	if a.eventLog != nil {
		errs = append(errs, a.eventLog.Close())
	}
	if c, ok := a.store.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
