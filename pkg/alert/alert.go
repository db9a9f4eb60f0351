// Package alert implements the completion alert effect.
//
// An alert is best-effort: sound and haptic failures are logged and
// swallowed, and a panicking effect never reaches the caller.
package alert

import (
	"fmt"
	"log/slog"
	"time"
)

// Alerter fires the completion alert. Fire must not block for long and
// never reports failure.
type Alerter interface {
	Fire()
}

// Func adapts a function to Alerter.
type Func func()

// Fire calls f.
func (f Func) Fire() { f() }

// Sounder plays an audible alert.
type Sounder interface {
	Play() error
}

// Vibrator plays a haptic pattern of alternating on/off durations,
// starting with on.
type Vibrator interface {
	Vibrate(pattern []time.Duration) error
}

// Preferences gates the alert channels at fire time.
type Preferences interface {
	SoundEnabled() bool
	HapticsEnabled() bool
}

// DefaultPattern is the haptic pattern: on 200ms, off 100ms, on 200ms.
var DefaultPattern = []time.Duration{
	200 * time.Millisecond,
	100 * time.Millisecond,
	200 * time.Millisecond,
}

// Effect combines a sound and a haptic channel, each gated by Preferences.
type Effect struct {
	prefs    Preferences
	sound    Sounder
	vibrator Vibrator
	pattern  []time.Duration
	logger   *slog.Logger
}

// NewEffect creates an Effect. Either channel may be nil.
func NewEffect(prefs Preferences, sound Sounder, vibrator Vibrator, logger *slog.Logger) *Effect {
	if logger == nil {
		logger = slog.Default()
	}
	return &Effect{
		prefs:    prefs,
		sound:    sound,
		vibrator: vibrator,
		pattern:  DefaultPattern,
		logger:   logger,
	}
}

// Fire plays the enabled channels.
func (e *Effect) Fire() {
	if e.sound != nil && e.prefs.SoundEnabled() {
		if err := protect(e.sound.Play); err != nil {
			e.logger.Debug("alert sound failed", "error", err)
		}
	}
	if e.vibrator != nil && e.prefs.HapticsEnabled() {
		err := protect(func() error { return e.vibrator.Vibrate(e.pattern) })
		if err != nil {
			e.logger.Debug("alert haptics failed", "error", err)
		}
	}
}

// Safe wraps a so that a panic inside Fire is recovered and logged.
func Safe(a Alerter, logger *slog.Logger) Alerter {
	if logger == nil {
		logger = slog.Default()
	}
	return Func(func() {
		err := protect(func() error {
			a.Fire()
			return nil
		})
		if err != nil {
			logger.Warn("alert failed", "error", err)
		}
	})
}

// Async fires a on its own goroutine so a slow effect never delays the
// caller. Wrap a with Safe first; a panic on that goroutine is not
// recovered here.
func Async(a Alerter) Alerter {
	return Func(func() {
		go a.Fire()
	})
}

// protect runs fn, converting a panic into an error.
func protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

// Compile-time interface satisfaction checks.
var (
	_ Alerter = Func(nil)
	_ Alerter = (*Effect)(nil)
)
