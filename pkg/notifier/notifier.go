// Package notifier detects timers crossing into overtime.
//
// A scan latches Notified on every running timer that has reached its
// target and fires a single alert for the whole scan, however many timers
// completed at once. Paused timers are never notified.
package notifier

import (
	"time"

	"github.com/overtime-timer/overtime-go/pkg/alert"
	"github.com/overtime-timer/overtime-go/pkg/log"
	"github.com/overtime-timer/overtime-go/pkg/timer"
)

// Notifier runs completion scans.
type Notifier struct {
	alert  alert.Alerter
	logger log.Logger
}

// New creates a Notifier. A nil alerter disables the alert effect; a nil
// logger disables the event log.
func New(a alert.Alerter, logger log.Logger) *Notifier {
	if a == nil {
		a = alert.Func(func() {})
	}
	return &Notifier{
		alert:  a,
		logger: log.OrNoop(logger),
	}
}

// Latch sets Notified on every running, un-notified timer at or past its
// target and returns the newly latched timers. It does not fire the alert.
func (n *Notifier) Latch(now int64, timers []*timer.Timer) []*timer.Timer {
	var latched []*timer.Timer
	for i, t := range timers {
		if !t.IsRunning || t.Notified {
			continue
		}
		if t.TargetTime-now > 0 {
			continue
		}

		t.Notified = true
		latched = append(latched, t)

		n.logger.Log(log.Event{
			Timestamp:  time.UnixMilli(now),
			Kind:       log.KindNotified,
			TimerID:    t.ID,
			Title:      t.Title,
			TargetTime: t.TargetTime,
			Index:      i,
			Count:      len(timers),
		})
	}
	return latched
}

// Fire fires the alert effect once.
func (n *Notifier) Fire() {
	n.alert.Fire()
}

// Scan latches completed timers and fires one alert if any were latched.
// Latching happens before the alert, so a failing alert leaves the latch
// set.
func (n *Notifier) Scan(now int64, timers []*timer.Timer) []*timer.Timer {
	latched := n.Latch(now, timers)
	if len(latched) > 0 {
		n.Fire()
	}
	return latched
}
