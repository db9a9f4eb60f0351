package timer

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Timer titles.
const (
	// DefaultTitle marks a timer the user has not customized yet.
	DefaultTitle = "New Timer"

	// FallbackTitle replaces a blank title on edit.
	FallbackTitle = "Timer"
)

// Timer errors.
var (
	ErrMissingID         = errors.New("timer has no id")
	ErrInconsistentState = errors.New("timer running/paused state is inconsistent")
)

// Timer is a single countdown aiming at TargetTime.
type Timer struct {
	// ID is assigned at creation and never changes.
	ID string

	// Title is the display label.
	Title string

	// TargetTime is the instant (epoch ms) the countdown aims at.
	// Only meaningful while running.
	TargetTime int64

	// IsRunning is true while counting against TargetTime.
	IsRunning bool

	// PausedRemaining holds the signed remaining time (ms) while paused.
	// Negative means already in overtime. Nil while running.
	PausedRemaining *int64

	// Notified latches once the running timer reaches its target.
	Notified bool
}

// New creates a paused, zero-length timer with the default title.
func New(now int64) *Timer {
	return &Timer{
		ID:              uuid.New().String(),
		Title:           DefaultTitle,
		TargetTime:      now,
		IsRunning:       false,
		PausedRemaining: Millis(0),
		Notified:        false,
	}
}

// Millis returns a pointer to v. Convenience for PausedRemaining.
func Millis(v int64) *int64 {
	return &v
}

// Clone returns a deep copy of t.
func (t *Timer) Clone() *Timer {
	c := *t
	if t.PausedRemaining != nil {
		c.PausedRemaining = Millis(*t.PausedRemaining)
	}
	return &c
}

// Validate checks the record invariants.
func (t *Timer) Validate() error {
	if t.ID == "" {
		return ErrMissingID
	}
	if t.IsRunning && t.PausedRemaining != nil {
		return ErrInconsistentState
	}
	if !t.IsRunning && t.PausedRemaining == nil {
		return ErrInconsistentState
	}
	return nil
}

// Normalize repairs a record so that Validate accepts the running/paused
// shape. A running timer drops any stale paused value; a paused timer
// without a remaining value is treated as paused at zero.
func (t *Timer) Normalize() {
	if t.IsRunning {
		t.PausedRemaining = nil
		return
	}
	if t.PausedRemaining == nil {
		t.PausedRemaining = Millis(0)
	}
}

// IsPaused reports whether the display is frozen.
func (t *Timer) IsPaused() bool {
	return !t.IsRunning && t.PausedRemaining != nil
}

// Remaining returns the signed remaining time in ms at now.
func (t *Timer) Remaining(now int64) int64 {
	if t.IsPaused() {
		return *t.PausedRemaining
	}
	return subMillis(t.TargetTime, now)
}

// IsFresh reports whether t is an untouched default timer. Status text
// such as "Ends at ..." is suppressed for such timers.
func (t *Timer) IsFresh() bool {
	return t.Title == DefaultTitle && !t.IsRunning &&
		t.PausedRemaining != nil && *t.PausedRemaining == 0
}

// TogglePause pauses a running timer or resumes a paused one.
//
// Pausing captures the signed remaining time and leaves TargetTime as is.
// Resuming re-targets to now+remaining, so a negative remaining puts the
// target back in the past by the same amount. Notified and Title are not
// touched.
func (t *Timer) TogglePause(now int64) {
	if t.IsRunning {
		t.PausedRemaining = Millis(subMillis(t.TargetTime, now))
		t.IsRunning = false
		return
	}

	if t.PausedRemaining != nil {
		t.TargetTime = addMillis(now, *t.PausedRemaining)
	} else {
		t.TargetTime = now
	}
	t.PausedRemaining = nil
	t.IsRunning = true
}

// Pause pauses t. It is a no-op if t is already paused.
func (t *Timer) Pause(now int64) {
	if t.IsRunning {
		t.TogglePause(now)
	}
}

// Resume resumes t. It is a no-op if t is already running.
func (t *Timer) Resume(now int64) {
	if !t.IsRunning {
		t.TogglePause(now)
	}
}

// Edit re-targets t and starts it.
//
// A blank title falls back to FallbackTitle. Editing to an instant at or
// before now marks the timer as already notified, so no alert fires for a
// target that is already behind us; a future target re-arms the latch.
func (t *Timer) Edit(title string, target, now int64) {
	t.Title = normalizeTitle(title)
	t.TargetTime = target
	t.IsRunning = true
	t.PausedRemaining = nil
	t.Notified = target <= now
}

// Rename changes the title only.
func (t *Timer) Rename(title string) {
	t.Title = normalizeTitle(title)
}

func normalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return FallbackTitle
	}
	return title
}

// addMillis returns a+b, saturating at the int64 limits.
func addMillis(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

// subMillis returns a-b, saturating at the int64 limits.
func subMillis(a, b int64) int64 {
	if b < 0 && a > math.MaxInt64+b {
		return math.MaxInt64
	}
	if b > 0 && a < math.MinInt64+b {
		return math.MinInt64
	}
	return a - b
}
