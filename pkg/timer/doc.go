// Package timer implements the countdown/overtime time model.
//
// A Timer aims at an absolute target instant. While running, the displayed
// duration is derived from the wall clock; while paused, it is frozen in
// PausedRemaining. The two representations are kept apart on purpose: the
// target must stay exact across pause/resume so that resumed countdowns do
// not drift.
//
// # Time Representation
//
// All instants are epoch milliseconds (int64). Signed durations are
// milliseconds as well: a negative remaining value means the timer is
// that far into overtime.
//
// # Overtime
//
// A timer is in overtime once its remaining time is strictly negative.
// Zero remaining is displayed as a plain 0:00:00, not as overtime.
//
// # Notification Latch
//
// Notified is a one-shot latch. It is set by the completion notifier the
// first time a running timer is observed at or past its target, and is
// only cleared by Edit when the new target lies in the future.
package timer
