package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTarget is returned by ParseTarget for malformed input.
var ErrInvalidTarget = errors.New("invalid target date/time")

// FormatOptions controls how instants are rendered.
type FormatOptions struct {
	// Use24Hour renders 15:04 instead of 3:04 pm.
	Use24Hour bool

	// ShowDate appends the date to status text.
	ShowDate bool

	// Location for wall-clock rendering. Nil means time.Local.
	Location *time.Location
}

func (o FormatOptions) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// ToTime converts epoch ms to a time.Time in loc.
func ToTime(ms int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ms).In(loc)
}

// FormatTime renders the wall-clock time of ms, e.g. "3:04 pm" or "15:04".
func FormatTime(ms int64, opts FormatOptions) string {
	t := ToTime(ms, opts.location())
	if opts.Use24Hour {
		return t.Format("15:04")
	}
	return strings.ToLower(t.Format("3:04 PM"))
}

// FormatDate renders the date of ms, e.g. "5 March 2026".
func FormatDate(ms int64, opts FormatOptions) string {
	return ToTime(ms, opts.location()).Format("2 January 2006")
}

// StatusText describes the state of t below its display.
// Fresh timers get no status text.
func StatusText(t *Timer, now int64, opts FormatOptions) string {
	if t.IsFresh() {
		return ""
	}
	if t.IsPaused() {
		return "Paused"
	}

	when := FormatTime(t.TargetTime, opts)
	if opts.ShowDate {
		when = FormatDate(t.TargetTime, opts) + ", " + when
	}
	if t.TargetTime < now {
		return "Ended at " + when
	}
	return "Ends at " + when
}

// ShareText builds the text shared for a timer.
func ShareText(t *Timer, opts FormatOptions) string {
	return fmt.Sprintf("Countdown to %s on %s at %s",
		t.Title, FormatDate(t.TargetTime, opts), FormatTime(t.TargetTime, opts))
}

// ParseTarget combines a date ("2006-01-02") and a wall-clock time
// ("15:04") in loc into epoch ms. Seconds and milliseconds are zero.
func ParseTarget(date, clock string, loc *time.Location) (int64, error) {
	if loc == nil {
		loc = time.Local
	}

	dateParts := strings.Split(strings.TrimSpace(date), "-")
	timeParts := strings.Split(strings.TrimSpace(clock), ":")
	if len(dateParts) != 3 || len(timeParts) < 2 {
		return 0, fmt.Errorf("%w: %q %q", ErrInvalidTarget, date, clock)
	}

	nums := make([]int, 0, 5)
	for _, p := range append(dateParts, timeParts[:2]...) {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: %q %q", ErrInvalidTarget, date, clock)
		}
		nums = append(nums, n)
	}

	year, month, day, hour, minute := nums[0], nums[1], nums[2], nums[3], nums[4]
	if month < 1 || month > 12 || day < 1 || day > 31 || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q %q", ErrInvalidTarget, date, clock)
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc).UnixMilli(), nil
}
