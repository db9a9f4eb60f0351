package timer

import (
	"fmt"
	"strconv"
)

// Millisecond conversion factors.
const (
	MillisPerSecond = 1000
	MillisPerMinute = 60 * MillisPerSecond
	MillisPerHour   = 60 * MillisPerMinute
)

// DigitSize classifies the display by the number of hour digits.
type DigitSize uint8

const (
	// SizeLarge is used for 1-2 hour digits.
	SizeLarge DigitSize = iota

	// SizeMedium is used for 3 hour digits.
	SizeMedium

	// SizeSmall is used for 4 hour digits.
	SizeSmall

	// SizeTiny is used for 5 or more hour digits.
	SizeTiny
)

// String returns the size class name.
func (s DigitSize) String() string {
	switch s {
	case SizeLarge:
		return "LARGE"
	case SizeMedium:
		return "MEDIUM"
	case SizeSmall:
		return "SMALL"
	case SizeTiny:
		return "TINY"
	default:
		return "UNKNOWN"
	}
}

// Display is the broken-down duration shown for a timer.
type Display struct {
	// Hours is unbounded; it may exceed two digits.
	Hours int64

	// Minutes is 0-59.
	Minutes int

	// Seconds is 0-59.
	Seconds int

	// IsOvertime is true once the target has passed.
	IsOvertime bool
}

// Calculate computes the display for t at now.
//
// A paused timer shows its frozen remaining value; a running timer shows
// TargetTime-now. The result depends only on its inputs.
func Calculate(now int64, t *Timer) Display {
	var diff int64
	if !t.IsRunning && t.PausedRemaining != nil {
		diff = *t.PausedRemaining
	} else {
		diff = subMillis(t.TargetTime, now)
	}
	return FromMillis(diff)
}

// FromMillis breaks a signed duration in ms into a Display.
func FromMillis(diff int64) Display {
	d := Display{IsOvertime: diff < 0}

	// The magnitude of math.MinInt64 does not fit in an int64.
	abs := uint64(diff)
	if d.IsOvertime {
		abs = uint64(-(diff + 1)) + 1
	}

	d.Hours = int64(abs / MillisPerHour)
	d.Minutes = int((abs % MillisPerHour) / MillisPerMinute)
	d.Seconds = int((abs % MillisPerMinute) / MillisPerSecond)
	return d
}

// HoursText returns the hours without padding.
func (d Display) HoursText() string {
	return strconv.FormatInt(d.Hours, 10)
}

// MinutesText returns the minutes padded to two digits.
func (d Display) MinutesText() string {
	return fmt.Sprintf("%02d", d.Minutes)
}

// SecondsText returns the seconds padded to two digits.
func (d Display) SecondsText() string {
	return fmt.Sprintf("%02d", d.Seconds)
}

// String formats the display as H:MM:SS, with a leading "+" in overtime.
func (d Display) String() string {
	s := d.HoursText() + ":" + d.MinutesText() + ":" + d.SecondsText()
	if d.IsOvertime {
		return "+" + s
	}
	return s
}

// DigitSize returns the size class for the hours digit count.
func (d Display) DigitSize() DigitSize {
	switch n := len(d.HoursText()); {
	case n > 4:
		return SizeTiny
	case n > 3:
		return SizeSmall
	case n > 2:
		return SizeMedium
	default:
		return SizeLarge
	}
}
