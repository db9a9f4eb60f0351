package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	ms := time.Date(2026, time.March, 5, 15, 4, 30, 0, time.UTC).UnixMilli()

	assert.Equal(t, "3:04 pm", FormatTime(ms, FormatOptions{Location: time.UTC}))
	assert.Equal(t, "15:04", FormatTime(ms, FormatOptions{Use24Hour: true, Location: time.UTC}))
	assert.Equal(t, "5 March 2026", FormatDate(ms, FormatOptions{Location: time.UTC}))
}

func TestStatusText(t *testing.T) {
	target := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC).UnixMilli()
	opts := FormatOptions{Location: time.UTC}

	assert.Empty(t, StatusText(New(target), target, opts), "fresh timer has no status")

	tm := running(target)
	assert.Equal(t, "Ends at 9:00 am", StatusText(tm, target-1, opts))
	assert.Equal(t, "Ended at 9:00 am", StatusText(tm, target+1, opts))

	opts.ShowDate = true
	assert.Equal(t, "Ends at 5 March 2026, 9:00 am", StatusText(tm, target, opts))

	tm.TogglePause(target)
	assert.Equal(t, "Paused", StatusText(tm, target, opts))
}

func TestShareText(t *testing.T) {
	target := time.Date(2026, time.December, 24, 18, 30, 0, 0, time.UTC).UnixMilli()
	tm := running(target)
	tm.Title = "Christmas Eve"

	got := ShareText(tm, FormatOptions{Use24Hour: true, Location: time.UTC})
	assert.Equal(t, "Countdown to Christmas Eve on 24 December 2026 at 18:30", got)
}

func TestParseTarget(t *testing.T) {
	got, err := ParseTarget("2026-10-19", "07:45", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 19, 7, 45, 0, 0, time.UTC).UnixMilli(), got)

	// Seconds in the clock are ignored.
	got, err = ParseTarget("2026-10-19", "07:45:59", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 19, 7, 45, 0, 0, time.UTC).UnixMilli(), got)

	bad := [][2]string{
		{"2026/10/19", "07:45"},
		{"2026-10-19", "0745"},
		{"2026-13-01", "07:45"},
		{"2026-10-19", "24:00"},
		{"yyyy-mm-dd", "07:45"},
	}
	for _, in := range bad {
		_, err := ParseTarget(in[0], in[1], time.UTC)
		assert.ErrorIs(t, err, ErrInvalidTarget, "input %v", in)
	}
}
