package timer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseNow int64 = 1_700_000_000_000

func running(target int64) *Timer {
	return &Timer{ID: "t1", Title: "Launch", TargetTime: target, IsRunning: true}
}

func TestNew(t *testing.T) {
	tm := New(baseNow)

	assert.NotEmpty(t, tm.ID)
	assert.Equal(t, DefaultTitle, tm.Title)
	assert.Equal(t, baseNow, tm.TargetTime)
	assert.False(t, tm.IsRunning)
	require.NotNil(t, tm.PausedRemaining)
	assert.Equal(t, int64(0), *tm.PausedRemaining)
	assert.False(t, tm.Notified)
	assert.NoError(t, tm.Validate())
	assert.True(t, tm.IsFresh())

	other := New(baseNow)
	assert.NotEqual(t, tm.ID, other.ID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		timer Timer
		want  error
	}{
		{"running", Timer{ID: "a", IsRunning: true}, nil},
		{"paused", Timer{ID: "a", PausedRemaining: Millis(-5)}, nil},
		{"missing id", Timer{IsRunning: true}, ErrMissingID},
		{"running with stale paused value", Timer{ID: "a", IsRunning: true, PausedRemaining: Millis(3)}, ErrInconsistentState},
		{"paused without remaining", Timer{ID: "a"}, ErrInconsistentState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.timer.Validate(), tt.want)
		})
	}
}

func TestNormalize(t *testing.T) {
	r := Timer{ID: "a", IsRunning: true, PausedRemaining: Millis(3)}
	r.Normalize()
	assert.Nil(t, r.PausedRemaining)

	p := Timer{ID: "a"}
	p.Normalize()
	require.NotNil(t, p.PausedRemaining)
	assert.Equal(t, int64(0), *p.PausedRemaining)
}

func TestTogglePauseRoundTrip(t *testing.T) {
	tm := running(baseNow + 90_000)

	tm.TogglePause(baseNow)
	assert.False(t, tm.IsRunning)
	require.NotNil(t, tm.PausedRemaining)
	assert.Equal(t, int64(90_000), *tm.PausedRemaining)
	assert.Equal(t, baseNow+90_000, tm.TargetTime, "target is left alone while paused")

	tm.TogglePause(baseNow)
	assert.True(t, tm.IsRunning)
	assert.Nil(t, tm.PausedRemaining)
	assert.Equal(t, baseNow+90_000, tm.TargetTime)
}

func TestTogglePauseInOvertime(t *testing.T) {
	tm := running(baseNow - 5000)

	tm.TogglePause(baseNow)
	require.NotNil(t, tm.PausedRemaining)
	assert.Equal(t, int64(-5000), *tm.PausedRemaining)

	// Resume later: target lands 5s in the past relative to the new now.
	later := baseNow + 60_000
	tm.TogglePause(later)
	assert.Equal(t, later-5000, tm.TargetTime)
	assert.True(t, Calculate(later, tm).IsOvertime)
}

func TestTogglePauseSaturates(t *testing.T) {
	tm := running(math.MinInt64)
	tm.TogglePause(baseNow)
	require.NotNil(t, tm.PausedRemaining)
	assert.Equal(t, int64(math.MinInt64), *tm.PausedRemaining)

	tm.TogglePause(-baseNow)
	assert.Equal(t, int64(math.MinInt64), tm.TargetTime)

	tm = &Timer{ID: "p", PausedRemaining: Millis(math.MaxInt64)}
	tm.TogglePause(baseNow)
	assert.Equal(t, int64(math.MaxInt64), tm.TargetTime)
	assert.Equal(t, int64(math.MaxInt64), tm.Remaining(-1))
}

func TestTogglePausePreservesElapsedTime(t *testing.T) {
	tm := running(baseNow + 10_000)

	tm.TogglePause(baseNow + 4000)
	// Time passes while paused; display stays frozen.
	assert.Equal(t, Calculate(baseNow+4000, tm), Calculate(baseNow+500_000, tm))

	tm.TogglePause(baseNow + 500_000)
	assert.Equal(t, baseNow+500_000+6000, tm.TargetTime)
}

func TestTogglePauseLeavesNotifiedAndTitle(t *testing.T) {
	tm := running(baseNow - 1)
	tm.Notified = true

	tm.TogglePause(baseNow)
	tm.TogglePause(baseNow)

	assert.True(t, tm.Notified)
	assert.Equal(t, "Launch", tm.Title)
}

func TestResumeWithoutRemainingFallsBackToNow(t *testing.T) {
	tm := &Timer{ID: "a", TargetTime: 1}

	tm.TogglePause(baseNow)
	assert.Equal(t, baseNow, tm.TargetTime)
	assert.True(t, tm.IsRunning)
}

func TestPauseResumeIdempotent(t *testing.T) {
	tm := running(baseNow + 1000)

	tm.Resume(baseNow)
	assert.True(t, tm.IsRunning)
	assert.Equal(t, baseNow+1000, tm.TargetTime)

	tm.Pause(baseNow)
	tm.Pause(baseNow + 700)
	assert.Equal(t, int64(1000), *tm.PausedRemaining)
}

func TestEdit(t *testing.T) {
	t.Run("FutureTargetRearms", func(t *testing.T) {
		tm := New(baseNow)
		tm.Notified = true

		tm.Edit("Dinner", baseNow+60_000, baseNow)
		assert.Equal(t, "Dinner", tm.Title)
		assert.Equal(t, baseNow+60_000, tm.TargetTime)
		assert.True(t, tm.IsRunning)
		assert.Nil(t, tm.PausedRemaining)
		assert.False(t, tm.Notified)
		assert.NoError(t, tm.Validate())
	})

	t.Run("PastTargetIsAlreadyNotified", func(t *testing.T) {
		tm := New(baseNow)
		tm.Edit("Meeting", baseNow-60_000, baseNow)
		assert.True(t, tm.Notified)
	})

	t.Run("TargetEqualToNowIsAlreadyNotified", func(t *testing.T) {
		tm := New(baseNow)
		tm.Edit("Now", baseNow, baseNow)
		assert.True(t, tm.Notified)
	})

	t.Run("BlankTitleFallsBack", func(t *testing.T) {
		tm := New(baseNow)
		tm.Edit("   ", baseNow+1, baseNow)
		assert.Equal(t, FallbackTitle, tm.Title)
	})
}

func TestRename(t *testing.T) {
	tm := running(baseNow)
	tm.Rename("  Boil eggs ")
	assert.Equal(t, "Boil eggs", tm.Title)

	tm.Rename("")
	assert.Equal(t, FallbackTitle, tm.Title)
	assert.Equal(t, baseNow, tm.TargetTime)
}

func TestIsFresh(t *testing.T) {
	tm := New(baseNow)
	assert.True(t, tm.IsFresh())

	tm.Rename("Custom")
	assert.False(t, tm.IsFresh())

	tm = New(baseNow)
	tm.PausedRemaining = Millis(1000)
	assert.False(t, tm.IsFresh())

	tm = New(baseNow)
	tm.TogglePause(baseNow)
	assert.False(t, tm.IsFresh())
}

func TestClone(t *testing.T) {
	tm := New(baseNow)
	c := tm.Clone()
	*c.PausedRemaining = 42

	assert.Equal(t, int64(0), *tm.PausedRemaining)
	assert.Equal(t, tm.ID, c.ID)
}
