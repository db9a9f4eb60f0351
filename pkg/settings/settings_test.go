package settings

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.False(t, s.Use24Hour)
	assert.True(t, s.ShowDate)
	assert.True(t, s.Sound)
	assert.True(t, s.Haptics)
}

func TestToggleAndSet(t *testing.T) {
	s := DefaultSettings()

	v, err := s.Toggle("24h")
	require.NoError(t, err)
	assert.True(t, v)
	assert.True(t, s.Use24Hour)

	require.NoError(t, s.Set("sound", false))
	assert.False(t, s.Sound)

	require.NoError(t, s.Set("Show-Date", false))
	assert.False(t, s.ShowDate)

	_, err = s.Toggle("volume")
	assert.ErrorIs(t, err, ErrUnknownSetting)
}

func TestFormatOptions(t *testing.T) {
	s := Settings{Use24Hour: true, ShowDate: false}
	opts := s.FormatOptions(time.UTC)
	assert.True(t, opts.Use24Hour)
	assert.False(t, opts.ShowDate)
	assert.Equal(t, time.UTC, opts.Location)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"haptics", "show_date", "sound", "use_24_hour"}, Names())
}

func TestLive(t *testing.T) {
	l := NewLive(DefaultSettings())
	assert.True(t, l.SoundEnabled())
	assert.True(t, l.HapticsEnabled())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Update(func(s *Settings) error {
				_, err := s.Toggle("haptics")
				return err
			})
			_ = l.HapticsEnabled()
		}()
	}
	wg.Wait()
	assert.True(t, l.HapticsEnabled(), "even number of toggles")

	err := l.Update(func(s *Settings) error {
		s.Sound = false
		return s.Set("bogus", true)
	})
	assert.ErrorIs(t, err, ErrUnknownSetting)
	assert.True(t, l.SoundEnabled(), "failed update is not applied")
}
