package persistence

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/overtime-timer/overtime-go/pkg/persistence/mocks"
	"github.com/overtime-timer/overtime-go/pkg/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const now int64 = 1_700_000_000_000

func TestSaveAndLoadTimers(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "timers.json"))

	in := []timer.Timer{
		{ID: "a", Title: "Running", TargetTime: now + 5000, IsRunning: true},
		{ID: "b", Title: "Paused", TargetTime: now, PausedRemaining: timer.Millis(-1500), Notified: true},
	}
	require.NoError(t, SaveTimers(store, in))

	got := LoadTimers(store, now, nil)
	require.Len(t, got, 2)
	assert.Equal(t, in[0], *got[0])
	assert.Equal(t, in[1], *got[1])
}

func TestEncodeTimersWireFormat(t *testing.T) {
	data, err := EncodeTimers([]timer.Timer{
		{ID: "a", Title: "T", TargetTime: 42, IsRunning: true},
	})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "a", raw[0]["id"])
	assert.Equal(t, float64(42), raw[0]["targetTime"])
	assert.Equal(t, true, raw[0]["isRunning"])
	assert.Equal(t, false, raw[0]["notified"])
	assert.Contains(t, raw[0], "pausedRemaining")
	assert.Nil(t, raw[0]["pausedRemaining"])
}

func TestDecodeTimersMigration(t *testing.T) {
	ref := time.Date(2026, time.May, 1, 12, 0, 0, 250_000_000, time.UTC)

	t.Run("ReferenceTime", func(t *testing.T) {
		data := `[{"id":"old","title":"Legacy","referenceTime":"2026-05-01T12:00:00.250Z"}]`
		got, err := DecodeTimers([]byte(data), now)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, ref.UnixMilli(), got[0].TargetTime)
		assert.False(t, got[0].IsRunning)
		require.NotNil(t, got[0].PausedRemaining)
		assert.Equal(t, int64(0), *got[0].PausedRemaining)
		assert.False(t, got[0].Notified)
	})

	t.Run("ReferenceTimeWithoutZoneIsLocal", func(t *testing.T) {
		local := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.Local)
		data := `[{"id":"a","referenceTime":"2026-05-01T12:00:00"},` +
			`{"id":"b","referenceTime":"2026-05-01T12:00:00.250"}]`

		got, err := DecodeTimers([]byte(data), now)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, local.UnixMilli(), got[0].TargetTime)
		assert.Equal(t, local.UnixMilli()+250, got[1].TargetTime)
	})

	t.Run("TargetTimeWins", func(t *testing.T) {
		data := `[{"id":"x","targetTime":99,"referenceTime":"2026-05-01T12:00:00Z","isRunning":true}]`
		got, err := DecodeTimers([]byte(data), now)
		require.NoError(t, err)
		assert.Equal(t, int64(99), got[0].TargetTime)
		assert.Nil(t, got[0].PausedRemaining)
	})

	t.Run("NoTimeFallsBackToNow", func(t *testing.T) {
		got, err := DecodeTimers([]byte(`[{"id":"x"},{"id":"y","referenceTime":"garbage"}]`), now)
		require.NoError(t, err)
		assert.Equal(t, now, got[0].TargetTime)
		assert.Equal(t, now, got[1].TargetTime)
	})

	t.Run("MissingIDAndTitle", func(t *testing.T) {
		got, err := DecodeTimers([]byte(`[{},{}]`), now)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.NotEmpty(t, got[0].ID)
		assert.NotEqual(t, got[0].ID, got[1].ID)
		assert.Equal(t, timer.FallbackTitle, got[0].Title)
		assert.NoError(t, got[0].Validate())
	})
}

func TestDecodeTimersRejectsMalformed(t *testing.T) {
	_, err := DecodeTimers([]byte(`{"id":"a"}`), now)
	assert.ErrorIs(t, err, ErrNotArray)

	_, err = DecodeTimers([]byte(`[{"id":`), now)
	assert.Error(t, err)

	_, err = DecodeTimers([]byte(`[1,2]`), now)
	assert.Error(t, err)
}

func TestLoadTimersClearsMalformedData(t *testing.T) {
	for _, data := range []string{`not json`, `{"timers":[]}`, `"x"`} {
		store := mocks.NewMockStore(t)
		store.EXPECT().Load().Return([]byte(data), nil).Once()
		store.EXPECT().Clear().Return(nil).Once()

		assert.Empty(t, LoadTimers(store, now, nil), "data %q", data)
	}
}

func TestLoadTimersClearFailureIsSwallowed(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().Load().Return([]byte(`oops`), nil).Once()
	store.EXPECT().Clear().Return(errors.New("read-only")).Once()

	assert.Empty(t, LoadTimers(store, now, nil))
}

func TestLoadTimersReadErrorKeepsData(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().Load().Return(nil, errors.New("permission denied")).Once()

	assert.Empty(t, LoadTimers(store, now, nil))
	store.AssertNotCalled(t, "Clear")
}

func TestLoadTimersEmpty(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().Load().Return(nil, nil).Once()

	assert.Empty(t, LoadTimers(store, now, nil))
}

func TestSaveTimersPropagatesStoreError(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().Save([]byte(`[]`)).Return(errors.New("disk full")).Once()

	assert.EqualError(t, SaveTimers(store, []timer.Timer{}), "disk full")
}
