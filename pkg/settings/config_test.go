package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultTickInterval, cfg.TickInterval)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "timers.json"), cfg.Storage.Path)
	assert.Equal(t, filepath.Join(dir, "events.olog"), cfg.EventLog)
	assert.Equal(t, DefaultSettings(), cfg.Display)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
tick_interval: 1s
storage:
  backend: sqlite
  path: /tmp/overtime.db
ntp_server: pool.ntp.org
display:
  use_24_hour: true
  sound: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/overtime.db", cfg.Storage.Path)
	assert.Equal(t, "pool.ntp.org", cfg.NTPServer)
	assert.True(t, cfg.Display.Use24Hour)
	assert.False(t, cfg.Display.Sound)
	assert.True(t, cfg.Display.ShowDate, "unset fields keep defaults")
	assert.True(t, cfg.Display.Haptics)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"interval too short", "tick_interval: 1ms\n", ErrInvalidInterval},
		{"interval too long", "tick_interval: 5s\n", ErrInvalidInterval},
		{"unknown backend", "storage:\n  backend: redis\n", ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := Load(path)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_interval: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := Default(dir)
	cfg.TickInterval = 250 * time.Millisecond
	cfg.Display.Use24Hour = true
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, ".overtime", "x.json"), expandHome("~/.overtime/x.json"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
	assert.Equal(t, "rel/~/path", expandHome("rel/~/path"))
}
