package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Tick interval limits.
const (
	// DefaultTickInterval keeps the display responsive below one second.
	DefaultTickInterval = 100 * time.Millisecond

	// MinTickInterval is the shortest accepted tick interval.
	MinTickInterval = 10 * time.Millisecond

	// MaxTickInterval is the coarsest accepted tick interval.
	MaxTickInterval = time.Second
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config errors.
var (
	ErrInvalidInterval = errors.New("tick interval out of range")
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrUnknownSetting  = errors.New("unknown setting")
)

// Config is the application configuration file.
type Config struct {
	// TickInterval is the periodic driver cadence.
	TickInterval time.Duration `yaml:"tick_interval"`

	// Storage selects where timers are persisted.
	Storage StorageConfig `yaml:"storage"`

	// EventLog is the timer history file. Empty disables it.
	EventLog string `yaml:"event_log"`

	// NTPServer enables clock correction when set.
	NTPServer string `yaml:"ntp_server"`

	// NTPInterval is how often the NTP offset is refreshed.
	NTPInterval time.Duration `yaml:"ntp_interval,omitempty"`

	// Display holds the user preferences.
	Display Settings `yaml:"display"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// DefaultDir returns ~/.overtime, or .overtime if the home directory is
// unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".overtime"
	}
	return filepath.Join(home, ".overtime")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Default returns the default configuration rooted at dir.
func Default(dir string) *Config {
	return &Config{
		TickInterval: DefaultTickInterval,
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    filepath.Join(dir, "timers.json"),
		},
		EventLog: filepath.Join(dir, "events.olog"),
		Display:  DefaultSettings(),
	}
}

// Load reads the config at path. A missing file yields the defaults
// rooted next to path; unset fields keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.expandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating the parent directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the config values.
func (c *Config) Validate() error {
	if c.TickInterval < MinTickInterval || c.TickInterval > MaxTickInterval {
		return fmt.Errorf("%w: %v (want %v-%v)", ErrInvalidInterval, c.TickInterval, MinTickInterval, MaxTickInterval)
	}
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}
	return nil
}

func (c *Config) expandPaths() {
	c.Storage.Path = expandHome(c.Storage.Path)
	c.EventLog = expandHome(c.EventLog)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
