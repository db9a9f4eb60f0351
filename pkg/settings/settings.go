package settings

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/overtime-timer/overtime-go/pkg/timer"
)

// Settings are the display and alert preferences.
type Settings struct {
	Use24Hour bool `yaml:"use_24_hour"`
	ShowDate  bool `yaml:"show_date"`
	Sound     bool `yaml:"sound"`
	Haptics   bool `yaml:"haptics"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		Use24Hour: false,
		ShowDate:  true,
		Sound:     true,
		Haptics:   true,
	}
}

// FormatOptions converts the settings into timer formatting options.
func (s Settings) FormatOptions(loc *time.Location) timer.FormatOptions {
	return timer.FormatOptions{
		Use24Hour: s.Use24Hour,
		ShowDate:  s.ShowDate,
		Location:  loc,
	}
}

// field returns a pointer to the named toggle.
func (s *Settings) field(name string) (*bool, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "_")) {
	case "use_24_hour", "24h", "24hour":
		return &s.Use24Hour, nil
	case "show_date", "date":
		return &s.ShowDate, nil
	case "sound":
		return &s.Sound, nil
	case "haptics", "vibrate":
		return &s.Haptics, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}
}

// Set sets the named toggle.
func (s *Settings) Set(name string, v bool) error {
	f, err := s.field(name)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Toggle flips the named toggle and returns its new value.
func (s *Settings) Toggle(name string) (bool, error) {
	f, err := s.field(name)
	if err != nil {
		return false, err
	}
	*f = !*f
	return *f, nil
}

// Map returns the toggles keyed by their YAML names.
func (s Settings) Map() map[string]bool {
	return map[string]bool{
		"use_24_hour": s.Use24Hour,
		"show_date":   s.ShowDate,
		"sound":       s.Sound,
		"haptics":     s.Haptics,
	}
}

// Names returns the toggle names in stable order.
func Names() []string {
	names := make([]string, 0, 4)
	for k := range (Settings{}).Map() {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Live is a Settings value shared between the shell and the alert effect.
// It is safe for concurrent use.
type Live struct {
	mu sync.RWMutex
	s  Settings
}

// NewLive wraps s.
func NewLive(s Settings) *Live {
	return &Live{s: s}
}

// Get returns a copy of the current settings.
func (l *Live) Get() Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.s
}

// Update applies fn to the settings under the lock.
func (l *Live) Update(fn func(*Settings) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.s
	if err := fn(&s); err != nil {
		return err
	}
	l.s = s
	return nil
}

// SoundEnabled reports whether audible alerts are on.
func (l *Live) SoundEnabled() bool {
	return l.Get().Sound
}

// HapticsEnabled reports whether haptic alerts are on.
func (l *Live) HapticsEnabled() bool {
	return l.Get().Haptics
}
