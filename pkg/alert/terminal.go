package alert

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned when a terminal effect targets a non-terminal.
var ErrNotTerminal = errors.New("output is not a terminal")

// ANSI sequences for the terminal effects.
const (
	bel        = "\a"
	reverseOn  = "\x1b[?5h"
	reverseOff = "\x1b[?5l"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Bell rings the terminal bell.
type Bell struct {
	mu    sync.Mutex
	w     io.Writer
	force bool
}

// NewBell creates a Bell writing to w. Unless force is set, the bell is
// only rung when w is a terminal.
func NewBell(w io.Writer, force bool) *Bell {
	return &Bell{w: w, force: force}
}

// Play writes BEL.
func (b *Bell) Play() error {
	if !b.force && !IsTerminal(b.w) {
		return ErrNotTerminal
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, bel)
	return err
}

// Flash is the terminal stand-in for vibration: it toggles reverse video
// for each "on" segment of the pattern.
type Flash struct {
	mu    sync.Mutex
	w     io.Writer
	force bool
	sleep func(time.Duration)
}

// NewFlash creates a Flash writing to w. Unless force is set, it only
// flashes when w is a terminal.
func NewFlash(w io.Writer, force bool) *Flash {
	return &Flash{w: w, force: force, sleep: time.Sleep}
}

// Vibrate plays pattern as screen flashes.
func (f *Flash) Vibrate(pattern []time.Duration) error {
	if !f.force && !IsTerminal(f.w) {
		return ErrNotTerminal
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, d := range pattern {
		if i%2 == 0 {
			if _, err := io.WriteString(f.w, reverseOn); err != nil {
				return err
			}
			f.sleep(d)
			if _, err := io.WriteString(f.w, reverseOff); err != nil {
				return err
			}
			continue
		}
		f.sleep(d)
	}
	return nil
}

// Compile-time interface satisfaction checks.
var (
	_ Sounder  = (*Bell)(nil)
	_ Vibrator = (*Flash)(nil)
)
