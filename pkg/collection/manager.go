package collection

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/overtime-timer/overtime-go/pkg/clock"
	"github.com/overtime-timer/overtime-go/pkg/log"
	"github.com/overtime-timer/overtime-go/pkg/notifier"
	"github.com/overtime-timer/overtime-go/pkg/timer"
)

// Collection errors.
var (
	ErrIndexOutOfRange = errors.New("timer index out of range")
	ErrTimerNotFound   = errors.New("timer not found")
)

// Config configures a Manager.
type Config struct {
	// Clock is the time source. Defaults to clock.System.
	Clock clock.Clock

	// Notifier runs completion scans on Tick. Defaults to a silent notifier.
	Notifier *notifier.Notifier

	// Logger receives timer events. Defaults to log.NoopLogger.
	Logger log.Logger

	// OnChange is called with a snapshot after every mutation. Calls are
	// serialized, and a snapshot older than one already delivered is
	// dropped.
	OnChange func([]timer.Timer)
}

// Frame is the result of one tick.
type Frame struct {
	// Now is the tick instant (epoch ms).
	Now int64

	// Timer is a copy of the current timer.
	Timer timer.Timer

	// Index is the current selection.
	Index int

	// Count is the collection size.
	Count int

	// Display is the calculated display of the current timer.
	Display timer.Display

	// Notified holds copies of the timers that completed during this tick.
	Notified []timer.Timer
}

// Manager owns the timer collection.
type Manager struct {
	mu sync.Mutex

	timers  []*timer.Timer
	current int

	clock    clock.Clock
	notifier *notifier.Notifier
	logger   log.Logger
	onChange func([]timer.Timer)

	// seq numbers snapshots under mu. saved is the last seq handed to
	// onChange, guarded by saveMu.
	seq    uint64
	saveMu sync.Mutex
	saved  uint64
}

// change is a numbered snapshot of the collection.
type change struct {
	seq    uint64
	timers []timer.Timer
}

// New creates a Manager holding initial (see Load). An empty initial list
// yields one default timer.
func New(cfg Config, initial []*timer.Timer) *Manager {
	m := &Manager{
		clock:    cfg.Clock,
		notifier: cfg.Notifier,
		logger:   log.OrNoop(cfg.Logger),
		onChange: cfg.OnChange,
	}
	if m.clock == nil {
		m.clock = clock.System
	}
	if m.notifier == nil {
		m.notifier = notifier.New(nil, m.logger)
	}

	m.mu.Lock()
	m.load(initial)
	m.mu.Unlock()

	return m
}

// Load replaces the collection. Timers failing validation after
// normalization, and duplicate IDs, are dropped. The selection resets
// to 0.
func (m *Manager) Load(ts []*timer.Timer) {
	m.mu.Lock()
	m.load(ts)
	c := m.record()
	m.mu.Unlock()

	m.changed(c)
}

func (m *Manager) load(ts []*timer.Timer) {
	now := m.nowMillis()
	seen := make(map[string]bool, len(ts))

	m.timers = m.timers[:0]
	for _, t := range ts {
		if t == nil {
			continue
		}
		t = t.Clone()
		t.Normalize()
		if t.Validate() != nil || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		m.timers = append(m.timers, t)
		m.emit(log.KindLoaded, now, len(m.timers)-1, t)
	}

	m.current = 0
	m.heal(now)
}

// Add appends a default timer and selects it.
func (m *Manager) Add() timer.Timer {
	m.mu.Lock()
	t := m.add(m.nowMillis())
	c := m.record()
	m.mu.Unlock()

	m.changed(c)
	return t
}

func (m *Manager) add(now int64) timer.Timer {
	t := timer.New(now)
	m.timers = append(m.timers, t)
	m.current = len(m.timers) - 1
	m.emit(log.KindCreated, now, m.current, t)
	return *t.Clone()
}

// heal restores the non-empty invariant.
func (m *Manager) heal(now int64) {
	if len(m.timers) == 0 {
		m.add(now)
	}
}

// Delete removes the timer at index. The selection moves to
// max(0, index-1). Deleting the last timer adds a fresh default one.
func (m *Manager) Delete(index int) error {
	m.mu.Lock()
	if err := m.checkIndex(index); err != nil {
		m.mu.Unlock()
		return err
	}
	m.delete(index)
	c := m.record()
	m.mu.Unlock()

	m.changed(c)
	return nil
}

// DeleteCurrent removes the selected timer.
func (m *Manager) DeleteCurrent() {
	m.mu.Lock()
	m.delete(m.current)
	c := m.record()
	m.mu.Unlock()

	m.changed(c)
}

func (m *Manager) delete(index int) {
	now := m.nowMillis()
	removed := m.timers[index]
	m.timers = append(m.timers[:index], m.timers[index+1:]...)
	m.current = max(0, index-1)
	m.emit(log.KindDeleted, now, index, removed)
	m.heal(now)
}

// Select moves the selection to index.
func (m *Manager) Select(index int) error {
	m.mu.Lock()
	if err := m.checkIndex(index); err != nil {
		m.mu.Unlock()
		return err
	}
	changed := m.current != index
	m.current = index
	if changed {
		m.emit(log.KindSelected, m.nowMillis(), index, m.timers[index])
	}
	m.mu.Unlock()
	return nil
}

// SelectID moves the selection to the timer with id.
func (m *Manager) SelectID(id string) error {
	index, ok := m.IndexOf(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTimerNotFound, id)
	}
	return m.Select(index)
}

// IndexOf returns the index of the timer with id.
func (m *Manager) IndexOf(id string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.timers {
		if t.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Next selects the following timer. It returns false at the end.
func (m *Manager) Next() bool {
	m.mu.Lock()
	index := m.current + 1
	m.mu.Unlock()
	return m.Select(index) == nil
}

// Prev selects the preceding timer. It returns false at the start.
func (m *Manager) Prev() bool {
	m.mu.Lock()
	index := m.current - 1
	m.mu.Unlock()
	return m.Select(index) == nil
}

// Edit re-targets the timer at index and starts it. See timer.Timer.Edit.
func (m *Manager) Edit(index int, title string, target int64) error {
	return m.mutate(index, log.KindEdited, func(t *timer.Timer, now int64) {
		t.Edit(title, target, now)
	})
}

// EditCurrent edits the selected timer.
func (m *Manager) EditCurrent(title string, target int64) error {
	return m.Edit(m.Index(), title, target)
}

// Rename changes the title of the timer at index.
func (m *Manager) Rename(index int, title string) error {
	return m.mutate(index, log.KindRenamed, func(t *timer.Timer, _ int64) {
		t.Rename(title)
	})
}

// TogglePause pauses or resumes the timer at index.
func (m *Manager) TogglePause(index int) error {
	m.mu.Lock()
	if err := m.checkIndex(index); err != nil {
		m.mu.Unlock()
		return err
	}

	now := m.nowMillis()
	t := m.timers[index]
	t.TogglePause(now)
	kind := log.KindResumed
	if !t.IsRunning {
		kind = log.KindPaused
	}
	m.emit(kind, now, index, t)

	c := m.record()
	m.mu.Unlock()

	m.changed(c)
	return nil
}

// ToggleCurrent pauses or resumes the selected timer.
func (m *Manager) ToggleCurrent() error {
	return m.TogglePause(m.Index())
}

func (m *Manager) mutate(index int, kind log.Kind, fn func(t *timer.Timer, now int64)) error {
	m.mu.Lock()
	if err := m.checkIndex(index); err != nil {
		m.mu.Unlock()
		return err
	}

	now := m.nowMillis()
	t := m.timers[index]
	fn(t, now)
	m.emit(kind, now, index, t)

	c := m.record()
	m.mu.Unlock()

	m.changed(c)
	return nil
}

// Tick runs one completion scan over all timers and calculates the display
// of the current timer. At most one alert fires per tick.
func (m *Manager) Tick() Frame {
	m.mu.Lock()
	now := m.nowMillis()
	latched := m.notifier.Latch(now, m.timers)

	cur := m.timers[m.current]
	frame := Frame{
		Now:     now,
		Timer:   *cur.Clone(),
		Index:   m.current,
		Count:   len(m.timers),
		Display: timer.Calculate(now, cur),
	}
	for _, t := range latched {
		frame.Notified = append(frame.Notified, *t.Clone())
	}

	var c change
	if len(latched) > 0 {
		c = m.record()
	}
	m.mu.Unlock()

	if len(latched) > 0 {
		m.notifier.Fire()
		m.changed(c)
	}
	return frame
}

// Current returns a copy of the selected timer and its index.
func (m *Manager) Current() (timer.Timer, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.timers[m.current].Clone(), m.current
}

// Index returns the current selection.
func (m *Manager) Index() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Len returns the number of timers.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Timers returns a copy of the collection.
func (m *Manager) Timers() []timer.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Now returns the manager clock in epoch ms.
func (m *Manager) Now() int64 {
	return m.nowMillis()
}

func (m *Manager) nowMillis() int64 {
	return clock.NowMillis(m.clock)
}

func (m *Manager) checkIndex(index int) error {
	if index < 0 || index >= len(m.timers) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(m.timers))
	}
	return nil
}

func (m *Manager) snapshot() []timer.Timer {
	out := make([]timer.Timer, len(m.timers))
	for i, t := range m.timers {
		out[i] = *t.Clone()
	}
	return out
}

// record numbers a snapshot of the current state. mu must be held.
func (m *Manager) record() change {
	m.seq++
	return change{seq: m.seq, timers: m.snapshot()}
}

// changed delivers c to onChange in seq order. A snapshot that lost the
// race to a newer one is dropped.
func (m *Manager) changed(c change) {
	if m.onChange == nil {
		return
	}
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if c.seq <= m.saved {
		return
	}
	m.saved = c.seq
	m.onChange(c.timers)
}

func (m *Manager) emit(kind log.Kind, now int64, index int, t *timer.Timer) {
	e := log.Event{
		Timestamp:  time.UnixMilli(now),
		Kind:       kind,
		TimerID:    t.ID,
		Title:      t.Title,
		TargetTime: t.TargetTime,
		Index:      index,
		Count:      len(m.timers),
	}
	if t.PausedRemaining != nil {
		e.PausedRemaining = timer.Millis(*t.PausedRemaining)
	}
	m.logger.Log(e)
}
