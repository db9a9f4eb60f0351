package persistence

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/overtime-timer/overtime-go/pkg/timer"
)

// ErrNotArray is returned by DecodeTimers when the document is not a
// JSON array.
var ErrNotArray = errors.New("stored timers are not an array")

// record is the stored shape of a timer. Every field is optional on
// read; older versions stored referenceTime instead of targetTime.
type record struct {
	ID              string  `json:"id,omitempty"`
	Title           *string `json:"title,omitempty"`
	TargetTime      int64   `json:"targetTime,omitempty"`
	ReferenceTime   string  `json:"referenceTime,omitempty"`
	IsRunning       *bool   `json:"isRunning,omitempty"`
	PausedRemaining *int64  `json:"pausedRemaining"`
	Notified        *bool   `json:"notified,omitempty"`
}

func fromTimer(t timer.Timer) record {
	title := t.Title
	running := t.IsRunning
	notified := t.Notified
	r := record{
		ID:         t.ID,
		Title:      &title,
		TargetTime: t.TargetTime,
		IsRunning:  &running,
		Notified:   &notified,
	}
	if t.PausedRemaining != nil {
		r.PausedRemaining = timer.Millis(*t.PausedRemaining)
	}
	return r
}

func (r record) toTimer(now int64) *timer.Timer {
	t := &timer.Timer{
		ID:              r.ID,
		Title:           timer.FallbackTitle,
		TargetTime:      r.TargetTime,
		PausedRemaining: r.PausedRemaining,
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if r.Title != nil {
		t.Title = *r.Title
	}
	if t.TargetTime == 0 {
		t.TargetTime = parseReferenceTime(r.ReferenceTime, now)
	}
	if r.IsRunning != nil {
		t.IsRunning = *r.IsRunning
	}
	if r.Notified != nil {
		t.Notified = *r.Notified
	}
	t.Normalize()
	return t
}

func parseReferenceTime(s string, now int64) int64 {
	if s == "" {
		return now
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts.UnixMilli()
	}
	// Without an offset the stamp is local wall-clock time.
	for _, layout := range []string{"2006-01-02T15:04:05.000", "2006-01-02T15:04:05"} {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts.UnixMilli()
		}
	}
	return now
}

// EncodeTimers serializes timers as a JSON array.
func EncodeTimers(ts []timer.Timer) ([]byte, error) {
	records := make([]record, len(ts))
	for i, t := range ts {
		records[i] = fromTimer(t)
	}
	return json.Marshal(records)
}

// DecodeTimers parses a stored document, migrating older records. now
// is the fallback target for records without any time.
func DecodeTimers(data []byte, now int64) ([]*timer.Timer, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if _, ok := raw.([]any); !ok {
		return nil, ErrNotArray
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	ts := make([]*timer.Timer, len(records))
	for i, r := range records {
		ts[i] = r.toTimer(now)
	}
	return ts, nil
}

// LoadTimers reads the collection from store.
//
// A missing document yields no timers. A document that cannot be decoded
// is logged, cleared from the store and treated as empty. Read errors are
// logged and leave the store untouched.
func LoadTimers(store Store, now int64, logger *slog.Logger) []*timer.Timer {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := store.Load()
	if err != nil {
		logger.Warn("failed to read stored timers", "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	ts, err := DecodeTimers(data, now)
	if err != nil {
		logger.Warn("discarding malformed stored timers", "key", StorageKey, "error", err)
		if err := store.Clear(); err != nil {
			logger.Warn("failed to clear stored timers", "error", err)
		}
		return nil
	}
	return ts
}

// SaveTimers writes the collection to store.
func SaveTimers(store Store, ts []timer.Timer) error {
	data, err := EncodeTimers(ts)
	if err != nil {
		return err
	}
	return store.Save(data)
}
