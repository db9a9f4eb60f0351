package log

import (
	"strings"
	"time"
)

// Event records one change to a timer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// Kind classifies the change.
	Kind Kind `cbor:"2,keyasint"`

	// TimerID identifies the timer (UUID).
	TimerID string `cbor:"3,keyasint"`

	// Title is the timer title after the change.
	Title string `cbor:"4,keyasint,omitempty"`

	// TargetTime is the target instant (epoch ms) after the change.
	TargetTime int64 `cbor:"5,keyasint,omitempty"`

	// PausedRemaining is the frozen remaining time (ms) for paused timers.
	PausedRemaining *int64 `cbor:"6,keyasint,omitempty"`

	// Index is the position of the timer in the collection.
	Index int `cbor:"7,keyasint"`

	// Count is the collection size after the change.
	Count int `cbor:"8,keyasint,omitempty"`
}

// Kind classifies timer events.
type Kind uint8

const (
	// KindCreated indicates a new timer was added.
	KindCreated Kind = 0
	// KindDeleted indicates a timer was removed.
	KindDeleted Kind = 1
	// KindSelected indicates the current selection moved.
	KindSelected Kind = 2
	// KindPaused indicates a running timer was paused.
	KindPaused Kind = 3
	// KindResumed indicates a paused timer was resumed.
	KindResumed Kind = 4
	// KindEdited indicates the target and title were changed.
	KindEdited Kind = 5
	// KindRenamed indicates only the title was changed.
	KindRenamed Kind = 6
	// KindNotified indicates the timer reached its target.
	KindNotified Kind = 7
	// KindLoaded indicates the timer was restored from storage.
	KindLoaded Kind = 8
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCreated:
		return "CREATED"
	case KindDeleted:
		return "DELETED"
	case KindSelected:
		return "SELECTED"
	case KindPaused:
		return "PAUSED"
	case KindResumed:
		return "RESUMED"
	case KindEdited:
		return "EDITED"
	case KindRenamed:
		return "RENAMED"
	case KindNotified:
		return "NOTIFIED"
	case KindLoaded:
		return "LOADED"
	default:
		return "UNKNOWN"
	}
}

// ParseKind parses a kind name (case-insensitive).
func ParseKind(s string) (Kind, bool) {
	for k := KindCreated; k <= KindLoaded; k++ {
		if strings.EqualFold(s, k.String()) {
			return k, true
		}
	}
	return 0, false
}
