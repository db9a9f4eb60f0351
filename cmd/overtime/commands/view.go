// Package commands implements the overtime history commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/overtime-timer/overtime-go/pkg/log"
	"github.com/overtime-timer/overtime-go/pkg/timer"
)

// ParseKindFlag parses an event kind from a command-line flag
// (case-insensitive).
func ParseKindFlag(s string) (log.Kind, error) {
	k, ok := log.ParseKind(s)
	if !ok {
		names := make([]string, 0, 9)
		for k := log.KindCreated; k <= log.KindLoaded; k++ {
			names = append(names, strings.ToLower(k.String()))
		}
		return 0, fmt.Errorf("invalid kind: %s (must be one of %s)", s, strings.Join(names, ", "))
	}
	return k, nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [timer:id] KIND #index/count
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z")
	fmt.Fprintf(w, "%s [timer:%s] %-8s #%d", ts, shortenID(event.TimerID), event.Kind.String(), event.Index+1)
	if event.Count > 0 {
		fmt.Fprintf(w, "/%d", event.Count)
	}
	fmt.Fprintln(w)

	if event.Title != "" {
		fmt.Fprintf(w, "  Title:  %s\n", event.Title)
	}
	if event.PausedRemaining != nil {
		fmt.Fprintf(w, "  Paused: %s remaining\n", timer.FromMillis(*event.PausedRemaining).String())
	} else if event.TargetTime != 0 {
		fmt.Fprintf(w, "  Target: %s\n", time.UnixMilli(event.TargetTime).UTC().Format(time.RFC3339))
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of a timer ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// RunView prints the events in path matching filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
