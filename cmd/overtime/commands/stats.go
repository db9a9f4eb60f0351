package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/overtime-timer/overtime-go/pkg/log"
)

// Stats holds aggregate statistics about an event log.
type Stats struct {
	TotalEvents  int
	EventsByKind map[log.Kind]int
	Timers       map[string]*TimerStats
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// TimerStats holds statistics for a single timer.
type TimerStats struct {
	Title     string
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Notified  int
	Deleted   bool
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats, err := collectStats(reader)
	if err != nil {
		return err
	}

	printStats(w, stats)
	return nil
}

func collectStats(reader *log.Reader) (*Stats, error) {
	stats := &Stats{
		EventsByKind: make(map[log.Kind]int),
		Timers:       make(map[string]*TimerStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		ts, ok := stats.Timers[event.TimerID]
		if !ok {
			ts = &TimerStats{FirstSeen: event.Timestamp}
			stats.Timers[event.TimerID] = ts
		}
		ts.Events++
		ts.LastSeen = event.Timestamp
		if event.Title != "" {
			ts.Title = event.Title
		}
		switch event.Kind {
		case log.KindNotified:
			ts.Notified++
		case log.KindDeleted:
			ts.Deleted = true
		}
	}

	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Timer Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.UTC().Format(time.RFC3339),
			stats.TimeRange.End.UTC().Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for k := log.KindCreated; k <= log.KindLoaded; k++ {
		if count := stats.EventsByKind[k]; count > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", k.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Timers: %d\n", len(stats.Timers))
	if len(stats.Timers) == 0 {
		return
	}

	type timerInfo struct {
		id    string
		stats *TimerStats
	}
	timers := make([]timerInfo, 0, len(stats.Timers))
	for id, ts := range stats.Timers {
		timers = append(timers, timerInfo{id, ts})
	}
	sort.Slice(timers, func(i, j int) bool {
		if timers[i].stats.FirstSeen.Equal(timers[j].stats.FirstSeen) {
			return timers[i].id < timers[j].id
		}
		return timers[i].stats.FirstSeen.Before(timers[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, t := range timers {
		fmt.Fprintf(w, "  [%s] %s: %d events", shortenID(t.id), t.stats.Title, t.stats.Events)
		if t.stats.Notified > 0 {
			fmt.Fprintf(w, ", notified %dx", t.stats.Notified)
		}
		if t.stats.Deleted {
			fmt.Fprint(w, ", deleted")
		}
		fmt.Fprintln(w)
	}
}
