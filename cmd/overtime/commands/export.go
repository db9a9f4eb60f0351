package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/overtime-timer/overtime-go/pkg/log"
)

// jsonEvent is the JSONL export shape.
type jsonEvent struct {
	Timestamp       time.Time `json:"timestamp"`
	Kind            string    `json:"kind"`
	TimerID         string    `json:"timerId"`
	Title           string    `json:"title,omitempty"`
	TargetTime      int64     `json:"targetTime,omitempty"`
	PausedRemaining *int64    `json:"pausedRemaining,omitempty"`
	Index           int       `json:"index"`
	Count           int       `json:"count,omitempty"`
}

// RunExport exports the events in path matching filter to output
// (stdout when empty) in the given format.
func RunExport(path string, filter log.Filter, format, output string) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return export(reader, format, w)
}

func export(reader *log.Reader, format string, w io.Writer) error {
	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		out := jsonEvent{
			Timestamp:       event.Timestamp.UTC(),
			Kind:            event.Kind.String(),
			TimerID:         event.TimerID,
			Title:           event.Title,
			TargetTime:      event.TargetTime,
			PausedRemaining: event.PausedRemaining,
			Index:           event.Index,
			Count:           event.Count,
		}
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "kind", "timer_id", "title", "target_time", "paused_remaining", "index", "count"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		paused := ""
		if event.PausedRemaining != nil {
			paused = strconv.FormatInt(*event.PausedRemaining, 10)
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z"),
			event.Kind.String(),
			event.TimerID,
			event.Title,
			strconv.FormatInt(event.TargetTime, 10),
			paused,
			strconv.Itoa(event.Index),
			strconv.Itoa(event.Count),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
