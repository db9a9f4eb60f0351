// Package log provides a structured event log of timer lifecycle changes.
//
// This package defines the Logger interface and Event type for recording
// what happened to each timer: creation, edits, pause/resume, completion
// notifications and deletion. It is separate from operational logging
// (slog) - the event log is a complete machine-readable history that the
// history command can replay and filter.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For persistent history: write to binary file
//	cfg.EventLogger, _ = log.NewFileLogger("~/.overtime/events.olog")
//
//	// Both: use MultiLogger
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys and use
// the .olog extension.
package log
