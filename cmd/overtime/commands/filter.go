package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/overtime-timer/overtime-go/pkg/log"
)

// RunFilter copies the events in path matching filter to a new CBOR log
// at output. It returns the number of events written.
func RunFilter(path string, filter log.Filter, output string) (int, error) {
	if output == "" {
		return 0, errors.New("output file required")
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	writer, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer writer.Close()

	n := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, fmt.Errorf("failed to read event: %w", err)
		}
		writer.Log(event)
		n++
	}
	return n, nil
}
