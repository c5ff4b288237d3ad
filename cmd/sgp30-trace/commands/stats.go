package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/airsense-protocol/sgp30-go/pkg/trace"
)

// Stats summarizes a trace file: event counts per category and command,
// bytes in each direction, and the covered time range.
func Stats(w io.Writer, path string) error {
	reader, err := trace.NewReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	var (
		total      int
		errorCount int
		stateCount int
		bytesIn    int
		bytesOut   int
		first      time.Time
		last       time.Time
		sessions   = map[string]bool{}
		byCommand  = map[string]int{}
	)

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to decode event: %w", err)
		}

		total++
		if first.IsZero() || event.Timestamp.Before(first) {
			first = event.Timestamp
		}
		if event.Timestamp.After(last) {
			last = event.Timestamp
		}
		if event.SessionID != "" {
			sessions[event.SessionID] = true
		}

		switch event.Category {
		case trace.CategoryFrame:
			if event.Command != "" {
				byCommand[event.Command]++
			}
			if event.Direction == trace.DirectionIn {
				bytesIn += len(event.Frame)
			} else {
				bytesOut += len(event.Frame)
			}
		case trace.CategoryState:
			stateCount++
		case trace.CategoryError:
			errorCount++
		}
	}

	fmt.Fprintf(w, "Events:        %d\n", total)
	fmt.Fprintf(w, "Sessions:      %d\n", len(sessions))
	fmt.Fprintf(w, "State changes: %d\n", stateCount)
	fmt.Fprintf(w, "Errors:        %d\n", errorCount)
	fmt.Fprintf(w, "Bytes written: %d\n", bytesOut)
	fmt.Fprintf(w, "Bytes read:    %d\n", bytesIn)
	if !first.IsZero() {
		fmt.Fprintf(w, "Time range:    %s .. %s (%s)\n",
			first.UTC().Format(time.RFC3339Nano),
			last.UTC().Format(time.RFC3339Nano),
			last.Sub(first).Round(time.Millisecond))
	}

	if len(byCommand) > 0 {
		fmt.Fprintln(w, "\nFrames per command:")
		names := make([]string, 0, len(byCommand))
		for name := range byCommand {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %-24s %d\n", name, byCommand[name])
		}
	}

	return nil
}
