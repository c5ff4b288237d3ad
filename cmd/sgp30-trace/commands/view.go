// Package commands implements the sgp30-trace CLI commands.
package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/airsense-protocol/sgp30-go/pkg/trace"
)

// View writes a human-readable rendering of every matching event to w.
func View(w io.Writer, path string, filter trace.Filter) error {
	reader, err := trace.NewFilteredReader(path, filter)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event trace.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] %-3s %s", ts, shortenSessionID(event.SessionID), event.Direction, event.Category)
	if event.Command != "" {
		fmt.Fprintf(w, " %s", event.Command)
	}
	fmt.Fprintln(w)

	switch event.Category {
	case trace.CategoryFrame:
		if len(event.Frame) > 0 {
			fmt.Fprintf(w, "  Frame: %s (%d bytes)\n", hex.EncodeToString(event.Frame), len(event.Frame))
		}
		if len(event.Words) > 0 {
			fmt.Fprintf(w, "  Words:")
			for _, word := range event.Words {
				fmt.Fprintf(w, " 0x%04X", word)
			}
			fmt.Fprintln(w)
		}
	case trace.CategoryState:
		fmt.Fprintf(w, "  State: %s -> %s\n", event.OldState, event.NewState)
	case trace.CategoryError:
		fmt.Fprintf(w, "  Error: %s\n", event.Error)
	}

	fmt.Fprintln(w)
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
