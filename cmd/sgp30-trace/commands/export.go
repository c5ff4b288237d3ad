package commands

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/airsense-protocol/sgp30-go/pkg/trace"
)

// jsonEvent is the JSONL export shape. Frames are hex strings so the
// output stays line-oriented and greppable.
type jsonEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Direction string    `json:"direction"`
	Category  string    `json:"category"`
	BusAddr   uint16    `json:"bus_addr,omitempty"`
	Command   string    `json:"command,omitempty"`
	Frame     string    `json:"frame,omitempty"`
	Words     []uint16  `json:"words,omitempty"`
	OldState  string    `json:"old_state,omitempty"`
	NewState  string    `json:"new_state,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Export writes every matching event to w as one JSON object per line.
func Export(w io.Writer, path string, filter trace.Filter) error {
	reader, err := trace.NewFilteredReader(path, filter)
	if err != nil {
		return err
	}
	defer reader.Close()

	enc := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode event: %w", err)
		}

		out := jsonEvent{
			Timestamp: event.Timestamp,
			SessionID: event.SessionID,
			Direction: event.Direction.String(),
			Category:  event.Category.String(),
			BusAddr:   event.BusAddr,
			Command:   event.Command,
			Frame:     hex.EncodeToString(event.Frame),
			Words:     event.Words,
			OldState:  event.OldState,
			NewState:  event.NewState,
			Error:     event.Error,
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
}
