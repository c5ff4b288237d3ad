package trace

import (
	"bytes"
	"testing"
	"time"
)

func TestEventRoundTrip(t *testing.T) {
	event := Event{
		Timestamp: time.Now().UTC(),
		SessionID: "0f2c7f9e-97a8-4a3a-b2cf-7d9e2f6f4a11",
		Direction: DirectionOut,
		Category:  CategoryFrame,
		BusAddr:   0x58,
		Command:   "measure_air_quality",
		Frame:     []byte{0x20, 0x08},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.SessionID != event.SessionID {
		t.Errorf("SessionID: got %q, want %q", decoded.SessionID, event.SessionID)
	}
	if decoded.Direction != event.Direction {
		t.Errorf("Direction: got %v, want %v", decoded.Direction, event.Direction)
	}
	if decoded.Category != event.Category {
		t.Errorf("Category: got %v, want %v", decoded.Category, event.Category)
	}
	if decoded.BusAddr != event.BusAddr {
		t.Errorf("BusAddr: got 0x%02X, want 0x%02X", decoded.BusAddr, event.BusAddr)
	}
	if decoded.Command != event.Command {
		t.Errorf("Command: got %q, want %q", decoded.Command, event.Command)
	}
	if !bytes.Equal(decoded.Frame, event.Frame) {
		t.Errorf("Frame: got % X, want % X", decoded.Frame, event.Frame)
	}
	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, event.Timestamp)
	}
}

func TestEventRoundTripWords(t *testing.T) {
	event := Event{
		Timestamp: time.Now().UTC(),
		SessionID: "s",
		Direction: DirectionIn,
		Category:  CategoryFrame,
		Command:   "get_baseline",
		Frame:     []byte{0xBE, 0xEF, 0x92, 0xAB, 0xCD, 0x6F},
		Words:     []uint16{0xBEEF, 0xABCD},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if len(decoded.Words) != 2 || decoded.Words[0] != 0xBEEF || decoded.Words[1] != 0xABCD {
		t.Errorf("Words: got %v, want [48879 43981]", decoded.Words)
	}
}

func TestDecodeEventGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xFF, 0x00, 0x13}); err == nil {
		t.Error("expected error decoding garbage bytes")
	}
}
