package trace

import "time"

// Event represents one traced occurrence on a session.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the session (UUID, assigned at Open).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates byte flow relative to the host.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// BusAddr is the device address the transaction targeted.
	BusAddr uint16 `cbor:"5,keyasint,omitempty"`

	// Command is the protocol command name, when the event belongs to a
	// command transaction.
	Command string `cbor:"6,keyasint,omitempty"`

	// Frame is the raw byte sequence written to or read from the bus.
	Frame []byte `cbor:"7,keyasint,omitempty"`

	// Words are the decoded 16-bit values, populated on verified reads
	// and on parameterized writes.
	Words []uint16 `cbor:"8,keyasint,omitempty"`

	// OldState / NewState are populated on state-change events.
	OldState string `cbor:"9,keyasint,omitempty"`
	NewState string `cbor:"10,keyasint,omitempty"`

	// Error is the error text, populated on error events.
	Error string `cbor:"11,keyasint,omitempty"`
}

// Direction indicates the direction of byte flow.
type Direction uint8

const (
	// DirectionIn indicates bytes read from the device.
	DirectionIn Direction = 0
	// DirectionOut indicates bytes written to the device.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryFrame indicates raw bytes crossing the bus.
	CategoryFrame Category = 0
	// CategoryState indicates a session state change.
	CategoryState Category = 1
	// CategoryError indicates a failure at any layer.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryFrame:
		return "FRAME"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
