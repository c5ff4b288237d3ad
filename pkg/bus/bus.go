package bus

import "errors"

// ErrClosed indicates an operation on a closed bus handle.
var ErrClosed = errors.New("bus is closed")

// Bus is the raw byte-level transport the protocol engine drives.
// Implemented by the periph-backed bus returned from Open and by the
// test doubles in bustest and mocks.
type Bus interface {
	// Write writes data to the device at addr as one atomic bus
	// transaction.
	Write(addr uint16, data []byte) error

	// Read reads exactly length bytes from the device at addr as one
	// atomic bus transaction.
	Read(addr uint16, length int) ([]byte, error)

	// Close releases the bus handle. Close is idempotent.
	Close() error
}
