// Package bustest provides scripted, recording doubles for the bus
// transport, used to test the protocol engine without hardware.
package bustest

import (
	"fmt"
	"sync"
)

// OpKind distinguishes recorded bus operations.
type OpKind uint8

const (
	// OpWrite is a recorded Write call.
	OpWrite OpKind = iota

	// OpRead is a recorded Read call.
	OpRead
)

// Op is one recorded bus transaction.
type Op struct {
	// Kind is the operation type.
	Kind OpKind

	// Addr is the device address the operation targeted.
	Addr uint16

	// Data is the full byte sequence written, or the bytes returned to
	// the reader.
	Data []byte
}

// Bus is a scripted in-memory transport. Writes are recorded verbatim;
// reads are served from a queue of canned responses in FIFO order. Bus is
// safe for concurrent use so serialization properties of the layer above
// can be asserted against the recorded operation log.
type Bus struct {
	mu        sync.Mutex
	ops       []Op
	responses [][]byte
	writeErr  error
	readErr   error
	closed    bool
	closes    int
}

// New creates an empty scripted bus.
func New() *Bus {
	return &Bus{}
}

// QueueResponse appends a canned response served by the next unserved
// Read call. The read length must match the queued response exactly.
func (b *Bus) QueueResponse(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses = append(b.responses, data)
}

// FailWrites makes every subsequent Write call return err.
func (b *Bus) FailWrites(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeErr = err
}

// FailReads makes every subsequent Read call return err.
func (b *Bus) FailReads(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readErr = err
}

// Write records the call and consumes a scripted write error if set.
func (b *Bus) Write(addr uint16, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return b.writeErr
	}
	cp := append([]byte(nil), data...)
	b.ops = append(b.ops, Op{Kind: OpWrite, Addr: addr, Data: cp})
	return nil
}

// Read records the call and serves the next queued response.
func (b *Bus) Read(addr uint16, length int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.readErr != nil {
		return nil, b.readErr
	}
	if len(b.responses) == 0 {
		return nil, fmt.Errorf("bustest: unexpected read of %d bytes from 0x%02X", length, addr)
	}
	resp := b.responses[0]
	b.responses = b.responses[1:]
	if len(resp) != length {
		return nil, fmt.Errorf("bustest: read length %d does not match queued response length %d", length, len(resp))
	}
	b.ops = append(b.ops, Op{Kind: OpRead, Addr: addr, Data: resp})
	return append([]byte(nil), resp...), nil
}

// Close records the call. It never fails and is idempotent.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.closes++
	return nil
}

// Ops returns a copy of the recorded operation log in execution order.
func (b *Bus) Ops() []Op {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Op(nil), b.ops...)
}

// Writes returns only the recorded write operations, in order.
func (b *Bus) Writes() []Op {
	b.mu.Lock()
	defer b.mu.Unlock()
	var writes []Op
	for _, op := range b.ops {
		if op.Kind == OpWrite {
			writes = append(writes, op)
		}
	}
	return writes
}

// Closed reports whether Close has been called at least once.
func (b *Bus) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// CloseCount returns how many times Close has been called.
func (b *Bus) CloseCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closes
}
