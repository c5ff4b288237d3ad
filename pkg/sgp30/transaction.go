package sgp30

import (
	"fmt"
	"time"

	"github.com/airsense-protocol/sgp30-go/pkg/command"
	"github.com/airsense-protocol/sgp30-go/pkg/trace"
	"github.com/airsense-protocol/sgp30-go/pkg/wire"
)

// execute runs one command transaction: feature set gate, parameter count
// check, then write / settle / optional read under the session lock.
//
// Both preconditions are enforced before any bus I/O, so a rejection never
// leaves the device mid-command. The returned words are the verified
// response, or nil for commands without a response.
func (s *Session) execute(cmd command.Command, params []uint16) ([]uint16, error) {
	desc, err := command.Lookup(cmd)
	if err != nil {
		return nil, err
	}

	if desc.Gated {
		// Exact match of masked values: a device reporting feature bits
		// beyond what the command requires is still rejected. This
		// mirrors the vendor's documented check.
		if want := command.MaskFeatureSet(desc.RequiredFeatureSet); s.featureSet != want {
			gateErr := &FeatureSetError{Command: cmd, Required: want, Reported: s.featureSet}
			s.traceError(cmd.String(), gateErr)
			return nil, gateErr
		}
	}

	if len(params) != desc.ParameterWords {
		countErr := &ArgumentCountError{Command: cmd, Want: desc.ParameterWords, Got: len(params)}
		s.traceError(cmd.String(), countErr)
		return nil, countErr
	}

	frame := make([]byte, 0, 2+wire.WordSize*len(params))
	frame = append(frame, desc.Opcode[0], desc.Opcode[1])
	if len(params) > 0 {
		frame = append(frame, wire.EncodeWords(params)...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.bus.Write(s.addr, frame); err != nil {
		s.traceError(cmd.String(), err)
		return nil, fmt.Errorf("%s: bus write failed: %w", cmd, err)
	}
	s.traceFrame(cmd, trace.DirectionOut, frame, params)

	// The settle delay is spent holding the lock: the device cannot accept
	// another command during its internal processing window, so a second
	// transaction must not reach the bus until the window has elapsed.
	time.Sleep(desc.SettleTime)

	if desc.ResponseWords == 0 {
		return nil, nil
	}

	raw, err := s.bus.Read(s.addr, wire.WordSize*desc.ResponseWords)
	if err != nil {
		s.traceError(cmd.String(), err)
		return nil, fmt.Errorf("%s: bus read failed: %w", cmd, err)
	}

	words, err := wire.DecodeWords(raw, desc.ResponseWords)
	if err != nil {
		s.traceError(cmd.String(), err)
		return nil, fmt.Errorf("%s: %w", cmd, err)
	}
	s.traceFrame(cmd, trace.DirectionIn, raw, words)

	return words, nil
}

// traceFrame emits a frame event for one direction of a transaction.
func (s *Session) traceFrame(cmd command.Command, dir trace.Direction, frame []byte, words []uint16) {
	s.tracer.Log(trace.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		Direction: dir,
		Category:  trace.CategoryFrame,
		BusAddr:   s.addr,
		Command:   cmd.String(),
		Frame:     frame,
		Words:     words,
	})
}
