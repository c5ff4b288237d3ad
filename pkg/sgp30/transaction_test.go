package sgp30

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/airsense-protocol/sgp30-go/pkg/bus"
	"github.com/airsense-protocol/sgp30-go/pkg/bus/bustest"
	"github.com/airsense-protocol/sgp30-go/pkg/bus/mocks"
	"github.com/airsense-protocol/sgp30-go/pkg/command"
	"github.com/airsense-protocol/sgp30-go/pkg/trace"
	"github.com/airsense-protocol/sgp30-go/pkg/wire"
)

func TestExecuteArgumentCount(t *testing.T) {
	b := bustest.New()
	s := openReadySession(t, b)
	writesBefore := len(b.Writes())

	_, err := s.execute(command.SetBaseline, []uint16{0xBEEF})
	if !errors.Is(err, ErrArgumentCount) {
		t.Fatalf("expected ErrArgumentCount, got %v", err)
	}

	var acErr *ArgumentCountError
	if !errors.As(err, &acErr) {
		t.Fatalf("error is not *ArgumentCountError: %v", err)
	}
	if acErr.Want != 2 || acErr.Got != 1 {
		t.Errorf("argument count error = %+v", acErr)
	}

	// Precondition failures never reach the bus.
	if len(b.Writes()) != writesBefore {
		t.Error("rejected command reached the bus")
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	b := bustest.New()
	s := openReadySession(t, b)

	_, err := s.execute(command.Command(99), nil)
	if !errors.Is(err, command.ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

// A checksum failure mid-transaction must release the lock and leave the
// session usable for the next transaction.
func TestChecksumFailureReleasesLock(t *testing.T) {
	b := bustest.New()
	s := openReadySession(t, b)

	corrupted := wire.EncodeWords([]uint16{450, 12})
	corrupted[5] ^= 0x80
	b.QueueResponse(corrupted)

	if _, err := s.MeasureAirQuality(); !errors.Is(err, wire.ErrChecksumMismatch) {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
	if !s.Ready() {
		t.Error("session left ready=false by a measurement failure")
	}

	// The next transaction must proceed normally.
	b.QueueResponse(wire.EncodeWords([]uint16{451, 13}))
	aq, err := s.MeasureAirQuality()
	if err != nil {
		t.Fatalf("measurement after checksum failure failed: %v", err)
	}
	if aq.CO2Equivalent != 451 {
		t.Errorf("reading = %+v", aq)
	}
}

func TestBusErrorPropagates(t *testing.T) {
	b := bustest.New()
	s := openReadySession(t, b)

	busErr := errors.New("EREMOTEIO")
	b.FailWrites(busErr)

	if _, err := s.MeasureAirQuality(); !errors.Is(err, busErr) {
		t.Fatalf("transport error not propagated: %v", err)
	}

	// No retry: exactly the three open writes happened, nothing more.
	if writes := b.Writes(); len(writes) != 3 {
		t.Errorf("%d writes recorded, want 3 (no retries)", len(writes))
	}
}

// N concurrent measurements against one session must produce N complete,
// correctly framed transactions with no interleaved bytes.
func TestConcurrentMeasurementsSerialize(t *testing.T) {
	const callers = 8

	b := bustest.New()
	s := openReadySession(t, b)
	for i := 0; i < callers; i++ {
		b.QueueResponse(wire.EncodeWords([]uint16{uint16(401 + i), uint16(i)}))
	}

	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.MeasureAirQuality(); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent measurement failed: %v", err)
	}

	// Skip the five ops of the open sequence (3 writes, 2 reads).
	ops := b.Ops()[5:]
	if len(ops) != 2*callers {
		t.Fatalf("recorded %d ops, want %d", len(ops), 2*callers)
	}
	for i := 0; i < len(ops); i += 2 {
		w, r := ops[i], ops[i+1]
		if w.Kind != bustest.OpWrite || r.Kind != bustest.OpRead {
			t.Fatalf("transaction %d not write-then-read: %v then %v", i/2, w.Kind, r.Kind)
		}
		if !bytes.Equal(w.Data, []byte{0x20, 0x08}) {
			t.Errorf("transaction %d wrote % X, want complete 20 08 frame", i/2, w.Data)
		}
		if _, err := wire.DecodeWords(r.Data, 2); err != nil {
			t.Errorf("transaction %d read was not a complete framed response: %v", i/2, err)
		}
	}
}

// The feature set gate must reject without touching the bus; the mock has
// no Write expectation beyond the identification sequence, so a stray
// write fails the test.
func TestFeatureGateZeroBusWrites(t *testing.T) {
	m := mocks.NewMockBus(t)
	m.EXPECT().Write(DefaultAddr, []byte{0x36, 0x82}).Return(nil).Once()
	m.EXPECT().Read(DefaultAddr, 9).Return(wire.EncodeWords(testSerial), nil).Once()
	m.EXPECT().Write(DefaultAddr, []byte{0x20, 0x2F}).Return(nil).Once()
	m.EXPECT().Read(DefaultAddr, 3).Return(wire.EncodeWords([]uint16{0x0040}), nil).Once()
	m.EXPECT().Close().Return(nil).Once()

	s := NewSession(Config{
		Bus: "mock",
		OpenBus: func(string) (bus.Bus, error) {
			return m, nil
		},
	})

	if err := s.Open(); !errors.Is(err, ErrUnsupportedFeatureSet) {
		t.Fatalf("expected ErrUnsupportedFeatureSet, got %v", err)
	}
}

func TestTransactionTraceEvents(t *testing.T) {
	tracer := &recordingTracer{}
	b := bustest.New()
	queueOpenSequence(b, testFeatureRaw)

	s := NewSession(Config{
		Bus:    "test",
		Tracer: tracer,
		OpenBus: func(string) (bus.Bus, error) {
			return b, nil
		},
	})
	if err := s.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	b.QueueResponse(wire.EncodeWords([]uint16{450, 12}))
	if _, err := s.MeasureAirQuality(); err != nil {
		t.Fatalf("MeasureAirQuality failed: %v", err)
	}

	events := tracer.snapshot()

	// Open: 2 frames for serial, 2 for feature version, 1 for init, then
	// the ready state change. Measurement: 2 more frames.
	var frames, states int
	for _, e := range events {
		switch e.Category {
		case trace.CategoryFrame:
			frames++
		case trace.CategoryState:
			states++
		case trace.CategoryError:
			t.Errorf("unexpected error event: %s", e.Error)
		}
		if e.SessionID == "" {
			t.Error("event missing session ID")
		}
	}
	if frames != 7 {
		t.Errorf("recorded %d frame events, want 7", frames)
	}
	if states != 1 {
		t.Errorf("recorded %d state events, want 1", states)
	}

	last := events[len(events)-1]
	if last.Direction != trace.DirectionIn || last.Command != "measure_air_quality" {
		t.Errorf("last event = %+v", last)
	}
	if len(last.Words) != 2 || last.Words[0] != 450 || last.Words[1] != 12 {
		t.Errorf("last event words = %v", last.Words)
	}
}

// recordingTracer collects events for assertions.
type recordingTracer struct {
	mu     sync.Mutex
	events []trace.Event
}

func (r *recordingTracer) Log(event trace.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingTracer) snapshot() []trace.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]trace.Event(nil), r.events...)
}
