package sgp30

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/airsense-protocol/sgp30-go/pkg/bus"
	"github.com/airsense-protocol/sgp30-go/pkg/command"
	"github.com/airsense-protocol/sgp30-go/pkg/trace"
)

// DefaultAddr is the SGP30's fixed I2C device address.
const DefaultAddr uint16 = 0x58

// Config holds session construction parameters.
type Config struct {
	// Bus is the bus reference passed to the transport opener, e.g. "1"
	// or "/dev/i2c-1".
	Bus string

	// Addr is the device address. Zero means DefaultAddr.
	Addr uint16

	// Tracer receives transaction trace events. Nil disables tracing.
	Tracer trace.Logger

	// OpenBus overrides how the bus handle is acquired. Nil means the
	// periph-backed bus.Open. Tests inject transport doubles here.
	OpenBus func(name string) (bus.Bus, error)
}

// Session is the single owning handle for one SGP30 device instance.
//
// A Session is constructed closed. Open transitions it to ready; Close
// back to closed. Measurement operations are only valid while ready and
// may be called concurrently; Open and Close assume a single logical
// owner and must not race with anything else on the same Session.
type Session struct {
	busName string
	addr    uint16
	openBus func(name string) (bus.Bus, error)
	tracer  trace.Logger

	// mu serializes every bus transaction, including the settle delay.
	mu sync.Mutex

	// Owned by the open/close caller; immutable while ready.
	bus           bus.Bus
	ready         bool
	id            string
	serial        [3]uint16
	rawFeatureSet uint16
	featureSet    uint16
}

// NewSession creates a closed session for the device at cfg.Addr on
// cfg.Bus. No I/O happens until Open.
func NewSession(cfg Config) *Session {
	addr := cfg.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	opener := cfg.OpenBus
	if opener == nil {
		opener = bus.Open
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = trace.NoopLogger{}
	}
	return &Session{
		busName: cfg.Bus,
		addr:    addr,
		openBus: opener,
		tracer:  tracer,
	}
}

// Open acquires the bus handle, identifies the device, negotiates its
// feature set, and starts the measurement engine. On any failure the
// session is left closed and the bus handle released.
//
// The device identification sequence is fixed: serial number (3 words),
// feature set version (1 word), then the parameterless init command.
func (s *Session) Open() error {
	if s.ready {
		return ErrAlreadyOpen
	}

	b, err := s.openBus(s.busName)
	if err != nil {
		return fmt.Errorf("failed to acquire bus %q: %w", s.busName, err)
	}
	s.bus = b
	s.id = uuid.NewString()

	if err := s.identify(); err != nil {
		s.traceError("", err)
		_ = s.bus.Close()
		s.bus = nil
		s.id = ""
		return err
	}

	s.ready = true
	s.traceState("closed", "ready")
	return nil
}

// identify runs the fixed open sequence against the freshly acquired bus.
func (s *Session) identify() error {
	serial, err := s.execute(command.GetSerialNumber, nil)
	if err != nil {
		return fmt.Errorf("failed to read serial number: %w", err)
	}
	copy(s.serial[:], serial)

	version, err := s.execute(command.GetFeatureSetVersion, nil)
	if err != nil {
		return fmt.Errorf("failed to read feature set version: %w", err)
	}
	s.rawFeatureSet = version[0]
	s.featureSet = command.MaskFeatureSet(version[0])

	if _, err := s.execute(command.InitAirQuality, nil); err != nil {
		return fmt.Errorf("failed to init measurement engine: %w", err)
	}
	return nil
}

// Close releases the bus handle and returns the session to the closed
// state. Close is idempotent; closing a closed session is a no-op.
func (s *Session) Close() error {
	if s.bus == nil {
		return nil
	}
	err := s.bus.Close()
	s.bus = nil
	s.ready = false
	s.traceState("ready", "closed")
	return err
}

// Ready reports whether the session has completed Open.
func (s *Session) Ready() bool {
	return s.ready
}

// SerialNumber returns the device serial number read at Open, as the three
// 16-bit words the device reports.
func (s *Session) SerialNumber() [3]uint16 {
	return s.serial
}

// SerialString renders the serial number as a 12-digit hex string.
func (s *Session) SerialString() string {
	return fmt.Sprintf("%04X%04X%04X", s.serial[0], s.serial[1], s.serial[2])
}

// FeatureSet returns the masked feature set negotiated at Open. Only bits
// 5-7 are significant; the value is already masked.
func (s *Session) FeatureSet() uint16 {
	return s.featureSet
}

// RawFeatureSet returns the unmasked feature set word as reported by the
// device. Reserved bits carry no contractual meaning.
func (s *Session) RawFeatureSet() uint16 {
	return s.rawFeatureSet
}

// MeasureAirQuality reads one CO2-equivalent / TVOC sample. The device
// expects to be sampled at 1 Hz to keep its baseline compensation
// accurate. Check IsProbablyValid on the result during warmup.
func (s *Session) MeasureAirQuality() (AirQuality, error) {
	if !s.ready {
		return AirQuality{}, ErrNotReady
	}
	words, err := s.execute(command.MeasureAirQuality, nil)
	if err != nil {
		return AirQuality{}, err
	}
	return AirQuality{CO2Equivalent: words[0], VOCEquivalent: words[1]}, nil
}

// Baseline reads the device's current compensation baseline. Baselines use
// the same wire shape as a reading.
func (s *Session) Baseline() (AirQuality, error) {
	if !s.ready {
		return AirQuality{}, ErrNotReady
	}
	words, err := s.execute(command.GetBaseline, nil)
	if err != nil {
		return AirQuality{}, err
	}
	return AirQuality{CO2Equivalent: words[0], VOCEquivalent: words[1]}, nil
}

// SetBaseline restores a previously saved compensation baseline.
func (s *Session) SetBaseline(co2, voc uint16) error {
	if !s.ready {
		return ErrNotReady
	}
	_, err := s.execute(command.SetBaseline, []uint16{co2, voc})
	return err
}

// SetHumidity sets the absolute humidity used for on-chip compensation,
// in the device's 8.8 fixed-point g/m³ format. Zero disables compensation.
func (s *Session) SetHumidity(humidity uint16) error {
	if !s.ready {
		return ErrNotReady
	}
	_, err := s.execute(command.SetHumidity, []uint16{humidity})
	return err
}

// MeasureRawSignals reads the raw H2 and ethanol signals.
func (s *Session) MeasureRawSignals() (RawSignals, error) {
	if !s.ready {
		return RawSignals{}, ErrNotReady
	}
	words, err := s.execute(command.MeasureRawSignals, nil)
	if err != nil {
		return RawSignals{}, err
	}
	return RawSignals{H2Signal: words[0], EthanolSignal: words[1]}, nil
}

// traceState emits a session state change event.
func (s *Session) traceState(oldState, newState string) {
	s.tracer.Log(trace.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		Direction: trace.DirectionOut,
		Category:  trace.CategoryState,
		BusAddr:   s.addr,
		OldState:  oldState,
		NewState:  newState,
	})
}

// traceError emits an error event.
func (s *Session) traceError(cmd string, err error) {
	s.tracer.Log(trace.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		Direction: trace.DirectionOut,
		Category:  trace.CategoryError,
		BusAddr:   s.addr,
		Command:   cmd,
		Error:     err.Error(),
	})
}
