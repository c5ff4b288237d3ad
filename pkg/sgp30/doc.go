// Package sgp30 drives a Sensirion SGP30 air quality sensor over a shared
// two-wire bus.
//
// The package translates high-level measurement requests into the exact
// byte sequences the sensor expects, enforces per-command timing and
// feature set constraints, and validates every response against its
// embedded CRC-8 before exposing decoded values.
//
// # Lifecycle
//
// A Session is constructed closed. Open reads the device serial number,
// negotiates the feature set, and starts the measurement engine:
//
//	s := sgp30.NewSession(sgp30.Config{Bus: "1"})
//	if err := s.Open(); err != nil {
//	    // session is still closed
//	}
//	defer s.Close()
//
//	aq, err := s.MeasureAirQuality()
//	if err == nil && aq.IsProbablyValid() {
//	    fmt.Println(aq)
//	}
//
// Open and Close assume a single logical owner; they are not safe to call
// concurrently with each other or with measurement operations.
//
// # Concurrency
//
// Measurement operations may be called from multiple goroutines. One mutex
// per Session serializes the entire transaction: write, settle delay, and
// optional read. The settle delay is deliberately spent holding the lock -
// the sensor cannot accept a second command during its internal processing
// window, so concurrent callers fully serialize, including the wait. An
// implementation that pipelines requests would need a different device
// contract; do not "optimize" this.
//
// # Error Handling
//
// A checksum mismatch is conclusive proof of a corrupted transaction and
// is surfaced immediately; this package never retries. Transport failures
// propagate to the caller unmodified in meaning. Every error path releases
// the transaction lock and leaves the Session in a well-defined state.
package sgp30
