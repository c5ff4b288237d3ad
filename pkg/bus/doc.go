// Package bus defines the transport boundary between the SGP30 protocol
// engine and the underlying two-wire bus.
//
// The protocol engine only needs three primitives: an atomic write of an
// arbitrary byte sequence to a device address, an atomic read of an exact
// byte count from a device address, and close. Everything else (addressing,
// clock stretching, kernel interfaces) is the transport's concern.
//
// # Implementations
//
// Open returns the default implementation backed by periph.io's I2C stack,
// which reaches /dev/i2c-* on Linux. Tests use the doubles in the bustest
// subpackage or the generated mock in the mocks subpackage.
//
// Transport failures are returned unmodified in meaning; the protocol
// engine performs no retries and makes no fatal/non-fatal distinction on
// the caller's behalf.
package bus
