package sgp30

import "fmt"

// Power-on defaults the device reports while its measurement engine is
// still warming up (roughly the first 15 seconds after init).
const (
	warmupCO2Equivalent uint16 = 400
	warmupVOCEquivalent uint16 = 0
)

// AirQuality is one CO2-equivalent / TVOC measurement pair. Baselines use
// the same wire shape and are reported with the same type. Values are
// immutable once constructed.
type AirQuality struct {
	// CO2Equivalent is the CO2-equivalent concentration in ppm.
	CO2Equivalent uint16

	// VOCEquivalent is the total VOC concentration in ppb.
	VOCEquivalent uint16
}

// IsProbablyValid reports whether the reading looks like a real measurement
// rather than the device's power-on default pair (400 ppm, 0 ppb).
//
// This is a heuristic, not a guarantee: a warmed-up device could
// coincidentally measure exactly the default pair. Treat a false result as
// "still warming up" and a true result as best-effort confidence only.
func (a AirQuality) IsProbablyValid() bool {
	return a.CO2Equivalent != warmupCO2Equivalent || a.VOCEquivalent != warmupVOCEquivalent
}

// String renders the reading for logs and CLIs.
func (a AirQuality) String() string {
	return fmt.Sprintf("CO2eq %d ppm, TVOC %d ppb", a.CO2Equivalent, a.VOCEquivalent)
}

// RawSignals is the uncompensated sensor signal pair from
// measure_raw_signals. Raw signals carry no validity semantics.
type RawSignals struct {
	// H2Signal is the raw hydrogen signal.
	H2Signal uint16

	// EthanolSignal is the raw ethanol signal.
	EthanolSignal uint16
}

// String renders the signal pair for logs and CLIs.
func (r RawSignals) String() string {
	return fmt.Sprintf("H2 %d, ethanol %d", r.H2Signal, r.EthanolSignal)
}
