package command

import (
	"errors"
	"fmt"
	"time"
)

// FeatureSetMask selects the contractually significant bits (5-7) of the
// 16-bit feature set word the device reports. All other bits are reserved
// and may vary between otherwise-identical devices, so every feature set
// comparison must mask both sides first.
const FeatureSetMask uint16 = 0x00E0

// ErrUnknownCommand indicates a Command value outside the enumeration was
// looked up. This is a programming error, not a runtime condition.
var ErrUnknownCommand = errors.New("unknown command")

// Command identifies one entry in the fixed SGP30 command set.
type Command uint8

const (
	// GetSerialNumber reads the 48-bit device serial number.
	GetSerialNumber Command = iota

	// GetFeatureSetVersion reads the feature set word used for
	// capability gating of all measurement commands.
	GetFeatureSetVersion

	// InitAirQuality starts the device's continuous measurement engine.
	// Must be issued once before any measurement command.
	InitAirQuality

	// MeasureAirQuality reads one CO2-equivalent / TVOC sample.
	MeasureAirQuality

	// GetBaseline reads the compensation baseline pair.
	GetBaseline

	// SetBaseline restores a previously saved compensation baseline.
	SetBaseline

	// SetHumidity sets the absolute humidity value used for on-chip
	// humidity compensation.
	SetHumidity

	// MeasureRawSignals reads the raw H2 and ethanol signals.
	MeasureRawSignals

	numCommands // sentinel, keep last
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case GetSerialNumber:
		return "get_serial_number"
	case GetFeatureSetVersion:
		return "get_feature_set_version"
	case InitAirQuality:
		return "init_air_quality"
	case MeasureAirQuality:
		return "measure_air_quality"
	case GetBaseline:
		return "get_baseline"
	case SetBaseline:
		return "set_baseline"
	case SetHumidity:
		return "set_humidity"
	case MeasureRawSignals:
		return "measure_raw_signals"
	default:
		return fmt.Sprintf("command(%d)", uint8(c))
	}
}

// Descriptor describes one command's wire contract. Descriptors are static
// configuration and never mutated after process start.
type Descriptor struct {
	// Opcode is the 2-byte command identifier, sent first in every
	// transaction.
	Opcode [2]byte

	// RequiredFeatureSet is the masked feature set value the device must
	// report for this command to be usable. Only meaningful when Gated.
	RequiredFeatureSet uint16

	// Gated reports whether the command is restricted to devices whose
	// masked feature set equals RequiredFeatureSet exactly.
	Gated bool

	// ParameterWords is the number of checksummed words the command takes.
	ParameterWords int

	// ResponseWords is the number of checksummed words the device returns.
	ResponseWords int

	// SettleTime is the minimum delay between write completion and read
	// start; required even for commands with no response, to respect the
	// device's internal processing window.
	SettleTime time.Duration
}

// descriptors holds the device's documented command set. No command both
// takes parameters and returns a response.
var descriptors = [numCommands]Descriptor{
	GetSerialNumber: {
		Opcode:        [2]byte{0x36, 0x82},
		ResponseWords: 3,
		SettleTime:    1 * time.Millisecond,
	},
	GetFeatureSetVersion: {
		Opcode:        [2]byte{0x20, 0x2F},
		ResponseWords: 1,
		SettleTime:    2 * time.Millisecond,
	},
	InitAirQuality: {
		Opcode:             [2]byte{0x20, 0x03},
		RequiredFeatureSet: 0x0020,
		Gated:              true,
		SettleTime:         10 * time.Millisecond,
	},
	MeasureAirQuality: {
		Opcode:             [2]byte{0x20, 0x08},
		RequiredFeatureSet: 0x0020,
		Gated:              true,
		ResponseWords:      2,
		SettleTime:         12 * time.Millisecond,
	},
	GetBaseline: {
		Opcode:             [2]byte{0x20, 0x15},
		RequiredFeatureSet: 0x0020,
		Gated:              true,
		ResponseWords:      2,
		SettleTime:         10 * time.Millisecond,
	},
	SetBaseline: {
		Opcode:             [2]byte{0x20, 0x1E},
		RequiredFeatureSet: 0x0020,
		Gated:              true,
		ParameterWords:     2,
		SettleTime:         10 * time.Millisecond,
	},
	SetHumidity: {
		Opcode:             [2]byte{0x20, 0x61},
		RequiredFeatureSet: 0x0020,
		Gated:              true,
		ParameterWords:     1,
		SettleTime:         10 * time.Millisecond,
	},
	MeasureRawSignals: {
		Opcode:             [2]byte{0x20, 0x50},
		RequiredFeatureSet: 0x0020,
		Gated:              true,
		ResponseWords:      2,
		SettleTime:         25 * time.Millisecond,
	},
}

// Lookup returns the descriptor for c.
func Lookup(c Command) (Descriptor, error) {
	if c >= numCommands {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownCommand, c)
	}
	return descriptors[c], nil
}

// All returns every command in the set, in enumeration order.
func All() []Command {
	cmds := make([]Command, 0, numCommands)
	for c := Command(0); c < numCommands; c++ {
		cmds = append(cmds, c)
	}
	return cmds
}

// MaskFeatureSet reduces a raw feature set word to its significant bits.
func MaskFeatureSet(v uint16) uint16 {
	return v & FeatureSetMask
}
