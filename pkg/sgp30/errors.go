package sgp30

import (
	"errors"
	"fmt"

	"github.com/airsense-protocol/sgp30-go/pkg/command"
)

// Session errors.
var (
	// ErrNotReady indicates a measurement operation was attempted before
	// Open completed or after Close.
	ErrNotReady = errors.New("session is not ready")

	// ErrAlreadyOpen indicates Open was called on a ready session.
	ErrAlreadyOpen = errors.New("session is already open")

	// ErrUnsupportedFeatureSet indicates the device's negotiated feature
	// set does not match what a command requires. Raised before any bus
	// I/O, so it never corrupts bus state.
	ErrUnsupportedFeatureSet = errors.New("command not supported by device feature set")

	// ErrArgumentCount indicates the wrong number of parameter words was
	// supplied for a command. This is a programming error.
	ErrArgumentCount = errors.New("wrong number of parameter words")
)

// FeatureSetError reports a feature set gate rejection.
type FeatureSetError struct {
	// Command is the rejected command.
	Command command.Command

	// Required is the masked feature set the command needs.
	Required uint16

	// Reported is the device's masked feature set negotiated at Open.
	Reported uint16
}

func (e *FeatureSetError) Error() string {
	return fmt.Sprintf("%s requires feature set 0x%04X, device reports 0x%04X", e.Command, e.Required, e.Reported)
}

// Unwrap allows errors.Is(err, ErrUnsupportedFeatureSet).
func (e *FeatureSetError) Unwrap() error {
	return ErrUnsupportedFeatureSet
}

// ArgumentCountError reports a parameter word count mismatch.
type ArgumentCountError struct {
	// Command is the command that was invoked.
	Command command.Command

	// Want is the descriptor's parameter word count.
	Want int

	// Got is the number of words actually supplied.
	Got int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("%s takes %d parameter words, got %d", e.Command, e.Want, e.Got)
}

// Unwrap allows errors.Is(err, ErrArgumentCount).
func (e *ArgumentCountError) Unwrap() error {
	return ErrArgumentCount
}
