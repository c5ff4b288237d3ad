package trace

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see bus traffic in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}

	if event.Command != "" {
		attrs = append(attrs, slog.String("command", event.Command))
	}
	if event.BusAddr != 0 {
		attrs = append(attrs, slog.String("addr", fmt.Sprintf("0x%02X", event.BusAddr)))
	}

	switch event.Category {
	case CategoryFrame:
		attrs = append(attrs, slog.String("frame", fmt.Sprintf("% X", event.Frame)))
		if len(event.Words) > 0 {
			attrs = append(attrs, slog.Any("words", event.Words))
		}
	case CategoryState:
		attrs = append(attrs,
			slog.String("old_state", event.OldState),
			slog.String("new_state", event.NewState),
		)
	case CategoryError:
		attrs = append(attrs, slog.String("error", event.Error))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "sgp30", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
