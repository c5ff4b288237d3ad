// Package trace provides structured transaction tracing for the SGP30
// protocol engine.
//
// This package defines the Logger interface and Event type for capturing
// every bus transaction a session performs: the exact frames written and
// read, decoded words, session state changes, and errors. It is separate
// from operational logging (slog) - a trace is a complete machine-readable
// record suitable for offline protocol debugging.
//
// # Basic Usage
//
// Sessions accept a Logger at construction:
//
//	// For development: forward events to console via slog
//	cfg.Tracer = trace.NewSlogAdapter(slog.Default())
//
//	// For capture: write a binary trace file
//	cfg.Tracer, _ = trace.NewFileLogger("/var/log/sgp30/sensor.strace")
//
//	// Both: use MultiLogger
//	cfg.Tracer = trace.NewMultiLogger(
//	    trace.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Trace files are a concatenation of CBOR-encoded events with integer keys
// (.strace extension by convention). The sgp30-trace CLI tool provides
// viewing, export, and statistics over trace files.
package trace
