// Command sgp30-monitor continuously samples an SGP30 air quality sensor.
//
// The device expects to be sampled once per second to keep its internal
// baseline compensation accurate; the monitor does exactly that, suppresses
// the power-on default readings while the sensor warms up, and periodically
// reads back the compensation baseline so it can be logged and restored
// across restarts.
//
// Usage:
//
//	sgp30-monitor [flags]
//
// Flags:
//
//	-bus string           I2C bus reference, e.g. "1" or "/dev/i2c-1" (default "1")
//	-addr int             Device address (default 0x58)
//	-config string        YAML configuration file path
//	-interval duration    Sampling interval (default 1s)
//	-baseline-every int   Read the baseline back every N samples (default 100)
//	-humidity int         Absolute humidity for compensation, 8.8 fixed-point g/m³ (0 = disabled)
//	-trace string         Write a CBOR transaction trace to this file
//	-log-level string     Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Monitor the sensor on bus 1
//	sgp30-monitor -bus 1
//
//	# Capture a protocol trace while monitoring
//	sgp30-monitor -bus 1 -trace sensor.strace
//
//	# Run from a config file
//	sgp30-monitor -config /etc/sgp30/monitor.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/airsense-protocol/sgp30-go/pkg/sgp30"
	"github.com/airsense-protocol/sgp30-go/pkg/trace"
	"github.com/airsense-protocol/sgp30-go/pkg/wire"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.LogLevel)

	tracer, closeTracer, err := buildTracer(cfg.TraceFile)
	if err != nil {
		slog.Error("failed to open trace file", "path", cfg.TraceFile, "error", err)
		os.Exit(1)
	}
	defer closeTracer()

	session := sgp30.NewSession(sgp30.Config{
		Bus:    cfg.Bus,
		Addr:   cfg.Addr,
		Tracer: tracer,
	})
	if err := session.Open(); err != nil {
		slog.Error("failed to open sensor", "bus", cfg.Bus, "error", err)
		os.Exit(1)
	}
	defer session.Close()

	slog.Info("sensor ready",
		"serial", session.SerialString(),
		"feature_set", fmt.Sprintf("0x%04X", session.FeatureSet()))

	if cfg.Humidity > 0 {
		if err := session.SetHumidity(cfg.Humidity); err != nil {
			slog.Error("failed to set humidity compensation", "error", err)
			os.Exit(1)
		}
		slog.Info("humidity compensation enabled", "value", cfg.Humidity)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if err := monitor(session, cfg, sigCh); err != nil {
		slog.Error("monitoring stopped", "error", err)
		os.Exit(1)
	}
}

// monitor runs the sampling loop until a shutdown signal arrives.
func monitor(session *sgp30.Session, cfg Config, sigCh <-chan os.Signal) error {
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	warmingUp := true
	samples := 0

	for {
		select {
		case sig := <-sigCh:
			slog.Info("received signal, shutting down", "signal", sig.String())
			return nil
		case <-ticker.C:
		}

		reading, err := session.MeasureAirQuality()
		if err != nil {
			// Checksum corruption is conclusive for that transaction; the
			// next sample runs against a clean bus. Everything else ends
			// the loop.
			if errors.Is(err, wire.ErrChecksumMismatch) {
				slog.Warn("discarded corrupted reading", "error", err)
				continue
			}
			return fmt.Errorf("measurement failed: %w", err)
		}

		if warmingUp {
			if !reading.IsProbablyValid() {
				slog.Debug("sensor warming up")
				continue
			}
			warmingUp = false
			slog.Info("sensor warmed up")
		}

		slog.Info("measurement",
			"co2_ppm", reading.CO2Equivalent,
			"voc_ppb", reading.VOCEquivalent)

		samples++
		if cfg.BaselineEvery > 0 && samples%cfg.BaselineEvery == 0 {
			baseline, err := session.Baseline()
			if err != nil {
				return fmt.Errorf("baseline readback failed: %w", err)
			}
			// Stash these values and restore them via set_baseline after a
			// restart to skip the 12-hour baseline re-learning period.
			slog.Info("baseline",
				"co2", fmt.Sprintf("0x%04X", baseline.CO2Equivalent),
				"voc", fmt.Sprintf("0x%04X", baseline.VOCEquivalent))
		}
	}
}

// buildTracer returns the session tracer and a cleanup function.
func buildTracer(path string) (trace.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	fileLogger, err := trace.NewFileLogger(path)
	if err != nil {
		return nil, nil, err
	}
	return fileLogger, func() { _ = fileLogger.Close() }, nil
}

// setupLogging configures the process-wide slog default.
func setupLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
