package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/airsense-protocol/sgp30-go/pkg/wire"
)

// Config holds the monitor configuration. Flags override config file
// values, which override defaults.
type Config struct {
	Bus           string        `yaml:"bus"`
	Addr          uint16        `yaml:"addr"`
	Interval      time.Duration `yaml:"interval"`
	BaselineEvery int           `yaml:"baseline_every"`
	Humidity      uint16        `yaml:"humidity"`
	TraceFile     string        `yaml:"trace_file"`
	LogLevel      string        `yaml:"log_level"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Bus:           "1",
		Addr:          0x58,
		Interval:      time.Second,
		BaselineEvery: 100,
		LogLevel:      "info",
	}
}

// loadConfig merges defaults, an optional YAML config file, and flags.
func loadConfig(args []string) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("sgp30-monitor", flag.ContinueOnError)
	configFile := fs.String("config", "", "YAML configuration file path")
	bus := fs.String("bus", "", "I2C bus reference, e.g. \"1\" or \"/dev/i2c-1\"")
	addr := fs.Int("addr", 0, "Device address")
	interval := fs.Duration("interval", 0, "Sampling interval")
	baselineEvery := fs.Int("baseline-every", -1, "Read the baseline back every N samples (0 = never)")
	humidity := fs.Int("humidity", -1, "Absolute humidity for compensation, 8.8 fixed-point g/m³ (0 = disabled)")
	traceFile := fs.String("trace", "", "Write a CBOR transaction trace to this file")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *configFile != "" {
		data, err := os.ReadFile(*configFile)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if *bus != "" {
		cfg.Bus = *bus
	}
	if *addr != 0 {
		word, err := wire.ToWord(*addr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid device address: %w", err)
		}
		cfg.Addr = word
	}
	if *interval != 0 {
		cfg.Interval = *interval
	}
	if *baselineEvery >= 0 {
		cfg.BaselineEvery = *baselineEvery
	}
	if *humidity >= 0 {
		word, err := wire.ToWord(*humidity)
		if err != nil {
			return Config{}, fmt.Errorf("invalid humidity value: %w", err)
		}
		cfg.Humidity = word
	}
	if *traceFile != "" {
		cfg.TraceFile = *traceFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if cfg.Interval <= 0 {
		return Config{}, fmt.Errorf("interval must be positive, got %v", cfg.Interval)
	}
	return cfg, nil
}
