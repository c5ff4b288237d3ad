package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Bus != "1" {
		t.Errorf("bus = %q, want \"1\"", cfg.Bus)
	}
	if cfg.Addr != 0x58 {
		t.Errorf("addr = 0x%02X, want 0x58", cfg.Addr)
	}
	if cfg.Interval != time.Second {
		t.Errorf("interval = %v, want 1s", cfg.Interval)
	}
	if cfg.BaselineEvery != 100 {
		t.Errorf("baseline-every = %d, want 100", cfg.BaselineEvery)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	cfg, err := loadConfig([]string{"-bus", "/dev/i2c-3", "-interval", "2s", "-humidity", "3968", "-trace", "out.strace"})
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Bus != "/dev/i2c-3" {
		t.Errorf("bus = %q", cfg.Bus)
	}
	if cfg.Interval != 2*time.Second {
		t.Errorf("interval = %v", cfg.Interval)
	}
	if cfg.Humidity != 3968 {
		t.Errorf("humidity = %d", cfg.Humidity)
	}
	if cfg.TraceFile != "out.strace" {
		t.Errorf("trace file = %q", cfg.TraceFile)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitor.yaml")
	content := "bus: \"2\"\ninterval: 5s\nbaseline_every: 10\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := loadConfig([]string{"-config", path})
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Bus != "2" {
		t.Errorf("bus = %q, want \"2\"", cfg.Bus)
	}
	if cfg.Interval != 5*time.Second {
		t.Errorf("interval = %v, want 5s", cfg.Interval)
	}
	if cfg.BaselineEvery != 10 {
		t.Errorf("baseline_every = %d, want 10", cfg.BaselineEvery)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadConfigFlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitor.yaml")
	if err := os.WriteFile(path, []byte("bus: \"2\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := loadConfig([]string{"-config", path, "-bus", "7"})
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Bus != "7" {
		t.Errorf("bus = %q, want flag value \"7\"", cfg.Bus)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	if _, err := loadConfig([]string{"-addr", "70000"}); err == nil {
		t.Error("expected error for out-of-range address")
	}
	if _, err := loadConfig([]string{"-interval", "-1s"}); err == nil {
		t.Error("expected error for negative interval")
	}
}
