// Command sgp30-shell is an interactive console for one SGP30 sensor.
//
// It opens a session against the configured bus and gives manual access to
// every protocol operation: measurements, raw signals, baseline get/set,
// and humidity compensation. Useful for bring-up and for capturing traces
// of specific command sequences.
//
// Usage:
//
//	sgp30-shell [flags]
//
// Flags:
//
//	-bus string     I2C bus reference, e.g. "1" or "/dev/i2c-1" (default "1")
//	-addr int       Device address (default 0x58)
//	-trace string   Write a CBOR transaction trace to this file
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/airsense-protocol/sgp30-go/cmd/sgp30-shell/interactive"
	"github.com/airsense-protocol/sgp30-go/pkg/sgp30"
	"github.com/airsense-protocol/sgp30-go/pkg/trace"
	"github.com/airsense-protocol/sgp30-go/pkg/wire"
)

func main() {
	busName := flag.String("bus", "1", "I2C bus reference, e.g. \"1\" or \"/dev/i2c-1\"")
	addr := flag.Int("addr", int(sgp30.DefaultAddr), "Device address")
	traceFile := flag.String("trace", "", "Write a CBOR transaction trace to this file")
	flag.Parse()

	addrWord, err := wire.ToWord(*addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid device address: %v\n", err)
		os.Exit(1)
	}

	var tracer trace.Logger
	if *traceFile != "" {
		fileLogger, err := trace.NewFileLogger(*traceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open trace file: %v\n", err)
			os.Exit(1)
		}
		defer fileLogger.Close()
		tracer = fileLogger
	}

	session := sgp30.NewSession(sgp30.Config{
		Bus:    *busName,
		Addr:   addrWord,
		Tracer: tracer,
	})
	if err := session.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open sensor: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	shell, err := interactive.New(session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start shell: %v\n", err)
		os.Exit(1)
	}
	shell.Run()
}
