// Package interactive provides the interactive command-line interface
// for sgp30-shell.
package interactive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/airsense-protocol/sgp30-go/pkg/sgp30"
	"github.com/airsense-protocol/sgp30-go/pkg/wire"
)

// Shell handles interactive mode for sgp30-shell.
type Shell struct {
	session *sgp30.Session
	rl      *readline.Instance
}

// New creates a new interactive shell bound to an open session.
func New(session *sgp30.Session) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sgp30> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{
		session: session,
		rl:      rl,
	}, nil
}

// Run starts the interactive command loop. It returns when the user exits.
func (s *Shell) Run() {
	defer s.rl.Close()

	s.printInfo()
	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "info", "i":
			s.printInfo()

		case "measure", "m":
			s.cmdMeasure()

		case "raw", "r":
			s.cmdRaw()

		case "baseline", "b":
			s.cmdBaseline()

		case "set-baseline", "sb":
			s.cmdSetBaseline(args)

		case "humidity", "h":
			s.cmdHumidity(args)

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
SGP30 Commands:
  info                       - Show serial number and feature set
  measure                    - Take one air quality measurement
  raw                        - Read the raw H2/ethanol signals
  baseline                   - Read the compensation baseline
  set-baseline <co2> <voc>   - Restore a compensation baseline
  humidity <value>           - Set absolute humidity compensation (0 disables)
  quit                       - Exit

Values accept decimal or 0x-prefixed hex.`)
}

func (s *Shell) printInfo() {
	fmt.Fprintf(s.rl.Stdout(), "Serial:      %s\n", s.session.SerialString())
	fmt.Fprintf(s.rl.Stdout(), "Feature set: 0x%04X (raw 0x%04X)\n", s.session.FeatureSet(), s.session.RawFeatureSet())
}

func (s *Shell) cmdMeasure() {
	reading, err := s.session.MeasureAirQuality()
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.rl.Stdout(), reading)
	if !reading.IsProbablyValid() {
		fmt.Fprintln(s.rl.Stdout(), "(power-on default values - sensor is probably still warming up)")
	}
}

func (s *Shell) cmdRaw() {
	signals, err := s.session.MeasureRawSignals()
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.rl.Stdout(), signals)
}

func (s *Shell) cmdBaseline() {
	baseline, err := s.session.Baseline()
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "Baseline: co2 0x%04X, voc 0x%04X\n", baseline.CO2Equivalent, baseline.VOCEquivalent)
}

func (s *Shell) cmdSetBaseline(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: set-baseline <co2> <voc>")
		return
	}
	co2, err := parseWord(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Invalid co2 value: %v\n", err)
		return
	}
	voc, err := parseWord(args[1])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Invalid voc value: %v\n", err)
		return
	}
	if err := s.session.SetBaseline(co2, voc); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.rl.Stdout(), "Baseline restored")
}

func (s *Shell) cmdHumidity(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: humidity <value>")
		return
	}
	value, err := parseWord(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Invalid humidity value: %v\n", err)
		return
	}
	if err := s.session.SetHumidity(value); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	if value == 0 {
		fmt.Fprintln(s.rl.Stdout(), "Humidity compensation disabled")
	} else {
		fmt.Fprintln(s.rl.Stdout(), "Humidity compensation set")
	}
}

// parseWord parses a decimal or 0x-prefixed hex word value.
func parseWord(s string) (uint16, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return wire.ToWord(int(v))
}
