// Command sgp30-trace is a tool for viewing and analyzing SGP30 trace files.
//
// Trace files are created by passing a trace.FileLogger to a session (the
// sgp30-monitor and sgp30-shell commands expose this via -trace).
//
// Usage:
//
//	sgp30-trace <command> [flags] <file.strace>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSONL
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	sgp30-trace view sensor.strace
//
//	# View only bytes read from the device
//	sgp30-trace view -direction in sensor.strace
//
//	# View one command's transactions
//	sgp30-trace view -command measure_air_quality sensor.strace
//
//	# Export to JSONL
//	sgp30-trace export sensor.strace > sensor.jsonl
//
//	# Show statistics
//	sgp30-trace stats sensor.strace
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/airsense-protocol/sgp30-go/cmd/sgp30-trace/commands"
	"github.com/airsense-protocol/sgp30-go/pkg/trace"
)

const usage = `sgp30-trace - SGP30 Trace File Analyzer

Usage:
  sgp30-trace <command> [flags] <file.strace>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSONL
  stats    Show statistics about the trace file

Use "sgp30-trace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// parseFilter builds a trace.Filter from the shared filter flags.
func parseFilter(direction, category, cmdName, sessionID string) (trace.Filter, error) {
	var filter trace.Filter

	switch direction {
	case "":
	case "in":
		d := trace.DirectionIn
		filter.Direction = &d
	case "out":
		d := trace.DirectionOut
		filter.Direction = &d
	default:
		return trace.Filter{}, fmt.Errorf("invalid direction %q (want in or out)", direction)
	}

	switch category {
	case "":
	case "frame":
		c := trace.CategoryFrame
		filter.Category = &c
	case "state":
		c := trace.CategoryState
		filter.Category = &c
	case "error":
		c := trace.CategoryError
		filter.Category = &c
	default:
		return trace.Filter{}, fmt.Errorf("invalid category %q (want frame, state, or error)", category)
	}

	filter.Command = cmdName
	filter.SessionID = sessionID
	return filter, nil
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (frame, state, error)")
	cmdName := fs.String("command", "", "Filter by command name")
	sessionID := fs.String("session", "", "Filter by session ID")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		os.Exit(1)
	}

	filter, err := parseFilter(*direction, *category, *cmdName, *sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.View(os.Stdout, fs.Arg(0), filter); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (frame, state, error)")
	cmdName := fs.String("command", "", "Filter by command name")
	sessionID := fs.String("session", "", "Filter by session ID")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		os.Exit(1)
	}

	filter, err := parseFilter(*direction, *category, *cmdName, *sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.Export(os.Stdout, fs.Arg(0), filter); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		os.Exit(1)
	}

	if err := commands.Stats(os.Stdout, fs.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
