// Command skatewatch-log is a tool for viewing and analyzing skatewatch
// session log files.
//
// Session logs are written by skatewatch when started with -event-log.
//
// Usage:
//
//	skatewatch-log <command> [flags] <file.swlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	skatewatch-log view session.swlog
//
//	# View only tier changes
//	skatewatch-log view --category tier session.swlog
//
//	# Export to CSV
//	skatewatch-log export --format csv -o session.csv session.swlog
//
//	# Keep one session and save it to a new file
//	skatewatch-log filter --session 3f2b9c1e-... -o one.swlog session.swlog
//
//	# Show statistics
//	skatewatch-log stats session.swlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/skatewatch/skatewatch-go/cmd/skatewatch-log/commands"
)

const usage = `skatewatch-log - Skatewatch Session Log Analyzer

Usage:
  skatewatch-log <command> [flags] <file.swlog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "skatewatch-log <command> -help" for more information about a command.
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
	case "filter":
		runFilter(args)
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

func newFlagSet(name, summary string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `skatewatch-log %s - %s

Usage:
  skatewatch-log %s [flags] <file.swlog>

Flags:
`, name, summary, name)
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs parses the flags and returns the log file path.
func parseArgs(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := newFlagSet("view", "View log file in human-readable format")
	category := fs.String("category", "", "Filter by category (command, transition, tier, beep, interruption)")
	mode := fs.String("mode", "", "Filter by mode (program, warmup)")
	path := parseArgs(fs, args)

	var filter commands.ViewFilter
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}
	if *mode != "" {
		m, err := commands.ParseModeFlag(*mode)
		if err != nil {
			fail(err)
		}
		filter.Mode = m
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := newFlagSet("export", "Export log file to JSON or CSV format")
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path := parseArgs(fs, args)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := newFlagSet("filter", "Filter log file and write to new file")
	output := fs.String("o", "", "Output file (required)")
	session := fs.String("session", "", "Filter by session ID")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	category := fs.String("category", "", "Filter by category (command, transition, tier, beep, interruption)")
	mode := fs.String("mode", "", "Filter by mode (program, warmup)")
	path := parseArgs(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:    *output,
		SessionID: *session,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
		Category:  *category,
		Mode:      *mode,
	}
	if err := commands.RunFilter(path, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := newFlagSet("stats", "Show statistics about the log file")
	path := parseArgs(fs, args)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
