// Command skatewatch is a referee stopwatch for figure skating competitions.
//
// It runs the timing engine on a fixed tick, sounds the terminal bell for
// button chirps and timing alerts, and reads button tokens from an
// interactive console.
//
// Usage:
//
//	skatewatch [flags]
//
// Flags:
//
//	-config string      Configuration file path (YAML)
//	-ruleset string     Built-in duration ruleset (default "standard")
//	-catalog string     Duration catalog file, overrides -ruleset
//	-warmup int         Warmup length in seconds (default 240)
//	-silent             Start with button chirps disabled
//	-event-log string   Session log file (.swlog)
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-tick duration      Tick interval (default 100ms)
//	-interactive        Run the interactive console (default true)
//
// Examples:
//
//	# Default table, interactive console
//	skatewatch
//
//	# Club settings with a session log for later review
//	skatewatch -config /etc/skatewatch/club.yaml -event-log session.swlog
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/skatewatch/skatewatch-go/cmd/skatewatch/interactive"
	"github.com/skatewatch/skatewatch-go/pkg/beep"
	"github.com/skatewatch/skatewatch-go/pkg/catalog"
	"github.com/skatewatch/skatewatch-go/pkg/clock"
	"github.com/skatewatch/skatewatch-go/pkg/config"
	"github.com/skatewatch/skatewatch-go/pkg/engine"
	swlog "github.com/skatewatch/skatewatch-go/pkg/log"
	"github.com/skatewatch/skatewatch-go/pkg/panel"
)

var (
	cfg = config.Default()

	configFile      string
	interactiveMode bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&cfg.Ruleset, "ruleset", cfg.Ruleset, fmt.Sprintf("Built-in duration ruleset %v", catalog.Builtins()))
	flag.StringVar(&cfg.CatalogFile, "catalog", "", "Duration catalog file, overrides -ruleset")
	flag.IntVar(&cfg.WarmupSeconds, "warmup", cfg.WarmupSeconds, "Warmup length in seconds")
	flag.BoolVar(&cfg.Silent, "silent", false, "Start with button chirps disabled")
	flag.StringVar(&cfg.EventLog, "event-log", "", "Session log file (.swlog)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Tick interval")
	flag.BoolVar(&interactiveMode, "interactive", true, "Run the interactive console")
}

func main() {
	flag.Parse()

	if err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, and re-applies the flags that
// were set explicitly so they win over file values.
func loadConfig() error {
	if configFile != "" {
		flagCfg := cfg
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = fileCfg
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "ruleset":
				cfg.Ruleset = flagCfg.Ruleset
			case "catalog":
				cfg.CatalogFile = flagCfg.CatalogFile
			case "warmup":
				cfg.WarmupSeconds = flagCfg.WarmupSeconds
			case "silent":
				cfg.Silent = flagCfg.Silent
			case "event-log":
				cfg.EventLog = flagCfg.EventLog
			case "log-level":
				cfg.LogLevel = flagCfg.LogLevel
			case "tick":
				cfg.TickInterval = flagCfg.TickInterval
			}
		})
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func run() error {
	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var console *interactive.Console
	out, errOut := io.Writer(os.Stdout), io.Writer(os.Stderr)
	if interactiveMode {
		console, err = interactive.New(cat, colorSupported())
		if err != nil {
			return err
		}
		out, errOut = console.Stdout(), console.Stderr()
	}

	logger := setupLogging(errOut, cfg.Level())

	sessionLog, closeLog, err := setupSessionLog(logger)
	if err != nil {
		return err
	}
	defer closeLog()

	bell := beep.NewCounter(&terminalBell{w: out})
	eng, err := engine.New(clock.System{}, bell, engine.Config{
		Catalog:        cat,
		WarmupDuration: cfg.WarmupSeconds,
		Silent:         cfg.Silent,
		Logger:         sessionLog,
	})
	if err != nil {
		return err
	}

	logger.Info("Skatewatch started",
		"session", eng.SessionID(),
		"ruleset", cat.Name(),
		"durations", cat.Len(),
		"warmup", cfg.WarmupSeconds,
		"tick", cfg.TickInterval)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("Received signal", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	cmds := make(chan engine.Command, 8)
	var lastLine string
	onTick := func(s engine.Snapshot) {
		bell.Process()
		if console != nil {
			console.Update(s)
			return
		}
		if line := interactive.StatusLine(panel.Render(s), false); line != lastLine {
			fmt.Fprintln(out, line)
			lastLine = line
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	var runErr error
	go func() {
		defer wg.Done()
		runErr = eng.Run(ctx, cfg.TickInterval, cmds, onTick)
		cancel()
	}()

	if console != nil {
		console.Run(ctx, cancel, cmds)
	} else {
		go readTokens(ctx, os.Stdin, cmds, logger)
		<-ctx.Done()
	}

	wg.Wait()
	logger.Info("Shutting down")
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

func setupLogging(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if level <= slog.LevelDebug {
		opts.AddSource = true
	}
	logger := slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(logger)
	return logger
}

// setupSessionLog builds the session event logger: the .swlog file when
// configured, plus the console at debug level.
func setupSessionLog(logger *slog.Logger) (swlog.Logger, func(), error) {
	var loggers []swlog.Logger
	closeFn := func() {}

	if cfg.EventLog != "" {
		fl, err := swlog.NewFileLogger(cfg.EventLog)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create session log: %w", err)
		}
		logger.Info("Session logging", "file", cfg.EventLog)
		loggers = append(loggers, fl)
		closeFn = func() {
			if err := fl.Close(); err != nil {
				logger.Warn("Closing session log", "error", err)
			}
		}
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		loggers = append(loggers, swlog.NewSlogAdapter(logger))
	}

	if len(loggers) == 0 {
		return nil, closeFn, nil
	}
	return swlog.NewMultiLogger(loggers...), closeFn, nil
}

// readTokens feeds button tokens from r, one per line, until EOF or until
// ctx is done.
func readTokens(ctx context.Context, r io.Reader, cmds chan<- engine.Command, logger *slog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		cmd, ok := engine.ParseCommand(scanner.Text())
		if !ok {
			logger.Warn("Unknown command", "token", scanner.Text())
			continue
		}
		select {
		case cmds <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

func colorSupported() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// terminalBell rings the terminal bell when the buzzer line switches on.
type terminalBell struct {
	w  io.Writer
	on bool
}

func (b *terminalBell) Set(on bool) {
	if on && !b.on {
		fmt.Fprint(b.w, "\a")
	}
	b.on = on
}
