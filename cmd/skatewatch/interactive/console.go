// Package interactive provides the interactive console for skatewatch.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/skatewatch/skatewatch-go/pkg/catalog"
	"github.com/skatewatch/skatewatch-go/pkg/engine"
	"github.com/skatewatch/skatewatch-go/pkg/panel"
)

// Console reads button tokens and console commands from a readline prompt.
type Console struct {
	rl        *readline.Instance
	closeOnce sync.Once
	out       io.Writer
	catalog   *catalog.Catalog
	color     bool

	mu       sync.Mutex
	last     *engine.Snapshot
	watching bool
	lastLine string
}

// New creates a console for an engine using cat. Colors are emitted when
// color is true.
func New(cat *catalog.Catalog, color bool) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "skatewatch> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		rl:      rl,
		out:     rl.Stdout(),
		catalog: cat,
		color:   color,
	}, nil
}

func completer() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("status"),
		readline.PcItem("watch"),
		readline.PcItem("durations"),
		readline.PcItem("quit"),
	}
	for _, c := range engine.Commands {
		items = append(items, readline.PcItem(c.String()))
	}
	return readline.NewPrefixCompleter(items...)
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (c *Console) Stderr() io.Writer {
	return c.rl.Stderr()
}

// Update records the latest snapshot. In watch mode the status line is
// printed whenever it changes.
func (c *Console) Update(s engine.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.last = &s
	if !c.watching {
		return
	}
	if line := StatusLine(panel.Render(s), c.color); line != c.lastLine {
		fmt.Fprintln(c.out, line)
		c.lastLine = line
	}
}

// Run starts the command loop. Commands are sent on cmds; quitting cancels
// ctx through cancel.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc, cmds chan<- engine.Command) {
	defer c.close()

	// Unblock Readline when the engine stops or a signal arrives.
	go func() {
		<-ctx.Done()
		c.close()
	}()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}

		if c.execute(ctx, line, cmds) {
			cancel()
			return
		}
	}
}

func (c *Console) close() {
	c.closeOnce.Do(func() { _ = c.rl.Close() })
}

// execute handles one input line and reports whether the console should quit.
func (c *Console) execute(ctx context.Context, line string, cmds chan<- engine.Command) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	switch strings.ToLower(input) {
	case "help", "?":
		c.printHelp()
	case "status", "s":
		c.cmdStatus()
	case "watch", "w":
		c.cmdWatch()
	case "durations", "d":
		c.cmdDurations()
	case "quit", "exit", "q":
		fmt.Fprintln(c.out, "Exiting...")
		return true
	default:
		cmd, ok := engine.ParseCommand(input)
		if !ok {
			fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", input)
			return false
		}
		select {
		case cmds <- cmd:
		case <-ctx.Done():
			return true
		}
	}
	return false
}

func (c *Console) cmdStatus() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last == nil {
		fmt.Fprintln(c.out, "No reading yet")
		return
	}
	fmt.Fprint(c.out, FormatFrame(panel.Render(*c.last), c.color))
}

func (c *Console) cmdWatch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.watching = !c.watching
	c.lastLine = ""
	if c.watching {
		fmt.Fprintln(c.out, "Watching (type 'watch' again to stop)")
	} else {
		fmt.Fprintln(c.out, "Stopped watching")
	}
}

func (c *Console) cmdDurations() {
	fmt.Fprintf(c.out, "Ruleset %s:\n", c.catalog.Name())
	for i, e := range c.catalog.Entries() {
		fmt.Fprintf(c.out, "  %2d. %6s  %s\n", i+1, panel.FormatSeconds(e.Duration), e.Kind.Label())
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
Skatewatch Commands:
  Buttons:
    Start | Stop | Reset        - Run the main timer
    Interrupt | Continue        - Time an interruption
    Call.Sk                     - Next skater called
    Warmup | Compete            - Switch mode
    Chg.Dur                     - Select the next duration
    Whistle                     - Long beep
    Silent | Noisy              - Button chirps off / on

  Console:
    status, s                   - Show the full panel
    watch, w                    - Toggle the live status line
    durations, d                - List the duration table
    help, ?                     - Show this help
    quit, exit, q               - Exit`)
}
