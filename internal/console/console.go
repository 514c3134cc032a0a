package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/osse101/potionshop/internal/logger"
	"github.com/osse101/potionshop/internal/naming"
)

// Console is a line-oriented front end for one engine. It renders state by
// polling engine queries after every command.
type Console struct {
	engine   Engine
	names    naming.Resolver
	out      io.Writer
	registry *Registry
	journal  Journal
}

// Option configures a Console
type Option func(*Console)

// WithJournal enables the journal command and end-of-day summaries
func WithJournal(j Journal) Option {
	return func(c *Console) {
		c.journal = j
	}
}

// New creates a console writing to out
func New(engine Engine, names naming.Resolver, out io.Writer, opts ...Option) *Console {
	c := &Console{
		engine:   engine,
		names:    names,
		out:      out,
		registry: defaultRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run reads commands from in until EOF, a quit command or ctx is done.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	c.println(MsgWelcome)
	c.renderStatus()

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.print(Prompt)
		if !scanner.Scan() {
			break
		}
		if quit := c.Execute(ctx, scanner.Text()); quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	c.println(MsgGoodbye)
	return nil
}

// Execute runs one command line and reports whether the player asked to quit.
// Engine errors are shown to the player, never returned.
func (c *Console) Execute(ctx context.Context, line string) bool {
	name, arg := splitCommand(line)
	if name == "" {
		return false
	}
	if name == CmdQuit || name == CmdQuitAlt {
		return true
	}

	cmd, ok := c.registry.Get(name)
	if !ok {
		c.failf(MsgUnknownCommand, name)
		return false
	}
	if cmd.NeedsArg && arg == "" {
		c.failf(MsgUsage, cmd.Usage)
		return false
	}

	if err := cmd.Run(ctx, c, arg); err != nil {
		logger.FromContext(ctx).Debug(LogMsgCommandFailed, "command", name, "error", err)
		c.fail(c.explain(err, arg))
	}

	c.renderCoinsAndInventory()
	return false
}

// splitCommand lowercases the command word and keeps the rest verbatim
func splitCommand(line string) (name, arg string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	name, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(arg)
}

// resolveItem maps player input to a catalog name, passing unknown input through
func (c *Console) resolveItem(input string) string {
	if name, ok := c.names.ResolveItem(input); ok {
		return name
	}
	return input
}

func (c *Console) resolveMarket(input string) string {
	if name, ok := c.names.ResolveMarket(input); ok {
		return name
	}
	return input
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", a...)
}

func (c *Console) okf(format string, a ...interface{}) {
	c.printf(MarkSuccess+format, a...)
}

func (c *Console) fail(msg string) {
	c.println(MarkFailure + msg)
}

func (c *Console) failf(format string, a ...interface{}) {
	c.printf(MarkFailure+format, a...)
}
