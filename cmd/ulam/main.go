// Ulam spiral tool: maps values to spiral coordinates and renders prime images.
//
// Usage:
//
//	ulam point X Y          # value, octant and primality at a coordinate
//	ulam coord V            # coordinate of a value (ring decomposition)
//	ulam lookup V           # coordinate of a value (anchor-corrected)
//	ulam render [flags]     # render primes into an image
//	ulam catalog FROM TO    # store points FROM..TO in PostgreSQL
//	ulam --list             # list available commands
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/udisondev/ulamspiral/internal/config"
	"github.com/udisondev/ulamspiral/internal/prime"
	"github.com/udisondev/ulamspiral/internal/spiral"
)

const ConfigPath = "config/ulam.yaml"

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, e *env, args []string) error
}

var commands []command

func registerCommand(name, usage string, fn func(ctx context.Context, e *env, args []string) error) {
	commands = append(commands, command{name: name, usage: usage, run: fn})
}

// env carries what every command needs.
type env struct {
	cfg    config.Config
	engine *spiral.Engine
	out    *message.Printer
	w      io.Writer
}

func (e *env) printf(format string, args ...any) {
	e.out.Fprintf(e.w, format, args...)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, w io.Writer) error {
	cfgPath := ConfigPath
	if p := os.Getenv("ULAM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Results go to stdout, logs to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	e := &env{
		cfg:    cfg,
		engine: spiral.NewEngine(prime.Tester{}),
		out:    message.NewPrinter(language.English),
		w:      w,
	}

	if len(args) == 0 || args[0] == "--list" || args[0] == "help" {
		printUsage(e)
		return nil
	}

	for _, c := range commands {
		if c.name == args[0] {
			slog.Debug("running command", "command", c.name, "config", cfgPath)
			return c.run(ctx, e, args[1:])
		}
	}
	printUsage(e)
	return fmt.Errorf("unknown command %q", args[0])
}

func printUsage(e *env) {
	e.printf("Commands:\n")
	for _, c := range commands {
		e.printf("  %-8s %s\n", c.name, c.usage)
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
