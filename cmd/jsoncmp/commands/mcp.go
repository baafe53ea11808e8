package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DeepakRathod14/java-custom-automation/internal/cliutil"
	"github.com/DeepakRathod14/java-custom-automation/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "log debug output to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsoncmp mcp [flags]\n\n")
		cliutil.Writef(fs.Output(), "Run the MCP (Model Context Protocol) server on stdio.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nTools:\n")
		cliutil.Writef(fs.Output(), "  compare       Compare an actual document against an expected one\n")
		cliutil.Writef(fs.Output(), "  flatten       Flatten a document into dotted leaf paths\n")
		cliutil.Writef(fs.Output(), "  random_entry  Pick a pseudo-random leaf entry\n")
		cliutil.Writef(fs.Output(), "\nConfiguration is read from %s* environment variables.\n", mcpserver.EnvPrefix)
	}

	return fs, verbose
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs, verbose := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	cfg, err := mcpserver.LoadConfig()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	// stdout carries the protocol; logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx, cfg, logger)
}
