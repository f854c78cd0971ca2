package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
)

const exitStartupFailure = 2

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitStartupFailure
	}
	fl, err := parseFlags(args, cfg, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return exitStartupFailure
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitStartupFailure
	}
	slog.SetDefault(newLogger(cfg, stderr))

	if fl.MCP {
		server, err := NewMCPServer(cfg.GameOptions())
		if err != nil {
			slog.Error("Failed to start game", "error", err)
			return exitStartupFailure
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := RunMCPStdio(ctx, server); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("MCP server stopped", "error", err)
			return 1
		}
		return 0
	}

	s, err := NewGame(cfg.GameOptions(), stdout)
	if err != nil {
		slog.Error("Failed to start game", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitStartupFailure
	}
	s.IsHeadless = fl.Headless

	outPrintf(s, "%s %s. Type 'help' for commands.\n", GameName, GameVersion)
	look(s)

	for _, cmd := range fl.Commands {
		if !s.IsPlaying {
			break
		}
		outPrintf(s, "> %s\n", cmd)
		processCommand(s, cmd)
	}
	if s.IsPlaying {
		runLoop(s, newLineReader(stdin, s.IsHeadless))
	}

	outPrintf(s, "🏆 Final score: %d\n", s.Score)
	return s.ExitCode()
}
