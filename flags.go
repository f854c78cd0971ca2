package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

type cliFlags struct {
	Headless bool
	MCP      bool
	Commands stringSlice
}

// parseFlags applies command-line overrides on top of cfg.
func parseFlags(args []string, cfg *Config, out io.Writer) (*cliFlags, error) {
	var fl cliFlags
	fs := flag.NewFlagSet("dungeonmini", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.BoolVar(&fl.Headless, "headless", false, "Read plain lines from stdin (no raw terminal input)")
	fs.BoolVar(&fl.MCP, "mcp", false, "Serve the game as an MCP tool over stdio")
	fs.StringVar(&cfg.SavePath, "save", cfg.SavePath, "Save file path")
	fs.StringVar(&cfg.ScoresPath, "scores", cfg.ScoresPath, "Score file path")
	fs.StringVar(&cfg.WorldPath, "world", cfg.WorldPath, "World definition (INI); empty uses the built-in world")
	fs.Var(&fl.Commands, "cmd", "Command to run before the interactive loop (repeatable)")

	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: dungeonmini [options]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEnvironment: %s_SAVE_PATH, %s_SCORES_PATH, %s_WORLD_PATH,\n", envPrefix, envPrefix, envPrefix)
		fmt.Fprintf(out, "  %s_SCOREBOARD_SIZE, %s_LOG_LEVEL, %s_LOG_FORMAT\n", envPrefix, envPrefix, envPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &fl, nil
}
