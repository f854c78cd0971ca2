package main

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type CommandInput struct {
	Command string `json:"command" jsonschema:"Game command to execute"`
	Reset   bool   `json:"reset,omitempty" jsonschema:"Start a new game before executing the command"`
}

type CommandOutput struct {
	Output string      `json:"output" jsonschema:"Raw game output"`
	State  GameSummary `json:"state" jsonschema:"Summary of the current game state"`
}

// MCPServer drives a single game from sequential tool calls.
type MCPServer struct {
	mu   sync.Mutex
	game *GameState
	opts GameOptions
}

func NewMCPServer(opts GameOptions) (*MCPServer, error) {
	var buf bytes.Buffer
	game, err := NewGame(opts, &buf)
	if err != nil {
		return nil, err
	}
	return &MCPServer{game: game, opts: opts}, nil
}

// ExecuteCommand runs one command and captures what it printed.
func ExecuteCommand(s *GameState, cmd string) (string, GameSummary) {
	var buf bytes.Buffer
	prevOut := s.Out
	s.Out = &buf
	defer func() {
		s.Out = prevOut
	}()

	trimmed := strings.TrimSpace(cmd)
	switch {
	case !s.IsPlaying:
		outPrintln(s, "The game is over. Reset to play again.")
	case trimmed == "":
		look(s)
	default:
		processCommand(s, trimmed)
	}

	return buf.String(), SummarizeState(s)
}

func (s *MCPServer) HandleCommand(_ context.Context, _ *mcp.CallToolRequest, input CommandInput) (*mcp.CallToolResult, CommandOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prefix string
	if input.Reset {
		var buf bytes.Buffer
		game, err := NewGame(s.opts, &buf)
		if err != nil {
			return nil, CommandOutput{}, err
		}
		s.game = game
		look(game)
		prefix = buf.String()
		if strings.TrimSpace(input.Command) == "" {
			return nil, CommandOutput{Output: prefix, State: SummarizeState(game)}, nil
		}
	}

	output, summary := ExecuteCommand(s.game, input.Command)
	return nil, CommandOutput{Output: prefix + output, State: summary}, nil
}

// RunMCPStdio serves the "command" tool on stdin/stdout until ctx ends or
// the client disconnects.
func RunMCPStdio(ctx context.Context, server *MCPServer) error {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "dungeonmini",
		Version: GameVersion,
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "command",
		Description: "Send a command to the DungeonMini game and return its output plus a state summary.",
	}, server.HandleCommand)

	return mcpServer.Run(ctx, &mcp.StdioTransport{})
}
