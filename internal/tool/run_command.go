package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hal9000y/gmail-voice/internal/assistant"
)

// RunCommandRequest carries the spoken command to execute.
type RunCommandRequest struct {
	Command string `json:"command" jsonschema:"free-form spoken command, e.g. 'summarize my unread emails'"`
}

// RunCommandResponse mirrors the assistant's terminal result.
type RunCommandResponse struct {
	OK      bool   `json:"ok" jsonschema:"whether the action succeeded"`
	Message string `json:"message" jsonschema:"spoken confirmation, digest or failure message"`
}

type commandRunner interface {
	Handle(ctx context.Context, command, accessToken string) assistant.Result
}

// NewRunCommand creates the run_command tool. accessToken is the process-wide
// mail credential; MCP hosts do not forward per-request tokens.
func NewRunCommand(runner commandRunner, accessToken string) *RunCommand {
	return &RunCommand{
		runner:      runner,
		accessToken: accessToken,
	}
}

// RunCommand routes a spoken command through the full assistant pipeline.
type RunCommand struct {
	runner      commandRunner
	accessToken string
}

// RunCommand executes the command and returns the terminal result.
func (t *RunCommand) RunCommand(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RunCommandRequest,
) (*mcp.CallToolResult, RunCommandResponse, error) {
	result := t.runner.Handle(ctx, input.Command, t.accessToken)

	return nil, RunCommandResponse{
		OK:      result.OK,
		Message: result.Message,
	}, nil
}
