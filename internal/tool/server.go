// Package tool exposes the assistant through the Model Context Protocol so
// LLM hosts can drive the email pipeline directly.
package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with the assistant tools.
func NewServer(runner commandRunner, accessToken string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "gmail-voice", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_command",
		Description: "Route a free-form spoken command to an email action (summarize unread, draft, reply)",
	}, NewRunCommand(runner, accessToken).RunCommand)

	return server
}
