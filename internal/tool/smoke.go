package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EchoRequest echoes a message back.
type EchoRequest struct {
	Message string `json:"message" jsonschema:"the message to echo"`
}

// InfoRequest has no parameters.
type InfoRequest struct{}

// NewSmoke creates the smoke-test tools, used to verify deployments
// without touching the backend.
func NewSmoke(serverName, version string) *Smoke {
	return &Smoke{serverName: serverName, version: version}
}

// Smoke answers locally; no backend call is made.
type Smoke struct {
	serverName string
	version    string
}

// Echo handles smoke_echo.
func (t *Smoke) Echo(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input EchoRequest,
) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Echo: " + input.Message}},
	}, nil, nil
}

// Info handles smoke_info.
func (t *Smoke) Info(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ InfoRequest,
) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{
			Text: fmt.Sprintf("%s %s - Gmail tools provided by LIAM (doitliam.com)", t.serverName, t.version),
		}},
	}, nil, nil
}
