// Package tool defines the MCP tool catalog. Every tool validates its
// parameters against a fixed schema, makes exactly one backend call, and
// relays the backend's JSON response verbatim as text content.
package tool

import (
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sintem/gmail-mcp/internal/liam"
)

const (
	defaultQuery = "in:inbox"

	minResults = 1
	maxResults = 100

	defaultListResults   = 10
	defaultSearchResults = 20
)

// rawResult wraps a backend response body without touching it.
func rawResult(raw json.RawMessage) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// requireID rejects empty required identifiers before any backend call.
func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return liam.InvalidParameter("%s must not be empty", name)
	}
	return nil
}

// clampResults applies the documented 1..100 bound. Zero means the tool's
// default; negatives are a schema violation.
func clampResults(n, def int64) (int64, error) {
	switch {
	case n < 0:
		return 0, liam.InvalidParameter("max_results must be positive, got %d", n)
	case n == 0:
		return def, nil
	case n < minResults:
		return minResults, nil
	case n > maxResults:
		return maxResults, nil
	default:
		return n, nil
	}
}
