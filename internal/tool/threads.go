package tool

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListThreadsRequest lists conversation threads.
type ListThreadsRequest struct {
	Query      string `json:"query,omitempty" jsonschema:"Gmail search query to filter threads, defaults to in:inbox"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"maximum threads to return (1-100, default 10)"`
	PageToken  string `json:"page_token,omitempty" jsonschema:"pagination token for the next page"`
}

// GetThreadRequest fetches a full thread.
type GetThreadRequest struct {
	ThreadID    string `json:"thread_id" jsonschema:"the Gmail thread ID"`
	IncludeHTML bool   `json:"include_html,omitempty" jsonschema:"include HTML body content"`
}

type threadsSvc interface {
	ListThreads(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error)
	GetThread(ctx context.Context, threadID string, includeHTML bool) (json.RawMessage, error)
}

// NewThreads creates the thread tools.
func NewThreads(svc threadsSvc) *Threads {
	return &Threads{svc: svc}
}

// Threads forwards thread tools to the backend.
type Threads struct {
	svc threadsSvc
}

// ListThreads handles gmail_list_threads.
func (t *Threads) ListThreads(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListThreadsRequest,
) (*mcp.CallToolResult, any, error) {
	max, err := clampResults(input.MaxResults, defaultListResults)
	if err != nil {
		return nil, nil, err
	}

	query := input.Query
	if query == "" {
		query = defaultQuery
	}

	raw, err := t.svc.ListThreads(ctx, query, input.PageToken, max)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}

// GetThread handles gmail_get_thread.
func (t *Threads) GetThread(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetThreadRequest,
) (*mcp.CallToolResult, any, error) {
	if err := requireID("thread_id", input.ThreadID); err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.GetThread(ctx, input.ThreadID, input.IncludeHTML)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}
