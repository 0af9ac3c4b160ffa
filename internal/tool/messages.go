package tool

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListMessagesRequest lists recent messages.
type ListMessagesRequest struct {
	Query      string `json:"query,omitempty" jsonschema:"Gmail search query, defaults to in:inbox"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"maximum messages to return (1-100, default 10)"`
	PageToken  string `json:"page_token,omitempty" jsonschema:"pagination token for the next page"`
}

// GetMessageRequest fetches one message by ID.
type GetMessageRequest struct {
	MessageID string `json:"message_id" jsonschema:"the Gmail message ID"`
}

// SearchRequest runs a Gmail query.
type SearchRequest struct {
	Query      string `json:"query" jsonschema:"Gmail search query, e.g. from:boss@company.com is:unread"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"maximum results to return (1-100, default 20)"`
	PageToken  string `json:"page_token,omitempty" jsonschema:"pagination token for the next page"`
}

type messagesSvc interface {
	ListMessages(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error)
	GetMessage(ctx context.Context, messageID string) (json.RawMessage, error)
	Search(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error)
}

// NewMessages creates the message tools.
func NewMessages(svc messagesSvc) *Messages {
	return &Messages{svc: svc}
}

// Messages forwards message tools to the backend.
type Messages struct {
	svc messagesSvc
}

// ListMessages handles gmail_list_messages.
func (t *Messages) ListMessages(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListMessagesRequest,
) (*mcp.CallToolResult, any, error) {
	max, err := clampResults(input.MaxResults, defaultListResults)
	if err != nil {
		return nil, nil, err
	}

	query := input.Query
	if query == "" {
		query = defaultQuery
	}

	raw, err := t.svc.ListMessages(ctx, query, input.PageToken, max)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}

// GetMessage handles gmail_get_message.
func (t *Messages) GetMessage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetMessageRequest,
) (*mcp.CallToolResult, any, error) {
	if err := requireID("message_id", input.MessageID); err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.GetMessage(ctx, input.MessageID)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}

// Search handles gmail_search.
func (t *Messages) Search(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchRequest,
) (*mcp.CallToolResult, any, error) {
	if err := requireID("query", input.Query); err != nil {
		return nil, nil, err
	}

	max, err := clampResults(input.MaxResults, defaultSearchResults)
	if err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.Search(ctx, input.Query, input.PageToken, max)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}
