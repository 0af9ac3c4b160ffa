package tool

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sintem/gmail-mcp/internal/liam"
)

// ListDraftsRequest lists drafts.
type ListDraftsRequest struct {
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"maximum drafts to return (1-100, default 10)"`
	PageToken  string `json:"page_token,omitempty" jsonschema:"pagination token for the next page"`
}

// GetDraftRequest fetches one draft.
type GetDraftRequest struct {
	DraftID string `json:"draft_id" jsonschema:"the Gmail draft ID"`
}

// CreateDraftRequest creates a draft message.
type CreateDraftRequest struct {
	To      string `json:"to" jsonschema:"recipient email address"`
	CC      string `json:"cc,omitempty" jsonschema:"CC recipients, comma separated"`
	Subject string `json:"subject,omitempty" jsonschema:"email subject"`
	Body    string `json:"body,omitempty" jsonschema:"plain text email body"`
}

// SendDraftRequest sends an existing draft.
type SendDraftRequest struct {
	DraftID string `json:"draft_id" jsonschema:"the draft ID to send"`
}

// DeleteDraftRequest deletes a draft.
type DeleteDraftRequest struct {
	DraftID string `json:"draft_id" jsonschema:"the draft ID to delete"`
}

type draftsSvc interface {
	ListDrafts(ctx context.Context, pageToken string, maxResults int64) (json.RawMessage, error)
	GetDraft(ctx context.Context, draftID string) (json.RawMessage, error)
	CreateDraft(ctx context.Context, draft liam.Draft) (json.RawMessage, error)
	SendDraft(ctx context.Context, draftID string) (json.RawMessage, error)
	DeleteDraft(ctx context.Context, draftID string) (json.RawMessage, error)
}

// NewDrafts creates the draft tools.
func NewDrafts(svc draftsSvc) *Drafts {
	return &Drafts{svc: svc}
}

// Drafts forwards draft tools to the backend.
type Drafts struct {
	svc draftsSvc
}

// ListDrafts handles gmail_list_drafts.
func (t *Drafts) ListDrafts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDraftsRequest,
) (*mcp.CallToolResult, any, error) {
	max, err := clampResults(input.MaxResults, defaultListResults)
	if err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.ListDrafts(ctx, input.PageToken, max)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}

// GetDraft handles gmail_get_draft.
func (t *Drafts) GetDraft(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDraftRequest,
) (*mcp.CallToolResult, any, error) {
	if err := requireID("draft_id", input.DraftID); err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.GetDraft(ctx, input.DraftID)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}

// CreateDraft handles gmail_create_draft.
func (t *Drafts) CreateDraft(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateDraftRequest,
) (*mcp.CallToolResult, any, error) {
	if err := requireID("to", input.To); err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.CreateDraft(ctx, liam.Draft{
		To:      input.To,
		CC:      input.CC,
		Subject: input.Subject,
		Body:    input.Body,
	})
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}

// SendDraft handles gmail_send_draft.
func (t *Drafts) SendDraft(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendDraftRequest,
) (*mcp.CallToolResult, any, error) {
	if err := requireID("draft_id", input.DraftID); err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.SendDraft(ctx, input.DraftID)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}

// DeleteDraft handles gmail_delete_draft.
func (t *Drafts) DeleteDraft(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteDraftRequest,
) (*mcp.CallToolResult, any, error) {
	if err := requireID("draft_id", input.DraftID); err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.DeleteDraft(ctx, input.DraftID)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}
