package tool

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListLabelsRequest lists all labels.
type ListLabelsRequest struct {
	IncludeStats bool `json:"include_stats,omitempty" jsonschema:"include message and thread counts per label"`
}

// GetLabelRequest fetches one label.
type GetLabelRequest struct {
	LabelID string `json:"label_id" jsonschema:"the Gmail label ID"`
}

// CreateLabelRequest creates a user label.
type CreateLabelRequest struct {
	Name string `json:"name" jsonschema:"label name, use / for nesting, e.g. Projects/Work"`
}

// DeleteLabelRequest deletes a user label.
type DeleteLabelRequest struct {
	LabelID string `json:"label_id" jsonschema:"the label ID to delete, system labels cannot be deleted"`
}

type labelsSvc interface {
	ListLabels(ctx context.Context, includeStats bool) (json.RawMessage, error)
	GetLabel(ctx context.Context, labelID string) (json.RawMessage, error)
	CreateLabel(ctx context.Context, name string) (json.RawMessage, error)
	DeleteLabel(ctx context.Context, labelID string) (json.RawMessage, error)
}

// NewLabels creates the label tools.
func NewLabels(svc labelsSvc) *Labels {
	return &Labels{svc: svc}
}

// Labels forwards label tools to the backend.
type Labels struct {
	svc labelsSvc
}

// ListLabels handles gmail_list_labels.
func (t *Labels) ListLabels(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListLabelsRequest,
) (*mcp.CallToolResult, any, error) {
	raw, err := t.svc.ListLabels(ctx, input.IncludeStats)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}

// GetLabel handles gmail_get_label.
func (t *Labels) GetLabel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetLabelRequest,
) (*mcp.CallToolResult, any, error) {
	if err := requireID("label_id", input.LabelID); err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.GetLabel(ctx, input.LabelID)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}

// CreateLabel handles gmail_create_label.
func (t *Labels) CreateLabel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateLabelRequest,
) (*mcp.CallToolResult, any, error) {
	if err := requireID("name", input.Name); err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.CreateLabel(ctx, input.Name)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}

// DeleteLabel handles gmail_delete_label.
func (t *Labels) DeleteLabel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteLabelRequest,
) (*mcp.CallToolResult, any, error) {
	if err := requireID("label_id", input.LabelID); err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.DeleteLabel(ctx, input.LabelID)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}
