package tool

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetAttachmentRequest fetches one attachment body.
type GetAttachmentRequest struct {
	MessageID    string `json:"message_id" jsonschema:"the message the attachment belongs to"`
	AttachmentID string `json:"attachment_id" jsonschema:"the attachment ID from the message payload"`
}

type attachmentsSvc interface {
	GetAttachment(ctx context.Context, messageID, attachmentID string) (json.RawMessage, error)
}

// NewAttachments creates the attachment tool.
func NewAttachments(svc attachmentsSvc) *Attachments {
	return &Attachments{svc: svc}
}

// Attachments forwards the attachment tool to the backend.
type Attachments struct {
	svc attachmentsSvc
}

// GetAttachment handles gmail_get_attachment.
func (t *Attachments) GetAttachment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetAttachmentRequest,
) (*mcp.CallToolResult, any, error) {
	if err := requireID("message_id", input.MessageID); err != nil {
		return nil, nil, err
	}
	if err := requireID("attachment_id", input.AttachmentID); err != nil {
		return nil, nil, err
	}

	raw, err := t.svc.GetAttachment(ctx, input.MessageID, input.AttachmentID)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}
