package tool

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetProfileRequest has no parameters.
type GetProfileRequest struct{}

type profileSvc interface {
	GetProfile(ctx context.Context) (json.RawMessage, error)
}

// NewProfile creates the profile tool.
func NewProfile(svc profileSvc) *Profile {
	return &Profile{svc: svc}
}

// Profile forwards the profile tool to the backend.
type Profile struct {
	svc profileSvc
}

// GetProfile handles gmail_get_profile.
func (t *Profile) GetProfile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetProfileRequest,
) (*mcp.CallToolResult, any, error) {
	raw, err := t.svc.GetProfile(ctx)
	if err != nil {
		return nil, nil, err
	}

	return rawResult(raw), nil, nil
}
