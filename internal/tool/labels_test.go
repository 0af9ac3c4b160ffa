package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sintem/gmail-mcp/internal/tool"
)

func TestListLabelsIncludeStats(t *testing.T) {
	backendBody := `{"labels":[{"id":"INBOX","name":"INBOX","type":"system","messages_total":120}]}`

	var gotStats bool
	svc := &gatewayMock{
		ListLabelsFunc: func(_ context.Context, includeStats bool) (json.RawMessage, error) {
			gotStats = includeStats
			return json.RawMessage(backendBody), nil
		},
	}

	session := connect(t, svc, tool.Options{})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "gmail_list_labels",
		Arguments: tool.ListLabelsRequest{IncludeStats: true},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.True(t, gotStats)
	assert.Equal(t, backendBody, resultText(t, result))
}

func TestCreateLabelRequiresName(t *testing.T) {
	svc := &gatewayMock{}
	session := connect(t, svc, tool.Options{})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "gmail_create_label",
		Arguments: map[string]any{"name": "  "},
	})
	require.NoError(t, err)
	require.True(t, result.IsError)

	assert.Contains(t, resultText(t, result), "invalid_parameter")
	assert.Equal(t, 0, svc.totalCalls())
}

func TestDeleteLabel(t *testing.T) {
	svc := &gatewayMock{
		DeleteLabelFunc: func(_ context.Context, labelID string) (json.RawMessage, error) {
			require.Equal(t, "Label_17", labelID)
			return json.RawMessage(`{}`), nil
		},
	}

	session := connect(t, svc, tool.Options{})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "gmail_delete_label",
		Arguments: tool.DeleteLabelRequest{LabelID: "Label_17"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, 1, svc.callCount("DeleteLabel"))
}
