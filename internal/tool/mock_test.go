package tool_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/sintem/gmail-mcp/internal/liam"
	"github.com/sintem/gmail-mcp/internal/tool"
)

// gatewayMock implements the full gateway surface with per-method function
// fields and call counting. Unconfigured methods fail the call.
type gatewayMock struct {
	mu    sync.Mutex
	calls map[string]int

	GetProfileFunc    func(ctx context.Context) (json.RawMessage, error)
	ListMessagesFunc  func(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error)
	GetMessageFunc    func(ctx context.Context, messageID string) (json.RawMessage, error)
	SearchFunc        func(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error)
	ListThreadsFunc   func(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error)
	GetThreadFunc     func(ctx context.Context, threadID string, includeHTML bool) (json.RawMessage, error)
	ListLabelsFunc    func(ctx context.Context, includeStats bool) (json.RawMessage, error)
	GetLabelFunc      func(ctx context.Context, labelID string) (json.RawMessage, error)
	CreateLabelFunc   func(ctx context.Context, name string) (json.RawMessage, error)
	DeleteLabelFunc   func(ctx context.Context, labelID string) (json.RawMessage, error)
	ListDraftsFunc    func(ctx context.Context, pageToken string, maxResults int64) (json.RawMessage, error)
	GetDraftFunc      func(ctx context.Context, draftID string) (json.RawMessage, error)
	CreateDraftFunc   func(ctx context.Context, draft liam.Draft) (json.RawMessage, error)
	SendDraftFunc     func(ctx context.Context, draftID string) (json.RawMessage, error)
	DeleteDraftFunc   func(ctx context.Context, draftID string) (json.RawMessage, error)
	GetAttachmentFunc func(ctx context.Context, messageID, attachmentID string) (json.RawMessage, error)
}

func (m *gatewayMock) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

func (m *gatewayMock) callCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *gatewayMock) totalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *gatewayMock) GetProfile(ctx context.Context) (json.RawMessage, error) {
	m.record("GetProfile")
	if m.GetProfileFunc == nil {
		return nil, fmt.Errorf("unexpected GetProfile call")
	}
	return m.GetProfileFunc(ctx)
}

func (m *gatewayMock) ListMessages(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error) {
	m.record("ListMessages")
	if m.ListMessagesFunc == nil {
		return nil, fmt.Errorf("unexpected ListMessages call")
	}
	return m.ListMessagesFunc(ctx, query, pageToken, maxResults)
}

func (m *gatewayMock) GetMessage(ctx context.Context, messageID string) (json.RawMessage, error) {
	m.record("GetMessage")
	if m.GetMessageFunc == nil {
		return nil, fmt.Errorf("unexpected GetMessage call")
	}
	return m.GetMessageFunc(ctx, messageID)
}

func (m *gatewayMock) Search(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error) {
	m.record("Search")
	if m.SearchFunc == nil {
		return nil, fmt.Errorf("unexpected Search call")
	}
	return m.SearchFunc(ctx, query, pageToken, maxResults)
}

func (m *gatewayMock) ListThreads(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error) {
	m.record("ListThreads")
	if m.ListThreadsFunc == nil {
		return nil, fmt.Errorf("unexpected ListThreads call")
	}
	return m.ListThreadsFunc(ctx, query, pageToken, maxResults)
}

func (m *gatewayMock) GetThread(ctx context.Context, threadID string, includeHTML bool) (json.RawMessage, error) {
	m.record("GetThread")
	if m.GetThreadFunc == nil {
		return nil, fmt.Errorf("unexpected GetThread call")
	}
	return m.GetThreadFunc(ctx, threadID, includeHTML)
}

func (m *gatewayMock) ListLabels(ctx context.Context, includeStats bool) (json.RawMessage, error) {
	m.record("ListLabels")
	if m.ListLabelsFunc == nil {
		return nil, fmt.Errorf("unexpected ListLabels call")
	}
	return m.ListLabelsFunc(ctx, includeStats)
}

func (m *gatewayMock) GetLabel(ctx context.Context, labelID string) (json.RawMessage, error) {
	m.record("GetLabel")
	if m.GetLabelFunc == nil {
		return nil, fmt.Errorf("unexpected GetLabel call")
	}
	return m.GetLabelFunc(ctx, labelID)
}

func (m *gatewayMock) CreateLabel(ctx context.Context, name string) (json.RawMessage, error) {
	m.record("CreateLabel")
	if m.CreateLabelFunc == nil {
		return nil, fmt.Errorf("unexpected CreateLabel call")
	}
	return m.CreateLabelFunc(ctx, name)
}

func (m *gatewayMock) DeleteLabel(ctx context.Context, labelID string) (json.RawMessage, error) {
	m.record("DeleteLabel")
	if m.DeleteLabelFunc == nil {
		return nil, fmt.Errorf("unexpected DeleteLabel call")
	}
	return m.DeleteLabelFunc(ctx, labelID)
}

func (m *gatewayMock) ListDrafts(ctx context.Context, pageToken string, maxResults int64) (json.RawMessage, error) {
	m.record("ListDrafts")
	if m.ListDraftsFunc == nil {
		return nil, fmt.Errorf("unexpected ListDrafts call")
	}
	return m.ListDraftsFunc(ctx, pageToken, maxResults)
}

func (m *gatewayMock) GetDraft(ctx context.Context, draftID string) (json.RawMessage, error) {
	m.record("GetDraft")
	if m.GetDraftFunc == nil {
		return nil, fmt.Errorf("unexpected GetDraft call")
	}
	return m.GetDraftFunc(ctx, draftID)
}

func (m *gatewayMock) CreateDraft(ctx context.Context, draft liam.Draft) (json.RawMessage, error) {
	m.record("CreateDraft")
	if m.CreateDraftFunc == nil {
		return nil, fmt.Errorf("unexpected CreateDraft call")
	}
	return m.CreateDraftFunc(ctx, draft)
}

func (m *gatewayMock) SendDraft(ctx context.Context, draftID string) (json.RawMessage, error) {
	m.record("SendDraft")
	if m.SendDraftFunc == nil {
		return nil, fmt.Errorf("unexpected SendDraft call")
	}
	return m.SendDraftFunc(ctx, draftID)
}

func (m *gatewayMock) DeleteDraft(ctx context.Context, draftID string) (json.RawMessage, error) {
	m.record("DeleteDraft")
	if m.DeleteDraftFunc == nil {
		return nil, fmt.Errorf("unexpected DeleteDraft call")
	}
	return m.DeleteDraftFunc(ctx, draftID)
}

func (m *gatewayMock) GetAttachment(ctx context.Context, messageID, attachmentID string) (json.RawMessage, error) {
	m.record("GetAttachment")
	if m.GetAttachmentFunc == nil {
		return nil, fmt.Errorf("unexpected GetAttachment call")
	}
	return m.GetAttachmentFunc(ctx, messageID, attachmentID)
}

// connect builds a tool server over svc and returns a connected in-memory
// client session.
func connect(t *testing.T, svc *gatewayMock, opts tool.Options) *mcp.ClientSession {
	t.Helper()

	server := tool.NewServer(svc, opts)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}
