package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sintem/gmail-mcp/internal/liam"
	"github.com/sintem/gmail-mcp/internal/metrics"
)

type gatewaySvc interface {
	profileSvc
	messagesSvc
	threadsSvc
	labelsSvc
	draftsSvc
	attachmentsSvc
}

// Options configures the tool server.
type Options struct {
	Name    string
	Version string
	// ReadOnly hides all mutation tools from the catalog.
	ReadOnly bool
	// Metrics may be nil.
	Metrics *metrics.Recorder
}

// NewServer creates an MCP server exposing the Gmail tool catalog. Every
// tool forwards one request to the LIAM backend; write tools are only
// registered when the allowed scopes permit mutation.
func NewServer(svc gatewaySvc, opts Options) *mcp.Server {
	if opts.Name == "" {
		opts.Name = "gmail-mcp"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	server := mcp.NewServer(&mcp.Implementation{Name: opts.Name, Version: opts.Version}, nil)
	rec := opts.Metrics

	profile := NewProfile(svc)
	messages := NewMessages(svc)
	threads := NewThreads(svc)
	labels := NewLabels(svc)
	drafts := NewDrafts(svc)
	attachments := NewAttachments(svc)
	smoke := NewSmoke(opts.Name, opts.Version)

	addTool(server, rec, &mcp.Tool{
		Name:        "gmail_get_profile",
		Description: "Get the connected Gmail account profile (email address, message and thread counts)",
		Annotations: readOnlyHint(),
	}, profile.GetProfile)

	addTool(server, rec, &mcp.Tool{
		Name:        "gmail_list_messages",
		Description: "List recent emails from the user's Gmail inbox, optionally filtered by a search query",
		Annotations: readOnlyHint(),
	}, messages.ListMessages)

	addTool(server, rec, &mcp.Tool{
		Name:        "gmail_get_message",
		Description: "Get the full content of a specific email by its message ID",
		Annotations: readOnlyHint(),
	}, messages.GetMessage)

	addTool(server, rec, &mcp.Tool{
		Name:        "gmail_search",
		Description: "Search emails using Gmail query syntax (from:, subject:, is:unread, has:attachment, ...)",
		Annotations: readOnlyHint(),
	}, messages.Search)

	addTool(server, rec, &mcp.Tool{
		Name:        "gmail_list_threads",
		Description: "List email conversation threads from the user's inbox",
		Annotations: readOnlyHint(),
	}, threads.ListThreads)

	addTool(server, rec, &mcp.Tool{
		Name:        "gmail_get_thread",
		Description: "Get a full email thread with all messages in the conversation",
		Annotations: readOnlyHint(),
	}, threads.GetThread)

	addTool(server, rec, &mcp.Tool{
		Name:        "gmail_list_labels",
		Description: "List all Gmail labels, both system and user-created",
		Annotations: readOnlyHint(),
	}, labels.ListLabels)

	addTool(server, rec, &mcp.Tool{
		Name:        "gmail_get_label",
		Description: "Get details of a Gmail label, including counts when requested",
		Annotations: readOnlyHint(),
	}, labels.GetLabel)

	addTool(server, rec, &mcp.Tool{
		Name:        "gmail_list_drafts",
		Description: "List draft emails",
		Annotations: readOnlyHint(),
	}, drafts.ListDrafts)

	addTool(server, rec, &mcp.Tool{
		Name:        "gmail_get_draft",
		Description: "Get the content of a draft email by its draft ID",
		Annotations: readOnlyHint(),
	}, drafts.GetDraft)

	addTool(server, rec, &mcp.Tool{
		Name:        "gmail_get_attachment",
		Description: "Get an email attachment body by message and attachment ID",
		Annotations: readOnlyHint(),
	}, attachments.GetAttachment)

	addTool(server, rec, &mcp.Tool{
		Name:        "smoke_echo",
		Description: "Smoke test tool that echoes input",
		Annotations: readOnlyHint(),
	}, smoke.Echo)

	addTool(server, rec, &mcp.Tool{
		Name:        "smoke_info",
		Description: "Smoke test tool that returns server info",
		Annotations: readOnlyHint(),
	}, smoke.Info)

	if !opts.ReadOnly {
		addTool(server, rec, &mcp.Tool{
			Name:        "gmail_create_label",
			Description: "Create a custom Gmail label, use / in the name for nesting",
			Annotations: &mcp.ToolAnnotations{DestructiveHint: boolPtr(false)},
		}, labels.CreateLabel)

		addTool(server, rec, &mcp.Tool{
			Name:        "gmail_delete_label",
			Description: "Delete a custom Gmail label, system labels cannot be deleted",
			Annotations: &mcp.ToolAnnotations{DestructiveHint: boolPtr(true)},
		}, labels.DeleteLabel)

		addTool(server, rec, &mcp.Tool{
			Name:        "gmail_create_draft",
			Description: "Create a draft email without sending it",
			Annotations: &mcp.ToolAnnotations{DestructiveHint: boolPtr(false)},
		}, drafts.CreateDraft)

		addTool(server, rec, &mcp.Tool{
			Name:        "gmail_send_draft",
			Description: "Send an existing draft email",
			Annotations: &mcp.ToolAnnotations{DestructiveHint: boolPtr(false)},
		}, drafts.SendDraft)

		addTool(server, rec, &mcp.Tool{
			Name:        "gmail_delete_draft",
			Description: "Delete a draft email",
			Annotations: &mcp.ToolAnnotations{DestructiveHint: boolPtr(true)},
		}, drafts.DeleteDraft)
	}

	return server
}

// addTool registers a typed handler wrapped with per-tool metrics.
func addTool[In any](
	server *mcp.Server,
	rec *metrics.Recorder,
	t *mcp.Tool,
	h func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, any, error),
) {
	mcp.AddTool(server, t, func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, any, error) {
		res, out, err := h(ctx, req, input)
		rec.ToolCall(t.Name, outcome(err))
		return res, out, err
	})
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := liam.KindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}

func readOnlyHint() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{ReadOnlyHint: true}
}

func boolPtr(b bool) *bool {
	return &b
}
