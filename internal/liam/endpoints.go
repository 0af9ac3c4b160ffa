package liam

import "net/http"

// Operation identifies one backend endpoint.
type Operation string

// Backend operations, one per exposed tool.
const (
	OpGetProfile    Operation = "get_profile"
	OpListMessages  Operation = "list_messages"
	OpGetMessage    Operation = "get_message"
	OpSearch        Operation = "search"
	OpListThreads   Operation = "list_threads"
	OpGetThread     Operation = "get_thread"
	OpListLabels    Operation = "list_labels"
	OpGetLabel      Operation = "get_label"
	OpCreateLabel   Operation = "create_label"
	OpDeleteLabel   Operation = "delete_label"
	OpListDrafts    Operation = "list_drafts"
	OpGetDraft      Operation = "get_draft"
	OpCreateDraft   Operation = "create_draft"
	OpSendDraft     Operation = "send_draft"
	OpDeleteDraft   Operation = "delete_draft"
	OpGetAttachment Operation = "get_attachment"
)

type endpoint struct {
	method string
	// path is a template; each %s is filled with a path-escaped argument.
	path string
}

// endpoints is the declarative catalog mapping each operation to its
// backend route. Dispatch and validation stay uniform because every tool
// goes through this table.
var endpoints = map[Operation]endpoint{
	OpGetProfile:    {http.MethodGet, "/mcpGmailGetProfile"},
	OpListMessages:  {http.MethodGet, "/mcpGmailListMessages"},
	OpGetMessage:    {http.MethodGet, "/mcpGmailGetMessage/%s"},
	OpSearch:        {http.MethodGet, "/mcpGmailSearch"},
	OpListThreads:   {http.MethodGet, "/mcpGmailListThreads"},
	OpGetThread:     {http.MethodGet, "/mcpGmailGetThread/%s"},
	OpListLabels:    {http.MethodGet, "/mcpGmailListLabels"},
	OpGetLabel:      {http.MethodGet, "/mcpGmailGetLabel/%s"},
	OpCreateLabel:   {http.MethodPost, "/mcpGmailCreateLabel"},
	OpDeleteLabel:   {http.MethodDelete, "/mcpGmailDeleteLabel/%s"},
	OpListDrafts:    {http.MethodGet, "/mcpGmailListDrafts"},
	OpGetDraft:      {http.MethodGet, "/mcpGmailGetDraft/%s"},
	OpCreateDraft:   {http.MethodPost, "/mcpGmailCreateDraft"},
	OpSendDraft:     {http.MethodPost, "/mcpGmailSendDraft/%s"},
	OpDeleteDraft:   {http.MethodDelete, "/mcpGmailDeleteDraft/%s"},
	OpGetAttachment: {http.MethodGet, "/mcpGmailGetAttachment/%s/%s"},
}
