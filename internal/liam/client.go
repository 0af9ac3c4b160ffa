// Package liam is the HTTP client for the LIAM backend. LIAM performs the
// real Gmail API calls and owns OAuth consent, token refresh and encryption
// at rest; the gateway's only contract with it is method + path +
// parameters in, JSON + status code out. Success bodies are relayed as raw
// JSON, never decoded.
package liam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/sintem/gmail-mcp/internal/auth"
	"github.com/sintem/gmail-mcp/internal/config"
)

// maxBodyBytes bounds a relayed backend response.
const maxBodyBytes = 32 << 20

// Observer receives one notification per backend request.
type Observer interface {
	BackendRequest(op string, code int, elapsed time.Duration)
}

// Option configures a Client.
type Option func(*Client)

// WithObserver wires metrics recording into the client.
func WithObserver(obs Observer) Option {
	return func(c *Client) { c.obs = obs }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// Client issues one backend call per tool invocation. It holds no state
// beyond the immutable configuration, so concurrent use needs no locking.
type Client struct {
	baseURL string
	token   string
	tokens  oauth2.TokenSource
	http    *http.Client
	obs     Observer
}

// NewClient creates a backend client. tokens may be nil when no
// process-wide credential is configured; callers must then supply a bearer
// via auth.WithToken on each context.
func NewClient(cfg *config.Config, tokens oauth2.TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.AccessToken,
		tokens:  tokens,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetProfile returns the connected account's profile.
func (c *Client) GetProfile(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, OpGetProfile, nil, nil, nil)
}

// ListMessages lists messages matching the query.
func (c *Client) ListMessages(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error) {
	return c.call(ctx, OpListMessages, nil, listQuery(query, pageToken, maxResults), nil)
}

// GetMessage returns the full content of one message.
func (c *Client) GetMessage(ctx context.Context, messageID string) (json.RawMessage, error) {
	return c.call(ctx, OpGetMessage, []string{messageID}, nil, nil)
}

// Search runs a Gmail query.
func (c *Client) Search(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error) {
	return c.call(ctx, OpSearch, nil, listQuery(query, pageToken, maxResults), nil)
}

// ListThreads lists conversation threads matching the query.
func (c *Client) ListThreads(ctx context.Context, query, pageToken string, maxResults int64) (json.RawMessage, error) {
	return c.call(ctx, OpListThreads, nil, listQuery(query, pageToken, maxResults), nil)
}

// GetThread returns a full thread with all messages.
func (c *Client) GetThread(ctx context.Context, threadID string, includeHTML bool) (json.RawMessage, error) {
	q := url.Values{}
	if includeHTML {
		q.Set("includeHtml", "true")
	}
	return c.call(ctx, OpGetThread, []string{threadID}, q, nil)
}

// ListLabels lists all labels.
func (c *Client) ListLabels(ctx context.Context, includeStats bool) (json.RawMessage, error) {
	q := url.Values{}
	if includeStats {
		q.Set("includeStats", "true")
	}
	return c.call(ctx, OpListLabels, nil, q, nil)
}

// GetLabel returns one label.
func (c *Client) GetLabel(ctx context.Context, labelID string) (json.RawMessage, error) {
	return c.call(ctx, OpGetLabel, []string{labelID}, nil, nil)
}

// CreateLabel creates a user label.
func (c *Client) CreateLabel(ctx context.Context, name string) (json.RawMessage, error) {
	return c.call(ctx, OpCreateLabel, nil, nil, map[string]string{"name": name})
}

// DeleteLabel deletes a user label.
func (c *Client) DeleteLabel(ctx context.Context, labelID string) (json.RawMessage, error) {
	return c.call(ctx, OpDeleteLabel, []string{labelID}, nil, nil)
}

// ListDrafts lists drafts.
func (c *Client) ListDrafts(ctx context.Context, pageToken string, maxResults int64) (json.RawMessage, error) {
	return c.call(ctx, OpListDrafts, nil, listQuery("", pageToken, maxResults), nil)
}

// GetDraft returns one draft.
func (c *Client) GetDraft(ctx context.Context, draftID string) (json.RawMessage, error) {
	return c.call(ctx, OpGetDraft, []string{draftID}, nil, nil)
}

// Draft is the outgoing draft content; the backend builds the MIME message.
type Draft struct {
	To      string `json:"to"`
	CC      string `json:"cc,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

// CreateDraft creates a draft.
func (c *Client) CreateDraft(ctx context.Context, draft Draft) (json.RawMessage, error) {
	return c.call(ctx, OpCreateDraft, nil, nil, draft)
}

// SendDraft sends an existing draft.
func (c *Client) SendDraft(ctx context.Context, draftID string) (json.RawMessage, error) {
	return c.call(ctx, OpSendDraft, []string{draftID}, nil, nil)
}

// DeleteDraft deletes a draft.
func (c *Client) DeleteDraft(ctx context.Context, draftID string) (json.RawMessage, error) {
	return c.call(ctx, OpDeleteDraft, []string{draftID}, nil, nil)
}

// GetAttachment returns one attachment body.
func (c *Client) GetAttachment(ctx context.Context, messageID, attachmentID string) (json.RawMessage, error) {
	return c.call(ctx, OpGetAttachment, []string{messageID, attachmentID}, nil, nil)
}

func listQuery(query, pageToken string, maxResults int64) url.Values {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	q.Set("max", strconv.FormatInt(maxResults, 10))
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	return q
}

// call issues exactly one backend request and relays the response body.
func (c *Client) call(ctx context.Context, op Operation, args []string, query url.Values, body any) (json.RawMessage, error) {
	ep, ok := endpoints[op]
	if !ok {
		return nil, &Error{Kind: KindBackendError, Message: fmt.Sprintf("unknown operation %q", op)}
	}

	token, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + fillPath(ep.path, args)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindBackendError, Message: fmt.Sprintf("encode request body: %v", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, u, reqBody)
	if err != nil {
		return nil, &Error{Kind: KindBackendError, Message: redact(err.Error(), token)}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(op, 0, time.Since(start))
		return nil, &Error{Kind: KindBackendUnavailable, Message: redact(err.Error(), token)}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	elapsed := time.Since(start)
	c.observe(op, resp.StatusCode, elapsed)
	if err != nil {
		return nil, &Error{Kind: KindBackendUnavailable, Message: redact(err.Error(), token)}
	}

	slog.Debug("backend request", "operation", string(op), "code", resp.StatusCode, "elapsed", elapsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		callErr := decodeError(resp.StatusCode, raw)
		callErr.Message = redact(callErr.Message, token)
		return nil, callErr
	}

	if len(raw) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return json.RawMessage(raw), nil
}

// bearer resolves the credential for one call: a per-request token from the
// context wins over the process-wide token source.
func (c *Client) bearer(ctx context.Context) (string, error) {
	if token, ok := auth.TokenFromContext(ctx); ok {
		return token, nil
	}
	if c.tokens != nil {
		t, err := c.tokens.Token()
		if err != nil {
			return "", &Error{Kind: KindUnauthorized, Message: redact(err.Error(), c.token)}
		}
		return t.AccessToken, nil
	}
	return "", &Error{Kind: KindUnauthorized, Message: "no credential configured: set LIAM_ACCESS_TOKEN or send an Authorization header"}
}

func fillPath(template string, args []string) string {
	escaped := make([]any, 0, len(args))
	for _, a := range args {
		escaped = append(escaped, url.PathEscape(a))
	}
	return fmt.Sprintf(template, escaped...)
}

func (c *Client) observe(op Operation, code int, elapsed time.Duration) {
	if c.obs != nil {
		c.obs.BackendRequest(string(op), code, elapsed)
	}
}
