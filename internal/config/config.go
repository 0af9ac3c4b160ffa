// Package config loads the gateway's process-wide settings from the
// environment. The resulting Config is built once at startup and never
// mutated afterwards.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"google.golang.org/api/gmail/v1"
)

const (
	// DefaultBaseURL is the production LIAM backend, fronted by a
	// Cloudflare Worker for .well-known routing.
	DefaultBaseURL = "https://api-dev.doitliam.com"

	// DefaultServerName is the MCP implementation name reported to clients.
	DefaultServerName = "gmail-mcp"

	// DefaultTimeout bounds a single backend request.
	DefaultTimeout = 30 * time.Second

	// DefaultScopes is used when LIAM_SCOPES is unset.
	DefaultScopes = "gmail.readonly"
)

// scopeURLs maps LIAM's short scope names onto the Gmail OAuth scope URLs
// the backend expects.
var scopeURLs = map[string]string{
	"gmail.readonly": gmail.GmailReadonlyScope,
	"gmail.labels":   gmail.GmailLabelsScope,
	"gmail.modify":   gmail.GmailModifyScope,
	"gmail.compose":  gmail.GmailComposeScope,
	"gmail.send":     gmail.GmailSendScope,
}

// writeScopes are the short names that permit mutation tools.
var writeScopes = map[string]bool{
	"gmail.labels":  true,
	"gmail.modify":  true,
	"gmail.compose": true,
	"gmail.send":    true,
}

// Config holds all settings the gateway reads at startup.
type Config struct {
	// BaseURL is the LIAM backend base URL.
	BaseURL string
	// AccessToken is the optional process-wide bearer credential. When empty
	// a per-request token must arrive with each call.
	AccessToken string
	// Scopes are the allowed Gmail OAuth scope URLs.
	Scopes []string
	// ServerName identifies this tool server to MCP clients.
	ServerName string
	// Timeout bounds each outbound backend request.
	Timeout time.Duration

	writable bool
}

// Load builds a Config from the environment. Call godotenv.Load beforehand
// if an env file should be honoured.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:     envOr("LIAM_API_URL", DefaultBaseURL),
		AccessToken: os.Getenv("LIAM_ACCESS_TOKEN"),
		ServerName:  envOr("SERVER_NAME", DefaultServerName),
		Timeout:     DefaultTimeout,
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("LIAM_API_URL %q is not a valid base URL", cfg.BaseURL)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	for _, name := range strings.Split(envOr("LIAM_SCOPES", DefaultScopes), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		scopeURL, ok := scopeURLs[name]
		if !ok {
			return nil, fmt.Errorf("unknown scope %q in LIAM_SCOPES", name)
		}
		cfg.Scopes = append(cfg.Scopes, scopeURL)
		if writeScopes[name] {
			cfg.writable = true
		}
	}
	if len(cfg.Scopes) == 0 {
		return nil, fmt.Errorf("LIAM_SCOPES must name at least one scope")
	}

	return cfg, nil
}

// ReadOnly reports whether the allowed scopes exclude all mutation.
func (c *Config) ReadOnly() bool {
	return !c.writable
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
