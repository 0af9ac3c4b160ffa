package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/sintem/gmail-mcp/internal/auth"
	"github.com/sintem/gmail-mcp/internal/config"
	"github.com/sintem/gmail-mcp/internal/liam"
	"github.com/sintem/gmail-mcp/internal/metrics"
	"github.com/sintem/gmail-mcp/internal/tool"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	debug       bool
	transport   string
	httpAddr    string
	metricsAddr string
	envFile     string
	readOnly    bool
	timeout     time.Duration
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Gmail MCP gateway",
		Long: `Run the Model Context Protocol server exposing Gmail tools.

Transports:
  - stdio: standard input/output (default)
  - http:  streamable HTTP transport

Configuration is read once at startup from the environment:
  LIAM_API_URL       backend base URL
  LIAM_ACCESS_TOKEN  process-wide bearer credential (optional; HTTP callers
                     may send their own Authorization header instead)
  LIAM_SCOPES        comma-separated scope list (default gmail.readonly)
  SERVER_NAME        tool server identifier

Write tools (labels, drafts) are exposed only when the allowed scopes
permit mutation and --read-only is not set.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&opts.transport, "transport", "stdio", "Transport type: stdio or http")
	cmd.Flags().StringVar(&opts.httpAddr, "http-addr", "localhost:8080", "HTTP server address (for http transport)")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", metrics.DefaultAddr, "Prometheus metrics address, empty to disable")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "Path to env file loaded before reading configuration")
	cmd.Flags().BoolVar(&opts.readOnly, "read-only", false, "Expose only read tools regardless of allowed scopes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", config.DefaultTimeout, "Backend request timeout")

	return cmd
}

func runServe(opts serveOptions) error {
	if opts.transport != "stdio" && opts.transport != "http" {
		return fmt.Errorf("unknown transport %q, expected stdio or http", opts.transport)
	}

	setupLogger(opts.debug)

	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			return fmt.Errorf("godotenv.Load failed: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load failed: %w", err)
	}
	if opts.timeout > 0 {
		cfg.Timeout = opts.timeout
	}
	readOnly := opts.readOnly || cfg.ReadOnly()

	rec := metrics.NewRecorder(nil)
	client := liam.NewClient(cfg, auth.StaticTokenSource(cfg.AccessToken), liam.WithObserver(rec))
	srv := tool.NewServer(client, tool.Options{
		Name:     cfg.ServerName,
		Version:  version,
		ReadOnly: readOnly,
		Metrics:  rec,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.metricsAddr != "" {
		metricsSrv := metrics.NewServer(opts.metricsAddr)
		go func() {
			if err := metricsSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
				slog.Error("metrics server shutdown failed", "error", err)
			}
		}()
	}

	slog.Info("starting gateway",
		"transport", opts.transport,
		"backend", cfg.BaseURL,
		"read_only", readOnly,
	)

	if opts.transport == "stdio" {
		return srv.Run(ctx, &mcp.StdioTransport{})
	}
	return serveHTTP(ctx, srv, opts.httpAddr)
}

// serveHTTP runs the streamable HTTP transport until ctx is cancelled.
// The auth middleware lifts each caller's bearer token into the request
// context so it rides along to the backend.
func serveHTTP(ctx context.Context, srv *mcp.Server, addr string) error {
	mcpHTTP := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server { return srv }, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", auth.Middleware(mcpHTTP))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		slog.Info("starting http server", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("httpServer.ListenAndServe failed: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpServer.Shutdown failed: %w", err)
	}

	<-errCh
	slog.Info("http server stopped")
	return nil
}

// setupLogger sends structured logs to stderr; stdout belongs to MCP
// framing when serving stdio.
func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
