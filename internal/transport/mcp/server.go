// Package mcp exposes the tool dispatcher over the Model Context Protocol,
// on stdio or streamable HTTP.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"

	"github.com/kailas-cloud/kbase/internal/tools"
)

// Dispatcher lists and runs tools.
type Dispatcher interface {
	Tools() []tools.Definition
	Call(ctx context.Context, name string, args json.RawMessage) tools.Response
}

// Config names the server in the MCP handshake.
type Config struct {
	Name         string
	Version      string
	Instructions string
}

// NewServer registers every dispatcher tool on a new MCP server.
// Arguments reach the dispatcher unparsed so validation happens in one place.
// Calls to unregistered names are answered by the dispatcher too, as a text
// result rather than a protocol error.
func NewServer(cfg Config, d Dispatcher, logger *zap.Logger) *sdk.Server {
	srv := sdk.NewServer(
		&sdk.Implementation{Name: cfg.Name, Version: cfg.Version},
		&sdk.ServerOptions{
			Instructions: cfg.Instructions,
			Logger:       SlogLogger(logger),
		},
	)
	registered := make(map[string]struct{})
	for _, def := range d.Tools() {
		srv.AddTool(&sdk.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, toolHandler(d, def.Name))
		registered[def.Name] = struct{}{}
	}
	srv.AddReceivingMiddleware(unknownToolMiddleware(d, registered))
	return srv
}

// unknownToolMiddleware routes tools/call for unregistered names to the dispatcher.
func unknownToolMiddleware(d Dispatcher, registered map[string]struct{}) sdk.Middleware {
	return func(next sdk.MethodHandler) sdk.MethodHandler {
		return func(ctx context.Context, method string, req sdk.Request) (sdk.Result, error) {
			if method != methodCallTool {
				return next(ctx, method, req)
			}
			call, ok := req.(*sdk.CallToolRequest)
			if !ok || call.Params == nil {
				return next(ctx, method, req)
			}
			if _, known := registered[call.Params.Name]; known {
				return next(ctx, method, req)
			}
			return toResult(d.Call(ctx, call.Params.Name, call.Params.Arguments)), nil
		}
	}
}

const methodCallTool = "tools/call"

func toolHandler(d Dispatcher, name string) sdk.ToolHandler {
	return func(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
		var args json.RawMessage
		if req.Params != nil {
			args = req.Params.Arguments
		}
		return toResult(d.Call(ctx, name, args)), nil
	}
}

func toResult(resp tools.Response) *sdk.CallToolResult {
	content := make([]sdk.Content, 0, len(resp.Content))
	for _, block := range resp.Content {
		content = append(content, &sdk.TextContent{Text: block.Text})
	}
	return &sdk.CallToolResult{Content: content, IsError: resp.IsError}
}

// ServeStdio runs the server on stdin/stdout until ctx is done or the client disconnects.
func ServeStdio(ctx context.Context, srv *sdk.Server) error {
	if err := srv.Run(ctx, &sdk.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp stdio: %w", err)
	}
	return nil
}

// NewHTTPHandler serves srv over streamable HTTP. Every session shares srv.
func NewHTTPHandler(srv *sdk.Server, logger *zap.Logger) http.Handler {
	return sdk.NewStreamableHTTPHandler(
		func(*http.Request) *sdk.Server { return srv },
		&sdk.StreamableHTTPOptions{Logger: SlogLogger(logger)},
	)
}

// SlogLogger bridges zap into the slog logger the SDK expects.
func SlogLogger(logger *zap.Logger) *slog.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return slog.New(zapslog.NewHandler(logger.Core(), zapslog.WithName("mcp")))
}
