package kbase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kailas-cloud/kbase/internal/tools"
	"github.com/kailas-cloud/kbase/internal/version"
)

// Client calls kbase tools over an MCP session.
type Client struct {
	session *mcp.ClientSession
	closers []func()
	health  func(ctx context.Context) (HealthStatus, error)
	obs     *observer
}

// New connects to a remote server (WithEndpoint) or starts an embedded one
// (WithEmbeddedSample, WithEmbeddedFile, WithEmbeddedRedis, WithEmbeddedValkey).
// The context bounds connection setup only.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	c := &Client{obs: obs}
	var transport mcp.Transport
	switch {
	case cfg.source != sourceNone:
		transport, err = c.startEmbedded(ctx, cfg)
		if err != nil {
			c.Close()
			return nil, err
		}
	case cfg.endpoint != "":
		hc := remoteHTTPClient(cfg)
		transport = &mcp.StreamableClientTransport{Endpoint: cfg.endpoint, HTTPClient: hc}
		c.health = remoteHealth(hc, cfg.endpoint)
	default:
		return nil, ErrNoBackend
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "kbase-sdk", Version: version.Version}, nil)
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("kbase: connect: %w", err)
	}
	c.session = session
	return c, nil
}

// Close ends the session and releases embedded resources.
func (c *Client) Close() {
	if c.session != nil {
		_ = c.session.Close()
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Tools lists the tools the server exposes.
func (c *Client) Tools(ctx context.Context) (_ []Tool, err error) {
	start := time.Now()
	defer func() { c.obs.observe("tools", start, err) }()

	res, err := c.session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("kbase: list tools: %w", err)
	}
	out := make([]Tool, len(res.Tools))
	for i, t := range res.Tools {
		out[i] = Tool{Name: t.Name, Description: t.Description}
	}
	return out, nil
}

// Search runs search_knowledge_base. A query with no matches returns the
// server's guidance text, not an error.
func (c *Client) Search(ctx context.Context, p SearchParams) (string, error) {
	return c.Call(ctx, tools.SearchKnowledgeBase, p)
}

// GetDocument runs get_document. An empty format uses the server default.
func (c *Client) GetDocument(ctx context.Context, id string, format Format) (string, error) {
	args := map[string]any{"document_id": id}
	if format != "" {
		args["format"] = format
	}
	return c.Call(ctx, tools.GetDocument, args)
}

// ListCategories runs list_categories. An empty format uses the server default.
func (c *Client) ListCategories(ctx context.Context, format Format) (string, error) {
	args := map[string]any{}
	if format != "" {
		args["format"] = format
	}
	return c.Call(ctx, tools.ListCategories, args)
}

// Call runs any tool by name. args must marshal to a JSON object.
func (c *Client) Call(ctx context.Context, name string, args any) (_ string, err error) {
	start := time.Now()
	defer func() { c.obs.observe(name, start, err) }()

	res, err := c.session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return "", fmt.Errorf("kbase: call %s: %w", name, err)
	}

	var b strings.Builder
	for _, content := range res.Content {
		if tc, ok := content.(*mcp.TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	if res.IsError {
		return "", &ToolError{Tool: name, Text: b.String()}
	}
	return b.String(), nil
}

// Health reports server health. Remote clients query the server's /health route.
func (c *Client) Health(ctx context.Context) (_ HealthStatus, err error) {
	start := time.Now()
	defer func() { c.obs.observe("health", start, err) }()
	return c.health(ctx)
}

// bearerTransport adds the API key to every request.
type bearerTransport struct {
	key  string
	base http.RoundTripper
}

func (t *bearerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("Authorization", "Bearer "+t.key)
	return t.base.RoundTrip(r) //nolint:wrapcheck // delegating to the wrapped transport
}

// remoteHTTPClient builds the client shared by the MCP transport and health
// checks. It has no overall Timeout: the MCP event stream is long-lived.
func remoteHTTPClient(cfg *clientConfig) *http.Client {
	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{}
	}
	if cfg.apiKey == "" {
		return hc
	}
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *hc
	wrapped.Transport = &bearerTransport{key: cfg.apiKey, base: base}
	return &wrapped
}

// healthTimeout bounds one remote /health round trip.
const healthTimeout = 30 * time.Second

// healthURL maps the MCP endpoint to the sibling /health route.
func healthURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("kbase: parse endpoint: %w", err)
	}
	u.Path = path.Join(path.Dir(strings.TrimSuffix(u.Path, "/")), "health")
	u.RawQuery = ""
	return u.String(), nil
}

func remoteHealth(hc *http.Client, endpoint string) func(ctx context.Context) (HealthStatus, error) {
	return func(ctx context.Context) (HealthStatus, error) {
		target, err := healthURL(endpoint)
		if err != nil {
			return HealthStatus{}, err
		}
		ctx, cancel := context.WithTimeout(ctx, healthTimeout)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
		if err != nil {
			return HealthStatus{}, fmt.Errorf("kbase: health request: %w", err)
		}
		resp, err := hc.Do(req)
		if err != nil {
			return HealthStatus{}, fmt.Errorf("kbase: health: %w", err)
		}
		defer resp.Body.Close()

		var hs HealthStatus
		if err := json.NewDecoder(resp.Body).Decode(&hs); err != nil {
			return HealthStatus{}, fmt.Errorf("kbase: decode health (status %d): %w", resp.StatusCode, err)
		}
		return hs, nil
	}
}
