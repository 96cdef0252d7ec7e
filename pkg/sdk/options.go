package kbase

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type embeddedSource string

const (
	sourceNone   embeddedSource = ""
	sourceSample embeddedSource = "sample"
	sourceFile   embeddedSource = "file"
	sourceRedis  embeddedSource = "redis"
)

type clientConfig struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client

	source         embeddedSource
	path           string
	driver         string // "valkey" or "redis"
	addrs          []string
	password       string
	key            string
	characterLimit int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithEndpoint connects to a running kbase server's MCP endpoint,
// e.g. "http://localhost:8080/mcp".
func WithEndpoint(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.endpoint = url
	})
}

// WithAPIKey sends the key as a Bearer token on every remote request.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = key
	})
}

// WithHTTPClient sets the HTTP client used in remote mode.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithEmbeddedSample runs an in-process server over the built-in sample documents.
func WithEmbeddedSample() Option {
	return optionFunc(func(c *clientConfig) {
		c.source = sourceSample
	})
}

// WithEmbeddedFile runs an in-process server over a YAML or JSON collection file.
func WithEmbeddedFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.source = sourceFile
		c.path = path
	})
}

// WithEmbeddedValkey runs an in-process server over the collection stored
// under key in a Valkey instance. An empty key uses the server default.
func WithEmbeddedValkey(addr, password, key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.source = sourceRedis
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
		c.key = key
	})
}

// WithEmbeddedRedis is WithEmbeddedValkey for a Redis instance.
func WithEmbeddedRedis(addr, password, key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.source = sourceRedis
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
		c.key = key
	})
}

// WithCharacterLimit sets the response budget of an embedded server.
// Default: 25000.
func WithCharacterLimit(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.characterLimit = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
