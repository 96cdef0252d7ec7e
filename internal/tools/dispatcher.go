// Package tools declares the knowledge base tools and dispatches calls to them.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/kbase/internal/domain"
	"github.com/kailas-cloud/kbase/internal/domain/search/request"
	"github.com/kailas-cloud/kbase/internal/logger"
	"github.com/kailas-cloud/kbase/internal/metrics"
	"github.com/kailas-cloud/kbase/internal/render"
)

// Tool names.
const (
	SearchKnowledgeBase = "search_knowledge_base"
	GetDocument         = "get_document"
	ListCategories      = "list_categories"
)

const argumentHints = "Please check:\n" +
	"- All required parameters are provided\n" +
	"- Parameter types and values are correct\n" +
	"- Parameter values are within allowed ranges"

// Definition describes one tool to a client.
type Definition struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// TextBlock is one text item of a response.
type TextBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Response is the envelope returned for every call. It always holds exactly one text block.
type Response struct {
	Content []TextBlock `json:"content"`
	IsError bool        `json:"isError,omitempty"`
}

// Text returns the concatenated text of the response.
func (r Response) Text() string {
	parts := make([]string, len(r.Content))
	for i, c := range r.Content {
		parts[i] = c.Text
	}
	return strings.Join(parts, "")
}

func textResponse(text string) Response {
	return Response{Content: []TextBlock{{Type: "text", Text: text}}}
}

func errorResponse(name string, cause error) Response {
	r := textResponse(fmt.Sprintf("Error executing tool '%s': %s\n\n%s", name, cause, argumentHints))
	r.IsError = true
	return r
}

// handler runs one tool. decode fills the typed arguments struct.
type handler func(ctx context.Context, decode func(dst any) error) (text, outcome string, err error)

type tool struct {
	def      Definition
	resolved *jsonschema.Resolved
	handle   handler
}

// Dispatcher validates tool arguments, runs the matching use case and renders the result.
// It is safe for concurrent use.
type Dispatcher struct {
	search   Searcher
	docs     DocumentReader
	renderer *render.Renderer
	logger   *zap.Logger

	order  []string
	byName map[string]*tool
}

// New creates a dispatcher with the three knowledge base tools registered.
func New(search Searcher, docs DocumentReader, renderer *render.Renderer, log *zap.Logger) (*Dispatcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{
		search:   search,
		docs:     docs,
		renderer: renderer,
		logger:   log,
		byName:   make(map[string]*tool),
	}

	for _, t := range []struct {
		name, desc string
		schema     *jsonschema.Schema
		h          handler
	}{
		{SearchKnowledgeBase, searchDescription, searchSchema(), d.searchKnowledgeBase},
		{GetDocument, getDocumentDescription, getDocumentSchema(), d.getDocument},
		{ListCategories, listCategoriesDescription, listCategoriesSchema(), d.listCategories},
	} {
		if err := d.register(t.name, t.desc, t.schema, t.h); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dispatcher) register(name, desc string, schema *jsonschema.Schema, h handler) error {
	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{ValidateDefaults: true})
	if err != nil {
		return fmt.Errorf("resolve %s schema: %w", name, err)
	}
	d.byName[name] = &tool{
		def:      Definition{Name: name, Description: desc, InputSchema: schema},
		resolved: resolved,
		handle:   h,
	}
	d.order = append(d.order, name)
	return nil
}

// Tools lists the tool definitions in registration order.
func (d *Dispatcher) Tools() []Definition {
	defs := make([]Definition, 0, len(d.order))
	for _, name := range d.order {
		defs = append(defs, d.byName[name].def)
	}
	return defs
}

// Call runs the named tool. It never returns an error and never panics:
// every failure is rendered into the response text.
func (d *Dispatcher) Call(ctx context.Context, name string, args json.RawMessage) (resp Response) {
	start := time.Now()
	callID := uuid.NewString()
	log := logger.FromContextOr(ctx, d.logger).With(zap.String("tool", name), zap.String("call_id", callID))
	ctx = logger.ContextWithLogger(ctx, log)

	metricName := name
	outcome := metrics.OutcomeOK

	defer func() {
		if p := recover(); p != nil {
			log.Error("tool panicked", zap.Any("panic", p), zap.Stack("stack"))
			outcome = metrics.OutcomeError
			resp = errorResponse(name, fmt.Errorf("internal error (call %s)", callID))
		}
		elapsed := time.Since(start)
		metrics.ObserveToolCall(metricName, outcome, elapsed)
		log.Info("tool call",
			zap.String("outcome", outcome),
			zap.Duration("duration", elapsed),
			zap.Int("response_chars", len(resp.Text())),
		)
	}()

	t, ok := d.byName[name]
	if !ok {
		metricName = "unknown"
		outcome = metrics.OutcomeUnknownTool
		return textResponse("Unknown tool: " + name)
	}

	decode := func(dst any) error { return decodeArgs(args, t.resolved, dst) }
	text, out, err := t.handle(ctx, decode)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArguments) {
			outcome = metrics.OutcomeInvalid
			log.Debug("invalid arguments", zap.Error(err))
			return errorResponse(name, err)
		}
		outcome = metrics.OutcomeError
		log.Error("tool failed", zap.Error(err))
		return errorResponse(name, fmt.Errorf("internal error (call %s)", callID))
	}

	outcome = out
	if strings.HasSuffix(text, render.TruncationMarker) {
		metrics.ToolResponsesTruncatedTotal.WithLabelValues(name).Inc()
	}
	return textResponse(text)
}

func (d *Dispatcher) searchKnowledgeBase(ctx context.Context, decode func(any) error) (string, string, error) {
	var a searchArgs
	if err := decode(&a); err != nil {
		return "", "", err
	}
	var category string
	if a.Category != nil {
		category = *a.Category
	}

	req, err := request.New(a.Query, category, a.MaxResults)
	if err != nil {
		return "", "", err
	}
	results, err := d.search.Search(ctx, &req)
	if err != nil {
		return "", "", fmt.Errorf("search: %w", err)
	}
	metrics.SearchResults.WithLabelValues(strconv.FormatBool(req.Category() != "")).
		Observe(float64(len(results)))

	ranked := make([]string, len(results))
	for i := range results {
		ranked[i] = results[i].ID()
	}
	logger.FromContext(ctx).Debug("search ranked",
		zap.String("category", req.Category()),
		zap.Strings("ids", ranked),
	)

	if len(results) == 0 {
		return d.renderer.SearchNotFound(req.Query(), req.Category()), metrics.OutcomeNotFound, nil
	}
	text, err := d.renderer.Search(req.Query(), results, a.DetailLevel, a.Format)
	if err != nil {
		return "", "", fmt.Errorf("render search: %w", err)
	}
	return text, metrics.OutcomeOK, nil
}

func (d *Dispatcher) getDocument(ctx context.Context, decode func(any) error) (string, string, error) {
	var a getDocumentArgs
	if err := decode(&a); err != nil {
		return "", "", err
	}

	doc, err := d.docs.Get(ctx, a.DocumentID)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return d.renderer.DocumentNotFound(a.DocumentID), metrics.OutcomeNotFound, nil
		}
		return "", "", fmt.Errorf("get document: %w", err)
	}
	text, err := d.renderer.Document(&doc, a.Format)
	if err != nil {
		return "", "", fmt.Errorf("render document: %w", err)
	}
	return text, metrics.OutcomeOK, nil
}

func (d *Dispatcher) listCategories(ctx context.Context, decode func(any) error) (string, string, error) {
	var a listCategoriesArgs
	if err := decode(&a); err != nil {
		return "", "", err
	}

	listing, err := d.docs.Categories(ctx)
	if err != nil {
		return "", "", fmt.Errorf("list categories: %w", err)
	}
	text, err := d.renderer.Categories(listing, a.Format)
	if err != nil {
		return "", "", fmt.Errorf("render categories: %w", err)
	}
	return text, metrics.OutcomeOK, nil
}
