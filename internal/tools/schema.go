package tools

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/kailas-cloud/kbase/internal/domain/render/detail"
	"github.com/kailas-cloud/kbase/internal/domain/render/format"
	"github.com/kailas-cloud/kbase/internal/domain/search/request"
)

// closed rejects properties the schema does not declare.
func closed() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

func formatProperty() *jsonschema.Schema {
	values := format.Values()
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = string(v)
	}
	return &jsonschema.Schema{
		Type:        "string",
		Description: "Response format: 'json' for structured data, 'markdown' for human-readable text",
		Enum:        enum,
		Default:     json.RawMessage(`"` + string(format.Default) + `"`),
	}
}

func detailProperty() *jsonschema.Schema {
	values := detail.Values()
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = string(v)
	}
	return &jsonschema.Schema{
		Type:        "string",
		Description: "Detail level: 'concise' for summaries, 'detailed' for full content",
		Enum:        enum,
		Default:     json.RawMessage(`"` + string(detail.Default) + `"`),
	}
}

func searchSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "Search query to find relevant documentation. Keywords, phrases or specific topics.",
				MinLength:   jsonschema.Ptr(1),
				MaxLength:   jsonschema.Ptr(request.MaxQueryLength),
				Examples:    []any{"authentication best practices", "kubernetes scaling", "event-driven patterns"},
			},
			"category": {
				Types:       []string{"string", "null"},
				Description: "Optional category filter, matched case-insensitively. See list_categories.",
				Examples:    []any{"security", "architecture"},
			},
			"max_results": {
				Type:        "integer",
				Description: "Maximum number of results to return",
				Minimum:     jsonschema.Ptr(1.0),
				Maximum:     jsonschema.Ptr(float64(request.MaxResults)),
				Default:     json.RawMessage(`5`),
			},
			"format":       formatProperty(),
			"detail_level": detailProperty(),
		},
		Required:             []string{"query"},
		AdditionalProperties: closed(),
	}
}

func getDocumentSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"document_id": {
				Type:        "string",
				Description: "Unique identifier of the document to retrieve",
				MinLength:   jsonschema.Ptr(1),
				Examples:    []any{"doc-001", "doc-002"},
			},
			"format": formatProperty(),
		},
		Required:             []string{"document_id"},
		AdditionalProperties: closed(),
	}
}

func listCategoriesSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"format": formatProperty(),
		},
		AdditionalProperties: closed(),
	}
}
