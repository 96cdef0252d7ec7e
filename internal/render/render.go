// Package render turns domain results into size-bounded text payloads,
// either indented JSON or markdown.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kailas-cloud/kbase/internal/domain/category"
	domdoc "github.com/kailas-cloud/kbase/internal/domain/document"
	"github.com/kailas-cloud/kbase/internal/domain/render/detail"
	"github.com/kailas-cloud/kbase/internal/domain/render/format"
	"github.com/kailas-cloud/kbase/internal/domain/search/result"
)

const (
	// DefaultCharacterLimit is the response budget in characters.
	DefaultCharacterLimit = 25000
	// TruncationMarker terminates every truncated response.
	TruncationMarker = "\n\n[Content truncated to fit context limit]"

	truncationReserve = 50
	minCharacterLimit = 100
)

// Renderer formats responses and enforces the character budget.
type Renderer struct {
	limit int
}

// New creates a Renderer. Limits below the minimum fall back to the default.
func New(limit int) *Renderer {
	if limit < minCharacterLimit {
		limit = DefaultCharacterLimit
	}
	return &Renderer{limit: limit}
}

// Limit returns the character budget.
func (r *Renderer) Limit() int { return r.limit }

// Truncate cuts text to the budget. Characters are counted as runes so a
// multibyte character is never split.
func (r *Renderer) Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= r.limit {
		return text
	}
	return string(runes[:r.limit-truncationReserve]) + TruncationMarker
}

// Search renders a non-empty result set.
func (r *Renderer) Search(query string, results []result.Result, level detail.Level, f format.Format) (string, error) {
	if f == format.JSON {
		p := SearchPayload{
			Query:        query,
			ResultsCount: len(results),
			Documents:    make([]SearchHitJSON, 0, len(results)),
		}
		for _, res := range results {
			doc := res.Document()
			content := doc.Summary()
			if level == detail.Detailed {
				content = doc.Body()
			}
			p.Documents = append(p.Documents, SearchHitJSON{
				ID:       doc.ID(),
				Title:    doc.Title(),
				Category: doc.Category(),
				Tags:     nonNil(doc.Tags()),
				Updated:  doc.Updated(),
				Content:  content,
			})
		}
		return r.encode(p)
	}

	lines := []string{
		"# Search Results for: " + query,
		fmt.Sprintf("Found %d relevant document(s)", len(results)),
		"",
	}
	for i, res := range results {
		doc := res.Document()
		lines = append(lines,
			fmt.Sprintf("### Result %d", i+1),
			documentMarkdown(&doc, level),
			"",
		)
	}
	return r.Truncate(strings.Join(lines, "\n")), nil
}

// Document renders one document with its full content.
func (r *Renderer) Document(doc *domdoc.Document, f format.Format) (string, error) {
	if f == format.JSON {
		return r.encode(DocumentPayload{
			ID:       doc.ID(),
			Title:    doc.Title(),
			Category: doc.Category(),
			Content:  doc.Content(),
			Tags:     nonNil(doc.Tags()),
			Created:  doc.Created(),
			Updated:  doc.Updated(),
		})
	}
	return r.Truncate(documentMarkdown(doc, detail.Detailed)), nil
}

// Categories renders the category listing.
func (r *Renderer) Categories(l category.Listing, f format.Format) (string, error) {
	if f == format.JSON {
		p := CategoriesPayload{
			Categories:      make([]CategoryJSON, 0, len(l.Categories)),
			TotalCategories: l.TotalCategories,
			TotalDocuments:  l.TotalDocuments,
		}
		for _, c := range l.Categories {
			p.Categories = append(p.Categories, CategoryJSON{Name: c.Name, DocumentCount: c.Count})
		}
		return r.encode(p)
	}

	lines := []string{
		"# Knowledge Base Categories",
		fmt.Sprintf("Total documents: %d", l.TotalDocuments),
		"",
	}
	for _, c := range l.Categories {
		lines = append(lines, fmt.Sprintf("- **%s**: %d document(s)", c.Name, c.Count))
	}
	return r.Truncate(strings.Join(lines, "\n")), nil
}

// SearchNotFound is the guidance text for a search with no qualifying documents.
func (r *Renderer) SearchNotFound(query, category string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "No documents found matching query: '%s'", query)
	if category != "" {
		fmt.Fprintf(&b, " in category '%s'", category)
	}
	b.WriteString("\n\nTry:\n- Using different keywords\n- Removing category filter\n- Using broader search terms")
	return r.Truncate(b.String())
}

// DocumentNotFound is the guidance text for an unknown document id.
func (r *Renderer) DocumentNotFound(id string) string {
	return r.Truncate("Document not found: " + id + "\n\n" +
		"This document ID does not exist in the knowledge base.\n" +
		"Try using 'search_knowledge_base' to find relevant documents.")
}

func documentMarkdown(doc *domdoc.Document, level detail.Level) string {
	lines := []string{
		"## " + doc.Title(),
		"**ID:** " + doc.ID(),
		"**Category:** " + doc.Category(),
		"**Tags:** " + strings.Join(doc.Tags(), ", "),
		"**Last Updated:** " + doc.Updated(),
		"",
	}
	if level == detail.Detailed {
		lines = append(lines, "### Content", doc.Body())
	} else {
		lines = append(lines, "**Summary:** "+doc.Summary())
	}
	return strings.Join(lines, "\n")
}

// encode serializes with 2-space indentation and without HTML escaping.
func (r *Renderer) encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	return r.Truncate(strings.TrimSuffix(buf.String(), "\n")), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
