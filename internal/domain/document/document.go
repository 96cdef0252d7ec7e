package document

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/kailas-cloud/kbase/internal/domain"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// DateLayout is the calendar date format of Created and Updated.
const DateLayout = "2006-01-02"

// MaxContentSize is the maximum document content size in bytes.
const MaxContentSize = 1 << 20 // 1MB

// Document is the knowledge base document aggregate (immutable value object).
type Document struct {
	id       string
	title    string
	category string
	content  string
	tags     []string
	created  string
	updated  string
}

// New validates and creates a Document.
// ID: ^[a-zA-Z0-9_.-]+$, 1-256 chars. Title, category and content are required.
// Category and tags are lowercased; dates, when set, must be YYYY-MM-DD.
func New(id, title, category, content string, tags []string, created, updated string) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("%w: document ID is required", domain.ErrInvalidDocument)
	}
	if len(id) > 256 {
		return Document{}, fmt.Errorf("%w: document ID too long (max 256)", domain.ErrInvalidDocument)
	}
	if !idRegex.MatchString(id) {
		return Document{}, fmt.Errorf(
			"%w: document ID %q must be alphanumeric with dots, underscores and hyphens",
			domain.ErrInvalidDocument, id,
		)
	}
	if strings.TrimSpace(title) == "" {
		return Document{}, fmt.Errorf("%w: %s: title is required", domain.ErrInvalidDocument, id)
	}
	if strings.TrimSpace(category) == "" {
		return Document{}, fmt.Errorf("%w: %s: category is required", domain.ErrInvalidDocument, id)
	}
	if strings.TrimSpace(content) == "" {
		return Document{}, fmt.Errorf("%w: %s: content is required", domain.ErrInvalidDocument, id)
	}
	if len(content) > MaxContentSize {
		return Document{}, fmt.Errorf("%w: %s: content too large (max %d bytes)",
			domain.ErrInvalidDocument, id, MaxContentSize)
	}
	for _, d := range []string{created, updated} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(DateLayout, d); err != nil {
			return Document{}, fmt.Errorf("%w: %s: date %q is not %s", domain.ErrInvalidDocument, id, d, DateLayout)
		}
	}

	var normTags []string
	if tags != nil {
		normTags = make([]string, 0, len(tags))
		for _, t := range tags {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				normTags = append(normTags, t)
			}
		}
	}

	return Document{
		id:       id,
		title:    title,
		category: strings.ToLower(strings.TrimSpace(category)),
		content:  content,
		tags:     normTags,
		created:  created,
		updated:  updated,
	}, nil
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(id, title, category, content string, tags []string, created, updated string) Document {
	return Document{
		id: id, title: title, category: category, content: content,
		tags: tags, created: created, updated: updated,
	}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Title returns the display title.
func (d *Document) Title() string { return d.title }

// Category returns the lowercase category tag.
func (d *Document) Category() string { return d.category }

// Content returns the raw multi-paragraph content.
func (d *Document) Content() string { return d.content }

// Tags returns a copy of the keyword tags in their original order.
func (d *Document) Tags() []string {
	if d.tags == nil {
		return nil
	}
	c := make([]string, len(d.tags))
	copy(c, d.tags)
	return c
}

// Created returns the creation date (YYYY-MM-DD).
func (d *Document) Created() string { return d.created }

// Updated returns the last-updated date (YYYY-MM-DD).
func (d *Document) Updated() string { return d.updated }

// Body returns the content with surrounding whitespace removed.
func (d *Document) Body() string { return strings.TrimSpace(d.content) }

// Summary returns the first non-blank content line, trimmed.
func (d *Document) Summary() string {
	for _, line := range strings.Split(d.content, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}

// CategoryMatches reports whether the document belongs to category, ignoring case.
func (d *Document) CategoryMatches(category string) bool {
	return strings.EqualFold(d.category, category)
}
