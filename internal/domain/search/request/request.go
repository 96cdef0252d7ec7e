package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/kbase/internal/domain"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length in characters.
	MaxQueryLength    = 500
	DefaultMaxResults = 5
	MaxResults        = 10
)

// Request is a validated search query.
type Request struct {
	query      string
	category   string
	maxResults int
}

// New validates search parameters.
// Query: 1-500 characters. maxResults: 1-10 (0 is not defaulted here; the
// tool schema supplies the default before a Request is built).
func New(query, category string, maxResults int) (Request, error) {
	n := utf8.RuneCountInString(query)
	if n == 0 {
		return Request{}, domain.NewArgumentError("query", "must be at least 1 character")
	}
	if n > MaxQueryLength {
		return Request{}, domain.NewArgumentError("query",
			fmt.Sprintf("too long (max %d characters)", MaxQueryLength))
	}
	if maxResults < 1 || maxResults > MaxResults {
		return Request{}, domain.NewArgumentError("max_results",
			fmt.Sprintf("must be between 1 and %d, got %d", MaxResults, maxResults))
	}
	return Request{
		query:      query,
		category:   strings.TrimSpace(category),
		maxResults: maxResults,
	}, nil
}

// Query returns the raw search text.
func (r *Request) Query() string { return r.query }

// Category returns the category filter ("" means all categories).
func (r *Request) Category() string { return r.category }

// MaxResults returns the result limit.
func (r *Request) MaxResults() int { return r.maxResults }
