package search

import (
	"strings"

	domdoc "github.com/kailas-cloud/kbase/internal/domain/document"
)

// Score weights.
const (
	TitleWeight    = 10.0
	ContentWeight  = 2.0
	TagWeight      = 5.0
	CategoryWeight = 3.0
)

// Score computes the relevance of doc for query. All comparisons are
// lowercase substring matches; content occurrences are counted without
// overlap. The result is unbounded and only meaningful for ordering.
func Score(doc *domdoc.Document, query string) float64 {
	q := strings.ToLower(query)
	score := 0.0

	if strings.Contains(strings.ToLower(doc.Title()), q) {
		score += TitleWeight
	}

	score += float64(strings.Count(strings.ToLower(doc.Content()), q)) * ContentWeight

	for _, tag := range doc.Tags() {
		if strings.Contains(strings.ToLower(tag), q) {
			score += TagWeight
		}
	}

	if strings.Contains(strings.ToLower(doc.Category()), q) {
		score += CategoryWeight
	}

	return score
}
