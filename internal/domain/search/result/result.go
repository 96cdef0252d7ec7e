package result

import domdoc "github.com/kailas-cloud/kbase/internal/domain/document"

// Result is a single search hit.
type Result struct {
	doc   domdoc.Document
	score float64
}

// New creates a search result.
func New(doc domdoc.Document, score float64) Result {
	return Result{doc: doc, score: score}
}

// Document returns the matched document.
func (r *Result) Document() domdoc.Document { return r.doc }

// ID returns the document identifier.
func (r *Result) ID() string { return r.doc.ID() }

// Score returns the relevance score.
func (r *Result) Score() float64 { return r.score }
