package document

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/kbase/internal/domain"
	domdoc "github.com/kailas-cloud/kbase/internal/domain/document"
)

// Repo is the read-only document store. The snapshot is built once and never
// mutated, so a Repo is safe for concurrent use without locking.
type Repo struct {
	docs []domdoc.Document
	byID map[string]int
}

// New creates a repository over docs, preserving their order.
// Returns domain.ErrDuplicateID if two documents share an ID.
func New(docs []domdoc.Document) (*Repo, error) {
	r := &Repo{
		docs: make([]domdoc.Document, len(docs)),
		byID: make(map[string]int, len(docs)),
	}
	copy(r.docs, docs)
	for i := range r.docs {
		id := r.docs[i].ID()
		if _, dup := r.byID[id]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
		}
		r.byID[id] = i
	}
	return r, nil
}

// Load builds a repository from the given loader.
func Load(ctx context.Context, l Loader) (*Repo, error) {
	docs, err := l.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	return New(docs)
}

// ListByCategory returns documents in store order. An empty category returns
// every document; otherwise the category is matched case-insensitively.
func (r *Repo) ListByCategory(ctx context.Context, category string) ([]domdoc.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck // context error is returned as is
	}
	if category == "" {
		return r.All(ctx)
	}
	out := make([]domdoc.Document, 0)
	for i := range r.docs {
		if r.docs[i].CategoryMatches(category) {
			out = append(out, r.docs[i])
		}
	}
	return out, nil
}

// GetByID returns a document by exact, case-sensitive ID.
func (r *Repo) GetByID(ctx context.Context, id string) (domdoc.Document, error) {
	if err := ctx.Err(); err != nil {
		return domdoc.Document{}, err //nolint:wrapcheck // context error is returned as is
	}
	i, ok := r.byID[id]
	if !ok {
		return domdoc.Document{}, domain.ErrDocumentNotFound
	}
	return r.docs[i], nil
}

// All returns every document in store order.
func (r *Repo) All(ctx context.Context) ([]domdoc.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck // context error is returned as is
	}
	out := make([]domdoc.Document, len(r.docs))
	copy(out, r.docs)
	return out, nil
}

// Count returns the number of documents.
func (r *Repo) Count(_ context.Context) (int, error) {
	return len(r.docs), nil
}
