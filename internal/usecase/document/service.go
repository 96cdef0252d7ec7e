package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/kbase/internal/domain"
	"github.com/kailas-cloud/kbase/internal/domain/category"
	domdoc "github.com/kailas-cloud/kbase/internal/domain/document"
)

// Service serves single-document lookups and the category summary.
type Service struct {
	repo Repository
}

// New creates a document service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns a document by ID. A missing document yields
// domain.ErrDocumentNotFound unwrapped so callers can branch on it.
func (s *Service) Get(ctx context.Context, id string) (domdoc.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return domdoc.Document{}, domain.ErrDocumentNotFound
		}
		return domdoc.Document{}, fmt.Errorf("get document %s: %w", id, err)
	}
	return doc, nil
}

// Categories summarizes the store by category.
func (s *Service) Categories(ctx context.Context) (category.Listing, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return category.Listing{}, fmt.Errorf("list documents: %w", err)
	}
	return category.Summarize(docs), nil
}
