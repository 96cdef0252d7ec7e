package search

import (
	"context"

	domdoc "github.com/kailas-cloud/kbase/internal/domain/document"
)

// DocumentLister reads candidate documents, optionally filtered by category.
type DocumentLister interface {
	ListByCategory(ctx context.Context, category string) ([]domdoc.Document, error)
}
