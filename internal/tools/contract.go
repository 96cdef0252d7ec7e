package tools

import (
	"context"

	"github.com/kailas-cloud/kbase/internal/domain/category"
	domdoc "github.com/kailas-cloud/kbase/internal/domain/document"
	"github.com/kailas-cloud/kbase/internal/domain/search/request"
	"github.com/kailas-cloud/kbase/internal/domain/search/result"
)

// Searcher ranks documents for a validated request.
type Searcher interface {
	Search(ctx context.Context, req *request.Request) ([]result.Result, error)
}

// DocumentReader serves single documents and the category summary.
type DocumentReader interface {
	Get(ctx context.Context, id string) (domdoc.Document, error)
	Categories(ctx context.Context) (category.Listing, error)
}
