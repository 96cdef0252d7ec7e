package document

import (
	"context"

	domdoc "github.com/kailas-cloud/kbase/internal/domain/document"
)

// Repository defines the read-only storage contract for documents.
type Repository interface {
	GetByID(ctx context.Context, id string) (domdoc.Document, error)
	All(ctx context.Context) ([]domdoc.Document, error)
}
