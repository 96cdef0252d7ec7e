package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/kbase/internal/domain/search/request"
	"github.com/kailas-cloud/kbase/internal/domain/search/result"
)

// Service ranks documents against a free-text query.
type Service struct {
	docs DocumentLister
}

// New creates a search service.
func New(docs DocumentLister) *Service {
	return &Service{docs: docs}
}

// Search filters by category, scores every candidate, stable-sorts by
// descending score, drops non-positive scores and truncates to the limit.
// An empty result is not an error.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]result.Result, error) {
	candidates, err := s.docs.ListByCategory(ctx, req.Category())
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	scored := make([]result.Result, len(candidates))
	for i := range candidates {
		scored[i] = result.New(candidates[i], Score(&candidates[i], req.Query()))
	}

	// Ties keep store order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score() > scored[j].Score()
	})

	results := make([]result.Result, 0, req.MaxResults())
	for _, r := range scored {
		if r.Score() <= 0 {
			break
		}
		results = append(results, r)
		if len(results) == req.MaxResults() {
			break
		}
	}
	return results, nil
}
