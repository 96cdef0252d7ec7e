package category

import (
	"sort"

	domdoc "github.com/kailas-cloud/kbase/internal/domain/document"
)

// Summary is one category with its document count.
type Summary struct {
	Name  string
	Count int
}

// Listing is the full category breakdown of a store.
type Listing struct {
	Categories      []Summary
	TotalCategories int
	TotalDocuments  int
}

// Summarize groups documents by category, sorted ascending by name.
// Category counts always sum to TotalDocuments.
func Summarize(docs []domdoc.Document) Listing {
	counts := make(map[string]int)
	for i := range docs {
		counts[docs[i].Category()]++
	}

	cats := make([]Summary, 0, len(counts))
	for name, n := range counts {
		cats = append(cats, Summary{Name: name, Count: n})
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })

	return Listing{
		Categories:      cats,
		TotalCategories: len(cats),
		TotalDocuments:  len(docs),
	}
}
