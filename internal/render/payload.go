package render

// SearchPayload is the structured form of a search response.
type SearchPayload struct {
	Query        string          `json:"query"`
	ResultsCount int             `json:"results_count"`
	Documents    []SearchHitJSON `json:"documents"`
}

// SearchHitJSON is one document inside a SearchPayload.
// Content holds the summary line or the trimmed body depending on detail level.
type SearchHitJSON struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Updated  string   `json:"updated"`
	Content  string   `json:"content"`
}

// DocumentPayload is the structured form of a single document.
type DocumentPayload struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Created  string   `json:"created"`
	Updated  string   `json:"updated"`
}

// CategoriesPayload is the structured form of the category listing.
type CategoriesPayload struct {
	Categories      []CategoryJSON `json:"categories"`
	TotalCategories int            `json:"total_categories"`
	TotalDocuments  int            `json:"total_documents"`
}

// CategoryJSON is one category with its document count.
type CategoryJSON struct {
	Name          string `json:"name"`
	DocumentCount int    `json:"document_count"`
}
