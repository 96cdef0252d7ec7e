package kbase

// Format selects the response serialization.
type Format string

// Format constants.
const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// DetailLevel selects how much content search results carry.
type DetailLevel string

// Detail level constants.
const (
	DetailConcise  DetailLevel = "concise"
	DetailDetailed DetailLevel = "detailed"
)

// SearchParams are the search_knowledge_base arguments. Zero values are
// omitted so the server defaults apply.
type SearchParams struct {
	Query       string      `json:"query"`
	Category    string      `json:"category,omitempty"`
	MaxResults  int         `json:"max_results,omitempty"`
	Format      Format      `json:"format,omitempty"`
	DetailLevel DetailLevel `json:"detail_level,omitempty"`
}

// Tool describes one server tool.
type Tool struct {
	Name        string
	Description string
}

// HealthStatus represents the aggregated server health.
type HealthStatus struct {
	Status string            `json:"status"` // "ok", "degraded", "error"
	Checks map[string]string `json:"checks"` // component → "ok"/"error"
}
