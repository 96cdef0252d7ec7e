package detail

// Level selects how much of a document's content is rendered.
type Level string

// Detail level constants.
const (
	// Concise renders only the one-line summary (default).
	Concise Level = "concise"
	// Detailed renders the full trimmed content.
	Detailed Level = "detailed"
)

// Default is the level used when the caller does not pick one.
const Default = Concise

// Values lists the allowed levels in schema order.
func Values() []Level { return []Level{Concise, Detailed} }
