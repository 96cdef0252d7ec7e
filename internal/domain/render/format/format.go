package format

// Format is the response serialization selected by the caller.
type Format string

// Response format constants.
const (
	// JSON renders a 2-space indented structured payload.
	JSON Format = "json"
	// Markdown renders human-readable text (default).
	Markdown Format = "markdown"
)

// Default is the format used when the caller does not pick one.
const Default = Markdown

// Values lists the allowed formats in schema order.
func Values() []Format { return []Format{JSON, Markdown} }
