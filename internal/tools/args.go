package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/kailas-cloud/kbase/internal/domain"
	"github.com/kailas-cloud/kbase/internal/domain/render/detail"
	"github.com/kailas-cloud/kbase/internal/domain/render/format"
)

type searchArgs struct {
	Query       string        `json:"query"`
	Category    *string       `json:"category"`
	MaxResults  int           `json:"max_results"`
	Format      format.Format `json:"format"`
	DetailLevel detail.Level  `json:"detail_level"`
}

type getDocumentArgs struct {
	DocumentID string        `json:"document_id"`
	Format     format.Format `json:"format"`
}

type listCategoriesArgs struct {
	Format format.Format `json:"format"`
}

// decodeArgs fills schema defaults into raw, validates the result and
// decodes it into dst. Empty or null input is treated as {}.
func decodeArgs(raw json.RawMessage, rs *jsonschema.Resolved, dst any) error {
	m := map[string]any{}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return domain.NewArgumentError("", "arguments must be a JSON object")
		}
		if m == nil {
			m = map[string]any{}
		}
	}

	if err := rs.ApplyDefaults(&m); err != nil {
		return fmt.Errorf("apply defaults: %w", err)
	}
	if err := rs.Validate(m); err != nil {
		return domain.NewArgumentError("", err.Error())
	}

	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("re-encode arguments: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return domain.NewArgumentError("", err.Error())
	}
	return nil
}
