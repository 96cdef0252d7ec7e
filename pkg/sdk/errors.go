package kbase

import (
	"errors"
	"fmt"

	"github.com/kailas-cloud/kbase/internal/domain"
)

// Sentinel errors. Use errors.Is() to check.
var (
	// ErrToolFailed matches every *ToolError.
	ErrToolFailed = errors.New("kbase: tool call failed")
	// ErrNoBackend is returned by New when neither an endpoint nor an embedded store is configured.
	ErrNoBackend = errors.New("kbase: endpoint or embedded store required")
	// ErrDuplicateID is re-exported from the domain layer for embedded collections.
	ErrDuplicateID = domain.ErrDuplicateID
)

// ToolError carries the text of a response the server flagged as an error.
type ToolError struct {
	Tool string
	Text string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("kbase: %s: %s", e.Tool, e.Text)
}

func (e *ToolError) Unwrap() error { return ErrToolFailed }
