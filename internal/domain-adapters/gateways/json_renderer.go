package gateways

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// jsonRenderer serializes diffs as JSON
type jsonRenderer struct{}

// NewJSONRenderer creates a new JSON diff renderer
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewJSONRenderer() *jsonRenderer {
	return &jsonRenderer{}
}

// Format returns entities.FormatJSON
func (r *jsonRenderer) Format() entities.OutputFormat {
	return entities.FormatJSON
}

// RenderCompact renders the diff on a single line
func (r *jsonRenderer) RenderCompact(diff *entities.Diff) ([]byte, error) {
	if err := validateDiff(diff, false); err != nil {
		return nil, &entities.RenderError{Operation: "render diff", Format: string(entities.FormatJSON), Err: err}
	}
	data, err := json.Marshal(toDiffDocument(diff))
	if err != nil {
		return nil, &entities.RenderError{Operation: "render diff", Format: string(entities.FormatJSON), Err: err}
	}
	return data, nil
}

// RenderPretty renders the diff indented for reading
func (r *jsonRenderer) RenderPretty(diff *entities.Diff) ([]byte, error) {
	data, err := r.RenderCompact(diff)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(data), nil
}

// ParseBack decodes a rendered JSON diff
func (r *jsonRenderer) ParseBack(data []byte) (*entities.Diff, error) {
	var doc diffDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON diff: %w", err)
	}
	return fromDiffDocument(&doc), nil
}
