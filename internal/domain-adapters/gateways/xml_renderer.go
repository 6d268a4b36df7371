package gateways

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// xmlRenderer serializes diffs as XML
type xmlRenderer struct{}

// NewXMLRenderer creates a new XML diff renderer
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewXMLRenderer() *xmlRenderer {
	return &xmlRenderer{}
}

// Format returns entities.FormatXML
func (r *xmlRenderer) Format() entities.OutputFormat {
	return entities.FormatXML
}

// RenderCompact renders the declaration and document on a single line
func (r *xmlRenderer) RenderCompact(diff *entities.Diff) ([]byte, error) {
	doc, err := r.document(diff)
	if err != nil {
		return nil, err
	}
	data, err := xml.Marshal(doc)
	if err != nil {
		return nil, &entities.RenderError{Operation: "render diff", Format: string(entities.FormatXML), Err: err}
	}
	return append([]byte(strings.TrimSuffix(xml.Header, "\n")), data...), nil
}

// RenderPretty renders the diff indented by two spaces
func (r *xmlRenderer) RenderPretty(diff *entities.Diff) ([]byte, error) {
	doc, err := r.document(diff)
	if err != nil {
		return nil, err
	}
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, &entities.RenderError{Operation: "render diff", Format: string(entities.FormatXML), Err: err}
	}
	out := append([]byte(xml.Header), data...)
	return append(out, '\n'), nil
}

func (r *xmlRenderer) document(diff *entities.Diff) (*diffDocument, error) {
	if err := validateDiff(diff, true); err != nil {
		return nil, &entities.RenderError{Operation: "render diff", Format: string(entities.FormatXML), Err: err}
	}
	return toDiffDocument(diff), nil
}

// ParseBack decodes a rendered XML diff
func (r *xmlRenderer) ParseBack(data []byte) (*entities.Diff, error) {
	var doc diffDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse XML diff: %w", err)
	}
	return fromDiffDocument(&doc), nil
}
