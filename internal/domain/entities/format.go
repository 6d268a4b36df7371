package entities

import (
	"fmt"
	"strings"
)

// OutputFormat selects the encoding of the structured diff and the derivative SBOM
type OutputFormat string

const (
	// FormatXML is the default output format
	FormatXML OutputFormat = "xml"
	// FormatJSON selects JSON output
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat accepts "xml" or "json" in any case; empty selects XML
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatXML):
		return FormatXML, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (valid values are xml, json)", ErrUnsupportedFormat, s)
	}
}

// Extension returns the file suffix for the format, without the dot
func (f OutputFormat) Extension() string {
	return string(f)
}
