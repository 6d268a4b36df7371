// Package gateways defines interfaces for external service adapters.
package gateways

import (
	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// StructuredRenderer serializes a diff in one structured format.
// Output of either render mode must parse back into an equivalent diff.
type StructuredRenderer interface {
	Format() entities.OutputFormat
	RenderCompact(diff *entities.Diff) ([]byte, error)
	RenderPretty(diff *entities.Diff) ([]byte, error)
	ParseBack(data []byte) (*entities.Diff, error)
}

// ReportGateway renders a diff into its report artifacts
type ReportGateway interface {
	// RenderStructured renders the diff as JSON or XML
	RenderStructured(diff *entities.Diff, format entities.OutputFormat, pretty bool) ([]byte, error)

	// RenderHTML renders the tabular HTML report
	RenderHTML(diff *entities.Diff, rc entities.ReportContext) ([]byte, error)
}

// DocumentEncoder encodes an SBOM document in an output format
type DocumentEncoder interface {
	EncodeDocument(doc *entities.SBOM, format entities.OutputFormat) ([]byte, error)
}
