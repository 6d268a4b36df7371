package cyclonedx

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/tidwall/pretty"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// Encoder writes SBOM documents as CycloneDX JSON or XML
type Encoder struct{}

// NewEncoder creates a new CycloneDX encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeDocument encodes doc in the requested format, indented for reading
func (e *Encoder) EncodeDocument(doc *entities.SBOM, format entities.OutputFormat) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}

	bom := FromEntity(doc)

	switch format {
	case entities.FormatJSON:
		data, err := json.Marshal(bom)
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON document: %w", err)
		}
		return pretty.Pretty(data), nil
	case entities.FormatXML:
		data, err := xml.MarshalIndent(bom, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode XML document: %w", err)
		}
		return append([]byte(xml.Header), append(data, '\n')...), nil
	default:
		return nil, fmt.Errorf("%w: %q", entities.ErrUnsupportedFormat, format)
	}
}
