package cyclonedx

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// Encoding identifies how a document is serialized on disk
type Encoding string

// Supported document encodings
const (
	EncodingJSON Encoding = "json"
	EncodingXML  Encoding = "xml"
	EncodingYAML Encoding = "yaml"
)

// Parser decodes CycloneDX documents
type Parser struct{}

// NewParser creates a new CycloneDX parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes document bytes in the given encoding
func (p *Parser) Parse(data []byte, encoding Encoding) (*entities.SBOM, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("document is empty")
	}

	var bom BOM
	switch encoding {
	case EncodingJSON:
		if err := json.Unmarshal(data, &bom); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case EncodingXML:
		if err := xml.Unmarshal(data, &bom); err != nil {
			return nil, fmt.Errorf("failed to parse XML: %w", err)
		}
	case EncodingYAML:
		if err := yaml.Unmarshal(data, &bom); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document encoding: %s", encoding)
	}

	if bom.BOMFormat != "" && !strings.EqualFold(bom.BOMFormat, "CycloneDX") {
		return nil, fmt.Errorf("unsupported bomFormat %q", bom.BOMFormat)
	}

	return ToEntity(&bom), nil
}

// DetectEncoding picks an encoding from the file extension, then from the first
// non-blank byte of the content.
func DetectEncoding(filePath string, data []byte) Encoding {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return EncodingJSON
	case ".xml":
		return EncodingXML
	case ".yaml", ".yml":
		return EncodingYAML
	}

	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return EncodingJSON
	case trimmed[0] == '{':
		return EncodingJSON
	case trimmed[0] == '<':
		return EncodingXML
	default:
		return EncodingYAML
	}
}
