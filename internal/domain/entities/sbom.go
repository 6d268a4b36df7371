package entities

import "time"

// SBOM represents a Software Bill of Materials
type SBOM struct {
	BOMFormat    string // "CycloneDX"
	SpecVersion  string // "1.3"
	SerialNumber string // "urn:uuid:..."
	Version      int
	XMLNS        string // namespace declaration, e.g. "http://cyclonedx.org/schema/bom/1.3"
	Metadata     *Metadata
	Components   []Component
}

// Metadata contains SBOM generation metadata
type Metadata struct {
	Timestamp time.Time
	Tools     []Tool
	Component *Component // subject of the SBOM, optional
}

// Tool represents a tool used to generate or process the SBOM
type Tool struct {
	Vendor  string
	Name    string
	Version string
}

// SameTool reports whether two tool entries name the same tool.
// The version is not part of the comparison.
func SameTool(a, b Tool) bool {
	return a.Name == b.Name && a.Vendor == b.Vendor
}

// ComponentsOf returns the component list of a document, treating nil as empty.
func ComponentsOf(doc *SBOM) []Component {
	if doc == nil {
		return nil
	}
	return doc.Components
}

// ToolsOf returns the metadata tools of a document, if any.
func ToolsOf(doc *SBOM) []Tool {
	if doc == nil || doc.Metadata == nil {
		return nil
	}
	return doc.Metadata.Tools
}
