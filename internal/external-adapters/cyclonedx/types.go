// Package cyclonedx provides CycloneDX document decoding and encoding.
package cyclonedx

import (
	"encoding/json"
	"encoding/xml"

	"gopkg.in/yaml.v3"
)

// BOM is the wire shape of a CycloneDX document in JSON, XML and YAML
type BOM struct {
	XMLName      xml.Name    `json:"-" xml:"bom" yaml:"-"`
	XMLNS        string      `json:"-" xml:"xmlns,attr,omitempty" yaml:"-"`
	BOMFormat    string      `json:"bomFormat" xml:"-" yaml:"bomFormat"`
	SpecVersion  string      `json:"specVersion" xml:"-" yaml:"specVersion"`
	SerialNumber string      `json:"serialNumber,omitempty" xml:"serialNumber,attr,omitempty" yaml:"serialNumber,omitempty"`
	Version      int         `json:"version" xml:"version,attr" yaml:"version"`
	Metadata     *Metadata   `json:"metadata,omitempty" xml:"metadata,omitempty" yaml:"metadata,omitempty"`
	Components   []Component `json:"components" xml:"components>component" yaml:"components"`
}

// Metadata is the wire shape of BOM metadata
type Metadata struct {
	Timestamp string     `json:"timestamp,omitempty" xml:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Tools     ToolList   `json:"tools,omitempty" xml:"tools>tool,omitempty" yaml:"tools,omitempty"`
	Component *Component `json:"component,omitempty" xml:"component,omitempty" yaml:"component,omitempty"`
}

// Tool is the wire shape of a metadata tool entry
type Tool struct {
	Vendor  string `json:"vendor,omitempty" xml:"vendor,omitempty" yaml:"vendor,omitempty"`
	Name    string `json:"name" xml:"name" yaml:"name"`
	Version string `json:"version,omitempty" xml:"version,omitempty" yaml:"version,omitempty"`
}

// ToolList accepts both the legacy array form and the 1.5 object form
// ({"components": [...]}) when decoding JSON and YAML.
type ToolList []Tool

// UnmarshalJSON implements json.Unmarshaler
func (t *ToolList) UnmarshalJSON(data []byte) error {
	var list []Tool
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var wrapped struct {
		Components []Tool `json:"components"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*t = wrapped.Components
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (t *ToolList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var wrapped struct {
			Components []Tool `yaml:"components"`
		}
		if err := node.Decode(&wrapped); err != nil {
			return err
		}
		*t = wrapped.Components
		return nil
	}

	var list []Tool
	if err := node.Decode(&list); err != nil {
		return err
	}
	*t = list
	return nil
}

// Component is the wire shape of a component.
// Name, group, version and publisher are always emitted.
type Component struct {
	Type               string              `json:"type,omitempty" xml:"type,attr,omitempty" yaml:"type,omitempty"`
	BOMRef             string              `json:"bom-ref,omitempty" xml:"bom-ref,attr,omitempty" yaml:"bom-ref,omitempty"`
	Publisher          string              `json:"publisher" xml:"publisher" yaml:"publisher"`
	Group              string              `json:"group" xml:"group" yaml:"group"`
	Name               string              `json:"name" xml:"name" yaml:"name"`
	Version            string              `json:"version" xml:"version" yaml:"version"`
	Description        string              `json:"description,omitempty" xml:"description,omitempty" yaml:"description,omitempty"`
	Hashes             []Hash              `json:"hashes,omitempty" xml:"hashes>hash,omitempty" yaml:"hashes,omitempty"`
	Licenses           []LicenseChoice     `json:"licenses,omitempty" xml:"-" yaml:"licenses,omitempty"`
	XMLLicenses        []License           `json:"-" xml:"licenses>license,omitempty" yaml:"-"`
	Purl               string              `json:"purl,omitempty" xml:"purl,omitempty" yaml:"purl,omitempty"`
	ExternalReferences []ExternalReference `json:"externalReferences,omitempty" xml:"externalReferences>reference,omitempty" yaml:"externalReferences,omitempty"`
	Properties         []Property          `json:"properties,omitempty" xml:"properties>property,omitempty" yaml:"properties,omitempty"`
}

// Hash is the wire shape of a component hash
type Hash struct {
	Algorithm string `json:"alg" xml:"alg,attr" yaml:"alg"`
	Content   string `json:"content" xml:",chardata" yaml:"content"`
}

// LicenseChoice wraps a license in the JSON and YAML encodings
type LicenseChoice struct {
	License *License `json:"license,omitempty" yaml:"license,omitempty"`
}

// License is the wire shape of a license
type License struct {
	ID   string `json:"id,omitempty" xml:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name,omitempty" xml:"name,omitempty" yaml:"name,omitempty"`
}

// ExternalReference is the wire shape of an external reference
type ExternalReference struct {
	Type    string `json:"type" xml:"type,attr" yaml:"type"`
	URL     string `json:"url" xml:"url" yaml:"url"`
	Comment string `json:"comment,omitempty" xml:"comment,omitempty" yaml:"comment,omitempty"`
}

// Property is the wire shape of a name/value property
type Property struct {
	Name  string `json:"name" xml:"name,attr" yaml:"name"`
	Value string `json:"value" xml:",chardata" yaml:"value"`
}
