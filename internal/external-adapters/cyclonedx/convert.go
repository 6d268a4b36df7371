package cyclonedx

import (
	"strings"
	"time"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

const namespacePrefix = "http://cyclonedx.org/schema/bom/"

// ToEntity converts a wire BOM into a domain SBOM
func ToEntity(b *BOM) *entities.SBOM {
	doc := &entities.SBOM{
		BOMFormat:    b.BOMFormat,
		SpecVersion:  b.SpecVersion,
		SerialNumber: b.SerialNumber,
		Version:      b.Version,
		XMLNS:        b.XMLNS,
		Components:   ComponentsToEntities(b.Components),
	}

	if b.XMLName.Space != "" {
		doc.XMLNS = b.XMLName.Space
	}
	if doc.SpecVersion == "" && strings.HasPrefix(doc.XMLNS, namespacePrefix) {
		doc.SpecVersion = strings.TrimPrefix(doc.XMLNS, namespacePrefix)
	}
	if doc.BOMFormat == "" {
		doc.BOMFormat = "CycloneDX"
	}

	if b.Metadata != nil {
		doc.Metadata = &entities.Metadata{
			Timestamp: parseTimestamp(b.Metadata.Timestamp),
			Tools:     toolsToEntities(b.Metadata.Tools),
		}
		if b.Metadata.Component != nil {
			subject := ComponentToEntity(*b.Metadata.Component)
			doc.Metadata.Component = &subject
		}
	}

	return doc
}

// FromEntity converts a domain SBOM into its wire shape
func FromEntity(doc *entities.SBOM) *BOM {
	b := &BOM{
		BOMFormat:    doc.BOMFormat,
		SpecVersion:  doc.SpecVersion,
		SerialNumber: doc.SerialNumber,
		Version:      doc.Version,
		XMLNS:        doc.XMLNS,
		Components:   ComponentsFromEntities(doc.Components),
	}

	if b.BOMFormat == "" {
		b.BOMFormat = "CycloneDX"
	}
	if b.XMLNS == "" && b.SpecVersion != "" {
		b.XMLNS = namespacePrefix + b.SpecVersion
	}

	if doc.Metadata != nil {
		b.Metadata = &Metadata{
			Tools: toolsFromEntities(doc.Metadata.Tools),
		}
		if !doc.Metadata.Timestamp.IsZero() {
			b.Metadata.Timestamp = doc.Metadata.Timestamp.UTC().Format(time.RFC3339)
		}
		if doc.Metadata.Component != nil {
			subject := ComponentFromEntity(*doc.Metadata.Component)
			b.Metadata.Component = &subject
		}
	}

	return b
}

// ComponentsToEntities converts a wire component list, keeping nil as nil
func ComponentsToEntities(list []Component) []entities.Component {
	if list == nil {
		return nil
	}
	out := make([]entities.Component, 0, len(list))
	for _, c := range list {
		out = append(out, ComponentToEntity(c))
	}
	return out
}

// ComponentsFromEntities converts a domain component list; the result is never nil
func ComponentsFromEntities(list []entities.Component) []Component {
	out := make([]Component, 0, len(list))
	for _, c := range list {
		out = append(out, ComponentFromEntity(c))
	}
	return out
}

// ComponentToEntity converts a wire component
func ComponentToEntity(c Component) entities.Component {
	comp := entities.Component{
		Type:        c.Type,
		BOMRef:      c.BOMRef,
		Publisher:   c.Publisher,
		Group:       c.Group,
		Name:        c.Name,
		Version:     c.Version,
		Description: c.Description,
		Purl:        c.Purl,
	}

	for _, h := range c.Hashes {
		comp.Hashes = append(comp.Hashes, entities.Hash{Algorithm: h.Algorithm, Value: strings.TrimSpace(h.Content)})
	}
	for _, l := range c.Licenses {
		if l.License != nil {
			comp.Licenses = append(comp.Licenses, entities.License{ID: l.License.ID, Name: l.License.Name})
		}
	}
	for _, l := range c.XMLLicenses {
		comp.Licenses = append(comp.Licenses, entities.License{ID: l.ID, Name: l.Name})
	}
	for _, p := range c.Properties {
		comp.Properties = append(comp.Properties, entities.Property{Name: p.Name, Value: p.Value})
	}
	if c.ExternalReferences != nil {
		comp.ExternalReferences = make([]entities.ExternalReference, 0, len(c.ExternalReferences))
		for _, r := range c.ExternalReferences {
			comp.ExternalReferences = append(comp.ExternalReferences, entities.ExternalReference{
				Type:    r.Type,
				URL:     strings.TrimSpace(r.URL),
				Comment: r.Comment,
			})
		}
	}

	return comp
}

// ComponentFromEntity converts a domain component into its wire shape
func ComponentFromEntity(c entities.Component) Component {
	comp := Component{
		Type:        c.Type,
		BOMRef:      c.BOMRef,
		Publisher:   c.Publisher,
		Group:       c.Group,
		Name:        c.Name,
		Version:     c.Version,
		Description: c.Description,
		Purl:        c.Purl,
	}

	for _, h := range c.Hashes {
		comp.Hashes = append(comp.Hashes, Hash{Algorithm: h.Algorithm, Content: h.Value})
	}
	for _, l := range c.Licenses {
		license := License{ID: l.ID, Name: l.Name}
		comp.Licenses = append(comp.Licenses, LicenseChoice{License: &license})
		comp.XMLLicenses = append(comp.XMLLicenses, license)
	}
	for _, p := range c.Properties {
		comp.Properties = append(comp.Properties, Property{Name: p.Name, Value: p.Value})
	}
	for _, r := range c.ExternalReferences {
		comp.ExternalReferences = append(comp.ExternalReferences, ExternalReference{
			Type:    r.Type,
			URL:     r.URL,
			Comment: r.Comment,
		})
	}

	return comp
}

func toolsToEntities(tools []Tool) []entities.Tool {
	out := make([]entities.Tool, 0, len(tools))
	for _, t := range tools {
		out = append(out, entities.Tool{Vendor: t.Vendor, Name: t.Name, Version: t.Version})
	}
	return out
}

func toolsFromEntities(tools []entities.Tool) ToolList {
	out := make(ToolList, 0, len(tools))
	for _, t := range tools {
		out = append(out, Tool{Vendor: t.Vendor, Name: t.Name, Version: t.Version})
	}
	return out
}

// parseTimestamp accepts RFC 3339 timestamps; anything else yields the zero time
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}
