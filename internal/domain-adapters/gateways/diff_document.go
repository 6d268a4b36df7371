package gateways

import (
	"encoding/xml"
	"fmt"
	"unicode/utf8"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
	"github.com/ochairo/sbomdiff/internal/external-adapters/cyclonedx"
)

// diffDocument is the serialized shape of a diff in JSON and XML
type diffDocument struct {
	XMLName            xml.Name              `json:"-" xml:"sbomDiff"`
	ComponentsAdded    []cyclonedx.Component `json:"componentsAdded" xml:"componentsAdded>component"`
	ComponentsRemoved  []cyclonedx.Component `json:"componentsRemoved" xml:"componentsRemoved>component"`
	ModifiedComponents []modifiedComponent   `json:"modifiedComponents" xml:"modifiedComponents>modifiedComponent"`
}

type modifiedComponent struct {
	PreviousComponent cyclonedx.Component `json:"previousComponent" xml:"previousComponent"`
	NewComponent      cyclonedx.Component `json:"newComponent" xml:"newComponent"`
}

func toDiffDocument(diff *entities.Diff) *diffDocument {
	if diff == nil {
		diff = entities.NewDiff()
	}

	doc := &diffDocument{
		ComponentsAdded:    cyclonedx.ComponentsFromEntities(diff.ComponentsAdded),
		ComponentsRemoved:  cyclonedx.ComponentsFromEntities(diff.ComponentsRemoved),
		ModifiedComponents: make([]modifiedComponent, 0, len(diff.ModifiedComponents)),
	}
	for _, m := range diff.ModifiedComponents {
		doc.ModifiedComponents = append(doc.ModifiedComponents, modifiedComponent{
			PreviousComponent: cyclonedx.ComponentFromEntity(m.PreviousComponent),
			NewComponent:      cyclonedx.ComponentFromEntity(m.NewComponent),
		})
	}

	return doc
}

func fromDiffDocument(doc *diffDocument) *entities.Diff {
	diff := entities.NewDiff()
	for _, c := range doc.ComponentsAdded {
		diff.ComponentsAdded = append(diff.ComponentsAdded, cyclonedx.ComponentToEntity(c))
	}
	for _, c := range doc.ComponentsRemoved {
		diff.ComponentsRemoved = append(diff.ComponentsRemoved, cyclonedx.ComponentToEntity(c))
	}
	for _, m := range doc.ModifiedComponents {
		diff.ModifiedComponents = append(diff.ModifiedComponents, entities.ModifiedComponent{
			PreviousComponent: cyclonedx.ComponentToEntity(m.PreviousComponent),
			NewComponent:      cyclonedx.ComponentToEntity(m.NewComponent),
		})
	}
	return diff
}

// validateDiff rejects text that an encoder would silently replace, which
// would change a component's identity on the way back in.
// xmlText additionally rejects characters XML 1.0 cannot carry.
func validateDiff(diff *entities.Diff, xmlText bool) error {
	if diff == nil {
		return nil
	}

	components := make([]entities.Component, 0, diff.Total()+len(diff.ModifiedComponents))
	components = append(components, diff.ComponentsAdded...)
	components = append(components, diff.ComponentsRemoved...)
	for _, m := range diff.ModifiedComponents {
		components = append(components, m.PreviousComponent, m.NewComponent)
	}

	for _, c := range components {
		fields := []struct{ name, value string }{
			{"name", c.Name}, {"group", c.Group}, {"version", c.Version}, {"publisher", c.Publisher},
		}
		for _, p := range c.Properties {
			fields = append(fields,
				struct{ name, value string }{"property name", p.Name},
				struct{ name, value string }{"property value", p.Value})
		}
		for _, f := range fields {
			if err := validateText(f.value, xmlText); err != nil {
				return fmt.Errorf("component %s: %s: %w", entities.IdentityOf(c), f.name, err)
			}
		}
	}
	return nil
}

func validateText(s string, xmlText bool) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("invalid UTF-8 in %q", s)
	}
	if !xmlText {
		return nil
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return fmt.Errorf("character %U is not allowed in XML", r)
		}
	}
	return nil
}

// isXMLChar reports whether r is in the XML 1.0 Char production
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}
