package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// BuildDerivative assembles a new SBOM holding every added component and the
// new side of every modified component, each tagged with a diff reason.
// Removed components never appear. The inputs are not modified.
func BuildDerivative(original, updated *entities.SBOM, diff *entities.Diff, tool entities.Tool, now time.Time) *entities.SBOM {
	if diff == nil {
		diff = entities.NewDiff()
	}

	doc := &entities.SBOM{
		BOMFormat:   "CycloneDX",
		SpecVersion: "1.3",
		Version:     1,
	}
	if updated != nil {
		if updated.BOMFormat != "" {
			doc.BOMFormat = updated.BOMFormat
		}
		if updated.SpecVersion != "" {
			doc.SpecVersion = updated.SpecVersion
		}
		doc.SerialNumber = updated.SerialNumber
		doc.Version = updated.Version
		doc.XMLNS = updated.XMLNS
	}
	if doc.SerialNumber == "" {
		doc.SerialNumber = "urn:uuid:" + uuid.NewString()
	}

	doc.Metadata = buildMetadata(original, updated, tool, now)

	components := make([]entities.Component, 0, len(diff.ComponentsAdded)+len(diff.ModifiedComponents))
	for _, c := range diff.ComponentsAdded {
		components = append(components, tagComponent(c, entities.DiffReasonAdded))
	}
	for _, m := range diff.ModifiedComponents {
		components = append(components, tagComponent(m.NewComponent, entities.DiffReasonModified))
	}
	doc.Components = components

	return doc
}

func buildMetadata(original, updated *entities.SBOM, tool entities.Tool, now time.Time) *entities.Metadata {
	metadata := &entities.Metadata{
		Timestamp: now,
		Tools:     MergeTools([]entities.Tool{tool}, entities.ToolsOf(updated), entities.ToolsOf(original)),
	}

	if updated != nil && updated.Metadata != nil && updated.Metadata.Component != nil {
		subject := *updated.Metadata.Component
		metadata.Component = &subject
	}

	return metadata
}

// tagComponent copies c with the diff reason appended and a non-nil reference list
func tagComponent(c entities.Component, reason string) entities.Component {
	tagged := c.WithProperty(entities.DiffReasonProperty, reason)
	refs := make([]entities.ExternalReference, 0, len(c.ExternalReferences))
	tagged.ExternalReferences = append(refs, c.ExternalReferences...)
	return tagged
}

// MergeTools returns the union of the tool lists in order, keeping the first
// entry for each name and vendor pair.
func MergeTools(lists ...[]entities.Tool) []entities.Tool {
	merged := make([]entities.Tool, 0)
	for _, list := range lists {
		for _, tool := range list {
			if !containsTool(merged, tool) {
				merged = append(merged, tool)
			}
		}
	}
	return merged
}

func containsTool(tools []entities.Tool, want entities.Tool) bool {
	for _, t := range tools {
		if entities.SameTool(t, want) {
			return true
		}
	}
	return false
}
