// Package entities defines core domain models and data structures.
package entities

// Artifact represents an output file produced by a comparison
type Artifact struct {
	Name    string
	Path    string
	Type    string // "diff", "bom", "html"
	Format  OutputFormat
	Content []byte
}

// Artifact types
const (
	ArtifactDiff = "diff"
	ArtifactBOM  = "bom"
	ArtifactHTML = "html"
)
