package gateways

import (
	"context"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// ArtifactWriter persists output artifacts.
// A failed write must not leave a partial file at the artifact path.
type ArtifactWriter interface {
	WriteArtifact(ctx context.Context, artifact *entities.Artifact) error

	// Remove deletes an artifact written earlier in a run that later failed
	Remove(path string) error
}

// ToolVersionResolver resolves the version of the running comparator build
type ToolVersionResolver interface {
	ResolveVersion() (string, error)
}
