// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// DocumentRepository defines the interface for loading SBOM documents
type DocumentRepository interface {
	// GetDocument loads and decodes the SBOM stored at path
	GetDocument(ctx context.Context, path string) (*entities.SBOM, error)
}
