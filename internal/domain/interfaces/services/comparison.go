// Package services defines interfaces for domain service contracts.
package services

import (
	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// ComparisonService defines the interface for SBOM comparison operations
type ComparisonService interface {
	// Compare classifies components as added, removed or modified
	Compare(original, updated *entities.SBOM) *entities.Diff

	// Derive builds an SBOM holding only added and modified components
	Derive(original, updated *entities.SBOM, diff *entities.Diff) *entities.SBOM

	// ComparatorTool returns the tool entry identifying this comparator
	ComparatorTool() entities.Tool
}
