package services

import (
	"time"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces/gateways"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces/services"
)

// Identification of the comparator in derivative SBOM tool lists
const (
	ComparatorName   = "sbomdiff"
	ComparatorVendor = "ochairo"
	UnknownVersion   = "unknown"
)

// comparisonService implements ComparisonService
type comparisonService struct {
	versions gateways.ToolVersionResolver
	logger   interfaces.Logger
	now      func() time.Time
}

// NewComparisonService creates a new comparison service with dependency injection
func NewComparisonService(versions gateways.ToolVersionResolver, logger interfaces.Logger) services.ComparisonService {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &comparisonService{
		versions: versions,
		logger:   logger,
		now:      time.Now,
	}
}

// Compare classifies the components of two SBOMs
// Pure business logic - no I/O
func (s *comparisonService) Compare(original, updated *entities.SBOM) *entities.Diff {
	return Classify(entities.ComponentsOf(original), entities.ComponentsOf(updated))
}

// Derive builds the derivative SBOM for a diff
func (s *comparisonService) Derive(original, updated *entities.SBOM, diff *entities.Diff) *entities.SBOM {
	return BuildDerivative(original, updated, diff, s.ComparatorTool(), s.now())
}

// ComparatorTool returns the tool entry for this build.
// An unresolvable version is not fatal; it is logged and reported as "unknown".
func (s *comparisonService) ComparatorTool() entities.Tool {
	tool := entities.Tool{
		Vendor:  ComparatorVendor,
		Name:    ComparatorName,
		Version: UnknownVersion,
	}

	if s.versions == nil {
		s.logger.Warn("Unable to determine version of tool", interfaces.F("version", UnknownVersion))
		return tool
	}

	version, err := s.versions.ResolveVersion()
	if err != nil || version == "" {
		s.logger.Warn("Unable to determine version of tool",
			interfaces.F("version", UnknownVersion),
			interfaces.F("error", err))
		return tool
	}

	s.logger.Debug("Resolved tool version", interfaces.F("version", version))
	tool.Version = version
	return tool
}
