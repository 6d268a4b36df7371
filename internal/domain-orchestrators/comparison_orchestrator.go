// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces/gateways"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces/repositories"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces/services"
)

// Default output base names
const (
	DefaultDiffName = "diff"
	DefaultBOMName  = "diffBom"
	DefaultHTMLName = "sbomcompared"
)

// Request describes one comparison run
type Request struct {
	OriginalPath string
	NewPath      string

	// Output base names; the format extension is appended when missing
	DiffOutput string
	BOMOutput  string
	HTMLOutput string

	Format entities.OutputFormat
	Pretty bool

	Keyring           string
	OriginalSignature string
	NewSignature      string
	OriginalSHA256    string
	NewSHA256         string
}

// Result contains the outcome of a comparison run
type Result struct {
	Original   *entities.SBOM
	Updated    *entities.SBOM
	Diff       *entities.Diff
	Derivative *entities.SBOM
	Artifacts  []*entities.Artifact
	Integrity  *IntegrityResult
	Duration   time.Duration
}

// ComparisonOrchestrator coordinates loading, comparing, rendering and writing
type ComparisonOrchestrator struct {
	documents  repositories.DocumentRepository
	comparison services.ComparisonService
	reports    gateways.ReportGateway
	encoder    gateways.DocumentEncoder
	writer     gateways.ArtifactWriter
	integrity  *IntegrityOrchestrator
	logger     interfaces.Logger
	now        func() time.Time
}

// NewComparisonOrchestrator creates a new comparison orchestrator.
// integrity may be nil when no input verification is wanted.
func NewComparisonOrchestrator(
	documents repositories.DocumentRepository,
	comparison services.ComparisonService,
	reports gateways.ReportGateway,
	encoder gateways.DocumentEncoder,
	writer gateways.ArtifactWriter,
	integrity *IntegrityOrchestrator,
	logger interfaces.Logger,
) *ComparisonOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &ComparisonOrchestrator{
		documents:  documents,
		comparison: comparison,
		reports:    reports,
		encoder:    encoder,
		writer:     writer,
		integrity:  integrity,
		logger:     logger,
		now:        time.Now,
	}
}

// Run executes the complete comparison workflow.
// All artifacts are rendered before any is written; if a write fails, the
// artifacts already written in this run are removed.
func (o *ComparisonOrchestrator) Run(ctx context.Context, req Request) (result *Result, err error) {
	startTime := time.Now()
	defer func() {
		elapsed := time.Since(startTime)
		if err != nil {
			o.logger.Error(fmt.Sprintf("It took %s to fail comparing two SBOMs", elapsed), interfaces.F("error", err))
			return
		}
		result.Duration = elapsed
		o.logger.Info(fmt.Sprintf("It took %s to successfully compare two SBOMs", elapsed))
	}()

	// Step 1: Validate the request
	if req.OriginalPath == "" {
		return nil, fmt.Errorf("%w: original SBOM not provided", entities.ErrMissingInput)
	}
	if req.NewPath == "" {
		return nil, fmt.Errorf("%w: new SBOM not provided", entities.ErrMissingInput)
	}
	format, err := entities.ParseOutputFormat(string(req.Format))
	if err != nil {
		return nil, err
	}

	result = &Result{}

	// Step 2: Verify inputs (optional)
	checks := []IntegrityCheck{
		{Path: req.OriginalPath, SHA256: req.OriginalSHA256, Signature: req.OriginalSignature},
		{Path: req.NewPath, SHA256: req.NewSHA256, Signature: req.NewSignature},
	}
	if checks[0].Requested() || checks[1].Requested() {
		if o.integrity == nil {
			return nil, fmt.Errorf("integrity checks requested but no verifier is configured")
		}
		integrity, err := o.integrity.VerifyInputs(ctx, req.Keyring, checks...)
		if err != nil {
			return nil, err
		}
		result.Integrity = integrity
	}

	// Step 3: Load both documents
	original, err := o.documents.GetDocument(ctx, req.OriginalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load original SBOM: %w", err)
	}
	updated, err := o.documents.GetDocument(ctx, req.NewPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load new SBOM: %w", err)
	}
	result.Original = original
	result.Updated = updated

	// Step 4: Classify and derive
	result.Diff = o.comparison.Compare(original, updated)
	result.Derivative = o.comparison.Derive(original, updated, result.Diff)
	o.logger.Debug("Classified components",
		interfaces.F("added", len(result.Diff.ComponentsAdded)),
		interfaces.F("removed", len(result.Diff.ComponentsRemoved)),
		interfaces.F("modified", len(result.Diff.ModifiedComponents)))

	// Step 5: Render every artifact
	artifacts, err := o.render(req, format, result)
	if err != nil {
		return nil, err
	}

	// Step 6: Write
	if err := o.write(ctx, artifacts); err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	return result, nil
}

func (o *ComparisonOrchestrator) render(req Request, format entities.OutputFormat, result *Result) ([]*entities.Artifact, error) {
	diffContent, err := o.reports.RenderStructured(result.Diff, format, req.Pretty)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s diff: %w", format, err)
	}

	bomContent, err := o.encoder.EncodeDocument(result.Derivative, format)
	if err != nil {
		return nil, &entities.RenderError{Operation: "encode derivative SBOM", Format: string(format), Err: err}
	}

	htmlContent, err := o.reports.RenderHTML(result.Diff, entities.ReportContext{
		OriginalName: req.OriginalPath,
		NewName:      req.NewPath,
		GeneratedAt:  o.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render HTML report: %w", err)
	}

	return []*entities.Artifact{
		newArtifact(defaultName(req.DiffOutput, DefaultDiffName), format.Extension(), entities.ArtifactDiff, format, diffContent),
		newArtifact(defaultName(req.BOMOutput, DefaultBOMName), format.Extension(), entities.ArtifactBOM, format, bomContent),
		newArtifact(defaultName(req.HTMLOutput, DefaultHTMLName), "html", entities.ArtifactHTML, "", htmlContent),
	}, nil
}

func (o *ComparisonOrchestrator) write(ctx context.Context, artifacts []*entities.Artifact) error {
	written := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		if err := o.writer.WriteArtifact(ctx, artifact); err != nil {
			for _, path := range written {
				if rmErr := o.writer.Remove(path); rmErr != nil {
					o.logger.Warn("Failed to remove artifact after error",
						interfaces.F("path", path),
						interfaces.F("error", rmErr))
				}
			}
			return fmt.Errorf("failed to write %s output %s: %w", artifact.Type, artifact.Path, err)
		}
		written = append(written, artifact.Path)
	}
	return nil
}

func newArtifact(base, ext, kind string, format entities.OutputFormat, content []byte) *entities.Artifact {
	path := ArtifactPath(base, ext)
	return &entities.Artifact{
		Name:    path,
		Path:    path,
		Type:    kind,
		Format:  format,
		Content: content,
	}
}

func defaultName(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}

// ArtifactPath appends ".ext" to base unless base already ends with it (case-insensitively)
func ArtifactPath(base, ext string) string {
	suffix := "." + ext
	if strings.HasSuffix(strings.ToLower(base), strings.ToLower(suffix)) {
		return base
	}
	return base + suffix
}

// GetComparisonSummary returns a human-readable summary of the run
func (r *Result) GetComparisonSummary() string {
	if r == nil || r.Diff == nil {
		return "Comparison did not complete"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Added: %d\nRemoved: %d\nModified: %d\n",
		len(r.Diff.ComponentsAdded), len(r.Diff.ComponentsRemoved), len(r.Diff.ModifiedComponents))

	for _, c := range r.Diff.ComponentsAdded {
		fmt.Fprintf(&b, "+ %s %s\n", entities.IdentityOf(c), c.Version)
	}
	for _, c := range r.Diff.ComponentsRemoved {
		fmt.Fprintf(&b, "- %s %s\n", entities.IdentityOf(c), c.Version)
	}
	for _, m := range r.Diff.ModifiedComponents {
		fmt.Fprintf(&b, "~ %s %s -> %s\n", entities.IdentityOf(m.NewComponent),
			strings.TrimSpace(m.PreviousComponent.Version), strings.TrimSpace(m.NewComponent.Version))
	}

	if r.Integrity != nil && r.Integrity.Verified() > 0 {
		fmt.Fprintf(&b, "Integrity checks passed: %d\n", r.Integrity.Verified())
	}
	for _, a := range r.Artifacts {
		fmt.Fprintf(&b, "Wrote %s\n", a.Path)
	}
	if r.Duration > 0 {
		fmt.Fprintf(&b, "Total: %v\n", r.Duration)
	}

	return b.String()
}
