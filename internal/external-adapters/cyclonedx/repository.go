package cyclonedx

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces"
)

// DocumentRepository implements repositories.DocumentRepository on local files
type DocumentRepository struct {
	fs     afero.Fs
	parser *Parser
	logger interfaces.Logger
}

// NewDocumentRepository creates a new file-based document repository
func NewDocumentRepository(logger interfaces.Logger) *DocumentRepository {
	return NewDocumentRepositoryWithFs(afero.NewOsFs(), logger)
}

// NewDocumentRepositoryWithFs creates a repository reading from fs (e.g. afero.NewMemMapFs in tests)
func NewDocumentRepositoryWithFs(fs afero.Fs, logger interfaces.Logger) *DocumentRepository {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &DocumentRepository{
		fs:     fs,
		parser: NewParser(),
		logger: logger,
	}
}

// GetDocument loads the SBOM stored at path
func (r *DocumentRepository) GetDocument(_ context.Context, path string) (*entities.SBOM, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no file name provided", entities.ErrMissingInput)
	}

	info, err := r.fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: file (%s) does not exist", entities.ErrMissingInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read SBOM from file (%s): %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("unable to read SBOM from file (%s): is a directory", path)
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("unable to read SBOM from file (%s): %w", path, err)
	}

	doc, err := r.parser.Parse(data, DetectEncoding(path, data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SBOM %s: %w", path, err)
	}

	digest := sha256.Sum256(data)
	r.logger.Debug("Loaded SBOM",
		interfaces.F("path", path),
		interfaces.F("components", len(doc.Components)),
		interfaces.F("sha256", hex.EncodeToString(digest[:])))

	return doc, nil
}
