// Package filesystem writes output artifacts through an afero filesystem.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces"
)

const artifactPerm os.FileMode = 0644

// ArtifactWriter writes artifacts atomically: content goes to a temporary
// file in the target directory which is then renamed over the artifact path.
type ArtifactWriter struct {
	fs     afero.Fs
	logger interfaces.Logger
}

// NewArtifactWriter creates a writer on the OS filesystem
func NewArtifactWriter(logger interfaces.Logger) *ArtifactWriter {
	return NewArtifactWriterWithFs(afero.NewOsFs(), logger)
}

// NewArtifactWriterWithFs creates a writer on a custom filesystem (e.g. afero.NewMemMapFs in tests)
func NewArtifactWriterWithFs(fs afero.Fs, logger interfaces.Logger) *ArtifactWriter {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &ArtifactWriter{fs: fs, logger: logger}
}

// WriteArtifact persists artifact.Content at artifact.Path
func (w *ArtifactWriter) WriteArtifact(ctx context.Context, artifact *entities.Artifact) error {
	if artifact == nil {
		return fmt.Errorf("artifact cannot be nil")
	}
	if artifact.Path == "" {
		return fmt.Errorf("artifact %s has no path", artifact.Name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(artifact.Path)
	if err := w.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(w.fs, dir, "."+filepath.Base(artifact.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", artifact.Path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(artifact.Content); err != nil {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", artifact.Path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = w.fs.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", artifact.Path, err)
	}
	if err := w.fs.Chmod(tmpName, artifactPerm); err != nil {
		_ = w.fs.Remove(tmpName)
		return fmt.Errorf("failed to set permissions on %s: %w", artifact.Path, err)
	}
	if err := w.fs.Rename(tmpName, artifact.Path); err != nil {
		_ = w.fs.Remove(tmpName)
		return fmt.Errorf("failed to move %s into place: %w", artifact.Path, err)
	}

	w.logger.Info("Wrote artifact",
		interfaces.F("type", artifact.Type),
		interfaces.F("path", artifact.Path),
		interfaces.F("bytes", len(artifact.Content)))

	return nil
}

// Remove deletes an artifact written earlier in a run that later failed
func (w *ArtifactWriter) Remove(path string) error {
	if err := w.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
