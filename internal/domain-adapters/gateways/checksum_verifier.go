package gateways

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// checksumVerifier implements SHA-256 verification of input documents
type checksumVerifier struct{}

// NewChecksumVerifier creates a new checksum verifier
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewChecksumVerifier() *checksumVerifier {
	return &checksumVerifier{}
}

// VerifyChecksum verifies a file's SHA256 checksum.
// The expected sum may carry a "sha256:" prefix and is compared case-insensitively.
func (v *checksumVerifier) VerifyChecksum(ctx context.Context, filePath, expectedSum string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	expected := normalizeChecksum(expectedSum)
	if expected == "" {
		return fmt.Errorf("no expected checksum provided for %s", filePath)
	}

	actualSum, err := v.CalculateChecksum(filePath)
	if err != nil {
		return err
	}

	if actualSum != expected {
		return fmt.Errorf("checksum mismatch for %s: expected %s, got %s", filePath, expected, actualSum)
	}

	return nil
}

// CalculateChecksum calculates the SHA256 checksum of a file
func (v *checksumVerifier) CalculateChecksum(filePath string) (string, error) {
	//nolint:gosec // G304: File path is the user-provided SBOM location
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func normalizeChecksum(sum string) string {
	sum = strings.ToLower(strings.TrimSpace(sum))
	return strings.TrimPrefix(sum, "sha256:")
}
