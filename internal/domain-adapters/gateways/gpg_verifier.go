package gateways

import (
	"context"
	"fmt"

	"github.com/ochairo/sbomdiff/internal/external-adapters/gpg"
)

// gpgVerifier wraps the external OpenPGP adapter to implement the domain gateway interface
type gpgVerifier struct {
	verifier *gpg.Verifier
}

// NewGPGVerifier creates a new OpenPGP verifier gateway
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewGPGVerifier() *gpgVerifier {
	return &gpgVerifier{
		verifier: gpg.NewVerifier(),
	}
}

// ImportKeyring imports public keys from a local keyring file
func (g *gpgVerifier) ImportKeyring(keyPath string) error {
	if err := g.verifier.ImportKeyFromFile(keyPath); err != nil {
		return fmt.Errorf("failed to import keyring %s: %w", keyPath, err)
	}
	return nil
}

// VerifySignature verifies a detached signature from a local file
func (g *gpgVerifier) VerifySignature(ctx context.Context, filePath, sigPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.verifier.VerifySignatureFromFile(filePath, sigPath); err != nil {
		return fmt.Errorf("OpenPGP signature verification failed for %s: %w", filePath, err)
	}
	return nil
}

// GetKeyringSize returns the number of keys loaded
func (g *gpgVerifier) GetKeyringSize() int {
	return g.verifier.GetKeyringSize()
}
