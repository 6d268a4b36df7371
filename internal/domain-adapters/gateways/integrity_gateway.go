package gateways

import (
	"context"

	"github.com/ochairo/sbomdiff/internal/domain/interfaces/gateways"
)

// compositeIntegrityGateway implements the IntegrityGateway interface by composing
// the checksum and OpenPGP verifiers
type compositeIntegrityGateway struct {
	checksumVerifier *checksumVerifier
	gpgVerifier      *gpgVerifier
}

// NewIntegrityGateway creates a new composite integrity gateway with all dependencies
func NewIntegrityGateway() gateways.IntegrityGateway {
	return &compositeIntegrityGateway{
		checksumVerifier: NewChecksumVerifier(),
		gpgVerifier:      NewGPGVerifier(),
	}
}

// VerifyChecksum verifies a file's SHA256 checksum
func (c *compositeIntegrityGateway) VerifyChecksum(ctx context.Context, filePath, expectedSum string) error {
	return c.checksumVerifier.VerifyChecksum(ctx, filePath, expectedSum)
}

// CalculateChecksum returns the hex SHA256 digest of a file
func (c *compositeIntegrityGateway) CalculateChecksum(filePath string) (string, error) {
	return c.checksumVerifier.CalculateChecksum(filePath)
}

// ImportKeyring loads public keys from a local keyring file
func (c *compositeIntegrityGateway) ImportKeyring(keyPath string) error {
	return c.gpgVerifier.ImportKeyring(keyPath)
}

// VerifySignature verifies a detached OpenPGP signature
func (c *compositeIntegrityGateway) VerifySignature(ctx context.Context, filePath, sigPath string) error {
	return c.gpgVerifier.VerifySignature(ctx, filePath, sigPath)
}
