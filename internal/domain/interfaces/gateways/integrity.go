package gateways

import (
	"context"
)

// IntegrityGateway verifies input documents before they are compared
type IntegrityGateway interface {
	// VerifyChecksum verifies a file's SHA256 checksum
	VerifyChecksum(ctx context.Context, filePath, expectedSum string) error

	// CalculateChecksum returns the hex SHA256 digest of a file
	CalculateChecksum(filePath string) (string, error)

	// ImportKeyring loads public keys from an armored or binary keyring file
	ImportKeyring(keyPath string) error

	// VerifySignature verifies a detached OpenPGP signature stored next to the file
	VerifySignature(ctx context.Context, filePath, sigPath string) error
}
