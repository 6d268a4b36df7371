// Package gpg verifies detached OpenPGP signatures over SBOM files.
package gpg

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// maxSignatureSize bounds how much of a signature file is read
const maxSignatureSize = 64 * 1024

const armoredSignaturePrefix = "-----BEGIN PGP SIGNATURE-----"

// Verifier checks detached signatures against a keyring loaded from local files.
// It uses ProtonMail's maintained fork of golang.org/x/crypto/openpgp.
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a verifier with an empty keyring
func NewVerifier() *Verifier {
	return &Verifier{
		keyring: make(openpgp.EntityList, 0),
	}
}

// ImportKeyFromFile adds the public keys of an armored or binary keyring file
func (v *Verifier) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is the user-provided keyring location
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}

	keys, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	if err != nil {
		keys, err = openpgp.ReadKeyRing(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(keys) == 0 {
		return fmt.Errorf("no keys found in %s", keyPath)
	}

	v.keyring = append(v.keyring, keys...)
	return nil
}

// VerifySignatureFromFile verifies the detached signature at sigPath over filePath.
// Armored and binary signatures are both accepted.
func (v *Verifier) VerifySignatureFromFile(filePath, sigPath string) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no public keys imported, call ImportKeyFromFile first")
	}

	//nolint:gosec // G304: sigPath is the user-provided signature location
	sigFile, err := os.Open(sigPath)
	if err != nil {
		return fmt.Errorf("failed to open signature file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer sigFile.Close()

	sigData, err := io.ReadAll(io.LimitReader(sigFile, maxSignatureSize))
	if err != nil {
		return fmt.Errorf("failed to read signature file: %w", err)
	}

	//nolint:gosec // G304: filePath is the user-provided SBOM location
	dataFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer dataFile.Close()

	if bytes.HasPrefix(bytes.TrimSpace(sigData), []byte(armoredSignaturePrefix)) {
		_, err = openpgp.CheckArmoredDetachedSignature(v.keyring, dataFile, bytes.NewReader(sigData), nil)
	} else {
		_, err = openpgp.CheckDetachedSignature(v.keyring, dataFile, bytes.NewReader(sigData), nil)
	}
	if err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}

	return nil
}

// GetKeyringSize returns the number of keys in the keyring
func (v *Verifier) GetKeyringSize() int {
	return len(v.keyring)
}

// ClearKeyring drops all imported keys
func (v *Verifier) ClearKeyring() {
	v.keyring = make(openpgp.EntityList, 0)
}
