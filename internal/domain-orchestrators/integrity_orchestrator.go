package orchestrators

import (
	"context"
	"fmt"
	"time"

	"github.com/ochairo/sbomdiff/internal/domain/interfaces"
	"github.com/ochairo/sbomdiff/internal/domain/interfaces/gateways"
)

// IntegrityCheck describes the checks requested for one input document
type IntegrityCheck struct {
	Path      string
	SHA256    string // expected digest, empty to skip
	Signature string // detached signature path, empty to skip
}

// Requested reports whether any check applies to the document
func (c IntegrityCheck) Requested() bool {
	return c.SHA256 != "" || c.Signature != ""
}

// IntegrityResult records what was verified
type IntegrityResult struct {
	Checksums        []string // paths whose digest matched
	Signatures       []string // paths whose signature verified
	WorkflowDuration time.Duration
}

// Verified returns the number of checks that passed
func (r *IntegrityResult) Verified() int {
	if r == nil {
		return 0
	}
	return len(r.Checksums) + len(r.Signatures)
}

// IntegrityOrchestrator verifies input documents before they are compared
type IntegrityOrchestrator struct {
	gateway gateways.IntegrityGateway
	logger  interfaces.Logger
}

// NewIntegrityOrchestrator creates a new integrity orchestrator
func NewIntegrityOrchestrator(gateway gateways.IntegrityGateway, logger interfaces.Logger) *IntegrityOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &IntegrityOrchestrator{
		gateway: gateway,
		logger:  logger,
	}
}

// VerifyInputs runs the requested checks. The keyring is imported once when any
// signature is requested. The first failing check aborts the workflow.
func (o *IntegrityOrchestrator) VerifyInputs(ctx context.Context, keyring string, checks ...IntegrityCheck) (*IntegrityResult, error) {
	startTime := time.Now()
	result := &IntegrityResult{}

	if needsKeyring(checks) {
		if keyring == "" {
			return nil, fmt.Errorf("a keyring is required to verify signatures")
		}
		if err := o.gateway.ImportKeyring(keyring); err != nil {
			return nil, err
		}
	}

	for _, check := range checks {
		if check.SHA256 != "" {
			if err := o.gateway.VerifyChecksum(ctx, check.Path, check.SHA256); err != nil {
				return nil, fmt.Errorf("integrity check failed: %w", err)
			}
			o.logger.Info("Checksum verified", interfaces.F("path", check.Path))
			result.Checksums = append(result.Checksums, check.Path)
		}

		if check.Signature != "" {
			if err := o.gateway.VerifySignature(ctx, check.Path, check.Signature); err != nil {
				return nil, fmt.Errorf("integrity check failed: %w", err)
			}
			o.logger.Info("Signature verified",
				interfaces.F("path", check.Path),
				interfaces.F("signature", check.Signature))
			result.Signatures = append(result.Signatures, check.Path)
		}
	}

	result.WorkflowDuration = time.Since(startTime)
	return result, nil
}

func needsKeyring(checks []IntegrityCheck) bool {
	for _, c := range checks {
		if c.Signature != "" {
			return true
		}
	}
	return false
}
