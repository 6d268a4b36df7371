package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ochairo/sbomdiff/internal/config"
	"github.com/ochairo/sbomdiff/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/sbomdiff/internal/domain-orchestrators"
	"github.com/ochairo/sbomdiff/internal/external-adapters/cyclonedx"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the checksum and signature of an SBOM",
		Example: `  sbomdiff verify --file bom.xml --sha256 9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08
  sbomdiff verify --file bom.xml --sig bom.xml.asc --keyring keys.asc`,
		Args: cobra.NoArgs,
		RunE: runVerify,
	}

	flags := cmd.Flags()
	flags.String("file", "", "SBOM file to verify")
	flags.String("sha256", "", "Expected SHA-256 of the file")
	flags.String("sig", "", "Detached OpenPGP signature of the file")
	flags.String(config.KeyKeyring, "", "Armored or binary OpenPGP keyring")

	return cmd
}

func runVerify(cmd *cobra.Command, _ []string) error {
	v, err := loadViper(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.LoadVerify(v)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogJSON, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	integrity := orchestrators.NewIntegrityOrchestrator(gateways.NewIntegrityGateway(), logger)
	result, err := integrity.VerifyInputs(cmd.Context(), cfg.Keyring, orchestrators.IntegrityCheck{
		Path:      cfg.File,
		SHA256:    cfg.SHA256,
		Signature: cfg.Signature,
	})
	if err != nil {
		return err
	}

	doc, err := cyclonedx.NewDocumentRepository(logger).GetDocument(cmd.Context(), cfg.File)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✓ %s verified", cfg.File)))
	fmt.Fprintf(out, "Checks passed: %d\n", result.Verified())
	fmt.Fprintf(out, "Components: %d\n", len(doc.Components))
	return nil
}
