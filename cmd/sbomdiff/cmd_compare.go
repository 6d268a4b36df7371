package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ochairo/sbomdiff/internal/config"
	"github.com/ochairo/sbomdiff/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/sbomdiff/internal/domain-orchestrators"
	"github.com/ochairo/sbomdiff/internal/domain/services"
	"github.com/ochairo/sbomdiff/internal/external-adapters/cyclonedx"
	"github.com/ochairo/sbomdiff/internal/external-adapters/filesystem"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two SBOMs and write the diff, derivative SBOM and HTML report",
		Example: `  sbomdiff compare --orgsbom builds/1.0/bom.xml --newsbom builds/1.1/bom.xml
  sbomdiff compare --orgsbom old.json --newsbom new.json --format json --output changes
  sbomdiff compare --orgsbom old.xml --newsbom new.xml --keyring keys.asc --new-sig new.xml.asc`,
		Args: cobra.NoArgs,
		RunE: runCompare,
	}

	flags := cmd.Flags()
	flags.String(config.KeyOriginalSBOM, "", "Original SBOM (JSON, XML or YAML)")
	flags.String(config.KeyNewSBOM, "", "New SBOM (JSON, XML or YAML)")
	flags.String(config.KeyOutput, config.DefaultOutput, "Diff output file")
	flags.String(config.KeyOutputBOM, config.DefaultOutputBOM, "Output file for the SBOM of added and modified components")
	flags.String(config.KeyFormat, config.DefaultFormat, "Output format (xml or json)")
	flags.String(config.KeyHTMLOutput, config.DefaultHTMLOutput, "HTML report file")
	flags.Bool(config.KeyPretty, true, "Indent the diff output")
	flags.String(config.KeyKeyring, "", "Armored or binary OpenPGP keyring for signature checks")
	flags.String(config.KeyOriginalSig, "", "Detached signature of the original SBOM")
	flags.String(config.KeyNewSig, "", "Detached signature of the new SBOM")
	flags.String(config.KeyOriginalSHA256, "", "Expected SHA-256 of the original SBOM")
	flags.String(config.KeyNewSHA256, "", "Expected SHA-256 of the new SBOM")

	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
	v, err := loadViper(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogJSON, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	orch := orchestrators.NewComparisonOrchestrator(
		cyclonedx.NewDocumentRepositoryWithFs(fs, logger),
		services.NewComparisonService(gateways.NewBuildInfoResolver(), logger),
		gateways.NewReportGateway(),
		cyclonedx.NewEncoder(),
		filesystem.NewArtifactWriterWithFs(fs, logger),
		orchestrators.NewIntegrityOrchestrator(gateways.NewIntegrityGateway(), logger),
		logger,
	)

	result, err := orch.Run(cmd.Context(), requestFromConfig(cfg))
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), result)
	return nil
}

func requestFromConfig(cfg *config.Config) orchestrators.Request {
	return orchestrators.Request{
		OriginalPath:      cfg.OriginalSBOM,
		NewPath:           cfg.NewSBOM,
		DiffOutput:        cfg.Output,
		BOMOutput:         cfg.OutputBOM,
		HTMLOutput:        cfg.HTMLOutput,
		Format:            cfg.OutputFormat(),
		Pretty:            cfg.Pretty,
		Keyring:           cfg.Keyring,
		OriginalSignature: cfg.OriginalSig,
		NewSignature:      cfg.NewSig,
		OriginalSHA256:    cfg.OriginalSHA256,
		NewSHA256:         cfg.NewSHA256,
	}
}
