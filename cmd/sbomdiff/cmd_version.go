package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ochairo/sbomdiff/internal/domain-adapters/gateways"
	"github.com/ochairo/sbomdiff/internal/domain/services"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sbomdiff version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, err := gateways.NewBuildInfoResolver().ResolveVersion()
			if err != nil {
				version = services.UnknownVersion
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", services.ComparatorName, version)
		},
	}
}
