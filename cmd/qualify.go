package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/pipeline"
)

var qualifyDomain string

var qualifyCmd = &cobra.Command{
	Use:   "qualify <company name>",
	Short: "Run the evidence-driven qualification pipeline for a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, cat, err := initQualifier(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer cat.Close() //nolint:errcheck

		report, err := q.Run(cmd.Context(), pipeline.QualifyRequest{
			CompanyName: args[0],
			Domain:      qualifyDomain,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	qualifyCmd.Flags().StringVar(&qualifyDomain, "domain", "", "company website domain, if known")
	rootCmd.AddCommand(qualifyCmd)
}
