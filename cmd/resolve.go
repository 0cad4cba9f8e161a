package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var resolveName string

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Resolve company identity and locale from a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := initResolver(cfg)

		identity, err := r.Resolve(cmd.Context(), args[0], resolveName)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(identity)
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveName, "name", "", "known company name, if any")
	rootCmd.AddCommand(resolveCmd)
}
