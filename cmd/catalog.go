package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/catalog"
)

var catalogSeller string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the product catalog used for fit scoring",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Open(cmd.Context(), cfg.Catalog)
		if err != nil {
			return err
		}
		defer cat.Close() //nolint:errcheck

		seller := catalogSeller
		if seller == "" {
			seller = cfg.Catalog.SellerID
		}

		products, err := cat.ListProducts(cmd.Context(), seller)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(products)
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogSeller, "seller", "", "seller ID (defaults to catalog.seller_id)")
	rootCmd.AddCommand(catalogCmd)
}
