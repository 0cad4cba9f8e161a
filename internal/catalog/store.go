// Package catalog provides read-only access to a seller's product
// catalog. The qualification engine consumes it; nothing here writes
// business data.
package catalog

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
)

// Store reads products for a seller.
type Store interface {
	ListProducts(ctx context.Context, sellerID string) ([]model.Product, error)
	Close() error
}

// Config selects and configures a catalog backend.
type Config struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	Path        string `yaml:"path" mapstructure:"path"`
	SellerID    string `yaml:"seller_id" mapstructure:"seller_id"`
}

// Open creates the catalog store named by cfg.Driver: "postgres",
// "sqlite", or "yaml".
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL)
	case "sqlite":
		return NewSQLite(cfg.Path)
	case "yaml", "":
		return NewYAMLFile(cfg.Path)
	default:
		return nil, eris.Errorf("catalog: unknown driver %q", cfg.Driver)
	}
}
