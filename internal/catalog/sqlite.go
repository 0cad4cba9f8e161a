package catalog

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
)

// SQLiteStore reads the catalog from a local SQLite file. Useful for
// single-seller deployments and seeded test environments.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite catalog at the given path and applies the
// schema.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: open sqlite")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "catalog: exec %s", pragma)
		}
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS products (
	id                 TEXT PRIMARY KEY,
	seller_id          TEXT NOT NULL,
	name               TEXT NOT NULL,
	category           TEXT NOT NULL,
	industry           TEXT NOT NULL DEFAULT '',
	target_size        TEXT NOT NULL DEFAULT '',
	distribution_model TEXT NOT NULL DEFAULT '',
	regions            TEXT NOT NULL DEFAULT '[]',
	active             INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_products_seller ON products(seller_id);
`

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(sqliteMigration)
	return eris.Wrap(err, "catalog: migrate sqlite")
}

func (s *SQLiteStore) ListProducts(ctx context.Context, sellerID string) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, industry, target_size, distribution_model, regions
		 FROM products WHERE seller_id = ? AND active = 1 ORDER BY name`, sellerID)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: query products")
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		var regionsJSON string
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Industry,
			&p.TargetSize, &p.DistributionModel, &regionsJSON); err != nil {
			return nil, eris.Wrap(err, "catalog: scan product")
		}
		if regionsJSON != "" && regionsJSON != "[]" {
			if err := json.Unmarshal([]byte(regionsJSON), &p.Regions); err != nil {
				return nil, eris.Wrapf(err, "catalog: decode regions for product %s", p.ID)
			}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "catalog: iterate products")
	}

	return products, nil
}

// Seed inserts products for a seller, generating IDs where missing.
// Intended for local setups and tests.
func (s *SQLiteStore) Seed(ctx context.Context, sellerID string, products []model.Product) error {
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		regions, err := json.Marshal(p.Regions)
		if err != nil {
			return eris.Wrap(err, "catalog: encode regions")
		}
		_, err = s.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO products
			 (id, seller_id, name, category, industry, target_size, distribution_model, regions)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, sellerID, p.Name, p.Category, p.Industry, p.TargetSize, p.DistributionModel, string(regions))
		if err != nil {
			return eris.Wrapf(err, "catalog: insert product %s", p.Name)
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
