package catalog

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
)

// Querier is the subset of pgxpool.Pool the store uses. Tests
// substitute a pgxmock pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// PostgresStore reads the catalog from a Postgres products table.
type PostgresStore struct {
	pool Querier
}

const listProductsSQL = `
SELECT id, name, category,
       COALESCE(industry, ''), COALESCE(target_size, ''),
       COALESCE(distribution_model, ''), COALESCE(regions, '[]')
FROM products
WHERE seller_id = $1 AND active
ORDER BY name`

// NewPostgres connects a catalog store to Postgres.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: connect postgres")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "catalog: ping postgres")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresWithPool wraps an existing pool (used by tests).
func NewPostgresWithPool(pool Querier) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) ListProducts(ctx context.Context, sellerID string) ([]model.Product, error) {
	rows, err := s.pool.Query(ctx, listProductsSQL, sellerID)
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
		if regionsJSON != "" {
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

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
