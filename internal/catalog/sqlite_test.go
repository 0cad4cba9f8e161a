package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
)

func TestSQLiteSeedAndList(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer store.Close()

	err = store.Seed(ctx, "seller-1", []model.Product{
		{Name: "Reformer Pro", Category: "pilates equipment", Regions: []string{"Brazil"}},
		{Name: "Cadillac Frame", Category: "pilates equipment", DistributionModel: "distributor"},
	})
	require.NoError(t, err)

	products, err := store.ListProducts(ctx, "seller-1")
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Listing is name-ordered.
	assert.Equal(t, "Cadillac Frame", products[0].Name)
	assert.Equal(t, "Reformer Pro", products[1].Name)
	assert.Equal(t, []string{"Brazil"}, products[1].Regions)
	assert.NotEmpty(t, products[0].ID, "seed assigns IDs")

	// Other sellers see nothing.
	others, err := store.ListProducts(ctx, "seller-2")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestSQLiteSeedIsIdempotentPerID(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer store.Close()

	p := model.Product{ID: "fixed-id", Name: "Reformer", Category: "pilates equipment"}
	require.NoError(t, store.Seed(ctx, "seller-1", []model.Product{p}))

	p.Name = "Reformer Pro"
	require.NoError(t, store.Seed(ctx, "seller-1", []model.Product{p}))

	products, err := store.ListProducts(ctx, "seller-1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Reformer Pro", products[0].Name)
}
