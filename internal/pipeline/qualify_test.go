package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/classify"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/evidence"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/source"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/pkg/serper"
)

type fakeSearch struct {
	resp *serper.SearchResponse
}

func (f *fakeSearch) Search(ctx context.Context, query string, opts ...serper.SearchOption) (*serper.SearchResponse, error) {
	return f.resp, nil
}

type fakeCatalog struct {
	products []model.Product
	err      error
}

func (f *fakeCatalog) ListProducts(ctx context.Context, sellerID string) ([]model.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalog) Close() error { return nil }

func newTestQualifier(search serper.Client, cat *fakeCatalog) *Qualifier {
	collector := evidence.New(search, source.NewRegistry(), time.Millisecond)
	return NewQualifier(collector, cat, "seller-1", classify.DefaultWeights())
}

func TestRun_RequiresCompanyName(t *testing.T) {
	q := newTestQualifier(&fakeSearch{resp: &serper.SearchResponse{}}, &fakeCatalog{})

	_, err := q.Run(context.Background(), QualifyRequest{CompanyName: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRun_CatalogErrorIsFatal(t *testing.T) {
	q := newTestQualifier(&fakeSearch{resp: &serper.SearchResponse{}},
		&fakeCatalog{err: assert.AnError})

	_, err := q.Run(context.Background(), QualifyRequest{CompanyName: "Acme"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestRun_EmptyResultsStillProduceAuditableReport(t *testing.T) {
	q := newTestQualifier(&fakeSearch{resp: &serper.SearchResponse{}}, &fakeCatalog{})

	report, err := q.Run(context.Background(), QualifyRequest{CompanyName: "Acme"})
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, model.LeadStatusCold, report.Classification.Status)
	assert.Zero(t, report.Classification.Score)
	assert.NotNil(t, report.Evidences, "evidence list is never nil")
	assert.Empty(t, report.Evidences)
	assert.NotEmpty(t, report.Classification.Explanation)
	assert.Positive(t, report.QueriesRun)
}

func TestRun_EndToEnd(t *testing.T) {
	search := &fakeSearch{resp: &serper.SearchResponse{Organic: []serper.Result{
		{
			Title:   "Acme announces expansion with new facility",
			Snippet: "The company opens a new plant.",
			Link:    "https://news.example/a",
		},
		{
			Title:   "Acme Corp profile: Jane Smith, CEO",
			Snippet: "Procurement tender published by supplier network.",
			Link:    "https://intel.example/b",
		},
	}}}
	cat := &fakeCatalog{products: []model.Product{{
		Name:              "Reformer Pro",
		Category:          "pilates equipment",
		Industry:          "fitness equipment",
		DistributionModel: "distributor",
	}}}
	q := newTestQualifier(search, cat)

	report, err := q.Run(context.Background(), QualifyRequest{
		CompanyName:  "Acme",
		Domain:       "acme.example",
		Industry:     "fitness equipment",
		BusinessType: "distributor",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, report.Evidences)
	assert.NotEmpty(t, report.Signals)
	assert.NotEmpty(t, report.Leadership, "CEO found in business-intelligence evidence")
	assert.Greater(t, report.Classification.Score, 0)
	assert.Equal(t, len(report.Signals), report.Classification.SignalsDetected)
	assert.Greater(t, report.ProductFit.AggregateScore, 0)
	assert.Equal(t, "Acme", report.CompanyName)
	assert.Positive(t, report.SourcesChecked)
}
