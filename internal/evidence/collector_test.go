package evidence

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/queryplan"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/source"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/pkg/serper"
)

// fakeSearch returns a canned response, optionally failing queries that
// contain a marker string.
type fakeSearch struct {
	mu       sync.Mutex
	queries  []string
	failWhen string
	resp     *serper.SearchResponse
}

func (f *fakeSearch) Search(ctx context.Context, query string, opts ...serper.SearchOption) (*serper.SearchResponse, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if f.failWhen != "" && strings.Contains(query, f.failWhen) {
		return nil, eris.New("upstream 500")
	}
	if f.resp != nil {
		return f.resp, nil
	}
	return &serper.SearchResponse{}, nil
}

func testPlan() []queryplan.PhaseQuery {
	return []queryplan.PhaseQuery{
		{
			Phase:      queryplan.PhaseExpansion,
			Query:      `"Acme" expansion`,
			Categories: []string{source.PremiumNews},
			Window:     serper.RecencyYear,
		},
		{
			Phase:      queryplan.PhaseHiring,
			Query:      `"Acme" hiring`,
			Categories: []string{source.JobBoards, source.B2BSocial},
			Window:     serper.RecencyYear,
		},
	}
}

func TestCollect_TagsEvidenceWithSourceAndQuery(t *testing.T) {
	search := &fakeSearch{resp: &serper.SearchResponse{Organic: []serper.Result{
		{Title: "Acme news", Link: "https://example.com/a", Position: 1},
	}}}
	c := New(search, source.NewRegistry(), time.Millisecond)

	items, stats := c.Collect(context.Background(), testPlan())

	// Three (query, category) calls, one result each.
	require.Len(t, items, 3)
	assert.Equal(t, 3, stats.QueriesExecuted)
	assert.Equal(t, 3, stats.SourcesChecked)
	assert.Zero(t, stats.CallsFailed)

	assert.Equal(t, source.PremiumNews, items[0].SourceCategory)
	assert.Equal(t, 90, items[0].SourceWeight)
	assert.Equal(t, `"Acme" expansion`, items[0].QueryUsed)

	assert.Equal(t, source.JobBoards, items[1].SourceCategory)
	assert.Equal(t, 70, items[1].SourceWeight)
	assert.Equal(t, source.B2BSocial, items[2].SourceCategory)
}

func TestCollect_ScopesQueriesToCategoryDomains(t *testing.T) {
	search := &fakeSearch{}
	c := New(search, source.NewRegistry(), time.Millisecond)

	c.Collect(context.Background(), testPlan()[:1])

	require.Len(t, search.queries, 1)
	assert.Contains(t, search.queries[0], "site:reuters.com")
	assert.Contains(t, search.queries[0], " OR ")
}

func TestCollect_FailedCallSkippedNotFatal(t *testing.T) {
	search := &fakeSearch{
		failWhen: "site:indeed.com",
		resp: &serper.SearchResponse{Organic: []serper.Result{
			{Title: "hit", Link: "https://example.com"},
		}},
	}
	c := New(search, source.NewRegistry(), time.Millisecond)

	items, stats := c.Collect(context.Background(), testPlan())

	assert.Len(t, items, 2, "surviving calls still contribute")
	assert.Equal(t, 3, stats.QueriesExecuted)
	assert.Equal(t, 1, stats.CallsFailed)
	assert.Equal(t, 2, stats.SourcesChecked)
}

func TestCollect_EmptyPlan(t *testing.T) {
	c := New(&fakeSearch{}, source.NewRegistry(), time.Millisecond)

	items, stats := c.Collect(context.Background(), nil)
	assert.Empty(t, items)
	assert.Zero(t, stats.QueriesExecuted)
}

func TestCollect_ConcurrentKeepsPlanOrder(t *testing.T) {
	search := &fakeSearch{resp: &serper.SearchResponse{Organic: []serper.Result{
		{Title: "hit", Link: "https://example.com"},
	}}}
	c := New(search, source.NewRegistry(), time.Millisecond, WithConcurrency(3))

	items, _ := c.Collect(context.Background(), testPlan())

	require.Len(t, items, 3)
	assert.Equal(t, source.PremiumNews, items[0].SourceCategory)
	assert.Equal(t, source.JobBoards, items[1].SourceCategory)
	assert.Equal(t, source.B2BSocial, items[2].SourceCategory)
}
