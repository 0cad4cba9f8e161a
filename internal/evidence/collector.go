// Package evidence fans a planned query campaign out to the search
// provider and accumulates tagged evidence items.
package evidence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/queryplan"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/source"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/pkg/serper"
)

// Stats summarizes one collection run.
type Stats struct {
	QueriesExecuted int `json:"queries_executed"`
	SourcesChecked  int `json:"sources_checked"`
	CallsFailed     int `json:"calls_failed"`
}

// Collector runs (query, source-category) pairs against the search
// client with a fixed inter-call delay. One failed call never aborts
// the batch: it is logged, counted, and skipped.
type Collector struct {
	search      serper.Client
	sources     *source.Registry
	limiter     *rate.Limiter
	callTimeout time.Duration
	maxResults  int
	concurrency int
}

// Option configures a Collector.
type Option func(*Collector)

// WithCallTimeout sets the per-call timeout.
func WithCallTimeout(d time.Duration) Option {
	return func(c *Collector) {
		c.callTimeout = d
	}
}

// WithMaxResults sets the result count requested per call.
func WithMaxResults(n int) Option {
	return func(c *Collector) {
		c.maxResults = n
	}
}

// WithConcurrency caps parallel in-flight calls. The inter-call delay
// still applies across all workers.
func WithConcurrency(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// New creates a Collector. delay is the minimum spacing between
// consecutive search calls.
func New(search serper.Client, sources *source.Registry, delay time.Duration, opts ...Option) *Collector {
	c := &Collector{
		search:      search,
		sources:     sources,
		limiter:     rate.NewLimiter(rate.Every(delay), 1),
		callTimeout: 15 * time.Second,
		maxResults:  10,
		concurrency: 1,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// call is one concrete search invocation derived from a PhaseQuery.
type call struct {
	query    string
	scoped   string
	category source.Category
	window   serper.Recency
}

// Collect executes the plan and returns the flat evidence list plus
// run statistics. Results keep plan order regardless of concurrency.
func (c *Collector) Collect(ctx context.Context, plan []queryplan.PhaseQuery) ([]model.EvidenceItem, Stats) {
	calls := c.expand(plan)

	slots := make([][]model.EvidenceItem, len(calls))
	failed := make([]bool, len(calls))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, cl := range calls {
		g.Go(func() error {
			if err := c.limiter.Wait(gCtx); err != nil {
				failed[i] = true
				return nil
			}

			callCtx, cancel := context.WithTimeout(gCtx, c.callTimeout)
			defer cancel()

			resp, err := c.search.Search(callCtx, cl.scoped,
				serper.WithNum(c.maxResults),
				serper.WithRecency(cl.window),
			)
			if err != nil {
				failed[i] = true
				zap.L().Warn("evidence: search call failed, skipping",
					zap.String("query", cl.query),
					zap.String("category", cl.category.Key),
					zap.Error(err),
				)
				return nil
			}

			items := make([]model.EvidenceItem, 0, len(resp.Organic))
			for _, r := range resp.Organic {
				items = append(items, model.EvidenceItem{
					Title:          r.Title,
					Snippet:        r.Snippet,
					Link:           r.Link,
					SourceCategory: cl.category.Key,
					SourceWeight:   cl.category.Weight,
					Date:           r.Date,
					Position:       r.Position,
					QueryUsed:      cl.query,
				})
			}
			slots[i] = items
			return nil
		})
	}

	// Workers only record failures; Wait cannot return an error here.
	_ = g.Wait()

	var out []model.EvidenceItem
	checked := make(map[string]bool)
	stats := Stats{QueriesExecuted: len(calls)}
	for i, cl := range calls {
		if failed[i] {
			stats.CallsFailed++
			continue
		}
		checked[cl.category.Key] = true
		out = append(out, slots[i]...)
	}
	stats.SourcesChecked = len(checked)

	return out, stats
}

// expand turns each PhaseQuery into one call per source category,
// scoping the query to the category's domains.
func (c *Collector) expand(plan []queryplan.PhaseQuery) []call {
	var calls []call
	for _, pq := range plan {
		for _, cat := range c.sources.Subset(pq.Categories...) {
			calls = append(calls, call{
				query:    pq.Query,
				scoped:   scopeQuery(pq.Query, cat),
				category: cat,
				window:   pq.Window,
			})
		}
	}
	return calls
}

// scopeQuery appends a site: restriction covering the category's
// domains. Categories without domains search the open web.
func scopeQuery(query string, cat source.Category) string {
	if len(cat.Domains) == 0 {
		return query
	}
	parts := make([]string, len(cat.Domains))
	for i, d := range cat.Domains {
		parts[i] = "site:" + d
	}
	return fmt.Sprintf("%s (%s)", query, strings.Join(parts, " OR "))
}
