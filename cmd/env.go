package main

import (
	"context"
	"time"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/catalog"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/config"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/evidence"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/pipeline"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/resolver"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/source"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/pkg/serper"
)

// env bundles the wired pipeline components for a command invocation.
type env struct {
	Resolver  *resolver.Resolver
	Qualifier *pipeline.Qualifier
	catalog   catalog.Store
}

// newSearchClient builds the shared search client, or nil when no key
// is configured (the resolver tolerates that; the qualifier does not).
func newSearchClient(cfg *config.Config) serper.Client {
	if cfg.Serper.Key == "" {
		return nil
	}
	opts := []serper.Option{}
	if cfg.Serper.BaseURL != "" {
		opts = append(opts, serper.WithBaseURL(cfg.Serper.BaseURL))
	}
	return serper.NewClient(cfg.Serper.Key, opts...)
}

// initResolver wires the identity resolver.
func initResolver(cfg *config.Config) *resolver.Resolver {
	fetcher := resolver.NewFetcher(
		time.Duration(cfg.Resolver.FetchTimeoutSecs)*time.Second,
		cfg.Resolver.UserAgent,
		cfg.Resolver.MaxBodyBytes,
	)
	return resolver.New(newSearchClient(cfg), fetcher)
}

// initQualifier wires the qualification pipeline. Fails fast on missing
// search credentials and on a broken catalog backend.
func initQualifier(ctx context.Context, cfg *config.Config) (*pipeline.Qualifier, catalog.Store, error) {
	if err := cfg.ValidateQualify(); err != nil {
		return nil, nil, err
	}

	cat, err := catalog.Open(ctx, cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}

	collector := evidence.New(
		newSearchClient(cfg),
		source.NewRegistry(),
		time.Duration(cfg.Search.DelayMs)*time.Millisecond,
		evidence.WithCallTimeout(time.Duration(cfg.Search.TimeoutSecs)*time.Second),
		evidence.WithMaxResults(cfg.Search.MaxResults),
		evidence.WithConcurrency(cfg.Search.Concurrency),
	)

	q := pipeline.NewQualifier(collector, cat, cfg.Catalog.SellerID, cfg.Qualify)
	return q, cat, nil
}

// initEnv wires everything for the server.
func initEnv(ctx context.Context, cfg *config.Config) (*env, error) {
	q, cat, err := initQualifier(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &env{
		Resolver:  initResolver(cfg),
		Qualifier: q,
		catalog:   cat,
	}, nil
}

// Close releases backend resources.
func (e *env) Close() {
	if e.catalog != nil {
		_ = e.catalog.Close()
	}
}
