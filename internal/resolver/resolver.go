// Package resolver turns a noisy company URL (and optional known name)
// into a normalized identity and locale, cross-checking several weak
// signals under a strict priority policy.
package resolver

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/pkg/serper"
)

// patch is one strategy's candidate contribution. Fields merge into the
// identity first-writer-wins: a later strategy never overwrites an
// earlier one.
type patch struct {
	Country string
	City    string
	State   string
	Address string
	Phone   string
	Email   string
}

func (p *patch) empty() bool {
	return p.Country == "" && p.City == "" && p.State == "" &&
		p.Address == "" && p.Phone == "" && p.Email == ""
}

// merge applies the patch to the identity, keeping existing values.
func merge(id *model.CompanyIdentity, p patch) {
	if id.Country == "" {
		id.Country = p.Country
	}
	if id.City == "" {
		id.City = p.City
	}
	if id.State == "" {
		id.State = p.State
	}
	if id.Address == "" {
		id.Address = p.Address
	}
	if id.Phone == "" {
		id.Phone = p.Phone
	}
	if id.Email == "" {
		id.Email = p.Email
	}
}

// Resolver resolves company identity and locale from a URL.
type Resolver struct {
	search  serper.Client
	fetcher Fetcher
}

// New creates a Resolver. search may be nil, which disables the
// aggregated-search step; fetcher may be nil, which disables page
// scraping. Either degradation is partial, not fatal.
func New(search serper.Client, fetcher Fetcher) *Resolver {
	return &Resolver{search: search, fetcher: fetcher}
}

// Resolve runs the full resolution: gate, country strategy chain, page
// scrape, and name chain. A fetch failure degrades to partial success;
// only invalid input and gate rejections are errors.
func (r *Resolver) Resolve(ctx context.Context, rawURL, knownName string) (*model.CompanyIdentity, error) {
	u, err := parseURL(rawURL)
	if err != nil {
		return nil, err
	}

	if be := Check(u, knownName); be != nil {
		return nil, be
	}

	log := zap.L().With(zap.String("url", u.Host))
	id := &model.CompanyIdentity{Source: model.IdentitySourceNone}
	searchContributed := false
	fetchOK := false

	// Strategy 1: city-name lookup on the candidate name. A hit here is
	// final for country.
	if country, city := cityHit(knownName); country != "" {
		merge(id, patch{Country: country, City: titleCaser.String(city)})
	}

	// Strategy 2: phone country code in the caller-supplied data.
	if id.Country == "" {
		if country, phone := countryFromPhone(knownName); country != "" {
			merge(id, patch{Country: country, Phone: phone})
		}
	}

	// Strategy 3: aggregated search evidence.
	if id.Country == "" && r.search != nil {
		if p := r.searchAggregation(ctx, seedName(knownName, u.Hostname())); !p.empty() {
			merge(id, p)
			searchContributed = true
		}
	}

	// Strategy 4: page scraping. Also feeds the name chain below.
	var page string
	if r.fetcher != nil {
		page, err = r.fetcher.Fetch(ctx, u.String())
		if err != nil {
			log.Debug("resolver: page fetch failed, continuing with partial data", zap.Error(err))
			page = ""
		} else {
			fetchOK = true
			merge(id, scanPage(page))
		}
	}

	id.Name = resolveName(knownName, page, u.Hostname())

	switch {
	case fetchOK:
		id.Source = model.IdentitySourceDNSScrape
	case searchContributed:
		id.Source = model.IdentitySourceSearchAggregation
	}

	return id, nil
}

// parseURL validates and normalizes the input URL.
func parseURL(rawURL string) (*url.URL, error) {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return nil, eris.Wrap(ErrInvalidInput, "url is required")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" || !strings.Contains(u.Hostname(), ".") {
		return nil, eris.Wrapf(ErrInvalidInput, "unparseable url %q", rawURL)
	}
	return u, nil
}

// seedName is the name interpolated into search queries: the known name
// when present, else the domain-derived one.
func seedName(knownName, host string) string {
	if strings.TrimSpace(knownName) != "" {
		return knownName
	}
	return domainLabelName(host)
}

var hqQueryTemplates = []string{
	`"%s" headquarters`,
	`"%s" headquarters location`,
	`"%s" company located`,
}

// searchAggregation issues up to three location queries and accepts a
// country only when it appears near a location keyword in a result that
// itself passes the gate.
func (r *Resolver) searchAggregation(ctx context.Context, name string) patch {
	for _, tmpl := range hqQueryTemplates {
		query := strings.Replace(tmpl, "%s", name, 1)
		resp, err := r.search.Search(ctx, query, serper.WithNum(5))
		if err != nil {
			zap.L().Debug("resolver: location search failed", zap.String("query", query), zap.Error(err))
			continue
		}
		for _, res := range resp.Organic {
			if ru, err := url.Parse(res.Link); err == nil {
				if CheckURL(ru) != nil {
					continue
				}
			}
			if CheckName(res.Title) != nil {
				continue
			}
			if country := countryNearLocation(res.Title + " " + res.Snippet); country != "" {
				return patch{Country: country}
			}
		}
	}
	return patch{}
}

// usStatePattern captures the state abbreviation in front of a ZIP.
var usStatePattern = regexp.MustCompile(`\b([A-Z]{2}),?\s+\d{5}(?:-\d{4})?\b`)

// scanPage extracts locale fields from fetched page content: postal
// code families, address lines, phone DDI, and "located in" phrasing.
func scanPage(page string) patch {
	text := visibleText(page)
	p := patch{}

	p.Country = countryFromPostal(text)
	p.Address = strings.TrimSpace(addressPattern.FindString(text))

	if country, phone := countryFromPhone(text); country != "" {
		p.Phone = phone
		if p.Country == "" {
			p.Country = country
		}
	}

	if p.Country == "" {
		p.Country = countryFromLocatedIn(text)
	}

	if m := usStatePattern.FindStringSubmatch(text); m != nil {
		p.State = m[1]
	}
	if _, city := cityHit(text); city != "" {
		p.City = titleCaser.String(city)
	}

	p.Email = emailPattern.FindString(text)

	return p
}
