// Package model defines the shared data structures for the trade
// intelligence pipelines.
package model

// IdentitySource tags which resolution path produced a CompanyIdentity.
type IdentitySource string

const (
	// IdentitySourceNone means no resolution step produced a value.
	IdentitySourceNone IdentitySource = "none"
	// IdentitySourceDNSScrape means the company page itself contributed
	// at least one accepted field.
	IdentitySourceDNSScrape IdentitySource = "dns_scrape"
	// IdentitySourceSearchAggregation means only query-based evidence
	// contributed fields (the page was unreachable or uninformative).
	IdentitySourceSearchAggregation IdentitySource = "search_aggregation"
)

// CompanyIdentity is the normalized output of the identity resolver.
// Fields are filled first-writer-wins: once a resolution step sets a
// field, later steps never overwrite it.
type CompanyIdentity struct {
	Name    string         `json:"name,omitempty"`
	Country string         `json:"country,omitempty"`
	City    string         `json:"city,omitempty"`
	State   string         `json:"state,omitempty"`
	Address string         `json:"address,omitempty"`
	Phone   string         `json:"phone,omitempty"`
	Email   string         `json:"email,omitempty"`
	Source  IdentitySource `json:"source"`
}
