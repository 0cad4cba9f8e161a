// Package source holds the static registry of information-source
// categories the qualification engine searches, each tagged with a
// reliability weight used to derive signal relevance.
package source

// Category keys. These are stable identifiers carried on every
// EvidenceItem, not display strings.
const (
	JobBoards      = "job_boards"
	Registries     = "official_registries"
	PremiumNews    = "premium_news"
	TechTradePress = "tech_trade_press"
	VideoContent   = "video_content"
	B2BSocial      = "b2b_social"
	BusinessIntel  = "business_intelligence"
)

// Category describes one information-source category.
type Category struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Weight  int      `json:"weight"`
	Domains []string `json:"domains"`
}

// catalog is the static source catalog. Weights reflect how much a hit
// from the category should be trusted (0-100).
var catalog = []Category{
	{
		Key:     BusinessIntel,
		Label:   "Business intelligence providers",
		Weight:  95,
		Domains: []string{"dnb.com", "zoominfo.com", "crunchbase.com"},
	},
	{
		Key:     Registries,
		Label:   "Official registries",
		Weight:  92,
		Domains: []string{"sec.gov", "companieshouse.gov.uk", "gov.br"},
	},
	{
		Key:     PremiumNews,
		Label:   "Premium news",
		Weight:  90,
		Domains: []string{"bloomberg.com", "reuters.com", "ft.com", "wsj.com"},
	},
	{
		Key:     TechTradePress,
		Label:   "Tech and trade press",
		Weight:  80,
		Domains: []string{"techcrunch.com", "theinformation.com", "supplychaindive.com"},
	},
	{
		Key:     B2BSocial,
		Label:   "B2B social",
		Weight:  75,
		Domains: []string{"linkedin.com"},
	},
	{
		Key:     JobBoards,
		Label:   "Job boards",
		Weight:  70,
		Domains: []string{"indeed.com", "glassdoor.com", "lever.co", "greenhouse.io"},
	},
	{
		Key:     VideoContent,
		Label:   "Video and content platforms",
		Weight:  55,
		Domains: []string{"youtube.com", "vimeo.com"},
	},
}

// Registry is an indexed view over the source catalog.
type Registry struct {
	categories []Category
	byKey      map[string]*Category
}

// NewRegistry builds the default registry from the static catalog.
func NewRegistry() *Registry {
	return newRegistry(catalog)
}

func newRegistry(categories []Category) *Registry {
	r := &Registry{
		categories: categories,
		byKey:      make(map[string]*Category, len(categories)),
	}
	for i := range r.categories {
		r.byKey[r.categories[i].Key] = &r.categories[i]
	}
	return r
}

// ByKey returns the category for the given key, or nil if unknown.
func (r *Registry) ByKey(key string) *Category {
	return r.byKey[key]
}

// All returns every category in catalog order.
func (r *Registry) All() []Category {
	return r.categories
}

// Subset returns the categories for the given keys, skipping unknown
// keys. Order follows the input keys.
func (r *Registry) Subset(keys ...string) []Category {
	out := make([]Category, 0, len(keys))
	for _, k := range keys {
		if c := r.byKey[k]; c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// Weight returns the reliability weight for a category key, or 0 for
// unknown keys.
func (r *Registry) Weight(key string) int {
	if c := r.byKey[key]; c != nil {
		return c.Weight
	}
	return 0
}
