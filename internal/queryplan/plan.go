// Package queryplan generates the phased search campaign for a company:
// one templated query set per signal category, each paired with the
// source categories worth asking and a recency window.
package queryplan

import (
	"fmt"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/source"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/pkg/serper"
)

// Phase names the query campaign phases. Leadership is a phase but not
// a signal type: its evidence feeds the leadership extractor instead.
type Phase string

const (
	PhaseExpansion   Phase = "expansion"
	PhaseProcurement Phase = "procurement"
	PhaseHiring      Phase = "hiring"
	PhaseGrowth      Phase = "growth"
	PhaseLeadership  Phase = "leadership"
	PhaseProductFit  Phase = "product_fit"
)

// PhaseQuery is one planned query: the interpolated query string, the
// source categories to run it against, and the recency window.
type PhaseQuery struct {
	Phase      Phase
	Query      string
	Categories []string
	Window     serper.Recency
}

// Organizational data changes slowly, so leadership lookups reach back
// five years; growth and financial signals two.
const (
	defaultWindow    = serper.RecencyYear
	growthWindow     = serper.RecencyTwoYears
	leadershipWindow = serper.RecencyFiveYears
)

var expansionTemplates = []string{
	`"%s" expansion new facility`,
	`"%s" opens new plant warehouse`,
	`"%s" enters new market`,
}

var procurementTemplates = []string{
	`"%s" supplier contract awarded`,
	`"%s" procurement tender RFQ`,
}

var hiringTemplates = []string{
	`"%s" hiring jobs`,
	`"%s" open positions careers`,
}

var growthTemplates = []string{
	`"%s" revenue growth funding`,
	`"%s" investment round acquisition`,
}

var leadershipTemplates = []string{
	`"%s" CEO CFO executives`,
	`"%s" leadership team directors owners`,
}

// Plan builds the full phased query campaign for a company. Product
// names, when provided, drive an extra product-fit phase per product.
func Plan(companyName string, products []model.Product) []PhaseQuery {
	var plan []PhaseQuery

	add := func(phase Phase, templates []string, window serper.Recency, categories ...string) {
		for _, tmpl := range templates {
			plan = append(plan, PhaseQuery{
				Phase:      phase,
				Query:      fmt.Sprintf(tmpl, companyName),
				Categories: categories,
				Window:     window,
			})
		}
	}

	add(PhaseExpansion, expansionTemplates, defaultWindow,
		source.PremiumNews, source.BusinessIntel)
	add(PhaseProcurement, procurementTemplates, defaultWindow,
		source.PremiumNews, source.Registries, source.TechTradePress)
	add(PhaseHiring, hiringTemplates, defaultWindow,
		source.JobBoards, source.B2BSocial)
	add(PhaseGrowth, growthTemplates, growthWindow,
		source.PremiumNews, source.BusinessIntel, source.TechTradePress)
	add(PhaseLeadership, leadershipTemplates, leadershipWindow,
		source.BusinessIntel, source.B2BSocial)

	for _, p := range products {
		plan = append(plan, PhaseQuery{
			Phase:      PhaseProductFit,
			Query:      fmt.Sprintf(`"%s" %s %s`, companyName, p.Category, p.Name),
			Categories: []string{source.TechTradePress, source.B2BSocial, source.VideoContent},
			Window:     defaultWindow,
		})
	}

	return plan
}
