// Package productfit scores a seller's catalog against a target
// company's profile across five independent dimensions.
package productfit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
)

// Dimension maxima. MatchScore is the sum, so it never exceeds 100.
const (
	maxIndustry      = 30
	maxSize          = 20
	maxCategory      = 30
	maxGeography     = 10
	maxBusinessModel = 10
)

// Score ranks every product against the company profile and aggregates
// a company-level fit score: the mean of the top three match scores, or
// zero for an empty catalog.
func Score(products []model.Product, profile model.CompanyProfile) model.ProductFitResult {
	ranked := make([]model.ProductFitBreakdown, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, scoreProduct(p, profile))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	result := model.ProductFitResult{Ranked: ranked}
	if len(ranked) == 0 {
		return result
	}

	top := len(ranked)
	if top > 3 {
		top = 3
	}
	sum := 0
	for _, b := range ranked[:top] {
		sum += b.MatchScore
	}
	result.AggregateScore = sum / top

	for _, b := range ranked[:top] {
		if b.MatchScore >= 70 {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Lead with %s: strong fit (%d/100)", b.Product.Name, b.MatchScore))
		} else if b.MatchScore >= 40 {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Offer %s as a secondary line (%d/100)", b.Product.Name, b.MatchScore))
		}
	}

	return result
}

func scoreProduct(p model.Product, profile model.CompanyProfile) model.ProductFitBreakdown {
	b := model.ProductFitBreakdown{
		Product:       p,
		Industry:      scoreIndustry(p, profile),
		Size:          scoreSize(p, profile),
		Category:      scoreCategory(p, profile),
		Geography:     scoreGeography(p, profile),
		BusinessModel: scoreBusinessModel(p, profile),
	}
	b.MatchScore = b.Industry.Score + b.Size.Score + b.Category.Score +
		b.Geography.Score + b.BusinessModel.Score
	if b.MatchScore > 100 {
		b.MatchScore = 100
	}
	return b
}

// tokenize lowercases and splits on non-alphanumeric runs, dropping
// short stopword-ish tokens.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}

func sharedTokens(a, b string) int {
	set := make(map[string]bool)
	for _, t := range tokenize(a) {
		set[t] = true
	}
	n := 0
	seen := make(map[string]bool)
	for _, t := range tokenize(b) {
		if set[t] && !seen[t] {
			seen[t] = true
			n++
		}
	}
	return n
}

func scoreIndustry(p model.Product, profile model.CompanyProfile) model.DimensionScore {
	ds := model.DimensionScore{Max: maxIndustry}

	prodInd := strings.TrimSpace(strings.ToLower(p.Industry))
	compInd := strings.TrimSpace(strings.ToLower(profile.Industry))

	switch {
	case prodInd != "" && prodInd == compInd:
		ds.Score = 30
		ds.Explanation = fmt.Sprintf("industry %q matches exactly", profile.Industry)
	case sharedTokens(prodInd, compInd) >= 2:
		ds.Score = 25
		ds.Explanation = fmt.Sprintf("industries %q and %q share multiple keywords", p.Industry, profile.Industry)
	case sharedTokens(prodInd, compInd) == 1:
		ds.Score = 15
		ds.Explanation = fmt.Sprintf("industries %q and %q share one keyword", p.Industry, profile.Industry)
	case p.Category != "" && compInd != "" && strings.Contains(compInd, strings.ToLower(p.Category)):
		ds.Score = 10
		ds.Explanation = fmt.Sprintf("company industry mentions product category %q", p.Category)
	default:
		ds.Explanation = "no industry overlap found"
	}
	return ds
}

// sizeBands maps declared target-size labels to employee-count ranges.
var sizeBands = map[string][2]int{
	"enterprise": {250, 1 << 30},
	"mid":        {50, 500},
	"small":      {10, 100},
	"startup":    {1, 50},
}

func scoreSize(p model.Product, profile model.CompanyProfile) model.DimensionScore {
	ds := model.DimensionScore{Max: maxSize}

	band, declared := sizeBands[strings.ToLower(strings.TrimSpace(p.TargetSize))]
	if !declared {
		ds.Score = 10
		ds.Explanation = "no target size declared, universal fit"
		return ds
	}

	n := profile.EmployeeCount
	if n <= 0 {
		ds.Score = 10
		ds.Explanation = "company employee count unknown, assuming neutral fit"
		return ds
	}

	lo, hi := band[0], band[1]
	switch {
	case n >= lo && n <= hi:
		ds.Score = 20
		ds.Explanation = fmt.Sprintf("%d employees inside target band %q", n, p.TargetSize)
	case n >= lo/2 && n <= hi+hi/2:
		ds.Score = 10
		ds.Explanation = fmt.Sprintf("%d employees near target band %q", n, p.TargetSize)
	default:
		ds.Explanation = fmt.Sprintf("%d employees outside target band %q", n, p.TargetSize)
	}
	return ds
}

var dealerKeywords = []string{"dealer", "distributor", "reseller", "wholesale"}
var tradeKeywords = []string{"b2b", "trade", "import", "export", "trading"}

func scoreCategory(p model.Product, profile model.CompanyProfile) model.DimensionScore {
	ds := model.DimensionScore{Max: maxCategory}
	text := strings.ToLower(profile.Description + " " + profile.Website)

	var reasons []string

	for _, kw := range dealerKeywords {
		if strings.Contains(text, kw) {
			ds.Score += 15
			reasons = append(reasons, fmt.Sprintf("company text mentions %q", kw))
			break
		}
	}
	for _, kw := range tradeKeywords {
		if strings.Contains(text, kw) {
			ds.Score += 10
			reasons = append(reasons, fmt.Sprintf("trade keyword %q present", kw))
			break
		}
	}

	catMatches := 0
	for _, t := range tokenize(p.Category) {
		if strings.Contains(text, t) {
			catMatches++
		}
	}
	if catMatches > 3 {
		catMatches = 3
	}
	if catMatches > 0 {
		ds.Score += 5 * catMatches
		reasons = append(reasons, fmt.Sprintf("%d product-category keyword(s) in company text", catMatches))
	}

	for _, t := range tokenize(p.Name) {
		if strings.Contains(text, t) {
			ds.Score += 5
			reasons = append(reasons, "product name appears in company text")
			break
		}
	}

	if ds.Score > maxCategory {
		ds.Score = maxCategory
	}
	if len(reasons) == 0 {
		ds.Explanation = "no category indicators in company text"
	} else {
		ds.Explanation = strings.Join(reasons, "; ")
	}
	return ds
}

// continentOf maps lowercase country names to continents for the
// same-continent partial credit. Intentionally coarse.
var continentOf = map[string]string{
	"united states": "north america", "usa": "north america", "canada": "north america", "mexico": "north america",
	"brazil": "south america", "argentina": "south america", "chile": "south america", "colombia": "south america", "peru": "south america",
	"united kingdom": "europe", "germany": "europe", "france": "europe", "spain": "europe", "italy": "europe", "portugal": "europe", "netherlands": "europe", "poland": "europe",
	"china": "asia", "japan": "asia", "india": "asia", "south korea": "asia", "singapore": "asia", "vietnam": "asia", "thailand": "asia", "indonesia": "asia",
	"australia": "oceania", "new zealand": "oceania",
	"south africa": "africa", "nigeria": "africa", "egypt": "africa", "kenya": "africa", "morocco": "africa",
	"united arab emirates": "asia", "saudi arabia": "asia", "turkey": "asia",
}

func scoreGeography(p model.Product, profile model.CompanyProfile) model.DimensionScore {
	ds := model.DimensionScore{Max: maxGeography}

	if len(p.Regions) == 0 {
		ds.Score = 5
		ds.Explanation = "no regional restriction declared"
		return ds
	}

	country := strings.ToLower(strings.TrimSpace(profile.Country))
	state := strings.ToLower(strings.TrimSpace(profile.State))
	if country == "" && state == "" {
		ds.Explanation = "company location unknown"
		return ds
	}

	for _, r := range p.Regions {
		region := strings.ToLower(strings.TrimSpace(r))
		if region == country || (state != "" && region == state) {
			ds.Score = 10
			ds.Explanation = fmt.Sprintf("company location matches target region %q", r)
			return ds
		}
	}

	if cont, ok := continentOf[country]; ok {
		for _, r := range p.Regions {
			if continentOf[strings.ToLower(strings.TrimSpace(r))] == cont {
				ds.Score = 5
				ds.Explanation = fmt.Sprintf("company and target region share continent %q", cont)
				return ds
			}
		}
	}

	ds.Explanation = "company location outside target regions"
	return ds
}

// adjacentModels lists compatible distribution-model pairs: an importer
// can carry a distributor-targeted product and vice versa.
var adjacentModels = map[string][]string{
	"distributor":  {"importer", "wholesaler"},
	"importer":     {"distributor", "trading company"},
	"wholesaler":   {"distributor"},
	"manufacturer": {"exporter"},
	"exporter":     {"manufacturer", "trading company"},
}

func scoreBusinessModel(p model.Product, profile model.CompanyProfile) model.DimensionScore {
	ds := model.DimensionScore{Max: maxBusinessModel}

	target := strings.ToLower(strings.TrimSpace(p.DistributionModel))
	actual := strings.ToLower(strings.TrimSpace(profile.BusinessType))

	switch {
	case target == "" || actual == "":
		ds.Explanation = "distribution model or company type not declared"
	case target == actual:
		ds.Score = 10
		ds.Explanation = fmt.Sprintf("company type %q matches distribution model exactly", profile.BusinessType)
	default:
		for _, adj := range adjacentModels[target] {
			if adj == actual {
				ds.Score = 7
				ds.Explanation = fmt.Sprintf("company type %q is compatible with model %q", profile.BusinessType, p.DistributionModel)
				return ds
			}
		}
		ds.Explanation = fmt.Sprintf("company type %q does not fit model %q", profile.BusinessType, p.DistributionModel)
	}
	return ds
}
