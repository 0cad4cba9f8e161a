// Package signal turns raw evidence into typed qualification signals
// via keyword scanning. Matching sits behind the Matcher interface so
// the keyword sets can later be replaced by a classifier without
// touching scoring.
package signal

import (
	"strings"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
)

// Matcher reports whether a piece of evidence text indicates a signal.
type Matcher interface {
	Match(text string) bool
}

// KeywordMatcher matches when any of its keywords appears as a
// substring. Text is expected to be lowercased by the caller.
type KeywordMatcher struct {
	keywords []string
}

// NewKeywordMatcher creates a matcher over the given lowercase keywords.
func NewKeywordMatcher(keywords ...string) *KeywordMatcher {
	return &KeywordMatcher{keywords: keywords}
}

// Match reports whether any keyword occurs in text.
func (m *KeywordMatcher) Match(text string) bool {
	for _, kw := range m.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// defaultMatchers holds one matcher per signal type, in a fixed order
// so extraction output is deterministic.
var defaultMatchers = []struct {
	typ     model.SignalType
	matcher Matcher
}{
	{model.SignalExpansion, NewKeywordMatcher(
		"expansion", "expand", "new facility", "new plant", "new warehouse",
		"new office", "opens", "opening", "new market", "inaugurat",
	)},
	{model.SignalProcurement, NewKeywordMatcher(
		"procurement", "tender", "rfq", "rfp", "supplier", "sourcing",
		"contract awarded", "purchase order", "bid",
	)},
	{model.SignalHiring, NewKeywordMatcher(
		"hiring", "job opening", "open position", "careers", "recruiting",
		"join our team", "vacanc", "now hiring",
	)},
	{model.SignalGrowth, NewKeywordMatcher(
		"growth", "revenue", "funding", "investment", "acquisition",
		"merger", "raised", "series a", "series b", "ipo", "record year",
	)},
	{model.SignalProductFit, NewKeywordMatcher(
		"distributor", "distribution agreement", "reseller", "dealer",
		"partnership", "product launch", "supply agreement",
	)},
}

// relevanceFor derives the relevance tier purely from the source
// weight: relevance is a property of where evidence came from, not of
// how strong the keyword match was.
func relevanceFor(weight int) model.Relevance {
	switch {
	case weight >= 90:
		return model.RelevanceHigh
	case weight >= 70:
		return model.RelevanceMedium
	default:
		return model.RelevanceLow
	}
}

// Extract scans every evidence item against all signal matchers. One
// item may emit zero, one, or several signals. Extraction is pure:
// running it twice over the same input yields the same output.
func Extract(evidences []model.EvidenceItem) []model.Signal {
	var signals []model.Signal
	for _, ev := range evidences {
		text := strings.ToLower(ev.Title + " " + ev.Snippet)
		for _, m := range defaultMatchers {
			if !m.matcher.Match(text) {
				continue
			}
			signals = append(signals, model.Signal{
				Type:        m.typ,
				Description: ev.Title,
				Source:      ev.SourceCategory,
				URL:         ev.Link,
				Relevance:   relevanceFor(ev.SourceWeight),
				Date:        ev.Date,
			})
		}
	}
	return signals
}

// CountByType tallies signals per type.
func CountByType(signals []model.Signal) map[model.SignalType]int {
	counts := make(map[model.SignalType]int)
	for _, s := range signals {
		counts[s.Type]++
	}
	return counts
}

// CountByRelevance tallies signals of one type per relevance tier.
func CountByRelevance(signals []model.Signal, typ model.SignalType) map[model.Relevance]int {
	counts := make(map[model.Relevance]int)
	for _, s := range signals {
		if s.Type == typ {
			counts[s.Relevance]++
		}
	}
	return counts
}
