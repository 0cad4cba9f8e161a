// Package classify combines typed signals and the product-fit score
// into the final lead verdict.
package classify

import (
	"fmt"
	"strings"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/signal"
)

// Weights holds the additive scoring constants. These are empirically
// chosen values carried as configuration, not validated business rules.
type Weights struct {
	ExpansionStrong int `yaml:"expansion_strong" mapstructure:"expansion_strong"`
	ExpansionMid    int `yaml:"expansion_mid" mapstructure:"expansion_mid"`
	ExpansionAny    int `yaml:"expansion_any" mapstructure:"expansion_any"`

	ProcurementStrong int `yaml:"procurement_strong" mapstructure:"procurement_strong"`
	ProcurementMid    int `yaml:"procurement_mid" mapstructure:"procurement_mid"`
	ProcurementAny    int `yaml:"procurement_any" mapstructure:"procurement_any"`

	HiringStrong int `yaml:"hiring_strong" mapstructure:"hiring_strong"`
	HiringMid    int `yaml:"hiring_mid" mapstructure:"hiring_mid"`
	HiringAny    int `yaml:"hiring_any" mapstructure:"hiring_any"`

	GrowthStrong int `yaml:"growth_strong" mapstructure:"growth_strong"`
	GrowthMid    int `yaml:"growth_mid" mapstructure:"growth_mid"`
	GrowthAny    int `yaml:"growth_any" mapstructure:"growth_any"`

	FitStrong int `yaml:"fit_strong" mapstructure:"fit_strong"`
	FitMid    int `yaml:"fit_mid" mapstructure:"fit_mid"`
	FitAny    int `yaml:"fit_any" mapstructure:"fit_any"`

	HotThreshold  int `yaml:"hot_threshold" mapstructure:"hot_threshold"`
	WarmThreshold int `yaml:"warm_threshold" mapstructure:"warm_threshold"`
}

// DefaultWeights returns the scoring constants the engine ships with.
func DefaultWeights() Weights {
	return Weights{
		ExpansionStrong: 25, ExpansionMid: 15, ExpansionAny: 5,
		ProcurementStrong: 25, ProcurementMid: 15, ProcurementAny: 5,
		HiringStrong: 20, HiringMid: 12, HiringAny: 5,
		GrowthStrong: 15, GrowthMid: 10, GrowthAny: 5,
		FitStrong: 15, FitMid: 10, FitAny: 5,
		HotThreshold: 75, WarmThreshold: 40,
	}
}

// Classify derives the final verdict from the full signal set and the
// aggregate product-fit score. The result is computed once per run and
// never mutated.
func Classify(signals []model.Signal, fitScore int, w Weights) model.LeadClassification {
	score := 0
	var reasons []string

	expHigh := signal.CountByRelevance(signals, model.SignalExpansion)[model.RelevanceHigh]
	expMed := signal.CountByRelevance(signals, model.SignalExpansion)[model.RelevanceMedium]
	expTotal := signal.CountByType(signals)[model.SignalExpansion]
	switch {
	case expHigh >= 2:
		score += w.ExpansionStrong
		reasons = append(reasons, fmt.Sprintf("%d high-relevance expansion signals", expHigh))
	case expHigh >= 1 || expMed >= 2:
		score += w.ExpansionMid
		reasons = append(reasons, "credible expansion activity")
	case expTotal > 0:
		score += w.ExpansionAny
		reasons = append(reasons, "weak expansion indications")
	}

	procHigh := signal.CountByRelevance(signals, model.SignalProcurement)[model.RelevanceHigh]
	procMed := signal.CountByRelevance(signals, model.SignalProcurement)[model.RelevanceMedium]
	procTotal := signal.CountByType(signals)[model.SignalProcurement]
	switch {
	case procHigh >= 2:
		score += w.ProcurementStrong
		reasons = append(reasons, fmt.Sprintf("%d high-relevance procurement signals", procHigh))
	case procHigh >= 1 || procMed >= 2:
		score += w.ProcurementMid
		reasons = append(reasons, "credible procurement activity")
	case procTotal > 0:
		score += w.ProcurementAny
		reasons = append(reasons, "weak procurement indications")
	}

	hireHigh := signal.CountByRelevance(signals, model.SignalHiring)[model.RelevanceHigh]
	hireTotal := signal.CountByType(signals)[model.SignalHiring]
	switch {
	case hireTotal >= 5 || hireHigh >= 2:
		score += w.HiringStrong
		reasons = append(reasons, fmt.Sprintf("strong hiring volume (%d signals)", hireTotal))
	case hireTotal >= 3 || hireHigh >= 1:
		score += w.HiringMid
		reasons = append(reasons, "active hiring")
	case hireTotal > 0:
		score += w.HiringAny
		reasons = append(reasons, "some hiring activity")
	}

	growHigh := signal.CountByRelevance(signals, model.SignalGrowth)[model.RelevanceHigh]
	growMed := signal.CountByRelevance(signals, model.SignalGrowth)[model.RelevanceMedium]
	growTotal := signal.CountByType(signals)[model.SignalGrowth]
	switch {
	case growHigh >= 2:
		score += w.GrowthStrong
		reasons = append(reasons, fmt.Sprintf("%d high-relevance growth signals", growHigh))
	case growHigh >= 1 || growMed >= 2:
		score += w.GrowthMid
		reasons = append(reasons, "credible growth trajectory")
	case growTotal > 0:
		score += w.GrowthAny
		reasons = append(reasons, "weak growth indications")
	}

	switch {
	case fitScore >= 70:
		score += w.FitStrong
		reasons = append(reasons, fmt.Sprintf("strong product fit (%d/100)", fitScore))
	case fitScore >= 40:
		score += w.FitMid
		reasons = append(reasons, fmt.Sprintf("moderate product fit (%d/100)", fitScore))
	case fitScore > 0:
		score += w.FitAny
		reasons = append(reasons, fmt.Sprintf("marginal product fit (%d/100)", fitScore))
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	c := model.LeadClassification{
		Score:           score,
		SignalsDetected: len(signals),
	}

	switch {
	case score >= w.HotThreshold:
		c.Status = model.LeadStatusHot
		c.TimelineToClose = model.Timeline30Days
		if expHigh+procHigh >= 2 {
			c.Confidence = model.ConfidenceHigh
		} else {
			c.Confidence = model.ConfidenceMedium
		}
		c.Recommendation = "Engage immediately with a tailored proposal; buying intent indicators are active."
	case score >= w.WarmThreshold:
		c.Status = model.LeadStatusWarm
		c.TimelineToClose = model.Timeline60Days
		if expTotal+procTotal >= 3 {
			c.Confidence = model.ConfidenceMedium
		} else {
			c.Confidence = model.ConfidenceLow
		}
		c.Recommendation = "Nurture with targeted outreach and monitor for new expansion or procurement activity."
	default:
		c.Status = model.LeadStatusCold
		c.TimelineToClose = model.Timeline90Days
		c.Confidence = model.ConfidenceLow
		c.Recommendation = "Keep on a monitoring cadence; no active buying indicators."
	}

	if len(reasons) == 0 {
		c.Explanation = "No qualification signals found across the searched sources."
	} else {
		c.Explanation = strings.Join(reasons, "; ") + "."
	}

	return c
}
