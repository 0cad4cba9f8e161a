package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
)

func sig(typ model.SignalType, rel model.Relevance) model.Signal {
	return model.Signal{Type: typ, Relevance: rel}
}

func TestClassify_NoSignalsNoFit(t *testing.T) {
	c := Classify(nil, 0, DefaultWeights())

	assert.Zero(t, c.Score)
	assert.Equal(t, model.LeadStatusCold, c.Status)
	assert.Equal(t, model.ConfidenceLow, c.Confidence)
	assert.Equal(t, model.Timeline90Days, c.TimelineToClose)
	assert.Equal(t, "No qualification signals found across the searched sources.", c.Explanation)
	assert.Zero(t, c.SignalsDetected)
}

func TestClassify_ExpansionOnlyWithStrongFitIsWarm(t *testing.T) {
	signals := []model.Signal{
		sig(model.SignalExpansion, model.RelevanceHigh),
		sig(model.SignalExpansion, model.RelevanceHigh),
		sig(model.SignalExpansion, model.RelevanceHigh),
	}

	c := Classify(signals, 80, DefaultWeights())

	// 25 for strong expansion plus 15 for strong fit.
	assert.Equal(t, 40, c.Score)
	assert.Equal(t, model.LeadStatusWarm, c.Status)
	assert.Equal(t, 3, c.SignalsDetected)
	assert.Contains(t, c.Explanation, "expansion")
	assert.Contains(t, c.Explanation, "product fit")
}

func TestClassify_HotNeedsBreadth(t *testing.T) {
	signals := []model.Signal{
		sig(model.SignalExpansion, model.RelevanceHigh),
		sig(model.SignalExpansion, model.RelevanceHigh),
		sig(model.SignalProcurement, model.RelevanceHigh),
		sig(model.SignalProcurement, model.RelevanceHigh),
		sig(model.SignalHiring, model.RelevanceHigh),
		sig(model.SignalHiring, model.RelevanceHigh),
	}

	c := Classify(signals, 75, DefaultWeights())

	// 25 + 25 + 20 + 15 = 85.
	assert.Equal(t, 85, c.Score)
	assert.Equal(t, model.LeadStatusHot, c.Status)
	assert.Equal(t, model.ConfidenceHigh, c.Confidence)
	assert.Equal(t, model.Timeline30Days, c.TimelineToClose)
}

func TestClassify_HotWithoutHighIntentIsMediumConfidence(t *testing.T) {
	var signals []model.Signal
	// Lots of mid-tier breadth, but only one high-relevance intent signal.
	signals = append(signals,
		sig(model.SignalExpansion, model.RelevanceHigh),
		sig(model.SignalProcurement, model.RelevanceMedium),
		sig(model.SignalProcurement, model.RelevanceMedium),
	)
	for i := 0; i < 5; i++ {
		signals = append(signals, sig(model.SignalHiring, model.RelevanceMedium))
	}
	signals = append(signals,
		sig(model.SignalGrowth, model.RelevanceHigh),
		sig(model.SignalGrowth, model.RelevanceHigh),
	)

	c := Classify(signals, 80, DefaultWeights())

	// 15 + 15 + 20 + 15 + 15 = 80.
	assert.Equal(t, 80, c.Score)
	assert.Equal(t, model.LeadStatusHot, c.Status)
	assert.Equal(t, model.ConfidenceMedium, c.Confidence)
}

func TestClassify_WarmConfidenceFollowsIntentVolume(t *testing.T) {
	w := DefaultWeights()

	// 25 for strong expansion plus 15 for strong fit, but only two
	// intent signals in total.
	thin := Classify([]model.Signal{
		sig(model.SignalExpansion, model.RelevanceHigh),
		sig(model.SignalExpansion, model.RelevanceHigh),
	}, 80, w)
	assert.Equal(t, model.LeadStatusWarm, thin.Status)
	assert.Equal(t, model.ConfidenceLow, thin.Confidence)

	broad := Classify([]model.Signal{
		sig(model.SignalExpansion, model.RelevanceHigh),
		sig(model.SignalExpansion, model.RelevanceHigh),
		sig(model.SignalProcurement, model.RelevanceLow),
		sig(model.SignalProcurement, model.RelevanceLow),
	}, 80, w)
	assert.Equal(t, model.LeadStatusWarm, broad.Status)
	assert.Equal(t, model.ConfidenceMedium, broad.Confidence)
}

func TestClassify_ScoreIsMonotonicInSignals(t *testing.T) {
	w := DefaultWeights()
	base := []model.Signal{sig(model.SignalExpansion, model.RelevanceLow)}
	more := append([]model.Signal{}, base...)
	more = append(more,
		sig(model.SignalProcurement, model.RelevanceHigh),
		sig(model.SignalGrowth, model.RelevanceHigh),
	)

	assert.GreaterOrEqual(t, Classify(more, 0, w).Score, Classify(base, 0, w).Score)
}

func TestClassify_ScoreClampedAt100(t *testing.T) {
	w := DefaultWeights()
	w.ExpansionStrong = 60
	w.ProcurementStrong = 60

	signals := []model.Signal{
		sig(model.SignalExpansion, model.RelevanceHigh),
		sig(model.SignalExpansion, model.RelevanceHigh),
		sig(model.SignalProcurement, model.RelevanceHigh),
		sig(model.SignalProcurement, model.RelevanceHigh),
	}

	c := Classify(signals, 0, w)
	assert.Equal(t, 100, c.Score)
}
