package model

// SignalType classifies what a piece of evidence indicates about a company.
type SignalType string

const (
	SignalExpansion   SignalType = "expansion"
	SignalProcurement SignalType = "procurement"
	SignalHiring      SignalType = "hiring"
	SignalGrowth      SignalType = "growth"
	SignalProductFit  SignalType = "product_fit"
)

// Relevance ranks a signal by the reliability of the source it came
// from, not by the strength of the keyword match.
type Relevance string

const (
	RelevanceLow    Relevance = "low"
	RelevanceMedium Relevance = "medium"
	RelevanceHigh   Relevance = "high"
)

// Signal is a typed, evidence-backed indication derived from a single
// EvidenceItem. The Source and URL always trace back to the evidence
// that produced it.
type Signal struct {
	Type        SignalType `json:"type"`
	Description string     `json:"description"`
	Source      string     `json:"source"`
	URL         string     `json:"url"`
	Relevance   Relevance  `json:"relevance"`
	Date        string     `json:"date,omitempty"`
}

// LeadershipContact is a named person extracted from
// business-intelligence evidence.
type LeadershipContact struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url"`
}
