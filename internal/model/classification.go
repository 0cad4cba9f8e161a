package model

// LeadStatus is the qualification verdict.
type LeadStatus string

const (
	LeadStatusHot  LeadStatus = "hot"
	LeadStatusWarm LeadStatus = "warm"
	LeadStatusCold LeadStatus = "cold"
)

// Confidence qualifies how much to trust a classification.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Timeline estimates how long the lead will take to close.
type Timeline string

const (
	Timeline30Days      Timeline = "30_days"
	Timeline60Days      Timeline = "60_days"
	Timeline90Days      Timeline = "90_days"
	Timeline120Days     Timeline = "120_days"
	Timeline180DaysPlus Timeline = "180_days+"
)

// LeadClassification is the final verdict for one qualification run.
// Derived once from the full signal set and top product fits, never
// mutated afterwards.
type LeadClassification struct {
	Score           int        `json:"score"`
	Status          LeadStatus `json:"status"`
	Confidence      Confidence `json:"confidence"`
	Explanation     string     `json:"explanation"`
	SignalsDetected int        `json:"signals_detected"`
	TimelineToClose Timeline   `json:"timeline_to_close"`
	Recommendation  string     `json:"recommendation"`
}
