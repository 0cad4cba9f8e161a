package model

// Product is one sellable item from a seller's catalog. Read-only from
// the pipeline's perspective.
type Product struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Industry          string   `json:"industry,omitempty"`
	TargetSize        string   `json:"target_size,omitempty"`
	DistributionModel string   `json:"distribution_model,omitempty"`
	Regions           []string `json:"regions,omitempty"`
}

// CompanyProfile holds what is known about the target company when
// scoring product fit. Any field may be empty.
type CompanyProfile struct {
	Name          string `json:"name"`
	Industry      string `json:"industry,omitempty"`
	EmployeeCount int    `json:"employee_count,omitempty"`
	Description   string `json:"description,omitempty"`
	Website       string `json:"website,omitempty"`
	Country       string `json:"country,omitempty"`
	State         string `json:"state,omitempty"`
	BusinessType  string `json:"business_type,omitempty"`
}

// DimensionScore is one scored fit dimension with its explanation.
// The explanation is generated even at a zero score so every number in
// the breakdown can be audited.
type DimensionScore struct {
	Score       int    `json:"score"`
	Max         int    `json:"max"`
	Explanation string `json:"explanation"`
}

// ProductFitBreakdown is the per-product fit result across the five
// scoring dimensions. MatchScore is the sum of the dimensions, capped
// at 100.
type ProductFitBreakdown struct {
	Product       Product        `json:"product"`
	Industry      DimensionScore `json:"industry"`
	Size          DimensionScore `json:"size"`
	Category      DimensionScore `json:"category"`
	Geography     DimensionScore `json:"geography"`
	BusinessModel DimensionScore `json:"business_model"`
	MatchScore    int            `json:"match_score"`
}

// ProductFitResult ranks the whole catalog for a target company.
type ProductFitResult struct {
	Ranked          []ProductFitBreakdown `json:"ranked"`
	AggregateScore  int                   `json:"aggregate_score"`
	Recommendations []string              `json:"recommendations,omitempty"`
}
