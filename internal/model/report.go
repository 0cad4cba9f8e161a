package model

import "time"

// QualificationReport is the full output of one qualification run. The
// raw evidence list is always included: a classification is never
// emitted without the evidence that produced it.
type QualificationReport struct {
	RunID          string              `json:"run_id"`
	CompanyName    string              `json:"company_name"`
	Domain         string              `json:"domain,omitempty"`
	CompanyID      string              `json:"company_id,omitempty"`
	TenantID       string              `json:"tenant_id,omitempty"`
	Classification LeadClassification  `json:"classification"`
	ProductFit     ProductFitResult    `json:"product_fit"`
	Leadership     []LeadershipContact `json:"dnb_leadership"`
	Signals        []Signal            `json:"signals"`
	Evidences      []EvidenceItem      `json:"evidences"`
	SourcesChecked int                 `json:"sources_checked"`
	QueriesRun     int                 `json:"queries_executed"`
	ExecutionTime  time.Duration       `json:"execution_time"`
	CreatedAt      time.Time           `json:"created_at"`
}
