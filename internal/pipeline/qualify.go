// Package pipeline orchestrates the evidence-driven lead qualification
// run: plan queries, collect evidence, extract signals and leadership,
// score product fit, classify.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/catalog"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/classify"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/evidence"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/leadership"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/productfit"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/queryplan"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/signal"
)

// ErrInvalidInput marks a request rejected before any network call.
var ErrInvalidInput = errors.New("pipeline: invalid input")

// QualifyRequest is one qualification invocation.
type QualifyRequest struct {
	CompanyName string `json:"company_name"`
	Domain      string `json:"domain,omitempty"`
	CompanyID   string `json:"company_id,omitempty"`
	TenantID    string `json:"tenant_id,omitempty"`

	// Optional profile attributes sharpen product-fit scoring.
	Industry      string `json:"industry,omitempty"`
	EmployeeCount int    `json:"employee_count,omitempty"`
	Description   string `json:"description,omitempty"`
	Country       string `json:"country,omitempty"`
	State         string `json:"state,omitempty"`
	BusinessType  string `json:"business_type,omitempty"`
}

// Qualifier runs the full qualification pipeline. It holds no state
// across invocations; each Run is a single request-response unit.
type Qualifier struct {
	collector *evidence.Collector
	catalog   catalog.Store
	sellerID  string
	weights   classify.Weights
}

// NewQualifier assembles a Qualifier. catalog may be nil, in which case
// product fit scores zero against an empty catalog.
func NewQualifier(collector *evidence.Collector, cat catalog.Store, sellerID string, weights classify.Weights) *Qualifier {
	return &Qualifier{
		collector: collector,
		catalog:   cat,
		sellerID:  sellerID,
		weights:   weights,
	}
}

// Run executes one qualification. Individual search failures degrade to
// fewer evidence items; only invalid input or a broken catalog read is
// an error.
func (q *Qualifier) Run(ctx context.Context, req QualifyRequest) (*model.QualificationReport, error) {
	name := strings.TrimSpace(req.CompanyName)
	if name == "" {
		return nil, eris.Wrap(ErrInvalidInput, "company_name is required")
	}

	start := time.Now()
	log := zap.L().With(zap.String("company", name))

	var products []model.Product
	if q.catalog != nil {
		var err error
		products, err = q.catalog.ListProducts(ctx, q.sellerID)
		if err != nil {
			return nil, eris.Wrap(err, "pipeline: load catalog")
		}
	}

	plan := queryplan.Plan(name, products)
	evidences, stats := q.collector.Collect(ctx, plan)
	log.Info("pipeline: evidence collected",
		zap.Int("items", len(evidences)),
		zap.Int("queries", stats.QueriesExecuted),
		zap.Int("failed_calls", stats.CallsFailed),
	)

	signals := signal.Extract(evidences)
	leaders := leadership.Extract(evidences)

	profile := model.CompanyProfile{
		Name:          name,
		Industry:      req.Industry,
		EmployeeCount: req.EmployeeCount,
		Description:   req.Description,
		Website:       req.Domain,
		Country:       req.Country,
		State:         req.State,
		BusinessType:  req.BusinessType,
	}
	fit := productfit.Score(products, profile)

	classification := classify.Classify(signals, fit.AggregateScore, q.weights)

	report := &model.QualificationReport{
		RunID:          uuid.NewString(),
		CompanyName:    name,
		Domain:         req.Domain,
		CompanyID:      req.CompanyID,
		TenantID:       req.TenantID,
		Classification: classification,
		ProductFit:     fit,
		Leadership:     leaders,
		Signals:        signals,
		Evidences:      evidences,
		SourcesChecked: stats.SourcesChecked,
		QueriesRun:     stats.QueriesExecuted,
		ExecutionTime:  time.Since(start),
		CreatedAt:      time.Now().UTC(),
	}
	if report.Evidences == nil {
		// The auditability invariant: a classification always ships with
		// its evidence list, even when empty.
		report.Evidences = []model.EvidenceItem{}
	}

	log.Info("pipeline: qualification complete",
		zap.String("run_id", report.RunID),
		zap.Int("score", classification.Score),
		zap.String("status", string(classification.Status)),
	)

	return report, nil
}
