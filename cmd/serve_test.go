package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/classify"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/evidence"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/pipeline"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/resolver"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/source"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/pkg/serper"
)

type stubSearch struct{}

func (stubSearch) Search(ctx context.Context, query string, opts ...serper.SearchOption) (*serper.SearchResponse, error) {
	return &serper.SearchResponse{}, nil
}

func testEnv() *env {
	collector := evidence.New(stubSearch{}, source.NewRegistry(), time.Millisecond)
	return &env{
		Resolver:  resolver.New(nil, nil),
		Qualifier: pipeline.NewQualifier(collector, nil, "", classify.DefaultWeights()),
	}
}

func doJSON(t *testing.T, handler http.HandlerFunc, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestHandleResolve_BlockedSourceIs403(t *testing.T) {
	rec, body := doJSON(t, handleResolve(testEnv()),
		`{"url":"https://facebook.com/somecompany/posts/123"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "facebook_content", body["blocked_reason"])
	assert.NotEmpty(t, body["offender"])
}

func TestHandleResolve_InvalidURLIs400(t *testing.T) {
	rec, body := doJSON(t, handleResolve(testEnv()), `{"url":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body["error"])
}

func TestHandleResolve_MalformedBodyIs400(t *testing.T) {
	rec, _ := doJSON(t, handleResolve(testEnv()), `{"url":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleResolve_Success(t *testing.T) {
	rec, body := doJSON(t, handleResolve(testEnv()),
		`{"url":"https://abc-pilates.com.cn","company_name":"Guangzhou ABC Pilates Co"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "China", body["country"])
	assert.Equal(t, "Guangzhou", body["city"])
}

func TestHandleQualify_MissingNameIs400(t *testing.T) {
	rec, body := doJSON(t, handleQualify(testEnv()), `{"company_name":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body["error"])
}

func TestHandleQualify_Success(t *testing.T) {
	rec, body := doJSON(t, handleQualify(testEnv()), `{"company_name":"Acme"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["run_id"])
	classification, ok := body["classification"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "cold", classification["status"])
}
