package serper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_RequestContract(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"organic":[{"title":"Acme expands","snippet":"new plant","link":"https://news.example/a","position":1}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := c.Search(context.Background(), `"Acme" expansion`,
		WithNum(5), WithRecency(RecencyYear))
	require.NoError(t, err)

	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, `"Acme" expansion`, gotBody["q"])
	assert.Equal(t, float64(5), gotBody["num"])
	assert.Equal(t, "qdr:y", gotBody["tbs"])

	require.Len(t, resp.Organic, 1)
	assert.Equal(t, "Acme expands", resp.Organic[0].Title)
	assert.Equal(t, 1, resp.Organic[0].Position)
}

func TestSearch_NoRecencyOmitsTBS(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"organic":[]}`))
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "query")
	require.NoError(t, err)

	_, present := gotBody["tbs"]
	assert.False(t, present)
}

func TestSearch_RetriesOnThrottle(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"organic":[{"title":"ok","link":"https://x.example"}]}`))
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL))
	resp, err := c.Search(context.Background(), "query")
	require.NoError(t, err)

	assert.Equal(t, 2, attempts)
	require.Len(t, resp.Organic, 1)
}

func TestSearch_ClientErrorNotRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad key"}`))
	}))
	defer srv.Close()

	c := NewClient("bad", WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "query")

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Contains(t, err.Error(), "401")
}
