package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/espalier"
	adapter "github.com/aretw0/espalier/internal/adapters/http"
	redisAdapter "github.com/aretw0/espalier/internal/adapters/redis"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const designJSON = `{
	"service_type": "business_registration",
	"workflow": {
		"roles": [
			{
				"id": "intake", "name": "Intake", "kind": "SYSTEM", "is_start": true,
				"statuses": [
					{"id": "s1", "code": "PENDING"},
					{"id": "s2", "code": "PASSED", "transitions": [{"id": "t1", "target_role_id": "review"}]}
				]
			},
			{"id": "review", "name": "Review", "kind": "SYSTEM"}
		]
	},
	"forms": [{
		"id": "f1", "name": "Application", "updated_at": "2026-01-02T03:04:05Z",
		"fields": [{"id": "fld-1", "name": "email", "type": "EMAIL", "required": true}]
	}]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := adapter.NewHandler(espalier.New(), slog.New(slog.DiscardHandler))
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, espalier.Version, body["version"])
}

func TestServer_Validate(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/v1/designs/validate", designJSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Issues    []map[string]any `json:"issues"`
		HasErrors bool             `json:"hasErrors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.HasErrors)
}

func TestServer_Compile(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/v1/designs/compile", designJSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Artifacts []struct {
			FormID  string `json:"formId"`
			Version string `json:"version"`
		} `json:"artifacts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Artifacts, 1)
	assert.Equal(t, "f1", body.Artifacts[0].FormID)
	assert.Equal(t, "2026-01-02T03:04:05Z", body.Artifacts[0].Version)
}

func TestServer_CompileWithCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cache := redisAdapter.NewFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = cache.Close() })

	handler := adapter.NewHandler(espalier.New(), slog.New(slog.DiscardHandler), adapter.WithArtifactCache(cache))
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	// First call populates the cache, second call serves from it. The
	// compiler is deterministic so both responses must match.
	first := postJSON(t, srv, "/v1/designs/compile", designJSON)
	require.Equal(t, http.StatusOK, first.StatusCode)
	firstBody, err := io.ReadAll(first.Body)
	require.NoError(t, err)

	require.Greater(t, len(mr.Keys()), 0)

	second := postJSON(t, srv, "/v1/designs/compile", designJSON)
	require.Equal(t, http.StatusOK, second.StatusCode)
	secondBody, err := io.ReadAll(second.Body)
	require.NoError(t, err)

	assert.Equal(t, string(firstBody), string(secondBody))
}

func TestServer_Analyze(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/v1/designs/analyze", designJSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		TotalGaps int    `json:"totalGaps"`
		Summary   string `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Greater(t, body.TotalGaps, 0)
	assert.Contains(t, body.Summary, "Found")
}

func TestServer_BadRequest(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/v1/designs/analyze", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t)

	postJSON(t, srv, "/v1/designs/analyze", designJSON)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "espalier_reviews_total")
}
