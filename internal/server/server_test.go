package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/citro-voice-kernel/internal/intent"
	"github.com/citro-voice-kernel/internal/knowledge"
	"github.com/citro-voice-kernel/internal/pipeline"
	"github.com/citro-voice-kernel/internal/resolver"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	kb := knowledge.NewBase(knowledge.DefaultCatalog(), logger)
	engine := intent.NewEngine(kb, logger)
	res := resolver.New(kb, nil, nil, logger)
	p, err := pipeline.New(pipeline.DefaultConfig(), engine, res, logger)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return New(p, nil, logger).Handler()
}

func TestHandleCommand(t *testing.T) {
	h := newTestHandler(t)

	body := `{"transcript":"show events","currentPage":"/","isAuthenticated":false}`
	req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), intent.NavEvents)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandleCommandHinglish(t *testing.T) {
	h := newTestHandler(t)

	body := `{"transcript":"register for cardiology"}`
	req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), intent.RegisterEvent)
	assert.Contains(t, rec.Body.String(), "Codeology")
}

func TestHandleCommandBadBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestHandleCommandWrongMethod(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/command", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleStats(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_commands")
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
