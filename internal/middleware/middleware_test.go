package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookkeeper/internal/auth"
	models "bookkeeper/internal/domain/models/ledger"
	"bookkeeper/internal/httputil"
	"bookkeeper/internal/observability"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// echoUser writes the authenticated user ID, or "anonymous"
var echoUser = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	userID, ok := httputil.GetUserID(r)
	if !ok {
		io.WriteString(w, "anonymous")
		return
	}
	io.WriteString(w, userID.String())
})

func newAuthStack(t *testing.T) (http.Handler, *auth.SessionTokens) {
	t.Helper()
	tokens, err := auth.NewSessionTokens("secret", time.Hour, discardLogger())
	require.NoError(t, err)
	return AuthMiddleware(tokens, "POST /api/session", "GET /health")(echoUser), tokens
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	h, tokens := newAuthStack(t)
	user := &models.User{ID: uuid.New(), Username: "anna"}
	token, _, err := tokens.IssueToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID.String(), rec.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	h, _ := newAuthStack(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestAuthMiddleware_PublicRoutes(t *testing.T) {
	h, _ := newAuthStack(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/session"},
		{http.MethodGet, "/health"},
		{http.MethodOptions, "/api/accounts"},
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "anonymous", rec.Body.String())
	}

	// Public by method and path, not path alone
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/session", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecovery(t *testing.T) {
	h := Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	collector := observability.NewCollector("test")
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := Metrics(collector, mux)(mux)

	for _, path := range []string{"/api/accounts/1", "/api/accounts/2", "/nowhere"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.HTTPRequests.WithLabelValues("GET", "GET /api/accounts/{id}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
