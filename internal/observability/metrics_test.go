package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveRequest(t *testing.T) {
	c := NewCollector("test")

	c.ObserveRequest(http.MethodPatch, "PATCH /api/accounts/{id}", http.StatusBadRequest, 20*time.Millisecond)
	c.ObserveRequest(http.MethodPatch, "PATCH /api/accounts/{id}", http.StatusBadRequest, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("PATCH", "PATCH /api/accounts/{id}", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.HTTPDuration))
}

func TestCollector_IndependentRegistries(t *testing.T) {
	a := NewCollector("test")
	b := NewCollector("test")

	a.CyclesRejected.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.CyclesRejected))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CyclesRejected))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("bookkeeper")
	c.AccountsReparented.Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bookkeeper_accounts_reparented_total 1")
}
