package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"credit-engine/internal/infrastructure/monitoring"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	monitoring.HTTP.RequestsTotal.Reset()
	monitoring.HTTP.RequestDuration.Reset()

	r := chi.NewRouter()
	r.Use(MetricsMiddleware())
	r.Get("/api/customers/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Delete("/api/customers/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	for _, path := range []string{"/api/customers/1", "/api/customers/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/customers/3", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(monitoring.HTTP.RequestsTotal.WithLabelValues(http.MethodGet, "/api/customers/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(monitoring.HTTP.RequestsTotal.WithLabelValues(http.MethodDelete, "/api/customers/{id}", "409")))
	assert.Equal(t, 2, testutil.CollectAndCount(monitoring.HTTP.RequestDuration))
}
