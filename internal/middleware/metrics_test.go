package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/jobs/:id", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/fail", func(c echo.Context) error { return echo.NewHTTPError(http.StatusUnauthorized) })
	e.GET("/boom", func(c echo.Context) error { return c.String(http.StatusInternalServerError, "x") })

	for _, p := range []string{"/jobs/1", "/jobs/2", "/fail", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
	}

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/jobs/:id", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/fail", "401")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("client_error")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("server_error")))

	n, err := testutil.GatherAndCount(reg, "jobboard_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
