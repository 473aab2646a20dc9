package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/counted", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	before := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/counted", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/counted", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	after := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/counted", "200"))
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
	if g := testutil.ToFloat64(inFlight); g != 0 {
		t.Errorf("in-flight gauge = %v, want 0 after request", g)
	}
}

func TestMetricsUnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())

	before := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "unmatched", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	after := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "unmatched", "404"))
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}
