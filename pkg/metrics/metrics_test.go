package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookmark-manager/pkg/metrics"
)

func TestHandlerExposesCollectors(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/api/fetch-title", 200, 15*time.Millisecond)
	m.Scrape("fetch-title", "ok")
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.Enhanced("updated")
	m.Sync("push", "ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	out := string(body)

	for _, want := range []string{
		`bookmark_manager_http_requests_total{method="GET",route="/api/fetch-title",status="200"} 1`,
		`bookmark_manager_scrapes_total{endpoint="fetch-title",outcome="ok"} 1`,
		`bookmark_manager_metadata_cache_lookups_total{result="hit"} 1`,
		`bookmark_manager_metadata_cache_lookups_total{result="miss"} 1`,
		`bookmark_manager_bookmarks_enhanced_total{outcome="updated"} 1`,
		`bookmark_manager_sync_operations_total{op="push",outcome="ok"} 1`,
		`go_goroutines`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	m.ObserveRequest("GET", "", 500, time.Second)
	m.Scrape("x", "y")
	m.CacheLookup(true)
	m.Enhanced("x")
	m.Sync("push", "error")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("nil handler status = %d", rec.Code)
	}
}
