package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	bookmarkRepo "bookmark-manager/internal/bookmark/repository/sqlite"
	"bookmark-manager/internal/middleware"
	"bookmark-manager/pkg/fetcher"
	"bookmark-manager/pkg/log"
	"bookmark-manager/pkg/metrics"
	pkgSQLite "bookmark-manager/pkg/sqlite"
	"bookmark-manager/pkg/urlguard"
)

func newTestServer(t *testing.T, opts ...func(*Config)) *HTTPServer {
	t.Helper()
	ctx := context.Background()

	db, err := pkgSQLite.Connect(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := bookmarkRepo.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	guard := urlguard.New()
	cfg := Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		Middleware:  middleware.Config{AllowedOrigins: []string{"*"}},
		Metrics:     metrics.New(),
		DB:          db,
		Fetcher:     fetcher.New(guard, fetcher.Config{}),
		Guard:       guard,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	srv, err := New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 1}},
		{name: "missing port", cfg: Config{Mode: "test"}},
		{name: "missing db", cfg: Config{Mode: "test", Port: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	srv := newTestServer(t, func(cfg *Config) {
		cfg.Middleware.RequestsPerMin = 10
	})

	codes := make([]int, 0, 3)
	for _, xff := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
		req.RemoteAddr = "198.51.100.7:4321"
		req.Header.Set("X-Forwarded-For", xff)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want one success then 429s", codes)
	}
}

func TestNewRejectsInvalidTrustedProxy(t *testing.T) {
	ctx := context.Background()
	db, err := pkgSQLite.Connect(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	guard := urlguard.New()
	_, err = New(log.NewNop(), Config{
		Logger:         log.NewNop(),
		Port:           8080,
		Mode:           "test",
		DB:             db,
		Fetcher:        fetcher.New(guard, fetcher.Config{}),
		Guard:          guard,
		TrustedProxies: []string{"not-an-ip"},
	})
	if err == nil {
		t.Error("expected error for invalid trusted proxy")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := serve(srv, http.MethodGet, path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			var resp struct {
				ErrorCode int            `json:"error_code"`
				Data      map[string]any `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Data["service"] != ServiceName {
				t.Errorf("service = %v", resp.Data["service"])
			}
		})
	}

	t.Run("metrics", func(t *testing.T) {
		serve(srv, http.MethodGet, "/health", "")
		w := serve(srv, http.MethodGet, "/metrics", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `route="/health"`) {
			t.Errorf("metrics = %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("ready fails without database", func(t *testing.T) {
		srv := newTestServer(t)
		srv.db.Close()
		if w := serve(srv, http.MethodGet, "/ready", ""); w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d", w.Code)
		}
	})
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, http.MethodPost, "/api/v1/categories", `{"name":"Dev"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create category = %d %s", w.Code, w.Body.String())
	}

	w = serve(srv, http.MethodGet, "/api/v1/categories", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"Dev"`) {
		t.Errorf("list categories = %d %s", w.Code, w.Body.String())
	}

	// Scraping endpoints validate before any outbound call.
	if w := serve(srv, http.MethodGet, "/api/fetch-title", ""); w.Code != http.StatusBadRequest {
		t.Errorf("fetch-title without url = %d", w.Code)
	}
	if w := serve(srv, http.MethodGet, "/api/proxy-image?url=http://127.0.0.1/x.png", ""); w.Code != http.StatusForbidden {
		t.Errorf("proxy-image to loopback = %d", w.Code)
	}

	if w := serve(srv, http.MethodPost, "/api/v1/sync/push", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("sync without backend = %d", w.Code)
	}
}

func TestHealthComponents(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, http.MethodGet, "/health", "")
	var resp struct {
		Data struct {
			Components map[string]any `json:"components"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]any{"cache": "none", "screenshot": false, "sync": false}
	for k, v := range want {
		if resp.Data.Components[k] != v {
			t.Errorf("component %s = %v, want %v", k, resp.Data.Components[k], v)
		}
	}
}
