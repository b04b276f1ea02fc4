package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"bookmark-manager/internal/media"
	"bookmark-manager/pkg/log"
)

type mockUseCase struct {
	image    media.ImageOutput
	shot     media.ScreenshotOutput
	err      error
	gotProxy media.ProxyImageInput
}

func (m *mockUseCase) ProxyImage(ctx context.Context, in media.ProxyImageInput) (media.ImageOutput, error) {
	m.gotProxy = in
	return m.image, m.err
}

func (m *mockUseCase) Screenshot(ctx context.Context, in media.ScreenshotInput) (media.ScreenshotOutput, error) {
	return m.shot, m.err
}

func setupRouter(uc media.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc))
	return r
}

func TestProxyImageHandler(t *testing.T) {
	t.Run("streams image with cache header", func(t *testing.T) {
		uc := &mockUseCase{image: media.ImageOutput{
			ContentType: "image/png",
			Length:      3,
			Body:        io.NopCloser(strings.NewReader("PNG")),
			Source:      media.SourceUpstream,
		}}
		w := httptest.NewRecorder()
		setupRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/proxy-image?src=https://img.example.com/a.png", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if w.Body.String() != "PNG" || w.Header().Get("Content-Type") != "image/png" {
			t.Errorf("unexpected response %q %q", w.Body.String(), w.Header().Get("Content-Type"))
		}
		if w.Header().Get("Cache-Control") != "public, max-age=86400" {
			t.Errorf("cache-control = %q", w.Header().Get("Cache-Control"))
		}
		if uc.gotProxy.URL != "https://img.example.com/a.png" {
			t.Errorf("src alias not honoured: %q", uc.gotProxy.URL)
		}
	})

	statusTests := []struct {
		name string
		err  error
		code int
	}{
		{"missing", media.ErrMissingURL, http.StatusBadRequest},
		{"invalid", media.ErrInvalidURL, http.StatusBadRequest},
		{"blocked", media.ErrBlockedHost, http.StatusForbidden},
		{"upstream", media.ErrUpstream, http.StatusBadGateway},
	}
	for _, tt := range statusTests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			setupRouter(&mockUseCase{err: tt.err}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/proxy-image?url=x", nil))
			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d", w.Code, tt.code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["error"] == "" {
				t.Errorf("expected {error} body, got %s", w.Body.String())
			}
		})
	}
}

func TestScreenshotHandler(t *testing.T) {
	uc := &mockUseCase{shot: media.ScreenshotOutput{ContentType: "image/svg+xml", Body: []byte("<svg/>"), Placeholder: true}}
	w := httptest.NewRecorder()
	setupRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/screenshot?url=https://example.com", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "image/svg+xml" || w.Body.String() != "<svg/>" {
		t.Errorf("unexpected response: %q %q", w.Header().Get("Content-Type"), w.Body.String())
	}
	if w.Header().Get("Cache-Control") != "public, max-age=3600" {
		t.Errorf("cache-control = %q", w.Header().Get("Cache-Control"))
	}
}
