package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
	if cfg.SQLite.Path != "./data/bookmarks.db" {
		t.Errorf("sqlite path = %q", cfg.SQLite.Path)
	}
	if cfg.Scraper.TitleTimeout != 5*time.Second || cfg.Scraper.MetaTimeout != 7*time.Second {
		t.Errorf("scraper timeouts = %v/%v", cfg.Scraper.TitleTimeout, cfg.Scraper.MetaTimeout)
	}
	if cfg.ImageProxy.MaxBytes != 10<<20 {
		t.Errorf("image max bytes = %d", cfg.ImageProxy.MaxBytes)
	}
	if cfg.Metadata.CacheTTL != 24*time.Hour {
		t.Errorf("cache ttl = %v", cfg.Metadata.CacheTTL)
	}
	if cfg.RateLimit.RequestsPerMin != 120 {
		t.Errorf("rate limit = %d", cfg.RateLimit.RequestsPerMin)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("cors = %v", cfg.CORS.AllowedOrigins)
	}
	if len(cfg.HTTPServer.TrustedProxies) != 0 {
		t.Errorf("trusted proxies = %v, want none", cfg.HTTPServer.TrustedProxies)
	}
	if cfg.Sync.Enabled() {
		t.Error("sync must be disabled by default")
	}
	if cfg.Sync.Table != "bookmark_snapshots" {
		t.Errorf("sync table = %q", cfg.Sync.Table)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("SCRAPER_ALLOW_PRIVATE_HOSTS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("HTTP_SERVER_TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.2")
	t.Setenv("SYNC_BASE_URL", "https://db.example")
	t.Setenv("SYNC_USER_ID", "me")
	t.Setenv("SYNC_API_KEY", "${MY_SECRET}")
	t.Setenv("MY_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
	if !cfg.Scraper.AllowPrivateHosts {
		t.Error("allow private hosts not applied")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("cors = %v", cfg.CORS.AllowedOrigins)
	}
	if len(cfg.HTTPServer.TrustedProxies) != 2 || cfg.HTTPServer.TrustedProxies[0] != "10.0.0.0/8" {
		t.Errorf("trusted proxies = %v", cfg.HTTPServer.TrustedProxies)
	}
	if !cfg.Sync.Enabled() || cfg.Sync.APIKey != "s3cret" {
		t.Errorf("sync = %+v", cfg.Sync)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"sync without user", map[string]string{"SYNC_BASE_URL": "https://db.example"}},
		{"bad screenshot template", map[string]string{"SCREENSHOT_SERVICE_URL": "https://shots.example/?u="}},
		{"zero enhance rate", map[string]string{"ENHANCE_RATE_PER_SEC": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	viper.Reset()
	os.Unsetenv("DOES_NOT_EXIST_XYZ")
	if got := expandEnvVar("${DOES_NOT_EXIST_XYZ}"); got != "" {
		t.Errorf("unset var expanded to %q", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("plain value changed to %q", got)
	}
}
