package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Storage
	SQLite SQLiteConfig
	Redis  RedisConfig

	// Scraping
	Scraper    ScraperConfig
	ImageProxy ImageProxyConfig
	Screenshot ScreenshotConfig
	Metadata   MetadataConfig

	// Library
	Enhance EnhanceConfig
	Sync    SyncConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type SQLiteConfig struct {
	Path string
}

// RedisConfig enables the shared metadata cache when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type ScraperConfig struct {
	TitleTimeout      time.Duration
	MetaTimeout       time.Duration
	UserAgent         string
	MaxBodyBytes      int64
	AllowPrivateHosts bool
}

type ImageProxyConfig struct {
	Timeout  time.Duration
	MaxBytes int64
}

type ScreenshotConfig struct {
	ServiceURL      string // must contain {url}
	ChromedpEnabled bool
	ChromePath      string
	Timeout         time.Duration
}

type MetadataConfig struct {
	CacheTTL  time.Duration
	CacheSize int
}

type EnhanceConfig struct {
	SeedPath   string
	RatePerSec float64
}

type SyncConfig struct {
	BaseURL string
	APIKey  string
	UserID  string
	Table   string
}

// Enabled reports whether a hosted backend is configured.
func (s SyncConfig) Enabled() bool {
	return strings.TrimSpace(s.BaseURL) != ""
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/bookmark-manager/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/bookmark-manager/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetString("http_server.trusted_proxies"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Scraping
	cfg.Scraper.TitleTimeout = viper.GetDuration("scraper.title_timeout")
	cfg.Scraper.MetaTimeout = viper.GetDuration("scraper.meta_timeout")
	cfg.Scraper.UserAgent = viper.GetString("scraper.user_agent")
	cfg.Scraper.MaxBodyBytes = viper.GetInt64("scraper.max_body_bytes")
	cfg.Scraper.AllowPrivateHosts = viper.GetBool("scraper.allow_private_hosts")
	cfg.ImageProxy.Timeout = viper.GetDuration("image_proxy.timeout")
	cfg.ImageProxy.MaxBytes = viper.GetInt64("image_proxy.max_bytes")
	cfg.Screenshot.ServiceURL = viper.GetString("screenshot.service_url")
	cfg.Screenshot.ChromedpEnabled = viper.GetBool("screenshot.chromedp_enabled")
	cfg.Screenshot.ChromePath = viper.GetString("screenshot.chrome_path")
	cfg.Screenshot.Timeout = viper.GetDuration("screenshot.timeout")
	cfg.Metadata.CacheTTL = viper.GetDuration("metadata.cache_ttl")
	cfg.Metadata.CacheSize = viper.GetInt("metadata.cache_size")

	// Library
	cfg.Enhance.SeedPath = viper.GetString("enhance.seed_path")
	cfg.Enhance.RatePerSec = viper.GetFloat64("enhance.rate_per_sec")
	cfg.Sync.BaseURL = viper.GetString("sync.base_url")
	cfg.Sync.APIKey = expandEnvVar(viper.GetString("sync.api_key"))
	cfg.Sync.UserID = viper.GetString("sync.user_id")
	cfg.Sync.Table = viper.GetString("sync.table")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.trusted_proxies", "")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("sqlite.path", "./data/bookmarks.db")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("scraper.title_timeout", "5s")
	viper.SetDefault("scraper.meta_timeout", "7s")
	viper.SetDefault("scraper.user_agent", defaultUserAgent)
	viper.SetDefault("scraper.max_body_bytes", 2<<20)
	viper.SetDefault("scraper.allow_private_hosts", false)
	viper.SetDefault("image_proxy.timeout", "7s")
	viper.SetDefault("image_proxy.max_bytes", 10<<20)
	viper.SetDefault("screenshot.service_url", "")
	viper.SetDefault("screenshot.chromedp_enabled", false)
	viper.SetDefault("screenshot.timeout", "20s")
	viper.SetDefault("metadata.cache_ttl", "24h")
	viper.SetDefault("metadata.cache_size", 1024)

	viper.SetDefault("enhance.seed_path", "")
	viper.SetDefault("enhance.rate_per_sec", 1.0)
	viper.SetDefault("sync.base_url", "")
	viper.SetDefault("sync.table", "bookmark_snapshots")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535, got %d", cfg.HTTPServer.Port)
	}
	if cfg.SQLite.Path == "" {
		return fmt.Errorf("sqlite.path is required")
	}
	if cfg.Enhance.RatePerSec <= 0 {
		return fmt.Errorf("enhance.rate_per_sec must be positive")
	}
	if cfg.Sync.Enabled() {
		if cfg.Sync.UserID == "" {
			return fmt.Errorf("sync.user_id is required when sync.base_url is set")
		}
		if cfg.Sync.APIKey == "" {
			fmt.Printf("Warning: sync.api_key is empty, the hosted backend will likely reject requests\n")
		}
	}
	if cfg.Screenshot.ServiceURL != "" && !strings.Contains(cfg.Screenshot.ServiceURL, "{url}") {
		return fmt.Errorf("screenshot.service_url must contain {url}")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// splitList parses comma separated values since viper does not split env strings.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
