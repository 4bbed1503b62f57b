package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the web server settings resolved from the environment.
type Config struct {
	// Port resolution: MARKETPLACE_WEB_PORT, then Cloud Run's PORT, else 8080.
	Port         string `env:"MARKETPLACE_WEB_PORT"`
	PlatformPort string `env:"PORT" envDefault:"8080"`
	Environment  string `env:"MARKETPLACE_WEB_ENV" envDefault:"dev"`
	Dev          bool   `env:"MARKETPLACE_WEB_DEV" envDefault:"false"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	DataDir      string `env:"MARKETPLACE_DATA_DIR"`
	ContentDir   string `env:"MARKETPLACE_CONTENT_DIR" envDefault:"content"`
	TemplatesDir string `env:"MARKETPLACE_TEMPLATES_DIR" envDefault:"templates"`
	PublicDir    string `env:"MARKETPLACE_PUBLIC_DIR" envDefault:"public"`
	LocalesDir   string `env:"MARKETPLACE_LOCALES_DIR" envDefault:"locales"`
	DefaultLang  string `env:"MARKETPLACE_DEFAULT_LANG" envDefault:"en"`

	CMSBaseURL  string        `env:"CMS_BASE_URL"`
	CMSCacheTTL time.Duration `env:"CMS_CACHE_TTL" envDefault:"5m"`
	SiteBaseURL string        `env:"SITE_BASE_URL"`

	Analytics Analytics

	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"10s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout    time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Analytics holds client instrumentation IDs surfaced to templates.
type Analytics struct {
	GA4MeasurementID string `env:"MARKETPLACE_WEB_GA_MEASUREMENT_ID"` // e.g. G-XXXXXXXXXX
	GTMContainerID   string `env:"MARKETPLACE_WEB_GTM_CONTAINER_ID"`  // e.g. GTM-XXXXXXX
	Debug            bool   `env:"MARKETPLACE_WEB_ANALYTICS_DEBUG" envDefault:"false"`
}

// Load reads an optional .env file and parses the environment into Config.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// a missing .env is normal outside local development
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	// DEV is honoured as a fallback the same way MARKETPLACE_WEB_DEV is
	if !cfg.Dev && os.Getenv("DEV") != "" {
		cfg.Dev = true
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = strings.TrimSpace(c.PlatformPort)
	}
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// IsProd reports whether the server runs in production.
func (c Config) IsProd() bool { return c.Environment == "prod" }
