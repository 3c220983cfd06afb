package config

import (
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"time"

	"github.com/joho/godotenv"

	"concursos/pkg/platform/middleware/metadata"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	Environment    string
	LookupLatency  time.Duration
	SeedFile       string
	LogLevel       slog.Level
	RequestTimeout time.Duration
	TrustedProxies []netip.Prefix
}

// Defaults used when the matching variable is unset.
var (
	DefaultAddr           = ":8080"
	DefaultEnvironment    = "development"
	DefaultLookupLatency  = 500 * time.Millisecond
	DefaultRequestTimeout = 30 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win over it.
func FromEnv() (Server, error) {
	_ = godotenv.Load()

	cfg := Server{
		Addr:        getEnv("CONCURSOS_ADDR", DefaultAddr),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		SeedFile:    os.Getenv("SEED_FILE"),
	}

	var err error
	if cfg.LookupLatency, err = getDuration("LOOKUP_LATENCY", DefaultLookupLatency); err != nil {
		return Server{}, err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", DefaultRequestTimeout); err != nil {
		return Server{}, err
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Server{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	if cfg.TrustedProxies, err = metadata.ParseTrustedProxies(os.Getenv("TRUSTED_PROXIES")); err != nil {
		return Server{}, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production defaults.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return d, nil
}
