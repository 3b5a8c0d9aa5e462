package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr             string
	LogLevel         slog.Level
	RegistryURL      string
	RegistryTimeout  time.Duration
	RegistryRefresh  time.Duration
	AllowAcquisition bool
}

// RegistryTimeout bounds a single remote catalog fetch.
var RegistryTimeout = 2 * time.Second

// RegistryRefresh is how often the remote catalog is fetched again. Zero
// disables refreshing.
var RegistryRefresh = 5 * time.Minute

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("INTAKE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	timeout := RegistryTimeout
	if raw := os.Getenv("REGISTRY_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	refresh := RegistryRefresh
	if raw := os.Getenv("REGISTRY_REFRESH_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d >= 0 {
			refresh = d
		}
	}

	return Server{
		Addr:             addr,
		LogLevel:         parseLevel(os.Getenv("LOG_LEVEL")),
		RegistryURL:      strings.TrimRight(os.Getenv("REQUIREMENT_REGISTRY_URL"), "/"),
		RegistryTimeout:  timeout,
		RegistryRefresh:  refresh,
		AllowAcquisition: os.Getenv("ALLOW_ACQUISITION") != "false",
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
