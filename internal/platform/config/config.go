package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	DatabaseURL    string
	RequestTimeout time.Duration
	MaxOpenConns   int
	MaxIdleConns   int
}

var defaultRequestTimeout = 30 * time.Second

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("BIBLIO_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	requestTimeout := defaultRequestTimeout
	if raw := os.Getenv("BIBLIO_REQUEST_TIMEOUT"); raw != "" {
		if duration, err := time.ParseDuration(raw); err == nil {
			requestTimeout = duration
		}
	}

	maxOpen := 25
	if raw := os.Getenv("BIBLIO_DB_MAX_OPEN_CONNS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			maxOpen = n
		}
	}
	maxIdle := 5
	if raw := os.Getenv("BIBLIO_DB_MAX_IDLE_CONNS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			maxIdle = n
		}
	}

	return Server{
		Addr:           addr,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RequestTimeout: requestTimeout,
		MaxOpenConns:   maxOpen,
		MaxIdleConns:   maxIdle,
	}
}
