// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// --------------------------------------------------------------------------
// Collection targets
// --------------------------------------------------------------------------

// Target is a league whose teams are collected during the historical pass.
type Target struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// DefaultTargets are the NBA and the Euroleague.
var DefaultTargets = []Target{
	{ID: 12, Name: "NBA"},
	{ID: 13, Name: "Euroleague"},
}

// Store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Storage
	StoreBackend   string
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Basketball source
	BasketballAPIKey string
	BasketballAPIURL string
	BasketballAPIRPM int

	// Collector
	Targets            []Target
	LiveInterval       time.Duration
	CollectorAutostart bool
	HistoricalRefresh  time.Duration // 0 disables
	ReachabilityProbe  time.Duration // 0 disables

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool
	CacheBackend string
	RedisURL     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	backend := envOr("STORE_BACKEND", StorePostgres)
	dbURL := envOr("DATABASE_URL", "")
	switch backend {
	case StorePostgres:
		if dbURL == "" {
			return nil, fmt.Errorf("DATABASE_URL must be set when STORE_BACKEND=%s", StorePostgres)
		}
	case StoreMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}

	targets, err := loadTargets()
	if err != nil {
		return nil, err
	}

	cacheBackend := envOr("CACHE_BACKEND", CacheMemory)
	redisURL := envOr("REDIS_URL", "")
	if cacheBackend == CacheRedis && redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL must be set when CACHE_BACKEND=%s", CacheRedis)
	}

	return &Config{
		StoreBackend:   backend,
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		BasketballAPIKey: envOr("BASKETBALL_API_KEY", ""),
		BasketballAPIURL: envOr("BASKETBALL_API_URL", "https://v1.basketball.api-sports.io"),
		BasketballAPIRPM: envInt("BASKETBALL_API_RPM", 10),

		Targets:            targets,
		LiveInterval:       time.Duration(envInt("COLLECTOR_LIVE_INTERVAL_SECONDS", 60)) * time.Second,
		CollectorAutostart: envBool("COLLECTOR_AUTOSTART", false),
		HistoricalRefresh:  time.Duration(envInt("HISTORICAL_REFRESH_HOURS", 0)) * time.Hour,
		ReachabilityProbe:  time.Duration(envInt("REACHABILITY_PROBE_MINUTES", 5)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),
		CacheBackend: cacheBackend,
		RedisURL:     redisURL,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Targets
// --------------------------------------------------------------------------

// loadTargets resolves targets from COLLECTOR_TARGETS_FILE, then
// COLLECTOR_TARGET_LEAGUES, then DefaultTargets.
func loadTargets() ([]Target, error) {
	if path := envOr("COLLECTOR_TARGETS_FILE", ""); path != "" {
		return LoadTargetsFile(path)
	}
	if v := envOr("COLLECTOR_TARGET_LEAGUES", ""); v != "" {
		return ParseTargets(v)
	}
	return append([]Target(nil), DefaultTargets...), nil
}

// ParseTargets parses "12:NBA,13:Euroleague". The name part is optional.
func ParseTargets(s string) ([]Target, error) {
	var targets []Target
	for _, item := range envSplit(s) {
		idPart, name, _ := strings.Cut(item, ":")
		id, err := strconv.Atoi(strings.TrimSpace(idPart))
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid target league %q", item)
		}
		targets = append(targets, Target{ID: id, Name: strings.TrimSpace(name)})
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no target leagues in %q", s)
	}
	return targets, nil
}

// LoadTargetsFile reads a YAML document of the form:
//
//	leagues:
//	  - id: 12
//	    name: NBA
func LoadTargetsFile(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}
	var doc struct {
		Leagues []Target `yaml:"leagues"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse targets file %s: %w", path, err)
	}
	for _, t := range doc.Leagues {
		if t.ID <= 0 {
			return nil, fmt.Errorf("targets file %s: league id must be positive", path)
		}
	}
	if len(doc.Leagues) == 0 {
		return nil, fmt.Errorf("targets file %s lists no leagues", path)
	}
	return doc.Leagues, nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		if result := envSplit(v); len(result) > 0 {
			return result
		}
	}
	return fallback
}

func envSplit(v string) []string {
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
