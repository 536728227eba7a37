// Package handler provides HTTP handlers for all API endpoints.
// Read-through endpoints call the basketball source and cache the encoded
// envelope; stored-data endpoints page through the entity repository.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/hoops-collector/internal/api/respond"
	"github.com/albapepper/hoops-collector/internal/cache"
	"github.com/albapepper/hoops-collector/internal/collector"
	"github.com/albapepper/hoops-collector/internal/provider"
	"github.com/albapepper/hoops-collector/internal/provider/apisports"
	"github.com/albapepper/hoops-collector/internal/store"
)

// Source is the basketball client as seen by the facade.
type Source interface {
	Seasons(ctx context.Context) (*provider.Envelope[[]provider.SeasonID], error)
	Countries(ctx context.Context, f apisports.CountryFilter) (*provider.Envelope[[]provider.Country], error)
	Leagues(ctx context.Context, f apisports.LeagueFilter, applyCoverage bool) (*provider.Envelope[[]provider.League], error)
	Teams(ctx context.Context, f apisports.TeamFilter) (*provider.Envelope[[]provider.Team], error)
	TeamStatistics(ctx context.Context, f apisports.TeamStatisticsFilter) (*provider.Envelope[*provider.TeamStatistics], error)
	Players(ctx context.Context, f apisports.PlayerFilter) (*provider.Envelope[[]provider.Player], error)
	Games(ctx context.Context, f apisports.GameFilter) (*provider.Envelope[[]provider.Game], error)
	TeamGameStatistics(ctx context.Context, f apisports.GameStatsFilter) (*provider.Envelope[[]provider.TeamGameStatistics], error)
	PlayerGameStatistics(ctx context.Context, f apisports.PlayerGameStatsFilter) (*provider.Envelope[[]provider.PlayerGameStatistics], error)
	HeadToHead(ctx context.Context, teamA, teamB int, f apisports.HeadToHeadFilter) (*provider.Envelope[[]provider.Game], error)
	CheckReachability(ctx context.Context) bool
}

// Collector is the orchestrator as seen by the control endpoints. Launch
// and RunHistorical claim the collector atomically and return
// collector.ErrAlreadyRunning when it is busy.
type Collector interface {
	Launch(ctx context.Context) error
	Stop()
	Running() bool
	Status() collector.Status
	RunHistorical(ctx context.Context) (collector.HistoricalResult, error)
}

// Deps are the shared dependencies of every handler.
type Deps struct {
	Source    Source
	Collector Collector
	Store     store.Store
	Cache     cache.Cache
	Logger    *slog.Logger

	// BaseContext outlives requests; collection runs started over HTTP
	// are bound to it.
	BaseContext context.Context
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	source    Source
	collector Collector
	store     store.Store
	cache     cache.Cache
	logger    *slog.Logger
	baseCtx   context.Context
}

// New creates a Handler with shared dependencies.
func New(d Deps) *Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.BaseContext == nil {
		d.BaseContext = context.Background()
	}
	if d.Cache == nil {
		d.Cache = cache.NewMemory(false)
	}
	return &Handler{
		source:    d.Source,
		collector: d.Collector,
		store:     d.Store,
		cache:     d.Cache,
		logger:    d.Logger,
		baseCtx:   d.BaseContext,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and docs location.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Hoops Collector API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"collector": map[string]interface{}{
			"running": h.collector.Running(),
		},
	})
}

// HealthCheck reports source reachability and collector state.
// @Summary Health check
// @Description Probes the basketball source. Status is "degraded" when the source is unreachable.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	reachable := h.source.CheckReachability(r.Context())
	status := "healthy"
	if !reachable {
		status = "degraded"
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":            status,
		"source_reachable":  reachable,
		"collector_running": h.collector.Running(),
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies storage connectivity.
// @Summary Storage health check
// @Description Pings the entity store.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn("Storage health check failed", "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns response cache statistics for the configured backend.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(r.Context()),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
