package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/hoops-collector/internal/api/handler"
	"github.com/albapepper/hoops-collector/internal/config"
	"github.com/albapepper/hoops-collector/internal/metrics"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(deps handler.Deps, rec *metrics.Recorder, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(MetricsMiddleware(rec))
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	h := handler.New(deps)

	// --- Routes ---

	r.Get("/", h.Root)
	r.Handle("/metrics", rec.Handler())
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Collection control
	r.Route("/collection", func(r chi.Router) {
		r.Post("/start", h.StartCollection)
		r.Post("/stop", h.StopCollection)
		r.Get("/status", h.CollectionStatus)
		r.Post("/historical", h.CollectHistorical)
	})

	// Read-through source endpoints
	r.Get("/seasons", h.GetSeasons)
	r.Get("/countries", h.GetCountries)
	r.Get("/leagues", h.GetLeagues)
	r.Get("/teams", h.GetTeams)
	r.Get("/teams/form", h.GetTeamForm)
	r.Get("/statistics", h.GetTeamStatistics)
	r.Get("/statistics/strength", h.GetTeamStrength)
	r.Get("/players", h.GetPlayers)
	r.Route("/games", func(r chi.Router) {
		r.Get("/", h.GetGames)
		r.Get("/statistics/teams", h.GetTeamGameStatistics)
		r.Get("/statistics/teams/impact", h.GetTeamImpact)
		r.Get("/statistics/players", h.GetPlayerGameStatistics)
		r.Get("/statistics/players/top", h.GetTopPerformers)
		r.Get("/statistics/players/averages", h.GetPlayerAverages)
		r.Get("/h2h", h.GetHeadToHead)
		r.Get("/h2h/analysis", h.GetHeadToHeadAnalysis)
		r.Get("/h2h/prediction", h.GetPrediction)
	})

	// Stored data
	r.Route("/data", func(r chi.Router) {
		r.Get("/leagues", h.ListLeagues)
		r.Get("/leagues/{leagueID}", h.GetLeague)
		r.Get("/leagues/{leagueID}/mapping", h.GetLeagueMapping)
		r.Get("/seasons", h.ListSeasons)
		r.Get("/teams", h.ListTeams)
		r.Get("/games", h.ListGames)
		r.Get("/aliases", h.GetTeamAlias)
	})

	return r
}
