package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/albapepper/hoops-collector/internal/api/respond"
	"github.com/albapepper/hoops-collector/internal/cache"
	"github.com/albapepper/hoops-collector/internal/provider/apisports"
)

// errNoData marks an upstream answer with nothing to serve.
var errNoData = errors.New("no data")

// serveCached answers from the cache when possible, otherwise calls fetch,
// caches the encoded result under the request URI and writes it.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, ttl time.Duration, fetch func(ctx context.Context) (interface{}, error)) {
	key := r.URL.Path + "?" + r.URL.Query().Encode()

	if data, etag, ok := h.cache.Get(r.Context(), key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := fetch(r.Context())
	if err != nil {
		h.writeSourceError(w, err)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("Failed to encode response", "path", r.URL.Path, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "Failed to encode response")
		return
	}

	etag := h.cache.Set(r.Context(), key, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

// writeSourceError maps caller faults to 400 and source faults to 502.
// The client has already logged the failure with its parameters.
func (h *Handler) writeSourceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errNoData):
		respond.WriteError(w, http.StatusNotFound, respond.CodeNotFound, "No data found for the given parameters")
	case errors.Is(err, apisports.ErrInvalidRequest):
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidRequest, err.Error())
	default:
		respond.WriteErrorDetail(w, http.StatusBadGateway, respond.CodeSourceUnavailable,
			"Basketball source unavailable", err.Error())
	}
}

// GetSeasons lists the source's season identifiers.
// @Summary List seasons
// @Tags source
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /seasons [get]
func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.TTLReference, func(ctx context.Context) (interface{}, error) {
		return h.source.Seasons(ctx)
	})
}

// GetCountries lists countries.
// @Summary List countries
// @Tags source
// @Produce json
// @Param id query int false "Country id"
// @Param name query string false "Country name"
// @Param code query string false "Country code"
// @Param search query string false "Name search"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /countries [get]
func (h *Handler) GetCountries(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := apisports.CountryFilter{ID: q.int("id"), Name: q.str("name"), Code: q.str("code"), Search: q.str("search")}
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLReference, func(ctx context.Context) (interface{}, error) {
		return h.source.Countries(ctx, f)
	})
}

// GetLeagues lists leagues, by default only those with full statistics coverage.
// @Summary List leagues
// @Tags source
// @Produce json
// @Param id query int false "League id"
// @Param name query string false "League name"
// @Param country_id query int false "Country id"
// @Param country query string false "Country name"
// @Param type query string false "league or cup"
// @Param season query string false "Season label"
// @Param search query string false "Name search"
// @Param code query string false "Country code"
// @Param filter_by_stats query bool false "Keep only seasons with team and player statistics" default(true)
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /leagues [get]
func (h *Handler) GetLeagues(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := apisports.LeagueFilter{
		ID:        q.int("id"),
		Name:      q.str("name"),
		CountryID: q.int("country_id"),
		Country:   q.str("country"),
		Type:      q.str("type"),
		Season:    q.str("season"),
		Search:    q.str("search"),
		Code:      q.str("code"),
	}
	applyCoverage := q.bool("filter_by_stats", true)
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLReference, func(ctx context.Context) (interface{}, error) {
		return h.source.Leagues(ctx, f, applyCoverage)
	})
}

// GetTeams lists teams. At least one filter is required.
// @Summary List teams
// @Tags source
// @Produce json
// @Param id query int false "Team id"
// @Param name query string false "Team name"
// @Param country_id query int false "Country id"
// @Param country query string false "Country name"
// @Param league query int false "League id"
// @Param season query string false "Season label"
// @Param search query string false "Name search"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := apisports.TeamFilter{
		ID:        q.int("id"),
		Name:      q.str("name"),
		CountryID: q.int("country_id"),
		Country:   q.str("country"),
		League:    q.int("league"),
		Season:    q.str("season"),
		Search:    q.str("search"),
	}
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLTeams, func(ctx context.Context) (interface{}, error) {
		return h.source.Teams(ctx, f)
	})
}

func teamStatisticsFilter(q *query) apisports.TeamStatisticsFilter {
	return apisports.TeamStatisticsFilter{
		League: q.int("league"),
		Season: q.str("season"),
		Team:   q.int("team"),
		Date:   q.str("date"),
	}
}

// GetTeamStatistics returns a team's season aggregate.
// @Summary Team season statistics
// @Tags source
// @Produce json
// @Param league query int true "League id"
// @Param season query string true "Season label"
// @Param team query int true "Team id"
// @Param date query string false "Cut-off date YYYY-MM-DD"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /statistics [get]
func (h *Handler) GetTeamStatistics(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := teamStatisticsFilter(q)
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLStatistics, func(ctx context.Context) (interface{}, error) {
		env, err := h.source.TeamStatistics(ctx, f)
		if err != nil {
			return nil, err
		}
		if env.Response == nil {
			return nil, errNoData
		}
		return env, nil
	})
}

// GetPlayers lists players.
// @Summary List players
// @Tags source
// @Produce json
// @Param id query int false "Player id"
// @Param team query int false "Team id"
// @Param season query string false "Season label"
// @Param search query string false "Name search"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /players [get]
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := apisports.PlayerFilter{ID: q.int("id"), Team: q.int("team"), Season: q.str("season"), Search: q.str("search")}
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLTeams, func(ctx context.Context) (interface{}, error) {
		return h.source.Players(ctx, f)
	})
}

func gameFilter(q *query) apisports.GameFilter {
	return apisports.GameFilter{
		ID:       q.int("id"),
		Date:     q.str("date"),
		League:   q.int("league"),
		Season:   q.str("season"),
		Team:     q.int("team"),
		Timezone: q.str("timezone"),
	}
}

// GetGames lists games.
// @Summary List games
// @Tags source
// @Produce json
// @Param id query int false "Game id"
// @Param date query string false "Date YYYY-MM-DD"
// @Param league query int false "League id (requires season)"
// @Param season query string false "Season label"
// @Param team query int false "Team id"
// @Param timezone query string false "IANA timezone"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games [get]
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := gameFilter(q)
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLGames, func(ctx context.Context) (interface{}, error) {
		return h.source.Games(ctx, f)
	})
}

// GetTeamGameStatistics returns team box scores.
// @Summary Team box scores
// @Tags source
// @Produce json
// @Param id query int false "Game id"
// @Param ids query string false "Hyphen-joined game ids, at most 20"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/statistics/teams [get]
func (h *Handler) GetTeamGameStatistics(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := apisports.GameStatsFilter{ID: q.int("id"), IDs: q.ids("ids")}
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLGames, func(ctx context.Context) (interface{}, error) {
		return h.source.TeamGameStatistics(ctx, f)
	})
}

func playerGameStatsFilter(q *query) apisports.PlayerGameStatsFilter {
	return apisports.PlayerGameStatsFilter{
		ID:     q.int("id"),
		IDs:    q.ids("ids"),
		Player: q.int("player"),
		Season: q.str("season"),
	}
}

// GetPlayerGameStatistics returns player box scores.
// @Summary Player box scores
// @Tags source
// @Produce json
// @Param id query int false "Game id"
// @Param ids query string false "Hyphen-joined game ids, at most 20"
// @Param player query int false "Player id (requires season)"
// @Param season query string false "Season label"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/statistics/players [get]
func (h *Handler) GetPlayerGameStatistics(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := playerGameStatsFilter(q)
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLGames, func(ctx context.Context) (interface{}, error) {
		return h.source.PlayerGameStatistics(ctx, f)
	})
}

func headToHeadFilter(q *query) apisports.HeadToHeadFilter {
	return apisports.HeadToHeadFilter{
		Date:     q.str("date"),
		League:   q.int("league"),
		Season:   q.str("season"),
		Timezone: q.str("timezone"),
	}
}

// GetHeadToHead lists the games between two teams.
// @Summary Head-to-head games
// @Tags source
// @Produce json
// @Param team1_id query int true "First team id"
// @Param team2_id query int true "Second team id"
// @Param date query string false "Date YYYY-MM-DD"
// @Param league query int false "League id"
// @Param season query string false "Season label"
// @Param timezone query string false "IANA timezone"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/h2h [get]
func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	team1, team2 := q.int("team1_id"), q.int("team2_id")
	f := headToHeadFilter(q)
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLStatistics, func(ctx context.Context) (interface{}, error) {
		return h.source.HeadToHead(ctx, team1, team2, f)
	})
}
