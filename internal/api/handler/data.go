package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/hoops-collector/internal/api/respond"
	"github.com/albapepper/hoops-collector/internal/store"
)

func (h *Handler) writeStoreError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respond.WriteError(w, http.StatusNotFound, respond.CodeNotFound, op+": not found")
		return
	}
	h.logger.Error("Storage read failed", "op", op, "error", err)
	respond.WriteError(w, http.StatusInternalServerError, respond.CodeStorageError, "Storage read failed")
}

// ListLeagues pages through stored leagues.
// @Summary Stored leagues
// @Tags data
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} store.League
// @Failure 500 {object} respond.ErrorResponse
// @Router /data/leagues [get]
func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	page := q.page()
	if q.failed(w) {
		return
	}
	rows, err := h.store.Leagues().List(r.Context(), page)
	if err != nil {
		h.writeStoreError(w, "list leagues", err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, rows)
}

// GetLeague returns one stored league.
// @Summary Stored league
// @Tags data
// @Produce json
// @Param leagueID path int true "League id"
// @Success 200 {object} store.League
// @Failure 404 {object} respond.ErrorResponse
// @Router /data/leagues/{leagueID} [get]
func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "leagueID")
	if !ok {
		return
	}
	l, err := h.store.Leagues().Get(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, "get league", err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, l)
}

// GetLeagueMapping returns the external mapping of a stored league.
// @Summary League mapping
// @Tags data
// @Produce json
// @Param leagueID path int true "League id"
// @Success 200 {object} store.LeagueMapping
// @Failure 404 {object} respond.ErrorResponse
// @Router /data/leagues/{leagueID}/mapping [get]
func (h *Handler) GetLeagueMapping(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "leagueID")
	if !ok {
		return
	}
	m, err := h.store.Aliases().MappingByLeague(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, "league mapping", err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, m)
}

// ListSeasons pages through stored seasons, or lists one league's seasons
// when league_id is set.
// @Summary Stored seasons
// @Tags data
// @Produce json
// @Param league_id query int false "League id"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} store.Season
// @Failure 500 {object} respond.ErrorResponse
// @Router /data/seasons [get]
func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	leagueID := q.int("league_id")
	page := q.page()
	if q.failed(w) {
		return
	}

	var (
		rows []store.Season
		err  error
	)
	if leagueID > 0 {
		rows, err = h.store.Seasons().ByLeague(r.Context(), leagueID)
	} else {
		rows, err = h.store.Seasons().List(r.Context(), page)
	}
	if err != nil {
		h.writeStoreError(w, "list seasons", err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, rows)
}

// ListTeams pages through stored teams.
// @Summary Stored teams
// @Tags data
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} store.Team
// @Failure 500 {object} respond.ErrorResponse
// @Router /data/teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	page := q.page()
	if q.failed(w) {
		return
	}
	rows, err := h.store.Teams().List(r.Context(), page)
	if err != nil {
		h.writeStoreError(w, "list teams", err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, rows)
}

// ListGames pages through stored games. live=true returns in-progress games only.
// @Summary Stored games
// @Tags data
// @Produce json
// @Param live query bool false "Only in-progress games"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} store.Game
// @Failure 500 {object} respond.ErrorResponse
// @Router /data/games [get]
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	live := q.bool("live", false)
	page := q.page()
	if q.failed(w) {
		return
	}

	var (
		rows []store.Game
		err  error
	)
	if live {
		rows, err = h.store.Games().LiveGames(r.Context())
	} else {
		rows, err = h.store.Games().List(r.Context(), page)
	}
	if err != nil {
		h.writeStoreError(w, "list games", err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, rows)
}

// GetTeamAlias resolves an alternative team name.
// @Summary Team alias lookup
// @Tags data
// @Produce json
// @Param name query string true "Alias, case-insensitive"
// @Success 200 {object} store.TeamAlias
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /data/aliases [get]
func (h *Handler) GetTeamAlias(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidParameter, "name query parameter is required")
		return
	}
	a, err := h.store.Aliases().AliasByName(r.Context(), name)
	if err != nil {
		h.writeStoreError(w, "team alias", err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, a)
}

func pathID(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	raw := chi.URLParam(r, key)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidParameter, key+" must be a positive integer")
		return 0, false
	}
	return id, true
}
