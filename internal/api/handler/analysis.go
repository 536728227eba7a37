package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/albapepper/hoops-collector/internal/analytics"
	"github.com/albapepper/hoops-collector/internal/cache"
	"github.com/albapepper/hoops-collector/internal/provider/apisports"
)

// GetHeadToHeadAnalysis computes dominance, recent meetings and the venue
// split for a pairing.
// @Summary Head-to-head analysis
// @Tags analysis
// @Produce json
// @Param team1_id query int true "First team id"
// @Param team2_id query int true "Second team id"
// @Param league query int false "League id"
// @Param season query string false "Season label"
// @Success 200 {object} analytics.Report
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/h2h/analysis [get]
func (h *Handler) GetHeadToHeadAnalysis(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	team1, team2 := q.int("team1_id"), q.int("team2_id")
	f := headToHeadFilter(q)
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLStatistics, func(ctx context.Context) (interface{}, error) {
		env, err := h.source.HeadToHead(ctx, team1, team2, f)
		if err != nil {
			return nil, err
		}
		report, ok := analytics.Analyze(env.Response, team1, team2)
		if !ok {
			return nil, errNoData
		}
		return report, nil
	})
}

// GetPrediction forecasts the next meeting with home_team_id hosting.
// @Summary Next meeting prediction
// @Tags analysis
// @Produce json
// @Param team1_id query int true "First team id"
// @Param team2_id query int true "Second team id"
// @Param home_team_id query int true "Host of the next meeting"
// @Success 200 {object} analytics.Prediction
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/h2h/prediction [get]
func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	team1, team2, home := q.int("team1_id"), q.int("team2_id"), q.int("home_team_id")
	f := headToHeadFilter(q)
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLStatistics, func(ctx context.Context) (interface{}, error) {
		if home != team1 && home != team2 {
			return nil, fmt.Errorf("%w: home_team_id must be team1_id or team2_id", apisports.ErrInvalidRequest)
		}
		env, err := h.source.HeadToHead(ctx, team1, team2, f)
		if err != nil {
			return nil, err
		}
		if len(env.Response) == 0 {
			return nil, errNoData
		}
		st := analytics.HeadToHead(env.Response, team1, team2)
		return analytics.PredictNext(st, analytics.VenueSplit(env.Response, team1, team2), home), nil
	})
}

// GetTeamForm evaluates a team's most recent games.
// @Summary Team form
// @Tags analysis
// @Produce json
// @Param team query int true "Team id"
// @Param season query string false "Season label"
// @Param league query int false "League id (requires season)"
// @Success 200 {object} analytics.Form
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /teams/form [get]
func (h *Handler) GetTeamForm(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := gameFilter(q)
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLGames, func(ctx context.Context) (interface{}, error) {
		if f.Team == 0 {
			return nil, fmt.Errorf("%w: team is required", apisports.ErrInvalidRequest)
		}
		env, err := h.source.Games(ctx, f)
		if err != nil {
			return nil, err
		}
		return analytics.TeamForm(analytics.FilterFinished(env.Response), f.Team), nil
	})
}

// GetTeamStrength derives a team's season profile from its aggregate.
// @Summary Team strength
// @Tags analysis
// @Produce json
// @Param league query int true "League id"
// @Param season query string true "Season label"
// @Param team query int true "Team id"
// @Success 200 {object} analytics.Strength
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /statistics/strength [get]
func (h *Handler) GetTeamStrength(w http.ResponseWriter, r *http.Request) {
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
		return analytics.TeamStrength(*env.Response), nil
	})
}

// gameImpact is one team's rated box score.
type gameImpact struct {
	GameID int                  `json:"game_id"`
	TeamID int                  `json:"team_id"`
	Impact analytics.GameImpact `json:"impact"`
}

// GetTeamImpact rates team box scores.
// @Summary Team game impact
// @Tags analysis
// @Produce json
// @Param id query int false "Game id"
// @Param ids query string false "Hyphen-joined game ids, at most 20"
// @Success 200 {array} gameImpact
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/statistics/teams/impact [get]
func (h *Handler) GetTeamImpact(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := apisports.GameStatsFilter{ID: q.int("id"), IDs: q.ids("ids")}
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLGames, func(ctx context.Context) (interface{}, error) {
		env, err := h.source.TeamGameStatistics(ctx, f)
		if err != nil {
			return nil, err
		}
		out := make([]gameImpact, 0, len(env.Response))
		for _, s := range env.Response {
			out = append(out, gameImpact{GameID: s.Game.ID, TeamID: s.Team.ID, Impact: analytics.Impact(s)})
		}
		return out, nil
	})
}

// GetTopPerformers ranks player box scores.
// @Summary Top performers
// @Tags analysis
// @Produce json
// @Param id query int false "Game id"
// @Param ids query string false "Hyphen-joined game ids, at most 20"
// @Param metric query string false "points, rebounds, assists or efficiency" default(points)
// @Param limit query int false "Number of lines" default(10)
// @Success 200 {array} analytics.Performer
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/statistics/players/top [get]
func (h *Handler) GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := playerGameStatsFilter(q)
	metric, limit := q.str("metric"), q.int("limit")
	if q.failed(w) {
		return
	}
	if limit <= 0 {
		limit = analytics.RecentLimit
	}
	h.serveCached(w, r, cache.TTLGames, func(ctx context.Context) (interface{}, error) {
		env, err := h.source.PlayerGameStatistics(ctx, f)
		if err != nil {
			return nil, err
		}
		return analytics.TopPerformers(env.Response, metric, limit), nil
	})
}

// GetPlayerAverages aggregates a player's box scores over a season.
// @Summary Player season averages
// @Tags analysis
// @Produce json
// @Param player query int true "Player id"
// @Param season query string true "Season label"
// @Success 200 {object} analytics.SeasonAverages
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /games/statistics/players/averages [get]
func (h *Handler) GetPlayerAverages(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := playerGameStatsFilter(q)
	if q.failed(w) {
		return
	}
	h.serveCached(w, r, cache.TTLStatistics, func(ctx context.Context) (interface{}, error) {
		if f.Player == 0 {
			return nil, fmt.Errorf("%w: player is required", apisports.ErrInvalidRequest)
		}
		env, err := h.source.PlayerGameStatistics(ctx, f)
		if err != nil {
			return nil, err
		}
		avg, ok := analytics.PlayerAverages(env.Response, f.Player)
		if !ok {
			return nil, errNoData
		}
		return avg, nil
	})
}
