package apisports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/albapepper/hoops-collector/internal/coverage"
	"github.com/albapepper/hoops-collector/internal/provider"
)

// Seasons returns every season identifier the source knows.
func (c *Client) Seasons(ctx context.Context) (*provider.Envelope[[]provider.SeasonID], error) {
	return fetch[[]provider.SeasonID](ctx, c, "seasons", "/seasons", nil)
}

func (c *Client) Countries(ctx context.Context, f CountryFilter) (*provider.Envelope[[]provider.Country], error) {
	return fetch[[]provider.Country](ctx, c, "countries", "/countries", f.values())
}

// Leagues returns leagues matching f. With applyCoverage, only seasons with
// complete box-score coverage are kept, leagues left without seasons are
// dropped, and Results is recounted.
func (c *Client) Leagues(ctx context.Context, f LeagueFilter, applyCoverage bool) (*provider.Envelope[[]provider.League], error) {
	env, err := fetch[[]provider.League](ctx, c, "leagues", "/leagues", f.values())
	if err != nil {
		return nil, err
	}
	if applyCoverage {
		before := len(env.Response)
		env.Response = coverage.Filter(env.Response)
		env.Results = len(env.Response)
		c.logger.Debug("Filtered leagues by statistics coverage",
			"original", before, "filtered", env.Results)
	}
	return env, nil
}

// Teams requires at least one filter.
func (c *Client) Teams(ctx context.Context, f TeamFilter) (*provider.Envelope[[]provider.Team], error) {
	params := f.values()
	if len(params) == 0 {
		return nil, c.reject("/teams", slog.LevelWarn, "Teams endpoint requires at least one parameter", params)
	}
	return fetch[[]provider.Team](ctx, c, "teams", "/teams", params)
}

// TeamStatistics returns a team's season aggregate. The source answers
// with an empty list instead of an object when it has nothing, which
// yields a nil Response.
func (c *Client) TeamStatistics(ctx context.Context, f TeamStatisticsFilter) (*provider.Envelope[*provider.TeamStatistics], error) {
	params := f.values()
	if f.League == 0 || f.Season == "" || f.Team == 0 {
		return nil, c.reject("/statistics", slog.LevelError, "League, season and team parameters are required", params)
	}
	raw, err := fetch[json.RawMessage](ctx, c, "team statistics", "/statistics", params)
	if err != nil {
		return nil, err
	}
	out := &provider.Envelope[*provider.TeamStatistics]{
		Get:        raw.Get,
		Parameters: raw.Parameters,
		Results:    raw.Results,
	}
	body := bytes.TrimSpace(raw.Response)
	if len(body) > 0 && body[0] == '{' {
		var stats provider.TeamStatistics
		if err := json.Unmarshal(body, &stats); err != nil {
			c.logger.Error("Failed to fetch team statistics", "params", params.Encode(), "error", err)
			return nil, fmt.Errorf("%w: decode team statistics: %w", ErrUnavailable, err)
		}
		out.Response = &stats
	}
	c.logger.Info("Statistics API response", "results", out.Results, "found", out.Response != nil)
	return out, nil
}

// Players requires at least one filter.
func (c *Client) Players(ctx context.Context, f PlayerFilter) (*provider.Envelope[[]provider.Player], error) {
	params := f.values()
	if len(params) == 0 {
		return nil, c.reject("/players", slog.LevelWarn, "Players endpoint requires at least one parameter", params)
	}
	return fetch[[]provider.Player](ctx, c, "players", "/players", params)
}

// Games requires at least one filter, and a season whenever a league is set.
func (c *Client) Games(ctx context.Context, f GameFilter) (*provider.Envelope[[]provider.Game], error) {
	params := f.values()
	if f.League != 0 && f.Season == "" {
		return nil, c.reject("/games", slog.LevelError, "Season parameter is required when using league filter", params)
	}
	if len(params) == 0 {
		return nil, c.reject("/games", slog.LevelWarn, "Games endpoint requires at least one parameter", params)
	}
	return fetch[[]provider.Game](ctx, c, "games", "/games", params)
}

// LiveGames returns today's (UTC) games whose status is in progress.
func (c *Client) LiveGames(ctx context.Context) (*provider.Envelope[[]provider.Game], error) {
	env, err := c.Games(ctx, GameFilter{Date: c.now().UTC().Format("2006-01-02")})
	if err != nil {
		return nil, err
	}
	live := make([]provider.Game, 0, len(env.Response))
	for _, g := range env.Response {
		if g.Status.IsLive() {
			live = append(live, g)
		}
	}
	env.Response = live
	env.Results = len(live)
	return env, nil
}

// TeamGameStatistics returns team box scores for one game or up to
// MaxGameIDs games.
func (c *Client) TeamGameStatistics(ctx context.Context, f GameStatsFilter) (*provider.Envelope[[]provider.TeamGameStatistics], error) {
	params := f.values()
	if err := c.checkGameIDs("/games/statistics/teams", "Teams statistics", f.ID, f.IDs, params); err != nil {
		return nil, err
	}
	return fetch[[]provider.TeamGameStatistics](ctx, c, "teams statistics", "/games/statistics/teams", params)
}

// PlayerGameStatistics returns player box scores. A player filter requires
// a season.
func (c *Client) PlayerGameStatistics(ctx context.Context, f PlayerGameStatsFilter) (*provider.Envelope[[]provider.PlayerGameStatistics], error) {
	const path = "/games/statistics/players"
	params := f.values()
	if len(params) == 0 {
		return nil, c.reject(path, slog.LevelWarn, "Players statistics endpoint requires at least one parameter", params)
	}
	if len(f.IDs) > MaxGameIDs {
		return nil, c.reject(path, slog.LevelError, fmt.Sprintf("Maximum %d game ids allowed, got %d", MaxGameIDs, len(f.IDs)), params)
	}
	if f.Player != 0 && f.Season == "" {
		return nil, c.reject(path, slog.LevelError, "Season parameter is required when using player filter", params)
	}
	return fetch[[]provider.PlayerGameStatistics](ctx, c, "players statistics", path, params)
}

// HeadToHead returns the game history between two teams.
func (c *Client) HeadToHead(ctx context.Context, teamA, teamB int, f HeadToHeadFilter) (*provider.Envelope[[]provider.Game], error) {
	params := f.values(teamA, teamB)
	if teamA == 0 || teamB == 0 {
		return nil, c.reject("/games", slog.LevelError, "Both team ids are required for head to head", params)
	}
	return fetch[[]provider.Game](ctx, c, "head to head", "/games", params)
}

func (c *Client) checkGameIDs(path, name string, id int, ids []int, params url.Values) error {
	if id == 0 && len(ids) == 0 {
		return c.reject(path, slog.LevelWarn, name+" endpoint requires at least one parameter", params)
	}
	if len(ids) > MaxGameIDs {
		return c.reject(path, slog.LevelError, fmt.Sprintf("Maximum %d game ids allowed, got %d", MaxGameIDs, len(ids)), params)
	}
	return nil
}
