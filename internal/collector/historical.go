package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/albapepper/hoops-collector/internal/config"
	"github.com/albapepper/hoops-collector/internal/coverage"
	"github.com/albapepper/hoops-collector/internal/provider"
	"github.com/albapepper/hoops-collector/internal/provider/apisports"
	"github.com/albapepper/hoops-collector/internal/season"
	"github.com/albapepper/hoops-collector/internal/store"
)

// CollectHistorical runs the leagues phase then the teams phase.
//
// Fetch and per-entity failures are logged and recorded in the result;
// they never abort the pass. An error is returned only when storage is
// unreachable before the pass starts or ctx is cancelled.
func (c *Collector) CollectHistorical(ctx context.Context) (HistoricalResult, error) {
	res := HistoricalResult{RunID: c.currentRunID(), StartedAt: time.Now().UTC()}
	start := time.Now()

	if err := c.store.Ping(ctx); err != nil {
		c.metrics.ObservePass("historical", true, time.Since(start))
		return res, fmt.Errorf("storage unavailable: %w", err)
	}

	c.logger.Info("Starting historical data collection", "run_id", res.RunID)

	c.collectLeagues(ctx, &res)
	c.logger.Info("Leagues collected", "count", res.LeaguesUpserted, "seasons", res.SeasonsUpserted)
	if err := ctx.Err(); err != nil {
		return res, err
	}

	c.collectTeams(ctx, &res)
	c.logger.Info("Teams collected", "count", res.TeamsUpserted)
	if err := ctx.Err(); err != nil {
		return res, err
	}

	res.FinishedAt = time.Now().UTC()
	c.metrics.ObservePass("historical", len(res.Errors) > 0, time.Since(start))
	c.recordHistorical(res)
	c.logger.Info("Historical data collection completed", "run_id", res.RunID, "summary", res.Summary())
	return res, nil
}

// collectLeagues is phase A: pick a season, fetch covered leagues for it
// and persist each league with its seasons.
func (c *Collector) collectLeagues(ctx context.Context, res *HistoricalResult) {
	seasons, err := c.source.Seasons(ctx)
	if err != nil {
		c.logger.Warn("No seasons data available from source", "error", err)
		res.AddErrorf("fetch seasons: %v", err)
		return
	}
	c.logger.Info("Available seasons from source", "count", len(seasons.Response))

	label := season.Select(seasons.Response)
	res.Season = label
	c.logger.Info("Selected season for collection", "season", label)

	leagues, err := c.source.Leagues(ctx, apisports.LeagueFilter{Season: label}, true)
	if err != nil {
		c.logger.Warn("No leagues data available from source", "season", label, "error", err)
		res.AddErrorf("fetch leagues for %s: %v", label, err)
		return
	}
	c.logger.Info("Found leagues with statistics coverage", "count", leagues.Results)

	for _, l := range leagues.Response {
		if ctx.Err() != nil {
			return
		}
		if err := c.saveLeague(ctx, l, res); err != nil {
			c.logger.Error("Failed to save league", "league_id", l.ID, "league_name", l.Name, "error", err)
			res.AddErrorf("save league %d: %v", l.ID, err)
			continue
		}
		res.LeaguesUpserted++
	}
}

func (c *Collector) saveLeague(ctx context.Context, l provider.League, res *HistoricalResult) error {
	row, created, err := c.store.Leagues().GetOrCreate(ctx, store.League{
		ID:          l.ID,
		Name:        l.Name,
		Type:        l.Type,
		Logo:        l.Logo,
		CountryID:   l.Country.ID,
		CountryName: l.Country.Name,
		CountryCode: l.Country.Code,
		CountryFlag: l.Country.Flag,
	})
	c.metrics.RecordUpsert("league", created, err)
	if err != nil {
		return err
	}
	if created {
		res.LeaguesCreated++
	}

	saved := 0
	for _, s := range l.Seasons {
		if err := c.saveSeason(ctx, row.ID, s, res); err != nil {
			c.logger.Error("Failed to save season", "league_id", row.ID, "season", s.Season.Label, "error", err)
			res.AddErrorf("save season %d/%s: %v", row.ID, s.Season.Label, err)
			continue
		}
		saved++
	}
	c.logger.Info("League saved", "league_id", row.ID, "name", row.Name, "created", created, "seasons", saved)
	return nil
}

func (c *Collector) saveSeason(ctx context.Context, leagueID int, s provider.Season, res *HistoricalResult) error {
	flags := coverage.FlagsFor(s.Coverage)
	row := store.Season{
		LeagueID:       leagueID,
		Label:          s.Season.Label,
		HasTeamStats:   flags.TeamStats,
		HasPlayerStats: flags.PlayerStats,
		HasStandings:   flags.Standings,
		HasOdds:        flags.Odds,
	}

	var err error
	if row.StartDate, err = season.ParseDate(s.Start); err != nil {
		c.logger.Warn("Failed to parse season start date", "league_id", leagueID, "season", s.Season.Label, "error", err)
	}
	if row.EndDate, err = season.ParseDate(s.End); err != nil {
		c.logger.Warn("Failed to parse season end date", "league_id", leagueID, "season", s.Season.Label, "error", err)
	}

	_, created, err := c.store.Seasons().GetOrCreate(ctx, row)
	c.metrics.RecordUpsert("season", created, err)
	if err != nil {
		return err
	}
	res.SeasonsUpserted++
	if created {
		res.SeasonsCreated++
	}
	return nil
}

// collectTeams is phase B: for each target league, fetch teams for its
// latest stored season and persist them.
func (c *Collector) collectTeams(ctx context.Context, res *HistoricalResult) {
	for _, target := range c.targets {
		if ctx.Err() != nil {
			return
		}
		c.collectLeagueTeams(ctx, target, res)
	}
}

func (c *Collector) collectLeagueTeams(ctx context.Context, target config.Target, res *HistoricalResult) {
	log := c.logger.With("league_id", target.ID, "league_name", target.Name)

	stored, err := c.store.Seasons().ByLeague(ctx, target.ID)
	if err != nil {
		log.Error("Failed to load stored seasons", "error", err)
		res.AddErrorf("seasons for league %d: %v", target.ID, err)
		return
	}
	labels := make([]string, 0, len(stored))
	for _, s := range stored {
		labels = append(labels, s.Label)
	}
	latest, ok := season.Latest(labels)
	if !ok {
		log.Warn("No seasons found for league")
		return
	}
	log.Info("Collecting teams", "season", latest)

	teams, err := c.source.Teams(ctx, apisports.TeamFilter{League: target.ID, Season: latest})
	if err != nil {
		log.Error("Failed to fetch teams", "season", latest, "error", err)
		res.AddErrorf("fetch teams for league %d season %s: %v", target.ID, latest, err)
		return
	}
	if len(teams.Response) == 0 {
		log.Warn("No teams data", "season", latest)
		return
	}

	saved := 0
	for _, t := range teams.Response {
		if ctx.Err() != nil {
			return
		}
		row := store.Team{
			ID:       t.ID,
			Name:     t.Name,
			Logo:     t.Logo,
			National: t.National,
		}
		if t.Country != nil {
			row.Country = t.Country.Name
			row.Code = t.Country.Code
		}
		_, created, err := c.store.Teams().GetOrCreate(ctx, row)
		c.metrics.RecordUpsert("team", created, err)
		if err != nil {
			log.Error("Failed to save team", "team_id", t.ID, "error", err)
			res.AddErrorf("save team %d: %v", t.ID, err)
			continue
		}
		saved++
		if created {
			res.TeamsCreated++
		}
		log.Debug("Team saved", "team_id", t.ID, "name", t.Name, "created", created)
	}
	res.TeamsUpserted += saved
	log.Info("Teams saved", "count", saved, "season", latest)
}
