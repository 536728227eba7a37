package collector

import (
	"context"
	"time"
)

// CollectLive fetches in-progress games and walks stored live games.
// Failures, panics included, are logged and recorded; the pass never fails
// and the run loop keeps ticking.
//
// Games and box scores are not persisted yet: each live game is logged and
// the per-game statistics step is a placeholder.
// TODO: upsert live games into the games table once season ids can be
// resolved from a game's league season label.
func (c *Collector) CollectLive(ctx context.Context) LiveResult {
	res := LiveResult{RunID: c.currentRunID(), StartedAt: time.Now().UTC()}
	start := time.Now()
	c.logger.Info("Collecting live data")

	c.guard(&res, "live games", func() {
		games, err := c.source.LiveGames(ctx)
		if err != nil {
			c.logger.Error("Failed to update live games", "error", err)
			res.AddErrorf("fetch live games: %v", err)
			return
		}
		if len(games.Response) == 0 {
			c.logger.Info("No live games found")
			return
		}
		for _, g := range games.Response {
			c.logger.Debug("Live game",
				"game_id", g.ID,
				"home", g.Teams.Home.Name,
				"away", g.Teams.Away.Name,
				"status", g.Status.Short,
			)
			res.LiveGames++
		}
		c.logger.Info("Live games updated", "count", res.LiveGames)
	})

	c.guard(&res, "live statistics", func() {
		stored, err := c.store.Games().LiveGames(ctx)
		if err != nil {
			c.logger.Error("Failed to collect live statistics", "error", err)
			res.AddErrorf("stored live games: %v", err)
			return
		}
		for _, g := range stored {
			c.logger.Debug("Collecting statistics for game", "game_id", g.ID)
			res.Statistics++
		}
		c.logger.Info("Live statistics collected", "games", res.Statistics)
	})

	res.FinishedAt = time.Now().UTC()
	c.metrics.ObservePass("live", len(res.Errors) > 0, time.Since(start))
	c.recordLive(res)
	return res
}

// guard runs one live step and turns a panic into a recorded error.
func (c *Collector) guard(res *LiveResult, step string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Live step panicked", "step", step, "panic", r)
			res.AddErrorf("%s panicked: %v", step, r)
		}
	}()
	fn()
}
