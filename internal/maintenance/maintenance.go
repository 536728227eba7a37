// Package maintenance runs periodic background tasks as Go tickers: the
// source reachability probe and the optional historical refresh.
package maintenance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/albapepper/hoops-collector/internal/collector"
	"github.com/albapepper/hoops-collector/internal/metrics"
)

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	ProbeInterval   time.Duration // Source reachability check
	RefreshInterval time.Duration // Historical pass outside the collector loop
}

// DefaultConfig returns production defaults. Historical refresh is off.
func DefaultConfig() Config {
	return Config{
		ProbeInterval: 5 * time.Minute,
	}
}

// Prober reports whether the remote source answers.
type Prober interface {
	CheckReachability(ctx context.Context) bool
}

// Refresher runs a standalone historical pass, returning
// collector.ErrAlreadyRunning when the collector is busy.
type Refresher interface {
	RunHistorical(ctx context.Context) (collector.HistoricalResult, error)
}

// Tasks are the dependencies of the maintenance tickers. Nil entries
// disable the matching task.
type Tasks struct {
	Source    Prober
	Collector Refresher
	Metrics   *metrics.Recorder
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, tasks Tasks, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"probe", cfg.ProbeInterval,
		"refresh", cfg.RefreshInterval)

	tickers := make([]*time.Ticker, 0, 2)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	if cfg.ProbeInterval > 0 && tasks.Source != nil {
		probe(ctx, tasks.Source, tasks.Metrics, logger)
		t := time.NewTicker(cfg.ProbeInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { probe(ctx, tasks.Source, tasks.Metrics, logger) })
	}

	if cfg.RefreshInterval > 0 && tasks.Collector != nil {
		t := time.NewTicker(cfg.RefreshInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { refresh(ctx, tasks.Collector, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

// probe records source reachability on the source_up gauge.
func probe(ctx context.Context, src Prober, rec *metrics.Recorder, logger *slog.Logger) bool {
	up := src.CheckReachability(ctx)
	rec.SetSourceUp(up)
	if up {
		logger.Debug("Probe: basketball source reachable")
	} else {
		logger.Warn("Probe: basketball source unreachable")
	}
	return up
}

// refresh re-runs the historical pass unless the collector is busy,
// since Start already begins with one.
func refresh(ctx context.Context, c Refresher, logger *slog.Logger) bool {
	res, err := c.RunHistorical(ctx)
	if errors.Is(err, collector.ErrAlreadyRunning) {
		logger.Debug("Refresh: collector running, skipped")
		return false
	}
	if err != nil {
		logger.Warn("Refresh: historical pass failed", "error", err)
		return false
	}
	logger.Info("Refresh: historical pass complete", "summary", res.Summary())
	return true
}
