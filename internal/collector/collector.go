// Package collector drives ingestion: one historical pass (leagues, seasons,
// teams) followed by a recurring live pass until stopped.
//
// The run loop is a single sequential worker. Stop is observed at the top
// of each iteration and during the pause between live passes; it never
// interrupts a pass in flight.
package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/albapepper/hoops-collector/internal/config"
	"github.com/albapepper/hoops-collector/internal/metrics"
	"github.com/albapepper/hoops-collector/internal/provider"
	"github.com/albapepper/hoops-collector/internal/provider/apisports"
	"github.com/albapepper/hoops-collector/internal/store"
)

// DefaultLiveInterval is the pause between live passes.
const DefaultLiveInterval = 60 * time.Second

// ErrAlreadyRunning is returned when a run or standalone historical pass
// is already active.
var ErrAlreadyRunning = errors.New("data collection is already running")

// Source is the subset of the basketball client the collector calls.
type Source interface {
	Seasons(ctx context.Context) (*provider.Envelope[[]provider.SeasonID], error)
	Leagues(ctx context.Context, f apisports.LeagueFilter, applyCoverage bool) (*provider.Envelope[[]provider.League], error)
	Teams(ctx context.Context, f apisports.TeamFilter) (*provider.Envelope[[]provider.Team], error)
	LiveGames(ctx context.Context) (*provider.Envelope[[]provider.Game], error)
}

// Options configures a Collector.
type Options struct {
	// Targets are the leagues whose teams are collected.
	Targets      []config.Target
	LiveInterval time.Duration
	Metrics      *metrics.Recorder
}

// Collector owns its source, store and run state.
type Collector struct {
	source   Source
	store    store.Store
	targets  []config.Target
	interval time.Duration
	metrics  *metrics.Recorder
	logger   *slog.Logger

	// wake interrupts the pause between live passes when Stop is called.
	wake chan struct{}

	mu      sync.Mutex
	running bool
	// busy is set while a standalone historical pass runs.
	busy    bool
	gen     uint64
	status  Status
}

// New creates a stopped Collector.
func New(source Source, st store.Store, opts Options, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.LiveInterval <= 0 {
		opts.LiveInterval = DefaultLiveInterval
	}
	return &Collector{
		source:   source,
		store:    st,
		targets:  append([]config.Target(nil), opts.Targets...),
		interval: opts.LiveInterval,
		metrics:  opts.Metrics,
		logger:   logger,
		wake:     make(chan struct{}, 1),
	}
}

// Start runs the collection loop and blocks until it ends. If a loop or a
// standalone historical pass is already active it logs a warning and
// returns nil immediately.
//
// The historical pass runs once, then live passes repeat every interval
// until Stop or ctx cancellation, both of which end the run with a nil
// error. A historical pass that cannot run, or panics, stops the collector
// and is returned. Live passes recover their own failures.
func (c *Collector) Start(ctx context.Context) error {
	gen, runID, ok := c.begin()
	if !ok {
		c.logger.Warn("Data collection is already running")
		return nil
	}
	return c.run(ctx, gen, runID)
}

// Launch claims the collector and runs the loop in a new goroutine. It
// returns ErrAlreadyRunning without starting anything when the collector
// is busy. Failures of the launched run are logged.
func (c *Collector) Launch(ctx context.Context) error {
	gen, runID, ok := c.begin()
	if !ok {
		return ErrAlreadyRunning
	}
	go c.run(ctx, gen, runID)
	return nil
}

// RunHistorical runs one historical pass outside the loop. It returns
// ErrAlreadyRunning when a loop or another standalone pass is active;
// the check and the claim happen under one lock.
func (c *Collector) RunHistorical(ctx context.Context) (HistoricalResult, error) {
	c.mu.Lock()
	if c.running || c.busy {
		c.mu.Unlock()
		return HistoricalResult{}, ErrAlreadyRunning
	}
	c.busy = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}()
	return c.CollectHistorical(ctx)
}

// begin marks a new run active. It reports false when the collector is
// already busy.
func (c *Collector) begin() (gen uint64, runID string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running || c.busy {
		return 0, "", false
	}
	c.running = true
	c.gen++
	runID = uuid.NewString()
	started := time.Now().UTC()
	c.status.RunID = runID
	c.status.StartedAt = &started
	c.status.LivePasses = 0
	c.status.LastError = ""
	return c.gen, runID, true
}

func (c *Collector) run(ctx context.Context, gen uint64, runID string) (err error) {
	c.metrics.SetCollectorRunning(true)
	c.logger.Info("Starting data collection", "run_id", runID, "live_interval", c.interval)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("collection run %s panicked: %v", runID, r)
		}
		if err != nil {
			c.logger.Error("Data collection failed", "run_id", runID, "error", err)
		}
		c.finish(gen, err)
	}()

	if _, err := c.CollectHistorical(ctx); err != nil {
		if ctx.Err() != nil {
			c.logger.Info("Data collection cancelled", "run_id", runID)
			return nil
		}
		return fmt.Errorf("historical collection: %w", err)
	}

	for c.active(gen) {
		c.CollectLive(ctx)
		if !c.pause(ctx, gen) {
			break
		}
	}
	c.logger.Info("Data collection loop ended", "run_id", runID)
	return nil
}

// Stop ends the loop after the current pass. Safe to call at any time.
func (c *Collector) Stop() {
	c.mu.Lock()
	wasRunning := c.running
	c.running = false
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
	if wasRunning {
		c.metrics.SetCollectorRunning(false)
	}
	c.logger.Info("Stopping data collection")
}

// Running reports whether the loop or a standalone historical pass is
// active.
func (c *Collector) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running || c.busy
}

// Status returns a snapshot of the run state and the latest results.
func (c *Collector) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.status
	s.Running = c.running || c.busy
	return s
}

// Targets returns the configured target leagues.
func (c *Collector) Targets() []config.Target {
	return append([]config.Target(nil), c.targets...)
}

func (c *Collector) active(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running && c.gen == gen
}

// finish marks the run stopped unless a newer run has taken over.
func (c *Collector) finish(gen uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status.LastError = err.Error()
	}
	if c.gen == gen && c.running {
		c.running = false
		c.metrics.SetCollectorRunning(false)
	}
}

// pause waits one interval. It returns false when the run should end.
func (c *Collector) pause(ctx context.Context, gen uint64) bool {
	t := time.NewTimer(c.interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			return c.active(gen)
		case <-ctx.Done():
			return false
		case <-c.wake:
			if !c.active(gen) {
				return false
			}
		}
	}
}

func (c *Collector) currentRunID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running && c.status.RunID != "" {
		return c.status.RunID
	}
	return uuid.NewString()
}

func (c *Collector) recordHistorical(r HistoricalResult) {
	c.mu.Lock()
	c.status.LastHistorical = &r
	c.mu.Unlock()
}

func (c *Collector) recordLive(r LiveResult) {
	c.mu.Lock()
	c.status.LastLive = &r
	c.status.LivePasses++
	c.mu.Unlock()
}
