// Command ingest is the Hoops Collector CLI for one-off and unattended runs.
//
// Usage:
//
//	hoops-ingest schema apply
//	hoops-ingest collect historical
//	hoops-ingest collect live
//	hoops-ingest collect run --interval 60s
//	hoops-ingest seasons
//	hoops-ingest probe
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/hoops-collector/internal/collector"
	"github.com/albapepper/hoops-collector/internal/config"
	"github.com/albapepper/hoops-collector/internal/db"
	"github.com/albapepper/hoops-collector/internal/provider/apisports"
	"github.com/albapepper/hoops-collector/internal/season"
	"github.com/albapepper/hoops-collector/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "hoops-ingest",
		Short:         "Hoops Collector CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(schemaCmd())
	root.AddCommand(collectCmd())
	root.AddCommand(seasonsCmd())
	root.AddCommand(probeCmd())

	if err := root.Execute(); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// schema command
// --------------------------------------------------------------------------

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the Postgres schema",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "apply",
		Short: "Create any missing tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.StoreBackend != config.StorePostgres {
				return fmt.Errorf("schema apply requires STORE_BACKEND=%s", config.StorePostgres)
			}
			if err := db.ApplySchema(ctx, cfg.DatabaseURL); err != nil {
				return err
			}
			logger.Info("Schema applied")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "Print the schema DDL",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), db.Schema())
		},
	})
	return cmd
}

// --------------------------------------------------------------------------
// collect command
// --------------------------------------------------------------------------

func collectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect basketball data into the store",
	}
	cmd.AddCommand(collectHistoricalCmd())
	cmd.AddCommand(collectLiveCmd())
	cmd.AddCommand(collectRunCmd())
	return cmd
}

func collectHistoricalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "historical",
		Short: "Run one historical pass (leagues, seasons, target-league teams)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollector(0, func(ctx context.Context, c *collector.Collector) error {
				start := time.Now()
				res, err := c.CollectHistorical(ctx)
				if err != nil {
					return err
				}
				logger.Info("Historical pass finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", res.Summary())
				for _, e := range res.Errors {
					logger.Error("collection error", "error", e)
				}
				return nil
			})
		},
	}
}

func collectLiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "Run one live pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollector(0, func(ctx context.Context, c *collector.Collector) error {
				res := c.CollectLive(ctx)
				logger.Info("Live pass finished", "summary", res.Summary())
				for _, e := range res.Errors {
					logger.Error("collection error", "error", e)
				}
				return nil
			})
		},
	}
}

func collectRunCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the historical pass then the live loop until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollector(interval, func(ctx context.Context, c *collector.Collector) error {
				return c.Start(ctx)
			})
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "Pause between live passes (default COLLECTOR_LIVE_INTERVAL_SECONDS)")
	return cmd
}

// --------------------------------------------------------------------------
// source commands
// --------------------------------------------------------------------------

func seasonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seasons",
		Short: "List source seasons and the one the historical pass would pick",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSource(func(ctx context.Context, src *apisports.Client) error {
				env, err := src.Seasons(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, id := range env.Response {
					fmt.Fprintln(out, id.Label)
				}
				fmt.Fprintf(out, "selected: %s\n", season.Select(env.Response))
				return nil
			})
		},
	}
}

func probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check that the basketball source answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSource(func(ctx context.Context, src *apisports.Client) error {
				if !src.CheckReachability(ctx) {
					return fmt.Errorf("basketball source unreachable")
				}
				logger.Info("Basketball source reachable")
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runSource handles config loading, client construction and context cancellation.
func runSource(fn func(ctx context.Context, src *apisports.Client) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return fn(ctx, newSource(cfg))
}

// runCollector additionally opens the store and builds a collector.
// A zero interval keeps the configured one.
func runCollector(interval time.Duration, fn func(ctx context.Context, c *collector.Collector) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if interval == 0 {
		interval = cfg.LiveInterval
	}

	st, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	c := collector.New(newSource(cfg), st, collector.Options{
		Targets:      cfg.Targets,
		LiveInterval: interval,
	}, logger)
	return fn(ctx, c)
}

func newSource(cfg *config.Config) *apisports.Client {
	if cfg.BasketballAPIKey == "" {
		logger.Warn("BASKETBALL_API_KEY is not set")
	}
	return apisports.NewClient(cfg.BasketballAPIURL, cfg.BasketballAPIKey, cfg.BasketballAPIRPM, logger)
}
