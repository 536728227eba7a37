// Package db provides a pgxpool-based connection pool with prepared statement
// registration, schema application and health checking.
package db

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/hoops-collector/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL applied by ApplySchema.
func Schema() string { return schemaSQL }

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// ApplySchema creates any missing tables. Statements registered in
// AfterConnect reference these tables, so a fresh database is prepared
// through a plain connection before the pool is opened.
func ApplySchema(ctx context.Context, databaseURL string) error {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// registerPreparedStatements registers all statements the API and collector
// use. Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Leagues
		"league_insert": `INSERT INTO leagues (id, name, type, logo, country_id, country_name, country_code, country_flag)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
			RETURNING ` + leagueColumns,
		"league_by_id": "SELECT " + leagueColumns + " FROM leagues WHERE id = $1",
		"league_list":  "SELECT " + leagueColumns + " FROM leagues ORDER BY id OFFSET $1 LIMIT $2",

		// Seasons
		"season_insert": `INSERT INTO seasons (league_id, season, start_date, end_date, has_teams_stats, has_players_stats, has_standings, has_odds)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (league_id, season) DO NOTHING
			RETURNING ` + seasonColumns,
		"season_by_key":    "SELECT " + seasonColumns + " FROM seasons WHERE league_id = $1 AND season = $2",
		"season_by_league": "SELECT " + seasonColumns + " FROM seasons WHERE league_id = $1 ORDER BY season",
		"season_list":      "SELECT " + seasonColumns + " FROM seasons ORDER BY league_id, season OFFSET $1 LIMIT $2",

		// Teams
		"team_insert": `INSERT INTO teams (id, name, code, country, logo, national)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
			RETURNING ` + teamColumns,
		"team_by_id": "SELECT " + teamColumns + " FROM teams WHERE id = $1",
		"team_list":  "SELECT " + teamColumns + " FROM teams ORDER BY id OFFSET $1 LIMIT $2",

		// Games
		"game_live": "SELECT " + gameColumns + " FROM games WHERE status = ANY($1) ORDER BY id",
		"game_list": "SELECT " + gameColumns + " FROM games ORDER BY date DESC, id OFFSET $1 LIMIT $2",

		// Bookmaker mapping
		"alias_by_name":     "SELECT " + aliasColumns + " FROM team_aliases WHERE lower(betcity_name) = lower($1) LIMIT 1",
		"mapping_by_league":  "SELECT " + mappingColumns + " FROM league_mappings WHERE league_id = $1 LIMIT 1",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}

// Column lists shared by the prepared statements and the store's scanners.
const (
	leagueColumns  = "id, name, COALESCE(type, ''), COALESCE(logo, ''), COALESCE(country_id, 0), COALESCE(country_name, ''), COALESCE(country_code, ''), COALESCE(country_flag, ''), created_at, updated_at"
	seasonColumns  = "id, league_id, season, start_date, end_date, has_teams_stats, has_players_stats, has_standings, has_odds, created_at, updated_at"
	teamColumns    = "id, name, COALESCE(code, ''), COALESCE(country, ''), COALESCE(logo, ''), national, created_at, updated_at"
	gameColumns    = `id, league_id, season_id, home_team_id, away_team_id, date, COALESCE("timestamp", 0), COALESCE(timezone, ''), COALESCE(status, ''), COALESCE(venue, ''), home_score_total, away_score_total, created_at, updated_at`
	aliasColumns   = "id, team_id, betcity_name, source_api, confidence, created_at, updated_at"
	mappingColumns = "id, league_id, betcity_league_id, COALESCE(betcity_league_name, ''), created_at"
)
