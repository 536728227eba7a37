package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/albapepper/hoops-collector/internal/config"
	"github.com/albapepper/hoops-collector/internal/db"
)

// TestPostgresRepositories runs against a disposable database named by
// TEST_DATABASE_URL. Its tables are truncated.
func TestPostgresRepositories(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.ApplySchema(ctx, url); err != nil {
		t.Fatalf("ApplySchema: %v", err)
	}
	pool, err := db.New(ctx, &config.Config{
		DatabaseURL:    url,
		DBPoolMinConns: 1,
		DBPoolMaxConns: 4,
		DBPoolMaxLife:  time.Minute,
	})
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, `TRUNCATE leagues, seasons, teams, games, team_game_stats,
		players, player_game_stats, odds, team_aliases, league_mappings RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	exerciseRepositories(t, NewPostgres(pool))
}
