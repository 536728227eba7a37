package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/hoops-collector/internal/db"
	"github.com/albapepper/hoops-collector/internal/provider"
)

// Postgres is the pgx-backed Store. Statements are prepared by db.New.
type Postgres struct {
	pool *db.Pool
}

// NewPostgres wraps an open pool.
func NewPostgres(pool *db.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Leagues() LeagueRepository { return pgLeagues{p.pool} }
func (p *Postgres) Seasons() SeasonRepository { return pgSeasons{p.pool} }
func (p *Postgres) Teams() TeamRepository     { return pgTeams{p.pool} }
func (p *Postgres) Games() GameRepository     { return pgGames{p.pool} }
func (p *Postgres) Aliases() AliasRepository  { return pgAliases{p.pool} }

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.HealthCheck(ctx)
}

// getOrCreate looks up by natural key, inserts when absent and re-reads
// when a concurrent insert won the conflict.
func getOrCreate[T any](find func() (T, error), insert func() (T, error)) (T, bool, error) {
	existing, err := find()
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return existing, false, err
	}

	created, err := insert()
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return created, false, err
	}

	existing, err = find()
	return existing, false, err
}

// --------------------------------------------------------------------------
// Leagues
// --------------------------------------------------------------------------

type pgLeagues struct{ pool *db.Pool }

func (r pgLeagues) GetOrCreate(ctx context.Context, l League) (League, bool, error) {
	out, created, err := getOrCreate(
		func() (League, error) { return scanLeague(r.pool.QueryRow(ctx, "league_by_id", l.ID)) },
		func() (League, error) {
			return scanLeague(r.pool.QueryRow(ctx, "league_insert",
				l.ID, l.Name, nullStr(l.Type), nullStr(l.Logo), nullInt(l.CountryID),
				nullStr(l.CountryName), nullStr(l.CountryCode), nullStr(l.CountryFlag)))
		})
	if err != nil {
		return League{}, false, fmt.Errorf("upsert league %d: %w", l.ID, err)
	}
	return out, created, nil
}

func (r pgLeagues) Get(ctx context.Context, id int) (League, error) {
	l, err := scanLeague(r.pool.QueryRow(ctx, "league_by_id", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return League{}, ErrNotFound
	}
	if err != nil {
		return League{}, fmt.Errorf("get league %d: %w", id, err)
	}
	return l, nil
}

func (r pgLeagues) List(ctx context.Context, page Page) ([]League, error) {
	page = page.normalized()
	rows, err := r.pool.Query(ctx, "league_list", page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return collect(rows, scanLeague)
}

func scanLeague(row pgx.Row) (League, error) {
	var l League
	err := row.Scan(&l.ID, &l.Name, &l.Type, &l.Logo, &l.CountryID,
		&l.CountryName, &l.CountryCode, &l.CountryFlag, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// --------------------------------------------------------------------------
// Seasons
// --------------------------------------------------------------------------

type pgSeasons struct{ pool *db.Pool }

func (r pgSeasons) GetOrCreate(ctx context.Context, s Season) (Season, bool, error) {
	out, created, err := getOrCreate(
		func() (Season, error) {
			return scanSeason(r.pool.QueryRow(ctx, "season_by_key", s.LeagueID, s.Label))
		},
		func() (Season, error) {
			return scanSeason(r.pool.QueryRow(ctx, "season_insert",
				s.LeagueID, s.Label, s.StartDate, s.EndDate,
				s.HasTeamStats, s.HasPlayerStats, s.HasStandings, s.HasOdds))
		})
	if err != nil {
		return Season{}, false, fmt.Errorf("upsert season %d/%s: %w", s.LeagueID, s.Label, err)
	}
	return out, created, nil
}

func (r pgSeasons) ByLeague(ctx context.Context, leagueID int) ([]Season, error) {
	rows, err := r.pool.Query(ctx, "season_by_league", leagueID)
	if err != nil {
		return nil, fmt.Errorf("seasons for league %d: %w", leagueID, err)
	}
	return collect(rows, scanSeason)
}

func (r pgSeasons) List(ctx context.Context, page Page) ([]Season, error) {
	page = page.normalized()
	rows, err := r.pool.Query(ctx, "season_list", page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return collect(rows, scanSeason)
}

func scanSeason(row pgx.Row) (Season, error) {
	var s Season
	err := row.Scan(&s.ID, &s.LeagueID, &s.Label, &s.StartDate, &s.EndDate,
		&s.HasTeamStats, &s.HasPlayerStats, &s.HasStandings, &s.HasOdds,
		&s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

type pgTeams struct{ pool *db.Pool }

func (r pgTeams) GetOrCreate(ctx context.Context, t Team) (Team, bool, error) {
	out, created, err := getOrCreate(
		func() (Team, error) { return scanTeam(r.pool.QueryRow(ctx, "team_by_id", t.ID)) },
		func() (Team, error) {
			return scanTeam(r.pool.QueryRow(ctx, "team_insert",
				t.ID, t.Name, nullStr(t.Code), nullStr(t.Country), nullStr(t.Logo), t.National))
		})
	if err != nil {
		return Team{}, false, fmt.Errorf("upsert team %d: %w", t.ID, err)
	}
	return out, created, nil
}

func (r pgTeams) List(ctx context.Context, page Page) ([]Team, error) {
	page = page.normalized()
	rows, err := r.pool.Query(ctx, "team_list", page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return collect(rows, scanTeam)
}

func scanTeam(row pgx.Row) (Team, error) {
	var t Team
	err := row.Scan(&t.ID, &t.Name, &t.Code, &t.Country, &t.Logo, &t.National, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// --------------------------------------------------------------------------
// Games
// --------------------------------------------------------------------------

type pgGames struct{ pool *db.Pool }

func (r pgGames) LiveGames(ctx context.Context) ([]Game, error) {
	rows, err := r.pool.Query(ctx, "game_live", provider.LiveStatuses)
	if err != nil {
		return nil, fmt.Errorf("live games: %w", err)
	}
	return collect(rows, scanGame)
}

func (r pgGames) List(ctx context.Context, page Page) ([]Game, error) {
	page = page.normalized()
	rows, err := r.pool.Query(ctx, "game_list", page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return collect(rows, scanGame)
}

func scanGame(row pgx.Row) (Game, error) {
	var g Game
	err := row.Scan(&g.ID, &g.LeagueID, &g.SeasonID, &g.HomeTeamID, &g.AwayTeamID,
		&g.Date, &g.Timestamp, &g.Timezone, &g.Status, &g.Venue,
		&g.HomeScore, &g.AwayScore, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// --------------------------------------------------------------------------
// Bookmaker mapping
// --------------------------------------------------------------------------

type pgAliases struct{ pool *db.Pool }

func (r pgAliases) AliasByName(ctx context.Context, name string) (TeamAlias, error) {
	var a TeamAlias
	err := r.pool.QueryRow(ctx, "alias_by_name", name).Scan(
		&a.ID, &a.TeamID, &a.Name, &a.Source, &a.Confidence, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return TeamAlias{}, ErrNotFound
	}
	if err != nil {
		return TeamAlias{}, fmt.Errorf("alias %q: %w", name, err)
	}
	return a, nil
}

func (r pgAliases) MappingByLeague(ctx context.Context, leagueID int) (LeagueMapping, error) {
	var m LeagueMapping
	err := r.pool.QueryRow(ctx, "mapping_by_league", leagueID).Scan(
		&m.ID, &m.LeagueID, &m.ExternalLeagueID, &m.ExternalLeagueName, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return LeagueMapping{}, ErrNotFound
	}
	if err != nil {
		return LeagueMapping{}, fmt.Errorf("league mapping %d: %w", leagueID, err)
	}
	return m, nil
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
