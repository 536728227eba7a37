// Package store persists leagues, seasons, teams and games.
//
// Every write is find-or-create on the entity's natural key: an existing
// row is returned unchanged and the caller learns only whether a new row
// was inserted. Each operation runs in its own storage session and commits
// independently.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("not found")

// DefaultPageLimit applies when a Page has no limit.
const DefaultPageLimit = 100

// MaxPageLimit caps the rows returned by one listing.
const MaxPageLimit = 1000

// League is a stored competition. Natural key: ID.
type League struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Logo        string    `json:"logo"`
	CountryID   int       `json:"country_id"`
	CountryName string    `json:"country_name"`
	CountryCode string    `json:"country_code"`
	CountryFlag string    `json:"country_flag"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Season belongs to one league. Natural key: (LeagueID, Label).
type Season struct {
	ID             int        `json:"id"`
	LeagueID       int        `json:"league_id"`
	Label          string     `json:"season"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	HasTeamStats   bool       `json:"has_teams_stats"`
	HasPlayerStats bool       `json:"has_players_stats"`
	HasStandings   bool       `json:"has_standings"`
	HasOdds        bool       `json:"has_odds"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Team is a stored club or national side. Natural key: ID.
type Team struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Country   string    `json:"country"`
	Logo      string    `json:"logo"`
	National  bool      `json:"national"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Game is a stored fixture. The collector does not write games yet.
type Game struct {
	ID         int       `json:"id"`
	LeagueID   int       `json:"league_id"`
	SeasonID   int       `json:"season_id"`
	HomeTeamID int       `json:"home_team_id"`
	AwayTeamID int       `json:"away_team_id"`
	Date       time.Time `json:"date"`
	Timestamp  int64     `json:"timestamp"`
	Timezone   string    `json:"timezone"`
	Status     string    `json:"status"`
	Venue      string    `json:"venue"`
	HomeScore  *int      `json:"home_score_total"`
	AwayScore  *int      `json:"away_score_total"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TeamAlias maps a bookmaker's team name to a stored team.
type TeamAlias struct {
	ID         int       `json:"id"`
	TeamID     int       `json:"team_id"`
	Name       string    `json:"betcity_name"`
	Source     string    `json:"source_api"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeagueMapping maps a stored league to a bookmaker's league.
type LeagueMapping struct {
	ID                 int       `json:"id"`
	LeagueID           int       `json:"league_id"`
	ExternalLeagueID   int       `json:"betcity_league_id"`
	ExternalLeagueName string    `json:"betcity_league_name"`
	CreatedAt          time.Time `json:"created_at"`
}

// Page is a skip/limit window over an ordered listing.
type Page struct {
	Skip  int
	Limit int
}

func (p Page) normalized() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

type LeagueRepository interface {
	GetOrCreate(ctx context.Context, l League) (League, bool, error)
	Get(ctx context.Context, id int) (League, error)
	List(ctx context.Context, page Page) ([]League, error)
}

type SeasonRepository interface {
	GetOrCreate(ctx context.Context, s Season) (Season, bool, error)
	ByLeague(ctx context.Context, leagueID int) ([]Season, error)
	List(ctx context.Context, page Page) ([]Season, error)
}

type TeamRepository interface {
	GetOrCreate(ctx context.Context, t Team) (Team, bool, error)
	List(ctx context.Context, page Page) ([]Team, error)
}

type GameRepository interface {
	// LiveGames returns stored games whose status is in progress.
	LiveGames(ctx context.Context) ([]Game, error)
	List(ctx context.Context, page Page) ([]Game, error)
}

type AliasRepository interface {
	AliasByName(ctx context.Context, name string) (TeamAlias, error)
	MappingByLeague(ctx context.Context, leagueID int) (LeagueMapping, error)
}

// Store aggregates the repositories behind one backend.
type Store interface {
	Leagues() LeagueRepository
	Seasons() SeasonRepository
	Teams() TeamRepository
	Games() GameRepository
	Aliases() AliasRepository
	Ping(ctx context.Context) error
}
