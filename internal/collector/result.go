package collector

import (
	"fmt"
	"time"
)

// HistoricalResult tracks counts and errors from one historical pass.
type HistoricalResult struct {
	RunID           string    `json:"run_id"`
	Season          string    `json:"season"`
	LeaguesUpserted int       `json:"leagues_upserted"`
	LeaguesCreated  int       `json:"leagues_created"`
	SeasonsUpserted int       `json:"seasons_upserted"`
	SeasonsCreated  int       `json:"seasons_created"`
	TeamsUpserted   int       `json:"teams_upserted"`
	TeamsCreated    int       `json:"teams_created"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
	Errors          []string  `json:"errors"`
}

// AddErrorf records a formatted error message.
func (r *HistoricalResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the pass.
func (r *HistoricalResult) Summary() string {
	return fmt.Sprintf(
		"season=%s leagues=%d (new %d) seasons=%d (new %d) teams=%d (new %d) errors=%d",
		r.Season, r.LeaguesUpserted, r.LeaguesCreated,
		r.SeasonsUpserted, r.SeasonsCreated,
		r.TeamsUpserted, r.TeamsCreated,
		len(r.Errors),
	)
}

// LiveResult tracks counts and errors from one live pass.
type LiveResult struct {
	RunID      string    `json:"run_id"`
	LiveGames  int       `json:"live_games"`
	Statistics int       `json:"statistics"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Errors     []string  `json:"errors"`
}

// AddErrorf records a formatted error message.
func (r *LiveResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *LiveResult) Summary() string {
	return fmt.Sprintf("live_games=%d statistics=%d errors=%d",
		r.LiveGames, r.Statistics, len(r.Errors))
}

// Status is a point-in-time snapshot of the collector.
type Status struct {
	Running        bool              `json:"running"`
	RunID          string            `json:"run_id,omitempty"`
	StartedAt      *time.Time        `json:"started_at,omitempty"`
	LivePasses     int               `json:"live_passes"`
	LastHistorical *HistoricalResult `json:"last_historical,omitempty"`
	LastLive       *LiveResult       `json:"last_live,omitempty"`
	LastError      string            `json:"last_error,omitempty"`
}
