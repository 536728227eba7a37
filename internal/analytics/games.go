// Package analytics computes derived views over fetched games and box
// scores: form, head-to-head dominance and efficiency ratings. Every
// function is pure.
package analytics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/albapepper/hoops-collector/internal/provider"
)

// RecentLimit is the number of games used for team form.
const RecentLimit = 10

func FilterLive(games []provider.Game) []provider.Game {
	return filterGames(games, func(g provider.Game) bool { return g.Status.IsLive() })
}

func FilterFinished(games []provider.Game) []provider.Game {
	return filterGames(games, func(g provider.Game) bool { return g.Status.IsFinished() })
}

func FilterUpcoming(games []provider.Game) []provider.Game {
	return filterGames(games, func(g provider.Game) bool { return g.Status.IsScheduled() })
}

// ByDate keeps games whose date starts with prefix (YYYY-MM-DD).
func ByDate(games []provider.Game, prefix string) []provider.Game {
	return filterGames(games, func(g provider.Game) bool { return strings.HasPrefix(g.Date, prefix) })
}

// ByTeam keeps games where teamID plays home or away.
func ByTeam(games []provider.Game, teamID int) []provider.Game {
	return filterGames(games, func(g provider.Game) bool {
		return g.Teams.Home.ID == teamID || g.Teams.Away.ID == teamID
	})
}

// QuarterDiff is one quarter's scores when both sides have one.
type QuarterDiff struct {
	Home       int `json:"home"`
	Away       int `json:"away"`
	Difference int `json:"difference"`
}

// GameSummary describes a single game's outcome.
type GameSummary struct {
	GameID            int                    `json:"game_id"`
	Winner            string                 `json:"winner,omitempty"` // home, away or empty
	HomeScore         int                    `json:"home_score"`
	AwayScore         int                    `json:"away_score"`
	PointDifferential int                    `json:"point_differential"`
	TotalPoints       int                    `json:"total_points"`
	Quarters          map[string]QuarterDiff `json:"quarters_analysis"`
	Status            string                 `json:"status"`
}

// Summarize scores a game. Missing totals count as zero.
func Summarize(g provider.Game) GameSummary {
	home, away := g.Scores.Home.TotalOrZero(), g.Scores.Away.TotalOrZero()
	s := GameSummary{
		GameID:            g.ID,
		HomeScore:         home,
		AwayScore:         away,
		PointDifferential: abs(home - away),
		TotalPoints:       home + away,
		Quarters:          make(map[string]QuarterDiff),
		Status:            g.Status.Short,
	}
	switch {
	case home > away:
		s.Winner = "home"
	case away > home:
		s.Winner = "away"
	}
	for q := 1; q <= 4; q++ {
		h, a := g.Scores.Home.Quarter(q), g.Scores.Away.Quarter(q)
		if h == nil || a == nil {
			continue
		}
		s.Quarters["quarter_"+strconv.Itoa(q)] = QuarterDiff{Home: *h, Away: *a, Difference: *h - *a}
	}
	return s
}

// RecentForTeam returns the team's latest games, newest first.
func RecentForTeam(games []provider.Game, teamID, limit int) []provider.Game {
	out := ByTeam(games, teamID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Form is a team's record over its most recent games.
type Form struct {
	TeamID               int     `json:"team_id"`
	GamesAnalyzed        int     `json:"games_analyzed"`
	Wins                 int     `json:"wins"`
	Losses               int     `json:"losses"`
	WinRate              float64 `json:"win_rate"`
	PointsForAvg         float64 `json:"points_for_avg"`
	PointsAgainstAvg     float64 `json:"points_against_avg"`
	PointDifferentialAvg float64 `json:"point_differential_avg"`
}

// TeamForm evaluates the last RecentLimit games of a team.
func TeamForm(games []provider.Game, teamID int) Form {
	recent := RecentForTeam(games, teamID, RecentLimit)
	f := Form{TeamID: teamID, GamesAnalyzed: len(recent)}
	var pointsFor, pointsAgainst int
	for _, g := range recent {
		s := Summarize(g)
		isHome := g.Teams.Home.ID == teamID
		if s.Winner != "" {
			if (s.Winner == "home") == isHome {
				f.Wins++
			} else {
				f.Losses++
			}
		}
		if isHome {
			pointsFor += s.HomeScore
			pointsAgainst += s.AwayScore
		} else {
			pointsFor += s.AwayScore
			pointsAgainst += s.HomeScore
		}
	}
	if n := float64(len(recent)); n > 0 {
		f.WinRate = float64(f.Wins) / n
		f.PointsForAvg = float64(pointsFor) / n
		f.PointsAgainstAvg = float64(pointsAgainst) / n
		f.PointDifferentialAvg = float64(pointsFor-pointsAgainst) / n
	}
	return f
}

func filterGames(games []provider.Game, keep func(provider.Game) bool) []provider.Game {
	out := make([]provider.Game, 0, len(games))
	for _, g := range games {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
