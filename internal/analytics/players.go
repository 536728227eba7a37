package analytics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/albapepper/hoops-collector/internal/provider"
)

// MinutesToFloat converts "MM:SS" to fractional minutes. Empty, "00:00"
// and malformed values yield 0.
func MinutesToFloat(s string) float64 {
	if s == "" || s == "00:00" {
		return 0
	}
	minPart, secPart, hasSec := strings.Cut(s, ":")
	minutes, err := strconv.Atoi(minPart)
	if err != nil {
		return 0
	}
	seconds := 0
	if hasSec {
		if seconds, err = strconv.Atoi(secPart); err != nil {
			return 0
		}
	}
	return float64(minutes) + float64(seconds)/60
}

type ShootingSplit struct {
	FieldGoals float64 `json:"field_goals"`
	ThreePoint float64 `json:"three_point"`
	FreeThrows float64 `json:"free_throws"`
}

type PerMinute struct {
	Points   float64 `json:"points_per_minute"`
	Rebounds float64 `json:"rebounds_per_minute"`
	Assists  float64 `json:"assists_per_minute"`
}

// PlayerEfficiency is a simplified single-game rating.
type PlayerEfficiency struct {
	PlayerID            int           `json:"player_id"`
	PlayerName          string        `json:"player_name"`
	GameID              int           `json:"game_id"`
	MinutesPlayed       float64       `json:"minutes_played"`
	Shooting            ShootingSplit `json:"shooting_efficiency"`
	PerMinute           PerMinute     `json:"per_minute_stats"`
	EfficiencyRating    float64       `json:"efficiency_rating"`
	EfficiencyPerMinute float64       `json:"efficiency_per_minute"`
}

// RatePlayer scores one box score line. Made threes carry a 1.5 weight.
func RatePlayer(s provider.PlayerGameStatistics) PlayerEfficiency {
	mins := MinutesToFloat(s.Minutes)
	fg, tp, ft := s.FieldGoals.Percentage/100, s.ThreePoint.Percentage/100, s.FreeThrows.Percentage/100

	e := PlayerEfficiency{
		PlayerID:      s.Player.ID,
		PlayerName:    s.Player.Name,
		GameID:        s.Game.ID,
		MinutesPlayed: mins,
		Shooting:      ShootingSplit{FieldGoals: fg, ThreePoint: tp, FreeThrows: ft},
	}
	e.EfficiencyRating = float64(s.Points+s.Rebounds.Total+s.Assists) +
		float64(s.FieldGoals.Total)*fg +
		float64(s.ThreePoint.Total)*tp*1.5
	if mins > 0 {
		e.PerMinute = PerMinute{
			Points:   float64(s.Points) / mins,
			Rebounds: float64(s.Rebounds.Total) / mins,
			Assists:  float64(s.Assists) / mins,
		}
		e.EfficiencyPerMinute = e.EfficiencyRating / mins
	}
	return e
}

// SeasonAverages aggregates a player's box scores.
type SeasonAverages struct {
	PlayerID             int     `json:"player_id"`
	PlayerName           string  `json:"player_name"`
	GamesPlayed          int     `json:"games_played"`
	MinutesPerGame       float64 `json:"minutes_per_game"`
	PointsPerGame        float64 `json:"points_per_game"`
	ReboundsPerGame      float64 `json:"rebounds_per_game"`
	AssistsPerGame       float64 `json:"assists_per_game"`
	FieldGoalPercentage  float64 `json:"field_goal_percentage"`
	ThreePointPercentage float64 `json:"three_point_percentage"`
	FreeThrowPercentage  float64 `json:"free_throw_percentage"`
}

// PlayerAverages returns false when the player has no lines.
func PlayerAverages(stats []provider.PlayerGameStatistics, playerID int) (SeasonAverages, bool) {
	var lines []provider.PlayerGameStatistics
	for _, s := range stats {
		if s.Player.ID == playerID {
			lines = append(lines, s)
		}
	}
	if len(lines) == 0 {
		return SeasonAverages{}, false
	}

	var mins float64
	var pts, reb, ast, fgm, fga, tpm, tpa, ftm, fta int
	for _, s := range lines {
		mins += MinutesToFloat(s.Minutes)
		pts += s.Points
		reb += s.Rebounds.Total
		ast += s.Assists
		fgm, fga = fgm+s.FieldGoals.Total, fga+s.FieldGoals.Attempts
		tpm, tpa = tpm+s.ThreePoint.Total, tpa+s.ThreePoint.Attempts
		ftm, fta = ftm+s.FreeThrows.Total, fta+s.FreeThrows.Attempts
	}
	n := float64(len(lines))
	return SeasonAverages{
		PlayerID:             playerID,
		PlayerName:           lines[0].Player.Name,
		GamesPlayed:          len(lines),
		MinutesPerGame:       mins / n,
		PointsPerGame:        float64(pts) / n,
		ReboundsPerGame:      float64(reb) / n,
		AssistsPerGame:       float64(ast) / n,
		FieldGoalPercentage:  percent(fgm, fga),
		ThreePointPercentage: percent(tpm, tpa),
		FreeThrowPercentage:  percent(ftm, fta),
	}, true
}

// Performer is one ranked box score line.
type Performer struct {
	PlayerID   int              `json:"player_id"`
	PlayerName string           `json:"player_name"`
	TeamID     int              `json:"team_id"`
	GameID     int              `json:"game_id"`
	Value      float64          `json:"value"`
	Efficiency PlayerEfficiency `json:"efficiency"`
}

// TopPerformers ranks lines by metric: points, rebounds, assists or
// efficiency. Unknown metrics rank by points.
func TopPerformers(stats []provider.PlayerGameStatistics, metric string, limit int) []Performer {
	out := make([]Performer, 0, len(stats))
	for _, s := range stats {
		eff := RatePlayer(s)
		var v float64
		switch metric {
		case "rebounds":
			v = float64(s.Rebounds.Total)
		case "assists":
			v = float64(s.Assists)
		case "efficiency":
			v = eff.EfficiencyRating
		default:
			v = float64(s.Points)
		}
		out = append(out, Performer{
			PlayerID:   s.Player.ID,
			PlayerName: s.Player.Name,
			TeamID:     s.Team.ID,
			GameID:     s.Game.ID,
			Value:      v,
			Efficiency: eff,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func percent(made, attempts int) float64 {
	if attempts == 0 {
		return 0
	}
	return float64(made) / float64(attempts) * 100
}
