package analytics

import (
	"strconv"
	"strings"

	"github.com/albapepper/hoops-collector/internal/provider"
)

// GameImpact rates one team's box score.
type GameImpact struct {
	ShootingEfficiency    float64 `json:"shooting_efficiency"`
	ReboundEfficiency     float64 `json:"rebound_efficiency"`
	AssistToTurnoverRatio float64 `json:"assist_to_turnover_ratio"`
	StealsPerTurnover     float64 `json:"steals_per_turnover"`
	EfficiencyRating      int     `json:"efficiency_rating"`
	GameImpactScore       float64 `json:"game_impact_score"`
}

// ShootingEfficiency weights made shots by their percentage, threes by an
// extra 1.5, over all field goal and three point attempts.
func ShootingEfficiency(s provider.TeamGameStatistics) float64 {
	attempts := s.FieldGoals.Attempts + s.ThreePoint.Attempts
	if attempts == 0 {
		return 0
	}
	fg, tp := s.FieldGoals.Percentage/100, s.ThreePoint.Percentage/100
	return (float64(s.FieldGoals.Total)*fg + float64(s.ThreePoint.Total)*tp*1.5) / float64(attempts)
}

// Impact computes the team's game impact. Ratios fall back to the
// numerator when there were no turnovers.
func Impact(s provider.TeamGameStatistics) GameImpact {
	shooting := ShootingEfficiency(s)
	imp := GameImpact{
		ShootingEfficiency:    shooting,
		AssistToTurnoverRatio: float64(s.Assists),
		StealsPerTurnover:     float64(s.Steals),
		EfficiencyRating: s.FieldGoals.Total + s.ThreePoint.Total + s.FreeThrows.Total +
			s.Rebounds.Total + s.Assists + s.Steals + s.Blocks -
			s.Turnovers - s.PersonalFouls,
	}
	if s.Rebounds.Total > 0 {
		imp.ReboundEfficiency = float64(s.Rebounds.Total) / float64(s.Rebounds.Total+s.Rebounds.Defense)
	}
	if s.Turnovers > 0 {
		imp.AssistToTurnoverRatio = float64(s.Assists) / float64(s.Turnovers)
		imp.StealsPerTurnover = float64(s.Steals) / float64(s.Turnovers)
	}
	imp.GameImpactScore = float64(imp.EfficiencyRating) * shooting
	return imp
}

// Strength is a team's season profile from /statistics.
type Strength struct {
	TeamName          string  `json:"team_name"`
	WinRate           float64 `json:"win_rate"`
	PointsForAvg      float64 `json:"points_for_avg"`
	PointsAgainstAvg  float64 `json:"points_against_avg"`
	PointDifferential float64 `json:"point_differential"`
	HomeWinRate       float64 `json:"home_win_rate"`
	AwayWinRate       float64 `json:"away_win_rate"`
	HomeAdvantage     float64 `json:"home_advantage"`
	TotalGames        int     `json:"total_games"`
}

// TeamStrength parses the string-encoded averages and percentages of a
// season aggregate. Unparsable values count as 0.
func TeamStrength(st provider.TeamStatistics) Strength {
	s := Strength{
		TeamName:         st.Team.Name,
		WinRate:          parseFloat(st.Games.Wins.All.Percentage),
		PointsForAvg:     parseFloat(st.Points.For.Average.All),
		PointsAgainstAvg: parseFloat(st.Points.Against.Average.All),
		HomeWinRate:      parseFloat(st.Games.Wins.Home.Percentage),
		AwayWinRate:      parseFloat(st.Games.Wins.Away.Percentage),
		TotalGames:       st.Games.Played.All,
	}
	s.PointDifferential = s.PointsForAvg - s.PointsAgainstAvg
	s.HomeAdvantage = s.HomeWinRate - s.AwayWinRate
	return s
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
