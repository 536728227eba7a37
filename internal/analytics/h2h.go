package analytics

import (
	"math"
	"sort"

	"github.com/albapepper/hoops-collector/internal/provider"
)

// RecentMeetingsLimit is the default number of meetings reported.
const RecentMeetingsLimit = 5

// HeadToHeadStats summarises the finished meetings between two teams.
type HeadToHeadStats struct {
	Team1ID           int     `json:"team1_id"`
	Team2ID           int     `json:"team2_id"`
	TotalGames        int     `json:"total_games"`
	FinishedGames     int     `json:"finished_games"`
	Team1Wins         int     `json:"team1_wins"`
	Team2Wins         int     `json:"team2_wins"`
	Team1WinRate      float64 `json:"team1_win_rate"`
	Team2WinRate      float64 `json:"team2_win_rate"`
	AvgPointsTeam1    float64 `json:"avg_points_team1"`
	AvgPointsTeam2    float64 `json:"avg_points_team2"`
	PointDifferential float64 `json:"point_differential"`
	DominanceRatio    float64 `json:"dominance_ratio"`
}

// decided reports whether a game counts for head-to-head. Awarded games
// have no played score and are excluded.
func decided(g provider.Game) bool {
	return g.Status.Short == provider.StatusFinished || g.Status.Short == provider.StatusAfterOT
}

// HeadToHead computes win rates and scoring between team1 and team2.
func HeadToHead(games []provider.Game, team1, team2 int) HeadToHeadStats {
	st := HeadToHeadStats{Team1ID: team1, Team2ID: team2, TotalGames: len(games)}
	var points1, points2 int
	for _, g := range games {
		if !decided(g) {
			continue
		}
		st.FinishedGames++
		home, away := g.Scores.Home.TotalOrZero(), g.Scores.Away.TotalOrZero()
		switch {
		case home > away:
			if g.Teams.Home.ID == team1 {
				st.Team1Wins++
			} else {
				st.Team2Wins++
			}
		case away > home:
			if g.Teams.Away.ID == team1 {
				st.Team1Wins++
			} else {
				st.Team2Wins++
			}
		}
		if g.Teams.Home.ID == team1 {
			points1 += home
			points2 += away
		} else {
			points1 += away
			points2 += home
		}
	}
	if n := float64(st.FinishedGames); n > 0 {
		st.Team1WinRate = float64(st.Team1Wins) / n
		st.Team2WinRate = float64(st.Team2Wins) / n
		st.AvgPointsTeam1 = float64(points1) / n
		st.AvgPointsTeam2 = float64(points2) / n
		st.DominanceRatio = st.Team1WinRate - st.Team2WinRate
	}
	st.PointDifferential = st.AvgPointsTeam1 - st.AvgPointsTeam2
	return st
}

// Meeting is one game in a pairing's history.
type Meeting struct {
	GameID    int    `json:"game_id"`
	Date      string `json:"date"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Result    string `json:"result"`
	Status    string `json:"status"`
}

// RecentMeetings returns up to limit games, newest first.
func RecentMeetings(games []provider.Game, limit int) []Meeting {
	sorted := append([]provider.Game(nil), games...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Timestamp > sorted[j].Timestamp })
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]Meeting, 0, len(sorted))
	for _, g := range sorted {
		m := Meeting{
			GameID:    g.ID,
			Date:      g.Date,
			HomeTeam:  g.Teams.Home.Name,
			AwayTeam:  g.Teams.Away.Name,
			HomeScore: g.Scores.Home.Total,
			AwayScore: g.Scores.Away.Total,
			Result:    "Unknown",
			Status:    g.Status.Long,
		}
		if m.HomeScore != nil && m.AwayScore != nil {
			switch {
			case *m.HomeScore > *m.AwayScore:
				m.Result = g.Teams.Home.Name + " wins"
			case *m.AwayScore > *m.HomeScore:
				m.Result = g.Teams.Away.Name + " wins"
			default:
				m.Result = "Draw"
			}
		}
		out = append(out, m)
	}
	return out
}

// Advantage verdicts.
const (
	Team1StronglyDominates = "Team 1 strongly dominates"
	Team1Advantage         = "Team 1 has advantage"
	EvenlyMatched          = "Evenly matched"
	Team2Advantage         = "Team 2 has advantage"
	Team2StronglyDominates = "Team 2 strongly dominates"
	Inconclusive           = "Inconclusive"
)

// Advantage classifies a pairing from its dominance ratio and point
// differential.
func Advantage(st HeadToHeadStats) string {
	d, p := st.DominanceRatio, st.PointDifferential
	switch {
	case d > 0.3 && p > 5:
		return Team1StronglyDominates
	case d > 0.1 && p > 2:
		return Team1Advantage
	case math.Abs(d) < 0.1 && math.Abs(p) < 2:
		return EvenlyMatched
	case d < -0.3 && p < -5:
		return Team2StronglyDominates
	case d < -0.1 && p < -2:
		return Team2Advantage
	default:
		return Inconclusive
	}
}

// HomeRecord is a team's record when hosting the pairing.
type HomeRecord struct {
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// VenueAnalysis splits the pairing by host.
type VenueAnalysis struct {
	Team1Home          HomeRecord      `json:"team1_home_record"`
	Team2Home          HomeRecord      `json:"team2_home_record"`
	HomeCourtAdvantage map[string]bool `json:"home_court_advantage"`
}

// HomeCourtThreshold is the home win rate that counts as an advantage.
const HomeCourtThreshold = 0.6

// VenueSplit computes each team's home record in finished meetings.
func VenueSplit(games []provider.Game, team1, team2 int) VenueAnalysis {
	rec := func(host int) HomeRecord {
		var r HomeRecord
		for _, g := range games {
			if g.Teams.Home.ID != host || !decided(g) {
				continue
			}
			r.Games++
			if g.Scores.Home.TotalOrZero() > g.Scores.Away.TotalOrZero() {
				r.Wins++
			}
		}
		if r.Games > 0 {
			r.WinRate = float64(r.Wins) / float64(r.Games)
		}
		return r
	}
	v := VenueAnalysis{Team1Home: rec(team1), Team2Home: rec(team2)}
	v.HomeCourtAdvantage = map[string]bool{
		"team1": v.Team1Home.WinRate > HomeCourtThreshold,
		"team2": v.Team2Home.WinRate > HomeCourtThreshold,
	}
	return v
}

// Prediction is a naive forecast for the next meeting.
type Prediction struct {
	HomeTeamID                int     `json:"home_team_id"`
	PredictedWinner           int     `json:"predicted_winner"`
	ProbabilityTeam1          float64 `json:"probability_team1"`
	ProbabilityTeam2          float64 `json:"probability_team2"`
	Confidence                float64 `json:"confidence"`
	ExpectedPointDifferential float64 `json:"expected_point_differential"`
}

// PredictNext scales historical win rates by up to 20% of the host's home
// win rate and normalises them.
func PredictNext(st HeadToHeadStats, v VenueAnalysis, homeTeamID int) Prediction {
	p1, p2 := st.Team1WinRate, st.Team2WinRate
	if homeTeamID == st.Team1ID {
		adv := v.Team1Home.WinRate * 0.2
		p1, p2 = p1*(1+adv), p2*(1-adv)
	} else {
		adv := v.Team2Home.WinRate * 0.2
		p1, p2 = p1*(1-adv), p2*(1+adv)
	}

	if total := p1 + p2; total > 0 {
		p1, p2 = p1/total, p2/total
	} else {
		p1, p2 = 0.5, 0.5
	}

	winner := st.Team2ID
	if p1 > p2 {
		winner = st.Team1ID
	}
	return Prediction{
		HomeTeamID:                homeTeamID,
		PredictedWinner:           winner,
		ProbabilityTeam1:          p1,
		ProbabilityTeam2:          p2,
		Confidence:                math.Abs(p1 - p2),
		ExpectedPointDifferential: st.PointDifferential,
	}
}

// Report bundles the full pairing analysis served by the facade.
type Report struct {
	BasicStats        HeadToHeadStats `json:"basic_stats"`
	RecentMeetings    []Meeting       `json:"recent_meetings"`
	AdvantageAnalysis string          `json:"advantage_analysis"`
	VenueAnalysis     VenueAnalysis   `json:"venue_analysis"`
	AllGames          []provider.Game `json:"all_games"`
}

// Analyze builds a Report. It returns false when there are no games.
func Analyze(games []provider.Game, team1, team2 int) (Report, bool) {
	if len(games) == 0 {
		return Report{}, false
	}
	st := HeadToHead(games, team1, team2)
	return Report{
		BasicStats:        st,
		RecentMeetings:    RecentMeetings(games, RecentMeetingsLimit),
		AdvantageAnalysis: Advantage(st),
		VenueAnalysis:     VenueSplit(games, team1, team2),
		AllGames:          games,
	}, true
}
