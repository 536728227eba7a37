package analytics

import (
	"math"
	"testing"

	"github.com/albapepper/hoops-collector/internal/provider"
)

func intp(n int) *int { return &n }

func game(id int, ts int64, status string, home, away int, homeScore, awayScore *int) provider.Game {
	return provider.Game{
		ID:        id,
		Timestamp: ts,
		Status:    provider.GameStatus{Short: status, Long: status},
		Teams: provider.GameTeams{
			Home: provider.GameTeam{ID: home, Name: teamName(home)},
			Away: provider.GameTeam{ID: away, Name: teamName(away)},
		},
		Scores: provider.GameScores{
			Home: provider.QuarterScores{Total: homeScore},
			Away: provider.QuarterScores{Total: awayScore},
		},
	}
}

func teamName(id int) string {
	switch id {
	case 1:
		return "Celtics"
	case 2:
		return "Lakers"
	}
	return "Other"
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func pairing() []provider.Game {
	return []provider.Game{
		game(1, 100, "FT", 1, 2, intp(110), intp(100)),
		game(2, 200, "AOT", 2, 1, intp(120), intp(118)),
		game(3, 300, "FT", 1, 2, intp(105), intp(95)),
		game(4, 400, "NS", 2, 1, nil, nil),
		game(5, 50, "AWD", 2, 1, intp(20), intp(0)),
	}
}

func TestHeadToHead(t *testing.T) {
	st := HeadToHead(pairing(), 1, 2)
	if st.TotalGames != 5 || st.FinishedGames != 3 {
		t.Fatalf("games = %d/%d", st.FinishedGames, st.TotalGames)
	}
	if st.Team1Wins != 2 || st.Team2Wins != 1 {
		t.Fatalf("wins = %d-%d", st.Team1Wins, st.Team2Wins)
	}
	if !approx(st.Team1WinRate, 2.0/3) || !approx(st.DominanceRatio, 1.0/3) {
		t.Fatalf("rates = %v, dominance = %v", st.Team1WinRate, st.DominanceRatio)
	}
	// team1 scored 110+118+105, team2 100+120+95
	if !approx(st.AvgPointsTeam1, 111) || !approx(st.AvgPointsTeam2, 105) || !approx(st.PointDifferential, 6) {
		t.Fatalf("points = %v vs %v", st.AvgPointsTeam1, st.AvgPointsTeam2)
	}
	if got := Advantage(st); got != Team1StronglyDominates {
		t.Fatalf("Advantage = %q", got)
	}
}

func TestHeadToHeadNoFinishedGames(t *testing.T) {
	st := HeadToHead([]provider.Game{game(1, 1, "NS", 1, 2, nil, nil)}, 1, 2)
	if st.FinishedGames != 0 || st.DominanceRatio != 0 || st.PointDifferential != 0 {
		t.Fatalf("stats = %+v", st)
	}
	if got := Advantage(st); got != EvenlyMatched {
		t.Fatalf("Advantage = %q", got)
	}
}

func TestAdvantageThresholds(t *testing.T) {
	tests := []struct {
		d, p float64
		want string
	}{
		{0.4, 6, Team1StronglyDominates},
		{0.2, 3, Team1Advantage},
		{0.05, 1, EvenlyMatched},
		{-0.2, -3, Team2Advantage},
		{-0.4, -6, Team2StronglyDominates},
		{0.4, -6, Inconclusive},
	}
	for _, tt := range tests {
		if got := Advantage(HeadToHeadStats{DominanceRatio: tt.d, PointDifferential: tt.p}); got != tt.want {
			t.Errorf("Advantage(%v, %v) = %q, want %q", tt.d, tt.p, got, tt.want)
		}
	}
}

func TestRecentMeetings(t *testing.T) {
	got := RecentMeetings(pairing(), 3)
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].GameID != 4 || got[0].Result != "Unknown" {
		t.Fatalf("newest meeting = %+v", got[0])
	}
	if got[1].GameID != 3 || got[1].Result != "Celtics wins" {
		t.Fatalf("second meeting = %+v", got[1])
	}
	if got[2].Result != "Lakers wins" {
		t.Fatalf("third meeting = %+v", got[2])
	}
}

func TestVenueSplitAndPrediction(t *testing.T) {
	games := pairing()
	v := VenueSplit(games, 1, 2)
	if v.Team1Home.Games != 2 || v.Team1Home.Wins != 2 || !v.HomeCourtAdvantage["team1"] {
		t.Fatalf("team1 home = %+v", v.Team1Home)
	}
	if v.Team2Home.Games != 1 || v.Team2Home.Wins != 1 {
		t.Fatalf("team2 home = %+v", v.Team2Home)
	}

	st := HeadToHead(games, 1, 2)
	p := PredictNext(st, v, 1)
	if p.PredictedWinner != 1 {
		t.Fatalf("winner = %d", p.PredictedWinner)
	}
	if !approx(p.ProbabilityTeam1+p.ProbabilityTeam2, 1) {
		t.Fatalf("probabilities not normalised: %+v", p)
	}

	even := PredictNext(HeadToHeadStats{Team1ID: 1, Team2ID: 2}, VenueAnalysis{}, 2)
	if even.ProbabilityTeam1 != 0.5 || even.PredictedWinner != 2 || even.Confidence != 0 {
		t.Fatalf("no-history prediction = %+v", even)
	}
}

func TestAnalyze(t *testing.T) {
	if _, ok := Analyze(nil, 1, 2); ok {
		t.Fatal("expected no report without games")
	}
	r, ok := Analyze(pairing(), 1, 2)
	if !ok || len(r.RecentMeetings) != RecentMeetingsLimit || len(r.AllGames) != 5 {
		t.Fatalf("report = %+v", r)
	}
}

func TestFiltersAndForm(t *testing.T) {
	games := pairing()
	if n := len(FilterFinished(games)); n != 4 {
		t.Fatalf("finished = %d", n)
	}
	if n := len(FilterUpcoming(games)); n != 1 {
		t.Fatalf("upcoming = %d", n)
	}
	if n := len(FilterLive(append(games, game(9, 1, "Q2", 1, 3, nil, nil)))); n != 1 {
		t.Fatalf("live = %d", n)
	}

	f := TeamForm(games, 1)
	if f.GamesAnalyzed != 5 || f.Wins != 2 || f.Losses != 2 {
		t.Fatalf("form = %+v", f)
	}
	if !approx(f.WinRate, 0.4) {
		t.Fatalf("win rate = %v", f.WinRate)
	}
}

func TestSummarizeQuarters(t *testing.T) {
	g := game(1, 1, "Q3", 1, 2, intp(50), intp(48))
	g.Scores.Home.Quarter1, g.Scores.Away.Quarter1 = intp(25), intp(20)
	g.Scores.Home.Quarter2 = intp(25)
	s := Summarize(g)
	if s.Winner != "home" || s.PointDifferential != 2 || s.TotalPoints != 98 {
		t.Fatalf("summary = %+v", s)
	}
	if len(s.Quarters) != 1 || s.Quarters["quarter_1"].Difference != 5 {
		t.Fatalf("quarters = %+v", s.Quarters)
	}
}

func TestMinutesToFloat(t *testing.T) {
	tests := map[string]float64{
		"25:30": 25.5,
		"00:00": 0,
		"":      0,
		"12":    12,
		"ab:10": 0,
		"10:xx": 0,
	}
	for in, want := range tests {
		if got := MinutesToFloat(in); !approx(got, want) {
			t.Errorf("MinutesToFloat(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRatePlayer(t *testing.T) {
	line := provider.PlayerGameStatistics{
		Game:       provider.Ref{ID: 10},
		Player:     provider.PlayerRef{ID: 7, Name: "Tatum"},
		Minutes:    "30:00",
		Points:     30,
		Assists:    5,
		Rebounds:   provider.Rebounds{Total: 10},
		FieldGoals: provider.Shooting{Total: 10, Attempts: 20, Percentage: 50},
		ThreePoint: provider.Shooting{Total: 4, Attempts: 10, Percentage: 40},
	}
	e := RatePlayer(line)
	// 30 + 10 + 5 + 10*0.5 + 4*0.4*1.5
	if !approx(e.EfficiencyRating, 52.4) {
		t.Fatalf("rating = %v", e.EfficiencyRating)
	}
	if !approx(e.PerMinute.Points, 1) || !approx(e.EfficiencyPerMinute, 52.4/30) {
		t.Fatalf("per minute = %+v", e.PerMinute)
	}

	line.Minutes = "00:00"
	if e := RatePlayer(line); e.EfficiencyPerMinute != 0 || e.PerMinute.Points != 0 {
		t.Fatalf("DNP line = %+v", e)
	}
}

func TestPlayerAveragesAndTopPerformers(t *testing.T) {
	lines := []provider.PlayerGameStatistics{
		{Player: provider.PlayerRef{ID: 7, Name: "A"}, Points: 20, FieldGoals: provider.Shooting{Total: 8, Attempts: 16}, Minutes: "30:00"},
		{Player: provider.PlayerRef{ID: 7, Name: "A"}, Points: 30, FieldGoals: provider.Shooting{Total: 12, Attempts: 24}, Minutes: "36:00"},
		{Player: provider.PlayerRef{ID: 8, Name: "B"}, Points: 40, Rebounds: provider.Rebounds{Total: 2}},
	}
	avg, ok := PlayerAverages(lines, 7)
	if !ok || avg.GamesPlayed != 2 || !approx(avg.PointsPerGame, 25) || !approx(avg.FieldGoalPercentage, 50) || !approx(avg.MinutesPerGame, 33) {
		t.Fatalf("averages = %+v", avg)
	}
	if _, ok := PlayerAverages(lines, 99); ok {
		t.Fatal("expected no averages for unknown player")
	}

	top := TopPerformers(lines, "points", 2)
	if len(top) != 2 || top[0].PlayerID != 8 || top[1].Value != 30 {
		t.Fatalf("top = %+v", top)
	}
}

func TestImpact(t *testing.T) {
	s := provider.TeamGameStatistics{
		FieldGoals:    provider.Shooting{Total: 40, Attempts: 80, Percentage: 50},
		ThreePoint:    provider.Shooting{Total: 10, Attempts: 20, Percentage: 50},
		FreeThrows:    provider.Shooting{Total: 15, Attempts: 20, Percentage: 75},
		Rebounds:      provider.Rebounds{Total: 45, Defense: 35},
		Assists:       25,
		Steals:        8,
		Blocks:        5,
		Turnovers:     10,
		PersonalFouls: 18,
	}
	imp := Impact(s)
	// (40*0.5 + 10*0.5*1.5) / 100
	if !approx(imp.ShootingEfficiency, 0.275) {
		t.Fatalf("shooting = %v", imp.ShootingEfficiency)
	}
	if imp.EfficiencyRating != 40+10+15+45+25+8+5-10-18 {
		t.Fatalf("rating = %d", imp.EfficiencyRating)
	}
	if !approx(imp.ReboundEfficiency, 45.0/80) || !approx(imp.AssistToTurnoverRatio, 2.5) {
		t.Fatalf("impact = %+v", imp)
	}

	s.Turnovers = 0
	if imp := Impact(s); imp.AssistToTurnoverRatio != 25 || imp.StealsPerTurnover != 8 {
		t.Fatalf("no-turnover ratios = %+v", imp)
	}
	if ShootingEfficiency(provider.TeamGameStatistics{}) != 0 {
		t.Fatal("zero attempts should yield 0")
	}
}

func TestTeamStrength(t *testing.T) {
	var st provider.TeamStatistics
	st.Team.Name = "Celtics"
	st.Games.Played.All = 82
	st.Games.Wins.All.Percentage = "0.780"
	st.Games.Wins.Home.Percentage = "0.900"
	st.Games.Wins.Away.Percentage = "0.650"
	st.Points.For.Average.All = "120.6"
	st.Points.Against.Average.All = "109.2"

	s := TeamStrength(st)
	if !approx(s.WinRate, 0.78) || !approx(s.PointDifferential, 11.4) || !approx(s.HomeAdvantage, 0.25) || s.TotalGames != 82 {
		t.Fatalf("strength = %+v", s)
	}
	if s := TeamStrength(provider.TeamStatistics{}); s.WinRate != 0 {
		t.Fatalf("empty strength = %+v", s)
	}
}
