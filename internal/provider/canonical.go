// Package provider defines the canonical basketball entities decoded from
// the api-sports payloads.
//
// Optional fields are explicit on the types. Absent or null values resolve
// to zero values (or nil pointers) at decode time.
package provider

import (
	"encoding/json"
	"fmt"
	"sort"
)

// --------------------------------------------------------------------------
// Response envelope
// --------------------------------------------------------------------------

// Envelope is the common api-sports response wrapper.
type Envelope[T any] struct {
	Get        string          `json:"get"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
	Errors     Errors          `json:"errors"`
	Results    int             `json:"results"`
	Response   T               `json:"response"`
}

// Errors holds source-reported errors. The source sends either a list of
// strings or an object keyed by parameter name; both decode to a flat list.
type Errors []string

// UnmarshalJSON accepts [] / ["msg"] / {"param": "msg"} / null.
func (e *Errors) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*e = list
		return nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("decode errors: %w", err)
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s: %v", k, obj[k]))
	}
	*e = out
	return nil
}

// --------------------------------------------------------------------------
// Seasons
// --------------------------------------------------------------------------

// SeasonID is a season identifier as reported by the source: either a
// number (2019) or a string ("2019-2020").
type SeasonID struct {
	Label    string
	IsString bool
}

// StringSeason returns a string-kind season identifier.
func StringSeason(label string) SeasonID {
	return SeasonID{Label: label, IsString: true}
}

// NumericSeason returns a number-kind season identifier.
func NumericSeason(year int) SeasonID {
	label, _ := ExtractLabel(year)
	return SeasonID{Label: label}
}

func (s SeasonID) String() string { return s.Label }

// UnmarshalJSON decodes a number or a string.
func (s *SeasonID) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decode season: %w", err)
	}
	label, _ := ExtractLabel(v)
	_, isString := v.(string)
	*s = SeasonID{Label: label, IsString: isString}
	return nil
}

// MarshalJSON preserves the original kind.
func (s SeasonID) MarshalJSON() ([]byte, error) {
	if s.IsString || s.Label == "" {
		return json.Marshal(s.Label)
	}
	return []byte(s.Label), nil
}

// CoverageStatistics flags per-game box score availability.
type CoverageStatistics struct {
	Teams   bool `json:"teams"`
	Players bool `json:"players"`
}

// CoverageGames describes game-level coverage.
type CoverageGames struct {
	Statistics *CoverageStatistics `json:"statistics,omitempty"`
}

// Coverage is the per-season coverage descriptor.
type Coverage struct {
	Games     *CoverageGames `json:"games,omitempty"`
	Standings bool           `json:"standings"`
	Players   bool           `json:"players"`
	Odds      bool           `json:"odds"`
}

// Season is a league season with its coverage descriptor.
type Season struct {
	Season   SeasonID  `json:"season"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
	Coverage *Coverage `json:"coverage,omitempty"`
}

// --------------------------------------------------------------------------
// Countries, leagues, teams, players
// --------------------------------------------------------------------------

type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

// League is a competition with its seasons.
type League struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Logo    string   `json:"logo"`
	Country Country  `json:"country"`
	Seasons []Season `json:"seasons"`
}

// Team is a club or national side. The source spells the national flag
// "nationnal".
type Team struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	National bool     `json:"nationnal"`
	Logo     string   `json:"logo"`
	Country  *Country `json:"country,omitempty"`
}

type Player struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Country  string `json:"country"`
	Position string `json:"position"`
	Age      *int   `json:"age,omitempty"`
}

// --------------------------------------------------------------------------
// Games
// --------------------------------------------------------------------------

// Game status short codes.
const (
	StatusNotStarted   = "NS"
	StatusQuarter1     = "Q1"
	StatusQuarter2     = "Q2"
	StatusQuarter3     = "Q3"
	StatusQuarter4     = "Q4"
	StatusOvertime     = "OT"
	StatusBreak        = "BT"
	StatusHalftime     = "HT"
	StatusFinished     = "FT"
	StatusAfterOT      = "AOT"
	StatusAwarded      = "AWD"
	StatusPostponed    = "POST"
	StatusCancelled    = "CANC"
	StatusSuspended    = "SUSP"
	StatusAbandoned    = "ABD"
	StatusNotAvailable = "NA"
)

// LiveStatuses are the short codes of a game in progress.
var LiveStatuses = []string{
	StatusQuarter1, StatusQuarter2, StatusQuarter3, StatusQuarter4,
	StatusOvertime, StatusBreak, StatusHalftime,
}

// FinishedStatuses are the short codes of a completed game.
var FinishedStatuses = []string{StatusFinished, StatusAfterOT, StatusAwarded}

type GameStatus struct {
	Long  string `json:"long"`
	Short string `json:"short"`
	Timer string `json:"timer"`
}

func (s GameStatus) IsLive() bool      { return contains(LiveStatuses, s.Short) }
func (s GameStatus) IsFinished() bool  { return contains(FinishedStatuses, s.Short) }
func (s GameStatus) IsScheduled() bool { return s.Short == StatusNotStarted }

type GameLeague struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Season SeasonID `json:"season"`
	Logo   string   `json:"logo"`
}

type GameTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type GameTeams struct {
	Home GameTeam `json:"home"`
	Away GameTeam `json:"away"`
}

// QuarterScores is one side's score breakdown. Periods not yet played are nil.
type QuarterScores struct {
	Quarter1 *int `json:"quarter_1"`
	Quarter2 *int `json:"quarter_2"`
	Quarter3 *int `json:"quarter_3"`
	Quarter4 *int `json:"quarter_4"`
	OverTime *int `json:"over_time"`
	Total    *int `json:"total"`
}

// Quarter returns the score of quarter n (1-4).
func (q QuarterScores) Quarter(n int) *int {
	switch n {
	case 1:
		return q.Quarter1
	case 2:
		return q.Quarter2
	case 3:
		return q.Quarter3
	case 4:
		return q.Quarter4
	}
	return nil
}

// TotalOrZero returns the total score, or 0 when not reported.
func (q QuarterScores) TotalOrZero() int {
	if q.Total == nil {
		return 0
	}
	return *q.Total
}

type GameScores struct {
	Home QuarterScores `json:"home"`
	Away QuarterScores `json:"away"`
}

// Game is a scheduled, live or finished fixture.
type Game struct {
	ID        int        `json:"id"`
	Date      string     `json:"date"`
	Time      string     `json:"time"`
	Timestamp int64      `json:"timestamp"`
	Timezone  string     `json:"timezone"`
	Stage     string     `json:"stage"`
	Week      string     `json:"week"`
	Venue     string     `json:"venue"`
	Status    GameStatus `json:"status"`
	League    GameLeague `json:"league"`
	Country   Country    `json:"country"`
	Teams     GameTeams  `json:"teams"`
	Scores    GameScores `json:"scores"`
}

// --------------------------------------------------------------------------
// Box scores
// --------------------------------------------------------------------------

// Ref is an {"id": n} reference.
type Ref struct {
	ID int `json:"id"`
}

// PlayerRef identifies a player in a box score.
type PlayerRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Shooting is a makes/attempts split. A null percentage decodes as 0.
type Shooting struct {
	Total      int     `json:"total"`
	Attempts   int     `json:"attempts"`
	Percentage float64 `json:"percentage"`
}

type Rebounds struct {
	Total   int `json:"total"`
	Offence int `json:"offence"`
	Defense int `json:"defense"`
}

// TeamGameStatistics is one team's box score for one game.
type TeamGameStatistics struct {
	Game          Ref      `json:"game"`
	Team          Ref      `json:"team"`
	FieldGoals    Shooting `json:"field_goals"`
	ThreePoint    Shooting `json:"threepoint_goals"`
	FreeThrows    Shooting `json:"freethrows_goals"`
	Rebounds      Rebounds `json:"rebounds"`
	Assists       int      `json:"assists"`
	Steals        int      `json:"steals"`
	Blocks        int      `json:"blocks"`
	Turnovers     int      `json:"turnovers"`
	PersonalFouls int      `json:"personal_fouls"`
}

// PlayerGameStatistics is one player's box score for one game.
// Minutes are encoded "MM:SS".
type PlayerGameStatistics struct {
	Game          Ref       `json:"game"`
	Team          Ref       `json:"team"`
	Player        PlayerRef `json:"player"`
	Type          string    `json:"type"`
	Minutes       string    `json:"minutes"`
	FieldGoals    Shooting  `json:"field_goals"`
	ThreePoint    Shooting  `json:"threepoint_goals"`
	FreeThrows    Shooting  `json:"freethrows_goals"`
	Rebounds      Rebounds  `json:"rebounds"`
	Assists       int       `json:"assists"`
	Steals        int       `json:"steals"`
	Blocks        int       `json:"blocks"`
	Turnovers     int       `json:"turnovers"`
	PersonalFouls int       `json:"personal_fouls"`
	Points        int       `json:"points"`
}

// --------------------------------------------------------------------------
// Season aggregate statistics (/statistics)
// --------------------------------------------------------------------------

type Split struct {
	Home int `json:"home"`
	Away int `json:"away"`
	All  int `json:"all"`
}

type StringSplit struct {
	Home string `json:"home"`
	Away string `json:"away"`
	All  string `json:"all"`
}

type Record struct {
	Total      int    `json:"total"`
	Percentage string `json:"percentage"`
}

type RecordSplit struct {
	Home Record `json:"home"`
	Away Record `json:"away"`
	All  Record `json:"all"`
}

type GamesRecord struct {
	Played Split       `json:"played"`
	Wins   RecordSplit `json:"wins"`
	Draws  RecordSplit `json:"draws"`
	Loses  RecordSplit `json:"loses"`
}

type PointsSplit struct {
	Total   Split       `json:"total"`
	Average StringSplit `json:"average"`
}

type Points struct {
	For     PointsSplit `json:"for"`
	Against PointsSplit `json:"against"`
}

// TeamStatistics is a team's season aggregate in one league.
type TeamStatistics struct {
	League  GameLeague  `json:"league"`
	Country Country     `json:"country"`
	Team    GameTeam    `json:"team"`
	Games   GamesRecord `json:"games"`
	Points  Points      `json:"points"`
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
