package apisports

import (
	"net/url"
	"strconv"
	"strings"
)

// MaxGameIDs caps the hyphen-joined ids filter on box-score endpoints.
const MaxGameIDs = 20

// Zero-valued fields are treated as unset and never sent.

type CountryFilter struct {
	ID     int
	Name   string
	Code   string
	Search string
}

func (f CountryFilter) values() url.Values {
	v := url.Values{}
	setInt(v, "id", f.ID)
	setStr(v, "name", f.Name)
	setStr(v, "code", f.Code)
	setStr(v, "search", f.Search)
	return v
}

type LeagueFilter struct {
	ID        int
	Name      string
	CountryID int
	Country   string
	Type      string
	Season    string
	Search    string
	Code      string
}

func (f LeagueFilter) values() url.Values {
	v := url.Values{}
	setInt(v, "id", f.ID)
	setStr(v, "name", f.Name)
	setInt(v, "country_id", f.CountryID)
	setStr(v, "country", f.Country)
	setStr(v, "type", f.Type)
	setStr(v, "season", f.Season)
	setStr(v, "search", f.Search)
	setStr(v, "code", f.Code)
	return v
}

type TeamFilter struct {
	ID        int
	Name      string
	CountryID int
	Country   string
	League    int
	Season    string
	Search    string
}

func (f TeamFilter) values() url.Values {
	v := url.Values{}
	setInt(v, "id", f.ID)
	setStr(v, "name", f.Name)
	setInt(v, "country_id", f.CountryID)
	setStr(v, "country", f.Country)
	setInt(v, "league", f.League)
	setStr(v, "season", f.Season)
	setStr(v, "search", f.Search)
	return v
}

// TeamStatisticsFilter selects a team's season aggregate. League, Season
// and Team are mandatory.
type TeamStatisticsFilter struct {
	League int
	Season string
	Team   int
	Date   string
}

func (f TeamStatisticsFilter) values() url.Values {
	v := url.Values{}
	setInt(v, "league", f.League)
	setStr(v, "season", f.Season)
	setInt(v, "team", f.Team)
	setStr(v, "date", f.Date)
	return v
}

type PlayerFilter struct {
	ID     int
	Team   int
	Season string
	Search string
}

func (f PlayerFilter) values() url.Values {
	v := url.Values{}
	setInt(v, "id", f.ID)
	setInt(v, "team", f.Team)
	setStr(v, "season", f.Season)
	setStr(v, "search", f.Search)
	return v
}

// GameFilter selects games. Date is YYYY-MM-DD.
type GameFilter struct {
	ID       int
	Date     string
	League   int
	Season   string
	Team     int
	Timezone string
}

func (f GameFilter) values() url.Values {
	v := url.Values{}
	setInt(v, "id", f.ID)
	setStr(v, "date", f.Date)
	setInt(v, "league", f.League)
	setStr(v, "season", f.Season)
	setInt(v, "team", f.Team)
	setStr(v, "timezone", f.Timezone)
	return v
}

type GameStatsFilter struct {
	ID  int
	IDs []int
}

func (f GameStatsFilter) values() url.Values {
	v := url.Values{}
	setInt(v, "id", f.ID)
	setStr(v, "ids", JoinIDs(f.IDs))
	return v
}

type PlayerGameStatsFilter struct {
	ID     int
	IDs    []int
	Player int
	Season string
}

func (f PlayerGameStatsFilter) values() url.Values {
	v := url.Values{}
	setInt(v, "id", f.ID)
	setStr(v, "ids", JoinIDs(f.IDs))
	setInt(v, "player", f.Player)
	setStr(v, "season", f.Season)
	return v
}

// HeadToHeadFilter narrows a pairing's history.
type HeadToHeadFilter struct {
	Date     string
	League   int
	Season   string
	Timezone string
}

func (f HeadToHeadFilter) values(teamA, teamB int) url.Values {
	v := url.Values{}
	v.Set("h2h", strconv.Itoa(teamA)+"-"+strconv.Itoa(teamB))
	setStr(v, "date", f.Date)
	setInt(v, "league", f.League)
	setStr(v, "season", f.Season)
	setStr(v, "timezone", f.Timezone)
	return v
}

// JoinIDs encodes ids the way the source expects: "1-2-3".
func JoinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "-")
}

// SplitIDs parses a hyphen-joined id list. Blank members are skipped.
func SplitIDs(s string) ([]int, error) {
	var ids []int
	for _, p := range strings.Split(s, "-") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func setInt(v url.Values, key string, n int) {
	if n != 0 {
		v.Set(key, strconv.Itoa(n))
	}
}

func setStr(v url.Values, key, s string) {
	if s != "" {
		v.Set(key, s)
	}
}
