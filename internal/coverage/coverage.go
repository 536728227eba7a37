// Package coverage decides which league seasons carry complete box-score
// coverage.
package coverage

import "github.com/albapepper/hoops-collector/internal/provider"

// Flags are the coverage booleans persisted on a season row.
type Flags struct {
	TeamStats   bool
	PlayerStats bool
	Standings   bool
	Odds        bool
}

// Complete reports whether both team and player game statistics are
// flagged available. A nil or partial descriptor is incomplete.
func Complete(c *provider.Coverage) bool {
	if c == nil || c.Games == nil || c.Games.Statistics == nil {
		return false
	}
	return c.Games.Statistics.Teams && c.Games.Statistics.Players
}

// FlagsFor derives the persisted flags. Team and player statistics share the
// single Complete signal.
func FlagsFor(c *provider.Coverage) Flags {
	full := Complete(c)
	f := Flags{TeamStats: full, PlayerStats: full}
	if c != nil {
		f.Standings = c.Standings
		f.Odds = c.Odds
	}
	return f
}

// Filter keeps only complete seasons and drops leagues left with none.
// The input slice and its leagues are not modified.
func Filter(leagues []provider.League) []provider.League {
	return filter(leagues, func(provider.Season) bool { return true })
}

// FilterSeason is Filter restricted to seasons with the given label.
func FilterSeason(leagues []provider.League, label string) []provider.League {
	return filter(leagues, func(s provider.Season) bool { return s.Season.Label == label })
}

func filter(leagues []provider.League, keep func(provider.Season) bool) []provider.League {
	out := make([]provider.League, 0, len(leagues))
	for _, l := range leagues {
		var seasons []provider.Season
		for _, s := range l.Seasons {
			if Complete(s.Coverage) && keep(s) {
				seasons = append(seasons, s)
			}
		}
		if len(seasons) == 0 {
			continue
		}
		l.Seasons = seasons
		out = append(out, l)
	}
	return out
}
