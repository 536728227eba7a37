// Package season picks the season that drives bulk league and team fetches.
//
// The free data plan populates older seasons more reliably than the newest
// one, so selection walks a fixed preference list instead of taking the max.
package season

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/hoops-collector/internal/provider"
)

// Fallback is returned when no well-formed season is available.
const Fallback = "2023-2024"

// Preferred seasons, tried in order.
var Preferred = []string{"2023-2024", "2022-2023", "2021-2022"}

var spanPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// Select chooses one season label from a mixed identifier list.
// Only string identifiers shaped YYYY-YYYY are considered.
func Select(ids []provider.SeasonID) string {
	var spans []string
	for _, id := range ids {
		if id.IsString && spanPattern.MatchString(id.Label) {
			spans = append(spans, id.Label)
		}
	}
	if len(spans) == 0 {
		return Fallback
	}

	for _, p := range Preferred {
		for _, s := range spans {
			if s == p {
				return p
			}
		}
	}

	latest, _ := Latest(spans)
	return latest
}

// Latest returns the lexicographically greatest label.
func Latest(labels []string) (string, bool) {
	if len(labels) == 0 {
		return "", false
	}
	sorted := append([]string(nil), labels...)
	sort.Strings(sorted)
	return sorted[len(sorted)-1], true
}

// ParseDate parses an ISO-8601 season boundary. A trailing Z is treated as
// +00:00 and bare dates are accepted. Empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("parse season date %q", s)
}

// Years splits a label into its start and end years. "2019" yields
// (2019, 2019).
func Years(label string) (start, end int, ok bool) {
	parts := strings.SplitN(label, "-", 2)
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	if len(parts) == 1 {
		return start, start, true
	}
	end, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// IsCurrent reports whether now falls within the season's years. A split
// season is current from its start year through its end year.
func IsCurrent(label string, now time.Time) bool {
	start, end, ok := Years(label)
	if !ok {
		return false
	}
	y := now.Year()
	return y >= start && y <= end
}
