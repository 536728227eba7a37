package season

import (
	"testing"
	"time"

	"github.com/albapepper/hoops-collector/internal/provider"
)

func ids(labels ...string) []provider.SeasonID {
	out := make([]provider.SeasonID, 0, len(labels))
	for _, l := range labels {
		out = append(out, provider.StringSeason(l))
	}
	return out
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		ids  []provider.SeasonID
		want string
	}{
		{"preference order", ids("2021-2022", "2022-2023", "2023-2024"), "2023-2024"},
		{"second preference", ids("2022-2023", "2021-2022", "2019-2020"), "2022-2023"},
		{"lexicographic max", ids("2020-2021"), "2020-2021"},
		{"newer than preferred", ids("2024-2025", "2019-2020"), "2024-2025"},
		{"empty", nil, Fallback},
		{"numeric only", []provider.SeasonID{provider.NumericSeason(2023), provider.NumericSeason(2024)}, Fallback},
		{"malformed strings", ids("2023", "23-24", "2023-2024x"), Fallback},
		{"mixed", append(ids("2018-2019"), provider.NumericSeason(2024)), "2018-2019"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.ids); got != tt.want {
				t.Fatalf("Select() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectReturnsMember(t *testing.T) {
	in := ids("2015-2016", "2001-2002", "2010-2011")
	got := Select(in)
	for _, id := range in {
		if id.Label == got {
			return
		}
	}
	t.Fatalf("Select() = %q, not a member of input", got)
}

func TestLatest(t *testing.T) {
	if _, ok := Latest(nil); ok {
		t.Fatal("expected no latest for empty input")
	}
	got, ok := Latest([]string{"2022-2023", "2024-2025", "2023-2024"})
	if !ok || got != "2024-2025" {
		t.Fatalf("Latest() = %q, %v", got, ok)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantNil bool
		wantErr bool
	}{
		{in: "2023-10-24", want: "2023-10-24T00:00:00Z"},
		{in: "2023-10-24T19:30:00Z", want: "2023-10-24T19:30:00Z"},
		{in: "2023-10-24T19:30:00+02:00", want: "2023-10-24T17:30:00Z"},
		{in: "", wantNil: true},
		{in: "not-a-date", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error: %v", tt.in, err)
			continue
		}
		if tt.wantNil {
			if got != nil {
				t.Errorf("ParseDate(%q) = %v, want nil", tt.in, got)
			}
			continue
		}
		if s := got.UTC().Format(time.RFC3339); s != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, s, tt.want)
		}
	}
}

func TestYearsAndIsCurrent(t *testing.T) {
	start, end, ok := Years("2023-2024")
	if !ok || start != 2023 || end != 2024 {
		t.Fatalf("Years() = %d, %d, %v", start, end, ok)
	}
	if start, end, ok := Years("2019"); !ok || start != 2019 || end != 2019 {
		t.Fatalf("Years(2019) = %d, %d, %v", start, end, ok)
	}
	if _, _, ok := Years("abc"); ok {
		t.Fatal("expected failure for malformed label")
	}

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !IsCurrent("2023-2024", now) {
		t.Fatal("2023-2024 should be current in March 2024")
	}
	if IsCurrent("2021-2022", now) {
		t.Fatal("2021-2022 should not be current in 2024")
	}
}
