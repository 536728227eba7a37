package provider

import (
	"encoding/json"
	"testing"
)

func TestSeasonIDRoundTripKeepsKind(t *testing.T) {
	var ids []SeasonID
	if err := json.Unmarshal([]byte(`[2019, "2019-2020"]`), &ids); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ids[0] != NumericSeason(2019) || ids[1] != StringSeason("2019-2020") {
		t.Fatalf("ids = %+v", ids)
	}
	out, err := json.Marshal(ids)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `[2019,"2019-2020"]` {
		t.Fatalf("marshal = %s", out)
	}
}

func TestErrorsAcceptsListAndObject(t *testing.T) {
	var env Envelope[[]Team]
	if err := json.Unmarshal([]byte(`{"errors":{"season":"bad","league":"missing"},"response":[]}`), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(env.Errors) != 2 || env.Errors[0] != "league: missing" {
		t.Fatalf("errors = %v", env.Errors)
	}

	env = Envelope[[]Team]{}
	if err := json.Unmarshal([]byte(`{"errors":[],"response":[{"id":1,"name":"Lakers","nationnal":false,"country":{"name":"USA","code":"US"}}]}`), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(env.Errors) != 0 || env.Response[0].Country == nil || env.Response[0].Country.Code != "US" {
		t.Fatalf("env = %+v", env)
	}
}

func TestGameDecodeOptionalScores(t *testing.T) {
	var g Game
	body := `{"id":5,"status":{"long":"Quarter 2","short":"Q2"},
		"scores":{"home":{"quarter_1":25,"quarter_2":null,"total":25},"away":{"quarter_1":null}}}`
	if err := json.Unmarshal([]byte(body), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !g.Status.IsLive() || g.Status.IsFinished() || g.Status.IsScheduled() {
		t.Fatalf("status helpers wrong for %q", g.Status.Short)
	}
	if q := g.Scores.Home.Quarter(1); q == nil || *q != 25 {
		t.Fatalf("home q1 = %v", q)
	}
	if g.Scores.Home.Quarter(2) != nil || g.Scores.Away.TotalOrZero() != 0 {
		t.Fatal("missing periods should stay nil")
	}
}

func TestExtractLabel(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
		ok   bool
	}{
		{"2023-2024", "2023-2024", true},
		{float64(2023), "2023", true},
		{2023, "2023", true},
		{json.Number("2021"), "2021", true},
		{"", "", false},
		{nil, "", false},
		{true, "", false},
	}
	for _, tt := range tests {
		got, ok := ExtractLabel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExtractLabel(%v) = %q, %v", tt.in, got, ok)
		}
	}
}
