package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("COLLECTOR_TARGET_LEAGUES", "")
	t.Setenv("COLLECTOR_TARGETS_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LiveInterval != 60*time.Second {
		t.Fatalf("LiveInterval = %s", cfg.LiveInterval)
	}
	if cfg.BasketballAPIRPM != 10 {
		t.Fatalf("BasketballAPIRPM = %d", cfg.BasketballAPIRPM)
	}
	if len(cfg.Targets) != 2 || cfg.Targets[0].ID != 12 || cfg.Targets[1].ID != 13 {
		t.Fatalf("Targets = %+v", cfg.Targets)
	}
}

func TestLoadRequiresDatabaseURLForPostgres(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
	t.Setenv("STORE_BACKEND", "sqlite")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLoadRequiresRedisURL(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without REDIS_URL")
	}
}

func TestParseTargets(t *testing.T) {
	got, err := ParseTargets("12:NBA, 13:Euroleague,20")
	if err != nil {
		t.Fatalf("ParseTargets: %v", err)
	}
	want := []Target{{12, "NBA"}, {13, "Euroleague"}, {20, ""}}
	if len(got) != len(want) {
		t.Fatalf("len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("target %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	for _, bad := range []string{"x:NBA", "0:Zero", " , "} {
		if _, err := ParseTargets(bad); err == nil {
			t.Errorf("ParseTargets(%q) expected error", bad)
		}
	}
}

func TestLoadTargetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	doc := "leagues:\n  - id: 12\n    name: NBA\n  - id: 120\n    name: LNB\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("COLLECTOR_TARGETS_FILE", path)
	t.Setenv("COLLECTOR_TARGET_LEAGUES", "1:Ignored")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Targets) != 2 || cfg.Targets[1] != (Target{ID: 120, Name: "LNB"}) {
		t.Fatalf("Targets = %+v", cfg.Targets)
	}

	if err := os.WriteFile(path, []byte("leagues: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTargetsFile(path); err == nil {
		t.Fatal("expected error for empty league list")
	}
}
