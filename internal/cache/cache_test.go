package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(true)
	defer c.Close()

	if _, _, ok := c.Get(ctx, "leagues"); ok {
		t.Fatal("expected miss on empty cache")
	}

	etag := c.Set(ctx, "leagues", []byte(`[1,2]`), time.Minute)
	data, got, ok := c.Get(ctx, "leagues")
	if !ok || string(data) != `[1,2]` || got != etag {
		t.Fatalf("Get = %q, %q, %v", data, got, ok)
	}
	if etag != ComputeETag([]byte(`[1,2]`)) {
		t.Fatalf("etag = %q", etag)
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(true)
	defer c.Close()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set(ctx, "games", []byte(`{}`), 30*time.Second)
	now = now.Add(31 * time.Second)
	if _, _, ok := c.Get(ctx, "games"); ok {
		t.Fatal("expected expired entry to miss")
	}

	stats := c.Stats(ctx)
	if stats["total_keys"] != 1 || stats["expired_keys"] != 1 {
		t.Fatalf("stats = %v", stats)
	}
	c.evict()
	if stats := c.Stats(ctx); stats["total_keys"] != 0 {
		t.Fatalf("stats after evict = %v", stats)
	}
}

func TestMemoryDisabled(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(false)
	etag := c.Set(ctx, "k", []byte("v"), time.Minute)
	if etag == "" {
		t.Fatal("disabled cache should still compute an etag")
	}
	if _, _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("disabled cache should never hit")
	}
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("x"))
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{"*", true},
		{etag, true},
		{`W/"0000"`, false},
	}
	for _, tt := range tests {
		if got := CheckETagMatch(tt.header, etag); got != tt.want {
			t.Errorf("CheckETagMatch(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestRedis(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	c, err := NewRedis(ctx, url, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	defer c.Close()

	key := "test:" + time.Now().Format(time.RFC3339Nano)
	etag := c.Set(ctx, key, []byte(`{"ok":true}`), time.Minute)
	data, got, ok := c.Get(ctx, key)
	if !ok || string(data) != `{"ok":true}` || got != etag {
		t.Fatalf("Get = %q, %q, %v", data, got, ok)
	}
	if _, _, ok := c.Get(ctx, key+":missing"); ok {
		t.Fatal("expected miss")
	}
	if stats := c.Stats(ctx); stats["connected"] != true {
		t.Fatalf("stats = %v", stats)
	}
}

func TestRedisBadURL(t *testing.T) {
	if _, err := NewRedis(context.Background(), "not-a-url", slog.Default()); err == nil {
		t.Fatal("expected parse error")
	}
}
