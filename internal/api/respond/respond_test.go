package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWriteJSONCacheTiers(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		hit  bool
		want string
		xhit string
	}{
		{"games", 30 * time.Second, false, "public, max-age=30", "MISS"},
		{"statistics", time.Hour, true, "public, max-age=3600, stale-while-revalidate=1800", "HIT"},
		{"reference", 24 * time.Hour, false, "public, max-age=86400, stale-while-revalidate=43200", "MISS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteJSON(rec, []byte(`{"results":0}`), `W/"abc"`, tt.ttl, tt.hit)
			if got := rec.Header().Get("Cache-Control"); got != tt.want {
				t.Errorf("Cache-Control = %q, want %q", got, tt.want)
			}
			if got := rec.Header().Get("X-Cache"); got != tt.xhit {
				t.Errorf("X-Cache = %q, want %q", got, tt.xhit)
			}
			if rec.Header().Get("ETag") != `W/"abc"` || rec.Body.String() != `{"results":0}` {
				t.Errorf("etag %q body %q", rec.Header().Get("ETag"), rec.Body.String())
			}
		})
	}
}

func TestWriteErrorDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorDetail(rec, http.StatusBadGateway, CodeSourceUnavailable, "Basketball source unavailable", "status 500")

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-cache, no-store, must-revalidate" {
		t.Fatalf("Cache-Control = %q", got)
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != CodeSourceUnavailable || body.Error.Detail != "status 500" {
		t.Fatalf("body = %+v", body)
	}

	rec = httptest.NewRecorder()
	WriteError(rec, http.StatusConflict, CodeAlreadyRunning, "busy")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Body.String(); got != "{\"error\":{\"code\":\"ALREADY_RUNNING\",\"message\":\"busy\"}}\n" {
		t.Fatalf("body = %s", got)
	}
}

func TestWriteJSONObjectIsUncached(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONObject(rec, http.StatusAccepted, map[string]string{"status": "started"})
	if rec.Code != http.StatusAccepted || rec.Header().Get("Cache-Control") != "no-cache" {
		t.Fatalf("%d %q", rec.Code, rec.Header().Get("Cache-Control"))
	}
	if rec.Header().Get("X-Cache") != "" {
		t.Fatal("uncached responses carry no cache verdict")
	}
}
