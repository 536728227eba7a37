package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	r := New()
	r.ObserveSourceCall("/teams", "ok", 20*time.Millisecond)
	r.ObserveSourceCall("/teams", "rejected", 0)
	r.ObserveSourceCall("/teams", "ok", 10*time.Millisecond)
	r.RecordUpsert("league", true, nil)
	r.RecordUpsert("league", false, nil)
	r.RecordUpsert("league", false, errors.New("boom"))
	r.ObservePass("live", false, time.Second)
	r.SetCollectorRunning(true)
	r.SetSourceUp(true)

	if got := testutil.ToFloat64(r.sourceCalls.WithLabelValues("/teams", "ok")); got != 2 {
		t.Fatalf("ok calls = %v", got)
	}
	if got := testutil.ToFloat64(r.sourceCalls.WithLabelValues("/teams", "rejected")); got != 1 {
		t.Fatalf("rejected calls = %v", got)
	}
	for _, result := range []string{"created", "existing", "failed"} {
		if got := testutil.ToFloat64(r.upserts.WithLabelValues("league", result)); got != 1 {
			t.Fatalf("upserts[%s] = %v", result, got)
		}
	}
	if got := testutil.ToFloat64(r.passes.WithLabelValues("live", "ok")); got != 1 {
		t.Fatalf("passes = %v", got)
	}
	if got := testutil.ToFloat64(r.collectorActive); got != 1 {
		t.Fatalf("collector_running = %v", got)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	r.ObserveSourceCall("/games", "ok", time.Millisecond)
	r.RecordUpsert("team", true, nil)
	r.ObservePass("historical", true, time.Second)
	r.SetCollectorRunning(true)
	r.SetSourceUp(false)
	r.ObserveRequest("/health", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandlerExposesInstruments(t *testing.T) {
	r := New()
	r.ObserveRequest("/data/leagues", 200, 5*time.Millisecond)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `hoops_http_requests_total{route="/data/leagues",status="200"} 1`) {
		t.Fatalf("exposition missing request counter:\n%s", body)
	}
}
