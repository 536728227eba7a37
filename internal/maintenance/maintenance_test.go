package maintenance

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/albapepper/hoops-collector/internal/collector"
	"github.com/albapepper/hoops-collector/internal/metrics"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeProber struct {
	up    bool
	calls atomic.Int32
}

func (p *fakeProber) CheckReachability(context.Context) bool {
	p.calls.Add(1)
	return p.up
}

type fakeRefresher struct {
	running bool
	err     error
	calls   atomic.Int32
}

func (r *fakeRefresher) RunHistorical(context.Context) (collector.HistoricalResult, error) {
	if r.running {
		return collector.HistoricalResult{}, collector.ErrAlreadyRunning
	}
	r.calls.Add(1)
	return collector.HistoricalResult{Season: "2023-2024"}, r.err
}

func scrape(t *testing.T, rec *metrics.Recorder) string {
	t.Helper()
	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}

func TestProbeSetsGauge(t *testing.T) {
	rec := metrics.New()
	src := &fakeProber{up: true}
	if !probe(context.Background(), src, rec, discard) {
		t.Fatal("expected reachable")
	}
	if body := scrape(t, rec); !strings.Contains(body, "hoops_source_up 1") {
		t.Fatalf("source_up not set:\n%s", body)
	}

	src.up = false
	probe(context.Background(), src, rec, discard)
	if body := scrape(t, rec); !strings.Contains(body, "hoops_source_up 0") {
		t.Fatalf("source_up not cleared:\n%s", body)
	}
}

func TestRefreshSkipsWhileRunning(t *testing.T) {
	r := &fakeRefresher{running: true}
	if refresh(context.Background(), r, discard) {
		t.Fatal("refresh should skip while the collector runs")
	}
	if r.calls.Load() != 0 {
		t.Fatalf("calls = %d", r.calls.Load())
	}

	r.running = false
	if !refresh(context.Background(), r, discard) || r.calls.Load() != 1 {
		t.Fatalf("refresh did not run, calls = %d", r.calls.Load())
	}

	r.err = errors.New("storage down")
	if refresh(context.Background(), r, discard) {
		t.Fatal("failed pass should report false")
	}
}

func TestStartRunsTickersUntilCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := &fakeProber{up: true}
	ref := &fakeRefresher{}

	done := make(chan struct{})
	go func() {
		Start(ctx, Tasks{Source: src, Collector: ref}, Config{
			ProbeInterval:   5 * time.Millisecond,
			RefreshInterval: 5 * time.Millisecond,
		}, discard)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for src.calls.Load() < 2 || ref.calls.Load() < 1 {
		select {
		case <-deadline:
			t.Fatalf("tickers did not fire: probe=%d refresh=%d", src.calls.Load(), ref.calls.Load())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestStartWithNothingConfigured(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	Start(ctx, Tasks{}, DefaultConfig(), discard)
}
