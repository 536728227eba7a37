package collector

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/albapepper/hoops-collector/internal/config"
	"github.com/albapepper/hoops-collector/internal/coverage"
	"github.com/albapepper/hoops-collector/internal/metrics"
	"github.com/albapepper/hoops-collector/internal/provider"
	"github.com/albapepper/hoops-collector/internal/provider/apisports"
	"github.com/albapepper/hoops-collector/internal/store"
)

// fakeSource is a scripted Source with call counters.
type fakeSource struct {
	seasons    []provider.SeasonID
	seasonsErr error
	leagues    []provider.League
	leaguesErr error
	teams      map[int][]provider.Team
	teamsErr   map[int]error
	live       []provider.Game
	liveErr    error
	livePanic  bool

	seasonsPanic bool
	seasonsGate  chan struct{}

	seasonCalls atomic.Int32
	leagueCalls atomic.Int32
	teamCalls   atomic.Int32
	liveCalls   atomic.Int32

	mu            sync.Mutex
	leagueFilter  apisports.LeagueFilter
	applyCoverage bool
	teamFilters   []apisports.TeamFilter
}

func (f *fakeSource) Seasons(context.Context) (*provider.Envelope[[]provider.SeasonID], error) {
	f.seasonCalls.Add(1)
	if f.seasonsPanic {
		panic("seasons decoder exploded")
	}
	if f.seasonsGate != nil {
		<-f.seasonsGate
	}
	if f.seasonsErr != nil {
		return nil, f.seasonsErr
	}
	return &provider.Envelope[[]provider.SeasonID]{Results: len(f.seasons), Response: f.seasons}, nil
}

func (f *fakeSource) Leagues(_ context.Context, filter apisports.LeagueFilter, applyCoverage bool) (*provider.Envelope[[]provider.League], error) {
	f.leagueCalls.Add(1)
	f.mu.Lock()
	f.leagueFilter, f.applyCoverage = filter, applyCoverage
	f.mu.Unlock()
	if f.leaguesErr != nil {
		return nil, f.leaguesErr
	}
	leagues := f.leagues
	if applyCoverage {
		leagues = coverage.Filter(leagues)
	}
	return &provider.Envelope[[]provider.League]{Results: len(leagues), Response: leagues}, nil
}

func (f *fakeSource) Teams(_ context.Context, filter apisports.TeamFilter) (*provider.Envelope[[]provider.Team], error) {
	f.teamCalls.Add(1)
	f.mu.Lock()
	f.teamFilters = append(f.teamFilters, filter)
	f.mu.Unlock()
	if err := f.teamsErr[filter.League]; err != nil {
		return nil, err
	}
	teams := f.teams[filter.League]
	return &provider.Envelope[[]provider.Team]{Results: len(teams), Response: teams}, nil
}

func (f *fakeSource) LiveGames(context.Context) (*provider.Envelope[[]provider.Game], error) {
	f.liveCalls.Add(1)
	if f.livePanic {
		panic("decoder exploded")
	}
	if f.liveErr != nil {
		return nil, f.liveErr
	}
	return &provider.Envelope[[]provider.Game]{Results: len(f.live), Response: f.live}, nil
}

func fullCoverage() *provider.Coverage {
	return &provider.Coverage{
		Games:     &provider.CoverageGames{Statistics: &provider.CoverageStatistics{Teams: true, Players: true}},
		Standings: true,
	}
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		seasons: []provider.SeasonID{
			provider.StringSeason("2021-2022"),
			provider.StringSeason("2022-2023"),
			provider.StringSeason("2023-2024"),
			provider.NumericSeason(2024),
		},
		leagues: []provider.League{
			{
				ID: 12, Name: "NBA", Type: "League",
				Country: provider.Country{ID: 5, Name: "USA", Code: "US"},
				Seasons: []provider.Season{
					{Season: provider.StringSeason("2022-2023"), Start: "2022-10-18", End: "2023-06-12", Coverage: fullCoverage()},
					{Season: provider.StringSeason("2023-2024"), Start: "2023-10-24T00:00:00Z", End: "garbage", Coverage: fullCoverage()},
					{Season: provider.StringSeason("2024-2025"), Coverage: &provider.Coverage{}},
				},
			},
			{
				ID: 13, Name: "Euroleague", Type: "Cup",
				Seasons: []provider.Season{{Season: provider.StringSeason("2023-2024"), Coverage: fullCoverage()}},
			},
		},
		teams: map[int][]provider.Team{
			12: {
				{ID: 132, Name: "Boston Celtics", Country: &provider.Country{Name: "USA", Code: "US"}},
				{ID: 145, Name: "Los Angeles Lakers"},
			},
		},
		teamsErr: map[int]error{13: errors.New("source down")},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCollector(src Source, st store.Store, interval time.Duration) *Collector {
	return New(src, st, Options{
		Targets:      config.DefaultTargets,
		LiveInterval: interval,
		Metrics:      metrics.New(),
	}, quietLogger())
}

func TestCollectHistorical(t *testing.T) {
	src := newFakeSource()
	st := store.NewMemory()
	c := newCollector(src, st, time.Hour)
	ctx := context.Background()

	res, err := c.CollectHistorical(ctx)
	if err != nil {
		t.Fatalf("CollectHistorical: %v", err)
	}
	if res.Season != "2023-2024" {
		t.Fatalf("season = %q", res.Season)
	}
	if !src.applyCoverage || src.leagueFilter.Season != "2023-2024" {
		t.Fatalf("leagues fetched with %+v coverage=%v", src.leagueFilter, src.applyCoverage)
	}
	if res.LeaguesUpserted != 2 || res.LeaguesCreated != 2 {
		t.Fatalf("leagues = %d (new %d)", res.LeaguesUpserted, res.LeaguesCreated)
	}
	if res.SeasonsUpserted != 3 {
		t.Fatalf("seasons = %d, want 3 covered seasons", res.SeasonsUpserted)
	}
	if res.TeamsUpserted != 2 {
		t.Fatalf("teams = %d", res.TeamsUpserted)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want the Euroleague team fetch failure only", res.Errors)
	}

	if len(src.teamFilters) != 2 || src.teamFilters[0] != (apisports.TeamFilter{League: 12, Season: "2023-2024"}) {
		t.Fatalf("team filters = %+v", src.teamFilters)
	}

	seasons, _ := st.Seasons().ByLeague(ctx, 12)
	if len(seasons) != 2 {
		t.Fatalf("stored NBA seasons = %d", len(seasons))
	}
	for _, s := range seasons {
		if !s.HasTeamStats || !s.HasPlayerStats || !s.HasStandings {
			t.Fatalf("coverage flags not set: %+v", s)
		}
	}
	latest := seasons[1]
	if latest.StartDate == nil || latest.EndDate != nil {
		t.Fatalf("unparsable end date should be left nil: %+v", latest)
	}

	teams, _ := st.Teams().List(ctx, store.Page{})
	if len(teams) != 2 || teams[0].Code != "US" || teams[0].Country != "USA" {
		t.Fatalf("stored teams = %+v", teams)
	}

	again, err := c.CollectHistorical(ctx)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if again.LeaguesUpserted != 2 || again.LeaguesCreated != 0 || again.TeamsCreated != 0 {
		t.Fatalf("second pass should find existing rows: %s", again.Summary())
	}
	if c.Status().LastHistorical == nil {
		t.Fatal("status missing last historical result")
	}
}

func TestCollectHistoricalSkipsLeagueWithoutSeasons(t *testing.T) {
	src := newFakeSource()
	src.leagues = src.leagues[1:] // Euroleague only
	delete(src.teamsErr, 13)
	c := newCollector(src, store.NewMemory(), time.Hour)

	res, err := c.CollectHistorical(context.Background())
	if err != nil {
		t.Fatalf("CollectHistorical: %v", err)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("missing seasons must be a warning, got errors %v", res.Errors)
	}
	if n := src.teamCalls.Load(); n != 1 {
		t.Fatalf("team fetches = %d, want 1 (NBA skipped)", n)
	}
}

func TestCollectHistoricalFetchFailuresAreNotFatal(t *testing.T) {
	src := newFakeSource()
	src.seasonsErr = errors.New("timeout")
	c := newCollector(src, store.NewMemory(), time.Hour)

	res, err := c.CollectHistorical(context.Background())
	if err != nil {
		t.Fatalf("CollectHistorical: %v", err)
	}
	if res.LeaguesUpserted != 0 || src.leagueCalls.Load() != 0 {
		t.Fatal("leagues must not be fetched without seasons")
	}
	if n := src.teamCalls.Load(); n != 0 {
		t.Fatalf("teams fetched with no stored seasons: %d", n)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v", res.Errors)
	}
}

type failingLeagues struct {
	store.LeagueRepository
	failID int
}

func (f failingLeagues) GetOrCreate(ctx context.Context, l store.League) (store.League, bool, error) {
	if l.ID == f.failID {
		return store.League{}, false, errors.New("insert failed")
	}
	return f.LeagueRepository.GetOrCreate(ctx, l)
}

type failingStore struct {
	*store.Memory
	failLeague int
}

func (s failingStore) Leagues() store.LeagueRepository {
	return failingLeagues{s.Memory.Leagues(), s.failLeague}
}

func TestCollectHistoricalIsolatesLeagueFailures(t *testing.T) {
	src := newFakeSource()
	st := failingStore{Memory: store.NewMemory(), failLeague: 12}
	c := newCollector(src, st, time.Hour)

	res, err := c.CollectHistorical(context.Background())
	if err != nil {
		t.Fatalf("CollectHistorical: %v", err)
	}
	if res.LeaguesUpserted != 1 {
		t.Fatalf("leagues = %d, want 1", res.LeaguesUpserted)
	}
	if _, err := st.Memory.Leagues().Get(context.Background(), 13); err != nil {
		t.Fatalf("league after the failure was not saved: %v", err)
	}
}

func TestCollectLive(t *testing.T) {
	src := newFakeSource()
	src.live = []provider.Game{
		{ID: 1, Status: provider.GameStatus{Short: "Q3"}},
		{ID: 2, Status: provider.GameStatus{Short: "OT"}},
	}
	st := store.NewMemory()
	st.PutGame(store.Game{ID: 7, Status: "Q1"})
	st.PutGame(store.Game{ID: 8, Status: "FT"})
	c := newCollector(src, st, time.Hour)

	res := c.CollectLive(context.Background())
	if res.LiveGames != 2 || res.Statistics != 1 || len(res.Errors) != 0 {
		t.Fatalf("live result = %s", res.Summary())
	}

	src.liveErr = errors.New("source down")
	res = c.CollectLive(context.Background())
	if res.LiveGames != 0 || res.Statistics != 1 || len(res.Errors) != 1 {
		t.Fatalf("live result after failure = %s", res.Summary())
	}
	if got := c.Status().LivePasses; got != 2 {
		t.Fatalf("live passes = %d", got)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestStartTwiceIsNoop(t *testing.T) {
	src := newFakeSource()
	c := newCollector(src, store.NewMemory(), time.Hour)

	done := make(chan error, 1)
	go func() { done <- c.Start(context.Background()) }()
	waitFor(t, func() bool { return src.liveCalls.Load() == 1 })

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if !c.Running() {
		t.Fatal("collector should still be running")
	}
	if n := src.seasonCalls.Load(); n != 1 {
		t.Fatalf("historical passes = %d, want 1", n)
	}

	c.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not exit after Stop")
	}
	if c.Running() {
		t.Fatal("collector still running after Stop")
	}
	if n := src.liveCalls.Load(); n != 1 {
		t.Fatalf("live passes = %d, want 1", n)
	}
	c.Stop()
}

func TestLoopRepeatsLivePasses(t *testing.T) {
	src := newFakeSource()
	c := newCollector(src, store.NewMemory(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()
	waitFor(t, func() bool { return src.liveCalls.Load() >= 3 })

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Start returned %v after cancellation", err)
	}
	if c.Running() {
		t.Fatal("collector running after cancellation")
	}
}

func TestStartFailsWhenStorageUnavailable(t *testing.T) {
	st := store.NewMemory()
	st.SetPingError(errors.New("connection refused"))
	src := newFakeSource()
	c := newCollector(src, st, time.Hour)

	err := c.Start(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if c.Running() {
		t.Fatal("collector must be stopped after a failed run")
	}
	if src.liveCalls.Load() != 0 {
		t.Fatal("live loop must not start after a failed historical pass")
	}
	if c.Status().LastError == "" {
		t.Fatal("status should carry the failure")
	}
}

func TestStartRecoversHistoricalPanic(t *testing.T) {
	src := newFakeSource()
	src.seasonsPanic = true
	c := newCollector(src, store.NewMemory(), time.Hour)

	if err := c.Start(context.Background()); err == nil {
		t.Fatal("expected panic to surface as an error")
	}
	if c.Running() {
		t.Fatal("collector must be stopped after a panic")
	}
	if src.liveCalls.Load() != 0 {
		t.Fatal("live loop must not start after a failed historical pass")
	}
	if c.Status().LastError == "" {
		t.Fatal("status should carry the panic")
	}
}

func TestCollectLiveRecoversPanic(t *testing.T) {
	src := newFakeSource()
	src.livePanic = true
	st := store.NewMemory()
	st.PutGame(store.Game{ID: 7, Status: provider.StatusQuarter2})
	c := newCollector(src, st, time.Hour)

	res := c.CollectLive(context.Background())
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "live games panicked") {
		t.Fatalf("errors = %v", res.Errors)
	}
	if res.Statistics != 1 {
		t.Fatalf("statistics step should still run, got %d", res.Statistics)
	}
}

func TestLoopSurvivesLivePanic(t *testing.T) {
	src := newFakeSource()
	src.livePanic = true
	c := newCollector(src, store.NewMemory(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()
	waitFor(t, func() bool { return src.liveCalls.Load() >= 3 })

	if !c.Running() {
		t.Fatal("collector stopped after a live panic")
	}
	st := c.Status()
	if st.LastLive == nil || len(st.LastLive.Errors) == 0 {
		t.Fatalf("last live result should record the panic: %+v", st.LastLive)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Start returned %v after cancellation", err)
	}
}

func TestRunHistoricalIsExclusive(t *testing.T) {
	src := newFakeSource()
	src.seasonsGate = make(chan struct{})
	c := newCollector(src, store.NewMemory(), time.Hour)

	type outcome struct {
		res HistoricalResult
		err error
	}
	first := make(chan outcome, 1)
	go func() {
		res, err := c.RunHistorical(context.Background())
		first <- outcome{res, err}
	}()
	waitFor(t, func() bool { return src.seasonCalls.Load() == 1 })

	if !c.Running() || !c.Status().Running {
		t.Fatal("collector should report running during a standalone pass")
	}
	if err := c.Launch(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("Launch during historical = %v", err)
	}
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start during historical = %v", err)
	}
	if _, err := c.RunHistorical(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second RunHistorical = %v", err)
	}
	if n := src.seasonCalls.Load(); n != 1 {
		t.Fatalf("historical passes = %d, want 1", n)
	}

	close(src.seasonsGate)
	got := <-first
	if got.err != nil || got.res.LeaguesUpserted != 2 {
		t.Fatalf("first pass = %+v, %v", got.res, got.err)
	}
	if c.Running() {
		t.Fatal("collector still busy after the pass")
	}

	if err := c.Launch(context.Background()); err != nil {
		t.Fatalf("Launch after pass = %v", err)
	}
	if _, err := c.RunHistorical(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("RunHistorical during loop = %v", err)
	}
	waitFor(t, func() bool { return src.liveCalls.Load() >= 1 })
	c.Stop()
	waitFor(t, func() bool { return !c.Running() })
}
