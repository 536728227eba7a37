package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/albapepper/hoops-collector/internal/provider"
)

type seasonKey struct {
	leagueID int
	label    string
}

// Memory is a mutex-guarded in-process Store for local runs and tests.
type Memory struct {
	mu         sync.RWMutex
	leagues    map[int]League
	seasons    map[seasonKey]Season
	teams      map[int]Team
	games      map[int]Game
	aliases    []TeamAlias
	mappings   []LeagueMapping
	nextSeason int
	pingErr    error
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		leagues: make(map[int]League),
		seasons: make(map[seasonKey]Season),
		teams:   make(map[int]Team),
		games:   make(map[int]Game),
	}
}

func (m *Memory) Leagues() LeagueRepository { return memLeagues{m} }
func (m *Memory) Seasons() SeasonRepository { return memSeasons{m} }
func (m *Memory) Teams() TeamRepository     { return memTeams{m} }
func (m *Memory) Games() GameRepository     { return memGames{m} }
func (m *Memory) Aliases() AliasRepository  { return memAliases{m} }

func (m *Memory) Ping(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingErr
}

// SetPingError makes Ping fail with err until cleared with nil.
func (m *Memory) SetPingError(err error) {
	m.mu.Lock()
	m.pingErr = err
	m.mu.Unlock()
}

// PutGame stores or replaces a game.
func (m *Memory) PutGame(g Game) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now()
	}
	g.UpdatedAt = now()
	m.games[g.ID] = g
}

// AddAlias stores a bookmaker team alias.
func (m *Memory) AddAlias(a TeamAlias) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = len(m.aliases) + 1
	if a.Source == "" {
		a.Source = "basketball-api"
	}
	a.CreatedAt, a.UpdatedAt = now(), now()
	m.aliases = append(m.aliases, a)
}

// AddMapping stores a bookmaker league mapping.
func (m *Memory) AddMapping(lm LeagueMapping) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lm.ID = len(m.mappings) + 1
	lm.CreatedAt = now()
	m.mappings = append(m.mappings, lm)
}

// --------------------------------------------------------------------------
// Repositories
// --------------------------------------------------------------------------

type memLeagues struct{ m *Memory }

func (r memLeagues) GetOrCreate(_ context.Context, l League) (League, bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if existing, ok := r.m.leagues[l.ID]; ok {
		return existing, false, nil
	}
	l.CreatedAt, l.UpdatedAt = now(), now()
	r.m.leagues[l.ID] = l
	return l, true, nil
}

func (r memLeagues) Get(_ context.Context, id int) (League, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	l, ok := r.m.leagues[id]
	if !ok {
		return League{}, ErrNotFound
	}
	return l, nil
}

func (r memLeagues) List(_ context.Context, page Page) ([]League, error) {
	r.m.mu.RLock()
	out := make([]League, 0, len(r.m.leagues))
	for _, l := range r.m.leagues {
		out = append(out, l)
	}
	r.m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return window(out, page), nil
}

type memSeasons struct{ m *Memory }

func (r memSeasons) GetOrCreate(_ context.Context, s Season) (Season, bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	key := seasonKey{s.LeagueID, s.Label}
	if existing, ok := r.m.seasons[key]; ok {
		return existing, false, nil
	}
	r.m.nextSeason++
	s.ID = r.m.nextSeason
	s.CreatedAt, s.UpdatedAt = now(), now()
	r.m.seasons[key] = s
	return s, true, nil
}

func (r memSeasons) ByLeague(_ context.Context, leagueID int) ([]Season, error) {
	r.m.mu.RLock()
	var out []Season
	for k, s := range r.m.seasons {
		if k.leagueID == leagueID {
			out = append(out, s)
		}
	}
	r.m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func (r memSeasons) List(_ context.Context, page Page) ([]Season, error) {
	r.m.mu.RLock()
	out := make([]Season, 0, len(r.m.seasons))
	for _, s := range r.m.seasons {
		out = append(out, s)
	}
	r.m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].LeagueID != out[j].LeagueID {
			return out[i].LeagueID < out[j].LeagueID
		}
		return out[i].Label < out[j].Label
	})
	return window(out, page), nil
}

type memTeams struct{ m *Memory }

func (r memTeams) GetOrCreate(_ context.Context, t Team) (Team, bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if existing, ok := r.m.teams[t.ID]; ok {
		return existing, false, nil
	}
	t.CreatedAt, t.UpdatedAt = now(), now()
	r.m.teams[t.ID] = t
	return t, true, nil
}

func (r memTeams) List(_ context.Context, page Page) ([]Team, error) {
	r.m.mu.RLock()
	out := make([]Team, 0, len(r.m.teams))
	for _, t := range r.m.teams {
		out = append(out, t)
	}
	r.m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return window(out, page), nil
}

type memGames struct{ m *Memory }

func (r memGames) LiveGames(context.Context) ([]Game, error) {
	r.m.mu.RLock()
	out := make([]Game, 0)
	for _, g := range r.m.games {
		if (provider.GameStatus{Short: g.Status}).IsLive() {
			out = append(out, g)
		}
	}
	r.m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memGames) List(_ context.Context, page Page) ([]Game, error) {
	r.m.mu.RLock()
	out := make([]Game, 0, len(r.m.games))
	for _, g := range r.m.games {
		out = append(out, g)
	}
	r.m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return window(out, page), nil
}

type memAliases struct{ m *Memory }

func (r memAliases) AliasByName(_ context.Context, name string) (TeamAlias, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, a := range r.m.aliases {
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return TeamAlias{}, ErrNotFound
}

func (r memAliases) MappingByLeague(_ context.Context, leagueID int) (LeagueMapping, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, lm := range r.m.mappings {
		if lm.LeagueID == leagueID {
			return lm, nil
		}
	}
	return LeagueMapping{}, ErrNotFound
}

func window[T any](items []T, page Page) []T {
	page = page.normalized()
	if page.Skip >= len(items) {
		return []T{}
	}
	return items[page.Skip : page.Skip+min(page.Limit, len(items)-page.Skip)]
}

func now() time.Time { return time.Now().UTC() }
