package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/albapepper/hoops-collector/internal/api/respond"
	"github.com/albapepper/hoops-collector/internal/provider/apisports"
	"github.com/albapepper/hoops-collector/internal/store"
)

// query reads typed parameters and remembers the first malformed one.
type query struct {
	values url.Values
	err    error
}

func newQuery(r *http.Request) *query {
	return &query{values: r.URL.Query()}
}

func (q *query) str(key string) string {
	return q.values.Get(key)
}

// int returns 0 for an absent parameter.
func (q *query) int(key string) int {
	raw := q.values.Get(key)
	if raw == "" || q.err != nil {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.err = fmt.Errorf("%s must be an integer, got %q", key, raw)
		return 0
	}
	return n
}

func (q *query) bool(key string, fallback bool) bool {
	raw := q.values.Get(key)
	if raw == "" || q.err != nil {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.err = fmt.Errorf("%s must be a boolean, got %q", key, raw)
		return fallback
	}
	return b
}

// ids parses a hyphen-joined id list.
func (q *query) ids(key string) []int {
	raw := q.values.Get(key)
	if raw == "" || q.err != nil {
		return nil
	}
	ids, err := apisports.SplitIDs(raw)
	if err != nil {
		q.err = fmt.Errorf("%s: %w", key, err)
		return nil
	}
	return ids
}

func (q *query) page() store.Page {
	return store.Page{Skip: q.int("skip"), Limit: q.int("limit")}
}

// failed writes a 400 for the first malformed parameter.
func (q *query) failed(w http.ResponseWriter) bool {
	if q.err == nil {
		return false
	}
	respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidParameter, q.err.Error())
	return true
}
