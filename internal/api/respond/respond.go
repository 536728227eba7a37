// Package respond writes the collector API's JSON bodies. Read-through
// responses carry the cache verdict and a weak ETag; everything else is
// sent uncached.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Error codes shared by handlers and middleware. INVALID_REQUEST is a
// failed source precondition, INVALID_PARAMETER a query or path value that
// did not parse, CANCELLED a client that went away mid-pass.
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidParameter  = "INVALID_PARAMETER"
	CodeNotFound          = "NOT_FOUND"
	CodeAlreadyRunning    = "ALREADY_RUNNING"
	CodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	CodeStorageError      = "STORAGE_ERROR"
	CodeRateLimited       = "RATE_LIMITED"
	CodeCancelled         = "CANCELLED"
)

// staleFloor is the shortest TTL that still gets a stale-while-revalidate
// window. Game-tier responses below it carry live scores.
const staleFloor = time.Minute

// ErrorResponse is the error envelope of every non-2xx answer.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Detail  string `json:"detail,omitempty"`
	} `json:"error"`
}

// WriteJSON writes an encoded source envelope served through the response
// cache. cacheHit sets X-Cache; ttl drives Cache-Control.
func WriteJSON(w http.ResponseWriter, data []byte, etag string, ttl time.Duration, cacheHit bool) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("ETag", etag)
	h.Set("Vary", "Accept-Encoding")
	h.Set("Cache-Control", cacheControl(ttl))
	if cacheHit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// WriteNotModified answers a conditional read whose If-None-Match still
// matches the cached body.
func WriteNotModified(w http.ResponseWriter, etag string) {
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
}

// WriteError sends the error envelope without detail.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteErrorDetail(w, status, code, message, "")
}

// WriteErrorDetail sends the error envelope. detail carries the wrapped
// source or storage error for operators.
func WriteErrorDetail(w http.ResponseWriter, status int, code, message, detail string) {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Detail = detail
	writeUncached(w, status, "no-cache, no-store, must-revalidate", resp)
}

// WriteJSONObject encodes v for control, health and stored-data endpoints,
// whose answers change with collector state and are never cached.
func WriteJSONObject(w http.ResponseWriter, status int, v interface{}) {
	writeUncached(w, status, "no-cache", v)
}

func writeUncached(w http.ResponseWriter, status int, cacheControl string, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// cacheControl allows reuse for ttl. Reference, team and statistics tiers
// may be served stale for half their TTL while revalidating.
func cacheControl(ttl time.Duration) string {
	maxAge := int(ttl.Seconds())
	if ttl < staleFloor {
		return fmt.Sprintf("public, max-age=%d", maxAge)
	}
	return fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAge, maxAge/2)
}
