// Package pagination turns untrusted list query parameters into a bounded,
// filtered and sorted read against a record collection.
package pagination

import (
	"math"
	"strconv"
	"strings"
)

const (
	ParamPage  = "page"
	ParamLimit = "limit"
)

// Bounds holds the fallback values and the ceiling applied to page/limit.
type Bounds struct {
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// DefaultBounds returns page 1, limit 10, ceiling 100.
func DefaultBounds() Bounds {
	return Bounds{DefaultPage: 1, DefaultLimit: 10, MaxLimit: 100}
}

// normalized fills in zero or inconsistent fields from DefaultBounds.
func (b Bounds) normalized() Bounds {
	d := DefaultBounds()
	if b.DefaultPage < 1 {
		b.DefaultPage = d.DefaultPage
	}
	if b.MaxLimit < 1 {
		b.MaxLimit = d.MaxLimit
	}
	if b.DefaultLimit < 1 {
		b.DefaultLimit = d.DefaultLimit
	}
	if b.DefaultLimit > b.MaxLimit {
		b.DefaultLimit = b.MaxLimit
	}
	return b
}

// Filter is an AND of exact-match equalities, field -> value.
type Filter map[string]string

// Sort orders results by a single field. Backends append a stable tie-breaker.
type Sort struct {
	Field string
	Desc  bool
}

// NewestFirst sorts by field descending.
func NewestFirst(field string) Sort {
	return Sort{Field: field, Desc: true}
}

// Request is a normalized list query. It is built per call and discarded.
type Request struct {
	Page   int
	Limit  int
	Filter Filter
}

// Skip is the number of records preceding the requested page.
func (r Request) Skip() int64 {
	return int64(r.Page-1) * int64(r.Limit)
}

// ParseRequest never fails: malformed or non-positive page/limit fall back to
// the defaults, limit is clamped to the ceiling, and only allow-listed keys
// with a non-empty value become filters.
func ParseRequest(raw map[string]string, allowed []string, b Bounds) Request {
	b = b.normalized()

	req := Request{
		Page:   positiveOr(raw[ParamPage], b.DefaultPage),
		Limit:  positiveOr(raw[ParamLimit], b.DefaultLimit),
		Filter: Filter{},
	}
	if req.Limit > b.MaxLimit {
		req.Limit = b.MaxLimit
	}
	// (page-1)*limit must fit in int64 or the backend receives a negative skip.
	if maxPage := math.MaxInt64 / int64(req.Limit); int64(req.Page) > maxPage {
		req.Page = int(maxPage)
	}

	for _, field := range allowed {
		if field == ParamPage || field == ParamLimit {
			continue
		}
		v, ok := raw[field]
		if !ok || v == "" {
			continue
		}
		req.Filter[field] = v
	}
	return req
}

func positiveOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// FirstValues flattens a multi-valued query (url.Values, gin's c.Request.URL.Query())
// keeping the first value per key.
func FirstValues(q map[string][]string) map[string]string {
	out := make(map[string]string, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
