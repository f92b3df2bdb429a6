package pagination

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Collection is the persistence capability the engine consumes. It never
// opens or manages connections itself.
type Collection[T any] interface {
	Count(ctx context.Context, filter Filter) (int64, error)
	Find(ctx context.Context, filter Filter, sort Sort, skip, limit int64) ([]T, error)
}

// Info is the pagination metadata returned alongside a page of items.
type Info struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// Result is one page of items plus its metadata.
type Result[T any] struct {
	Items      []T  `json:"items"`
	Pagination Info `json:"pagination"`
}

// NewInfo computes pages as ceil(total/limit), or 0 when total is 0.
func NewInfo(page, limit int, total int64) Info {
	info := Info{Page: page, Limit: limit, Total: total}
	if total > 0 && limit > 0 {
		info.Pages = (total + int64(limit) - 1) / int64(limit)
	}
	return info
}

// List parses raw, then counts and fetches concurrently. The two reads are
// not snapshot-consistent; a concurrent insert may skew pages slightly.
func List[T any](ctx context.Context, col Collection[T], raw map[string]string, allowed []string, sort Sort, b Bounds) (Result[T], error) {
	req := ParseRequest(raw, allowed, b)
	return Fetch(ctx, col, req, sort)
}

// Fetch runs an already-parsed Request.
func Fetch[T any](ctx context.Context, col Collection[T], req Request, sort Sort) (Result[T], error) {
	if err := ctx.Err(); err != nil {
		return Result[T]{}, classify(ctx, "list", err)
	}

	var (
		total int64
		items []T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := col.Count(gctx, req.Filter)
		if err != nil {
			return classify(ctx, "count", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		found, err := col.Find(gctx, req.Filter, sort, req.Skip(), int64(req.Limit))
		if err != nil {
			return classify(ctx, "find", err)
		}
		items = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result[T]{}, err
	}

	if len(items) > req.Limit {
		items = items[:req.Limit]
	}
	if items == nil {
		items = []T{}
	}
	return Result[T]{Items: items, Pagination: NewInfo(req.Page, req.Limit, total)}, nil
}
