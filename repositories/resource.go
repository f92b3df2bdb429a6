package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"opsdesk/pagination"
)

var ErrNotFound = errors.New("document not found")

// resource bundles a collection with its list allow-list and sort order.
// Every list endpoint goes through pagination.List with these settings.
type resource[T any] struct {
	col     *mongo.Collection
	records pagination.Collection[T]
	allowed []string
	sort    pagination.Sort
	bounds  pagination.Bounds
}

func newResource[T any](col *mongo.Collection, allowed []string, sort pagination.Sort, bounds pagination.Bounds) resource[T] {
	return resource[T]{
		col:     col,
		records: pagination.NewMongoCollection[T](col),
		allowed: allowed,
		sort:    sort,
		bounds:  bounds,
	}
}

// List returns one page filtered by the allow-listed keys present in raw.
func (r resource[T]) List(ctx context.Context, raw map[string]string) (pagination.Result[T], error) {
	return pagination.List(ctx, r.records, raw, r.allowed, r.sort, r.bounds)
}

// FindByID returns ErrNotFound when no document has the given _id.
func (r resource[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}
