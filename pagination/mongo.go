package pagination

import (
	"context"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection adapts a *mongo.Collection to Collection[T], decoding each
// document into T.
type MongoCollection[T any] struct {
	col *mongo.Collection
}

func NewMongoCollection[T any](col *mongo.Collection) *MongoCollection[T] {
	return &MongoCollection[T]{col: col}
}

func (m *MongoCollection[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	n, err := m.col.CountDocuments(ctx, BSONFilter(filter))
	if err != nil {
		return 0, eris.Wrapf(err, "count %s", m.col.Name())
	}
	return n, nil
}

func (m *MongoCollection[T]) Find(ctx context.Context, filter Filter, sort Sort, skip, limit int64) ([]T, error) {
	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(BSONSort(sort))
	cur, err := m.col.Find(ctx, BSONFilter(filter), findOpts)
	if err != nil {
		return nil, eris.Wrapf(err, "find %s", m.col.Name())
	}
	defer cur.Close(ctx)

	results := make([]T, 0, limit)
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, eris.Wrapf(err, "decode %s", m.col.Name())
		}
		results = append(results, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, eris.Wrapf(err, "iterate %s", m.col.Name())
	}
	return results, nil
}

// BSONFilter turns equality filters into a query document. Values are matched
// as strings; no operators are ever produced.
func BSONFilter(f Filter) bson.M {
	out := bson.M{}
	for k, v := range f {
		out[k] = v
	}
	return out
}

// BSONSort orders by the sort field, then by _id in the same direction so
// pages stay stable when timestamps collide.
func BSONSort(s Sort) bson.D {
	dir := 1
	if s.Desc {
		dir = -1
	}
	if s.Field == "" || s.Field == "_id" {
		return bson.D{{Key: "_id", Value: dir}}
	}
	return bson.D{
		{Key: s.Field, Value: dir},
		{Key: "_id", Value: dir},
	}
}
